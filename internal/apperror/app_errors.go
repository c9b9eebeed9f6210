package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrInvalidMove  = errors.New("invalid move")
	ErrInvalidCell  = errors.New("invalid cell")
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidBoard = errors.New("invalid board")
	ErrGameNotFound = errors.New("game not found")
)
