package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

type Turn string

const (
	AwaitingBlack Turn = "awaiting_black"
	AwaitingWhite Turn = "awaiting_white"
	Terminal      Turn = "terminal"
)

var ErrUnknownTurn = errors.New("unknown turn state")

func awaiting(color othello.Color) Turn {
	if color == othello.White {
		return AwaitingWhite
	}
	return AwaitingBlack
}

// Color returns the color expected to move, Empty once the game is over.
func (that Turn) Color() othello.Color {
	switch that {
	case AwaitingBlack:
		return othello.Black
	case AwaitingWhite:
		return othello.White
	default:
		return othello.Empty
	}
}

type Move struct {
	Color   othello.Color `json:"color"`
	Cell    othello.Cell  `json:"cell"`
	Flipped int           `json:"flipped"`
}

func (that Move) String() string {
	return fmt.Sprintf("%s %s", that.Color, that.Cell)
}

// MoveResult is the outcome of an applied move.
type MoveResult struct {
	Board   othello.Board
	Flipped []othello.Cell
	Turn    Turn
	// Passed is set when the opponent had no reply and the mover plays again.
	Passed bool
}

// InvalidMoveError - the placement was refused; Legal holds the cells the color could have played.
type InvalidMoveError struct {
	Cell  othello.Cell
	Legal []othello.Cell
	Err   error
}

func (that *InvalidMoveError) Error() string {
	legal := make([]string, 0, len(that.Legal))
	for _, cell := range that.Legal {
		legal = append(legal, cell.String())
	}

	return fmt.Sprintf("%s, valid moves: [%s]", that.Err, strings.Join(legal, ", "))
}

func (that *InvalidMoveError) Unwrap() []error {
	return []error{apperror.ErrInvalidMove, that.Err}
}

type Game struct {
	ID      string        `json:"id"`
	Board   othello.Board `json:"board"`
	Turn    Turn          `json:"turn"`
	Players []*Player     `json:"players,omitempty"`
	Moves   []Move        `json:"moves,omitempty"`
}

// NewGame - opening position, black to move.
func NewGame(id string) *Game {
	return &Game{
		ID:    id,
		Board: othello.NewBoard(),
		Turn:  AwaitingBlack,
	}
}

// RestoreGame builds a session from an arbitrary position. If toMove has no legal move the
// turn goes to the other color, and a position where nobody can move is terminal.
func RestoreGame(id string, board othello.Board, toMove othello.Color) (*Game, error) {
	if !toMove.IsPlayer() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidColor, toMove)
	}

	game := &Game{
		ID:    id,
		Board: board,
	}

	switch {
	case game.Board.HasMoves(toMove):
		game.Turn = awaiting(toMove)
	case game.Board.HasMoves(toMove.Opponent()):
		game.Turn = awaiting(toMove.Opponent())
	default:
		game.Turn = Terminal
	}

	return game, nil
}

// CreatePlayer registers name for color. Registering a color again replaces its name.
func (that *Game) CreatePlayer(name string, color othello.Color) (*Player, error) {
	if !color.IsPlayer() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidColor, color)
	}

	name = strings.TrimSpace(name)

	if player := that.PlayerFor(color); player != nil {
		player.Name = name
		return player, nil
	}

	player := &Player{Name: name, Color: color}
	that.Players = append(that.Players, player)

	return player, nil
}

func (that *Game) PlayerFor(color othello.Color) *Player {
	for _, player := range that.Players {
		if player.Color == color {
			return player
		}
	}

	return nil
}

func (that *Game) LegalMoves(color othello.Color) ([]othello.Cell, error) {
	if !color.IsPlayer() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidColor, color)
	}

	return that.Board.LegalMoves(color), nil
}

// AttemptMove plays cell for color. Either the placement and every flip are applied and the
// turn advances, or an error is returned and the game is left as it was.
func (that *Game) AttemptMove(color othello.Color, cell othello.Cell) (*MoveResult, error) {
	if !color.IsPlayer() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidColor, color)
	}

	if err := that.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	if that.Turn.Color() != color {
		return nil, fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, that.Turn.Color())
	}

	flipped, err := that.Board.Apply(color, cell)
	if err != nil {
		return nil, &InvalidMoveError{
			Cell:  cell,
			Legal: that.Board.LegalMoves(color),
			Err:   err,
		}
	}

	that.Moves = append(that.Moves, Move{Color: color, Cell: cell, Flipped: len(flipped)})
	passed := that.advanceTurn(color)

	return &MoveResult{
		Board:   that.Board,
		Flipped: flipped,
		Turn:    that.Turn,
		Passed:  passed,
	}, nil
}

// advanceTurn hands the turn to the opponent, back to the mover when the opponent cannot
// reply, or ends the game when neither can move. Reports whether the opponent was passed.
func (that *Game) advanceTurn(mover othello.Color) bool {
	opponent := mover.Opponent()

	switch {
	case that.Board.HasMoves(opponent):
		that.Turn = awaiting(opponent)
		return false
	case that.Board.HasMoves(mover):
		that.Turn = awaiting(mover)
		return true
	default:
		that.Turn = Terminal
		return false
	}
}

func (that *Game) IsFinished() bool {
	return that.Turn == Terminal
}

func (that *Game) ConfirmOngoingState() error {
	switch that.Turn {
	case AwaitingBlack, AwaitingWhite:
		return nil
	case Terminal:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownTurn, that.Turn)
	}
}

func (that *Game) Score() (int, int) {
	return that.Board.Score()
}

// Outcome classifies the current score. final selects the winner phrasing over the
// "currently leading" one.
func (that *Game) Outcome(final bool) Outcome {
	black, white := that.Score()

	outcome := Outcome{
		Result: othello.Classify(black, white),
		Black:  black,
		White:  white,
		Final:  final,
	}

	if player := that.PlayerFor(outcome.Result.Leader()); player != nil {
		outcome.Name = player.Name
	}

	return outcome
}

type Outcome struct {
	Result othello.Result `json:"result"`
	Black  int            `json:"black"`
	White  int            `json:"white"`
	Name   string         `json:"name,omitempty"`
	Final  bool           `json:"final"`
}

func (that Outcome) String() string {
	if that.Result == othello.Tie {
		if that.Final {
			return "It's a tie"
		}
		return "It's currently a tie"
	}

	color := that.Result.Leader()

	var text string
	if that.Final {
		text = "Winner is " + color.String() + " player"
	} else {
		text = displayColor(color) + " player is winning"
	}

	if that.Name != "" {
		text += ": " + that.Name
	}

	return text
}
