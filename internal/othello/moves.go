package othello

import (
	"fmt"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
)

type direction struct {
	row, col int
}

// the four orthogonal and the four diagonal unit offsets.
var directions = [8]direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// run walks from cell along dir and returns the opponent pieces a mover placed on cell would
// bracket. The run must hold at least one opponent piece and end on a mover's piece;
// running into an empty cell or off the board yields nil.
func (that *Board) run(cell Cell, mover Color, dir direction) []Cell {
	opponent := mover.Opponent()

	var captured []Cell
	for next := cell.step(dir); next.InBounds(); next = next.step(dir) {
		switch that.At(next) {
		case opponent:
			captured = append(captured, next)
		case mover:
			return captured
		default:
			return nil
		}
	}

	return nil
}

// Captures returns every piece that would flip if color played on cell. An occupied,
// off-board or non-capturing cell yields nil.
func (that *Board) Captures(cell Cell, color Color) []Cell {
	if !color.IsPlayer() || !cell.InBounds() || that.At(cell) != Empty {
		return nil
	}

	var captured []Cell
	for _, dir := range directions {
		captured = append(captured, that.run(cell, color, dir)...)
	}

	return captured
}

// IsLegal reports whether color may play on cell.
func (that *Board) IsLegal(cell Cell, color Color) bool {
	if !color.IsPlayer() || !cell.InBounds() || that.At(cell) != Empty {
		return false
	}

	for _, dir := range directions {
		if len(that.run(cell, color, dir)) > 0 {
			return true
		}
	}

	return false
}

// LegalMoves lists the cells color may play on, in row-major order.
func (that *Board) LegalMoves(color Color) []Cell {
	var moves []Cell

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			cell := Cell{Row: r, Col: c}
			if that.IsLegal(cell, color) {
				moves = append(moves, cell)
			}
		}
	}

	return moves
}

// HasMoves - cheaper than len(LegalMoves(color)) > 0, stops on the first legal cell.
func (that *Board) HasMoves(color Color) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if that.IsLegal(Cell{Row: r, Col: c}, color) {
				return true
			}
		}
	}

	return false
}

// Apply places a piece of color on cell and flips every bracketed run. The move is
// validated first; a rejected move leaves the board untouched.
func (that *Board) Apply(color Color, cell Cell) ([]Cell, error) {
	if !color.IsPlayer() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidColor, color)
	}

	if !cell.InBounds() {
		return nil, fmt.Errorf("%w: %s is off the board", apperror.ErrInvalidCell, cell)
	}

	if that.At(cell) != Empty {
		return nil, fmt.Errorf("%w: %s is occupied", apperror.ErrInvalidMove, cell)
	}

	flipped := that.Captures(cell, color)
	if len(flipped) == 0 {
		return nil, fmt.Errorf("%w: %s brackets nothing for %s", apperror.ErrInvalidMove, cell, color)
	}

	that.Set(cell, color)
	for _, captured := range flipped {
		that.Set(captured, color)
	}

	return flipped, nil
}

// IsTerminal - neither color has a legal move, whatever the number of empty cells.
func (that *Board) IsTerminal() bool {
	return !that.HasMoves(Black) && !that.HasMoves(White)
}
