package console

import (
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

const hintMark = "*"

type renderer struct {
	au aurora.Aurora
}

func newRenderer(colors bool) *renderer {
	return &renderer{au: aurora.NewAurora(colors)}
}

// board draws the grid with row and column indexes. hints are marked on empty cells.
func (that *renderer) board(board othello.Board, hints []othello.Cell) string {
	hinted := make(map[othello.Cell]bool, len(hints))
	for _, cell := range hints {
		hinted[cell] = true
	}

	var sb strings.Builder

	sb.WriteString("  ")
	for col := 0; col < othello.Size; col++ {
		sb.WriteString(" " + strconv.Itoa(col))
	}
	sb.WriteString("\n")

	for row := 0; row < othello.Size; row++ {
		sb.WriteString(strconv.Itoa(row) + " ")

		for col := 0; col < othello.Size; col++ {
			cell := othello.Cell{Row: row, Col: col}

			sb.WriteString(" ")
			sb.WriteString(that.cell(board.At(cell), hinted[cell]))
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

func (that *renderer) cell(color othello.Color, hint bool) string {
	switch color {
	case othello.Black:
		return that.au.Bold(that.au.Blue("B")).String()
	case othello.White:
		return that.au.Bold(that.au.White("W")).String()
	default:
		if hint {
			return that.au.Yellow(hintMark).String()
		}
		return that.au.Faint(".").String()
	}
}

func (that *renderer) color(color othello.Color) string {
	switch color {
	case othello.Black:
		return that.au.Blue(color.String()).String()
	case othello.White:
		return that.au.White(color.String()).String()
	default:
		return color.String()
	}
}

func (that *renderer) warn(text string) string {
	return that.au.Red(text).String()
}

func (that *renderer) notice(text string) string {
	return that.au.Green(text).String()
}
