package othello

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
)

const (
	Size     = 8
	MaxCount = Size * Size

	emptyMark = '.'
	blackMark = 'B'
	whiteMark = 'W'
)

// Cell addresses a square of the playable 8x8 region, 0-indexed.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Cell) InBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Cell) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

func (that Cell) step(dir direction) Cell {
	return Cell{Row: that.Row + dir.row, Col: that.Col + dir.col}
}

// Board is a value type: assigning it copies every cell.
type Board [Size][Size]Color

// NewBoard returns the opening position: same colors on the diagonals of the center square.
func NewBoard() Board {
	var b Board

	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black

	return b
}

// At returns Empty for cells outside the board.
func (that *Board) At(cell Cell) Color {
	if !cell.InBounds() {
		return Empty
	}

	return that[cell.Row][cell.Col]
}

func (that *Board) Set(cell Cell, color Color) {
	if cell.InBounds() {
		that[cell.Row][cell.Col] = color
	}
}

// Score counts the pieces of each color.
func (that *Board) Score() (int, int) {
	black, white := 0, 0

	for row := range that {
		for _, color := range that[row] {
			switch color {
			case Black:
				black++
			case White:
				white++
			}
		}
	}

	return black, white
}

// Count - total number of pieces on the board.
func (that *Board) Count() int {
	black, white := that.Score()
	return black + white
}

// ParseBoard reads eight rows of eight marks: '.' for empty, 'B' or 'X' for black, 'W' or 'O' for white.
func ParseBoard(rows []string) (Board, error) {
	var b Board

	if len(rows) != Size {
		return b, fmt.Errorf("%w: expected %d rows, got %d", apperror.ErrInvalidBoard, Size, len(rows))
	}

	for r, line := range rows {
		if len(line) != Size {
			return b, fmt.Errorf("%w: row %d has %d cells", apperror.ErrInvalidBoard, r, len(line))
		}

		for c := 0; c < Size; c++ {
			switch line[c] {
			case emptyMark:
				b[r][c] = Empty
			case blackMark, 'b', 'X', 'x':
				b[r][c] = Black
			case whiteMark, 'w', 'O', 'o':
				b[r][c] = White
			default:
				return b, fmt.Errorf("%w: unknown mark %q at %s", apperror.ErrInvalidBoard, line[c], Cell{Row: r, Col: c})
			}
		}
	}

	return b, nil
}

// MustParseBoard is ParseBoard for fixtures known to be valid.
func MustParseBoard(rows ...string) Board {
	b, err := ParseBoard(rows)
	if err != nil {
		panic(err)
	}

	return b
}

// Rows renders the board in the form ParseBoard reads.
func (that *Board) Rows() []string {
	rows := make([]string, 0, Size)

	for r := range that {
		var sb strings.Builder
		for _, color := range that[r] {
			sb.WriteByte(mark(color))
		}
		rows = append(rows, sb.String())
	}

	return rows
}

func (that Board) String() string {
	return strings.Join(that.Rows(), "\n")
}

func (that Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.Rows())
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var rows []string
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("failed to unmarshal board rows: %w", err)
	}

	b, err := ParseBoard(rows)
	if err != nil {
		return err
	}

	*that = b

	return nil
}

func mark(color Color) byte {
	switch color {
	case Black:
		return blackMark
	case White:
		return whiteMark
	default:
		return emptyMark
	}
}
