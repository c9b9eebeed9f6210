package othello

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
)

// Color is the content of a board cell and the identity of a mover.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

const (
	blackName = "black"
	whiteName = "white"
	emptyName = "empty"
)

// ParseColor - accepts "black" or "white" in any letter case.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case blackName:
		return Black, nil
	case whiteName:
		return White, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidColor, s)
	}
}

// IsPlayer reports whether the color can move.
func (that Color) IsPlayer() bool {
	return that == Black || that == White
}

// Opponent returns the other player color. Empty has no opponent.
func (that Color) Opponent() Color {
	switch that {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (that Color) String() string {
	switch that {
	case Black:
		return blackName
	case White:
		return whiteName
	default:
		return emptyName
	}
}

func (that Color) MarshalText() ([]byte, error) {
	if !that.IsPlayer() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidColor, that)
	}

	return []byte(that.String()), nil
}

func (that *Color) UnmarshalText(text []byte) error {
	color, err := ParseColor(string(text))
	if err != nil {
		return err
	}

	*that = color

	return nil
}
