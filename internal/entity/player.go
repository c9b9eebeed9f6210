package entity

import (
	"strings"

	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

type Player struct {
	Name  string        `json:"name"`
	Color othello.Color `json:"color"`
}

// displayColor - "Black" or "White", as used at the start of an outcome sentence.
func displayColor(color othello.Color) string {
	name := color.String()
	return strings.ToUpper(name[:1]) + name[1:]
}
