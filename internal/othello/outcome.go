package othello

// Result classifies a score.
type Result uint8

const (
	Tie Result = iota
	BlackWins
	WhiteWins
)

// Classify compares the counts strictly; equal counts are a tie.
func Classify(black, white int) Result {
	switch {
	case black > white:
		return BlackWins
	case white > black:
		return WhiteWins
	default:
		return Tie
	}
}

// Leader returns the color ahead, Empty on a tie.
func (that Result) Leader() Color {
	switch that {
	case BlackWins:
		return Black
	case WhiteWins:
		return White
	default:
		return Empty
	}
}

func (that Result) String() string {
	switch that {
	case BlackWins:
		return "black wins"
	case WhiteWins:
		return "white wins"
	default:
		return "tie"
	}
}
