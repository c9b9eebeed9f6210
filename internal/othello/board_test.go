package othello

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: four pieces sit in the center with same colors on the diagonals
	expected := MustParseBoard(
		"........",
		"........",
		"........",
		"...WB...",
		"...BW...",
		"........",
		"........",
		"........",
	)
	if diff := cmp.Diff(expected, board); diff != "" {
		t.Errorf("opening board mismatch (-want +got):\n%s", diff)
	}

	// Then: each color owns two of them
	black, white := board.Score()
	assert.Equal(t, 2, black)
	assert.Equal(t, 2, white)
	assert.Equal(t, 4, board.Count())
}

func TestBoard_LegalMoves(t *testing.T) {
	t.Run("Opening moves for black", func(t *testing.T) {
		// Given: the opening position
		board := NewBoard()

		// When: listing black's legal moves
		moves := board.LegalMoves(Black)

		// Then: exactly the four cells bracketing a white piece are returned in row-major order
		expected := []Cell{{Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 4, Col: 5}, {Row: 5, Col: 4}}
		if diff := cmp.Diff(expected, moves); diff != "" {
			t.Errorf("black opening moves mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Opening moves for white", func(t *testing.T) {
		// Given: the opening position
		board := NewBoard()

		// When: listing white's legal moves
		moves := board.LegalMoves(White)

		// Then: the mirrored four cells are returned
		expected := []Cell{{Row: 2, Col: 4}, {Row: 3, Col: 5}, {Row: 4, Col: 2}, {Row: 5, Col: 3}}
		if diff := cmp.Diff(expected, moves); diff != "" {
			t.Errorf("white opening moves mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Empty color has no moves", func(t *testing.T) {
		board := NewBoard()

		assert.Empty(t, board.LegalMoves(Empty))
		assert.False(t, board.HasMoves(Empty))
	})
}

func TestBoard_IsLegal(t *testing.T) {
	t.Run("Adjacent own piece does not make a move legal", func(t *testing.T) {
		// Given: the opening position, where (2, 4) touches black's (3, 4)
		board := NewBoard()

		// When: checking (2, 4) for black
		legal := board.IsLegal(Cell{Row: 2, Col: 4}, Black)

		// Then: no opponent run is bracketed, so the move is illegal
		assert.False(t, legal)
	})

	t.Run("Run that reaches the edge captures nothing", func(t *testing.T) {
		// Given: a row of white pieces with nothing black behind them
		board := MustParseBoard(
			"WWWWWWW.",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)

		// When: checking the empty end of the row for black
		legal := board.IsLegal(Cell{Row: 0, Col: 7}, Black)

		// Then: the move is illegal
		assert.False(t, legal)
	})

	t.Run("Run interrupted by a gap captures nothing", func(t *testing.T) {
		// Given: black's terminator is separated from the white run by an empty cell
		board := MustParseBoard(
			".WW.B...",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)

		// When: checking (0, 0) for black
		legal := board.IsLegal(Cell{Row: 0, Col: 0}, Black)

		// Then: the move is illegal
		assert.False(t, legal)
	})

	t.Run("Occupied and off-board cells are never legal", func(t *testing.T) {
		board := NewBoard()

		assert.False(t, board.IsLegal(Cell{Row: 3, Col: 3}, Black))
		assert.False(t, board.IsLegal(Cell{Row: -1, Col: 3}, Black))
		assert.False(t, board.IsLegal(Cell{Row: 3, Col: Size}, Black))
	})
}

func TestBoard_Apply(t *testing.T) {
	t.Run("Black captures the center white piece", func(t *testing.T) {
		// Given: the opening position
		board := NewBoard()

		// When: black plays left of the upper-left white piece
		flipped, err := board.Apply(Black, Cell{Row: 3, Col: 2})
		require.NoError(t, err)

		// Then: only the bracketed white piece flips
		assert.Equal(t, []Cell{{Row: 3, Col: 3}}, flipped)

		expected := MustParseBoard(
			"........",
			"........",
			"........",
			"..BBB...",
			"...BW...",
			"........",
			"........",
			"........",
		)
		if diff := cmp.Diff(expected, board); diff != "" {
			t.Errorf("board after move mismatch (-want +got):\n%s", diff)
		}

		// Then: black has 4 pieces, white 1, five in total
		black, white := board.Score()
		assert.Equal(t, 4, black)
		assert.Equal(t, 1, white)
		assert.Equal(t, 5, board.Count())
	})

	t.Run("Captures in all eight directions at once", func(t *testing.T) {
		// Given: a black piece behind a white one on every line through (3, 3)
		board := MustParseBoard(
			"........",
			".B.B.B..",
			"..WWW...",
			".BW.WB..",
			"..WWW...",
			".B.B.B..",
			"........",
			"........",
		)

		// When: black plays in the middle
		flipped, err := board.Apply(Black, Cell{Row: 3, Col: 3})
		require.NoError(t, err)

		// Then: all eight white pieces flip
		assert.ElementsMatch(t, []Cell{
			{Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 2, Col: 4},
			{Row: 3, Col: 2}, {Row: 3, Col: 4},
			{Row: 4, Col: 2}, {Row: 4, Col: 3}, {Row: 4, Col: 4},
		}, flipped)

		_, white := board.Score()
		assert.Zero(t, white)
	})

	t.Run("Long run is flipped entirely", func(t *testing.T) {
		// Given: six white pieces closed by black at the far end
		board := MustParseBoard(
			".WWWWWWB",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)

		// When: black plays the open end
		flipped, err := board.Apply(Black, Cell{Row: 0, Col: 0})
		require.NoError(t, err)

		// Then: the whole row is black
		assert.Len(t, flipped, 6)
		assert.Equal(t, "BBBBBBBB", board.Rows()[0])
	})

	t.Run("Rejected moves leave the board untouched", func(t *testing.T) {
		cases := []struct {
			name  string
			color Color
			cell  Cell
			err   error
		}{
			{name: "brackets nothing", color: Black, cell: Cell{Row: 0, Col: 0}, err: apperror.ErrInvalidMove},
			{name: "occupied", color: Black, cell: Cell{Row: 3, Col: 3}, err: apperror.ErrInvalidMove},
			{name: "adjacent to own piece", color: Black, cell: Cell{Row: 2, Col: 4}, err: apperror.ErrInvalidMove},
			{name: "off the board", color: White, cell: Cell{Row: Size, Col: 0}, err: apperror.ErrInvalidCell},
			{name: "empty color", color: Empty, cell: Cell{Row: 2, Col: 3}, err: apperror.ErrInvalidColor},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				// Given: the opening position
				board := NewBoard()

				// When: an illegal move is applied
				flipped, err := board.Apply(tc.color, tc.cell)

				// Then: it is rejected and nothing changes
				require.ErrorIs(t, err, tc.err)
				assert.Nil(t, flipped)
				assert.Equal(t, NewBoard(), board)
			})
		}
	})
}

func TestBoard_IsTerminal(t *testing.T) {
	t.Run("Opening position is not terminal", func(t *testing.T) {
		board := NewBoard()

		assert.False(t, board.IsTerminal())
	})

	t.Run("Mid-board deadlock is terminal", func(t *testing.T) {
		// Given: two isolated pieces and 62 empty cells
		board := MustParseBoard(
			"B.......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			".......W",
		)

		// When: checking for the end of the game
		terminal := board.IsTerminal()

		// Then: neither color can move, so the game is over
		assert.True(t, terminal)
		assert.Equal(t, 2, board.Count())
	})

	t.Run("Full board with equal counts is terminal and tied", func(t *testing.T) {
		// Given: 32 pieces of each color
		board := MustParseBoard(
			"BBBBBBBB",
			"WWWWWWWW",
			"BBBBBBBB",
			"WWWWWWWW",
			"BBBBBBBB",
			"WWWWWWWW",
			"BBBBBBBB",
			"WWWWWWWW",
		)

		// Then: the game is over and the score is a tie
		require.True(t, board.IsTerminal())

		black, white := board.Score()
		assert.Equal(t, 32, black)
		assert.Equal(t, 32, white)
		assert.Equal(t, Tie, Classify(black, white))
	})
}

func TestBoard_PlayedGameInvariants(t *testing.T) {
	// Given: the opening position, black to move
	board := NewBoard()
	mover := Black

	for !board.IsTerminal() {
		if !board.HasMoves(mover) {
			mover = mover.Opponent()
		}

		beforeBlack, beforeWhite := board.Score()
		cell := board.LegalMoves(mover)[0]

		// When: the first legal move is played
		flipped, err := board.Apply(mover, cell)
		require.NoError(t, err)

		// Then: the piece count grows by exactly one and stays on the board
		black, white := board.Score()
		require.Equal(t, beforeBlack+beforeWhite+1, black+white)
		require.LessOrEqual(t, black+white, MaxCount)

		// Then: the mover gains the placed piece plus every flipped one
		if mover == Black {
			require.Equal(t, beforeBlack+1+len(flipped), black)
		} else {
			require.Equal(t, beforeWhite+1+len(flipped), white)
		}

		// Then: the played cell is never offered again
		require.NotContains(t, board.LegalMoves(Black), cell)
		require.NotContains(t, board.LegalMoves(White), cell)

		mover = mover.Opponent()
	}
}

func TestParseBoard(t *testing.T) {
	t.Run("Rejects a wrong row count", func(t *testing.T) {
		_, err := ParseBoard([]string{"........"})

		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Rejects an unknown mark", func(t *testing.T) {
		opening := NewBoard()
		rows := opening.Rows()
		rows[0] = "...?...."

		_, err := ParseBoard(rows)

		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Accepts X and O marks", func(t *testing.T) {
		opening := NewBoard()
		rows := opening.Rows()
		rows[3] = "...OX..."
		rows[4] = "...XO..."

		board, err := ParseBoard(rows)

		require.NoError(t, err)
		assert.Equal(t, NewBoard(), board)
	})
}

func TestClassify(t *testing.T) {
	assert.Equal(t, BlackWins, Classify(33, 31))
	assert.Equal(t, WhiteWins, Classify(10, 54))
	assert.Equal(t, Tie, Classify(20, 20))
	assert.Equal(t, Black, BlackWins.Leader())
	assert.Equal(t, Empty, Tie.Leader())
}
