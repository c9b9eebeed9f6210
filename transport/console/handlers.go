package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

const helpText = `Commands:
  new                          start a new game
  player <color> <name...>     register a player for black or white
  moves [color]                list the legal moves of a color
  move [color] <row> <col>     place a piece, rows and columns are 0-7
  board                        print the board
  score                        print the piece count
  outcome                      print who is winning
  history                      print the moves played so far
  games                        list the stored games, * marks the current one
  help                         print this text
  quit                         leave`

func (that *Server) handleNewGame(ctx context.Context, _ []string, out *printer) error {
	that.endGame(ctx)

	game, err := that.uGame.NewGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	that.gameID = game.ID

	for _, player := range []struct {
		color othello.Color
		name  string
	}{
		{othello.Black, that.players.Black},
		{othello.White, that.players.White},
	} {
		if player.name == "" {
			continue
		}

		if _, err = that.uGame.CreatePlayer(ctx, game.ID, player.name, player.color); err != nil {
			return fmt.Errorf("failed to create player: %w", err)
		}
	}

	out.println(that.render.notice("New game started"))
	that.showTurn(out, game)

	return nil
}

func (that *Server) handleCreatePlayer(ctx context.Context, args []string, out *printer) error {
	if len(args) < 2 {
		out.println("Usage: player <color> <name...>")
		return nil
	}

	color, ok := that.parseColor(args[0], out)
	if !ok {
		return nil
	}

	player, err := that.uGame.CreatePlayer(ctx, that.gameID, strings.Join(args[1:], " "), color)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}

	out.printf("%s player: %s\n", that.render.color(player.Color), player.Name)

	return nil
}

func (that *Server) handleLegalMoves(ctx context.Context, args []string, out *printer) error {
	game, err := that.uGame.GetGame(ctx, that.gameID)
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	color := game.Turn.Color()
	if len(args) > 0 {
		var ok bool
		if color, ok = that.parseColor(args[0], out); !ok {
			return nil
		}
	}

	if color == othello.Empty {
		out.println("The game is over; no more moves can be made")
		return nil
	}

	moves, err := that.uGame.LegalMoves(ctx, that.gameID, color)
	if err != nil {
		return fmt.Errorf("failed to list moves: %w", err)
	}

	out.printf("Valid moves for %s: %s\n", that.render.color(color), formatCells(moves))

	return nil
}

func (that *Server) handleMove(ctx context.Context, args []string, out *printer) error {
	var color othello.Color

	switch len(args) {
	case 2:
		game, err := that.uGame.GetGame(ctx, that.gameID)
		if err != nil {
			return fmt.Errorf("failed to get game: %w", err)
		}
		if game.IsFinished() {
			out.println(that.render.warn("The game is over; no more moves can be made"))
			return nil
		}
		color = game.Turn.Color()
	case 3:
		var ok bool
		if color, ok = that.parseColor(args[0], out); !ok {
			return nil
		}
		args = args[1:]
	default:
		out.println("Usage: move [color] <row> <col>")
		return nil
	}

	row, errRow := strconv.Atoi(args[0])
	col, errCol := strconv.Atoi(args[1])
	if errRow != nil || errCol != nil {
		out.println(that.render.warn("Row and column must be integers"))
		return nil
	}

	game, result, err := that.uGame.MakeMove(ctx, that.gameID, color, othello.Cell{Row: row, Col: col})
	if err != nil {
		return that.sendMoveError(err, game, out)
	}

	out.printf("%s plays %s, %d flipped\n", that.render.color(color), othello.Cell{Row: row, Col: col}, len(result.Flipped))

	if result.Passed {
		out.println(that.render.notice(fmt.Sprintf("%s has no legal move, %s plays again", color.Opponent(), color)))
	}

	that.showTurn(out, game)

	return nil
}

func (that *Server) handleBoard(ctx context.Context, _ []string, out *printer) error {
	game, err := that.uGame.GetGame(ctx, that.gameID)
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	out.printf("%s", that.render.board(game.Board, that.hints(game)))

	return nil
}

func (that *Server) handleScore(ctx context.Context, _ []string, out *printer) error {
	black, white, err := that.uGame.Score(ctx, that.gameID)
	if err != nil {
		return fmt.Errorf("failed to get score: %w", err)
	}

	out.printf("%s: %d %s: %d\n", that.render.color(othello.Black), black, that.render.color(othello.White), white)

	return nil
}

func (that *Server) handleOutcome(ctx context.Context, _ []string, out *printer) error {
	game, err := that.uGame.GetGame(ctx, that.gameID)
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	outcome, err := that.uGame.Outcome(ctx, that.gameID, game.IsFinished())
	if err != nil {
		return fmt.Errorf("failed to get outcome: %w", err)
	}

	out.println(outcome.String())

	return nil
}

func (that *Server) handleHistory(ctx context.Context, _ []string, out *printer) error {
	game, err := that.uGame.GetGame(ctx, that.gameID)
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	if len(game.Moves) == 0 {
		out.println("No moves yet")
		return nil
	}

	for i, move := range game.Moves {
		out.printf("%d. %s %s, %d flipped\n", i+1, that.render.color(move.Color), move.Cell, move.Flipped)
	}

	return nil
}

func (that *Server) handleListGames(ctx context.Context, _ []string, out *printer) error {
	ids, err := that.uGame.ListGames(ctx)
	if err != nil {
		return fmt.Errorf("failed to list games: %w", err)
	}

	for _, id := range ids {
		if id == that.gameID {
			out.println("*", id)
			continue
		}
		out.println(" ", id)
	}

	return nil
}

func (that *Server) handleHelp(_ context.Context, _ []string, out *printer) error {
	out.println(helpText)
	return nil
}

func (that *Server) handleQuit(_ context.Context, _ []string, out *printer) error {
	out.println("Bye")
	return ErrQuit
}

// sendMoveError reports a refused move to the player. Errors the player cannot fix are returned.
func (that *Server) sendMoveError(err error, game *entity.Game, out *printer) error {
	var invalid *entity.InvalidMoveError

	switch {
	case errors.As(err, &invalid):
		out.println(that.render.warn("Invalid move"))
		out.println("Here are the valid moves:", formatCells(invalid.Legal))
	case errors.Is(err, apperror.ErrGameFinished):
		out.println(that.render.warn("The game is over; no more moves can be made"))
	case errors.Is(err, apperror.ErrNotYourTurn):
		out.printf("%s It is %s's turn\n", that.render.warn("Not your turn."), that.render.color(game.Turn.Color()))
	default:
		return fmt.Errorf("failed to make move: %w", err)
	}

	return nil
}

func (that *Server) showTurn(out *printer, game *entity.Game) {
	out.printf("%s", that.render.board(game.Board, that.hints(game)))

	if game.IsFinished() {
		black, white := game.Score()
		out.println(that.render.notice(fmt.Sprintf("Game is ended white piece: %d black piece: %d", white, black)))
		out.println(game.Outcome(true).String())

		return
	}

	mover := game.Turn.Color()
	text := that.render.color(mover) + " to move"
	if player := game.PlayerFor(mover); player != nil && player.Name != "" {
		text += " (" + player.Name + ")"
	}

	out.println(text)
}

func (that *Server) hints(game *entity.Game) []othello.Cell {
	if that.hideMoves || game.IsFinished() {
		return nil
	}

	return game.Board.LegalMoves(game.Turn.Color())
}

func (that *Server) parseColor(s string, out *printer) (othello.Color, bool) {
	color, err := othello.ParseColor(s)
	if err != nil {
		out.printf("%s %q, use black or white\n", that.render.warn("Unknown color"), s)
		return othello.Empty, false
	}

	return color, true
}

func formatCells(cells []othello.Cell) string {
	parts := make([]string, 0, len(cells))
	for _, cell := range cells {
		parts = append(parts, cell.String())
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
