package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/othello-backend/internal/config"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

var ErrQuit = errors.New("quit requested")

type uGame interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)

	CreatePlayer(ctx context.Context, gameID, name string, color othello.Color) (*entity.Player, error)
	LegalMoves(ctx context.Context, gameID string, color othello.Color) ([]othello.Cell, error)
	MakeMove(ctx context.Context, gameID string, color othello.Color, cell othello.Cell) (*entity.Game, *entity.MoveResult, error)
	Score(ctx context.Context, gameID string) (int, int, error)
	Outcome(ctx context.Context, gameID string, final bool) (entity.Outcome, error)
	ListGames(ctx context.Context) ([]string, error)

	EndGame(ctx context.Context, gameID string) error
}

type handlerFunc func(ctx context.Context, args []string, out *printer) error

type Server struct {
	logger *slog.Logger
	uGame  uGame

	players   config.Players
	hideMoves bool
	render    *renderer

	gameID   string
	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame, conf *config.Config) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,

		players:   conf.Players,
		hideMoves: conf.Console.HideMoves,
		render:    newRenderer(!conf.Console.Plain),

		handlers: make(map[string]handlerFunc),
	}

	server.handlers["new"] = server.handleNewGame
	server.handlers["player"] = server.handleCreatePlayer
	server.handlers["moves"] = server.handleLegalMoves
	server.handlers["move"] = server.handleMove
	server.handlers["board"] = server.handleBoard
	server.handlers["score"] = server.handleScore
	server.handlers["outcome"] = server.handleOutcome
	server.handlers["history"] = server.handleHistory
	server.handlers["games"] = server.handleListGames
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit

	return server
}

// Run - starts a game and processes commands from in until EOF, "quit" or ctx is done.
func (that *Server) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Run")

	p := &printer{w: out}

	if err := that.handleNewGame(ctx, nil, p); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			that.endGame(context.WithoutCancel(ctx))
			return nil
		}

		p.prompt()
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		handler, ok := that.handlers[strings.ToLower(fields[0])]
		if !ok {
			p.println("Unknown command:", fields[0], "(type help)")
			continue
		}

		err := handler(ctx, fields[1:], p)
		if errors.Is(err, ErrQuit) {
			break
		}

		if err != nil {
			log.Error("error processing command", "command", fields[0], "error", err)
			p.println("Error:", err)
		}

		if p.err != nil {
			return fmt.Errorf("failed to write output: %w", p.err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	that.endGame(ctx)

	return p.err
}

func (that *Server) endGame(ctx context.Context) {
	if that.gameID == "" {
		return
	}

	if err := that.uGame.EndGame(ctx, that.gameID); err != nil {
		that.logger.Error("failed to end game", "gameID", that.gameID, "error", err)
	}

	that.gameID = ""
}

// printer keeps the first write error so handlers can print without checking every line.
type printer struct {
	w   io.Writer
	err error
}

func (that *printer) println(args ...any) {
	if that.err != nil {
		return
	}

	_, that.err = fmt.Fprintln(that.w, args...)
}

func (that *printer) printf(format string, args ...any) {
	if that.err != nil {
		return
	}

	_, that.err = fmt.Fprintf(that.w, format, args...)
}

func (that *printer) prompt() {
	that.printf("> ")
}
