package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	ListIDs(ctx context.Context) ([]string, error)
}

// GameManager runs sessions stored in a gameRepo. Each mutating call loads the session,
// applies the change and stores it back; callers must not mutate one session concurrently.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	newID func() string
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		newID:    uuid.NewString,
	}
}

// NewGame - creates and stores a game on the opening position.
func (that *GameManager) NewGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(that.newID())

	if err := that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID)

	return game, nil
}

// RestoreGame - creates and stores a game from an arbitrary position.
func (that *GameManager) RestoreGame(ctx context.Context, board othello.Board, toMove othello.Color) (*entity.Game, error) {
	game, err := entity.RestoreGame(that.newID(), board, toMove)
	if err != nil {
		return nil, fmt.Errorf("failed to restore game: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game restored", "gameID", game.ID, "turn", game.Turn)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// CreatePlayer - registers name for color, replacing an earlier name for the same color.
func (that *GameManager) CreatePlayer(ctx context.Context, gameID, name string, color othello.Color) (*entity.Player, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	player, err := game.CreatePlayer(name, color)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	that.logger.Info("player registered", "gameID", game.ID, "color", color, "name", player.Name)

	return player, nil
}

func (that *GameManager) LegalMoves(ctx context.Context, gameID string, color othello.Color) ([]othello.Cell, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	moves, err := game.LegalMoves(color)
	if err != nil {
		return nil, fmt.Errorf("failed to list legal moves: %w", err)
	}

	return moves, nil
}

// MakeMove plays cell for color. A rejected move is not stored; the returned game is the
// unchanged session so the caller can report the current state.
func (that *GameManager) MakeMove(ctx context.Context, gameID string, color othello.Color, cell othello.Cell) (*entity.Game, *entity.MoveResult, error) {
	log := that.logger.With("method", "MakeMove", "gameID", gameID)

	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}

	result, err := game.AttemptMove(color, cell)
	if err != nil {
		log.Debug("move rejected", "color", color, "cell", cell.String(), "error", err)
		return game, nil, fmt.Errorf("failed make move: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, nil, fmt.Errorf("failed update game: %w", err)
	}

	log.Debug("move applied", "color", color, "cell", cell.String(), "flipped", len(result.Flipped))

	if result.Passed {
		log.Info("no legal move, turn passes back", "passed", color.Opponent(), "next", color)
	}

	if game.IsFinished() {
		black, white := game.Score()
		log.Info("Game is ended", "white", white, "black", black, "outcome", game.Outcome(true).String())
	}

	return game, result, nil
}

// Score - pieces of black and white on the session's board.
func (that *GameManager) Score(ctx context.Context, gameID string) (int, int, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return 0, 0, err
	}

	black, white := game.Score()

	return black, white, nil
}

// Outcome classifies the current score, with the winner phrasing when final is set.
func (that *GameManager) Outcome(ctx context.Context, gameID string, final bool) (entity.Outcome, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return entity.Outcome{}, err
	}

	return game.Outcome(final), nil
}

// ListGames - IDs of every stored session, sorted.
func (that *GameManager) ListGames(ctx context.Context) ([]string, error) {
	ids, err := that.gameRepo.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	sort.Strings(ids)

	return ids, nil
}

// EndGame - removes the session from the store.
func (that *GameManager) EndGame(ctx context.Context, gameID string) error {
	log := that.logger.With("method", "EndGame", "gameID", gameID)

	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	log.Info("game deleted")

	return nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
