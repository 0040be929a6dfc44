package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/stackline/internal/dependencies/clock"
	"github.com/mcoot/stackline/internal/dependencies/random"
	"github.com/mcoot/stackline/internal/engine"
	"github.com/mcoot/stackline/internal/events"
	"github.com/mcoot/stackline/internal/model"
	"github.com/mcoot/stackline/internal/services/board"
	"github.com/mcoot/stackline/internal/storage"
)

const (
	// GameIDAlphabet is the character set for generated game IDs
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// GameIDLength is the length of generated game IDs
	GameIDLength = 12
)

// PlaceResult is the outcome of one placement
type PlaceResult struct {
	Piece  model.Piece  `json:"piece"`
	Status model.Status `json:"status"`
}

// Controller manages game records and routes placements to their boards
type Controller struct {
	storage      storage.Storage
	boardService *board.Service
	publisher    events.Publisher
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	publisher events.Publisher,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Controller{
		storage:      storage,
		boardService: boardService,
		publisher:    publisher,
		clock:        clock,
		random:       random,
		logger:       logger,
	}
}

// CreateGame starts an empty board. An empty id picks a random one.
func (c *Controller) CreateGame(ctx context.Context, id model.GameID, cfg model.BoardConfig) (*model.Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if id == "" {
		id = model.GameID(c.random.String(GameIDLength, GameIDAlphabet))
	}

	exists, err := c.storage.GameExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", model.ErrGameExists, id)
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:        id,
		Config:    cfg,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Build the board first so a record is only stored for a board that exists
	if err := c.boardService.CreateBoard(id, cfg); err != nil {
		return nil, err
	}
	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.boardService.Forget(id)
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(id)),
		slog.Int("xrad", cfg.XRad),
		slog.Int("yrad", cfg.YRad),
		slog.Int("max_height", cfg.MaxHeight),
		slog.Int("win_len", cfg.WinLen),
	)

	c.publish(ctx, model.Event{Type: model.EventGameCreated, Timestamp: now, GameID: id})
	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// ListGames returns every stored game ordered by ID
func (c *Controller) ListGames(ctx context.Context) ([]*model.Game, error) {
	ids, err := c.storage.ListGames(ctx)
	if err != nil {
		return nil, err
	}

	games := make([]*model.Game, 0, len(ids))
	for _, id := range ids {
		game, err := c.storage.GetGame(ctx, id)
		if errors.Is(err, model.ErrGameNotFound) {
			// Deleted or expired since listing
			continue
		}
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, nil
}

// DeleteGame removes a game and its cached board
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	exists, err := c.storage.GameExists(ctx, gameID)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrGameNotFound
	}

	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}
	c.boardService.Forget(gameID)

	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// PlacePiece drops a piece for req.Side into column (req.X, req.Y)
func (c *Controller) PlacePiece(ctx context.Context, gameID model.GameID, req model.PlacementRequest) (*PlaceResult, error) {
	now := c.clock.Now()

	piece, status, err := c.boardService.Place(ctx, gameID, req, now)
	if err != nil {
		c.logger.Debug("placement rejected",
			slog.String("game_id", string(gameID)),
			slog.String("side", req.Side.String()),
			slog.Int("x", req.X),
			slog.Int("y", req.Y),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	z, _ := piece.Z()
	c.logger.Info("piece placed",
		slog.String("game_id", string(gameID)),
		slog.String("side", piece.Side.String()),
		slog.Int("x", piece.X),
		slog.Int("y", piece.Y),
		slog.Int("z", z),
		slog.Int64("piece_id", int64(piece.ID)),
	)
	c.publish(ctx, model.NewPiecePlacedEvent(gameID, piece, now))

	if winner, ok := status.Winner(); ok {
		c.logger.Info("line found",
			slog.String("game_id", string(gameID)),
			slog.String("winner", winner.String()),
			slog.Int("length", len(status.Line)),
		)
		c.publish(ctx, model.NewLineFoundEvent(gameID, piece, status, now))
	}

	return &PlaceResult{Piece: piece, Status: status}, nil
}

// Snapshot dumps a game's board
func (c *Controller) Snapshot(ctx context.Context, gameID model.GameID) (engine.Snapshot, error) {
	return c.boardService.Snapshot(ctx, gameID)
}

// GetPiece returns the piece at (x, y, z)
func (c *Controller) GetPiece(ctx context.Context, gameID model.GameID, x, y, z int) (model.Piece, bool, error) {
	return c.boardService.GetPiece(ctx, gameID, x, y, z)
}

// TopPiece returns the highest piece in column (x, y)
func (c *Controller) TopPiece(ctx context.Context, gameID model.GameID, x, y int) (model.Piece, bool, error) {
	return c.boardService.TopPiece(ctx, gameID, x, y)
}

// Status returns the status recorded after the last placement
func (c *Controller) Status(ctx context.Context, gameID model.GameID) (model.Status, error) {
	return c.boardService.Status(ctx, gameID)
}

// Rescan checks the whole board for a line, including lines the per-move
// scan cannot see after an out-of-order load
func (c *Controller) Rescan(ctx context.Context, gameID model.GameID) (model.Status, error) {
	return c.boardService.Rescan(ctx, gameID)
}

// publish delivers an event; delivery failures never fail the game operation
func (c *Controller) publish(ctx context.Context, event model.Event) {
	if err := c.publisher.Publish(ctx, event); err != nil {
		c.logger.Warn("failed to publish event",
			slog.String("game_id", string(event.GameID)),
			slog.String("type", string(event.Type)),
			slog.String("error", err.Error()),
		)
	}
}

// ControllerInterface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, id model.GameID, cfg model.BoardConfig) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
	DeleteGame(ctx context.Context, gameID model.GameID) error
	PlacePiece(ctx context.Context, gameID model.GameID, req model.PlacementRequest) (*PlaceResult, error)
	Snapshot(ctx context.Context, gameID model.GameID) (engine.Snapshot, error)
	GetPiece(ctx context.Context, gameID model.GameID, x, y, z int) (model.Piece, bool, error)
	TopPiece(ctx context.Context, gameID model.GameID, x, y int) (model.Piece, bool, error)
	Status(ctx context.Context, gameID model.GameID) (model.Status, error)
	Rescan(ctx context.Context, gameID model.GameID) (model.Status, error)
}

var _ ControllerInterface = (*Controller)(nil)
