package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/stackline/internal/engine"
	"github.com/mcoot/stackline/internal/model"
	"github.com/mcoot/stackline/internal/storage"
)

// Service keeps live engine boards for persisted games.
// A cached board is trusted only while its piece count matches the stored
// placement log; otherwise it is rebuilt by replaying the log.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.Mutex
	boards map[model.GameID]*engine.Board
}

// New creates a new board Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "board-service")),
		boards:  make(map[model.GameID]*engine.Board),
	}
}

// CreateBoard builds the empty board for a new game and caches it
func (s *Service) CreateBoard(gameID model.GameID, cfg model.BoardConfig) error {
	b, err := engine.New(cfg)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards[gameID] = b
	return nil
}

// maxPlaceAttempts bounds how often Place replays the log after losing an
// append race to another writer
const maxPlaceAttempts = 3

// Place drops a piece on the game's board and appends it to the stored log.
// Placement is refused once the board has a winner. If another writer extends
// the log first, the move is retried against the rebuilt board.
func (s *Service) Place(ctx context.Context, gameID model.GameID, req model.PlacementRequest, at time.Time) (model.Piece, model.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for attempt := 1; ; attempt++ {
		piece, status, err := s.place(ctx, gameID, req, at)
		if !errors.Is(err, model.ErrPlacementConflict) || attempt == maxPlaceAttempts {
			return piece, status, err
		}
		s.logger.Debug("placement log moved, retrying",
			slog.String("game_id", string(gameID)),
			slog.Int("attempt", attempt))
	}
}

// place makes one attempt at Place. Caller holds s.mu.
func (s *Service) place(ctx context.Context, gameID model.GameID, req model.PlacementRequest, at time.Time) (model.Piece, model.Status, error) {
	b, err := s.open(ctx, gameID)
	if err != nil {
		return model.Piece{}, model.Status{}, err
	}
	if b.Status().HasWinner() {
		return model.Piece{}, b.Status(), model.ErrGameComplete
	}

	expected := b.Len()
	piece, err := b.Place(req)
	if err != nil {
		return model.Piece{}, model.Status{}, err
	}

	if err := s.storage.AppendPlacement(ctx, gameID, expected, req, at); err != nil {
		// The board now holds a move the log does not
		delete(s.boards, gameID)
		if !errors.Is(err, model.ErrPlacementConflict) {
			s.logger.Error("failed to persist placement",
				slog.String("game_id", string(gameID)),
				slog.String("error", err.Error()))
		}
		return model.Piece{}, model.Status{}, err
	}

	return piece, b.Status(), nil
}

// View runs fn against the game's current board. fn must not keep the board.
func (s *Service) View(ctx context.Context, gameID model.GameID, fn func(b *engine.Board) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.open(ctx, gameID)
	if err != nil {
		return err
	}
	return fn(b)
}

// GetPiece returns the piece at (x, y, z)
func (s *Service) GetPiece(ctx context.Context, gameID model.GameID, x, y, z int) (model.Piece, bool, error) {
	var (
		piece model.Piece
		found bool
	)
	err := s.View(ctx, gameID, func(b *engine.Board) error {
		var err error
		piece, found, err = b.Get(x, y, z)
		return err
	})
	return piece, found, err
}

// TopPiece returns the highest piece in column (x, y). A column off the board
// is reported as empty.
func (s *Service) TopPiece(ctx context.Context, gameID model.GameID, x, y int) (model.Piece, bool, error) {
	var (
		piece model.Piece
		found bool
	)
	err := s.View(ctx, gameID, func(b *engine.Board) error {
		piece, found = b.Top(x, y)
		return nil
	})
	return piece, found, err
}

// Snapshot dumps the game's board
func (s *Service) Snapshot(ctx context.Context, gameID model.GameID) (engine.Snapshot, error) {
	var snap engine.Snapshot
	err := s.View(ctx, gameID, func(b *engine.Board) error {
		snap = b.Snapshot()
		return nil
	})
	return snap, err
}

// Status returns the status recorded after the last placement
func (s *Service) Status(ctx context.Context, gameID model.GameID) (model.Status, error) {
	var status model.Status
	err := s.View(ctx, gameID, func(b *engine.Board) error {
		status = b.Status()
		return nil
	})
	return status, err
}

// Rescan runs a full-history win scan on the game's board
func (s *Service) Rescan(ctx context.Context, gameID model.GameID) (model.Status, error) {
	var status model.Status
	err := s.View(ctx, gameID, func(b *engine.Board) error {
		status = b.Rescan()
		return nil
	})
	return status, err
}

// Forget drops the cached board for a game
func (s *Service) Forget(gameID model.GameID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.boards, gameID)
}

// open returns a board in step with storage. Caller holds s.mu.
func (s *Service) open(ctx context.Context, gameID model.GameID) (*engine.Board, error) {
	count, err := s.storage.PlacementCount(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if b, ok := s.boards[gameID]; ok && b.Len() == count {
		return b, nil
	}

	game, err := s.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	b, err := engine.Load(game.Config, game.Placements)
	if err != nil {
		return nil, fmt.Errorf("loading game %s: %w", gameID, err)
	}
	s.boards[gameID] = b

	s.logger.Debug("board rebuilt from placement log",
		slog.String("game_id", string(gameID)),
		slog.Int("placements", b.Len()))

	return b, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateBoard(gameID model.GameID, cfg model.BoardConfig) error
	Place(ctx context.Context, gameID model.GameID, req model.PlacementRequest, at time.Time) (model.Piece, model.Status, error)
	View(ctx context.Context, gameID model.GameID, fn func(b *engine.Board) error) error
	GetPiece(ctx context.Context, gameID model.GameID, x, y, z int) (model.Piece, bool, error)
	TopPiece(ctx context.Context, gameID model.GameID, x, y int) (model.Piece, bool, error)
	Snapshot(ctx context.Context, gameID model.GameID) (engine.Snapshot, error)
	Status(ctx context.Context, gameID model.GameID) (model.Status, error)
	Rescan(ctx context.Context, gameID model.GameID) (model.Status, error)
	Forget(gameID model.GameID)
}

var _ ServiceInterface = (*Service)(nil)
