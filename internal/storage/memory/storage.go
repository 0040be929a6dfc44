package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/mcoot/stackline/internal/model"
	"github.com/mcoot/stackline/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	games map[model.GameID]*model.Game
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games: make(map[model.GameID]*model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = cloneGame(game)
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return cloneGame(game), nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

func (s *Storage) GameExists(ctx context.Context, id model.GameID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.games[id]
	return ok, nil
}

func (s *Storage) ListGames(ctx context.Context) ([]model.GameID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]model.GameID, 0, len(s.games))
	for id := range s.games {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// Placement log operations

func (s *Storage) AppendPlacement(ctx context.Context, id model.GameID, expected int, req model.PlacementRequest, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[id]
	if !ok {
		return model.ErrGameNotFound
	}
	if len(game.Placements) != expected {
		return model.ErrPlacementConflict
	}
	game.Placements = append(game.Placements, req)
	game.UpdatedAt = at
	return nil
}

func (s *Storage) PlacementCount(ctx context.Context, id model.GameID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return 0, model.ErrGameNotFound
	}
	return len(game.Placements), nil
}

// cloneGame copies the placement log so callers never share it with the store
func cloneGame(game *model.Game) *model.Game {
	c := *game
	c.Placements = slices.Clone(game.Placements)
	return &c
}
