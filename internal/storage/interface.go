package storage

import (
	"context"
	"time"

	"github.com/mcoot/stackline/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	GameExists(ctx context.Context, id model.GameID) (bool, error)
	ListGames(ctx context.Context) ([]model.GameID, error)

	// Placement log operations

	// AppendPlacement adds req to the log only while the log still holds
	// expected placements, and returns model.ErrPlacementConflict otherwise.
	AppendPlacement(ctx context.Context, id model.GameID, expected int, req model.PlacementRequest, at time.Time) error
	PlacementCount(ctx context.Context, id model.GameID) (int, error)
}
