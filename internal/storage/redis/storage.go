package redis

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/stackline/internal/model"
	"github.com/mcoot/stackline/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Game metadata is a JSON string; the placement log is a LIST so appends never
// rewrite earlier moves.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Client returns the underlying client, shared with the event bus
func (s *Storage) Client() *redis.Client {
	return s.client
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	meta := *game
	meta.Placements = nil
	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}

	moves, err := encodePlacements(game.Placements)
	if err != nil {
		return err
	}

	pKey := placementsKey(game.ID)

	// Replace metadata and the whole log atomically
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, gameKey(game.ID), data, s.cfg.GameTTL)
	pipe.Del(ctx, pKey)
	if len(moves) > 0 {
		pipe.RPush(ctx, pKey, moves...)
		s.expire(ctx, pipe, pKey)
	}
	pipe.SAdd(ctx, gamesIndexKey(), string(game.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	game, err := getMeta(ctx, s.client, id)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.LRange(ctx, placementsKey(id), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	game.Placements = make([]model.PlacementRequest, 0, len(raw))
	for _, item := range raw {
		var req model.PlacementRequest
		if err := json.Unmarshal([]byte(item), &req); err != nil {
			return nil, err
		}
		game.Placements = append(game.Placements, req)
	}
	return game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, gameKey(id), placementsKey(id))
	pipe.SRem(ctx, gamesIndexKey(), string(id))
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) GameExists(ctx context.Context, id model.GameID) (bool, error) {
	exists, err := s.client.Exists(ctx, gameKey(id)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *Storage) ListGames(ctx context.Context) ([]model.GameID, error) {
	members, err := s.client.SMembers(ctx, gamesIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(members) == 0 {
		return []model.GameID{}, nil
	}

	// The index outlives expired games, so check each one
	pipe := s.client.Pipeline()
	checks := make([]*redis.IntCmd, len(members))
	for i, m := range members {
		checks[i] = pipe.Exists(ctx, gameKey(model.GameID(m)))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	ids := make([]model.GameID, 0, len(members))
	for i, m := range members {
		if checks[i].Val() > 0 {
			ids = append(ids, model.GameID(m))
		}
	}
	slices.Sort(ids)
	return ids, nil
}

// Placement log operations

// AppendPlacement watches the log so a writer that appended after the length
// check aborts the transaction instead of stacking a second move on it.
func (s *Storage) AppendPlacement(ctx context.Context, id model.GameID, expected int, req model.PlacementRequest, at time.Time) error {
	move, err := json.Marshal(req)
	if err != nil {
		return err
	}

	gKey := gameKey(id)
	pKey := placementsKey(id)

	err = s.client.Watch(ctx, func(tx *redis.Tx) error {
		game, err := getMeta(ctx, tx, id)
		if err != nil {
			return err
		}
		n, err := tx.LLen(ctx, pKey).Result()
		if err != nil {
			return err
		}
		if int(n) != expected {
			return model.ErrPlacementConflict
		}

		game.UpdatedAt = at
		data, err := json.Marshal(game)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, gKey, data, s.cfg.GameTTL)
			pipe.RPush(ctx, pKey, string(move))
			s.expire(ctx, pipe, pKey)
			return nil
		})
		return err
	}, gKey, pKey)
	if errors.Is(err, redis.TxFailedErr) {
		return model.ErrPlacementConflict
	}
	return err
}

func (s *Storage) PlacementCount(ctx context.Context, id model.GameID) (int, error) {
	exists, err := s.GameExists(ctx, id)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, model.ErrGameNotFound
	}

	n, err := s.client.LLen(ctx, placementsKey(id)).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// getter is satisfied by both the client and a watched transaction
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func getMeta(ctx context.Context, c getter, id model.GameID) (*model.Game, error) {
	data, err := c.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// expire keeps the log TTL in sync with the metadata. EXPIRE 0 would delete
// the key, so it is skipped when games do not expire.
func (s *Storage) expire(ctx context.Context, pipe redis.Pipeliner, key string) {
	if s.cfg.GameTTL > 0 {
		pipe.Expire(ctx, key, s.cfg.GameTTL)
	}
}

func encodePlacements(placements []model.PlacementRequest) ([]interface{}, error) {
	moves := make([]interface{}, len(placements))
	for i, req := range placements {
		data, err := json.Marshal(req)
		if err != nil {
			return nil, err
		}
		moves[i] = string(data)
	}
	return moves, nil
}
