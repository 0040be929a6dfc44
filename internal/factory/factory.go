package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/stackline/internal/dependencies/clock"
	"github.com/mcoot/stackline/internal/dependencies/random"
	"github.com/mcoot/stackline/internal/events"
	"github.com/mcoot/stackline/internal/services/board"
	"github.com/mcoot/stackline/internal/services/bot"
	"github.com/mcoot/stackline/internal/services/game"
	"github.com/mcoot/stackline/internal/sse"
	"github.com/mcoot/stackline/internal/storage"
	"github.com/mcoot/stackline/internal/storage/memory"
	redisstorage "github.com/mcoot/stackline/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	// Services
	BoardService   *board.Service
	GameController *game.Controller
	BotService     *bot.Service

	// Event delivery. EventBus is nil unless storage is Redis.
	HubManager  *sse.HubManager
	Broadcaster *sse.Broadcaster
	EventBus    *redisstorage.EventBus
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// RandomSeed, if non-zero, makes generated IDs and bot moves reproducible
	RandomSeed uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	var (
		store storage.Storage
		bus   *redisstorage.EventBus
	)
	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		bus = redisstorage.NewEventBus(redisStore.Client(), logger)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	var rnd random.Random = random.New()
	if cfg.RandomSeed != 0 {
		rnd = random.NewSeeded(cfg.RandomSeed)
	}

	return newWithDependencies(store, bus, clock.New(), rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, bus *redisstorage.EventBus, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)

	// With a shared bus, local hubs are fed by the relay so every process sees
	// the same stream
	var publisher events.Publisher = broadcaster
	if bus != nil {
		publisher = bus
	}

	boardService := board.New(store, logger)
	gameController := game.NewController(store, boardService, publisher, clk, rnd, logger)
	botService := bot.NewService(gameController, boardService, bot.DefaultStrategies(rnd), logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Logger:         logger,
		BoardService:   boardService,
		GameController: gameController,
		BotService:     botService,
		HubManager:     hubManager,
		Broadcaster:    broadcaster,
		EventBus:       bus,
	}
}

// RunRelay feeds events from the shared bus into the local SSE hubs until
// ctx is done. Without a bus it returns immediately.
func (a *App) RunRelay(ctx context.Context, ready chan<- struct{}) error {
	if a.EventBus == nil {
		if ready != nil {
			close(ready)
		}
		return nil
	}
	return a.EventBus.Relay(ctx, a.Broadcaster, ready)
}

// Close shuts down event hubs and releases the storage connection
func (a *App) Close() error {
	a.HubManager.CloseAll()
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
