package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mcoot/stackline/internal/factory"
	redisstorage "github.com/mcoot/stackline/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	Storage   string
	RedisURL  string
	ServerURL string
	Output    string
	Verbose   bool
	Seed      uint64
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Storage:   getEnvOrDefault("STACKLINE_STORAGE", factory.StorageTypeMemory),
		RedisURL:  getEnvOrDefault("STACKLINE_REDIS_URL", redisstorage.DefaultConfig().URL),
		ServerURL: getEnvOrDefault("STACKLINE_SERVER", "http://localhost:8080"),
		Output:    "text",
		Verbose:   false,
	}
}

// Validate checks the flag values that cobra cannot
func (c *Config) Validate() error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	switch c.Storage {
	case factory.StorageTypeMemory, factory.StorageTypeRedis:
	default:
		return fmt.Errorf("invalid storage %q: must be memory or redis", c.Storage)
	}
	return nil
}

// Logger returns the logger for local commands, writing JSON to w.
// Only warnings are shown unless verbose is set.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// FactoryConfig builds the application config for the selected storage
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	fc := factory.Config{
		Logger:      logger,
		StorageType: c.Storage,
		RandomSeed:  c.Seed,
	}
	if c.Storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
