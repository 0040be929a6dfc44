package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/stackline/internal/factory"
	"github.com/mcoot/stackline/internal/testutil"
)

func TestFactoryConfigWarnsOnMemoryStorage(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "")
	logger, logs := testutil.CaptureLogger()

	cfg, err := factoryConfig(logger)
	require.NoError(t, err)
	assert.Empty(t, cfg.StorageType)
	assert.Nil(t, cfg.RedisConfig)
	assert.Contains(t, logs.String(), `"level":"WARN"`)
	assert.Contains(t, logs.String(), "STORAGE_TYPE=redis")
}

func TestFactoryConfigRedis(t *testing.T) {
	t.Setenv("STORAGE_TYPE", factory.StorageTypeRedis)
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	logger, logs := testutil.CaptureLogger()

	cfg, err := factoryConfig(logger)
	require.NoError(t, err)
	require.NotNil(t, cfg.RedisConfig)
	assert.Equal(t, "redis://localhost:6379/2", cfg.RedisConfig.URL)
	assert.Empty(t, logs.String())
}

func TestFactoryConfigRedisNeedsURL(t *testing.T) {
	t.Setenv("STORAGE_TYPE", factory.StorageTypeRedis)
	t.Setenv("REDIS_URL", "")

	_, err := factoryConfig(testutil.NopLogger())
	assert.ErrorContains(t, err, "REDIS_URL required")
}
