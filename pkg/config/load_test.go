package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 30*time.Minute, cfg.Feed.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.Feed.HTTPTimeout)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.NotEmpty(t, cfg.Feed.PrimaryURL)
	assert.NotEmpty(t, cfg.Feed.FallbackURL)
	assert.NotEqual(t, cfg.Feed.PrimaryURL, cfg.Feed.FallbackURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FEED_CACHE_TTL", "45m")
	t.Setenv("FEED_PRIMARY_URL", "http://primary.test/v1")
	t.Setenv("CACHE_BACKEND", "redis")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 45*time.Minute, cfg.Feed.CacheTTL)
	assert.Equal(t, "http://primary.test/v1", cfg.Feed.PrimaryURL)
	assert.Equal(t, "redis", cfg.Cache.Backend)
}
