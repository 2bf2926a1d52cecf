package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/nr01")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 20, cfg.DBMaxIdleConns)
	assert.Equal(t, 150, cfg.DBMaxOpenConns)
	assert.Equal(t, 24*time.Hour, cfg.ProbabilityStateTTL)
	assert.Equal(t, 5*time.Minute, cfg.CompanyCacheTTL)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.UsesRedis())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/nr01")
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("PROBABILITY_STATE_TTL", "90m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.UsesRedis())
	assert.Equal(t, 90*time.Minute, cfg.ProbabilityStateTTL)
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}
