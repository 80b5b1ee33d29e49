package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "agenthub", cfg.MongoDatabase)
	assert.Equal(t, 5*time.Second, cfg.CatalogTimeout)
	assert.Equal(t, 2*time.Second, cfg.HistoryTimeout)
	assert.Equal(t, uint32(5), cfg.BreakerMaxFailures)
	assert.True(t, cfg.StatsSinkEnabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("PORT", "9090")
	t.Setenv("HISTORY_TIMEOUT", "750ms")
	t.Setenv("RATE_LIMIT_RPS", "12.5")
	t.Setenv("STATS_SINK_ENABLED", "false")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 750*time.Millisecond, cfg.HistoryTimeout)
	assert.Equal(t, 12.5, cfg.RateLimitRPS)
	assert.False(t, cfg.StatsSinkEnabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins())
}

func TestLoadRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_URI")
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	cfg.MongoURI = "mongodb://localhost"
	require.NoError(t, cfg.Validate())

	cfg.HistoryTimeout = 0
	cfg.BreakerMaxFailures = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeouts")
	assert.Contains(t, err.Error(), "BREAKER_MAX_FAILURES")
}
