package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "agrofocus", cfg.AppName)
	assert.Equal(t, "0.0.0.0:4000", cfg.Address())
	assert.Equal(t, "*", cfg.HTTP.AllowedOrigin)
	assert.Equal(t, "http://localhost:4000", cfg.API.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.API.ReadTimeout)
	assert.Equal(t, StorageBolt, cfg.Storage.Driver)
	assert.Equal(t, "plaintext", cfg.Auth.Verifier)
	assert.Equal(t, 30*time.Second, cfg.Dashboard.RefreshInterval)
}

func TestDefaultClientIDIsStableAcrossLoads(t *testing.T) {
	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "default", first.Storage.ClientID)
	assert.Equal(t, first.Storage.ClientID, second.Storage.ClientID)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("API_BASE_URL", "http://api.local:9090/")
	t.Setenv("API_READ_TIMEOUT", "750ms")
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SERVER_ENABLE_METRICS", "true")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "7")
	t.Setenv("AUTH_VERIFIER", "BCRYPT")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "http://api.local:9090", cfg.API.BaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.API.ReadTimeout)
	assert.Equal(t, StorageRedis, cfg.Storage.Driver)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.True(t, cfg.HTTP.EnableMetrics)
	assert.Equal(t, 7*time.Second, cfg.Context.RequestTimeout)
	assert.Equal(t, "bcrypt", cfg.Auth.Verifier)
}

func TestLoadIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("REDIS_DB", "three")
	t.Setenv("SERVER_ENABLE_METRICS", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.False(t, cfg.HTTP.EnableMetrics)
}

func TestLoadRejectsUnknownStorageDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	_, err := Load()
	assert.Error(t, err)
}
