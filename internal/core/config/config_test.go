package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_ENV", "LOG_LEVEL", "SERVER_PORT", "DATA_SOURCE", "OCEARCH_URL",
	"HTTP_TIMEOUT_SECONDS", "REFRESH_INTERVAL_SECONDS", "AUTO_REFRESH",
	"MOCK_SHARKS_DELAY_MS", "MOCK_PINGS_DELAY_MS", "REDIS_URL", "REDIS_SEED",
	"LOCATION_PERMISSION", "PROXY_ENABLED", "PROXY_HOSTNAME", "PROXY_PORT",
}

func unsetAll() {
	for _, key := range configKeys {
		os.Unsetenv(key)
	}
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	unsetAll()

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "mock", cfg.DataSource.Kind)
	assert.Equal(t, "https://www.ocearch.org/api/v1/", cfg.DataSource.OcearchURL)
	assert.Equal(t, 10*time.Second, cfg.DataSource.HTTPTimeout())
	assert.Equal(t, 1000, cfg.DataSource.MockSharksDelayMS)
	assert.Equal(t, 1500, cfg.DataSource.MockPingsDelayMS)
	assert.Equal(t, 30*time.Second, cfg.Tracking.RefreshInterval())
	assert.True(t, cfg.Tracking.AutoRefresh)
	assert.False(t, cfg.Redis.Seed)
	assert.Equal(t, "prompt-granted", cfg.Surfaces.LocationPermission)
	assert.False(t, cfg.Proxy.Settings().HasProxy())
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	unsetAll()
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("DATA_SOURCE", "api")
	os.Setenv("OCEARCH_URL", "https://ocearch.test/api/v1/")
	os.Setenv("REFRESH_INTERVAL_SECONDS", "5")
	os.Setenv("AUTO_REFRESH", "false")
	os.Setenv("PROXY_ENABLED", "true")
	os.Setenv("PROXY_HOSTNAME", "proxy.test")
	os.Setenv("PROXY_PORT", "3128")
	defer unsetAll()

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "api", cfg.DataSource.Kind)
	assert.Equal(t, "https://ocearch.test/api/v1/", cfg.DataSource.OcearchURL)
	assert.Equal(t, 5*time.Second, cfg.Tracking.RefreshInterval())
	assert.False(t, cfg.Tracking.AutoRefresh)
	assert.Equal(t, "http://proxy.test:3128", cfg.Proxy.Settings().HostPort())
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	unsetAll()
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
DATA_SOURCE=redis
REDIS_URL=redis://cache.test:6379/1
REDIS_SEED=true
LOCATION_PERMISSION=denied
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "redis", cfg.DataSource.Kind)
	assert.Equal(t, "redis://cache.test:6379/1", cfg.Redis.URL)
	assert.True(t, cfg.Redis.Seed)
	assert.Equal(t, "denied", cfg.Surfaces.LocationPermission)
}

// TestLoad_ValidationFailure verifies that values outside the allowed set return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	unsetAll()
	os.Setenv("DATA_SOURCE", "carrier-pigeon")
	defer unsetAll()

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid configuration")
}

// TestLoad_InvalidInterval verifies that a non-positive refresh interval is rejected.
func TestLoad_InvalidInterval(t *testing.T) {
	unsetAll()
	os.Setenv("REFRESH_INTERVAL_SECONDS", "0")
	defer unsetAll()

	_, err := Load(".")
	require.Error(t, err)
}

func TestValidateRequired(t *testing.T) {
	cfg := &AppConfig{}
	err := validateRequired(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required configuration: DATA_SOURCE")
}
