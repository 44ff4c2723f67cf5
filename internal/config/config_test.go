package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTrackConfig_Defaults(t *testing.T) {
	t.Setenv("FIREBIRD_PROJECT_ID", "")
	t.Setenv("FIREBIRD_API_URL", "")
	t.Setenv("FIREBIRD_API_VERSION", "")
	t.Setenv("REQUEST_TIMEOUT", "")

	cfg, err := LoadTrackConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8090", cfg.APIURL)
	assert.Equal(t, "v1", cfg.APIVersion)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Error(t, cfg.Validate())
}

func TestLoadTrackConfig_FromEnv(t *testing.T) {
	t.Setenv("FIREBIRD_PROJECT_ID", "p1")
	t.Setenv("FIREBIRD_API_URL", "https://api.example.com/")
	t.Setenv("FIREBIRD_API_VERSION", "v2")
	t.Setenv("REQUEST_TIMEOUT", "3")

	cfg, err := LoadTrackConfig()
	require.NoError(t, err)
	assert.Equal(t, "p1", cfg.ProjectID)
	assert.Equal(t, "https://api.example.com/", cfg.APIURL)
	assert.Equal(t, "v2", cfg.APIVersion)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoadReceiverConfig(t *testing.T) {
	t.Setenv("RECEIVER_ADDR", "")
	t.Setenv("ALLOWED_PROJECT_IDS", " p1, ,p2 ")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_DB", "")

	cfg, err := LoadReceiverConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8090", cfg.ServerAddr)
	assert.Equal(t, []string{"p1", "p2"}, cfg.AllowedProjectIDs)
	assert.Nil(t, cfg.Redis)

	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "6380")
	cfg, err = LoadReceiverConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg.Redis)
	assert.Equal(t, 6380, cfg.Redis.Port)

	t.Setenv("REDIS_PORT", "abc")
	_, err = LoadReceiverConfig()
	assert.Error(t, err)
}
