package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.GetServerAddr())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "geoapify", cfg.Providers.Default)
	assert.False(t, cfg.Providers.Strict)
	assert.Equal(t, 10*time.Second, cfg.Providers.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Geoapify.RequestTimeout)
	assert.Equal(t, "https://api.geoapify.com/v1/geocode/search", cfg.Geoapify.GeocodeURL)
	assert.Equal(t, "https://api.geoapify.com/v2/places", cfg.Geoapify.PlacesURL)
	assert.Equal(t, "*", cfg.CORS.AllowOrigins)
}

func TestLoadFile_FromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_PORT=8081\nLOG_LEVEL=debug\nGEOAPIFY_API_KEY=geo-key\nZOMATO_API_KEY=zomato-key\nGOOGLE_API_KEY=google-key\nPROVIDER_REQUEST_TIMEOUT=3\nPROVIDER_STRICT=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "geo-key", cfg.Geoapify.APIKey)
	assert.Equal(t, "zomato-key", cfg.Providers.ZomatoAPIKey)
	assert.Equal(t, "google-key", cfg.Providers.GoogleAPIKey)
	assert.Equal(t, 3*time.Second, cfg.Geoapify.RequestTimeout)
	assert.True(t, cfg.Providers.Strict)
}

func TestLoadFile_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GEOAPIFY_API_KEY=from-file\n"), 0o600))
	t.Setenv("GEOAPIFY_API_KEY", "from-env")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Geoapify.APIKey)
}
