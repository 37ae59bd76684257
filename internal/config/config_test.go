package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "http://localhost:8096", cfg.Emby.URL)
	assert.Equal(t, 5*time.Second, cfg.Refresh.Processing)
	assert.Equal(t, 30*time.Second, cfg.Refresh.Status)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: "8099"
logging:
  level: debug
  format: console
emby:
  url: http://emby.lan:8096
  token: file-token
refresh:
  processing: 2s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8099", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "http://emby.lan:8096", cfg.Emby.URL)
	assert.Equal(t, "file-token", cfg.Emby.Token)
	assert.Equal(t, 2*time.Second, cfg.Refresh.Processing)
	// Unset file values keep their defaults.
	assert.Equal(t, 30*time.Second, cfg.Refresh.Status)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("emby:\n  token: file-token\n"), 0o644))

	t.Setenv("EMBY_API_KEY", "env-token")
	t.Setenv("STATUS_REFRESH_INTERVAL", "45s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Emby.Token)
	assert.Equal(t, 45*time.Second, cfg.Refresh.Status)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("emby: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	// Default config has no token.
	assert.Error(t, cfg.Validate())

	cfg.Emby.Token = "abc123"
	assert.NoError(t, cfg.Validate())

	cfg.Emby.URL = "  "
	assert.Error(t, cfg.Validate())
}
