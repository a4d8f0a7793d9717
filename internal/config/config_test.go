package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8990, cfg.Server.Port)
	require.Equal(t, "sqlite", cfg.Store.Driver)
	require.Equal(t, 2*time.Second, cfg.Sync.SaveDelay)
	require.Equal(t, "info", cfg.Log.Level)
	require.Empty(t, cfg.Remote.URL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FOUNDER_SERVER_PORT", "9001")
	t.Setenv("FOUNDER_REMOTE_URL", "http://store.example.com")
	t.Setenv("FOUNDER_STORE_DRIVER", "postgres")
	t.Setenv("FOUNDER_DATABASE_URL", "postgres://localhost/founder")
	t.Setenv("FOUNDER_SAVE_DELAY", "5s")
	t.Setenv("FOUNDER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9001, cfg.Server.Port)
	require.Equal(t, "http://store.example.com", cfg.Remote.URL)
	require.Equal(t, "postgres", cfg.Store.Driver)
	require.Equal(t, "postgres://localhost/founder", cfg.Store.DatabaseURL)
	require.Equal(t, 5*time.Second, cfg.Sync.SaveDelay)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidEnvValues(t *testing.T) {
	t.Setenv("FOUNDER_SERVER_PORT", "not-a-port")
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidSaveDelay(t *testing.T) {
	t.Setenv("FOUNDER_SAVE_DELAY", "soon")
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  host: 127.0.0.1
  port: 9100
remote:
  url: http://localhost:9100
sync:
  save_delay: 3s
`), 0o644))
	t.Setenv("FOUNDER_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 9100, cfg.Server.Port)
	require.Equal(t, "http://localhost:9100", cfg.Remote.URL)
	require.Equal(t, 3*time.Second, cfg.Sync.SaveDelay)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9100\n"), 0o644))
	t.Setenv("FOUNDER_CONFIG_PATH", path)
	t.Setenv("FOUNDER_SERVER_PORT", "9200")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9200, cfg.Server.Port)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("FOUNDER_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Load()
	require.Error(t, err)
}
