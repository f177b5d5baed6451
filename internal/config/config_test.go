package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := []byte("douyin:\n  base_url: http://127.0.0.1:9000\n  timeout: 5\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	cfg, err := ParseConfig(path)
	require.NoError(t, err)

	require.Equal(t, "http://127.0.0.1:9000", cfg.Douyin.BaseURL)
	require.Equal(t, "/api/apps/v1/video_bc/query/", cfg.Douyin.QueryPath)
	require.Equal(t, 5*time.Second, cfg.Douyin.Timeout())
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "placeholder", cfg.Douyin.TokenKind)
	require.False(t, cfg.Snapshots.Enabled)
}

func TestParseConfig_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("DOUYIN_TIMEOUT", "12")
	t.Setenv("HTTP_LISTEN_ADDR", ":9999")

	cfg, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	require.Equal(t, 12*time.Second, cfg.Douyin.Timeout())
	require.Equal(t, ":9999", cfg.HTTP.ListenAddr)
	require.Equal(t, "https://open.douyin.com", cfg.Douyin.BaseURL)
}

func TestParseConfig_DefaultTimeoutIs30s(t *testing.T) {
	cfg, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, 30*time.Second, cfg.Douyin.Timeout())
}

func TestParseConfig_RejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("DOUYIN_TIMEOUT", "0")

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
