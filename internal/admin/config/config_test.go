package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"admin"}, args...)
}

func TestLoad_Defaults(t *testing.T) {
	withArgs(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "local", cfg.Env)
	require.Equal(t, "http://216.250.10.105:8080", cfg.BaseURL)
	require.Equal(t, cfg.BaseURL, cfg.ImageBaseURL, "image base falls back to the API base")
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Empty(t, cfg.SessionFile)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	withArgs(t)
	t.Setenv("ADMIN_ENV", "prod")
	t.Setenv("ADMIN_BASE_URL", "https://api.example.com")
	t.Setenv("ADMIN_REQUEST_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "https://api.example.com", cfg.BaseURL)
	require.Equal(t, "https://api.example.com", cfg.ImageBaseURL)
	require.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestLoad_FlagsBeatEnvironment(t *testing.T) {
	withArgs(t, "-a", "https://flag.example.com", "-s", "/tmp/tok.json", "-e", "dev")
	t.Setenv("ADMIN_BASE_URL", "https://env.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://flag.example.com", cfg.BaseURL)
	require.Equal(t, "/tmp/tok.json", cfg.SessionFile)
	require.Equal(t, "dev", cfg.Env)
}

func TestLoad_SeparateImageBase(t *testing.T) {
	withArgs(t, "-img", "https://cdn.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com", cfg.ImageBaseURL)
	require.Equal(t, "http://216.250.10.105:8080", cfg.BaseURL)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin.env")
	require.NoError(t, os.WriteFile(path, []byte("ADMIN_BASE_URL=https://file.example.com\n"), 0o600))
	withArgs(t, "-c", path)
	// godotenv writes into the process environment; undo it so other
	// packages' tests see a clean slate.
	t.Cleanup(func() { os.Unsetenv("ADMIN_BASE_URL") })

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://file.example.com", cfg.BaseURL)
}
