package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ANKADASH_API_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
	assert.Equal(t, "all", cfg.General.DefaultMonth)
	assert.Equal(t, "slate-dark", cfg.Appearance.Theme)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ANKADASH_API_URL", "")

	cfg := DefaultConfig()
	cfg.API.BaseURL = "https://api.office.example/api"
	cfg.General.DefaultMonth = "03"
	cfg.General.Offline = true
	require.NoError(t, Save(cfg))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_EnvOverridesBaseURL(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ANKADASH_API_URL", "http://staging:8000/api")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://staging:8000/api", cfg.API.BaseURL)
}

func TestSession_SaveTokenClear(t *testing.T) {
	t.Setenv("ANKADASH_TOKEN", "")
	s := SessionAt(filepath.Join(t.TempDir(), "session"))

	assert.Empty(t, s.Token(), "no file means not logged in")

	require.NoError(t, s.Save("jwt-abc"))
	assert.Equal(t, "jwt-abc", s.Token())

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())
	require.NoError(t, s.Clear(), "clearing twice is fine")
}

func TestSession_EnvWins(t *testing.T) {
	s := SessionAt(filepath.Join(t.TempDir(), "session"))
	require.NoError(t, s.Save("from-file"))

	t.Setenv("ANKADASH_TOKEN", "from-env")
	assert.Equal(t, "from-env", s.Token())
}

func TestSession_FilePermissions(t *testing.T) {
	t.Setenv("ANKADASH_TOKEN", "")
	path := filepath.Join(t.TempDir(), "session")
	require.NoError(t, SessionAt(path).Save("tok"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
