package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"PORT", "RECIPEBOX_ADDR", "RECIPEBOX_RECIPES_DIR", "RECIPEBOX_STORE", "GOOGLE_CLOUD_PROJECT", "RECIPEBOX_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "dir", cfg.Store.Kind)
	assert.Equal(t, 500, cfg.ImageHeight)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Addr, cfg.Addr)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "recipebox.yaml")

	cfg := DefaultConfig()
	cfg.Addr = ":9000"
	cfg.RecipesDir = "data"
	cfg.Addressing = "hash"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", loaded.Addr)
	assert.Equal(t, "hash", loaded.Addressing)
	assert.Equal(t, filepath.Join(dir, "data"), loaded.RecipesDir)
}

func TestConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "recipebox.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\nstore:\n  kind: dir\n"), 0o644))

	t.Run("PORT sets addr", func(t *testing.T) {
		t.Setenv("PORT", "7070")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ":7070", cfg.Addr)
	})

	t.Run("RECIPEBOX_ADDR wins over PORT", func(t *testing.T) {
		t.Setenv("PORT", "7070")
		t.Setenv("RECIPEBOX_ADDR", "127.0.0.1:6060")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:6060", cfg.Addr)
	})

	t.Run("firestore store from env", func(t *testing.T) {
		t.Setenv("RECIPEBOX_STORE", "firestore")
		t.Setenv("GOOGLE_CLOUD_PROJECT", "recipes-123")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "firestore", cfg.Store.Kind)
		assert.Equal(t, "recipes-123", cfg.Store.ProjectID)
	})
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store.Kind = "firestore"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Store.Kind = "postgres"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.ImageHeight = 0
	assert.Error(t, cfg.Validate())
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
