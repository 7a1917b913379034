package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"MEDEDU_BACKEND", "MEDEDU_DATA", "MEDEDU_TICK"} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "json", cfg.Backend)
	assert.Equal(t, time.Second, cfg.Tick)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MEDEDU_BACKEND", "sqlite")
	t.Setenv("MEDEDU_DATA", "/tmp/study.db")
	t.Setenv("MEDEDU_TICK", "1m")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, "/tmp/study.db", cfg.DataPath)
	assert.Equal(t, time.Minute, cfg.Tick)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"unknown backend", "MEDEDU_BACKEND", "postgres"},
		{"unparsable tick", "MEDEDU_TICK", "soon"},
		{"zero tick", "MEDEDU_TICK", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("MEDEDU_TICK")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MEDEDU_TICK=250ms\n"), 0o644))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Tick)
}

func TestLoadWithoutDotEnv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	_, err := Load()
	require.NoError(t, err)
}

func TestResolveDataPath(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.DataPath = filepath.Join(dir, "nested", "doc.json")
	p, err := cfg.ResolveDataPath()
	require.NoError(t, err)
	assert.Equal(t, cfg.DataPath, p)
	assert.DirExists(t, filepath.Join(dir, "nested"))

	t.Setenv("XDG_DATA_HOME", dir)
	cfg.DataPath = ""
	p, err = cfg.ResolveDataPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mededu", "mededu_data.json"), p)
}

func TestResolveDataPathFromEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("MEDEDU_DATA", filepath.Join(dir, "custom", "data.json"))

	cfg, err := FromEnv()
	require.NoError(t, err)
	p, err := cfg.ResolveDataPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom", "data.json"), p)
	assert.DirExists(t, filepath.Join(dir, "custom"))
}
