package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAndResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"size": 256, "frames": 12}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 256, cfg.Size)
	require.Equal(t, 12, cfg.Frames)

	cfg.Resolve(Flags{Size: 128, OutputDir: "out"})
	require.Equal(t, 128, cfg.Size) // flag wins
	require.Equal(t, "out", cfg.OutputDir)
	require.Equal(t, 2, cfg.Supersample) // default filled in
	require.Positive(t, cfg.Workers)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does-not-exist.json")
	require.Error(t, err)
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{nope`), 0644))
	_, err := Load(path)
	require.Error(t, err)
}
