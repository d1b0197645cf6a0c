package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default().Board, cfg.Board)
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("board:\n  rows: 7\n  cols: 12\n  gem_types: 5\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, BoardConfig{Rows: 7, Cols: 12, GemTypes: 5}, cfg.Board)
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, err := Load("/nonexistent/gemcrush.yaml")
	require.Error(t, err)
}

func TestLoadMalformedCustomPathFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: ["), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestBoardForPreset(t *testing.T) {
	tests := []struct {
		preset BoardPreset
		want   BoardConfig
		ok     bool
	}{
		{PresetSmall, BoardConfig{Rows: 7, Cols: 7, GemTypes: 5}, true},
		{PresetClassic, BoardConfig{Rows: 9, Cols: 9, GemTypes: 6}, true},
		{PresetWide, BoardConfig{Rows: 9, Cols: 14, GemTypes: 6}, true},
		{BoardPreset("huge"), BoardConfig{}, false},
	}
	for _, tt := range tests {
		got, ok := BoardForPreset(tt.preset)
		require.Equal(t, tt.ok, ok, "preset %q", tt.preset)
		require.Equal(t, tt.want, got, "preset %q", tt.preset)
	}
}

func TestApplyPresetIgnoresUnknown(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, BoardPreset("bogus"))
	require.Equal(t, Default().Board, cfg.Board)

	ApplyPreset(&cfg, PresetWide)
	require.Equal(t, 14, cfg.Board.Cols)
}
