package config

import (
	_ "embed"
)

//go:embed defaults/gemcrush.yaml
var defaultGemcrushYAML []byte

// Default returns the default gemcrush configuration.
func Default() GemcrushConfig {
	return GemcrushConfig{
		Board: BoardConfig{
			Rows:     9,
			Cols:     9,
			GemTypes: 6,
		},
		Animation: AnimationConfig{
			SwapMs:    120,
			RemoveMs:  180,
			DropMs:    120,
			FillMs:    100,
			PreviewMs: 150,
			ShuffleMs: 300,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGemcrushYAML
}
