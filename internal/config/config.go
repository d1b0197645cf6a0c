// Package config provides YAML-based configuration loading and board
// presets for gemcrush.
package config

// GemcrushConfig contains all tunable parameters for a game session.
type GemcrushConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Animation AnimationConfig `yaml:"animation"`
}

// BoardConfig defines the board geometry and gem variety.
type BoardConfig struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	GemTypes int `yaml:"gem_types"`
}

// AnimationConfig defines per-frame playback delays in milliseconds.
// A zero value means the frame is shown without pause.
type AnimationConfig struct {
	SwapMs    int `yaml:"swap_ms"`
	RemoveMs  int `yaml:"remove_ms"`
	DropMs    int `yaml:"drop_ms"`
	FillMs    int `yaml:"fill_ms"`
	PreviewMs int `yaml:"preview_ms"`
	ShuffleMs int `yaml:"shuffle_ms"`
}

// BoardPreset names a predefined board geometry.
type BoardPreset string

const (
	PresetSmall   BoardPreset = "small"
	PresetClassic BoardPreset = "classic"
	PresetWide    BoardPreset = "wide"
)

// Presets lists the valid preset names in display order.
func Presets() []BoardPreset {
	return []BoardPreset{PresetSmall, PresetClassic, PresetWide}
}

// BoardForPreset returns the geometry for a named preset.
func BoardForPreset(preset BoardPreset) (BoardConfig, bool) {
	switch preset {
	case PresetSmall:
		return BoardConfig{Rows: 7, Cols: 7, GemTypes: 5}, true
	case PresetClassic:
		return BoardConfig{Rows: 9, Cols: 9, GemTypes: 6}, true
	case PresetWide:
		return BoardConfig{Rows: 9, Cols: 14, GemTypes: 6}, true
	default:
		return BoardConfig{}, false
	}
}

// ApplyPreset overwrites the board geometry with a named preset. Unknown
// presets leave the config untouched.
func ApplyPreset(cfg *GemcrushConfig, preset BoardPreset) {
	if board, ok := BoardForPreset(preset); ok {
		cfg.Board = board
	}
}
