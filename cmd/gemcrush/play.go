package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemcrush/internal/config"
	"github.com/vovakirdan/gemcrush/internal/storage"
	"github.com/vovakirdan/gemcrush/internal/tui"
)

var flagPlayPreset string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play gemcrush",
	Long: `Start a game in the local terminal.

Controls:
  Arrows/WASD  - Move the cursor
  Enter/Space  - Select a gem, then press a direction to swap it
  Esc          - Cancel selection
  R            - Start a new game
  Q/Ctrl+C     - Quit (the finished game is recorded)

Board presets:
  small   - 7x7 board, 5 gem colors
  classic - 9x9 board, 6 gem colors
  wide    - 9x14 board, 6 gem colors

Examples:
  gemcrush play
  gemcrush play --preset small
  gemcrush play --seed 12345
  gemcrush play --config ./my-gemcrush.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayPreset, "preset", string(config.PresetClassic), "Board preset: small, classic, wide")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	preset := config.BoardPreset(flagPlayPreset)
	if _, ok := config.BoardForPreset(preset); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown preset %q (valid: small, classic, wide)\n", flagPlayPreset)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg, preset)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(store, cfg, string(preset), flagSeed)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
