package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemcrush/internal/config"
	"github.com/vovakirdan/gemcrush/internal/engine"
	"github.com/vovakirdan/gemcrush/internal/storage"
)

var (
	flagSimMoves   int
	flagSimPreset  string
	flagSimSave    bool
	flagSimVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless scripted game",
	Long: `Play a game without a terminal UI: the first legal move is taken
repeatedly and the resulting scores are logged. Useful for checking that
a seed replays deterministically and for rough scoring statistics.

Examples:
  gemcrush simulate --moves 100
  gemcrush simulate --seed 12345 --moves 50 --verbose
  gemcrush simulate --preset wide --save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimMoves, "moves", 100, "Number of moves to play")
	simulateCmd.Flags().StringVar(&flagSimPreset, "preset", string(config.PresetClassic), "Board preset: small, classic, wide")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the result in the scores database")
	simulateCmd.Flags().BoolVar(&flagSimVerbose, "verbose", false, "Log every move")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gemcrush-sim",
	})

	preset := config.BoardPreset(flagSimPreset)
	board, ok := config.BoardForPreset(preset)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown preset %q (valid: small, classic, wide)\n", flagSimPreset)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	eng := engine.New(engine.Config{
		Rows:     board.Rows,
		Cols:     board.Cols,
		GemTypes: board.GemTypes,
		Seed:     seed,
	})
	eng.GenerateInitialBoard()

	logger.Info("starting simulation",
		"preset", preset,
		"seed", seed,
		"moves", flagSimMoves,
	)

	start := time.Now()
	score, moves, bestCombo := 0, 0, 0
	frames := 0

	for i := 0; i < flagSimMoves; i++ {
		a, b, ok := eng.FindValidMove()
		if !ok {
			// Swap recovery runs inside the engine, so a deadlock here
			// means even the reshuffle could not produce a move.
			logger.Warn("no legal move found, stopping", "move", i)
			break
		}

		res := eng.Swap(a, b)
		score += res.Points
		frames += len(res.Frames)
		if res.Valid {
			moves++
		}

		for _, f := range res.Frames {
			if rf, isRemoval := f.(engine.RemovalFrame); isRemoval {
				if rf.Score.Combo > bestCombo {
					bestCombo = rf.Score.Combo
				}
			}
		}

		if flagSimVerbose {
			logger.Info("move played",
				"move", i+1,
				"from", a,
				"to", b,
				"points", res.Points,
				"frames", len(res.Frames),
			)
		}
	}

	snap := eng.Snapshot()
	logger.Info("simulation finished",
		"score", score,
		"moves", moves,
		"best_combo", bestCombo,
		"frames", frames,
		"board", fmt.Sprintf("%dx%d", snap.Cols, snap.Rows),
		"elapsed", time.Since(start),
	)

	if flagSimSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Error("could not open scores database", "error", err)
			os.Exit(1)
		}
		defer store.Close()

		if _, err := store.SaveGame(storage.GameRecord{
			Preset:    string(preset),
			Score:     score,
			Moves:     moves,
			BestCombo: bestCombo,
			Seed:      seed,
		}); err != nil {
			logger.Error("could not save game", "error", err)
			os.Exit(1)
		}
		logger.Info("result saved", "preset", preset)
	}
}
