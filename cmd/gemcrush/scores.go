package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gemcrush/internal/config"
	"github.com/vovakirdan/gemcrush/internal/storage"
	"github.com/vovakirdan/gemcrush/internal/tui"
)

var (
	flagScoresPreset string
	flagScoresBoard  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 recorded games for a board preset.

With --board, opens the interactive scoreboard instead, where presets
can be switched with Tab.

Examples:
  gemcrush scores
  gemcrush scores --preset wide
  gemcrush scores --board`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPreset, "preset", string(config.PresetClassic), "Board preset: small, classic, wide")
	scoresCmd.Flags().BoolVar(&flagScoresBoard, "board", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, _ []string) {
	preset := config.BoardPreset(flagScoresPreset)
	if _, ok := config.BoardForPreset(preset); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown preset %q (valid: small, classic, wide)\n", flagScoresPreset)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresBoard {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	games, err := store.TopGames(string(preset), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", preset)
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'gemcrush play --preset %s' to set the first high score!\n", preset)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Moves", "Combo", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, g := range games {
		dateStr := g.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  x%-5d  %s\n", i+1, g.Score, g.Moves, g.BestCombo, dateStr)
	}

	fmt.Println()
	stats, err := store.PresetStats(string(preset))
	if err == nil {
		fmt.Printf("Games: %d   Best: %d   Average: %.0f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
}
