// gemcrush is a terminal match-3 puzzle game.
//
// Usage:
//
//	gemcrush play             - Play in the local terminal
//	gemcrush scores           - Show high scores
//	gemcrush serve            - Start SSH server for remote play
//	gemcrush simulate         - Run a headless scripted game
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.gemcrush/scores.db)
//	--config <path> - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   uint64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gemcrush",
	Short: "Gemcrush - match-3 gem crushing in your terminal",
	Long: `Gemcrush is a terminal match-3 puzzle game. Swap adjacent gems to
line up three or more of a color, chain cascades for multiplied scores,
and earn special gems from bigger matches.

Available commands:
  play     - Play in the local terminal
  scores   - View high scores
  serve    - Start SSH server for remote play
  simulate - Run a headless scripted game

Examples:
  gemcrush play
  gemcrush play --preset wide
  gemcrush play --seed 12345
  gemcrush scores --board
  gemcrush serve --ssh :2222
  gemcrush simulate --moves 100`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gemcrush/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}
