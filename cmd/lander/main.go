// lander is a terminal Lunar Lander: fly a fuel-limited descent onto
// procedurally generated terrain, locally or over SSH.
//
// Usage:
//
//	lander play              - Fly a descent
//	lander scores            - Show high scores and landing history
//	lander serve             - Start SSH server for remote play
//	lander list              - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible terrain and flight
//	--db <path>     - Set database path (default: ~/.lander/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-lander/internal/games/lander"
)

// defaultGameID is used when no game is named on the command line.
const defaultGameID = "lander"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "Lunar Lander - Fly a descent in your terminal",
	Long: `Lunar Lander drops you above procedurally generated terrain with a
limited fuel tank. Kill your speed, level the craft and put both legs
down gently. Flat pads pay a bonus.

Available commands:
  play     - Fly a descent
  scores   - View high scores and landing history
  serve    - Start SSH server for remote play
  list     - Show registered games

Examples:
  lander play
  lander play --difficulty hard
  lander play --seed 42
  lander serve --ssh :2222
  lander scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lander/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
}
