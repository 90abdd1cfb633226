package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var flagShowLandings bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and landing stats",
	Long: `Display the top 10 high scores and aggregate landing statistics.

Examples:
  lander scores
  lander scores --landings`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagShowLandings, "landings", false, "Show recent landing history instead of scores")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'lander list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagShowLandings {
		printLandings(store, gameID, title)
		return
	}
	printScores(store, gameID, title)
}

func printScores(store *storage.Store, gameID, title string) {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'lander play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	printStats(store, gameID)
}

func printLandings(store *storage.Store, gameID, title string) {
	landings, err := store.RecentLandings(gameID, 20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving landings: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Landing History - %s\n", title)
	fmt.Println()

	if len(landings) == 0 {
		fmt.Println("No landings recorded yet.")
		return
	}

	fmt.Printf("  %-8s  %-7s  %-7s  %-7s  %-4s  %s\n", "Outcome", "Score", "Fuel", "Speed", "Pad", "Date")
	fmt.Printf("  %-8s  %-7s  %-7s  %-7s  %-4s  %s\n", "-------", "-----", "----", "-----", "---", "----")
	for _, l := range landings {
		pad := ""
		if l.PadLanding {
			pad = "yes"
		}
		fmt.Printf("  %-8s  %-7d  %-6.0f%%  %-7.1f  %-4s  %s\n",
			l.Outcome, l.Score, l.FuelRemaining, l.TouchdownSpeed, pad,
			l.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	printStats(store, gameID)
}

func printStats(store *storage.Store, gameID string) {
	stats, err := store.GetLandingStats(gameID)
	if err != nil || stats.Attempts == 0 {
		return
	}

	fmt.Printf("Descents: %d   Safe: %d (%.0f%%)   On pad: %d   Best: %d\n",
		stats.Attempts, stats.SafeCount, stats.SuccessRate*100, stats.PadCount, stats.BestScore)
}
