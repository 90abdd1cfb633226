package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/games/lander"
	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Fly a descent",
	Long: `Start a descent. Without an argument the lander is flown.

Controls:
  W/Up       - Full thrust
  Space      - Half thrust
  A/Left     - Rotate left
  D/Right    - Rotate right
  P          - Pause
  R          - Restart at any time
  B/Esc      - Mission log (after touchdown or while paused)
  Q/Ctrl+C   - Quit

Difficulty presets:
  easy   - More fuel, gentler gravity, wider and more pads
  normal - The stock moon
  hard   - Less fuel, heavier gravity, fewer and narrower pads

Examples:
  lander play
  lander play --difficulty easy
  lander play --seed 42
  lander play --config ./my-moon.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'lander list' to see available games.")
		os.Exit(1)
	}

	// Terminal size for the initial screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation, and reject a bad
	// config here rather than mid-flight.
	lander.SetConfigPath(flagConfig)
	lander.SetDifficultyPreset(flagDifficulty)
	if _, err := lander.LoadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// The session flow owns game creation so the mission log can hand the
	// player back into a fresh descent.
	runErr := tui.Run(store, cfg, gameID)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
