package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkrajewski/tui-scavenger/internal/core"
	"github.com/dkrajewski/tui-scavenger/internal/platform/tui"
	"github.com/dkrajewski/tui-scavenger/internal/registry"
	"github.com/dkrajewski/tui-scavenger/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without an argument the main game is launched.

Controls:
  WASD/Arrows  - Move (hold Shift to sprint)
  Mouse        - Aim, left click to use the selected item
  E            - Pick up a ground item
  G            - Drop the selected item
  F            - Enter/exit a vehicle
  1-9 / Wheel  - Select inventory slot
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  scavenger play
  scavenger play --seed 42
  scavenger play --config ./my-scavenge.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'scavenger list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
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

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if flagConfig != "" {
		if configurable, ok := game.(interface{ SetConfigPath(string) }); ok {
			configurable.SetConfigPath(flagConfig)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
