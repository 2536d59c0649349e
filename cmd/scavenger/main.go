// scavenger runs Scrapyard City, a top-down scavenging shooter, in the
// terminal.
//
// Usage:
//
//	scavenger play            - Play the game
//	scavenger scores          - Show the high score table
//	scavenger serve           - Start SSH server for remote play
//	scavenger list            - List available games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.scavenger/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/dkrajewski/tui-scavenger/internal/games/scavenge"
)

const defaultGameID = "scavenge"

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
	Use:   "scavenger",
	Short: "Scrapyard City - a top-down scavenging shooter in your terminal",
	Long: `Scrapyard City drops you into a sprawling junk city full of hostile
scavengers. Loot weapons and food, steal cars, and survive as long as you can.

Available commands:
  play     - Play the game
  scores   - View high scores
  serve    - Start SSH server for remote play
  list     - Show available games

Examples:
  scavenger play
  scavenger play --seed 42
  scavenger serve --ssh :2222
  scavenger scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.scavenger/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
}
