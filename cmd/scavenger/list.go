package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkrajewski/tui-scavenger/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the games registered in this build.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	ids := registry.IDs()

	if len(ids) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, id := range ids {
		if len(id) > maxIDLen {
			maxIDLen = len(id)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, id := range ids {
		game, err := registry.Create(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game %q: %v\n", id, err)
			continue
		}
		fmt.Printf("  %-*s  %s\n", maxIDLen, id, game.Title())
	}

	fmt.Println()
	fmt.Println("Run 'scavenger play <id>' to play a game.")
}
