package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flipspider/internal/storage"
)

var flagClearBest bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the persisted best score",
	Long: `Display the best score recorded across all runs on this machine.

Examples:
  flipspider best
  flipspider best --clear`,
	Run: runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagClearBest, "clear", false, "Delete the recorded best score")
}

func runBest(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearBest {
		if err := store.Clear(storage.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing best score: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Best score cleared.")
		return
	}

	best, err := store.Best(storage.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best score: %v\n", err)
		os.Exit(1)
	}

	if best == 0 {
		fmt.Println("No score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flipspider play' to set the first one!")
		return
	}

	fmt.Printf("Best: %d\n", best)
}
