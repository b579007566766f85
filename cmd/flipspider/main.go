// flipspider is a terminal arcade game: vault a spider through gaps in
// scrolling obstacle towers by throwing webs upward.
//
// Usage:
//
//	flipspider play          - Play in the current terminal
//	flipspider best          - Show the persisted best score
//	flipspider serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.flipspider/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

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
	Use:   "flipspider",
	Short: "Flipspider - vault the gaps, one web throw at a time",
	Long: `Flipspider is a terminal arcade game. A spider hangs above the floor
and throws webs to vault upward through gaps in scrolling obstacle towers.
Each cleared tower scores a point; every thirty points the world re-themes
itself and the backdrop music shifts tempo.

Available commands:
  play     - Play in the current terminal
  best     - Show the persisted best score
  serve    - Start SSH server for remote play

Examples:
  flipspider play
  flipspider play --difficulty hard --mute
  flipspider best
  flipspider serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flipspider/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(serveCmd)
}
