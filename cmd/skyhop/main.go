// skyhop is a side-scrolling arcade game played in the terminal.
//
// Usage:
//
//	skyhop play      - Play the game
//	skyhop scores    - Show recorded high scores
//	skyhop serve     - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.skyhop/scores.db)
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
	Use:   "skyhop",
	Short: "Sky Hopper - a terminal side-scroller",
	Long: `Sky Hopper is a terminal arcade game. Keep the hopper airborne,
thread the gaps between obstacles, and chase the high score.

Available commands:
  play     - Play the game
  scores   - View recorded high scores
  serve    - Start SSH server for remote play

Examples:
  skyhop play
  skyhop play --difficulty hard
  skyhop scores --interactive
  skyhop serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyhop/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
