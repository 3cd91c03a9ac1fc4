// snake is a terminal snake arcade with power-ups, particles, and three
// game modes.
//
// Usage:
//
//	snake list               - List available game modes
//	snake play <mode>        - Play a mode directly
//	snake menu               - Interactive mode picker
//	snake scores <mode>      - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.snake-evolution/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register its modes
	_ "github.com/vovakirdan/snake-evolution/internal/snake"
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
	Use:   "snake",
	Short: "Snake Evolution - a power-up driven snake arcade for your terminal",
	Long: `Snake Evolution is a terminal snake game with growing power-ups,
particle effects, and three distinct game modes.

Modes:
  classic      - Endless play, speed ramps with your score
  time_attack  - Score as much as possible in 60 seconds
  survival     - Obstacles spawn at an accelerating pace

Examples:
  snake list
  snake play classic
  snake play survival --difficulty hard
  snake menu
  snake scores time_attack`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake-evolution/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
