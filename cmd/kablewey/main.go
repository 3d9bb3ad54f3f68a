// kablewey is a terminal catch-the-missile arcade game.
//
// An alien paces along the top of the screen lobbing projectiles at you.
// Catch the green ones for points; the red ones end your run.
//
// Usage:
//
//	kablewey play             - Play the game
//	kablewey scores           - Show high scores
//	kablewey serve            - Start SSH server for remote play
//	kablewey config           - Print the default configuration YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.kablewey/scores.db)
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
	Use:   "kablewey",
	Short: "Kablewey - Catch the missiles in your terminal",
	Long: `Kablewey is a terminal arcade game. An alien paces overhead and
fires projectiles at you. Catch the harmless green ones to score;
one red hit and the game is over.

Available commands:
  play     - Play the game
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default configuration YAML

Examples:
  kablewey play
  kablewey play --seed 42
  kablewey scores
  kablewey serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.kablewey/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
