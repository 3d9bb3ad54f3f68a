package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kablewey/internal/audio"
	"github.com/vovakirdan/kablewey/internal/core"
	"github.com/vovakirdan/kablewey/internal/game"
	"github.com/vovakirdan/kablewey/internal/platform/tui"
	"github.com/vovakirdan/kablewey/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  P          - Pause
  M          - Toggle sound
  R          - Restart (after game over)
  Q/Esc      - Quit

Examples:
  kablewey play
  kablewey play --seed 42
  kablewey play --mute
  kablewey play --config ./my-kablewey.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Start from defaults, then adopt the real terminal size
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	game.SetConfigPath(flagConfig)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Set up sound; --mute starts silent but M can unmute in-game
	sounds := audio.NewPlayer()
	if audioErr := sounds.Initialize(); audioErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound unavailable: %v\n", audioErr)
	}
	sounds.SetMuted(flagMute)

	// Run the game
	runErr := tui.Run(game.New(), store, sounds, cfg)

	sounds.Cleanup()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
