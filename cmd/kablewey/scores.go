package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kablewey/internal/game"
	"github.com/vovakirdan/kablewey/internal/platform/tui"
	"github.com/vovakirdan/kablewey/internal/storage"
)

var (
	flagInteractive bool
	flagStats       bool
	flagReset       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores.

Examples:
  kablewey scores
  kablewey scores --interactive
  kablewey scores --stats
  kablewey scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show aggregated play statistics")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) {
	g := game.New()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearScores(g.ID()); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All scores cleared.")
		return
	}

	if flagStats {
		stats, err := store.GetGameStats(g.ID())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Statistics - %s\n", g.Title())
		fmt.Println()
		if stats.GamesCount == 0 {
			fmt.Println("No games recorded yet.")
			return
		}
		fmt.Printf("  Games played:  %d\n", stats.GamesCount)
		fmt.Printf("  High score:    %d\n", stats.HighScore)
		fmt.Printf("  Average score: %.1f\n", stats.AvgScore)
		fmt.Printf("  Total score:   %d\n", stats.TotalScore)
		fmt.Printf("  Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		model := tui.NewScoreboardModel(store, g.ID(), g.Title(), width, height)
		if _, teaErr := tea.NewProgram(model, tea.WithAltScreen()).Run(); teaErr != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", teaErr)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(g.ID(), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", g.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'kablewey play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(g.ID()); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
