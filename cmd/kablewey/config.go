package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kablewey/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Print the default game configuration to stdout.

Redirect it to a file, tweak the values, and pass it back with
'play --config' to experiment with the game balance.

Examples:
  kablewey config > my-kablewey.yaml
  kablewey play --config ./my-kablewey.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}
