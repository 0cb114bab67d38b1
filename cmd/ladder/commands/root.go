package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	paramsFile string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ladder",
	Short: "Ladder - division strength rankings for amateur sports teams",
	Long: `Ladder CLI

Turns sparse, noisy match-result data into deterministic strength rankings
per competitive division.

Usage:
  go run ./cmd/ladder [command]

Examples:
  go run ./cmd/ladder rank --as-of 2024-06-01
  go run ./cmd/ladder api
  go run ./cmd/ladder scheduler start`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&paramsFile, "params", "", "ranking parameters file (default from RANKING_PARAMS_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
