// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var configPath string // directory holding main.toml

var rootCmd = &cobra.Command{
	Use:   "feedback-collector",
	Short: "feedback-collector collects user feedback and shows it to an administrator",
	Long: `feedback-collector serves a public feedback form and an admin area
with rating statistics, the list of all submissions and a CSV export.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./etc/", "directory containing main.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
