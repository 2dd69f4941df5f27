// Package cmd implements the CLI commands for inspection-pricing.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "inspection-pricing",
	Short: "Price vehicle services from inspection results",
	Long: "An API-first service that prices detailing and repair services from vehicle " +
		"inspection results, shop settings, customer loyalty, and local market conditions.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
