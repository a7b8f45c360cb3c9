package main

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var configPath string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the admin user and sample portfolio content",
	Long: `seed writes initial data into the portfolio database.

  seed owner       create or reset the admin user from OWNER_EMAIL / OWNER_PASSWORD
  seed portfolio   replace all portfolio content with the bundled sample data`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory holding .env and config.yaml")
}
