// Package commands implements the CLI commands for lonascrape.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "lonascrape",
	Short: "Scrape the LONAB results page into a single JSON report",
	Long: `lonascrape fetches the LONAB results page once, locates result
elements through a cascade of selector strategies, and prints one line
of compact JSON on stdout describing what was extracted.

It is designed to be invoked periodically by an external orchestrator
(n8n, cron): exit code 0 means a successful extraction, 1 anything
else. Diagnostics go to stderr and are not part of the contract.

Examples:
  # Default run against www.lonab.bf
  lonascrape

  # Render the page in a headless browser first
  lonascrape --fetch-mode dynamic

  # Keep a pretty copy of the report next to the compact stdout line
  lonascrape --save report.yaml --save-format yaml`,
	RunE:          runScrape,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.lonascrape.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".lonascrape")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("LONASCRAPE")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
