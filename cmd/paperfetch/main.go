// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperfetch CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperfetch/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when it is set and the .secrets/ value for
// key otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the paperfetch CLI.
var rootCmd = &cobra.Command{
	Use:   "paperfetch",
	Short: "Fetch academic paper listings into CSV reports",
	Long: `paperfetch queries an academic paper source for a search term and writes the
results as a CSV report. One run is one pass: pick a source, hand it a query,
parse what comes back, and write the rows.

Sources include the PubMed, arXiv, and OpenAlex APIs and a Google Scholar
page scrape; list them with the sources subcommand.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperfetch.yaml or ~/.config/paperfetch/config.yaml)")
}

func initConfig() {
	// .env values become process environment before viper reads it.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperfetch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperfetch"))
		}
	}

	viper.SetEnvPrefix("PAPERFETCH")
	viper.AutomaticEnv()

	viper.SetDefault("source", "pubmed")
	viper.SetDefault("query", "biotechnology")
	viper.SetDefault("max_results", 10)
	viper.SetDefault("timeout", "30s")
	viper.SetDefault("user_agent", "paperfetch/"+version)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("format", "table")
	viper.SetDefault("debug_dir", "debug")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
