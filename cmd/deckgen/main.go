// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the deckgen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the deckgen CLI.
var rootCmd = &cobra.Command{
	Use:   "deckgen",
	Short: "Generate and verify presentation files from a Markdown document",
	Long: `deckgen converts a single Markdown document into a slide deck (PPTX) and a
paginated PDF report by splitting it along ## and ### headers.

Use generate to produce the outputs and verify to check that the files on
disk exist and look valid (slide count, PDF signature, documentation
sections). Both subcommands run with sensible defaults and need no
arguments.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./deckgen.yaml or ~/.config/deckgen/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("deckgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "deckgen"))
		}
	}

	viper.SetEnvPrefix("DECKGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
