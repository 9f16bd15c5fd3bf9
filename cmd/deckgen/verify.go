// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/deckgen/internal/verify"
	"github.com/pdiddy/deckgen/pkg/types"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the generated presentation files exist and look valid",
	Long: `Verify inspects the slide deck, the PDF report, and the companion
documentation file: existence, slide count, PDF signature bytes, and
required documentation sections. The checks are independent; the command
exits 1 if any of them fails.`,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg := verifyConfig(cmd)
	if !verify.Run(cfg, os.Stdout) {
		return fmt.Errorf("verification failed")
	}
	return nil
}

func verifyConfig(cmd *cobra.Command) types.VerifyConfig {
	cfg := types.DefaultVerifyConfig()

	stringSetting(cmd, "deck", "deck_path", &cfg.DeckPath)
	stringSetting(cmd, "pdf", "pdf_path", &cfg.PDFPath)
	stringSetting(cmd, "docs", "docs_path", &cfg.DocsPath)

	if cmd.Flags().Changed("min-slides") {
		cfg.MinSlides, _ = cmd.Flags().GetInt("min-slides")
	} else if viper.IsSet("min_slides") {
		cfg.MinSlides = viper.GetInt("min_slides")
	}

	if cmd.Flags().Changed("require") {
		cfg.RequiredSections, _ = cmd.Flags().GetStringArray("require")
	} else if viper.IsSet("required_sections") {
		cfg.RequiredSections = viper.GetStringSlice("required_sections")
	}

	return cfg
}

func init() {
	d := types.DefaultVerifyConfig()
	verifyCmd.Flags().String("deck", d.DeckPath, "slide-deck file to check")
	verifyCmd.Flags().String("pdf", d.PDFPath, "PDF report file to check")
	verifyCmd.Flags().String("docs", d.DocsPath, "companion documentation file to check")
	verifyCmd.Flags().Int("min-slides", d.MinSlides, "minimum acceptable slide count")
	verifyCmd.Flags().StringArray("require", d.RequiredSections, "substring that must appear in the documentation (repeatable)")

	rootCmd.AddCommand(verifyCmd)
}
