// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/deckgen/internal/pipeline"
	"github.com/pdiddy/deckgen/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the slide deck, PDF report, and companion files",
	Long: `Generate reads the Markdown source, splits it into sections along its
## and ### headers, and renders a PPTX slide deck and a PDF report from the
same section sequence. It also writes a companion documentation file and a
YAML run manifest next to the outputs.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := generatorConfig(cmd)
	_, err := pipeline.Run(cfg, os.Stdout)
	return err
}

// generatorConfig resolves the generate configuration: flag values win,
// then config file / environment, then the stock defaults.
func generatorConfig(cmd *cobra.Command) types.GeneratorConfig {
	cfg := types.DefaultGeneratorConfig()

	stringSetting(cmd, "input", "input_path", &cfg.InputPath)
	stringSetting(cmd, "deck", "deck_path", &cfg.DeckPath)
	stringSetting(cmd, "pdf", "pdf_path", &cfg.PDFPath)
	stringSetting(cmd, "docs", "docs_path", &cfg.DocsPath)
	stringSetting(cmd, "manifest", "manifest_path", &cfg.ManifestPath)
	stringSetting(cmd, "title", "title", &cfg.Title)
	stringSetting(cmd, "subtitle", "subtitle", &cfg.Subtitle)

	if skip, _ := cmd.Flags().GetBool("skip-docs"); skip {
		cfg.WriteDocs = false
	}

	intSetting("limits.code_lines", &cfg.Limits.CodeLines)
	intSetting("limits.slide_lines", &cfg.Limits.SlideLines)
	intSetting("limits.slide_code_chars", &cfg.Limits.SlideCodeChars)
	intSetting("limits.report_code_lines", &cfg.Limits.ReportCodeLines)

	return cfg
}

// stringSetting overwrites *dst with the flag value if set, else the viper
// key if present.
func stringSetting(cmd *cobra.Command, flag, key string, dst *string) {
	if cmd.Flags().Changed(flag) {
		*dst, _ = cmd.Flags().GetString(flag)
		return
	}
	if viper.IsSet(key) {
		*dst = viper.GetString(key)
	}
}

// intSetting overwrites *dst with the viper key if present and positive.
func intSetting(key string, dst *int) {
	if viper.IsSet(key) {
		if v := viper.GetInt(key); v > 0 {
			*dst = v
		}
	}
}

func init() {
	d := types.DefaultGeneratorConfig()
	generateCmd.Flags().String("input", d.InputPath, "Markdown source document")
	generateCmd.Flags().String("deck", d.DeckPath, "slide-deck output file")
	generateCmd.Flags().String("pdf", d.PDFPath, "PDF report output file")
	generateCmd.Flags().String("docs", d.DocsPath, "companion documentation file")
	generateCmd.Flags().String("manifest", d.ManifestPath, "YAML run manifest file")
	generateCmd.Flags().String("title", d.Title, "title caption for the deck and report")
	generateCmd.Flags().String("subtitle", d.Subtitle, "subtitle caption for the deck and report")
	generateCmd.Flags().Bool("skip-docs", false, "do not (re)write the companion documentation file")

	rootCmd.AddCommand(generateCmd)
}
