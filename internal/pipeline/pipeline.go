// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates a generate run: read the Markdown source,
// parse it once, fan the section sequence out to the slide and report
// renderers, then write the companion documentation and the run manifest.
// Execution is synchronous and all-or-nothing; the first failing step aborts
// the run and no partial-write recovery is attempted.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deckgen/internal/deck"
	"github.com/pdiddy/deckgen/internal/markdown"
	"github.com/pdiddy/deckgen/internal/report"
	"github.com/pdiddy/deckgen/pkg/types"
)

// Run executes the full generation pipeline, printing per-step status lines
// to w. It returns the run manifest that was written to cfg.ManifestPath.
func Run(cfg types.GeneratorConfig, w io.Writer) (types.Manifest, error) {
	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return types.Manifest{}, fmt.Errorf("reading input: %w", err)
	}

	sections := markdown.ParseCapped(string(data), cfg.Limits.CodeLines)
	counts := countSections(sections)
	fmt.Fprintf(w, "parsed: %s (%d sections: %d top-level, %d sub)\n",
		cfg.InputPath, counts.Total, counts.Level1, counts.Level2)

	// Each renderer gets its own copy of the sequence; neither sees the
	// other's view of the data.
	d := deck.BuildDeck(slices.Clone(sections), cfg)
	if err := d.WriteFile(cfg.DeckPath); err != nil {
		return types.Manifest{}, err
	}
	fmt.Fprintf(w, "deck: %s (%d slides)\n", cfg.DeckPath, d.SlideCount())

	if err := report.Render(slices.Clone(sections), cfg.PDFPath, cfg); err != nil {
		return types.Manifest{}, err
	}
	fmt.Fprintf(w, "report: %s\n", cfg.PDFPath)

	if cfg.WriteDocs {
		if err := writeDocs(cfg, d.SlideCount()); err != nil {
			return types.Manifest{}, err
		}
		fmt.Fprintf(w, "docs: %s\n", cfg.DocsPath)
	}

	m, err := writeManifest(cfg, counts, d.SlideCount())
	if err != nil {
		return types.Manifest{}, err
	}
	fmt.Fprintf(w, "manifest: %s\n", cfg.ManifestPath)

	fmt.Fprintf(w, "\nGenerated %d output file(s) from %d section(s)\n",
		len(m.Outputs), counts.Total)
	return m, nil
}

func countSections(sections []types.Section) types.SectionCounts {
	c := types.SectionCounts{Total: len(sections)}
	for _, s := range sections {
		switch s.Level {
		case 1:
			c.Level1++
		case 2:
			c.Level2++
		}
	}
	return c
}

// writeDocs writes the companion documentation file the verifier reads. Its
// section headers are the verifier's default required substrings.
func writeDocs(cfg types.GeneratorConfig, slides int) error {
	var b strings.Builder
	b.WriteString("# " + cfg.Title + "\n\n")
	b.WriteString(cfg.Subtitle + "\n\n")

	b.WriteString("## Generated Files\n\n")
	fmt.Fprintf(&b, "- `%s` — slide deck (%d slides)\n", cfg.DeckPath, slides)
	fmt.Fprintf(&b, "- `%s` — PDF report\n", cfg.PDFPath)
	fmt.Fprintf(&b, "- `%s` — run manifest\n\n", cfg.ManifestPath)

	b.WriteString("## How to Use\n\n")
	b.WriteString("Open the deck in any slideshow viewer and the report in any PDF reader.\n")
	fmt.Fprintf(&b, "Both are generated from `%s`; do not edit them by hand.\n\n", cfg.InputPath)

	b.WriteString("## Regenerate\n\n")
	b.WriteString("```\ndeckgen generate\ndeckgen verify\n```\n")

	if err := os.WriteFile(cfg.DocsPath, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing docs: %w", err)
	}
	return nil
}

// writeManifest records the run outcome as YAML next to the outputs.
func writeManifest(cfg types.GeneratorConfig, counts types.SectionCounts, slides int) (types.Manifest, error) {
	m := types.Manifest{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Input:       cfg.InputPath,
		Sections:    counts,
	}

	outputs := []types.OutputFile{
		{Kind: "deck", Path: cfg.DeckPath, Slides: slides},
		{Kind: "report", Path: cfg.PDFPath},
	}
	if cfg.WriteDocs {
		outputs = append(outputs, types.OutputFile{Kind: "docs", Path: cfg.DocsPath})
	}

	for _, o := range outputs {
		info, err := os.Stat(o.Path)
		if err != nil {
			return types.Manifest{}, fmt.Errorf("stat %s output: %w", o.Kind, err)
		}
		o.Bytes = info.Size()
		m.Outputs = append(m.Outputs, o)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return types.Manifest{}, fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(cfg.ManifestPath, data, 0o644); err != nil {
		return types.Manifest{}, fmt.Errorf("writing manifest: %w", err)
	}
	return m, nil
}
