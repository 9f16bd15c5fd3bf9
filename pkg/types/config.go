// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RenderLimits holds the hard truncation caps applied during rendering.
// The defaults are deliberate behavioral constants; changing them changes
// what ends up in the outputs, not how the outputs are laid out.
type RenderLimits struct {
	// CodeLines is the maximum number of lines kept from a fenced code
	// block during parsing (default 15). Lines past the cap are dropped.
	CodeLines int `json:"code_lines" yaml:"code_lines"`

	// SlideLines is the maximum number of body lines per content slide
	// (default 10).
	SlideLines int `json:"slide_lines" yaml:"slide_lines"`

	// SlideCodeChars is the maximum number of code characters shown on a
	// code slide (default 500).
	SlideCodeChars int `json:"slide_code_chars" yaml:"slide_code_chars"`

	// ReportCodeLines is the maximum number of code lines rendered per
	// code region in the PDF report (default 20).
	ReportCodeLines int `json:"report_code_lines" yaml:"report_code_lines"`
}

// DefaultLimits returns the stock truncation caps.
func DefaultLimits() RenderLimits {
	return RenderLimits{
		CodeLines:       15,
		SlideLines:      10,
		SlideCodeChars:  500,
		ReportCodeLines: 20,
	}
}

// GeneratorConfig holds settings for the generate stage.
type GeneratorConfig struct {
	// InputPath is the Markdown source document (default "README.md").
	InputPath string `json:"input_path" yaml:"input_path"`

	// DeckPath is the slide-deck output file (default "presentation.pptx").
	DeckPath string `json:"deck_path" yaml:"deck_path"`

	// PDFPath is the report output file (default "presentation.pdf").
	PDFPath string `json:"pdf_path" yaml:"pdf_path"`

	// DocsPath is the companion documentation file describing the outputs
	// (default "PRESENTATION-README.md").
	DocsPath string `json:"docs_path" yaml:"docs_path"`

	// ManifestPath is the YAML run manifest (default "presentation-manifest.yaml").
	ManifestPath string `json:"manifest_path" yaml:"manifest_path"`

	// Title and Subtitle are the fixed caption strings on the title slide
	// and the report title page. They are independent of the input document.
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`

	// WriteDocs controls whether the companion documentation file is
	// (re)written as part of a run.
	WriteDocs bool `json:"write_docs" yaml:"write_docs"`

	// Limits holds the rendering truncation caps.
	Limits RenderLimits `json:"limits" yaml:"limits"`
}

// DefaultGeneratorConfig returns a GeneratorConfig with stock paths, captions,
// and limits, so a bare invocation needs no flags.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		InputPath:    "README.md",
		DeckPath:     "presentation.pptx",
		PDFPath:      "presentation.pdf",
		DocsPath:     "PRESENTATION-README.md",
		ManifestPath: "presentation-manifest.yaml",
		Title:        "Project Presentation",
		Subtitle:     "Generated from README.md",
		WriteDocs:    true,
		Limits:       DefaultLimits(),
	}
}

// VerifyConfig holds settings for the verify stage.
type VerifyConfig struct {
	// DeckPath, PDFPath, and DocsPath are the files to inspect.
	DeckPath string `json:"deck_path" yaml:"deck_path"`
	PDFPath  string `json:"pdf_path" yaml:"pdf_path"`
	DocsPath string `json:"docs_path" yaml:"docs_path"`

	// MinSlides is the minimum acceptable slide count (default 10).
	MinSlides int `json:"min_slides" yaml:"min_slides"`

	// RequiredSections lists substrings that must appear in the
	// documentation file. Missing ones are reported by name.
	RequiredSections []string `json:"required_sections" yaml:"required_sections"`
}

// DefaultVerifyConfig returns a VerifyConfig matching the generator defaults.
func DefaultVerifyConfig() VerifyConfig {
	return VerifyConfig{
		DeckPath:  "presentation.pptx",
		PDFPath:   "presentation.pdf",
		DocsPath:  "PRESENTATION-README.md",
		MinSlides: 10,
		RequiredSections: []string{
			"Generated Files",
			"How to Use",
			"Regenerate",
		},
	}
}
