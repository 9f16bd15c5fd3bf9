// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Manifest records the outcome of a generate run. It is written as YAML next
// to the outputs and is informational only; nothing reads it back.
type Manifest struct {
	// GeneratedAt is the run timestamp in RFC 3339 UTC.
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`

	// Input is the Markdown source the run consumed.
	Input string `json:"input" yaml:"input"`

	// Sections counts the parsed records by level.
	Sections SectionCounts `json:"sections" yaml:"sections"`

	// Outputs lists the files the run produced.
	Outputs []OutputFile `json:"outputs" yaml:"outputs"`
}

// SectionCounts breaks down parsed sections by nesting level.
type SectionCounts struct {
	Total  int `json:"total" yaml:"total"`
	Level1 int `json:"level1" yaml:"level1"`
	Level2 int `json:"level2" yaml:"level2"`
}

// OutputFile describes one produced artifact.
type OutputFile struct {
	// Kind is "deck", "report", or "docs".
	Kind string `json:"kind" yaml:"kind"`

	// Path is the file location relative to the working directory.
	Path string `json:"path" yaml:"path"`

	// Bytes is the file size on disk.
	Bytes int64 `json:"bytes" yaml:"bytes"`

	// Slides is the slide count; set only for the deck.
	Slides int `json:"slides,omitempty" yaml:"slides,omitempty"`
}
