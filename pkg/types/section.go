// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data records for the deckgen pipeline:
// parsed document sections, stage configuration, and the run manifest.
package types

// Section is one parsed unit of the source document. The parser emits
// sections in source order; no section is mutated after construction.
type Section struct {
	// Title is the header text with the leading # markers stripped.
	Title string `json:"title" yaml:"title"`

	// Content is the accumulated body text between this header and the
	// next, trimmed of surrounding whitespace. Extracted code fences appear
	// inline wrapped in [CODE]/[/CODE] sentinel markers.
	Content string `json:"content" yaml:"content"`

	// Level is 1 for a top-level (##) section, 2 for a sub-section (###).
	Level int `json:"level" yaml:"level"`

	// Parent names the enclosing level-1 title. Set only on level-2
	// records; renderers do not consume it.
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`
}

// Sentinel markers wrapping extracted code-fence text inside Section.Content.
const (
	CodeOpen  = "[CODE]"
	CodeClose = "[/CODE]"
)
