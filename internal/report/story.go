// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders parsed sections into a paginated PDF document.
//
// Rendering is two-stage: BuildStory flattens sections into an ordered flow
// of typed paragraphs whose text carries entity-escaped markup, and WritePDF
// lays that flow out with go-pdf/fpdf. The split keeps the content
// transformation (markdown stripping, escaping, code-region extraction)
// testable without touching a PDF engine.
package report

import (
	"regexp"
	"strings"

	"github.com/pdiddy/deckgen/pkg/types"
)

// FlowKind identifies the layout treatment of one Flow.
type FlowKind int

const (
	// FlowTitle is the centered document title on the title page.
	FlowTitle FlowKind = iota
	// FlowSubtitle is the caption line under the title.
	FlowSubtitle
	// FlowHeading is a level-1 section heading.
	FlowHeading
	// FlowSubheading is a level-2 section heading.
	FlowSubheading
	// FlowBody is a plain content paragraph.
	FlowBody
	// FlowBullet is a single-indent bullet paragraph.
	FlowBullet
	// FlowBullet2 is a double-indent bullet paragraph.
	FlowBullet2
	// FlowCode is one preformatted fixed-width code line.
	FlowCode
	// FlowSpacer is a vertical gap of Pt points.
	FlowSpacer
	// FlowPageBreak starts a new page.
	FlowPageBreak
)

// Flow is one element of the document story.
type Flow struct {
	Kind FlowKind

	// Text is the element text. Content-derived text is entity-escaped
	// (&amp;, &lt;, &gt;); the writer decodes it at layout time.
	Text string

	// Pt is the gap height for FlowSpacer elements.
	Pt float64
}

// escaper escapes content text for the markup-carrying story. The ampersand
// replacement must come first so already-escaped entities are never produced
// from their own output (single-pass Replacer guarantees this).
var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// emphasisStripper removes Markdown emphasis markers from content lines.
var emphasisStripper = strings.NewReplacer("**", "", "`", "")

// codePattern locates sentinel-wrapped code regions inside section content.
var codePattern = regexp.MustCompile(`(?s)\[CODE\](.*?)\[/CODE\]`)

// Title-page and inter-section gaps in points.
const (
	gapTitleTop   = 144 // 2 in
	gapUnderTitle = 21.6
	gapSection    = 21.6 // 0.3 in
	gapHeading    = 14.4 // 0.2 in
	gapSubheading = 7.2  // 0.1 in
	gapCode       = 7.2
)

// BuildStory flattens sections into the document flow: a title page, then
// headings and content per level-1 section and a subheading per level-2
// section (which carries no content of its own).
func BuildStory(sections []types.Section, cfg types.GeneratorConfig) []Flow {
	story := []Flow{
		{Kind: FlowSpacer, Pt: gapTitleTop},
		{Kind: FlowTitle, Text: cfg.Title},
		{Kind: FlowSpacer, Pt: gapUnderTitle},
		{Kind: FlowSubtitle, Text: cfg.Subtitle},
		{Kind: FlowPageBreak},
	}

	for _, s := range sections {
		switch s.Level {
		case 1:
			story = append(story,
				Flow{Kind: FlowHeading, Text: s.Title},
				Flow{Kind: FlowSpacer, Pt: gapHeading},
			)
			if strings.Contains(s.Content, types.CodeOpen) {
				story = appendMixed(story, s.Content, cfg.Limits.ReportCodeLines)
			} else {
				story = appendText(story, s.Content, true)
			}
			story = append(story, Flow{Kind: FlowSpacer, Pt: gapSection})
		case 2:
			story = append(story,
				Flow{Kind: FlowSubheading, Text: s.Title},
				Flow{Kind: FlowSpacer, Pt: gapSubheading},
			)
		}
	}
	return story
}

// appendMixed walks content as alternating prose and code regions. Prose
// keeps paragraph treatment; each code region is split into lines, capped at
// maxCodeLines, and emitted as preformatted flows followed by a small gap.
func appendMixed(story []Flow, content string, maxCodeLines int) []Flow {
	prev := 0
	for _, m := range codePattern.FindAllStringSubmatchIndex(content, -1) {
		story = appendText(story, content[prev:m[0]], false)

		code := strings.TrimSpace(content[m[2]:m[3]])
		lines := strings.Split(code, "\n")
		if maxCodeLines > 0 && len(lines) > maxCodeLines {
			lines = lines[:maxCodeLines]
		}
		for _, line := range lines {
			story = append(story, Flow{Kind: FlowCode, Text: line})
		}
		story = append(story, Flow{Kind: FlowSpacer, Pt: gapCode})

		prev = m[1]
	}
	return appendText(story, content[prev:], false)
}

// appendText emits every non-blank content line as a bullet or body
// paragraph, markdown-stripped and entity-escaped. Double-indent bullets are
// recognized only when deepBullets is set; the mixed (code-section) path
// flattens them to single bullets.
func appendText(story []Flow, content string, deepBullets bool) []Flow {
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		clean := escaper.Replace(emphasisStripper.Replace(line))
		trimmed := strings.TrimSpace(clean)

		switch {
		case deepBullets && (strings.HasPrefix(clean, "  - ") || strings.HasPrefix(clean, "  * ")):
			story = append(story, Flow{Kind: FlowBullet2, Text: strings.TrimSpace(clean[4:])})
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			story = append(story, Flow{Kind: FlowBullet, Text: trimmed[2:]})
		default:
			story = append(story, Flow{Kind: FlowBody, Text: trimmed})
		}
	}
	return story
}
