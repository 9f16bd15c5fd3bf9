// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown splits a Markdown document into an ordered sequence of
// sections along its ## and ### headers.
//
// The splitter is deliberately a line scanner, not a Markdown AST parser.
// Its attachment rules are part of the output contract: body text never
// attaches to a ### sub-section (it carries over to the next flushed ##
// section), #### headers are demoted to highlighted content lines, and code
// fences are captured with a fixed line cap. An AST library would normalize
// all of that away.
package markdown

import (
	"strings"

	"github.com/pdiddy/deckgen/pkg/types"
)

// Parse scans text and returns its sections in source order, using the
// default code-fence line cap.
func Parse(text string) []types.Section {
	return ParseCapped(text, types.DefaultLimits().CodeLines)
}

// ParseCapped is Parse with an explicit cap on the number of lines kept from
// each fenced code block. A cap of zero or less keeps no fence lines.
//
// Scanning rules, in order of precedence per line:
//   - "## "  closes any open section (flushing accumulated content) and
//     opens a new level-1 section. Text before the first "## " is dropped.
//   - "### " flushes pending content into the current level-1 title and
//     closes it, then emits a level-2 section with empty content and Parent
//     set. Content accumulated after that point attaches to the next
//     flushed level-1 section, never to the sub-section itself.
//   - "#### " appends the header text to the content buffer as a bare
//     highlighted line; no section boundary.
//   - "```"  captures the fenced block up to the next fence line (or end of
//     input), keeping at most codeLines lines, wrapped in sentinel markers.
//   - "- " / "* " bullet lines and other non-blank lines not starting with
//     "---" append verbatim. Blank lines and horizontal rules are dropped.
//
// There are no error paths; malformed input degrades gracefully.
func ParseCapped(text string, codeLines int) []types.Section {
	if codeLines < 0 {
		codeLines = 0
	}
	var (
		sections []types.Section
		title    string
		open     bool
		started  bool
		content  []string
	)

	flush := func() {
		sections = append(sections, types.Section{
			Title:   title,
			Content: strings.TrimSpace(strings.Join(content, "\n")),
			Level:   1,
		})
		content = nil
	}

	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		switch {
		case strings.HasPrefix(line, "## "):
			if open {
				flush()
			} else if !started {
				// Preamble before the first header is dropped. Content
				// pending after a sub-header closed the previous section
				// carries over instead.
				content = nil
			}
			title = strings.TrimSpace(line[3:])
			open = true
			started = true

		case strings.HasPrefix(line, "### "):
			// Pending content flushes under the level-1 title, not the
			// sub-section, and closes it; anything after this header
			// accumulates toward the next flushed level-1 section.
			if len(content) > 0 {
				flush()
				open = false
			}
			sections = append(sections, types.Section{
				Title:  strings.TrimSpace(line[4:]),
				Level:  2,
				Parent: title,
			})

		case strings.HasPrefix(line, "#### "):
			content = append(content, "\n"+strings.TrimSpace(line[5:])+"\n")

		case strings.HasPrefix(line, "```"):
			var code []string
			for i++; i < len(lines) && !strings.HasPrefix(lines[i], "```"); i++ {
				code = append(code, lines[i])
			}
			if len(code) > codeLines {
				code = code[:codeLines]
			}
			content = append(content,
				"\n"+types.CodeOpen+"\n"+strings.Join(code, "\n")+"\n"+types.CodeClose+"\n")

		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			content = append(content, line)

		default:
			if strings.TrimSpace(line) != "" && !strings.HasPrefix(line, "---") {
				content = append(content, line)
			}
		}
	}

	if open {
		flush()
	}
	return sections
}

// CountHeaders returns the number of header lines at the given nesting level
// (1 for "## ", 2 for "### "). Used for manifest reporting.
func CountHeaders(text string, level int) int {
	prefix := strings.Repeat("#", level+1) + " "
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}
