// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deck

import (
	"regexp"
	"strings"

	"github.com/pdiddy/deckgen/pkg/types"
)

// codePattern extracts the first sentinel-wrapped code region from content.
var codePattern = regexp.MustCompile(`(?s)\[CODE\](.*?)\[/CODE\]`)

// emphasisStripper removes the Markdown emphasis markers slides do not carry.
var emphasisStripper = strings.NewReplacer("**", "", "`", "")

// BuildDeck renders sections into a deck: one fixed title slide, then one
// slide per level-1 section. Level-2 sections produce no slide of their own.
func BuildDeck(sections []types.Section, cfg types.GeneratorConfig) *Deck {
	d := New()
	d.AddTitleSlide(cfg.Title, cfg.Subtitle)

	for _, s := range sections {
		if s.Level != 1 {
			continue
		}
		if strings.Contains(s.Content, types.CodeOpen) {
			// A code section shows only its code; surrounding prose is
			// dropped on the slide path.
			d.AddContentSlide(s.Title, codeBody(s.Content, cfg.Limits.SlideCodeChars))
			continue
		}
		d.AddContentSlide(s.Title, textBody(s.Content, cfg.Limits.SlideLines))
	}
	return d
}

// codeBody extracts the first code region, caps it at maxChars, and returns
// it as fixed-width paragraphs, one per code line.
func codeBody(content string, maxChars int) []Paragraph {
	m := codePattern.FindStringSubmatch(content)
	if m == nil {
		return nil
	}
	code := strings.TrimSpace(m[1])
	if maxChars > 0 && len(code) > maxChars {
		code = code[:maxChars]
	}

	var body []Paragraph
	for _, line := range strings.Split(code, "\n") {
		body = append(body, Paragraph{Text: line, Mono: true})
	}
	return body
}

// textBody converts up to maxLines non-blank content lines into slide
// paragraphs. Emphasis markers are stripped; bullet lines become outline
// level 0, two-space-indented bullet lines become outline level 1, and
// everything else renders as a plain paragraph.
func textBody(content string, maxLines int) []Paragraph {
	var lines []string
	for _, l := range strings.Split(content, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	var body []Paragraph
	for _, line := range lines {
		clean := emphasisStripper.Replace(line)
		switch {
		case strings.HasPrefix(clean, "  - "), strings.HasPrefix(clean, "  * "):
			body = append(body, Paragraph{Text: strings.TrimSpace(clean[4:]), Bullet: true, Level: 1})
		case strings.HasPrefix(strings.TrimSpace(clean), "- "), strings.HasPrefix(strings.TrimSpace(clean), "* "):
			body = append(body, Paragraph{Text: strings.TrimSpace(clean)[2:], Bullet: true})
		default:
			body = append(body, Paragraph{Text: strings.TrimSpace(clean)})
		}
	}
	return body
}
