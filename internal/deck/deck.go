// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package deck builds slide decks and writes them as PPTX packages.
//
// The writer emits a minimal Office Open XML presentation: one slide master,
// one blank layout, one theme, and one slide part per slide, assembled with
// archive/zip. That is enough for generic slideshow viewers and for slide
// counting during verification; no authoring library is involved.
package deck

import (
	"fmt"
	"os"
)

// Paragraph is one body line on a content slide.
type Paragraph struct {
	// Text is the paragraph text, already stripped of Markdown emphasis.
	Text string

	// Bullet marks the paragraph as an outline bullet; Level is its
	// outline indent (0 or 1). Level is ignored for non-bullets.
	Bullet bool
	Level  int

	// Mono renders the paragraph in a fixed-width font at code point size.
	Mono bool
}

// slide is one finished slide. isTitle selects the title layout (centered
// title and subtitle, no body).
type slide struct {
	title    string
	subtitle string
	body     []Paragraph
	isTitle  bool
}

// Deck is an in-memory slide deck. Slides render in insertion order.
type Deck struct {
	slides []slide
}

// New returns an empty deck.
func New() *Deck {
	return &Deck{}
}

// AddTitleSlide appends a title slide with the two caption strings.
func (d *Deck) AddTitleSlide(title, subtitle string) {
	d.slides = append(d.slides, slide{title: title, subtitle: subtitle, isTitle: true})
}

// AddContentSlide appends a slide with a headline and body paragraphs.
func (d *Deck) AddContentSlide(title string, body []Paragraph) {
	d.slides = append(d.slides, slide{title: title, body: body})
}

// SlideCount returns the number of slides added so far.
func (d *Deck) SlideCount() int {
	return len(d.slides)
}

// WriteFile writes the deck as a PPTX package at path, truncating any
// existing file.
func (d *Deck) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating deck file: %w", err)
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing deck %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing deck %s: %w", path, err)
	}
	return nil
}
