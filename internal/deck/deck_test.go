// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deck

import (
	"archive/zip"
	"path/filepath"
	"strings"
	"testing"
)

func buildTestDeck(slides int) *Deck {
	d := New()
	d.AddTitleSlide("Title", "Subtitle")
	for i := 1; i < slides; i++ {
		d.AddContentSlide("Section", []Paragraph{{Text: "line"}})
	}
	return d
}

func TestWriteFile_PackageStructure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	d := buildTestDeck(3)
	if err := d.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("output is not a zip package: %v", err)
	}
	defer r.Close()

	names := make(map[string]bool)
	for _, f := range r.File {
		names[f.Name] = true
	}

	required := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/slide3.xml",
	}
	for _, name := range required {
		if !names[name] {
			t.Errorf("package is missing part %s", name)
		}
	}
}

func TestCountSlides(t *testing.T) {
	tests := []struct {
		name   string
		slides int
	}{
		{"title only", 1},
		{"several slides", 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "deck.pptx")
			if err := buildTestDeck(tt.slides).WriteFile(path); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			got, err := CountSlides(path)
			if err != nil {
				t.Fatalf("CountSlides: %v", err)
			}
			if got != tt.slides {
				t.Errorf("slides = %d, want %d", got, tt.slides)
			}
		})
	}
}

func TestCountSlides_NotAPackage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.pptx")
	if _, err := CountSlides(path); err == nil {
		t.Error("expected error for a missing package")
	}
}

func TestParagraphXML_EscapesText(t *testing.T) {
	got := paragraphXML(Paragraph{Text: `a < b & c > "d"`}, sizeBody, false)
	for _, entity := range []string{"&lt;", "&amp;", "&gt;", "&#34;"} {
		if !strings.Contains(got, entity) {
			t.Errorf("paragraph XML missing %s: %s", entity, got)
		}
	}
	if strings.Contains(got, "<a:t>a < b") {
		t.Errorf("raw markup leaked into text run: %s", got)
	}
}

func TestSlideXML_BulletLevels(t *testing.T) {
	s := slide{title: "T", body: []Paragraph{
		{Text: "top", Bullet: true},
		{Text: "nested", Bullet: true, Level: 1},
		{Text: "plain"},
	}}
	xml := slideXML(s)

	if !strings.Contains(xml, `lvl="1"`) {
		t.Error("nested bullet should carry lvl=\"1\"")
	}
	if !strings.Contains(xml, `<a:buChar`) {
		t.Error("bullets should carry a bullet character")
	}
	if !strings.Contains(xml, `<a:buNone/>`) {
		t.Error("plain paragraphs should suppress bullets")
	}
}

func TestSlideXML_MonoUsesFixedWidthFont(t *testing.T) {
	s := slide{title: "Code", body: []Paragraph{{Text: "x := 1", Mono: true}}}
	if xml := slideXML(s); !strings.Contains(xml, monoTypeface) {
		t.Errorf("code paragraph should use %s", monoTypeface)
	}
}
