// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/pdiddy/deckgen/pkg/types"
)

// Page layout in points: US Letter with one-inch margins.
const (
	pageMargin = 72
	codeIndent = 20
)

// Heading colors (from the document's fixed palette).
var (
	headingColor    = [3]int{0x2E, 0x40, 0x57}
	subheadingColor = [3]int{0x4A, 0x5F, 0x7F}
)

// decoder turns the story's escaped entities back into literal characters at
// layout time. The single-pass Replacer resolves &lt;/&gt; and &amp; without
// re-scanning its own output.
var decoder = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")

// Render builds the story for sections and writes it as a PDF at path.
func Render(sections []types.Section, path string, cfg types.GeneratorConfig) error {
	return WritePDF(BuildStory(sections, cfg), path)
}

// WritePDF lays the story out on US Letter pages and writes the file.
func WritePDF(story []Flow, path string) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	// Core fonts are CP1252; translate the UTF-8 story text.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, f := range story {
		writeFlow(pdf, tr, f)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

func writeFlow(pdf *fpdf.Fpdf, tr func(string) string, f Flow) {
	text := tr(decoder.Replace(f.Text))

	switch f.Kind {
	case FlowTitle:
		pdf.SetFont("Helvetica", "B", 24)
		pdf.SetTextColor(headingColor[0], headingColor[1], headingColor[2])
		pdf.MultiCell(0, 30, text, "", "C", false)

	case FlowSubtitle:
		pdf.SetFont("Helvetica", "", 12)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, 16, text, "", "C", false)

	case FlowHeading:
		pdf.SetFont("Helvetica", "B", 18)
		pdf.SetTextColor(headingColor[0], headingColor[1], headingColor[2])
		pdf.MultiCell(0, 24, text, "", "L", false)

	case FlowSubheading:
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(subheadingColor[0], subheadingColor[1], subheadingColor[2])
		pdf.MultiCell(0, 18, text, "", "L", false)

	case FlowBody:
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, 14, text, "", "L", false)
		pdf.Ln(4)

	case FlowBullet:
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, 14, tr("• ")+text, "", "L", false)
		pdf.Ln(4)

	case FlowBullet2:
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetX(pageMargin + codeIndent)
		pdf.MultiCell(0, 14, tr("• ")+text, "", "L", false)
		pdf.Ln(4)

	case FlowCode:
		pdf.SetFont("Courier", "", 9)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetX(pageMargin + codeIndent)
		pdf.MultiCell(0, 11, text, "", "L", false)

	case FlowSpacer:
		pdf.Ln(f.Pt)

	case FlowPageBreak:
		pdf.AddPage()
	}
}
