// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package verify inspects generated presentation files for superficial
// validity: existence, size, slide count, PDF magic bytes, and required
// documentation sections. It runs out-of-process from generation and trusts
// nothing but the bytes on disk.
package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/deckgen/internal/deck"
	"github.com/pdiddy/deckgen/pkg/types"
)

// pdfMagic is the signature every PDF file starts with.
const pdfMagic = "%PDF-"

// CheckDeck verifies the slide deck: the file must exist, open as a
// presentation package, and contain at least minSlides slides.
func CheckDeck(path string, minSlides int, w io.Writer) bool {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(w, "FAIL: deck not found: %s\n", path)
		return false
	}

	slides, err := deck.CountSlides(path)
	if err != nil {
		fmt.Fprintf(w, "FAIL: opening deck %s: %v\n", path, err)
		return false
	}

	fmt.Fprintf(w, "ok: deck %s\n", path)
	fmt.Fprintf(w, "    size: %.1f KB\n", float64(info.Size())/1024)
	fmt.Fprintf(w, "    slides: %d\n", slides)

	if slides < minSlides {
		fmt.Fprintf(w, "WARN: only %d slides found (minimum %d)\n", slides, minSlides)
		return false
	}
	return true
}

// CheckPDF verifies the report: the file must exist and its first five bytes
// must be the PDF signature.
func CheckPDF(path string, w io.Writer) bool {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(w, "FAIL: PDF not found: %s\n", path)
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(w, "FAIL: opening PDF %s: %v\n", path, err)
		return false
	}
	defer f.Close()

	header := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, header); err != nil || string(header) != pdfMagic {
		fmt.Fprintf(w, "FAIL: %s has an invalid PDF header\n", path)
		return false
	}

	fmt.Fprintf(w, "ok: PDF %s\n", path)
	fmt.Fprintf(w, "    size: %.1f KB\n", float64(info.Size())/1024)
	return true
}

// CheckDocs verifies the companion documentation file: it must exist and
// contain every required substring. Missing ones are reported by name.
func CheckDocs(path string, required []string, w io.Writer) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(w, "FAIL: documentation not found: %s\n", path)
		return false
	}
	content := string(data)

	fmt.Fprintf(w, "ok: documentation %s\n", path)
	fmt.Fprintf(w, "    size: %d characters\n", len(content))

	var missing []string
	for _, section := range required {
		if !strings.Contains(content, section) {
			missing = append(missing, section)
		}
	}
	if len(missing) > 0 {
		fmt.Fprintf(w, "WARN: missing sections: %s\n", strings.Join(missing, ", "))
		return false
	}
	return true
}

// Run executes all three checks independently (one failing never stops the
// others), prints the aggregate report, and reports overall success.
func Run(cfg types.VerifyConfig, w io.Writer) bool {
	banner := strings.Repeat("=", 60)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "PRESENTATION FILES VERIFICATION")
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)

	results := []bool{
		CheckDeck(cfg.DeckPath, cfg.MinSlides, w),
	}
	fmt.Fprintln(w)
	results = append(results, CheckPDF(cfg.PDFPath, w))
	fmt.Fprintln(w)
	results = append(results, CheckDocs(cfg.DocsPath, cfg.RequiredSections, w))

	ok := true
	for _, r := range results {
		ok = ok && r
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	if ok {
		fmt.Fprintln(w, "ALL CHECKS PASSED")
	} else {
		fmt.Fprintln(w, "SOME CHECKS FAILED")
	}
	fmt.Fprintln(w, banner)
	return ok
}
