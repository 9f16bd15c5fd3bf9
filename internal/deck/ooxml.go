// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deck

import (
	"archive/zip"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// OOXML namespace URIs shared by every presentation part.
const (
	nsDrawing  = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRel      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPresent  = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsPkgRel   = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsCType    = "http://schemas.openxmlformats.org/package/2006/content-types"
	relOffice  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relMaster  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relLayout  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relSlide   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTheme   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	ctRels     = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML      = "application/xml"
	ctPresent  = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctMaster   = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctLayout   = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctSlide    = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctTheme    = "application/vnd.openxmlformats-officedocument.theme+xml"
)

// Slide geometry in EMU (914400 per inch). The deck is 10 x 7.5 inches, with
// a headline box across the top and a body box under it.
const (
	slideCX = 9144000
	slideCY = 6858000

	titleOffX = 457200
	titleOffY = 274638
	titleCX   = 8229600
	titleCY   = 1143000

	bodyOffX = 457200
	bodyOffY = 1600200
	bodyCX   = 8229600
	bodyCY   = 4525963
)

// Font sizes in hundredths of a point.
const (
	sizeDeckTitle = 4000
	sizeSubtitle  = 2000
	sizeHeadline  = 3200
	sizeBody      = 1400
	sizeCode      = 1000
)

const monoTypeface = "Courier New"

// xmlEscaper escapes text for embedding in XML character data and attributes.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// part is one file inside the package zip.
type part struct {
	name string
	body string
}

// Write assembles the deck as a PPTX zip package on w.
func (d *Deck) Write(w io.Writer) error {
	zw := zip.NewWriter(w)

	parts := []part{
		{"[Content_Types].xml", d.contentTypesXML()},
		{"_rels/.rels", rootRelsXML()},
		{"ppt/presentation.xml", d.presentationXML()},
		{"ppt/_rels/presentation.xml.rels", d.presentationRelsXML()},
		{"ppt/slideMasters/slideMaster1.xml", masterXML()},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", masterRelsXML()},
		{"ppt/slideLayouts/slideLayout1.xml", layoutXML()},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", layoutRelsXML()},
		{"ppt/theme/theme1.xml", themeXML()},
	}
	for i, s := range d.slides {
		n := i + 1
		parts = append(parts,
			part{fmt.Sprintf("ppt/slides/slide%d.xml", n), slideXML(s)},
			part{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), slideRelsXML()},
		)
	}

	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("creating package part %s: %w", p.name, err)
		}
		if _, err := io.WriteString(f, p.body); err != nil {
			return fmt.Errorf("writing package part %s: %w", p.name, err)
		}
	}
	return zw.Close()
}

func (d *Deck) contentTypesXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<Types xmlns="%s">`, nsCType)
	fmt.Fprintf(&b, `<Default Extension="rels" ContentType="%s"/>`, ctRels)
	fmt.Fprintf(&b, `<Default Extension="xml" ContentType="%s"/>`, ctXML)
	fmt.Fprintf(&b, `<Override PartName="/ppt/presentation.xml" ContentType="%s"/>`, ctPresent)
	fmt.Fprintf(&b, `<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="%s"/>`, ctMaster)
	fmt.Fprintf(&b, `<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="%s"/>`, ctLayout)
	fmt.Fprintf(&b, `<Override PartName="/ppt/theme/theme1.xml" ContentType="%s"/>`, ctTheme)
	for i := range d.slides {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="%s"/>`, i+1, ctSlide)
	}
	b.WriteString(`</Types>`)
	return b.String()
}

func rootRelsXML() string {
	return xmlHeader + fmt.Sprintf(
		`<Relationships xmlns="%s"><Relationship Id="rId1" Type="%s" Target="ppt/presentation.xml"/></Relationships>`,
		nsPkgRel, relOffice)
}

func (d *Deck) presentationXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsDrawing, nsRel, nsPresent)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	b.WriteString(`<p:sldIdLst>`)
	for i := range d.slides {
		// Slide IDs start at 256 per the PresentationML schema; the
		// master occupies rId1, so slides begin at rId2.
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, i+2)
	}
	b.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, slideCX, slideCY)
	fmt.Fprintf(&b, `<p:notesSz cx="%d" cy="%d"/>`, slideCY, slideCX)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func (d *Deck) presentationRelsXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<Relationships xmlns="%s">`, nsPkgRel)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type="%s" Target="slideMasters/slideMaster1.xml"/>`, relMaster)
	for i := range d.slides {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s" Target="slides/slide%d.xml"/>`, i+2, relSlide, i+1)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

// emptySpTree is the minimal shape tree required in every cSld.
const emptySpTree = `<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>`

func masterXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:sldMaster xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsDrawing, nsRel, nsPresent)
	b.WriteString(`<p:cSld>` + emptySpTree + `</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>`)
	b.WriteString(`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>`)
	b.WriteString(`</p:sldMaster>`)
	return b.String()
}

func masterRelsXML() string {
	return xmlHeader + fmt.Sprintf(
		`<Relationships xmlns="%s">`+
			`<Relationship Id="rId1" Type="%s" Target="../slideLayouts/slideLayout1.xml"/>`+
			`<Relationship Id="rId2" Type="%s" Target="../theme/theme1.xml"/>`+
			`</Relationships>`,
		nsPkgRel, relLayout, relTheme)
}

func layoutXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:sldLayout xmlns:a="%s" xmlns:r="%s" xmlns:p="%s" type="blank">`, nsDrawing, nsRel, nsPresent)
	b.WriteString(`<p:cSld>` + emptySpTree + `</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sldLayout>`)
	return b.String()
}

func layoutRelsXML() string {
	return xmlHeader + fmt.Sprintf(
		`<Relationships xmlns="%s"><Relationship Id="rId1" Type="%s" Target="../slideMasters/slideMaster1.xml"/></Relationships>`,
		nsPkgRel, relMaster)
}

func slideRelsXML() string {
	return xmlHeader + fmt.Sprintf(
		`<Relationships xmlns="%s"><Relationship Id="rId1" Type="%s" Target="../slideLayouts/slideLayout1.xml"/></Relationships>`,
		nsPkgRel, relLayout)
}

func slideXML(s slide) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsDrawing, nsRel, nsPresent)
	b.WriteString(`<p:cSld>` + emptySpTree)

	if s.isTitle {
		writeTextBox(&b, 2, "Title", titleOffX, slideCY/3, titleCX, titleCY,
			[]string{paragraphXML(Paragraph{Text: s.title}, sizeDeckTitle, true)})
		writeTextBox(&b, 3, "Subtitle", titleOffX, slideCY/3+titleCY, titleCX, titleCY,
			[]string{paragraphXML(Paragraph{Text: s.subtitle}, sizeSubtitle, true)})
	} else {
		writeTextBox(&b, 2, "Headline", titleOffX, titleOffY, titleCX, titleCY,
			[]string{paragraphXML(Paragraph{Text: s.title}, sizeHeadline, false)})
		var paras []string
		for _, p := range s.body {
			size := sizeBody
			if p.Mono {
				size = sizeCode
			}
			paras = append(paras, paragraphXML(p, size, false))
		}
		if len(paras) > 0 {
			writeTextBox(&b, 3, "Body", bodyOffX, bodyOffY, bodyCX, bodyCY, paras)
		}
	}

	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sld>`)
	return b.String()
}

// writeTextBox emits one rectangular text shape holding the given paragraphs.
func writeTextBox(b *strings.Builder, id int, name string, x, y, cx, cy int, paras []string) {
	fmt.Fprintf(b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, id, name)
	fmt.Fprintf(b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, x, y, cx, cy)
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`)
	b.WriteString(`<p:txBody><a:bodyPr wrap="square"><a:normAutofit/></a:bodyPr><a:lstStyle/>`)
	for _, p := range paras {
		b.WriteString(p)
	}
	b.WriteString(`</p:txBody></p:sp>`)
}

// paragraphXML renders one a:p element. size is in hundredths of a point.
func paragraphXML(p Paragraph, size int, centered bool) string {
	var b strings.Builder
	b.WriteString(`<a:p><a:pPr`)
	if p.Bullet && p.Level > 0 {
		fmt.Fprintf(&b, ` lvl="%d"`, p.Level)
	}
	if centered {
		b.WriteString(` algn="ctr"`)
	}
	b.WriteString(`>`)
	if p.Bullet {
		b.WriteString(`<a:buChar char="&#8226;"/>`)
	} else {
		b.WriteString(`<a:buNone/>`)
	}
	b.WriteString(`</a:pPr>`)
	fmt.Fprintf(&b, `<a:r><a:rPr lang="en-US" sz="%d" dirty="0">`, size)
	if p.Mono {
		fmt.Fprintf(&b, `<a:latin typeface="%s"/>`, monoTypeface)
	}
	b.WriteString(`</a:rPr>`)
	fmt.Fprintf(&b, `<a:t>%s</a:t></a:r></a:p>`, xmlEscaper.Replace(p.Text))
	return b.String()
}

// themeXML emits a minimal Office theme: a color scheme, the two font
// schemes, and the three-entry format scheme lists the schema requires.
func themeXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<a:theme xmlns:a="%s" name="Office">`, nsDrawing)
	b.WriteString(`<a:themeElements>`)
	b.WriteString(`<a:clrScheme name="Office">`)
	b.WriteString(`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>`)
	b.WriteString(`<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>`)
	b.WriteString(`<a:dk2><a:srgbClr val="44546A"/></a:dk2>`)
	b.WriteString(`<a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>`)
	b.WriteString(`<a:accent1><a:srgbClr val="4472C4"/></a:accent1>`)
	b.WriteString(`<a:accent2><a:srgbClr val="ED7D31"/></a:accent2>`)
	b.WriteString(`<a:accent3><a:srgbClr val="A5A5A5"/></a:accent3>`)
	b.WriteString(`<a:accent4><a:srgbClr val="FFC000"/></a:accent4>`)
	b.WriteString(`<a:accent5><a:srgbClr val="5B9BD5"/></a:accent5>`)
	b.WriteString(`<a:accent6><a:srgbClr val="70AD47"/></a:accent6>`)
	b.WriteString(`<a:hlink><a:srgbClr val="0563C1"/></a:hlink>`)
	b.WriteString(`<a:folHlink><a:srgbClr val="954F72"/></a:folHlink>`)
	b.WriteString(`</a:clrScheme>`)
	b.WriteString(`<a:fontScheme name="Office">`)
	b.WriteString(`<a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>`)
	b.WriteString(`<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>`)
	b.WriteString(`</a:fontScheme>`)
	b.WriteString(`<a:fmtScheme name="Office">`)
	fill := `<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>`
	b.WriteString(`<a:fillStyleLst>` + fill + fill + fill + `</a:fillStyleLst>`)
	ln := `<a:ln><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>`
	b.WriteString(`<a:lnStyleLst>` + ln + ln + ln + `</a:lnStyleLst>`)
	effect := `<a:effectStyle><a:effectLst/></a:effectStyle>`
	b.WriteString(`<a:effectStyleLst>` + effect + effect + effect + `</a:effectStyleLst>`)
	b.WriteString(`<a:bgFillStyleLst>` + fill + fill + fill + `</a:bgFillStyleLst>`)
	b.WriteString(`</a:fmtScheme>`)
	b.WriteString(`</a:themeElements></a:theme>`)
	return b.String()
}

// slidePartPattern matches slide part names inside a PPTX package.
var slidePartPattern = regexp.MustCompile(`^ppt/slides/slide\d+\.xml$`)

// CountSlides opens the PPTX package at path and returns the number of slide
// parts it contains. It is used by output verification.
func CountSlides(path string) (int, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return 0, fmt.Errorf("opening deck package: %w", err)
	}
	defer r.Close()

	n := 0
	for _, f := range r.File {
		if slidePartPattern.MatchString(f.Name) {
			n++
		}
	}
	return n, nil
}
