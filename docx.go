package journalbook

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
)

// Run is one styled segment of a word-processor paragraph. Exactly one of
// the style flags is set per recognized construct; links keep their label
// as plain text.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Mono   bool
}

// ParseRuns splits one line into ordered styled runs at construct
// boundaries.
func ParseRuns(line string) []Run {
	spans := parseSpans(line)
	runs := make([]Run, 0, len(spans))
	for _, sp := range spans {
		switch sp.Kind {
		case SpanBold:
			runs = append(runs, Run{Text: sp.Text, Bold: true})
		case SpanItalic:
			runs = append(runs, Run{Text: sp.Text, Italic: true})
		case SpanCode:
			runs = append(runs, Run{Text: sp.Text, Mono: true})
		default:
			// Links degrade to their label, like the plain-text target.
			runs = append(runs, Run{Text: sp.Text})
		}
	}
	return runs
}

// docParagraph is one paragraph of the word-processor document: either a
// heading (level 1-6) or a sequence of styled runs.
type docParagraph struct {
	heading int // 0 = body paragraph
	text    string
	runs    []Run
}

// docParagraphs converts markdown text into the paragraph sequence for the
// word-processor target. Headings become heading paragraphs, fenced code
// becomes one monospace paragraph per line, blank lines are dropped.
func docParagraphs(text string) []docParagraph {
	var paras []docParagraph
	for _, b := range parseBlocks(text) {
		switch b.kind {
		case blockHeading:
			paras = append(paras, docParagraph{heading: b.level, text: renderSpansPlain(parseSpans(b.text))})
		case blockCode:
			for _, line := range strings.Split(b.text, "\n") {
				paras = append(paras, docParagraph{runs: []Run{{Text: line, Mono: true}}})
			}
		default:
			line := strings.TrimSpace(b.line)
			if line == "" {
				continue
			}
			paras = append(paras, docParagraph{runs: ParseRuns(line)})
		}
	}
	return paras
}

// monoFont is the typeface for inline-code runs.
const monoFont = "Courier New"

// xmlEscaper escapes text for XML character data and attribute values.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>
`

const docxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>
`

const docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>
`

// docxStyles defines the Normal and heading styles referenced by
// document.xml. Sizes are half-points.
const docxStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:style w:type="paragraph" w:default="1" w:styleId="Normal">
<w:name w:val="Normal"/>
<w:rPr><w:sz w:val="24"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="Heading1">
<w:name w:val="heading 1"/><w:basedOn w:val="Normal"/>
<w:pPr><w:outlineLvl w:val="0"/></w:pPr>
<w:rPr><w:b/><w:sz w:val="36"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="Heading2">
<w:name w:val="heading 2"/><w:basedOn w:val="Normal"/>
<w:pPr><w:outlineLvl w:val="1"/></w:pPr>
<w:rPr><w:b/><w:sz w:val="32"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="Heading3">
<w:name w:val="heading 3"/><w:basedOn w:val="Normal"/>
<w:pPr><w:outlineLvl w:val="2"/></w:pPr>
<w:rPr><w:b/><w:sz w:val="28"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="Heading4">
<w:name w:val="heading 4"/><w:basedOn w:val="Normal"/>
<w:pPr><w:outlineLvl w:val="3"/></w:pPr>
<w:rPr><w:b/><w:sz w:val="26"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="Heading5">
<w:name w:val="heading 5"/><w:basedOn w:val="Normal"/>
<w:pPr><w:outlineLvl w:val="4"/></w:pPr>
<w:rPr><w:b/><w:sz w:val="24"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="Heading6">
<w:name w:val="heading 6"/><w:basedOn w:val="Normal"/>
<w:pPr><w:outlineLvl w:val="5"/></w:pPr>
<w:rPr><w:b/><w:i/><w:sz w:val="24"/></w:rPr>
</w:style>
</w:styles>
`

// writeDocx writes the complete word-processor document as an OOXML
// package: a document title heading, then per note a date heading followed
// by the note's paragraphs.
func writeDocx(w io.Writer, notes []Note, cfg ExportConfig) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name, content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRootRels},
		{"word/_rels/document.xml.rels", docxDocumentRels},
		{"word/styles.xml", docxStyles},
		{"word/document.xml", buildDocumentXML(notes, cfg)},
	}
	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("creating %s: %w", p.name, err)
		}
		if _, err := f.Write([]byte(p.content)); err != nil {
			return fmt.Errorf("writing %s: %w", p.name, err)
		}
	}
	return zw.Close()
}

// buildDocumentXML renders word/document.xml.
func buildDocumentXML(notes []Note, cfg ExportConfig) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` + "\n<w:body>\n")

	writeHeadingXML(&sb, 1, cfg.Title)
	for _, note := range notes {
		writeHeadingXML(&sb, 2, "Date: "+note.Date)
		for _, p := range docParagraphs(note.Text) {
			if p.heading > 0 {
				writeHeadingXML(&sb, p.heading, p.text)
				continue
			}
			writeRunsXML(&sb, p.runs)
		}
		sb.WriteString("<w:p/>\n") // blank paragraph between notes
	}

	sb.WriteString("<w:sectPr/>\n</w:body>\n</w:document>\n")
	return sb.String()
}

// writeHeadingXML emits one heading paragraph.
func writeHeadingXML(sb *strings.Builder, level int, text string) {
	fmt.Fprintf(sb, `<w:p><w:pPr><w:pStyle w:val="Heading%d"/></w:pPr><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`+"\n",
		level, xmlEscaper.Replace(text))
}

// writeRunsXML emits one body paragraph of styled runs.
func writeRunsXML(sb *strings.Builder, runs []Run) {
	sb.WriteString("<w:p>")
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		sb.WriteString("<w:r>")
		if r.Bold || r.Italic || r.Mono {
			sb.WriteString("<w:rPr>")
			if r.Bold {
				sb.WriteString("<w:b/>")
			}
			if r.Italic {
				sb.WriteString("<w:i/>")
			}
			if r.Mono {
				fmt.Fprintf(sb, `<w:rFonts w:ascii="%s" w:hAnsi="%s"/>`, monoFont, monoFont)
			}
			sb.WriteString("</w:rPr>")
		}
		fmt.Fprintf(sb, `<w:t xml:space="preserve">%s</w:t>`, xmlEscaper.Replace(r.Text))
		sb.WriteString("</w:r>")
	}
	sb.WriteString("</w:p>\n")
}
