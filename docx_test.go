package journalbook

import (
	"archive/zip"
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestParseRuns(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Run
	}{
		{
			name: "bold is a single run",
			line: "**bold**",
			want: []Run{{Text: "bold", Bold: true}},
		},
		{
			name: "two italics are two italic runs",
			line: "*a* *b*",
			want: []Run{
				{Text: "a", Italic: true},
				{Text: " "},
				{Text: "b", Italic: true},
			},
		},
		{
			name: "inline code is monospace",
			line: "run `ls` now",
			want: []Run{
				{Text: "run "},
				{Text: "ls", Mono: true},
				{Text: " now"},
			},
		},
		{
			name: "link degrades to its label",
			line: "[docs](https://example.com)",
			want: []Run{{Text: "docs"}},
		},
		{
			name: "plain line",
			line: "nothing fancy",
			want: []Run{{Text: "nothing fancy"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRuns(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRuns(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestDocParagraphs(t *testing.T) {
	paras := docParagraphs("# Head\n\nbody **b**\n```\nl1\nl2\n```")

	want := []docParagraph{
		{heading: 1, text: "Head"},
		{runs: []Run{{Text: "body "}, {Text: "b", Bold: true}}},
		{runs: []Run{{Text: "l1", Mono: true}}},
		{runs: []Run{{Text: "l2", Mono: true}}},
	}
	if !reflect.DeepEqual(paras, want) {
		t.Errorf("docParagraphs() = %+v, want %+v", paras, want)
	}
}

// readZipFile returns the named entry's content from a zip archive.
func readZipFile(t *testing.T, zr *zip.Reader, name string) string {
	t.Helper()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		return string(data)
	}
	t.Fatalf("archive has no entry %s", name)
	return ""
}

func TestWriteDocx(t *testing.T) {
	notes := []Note{
		{Date: "2023-04-05", Text: "## Sub\nplain **bold** `mono`"},
		{Date: "2023-04-06", Text: "5 < 6 & 7"},
	}
	cfg := DefaultExportConfig()
	cfg.Title = "Journal & Co"

	var buf bytes.Buffer
	if err := writeDocx(&buf, notes, cfg); err != nil {
		t.Fatalf("writeDocx() error: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("reading archive: %v", err)
	}

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/document.xml",
	} {
		readZipFile(t, zr, name)
	}

	doc := readZipFile(t, zr, "word/document.xml")
	for _, want := range []string{
		`<w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t xml:space="preserve">Journal &amp; Co</w:t>`,
		`<w:pStyle w:val="Heading2"/></w:pPr><w:r><w:t xml:space="preserve">Date: 2023-04-05</w:t>`,
		`<w:pStyle w:val="Heading2"/></w:pPr><w:r><w:t xml:space="preserve">Sub</w:t>`,
		`<w:rPr><w:b/></w:rPr><w:t xml:space="preserve">bold</w:t>`,
		`<w:rFonts w:ascii="Courier New" w:hAnsi="Courier New"/>`,
		`<w:t xml:space="preserve">5 &lt; 6 &amp; 7</w:t>`,
		`<w:sectPr/>`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}

	styles := readZipFile(t, zr, "word/styles.xml")
	for _, want := range []string{`w:styleId="Heading1"`, `w:styleId="Heading6"`} {
		if !strings.Contains(styles, want) {
			t.Errorf("styles.xml missing %q", want)
		}
	}
}
