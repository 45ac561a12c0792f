package journalbook

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
	"time"
)

// epubIdentifier is the fixed package identifier carried over from the
// original export tool.
const epubIdentifier = "id123456"

// epubCoverName is the cover image's path inside the package.
const epubCoverName = "cover.jpg"

const epubContainerXML = `<?xml version="1.0" encoding="utf-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
<rootfiles>
<rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
</rootfiles>
</container>
`

// chapterFileName returns the spine file name for the 1-based chapter
// number, e.g. "chap_01.xhtml".
func chapterFileName(n int) string {
	return fmt.Sprintf("chap_%02d.xhtml", n)
}

// writeEpub writes the complete e-book package: one chapter file per
// Chapter, an NCX and a nav document, and an optional cover image (nil
// means no cover). modified stamps the package metadata.
func writeEpub(w io.Writer, chapters []Chapter, fromHeadings bool, cfg ExportConfig, cover []byte, modified time.Time) error {
	zw := zip.NewWriter(w)

	// The mimetype entry must come first and be stored uncompressed.
	mt, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return fmt.Errorf("creating mimetype: %w", err)
	}
	if _, err := mt.Write([]byte("application/epub+zip")); err != nil {
		return fmt.Errorf("writing mimetype: %w", err)
	}

	parts := []struct {
		name    string
		content []byte
	}{
		{"META-INF/container.xml", []byte(epubContainerXML)},
		{"OEBPS/content.opf", []byte(buildOPF(chapters, cfg, cover != nil, modified))},
		{"OEBPS/toc.ncx", []byte(buildNCX(chapters, cfg))},
		{"OEBPS/nav.xhtml", []byte(buildNav(chapters, cfg))},
	}
	if cover != nil {
		parts = append(parts, struct {
			name    string
			content []byte
		}{"OEBPS/" + epubCoverName, cover})
	}
	for i, ch := range chapters {
		parts = append(parts, struct {
			name    string
			content []byte
		}{"OEBPS/" + chapterFileName(i + 1), []byte(buildChapterXHTML(ch, fromHeadings))})
	}

	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("creating %s: %w", p.name, err)
		}
		if _, err := f.Write(p.content); err != nil {
			return fmt.Errorf("writing %s: %w", p.name, err)
		}
	}
	return zw.Close()
}

// buildChapterXHTML renders one chapter document. Chapters derived from
// headings open with a level-2 title and repeat their note's date below
// it; fallback chapters carry the date in a level-1 title.
func buildChapterXHTML(ch Chapter, fromHeadings bool) string {
	var body strings.Builder
	if fromHeadings {
		body.WriteString("<h2>" + xmlEscaper.Replace(ch.Title) + "</h2>\n")
		body.WriteString("<p><strong>Date: " + xmlEscaper.Replace(ch.Date) + "</strong></p>\n")
	} else {
		body.WriteString("<h1>" + xmlEscaper.Replace(ch.Title) + "</h1>\n")
	}
	// The shared HTML renderer emits HTML5 void tags; XHTML wants them
	// self-closed.
	body.WriteString(strings.ReplaceAll(RenderHTML(ch.Content), "<br>", "<br/>"))

	return `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" lang="en">
<head><title>` + xmlEscaper.Replace(ch.Title) + `</title></head>
<body>
` + body.String() + `
</body>
</html>
`
}

// buildOPF renders the package document: metadata, manifest, and spine.
func buildOPF(chapters []Chapter, cfg ExportConfig, hasCover bool, modified time.Time) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="utf-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="3.0" unique-identifier="bookid">
<metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
<dc:identifier id="bookid">` + epubIdentifier + `</dc:identifier>
<dc:title>` + xmlEscaper.Replace(cfg.Title) + `</dc:title>
<dc:language>en</dc:language>
<meta property="dcterms:modified">` + modified.UTC().Format("2006-01-02T15:04:05Z") + `</meta>
`)
	if hasCover {
		sb.WriteString(`<meta name="cover" content="cover-img"/>` + "\n")
	}
	sb.WriteString(`</metadata>
<manifest>
<item id="ncx" href="toc.ncx" media-type="application/x-dtbncx+xml"/>
<item id="nav" href="nav.xhtml" media-type="application/xhtml+xml" properties="nav"/>
`)
	if hasCover {
		sb.WriteString(`<item id="cover-img" href="` + epubCoverName + `" media-type="image/jpeg" properties="cover-image"/>` + "\n")
	}
	for i := range chapters {
		fmt.Fprintf(&sb, `<item id="chap%d" href="%s" media-type="application/xhtml+xml"/>`+"\n", i+1, chapterFileName(i+1))
	}
	sb.WriteString(`</manifest>
<spine toc="ncx">
<itemref idref="nav"/>
`)
	for i := range chapters {
		fmt.Fprintf(&sb, `<itemref idref="chap%d"/>`+"\n", i+1)
	}
	sb.WriteString("</spine>\n</package>\n")
	return sb.String()
}

// buildNCX renders the legacy navigation file for EPUB2 readers.
func buildNCX(chapters []Chapter, cfg ExportConfig) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="utf-8"?>
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">
<head>
<meta name="dtb:uid" content="` + epubIdentifier + `"/>
<meta name="dtb:depth" content="1"/>
</head>
<docTitle><text>` + xmlEscaper.Replace(cfg.Title) + `</text></docTitle>
<navMap>
`)
	for i, ch := range chapters {
		fmt.Fprintf(&sb, `<navPoint id="chap%d" playOrder="%d"><navLabel><text>%s</text></navLabel><content src="%s"/></navPoint>`+"\n",
			i+1, i+1, xmlEscaper.Replace(ch.Title), chapterFileName(i+1))
	}
	sb.WriteString("</navMap>\n</ncx>\n")
	return sb.String()
}

// buildNav renders the EPUB3 navigation document.
func buildNav(chapters []Chapter, cfg ExportConfig) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops" lang="en">
<head><title>` + xmlEscaper.Replace(cfg.Title) + `</title></head>
<body>
<nav epub:type="toc" id="toc">
<h1>Table of Contents</h1>
<ol>
`)
	for i, ch := range chapters {
		fmt.Fprintf(&sb, `<li><a href="%s">%s</a></li>`+"\n", chapterFileName(i+1), xmlEscaper.Replace(ch.Title))
	}
	sb.WriteString("</ol>\n</nav>\n</body>\n</html>\n")
	return sb.String()
}
