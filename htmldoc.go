package journalbook

import (
	"html"
	"strings"
)

// htmlStyle is the embedded stylesheet for the standalone HTML document.
const htmlStyle = `<style>
    body {
        font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
        line-height: 1.6;
        color: #333;
        background-color: #f8f9fa;
        margin: 0;
        padding: 2rem;
    }
    .container {
        max-width: 800px;
        margin: 0 auto;
        background-color: #ffffff;
        border-radius: 10px;
        box-shadow: 0 4px 12px rgba(0,0,0,0.08);
        overflow: hidden;
    }
    .entry {
        padding: 2rem 2.5rem;
        border-bottom: 1px solid #e9ecef;
    }
    .entry:last-child {
        border-bottom: none;
    }
    .entry-date {
        font-size: 1.1rem;
        font-weight: 600;
        color: #007bff;
        margin-bottom: 1rem;
    }
    .entry-content h1, .entry-content h2, .entry-content h3, .entry-content h4, .entry-content h5, .entry-content h6 {
        color: #495057;
        margin-top: 1.5rem;
        margin-bottom: 0.8rem;
        line-height: 1.3;
    }
    .entry-content h1 { font-size: 1.8em; }
    .entry-content h2 { font-size: 1.5em; }
    .entry-content h3 { font-size: 1.25em; }
    .entry-content p {
        margin-top: 0;
        margin-bottom: 1rem;
    }
    .entry-content a {
        color: #0056b3;
        text-decoration: none;
    }
    .entry-content a:hover {
        text-decoration: underline;
    }
    .entry-content code {
        background-color: #e9ecef;
        padding: 0.2em 0.4em;
        margin: 0;
        font-size: 85%;
        border-radius: 3px;
    }
    .entry-content pre {
        background-color: #e9ecef;
        padding: 1rem;
        border-radius: 5px;
        overflow-x: auto;
    }
    .entry-content pre code {
        padding: 0;
        font-size: inherit;
        color: inherit;
        background-color: transparent;
    }
    .main-title {
        text-align: center;
        padding: 2rem;
        background-color: #007bff;
        color: white;
    }
    .main-title h1 {
        margin: 0;
        font-size: 2.5rem;
    }
</style>`

// headingTags maps heading levels to their HTML tag names.
var headingTags = [...]string{1: "h1", 2: "h2", 3: "h3", 4: "h4", 5: "h5", 6: "h6"}

// RenderHTML rewrites markdown text into an HTML fragment. Blank-line
// delimited runs become paragraphs with <br> line breaks; headings and
// fenced code are emitted as block elements and never re-wrapped in a
// paragraph tag. Text content is entity-escaped.
func RenderHTML(text string) string {
	var out []string
	var para []string

	flush := func() {
		if len(para) > 0 {
			out = append(out, "<p>"+strings.Join(para, "<br>\n")+"</p>")
			para = nil
		}
	}

	for _, b := range parseBlocks(text) {
		switch b.kind {
		case blockHeading:
			flush()
			tag := headingTags[b.level]
			out = append(out, "<"+tag+">"+renderSpansHTML(parseSpans(b.text))+"</"+tag+">")
		case blockCode:
			flush()
			out = append(out, "<pre><code>"+html.EscapeString(b.text)+"</code></pre>")
		default:
			if strings.TrimSpace(b.line) == "" {
				flush()
				continue
			}
			para = append(para, renderSpansHTML(parseSpans(b.line)))
		}
	}
	flush()
	return strings.Join(out, "\n")
}

// renderSpansHTML maps spans to inline tags, entity-escaping all content.
func renderSpansHTML(spans []Span) string {
	var sb strings.Builder
	for _, sp := range spans {
		switch sp.Kind {
		case SpanBold:
			sb.WriteString("<strong>" + html.EscapeString(sp.Text) + "</strong>")
		case SpanItalic:
			sb.WriteString("<em>" + html.EscapeString(sp.Text) + "</em>")
		case SpanCode:
			sb.WriteString("<code>" + html.EscapeString(sp.Text) + "</code>")
		case SpanLink:
			sb.WriteString(`<a href="` + html.EscapeString(sp.URL) + `">` + html.EscapeString(sp.Text) + "</a>")
		default:
			sb.WriteString(html.EscapeString(sp.Text))
		}
	}
	return sb.String()
}

// emitHTML renders the complete styled page: embedded stylesheet, a main
// title block, one entry block per note. The document root carries
// dir="rtl" when Arabic script was detected.
func emitHTML(notes []Note, cfg ExportConfig, rtl bool) string {
	dir := ""
	if rtl {
		dir = ` dir="rtl"`
	}

	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html>
<html lang="en"` + dir + `>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>` + html.EscapeString(cfg.Title) + `</title>
    ` + htmlStyle + `
</head>
<body>
    <div class="container">
        <div class="main-title"><h1>` + html.EscapeString(cfg.Title) + `</h1></div>
`)
	for _, note := range notes {
		sb.WriteString(`        <div class="entry">
            <div class="entry-date">Date: ` + html.EscapeString(note.Date) + `</div>
            <div class="entry-content">
` + RenderHTML(note.Text) + `
            </div>
        </div>
`)
	}
	sb.WriteString("    </div>\n</body>\n</html>\n")
	return sb.String()
}
