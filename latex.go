package journalbook

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LaTeXOptions controls LaTeX rendering.
type LaTeXOptions struct {
	// RTL disables character escaping and is set when Arabic script is
	// detected; xepersian handles the raw text.
	RTL bool
	// HeadingFallback selects what to do with #### and deeper, which have
	// no sectioning command here: HeadingFallbackParagraph renders a bold
	// standalone line, HeadingFallbackIgnore keeps the line as plain text.
	HeadingFallback string
}

// escapeLaTeX backslash-escapes the characters that collide with LaTeX
// syntax and maps circumflex and tilde to their text macros. It is applied
// to span content only, never to generated commands or verbatim blocks, so
// already-emitted syntax is never re-escaped.
func escapeLaTeX(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&', '_', '#', '%', '$':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case '^':
			sb.WriteString(`\textasciicircum{}`)
		case '~':
			sb.WriteString(`\textasciitilde{}`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// RenderLaTeX rewrites markdown text into a LaTeX fragment: headings to
// sectioning commands, emphasis to \textbf/\textit, inline code to
// \texttt, links to \href, fenced code to verbatim environments. Plain
// content is escaped unless opts.RTL is set.
func RenderLaTeX(text string, opts LaTeXOptions) string {
	esc := escapeLaTeX
	if opts.RTL {
		esc = func(s string) string { return s }
	}

	var out []string
	for _, b := range parseBlocks(text) {
		switch b.kind {
		case blockHeading:
			out = append(out, latexHeading(b, esc, opts.HeadingFallback))
		case blockCode:
			out = append(out, "\\begin{verbatim}\n"+b.text+"\n\\end{verbatim}")
		default:
			out = append(out, renderSpansLaTeX(parseSpans(b.line), esc))
		}
	}
	return strings.Join(out, "\n")
}

// latexHeading maps heading levels 1-3 to sectioning commands and applies
// the configured fallback to deeper levels. The commands are unstarred so
// note headings are numbered and listed in the table of contents.
func latexHeading(b block, esc func(string) string, fallback string) string {
	inner := renderSpansLaTeX(parseSpans(b.text), esc)
	switch b.level {
	case 1:
		return "\\section{" + inner + "}"
	case 2:
		return "\\subsection{" + inner + "}"
	case 3:
		return "\\subsubsection{" + inner + "}"
	}
	if fallback == HeadingFallbackIgnore {
		// Reconstruct the raw line and treat it as ordinary text.
		raw := strings.Repeat("#", b.level) + " " + b.text
		return renderSpansLaTeX(parseSpans(raw), esc)
	}
	return "\\textbf{" + inner + "}"
}

// renderSpansLaTeX maps spans to typesetting commands, escaping content
// with esc.
func renderSpansLaTeX(spans []Span, esc func(string) string) string {
	var sb strings.Builder
	for _, sp := range spans {
		switch sp.Kind {
		case SpanBold:
			sb.WriteString("\\textbf{" + esc(sp.Text) + "}")
		case SpanItalic:
			sb.WriteString("\\textit{" + esc(sp.Text) + "}")
		case SpanCode:
			sb.WriteString("\\texttt{" + esc(sp.Text) + "}")
		case SpanLink:
			sb.WriteString("\\href{" + esc(sp.URL) + "}{" + esc(sp.Text) + "}")
		default:
			sb.WriteString(esc(sp.Text))
		}
	}
	return sb.String()
}

// emitLaTeX renders the complete compilable document: preamble, title
// page, table of contents, then one starred section per note. The preamble
// switches to xepersian with the configured font when rtl is set.
func emitLaTeX(notes []Note, cfg ExportConfig, rtl bool) string {
	var sb strings.Builder

	preamble := []string{
		`\documentclass[a4paper,12pt]{article}`,
		`\usepackage{hyperref}`,
		`\usepackage{fancyhdr}`,
		`\usepackage{graphicx}`,
		`\setlength{\headheight}{15pt}`,
	}
	dropCaps := cfg.DropCaps && !rtl
	if rtl {
		preamble = append(preamble,
			`\usepackage{xepersian}`,
			fmt.Sprintf(`\settextfont{%s}`, cfg.RTLFont),
		)
	} else {
		preamble = append(preamble, `\usepackage[utf8]{inputenc}`)
		if dropCaps {
			preamble = append(preamble, `\usepackage{lettrine}`)
		}
	}
	sb.WriteString(strings.Join(preamble, "\n") + "\n")
	sb.WriteString(fmt.Sprintf(`\hypersetup{colorlinks=true, linkcolor=blue, urlcolor=blue, pdftitle={%s}}`, escapeLaTeX(cfg.Title)) + "\n")
	sb.WriteString("\\pagestyle{fancy}\n\\fancyhf{}\n\\rhead{\\thepage}\n")
	sb.WriteString("\\begin{document}\n\n")
	sb.WriteString("\\begin{titlepage}\n\\centering\n\\vspace*{5cm}\n{\\Huge\\bfseries " +
		escapeLaTeX(cfg.Title) + " \\par}\n\\vfill\n\\end{titlepage}\n\n")
	sb.WriteString("\\tableofcontents\n\\newpage\n\n")

	opts := LaTeXOptions{RTL: rtl, HeadingFallback: cfg.HeadingFallback}
	for _, note := range notes {
		body := RenderLaTeX(note.Text, opts)
		if dropCaps {
			body = applyDropCap(body)
		}
		sb.WriteString(fmt.Sprintf("\\addcontentsline{toc}{section}{Entry: %s}\n", note.Date))
		sb.WriteString(fmt.Sprintf("\\section*{Entry: %s}\n%s\n\n\\newpage\n\n", note.Date, body))
	}

	sb.WriteString("\\end{document}\n")
	return sb.String()
}

// applyDropCap wraps the first letter of the first plain text line in a
// lettrine. Lines already starting with a command are skipped so generated
// syntax is never split.
func applyDropCap(body string) string {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if line == "" || strings.HasPrefix(line, "\\") {
			continue
		}
		r, size := utf8.DecodeRuneInString(line)
		if !unicode.IsLetter(r) {
			continue
		}
		rest := line[size:]
		word := rest
		if sp := strings.IndexByte(rest, ' '); sp != -1 {
			word = rest[:sp]
			rest = rest[sp:]
		} else {
			rest = ""
		}
		lines[i] = fmt.Sprintf("\\lettrine{%c}{%s}%s", r, word, rest)
		return strings.Join(lines, "\n")
	}
	return body
}
