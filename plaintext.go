package journalbook

import "strings"

// RenderPlainText strips all recognized markdown constructs from text,
// keeping only their inner content: heading text without markers, link
// labels without URLs, fenced code content without fences. Unrecognized
// or unbalanced markers pass through untouched, so output length never
// exceeds input length.
//
// Removing fences and code markers can expose emphasis that was inside
// protected content, so stripping runs to a fixed point: applying
// RenderPlainText to its own output is a no-op. Each pass only removes
// characters, so the loop terminates.
func RenderPlainText(text string) string {
	for {
		out := stripMarkup(text)
		if out == text {
			return out
		}
		text = out
	}
}

// stripMarkup performs one stripping pass over text.
func stripMarkup(text string) string {
	var out []string
	for _, b := range parseBlocks(text) {
		switch b.kind {
		case blockHeading:
			out = append(out, renderSpansPlain(parseSpans(b.text)))
		case blockCode:
			out = append(out, b.text)
		default:
			out = append(out, renderSpansPlain(parseSpans(b.line)))
		}
	}
	return strings.Join(out, "\n")
}

// renderSpansPlain concatenates the inner text of every span.
func renderSpansPlain(spans []Span) string {
	var sb strings.Builder
	for _, sp := range spans {
		sb.WriteString(sp.Text)
	}
	return sb.String()
}

// emitText renders the plain-text document: one block per note, each
// prefixed with a date label, separated by blank lines.
func emitText(notes []Note) string {
	parts := make([]string, 0, len(notes))
	for _, note := range notes {
		parts = append(parts, "Date: "+note.Date+"\n"+RenderPlainText(note.Text))
	}
	return strings.Join(parts, "\n\n")
}
