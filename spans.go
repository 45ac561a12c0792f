package journalbook

import "strings"

// SpanKind identifies one recognized inline construct.
type SpanKind int

// Span kinds, in scan precedence order.
const (
	SpanText SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanLink
)

// Span is one typed run of inline text. Spans are flat: construct content
// is kept verbatim rather than re-scanned, so every character belongs to
// exactly one span and each renderer applies exactly one style per span.
type Span struct {
	Kind SpanKind
	Text string // inner text; the label for links
	URL  string // links only
}

// blockKind identifies one line-level construct.
type blockKind int

const (
	blockLine    blockKind = iota // a raw paragraph line, possibly blank
	blockHeading                  // "# " through "###### " at line start
	blockCode                     // fenced code block, held opaque
)

// block is one line-level unit of a note body.
type block struct {
	kind  blockKind
	level int    // heading level 1-6
	text  string // heading text (marker and space stripped) or fence content
	line  string // raw line for blockLine
}

// parseBlocks splits text into line-level blocks. Fenced code blocks are
// extracted first and held aside opaque so their content is never subject
// to emphasis or escaping; an unclosed fence stays literal. A line is a
// heading only if 1-6 markers begin the line and are followed by a space
// and at least one character.
func parseBlocks(text string) []block {
	lines := strings.Split(text, "\n")
	blocks := make([]block, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if strings.HasPrefix(line, "```") {
			if close := findFenceClose(lines, i+1); close != -1 {
				blocks = append(blocks, block{
					kind: blockCode,
					text: strings.Join(lines[i+1:close], "\n"),
				})
				i = close
				continue
			}
			// Unclosed fence degrades to a literal line.
		}

		if level, rest, ok := headingLine(line); ok {
			blocks = append(blocks, block{kind: blockHeading, level: level, text: rest})
			continue
		}

		blocks = append(blocks, block{kind: blockLine, line: line})
	}
	return blocks
}

// findFenceClose returns the index of the closing fence line at or after
// from, or -1 if the fence never closes.
func findFenceClose(lines []string, from int) int {
	for j := from; j < len(lines); j++ {
		if strings.HasPrefix(lines[j], "```") {
			return j
		}
	}
	return -1
}

// headingLine reports whether line is an ATX heading: 1-6 '#' at line
// start, a space, then at least one character. "#Title" is not a heading.
func headingLine(line string) (level int, text string, ok bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n < 1 || n > 6 || n >= len(line) || line[n] != ' ' || n+1 >= len(line) {
		return 0, "", false
	}
	return n, line[n+1:], true
}

// parseSpans scans one line into flat spans. Recognized constructs:
// bold (** or __, non-greedy), italic (* or _, never adjacent to a second
// marker), inline code (`), links ([label](url)). Unmatched or unbalanced
// markers are left as literal text; no error is ever raised.
func parseSpans(line string) []Span {
	var spans []Span
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, Span{Kind: SpanText, Text: plain.String()})
			plain.Reset()
		}
	}

	i := 0
	for i < len(line) {
		c := line[i]

		// Bold: ** or __ with at least one character before the closer.
		if (c == '*' || c == '_') && i+1 < len(line) && line[i+1] == c {
			delim := line[i : i+2]
			if end := strings.Index(line[i+2:], delim); end >= 1 {
				flush()
				spans = append(spans, Span{Kind: SpanBold, Text: line[i+2 : i+2+end]})
				i += end + 4
			} else {
				// Unclosed or empty bold: both markers stay literal, and
				// the second one can never open an emphasis span.
				plain.WriteString(delim)
				i += 2
			}
			continue
		}

		// Italic: single marker, closer not adjacent to the same marker,
		// content free of the marker character.
		if c == '*' || c == '_' {
			if j := strings.IndexByte(line[i+1:], c); j >= 1 {
				close := i + 1 + j
				if close+1 >= len(line) || line[close+1] != c {
					flush()
					spans = append(spans, Span{Kind: SpanItalic, Text: line[i+1 : close]})
					i = close + 1
					continue
				}
			}
			plain.WriteByte(c)
			i++
			continue
		}

		// Inline code.
		if c == '`' {
			if j := strings.IndexByte(line[i+1:], '`'); j >= 1 {
				flush()
				spans = append(spans, Span{Kind: SpanCode, Text: line[i+1 : i+1+j]})
				i += j + 2
				continue
			}
			plain.WriteByte(c)
			i++
			continue
		}

		// Link: [label](url), both parts non-empty.
		if c == '[' {
			if label, url, size, ok := parseLink(line[i:]); ok {
				flush()
				spans = append(spans, Span{Kind: SpanLink, Text: label, URL: url})
				i += size
				continue
			}
			plain.WriteByte(c)
			i++
			continue
		}

		plain.WriteByte(c)
		i++
	}

	flush()
	return spans
}

// parseLink matches a leading [label](url) and returns its parts and
// total byte length.
func parseLink(s string) (label, url string, size int, ok bool) {
	mid := strings.Index(s, "](")
	if mid < 2 {
		return "", "", 0, false
	}
	end := strings.IndexByte(s[mid+2:], ')')
	if end < 1 {
		return "", "", 0, false
	}
	return s[1:mid], s[mid+2 : mid+2+end], mid + 2 + end + 1, true
}
