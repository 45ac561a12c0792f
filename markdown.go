package journalbook

import "strings"

// markdownSeparator joins notes in the consolidated Markdown document.
const markdownSeparator = "\n\n---\n\n"

// emitMarkdown renders the consolidated Markdown document: each note's raw
// text prefixed with a level-2 date heading, notes joined by a horizontal
// rule.
func emitMarkdown(notes []Note) string {
	parts := make([]string, 0, len(notes))
	for _, note := range notes {
		parts = append(parts, "## Date: "+note.Date+"\n\n"+note.Text)
	}
	return strings.Join(parts, markdownSeparator)
}
