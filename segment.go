package journalbook

import "strings"

// Segment splits a note body into level-1-heading sections. A "# " line
// starts a new section and becomes its title (marker stripped, trimmed);
// the section's content includes the heading line itself. Lines before the
// first heading form an untitled leading section, so concatenating the
// section contents in order reconstructs the input exactly. If no level-1
// heading appears, the whole text is one untitled section.
func Segment(text string) []Section {
	var sections []Section
	var current []string
	title := ""
	started := false

	flush := func() {
		if started {
			sections = append(sections, Section{Title: title, Content: strings.Join(current, "\n")})
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if level, rest, ok := headingLine(line); ok && level == 1 {
			flush()
			title = strings.TrimSpace(rest)
			current = []string{line}
			started = true
			continue
		}
		if !started {
			started = true
		}
		current = append(current, line)
	}
	flush()

	if sections == nil {
		sections = []Section{{Content: text}}
	}
	return sections
}

// BuildChapters flattens notes into the chapter sequence used by the
// e-book and typeset outputs. When any level-1 heading exists, each titled
// section becomes a chapter tagged with its note's date (untitled leading
// sections are skipped, matching the plain-text formats keeping them).
// Otherwise every note becomes one chapter titled "Entry <date>".
// fromHeadings reports which mode was used.
func BuildChapters(notes []Note) (chapters []Chapter, fromHeadings bool) {
	for _, note := range notes {
		for _, sec := range Segment(note.Text) {
			if sec.Title == "" {
				continue
			}
			chapters = append(chapters, Chapter{
				Title:   sec.Title,
				Date:    note.Date,
				Content: dropFirstLine(sec.Content),
			})
		}
	}
	if chapters != nil {
		return chapters, true
	}

	for _, note := range notes {
		chapters = append(chapters, Chapter{
			Title:   "Entry " + note.Date,
			Date:    note.Date,
			Content: note.Text,
		})
	}
	return chapters, false
}

// dropFirstLine removes a section's heading line from its content.
func dropFirstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i != -1 {
		return s[i+1:]
	}
	return ""
}
