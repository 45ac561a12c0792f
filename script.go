package journalbook

// arabicRangeLo and arabicRangeHi bound the Arabic script block used for
// right-to-left detection (U+0600 through U+06FF).
const (
	arabicRangeLo = 0x0600
	arabicRangeHi = 0x06FF
)

// ContainsArabic reports whether any character of s falls in the Arabic
// script Unicode range. This is a per-character range test, not
// script-aware tokenization: one Arabic character flips the whole
// document to right-to-left layout.
func ContainsArabic(s string) bool {
	for _, r := range s {
		if r >= arabicRangeLo && r <= arabicRangeHi {
			return true
		}
	}
	return false
}

// notesContainArabic reports whether any note's text contains Arabic
// script. Detection runs once over all notes so every emitter agrees on
// the document direction.
func notesContainArabic(notes []Note) bool {
	for _, n := range notes {
		if ContainsArabic(n.Text) {
			return true
		}
	}
	return false
}
