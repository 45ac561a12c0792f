package journalbook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

// creationDateLayout matches the export's ISO-8601 UTC second-precision
// timestamps, e.g. "2023-04-05T08:30:00Z".
const creationDateLayout = "2006-01-02T15:04:05Z07:00"

// crlfOrCR normalizes line endings before any line-based processing.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// journalExport mirrors the Day One-style JSON export structure.
type journalExport struct {
	Entries []exportEntry `json:"entries"`
}

type exportEntry struct {
	CreationDate string `json:"creationDate"`
	Text         string `json:"text"`
}

// LoadEntries reads a journal export and returns its entries sorted
// ascending by creation date (stable on ties).
func LoadEntries(path string) ([]JournalEntry, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	var export journalExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("%w: parsing JSON: %v", ErrReadInput, err)
	}
	if len(export.Entries) == 0 {
		return nil, ErrNoEntries
	}

	// Sort by the raw timestamp string: ISO-8601 UTC sorts
	// lexicographically in chronological order.
	sort.SliceStable(export.Entries, func(i, j int) bool {
		return export.Entries[i].CreationDate < export.Entries[j].CreationDate
	})

	entries := make([]JournalEntry, 0, len(export.Entries))
	for _, e := range export.Entries {
		ts, err := time.Parse(creationDateLayout, e.CreationDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimestamp, e.CreationDate)
		}
		entries = append(entries, JournalEntry{CreationDate: ts, Text: e.Text})
	}
	return entries, nil
}

// NotesFromEntries converts loaded entries into dated notes, preserving
// order. Text is trimmed and line endings are normalized to \n.
func NotesFromEntries(entries []JournalEntry, dateLayout string) []Note {
	notes := make([]Note, 0, len(entries))
	for _, e := range entries {
		notes = append(notes, Note{
			Date: e.CreationDate.Format(dateLayout),
			Text: normalizeText(e.Text),
		})
	}
	return notes
}

// LoadNotes reads the input file and produces the ordered note sequence.
// A .json file is treated as a journal export; a .md file becomes a single
// note dated by its modification time. Any other extension is rejected
// before any output is written.
func LoadNotes(path, dateLayout string) ([]Note, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		entries, err := LoadEntries(path)
		if err != nil {
			return nil, err
		}
		return NotesFromEntries(entries, dateLayout), nil

	case ".md":
		data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		return []Note{{
			Date: info.ModTime().Format(dateLayout),
			Text: normalizeText(string(data)),
		}}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedInput, path)
	}
}

// normalizeText trims surrounding whitespace and normalizes line endings.
func normalizeText(s string) string {
	return strings.TrimSpace(crlfOrCR.ReplaceAllString(s, "\n"))
}
