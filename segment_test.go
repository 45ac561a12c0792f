package journalbook

import (
	"reflect"
	"strings"
	"testing"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Section
	}{
		{
			name:  "no heading is one untitled section",
			input: "just text\nmore text",
			want:  []Section{{Content: "just text\nmore text"}},
		},
		{
			name:  "single heading",
			input: "# One\nbody",
			want:  []Section{{Title: "One", Content: "# One\nbody"}},
		},
		{
			name:  "leading text before first heading kept untitled",
			input: "intro\n# One\nbody",
			want: []Section{
				{Content: "intro"},
				{Title: "One", Content: "# One\nbody"},
			},
		},
		{
			name:  "two headings split in order",
			input: "# One\na\n# Two\nb",
			want: []Section{
				{Title: "One", Content: "# One\na"},
				{Title: "Two", Content: "# Two\nb"},
			},
		},
		{
			name:  "deeper headings do not split",
			input: "# One\n## sub\n### subsub",
			want:  []Section{{Title: "One", Content: "# One\n## sub\n### subsub"}},
		},
		{
			name:  "hash without space does not split",
			input: "#Title\ntext",
			want:  []Section{{Content: "#Title\ntext"}},
		},
		{
			name:  "title is trimmed",
			input: "# Spaced   \nbody",
			want:  []Section{{Title: "Spaced", Content: "# Spaced   \nbody"}},
		},
		{
			name:  "empty input",
			input: "",
			want:  []Section{{Content: ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

// Concatenating section contents in order must reconstruct the input.
func TestSegmentRoundTrip(t *testing.T) {
	inputs := []string{
		"intro\n# One\nbody\n# Two\nmore",
		"# Only\nline",
		"no headings at all",
		"\n\n# After blanks\nx",
		"trailing\n# End",
		"",
	}
	for _, in := range inputs {
		sections := Segment(in)
		contents := make([]string, len(sections))
		for i, s := range sections {
			contents[i] = s.Content
		}
		if got := strings.Join(contents, "\n"); got != in {
			t.Errorf("Segment round trip failed for %q: got %q", in, got)
		}
	}
}

func TestBuildChapters(t *testing.T) {
	t.Run("headings become chapters in order", func(t *testing.T) {
		notes := []Note{
			{Date: "2023-01-01", Text: "# First\nalpha"},
			{Date: "2023-01-02", Text: "# Second\nbeta\n# Third\ngamma"},
		}
		chapters, fromHeadings := BuildChapters(notes)
		if !fromHeadings {
			t.Fatal("BuildChapters() fromHeadings = false, want true")
		}
		want := []Chapter{
			{Title: "First", Date: "2023-01-01", Content: "alpha"},
			{Title: "Second", Date: "2023-01-02", Content: "beta"},
			{Title: "Third", Date: "2023-01-02", Content: "gamma"},
		}
		if !reflect.DeepEqual(chapters, want) {
			t.Errorf("BuildChapters() = %+v, want %+v", chapters, want)
		}
	})

	t.Run("untitled leading section skipped", func(t *testing.T) {
		notes := []Note{{Date: "2023-01-01", Text: "preamble\n# Real\nbody"}}
		chapters, fromHeadings := BuildChapters(notes)
		if !fromHeadings {
			t.Fatal("BuildChapters() fromHeadings = false, want true")
		}
		if len(chapters) != 1 || chapters[0].Title != "Real" {
			t.Errorf("BuildChapters() = %+v, want single chapter titled Real", chapters)
		}
	})

	t.Run("fallback to one chapter per note", func(t *testing.T) {
		notes := []Note{
			{Date: "2023-01-01", Text: "no headings here"},
			{Date: "2023-01-02", Text: "## only deeper ones"},
		}
		chapters, fromHeadings := BuildChapters(notes)
		if fromHeadings {
			t.Fatal("BuildChapters() fromHeadings = true, want false")
		}
		if len(chapters) != len(notes) {
			t.Fatalf("BuildChapters() produced %d chapters, want %d", len(chapters), len(notes))
		}
		for i, ch := range chapters {
			wantTitle := "Entry " + notes[i].Date
			if ch.Title != wantTitle {
				t.Errorf("chapter %d title = %q, want %q", i, ch.Title, wantTitle)
			}
			if ch.Content != notes[i].Text {
				t.Errorf("chapter %d content = %q, want %q", i, ch.Content, notes[i].Text)
			}
		}
	})

	t.Run("heading-only section has empty content", func(t *testing.T) {
		notes := []Note{{Date: "2023-01-01", Text: "# Bare"}}
		chapters, _ := BuildChapters(notes)
		if len(chapters) != 1 || chapters[0].Content != "" {
			t.Errorf("BuildChapters() = %+v, want one chapter with empty content", chapters)
		}
	})
}

func TestDropFirstLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "multi line", input: "# H\nbody\nmore", expected: "body\nmore"},
		{name: "single line", input: "# H", expected: ""},
		{name: "empty", input: "", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dropFirstLine(tt.input); got != tt.expected {
				t.Errorf("dropFirstLine(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
