package journalbook

import (
	"strings"
	"testing"
)

func TestRenderHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single paragraph",
			input:    "hello",
			expected: "<p>hello</p>",
		},
		{
			name:     "lines joined with br inside one paragraph",
			input:    "one\ntwo",
			expected: "<p>one<br>\ntwo</p>",
		},
		{
			name:     "blank line splits paragraphs",
			input:    "one\n\ntwo",
			expected: "<p>one</p>\n<p>two</p>",
		},
		{
			name:     "heading not wrapped in paragraph",
			input:    "before\n## Mid\nafter",
			expected: "<p>before</p>\n<h2>Mid</h2>\n<p>after</p>",
		},
		{
			name:     "all heading levels",
			input:    "# A\n###### F",
			expected: "<h1>A</h1>\n<h6>F</h6>",
		},
		{
			name:     "emphasis and code tags",
			input:    "**b** *i* `c`",
			expected: "<p><strong>b</strong> <em>i</em> <code>c</code></p>",
		},
		{
			name:     "link",
			input:    "[docs](https://example.com)",
			expected: `<p><a href="https://example.com">docs</a></p>`,
		},
		{
			name:     "text entity escaped",
			input:    "a < b & c",
			expected: "<p>a &lt; b &amp; c</p>",
		},
		{
			name:     "span content entity escaped",
			input:    "**a<b**",
			expected: "<p><strong>a&lt;b</strong></p>",
		},
		{
			name:     "fenced code block",
			input:    "```\nif x < 1 {\n}\n```",
			expected: "<pre><code>if x &lt; 1 {\n}</code></pre>",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderHTML(tt.input); got != tt.expected {
				t.Errorf("RenderHTML(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEmitHTML(t *testing.T) {
	notes := []Note{
		{Date: "2023-04-05", Text: "first"},
		{Date: "2023-04-06", Text: "second"},
	}
	cfg := DefaultExportConfig()
	cfg.Title = "A <Title>"

	t.Run("structure and escaping", func(t *testing.T) {
		doc := emitHTML(notes, cfg, false)
		for _, want := range []string{
			"<!DOCTYPE html>",
			"<title>A &lt;Title&gt;</title>",
			`<div class="main-title"><h1>A &lt;Title&gt;</h1></div>`,
			`<div class="entry-date">Date: 2023-04-05</div>`,
			`<div class="entry-date">Date: 2023-04-06</div>`,
			`<div class="entry-content">`,
			".container {",
		} {
			if !strings.Contains(doc, want) {
				t.Errorf("emitHTML() missing %q", want)
			}
		}
		if strings.Contains(doc, `dir="rtl"`) {
			t.Error("emitHTML() latin document carries dir=rtl")
		}
	})

	t.Run("rtl direction attribute", func(t *testing.T) {
		doc := emitHTML(notes, cfg, true)
		if !strings.Contains(doc, `<html lang="en" dir="rtl">`) {
			t.Error("emitHTML() rtl document missing dir=rtl on root")
		}
	})

	t.Run("entry count matches notes", func(t *testing.T) {
		doc := emitHTML(notes, cfg, false)
		if got := strings.Count(doc, `<div class="entry">`); got != len(notes) {
			t.Errorf("emitHTML() has %d entry blocks, want %d", got, len(notes))
		}
	})
}
