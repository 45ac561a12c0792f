package journalbook

import (
	"fmt"
	"strings"
	"time"
)

// JournalEntry is one raw record from a journal export.
// Immutable once loaded.
type JournalEntry struct {
	CreationDate time.Time
	Text         string
}

// Note is one dated unit of journal text after date normalization.
type Note struct {
	Date string // formatted with the configured date layout
	Text string
}

// Section is a contiguous run of a note's lines governed by one level-1
// heading. Title is empty only when no heading precedes the content.
// Content includes the heading line itself.
type Section struct {
	Title   string
	Content string
}

// Chapter is the unit of structure in the e-book and typeset outputs:
// one per titled Section, or one per Note when no level-1 heading exists
// anywhere (fallback, titled "Entry <date>").
type Chapter struct {
	Title   string
	Date    string
	Content string // markdown body, heading line already stripped
}

// Heading fallback modes for levels the typeset output has no sectioning
// command for (#### and deeper).
const (
	HeadingFallbackParagraph = "paragraph" // render as a bold standalone line
	HeadingFallbackIgnore    = "ignore"    // keep the line as plain text
)

// PDF engine names.
const (
	PDFEngineOffice = "office" // LibreOffice converts the generated .docx
	PDFEngineChrome = "chrome" // headless Chrome prints the generated .html
	PDFEngineNone   = "none"   // skip PDF generation
)

// DefaultRTLFont is the typeface used by the xepersian preamble when
// right-to-left text is detected and no font is configured.
const DefaultRTLFont = "XB Niloofar"

// DefaultTitle is the document title used when none is configured.
const DefaultTitle = "Collected Notes"

// DefaultCoverPath is the cover image looked up in the working directory.
const DefaultCoverPath = "cover.jpg"

// ExportConfig controls document generation across all emitters.
type ExportConfig struct {
	Title           string // document title (all formats)
	OutputDir       string // empty = directory named after the input stem
	DateLayout      string // Go time layout for the per-note date label
	CoverPath       string // e-book cover image; missing file is a warning
	RTLFont         string // font for xepersian output
	DropCaps        bool   // decorative first letter in the typeset output
	HeadingFallback string // "paragraph" or "ignore"
	PDFEngine       string // "office", "chrome", or "none"
}

// DefaultExportConfig returns the configuration the original scripts
// hard-coded as top-level constants.
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Title:           DefaultTitle,
		DateLayout:      "2006-01-02",
		CoverPath:       DefaultCoverPath,
		RTLFont:         DefaultRTLFont,
		DropCaps:        false,
		HeadingFallback: HeadingFallbackParagraph,
		PDFEngine:       PDFEngineOffice,
	}
}

// Validate checks enum-valued fields and fills empty ones with defaults.
func (c *ExportConfig) Validate() error {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.DateLayout == "" {
		c.DateLayout = "2006-01-02"
	}
	if c.RTLFont == "" {
		c.RTLFont = DefaultRTLFont
	}
	if c.HeadingFallback == "" {
		c.HeadingFallback = HeadingFallbackParagraph
	}
	switch c.HeadingFallback {
	case HeadingFallbackParagraph, HeadingFallbackIgnore:
	default:
		return fmt.Errorf("%w: %q (must be paragraph or ignore)", ErrInvalidHeadingFallback, c.HeadingFallback)
	}
	if c.PDFEngine == "" {
		c.PDFEngine = PDFEngineOffice
	}
	switch strings.ToLower(c.PDFEngine) {
	case PDFEngineOffice, PDFEngineChrome, PDFEngineNone:
	default:
		return fmt.Errorf("%w: %q (must be office, chrome, or none)", ErrInvalidPDFEngine, c.PDFEngine)
	}
	return nil
}

// Input contains export parameters.
type Input struct {
	Path   string       // journal export (.json) or flat Markdown file (.md)
	Config ExportConfig // zero value is replaced by DefaultExportConfig
}

// Result reports what one export run produced.
type Result struct {
	OutputDir    string
	Files        []string  // paths of documents written, in emission order
	Chapters     []Chapter // e-book chapters, in spine order
	FromHeadings bool      // chapters derived from level-1 headings
	RTL          bool      // Arabic-script text detected
	Warnings     []string  // per-format failures and skipped features
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
	now     func() time.Time
}

// defaultTimeout bounds the external PDF conversion step.
const defaultTimeout = 2 * time.Minute

// WithTimeout sets the PDF conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("journalbook: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithRenderer replaces the PDF renderer. The export config's PDFEngine is
// ignored when a renderer is injected.
func WithRenderer(r Renderer) Option {
	return func(s *Service) {
		s.pdf = r
	}
}

// WithClock overrides the time source used for output naming.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.cfg.now = now
	}
}
