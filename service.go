package journalbook

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mjbahonar/journalbook/internal/fileutil"
)

// Service orchestrates the export pipeline: load notes, detect script
// direction, emit every document format, render the PDF.
type Service struct {
	cfg serviceConfig
	pdf Renderer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithRenderer).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{timeout: defaultTimeout, now: time.Now},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close releases renderer resources (a headless browser, if one was used).
func (s *Service) Close() error {
	if s.pdf != nil {
		return s.pdf.Close()
	}
	return nil
}

// Export runs the full pipeline and writes one set of sibling documents.
// Input errors (unreadable file, unsupported extension, empty export) are
// fatal and happen before any output is written; per-format failures are
// collected as warnings and never abort the remaining emitters.
func (s *Service) Export(ctx context.Context, in Input) (*Result, error) {
	cfg := in.Config
	if cfg == (ExportConfig{}) {
		cfg = DefaultExportConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	notes, err := LoadNotes(in.Path, cfg.DateLayout)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, ErrEmptyNotes
	}

	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = fileutil.Stem(in.Path)
	}
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	today := s.cfg.now().Format("2006-01-02")
	prefix := filepath.Join(outDir, fmt.Sprintf("output_%s_%s", filepath.Base(in.Path), today))

	rtl := notesContainArabic(notes)
	chapters, fromHeadings := BuildChapters(notes)

	result := &Result{
		OutputDir:    outDir,
		Chapters:     chapters,
		FromHeadings: fromHeadings,
		RTL:          rtl,
	}

	// Each emitter is isolated: a failing format is reported as a warning
	// and the remaining formats are still produced.
	writeDoc := func(ext string, content []byte) {
		path := prefix + ext
		if err := os.WriteFile(path, content, 0o600); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", ext, err))
			return
		}
		result.Files = append(result.Files, path)
	}

	writeDoc(".txt", []byte(emitText(notes)))
	writeDoc(".md", []byte(emitMarkdown(notes)))
	writeDoc(".tex", []byte(emitLaTeX(notes, cfg, rtl)))
	writeDoc(".html", []byte(emitHTML(notes, cfg, rtl)))

	var docxBuf bytes.Buffer
	if err := writeDocx(&docxBuf, notes, cfg); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf(".docx: %v", err))
	} else {
		writeDoc(".docx", docxBuf.Bytes())
	}

	cover := s.loadCover(cfg.CoverPath, result)
	var epubBuf bytes.Buffer
	if err := writeEpub(&epubBuf, chapters, fromHeadings, cfg, cover, s.cfg.now()); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf(".epub: %v", err))
	} else {
		writeDoc(".epub", epubBuf.Bytes())
	}

	s.renderPDF(ctx, cfg, RenderInput{
		DocxPath: prefix + ".docx",
		HTMLPath: prefix + ".html",
		TexPath:  prefix + ".tex",
		PDFPath:  prefix + ".pdf",
		OutDir:   outDir,
	}, result)

	return result, nil
}

// loadCover reads the cover image if present. Absence is not an error:
// a warning is recorded and the e-book is produced without a cover.
func (s *Service) loadCover(path string, result *Result) []byte {
	if path == "" {
		return nil
	}
	if !fileutil.FileExists(path) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("cover image (%s) not found - EPUB will be created without cover", path))
		return nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- cover path is user-provided
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("reading cover image: %v", err))
		return nil
	}
	return data
}

// renderPDF runs the configured renderer over the already-produced
// documents. Failure of the external step is a warning with a manual
// fallback command, never fatal.
func (s *Service) renderPDF(ctx context.Context, cfg ExportConfig, in RenderInput, result *Result) {
	if s.pdf == nil {
		switch strings.ToLower(cfg.PDFEngine) {
		case PDFEngineOffice:
			s.pdf = newOfficeRenderer()
		case PDFEngineChrome:
			s.pdf = newChromeRenderer(s.cfg.timeout)
		default:
			return
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	if err := s.pdf.Render(ctx, in); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("PDF conversion failed: %v. To generate it manually, run: %s", err, s.pdf.FallbackHint(in)))
		return
	}
	result.Files = append(result.Files, in.PDFPath)
}
