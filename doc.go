// Package journalbook converts a personal journal export into a batch of
// archival document formats: plain text, Markdown, LaTeX, styled HTML, a
// Word-processor document, a PDF, and an EPUB e-book.
//
// # Quick Start
//
// Create a service and export a journal file:
//
//	svc := journalbook.New()
//	defer svc.Close()
//
//	result, err := svc.Export(ctx, journalbook.Input{
//	    Path:   "Journal1.json",
//	    Config: journalbook.DefaultExportConfig(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", len(result.Files), "files to", result.OutputDir)
//
// The result lists every file written, the e-book chapter titles, and any
// per-format warnings (for example a missing cover image or a failed PDF
// conversion). Per-format failures never abort the run; only input errors do.
//
// # Conversion Pipeline
//
// The export proceeds in stages:
//
//  1. Load notes from a Day One-style JSON export (sorted by creation date)
//     or a flat Markdown file (dated by modification time).
//  2. Scan each note's text into typed spans (bold, italic, code, link,
//     heading, fenced code) with a fixed inline grammar.
//  3. Segment note bodies into level-1-heading sections for the formats
//     that need document structure.
//  4. Emit one complete document per target format, each rendering the same
//     span sequence with its own escaping and wrapping rules.
//  5. Render a PDF from the already-produced documents via an external
//     converter (LibreOffice by default, headless Chrome optionally).
//
// # Right-to-Left Text
//
// When any note contains a character in the Arabic script range the LaTeX
// output switches to xepersian with a configurable font, character escaping
// is disabled, and the HTML output is flagged dir="rtl". Drop caps are
// auto-disabled for right-to-left documents.
//
// # PDF Rendering
//
// PDF generation is a boundary collaborator behind the Renderer interface.
// The default renderer shells out to LibreOffice to convert the generated
// .docx; the Chrome renderer prints the generated .html with go-rod. Both
// report failure as a warning with a manual fallback command, never as a
// fatal error.
package journalbook
