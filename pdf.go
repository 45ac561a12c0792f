package journalbook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/mjbahonar/journalbook/internal/fileutil"
)

// RenderInput hands a PDF renderer the already-produced sibling documents
// and the destination path. A renderer picks whichever source format it
// converts from.
type RenderInput struct {
	DocxPath string
	HTMLPath string
	TexPath  string
	PDFPath  string // destination
	OutDir   string
}

// Renderer converts one of the produced documents to PDF. Rendering is a
// boundary collaborator: failure is reported to the caller as a warning
// with the renderer's manual fallback command, never as a fatal error.
type Renderer interface {
	Render(ctx context.Context, in RenderInput) error
	// FallbackHint returns a command the user can run by hand when
	// rendering fails.
	FallbackHint(in RenderInput) string
	Close() error
}

// CommandRunner abstracts command execution to enable testing without real
// subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// execRunner implements CommandRunner using os/exec.
type execRunner struct{}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return "", "", fmt.Errorf("creating stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return "", "", fmt.Errorf("starting command: %w", err)
	}

	stderrContent, err := io.ReadAll(stderrPipe)
	if err != nil {
		return "", "", fmt.Errorf("reading stderr: %w", err)
	}

	err = cmd.Wait()
	return stdout.String(), string(stderrContent), err
}

// sofficeBinary is the LibreOffice entry point used for DOCX conversion.
const sofficeBinary = "soffice"

// officeRenderer renders the PDF by shelling out to LibreOffice, which
// converts the already-produced word-processor document. LibreOffice names
// its output after the input stem inside --outdir, which matches the
// export prefix, so the PDF lands at RenderInput.PDFPath.
type officeRenderer struct {
	runner CommandRunner
}

// newOfficeRenderer creates an officeRenderer with a real command runner.
func newOfficeRenderer() *officeRenderer {
	return &officeRenderer{runner: &execRunner{}}
}

// Render converts the DOCX to PDF.
func (r *officeRenderer) Render(ctx context.Context, in RenderInput) error {
	_, stderr, err := r.runner.Run(ctx, sofficeBinary,
		"--headless", "--convert-to", "pdf", "--outdir", in.OutDir, in.DocxPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPDFConversion, stderr, err)
	}
	if !fileutil.FileExists(in.PDFPath) {
		return fmt.Errorf("%w: converter reported success but %s was not written", ErrPDFConversion, in.PDFPath)
	}
	return nil
}

// FallbackHint suggests running the conversion by hand.
func (r *officeRenderer) FallbackHint(in RenderInput) string {
	return fmt.Sprintf("%s --headless --convert-to pdf --outdir %q %q", sofficeBinary, in.OutDir, in.DocxPath)
}

// Close is a no-op; the renderer holds no resources between runs.
func (r *officeRenderer) Close() error { return nil }
