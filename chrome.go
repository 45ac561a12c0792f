package journalbook

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// A4 page dimensions in inches, matching the typeset output's paper size.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 0.5
)

// chromeRenderer renders the PDF by printing the already-produced HTML
// document in headless Chrome. Rod automatically downloads Chromium on
// first run if not found.
type chromeRenderer struct {
	browser *rod.Browser
	timeout time.Duration
}

// newChromeRenderer creates a chromeRenderer with the given timeout.
func newChromeRenderer(timeout time.Duration) *chromeRenderer {
	return &chromeRenderer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *chromeRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Render prints the HTML document to PDF and writes it to the destination.
func (r *chromeRenderer) Render(ctx context.Context, in RenderInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.ensureBrowser(); err != nil {
		return err
	}

	absPath, err := filepath.Abs(in.HTMLPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + absPath})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return context.DeadlineExceeded
		}
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPDFConversion, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("%w: reading PDF stream: %v", ErrPDFConversion, err)
	}

	if err := os.WriteFile(in.PDFPath, pdfBuf, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrPDFConversion, in.PDFPath, err)
	}
	return nil
}

// FallbackHint suggests compiling the typeset output by hand.
func (r *chromeRenderer) FallbackHint(in RenderInput) string {
	return fmt.Sprintf("xelatex %q", in.TexPath)
}

// Close releases browser resources.
func (r *chromeRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
