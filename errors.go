package journalbook

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoEntries        = errors.New("no entries found in journal export")
	ErrUnsupportedInput = errors.New("unsupported input file type (use .json or .md)")
	ErrInvalidTimestamp = errors.New("invalid entry creation timestamp")
	ErrEmptyNotes       = errors.New("no notes to export")
	ErrReadInput        = errors.New("failed to read input file")

	// PDF rendering errors.
	ErrPDFConversion  = errors.New("PDF conversion failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Export configuration validation errors.
	ErrInvalidHeadingFallback = errors.New("invalid heading fallback mode")
	ErrInvalidPDFEngine       = errors.New("invalid PDF engine")
)
