package main

import (
	"errors"
	"os"

	journalbook "github.com/mjbahonar/journalbook"
	"github.com/mjbahonar/journalbook/internal/config"
	"github.com/mjbahonar/journalbook/internal/dateutil"
)

// Exit codes for the journalbook CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful export
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, or input data
	ExitIO        = 3 // File not found, permission denied
	ExitConverter = 4 // External converter/browser errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// External converter errors (exit 4)
	if errors.Is(err, journalbook.ErrPDFConversion) ||
		errors.Is(err, journalbook.ErrBrowserConnect) ||
		errors.Is(err, journalbook.ErrPageCreate) ||
		errors.Is(err, journalbook.ErrPageLoad) {
		return ExitConverter
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, journalbook.ErrReadInput) {
		return ExitIO
	}

	// Usage/config/input data errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, journalbook.ErrNoEntries) ||
		errors.Is(err, journalbook.ErrUnsupportedInput) ||
		errors.Is(err, journalbook.ErrInvalidTimestamp) ||
		errors.Is(err, journalbook.ErrEmptyNotes) ||
		errors.Is(err, journalbook.ErrInvalidHeadingFallback) ||
		errors.Is(err, journalbook.ErrInvalidPDFEngine) {
		return ExitUsage
	}

	return ExitGeneral
}
