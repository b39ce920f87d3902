package main

import (
	"errors"
	"os"

	pcl2pdf "github.com/alnah/go-pcl2pdf"
	"github.com/alnah/go-pcl2pdf/internal/assets"
	"github.com/alnah/go-pcl2pdf/internal/config"
)

// Exit codes for the pcl2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
// Per-file conversion failures are reported but keep exit code 0; only
// startup failures produce a non-zero exit.
const (
	ExitSuccess = 0 // Batch completed, all files attempted
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or config
	ExitIO      = 3 // Nothing to convert, input dir unreadable
	ExitRender  = 4 // Background resource or PDF engine failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Render/resource errors (exit 4)
	if errors.Is(err, pcl2pdf.ErrBackgroundImage) ||
		errors.Is(err, pcl2pdf.ErrPDFGeneration) ||
		errors.Is(err, assets.ErrBackgroundNotFound) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWritePDF) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, assets.ErrInvalidBasePath) {
		return ExitUsage
	}

	return ExitGeneral
}
