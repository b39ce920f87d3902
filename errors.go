package pcl2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInput      = errors.New("input text cannot be empty")
	ErrBackgroundImage = errors.New("background image unavailable")
	ErrPDFGeneration   = errors.New("PDF generation failed")
)
