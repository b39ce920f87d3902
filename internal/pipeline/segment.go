package pipeline

import (
	"errors"
	"strings"
)

// ErrNoRecords indicates segmentation produced zero usable records
// because the record delimiter never occurred in the input.
var ErrNoRecords = errors.New("no payslip records found")

// recordDelimiter separates consecutive payslips in the sanitized
// stream: three newlines followed by the digit 1. The digit is the PCL
// new-page carriage control of the next payslip's first line.
const recordDelimiter = "\n\n\n1"

// Segment splits sanitized text into individual payslip records.
//
// The split is a literal, non-overlapping split on recordDelimiter. The
// final fragment is dropped unconditionally: it is trailing padding after
// the last delimiter, never payslip content. For text containing N
// delimiter occurrences the result has exactly N records, in order of
// appearance.
//
// Returns ErrNoRecords if the delimiter never occurs.
func Segment(text string) ([]string, error) {
	parts := strings.Split(text, recordDelimiter)
	if len(parts) < 2 {
		return nil, ErrNoRecords
	}
	return parts[:len(parts)-1], nil
}
