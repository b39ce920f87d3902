package pipeline

import (
	"errors"
	"regexp"
	"strings"
)

// ErrMalformedInput indicates the preamble boundary marker is missing,
// so the input cannot be a PCL payslip export.
var ErrMalformedInput = errors.New("malformed input: preamble marker not found")

// controlCodePattern matches the embedded PCL rate directive: the literal
// marker "H.RATE=" followed by exactly 8 arbitrary characters on the same
// line. Each match is 15 characters wide.
var controlCodePattern = regexp.MustCompile(`H\.RATE=.{8}`)

// controlCodeFiller replaces a control-code match. Same width as the
// match, so the columns of the surrounding monospaced text stay aligned.
const controlCodeFiller = "               "

// preambleMarker terminates the printer preamble at the start of the
// stream: a newline followed by the digit 1 (the PCL new-page carriage
// control of the first payslip).
const preambleMarker = "\n1"

// preambleTrailing is the number of characters consumed after the marker
// when stripping the preamble.
const preambleTrailing = 1

// Sanitize removes PCL control codes and the leading printer preamble
// from a raw export.
//
// Control-code fragments are replaced with equal-length runs of spaces
// rather than deleted: the payslip layout is position-sensitive, and
// removal would shift every column to the right of the fragment.
//
// The preamble is everything up to and including the first occurrence of
// preambleMarker plus one further character. Output invariant: the result
// always starts with a single restored newline, so the first record is
// preceded by the same delimiter pattern as every subsequent record.
//
// Returns ErrMalformedInput if the preamble marker never occurs.
func Sanitize(raw string) (string, error) {
	cleaned := controlCodePattern.ReplaceAllString(raw, controlCodeFiller)

	idx := strings.Index(cleaned, preambleMarker)
	if idx < 0 {
		return "", ErrMalformedInput
	}

	cut := idx + len(preambleMarker) + preambleTrailing
	if cut > len(cleaned) {
		cut = len(cleaned)
	}

	return "\n" + cleaned[cut:], nil
}
