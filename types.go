package pcl2pdf

// Input holds the raw content of one PCL export to convert.
type Input struct {
	// Text is the unmodified content of the input file.
	Text string

	// Source identifies where the text came from (usually a file path).
	// Used only for error messages, never for rendering.
	Source string
}

// Record is one payslip extracted from a sanitized stream.
// Records are created by segmentation and rendered to exactly one page
// each, in index order.
type Record struct {
	// Index is the 0-based position of the record in the input stream.
	Index int

	// Text is the payslip body as it appears between delimiters.
	Text string
}

// ConvertResult holds the outcome of a successful conversion.
type ConvertResult struct {
	// PDF is the complete document, one page per record.
	PDF []byte

	// Records are the payslips that were rendered, in page order.
	Records []Record
}
