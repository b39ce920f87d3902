package pcl2pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Page geometry and text layout, in points. The canvas is A4 at 72 DPI
// and every value is fixed: payslip text is position-sensitive, so the
// layout never adapts to content.
const (
	pageWidth  = 595.0
	pageHeight = 842.0

	payslipFont     = "Courier"
	payslipFontSize = 8.0

	// lineHeight is the vertical distance between consecutive baselines.
	lineHeight = 10.2

	// leftIndent is the x position of every text line.
	leftIndent = 55.0

	// topMargin plus leadingBlankLines empty lines puts the first
	// baseline clear of the background header area.
	topMargin         = 36.0
	leadingBlankLines = 4
)

// Document metadata stamped on every generated PDF. Constant values,
// never derived from input.
const (
	docTitle    = "PayslipGenerator"
	docKeywords = "payslips"
	docCreator  = "NGA Dublin PCL to PDF converter"
	docAuthor   = "NorthgateArinso"
)

// backgroundImageName keys the registered background image inside a
// document so it is decoded once and reused on every page.
const backgroundImageName = "payslip_background"

// Renderer lays payslip records onto PDF pages over a fixed background
// image. The image bytes are read-only and may be shared across
// renderers and across documents.
type Renderer struct {
	background []byte
}

// NewRenderer creates a Renderer drawing the given PNG image under every
// page. Returns ErrBackgroundImage if the image data is empty.
func NewRenderer(background []byte) (*Renderer, error) {
	if len(background) == 0 {
		return nil, fmt.Errorf("%w: empty image data", ErrBackgroundImage)
	}
	return &Renderer{background: background}, nil
}

// Render produces a complete PDF document with one page per record, in
// record order. Each page carries the background image scaled to the
// full canvas and the record text overlaid at the fixed offsets.
//
// The returned bytes are a finalized document; nothing is written to
// disk here. On any failure no partial output escapes.
func (r *Renderer) Render(ctx context.Context, records []Record) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records to render", ErrPDFGeneration)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetTitle(docTitle, false)
	pdf.SetKeywords(docKeywords, false)
	pdf.SetCreator(docCreator, false)
	pdf.SetAuthor(docAuthor, false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont(payslipFont, "", payslipFontSize)

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(backgroundImageName, opts, bytes.NewReader(r.background))

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pdf.AddPage()
		pdf.ImageOptions(backgroundImageName, 0, 0, pageWidth, pageHeight, false, opts, 0, "")

		y := topMargin + lineHeight*float64(leadingBlankLines+1)
		for _, line := range strings.Split(record.Text, "\n") {
			pdf.Text(leftIndent, y, line)
			y += lineHeight
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	return buf.Bytes(), nil
}
