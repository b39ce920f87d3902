package pcl2pdf

import (
	"context"
	"fmt"

	"github.com/alnah/go-pcl2pdf/internal/assets"
	"github.com/alnah/go-pcl2pdf/internal/pipeline"
)

// Service converts raw PCL payslip exports into PDF documents. A Service
// holds the background image loaded once at construction; it is safe to
// reuse across inputs.
type Service struct {
	renderer *Renderer
}

// New creates a Service using the background image bundled with the
// application.
func New() (*Service, error) {
	return NewWithLoader(assets.NewEmbeddedLoader())
}

// NewWithLoader creates a Service loading the background image through
// the given loader. Returns ErrBackgroundImage if the image cannot be
// loaded; callers should treat that as fatal since every conversion
// needs it.
func NewWithLoader(loader assets.AssetLoader) (*Service, error) {
	background, err := loader.LoadBackground(assets.DefaultBackground)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackgroundImage, err)
	}

	renderer, err := NewRenderer(background)
	if err != nil {
		return nil, err
	}

	return &Service{renderer: renderer}, nil
}

// Convert runs the full pipeline on one input: sanitize, segment, render.
//
// Returns ErrEmptyInput for empty text, pipeline.ErrMalformedInput when
// the preamble boundary is missing, and pipeline.ErrNoRecords when the
// stream contains no payslip delimiter.
func (s *Service) Convert(ctx context.Context, input Input) (*ConvertResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if input.Text == "" {
		return nil, ErrEmptyInput
	}

	sanitized, err := pipeline.Sanitize(input.Text)
	if err != nil {
		return nil, err
	}

	bodies, err := pipeline.Segment(sanitized)
	if err != nil {
		return nil, err
	}

	records := make([]Record, len(bodies))
	for i, body := range bodies {
		records[i] = Record{Index: i, Text: body}
	}

	pdf, err := s.renderer.Render(ctx, records)
	if err != nil {
		return nil, err
	}

	return &ConvertResult{PDF: pdf, Records: records}, nil
}
