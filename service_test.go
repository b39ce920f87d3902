package pcl2pdf

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-pcl2pdf/internal/pipeline"
)

// buildExport assembles a synthetic PCL export: printer preamble, then
// the given payslip bodies each introduced by the record delimiter, then
// trailing padding after the final delimiter.
func buildExport(bodies ...string) string {
	var b strings.Builder
	b.WriteString("PCL PRINTER PREAMBLE\n1X")
	for _, body := range bodies {
		b.WriteString("\n\n\n1")
		b.WriteString(body)
	}
	b.WriteString("\n\n\n1EOF PADDING")
	return b.String()
}

func TestService_Convert(t *testing.T) {
	svc, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("full pipeline on a well-formed export", func(t *testing.T) {
		input := Input{
			Text:   buildExport("RECORD-A\nGROSS 1000.00", "RECORD-B\nGROSS 2000.00"),
			Source: "PSEAL075.001",
		}

		result, err := svc.Convert(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// The restored leading newline turns the preamble remainder into
		// a first fragment; the two payslips follow in input order.
		if len(result.Records) != 3 {
			t.Fatalf("got %d records, want 3: %q", len(result.Records), result.Records)
		}
		if !strings.HasPrefix(result.Records[1].Text, "RECORD-A") {
			t.Errorf("record[1] = %q, want RECORD-A payslip", result.Records[1].Text)
		}
		if !strings.HasPrefix(result.Records[2].Text, "RECORD-B") {
			t.Errorf("record[2] = %q, want RECORD-B payslip", result.Records[2].Text)
		}
		for i, r := range result.Records {
			if r.Index != i {
				t.Errorf("record[%d].Index = %d", i, r.Index)
			}
		}
		if !bytes.HasPrefix(result.PDF, []byte("%PDF-")) {
			t.Error("output is not a PDF document")
		}
		if !bytes.Contains(result.PDF, []byte("/Count 3")) {
			t.Error("expected one page per record")
		}
	})

	t.Run("control codes removed before segmentation", func(t *testing.T) {
		input := Input{Text: buildExport("RECORD-A H.RATE=12345678 NET")}

		result, err := svc.Convert(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, r := range result.Records {
			if strings.Contains(r.Text, "H.RATE=") {
				t.Errorf("control code survived: %q", r.Text)
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := svc.Convert(context.Background(), Input{Text: ""})
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("error = %v, want ErrEmptyInput", err)
		}
	})

	t.Run("missing preamble marker", func(t *testing.T) {
		_, err := svc.Convert(context.Background(), Input{Text: "no boundary marker here"})
		if !errors.Is(err, pipeline.ErrMalformedInput) {
			t.Errorf("error = %v, want pipeline.ErrMalformedInput", err)
		}
	})

	t.Run("no record delimiter", func(t *testing.T) {
		_, err := svc.Convert(context.Background(), Input{Text: "junk\n1X but no payslips follow"})
		if !errors.Is(err, pipeline.ErrNoRecords) {
			t.Errorf("error = %v, want pipeline.ErrNoRecords", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := svc.Convert(ctx, Input{Text: buildExport("RECORD-A")})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}

func TestNewWithLoader(t *testing.T) {
	t.Run("loader failure maps to ErrBackgroundImage", func(t *testing.T) {
		_, err := NewWithLoader(failingLoader{})
		if !errors.Is(err, ErrBackgroundImage) {
			t.Errorf("error = %v, want ErrBackgroundImage", err)
		}
	})
}

type failingLoader struct{}

func (failingLoader) LoadBackground(string) ([]byte, error) {
	return nil, errors.New("boom")
}
