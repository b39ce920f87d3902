package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pcl2pdf "github.com/alnah/go-pcl2pdf"
	"github.com/alnah/go-pcl2pdf/internal/config"
)

// stubConverter returns a canned result for every input.
type stubConverter struct {
	records int
	err     error
}

func (s *stubConverter) Convert(_ context.Context, input pcl2pdf.Input) (*pcl2pdf.ConvertResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	records := make([]pcl2pdf.Record, s.records)
	for i := range records {
		records[i] = pcl2pdf.Record{Index: i, Text: "payslip"}
	}
	return &pcl2pdf.ConvertResult{
		PDF:     []byte("%PDF-1.3 stub for " + input.Source),
		Records: records,
	}, nil
}

func TestResolveOutputPath(t *testing.T) {
	tests := []struct {
		name      string
		inputPath string
		outputDir string
		want      string
	}{
		{
			name:      "no output dir appends suffix beside input",
			inputPath: "PSEAL075.001",
			outputDir: "",
			want:      "PSEAL075.001.pdf",
		},
		{
			name:      "no output dir keeps input directory",
			inputPath: filepath.Join("spool", "PSEAL075.001"),
			outputDir: "",
			want:      filepath.Join("spool", "PSEAL075.001.pdf"),
		},
		{
			name:      "output dir relocates the file",
			inputPath: filepath.Join("spool", "PSEAL075.001"),
			outputDir: "out",
			want:      filepath.Join("out", "PSEAL075.001.pdf"),
		},
		{
			name:      "extension is appended not replaced",
			inputPath: "export.txt",
			outputDir: "out",
			want:      filepath.Join("out", "export.txt.pdf"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveOutputPath(tt.inputPath, tt.outputDir)
			if got != tt.want {
				t.Errorf("resolveOutputPath(%q, %q) = %q, want %q",
					tt.inputPath, tt.outputDir, got, tt.want)
			}
		})
	}
}

func TestDiscoverFilesExplicitArgs(t *testing.T) {
	cfg := config.DefaultConfig()

	files, err := discoverFiles([]string{"a.001", "b.002"}, "out", cfg)
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	if files[0].InputPath != "a.001" {
		t.Errorf("InputPath = %q, want %q", files[0].InputPath, "a.001")
	}
	if files[1].OutputPath != filepath.Join("out", "b.002.pdf") {
		t.Errorf("OutputPath = %q, want %q", files[1].OutputPath, filepath.Join("out", "b.002.pdf"))
	}
}

func TestDiscoverFilesNoInput(t *testing.T) {
	cfg := config.DefaultConfig()

	_, err := discoverFiles(nil, "", cfg)
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("error = %v, want ErrNoInput", err)
	}
}

func TestDiscoverFilesFromConfigDir(t *testing.T) {
	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "PSEAL075.001"), "export")
	mustWriteFile(t, filepath.Join(dir, "PSEAL075.002"), "export")
	mustWriteFile(t, filepath.Join(dir, "old.pdf"), "already converted")
	if err := os.Mkdir(filepath.Join(dir, "archive"), 0o750); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Input.DefaultDir = dir

	files, err := discoverFiles(nil, "", cfg)
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2 (PDFs and directories skipped)", len(files))
	}
	for _, f := range files {
		if filepath.Ext(f.InputPath) == ".pdf" {
			t.Errorf("PDF file %q should be skipped", f.InputPath)
		}
	}
}

func TestDiscoverFilesEmptyConfigDir(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Input.DefaultDir = t.TempDir()

	_, err := discoverFiles(nil, "", cfg)
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("error = %v, want ErrNoInput", err)
	}
}

func TestConvertFilesBatchIsolation(t *testing.T) {
	dir := t.TempDir()
	file1 := filepath.Join(dir, "PSEAL075.001")
	file2 := filepath.Join(dir, "PSEAL075.002") // a directory: unreadable as a file
	file3 := filepath.Join(dir, "PSEAL075.003")
	mustWriteFile(t, file1, "export one")
	if err := os.Mkdir(file2, 0o750); err != nil {
		t.Fatal(err)
	}
	mustWriteFile(t, file3, "export three")

	files := []FileToConvert{
		{InputPath: file1, OutputPath: file1 + ".pdf"},
		{InputPath: file2, OutputPath: file2 + ".pdf"},
		{InputPath: file3, OutputPath: file3 + ".pdf"},
	}

	results := convertFiles(context.Background(), &stubConverter{records: 2}, files)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	if results[0].Err != nil {
		t.Errorf("file 1 failed: %v", results[0].Err)
	}
	if !errors.Is(results[1].Err, ErrReadInput) {
		t.Errorf("file 2 error = %v, want ErrReadInput", results[1].Err)
	}
	if results[2].Err != nil {
		t.Errorf("file 3 failed after file 2's failure: %v", results[2].Err)
	}

	for _, path := range []string{file1 + ".pdf", file3 + ".pdf"} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected output %s: %v", path, err)
		}
	}
	if _, err := os.Stat(file2 + ".pdf"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("no output expected for failed file, stat = %v", err)
	}
}

func TestConvertFileReportsServiceError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "empty.001")
	mustWriteFile(t, input, "export")

	result := convertFile(context.Background(), &stubConverter{err: pcl2pdf.ErrEmptyInput},
		FileToConvert{InputPath: input, OutputPath: input + ".pdf"})

	if !errors.Is(result.Err, pcl2pdf.ErrEmptyInput) {
		t.Errorf("error = %v, want ErrEmptyInput", result.Err)
	}
	if _, err := os.Stat(input + ".pdf"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("no output expected, stat = %v", err)
	}
}

func TestConvertFileRecordCount(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "batch.001")
	mustWriteFile(t, input, "export")

	result := convertFile(context.Background(), &stubConverter{records: 5},
		FileToConvert{InputPath: input, OutputPath: input + ".pdf"})

	if result.Err != nil {
		t.Fatalf("convertFile() error = %v", result.Err)
	}
	if result.Records != 5 {
		t.Errorf("Records = %d, want 5", result.Records)
	}
}

func TestPrintResults(t *testing.T) {
	results := []ConversionResult{
		{InputPath: "a.001", OutputPath: "a.001.pdf", Records: 3},
		{InputPath: "b.002", Err: errors.New("boom")},
		{InputPath: "c.003", OutputPath: "c.003.pdf", Records: 1},
	}

	t.Run("default output", func(t *testing.T) {
		var stdout, stderr strings.Builder
		env := &Environment{Stdout: &stdout, Stderr: &stderr}

		failed := printResults(results, false, false, env)
		if failed != 1 {
			t.Errorf("failed = %d, want 1", failed)
		}
		if !strings.Contains(stdout.String(), "Created a.001.pdf") {
			t.Errorf("stdout missing creation line: %q", stdout.String())
		}
		if !strings.Contains(stdout.String(), "2 succeeded, 1 failed") {
			t.Errorf("stdout missing summary: %q", stdout.String())
		}
		if !strings.Contains(stderr.String(), "FAILED b.002") {
			t.Errorf("stderr missing failure line: %q", stderr.String())
		}
	})

	t.Run("verbose shows record counts", func(t *testing.T) {
		var stdout, stderr strings.Builder
		env := &Environment{Stdout: &stdout, Stderr: &stderr}

		printResults(results, false, true, env)
		if !strings.Contains(stdout.String(), "3 payslips") {
			t.Errorf("verbose stdout missing record count: %q", stdout.String())
		}
	})

	t.Run("quiet only reports failures", func(t *testing.T) {
		var stdout, stderr strings.Builder
		env := &Environment{Stdout: &stdout, Stderr: &stderr}

		printResults(results, true, false, env)
		if stdout.String() != "" {
			t.Errorf("quiet stdout should be empty, got %q", stdout.String())
		}
		if !strings.Contains(stderr.String(), "FAILED b.002") {
			t.Errorf("quiet stderr missing failure line: %q", stderr.String())
		}
	})
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
