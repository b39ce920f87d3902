package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	pcl2pdf "github.com/alnah/go-pcl2pdf"
	"github.com/alnah/go-pcl2pdf/internal/config"
	"github.com/alnah/go-pcl2pdf/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput   = errors.New("no input specified")
	ErrReadInput = errors.New("failed to read input file")
	ErrWritePDF  = errors.New("failed to write PDF file")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input pcl2pdf.Input) (*pcl2pdf.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ Converter = (*pcl2pdf.Service)(nil)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Records    int
	Err        error
	Duration   time.Duration
}

// discoverFiles resolves the list of files to convert: explicit
// arguments first, otherwise the configured input directory.
func discoverFiles(args []string, outputDir string, cfg *config.Config) ([]FileToConvert, error) {
	if len(args) > 0 {
		files := make([]FileToConvert, len(args))
		for i, path := range args {
			files[i] = FileToConvert{
				InputPath:  path,
				OutputPath: resolveOutputPath(path, outputDir),
			}
		}
		return files, nil
	}

	if cfg.Input.DefaultDir == "" {
		return nil, ErrNoInput
	}

	// PCL exports arrive in a flat spool directory; no recursion.
	entries, err := os.ReadDir(cfg.Input.DefaultDir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var files []FileToConvert
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) == ".pdf" {
			continue
		}
		path := filepath.Join(cfg.Input.DefaultDir, entry.Name())
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, outputDir),
		})
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files in %s", ErrNoInput, cfg.Input.DefaultDir)
	}

	return files, nil
}

// resolveOutputPath determines the PDF output path for an input file.
// The .pdf suffix is appended to the full original name, so exports like
// PSEAL075.001 become PSEAL075.001.pdf.
func resolveOutputPath(inputPath, outputDir string) string {
	if outputDir == "" {
		return inputPath + ".pdf"
	}
	return filepath.Join(outputDir, filepath.Base(inputPath)+".pdf")
}

// ensureOutputDir creates the output directory when one is configured.
func ensureOutputDir(outputDir string) error {
	if outputDir == "" {
		return nil
	}
	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

// convertFiles processes the batch sequentially, each file to completion
// before the next. Failures are isolated: a failing file is recorded and
// the batch continues.
func convertFiles(ctx context.Context, svc Converter, files []FileToConvert) []ConversionResult {
	results := make([]ConversionResult, len(files))
	for i, f := range files {
		results[i] = convertFile(ctx, svc, f)
	}
	return results
}

// convertFile processes a single file and returns the result. The output
// file appears atomically: it is either a complete document or absent.
func convertFile(ctx context.Context, svc Converter, f FileToConvert) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- user-provided path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadInput, err)
		result.Duration = time.Since(start)
		return result
	}

	convResult, err := svc.Convert(ctx, pcl2pdf.Input{
		Text:   string(content),
		Source: f.InputPath,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := fileutil.WriteFileAtomic(f.OutputPath, convResult.PDF, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePDF, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Records = len(convResult.Records)
	result.Duration = time.Since(start)
	return result
}

// printResults outputs one line per input plus an overall completion
// notice. Failures go to stderr and never abort the batch.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d payslips, %v)\n",
				r.InputPath, r.OutputPath, r.Records, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "\nDone: %d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
