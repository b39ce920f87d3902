package main

import (
	"context"
	"fmt"
	"strings"

	pcl2pdf "github.com/alnah/go-pcl2pdf"
	"github.com/alnah/go-pcl2pdf/internal/assets"
	"github.com/alnah/go-pcl2pdf/internal/config"
)

// run dispatches the CLI invocation. The reserved keywords "help" and
// "version" (case-insensitive, first argument) short-circuit conversion,
// and a bare invocation is equivalent to "help".
func run(args []string, flags *cliFlags, env *Environment) error {
	if len(args) == 0 && flags.config == "" {
		printUsage(env.Stdout)
		return nil
	}

	if len(args) > 0 {
		switch {
		case strings.EqualFold(args[0], "help"):
			printUsage(env.Stdout)
			return nil
		case strings.EqualFold(args[0], "version"):
			printVersion(env.Stdout)
			return nil
		}
	}

	return runConvert(args, flags, env)
}

// runConvert orchestrates the batch: load config, build the service
// once, then process every input sequentially. Per-file failures are
// reported and do not affect the returned error; only startup failures
// (config, background resource, nothing to convert) propagate.
func runConvert(args []string, flags *cliFlags, env *Environment) error {
	cfg := config.DefaultConfig()
	var err error
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// The background image is shared by every page of every document:
	// if it cannot be loaded, the whole batch is hopeless.
	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(args, outputDir, cfg)
	if err != nil {
		return err
	}

	if err := ensureOutputDir(outputDir); err != nil {
		return err
	}

	results := convertFiles(context.Background(), svc, files)
	printResults(results, flags.quiet, flags.verbose, env)

	return nil
}

// newService builds the conversion service, honoring a custom asset
// directory when configured.
func newService(cfg *config.Config) (Converter, error) {
	if cfg.Assets.BasePath == "" {
		return pcl2pdf.New()
	}

	loader, err := assets.NewFilesystemLoader(cfg.Assets.BasePath)
	if err != nil {
		return nil, err
	}
	return pcl2pdf.NewWithLoader(loader)
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}
