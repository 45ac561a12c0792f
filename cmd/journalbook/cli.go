package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	journalbook "github.com/mjbahonar/journalbook"
	"github.com/mjbahonar/journalbook/internal/config"
	"github.com/mjbahonar/journalbook/internal/dateutil"
	"github.com/mjbahonar/journalbook/internal/output"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput = errors.New("no input file specified (expected a .json journal export or a .md file)")
)

// formatLabels names each produced format in the run summary.
var formatLabels = map[string]string{
	".txt":  "Plain Text",
	".md":   "Markdown",
	".tex":  "LaTeX",
	".html": "Styled HTML",
	".docx": "Word",
	".pdf":  "PDF",
	".epub": "EPUB",
}

// run parses arguments, resolves configuration, and drives the export.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}
	if flags.version {
		_, _ = io.WriteString(stdout, "journalbook "+Version+"\n")
		return nil
	}
	if len(positional) < 1 {
		return ErrNoInput
	}
	inputPath := positional[0]

	fileCfg := config.DefaultConfig()
	if flags.config != "" {
		fileCfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
	}

	exportCfg, err := buildExportConfig(fileCfg, flags)
	if err != nil {
		return err
	}

	printer := output.NewPrinter(stdout, stderr, flags.quiet, os.Getenv("NO_COLOR") == "")
	printer.Infof("Processing %s", inputPath)

	svc := journalbook.New()
	defer func() { _ = svc.Close() }()

	result, err := svc.Export(ctx, journalbook.Input{Path: inputPath, Config: exportCfg})
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		printer.Warnf("%s", w)
	}
	printSummary(printer, result)
	return nil
}

// buildExportConfig layers the config file over library defaults, then
// explicitly-set flags over both.
func buildExportConfig(fileCfg *config.Config, flags *cliFlags) (journalbook.ExportConfig, error) {
	cfg := journalbook.DefaultExportConfig()

	if fileCfg.Title != "" {
		cfg.Title = fileCfg.Title
	}
	if fileCfg.Output.Dir != "" {
		cfg.OutputDir = fileCfg.Output.Dir
	}
	if fileCfg.Cover.Path != "" {
		cfg.CoverPath = fileCfg.Cover.Path
	}
	if fileCfg.Latex.RTLFont != "" {
		cfg.RTLFont = fileCfg.Latex.RTLFont
	}
	if fileCfg.Latex.HeadingFallback != "" {
		cfg.HeadingFallback = fileCfg.Latex.HeadingFallback
	}
	cfg.DropCaps = fileCfg.Latex.DropCaps
	if fileCfg.PDF.Engine != "" {
		cfg.PDFEngine = fileCfg.PDF.Engine
	}

	if flags.Changed("title") {
		cfg.Title = flags.title
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = flags.outputDir
	}
	if flags.Changed("cover") {
		cfg.CoverPath = flags.cover
	}
	if flags.Changed("rtl-font") {
		cfg.RTLFont = flags.rtlFont
	}
	if flags.Changed("drop-caps") {
		cfg.DropCaps = flags.dropCaps
	}
	if flags.Changed("heading-fallback") {
		cfg.HeadingFallback = flags.headingFallback
	}
	if flags.Changed("pdf-engine") {
		cfg.PDFEngine = flags.pdfEngine
	}

	dateFormat := dateutil.DefaultDateFormat
	if fileCfg.Output.DateFormat != "" {
		dateFormat = fileCfg.Output.DateFormat
	}
	if flags.Changed("date-format") {
		dateFormat = flags.dateFormat
	}
	layout, err := dateutil.ParseDateFormat(dateFormat)
	if err != nil {
		return journalbook.ExportConfig{}, err
	}
	cfg.DateLayout = layout

	return cfg, nil
}

// printSummary reports the produced files and the e-book chapter layout.
func printSummary(printer *output.Printer, result *journalbook.Result) {
	printer.Successf("All files generated in folder: %s", result.OutputDir)
	for _, f := range result.Files {
		ext := filepath.Ext(f)
		label, ok := formatLabels[ext]
		if !ok {
			label = ext
		}
		printer.Itemf("%s (%s)", filepath.Base(f), label)
	}

	if result.FromHeadings {
		printer.Titlef("EPUB contains %d chapters based on H1 headings:", len(result.Chapters))
		for _, ch := range result.Chapters {
			printer.Itemf("%s (from %s)", ch.Title, ch.Date)
		}
		return
	}
	printer.Titlef("EPUB contains %d chapters based on dates (no H1 headings found):", len(result.Chapters))
	for _, ch := range result.Chapters {
		printer.Itemf("%s", ch.Title)
	}
}
