package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds parsed command-line flags. The flag set is retained so
// the merge step can tell explicitly-set flags from defaults.
type cliFlags struct {
	config          string
	title           string
	outputDir       string
	dateFormat      string
	cover           string
	rtlFont         string
	dropCaps        bool
	headingFallback string
	pdfEngine       string
	quiet           bool
	verbose         bool
	version         bool

	fs *flag.FlagSet
}

// Changed reports whether the named flag was explicitly set.
func (f *cliFlags) Changed(name string) bool {
	return f.fs.Changed(name)
}

const usageText = `Usage: journalbook [flags] <journal.json | notes.md>

Converts a journal export into .txt, .md, .tex, .html, .docx, .pdf and
.epub documents, written into a directory named after the input file.

Flags:
`

// parseFlags parses command-line arguments. Remaining positional
// arguments (the input path) are returned separately.
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.fs = fs

	fs.StringVarP(&flags.config, "config", "c", "", "config file path or name")
	fs.StringVarP(&flags.title, "title", "t", "", "document title")
	fs.StringVarP(&flags.outputDir, "output-dir", "o", "", "output directory (default: input file stem)")
	fs.StringVar(&flags.dateFormat, "date-format", "", "date label format (YYYY-MM-DD tokens or preset: iso, european, us, long)")
	fs.StringVar(&flags.cover, "cover", "", "e-book cover image path (default: cover.jpg)")
	fs.StringVar(&flags.rtlFont, "rtl-font", "", "font for right-to-left typeset output")
	fs.BoolVar(&flags.dropCaps, "drop-caps", false, "decorative first letter in the typeset output")
	fs.StringVar(&flags.headingFallback, "heading-fallback", "", "handling of #### and deeper in typeset output: paragraph or ignore")
	fs.StringVar(&flags.pdfEngine, "pdf-engine", "", "PDF renderer: office, chrome, or none")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return flags, fs.Args(), nil
}
