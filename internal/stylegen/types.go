package stylegen

import (
	"github.com/yacobolo/stylesys"
	"go.uber.org/multierr"
)

// Config holds generator configuration
type Config struct {
	SourceDir   string                // "styles"
	Includes    []string              // ["**/*.style.yaml"]
	OutputFile  string                // "dist/layout.css" (empty: don't write)
	Breakpoints []stylesys.Breakpoint // Empty: stylesys.DefaultBreakpoints
	Verbose     bool                  // Log every processed file
	UseColors   bool                  // Force colored summary
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually loaded (after filtering)
	FilesSkipped    int // Files skipped by .gitignore
}

// FileResult records what one style document contributed
type FileResult struct {
	Path         string
	Rules        int
	Declarations int
}

// GenerateResult contains generation stats
type GenerateResult struct {
	ScanStats
	OutputFile   string
	RulesBuilt   int
	Declarations int
	Breakpoints  []string // Breakpoints with @media output, in render order
	Files        []FileResult
	Warnings     []string
	Errors       []error
	CSS          string
}

// Err combines all per-file errors, nil when there are none.
func (r *GenerateResult) Err() error {
	return multierr.Combine(r.Errors...)
}

// OutputFormat represents the generate command output format
type OutputFormat string

const (
	// OutputSummary shows counts, warnings and errors (interactive development)
	OutputSummary OutputFormat = "summary"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputCSS writes the generated stylesheet (piping)
	OutputCSS OutputFormat = "css"
)
