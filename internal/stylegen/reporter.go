package stylegen

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Reporter formats generation results for humans
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config Config) *Reporter {
	return &Reporter{
		w:         w,
		useColors: shouldUseColors(config),
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config Config) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Respect https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintSummary outputs counts, warnings and errors
func (r *Reporter) PrintSummary(result GenerateResult) {
	if result.OutputFile != "" {
		fmt.Fprintf(r.w, "%s %s\n",
			RenderStyle(StyleGreen, "Generated", r.useColors),
			RenderStyle(StyleCyan, result.OutputFile, r.useColors))
	}
	fmt.Fprintf(r.w, "  Files scanned: %d", result.FilesScanned)
	if result.FilesSkipped > 0 {
		fmt.Fprintf(r.w, " (%d ignored)", result.FilesSkipped)
	}
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "  Rules built: %d\n", result.RulesBuilt)
	fmt.Fprintf(r.w, "  Declarations: %d\n", result.Declarations)

	if len(result.Breakpoints) > 0 {
		fmt.Fprintf(r.w, "  Breakpoints: %s\n",
			RenderStyle(StyleGray, strings.Join(result.Breakpoints, ", "), r.useColors))
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, RenderStyle(StyleYellow, pluralizeCount(len(result.Warnings), "warning", "warnings")+":", r.useColors))
		for _, w := range result.Warnings {
			fmt.Fprintf(r.w, "  - %s\n", w)
		}
	}

	if len(result.Errors) > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, RenderStyle(StyleRed, pluralizeCount(len(result.Errors), "error", "errors")+":", r.useColors))
		for _, err := range result.Errors {
			fmt.Fprintf(r.w, "  - %v\n", err)
		}
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
