package stylegen

import (
	"io"
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown or empty values fall back to OutputSummary.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	case "css":
		return OutputCSS
	default:
		return OutputSummary
	}
}

// WriteOutput writes the generate result in the specified format
func WriteOutput(w io.Writer, result *GenerateResult, format OutputFormat, config Config) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, result)

	case OutputCSS:
		_, err := io.WriteString(w, result.CSS)
		return err

	default:
		NewReporter(w, config).PrintSummary(*result)
		return nil
	}
}
