package stylegen

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Files     []JSONFile  `json:"files"`
	Warnings  []string    `json:"warnings"`
	Errors    []string    `json:"errors"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	OutputFile   string   `json:"output_file,omitempty"`
	FilesScanned int      `json:"files_scanned"`
	FilesSkipped int      `json:"files_skipped"`
	RulesBuilt   int      `json:"rules_built"`
	Declarations int      `json:"declarations"`
	Breakpoints  []string `json:"breakpoints"`
}

// JSONFile describes one style document
type JSONFile struct {
	Path         string `json:"path"`
	Rules        int    `json:"rules"`
	Declarations int    `json:"declarations"`
}

// WriteJSON writes the generate result as JSON
func WriteJSON(w io.Writer, result *GenerateResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts GenerateResult to JSONOutput
func buildJSONOutput(result *GenerateResult) JSONOutput {
	files := make([]JSONFile, len(result.Files))
	for i, f := range result.Files {
		files[i] = JSONFile{
			Path:         f.Path,
			Rules:        f.Rules,
			Declarations: f.Declarations,
		}
	}

	errs := make([]string, len(result.Errors))
	for i, err := range result.Errors {
		errs[i] = err.Error()
	}

	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	breakpoints := result.Breakpoints
	if breakpoints == nil {
		breakpoints = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			OutputFile:   result.OutputFile,
			FilesScanned: result.FilesScanned,
			FilesSkipped: result.FilesSkipped,
			RulesBuilt:   result.RulesBuilt,
			Declarations: result.Declarations,
			Breakpoints:  breakpoints,
		},
		Files:    files,
		Warnings: warnings,
		Errors:   errs,
	}
}
