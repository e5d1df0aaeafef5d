// Package stylegen generates stylesheets from YAML style documents.
package stylegen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yacobolo/stylesys"
	"go.uber.org/zap"
)

// Generate is the main entry point
func Generate(ctx context.Context, config Config, log *zap.Logger) (*GenerateResult, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("generate")

	result := &GenerateResult{OutputFile: config.OutputFile}

	// 1. Resolve breakpoints
	bps := stylesys.DefaultBreakpoints()
	if len(config.Breakpoints) > 0 {
		var err error
		bps, err = stylesys.NewBreakpoints(config.Breakpoints...)
		if err != nil {
			return nil, fmt.Errorf("theme: %w", err)
		}
	}

	// 2. Scan style documents
	files, stats, err := ScanFiles(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.ScanStats = stats
	log.Debug("Scanned style documents",
		zap.String("source", config.SourceDir),
		zap.Int("files", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped))

	// 3. Build every rule
	builder := stylesys.NewBuilder(stylesys.WithBreakpoints(bps), stylesys.WithLogger(log))
	sheet := stylesys.NewStylesheet(bps)

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fr, err := processFile(path, builder, sheet, result)
		if err != nil {
			log.Debug("Skipping document", zap.String("path", path), zap.Error(err))
			result.Errors = append(result.Errors, err)
			continue
		}
		if config.Verbose {
			log.Info("Built document",
				zap.String("path", path),
				zap.Int("rules", fr.Rules),
				zap.Int("declarations", fr.Declarations))
		}
		result.Files = append(result.Files, fr)
		result.RulesBuilt += fr.Rules
		result.Declarations += fr.Declarations
	}

	result.Breakpoints = sheet.MediaNames()
	result.CSS = sheet.String()

	// 4. Write stylesheet
	if config.OutputFile != "" {
		if err := writeStylesheet(config.OutputFile, result.CSS); err != nil {
			return nil, fmt.Errorf("write failed: %w", err)
		}
	}

	return result, nil
}

// processFile builds all rules of one document into sheet. A rule that fails
// to build is recorded in result and skipped; a document that fails to load
// is returned as an error.
func processFile(path string, builder *stylesys.Builder, sheet *stylesys.Stylesheet, result *GenerateResult) (FileResult, error) {
	fr := FileResult{Path: path}

	doc, err := LoadDocument(path)
	if err != nil {
		return fr, err
	}

	for _, rule := range doc.Rules {
		for _, key := range rule.UnknownKeys {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: %s: unknown layout key %q ignored", path, rule.Selector, key))
		}

		style, err := builder.Layout(rule.Layout)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("%s: %s: %w", path, rule.Selector, err))
			continue
		}

		n, err := stylesys.CountDeclarations(style)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: %s: could not count declarations: %v", path, rule.Selector, err))
		}

		sheet.Add(rule.Selector, style)
		fr.Rules++
		fr.Declarations += n
	}

	return fr, nil
}

func writeStylesheet(path, css string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(css), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
