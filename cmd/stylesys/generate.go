package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/stylesys/internal/stylegen"
	"go.uber.org/zap"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate a stylesheet from style documents",
	Long: `Scan style documents, build the layout props of every rule and write
one stylesheet with base rules followed by @media blocks per breakpoint.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	// Defaults live in buildGenerateConfig so config file values are not
	// shadowed by unset flags.
	f.String("source", "", "Source directory of style documents (default: styles)")
	f.StringSlice("include", nil, "Glob patterns for style documents to include")
	f.String("output", "", "Output stylesheet path (default: dist/layout.css)")
	f.String("format", "", "Output format: summary|json|css")
	f.Bool("dry-run", false, "Build without writing the stylesheet")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config, err := buildGenerateConfig()
	if err != nil {
		return err
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	format := stylegen.DetermineOutputFormat(getStringWithFallback("format", "generate.format", ""))

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		config.OutputFile = ""
	}

	log := newLogger(config.Verbose, quiet)
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := stylegen.Generate(ctx, config, log)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if !quiet {
		if err := stylegen.WriteOutput(cmd.OutOrStdout(), result, format, config); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if len(result.Errors) > 0 {
		log.Debug("Generation finished with errors", zap.Error(result.Err()))
		return fmt.Errorf("%d style errors", len(result.Errors))
	}

	return nil
}
