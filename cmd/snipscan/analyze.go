package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"snipscan/internal/analyzer"
	"snipscan/internal/render"
	"snipscan/internal/report"
)

var (
	analyzeLanguage string
	analyzeFormat   string
	analyzeSkip     []string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeLanguage, "language", "l", "", "language of the snippet (default: from file extension or config)")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "", "output format (markdown|json)")
	analyzeCmd.Flags().StringSliceVar(&analyzeSkip, "skip", nil, "report sections to skip (quality, issues, architecture, formatting)")
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Run a full analysis of a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, fileName, err := readInput(args)
		if err != nil {
			return err
		}
		if strings.TrimSpace(code) == "" {
			return fmt.Errorf("no code to analyze")
		}

		rep, err := analyzer.New().AnalyzeFull(report.SourceUnit{
			Code:     code,
			Language: resolveLanguage(analyzeLanguage, fileName),
			FileName: fileName,
		}, buildOptions())
		if err != nil {
			return err
		}

		format := analyzeFormat
		if format == "" {
			format = cfg.Output.Format
		}
		if format == "json" {
			data, err := json.MarshalIndent(rep, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), string(render.Markdown(rep)))
		return nil
	},
}

// buildOptions combines the configured sections with --skip overrides.
func buildOptions() analyzer.Options {
	opts := analyzer.Options{
		Quality:      cfg.IsSectionEnabled("quality"),
		Issues:       cfg.IsSectionEnabled("issues"),
		Architecture: cfg.IsSectionEnabled("architecture"),
		Formatting:   cfg.IsSectionEnabled("formatting"),
	}
	for _, s := range analyzeSkip {
		switch strings.ToLower(s) {
		case "quality":
			opts.Quality = false
		case "issues":
			opts.Issues = false
		case "architecture":
			opts.Architecture = false
		case "formatting":
			opts.Formatting = false
		}
	}
	return opts
}
