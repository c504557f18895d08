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
	debugLanguage string
	debugFormat   string
)

func init() {
	debugCmd.Flags().StringVarP(&debugLanguage, "language", "l", "", "language of the snippet (default: from file extension or config)")
	debugCmd.Flags().StringVarP(&debugFormat, "format", "f", "", "output format (markdown|json)")
}

var debugCmd = &cobra.Command{
	Use:   "debug [file]",
	Short: "Run a debugging-focused analysis of a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, fileName, err := readInput(args)
		if err != nil {
			return err
		}
		if strings.TrimSpace(code) == "" {
			return fmt.Errorf("no code to analyze")
		}

		rep, err := analyzer.New().AnalyzeForDebugging(report.SourceUnit{
			Code:     code,
			Language: resolveLanguage(debugLanguage, fileName),
			FileName: fileName,
		})
		if err != nil {
			return err
		}

		format := debugFormat
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

		fmt.Fprint(cmd.OutOrStdout(), string(render.DebugMarkdown(rep)))
		return nil
	},
}
