package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"snipscan/internal/analyzer"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported language identifiers",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, lang := range analyzer.SupportedLanguages() {
			fmt.Fprintln(cmd.OutOrStdout(), lang)
		}
		return nil
	},
}
