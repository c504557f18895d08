package main

import (
	"github.com/spf13/cobra"

	"snipscan/internal/analyzer"
	"snipscan/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := server.New(analyzer.New(), cfg)
		if err != nil {
			return err
		}
		return srv.Run(cmd.Context())
	},
}
