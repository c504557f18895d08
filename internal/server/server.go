// Package server exposes the analysis engine over the MCP stdio
// transport, for editor and agent integrations.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"snipscan/internal/analyzer"
	"snipscan/internal/config"
	"snipscan/internal/report"
)

// Server wraps the MCP server and connects it to the analyzer.
type Server struct {
	mcp      *mcp.Server
	analyzer *analyzer.Analyzer
	cfg      *config.Config
}

// New creates a new MCP server wired to the given analyzer.
func New(an *analyzer.Analyzer, cfg *config.Config) (*Server, error) {
	s := &Server{
		analyzer: an,
		cfg:      cfg,
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "snipscan",
		Version: "0.1.0",
	}, nil)

	s.mcp = mcpServer
	s.registerResources()
	s.registerTools()

	return s, nil
}

// Run starts the MCP server on the stdio transport.
func (s *Server) Run(ctx context.Context) error {
	logrus.Info("[server] starting MCP server on stdio transport")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// registerResources adds MCP resources.
func (s *Server) registerResources() {
	s.mcp.AddResource(&mcp.Resource{
		URI:         "analysis://languages",
		Name:        "Supported Languages",
		Description: "Every language alias the analyzer accepts, for populating language pickers",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		langs := analyzer.SupportedLanguages()
		data, err := json.MarshalIndent(map[string]any{
			"supported_languages": langs,
			"count":               len(langs),
		}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling languages: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: req.Params.URI, Text: string(data), MIMEType: "application/json"},
			},
		}, nil
	})
}

// analyzeCodeArgs are the arguments for the analyze_code tool. The
// section toggles default to true when omitted.
type analyzeCodeArgs struct {
	Code               string `json:"code" jsonschema:"Source code to analyze. Must be non-empty."`
	Language           string `json:"language" jsonschema:"Programming language identifier, e.g. python, js, typescript, java"`
	FileName           string `json:"file_name,omitempty" jsonschema:"Optional file name for context"`
	AnalyzeQuality     *bool  `json:"analyze_quality,omitempty" jsonschema:"Include quality scoring (default true)"`
	AnalyzeIssues      *bool  `json:"analyze_issues,omitempty" jsonschema:"Include issue detection (default true)"`
	AnalyzeArch        *bool  `json:"analyze_architecture,omitempty" jsonschema:"Include architecture insights (default true)"`
	AnalyzeFormatting  *bool  `json:"analyze_formatting,omitempty" jsonschema:"Include formatting recommendations (default true)"`
}

// analyzeDebugArgs are the arguments for the analyze_for_debugging tool.
type analyzeDebugArgs struct {
	Code     string `json:"code" jsonschema:"Source code to analyze. Must be non-empty."`
	Language string `json:"language" jsonschema:"Programming language identifier"`
	FileName string `json:"file_name,omitempty" jsonschema:"Optional file name for context"`
}

// listLanguagesArgs carries no arguments.
type listLanguagesArgs struct{}

// registerTools adds the analysis tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "analyze_code",
		Description: "Run a full heuristic analysis of a code snippet: quality scores, issues, complexity metrics, architecture insights, and formatting recommendations. Returns the report as JSON.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args analyzeCodeArgs) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.Code) == "" {
			return errorResult("code must not be empty"), nil, nil
		}

		opts := analyzer.Options{
			Quality:      boolOr(args.AnalyzeQuality, true),
			Issues:       boolOr(args.AnalyzeIssues, true),
			Architecture: boolOr(args.AnalyzeArch, true),
			Formatting:   boolOr(args.AnalyzeFormatting, true),
		}

		rep, err := s.analyzer.AnalyzeFull(report.SourceUnit{
			Code:     args.Code,
			Language: args.Language,
			FileName: args.FileName,
		}, opts)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}

		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return errorResult(fmt.Sprintf("failed to marshal report: %v", err)), nil, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: string(data)},
			},
		}, nil, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "analyze_for_debugging",
		Description: "Run a debugging-focused analysis of a code snippet: potential runtime hazards (uninitialized variables, null references, infinite loops, resource leaks) plus common issues. Returns the report as JSON.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args analyzeDebugArgs) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.Code) == "" {
			return errorResult("code must not be empty"), nil, nil
		}

		rep, err := s.analyzer.AnalyzeForDebugging(report.SourceUnit{
			Code:     args.Code,
			Language: args.Language,
			FileName: args.FileName,
		})
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}

		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return errorResult(fmt.Sprintf("failed to marshal report: %v", err)), nil, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: string(data)},
			},
		}, nil, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_languages",
		Description: "List every language alias the analyzer accepts.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args listLanguagesArgs) (*mcp.CallToolResult, any, error) {
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: strings.Join(analyzer.SupportedLanguages(), ", ")},
			},
		}, nil, nil
	})
}

// errorResult builds a tool result carrying an error message.
func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
	}
}

// boolOr dereferences an optional flag, falling back to def when omitted.
func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
