package render

import (
	"strings"
	"testing"

	"snipscan/internal/report"
)

func sampleFullReport() *report.FullReport {
	return &report.FullReport{
		FileName:   "main.py",
		Language:   "python",
		CodeLength: 12,
		QualityScore: report.QualityScore{
			Overall: 81.5, CodeQuality: 90, Maintainability: 75, Complexity: 1.2, Duplication: 100,
		},
		Issues: []report.Issue{
			{Type: report.IssueStyle, Severity: report.SeverityInfo, Line: 3, Message: "Line exceeds 100 characters (130 chars)", Suggestion: "Consider breaking this line for better readability"},
		},
		ComplexityMetrics: report.ComplexityMetrics{
			CyclomaticComplexity: 1.2, CognitiveComplexity: 3, LinesOfCode: 12, NestingDepth: 2,
		},
		ArchitectureInsights: []report.ArchitectureInsight{
			{PatternDetected: "Factory Pattern", Confidence: 0.80, Description: "Code appears to implement the Factory design pattern", Recommendations: []string{"Ensure consistent creation logic"}},
		},
		FormattingRecommendations: []report.FormattingRecommendation{
			{Category: "indentation", CurrentStyle: "tabs", RecommendedStyle: "spaces (4 spaces per level)", Reason: "PEP 8 recommends using spaces for indentation"},
		},
		DurationMS: 0.42,
	}
}

func TestMarkdownFullReport(t *testing.T) {
	out := string(Markdown(sampleFullReport()))

	for _, want := range []string{
		"# Code Analysis Report",
		"`main.py`",
		"Language: python",
		"| Overall | 81.5 |",
		"Nesting depth: 2",
		"Line exceeds 100 characters",
		"Factory Pattern (80% confidence)",
		"**indentation**",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownEmptySections(t *testing.T) {
	rep := &report.FullReport{Language: "java", CodeLength: 1}
	out := string(Markdown(rep))

	if !strings.Contains(out, "_No issues detected._") {
		t.Error("expected empty-issues placeholder")
	}
	if !strings.Contains(out, "_No patterns detected._") {
		t.Error("expected empty-patterns placeholder")
	}
	// The formatting section is omitted entirely when empty.
	if strings.Contains(out, "## Formatting") {
		t.Error("did not expect a formatting section")
	}
}

func TestDebugMarkdown(t *testing.T) {
	rep := &report.DebugReport{
		FileName: "loop.js",
		Language: "javascript",
		DebugInsights: []report.DebugInsight{
			{
				PotentialIssue:     "Potential infinite loop detected",
				Severity:           report.SeverityError,
				AffectedAreas:      []string{"Loop constructs"},
				DebugSteps:         []string{"Review loop conditions"},
				RelatedLineNumbers: []int{1, 7},
			},
		},
		CommonIssues: []string{"Line exceeds 100 characters (130 chars)"},
		DurationMS:   0.2,
	}

	out := string(DebugMarkdown(rep))
	for _, want := range []string{
		"# Debug Analysis Report",
		"Potential infinite loop detected (error)",
		"Lines: 1, 7",
		"- Review loop conditions",
		"## Common Issues",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestDebugMarkdownNoFindings(t *testing.T) {
	rep := &report.DebugReport{Language: "python"}
	out := string(DebugMarkdown(rep))

	if !strings.Contains(out, "_No potential issues detected._") {
		t.Error("expected empty-insights placeholder")
	}
	if strings.Contains(out, "## Common Issues") {
		t.Error("did not expect a common issues section")
	}
}
