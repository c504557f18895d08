// Package render turns analysis reports into human-readable markdown for
// the CLI surface.
package render

import (
	"fmt"
	"strings"

	"snipscan/internal/report"
)

// Markdown renders a full analysis report.
func Markdown(rep *report.FullReport) []byte {
	var sb strings.Builder

	sb.WriteString("# Code Analysis Report\n\n")
	if rep.FileName != "" {
		sb.WriteString(fmt.Sprintf("File: `%s`  \n", rep.FileName))
	}
	sb.WriteString(fmt.Sprintf("Language: %s  \nLines: %d  \nDuration: %.2fms\n\n", rep.Language, rep.CodeLength, rep.DurationMS))

	sb.WriteString("## Quality\n\n")
	sb.WriteString("| Metric | Score |\n|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Overall | %.1f |\n", rep.QualityScore.Overall))
	sb.WriteString(fmt.Sprintf("| Code quality | %.1f |\n", rep.QualityScore.CodeQuality))
	sb.WriteString(fmt.Sprintf("| Maintainability | %.1f |\n", rep.QualityScore.Maintainability))
	sb.WriteString(fmt.Sprintf("| Complexity (lower is better) | %.1f |\n", rep.QualityScore.Complexity))
	sb.WriteString(fmt.Sprintf("| Duplication | %.1f |\n\n", rep.QualityScore.Duplication))

	sb.WriteString("## Complexity Metrics\n\n")
	m := rep.ComplexityMetrics
	sb.WriteString(fmt.Sprintf("- Cyclomatic: %.2f\n- Cognitive: %.2f\n- Lines of code: %d\n- Nesting depth: %d\n\n",
		m.CyclomaticComplexity, m.CognitiveComplexity, m.LinesOfCode, m.NestingDepth))

	sb.WriteString(renderIssues(rep.Issues))
	sb.WriteString(renderInsights(rep.ArchitectureInsights))
	sb.WriteString(renderFormatting(rep.FormattingRecommendations))

	return []byte(sb.String())
}

// DebugMarkdown renders a debugging-focused report.
func DebugMarkdown(rep *report.DebugReport) []byte {
	var sb strings.Builder

	sb.WriteString("# Debug Analysis Report\n\n")
	if rep.FileName != "" {
		sb.WriteString(fmt.Sprintf("File: `%s`  \n", rep.FileName))
	}
	sb.WriteString(fmt.Sprintf("Language: %s  \nDuration: %.2fms\n\n", rep.Language, rep.DurationMS))

	sb.WriteString("## Debug Insights\n\n")
	if len(rep.DebugInsights) == 0 {
		sb.WriteString("_No potential issues detected._\n\n")
	}
	for _, ins := range rep.DebugInsights {
		sb.WriteString(fmt.Sprintf("### %s (%s)\n\n", ins.PotentialIssue, ins.Severity))
		if len(ins.AffectedAreas) > 0 {
			sb.WriteString(fmt.Sprintf("Affected: %s\n\n", strings.Join(ins.AffectedAreas, ", ")))
		}
		if len(ins.RelatedLineNumbers) > 0 {
			sb.WriteString(fmt.Sprintf("Lines: %s\n\n", joinInts(ins.RelatedLineNumbers)))
		}
		for _, step := range ins.DebugSteps {
			sb.WriteString(fmt.Sprintf("- %s\n", step))
		}
		sb.WriteString("\n")
	}

	if len(rep.CommonIssues) > 0 {
		sb.WriteString("## Common Issues\n\n")
		for _, msg := range rep.CommonIssues {
			sb.WriteString(fmt.Sprintf("- %s\n", msg))
		}
		sb.WriteString("\n")
	}

	return []byte(sb.String())
}

func renderIssues(found []report.Issue) string {
	var sb strings.Builder
	sb.WriteString("## Issues\n\n")
	if len(found) == 0 {
		sb.WriteString("_No issues detected._\n\n")
		return sb.String()
	}
	for _, issue := range found {
		loc := ""
		if issue.Line > 0 {
			loc = fmt.Sprintf(" (line %d)", issue.Line)
		}
		sb.WriteString(fmt.Sprintf("- **%s/%s**%s: %s\n", issue.Type, issue.Severity, loc, issue.Message))
		if issue.Suggestion != "" {
			sb.WriteString(fmt.Sprintf("  - %s\n", issue.Suggestion))
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderInsights(insights []report.ArchitectureInsight) string {
	var sb strings.Builder
	sb.WriteString("## Architecture Insights\n\n")
	if len(insights) == 0 {
		sb.WriteString("_No patterns detected._\n\n")
		return sb.String()
	}
	for _, ins := range insights {
		sb.WriteString(fmt.Sprintf("### %s (%.0f%% confidence)\n\n%s\n\n", ins.PatternDetected, ins.Confidence*100, ins.Description))
		for _, rec := range ins.Recommendations {
			sb.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderFormatting(recs []report.FormattingRecommendation) string {
	if len(recs) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("## Formatting\n\n")
	for _, rec := range recs {
		sb.WriteString(fmt.Sprintf("- **%s**: %s → %s (%s)\n", rec.Category, rec.CurrentStyle, rec.RecommendedStyle, rec.Reason))
	}
	sb.WriteString("\n")
	return sb.String()
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}
