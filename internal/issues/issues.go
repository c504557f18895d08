// Package issues detects style, complexity, and naming problems in raw
// source text.
package issues

import (
	"fmt"
	"regexp"
	"strings"

	"snipscan/internal/metrics"
	"snipscan/internal/report"
)

const (
	maxLineLength    = 100
	maxLongLineCount = 5 // only the first N long lines are reported
	complexityLimit  = 50
	nestingLimit     = 5
	shortNameLimit   = 3
)

// Isolated single lowercase letters, word-boundary bound.
var singleLetterRe = regexp.MustCompile(`\b[a-z]\b`)

// Detect runs all issue detectors over the code and returns their
// combined findings in document order per detector.
func Detect(code string) []report.Issue {
	issues := []report.Issue{}
	issues = append(issues, DetectStyle(code)...)
	issues = append(issues, DetectComplexity(code)...)
	issues = append(issues, DetectNaming(code)...)
	return issues
}

// DetectStyle reports lines longer than 100 characters, capped at the
// first five.
func DetectStyle(code string) []report.Issue {
	var issues []report.Issue
	for i, line := range strings.Split(code, "\n") {
		if len(line) <= maxLineLength {
			continue
		}
		issues = append(issues, report.Issue{
			Type:       report.IssueStyle,
			Severity:   report.SeverityInfo,
			Line:       i + 1,
			Message:    fmt.Sprintf("Line exceeds 100 characters (%d chars)", len(line)),
			Suggestion: "Consider breaking this line for better readability",
		})
		if len(issues) == maxLongLineCount {
			break
		}
	}
	return issues
}

// DetectComplexity reports high cyclomatic complexity and deep nesting.
func DetectComplexity(code string) []report.Issue {
	var issues []report.Issue

	if metrics.Cyclomatic(code) > complexityLimit {
		issues = append(issues, report.Issue{
			Type:       report.IssueComplexity,
			Severity:   report.SeverityWarning,
			Message:    "High cyclomatic complexity detected",
			Suggestion: "Consider refactoring into smaller functions",
		})
	}

	if nesting := metrics.NestingDepth(code); nesting > nestingLimit {
		issues = append(issues, report.Issue{
			Type:       report.IssueNesting,
			Severity:   report.SeverityWarning,
			Message:    fmt.Sprintf("Deep nesting detected (level %d)", nesting),
			Suggestion: "Consider extracting nested blocks into separate functions",
		})
	}

	return issues
}

// DetectNaming reports overuse of single-letter variable names.
func DetectNaming(code string) []report.Issue {
	if len(singleLetterRe.FindAllStringIndex(code, -1)) <= shortNameLimit {
		return nil
	}
	return []report.Issue{{
		Type:       report.IssueNaming,
		Severity:   report.SeverityInfo,
		Message:    "Multiple single-letter variable names found",
		Suggestion: "Use more descriptive variable names",
	}}
}
