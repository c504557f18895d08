// Package debugcheck runs heuristic checks for common runtime hazards:
// uninitialized variables, null/undefined references, infinite loops, and
// resource leaks. Each check produces at most one insight.
package debugcheck

import (
	"regexp"
	"strings"

	"snipscan/internal/report"
)

var (
	uninitializedRes = []*regexp.Regexp{
		regexp.MustCompile(`if\s+\w+\s*[=!]`),
		regexp.MustCompile(`return\s+\w+`),
		regexp.MustCompile(`\w+\s*\+=`),
	}

	nullRiskRes = []*regexp.Regexp{
		regexp.MustCompile(`\.\w+\s*\(`),
		regexp.MustCompile(`\[\d+\]`),
		regexp.MustCompile(`\.split\(|\.join\(|\.map\(`),
	}
	nullRiskLimit = 5

	infiniteLoopRes = []*regexp.Regexp{
		regexp.MustCompile(`while\s+[Tt]rue\s*:`),       // Python
		regexp.MustCompile(`while\s*\(\s*[Tt]rue\s*\)`), // C-like
		regexp.MustCompile(`for\s*\([^;]*;[^;]*;\s*\)`), // empty increment clause
	}

	resourceRes = []*regexp.Regexp{
		regexp.MustCompile(`open\s*\(`),
		regexp.MustCompile(`\.connect\s*\(`),
		regexp.MustCompile(`new\s+FileStream`),
	}
	scopedResourceRe = regexp.MustCompile(`with\s+|try\s*\{|finally\s*\{`)
)

// Detect runs all debug heuristics over the code.
func Detect(code string) []report.DebugInsight {
	var insights []report.DebugInsight

	if matchesAny(uninitializedRes, code) {
		insights = append(insights, report.DebugInsight{
			PotentialIssue: "Potential uninitialized variable usage",
			Severity:       report.SeverityWarning,
			AffectedAreas:  []string{"Variable assignments and usage"},
			DebugSteps: []string{
				"Check variable declarations",
				"Trace all execution paths",
				"Add initialization checks",
			},
		})
	}

	if countMatches(nullRiskRes, code) > nullRiskLimit {
		insights = append(insights, report.DebugInsight{
			PotentialIssue: "Potential null pointer or undefined reference",
			Severity:       report.SeverityWarning,
			AffectedAreas:  []string{"Object references"},
			DebugSteps: []string{
				"Add null/undefined checks",
				"Use optional chaining where applicable",
				"Add type guards",
			},
		})
	}

	if lines := matchingLines(infiniteLoopRes, code); len(lines) > 0 {
		insights = append(insights, report.DebugInsight{
			PotentialIssue:     "Potential infinite loop detected",
			Severity:           report.SeverityError,
			AffectedAreas:      []string{"Loop constructs"},
			RelatedLineNumbers: lines,
			DebugSteps: []string{
				"Review loop conditions",
				"Check loop increment/decrement",
				"Add loop counters",
			},
		})
	}

	if lines := matchingLines(resourceRes, code); len(lines) > 0 && !scopedResourceRe.MatchString(code) {
		insights = append(insights, report.DebugInsight{
			PotentialIssue:     "Potential resource leak (file, connection, etc.)",
			Severity:           report.SeverityWarning,
			AffectedAreas:      []string{"Resource management"},
			RelatedLineNumbers: lines,
			DebugSteps: []string{
				"Check resource closing",
				"Use context managers/try-finally",
				"Add cleanup logic",
			},
		})
	}

	return insights
}

func matchesAny(res []*regexp.Regexp, code string) bool {
	for _, re := range res {
		if re.MatchString(code) {
			return true
		}
	}
	return false
}

func countMatches(res []*regexp.Regexp, code string) int {
	n := 0
	for _, re := range res {
		n += len(re.FindAllStringIndex(code, -1))
	}
	return n
}

// matchingLines returns the 1-based numbers of lines matching any of the
// given patterns, in document order without duplicates.
func matchingLines(res []*regexp.Regexp, code string) []int {
	var lines []int
	for i, line := range strings.Split(code, "\n") {
		for _, re := range res {
			if re.MatchString(line) {
				lines = append(lines, i+1)
				break
			}
		}
	}
	return lines
}
