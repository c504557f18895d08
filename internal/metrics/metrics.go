// Package metrics computes heuristic complexity and duplication scores
// from raw source text. Every function is total: malformed or empty input
// yields zero-valued results, never an error.
package metrics

import (
	"regexp"
	"strings"
)

// Decision constructs counted for cyclomatic complexity. The ternary
// pattern is a rough `? ... :` shape; it does not parse expressions.
var decisionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bif\b`),
	regexp.MustCompile(`(?i)\belse\b`),
	regexp.MustCompile(`(?i)\belif\b`),
	regexp.MustCompile(`(?i)\bfor\b`),
	regexp.MustCompile(`(?i)\bwhile\b`),
	regexp.MustCompile(`(?i)\bcase\b`),
	regexp.MustCompile(`(?i)\bcatch\b`),
	regexp.MustCompile(`(?i)\?.*:`),
}

var conditionalRe = regexp.MustCompile(`(?i)\b(if|for|while|case)\b`)

// Cyclomatic approximates cyclomatic complexity by counting decision
// keywords across the whole text, scaled down by 10 and capped at 100.
func Cyclomatic(code string) float64 {
	complexity := 1
	for _, re := range decisionRes {
		complexity += len(re.FindAllStringIndex(code, -1))
	}
	return min(100, float64(complexity)/10)
}

// Cognitive approximates cognitive complexity from the conditional count
// and the maximum nesting depth, scaled down by 2 and capped at 100.
func Cognitive(code string) float64 {
	conditionals := len(conditionalRe.FindAllStringIndex(code, -1))
	cognitive := 1 + conditionals + NestingDepth(code)*2
	return min(100, float64(cognitive)/2)
}

// NestingDepth returns the maximum simultaneous open-bracket count across
// the text. Bracket types are not matched against each other: any of
// `{([` opens, any of `}])` closes.
func NestingDepth(code string) int {
	maxDepth, depth := 0, 0
	for _, c := range code {
		switch c {
		case '{', '(', '[':
			depth++
			maxDepth = max(maxDepth, depth)
		case '}', ')', ']':
			depth = max(0, depth-1)
		}
	}
	return maxDepth
}

// DuplicationScore returns the percentage of lines that are unique, as an
// inverse proxy for copy-paste duplication. Lines are compared verbatim,
// blanks included; higher is better.
func DuplicationScore(code string) float64 {
	lines := strings.Split(code, "\n")
	unique := make(map[string]bool, len(lines))
	for _, line := range lines {
		unique[line] = true
	}

	total := len(lines)
	if total == 0 {
		return 100
	}

	duplicationRatio := 1 - float64(len(unique))/float64(total)
	return max(0, 100-duplicationRatio*100)
}
