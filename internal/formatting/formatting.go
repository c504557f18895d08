// Package formatting produces per-language-family static style advice.
package formatting

import (
	"regexp"
	"strings"

	"snipscan/internal/report"
)

var (
	leadingTabRe   = regexp.MustCompile(`(?m)^\t`)
	unterminatedRe = regexp.MustCompile(`[^;{\s]\n`)
	semicolonRe    = regexp.MustCompile(`;`)
	braceAtEndRe   = regexp.MustCompile(`(?m)\{\s*$`)
)

// Advise dispatches on the language family (case-insensitive) and returns
// static style recommendations. Unknown families yield an empty list.
func Advise(code, language string) []report.FormattingRecommendation {
	switch strings.ToLower(language) {
	case "python", "py":
		return checkPython(code)
	case "javascript", "js", "typescript", "ts":
		return checkJavaScript(code)
	case "java":
		return checkJava(code)
	}
	return nil
}

// checkPython flags tab indentation.
func checkPython(code string) []report.FormattingRecommendation {
	if !leadingTabRe.MatchString(code) {
		return nil
	}
	return []report.FormattingRecommendation{{
		Category:         "indentation",
		CurrentStyle:     "tabs",
		RecommendedStyle: "spaces (4 spaces per level)",
		Reason:           "PEP 8 recommends using spaces for indentation",
	}}
}

// checkJavaScript flags a semicolon-free style once enough lines end
// without one.
func checkJavaScript(code string) []report.FormattingRecommendation {
	unterminated := len(unterminatedRe.FindAllStringIndex(code, -1))
	semicolons := len(semicolonRe.FindAllStringIndex(code, -1))

	if semicolons != 0 || unterminated <= 3 {
		return nil
	}
	return []report.FormattingRecommendation{{
		Category:         "semicolons",
		CurrentStyle:     "no semicolons",
		RecommendedStyle: "semicolons at line endings",
		Reason:           "Consistent semicolon usage prevents potential ASI issues",
	}}
}

// checkJava flags new-line brace placement when no line ends with an
// opening brace.
func checkJava(code string) []report.FormattingRecommendation {
	if braceAtEndRe.MatchString(code) {
		return nil
	}
	return []report.FormattingRecommendation{{
		Category:         "brace_style",
		CurrentStyle:     "braces on new line",
		RecommendedStyle: "braces at end of line",
		Reason:           "Java convention places opening braces at line end",
	}}
}
