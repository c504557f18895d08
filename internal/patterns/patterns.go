// Package patterns recognizes design-pattern idioms and layering smells
// in raw source text.
package patterns

import (
	"regexp"

	"snipscan/internal/report"
)

// patternRule defines one design pattern as an OR over indicator regexes,
// with a fixed confidence and recommendation list.
type patternRule struct {
	Name            string
	Confidence      float64
	Description     string
	Indicators      []*regexp.Regexp
	Recommendations []string
}

var patternRules = []patternRule{
	{
		Name:        "Singleton Pattern",
		Confidence:  0.85,
		Description: "Code appears to implement the Singleton design pattern",
		Indicators: []*regexp.Regexp{
			regexp.MustCompile(`private\s+static\s+\w+\s+instance`),
			regexp.MustCompile(`getInstance\s*\(`),
			regexp.MustCompile(`private\s+def\s+__init__`),
		},
		Recommendations: []string{
			"Ensure thread-safety is properly implemented",
			"Consider if eager or lazy initialization is appropriate",
		},
	},
	{
		Name:        "Factory Pattern",
		Confidence:  0.80,
		Description: "Code appears to implement the Factory design pattern",
		Indicators: []*regexp.Regexp{
			regexp.MustCompile(`create\w+\s*\(`),
			regexp.MustCompile(`make\w+\s*\(`),
			regexp.MustCompile(`build\w+\s*\(`),
			regexp.MustCompile(`Factory\s*class`),
		},
		Recommendations: []string{
			"Ensure consistent creation logic",
			"Consider abstracting further for better extensibility",
		},
	},
	{
		Name:        "Observer Pattern",
		Confidence:  0.75,
		Description: "Code appears to implement the Observer design pattern",
		Indicators: []*regexp.Regexp{
			regexp.MustCompile(`subscribe\s*\(`),
			regexp.MustCompile(`addListener\s*\(`),
			regexp.MustCompile(`addEventListener\s*\(`),
			regexp.MustCompile(`notify\s*\(`),
			regexp.MustCompile(`emit\s*\(`),
		},
		Recommendations: []string{
			"Ensure proper cleanup of observers",
			"Consider weak references for listeners",
		},
	},
}

// Token families for the mixed-concerns check.
var (
	dbRes = []*regexp.Regexp{
		regexp.MustCompile(`SELECT|INSERT|UPDATE|DELETE|query|execute`),
		regexp.MustCompile(`\.save\(|\.delete\(`),
	}
	uiRes = []*regexp.Regexp{
		regexp.MustCompile(`render|display|button|click|onChange|setState`),
	}
	logicRes = []*regexp.Regexp{
		regexp.MustCompile(`calculate|process|validate|transform`),
	}
)

// Detect evaluates every pattern rule plus the mixed-concerns check over
// the whole text. Detectors are additive: zero, one, or several insights
// may be returned.
func Detect(code string) []report.ArchitectureInsight {
	var insights []report.ArchitectureInsight

	for _, rule := range patternRules {
		if matchesAny(rule.Indicators, code) {
			insights = append(insights, report.ArchitectureInsight{
				PatternDetected: rule.Name,
				Confidence:      rule.Confidence,
				Description:     rule.Description,
				Recommendations: rule.Recommendations,
			})
		}
	}

	if hasMixedConcerns(code) {
		insights = append(insights, report.ArchitectureInsight{
			PatternDetected: "Mixed Concerns",
			Confidence:      0.70,
			Description:     "Code appears to mix multiple concerns in a single module",
			Recommendations: []string{
				"Consider separating presentation, business logic, and data layers",
				"Apply Single Responsibility Principle",
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

// hasMixedConcerns flags code that combines persistence tokens with UI
// tokens, or persistence tokens with a heavy dose of business-logic
// tokens.
func hasMixedConcerns(code string) bool {
	dbCount := countMatches(dbRes, code)
	uiCount := countMatches(uiRes, code)
	logicCount := countMatches(logicRes, code)

	return (dbCount > 0 && uiCount > 0) || (dbCount > 0 && logicCount > 5)
}

func countMatches(res []*regexp.Regexp, code string) int {
	n := 0
	for _, re := range res {
		n += len(re.FindAllStringIndex(code, -1))
	}
	return n
}
