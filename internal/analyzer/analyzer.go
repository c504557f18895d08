// Package analyzer composes the language adapters and detectors into full
// and debugging-focused analysis reports.
package analyzer

import (
	"time"

	"github.com/sirupsen/logrus"

	"snipscan/internal/adapters"
	"snipscan/internal/debugcheck"
	"snipscan/internal/formatting"
	"snipscan/internal/issues"
	"snipscan/internal/metrics"
	"snipscan/internal/patterns"
	"snipscan/internal/report"
)

// Options selects which sections of a full report are computed.
// Complexity metrics are always included.
type Options struct {
	Quality      bool
	Issues       bool
	Architecture bool
	Formatting   bool
}

// DefaultOptions enables every section.
func DefaultOptions() Options {
	return Options{Quality: true, Issues: true, Architecture: true, Formatting: true}
}

// Analyzer runs analyses over source units. It holds no mutable state:
// a single value is safe for unlimited concurrent use.
type Analyzer struct{}

// New creates an Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// AnalyzeFull produces a complete report for the given source unit.
// The only possible error is *adapters.UnsupportedLanguageError.
func (a *Analyzer) AnalyzeFull(unit report.SourceUnit, opts Options) (*report.FullReport, error) {
	start := time.Now()

	adapter, err := adapters.New(unit.Language)
	if err != nil {
		return nil, err
	}

	rep := &report.FullReport{
		FileName:                  unit.FileName,
		Language:                  unit.Language,
		CodeLength:                adapters.CountLines(unit.Code),
		Issues:                    []report.Issue{},
		ArchitectureInsights:      []report.ArchitectureInsight{},
		FormattingRecommendations: []report.FormattingRecommendation{},
	}

	rep.ComplexityMetrics = report.ComplexityMetrics{
		CyclomaticComplexity: metrics.Cyclomatic(unit.Code),
		CognitiveComplexity:  metrics.Cognitive(unit.Code),
		LinesOfCode:          adapters.CountLines(unit.Code),
		NestingDepth:         metrics.NestingDepth(unit.Code),
	}

	if opts.Quality {
		rep.QualityScore = quality(unit.Code, adapter)
	}
	if opts.Issues {
		rep.Issues = issues.Detect(unit.Code)
	}
	if opts.Architecture {
		rep.ArchitectureInsights = patterns.Detect(unit.Code)
	}
	if opts.Formatting {
		rep.FormattingRecommendations = formatting.Advise(unit.Code, unit.Language)
	}

	rep.DurationMS = float64(time.Since(start)) / float64(time.Millisecond)
	logrus.Debugf("[analyzer] full analysis: language=%s lines=%d issues=%d insights=%d duration=%.3fms",
		unit.Language, rep.CodeLength, len(rep.Issues), len(rep.ArchitectureInsights), rep.DurationMS)
	return rep, nil
}

// AnalyzeForDebugging produces a debugging-focused report for the given
// source unit. The only possible error is
// *adapters.UnsupportedLanguageError.
func (a *Analyzer) AnalyzeForDebugging(unit report.SourceUnit) (*report.DebugReport, error) {
	start := time.Now()

	if _, err := adapters.New(unit.Language); err != nil {
		return nil, err
	}

	rep := &report.DebugReport{
		FileName:      unit.FileName,
		Language:      unit.Language,
		DebugInsights: debugcheck.Detect(unit.Code),
		CommonIssues:  commonIssues(issues.Detect(unit.Code)),
	}

	rep.DurationMS = float64(time.Since(start)) / float64(time.Millisecond)
	logrus.Debugf("[analyzer] debug analysis: language=%s insights=%d duration=%.3fms",
		unit.Language, len(rep.DebugInsights), rep.DurationMS)
	return rep, nil
}

// quality computes the aggregate quality scores. All fields are clamped
// into [0,100].
func quality(code string, adapter adapters.Adapter) report.QualityScore {
	totalLines := adapters.CountLines(code)
	blankLines := adapters.CountBlankLines(code)
	commentLines := len(adapter.ExtractComments(code))
	codeLines := totalLines - blankLines

	complexityScore := metrics.Cyclomatic(code)
	duplicationScore := metrics.DuplicationScore(code)

	documentationRatio := 0.0
	if codeLines > 0 {
		documentationRatio = float64(commentLines) / float64(codeLines) * 100
	}

	maintainability := min(100, 50+documentationRatio+(100-complexityScore)*0.5)

	codeQuality := max(0, 100-(float64(totalLines)/1000*5+complexityScore*0.3+(100-duplicationScore)*0.2))

	overall := (codeQuality + maintainability + duplicationScore) / 3

	return report.QualityScore{
		Overall:         clamp(overall),
		CodeQuality:     clamp(codeQuality),
		Maintainability: clamp(maintainability),
		Complexity:      clamp(complexityScore),
		Duplication:     clamp(duplicationScore),
	}
}

func clamp(v float64) float64 {
	return min(100, max(0, v))
}

// commonIssues de-duplicates issue messages, preserving first-seen order
// so identical inputs produce identical reports.
func commonIssues(found []report.Issue) []string {
	seen := make(map[string]bool, len(found))
	msgs := []string{}
	for _, issue := range found {
		if !seen[issue.Message] {
			seen[issue.Message] = true
			msgs = append(msgs, issue.Message)
		}
	}
	return msgs
}

// SupportedLanguages exposes the adapter factory's alias list for UI and
// CLI surfaces.
func SupportedLanguages() []string {
	return adapters.SupportedLanguages()
}
