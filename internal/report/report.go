package report

// SourceUnit is the input to every analysis: one code snippet, the language
// it is written in, and an optional file name carried through for context.
// The engine never mutates it.
type SourceUnit struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	FileName string `json:"file_name,omitempty"`
}

// Issue type constants.
const (
	IssueStyle      = "style"
	IssueComplexity = "complexity"
	IssueNesting    = "nesting"
	IssueNaming     = "naming"
)

// Severity constants, shared by issues and debug insights.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Issue is a single detected problem in the analyzed code.
type Issue struct {
	Type       string `json:"issue_type"`
	Severity   string `json:"severity"`
	Line       int    `json:"line_number,omitempty"`
	Column     int    `json:"column_number,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// QualityScore holds the aggregate quality ratings. All fields are clamped
// into [0,100] before a report is returned. Complexity is a scaled
// difficulty indicator where lower is better.
type QualityScore struct {
	Overall         float64 `json:"overall_score"`
	CodeQuality     float64 `json:"code_quality"`
	Maintainability float64 `json:"maintainability"`
	Complexity      float64 `json:"complexity"`
	Duplication     float64 `json:"duplication"`
}

// ComplexityMetrics holds the raw complexity measurements.
type ComplexityMetrics struct {
	CyclomaticComplexity float64 `json:"cyclomatic_complexity"`
	CognitiveComplexity  float64 `json:"cognitive_complexity"`
	LinesOfCode          int     `json:"lines_of_code"`
	NestingDepth         int     `json:"nesting_depth"`
}

// ArchitectureInsight reports a detected design pattern or layering smell.
type ArchitectureInsight struct {
	PatternDetected string   `json:"pattern_detected"`
	Confidence      float64  `json:"confidence"` // 0.0 - 1.0
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// FormattingRecommendation is a piece of per-language style advice.
type FormattingRecommendation struct {
	Category         string `json:"category"`
	CurrentStyle     string `json:"current_style"`
	RecommendedStyle string `json:"recommended_style"`
	Reason           string `json:"reason"`
	Line             int    `json:"line_number,omitempty"`
}

// DebugInsight flags a potential runtime problem with suggested debug steps.
type DebugInsight struct {
	PotentialIssue     string   `json:"potential_issue"`
	Severity           string   `json:"severity"`
	AffectedAreas      []string `json:"affected_areas,omitempty"`
	DebugSteps         []string `json:"debug_steps,omitempty"`
	RelatedLineNumbers []int    `json:"related_line_numbers,omitempty"`
}

// FullReport is the result of a complete analysis run.
type FullReport struct {
	FileName                  string                     `json:"file_name,omitempty"`
	Language                  string                     `json:"language"`
	CodeLength                int                        `json:"code_length"` // in lines
	QualityScore              QualityScore               `json:"quality_score"`
	Issues                    []Issue                    `json:"issues"`
	ComplexityMetrics         ComplexityMetrics          `json:"complexity_metrics"`
	ArchitectureInsights      []ArchitectureInsight      `json:"architecture_insights"`
	FormattingRecommendations []FormattingRecommendation `json:"formatting_recommendations"`
	DurationMS                float64                    `json:"analysis_duration_ms"`
}

// DebugReport is the result of a debugging-focused analysis run.
type DebugReport struct {
	FileName      string         `json:"file_name,omitempty"`
	Language      string         `json:"language"`
	DebugInsights []DebugInsight `json:"debug_insights"`
	CommonIssues  []string       `json:"common_issues"`
	DurationMS    float64        `json:"analysis_duration_ms"`
}
