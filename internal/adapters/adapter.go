package adapters

import "strings"

// FunctionFact describes a function definition found in the source text.
type FunctionFact struct {
	Name       string   `json:"name"`
	Line       int      `json:"line"`
	Parameters []string `json:"parameters,omitempty"`
}

// ClassFact describes a class definition found in the source text.
type ClassFact struct {
	Name      string `json:"name"`
	Line      int    `json:"line"`
	BaseTypes string `json:"base_types,omitempty"`
}

// ImportFact is a raw import statement line.
type ImportFact struct {
	RawText string `json:"raw_text"`
}

// Comment kind constants.
const (
	CommentLine  = "line"
	CommentBlock = "block"
)

// CommentFact describes a comment line found in the source text.
type CommentFact struct {
	Line int    `json:"line"`
	Text string `json:"text"`
	Kind string `json:"kind"`
}

// Adapter extracts structural facts from raw source text for one language
// family. Implementations are line-based heuristics: they never fail on
// malformed input, and absence of matches yields empty results.
type Adapter interface {
	// Language returns the canonical family name (e.g. "python").
	Language() string
	// ExtractFunctions returns function definitions found in the code.
	ExtractFunctions(code string) []FunctionFact
	// ExtractClasses returns class definitions found in the code.
	ExtractClasses(code string) []ClassFact
	// ExtractImports returns raw import statements found in the code.
	ExtractImports(code string) []ImportFact
	// ExtractComments returns comment lines found in the code.
	ExtractComments(code string) []CommentFact
}

// CountLines returns the total number of lines in the code.
func CountLines(code string) int {
	return len(strings.Split(code, "\n"))
}

// CountBlankLines returns the number of lines that are empty or
// whitespace-only.
func CountBlankLines(code string) int {
	n := 0
	for _, line := range strings.Split(code, "\n") {
		if strings.TrimSpace(line) == "" {
			n++
		}
	}
	return n
}

// splitParams splits a parameter list on commas, trimming whitespace and
// dropping empty entries.
func splitParams(raw string) []string {
	var params []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			params = append(params, p)
		}
	}
	return params
}

// cStyleComments extracts // and /* */ comments, tracking block-comment
// state across lines. Shared by the JavaScript and Java family adapters.
func cStyleComments(code string) []CommentFact {
	var comments []CommentFact
	inBlock := false
	for i, line := range strings.Split(code, "\n") {
		stripped := strings.TrimSpace(line)

		if strings.Contains(stripped, "/*") {
			inBlock = true
		}
		if strings.Contains(stripped, "*/") {
			inBlock = false
			comments = append(comments, CommentFact{Line: i + 1, Text: stripped, Kind: CommentBlock})
			continue
		}

		if inBlock {
			comments = append(comments, CommentFact{Line: i + 1, Text: stripped, Kind: CommentBlock})
		} else if strings.HasPrefix(stripped, "//") {
			comments = append(comments, CommentFact{Line: i + 1, Text: stripped, Kind: CommentLine})
		}
	}
	return comments
}
