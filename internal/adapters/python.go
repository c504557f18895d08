package adapters

import (
	"regexp"
	"strings"
)

// PythonAdapter extracts structural facts from Python source.
type PythonAdapter struct{}

var (
	pyFuncRe   = regexp.MustCompile(`^\s*def\s+(\w+)\s*\((.*?)\)`)
	pyClassRe  = regexp.MustCompile(`^\s*class\s+(\w+)\s*(\(.*?\))?`)
	pyImportRe = regexp.MustCompile(`^\s*(from|import)\s+(.+)$`)
)

func (PythonAdapter) Language() string { return "python" }

func (PythonAdapter) ExtractFunctions(code string) []FunctionFact {
	var funcs []FunctionFact
	for i, line := range strings.Split(code, "\n") {
		if m := pyFuncRe.FindStringSubmatch(line); m != nil {
			funcs = append(funcs, FunctionFact{
				Name:       m[1],
				Line:       i + 1,
				Parameters: splitParams(m[2]),
			})
		}
	}
	return funcs
}

func (PythonAdapter) ExtractClasses(code string) []ClassFact {
	var classes []ClassFact
	for i, line := range strings.Split(code, "\n") {
		if m := pyClassRe.FindStringSubmatch(line); m != nil {
			classes = append(classes, ClassFact{
				Name:      m[1],
				Line:      i + 1,
				BaseTypes: m[2],
			})
		}
	}
	return classes
}

func (PythonAdapter) ExtractImports(code string) []ImportFact {
	var imports []ImportFact
	for _, line := range strings.Split(code, "\n") {
		if pyImportRe.MatchString(line) {
			imports = append(imports, ImportFact{RawText: strings.TrimSpace(line)})
		}
	}
	return imports
}

func (PythonAdapter) ExtractComments(code string) []CommentFact {
	var comments []CommentFact
	for i, line := range strings.Split(code, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "#") {
			comments = append(comments, CommentFact{Line: i + 1, Text: stripped, Kind: CommentLine})
		}
	}
	return comments
}
