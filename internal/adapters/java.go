package adapters

import (
	"regexp"
	"strings"
)

// JavaAdapter extracts structural facts from Java-family source. It also
// serves the cpp/c++ aliases: the brace and comment shape is close enough
// for the line-based heuristics, though no real C++ semantics are
// attempted.
type JavaAdapter struct{}

var (
	javaFuncRe   = regexp.MustCompile(`(public|private|protected|static)?\s*\w+\s+(\w+)\s*\((.*?)\)\s*\{`)
	javaClassRe  = regexp.MustCompile(`(?:public|private)?\s*class\s+(\w+)\s*(?:extends\s+(\w+))?`)
	javaImportRe = regexp.MustCompile(`^\s*import\s+.+;`)
)

func (JavaAdapter) Language() string { return "java" }

func (JavaAdapter) ExtractFunctions(code string) []FunctionFact {
	var funcs []FunctionFact
	for i, line := range strings.Split(code, "\n") {
		m := javaFuncRe.FindStringSubmatch(line)
		if m == nil || m[2] == "class" {
			continue
		}
		funcs = append(funcs, FunctionFact{
			Name:       m[2],
			Line:       i + 1,
			Parameters: splitParams(m[3]),
		})
	}
	return funcs
}

func (JavaAdapter) ExtractClasses(code string) []ClassFact {
	var classes []ClassFact
	for i, line := range strings.Split(code, "\n") {
		if m := javaClassRe.FindStringSubmatch(line); m != nil {
			classes = append(classes, ClassFact{
				Name:      m[1],
				Line:      i + 1,
				BaseTypes: m[2],
			})
		}
	}
	return classes
}

func (JavaAdapter) ExtractImports(code string) []ImportFact {
	var imports []ImportFact
	for _, line := range strings.Split(code, "\n") {
		if javaImportRe.MatchString(line) {
			imports = append(imports, ImportFact{RawText: strings.TrimSpace(line)})
		}
	}
	return imports
}

func (JavaAdapter) ExtractComments(code string) []CommentFact {
	return cStyleComments(code)
}
