package adapters

import (
	"regexp"
	"strings"
)

// JavaScriptAdapter extracts structural facts from JavaScript and
// TypeScript source.
type JavaScriptAdapter struct{}

// Function patterns are tried in order per line; the first match wins.
// The bare `name(args) {` form deliberately over-matches (it also hits
// method signatures and some call sites followed by a block) — that is
// the accepted cost of line-based extraction.
var (
	jsFuncRes = []*regexp.Regexp{
		regexp.MustCompile(`function\s+(\w+)\s*\((.*?)\)`),
		regexp.MustCompile(`const\s+(\w+)\s*=\s*(?:async\s*)?\((.*?)\)`),
		regexp.MustCompile(`(\w+)\s*\((.*?)\)\s*\{`),
	}
	jsClassRe   = regexp.MustCompile(`class\s+(\w+)\s*(?:extends\s+(\w+))?`)
	jsImportRe  = regexp.MustCompile(`^\s*import\s+.+from\s+`)
	jsRequireRe = regexp.MustCompile(`^\s*require\s*\(`)
)

func (JavaScriptAdapter) Language() string { return "javascript" }

func (JavaScriptAdapter) ExtractFunctions(code string) []FunctionFact {
	var funcs []FunctionFact
	seen := make(map[string]bool)
	for i, line := range strings.Split(code, "\n") {
		for _, re := range jsFuncRes {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if !seen[m[1]] {
				seen[m[1]] = true
				funcs = append(funcs, FunctionFact{
					Name:       m[1],
					Line:       i + 1,
					Parameters: splitParams(m[2]),
				})
			}
			break
		}
	}
	return funcs
}

func (JavaScriptAdapter) ExtractClasses(code string) []ClassFact {
	var classes []ClassFact
	for i, line := range strings.Split(code, "\n") {
		if m := jsClassRe.FindStringSubmatch(line); m != nil {
			classes = append(classes, ClassFact{
				Name:      m[1],
				Line:      i + 1,
				BaseTypes: m[2],
			})
		}
	}
	return classes
}

func (JavaScriptAdapter) ExtractImports(code string) []ImportFact {
	var imports []ImportFact
	for _, line := range strings.Split(code, "\n") {
		if jsImportRe.MatchString(line) || jsRequireRe.MatchString(line) {
			imports = append(imports, ImportFact{RawText: strings.TrimSpace(line)})
		}
	}
	return imports
}

func (JavaScriptAdapter) ExtractComments(code string) []CommentFact {
	return cStyleComments(code)
}
