package adapters

import (
	"fmt"
	"strings"
)

// aliasTable maps normalized language identifiers to adapter constructors.
// Order matters: SupportedLanguages reports aliases in this order.
// cpp/c++ map to the Java-family adapter as a heuristic placeholder — the
// C-like surface syntax is close enough for line-based extraction.
var aliasTable = []struct {
	alias string
	build func() Adapter
}{
	{"python", func() Adapter { return PythonAdapter{} }},
	{"py", func() Adapter { return PythonAdapter{} }},
	{"javascript", func() Adapter { return JavaScriptAdapter{} }},
	{"js", func() Adapter { return JavaScriptAdapter{} }},
	{"typescript", func() Adapter { return JavaScriptAdapter{} }},
	{"ts", func() Adapter { return JavaScriptAdapter{} }},
	{"java", func() Adapter { return JavaAdapter{} }},
	{"cpp", func() Adapter { return JavaAdapter{} }},
	{"c++", func() Adapter { return JavaAdapter{} }},
}

// UnsupportedLanguageError is returned when no alias matches the requested
// language. It is the only error the analysis engine can produce.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language: %s (supported: %s)",
		e.Language, strings.Join(SupportedLanguages(), ", "))
}

// New resolves a language identifier (case-insensitive, with aliases) to
// an adapter. Unknown identifiers yield an *UnsupportedLanguageError.
func New(language string) (Adapter, error) {
	normalized := strings.ToLower(language)
	for _, entry := range aliasTable {
		if entry.alias == normalized {
			return entry.build(), nil
		}
	}
	return nil, &UnsupportedLanguageError{Language: language}
}

// SupportedLanguages returns every recognized alias, ordered and
// de-duplicated.
func SupportedLanguages() []string {
	seen := make(map[string]bool, len(aliasTable))
	langs := make([]string, 0, len(aliasTable))
	for _, entry := range aliasTable {
		if !seen[entry.alias] {
			seen[entry.alias] = true
			langs = append(langs, entry.alias)
		}
	}
	return langs
}
