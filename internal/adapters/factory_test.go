package adapters

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNewResolvesAliases(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"python", "python"},
		{"py", "python"},
		{"javascript", "javascript"},
		{"js", "javascript"},
		{"typescript", "javascript"},
		{"ts", "javascript"},
		{"java", "java"},
		{"cpp", "java"},
		{"c++", "java"},
		{"PYTHON", "python"}, // case-insensitive
		{"TypeScript", "javascript"},
	}
	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			adapter, err := New(tt.alias)
			if err != nil {
				t.Fatalf("New(%q): %v", tt.alias, err)
			}
			if adapter.Language() != tt.want {
				t.Errorf("New(%q).Language() = %q, want %q", tt.alias, adapter.Language(), tt.want)
			}
		})
	}
}

func TestNewUnsupportedLanguage(t *testing.T) {
	_, err := New("cobol")
	if err == nil {
		t.Fatal("expected error for unsupported language")
	}

	var unsupported *UnsupportedLanguageError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected *UnsupportedLanguageError, got %T", err)
	}
	if unsupported.Language != "cobol" {
		t.Errorf("error language = %q, want %q", unsupported.Language, "cobol")
	}
	// The message must list the supported aliases.
	for _, alias := range []string{"python", "javascript", "c++"} {
		if !strings.Contains(err.Error(), alias) {
			t.Errorf("error message %q missing alias %q", err.Error(), alias)
		}
	}
}

func TestAliasVariantsBehaveIdentically(t *testing.T) {
	code := "def greet(name):\n    return name\n"

	a, err := New("python")
	if err != nil {
		t.Fatal(err)
	}
	b, err := New("py")
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(a.ExtractFunctions(code), b.ExtractFunctions(code)) {
		t.Error("python and py adapters disagree on functions")
	}
	if !reflect.DeepEqual(a.ExtractComments(code), b.ExtractComments(code)) {
		t.Error("python and py adapters disagree on comments")
	}
}

func TestSupportedLanguages(t *testing.T) {
	langs := SupportedLanguages()

	want := []string{"python", "py", "javascript", "js", "typescript", "ts", "java", "cpp", "c++"}
	if !reflect.DeepEqual(langs, want) {
		t.Errorf("SupportedLanguages() = %v, want %v", langs, want)
	}

	seen := make(map[string]bool)
	for _, l := range langs {
		if seen[l] {
			t.Errorf("duplicate alias %q", l)
		}
		seen[l] = true
	}
}
