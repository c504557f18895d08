package formatting

import (
	"testing"
)

func TestAdvisePythonTabs(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int
	}{
		{"tab indented", "def f():\n\treturn 1\n", 1},
		{"space indented", "def f():\n    return 1\n", 0},
		{"tab mid-line ignored", "x = 1\t# aligned comment\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advise(tt.code, "python")
			if len(got) != tt.want {
				t.Fatalf("Advise = %+v, want %d recommendations", got, tt.want)
			}
			if tt.want == 1 {
				rec := got[0]
				if rec.Category != "indentation" || rec.CurrentStyle != "tabs" {
					t.Errorf("unexpected recommendation: %+v", rec)
				}
				if rec.Reason == "" {
					t.Error("recommendation missing reason")
				}
			}
		})
	}
}

func TestAdviseJavaScriptSemicolons(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int
	}{
		{"no semicolons many lines", "let a = 1\nlet b = 2\nlet c = 3\nlet d = 4\nlet e = 5\n", 1},
		{"semicolons used", "let a = 1;\nlet b = 2;\n", 0},
		{"too few lines to judge", "let a = 1\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advise(tt.code, "javascript")
			if len(got) != tt.want {
				t.Fatalf("Advise = %+v, want %d recommendations", got, tt.want)
			}
			if tt.want == 1 && got[0].Category != "semicolons" {
				t.Errorf("category = %q, want semicolons", got[0].Category)
			}
		})
	}
}

func TestAdviseJavaBraces(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int
	}{
		{"no line ends with brace", "public int getX() { return x; }\n", 1},
		{"brace at line end", "public int getX() {\n    return x;\n}\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advise(tt.code, "java")
			if len(got) != tt.want {
				t.Fatalf("Advise = %+v, want %d recommendations", got, tt.want)
			}
			if tt.want == 1 && got[0].Category != "brace_style" {
				t.Errorf("category = %q, want brace_style", got[0].Category)
			}
		})
	}
}

func TestAdviseDispatch(t *testing.T) {
	tabbed := "\tx = 1\n"
	tests := []struct {
		language string
		want     int
	}{
		{"python", 1},
		{"py", 1},
		{"PYTHON", 1}, // case-insensitive
		{"rust", 0},   // unknown family
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			if got := Advise(tabbed, tt.language); len(got) != tt.want {
				t.Errorf("Advise(%q) produced %d recommendations, want %d", tt.language, len(got), tt.want)
			}
		})
	}
}
