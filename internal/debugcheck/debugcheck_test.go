package debugcheck

import (
	"reflect"
	"strings"
	"testing"

	"snipscan/internal/report"
)

func findInsight(insights []report.DebugInsight, substr string) *report.DebugInsight {
	for i := range insights {
		if strings.Contains(insights[i].PotentialIssue, substr) {
			return &insights[i]
		}
	}
	return nil
}

func TestDetectInfiniteLoop(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"js while true", "while (true) {\n    console.log('loop');\n}", true},
		{"python while True", "while True:\n    pass\n", true},
		{"for without increment", "for (i = 0; i < n;) {", true},
		{"bounded loop", "for (i = 0; i < n; i++) {", false},
		{"conditional while", "while (count < 10) {", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := findInsight(Detect(tt.code), "infinite loop")
			if (ins != nil) != tt.want {
				t.Fatalf("infinite loop detection = %v, want %v", ins != nil, tt.want)
			}
			if ins != nil {
				if ins.Severity != report.SeverityError {
					t.Errorf("severity = %q, want error", ins.Severity)
				}
				if len(ins.RelatedLineNumbers) == 0 || ins.RelatedLineNumbers[0] != 1 {
					t.Errorf("related lines = %v, want [1]", ins.RelatedLineNumbers)
				}
			}
		})
	}
}

func TestDetectResourceLeak(t *testing.T) {
	t.Run("open without scope", func(t *testing.T) {
		ins := findInsight(Detect("f = open('file.txt')"), "resource leak")
		if ins == nil {
			t.Fatal("expected resource leak insight")
		}
		if ins.Severity != report.SeverityWarning {
			t.Errorf("severity = %q, want warning", ins.Severity)
		}
		if !reflect.DeepEqual(ins.RelatedLineNumbers, []int{1}) {
			t.Errorf("related lines = %v, want [1]", ins.RelatedLineNumbers)
		}
	})

	t.Run("with statement suppresses", func(t *testing.T) {
		code := "with open('file.txt') as f:\n    data = f.read()\n"
		if ins := findInsight(Detect(code), "resource leak"); ins != nil {
			t.Errorf("did not expect resource leak with scoped resource, got %+v", ins)
		}
	})

	t.Run("try block suppresses", func(t *testing.T) {
		code := "conn.connect()\ntry {\n} finally {\n  conn.close()\n}\n"
		if ins := findInsight(Detect(code), "resource leak"); ins != nil {
			t.Errorf("did not expect resource leak inside try/finally, got %+v", ins)
		}
	})

	t.Run("no resources", func(t *testing.T) {
		if ins := findInsight(Detect("x = 1"), "resource leak"); ins != nil {
			t.Errorf("unexpected insight %+v", ins)
		}
	})
}

func TestDetectUninitializedVariable(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"augmented assignment", "total += value", true},
		{"return variable", "return result", true},
		{"if comparison", "if count == 0:", true},
		{"plain assignment", "x = 1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := findInsight(Detect(tt.code), "uninitialized")
			if (ins != nil) != tt.want {
				t.Errorf("uninitialized detection = %v, want %v", ins != nil, tt.want)
			}
			if ins != nil && ins.Severity != report.SeverityWarning {
				t.Errorf("severity = %q, want warning", ins.Severity)
			}
		})
	}
}

func TestDetectNullReferenceRisk(t *testing.T) {
	t.Run("many chained calls", func(t *testing.T) {
		code := "a.b().c().d().e().f().g()"
		if ins := findInsight(Detect(code), "null pointer"); ins == nil {
			t.Error("expected null reference insight for heavy chaining")
		}
	})

	t.Run("few references tolerated", func(t *testing.T) {
		code := "a.b()\nc[0]\n"
		if ins := findInsight(Detect(code), "null pointer"); ins != nil {
			t.Errorf("unexpected insight %+v", ins)
		}
	})
}

func TestDetectEmptyInput(t *testing.T) {
	if got := Detect(""); len(got) != 0 {
		t.Errorf("expected no insights for empty input, got %+v", got)
	}
}
