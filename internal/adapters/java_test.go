package adapters

import (
	"reflect"
	"testing"
)

const javaSample = `import java.util.List;

public class Calculator extends Machine {
    // running total
    private int total;

    public int add(int a, int b) {
        return a + b;
    }

    private void reset() {
        total = 0;
    }
}
`

func TestJavaExtractFunctions(t *testing.T) {
	funcs := JavaAdapter{}.ExtractFunctions(javaSample)

	want := []FunctionFact{
		{Name: "add", Line: 7, Parameters: []string{"int a", "int b"}},
		{Name: "reset", Line: 11},
	}
	if !reflect.DeepEqual(funcs, want) {
		t.Errorf("ExtractFunctions = %+v, want %+v", funcs, want)
	}
}

func TestJavaExtractFunctionsExcludesClassKeyword(t *testing.T) {
	// A captured name equal to "class" must not be reported as a function.
	funcs := JavaAdapter{}.ExtractFunctions("Foo class(int x) {\n")
	if len(funcs) != 0 {
		t.Errorf("expected no functions, got %+v", funcs)
	}
}

func TestJavaExtractClasses(t *testing.T) {
	classes := JavaAdapter{}.ExtractClasses(javaSample)

	want := []ClassFact{{Name: "Calculator", Line: 3, BaseTypes: "Machine"}}
	if !reflect.DeepEqual(classes, want) {
		t.Errorf("ExtractClasses = %+v, want %+v", classes, want)
	}
}

func TestJavaExtractImports(t *testing.T) {
	imports := JavaAdapter{}.ExtractImports(javaSample)

	want := []ImportFact{{RawText: "import java.util.List;"}}
	if !reflect.DeepEqual(imports, want) {
		t.Errorf("ExtractImports = %+v, want %+v", imports, want)
	}
}

func TestJavaExtractComments(t *testing.T) {
	comments := JavaAdapter{}.ExtractComments(javaSample)

	want := []CommentFact{{Line: 4, Text: "// running total", Kind: CommentLine}}
	if !reflect.DeepEqual(comments, want) {
		t.Errorf("ExtractComments = %+v, want %+v", comments, want)
	}
}
