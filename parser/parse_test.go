package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dhamidi/mica/diag"
	"github.com/dhamidi/mica/reader"
)

func TestParse(t *testing.T) {
	file, diags := Parse("main.mica", "let answer = 42\nreturn answer\n", Config{})
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", diags)
	}
	if file == nil {
		t.Fatal("file = nil, want a parsed file")
	}
	if got := file.Path(); got != "main.mica" {
		t.Errorf("Path = %q, want %q", got, "main.mica")
	}

	var got []string
	for _, stmt := range file.Statements() {
		got = append(got, stmt.Span().Content())
	}
	want := []string{"let answer = 42", "return answer"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("statements mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCollectsWarnings(t *testing.T) {
	file, diags := Parse("main.mica", "let x = 007\n", Config{})
	if file == nil {
		t.Fatal("file = nil, want a parsed file despite warnings")
	}
	if len(diags) != 1 {
		t.Fatalf("len(diagnostics) = %d, want 1", len(diags))
	}
	if diags[0].Code != diag.NumberWithLeadingZeroes {
		t.Errorf("Code = %s, want %s", diags[0].Code, diag.NumberWithLeadingZeroes)
	}
	if diags[0].Severity != diag.Warning {
		t.Errorf("Severity = %s, want warning", diags[0].Severity)
	}
}

func TestParseReportsErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"let x = 0b_1\n", diag.NumberWithSeparatorAfterPrefix},
		{"let x = 0x\n", diag.NumberWithoutDigitsAfterPrefix},
		{"let x = 3 let y = 4", diag.TwoStatementsInSameLineInFile},
		{"let x = 3 t", diag.ExpectedEOFInFile},
		{"??", diag.NotAMicaFile},
		{"let x = #+ no value +#\n", diag.MissingExpressionInVariableDeclaration},
	}
	for _, tt := range tests {
		file, diags := Parse("main.mica", tt.input, Config{})
		if file != nil {
			t.Errorf("Parse(%q) file = %v, want nil", tt.input, file)
		}
		if len(diags) == 0 {
			t.Errorf("Parse(%q) recorded no diagnostics", tt.input)
			continue
		}
		if diags[0].Code != tt.code {
			t.Errorf("Parse(%q) Code = %s, want %s", tt.input, diags[0].Code, tt.code)
		}
	}
}

func TestParseIsRepeatable(t *testing.T) {
	const text = "let x = 3\nreturn x\n"

	first, diags := Parse("main.mica", text, Config{})
	if first == nil || len(diags) != 0 {
		t.Fatalf("Parse = (%v, %v), want a clean parse", first, diags)
	}
	second, diags := Parse("main.mica", text, Config{})
	if second == nil || len(diags) != 0 {
		t.Fatalf("Parse = (%v, %v), want a clean parse", second, diags)
	}

	var a, b []string
	for _, stmt := range first.Statements() {
		a = append(a, stmt.Span().Content())
	}
	for _, stmt := range second.Statements() {
		b = append(b, stmt.Span().Content())
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("repeated parse differs (-first +second):\n%s", diff)
	}
}

func TestParseFileSpanCoversWholeInput(t *testing.T) {
	const text = "# header\nlet x = 0x1F\n\nreturn x\n"

	file, diags := Parse("main.mica", text, Config{})
	if file == nil || len(diags) != 0 {
		t.Fatalf("Parse = (%v, %v), want a clean parse", file, diags)
	}
	if got := file.Span().Content(); got != text {
		t.Errorf("file span = %q, want the whole input %q", got, text)
	}
}

func TestStatementSpansReparse(t *testing.T) {
	// The text a statement's span covers parses back into an equal
	// statement when fed to the rule in isolation.
	file, diags := Parse("main.mica", "let x = 3\nreturn x\n", Config{})
	if file == nil || len(diags) != 0 {
		t.Fatalf("Parse = (%v, %v), want a clean parse", file, diags)
	}

	for _, stmt := range file.Statements() {
		text := stmt.Span().Content()
		r := reader.FromString(text)
		ctx := NewContext(Config{})

		again, err := ParseStatement(r, ctx)
		if err != nil {
			t.Errorf("ParseStatement(%q) error = %v, want nil", text, err)
			continue
		}
		if got := again.Span().Content(); got != text {
			t.Errorf("reparsed span = %q, want %q", got, text)
		}
	}
}

func TestParseRecursionLimit(t *testing.T) {
	file, diags := Parse("main.mica", "let x = 3\n", Config{MaxDepth: 1})
	if file != nil {
		t.Errorf("file = %v, want nil", file)
	}
	if len(diags) == 0 || diags[0].Code != diag.RecursionLimitExceeded {
		t.Errorf("diagnostics = %v, want %s", diags, diag.RecursionLimitExceeded)
	}
}
