package parser

import (
	"errors"
	"testing"

	"github.com/dhamidi/mica/diag"
	"github.com/dhamidi/mica/reader"
)

func TestParseVariableDeclaration(t *testing.T) {
	r := reader.FromString("let x = 42")
	ctx := NewContext(Config{})

	decl, err := ParseVariableDeclaration(r, ctx)
	if err != nil {
		t.Fatalf("ParseVariableDeclaration error = %v, want nil", err)
	}
	if got := decl.Name().Name(); got != "x" {
		t.Errorf("Name = %q, want %q", got, "x")
	}
	number, ok := decl.Value().(*Number)
	if !ok {
		t.Fatalf("Value is %T, want *Number", decl.Value())
	}
	if got := number.Span().Content(); got != "42" {
		t.Errorf("Value span = %q, want %q", got, "42")
	}
	if got := decl.Span().Content(); got != "let x = 42" {
		t.Errorf("Span = %q, want %q", got, "let x = 42")
	}
}

func TestParseVariableDeclarationIdentifierValue(t *testing.T) {
	r := reader.FromString("let y = x")
	ctx := NewContext(Config{})

	decl, err := ParseVariableDeclaration(r, ctx)
	if err != nil {
		t.Fatalf("ParseVariableDeclaration error = %v, want nil", err)
	}
	id, ok := decl.Value().(*Identifier)
	if !ok {
		t.Fatalf("Value is %T, want *Identifier", decl.Value())
	}
	if got := id.Name(); got != "x" {
		t.Errorf("Value name = %q, want %q", got, "x")
	}
}

func TestParseVariableDeclarationValueOnNextLine(t *testing.T) {
	r := reader.FromString("let x =\n\t# the answer\n\t42")
	ctx := NewContext(Config{})

	decl, err := ParseVariableDeclaration(r, ctx)
	if err != nil {
		t.Fatalf("ParseVariableDeclaration error = %v, want nil", err)
	}
	if _, ok := decl.Value().(*Number); !ok {
		t.Fatalf("Value is %T, want *Number", decl.Value())
	}
	if got := len(ctx.Diagnostics()); got != 0 {
		t.Errorf("len(Diagnostics) = %d, want 0", got)
	}
}

func TestParseVariableDeclarationErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"let = 3", diag.MissingVariableNameInVariableDeclaration},
		{"let 9 = 3", diag.MissingVariableNameInVariableDeclaration},
		{"let x 3", diag.MissingAssignOperatorInVariableDeclaration},
		{"let x", diag.MissingAssignOperatorInVariableDeclaration},
		{"let x =", diag.MissingExpressionInVariableDeclaration},
		{"let x = \n", diag.MissingExpressionInVariableDeclaration},
		{"let x = +", diag.MissingExpressionInVariableDeclaration},
	}
	for _, tt := range tests {
		r := reader.FromString(tt.input)
		ctx := NewContext(Config{})

		_, err := ParseVariableDeclaration(r, ctx)
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("ParseVariableDeclaration(%q) error = %v, want ErrSyntax", tt.input, err)
			continue
		}
		diags := ctx.Diagnostics()
		if len(diags) != 1 {
			t.Errorf("ParseVariableDeclaration(%q) recorded %d diagnostics, want 1", tt.input, len(diags))
			continue
		}
		if diags[0].Code != tt.code {
			t.Errorf("ParseVariableDeclaration(%q) Code = %s, want %s", tt.input, diags[0].Code, tt.code)
		}
	}
}

func TestParseVariableDeclarationNotFound(t *testing.T) {
	for _, input := range []string{"", "lettuce = 3", "return 5", "x = 3"} {
		r := reader.FromString(input)
		ctx := NewContext(Config{})

		_, err := ParseVariableDeclaration(r, ctx)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("ParseVariableDeclaration(%q) error = %v, want ErrNotFound", input, err)
		}
		if r.Offset() != 0 {
			t.Errorf("ParseVariableDeclaration(%q) moved the reader to offset %d", input, r.Offset())
		}
	}
}

func TestParseReturnStatement(t *testing.T) {
	r := reader.FromString("return 5")
	ctx := NewContext(Config{})

	ret, err := ParseReturnStatement(r, ctx)
	if err != nil {
		t.Fatalf("ParseReturnStatement error = %v, want nil", err)
	}
	if _, ok := ret.Value().(*Number); !ok {
		t.Fatalf("Value is %T, want *Number", ret.Value())
	}
	if got := ret.Span().Content(); got != "return 5" {
		t.Errorf("Span = %q, want %q", got, "return 5")
	}
}

func TestParseReturnStatementMissingExpression(t *testing.T) {
	// The returned expression has to sit on the same line as the keyword.
	for _, input := range []string{"return", "return\n5", "return  "} {
		r := reader.FromString(input)
		ctx := NewContext(Config{})

		_, err := ParseReturnStatement(r, ctx)
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("ParseReturnStatement(%q) error = %v, want ErrSyntax", input, err)
			continue
		}
		diags := ctx.Diagnostics()
		if len(diags) != 1 || diags[0].Code != diag.MissingExpressionInReturnStatement {
			t.Errorf("ParseReturnStatement(%q) diagnostics = %v, want one %s",
				input, diags, diag.MissingExpressionInReturnStatement)
		}
	}
}

func TestParseStatement(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"let x = 1", "*parser.VariableDeclaration"},
		{"return x", "*parser.ReturnStatement"},
	}
	for _, tt := range tests {
		r := reader.FromString(tt.input)
		ctx := NewContext(Config{})

		stmt, err := ParseStatement(r, ctx)
		if err != nil {
			t.Errorf("ParseStatement(%q) error = %v, want nil", tt.input, err)
			continue
		}
		switch stmt.(type) {
		case *VariableDeclaration:
			if tt.want != "*parser.VariableDeclaration" {
				t.Errorf("ParseStatement(%q) = %T, want %s", tt.input, stmt, tt.want)
			}
		case *ReturnStatement:
			if tt.want != "*parser.ReturnStatement" {
				t.Errorf("ParseStatement(%q) = %T, want %s", tt.input, stmt, tt.want)
			}
		default:
			t.Errorf("ParseStatement(%q) = %T, want %s", tt.input, stmt, tt.want)
		}
	}
}

func TestParseStatementNotFound(t *testing.T) {
	r := reader.FromString("42")
	ctx := NewContext(Config{})

	_, err := ParseStatement(r, ctx)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ParseStatement error = %v, want ErrNotFound", err)
	}
	if r.Offset() != 0 {
		t.Errorf("reader moved to offset %d, want 0", r.Offset())
	}
}
