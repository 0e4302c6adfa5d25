package parser

import (
	"errors"
	"testing"

	"github.com/dhamidi/mica/diag"
	"github.com/dhamidi/mica/reader"
)

func TestParseSingleLineComment(t *testing.T) {
	r := reader.FromString("# hello\nrest")
	ctx := NewContext(Config{})

	comment, err := ParseSingleLineComment(r, ctx)
	if err != nil {
		t.Fatalf("ParseSingleLineComment error = %v, want nil", err)
	}
	if got := comment.Span().Content(); got != "# hello" {
		t.Errorf("Span = %q, want %q", got, "# hello")
	}
	if got := comment.Message().Content(); got != "hello" {
		t.Errorf("Message = %q, want %q", got, "hello")
	}
	if comment.MultilineType() {
		t.Error("MultilineType = true, want false")
	}
	// The line break stays in the input for statement separation.
	if got := r.Remaining(); got != "\nrest" {
		t.Errorf("Remaining = %q, want %q", got, "\nrest")
	}
}

func TestParseSingleLineCommentAtEOF(t *testing.T) {
	r := reader.FromString("# hi")
	ctx := NewContext(Config{})

	comment, err := ParseSingleLineComment(r, ctx)
	if err != nil {
		t.Fatalf("ParseSingleLineComment error = %v, want nil", err)
	}
	if got := comment.Message().Content(); got != "hi" {
		t.Errorf("Message = %q, want %q", got, "hi")
	}
	if !r.AtEnd() {
		t.Errorf("AtEnd = false, want true")
	}
}

func TestParseCommentNotFound(t *testing.T) {
	for _, input := range []string{"", "#", "#nope", "no comment", "+#"} {
		r := reader.FromString(input)
		ctx := NewContext(Config{})

		_, err := ParseComment(r, ctx)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("ParseComment(%q) error = %v, want ErrNotFound", input, err)
		}
		if r.Offset() != 0 {
			t.Errorf("ParseComment(%q) moved the reader to offset %d", input, r.Offset())
		}
	}
}

func TestParseMultilineComment(t *testing.T) {
	r := reader.FromString("#++ hello\nworld ++# tail")
	ctx := NewContext(Config{})

	comment, err := ParseMultilineComment(r, ctx)
	if err != nil {
		t.Fatalf("ParseMultilineComment error = %v, want nil", err)
	}
	if !comment.MultilineType() {
		t.Error("MultilineType = false, want true")
	}
	if got := comment.RepeatedTokens(); got != 2 {
		t.Errorf("RepeatedTokens = %d, want 2", got)
	}
	if got := comment.Message().Content(); got != " hello\nworld " {
		t.Errorf("Message = %q, want %q", got, " hello\nworld ")
	}
	if !comment.Multiline() {
		t.Error("Multiline = false, want true")
	}
	if comment.ImmediatelyClosed() {
		t.Error("ImmediatelyClosed = true, want false")
	}
	if got := r.Remaining(); got != " tail" {
		t.Errorf("Remaining = %q, want %q", got, " tail")
	}
}

func TestParseMultilineCommentImmediatelyClosed(t *testing.T) {
	r := reader.FromString("#+#x")
	ctx := NewContext(Config{})

	comment, err := ParseMultilineComment(r, ctx)
	if err != nil {
		t.Fatalf("ParseMultilineComment error = %v, want nil", err)
	}
	if !comment.ImmediatelyClosed() {
		t.Error("ImmediatelyClosed = false, want true")
	}
	if comment.Multiline() {
		t.Error("Multiline = true, want false")
	}
	if got := comment.Span().Content(); got != "#+#" {
		t.Errorf("Span = %q, want %q", got, "#+#")
	}
	if got := r.Remaining(); got != "x" {
		t.Errorf("Remaining = %q, want %q", got, "x")
	}
}

func TestParseMultilineCommentSingleLineBody(t *testing.T) {
	r := reader.FromString("#+ all on one line +#")
	ctx := NewContext(Config{})

	comment, err := ParseMultilineComment(r, ctx)
	if err != nil {
		t.Fatalf("ParseMultilineComment error = %v, want nil", err)
	}
	if comment.Multiline() {
		t.Error("Multiline = true, want false")
	}
	if got := comment.Message().Content(); got != " all on one line " {
		t.Errorf("Message = %q, want %q", got, " all on one line ")
	}
}

func TestParseMultilineCommentUnterminated(t *testing.T) {
	r := reader.FromString("#++ never closed")
	ctx := NewContext(Config{})

	_, err := ParseMultilineComment(r, ctx)
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("ParseMultilineComment error = %v, want ErrSyntax", err)
	}

	diags := ctx.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("len(Diagnostics) = %d, want 1", len(diags))
	}
	if diags[0].Code != diag.MultilineCommentWithoutEndToken {
		t.Errorf("Code = %s, want %s", diags[0].Code, diag.MultilineCommentWithoutEndToken)
	}
	if diags[0].Severity != diag.Error {
		t.Errorf("Severity = %s, want error", diags[0].Severity)
	}
}
