package parser

import (
	"errors"
	"testing"

	"github.com/dhamidi/mica/reader"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		input string
		name  string
		rest  string
	}{
		{"abc", "abc", ""},
		{"_x1", "_x1", ""},
		{"A9_b", "A9_b", ""},
		{"abc def", "abc", " def"},
		{"x=1", "x", "=1"},
	}
	for _, tt := range tests {
		r := reader.FromString(tt.input)
		ctx := NewContext(Config{})

		id, err := ParseIdentifier(r, ctx)
		if err != nil {
			t.Errorf("ParseIdentifier(%q) error = %v, want nil", tt.input, err)
			continue
		}
		if id.Name() != tt.name {
			t.Errorf("ParseIdentifier(%q).Name = %q, want %q", tt.input, id.Name(), tt.name)
		}
		if got := r.Remaining(); got != tt.rest {
			t.Errorf("ParseIdentifier(%q) Remaining = %q, want %q", tt.input, got, tt.rest)
		}
	}
}

func TestParseIdentifierNotFound(t *testing.T) {
	for _, input := range []string{"", "9x", " abc", "=x"} {
		r := reader.FromString(input)
		ctx := NewContext(Config{})

		_, err := ParseIdentifier(r, ctx)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("ParseIdentifier(%q) error = %v, want ErrNotFound", input, err)
		}
		if r.Offset() != 0 {
			t.Errorf("ParseIdentifier(%q) moved the reader to offset %d", input, r.Offset())
		}
	}
}

func TestParseKeyword(t *testing.T) {
	tests := []struct {
		input   string
		keyword string
		ok      bool
		rest    string
	}{
		{"let x", "let", true, " x"},
		{"return 5", "return", true, " 5"},
		{"lettuce", "let", false, "lettuce"},
		{"le", "let", false, "le"},
		{"", "let", false, ""},
	}
	for _, tt := range tests {
		r := reader.FromString(tt.input)
		ctx := NewContext(Config{})

		ok := ParseKeyword(r, ctx, tt.keyword)
		if ok != tt.ok {
			t.Errorf("ParseKeyword(%q, %q) = %v, want %v", tt.input, tt.keyword, ok, tt.ok)
		}
		if got := r.Remaining(); got != tt.rest {
			t.Errorf("ParseKeyword(%q, %q) Remaining = %q, want %q", tt.input, tt.keyword, got, tt.rest)
		}
	}
}
