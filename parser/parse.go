// Package parser implements the recursive descent parser for Mica source
// files. Every grammar rule is a ParseX function over a reader.Reader and a
// parse Context; a rule either produces a node, reports ErrNotFound with the
// reader untouched, or reports ErrSyntax after recording a diagnostic on the
// Context. Parse is the all-in-one entry point.
package parser

import (
	"github.com/dhamidi/mica/diag"
	"github.com/dhamidi/mica/reader"
)

// Parse parses text as one Mica source file. On a hard error the file is
// nil; the returned diagnostics carry every recorded error and warning in
// discovery order, including warnings from an otherwise successful parse.
func Parse(path, text string, config Config) (*File, []diag.Diagnostic) {
	r := reader.NewReader(reader.NewSource(path, text))
	ctx := NewContext(config)
	file, err := ParseFile(r, ctx)
	if err != nil {
		return nil, ctx.Diagnostics()
	}
	return file, ctx.Diagnostics()
}
