package parser

import (
	"errors"

	"github.com/dhamidi/mica/diag"
	"github.com/dhamidi/mica/reader"
)

// File is the root node of a parsed source file: a sequence of statements,
// each on its own line.
type File struct {
	span       reader.Span
	statements []Statement
}

// Span delimits the whole file.
func (f *File) Span() reader.Span { return f.span }

// Statements lists the file's statements in source order.
func (f *File) Statements() []Statement { return f.statements }

// Path is the path of the parsed source file.
func (f *File) Path() string { return f.span.Source().Path() }

// ParseFile parses a whole source file. Statements are separated by
// whitespace containing at least one line break; whitespace-only input is a
// valid file without statements.
func ParseFile(r *reader.Reader, ctx *Context) (*File, error) {
	return guard(r, ctx, func(init reader.Cursor) (*File, error) {
		file := &File{}

		for {
			separated := false
			ws, err := ParseMultilineWhitespace(r, ctx)
			if err != nil && !errors.Is(err, ErrNotFound) {
				return nil, err
			}
			if err == nil {
				separated = ws.Multiline()
			}

			stmt, err := ParseStatement(r, ctx)
			if errors.Is(err, ErrNotFound) {
				break
			}
			if err != nil {
				return nil, err
			}

			if len(file.statements) > 0 && !separated {
				ctx.addError(
					diag.TwoStatementsInSameLineInFile,
					"Two statements are not allowed on the same line",
					diag.NewSnippet(stmt.Span(), "move this statement to its own line"),
				)
				return nil, ErrSyntax
			}
			file.statements = append(file.statements, stmt)
		}

		if !r.AtEnd() {
			if len(file.statements) == 0 {
				ctx.addError(
					diag.NotAMicaFile,
					"This input is not a Mica source file",
					diag.NewSnippet(r.RemainingSpan(), "expected a statement here"),
				)
				return nil, ErrSyntax
			}
			ctx.addError(
				diag.ExpectedEOFInFile,
				"The End Of File (EOF) was expected here",
				diag.NewSnippet(r.RemainingSpan(), "remove this code"),
			)
			return nil, ErrSyntax
		}

		file.span = r.SubstringToCurrent(init)
		return file, nil
	})
}
