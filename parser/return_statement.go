package parser

import (
	"errors"

	"github.com/dhamidi/mica/diag"
	"github.com/dhamidi/mica/reader"
)

const returnKeyword = "return"

// ReturnStatement is a 'return EXPRESSION' statement.
type ReturnStatement struct {
	span  reader.Span
	value Expression
}

// Span delimits the whole statement.
func (s *ReturnStatement) Span() reader.Span { return s.span }

// Value is the returned expression.
func (s *ReturnStatement) Value() Expression { return s.value }

func (*ReturnStatement) statementNode() {}

// ParseReturnStatement parses a 'return' statement. The expression has to
// follow on the same line; once the keyword has been read, a missing
// expression is a hard error.
func ParseReturnStatement(r *reader.Reader, ctx *Context) (*ReturnStatement, error) {
	return guard(r, ctx, func(init reader.Cursor) (*ReturnStatement, error) {
		if !ParseKeyword(r, ctx, returnKeyword) {
			return nil, ErrNotFound
		}

		if err := skipInlineWhitespace(r, ctx); err != nil {
			return nil, err
		}
		value, err := ParseExpression(r, ctx)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				return nil, err
			}
			ctx.addError(
				diag.MissingExpressionInReturnStatement,
				"An expression was expected after the 'return' keyword",
				diag.NewSnippet(hereSpan(r), "insert an expression here"),
			)
			return nil, ErrSyntax
		}

		return &ReturnStatement{
			span:  r.SubstringToCurrent(init),
			value: value,
		}, nil
	})
}
