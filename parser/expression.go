package parser

import (
	"errors"

	"github.com/dhamidi/mica/reader"
)

// ParseLiteral parses a literal value. Numbers are the only literal form for
// now; strings and booleans will slot in as further alternatives.
func ParseLiteral(r *reader.Reader, ctx *Context) (Literal, error) {
	number, err := ParseNumber(r, ctx)
	if err != nil {
		return nil, err
	}
	return number, nil
}

// ParseExpression parses an expression: a literal or a variable access.
func ParseExpression(r *reader.Reader, ctx *Context) (Expression, error) {
	lit, err := ParseLiteral(r, ctx)
	if err == nil {
		return lit, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	id, err := ParseIdentifier(r, ctx)
	if err != nil {
		return nil, err
	}
	return id, nil
}
