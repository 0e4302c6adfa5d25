package parser

import (
	"errors"

	"github.com/dhamidi/mica/reader"
)

// ParseStatement parses a statement: a variable declaration or a return
// statement. Alternatives are tried in order; a hard error from a committed
// alternative ends the search.
func ParseStatement(r *reader.Reader, ctx *Context) (Statement, error) {
	decl, err := ParseVariableDeclaration(r, ctx)
	if err == nil {
		return decl, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	ret, err := ParseReturnStatement(r, ctx)
	if err != nil {
		return nil, err
	}
	return ret, nil
}
