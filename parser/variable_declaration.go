package parser

import (
	"errors"

	"github.com/dhamidi/mica/diag"
	"github.com/dhamidi/mica/reader"
)

const (
	letKeyword  = "let"
	assignToken = "="
)

// VariableDeclaration is a 'let NAME = EXPRESSION' statement.
type VariableDeclaration struct {
	span  reader.Span
	name  *Identifier
	value Expression
}

// Span delimits the whole declaration.
func (d *VariableDeclaration) Span() reader.Span { return d.span }

// Name is the declared variable.
func (d *VariableDeclaration) Name() *Identifier { return d.name }

// Value is the expression the variable is bound to.
func (d *VariableDeclaration) Value() Expression { return d.value }

func (*VariableDeclaration) statementNode() {}

// ParseVariableDeclaration parses a 'let' statement. The keyword match is
// boundary-aware, so 'lettuce' is just an identifier; once 'let' has been
// read the rule is committed and every missing piece is a hard error. Line
// breaks and comments are allowed between '=' and the expression, the rest
// of the declaration stays on one line.
func ParseVariableDeclaration(r *reader.Reader, ctx *Context) (*VariableDeclaration, error) {
	return guard(r, ctx, func(init reader.Cursor) (*VariableDeclaration, error) {
		if !ParseKeyword(r, ctx, letKeyword) {
			return nil, ErrNotFound
		}

		if err := skipInlineWhitespace(r, ctx); err != nil {
			return nil, err
		}
		name, err := ParseIdentifier(r, ctx)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				return nil, err
			}
			ctx.addError(
				diag.MissingVariableNameInVariableDeclaration,
				"A variable name was expected after the 'let' keyword",
				diag.NewSnippet(hereSpan(r), "insert a variable name here"),
			)
			return nil, ErrSyntax
		}

		if err := skipInlineWhitespace(r, ctx); err != nil {
			return nil, err
		}
		if !r.Read(assignToken) {
			ctx.addError(
				diag.MissingAssignOperatorInVariableDeclaration,
				"The operator '=' was expected after the variable name",
				diag.NewSnippet(hereSpan(r), "insert '=' here"),
			)
			return nil, ErrSyntax
		}

		if err := skipMultilineWhitespace(r, ctx); err != nil {
			return nil, err
		}
		value, err := ParseExpression(r, ctx)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				return nil, err
			}
			ctx.addError(
				diag.MissingExpressionInVariableDeclaration,
				"An expression was expected after the '=' operator",
				diag.NewSnippet(hereSpan(r), "insert an expression here"),
			)
			return nil, ErrSyntax
		}

		return &VariableDeclaration{
			span:  r.SubstringToCurrent(init),
			name:  name,
			value: value,
		}, nil
	})
}

// hereSpan is the empty span at the current position, for diagnostics that
// point at a place where something is missing.
func hereSpan(r *reader.Reader) reader.Span {
	at := r.Save()
	return r.Substring(at, at)
}
