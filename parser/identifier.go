package parser

import "github.com/dhamidi/mica/reader"

var (
	identifierHeadChars = reader.CharClass{{Lo: 'A', Hi: 'Z'}, {Lo: '_', Hi: '_'}, {Lo: 'a', Hi: 'z'}}
	identifierBodyChars = reader.CharClass{{Lo: '0', Hi: '9'}, {Lo: 'A', Hi: 'Z'}, {Lo: '_', Hi: '_'}, {Lo: 'a', Hi: 'z'}}
)

// Identifier is a name in a Mica source file. It doubles as the variable
// access expression.
type Identifier struct {
	span reader.Span
}

// Span delimits the identifier.
func (id *Identifier) Span() reader.Span { return id.span }

// Name is the identifier's text.
func (id *Identifier) Name() string { return id.span.Content() }

func (*Identifier) expressionNode() {}

// ParseIdentifier parses a head character (letter or underscore) followed by
// any number of body characters (letters, digits, underscores).
func ParseIdentifier(r *reader.Reader, ctx *Context) (*Identifier, error) {
	return guard(r, ctx, func(init reader.Cursor) (*Identifier, error) {
		if _, ok := r.ReadOneOf(identifierHeadChars); !ok {
			return nil, ErrNotFound
		}
		r.ReadManyOf(identifierBodyChars)

		return &Identifier{span: r.SubstringToCurrent(init)}, nil
	})
}

// ParseKeyword parses a full identifier and accepts it only when it matches
// keyword exactly, restoring the reader otherwise. Parsing the whole
// identifier first keeps the match boundary-aware: 'lettuce' never matches
// the keyword 'let'.
func ParseKeyword(r *reader.Reader, ctx *Context, keyword string) bool {
	init := r.Save()
	id, err := ParseIdentifier(r, ctx)
	if err != nil {
		return false
	}
	if id.Name() != keyword {
		r.Restore(init)
		return false
	}
	return true
}
