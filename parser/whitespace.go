package parser

import (
	"errors"

	"github.com/dhamidi/mica/reader"
)

var (
	inlineWhitespaceChars = reader.CharClass{{Lo: '\t', Hi: '\t'}, {Lo: ' ', Hi: ' '}}
	lineBreakChars        = reader.CharClass{{Lo: '\n', Hi: '\n'}, {Lo: '\r', Hi: '\r'}}
)

// Whitespace is a composite of raw whitespace runs and comments between
// tokens. It is multiline when it contains a line-break character or a
// comment that itself spans multiple lines.
type Whitespace struct {
	span      reader.Span
	comments  []*Comment
	multiline bool
}

// Span delimits the whole composite.
func (w *Whitespace) Span() reader.Span { return w.span }

// Comments lists the comments contained in the composite, in source order.
func (w *Whitespace) Comments() []*Comment { return w.comments }

// Multiline reports whether the composite breaks the current line.
func (w *Whitespace) Multiline() bool { return w.multiline }

// ParseInlineWhitespace parses a run of spaces and tabs only.
func ParseInlineWhitespace(r *reader.Reader, ctx *Context) (*Whitespace, error) {
	return guard(r, ctx, func(init reader.Cursor) (*Whitespace, error) {
		if _, ok := r.ReadManyOf(inlineWhitespaceChars); !ok {
			return nil, ErrNotFound
		}
		return &Whitespace{span: r.SubstringToCurrent(init)}, nil
	})
}

// skipInlineWhitespace consumes optional spaces and tabs. Only hard errors
// are reported; absent whitespace is fine.
func skipInlineWhitespace(r *reader.Reader, ctx *Context) error {
	_, err := ParseInlineWhitespace(r, ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// skipMultilineWhitespace consumes optional whitespace, line breaks and
// comments. Only hard errors are reported; absent whitespace is fine.
func skipMultilineWhitespace(r *reader.Reader, ctx *Context) error {
	_, err := ParseMultilineWhitespace(r, ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// ParseMultilineWhitespace parses the maximal run of whitespace, line breaks
// and comments. An unterminated multiline comment inside the run is a hard
// error.
func ParseMultilineWhitespace(r *reader.Reader, ctx *Context) (*Whitespace, error) {
	return guard(r, ctx, func(init reader.Cursor) (*Whitespace, error) {
		ws := &Whitespace{}
		any := false
		for {
			if _, ok := r.ReadManyOf(inlineWhitespaceChars); ok {
				any = true
				continue
			}
			if _, ok := r.ReadManyOf(lineBreakChars); ok {
				any = true
				ws.multiline = true
				continue
			}

			comment, err := ParseComment(r, ctx)
			if errors.Is(err, ErrNotFound) {
				break
			}
			if err != nil {
				return nil, err
			}
			any = true
			ws.comments = append(ws.comments, comment)
			if comment.Multiline() {
				ws.multiline = true
			}
		}

		if !any {
			return nil, ErrNotFound
		}
		ws.span = r.SubstringToCurrent(init)
		return ws, nil
	})
}
