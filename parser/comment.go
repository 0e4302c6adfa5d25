package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/mica/diag"
	"github.com/dhamidi/mica/reader"
)

const (
	singleLineCommentToken      = "# "
	multilineCommentToken       = "#"
	multilineCommentRepeatToken = "+"
)

// Comment is a single-line comment '# …' running to the end of the line, or
// a multiline comment '#+…+#' whose closing marker run must match the
// opening one in length.
type Comment struct {
	span           reader.Span
	message        reader.Span
	multilineType  bool
	repeatedTokens int
}

// Span delimits the whole comment including its tokens.
func (c *Comment) Span() reader.Span { return c.span }

// Message delimits the comment text without the surrounding tokens.
func (c *Comment) Message() reader.Span { return c.message }

// MultilineType reports whether the comment uses the '#+…+#' form, as
// opposed to '# …'.
func (c *Comment) MultilineType() bool { return c.multilineType }

// RepeatedTokens is the number of repeat markers in the opening run.
func (c *Comment) RepeatedTokens() int { return c.repeatedTokens }

// ImmediatelyClosed reports whether a multiline comment closes right after
// opening, e.g. '#+#'.
func (c *Comment) ImmediatelyClosed() bool {
	return c.multilineType && c.message.Len() == 0
}

// Multiline reports whether the comment spans more than one source line.
func (c *Comment) Multiline() bool {
	return c.message.Start().Line() != c.message.End().Line()
}

// ParseComment parses either comment form.
func ParseComment(r *reader.Reader, ctx *Context) (*Comment, error) {
	comment, err := ParseSingleLineComment(r, ctx)
	if err == nil {
		return comment, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return ParseMultilineComment(r, ctx)
}

// ParseSingleLineComment parses a '# …' comment. The terminating line break
// is not part of the comment.
func ParseSingleLineComment(r *reader.Reader, ctx *Context) (*Comment, error) {
	return guard(r, ctx, func(init reader.Cursor) (*Comment, error) {
		if !r.Read(singleLineCommentToken) {
			return nil, ErrNotFound
		}

		messageStart := r.Save()
		if !r.ReadUntil("\n", false) {
			r.ReadToEnd()
		}

		return &Comment{
			span:    r.SubstringToCurrent(init),
			message: r.SubstringToCurrent(messageStart),
		}, nil
	})
}

// ParseMultilineComment parses a '#+…+#' comment. The opening token is
// unambiguous, so a missing close marker is a hard error, never NotFound.
func ParseMultilineComment(r *reader.Reader, ctx *Context) (*Comment, error) {
	return guard(r, ctx, func(init reader.Cursor) (*Comment, error) {
		if !r.Read(multilineCommentToken) {
			return nil, ErrNotFound
		}

		repeats := 0
		for r.Read(multilineCommentRepeatToken) {
			repeats++
		}
		if repeats == 0 {
			return nil, ErrNotFound
		}
		closeToken := strings.Repeat(multilineCommentRepeatToken, repeats) + multilineCommentToken

		messageStart := r.Save()

		// Opened and closed immediately: #+#, #++#, ...
		if r.Read(multilineCommentToken) {
			return &Comment{
				span:           r.SubstringToCurrent(init),
				message:        r.Substring(messageStart, messageStart),
				multilineType:  true,
				repeatedTokens: repeats,
			}, nil
		}

		if !r.ReadUntil(closeToken, false) {
			ctx.addError(
				diag.MultilineCommentWithoutEndToken,
				fmt.Sprintf("The end token %q was expected here to close the multiline comment", closeToken),
				diag.NewSnippet(
					r.SubstringToCurrent(init),
					fmt.Sprintf("insert the end token %q before the end of the input", closeToken),
				),
			)
			return nil, ErrSyntax
		}

		messageEnd := r.Save()
		if !r.Read(closeToken) {
			panic("parser: close token vanished after ReadUntil found it")
		}

		return &Comment{
			span:           r.SubstringToCurrent(init),
			message:        r.Substring(messageStart, messageEnd),
			multilineType:  true,
			repeatedTokens: repeats,
		}, nil
	})
}
