package parser

import (
	"errors"

	"github.com/dhamidi/mica/reader"
)

// guard wraps a grammar-rule body: it saves the cursor on entry and, if and
// only if the body signals ErrNotFound, restores it before propagating. Any
// other outcome passes through with the reader exactly as the body left it.
//
// Every composable grammar rule runs inside guard, so alternation is safe
// regardless of how much lookahead a rule performed internally.
func guard[T any](r *reader.Reader, ctx *Context, body func(init reader.Cursor) (T, error)) (T, error) {
	var zero T

	if err := ctx.enter(r); err != nil {
		return zero, err
	}
	defer ctx.leave()

	init := r.Save()
	node, err := body(init)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			r.Restore(init)
		}
		return zero, err
	}
	return node, nil
}
