package parser

import "errors"

// The two signals a grammar rule can fail with.
//
// ErrNotFound means the rule does not apply at the current position: nothing
// was recorded and the reader has been restored, so the caller is free to
// try a sibling alternative.
//
// ErrSyntax means the rule recognized enough of its expected shape to commit
// to it but the input was malformed: a diagnostic has already been recorded,
// the reader stays at the point of failure, and the failure propagates past
// every enclosing alternation.
var (
	ErrNotFound = errors.New("parser: not found")
	ErrSyntax   = errors.New("parser: syntax error")
)
