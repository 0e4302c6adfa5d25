package parser

import "github.com/dhamidi/mica/reader"

// Node is implemented by every syntax node the parser produces. Nodes are
// immutable once constructed and share the Source their spans point into.
type Node interface {
	// Span delimits the exact textual extent of the node.
	Span() reader.Span
}

// Expression is the closed union of expression variants: a literal value or
// a variable access (Identifier).
type Expression interface {
	Node
	expressionNode()
}

// Literal is the closed union of literal values. Every Literal is also an
// Expression.
type Literal interface {
	Expression
	literalNode()
}

// Statement is the closed union of statement variants: a variable
// declaration or a return statement.
type Statement interface {
	Node
	statementNode()
}
