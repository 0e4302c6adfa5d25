// Package diag holds the diagnostics the Mica parser accumulates and the
// source-snippet rendering that turns a located failure into readable text.
package diag

import "github.com/dhamidi/mica/reader"

// Code is the machine-stable identifier of a diagnostic class, suitable for
// tooling to key off of.
type Code string

// Hard errors.
const (
	MultilineCommentWithoutEndToken            Code = "MultilineCommentWithoutEndToken"
	NumberWithSeparatorAfterPrefix             Code = "NumberWithSeparatorAfterPrefix"
	NumberWithoutDigitsAfterPrefix             Code = "NumberWithoutDigitsAfterPrefix"
	MissingVariableNameInVariableDeclaration   Code = "MissingVariableNameInVariableDeclaration"
	MissingAssignOperatorInVariableDeclaration Code = "MissingAssignOperatorInVariableDeclaration"
	MissingExpressionInVariableDeclaration     Code = "MissingExpressionInVariableDeclaration"
	MissingExpressionInReturnStatement         Code = "MissingExpressionInReturnStatement"
	TwoStatementsInSameLineInFile              Code = "TwoStatementsInSameLineInFile"
	ExpectedEOFInFile                          Code = "ExpectedEOFInFile"
	NotAMicaFile                               Code = "NotAMicaFile"
	RecursionLimitExceeded                     Code = "RecursionLimitExceeded"
)

// Warnings.
const (
	NumberWithLeadingZeroes  Code = "NumberWithLeadingZeroes"
	NumberWithTrailingZeroes Code = "NumberWithTrailingZeroes"
)

// Severity distinguishes the two message kinds: warnings never affect
// control flow, errors end the parse.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Snippet is the illustrated source fragment attached to a diagnostic: the
// full line(s) the offending span covers plus the caret position. Lines and
// columns are 1-based; columns count characters.
type Snippet struct {
	Path      string
	Line      int
	Column    int
	EndLine   int
	EndColumn int
	// Lines holds the full source line(s) covering the highlighted range;
	// LinesStart is the line number of the first of them.
	Lines      string
	LinesStart int
	Label      string
}

// NewSnippet illustrates span within the source lines that cover it. The
// label, if any, is printed next to the caret marker.
func NewSnippet(span reader.Span, label string) *Snippet {
	return &Snippet{
		Path:       span.Source().Path(),
		Line:       span.Start().Line(),
		Column:     span.Start().Column(),
		EndLine:    span.End().Line(),
		EndColumn:  span.End().Column(),
		Lines:      span.Lines(),
		LinesStart: span.Start().Line(),
		Label:      label,
	}
}

// Diagnostic is one recorded warning or error.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Title    string
	Snippet  *Snippet
}
