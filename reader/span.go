package reader

import "strings"

// Span is a half-open range over a Source, normalized so that the start
// cursor never lies past the end cursor. Spans are cheap read-only views;
// many nodes share the same backing Source.
type Span struct {
	source *Source
	start  Cursor
	end    Cursor
}

func newSpan(source *Source, a, b Cursor) Span {
	if a.offset > b.offset {
		a, b = b, a
	}
	return Span{source: source, start: a, end: b}
}

// Source returns the source text the span belongs to.
func (s Span) Source() *Source { return s.source }

// Start is the cursor at the beginning of the span.
func (s Span) Start() Cursor { return s.start }

// End is the cursor just past the end of the span.
func (s Span) End() Cursor { return s.end }

// Content is the exact substring the span covers.
func (s Span) Content() string {
	return s.source.text[s.start.offset:s.end.offset]
}

// ContentBefore is everything in the source before the span.
func (s Span) ContentBefore() string {
	return s.source.text[:s.start.offset]
}

// ContentAfter is everything in the source after the span.
func (s Span) ContentAfter() string {
	return s.source.text[s.end.offset:]
}

// Len is the length of the span in bytes.
func (s Span) Len() int { return s.end.offset - s.start.offset }

// CharLen is the length of the span in characters.
func (s Span) CharLen() int { return s.end.charOffset - s.start.charOffset }

// Lines returns the full source line(s) the span covers, used for diagnostic
// rendering. A span that starts or ends exactly at a newline belongs to the
// line the newline terminates, not to an empty line after it.
func (s Span) Lines() string {
	start := strings.LastIndexByte(s.ContentBefore(), '\n') + 1

	end := len(s.source.text)
	if i := strings.IndexByte(s.ContentAfter(), '\n'); i >= 0 {
		end = s.end.offset + i
	}

	return s.source.text[start:end]
}

// Slice returns the sub-span covering bytes [from, to) of the span's own
// content, with line and column information recomputed.
func (s Span) Slice(from, to int) Span {
	aux := Reader{source: s.source, cursor: s.start}
	aux.consume(from)
	start := aux.cursor
	aux.consume(to - from)
	return newSpan(s.source, start, aux.cursor)
}

func (s Span) String() string {
	return s.start.String() + "-" + s.end.String()
}
