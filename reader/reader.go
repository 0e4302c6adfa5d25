// Package reader implements the position model and the cursor-advancing
// scanner the Mica parser is built on. A Reader owns the single current
// Cursor over one immutable Source; every consuming method either advances
// the cursor strictly forward or leaves it exactly where it was.
package reader

import (
	"strings"
	"unicode/utf8"
)

// Reader scans a Source. It is exclusively owned by the parse that created
// it and must not be shared across goroutines; parse independent files with
// independent Readers instead.
type Reader struct {
	source *Source
	cursor Cursor
}

// NewReader creates a Reader positioned at the start of source.
func NewReader(source *Source) *Reader {
	return &Reader{
		source: source,
		cursor: Cursor{line: 1, column: 1, session: source.id},
	}
}

// FromString creates a Reader over a pathless Source, mainly for tests.
func FromString(text string) *Reader {
	return NewReader(NewSource("", text))
}

// Source returns the source being read.
func (r *Reader) Source() *Source { return r.source }

// Offset is the current position in bytes.
func (r *Reader) Offset() int { return r.cursor.offset }

// CharOffset is the current position in characters.
func (r *Reader) CharOffset() int { return r.cursor.charOffset }

// Line is the current 1-based line number.
func (r *Reader) Line() int { return r.cursor.line }

// Column is the current 1-based column number, in characters.
func (r *Reader) Column() int { return r.cursor.column }

// Remaining is the not yet consumed tail of the source.
func (r *Reader) Remaining() string {
	return r.source.text[r.cursor.offset:]
}

// RemainingLen is the length of the unconsumed tail in bytes.
func (r *Reader) RemainingLen() int {
	return len(r.source.text) - r.cursor.offset
}

// AtEnd reports whether the whole source has been consumed.
func (r *Reader) AtEnd() bool {
	return r.cursor.offset >= len(r.source.text)
}

// Read consumes text if the remaining input starts with it. It reports
// whether it consumed anything; on a miss the cursor does not move.
func (r *Reader) Read(text string) bool {
	if !r.ContinuesWith(text) {
		return false
	}
	r.consume(len(text))
	return true
}

// ReadOneOf consumes a single character belonging to class.
func (r *Reader) ReadOneOf(class CharClass) (rune, bool) {
	ch, ok := r.ContinuesWithOneOf(class)
	if !ok {
		return 0, false
	}
	r.consume(utf8.RuneLen(ch))
	return ch, true
}

// ReadManyOf consumes the maximal non-empty run of characters belonging to
// class and returns the matched text.
func (r *Reader) ReadManyOf(class CharClass) (string, bool) {
	text, ok := r.ContinuesWithOneOrMoreOf(class)
	if !ok {
		return "", false
	}
	r.consume(len(text))
	return text, true
}

// ContinuesWith reports whether the remaining input starts with text,
// without consuming anything.
func (r *Reader) ContinuesWith(text string) bool {
	return strings.HasPrefix(r.Remaining(), text)
}

// ContinuesWithOneOf reports the next character if it belongs to class,
// without consuming anything.
func (r *Reader) ContinuesWithOneOf(class CharClass) (rune, bool) {
	rest := r.Remaining()
	if rest == "" {
		return 0, false
	}
	ch, _ := utf8.DecodeRuneInString(rest)
	if !class.Contains(ch) {
		return 0, false
	}
	return ch, true
}

// ContinuesWithOneOrMoreOf reports the maximal non-empty run of characters
// belonging to class, without consuming anything.
func (r *Reader) ContinuesWithOneOrMoreOf(class CharClass) (string, bool) {
	rest := r.Remaining()
	end := 0
	for _, ch := range rest {
		if !class.Contains(ch) {
			break
		}
		end += utf8.RuneLen(ch)
	}
	if end == 0 {
		return "", false
	}
	return rest[:end], true
}

// ReadUntil scans forward to the first occurrence of delim, consuming up to
// it, or through it when inclusive is true. When delim does not appear
// before the end of input, it reports false and the cursor does not move.
func (r *Reader) ReadUntil(delim string, inclusive bool) bool {
	idx := strings.Index(r.Remaining(), delim)
	if idx < 0 {
		return false
	}
	if inclusive {
		idx += len(delim)
	}
	r.consume(idx)
	return true
}

// ReadToEnd consumes the rest of the input and returns it.
func (r *Reader) ReadToEnd() string {
	rest := r.Remaining()
	r.consume(len(rest))
	return rest
}

// Save snapshots the current position. The returned cursor is only valid
// for this reading session.
func (r *Reader) Save() Cursor {
	return r.cursor
}

// Restore rewinds (or forwards) the reader to a cursor previously produced
// by Save. Handing it a cursor from another session is a programming error
// and panics.
func (r *Reader) Restore(c Cursor) {
	r.checkSession(c)
	r.cursor = c
}

// Substring builds the Span delimited by the two cursors, in either order.
func (r *Reader) Substring(from, to Cursor) Span {
	r.checkSession(from)
	r.checkSession(to)
	return newSpan(r.source, from, to)
}

// SubstringToCurrent builds the Span delimited by from and the current
// position, in either order.
func (r *Reader) SubstringToCurrent(from Cursor) Span {
	r.checkSession(from)
	return newSpan(r.source, from, r.cursor)
}

// RemainingSpan covers everything from the current position to the end of
// the input.
func (r *Reader) RemainingSpan() Span {
	aux := Reader{source: r.source, cursor: r.cursor}
	aux.consume(aux.RemainingLen())
	return newSpan(r.source, r.cursor, aux.cursor)
}

func (r *Reader) checkSession(c Cursor) {
	if c.session != r.source.id {
		panic("reader: cursor does not belong to this reading session")
	}
}

// consume advances the cursor by n bytes, keeping the character offset,
// line and column in sync. The common no-newline case is a plain character
// count instead of a rescan from the previous newline.
func (r *Reader) consume(n int) {
	if n == 0 {
		return
	}
	if n > r.RemainingLen() {
		panic("reader: consume past end of input")
	}

	chunk := r.source.text[r.cursor.offset : r.cursor.offset+n]
	chars := utf8.RuneCountInString(chunk)
	newlines := strings.Count(chunk, "\n")

	if newlines == 0 {
		r.cursor.column += chars
	} else {
		last := strings.LastIndexByte(chunk, '\n')
		r.cursor.column = utf8.RuneCountInString(chunk[last+1:]) + 1
	}

	r.cursor.offset += n
	r.cursor.charOffset += chars
	r.cursor.line += newlines
}
