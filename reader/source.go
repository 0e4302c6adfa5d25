package reader

import "github.com/google/uuid"

// Source is one immutable piece of Mica source text. Every Cursor and Span
// produced while reading it shares the same backing string; the session id
// ties them to this Source so cross-session misuse fails fast.
type Source struct {
	path string
	text string
	id   uuid.UUID
}

// NewSource creates a Source for the given text. The path is only used in
// diagnostics and may be empty.
func NewSource(path, text string) *Source {
	return &Source{
		path: path,
		text: text,
		id:   uuid.New(),
	}
}

// Path reports the file path this source was loaded from, or "".
func (s *Source) Path() string { return s.path }

// Text returns the whole source text.
func (s *Source) Text() string { return s.text }

// Len reports the length of the source text in bytes.
func (s *Source) Len() int { return len(s.text) }

// ID is the identity of the reading session this source belongs to.
func (s *Source) ID() uuid.UUID { return s.id }
