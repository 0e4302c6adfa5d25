package reader

import (
	"fmt"

	"github.com/google/uuid"
)

// Cursor is an immutable position snapshot inside one reading session.
// Byte and character offsets differ for multi-byte input; line and column
// are 1-based and the column counts characters, not bytes.
//
// Cursors are only produced by a Reader; grammar code obtains them through
// Reader.Save and hands them back to Restore or Substring.
type Cursor struct {
	offset     int
	charOffset int
	line       int
	column     int
	session    uuid.UUID
}

// Offset is the position of the cursor in bytes.
func (c Cursor) Offset() int { return c.offset }

// CharOffset is the position of the cursor in characters.
func (c Cursor) CharOffset() int { return c.charOffset }

// Line is the 1-based line number of the cursor.
func (c Cursor) Line() int { return c.line }

// Column is the 1-based column number of the cursor, in characters.
func (c Cursor) Column() int { return c.column }

// Session is the identity of the reading session the cursor belongs to.
func (c Cursor) Session() uuid.UUID { return c.session }

func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.line, c.column)
}
