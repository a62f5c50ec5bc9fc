//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"log"

	gott "github.com/timburks/tedit/types"
)

// The Editor manages the editing of text in a Buffer and keeps a Terminal
// showing the buffer and the cursor.
type Editor struct {
	Cursor   gott.Point    // cursor position
	Buffer   *Buffer       // buffer being edited
	terminal gott.Terminal // display that mirrors the buffer
	editing  bool          // true while text is being inserted
}

func NewEditor(terminal gott.Terminal) *Editor {
	e := &Editor{terminal: terminal}
	e.Buffer = NewBuffer()
	return e
}

// Initialize loads lines into the buffer, draws them and puts the cursor
// at the top left.
func (e *Editor) Initialize(lines []string) {
	e.Buffer.LoadLines(lines)
	e.Cursor = gott.Point{}
	e.Render()
}

// Render repaints the whole display from the buffer and restores the
// visible cursor to the logical cursor.
func (e *Editor) Render() {
	e.terminal.Clear()
	e.Buffer.Render(e.terminal)
	e.updatePosition()
}

func (e *Editor) updatePosition() {
	if err := e.terminal.MoveCursorTo(e.Cursor.Col, e.Cursor.Row); err != nil {
		log.Printf("Error moving cursor: %v", err)
	}
	e.terminal.Flush()
}

// Moves by zero or a negative amount leave the cursor where it is.

func (e *Editor) MoveUp(amount int) {
	if amount > 0 {
		e.Cursor.Row = clipToRange(e.Cursor.Row-amount, 0, e.Buffer.GetRowCount()-1)
		e.keepCursorInRow()
	}
	e.updatePosition()
}

func (e *Editor) MoveDown(amount int) {
	if amount > 0 {
		e.Cursor.Row = clipToRange(e.Cursor.Row+amount, 0, e.Buffer.GetRowCount()-1)
		e.keepCursorInRow()
	}
	e.updatePosition()
}

func (e *Editor) MoveLeft(amount int) {
	if amount > 0 {
		e.Cursor.Col = clipToRange(e.Cursor.Col-amount, 0, e.lastColumn())
	}
	e.updatePosition()
}

// MoveRight stops on the last character of the row, not after it.
func (e *Editor) MoveRight(amount int) {
	if amount > 0 {
		e.Cursor.Col = clipToRange(e.Cursor.Col+amount, 0, e.lastColumn())
	}
	e.updatePosition()
}

// don't go past the end of the current line
func (e *Editor) keepCursorInRow() {
	e.Cursor.Col = clipToRange(e.Cursor.Col, 0, e.lastColumn())
}

func (e *Editor) lastColumn() int {
	return e.Buffer.GetRowLength(e.Cursor.Row) - 1
}

// WriteChar inserts c at the cursor. A newline splits the row at the cursor.
func (e *Editor) WriteChar(c rune) {
	e.keepCursorInBuffer()
	if c == '\n' {
		e.Buffer.SplitRow(e.Cursor.Row, e.Cursor.Col)
		e.Cursor.Row++
		e.Cursor.Col = 0
	} else {
		e.Buffer.InsertCharacter(e.Cursor.Row, e.Cursor.Col, c)
		e.Cursor.Col++
	}
	e.Render()
}

func (e *Editor) WriteText(text string) {
	for _, c := range text {
		e.WriteChar(c)
	}
}

// DeleteChar removes the character before the cursor. At the start of a row
// the row is joined onto the one above it.
func (e *Editor) DeleteChar() {
	e.keepCursorInBuffer()
	if e.Cursor.Col == 0 {
		if e.Cursor.Row == 0 {
			return
		}
		e.Cursor.Col = e.Buffer.JoinRow(e.Cursor.Row)
		e.Cursor.Row--
	} else {
		e.Buffer.DeleteCharacter(e.Cursor.Row, e.Cursor.Col-1)
		e.Cursor.Col--
	}
	e.Render()
}

// SetPosition moves the cursor without checking it against the buffer.
func (e *Editor) SetPosition(x, y int) {
	e.Cursor = gott.Point{Col: x, Row: y}
	e.updatePosition()
}

func (e *Editor) SetEditing(editing bool) {
	if editing {
		e.terminal.SetCursorStyle(gott.CursorUnderline)
	} else {
		e.terminal.SetCursorStyle(gott.CursorBlock)
	}
	e.editing = editing
	e.terminal.Flush()
}

func (e *Editor) IsEditing() bool {
	return e.editing
}

// A cursor placed outside the buffer by SetPosition is pulled back in before
// the buffer is changed.
func (e *Editor) keepCursorInBuffer() {
	e.Cursor.Row = clipToRange(e.Cursor.Row, 0, e.Buffer.GetRowCount()-1)
	e.Cursor.Col = clipToRange(e.Cursor.Col, 0, e.Buffer.GetRowLength(e.Cursor.Row))
}

func (e *Editor) GetCursor() gott.Point {
	return e.Cursor
}

func (e *Editor) Lines() []string {
	return e.Buffer.Lines()
}

func (e *Editor) Bytes() []byte {
	return e.Buffer.Bytes()
}

func clipToRange(value, min, max int) int {
	if value > max {
		value = max
	}
	if value < min {
		value = min
	}
	return value
}
