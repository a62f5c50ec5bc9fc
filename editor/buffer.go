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
	"strings"

	gott "github.com/timburks/tedit/types"
)

// A Buffer holds the lines being edited. It always has at least one row.
type Buffer struct {
	rows []*Row
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.LoadLines(nil)
	return b
}

// LoadLines replaces the contents of the buffer. Lines containing newlines
// are split so that no row holds a line terminator.
func (b *Buffer) LoadLines(lines []string) {
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		for _, part := range strings.Split(line, "\n") {
			b.rows = append(b.rows, NewRow(part))
		}
	}
	if len(b.rows) == 0 {
		b.rows = append(b.rows, NewRow(""))
	}
}

func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.DisplayText()
	}
	return lines
}

func (b *Buffer) Bytes() []byte {
	return []byte(strings.Join(b.Lines(), "\n"))
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) InsertCharacter(row, col int, c rune) {
	if row >= 0 && row < len(b.rows) {
		b.rows[row].InsertChar(col, c)
	}
}

func (b *Buffer) DeleteCharacter(row, col int) rune {
	if row >= 0 && row < len(b.rows) {
		return b.rows[row].DeleteChar(col)
	}
	return 0
}

// SplitRow breaks a row at col; the text after col becomes a new row below it.
func (b *Buffer) SplitRow(row, col int) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	newRow := b.rows[row].Split(col)
	b.rows = append(b.rows, nil)
	copy(b.rows[row+2:], b.rows[row+1:])
	b.rows[row+1] = newRow
}

// JoinRow appends a row to the one above it and removes it. It returns the
// length the row above had before the join, or -1 if there is no row above.
func (b *Buffer) JoinRow(row int) int {
	if row <= 0 || row >= len(b.rows) {
		return -1
	}
	previous := b.rows[row-1]
	length := previous.Length()
	previous.Join(b.rows[row])
	b.rows = append(b.rows[0:row], b.rows[row+1:]...)
	return length
}

// draw every row that fits into the display, starting at its top left corner
func (b *Buffer) Render(display gott.Terminal) {
	size := display.Size()
	for i, row := range b.rows {
		if size.Rows > 0 && i >= size.Rows {
			break
		}
		if err := display.MoveCursorTo(0, i); err != nil {
			continue
		}
		display.Write(row.DisplayText())
	}
}
