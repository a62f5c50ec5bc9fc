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
package screen

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	gott "github.com/timburks/tedit/types"
)

// Memory is a Terminal that draws into a grid of cells. It stands in for
// the real screen in tests and in batch runs. Events queued with Push are
// returned by PollEvent in order.
type Memory struct {
	size   gott.Size
	cells  [][]rune
	cursor gott.Point
	shape  gott.CursorShape
	events []*gott.Event

	Clears  int // number of times the grid was cleared
	Flushes int
}

func NewMemory(size gott.Size) *Memory {
	m := &Memory{size: size}
	m.Clear()
	m.Clears = 0
	return m
}

func (m *Memory) Clear() {
	m.cells = make([][]rune, m.size.Rows)
	for i := range m.cells {
		m.cells[i] = make([]rune, 0, m.size.Cols)
	}
	m.cursor = gott.Point{}
	m.Clears++
}

func (m *Memory) Size() gott.Size {
	return m.size
}

func (m *Memory) MoveCursorTo(x, y int) error {
	if x < 0 || y < 0 || x >= m.size.Cols || y >= m.size.Rows {
		return fmt.Errorf("position (%d,%d) is outside the %dx%d screen", x, y, m.size.Cols, m.size.Rows)
	}
	m.cursor = gott.Point{Row: y, Col: x}
	return nil
}

func (m *Memory) SetCursorStyle(shape gott.CursorShape) {
	m.shape = shape
}

func (m *Memory) Write(text string) {
	if m.cursor.Row >= m.size.Rows {
		return
	}
	text = runewidth.Truncate(text, m.size.Cols-m.cursor.Col, "")
	row := m.cells[m.cursor.Row]
	for len(row) < m.cursor.Col {
		row = append(row, ' ')
	}
	for _, c := range text {
		if m.cursor.Col < len(row) {
			row[m.cursor.Col] = c
		} else {
			row = append(row, c)
		}
		m.cursor.Col++
	}
	m.cells[m.cursor.Row] = row
}

func (m *Memory) Flush() {
	m.Flushes++
}

func (m *Memory) Cursor() gott.Point {
	return m.cursor
}

func (m *Memory) CursorStyle() gott.CursorShape {
	return m.shape
}

// Lines returns the visible text of each screen row, without trailing blanks.
func (m *Memory) Lines() []string {
	lines := make([]string, len(m.cells))
	for i, row := range m.cells {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return lines
}

// String returns the screen rows that hold text, one per line.
func (m *Memory) String() string {
	lines := m.Lines()
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[0 : len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func (m *Memory) Push(events ...*gott.Event) {
	m.events = append(m.events, events...)
}

func (m *Memory) PollEvent(timeout time.Duration) (*gott.Event, bool) {
	if len(m.events) == 0 {
		return nil, false
	}
	event := m.events[0]
	m.events = m.events[1:]
	return event, true
}
