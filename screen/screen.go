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
	"io"
	"os"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	gott "github.com/timburks/tedit/types"
)

// DECSCUSR sequences; termbox has no call for the cursor shape.
const (
	steadyBlock     = "\x1b[2 q"
	steadyUnderline = "\x1b[4 q"
)

// The Screen is a Terminal and EventSource backed by termbox.
type Screen struct {
	cursor gott.Point // where the next Write starts
	events chan termbox.Event
	out    io.Writer // receives escape sequences termbox doesn't send
}

// NewScreen puts the terminal into raw mode and switches to the alternate
// screen. Close restores it.
func NewScreen() (*Screen, error) {
	err := termbox.Init()
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.OutputNormal)
	s := &Screen{
		events: make(chan termbox.Event),
		out:    os.Stdout,
	}
	go s.pump()
	return s, nil
}

// termbox.PollEvent blocks, so events are read on their own goroutine and
// handed over one at a time.
func (s *Screen) pump() {
	for {
		event := termbox.PollEvent()
		if event.Type == termbox.EventError {
			close(s.events)
			return
		}
		s.events <- event
	}
}

func (s *Screen) Close() {
	io.WriteString(s.out, steadyBlock)
	termbox.Close()
}

func (s *Screen) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	s.cursor = gott.Point{}
}

func (s *Screen) Size() gott.Size {
	cols, rows := termbox.Size()
	return gott.Size{Rows: rows, Cols: cols}
}

func (s *Screen) MoveCursorTo(x, y int) error {
	size := s.Size()
	if x < 0 || y < 0 || x >= size.Cols || y >= size.Rows {
		return fmt.Errorf("position (%d,%d) is outside the %dx%d screen", x, y, size.Cols, size.Rows)
	}
	s.cursor = gott.Point{Row: y, Col: x}
	termbox.SetCursor(x, y)
	return nil
}

func (s *Screen) SetCursorStyle(shape gott.CursorShape) {
	switch shape {
	case gott.CursorUnderline:
		io.WriteString(s.out, steadyUnderline)
	default:
		io.WriteString(s.out, steadyBlock)
	}
}

// Write draws text at the cursor, clipped to the right edge of the screen.
func (s *Screen) Write(text string) {
	size := s.Size()
	if s.cursor.Row >= size.Rows {
		return
	}
	text = runewidth.Truncate(text, size.Cols-s.cursor.Col, "")
	x := s.cursor.Col
	for _, c := range text {
		termbox.SetCell(x, s.cursor.Row, c, termbox.ColorDefault, termbox.ColorDefault)
		x += runewidth.RuneWidth(c)
	}
	s.cursor.Col = x
}

func (s *Screen) Flush() {
	termbox.Flush()
}

func (s *Screen) PollEvent(timeout time.Duration) (*gott.Event, bool) {
	select {
	case event, ok := <-s.events:
		if !ok {
			return &gott.Event{Type: gott.EventError}, true
		}
		if event.Type == termbox.EventResize {
			termbox.Flush()
		}
		return convert(event), true
	case <-time.After(timeout):
		return nil, false
	}
}

func convert(event termbox.Event) *gott.Event {
	e := &gott.Event{Key: key(event.Key), Ch: event.Ch}
	switch event.Type {
	case termbox.EventKey:
		e.Type = gott.EventKey
	case termbox.EventResize:
		e.Type = gott.EventResize
	case termbox.EventInterrupt:
		e.Type = gott.EventInterrupt
	default:
		e.Type = gott.EventNone
	}
	if event.Ch != 0 {
		e.Key = gott.KeyNone
	}
	return e
}

func key(k termbox.Key) gott.Key {
	switch k {
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyBackspace:
		return gott.KeyBackspace
	case termbox.KeyBackspace2:
		return gott.KeyBackspace2
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeySpace:
		return gott.KeySpace
	case termbox.KeyTab:
		return gott.KeyTab
	default:
		return gott.KeyUnsupported
	}
}
