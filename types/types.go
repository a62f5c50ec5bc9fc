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
package types

import "time"

// Editor modes
const (
	ModeNormal  = 0
	ModeEditing = 1
	ModeQuit    = 9999
)

// Event types
const (
	EventKey       = 0
	EventResize    = 1
	EventInterrupt = 2
	EventNone      = 3
	EventError     = 4 // the input source is gone
)

// Cursor shapes
type CursorShape int

const (
	CursorBlock     CursorShape = 0
	CursorUnderline CursorShape = 1
)

type Key int

// Keys that carry no printable character. Printable input arrives in Event.Ch.
const (
	KeyUnsupported Key = iota - 1
	KeyNone
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace
	KeyBackspace2
	KeyEnter
	KeyEsc
	KeySpace
	KeyTab
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

// A Terminal is the display an Editor renders into.
type Terminal interface {
	Clear()
	MoveCursorTo(x, y int) error
	SetCursorStyle(shape CursorShape)
	Write(text string)
	Size() Size
	Flush()
}

// An EventSource delivers input events. PollEvent waits at most timeout and
// reports false if nothing arrived.
type EventSource interface {
	PollEvent(timeout time.Duration) (*Event, bool)
}

// An Editor owns a buffer and a cursor and keeps a Terminal in step with them.
type Editor interface {
	Initialize(lines []string)
	Render()

	MoveUp(amount int)
	MoveDown(amount int)
	MoveLeft(amount int)
	MoveRight(amount int)
	SetPosition(x, y int)
	GetCursor() Point

	WriteChar(c rune)
	WriteText(text string)
	DeleteChar()

	SetEditing(editing bool)
	IsEditing() bool

	Lines() []string
	Bytes() []byte
}
