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
package commander

import (
	"context"
	"errors"
	"log"
	"time"

	gott "github.com/timburks/tedit/types"
)

// How long each iteration of the event loop waits for input.
const PollTimeout = 20 * time.Millisecond

// ErrInputClosed is returned when the event source can deliver no more events.
var ErrInputClosed = errors.New("input source closed")

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor    gott.Editor
	debouncer *Debouncer
	running   bool // cleared by the quit command
	debug     bool // log every event
}

func NewCommander(e gott.Editor, debouncer *Debouncer) *Commander {
	return &Commander{editor: e, debouncer: debouncer, running: true}
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) IsRunning() bool {
	return c.running
}

// GetMode reports the mode the next key event is handled in. The editor
// holds the editing flag; the commander only adds the quit state.
func (c *Commander) GetMode() int {
	switch {
	case !c.running:
		return gott.ModeQuit
	case c.editor.IsEditing():
		return gott.ModeEditing
	default:
		return gott.ModeNormal
	}
}

// Run polls for events and handles them one at a time until the quit
// command is given, ctx is done, or the source closes.
func (c *Commander) Run(ctx context.Context, source gott.EventSource) error {
	for c.IsRunning() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		event, ok := source.PollEvent(PollTimeout)
		if !ok {
			continue
		}
		if err := c.ProcessEvent(event); err != nil {
			if errors.Is(err, ErrInputClosed) {
				return err
			}
			log.Printf("%+v", err)
		}
	}
	return nil
}

func (c *Commander) ProcessEvent(event *gott.Event) error {
	if c.debug {
		log.Printf("event=%+v mode=%d", event, c.GetMode())
	}
	switch event.Type {
	case gott.EventKey:
		if !c.debouncer.ShouldCall() {
			return nil
		}
		return c.processKey(event)
	case gott.EventResize:
		c.editor.Render()
		return nil
	case gott.EventError:
		c.running = false
		return ErrInputClosed
	default:
		return nil
	}
}

func (c *Commander) processKey(event *gott.Event) error {
	switch c.GetMode() {
	case gott.ModeNormal:
		return c.processKeyNormalMode(event)
	case gott.ModeEditing:
		return c.processKeyEditingMode(event)
	default:
		return nil
	}
}

func (c *Commander) processKeyNormalMode(event *gott.Event) error {
	e := c.editor

	switch event.Key {
	case gott.KeyArrowUp:
		e.MoveUp(1)
	case gott.KeyArrowDown:
		e.MoveDown(1)
	case gott.KeyArrowLeft:
		e.MoveLeft(1)
	case gott.KeyArrowRight:
		e.MoveRight(1)
	}
	switch event.Ch {
	case 'q':
		c.running = false
	case 'k':
		e.MoveUp(1)
	case 'j':
		e.MoveDown(1)
	case 'h':
		e.MoveLeft(1)
	case 'l':
		e.MoveRight(1)
	case 'i':
		e.SetEditing(true)
	}
	return nil
}

func (c *Commander) processKeyEditingMode(event *gott.Event) error {
	e := c.editor

	if event.Ch != 0 {
		e.WriteChar(event.Ch)
		return nil
	}
	switch event.Key {
	case gott.KeyEsc:
		e.SetEditing(false)
	case gott.KeyBackspace, gott.KeyBackspace2:
		e.DeleteChar()
	case gott.KeyEnter:
		e.WriteChar('\n')
	case gott.KeySpace:
		e.WriteChar(' ')
	}
	return nil
}
