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
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/steelseries/golisp"
	gott "github.com/timburks/tedit/types"
)

// golisp primitives are global, so they act on the commander that is
// currently evaluating a script.
var scripting *Commander

var keyNames = map[string]gott.Key{
	"up":        gott.KeyArrowUp,
	"down":      gott.KeyArrowDown,
	"left":      gott.KeyArrowLeft,
	"right":     gott.KeyArrowRight,
	"esc":       gott.KeyEsc,
	"enter":     gott.KeyEnter,
	"backspace": gott.KeyBackspace2,
	"space":     gott.KeySpace,
	"tab":       gott.KeyTab,
}

func init() {
	golisp.MakePrimitiveFunction("move-up", "1", moveImpl(gott.Editor.MoveUp))
	golisp.MakePrimitiveFunction("move-down", "1", moveImpl(gott.Editor.MoveDown))
	golisp.MakePrimitiveFunction("move-left", "1", moveImpl(gott.Editor.MoveLeft))
	golisp.MakePrimitiveFunction("move-right", "1", moveImpl(gott.Editor.MoveRight))
	golisp.MakePrimitiveFunction("set-position", "2", setPositionImpl)
	golisp.MakePrimitiveFunction("write-char", "1", writeCharImpl)
	golisp.MakePrimitiveFunction("write-text", "1", writeTextImpl)
	golisp.MakePrimitiveFunction("delete-char", "0", deleteCharImpl)
	golisp.MakePrimitiveFunction("set-editing", "1", setEditingImpl)
	golisp.MakePrimitiveFunction("editing?", "0", isEditingImpl)
	golisp.MakePrimitiveFunction("cursor", "0", cursorImpl)
	golisp.MakePrimitiveFunction("buffer-text", "0", bufferTextImpl)
	golisp.MakePrimitiveFunction("key", "1", keyImpl)
}

func attachedEditor() (gott.Editor, error) {
	if scripting == nil {
		return nil, errors.New("no editor is attached to the interpreter")
	}
	return scripting.editor, nil
}

func integerArgument(name string, val *golisp.Data) (int, error) {
	if !golisp.IntegerP(val) {
		return 0, fmt.Errorf("%s requires an integer argument", name)
	}
	return int(golisp.IntegerValue(val)), nil
}

func moveImpl(move func(gott.Editor, int)) func(*golisp.Data, *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		e, err := attachedEditor()
		if err != nil {
			return nil, err
		}
		n, err := integerArgument("move", golisp.Car(args))
		if err != nil {
			return nil, err
		}
		move(e, n)
		return cursorImpl(args, env)
	}
}

func setPositionImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := attachedEditor()
	if err != nil {
		return nil, err
	}
	x, err := integerArgument("set-position", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	y, err := integerArgument("set-position", golisp.Cadr(args))
	if err != nil {
		return nil, err
	}
	e.SetPosition(x, y)
	return cursorImpl(args, env)
}

// write-char takes a one-character string or a character code.
func writeCharImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := attachedEditor()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	var c rune
	switch {
	case golisp.StringP(val):
		s := golisp.StringValue(val)
		if utf8.RuneCountInString(s) != 1 {
			return nil, errors.New("write-char requires a single character")
		}
		c, _ = utf8.DecodeRuneInString(s)
	case golisp.IntegerP(val):
		c = rune(golisp.IntegerValue(val))
	default:
		return nil, errors.New("write-char requires a string or integer argument")
	}
	e.WriteChar(c)
	return cursorImpl(args, env)
}

func writeTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := attachedEditor()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("write-text requires a string argument")
	}
	e.WriteText(golisp.StringValue(val))
	return cursorImpl(args, env)
}

func deleteCharImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := attachedEditor()
	if err != nil {
		return nil, err
	}
	e.DeleteChar()
	return cursorImpl(args, env)
}

func setEditingImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := attachedEditor()
	if err != nil {
		return nil, err
	}
	e.SetEditing(golisp.BooleanValue(golisp.Car(args)))
	return golisp.BooleanWithValue(e.IsEditing()), nil
}

func isEditingImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := attachedEditor()
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(e.IsEditing()), nil
}

// cursor returns (col row).
func cursorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := attachedEditor()
	if err != nil {
		return nil, err
	}
	cursor := e.GetCursor()
	return golisp.ArrayToList([]*golisp.Data{
		golisp.IntegerWithValue(int64(cursor.Col)),
		golisp.IntegerWithValue(int64(cursor.Row)),
	}), nil
}

func bufferTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := attachedEditor()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(string(e.Bytes())), nil
}

// key sends a keystroke through the mode tables, skipping the debouncer.
// It takes a key name such as "esc" or a single character.
func keyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if scripting == nil {
		return nil, errors.New("no editor is attached to the interpreter")
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("key requires a string argument")
	}
	name := golisp.StringValue(val)
	event := &gott.Event{Type: gott.EventKey}
	if k, ok := keyNames[name]; ok {
		event.Key = k
	} else if utf8.RuneCountInString(name) == 1 {
		event.Ch, _ = utf8.DecodeRuneInString(name)
	} else {
		return nil, fmt.Errorf("unknown key %q", name)
	}
	if err := scripting.processKey(event); err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(scripting.IsRunning()), nil
}

// ParseEval evaluates a sequence of lisp expressions against the editor and
// returns the printed value of the last one.
func (c *Commander) ParseEval(text string) (string, error) {
	scripting = c
	defer func() { scripting = nil }()
	value, err := golisp.ParseAndEval("(begin " + text + "\n)")
	if err != nil {
		return "", err
	}
	return golisp.String(value), nil
}

func (c *Commander) ParseEvalFile(filename string) (string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("reading script: %w", err)
	}
	return c.ParseEval(string(b))
}
