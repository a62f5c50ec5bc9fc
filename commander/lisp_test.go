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
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func eval(t *testing.T, c *Commander, script string) string {
	t.Helper()
	value, err := c.ParseEval(script)
	if err != nil {
		t.Fatalf("Evaluation of %s failed: %+v", script, err)
	}
	return value
}

func TestLispWriteChar(t *testing.T) {
	c, e, _ := setup(t)
	eval(t, c, `(write-char "a")`)
	if text := e.Lines()[0]; text != "aHello, World!" {
		t.Errorf("Unexpected row after write-char: '%s'", text)
	}
	checkCursor(t, e, 1, 0)
}

func TestLispSplitAndJoin(t *testing.T) {
	c, e, _ := setup(t)
	eval(t, c, `(move-right 5) (write-char 10)`)
	if lines := e.Lines(); lines[0] != "Hello" || lines[1] != ", World!" {
		t.Errorf("Unexpected rows after split: %q", lines[:2])
	}
	checkCursor(t, e, 0, 1)
	eval(t, c, `(delete-char)`)
	if lines := e.Lines(); !reflect.DeepEqual(lines, content()) {
		t.Errorf("Join did not restore the buffer: %q", lines)
	}
	checkCursor(t, e, 5, 0)
}

func TestLispMovement(t *testing.T) {
	c, e, _ := setup(t)
	eval(t, c, `(move-down 1)`)
	checkCursor(t, e, 0, 1)
	eval(t, c, `(move-down 10)`)
	checkCursor(t, e, 0, 5)
	eval(t, c, `(move-up 2) (move-right 3) (move-left 1)`)
	checkCursor(t, e, 2, 3)
	eval(t, c, `(set-position 7 0)`)
	checkCursor(t, e, 7, 0)
}

func TestLispKeys(t *testing.T) {
	c, e, _ := setup(t)
	eval(t, c, `(key "j") (key "i") (write-text "ab") (key "backspace") (key "esc")`)
	if text := e.Lines()[1]; text != "aThis is a Go program!" {
		t.Errorf("Unexpected row after keys: '%s'", text)
	}
	if e.IsEditing() {
		t.Errorf("Escape key should leave editing mode")
	}
	eval(t, c, `(key "q")`)
	if c.IsRunning() {
		t.Errorf("'q' key should stop the commander")
	}
}

func TestLispEditing(t *testing.T) {
	c, e, _ := setup(t)
	eval(t, c, `(set-editing #t)`)
	if !e.IsEditing() {
		t.Errorf("set-editing should enter editing mode")
	}
}

func TestLispErrors(t *testing.T) {
	c, _, _ := setup(t)
	for _, script := range []string{
		`(move-up "x")`,
		`(write-char "ab")`,
		`(write-text 3)`,
		`(key "nosuchkey")`,
	} {
		if _, err := c.ParseEval(script); err == nil {
			t.Errorf("Expected %s to fail", script)
		}
	}
}

func TestLispEvalFile(t *testing.T) {
	c, e, _ := setup(t)
	filename := filepath.Join(t.TempDir(), "script.lsp")
	if err := os.WriteFile(filename, []byte("(move-down 2)\n(write-text \"Z\")\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ParseEvalFile(filename); err != nil {
		t.Fatalf("Script failed: %+v", err)
	}
	if text := e.Lines()[2]; text != "ZThird line of code!" {
		t.Errorf("Unexpected row after script: '%s'", text)
	}
	if _, err := c.ParseEvalFile(filepath.Join(t.TempDir(), "missing.lsp")); err == nil {
		t.Errorf("Expected a missing script to fail")
	}
}
