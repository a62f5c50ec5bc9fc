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
	"reflect"
	"testing"
)

func TestRowEditing(t *testing.T) {
	r := NewRow("abc")
	r.InsertChar(1, 'X')
	r.InsertChar(10, 'Z')
	r.InsertChar(-1, 'A')
	if text := r.DisplayText(); text != "AaXbcZ" {
		t.Errorf("Unexpected row after inserts: '%s'", text)
	}
	if c := r.DeleteChar(2); c != 'X' {
		t.Errorf("Deleted '%c', expected 'X'", c)
	}
	if c := r.DeleteChar(10); c != 0 {
		t.Errorf("Deleting past the end returned '%c'", c)
	}
	after := r.Split(2)
	if r.DisplayText() != "Aa" || after.DisplayText() != "bcZ" {
		t.Errorf("Unexpected split: '%s' '%s'", r.DisplayText(), after.DisplayText())
	}
	// the split row must not share storage with its remainder
	r.InsertChar(2, '-')
	if after.DisplayText() != "bcZ" {
		t.Errorf("Insert changed the split remainder: '%s'", after.DisplayText())
	}
	r.Join(after)
	if text := r.DisplayText(); text != "Aa-bcZ" {
		t.Errorf("Unexpected row after join: '%s'", text)
	}
}

func TestBufferSplitAndJoin(t *testing.T) {
	b := NewBuffer()
	b.LoadLines([]string{"one", "two", "three"})
	b.SplitRow(1, 1)
	if lines := b.Lines(); !reflect.DeepEqual(lines, []string{"one", "t", "wo", "three"}) {
		t.Errorf("Unexpected rows after split: %q", lines)
	}
	if length := b.JoinRow(2); length != 1 {
		t.Errorf("Join returned %d, expected 1", length)
	}
	if lines := b.Lines(); !reflect.DeepEqual(lines, []string{"one", "two", "three"}) {
		t.Errorf("Unexpected rows after join: %q", lines)
	}
	if b.JoinRow(0) != -1 || b.JoinRow(3) != -1 {
		t.Errorf("Joins outside the buffer should be refused")
	}
	b.SplitRow(5, 0)
	if b.GetRowCount() != 3 {
		t.Errorf("Split outside the buffer changed it")
	}
}

func TestBufferBounds(t *testing.T) {
	b := NewBuffer()
	if b.GetRowCount() != 1 || b.GetRowLength(0) != 0 {
		t.Errorf("A new buffer should hold one empty row")
	}
	if b.GetRowLength(-1) != 0 || b.GetRowLength(4) != 0 {
		t.Errorf("Rows outside the buffer should be empty")
	}
	b.InsertCharacter(3, 0, 'x')
	if b.DeleteCharacter(3, 0) != 0 || string(b.Bytes()) != "" {
		t.Errorf("Edits outside the buffer should be ignored")
	}
}
