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
package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseArgs(t *testing.T) {
	o, err := parseArgs(nil)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if o.debounce != 20*time.Millisecond || o.script != "" {
		t.Errorf("Unexpected defaults: %+v", o)
	}
	o, err = parseArgs([]string{"--eval", "x.lsp", "--debounce", "50", "--log", "/tmp/log", "--debug"})
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if o.script != "x.lsp" || o.debounce != 50*time.Millisecond || o.logFile != "/tmp/log" || !o.debug {
		t.Errorf("Unexpected options: %+v", o)
	}
}

func TestParseArgsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--eval"},
		{"--log"},
		{"--debounce"},
		{"--debounce", "soon"},
		{"--debounce", "-1"},
		{"file.txt"},
	} {
		if _, err := parseArgs(args); err == nil {
			t.Errorf("Expected %q to fail", args)
		}
	}
}

func TestRunScript(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "script.lsp")
	if err := os.WriteFile(filename, []byte(`(move-down 1) (write-text "ok ")`), 0644); err != nil {
		t.Fatal(err)
	}
	if code := runScript(&options{script: filename}); code != 0 {
		t.Errorf("Script exited with %d", code)
	}
	if code := runScript(&options{script: filename + ".missing"}); code != 1 {
		t.Errorf("Missing script exited with %d", code)
	}
}
