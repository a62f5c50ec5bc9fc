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
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/timburks/tedit/commander"
	"github.com/timburks/tedit/editor"
	"github.com/timburks/tedit/screen"
	gott "github.com/timburks/tedit/types"
	"golang.org/x/term"
)

var initialContent = []string{
	"Hello, world!",
	"This is a Go program!",
	"Third line of code!",
	"Fourth line of code!",
	"Fifth line of code!",
	"Sixth line of code!",
}

type options struct {
	script   string
	logFile  string
	debounce time.Duration
	debug    bool
}

func parseArgs(args []string) (*options, error) {
	o := &options{
		logFile:  os.Getenv("HOME") + "/.teditlog",
		debounce: 20 * time.Millisecond,
	}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--eval": // run a script and print the buffer
			i++
			if i == len(args) {
				return nil, errors.New("no file specified for --eval option")
			}
			o.script = args[i]
		case "--log":
			i++
			if i == len(args) {
				return nil, errors.New("no file specified for --log option")
			}
			o.logFile = args[i]
		case "--debounce": // milliseconds
			i++
			if i == len(args) {
				return nil, errors.New("no interval specified for --debounce option")
			}
			ms, err := strconv.Atoi(args[i])
			if err != nil || ms < 0 {
				return nil, fmt.Errorf("invalid --debounce interval %q", args[i])
			}
			o.debounce = time.Duration(ms) * time.Millisecond
		case "--debug":
			o.debug = true
		default:
			return nil, fmt.Errorf("unknown argument %q", args[i])
		}
	}
	return o, nil
}

func main() {
	o, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if o.script != "" {
		os.Exit(runScript(o))
	}
	os.Exit(runInteractive(o))
}

// Run a script against an offscreen editor and print the resulting buffer.
func runScript(o *options) int {
	m := screen.NewMemory(gott.Size{Rows: 24, Cols: 80})
	e := editor.NewEditor(m)
	e.Initialize(initialContent)
	c := commander.NewCommander(e, commander.NewDebouncer(o.debounce))
	value, err := c.ParseEvalFile(o.script)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println(value)
	fmt.Println(string(e.Bytes()))
	return 0
}

func runInteractive(o *options) int {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "tedit: standard input is not a terminal")
		return 1
	}

	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer s.Close()

	// Open a log file.
	f, err := os.OpenFile(o.logFile, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err == nil {
		log.SetOutput(f)
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor(s)
	e.Initialize(initialContent)

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e, commander.NewDebouncer(o.debounce))
	c.SetDebug(o.debug)

	// Run the main event loop.
	// The screen is closed by the deferred call before main exits.
	if err := c.Run(context.Background(), s); err != nil {
		log.Output(1, err.Error())
		return 1
	}
	return 0
}
