package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/calvinalkan/lifespace/internal/activity"
	"github.com/calvinalkan/lifespace/internal/fs"
	"github.com/calvinalkan/lifespace/internal/store"
)

const (
	commandPrompt   = "> "
	historyPerms    = 0o600
	historyDirPerms = 0o750
)

// historian is implemented by prompters that keep command history.
type historian interface {
	AppendHistory(line string)
}

// Session reads commands until quit or end of input and persists the
// collection after every successful command.
type Session struct {
	io     *IO
	input  Prompter
	interp *Interpreter
	store  *store.Store
}

// NewSession creates a read loop over input.
func NewSession(o *IO, input Prompter, interp *Interpreter, st *store.Store) *Session {
	return &Session{io: o, input: input, interp: interp, store: st}
}

// Run loops until quit or end of input. Command errors are printed and the
// loop continues; a failed save ends it with the error.
func (s *Session) Run(activities []activity.Activity) error {
	for {
		line, err := s.input.Prompt(commandPrompt)
		if err != nil {
			if isInterrupt(err) {
				s.io.Println()
				return nil
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if h, ok := s.input.(historian); ok {
			h.AppendHistory(line)
		}

		words := strings.Fields(line)

		res, err := s.interp.Handle(activities, words[0], words[1:])
		if err != nil {
			s.io.ErrPrintln("error:", err)
			continue
		}

		activities = res.Activities

		err = s.store.Save(activities)
		if err != nil {
			return err
		}

		if res.Quit {
			return nil
		}
	}
}

// Terminal is a line editor on the controlling terminal with persistent
// history and tab completion.
type Terminal struct {
	state       *liner.State
	fs          fs.FS
	historyPath string
}

// NewTerminal takes over the terminal. History is read from historyPath
// if it exists. Call [Terminal.Close] to restore the terminal.
func NewTerminal(fsys fs.FS, historyPath string) *Terminal {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetCompleter(Complete)

	if data, err := fsys.ReadFile(historyPath); err == nil {
		_, _ = state.ReadHistory(bytes.NewReader(data))
	}

	return &Terminal{state: state, fs: fsys, historyPath: historyPath}
}

// Prompt implements [Prompter].
func (t *Terminal) Prompt(prompt string) (string, error) {
	return t.state.Prompt(prompt)
}

// AppendHistory records a command line.
func (t *Terminal) AppendHistory(line string) {
	t.state.AppendHistory(line)
}

// Close writes the history file and restores the terminal.
func (t *Terminal) Close() error {
	var buf bytes.Buffer

	_, err := t.state.WriteHistory(&buf)
	if err == nil {
		err = t.fs.MkdirAll(filepath.Dir(t.historyPath), historyDirPerms)
	}

	if err == nil {
		err = t.fs.WriteFileAtomic(t.historyPath, buf.Bytes(), historyPerms)
	}

	closeErr := t.state.Close()
	if err != nil {
		return fmt.Errorf("saving history %s: %w", t.historyPath, err)
	}

	return closeErr
}

// isTerminalInput reports whether in is the process's standard input,
// the only reader liner can drive.
func isTerminalInput(in any) bool {
	f, ok := in.(*os.File)

	return ok && f == os.Stdin
}

// Complete offers completions for a partial command line: verbs for the
// first word and listing names after "list".
func Complete(line string) []string {
	words := strings.Fields(line)
	trailing := strings.HasSuffix(line, " ")

	if len(words) == 0 || (len(words) == 1 && !trailing) {
		prefix := strings.ToLower(strings.Join(words, ""))

		var out []string

		for _, verb := range Verbs {
			if strings.HasPrefix(verb, prefix) {
				out = append(out, verb)
			}
		}

		return out
	}

	verb, err := ResolveVerb(words[0])
	if err != nil || verb != VerbList || len(words) > 2 || (len(words) == 2 && trailing) {
		return nil
	}

	prefix := ""
	if len(words) == 2 {
		prefix = strings.ToLower(words[1])
	}

	var out []string

	for _, o := range activity.Orders {
		if strings.HasPrefix(string(o), prefix) {
			out = append(out, words[0]+" "+string(o))
		}
	}

	return out
}
