package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// Prompter reads one line of input after showing a prompt.
// At end of input it returns [io.EOF].
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// LineReader is a [Prompter] over a plain reader, used when input is not
// an interactive terminal.
type LineReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineReader creates a prompter reading from in and writing prompts to out.
func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{in: bufio.NewReader(in), out: out}
}

// Prompt implements [Prompter].
func (r *LineReader) Prompt(prompt string) (string, error) {
	_, _ = io.WriteString(r.out, prompt)

	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}

		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// isInterrupt reports whether err ends an input session: end of input
// or Ctrl-C at a terminal prompt.
func isInterrupt(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted)
}

// collect prompts until parse accepts the input. Rejected input prints the
// reason and asks again. An interrupted prompt returns [ErrAddCancelled].
func collect[T any](o *IO, p Prompter, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := p.Prompt(prompt + ": ")
		if err != nil {
			var zero T

			if isInterrupt(err) {
				return zero, ErrAddCancelled
			}

			return zero, fmt.Errorf("reading input: %w", err)
		}

		v, err := parse(strings.TrimSpace(line))
		if err == nil {
			return v, nil
		}

		o.ErrPrintln("invalid:", err)
	}
}
