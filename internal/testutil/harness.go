package testutil

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/calvinalkan/lifespace/internal/activity"
	"github.com/calvinalkan/lifespace/internal/cli"
)

// Harness wires together the real interpreter and the model.
//
// This is intentionally small: it exists to share setup and provide
// a single place to hang helper methods for behavior tests.
type Harness struct {
	TB         testing.TB
	Model      *Model
	Clock      *Clock
	Activities []activity.Activity

	out    bytes.Buffer
	errOut bytes.Buffer
}

// NewHarness creates a new behavior test harness with empty collections.
func NewHarness(tb testing.TB) *Harness {
	tb.Helper()

	return &Harness{
		TB:    tb,
		Model: NewModel(),
		Clock: NewClock(),
	}
}

// Result is the outcome of one operation on the real interpreter.
type Result struct {
	Err    error
	Stdout string
	Stderr string
}

// ApplyReal runs op through a fresh interpreter over the current
// collection and keeps the collection it returns.
func (h *Harness) ApplyReal(op Op) Result {
	h.out.Reset()
	h.errOut.Reset()

	o := cli.NewIO(&h.out, &h.errOut)
	input := cli.NewLineReader(strings.NewReader(op.Input()), &h.out)
	interp := cli.NewInterpreter(o, input, cli.Options{Now: h.Clock.Now, Location: time.UTC})

	words := strings.Fields(op.Line())

	res, err := interp.Handle(h.Activities, words[0], words[1:])
	h.Activities = res.Activities

	return Result{Err: err, Stdout: h.out.String(), Stderr: h.errOut.String()}
}
