package testutil

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is one command run against both the model and the interpreter.
type Op interface {
	// Line is the command line given to the interpreter.
	Line() string
	// Input answers the prompts the command asks, one per line.
	Input() string
	// ApplyModel performs the command on the model.
	ApplyModel(m *Model) error
	String() string
}

// intervalAnswer is the fixed urgency interval of added activities.
const intervalAnswer = "2024-01-01->2024-01-11"

// OpAdd adds an activity through the prompt sequence.
type OpAdd struct {
	Record Record

	// Retry answers importance with an out-of-range value first.
	Retry bool

	// Answers, when >= 0, cuts the input after that many answers so the
	// add is cancelled by end of input.
	Answers int
}

func (op *OpAdd) Line() string { return "add" }

func (op *OpAdd) answers() []string {
	r := op.Record
	lines := []string{r.Name}

	if op.Retry {
		lines = append(lines, "150")
	}

	return append(lines,
		strconv.Itoa(r.Importance),
		strconv.Itoa(r.Effort),
		strconv.Itoa(r.Pleasure),
		intervalAnswer,
		fmt.Sprintf("%d->%d", r.UrgencyFrom, r.UrgencyTo),
	)
}

func (op *OpAdd) truncated() bool {
	return op.Answers >= 0 && op.Answers < len(op.answers())
}

func (op *OpAdd) Input() string {
	lines := op.answers()
	if op.truncated() {
		lines = lines[:op.Answers]
	}

	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}

func (op *OpAdd) ApplyModel(m *Model) error {
	if op.truncated() {
		return ErrModelCancelled
	}

	return m.Add(op.Record)
}

func (op *OpAdd) String() string {
	return fmt.Sprintf("add %+v retry=%v answers=%d", op.Record, op.Retry, op.Answers)
}

// OpEdit sets one field.
type OpEdit struct {
	Prefix string
	Field  string
	Value  string
}

func (op *OpEdit) Line() string  { return "edit " + op.Prefix + " " + op.Field + " " + op.Value }
func (op *OpEdit) Input() string { return "" }

func (op *OpEdit) ApplyModel(m *Model) error {
	return m.Edit(op.Prefix, op.Field, op.Value)
}

func (op *OpEdit) String() string { return op.Line() }

// OpDelete deletes by exact name.
type OpDelete struct {
	Name string
}

func (op *OpDelete) Line() string              { return "delete " + op.Name }
func (op *OpDelete) Input() string             { return "" }
func (op *OpDelete) ApplyModel(m *Model) error { return m.Delete(op.Name) }
func (op *OpDelete) String() string            { return op.Line() }

// OpView shows one activity, or all for an empty prefix.
type OpView struct {
	Prefix string
}

func (op *OpView) Line() string              { return strings.TrimSpace("view " + op.Prefix) }
func (op *OpView) Input() string             { return "" }
func (op *OpView) ApplyModel(m *Model) error { return m.View(op.Prefix) }
func (op *OpView) String() string            { return op.Line() }

// OpList lists by a variant; unknown variants fail.
type OpList struct {
	Variant string
}

func (op *OpList) Line() string              { return strings.TrimSpace("list " + op.Variant) }
func (op *OpList) Input() string             { return "" }
func (op *OpList) ApplyModel(m *Model) error { return m.List(op.Variant) }
func (op *OpList) String() string            { return op.Line() }

// FormatOps renders an op history for failure messages.
func FormatOps(history []string) string {
	var b strings.Builder

	b.WriteString("ops:\n")

	for i, op := range history {
		fmt.Fprintf(&b, "  %3d: %s\n", i+1, op)
	}

	return b.String()
}
