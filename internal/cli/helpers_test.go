package cli_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/calvinalkan/lifespace/internal/activity"
	"github.com/calvinalkan/lifespace/internal/cli"
)

// thursday is the fixed clock of interpreter tests.
var thursday = date(2024, time.January, 4, 10)

func date(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

// fixture describes an activity with plain integers for test tables.
type fixture struct {
	name                         string
	start, due                   time.Time
	urgencyFrom, urgencyTo       int
	importance, effort, pleasure int
}

func build(t *testing.T, f fixture) activity.Activity {
	t.Helper()

	must := func(err error) {
		t.Helper()

		if err != nil {
			t.Fatalf("building %q: %v", f.name, err)
		}
	}

	from, err := activity.NewUrgency(f.urgencyFrom)
	must(err)
	to, err := activity.NewUrgency(f.urgencyTo)
	must(err)
	importance, err := activity.NewImportance(f.importance)
	must(err)
	effort, err := activity.NewEffort(f.effort)
	must(err)
	pleasure, err := activity.NewPleasure(f.pleasure)
	must(err)

	return activity.New(
		f.name,
		activity.UrgencyDescriptor{
			Interval: activity.Delta[time.Time]{Start: f.start, End: f.due},
			Urgency:  activity.Delta[activity.Urgency]{Start: from, End: to},
		},
		importance,
		effort,
		pleasure,
	)
}

// household returns three activities scored at thursday:
//
//	         urgency  margin  priority  value  fun  days
//	laundry  32       3       2.51      30     -20  3
//	taxes    33       7       2.67      50     -40  16
//	guitar   10       0.05    2.3       2      9    1
func household(t *testing.T) []activity.Activity {
	t.Helper()

	start := date(2024, time.January, 1, 0)

	return []activity.Activity{
		build(t, fixture{
			name:        "laundry",
			start:       start,
			due:         date(2024, time.January, 7, 10),
			urgencyFrom: 0,
			urgencyTo:   60,
			importance:  30,
			effort:      1,
			pleasure:    -20,
		}),
		build(t, fixture{
			name:        "taxes",
			start:       start,
			due:         date(2024, time.January, 20, 0),
			urgencyFrom: 20,
			urgencyTo:   90,
			importance:  100,
			effort:      2,
			pleasure:    -80,
		}),
		build(t, fixture{
			name:        "guitar",
			start:       start,
			due:         date(2024, time.January, 5, 10),
			urgencyFrom: 10,
			urgencyTo:   10,
			importance:  20,
			effort:      10,
			pleasure:    90,
		}),
	}
}

// harness drives an interpreter with scripted input and a fixed clock.
type harness struct {
	out    bytes.Buffer
	errOut bytes.Buffer
	interp *cli.Interpreter
}

func newHarness(input string) *harness {
	h := &harness{}
	o := cli.NewIO(&h.out, &h.errOut)
	h.interp = cli.NewInterpreter(o, cli.NewLineReader(strings.NewReader(input), &h.out), cli.Options{
		Now:      func() time.Time { return thursday },
		Location: time.UTC,
	})

	return h
}

// handle runs one command line.
func (h *harness) handle(activities []activity.Activity, line string) (cli.Result, error) {
	words := strings.Fields(line)

	return h.interp.Handle(activities, words[0], words[1:])
}

func names(activities []activity.Activity) []string {
	out := make([]string, len(activities))
	for i, a := range activities {
		out[i] = a.Name
	}

	return out
}
