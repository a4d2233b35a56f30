package activity_test

import (
	"testing"
	"time"

	"github.com/calvinalkan/lifespace/internal/activity"
)

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

func build(t *testing.T, s fixture) activity.Activity {
	t.Helper()

	must := func(err error) {
		t.Helper()

		if err != nil {
			t.Fatalf("building %q: %v", s.name, err)
		}
	}

	from, err := activity.NewUrgency(s.urgencyFrom)
	must(err)
	to, err := activity.NewUrgency(s.urgencyTo)
	must(err)
	importance, err := activity.NewImportance(s.importance)
	must(err)
	effort, err := activity.NewEffort(s.effort)
	must(err)
	pleasure, err := activity.NewPleasure(s.pleasure)
	must(err)

	return activity.New(
		s.name,
		activity.UrgencyDescriptor{
			Interval: activity.Delta[time.Time]{Start: s.start, End: s.due},
			Urgency:  activity.Delta[activity.Urgency]{Start: from, End: to},
		},
		importance,
		effort,
		pleasure,
	)
}
