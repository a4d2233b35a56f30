package activity

import (
	"fmt"
	"strings"
	"time"
)

// Delta is a change over time or value, from Start to End.
type Delta[T any] struct {
	Start T `json:"start"`
	End   T `json:"end"`
}

// pairSeparator separates the two halves of a "start->end" pair.
const pairSeparator = "->"

// dateLayouts are tried in order by [ParseTime]. Layouts without an offset
// are interpreted in the caller's location.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime parses an ISO-8601-ish date or date-time.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// ParsePair splits "start->end" and parses both halves with parse.
// Anything other than exactly two halves fails with [ErrMalformedPair].
func ParsePair[T any](s string, parse func(string) (T, error)) (Delta[T], error) {
	parts := strings.Split(s, pairSeparator)
	if len(parts) != 2 {
		return Delta[T]{}, fmt.Errorf("%w: %q", ErrMalformedPair, s)
	}

	start, err := parse(parts[0])
	if err != nil {
		return Delta[T]{}, err
	}

	end, err := parse(parts[1])
	if err != nil {
		return Delta[T]{}, err
	}

	return Delta[T]{Start: start, End: end}, nil
}

// ParseUrgencyDelta parses "initial->final" urgency values.
func ParseUrgencyDelta(s string) (Delta[Urgency], error) {
	return ParsePair(s, ParseUrgency)
}

// ParseInterval parses "start->due" dates in loc. A due date before the
// start fails with [ErrDueBeforeStart]; equal dates are allowed.
func ParseInterval(s string, loc *time.Location) (Delta[time.Time], error) {
	interval, err := ParsePair(s, func(part string) (time.Time, error) {
		return ParseTime(part, loc)
	})
	if err != nil {
		return Delta[time.Time]{}, err
	}

	if interval.End.Before(interval.Start) {
		return Delta[time.Time]{}, fmt.Errorf("%w: %q", ErrDueBeforeStart, s)
	}

	return interval, nil
}
