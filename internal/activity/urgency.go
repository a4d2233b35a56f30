package activity

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// UrgencyCurve maps a point in time to an urgency value given the interval
// over which urgency grows from urgency.Start to urgency.End.
type UrgencyCurve func(now time.Time, interval Delta[time.Time], urgency Delta[Urgency]) int

// progress returns how far now is through interval as a ratio in [0, 1].
// A zero-length interval counts as finished once now reaches its start.
func progress(now time.Time, interval Delta[time.Time]) float64 {
	start, end := interval.Start, interval.End

	if !end.After(start) {
		if now.Before(start) {
			return 0
		}

		return 1
	}

	switch {
	case now.Before(start):
		return 0
	case now.After(end):
		return 1
	}

	return float64(now.Sub(start)) / float64(end.Sub(start))
}

// LinearCurve interpolates urgency linearly over the interval.
func LinearCurve(now time.Time, interval Delta[time.Time], urgency Delta[Urgency]) int {
	ratio := progress(now, interval)
	from, to := float64(urgency.Start.Int()), float64(urgency.End.Int())

	return int(math.Round(from + (to-from)*ratio))
}

// exponentialSteepness controls how late the exponential ramp rises.
const exponentialSteepness = 3.0

// ExponentialCurve stays close to the initial urgency for most of the
// interval and rises steeply towards the deadline.
func ExponentialCurve(now time.Time, interval Delta[time.Time], urgency Delta[Urgency]) int {
	ratio := progress(now, interval)
	ramp := math.Expm1(exponentialSteepness*ratio) / math.Expm1(exponentialSteepness)
	from, to := float64(urgency.Start.Int()), float64(urgency.End.Int())

	return int(math.Round(from + (to-from)*ramp))
}

// Curves maps configuration names to urgency curves.
var Curves = map[string]UrgencyCurve{
	"linear":      LinearCurve,
	"exponential": ExponentialCurve,
}

// UrgencyDescriptor describes how an activity's urgency changes over time.
type UrgencyDescriptor struct {
	Interval Delta[time.Time] `json:"interval"`
	Urgency  Delta[Urgency]   `json:"urgency"`
}

// CurrentUrgency returns the urgency at now using linear interpolation.
func (u UrgencyDescriptor) CurrentUrgency(now time.Time) Urgency {
	return u.UrgencyWith(now, LinearCurve)
}

// UrgencyWith returns the urgency at now using curve. The curve result is
// clamped into the urgency range so rounding at the bounds never fails.
func (u UrgencyDescriptor) UrgencyWith(now time.Time, curve UrgencyCurve) Urgency {
	if curve == nil {
		curve = LinearCurve
	}

	lo, hi := Urgency{}.Bounds()
	v := max(lo, min(hi, curve(now, u.Interval, u.Urgency)))

	// In range after clamping.
	urgency, _ := NewUrgency(v)

	return urgency
}

// Deadline is the end of the urgency interval.
func (u UrgencyDescriptor) Deadline() time.Time {
	return u.Interval.End
}

// UnmarshalJSON accepts RFC 3339 timestamps as well as the offset-less
// date-times and plain dates older data files contain. Those are read in
// the local time zone.
func (u *UrgencyDescriptor) UnmarshalJSON(data []byte) error {
	var raw struct {
		Interval Delta[string]  `json:"interval"`
		Urgency  Delta[Urgency] `json:"urgency"`
	}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	start, err := ParseTime(raw.Interval.Start, time.Local)
	if err != nil {
		return fmt.Errorf("interval start: %w", err)
	}

	end, err := ParseTime(raw.Interval.End, time.Local)
	if err != nil {
		return fmt.Errorf("interval end: %w", err)
	}

	*u = UrgencyDescriptor{
		Interval: Delta[time.Time]{Start: start, End: end},
		Urgency:  raw.Urgency,
	}

	return nil
}
