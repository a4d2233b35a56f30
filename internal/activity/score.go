package activity

import (
	"math"
	"time"
)

// PriorityFloor is the priority summary of an activity whose urgency or
// importance is zero, where log10 would be -Inf.
const PriorityFloor = -100.0

// Per-day effort budgets used by [Margin].
const (
	weekendEffort = 2.0
	weekdayEffort = 0.5
)

// round2 rounds half away from zero to two decimals.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// effortDivisor treats zero effort as one unit so ratios stay finite.
func effortDivisor(e Effort) float64 {
	return float64(max(e.Int(), 1))
}

// PrioritySummary is log10(urgency*importance / max(margin, 1)) rounded
// to two decimals, or [PriorityFloor] when urgency*importance is zero.
func PrioritySummary(a Activity, now time.Time, curve UrgencyCurve) float64 {
	signal := float64(a.Urgency.UrgencyWith(now, curve).Int() * a.Importance.Int())
	if signal <= 0 {
		return PriorityFloor
	}

	return round2(math.Log10(signal / math.Max(Margin(a, now), 1)))
}

// ValueForEffort is importance per unit of effort.
func ValueForEffort(a Activity) float64 {
	return round2(float64(a.Importance.Int()) / effortDivisor(a.Effort))
}

// PleasureForEffort is pleasure per unit of effort.
func PleasureForEffort(a Activity) float64 {
	return round2(float64(a.Pleasure.Int()) / effortDivisor(a.Effort))
}

// Margin is the effort capacity available before the deadline divided by
// the activity's effort.
func Margin(a Activity, now time.Time) float64 {
	return round2(EffortAvailable(now, a.Urgency.Deadline()) / effortDivisor(a.Effort))
}

// EffortAvailable sums the per-day effort budget for each day stepping
// from now while before deadline: 2 on weekends, 0.5 on weekdays.
func EffortAvailable(now, deadline time.Time) float64 {
	total := 0.0

	for t := now; t.Before(deadline); t = t.AddDate(0, 0, 1) {
		switch t.Weekday() {
		case time.Saturday, time.Sunday:
			total += weekendEffort
		default:
			total += weekdayEffort
		}
	}

	return total
}

// DaysUntil counts the calendar-day steps from now while before deadline.
func DaysUntil(now, deadline time.Time) int {
	days := 0

	for t := now; t.Before(deadline); t = t.AddDate(0, 0, 1) {
		days++
	}

	return days
}

// Score is a snapshot of every derived metric at one point in time.
type Score struct {
	Urgency           Urgency
	PrioritySummary   float64
	Margin            float64
	ValueForEffort    float64
	PleasureForEffort float64
	DaysUntilDue      int
}

// Scorer evaluates activities. The zero value uses [LinearCurve].
type Scorer struct {
	Curve UrgencyCurve
}

// Score evaluates every metric of a at now.
func (s Scorer) Score(a Activity, now time.Time) Score {
	curve := s.Curve
	if curve == nil {
		curve = LinearCurve
	}

	return Score{
		Urgency:           a.Urgency.UrgencyWith(now, curve),
		PrioritySummary:   PrioritySummary(a, now, curve),
		Margin:            Margin(a, now),
		ValueForEffort:    ValueForEffort(a),
		PleasureForEffort: PleasureForEffort(a),
		DaysUntilDue:      DaysUntil(now, a.Urgency.Deadline()),
	}
}
