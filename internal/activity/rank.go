package activity

import (
	"cmp"
	"fmt"
	"slices"
	"time"
)

// Order selects the metric a listing is sorted by.
type Order string

const (
	OrderPriority Order = "priority"
	OrderValue    Order = "value"
	OrderMargin   Order = "margin"
	OrderFun      Order = "fun"
)

// Orders lists every order in display order.
var Orders = []Order{OrderPriority, OrderValue, OrderMargin, OrderFun}

// ErrUnknownOrder is returned by [ParseOrder].
var ErrUnknownOrder = fmt.Errorf("unknown listing (want one of %v)", Orders)

// ParseOrder parses a listing name. The empty string means priority.
func ParseOrder(s string) (Order, error) {
	if s == "" {
		return OrderPriority, nil
	}

	for _, o := range Orders {
		if string(o) == s {
			return o, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// Metric returns the score component o sorts by.
func (o Order) Metric(s Score) float64 {
	switch o {
	case OrderValue:
		return s.ValueForEffort
	case OrderMargin:
		return s.Margin
	case OrderFun:
		return s.PleasureForEffort
	default:
		return s.PrioritySummary
	}
}

// Ascending reports whether o lists smallest values first. Only margin
// does: the activity closest to its deadline comes first.
func (o Order) Ascending() bool {
	return o == OrderMargin
}

// Ranked pairs an activity with its score.
type Ranked struct {
	Activity Activity
	Score    Score
}

// perEffort reports whether o ranks a ratio over effort.
func (o Order) perEffort() bool {
	return o == OrderValue || o == OrderFun
}

// Rank scores every activity at now and sorts them by o. For value and
// fun, equal ratios rank the lower effort first, so zero-effort
// activities lead the effort-one ones they tie with. Remaining ties keep
// insertion order.
func (s Scorer) Rank(activities []Activity, now time.Time, o Order) []Ranked {
	ranked := make([]Ranked, len(activities))
	for i, a := range activities {
		ranked[i] = Ranked{Activity: a, Score: s.Score(a, now)}
	}

	slices.SortStableFunc(ranked, func(x, y Ranked) int {
		c := cmp.Compare(o.Metric(x.Score), o.Metric(y.Score))
		if !o.Ascending() {
			c = -c
		}

		if c == 0 && o.perEffort() {
			return cmp.Compare(x.Activity.Effort.Int(), y.Activity.Effort.Int())
		}

		return c
	})

	return ranked
}
