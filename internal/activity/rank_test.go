package activity_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/lifespace/internal/activity"
)

func rankFixtures(t *testing.T) []activity.Activity {
	t.Helper()

	start := date(2024, time.January, 1, 0)

	return []activity.Activity{
		// margin 6.5, value 40, fun -10, priority 2.57
		build(t, fixture{
			name:        "laundry",
			start:       start,
			due:         date(2024, time.January, 11, 10),
			urgencyFrom: 60,
			urgencyTo:   60,
			importance:  40,
			effort:      1,
			pleasure:    -10,
		}),
		// margin 1.5, value 50, fun 5, priority 3.78
		build(t, fixture{
			name:        "taxes",
			start:       start,
			due:         date(2024, time.January, 7, 10),
			urgencyFrom: 90,
			urgencyTo:   90,
			importance:  100,
			effort:      2,
			pleasure:    10,
		}),
		// margin 0.05, value 3, fun 10, priority 2.48
		build(t, fixture{
			name:        "guitar",
			start:       start,
			due:         date(2024, time.January, 4, 18),
			urgencyFrom: 10,
			urgencyTo:   10,
			importance:  30,
			effort:      10,
			pleasure:    100,
		}),
	}
}

func names(ranked []activity.Ranked) []string {
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Activity.Name
	}

	return out
}

func TestRankOrders(t *testing.T) {
	t.Parallel()

	activities := rankFixtures(t)

	for _, tt := range []struct {
		order activity.Order
		want  []string
	}{
		{activity.OrderPriority, []string{"taxes", "laundry", "guitar"}},
		{activity.OrderValue, []string{"taxes", "laundry", "guitar"}},
		{activity.OrderMargin, []string{"guitar", "taxes", "laundry"}},
		{activity.OrderFun, []string{"guitar", "taxes", "laundry"}},
	} {
		t.Run(string(tt.order), func(t *testing.T) {
			t.Parallel()

			got := names(activity.Scorer{}.Rank(activities, thursday, tt.order))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRankIsStableAndDoesNotReorderInput(t *testing.T) {
	t.Parallel()

	start := date(2024, time.January, 1, 0)
	twin := func(name string) activity.Activity {
		return build(t, fixture{
			name:       name,
			start:      start,
			due:        date(2024, time.January, 11, 0),
			importance: 50,
			effort:     5,
		})
	}
	activities := []activity.Activity{twin("b"), twin("a"), twin("c")}

	got := names(activity.Scorer{}.Rank(activities, thursday, activity.OrderValue))
	if diff := cmp.Diff([]string{"b", "a", "c"}, got); diff != "" {
		t.Errorf("tie order (-want +got):\n%s", diff)
	}

	require.Equal(t, "b", activities[0].Name)
}

func TestParseOrder(t *testing.T) {
	t.Parallel()

	got, err := activity.ParseOrder("")
	require.NoError(t, err)
	require.Equal(t, activity.OrderPriority, got)

	got, err = activity.ParseOrder("fun")
	require.NoError(t, err)
	require.Equal(t, activity.OrderFun, got)

	_, err = activity.ParseOrder("alphabetical")
	require.ErrorIs(t, err, activity.ErrUnknownOrder)
}

func TestRankPutsLowerEffortFirstWhenRatiosTie(t *testing.T) {
	t.Parallel()

	start := date(2024, time.January, 1, 0)
	task := func(name string, effort int) activity.Activity {
		return build(t, fixture{
			name:       name,
			start:      start,
			due:        date(2024, time.January, 11, 0),
			importance: 40,
			pleasure:   20,
			effort:     effort,
		})
	}

	// Zero effort divides as one, so both score value 40 and fun 20.
	activities := []activity.Activity{task("one", 1), task("free", 0)}

	for _, order := range []activity.Order{activity.OrderValue, activity.OrderFun} {
		got := names(activity.Scorer{}.Rank(activities, thursday, order))
		if diff := cmp.Diff([]string{"free", "one"}, got); diff != "" {
			t.Errorf("%s order (-want +got):\n%s", order, diff)
		}
	}

	got := names(activity.Scorer{}.Rank(activities, thursday, activity.OrderPriority))
	if diff := cmp.Diff([]string{"one", "free"}, got); diff != "" {
		t.Errorf("priority keeps insertion order on ties (-want +got):\n%s", diff)
	}
}
