// Package activity holds the activity model and the scoring engine that
// ranks activities by priority, value, margin and fun.
//
// Activities are immutable values. Edits produce a new [Activity] through
// the With* methods or the field registry ([LookupField]); nothing mutates
// an activity in place.
package activity

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Activity is a trackable task.
type Activity struct {
	Name       string            `json:"name"`
	Urgency    UrgencyDescriptor `json:"urgency"`
	Importance Importance        `json:"importance"`
	Effort     Effort            `json:"effort"`
	Pleasure   Pleasure          `json:"pleasure"`
}

// New returns an activity with the given fields.
func New(name string, urgency UrgencyDescriptor, importance Importance, effort Effort, pleasure Pleasure) Activity {
	return Activity{
		Name:       name,
		Urgency:    urgency,
		Importance: importance,
		Effort:     effort,
		Pleasure:   pleasure,
	}
}

func (a Activity) WithName(name string) Activity {
	a.Name = name
	return a
}

func (a Activity) WithImportance(importance Importance) Activity {
	a.Importance = importance
	return a
}

func (a Activity) WithEffort(effort Effort) Activity {
	a.Effort = effort
	return a
}

func (a Activity) WithPleasure(pleasure Pleasure) Activity {
	a.Pleasure = pleasure
	return a
}

// WithUrgencyDelta replaces how urgency grows, keeping the interval.
func (a Activity) WithUrgencyDelta(urgency Delta[Urgency]) Activity {
	a.Urgency.Urgency = urgency
	return a
}

// WithInterval replaces the urgency interval, keeping the urgency delta.
func (a Activity) WithInterval(interval Delta[time.Time]) Activity {
	a.Urgency.Interval = interval
	return a
}

// NormalizeName trims s and collapses inner runs of whitespace to a
// single space.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// key is the case-insensitive identity used by lookups. Whitespace is
// collapsed so names typed with extra spaces still match.
func (a Activity) key() string {
	return strings.ToLower(NormalizeName(a.Name))
}

// FindByPrefix returns the index of the single activity whose lowercase
// name starts with the lowercase prefix. Zero matches fail with
// [ErrNotFound], several with [ErrAmbiguous].
func FindByPrefix(activities []Activity, prefix string) (int, error) {
	if prefix == "" {
		return -1, ErrNameRequired
	}

	prefix = strings.ToLower(NormalizeName(prefix))
	found := -1

	for i, a := range activities {
		if !strings.HasPrefix(a.key(), prefix) {
			continue
		}

		if found >= 0 {
			return -1, fmt.Errorf("%w: %q matches %q and %q", ErrAmbiguous, prefix, activities[found].Name, a.Name)
		}

		found = i
	}

	if found < 0 {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, prefix)
	}

	return found, nil
}

// DeleteByName returns a new collection without the activities whose
// lowercase name equals the lowercase name exactly, and how many were
// removed. The input slice is not modified.
func DeleteByName(activities []Activity, name string) ([]Activity, int) {
	name = strings.ToLower(NormalizeName(name))
	kept := make([]Activity, 0, len(activities))

	for _, a := range activities {
		if a.key() != name {
			kept = append(kept, a)
		}
	}

	return kept, len(activities) - len(kept)
}

// Replace returns a copy of activities with the entry at i replaced.
func Replace(activities []Activity, i int, a Activity) []Activity {
	out := slices.Clone(activities)
	out[i] = a

	return out
}

// Append returns a copy of activities with a appended.
func Append(activities []Activity, a Activity) []Activity {
	out := make([]Activity, 0, len(activities)+1)
	out = append(out, activities...)

	return append(out, a)
}
