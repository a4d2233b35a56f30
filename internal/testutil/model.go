// Package testutil provides a reference model and random operations for
// model-vs-interpreter behavior tests.
package testutil

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/calvinalkan/lifespace/internal/activity"
)

// Model errors. Only the category matters when comparing with the
// interpreter, see [MatchesError].
var (
	ErrModelNotFound  = errors.New("model: not found")
	ErrModelAmbiguous = errors.New("model: ambiguous")
	ErrModelInvalid   = errors.New("model: invalid")
	ErrModelCancelled = errors.New("model: cancelled")
)

// Record is the time-independent part of an activity.
// Intentionally flat so correctness is obvious.
type Record struct {
	Name        string
	Importance  int
	Effort      int
	Pleasure    int
	UrgencyFrom int
	UrgencyTo   int
}

// RecordOf extracts the record of a.
func RecordOf(a activity.Activity) Record {
	return Record{
		Name:        a.Name,
		Importance:  a.Importance.Int(),
		Effort:      a.Effort.Int(),
		Pleasure:    a.Pleasure.Int(),
		UrgencyFrom: a.Urgency.Urgency.Start.Int(),
		UrgencyTo:   a.Urgency.Urgency.End.Int(),
	}
}

// RecordsOf extracts the records of activities in order.
func RecordsOf(activities []activity.Activity) []Record {
	out := make([]Record, len(activities))
	for i, a := range activities {
		out[i] = RecordOf(a)
	}

	return out
}

// Model is the expected collection.
type Model struct {
	records []Record
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{records: []Record{}}
}

// Records returns a copy of the records in order.
func (m *Model) Records() []Record {
	return slices.Clone(m.records)
}

// Names returns the record names in order.
func (m *Model) Names() []string {
	names := make([]string, len(m.records))
	for i, r := range m.records {
		names[i] = r.Name
	}

	return names
}

// Add appends r.
func (m *Model) Add(r Record) error {
	if !r.valid() {
		return ErrModelInvalid
	}

	r.Name = normalize(r.Name)
	m.records = append(m.records, r)

	return nil
}

// Lookup returns the index of the only record whose name starts with
// prefix, ignoring case.
func (m *Model) Lookup(prefix string) (int, error) {
	prefix = strings.ToLower(normalize(prefix))
	matches := []int{}

	for i, r := range m.records {
		if strings.HasPrefix(strings.ToLower(r.Name), prefix) {
			matches = append(matches, i)
		}
	}

	switch len(matches) {
	case 0:
		return -1, ErrModelNotFound
	case 1:
		return matches[0], nil
	default:
		return -1, ErrModelAmbiguous
	}
}

// Edit sets field of the record matching prefix.
func (m *Model) Edit(prefix, field, value string) error {
	i, err := m.Lookup(prefix)
	if err != nil {
		return err
	}

	r := m.records[i]

	switch field {
	case "name":
		if normalize(value) == "" {
			return ErrModelInvalid
		}

		r.Name = normalize(value)
	case "importance":
		r.Importance, err = atoi(value)
	case "effort":
		r.Effort, err = atoi(value)
	case "pleasure":
		r.Pleasure, err = atoi(value)
	case "urgency":
		parts := strings.Split(value, "->")
		if len(parts) != 2 {
			return ErrModelInvalid
		}

		r.UrgencyFrom, err = atoi(parts[0])
		if err == nil {
			r.UrgencyTo, err = atoi(parts[1])
		}
	default:
		return ErrModelInvalid
	}

	if err != nil || !r.valid() {
		return ErrModelInvalid
	}

	m.records[i] = r

	return nil
}

// Delete removes every record named name, ignoring case.
func (m *Model) Delete(name string) error {
	before := len(m.records)
	m.records = slices.DeleteFunc(m.records, func(r Record) bool {
		return strings.EqualFold(r.Name, normalize(name))
	})

	if len(m.records) == before {
		return ErrModelNotFound
	}

	return nil
}

// View succeeds for an empty prefix or a unique match.
func (m *Model) View(prefix string) error {
	if prefix == "" {
		return nil
	}

	_, err := m.Lookup(prefix)

	return err
}

// List succeeds for known listings.
func (m *Model) List(variant string) error {
	switch variant {
	case "", "priority", "value", "margin", "fun":
		return nil
	default:
		return ErrModelInvalid
	}
}

func (r Record) valid() bool {
	in := func(v, lo, hi int) bool { return v >= lo && v <= hi }

	return in(r.Importance, 0, 100) &&
		in(r.Effort, 0, 20) &&
		in(r.Pleasure, -100, 100) &&
		in(r.UrgencyFrom, 0, 100) &&
		in(r.UrgencyTo, 0, 100)
}

// normalize collapses whitespace runs the way typed names are stored.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func atoi(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrModelInvalid
	}

	return v, nil
}
