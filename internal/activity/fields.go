package activity

import (
	"fmt"
	"time"
)

// FieldEditor returns a copy of a with one field replaced by the parsed
// value. On error the returned activity must be ignored.
type FieldEditor func(a Activity, value string) (Activity, error)

// Field is an editable activity field.
type Field struct {
	Name  string
	Usage string
	Apply FieldEditor
}

// Fields returns the editable fields in display order. loc is used for
// dates without an explicit offset.
func Fields(loc *time.Location) []Field {
	return []Field{
		{
			Name:  "name",
			Usage: "free text",
			Apply: func(a Activity, value string) (Activity, error) {
				value = NormalizeName(value)
				if value == "" {
					return Activity{}, ErrValueRequired
				}

				return a.WithName(value), nil
			},
		},
		{
			Name:  "importance",
			Usage: "0 - 100",
			Apply: func(a Activity, value string) (Activity, error) {
				v, err := ParseImportance(value)
				if err != nil {
					return Activity{}, err
				}

				return a.WithImportance(v), nil
			},
		},
		{
			Name:  "effort",
			Usage: fmt.Sprintf("0 - %d", MaxEffort),
			Apply: func(a Activity, value string) (Activity, error) {
				v, err := ParseEffort(value)
				if err != nil {
					return Activity{}, err
				}

				return a.WithEffort(v), nil
			},
		},
		{
			Name:  "pleasure",
			Usage: "-100 - 100",
			Apply: func(a Activity, value string) (Activity, error) {
				v, err := ParsePleasure(value)
				if err != nil {
					return Activity{}, err
				}

				return a.WithPleasure(v), nil
			},
		},
		{
			Name:  "urgency",
			Usage: "initial->final",
			Apply: func(a Activity, value string) (Activity, error) {
				d, err := ParseUrgencyDelta(value)
				if err != nil {
					return Activity{}, err
				}

				return a.WithUrgencyDelta(d), nil
			},
		},
		{
			Name:  "urgency-dates",
			Usage: "start->due",
			Apply: func(a Activity, value string) (Activity, error) {
				d, err := ParseInterval(value, loc)
				if err != nil {
					return Activity{}, err
				}

				return a.WithInterval(d), nil
			},
		},
	}
}

// LookupField finds a field by exact name.
func LookupField(fields []Field, name string) (Field, error) {
	for _, f := range fields {
		if f.Name == name {
			return f, nil
		}
	}

	return Field{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// FieldNames returns the names of fields in order.
func FieldNames(fields []Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}

	return names
}
