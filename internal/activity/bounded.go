package activity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Range fixes the inclusive bounds of a [Bounded] value at compile time.
// Implementations are empty marker structs.
type Range interface {
	Bounds() (lo, hi int)
}

type (
	importanceRange struct{}
	effortRange     struct{}
	pleasureRange   struct{}
	urgencyRange    struct{}
)

// MaxEffort is the upper bound of [Effort].
const MaxEffort = 20

func (importanceRange) Bounds() (int, int) { return 0, 100 }
func (effortRange) Bounds() (int, int)     { return 0, MaxEffort }
func (pleasureRange) Bounds() (int, int)   { return -100, 100 }
func (urgencyRange) Bounds() (int, int)    { return 0, 100 }

// Bounded is an immutable integer validated against the bounds of R.
// The zero value holds 0, which is valid for every role defined here.
type Bounded[R Range] struct {
	value int
}

// Semantic roles.
type (
	Importance = Bounded[importanceRange]
	Effort     = Bounded[effortRange]
	Pleasure   = Bounded[pleasureRange]
	Urgency    = Bounded[urgencyRange]
)

// NewBounded validates v against R's bounds. It never clamps.
func NewBounded[R Range](v int) (Bounded[R], error) {
	var r R

	lo, hi := r.Bounds()
	if v < lo || v > hi {
		return Bounded[R]{}, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, v, lo, hi)
	}

	return Bounded[R]{value: v}, nil
}

// ParseBounded parses s as a base-10 integer and validates it.
func ParseBounded[R Range](s string) (Bounded[R], error) {
	s = strings.TrimSpace(s)

	v, err := strconv.Atoi(s)
	if err != nil {
		return Bounded[R]{}, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}

	return NewBounded[R](v)
}

func NewImportance(v int) (Importance, error) { return NewBounded[importanceRange](v) }
func NewEffort(v int) (Effort, error)         { return NewBounded[effortRange](v) }
func NewPleasure(v int) (Pleasure, error)     { return NewBounded[pleasureRange](v) }
func NewUrgency(v int) (Urgency, error)       { return NewBounded[urgencyRange](v) }

func ParseImportance(s string) (Importance, error) { return ParseBounded[importanceRange](s) }
func ParseEffort(s string) (Effort, error)         { return ParseBounded[effortRange](s) }
func ParsePleasure(s string) (Pleasure, error)     { return ParseBounded[pleasureRange](s) }
func ParseUrgency(s string) (Urgency, error)       { return ParseBounded[urgencyRange](s) }

// Int returns the underlying integer.
func (b Bounded[R]) Int() int {
	return b.value
}

// Bounds returns the inclusive range of b's role.
func (b Bounded[R]) Bounds() (lo, hi int) {
	var r R

	return r.Bounds()
}

// Equal reports whether b and other hold the same value.
func (b Bounded[R]) Equal(other Bounded[R]) bool {
	return b.value == other.value
}

func (b Bounded[R]) String() string {
	return strconv.Itoa(b.value)
}

// MarshalJSON encodes b as a bare integer.
func (b Bounded[R]) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(b.value)), nil
}

// UnmarshalJSON decodes a bare integer and re-validates the range.
// The wrapped form {"Value": n} written by older data files is accepted.
func (b *Bounded[R]) UnmarshalJSON(data []byte) error {
	var v int

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapped struct {
			Value *int `json:"value"`
		}

		err := json.Unmarshal(trimmed, &wrapped)
		if err != nil {
			return err
		}

		if wrapped.Value == nil {
			return fmt.Errorf("%w: missing value in %s", ErrNotANumber, trimmed)
		}

		v = *wrapped.Value
	} else {
		err := json.Unmarshal(trimmed, &v)
		if err != nil {
			return err
		}
	}

	parsed, err := NewBounded[R](v)
	if err != nil {
		return err
	}

	*b = parsed

	return nil
}
