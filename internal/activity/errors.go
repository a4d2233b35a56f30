package activity

import "errors"

// Validation errors. All are recoverable: interactive flows re-prompt and
// edits leave the activity unchanged.
var (
	ErrOutOfRange     = errors.New("value out of range")
	ErrNotANumber     = errors.New("not a number")
	ErrMalformedPair  = errors.New(`expected "start->end"`)
	ErrInvalidDate    = errors.New("invalid date")
	ErrDueBeforeStart = errors.New("due date is before start date")
	ErrUnknownField   = errors.New("unknown field")
	ErrValueRequired  = errors.New("value is required")
)

// Lookup errors.
var (
	ErrNameRequired = errors.New("activity name is required")
	ErrNotFound     = errors.New("activity not found")
	ErrAmbiguous    = errors.New("activity name is ambiguous")
)
