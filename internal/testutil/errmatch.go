package testutil

import (
	"errors"

	"github.com/calvinalkan/lifespace/internal/activity"
	"github.com/calvinalkan/lifespace/internal/cli"
)

// errorBuckets maps model errors to the interpreter errors that may
// report them. The model only knows categories, so several validation
// errors share a bucket.
var errorBuckets = map[error][]error{
	ErrModelNotFound:  {activity.ErrNotFound},
	ErrModelAmbiguous: {activity.ErrAmbiguous},
	ErrModelCancelled: {cli.ErrAddCancelled},
	ErrModelInvalid: {
		activity.ErrOutOfRange,
		activity.ErrNotANumber,
		activity.ErrMalformedPair,
		activity.ErrInvalidDate,
		activity.ErrDueBeforeStart,
		activity.ErrUnknownField,
		activity.ErrValueRequired,
		activity.ErrUnknownOrder,
	},
}

// MatchesError reports whether got falls into the bucket of modelErr.
func MatchesError(modelErr, got error) bool {
	for _, want := range errorBuckets[modelErr] {
		if errors.Is(got, want) {
			return true
		}
	}

	return false
}
