package cli

import "errors"

// Interpreter errors.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrAmbiguousVerb  = errors.New("ambiguous command")
	ErrAddCancelled   = errors.New("add cancelled")
	ErrUsage          = errors.New("usage")
)
