package store

import "errors"

// Persistence errors. They are fatal for the command that hit them.
var (
	ErrRead    = errors.New("cannot read activities file")
	ErrWrite   = errors.New("cannot write activities file")
	ErrCorrupt = errors.New("invalid activities file")
	ErrInit    = errors.New("cannot initialize activities file")
)
