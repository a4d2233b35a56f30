package fs

import (
	"errors"
	iofs "io/fs"
	"syscall"
)

// InjectedError marks an error as intentionally injected by [Chaos].
//
// It wraps a *fs.PathError carrying a syscall.Errno, so errors.Is/As and
// os.IsPermission keep working on injected errors.
type InjectedError struct {
	Err error
}

func (e *InjectedError) Error() string {
	return e.Err.Error()
}

func (e *InjectedError) Unwrap() error {
	return e.Err
}

// IsInjected reports whether err (or any wrapped error) was injected by [Chaos].
// Returns false if err is nil.
func IsInjected(err error) bool {
	var injected *InjectedError

	return errors.As(err, &injected)
}

func inject(op, path string, errno syscall.Errno) error {
	return &InjectedError{Err: &iofs.PathError{Op: op, Path: path, Err: errno}}
}
