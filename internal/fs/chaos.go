package fs

import (
	"math/rand"
	"os"
	"sync"
	"syscall"
)

// ChaosConfig controls fault injection probabilities.
// Each rate is a float64 from 0.0 (never) to 1.0 (always).
type ChaosConfig struct {
	ReadFailRate  float64 // Fail ReadFile
	WriteFailRate float64 // Fail WriteFileAtomic
	MkdirFailRate float64 // Fail MkdirAll
	StatFailRate  float64 // Fail Exists
}

// PathState tracks the fault state of a path for consistent error injection.
type PathState int

const (
	// PathNormal means no persistent fault. This is the zero value, so
	// untracked paths are normal.
	PathNormal PathState = iota
	// PathIOError is sticky: every operation on the path returns EIO.
	PathIOError
	// PathReadOnly is sticky for writes: writes return EROFS, reads succeed.
	PathReadOnly
)

// Chaos wraps an [FS] and injects failures for testing.
//
// Errors are state-aware: a path marked with [Chaos.SetPathState] keeps
// failing until reset. Chaos never injects ENOENT; missing-path errors come
// from the wrapped FS. Injected writes never touch the wrapped FS, so a
// failed write leaves the previous file contents in place.
type Chaos struct {
	fs     FS
	config ChaosConfig

	mu         sync.Mutex
	rng        *rand.Rand
	pathStates map[string]PathState
	faults     int
}

// NewChaos creates a new Chaos filesystem wrapping the given [FS].
// The seed controls random fault injection for reproducibility.
func NewChaos(fs FS, seed int64, config ChaosConfig) *Chaos {
	return &Chaos{
		fs:         fs,
		config:     config,
		rng:        rand.New(rand.NewSource(seed)),
		pathStates: make(map[string]PathState),
	}
}

// SetPathState marks path with a sticky fault state.
func (c *Chaos) SetPathState(path string, state PathState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if state == PathNormal {
		delete(c.pathStates, path)

		return
	}

	c.pathStates[path] = state
}

// Faults returns the number of injected faults so far.
func (c *Chaos) Faults() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.faults
}

// fail decides whether op on path fails and with which errno.
func (c *Chaos) fail(path string, write bool, rate float64) (syscall.Errno, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.pathStates[path] {
	case PathIOError:
		c.faults++

		return syscall.EIO, true
	case PathReadOnly:
		if write {
			c.faults++

			return syscall.EROFS, true
		}
	}

	if rate > 0 && c.rng.Float64() < rate {
		c.faults++

		if write {
			return []syscall.Errno{syscall.EIO, syscall.ENOSPC, syscall.EACCES}[c.rng.Intn(3)], true
		}

		return []syscall.Errno{syscall.EIO, syscall.EACCES}[c.rng.Intn(2)], true
	}

	return 0, false
}

func (c *Chaos) ReadFile(path string) ([]byte, error) {
	if errno, ok := c.fail(path, false, c.config.ReadFailRate); ok {
		return nil, inject("read", path, errno)
	}

	return c.fs.ReadFile(path)
}

func (c *Chaos) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if errno, ok := c.fail(path, true, c.config.WriteFailRate); ok {
		return inject("write", path, errno)
	}

	return c.fs.WriteFileAtomic(path, data, perm)
}

func (c *Chaos) MkdirAll(path string, perm os.FileMode) error {
	if errno, ok := c.fail(path, true, c.config.MkdirFailRate); ok {
		return inject("mkdir", path, errno)
	}

	return c.fs.MkdirAll(path, perm)
}

func (c *Chaos) Exists(path string) (bool, error) {
	if errno, ok := c.fail(path, false, c.config.StatFailRate); ok {
		return false, inject("stat", path, errno)
	}

	return c.fs.Exists(path)
}
