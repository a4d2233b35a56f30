// Package store persists the activity collection as a single JSON file.
//
// The whole collection is read once at startup and written back in full
// after every command. Writes go through [fs.FS.WriteFileAtomic], so the
// file is always either the old or the new collection.
package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/lifespace/internal/activity"
	"github.com/calvinalkan/lifespace/internal/fs"
)

const (
	filePerms = 0o600
	dirPerms  = 0o750
)

// emptyCollection is written when the data file does not exist yet.
var emptyCollection = []byte("[]\n")

// Store reads and writes the activities file.
type Store struct {
	fs   fs.FS
	path string
}

// Open returns a store for path, creating the parent directory and an
// empty collection file if they do not exist. The bool reports whether
// the file was created.
func Open(fsys fs.FS, path string) (*Store, bool, error) {
	exists, err := fsys.Exists(path)
	if err != nil {
		return nil, false, fmt.Errorf("%w %s: %w", ErrInit, path, err)
	}

	if !exists {
		mkdirErr := fsys.MkdirAll(filepath.Dir(path), dirPerms)
		if mkdirErr != nil {
			return nil, false, fmt.Errorf("%w %s: %w", ErrInit, path, mkdirErr)
		}

		writeErr := fsys.WriteFileAtomic(path, emptyCollection, filePerms)
		if writeErr != nil {
			return nil, false, fmt.Errorf("%w %s: %w", ErrInit, path, writeErr)
		}
	}

	return &Store{fs: fsys, path: path}, !exists, nil
}

// Path returns the activities file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole collection. Comments and trailing commas from
// hand edits are tolerated.
func (s *Store) Load() ([]activity.Activity, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, s.path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCorrupt, s.path, err)
	}

	var activities []activity.Activity

	err = json.Unmarshal(standardized, &activities)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCorrupt, s.path, err)
	}

	if activities == nil {
		activities = []activity.Activity{}
	}

	return activities, nil
}

// Save overwrites the file with the whole collection.
func (s *Store) Save(activities []activity.Activity) error {
	if activities == nil {
		activities = []activity.Activity{}
	}

	data, err := json.MarshalIndent(activities, "", "  ")
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, s.path, err)
	}

	err = s.fs.WriteFileAtomic(s.path, append(data, '\n'), filePerms)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, s.path, err)
	}

	return nil
}
