// Package library manages the named collection of crosshair profiles the
// application owns for its lifetime. The collection lives in memory and is
// flushed to a JSON document on explicit save; every profile field is
// serialized explicitly so older files stay readable as the model grows.
package library

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/cs2cfg/crosshairctl/lib/crosshair"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNotFound reports a profile name absent from the library.
	ErrNotFound = oops.Errorf("profile not found")

	// ErrDuplicateName reports an attempt to add a profile under a name
	// already in use.
	ErrDuplicateName = oops.Errorf("profile name already in use")
)

// Entry is one named profile. OriginalCode preserves the share code an
// imported profile came from; profiles created in the editor have none
// until first encoded.
type Entry struct {
	Name         string            `json:"name"`
	Profile      crosshair.Profile `json:"profile"`
	OriginalCode string            `json:"original_code,omitempty"`
	AddedAt      time.Time         `json:"added_at"`
}

// Library is the in-memory profile collection bound to a backing file.
// It is owned by the application layer; the codec never touches it.
type Library struct {
	path    string
	entries map[string]Entry
}

// Open loads the library at path, or starts an empty one if the file does
// not exist yet. A file that exists but cannot be parsed is an error, not
// an empty library; silently discarding a user's collection is worse than
// failing.
func Open(path string) (*Library, error) {
	lib := &Library{
		path:    path,
		entries: make(map[string]Entry),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", path).Debug("No profile library yet, starting empty")
			return lib, nil
		}
		return nil, oops.With("path", path).Wrapf(err, "reading profile library")
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, oops.With("path", path).Wrapf(err, "parsing profile library")
	}
	for _, e := range entries {
		lib.entries[e.Name] = e
	}

	log.WithField("profiles", len(lib.entries)).Debug("Profile library loaded")
	return lib, nil
}

// Save flushes the collection to the backing file, sorted by name so the
// document diffs cleanly under version control.
func (l *Library) Save() error {
	entries := l.List()
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return oops.Wrapf(err, "serializing profile library")
	}

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return oops.With("path", l.path).Wrapf(err, "creating library directory")
		}
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return oops.With("path", l.path).Wrapf(err, "writing profile library")
	}

	log.WithFields(logrus.Fields{
		"path":     l.path,
		"profiles": len(entries),
	}).Debug("Profile library saved")
	return nil
}

// Add stores a profile under name. The profile must be valid and the name
// unused.
func (l *Library) Add(name string, p crosshair.Profile, originalCode string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, exists := l.entries[name]; exists {
		return oops.With("name", name).Wrapf(ErrDuplicateName, "profile %q", name)
	}
	l.entries[name] = Entry{
		Name:         name,
		Profile:      p,
		OriginalCode: originalCode,
		AddedAt:      time.Now().UTC(),
	}
	return nil
}

// Get returns the entry stored under name.
func (l *Library) Get(name string) (Entry, error) {
	e, ok := l.entries[name]
	if !ok {
		return Entry{}, oops.With("name", name).Wrapf(ErrNotFound, "profile %q", name)
	}
	return e, nil
}

// Rename moves an entry to a new unused name.
func (l *Library) Rename(oldName, newName string) error {
	e, ok := l.entries[oldName]
	if !ok {
		return oops.With("name", oldName).Wrapf(ErrNotFound, "profile %q", oldName)
	}
	if oldName == newName {
		return nil
	}
	if _, exists := l.entries[newName]; exists {
		return oops.With("name", newName).Wrapf(ErrDuplicateName, "profile %q", newName)
	}
	delete(l.entries, oldName)
	e.Name = newName
	l.entries[newName] = e
	return nil
}

// Remove deletes the entry stored under name.
func (l *Library) Remove(name string) error {
	if _, ok := l.entries[name]; !ok {
		return oops.With("name", name).Wrapf(ErrNotFound, "profile %q", name)
	}
	delete(l.entries, name)
	return nil
}

// List returns all entries sorted by name.
func (l *Library) List() []Entry {
	entries := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Len returns the number of stored profiles.
func (l *Library) Len() int {
	return len(l.entries)
}
