package catalog

import (
	"errors"
	"fmt"

	"github.com/dvolk/mscat/internal/manuscript"
)

// ErrIndexOutOfRange indicates an operation referenced an entry index
// outside the current catalog bounds.
var ErrIndexOutOfRange = errors.New("entry index out of range")

// Store is the in-memory catalog plus its backing file. Entries are
// addressed positionally: deleting an entry shifts later indices down.
// All mutation goes through Store methods, and every mutation rewrites
// the whole file.
type Store struct {
	path    string
	entries []manuscript.Entry
}

// Open loads the catalog at path into a new Store. A missing file yields
// an empty store.
func Open(path string) (*Store, error) {
	entries, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, entries: entries}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Add appends an entry to the end of the catalog, persists, and returns
// the new entry's index.
func (s *Store) Add(e manuscript.Entry) (int, error) {
	s.entries = append(s.entries, e.Clone())
	if err := s.save(); err != nil {
		return 0, err
	}
	return len(s.entries) - 1, nil
}

// Get returns the entry at index.
func (s *Store) Get(index int) (manuscript.Entry, error) {
	if err := s.checkIndex(index); err != nil {
		return manuscript.Entry{}, err
	}
	return s.entries[index].Clone(), nil
}

// Update merges a partial patch into the entry at index and persists.
// Fields absent from the patch are unchanged; a provided details payload
// replaces the prior one wholesale.
func (s *Store) Update(index int, patch manuscript.EntryPatch) (manuscript.Entry, error) {
	if err := s.checkIndex(index); err != nil {
		return manuscript.Entry{}, err
	}

	patch.Apply(&s.entries[index])
	if err := s.save(); err != nil {
		return manuscript.Entry{}, err
	}
	return s.entries[index].Clone(), nil
}

// Delete removes the entry at index, shifting subsequent entries down by
// one, and persists.
func (s *Store) Delete(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}

	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	return s.save()
}

// ListAll returns the entries in catalog order. The returned slice is a
// copy; mutating it does not touch the store.
func (s *Store) ListAll() []manuscript.Entry {
	out := make([]manuscript.Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Clone()
	}
	return out
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("%w: %d (catalog has %d entries)", ErrIndexOutOfRange, index, len(s.entries))
	}
	return nil
}

// save rewrites the backing file. If it fails, the in-memory state and
// the on-disk state diverge until the next successful save.
func (s *Store) save() error {
	return WriteFile(s.path, s.entries)
}
