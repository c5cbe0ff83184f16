package store

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gitlab.com/dirk.krummacker/addressbook/internal/model"
)

// FileStore persists the address book as a gob-encoded snapshot in a single
// file. The format is private to this program; there is no cross-version
// compatibility guarantee.
type FileStore struct {
	path string
}

// NewFileStore creates a file store writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the snapshot file and rebuilds the address book. A missing file
// is not an error: the program then simply starts with an empty book.
func (s *FileStore) Load() (*model.AddressBook, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.NewAddressBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	var snapshots []model.RecordSnapshot
	if err := gob.NewDecoder(f).Decode(&snapshots); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	book, err := model.FromSnapshot(snapshots)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}
	return book, nil
}

// Save writes the book's snapshot to the file, replacing whatever was there.
func (s *FileStore) Save(book *model.AddressBook) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", s.path, err)
	}
	if err := gob.NewEncoder(f).Encode(book.Snapshot()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	return f.Close()
}
