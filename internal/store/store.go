// Package store persists the address book between runs. The book is saved
// and loaded as a whole; stores exchange model.RecordSnapshot values with the
// model and never inspect records directly.
package store

import "gitlab.com/dirk.krummacker/addressbook/internal/model"

// Store loads and saves a complete address book. A Load with no persisted
// state returns an empty book, not an error.
type Store interface {
	Load() (*model.AddressBook, error)
	Save(book *model.AddressBook) error
}
