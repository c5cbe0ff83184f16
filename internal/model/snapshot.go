package model

import "fmt"

// RecordSnapshot is the self-contained, storage-friendly form of one record.
// Phones and the birthday are carried as their validated textual forms; an
// empty birthday string means the contact has no birthday set.
type RecordSnapshot struct {
	Name     string
	Phones   []string
	Birthday string
}

// Snapshot returns a self-contained copy of all records in iteration order.
// Stores persist this value instead of reaching into the book.
func (b *AddressBook) Snapshot() []RecordSnapshot {
	snapshots := make([]RecordSnapshot, 0, b.Len())
	for _, record := range b.Records() {
		snapshot := RecordSnapshot{Name: record.Name()}
		for _, phone := range record.Phones() {
			snapshot.Phones = append(snapshot.Phones, phone.String())
		}
		if record.Birthday() != nil {
			snapshot.Birthday = record.Birthday().String()
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots
}

// FromSnapshot rebuilds an address book from persisted snapshots. Every field
// runs through its validator again, so a tampered or stale snapshot cannot
// smuggle invalid values into the book.
func FromSnapshot(snapshots []RecordSnapshot) (*AddressBook, error) {
	book := NewAddressBook()
	for _, snapshot := range snapshots {
		record, err := NewRecord(snapshot.Name)
		if err != nil {
			return nil, fmt.Errorf("restore record %q: %w", snapshot.Name, err)
		}
		for _, phone := range snapshot.Phones {
			if err := record.AddPhone(phone); err != nil {
				return nil, fmt.Errorf("restore record %q: %w", snapshot.Name, err)
			}
		}
		if snapshot.Birthday != "" {
			if err := record.AddBirthday(snapshot.Birthday); err != nil {
				return nil, fmt.Errorf("restore record %q: %w", snapshot.Name, err)
			}
		}
		book.AddRecord(record)
	}
	return book, nil
}
