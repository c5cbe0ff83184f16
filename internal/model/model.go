package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// birthdayFormat is the only accepted textual form of a birthday.
const birthdayFormat = "02.01.2006"

// ErrValidation is the common kind of all field validation failures. Callers
// can test for it with errors.Is without knowing which field was rejected.
var ErrValidation = errors.New("validation error")

// ErrNotFound is the common kind of all lookup misses.
var ErrNotFound = errors.New("not found")

// ErrPhoneFormat is returned when a phone value is not a string of exactly
// 10 digits.
var ErrPhoneFormat = fmt.Errorf("%w: Phone number must be a string containing exactly 10 digits.", ErrValidation)

// ErrBirthdayFormat is returned when a birthday value cannot be parsed as a
// valid calendar date in the DD.MM.YYYY format.
var ErrBirthdayFormat = fmt.Errorf("%w: Invalid date format. Use DD.MM.YYYY", ErrValidation)

// ErrEmptyName is returned when a record is created with an empty name.
var ErrEmptyName = fmt.Errorf("%w: Name must not be empty.", ErrValidation)

// ErrPhoneNotFound is returned when a phone number is looked up on a record
// that does not carry it.
var ErrPhoneNotFound = fmt.Errorf("%w: Phone number not found.", ErrNotFound)

// Name is the identifier of a contact. It is the key of the record in the
// address book, so it must not be empty. There is no other format constraint.
type Name struct {
	value string
}

// NewName validates and wraps a contact name.
func NewName(value string) (Name, error) {
	if value == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: value}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a validated phone number. Once constructed it never changes;
// editing a phone on a record replaces the instance.
type Phone struct {
	value string
}

// NewPhone validates and wraps a phone number. The value must consist of
// exactly 10 ASCII digits.
func NewPhone(value string) (Phone, error) {
	if len(value) != 10 {
		return Phone{}, ErrPhoneFormat
	}
	for _, c := range value {
		if c < '0' || c > '9' {
			return Phone{}, ErrPhoneFormat
		}
	}
	return Phone{value: value}, nil
}

func (p Phone) String() string {
	return p.value
}

// Birthday is a validated calendar date. It renders in the same DD.MM.YYYY
// format it was parsed from, so parsing and rendering round-trip.
type Birthday struct {
	value time.Time
}

// NewBirthday parses and wraps a birthday given as DD.MM.YYYY.
func NewBirthday(value string) (Birthday, error) {
	date, err := time.Parse(birthdayFormat, value)
	if err != nil {
		return Birthday{}, ErrBirthdayFormat
	}
	return Birthday{value: date}, nil
}

// Date returns the wrapped calendar date.
func (b Birthday) Date() time.Time {
	return b.value
}

func (b Birthday) String() string {
	return b.value.Format(birthdayFormat)
}

// Record is the data structure for a person that we know: a name, any number
// of phone numbers (duplicates are allowed) and an optional birthday. The
// name is set once at construction; renaming is not supported.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record for the given contact name.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact name as a plain string.
func (r *Record) Name() string {
	return r.name.String()
}

// Phones returns the phone numbers in the order they were added.
func (r *Record) Phones() []Phone {
	return r.phones
}

// Birthday returns the contact's birthday, or nil when none was set.
func (r *Record) Birthday() *Birthday {
	return r.birthday
}

// AddPhone validates the given value and appends it to the phone list. The
// same number may be added more than once.
func (r *Record) AddPhone(value string) error {
	phone, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// FindPhone returns the first phone whose value equals the given string, or
// nil when the record does not carry it.
func (r *Record) FindPhone(value string) *Phone {
	for i := range r.phones {
		if r.phones[i].value == value {
			return &r.phones[i]
		}
	}
	return nil
}

// RemovePhone removes the first phone matching the given value. It returns
// ErrPhoneNotFound when no phone matches.
func (r *Record) RemovePhone(value string) error {
	for i := range r.phones {
		if r.phones[i].value == value {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return nil
		}
	}
	return ErrPhoneNotFound
}

// EditPhone replaces the first occurrence of the old number with the new one.
// The new number is validated before anything is removed, so a failed edit
// leaves the record unchanged.
func (r *Record) EditPhone(oldValue, newValue string) error {
	if r.FindPhone(oldValue) == nil {
		return ErrPhoneNotFound
	}
	phone, err := NewPhone(newValue)
	if err != nil {
		return fmt.Errorf("invalid new phone number: %w", err)
	}
	if err := r.RemovePhone(oldValue); err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// AddBirthday validates the given value and stores it as the contact's
// birthday, overwriting any previous one.
func (r *Record) AddBirthday(value string) error {
	birthday, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

// String renders the record as a single human readable line.
func (r *Record) String() string {
	var builder strings.Builder
	builder.WriteString("Contact name: ")
	builder.WriteString(r.name.String())
	builder.WriteString(", phones: ")
	for i, phone := range r.phones {
		if i > 0 {
			builder.WriteString("; ")
		}
		builder.WriteString(phone.String())
	}
	if r.birthday != nil {
		builder.WriteString(", birthday: ")
		builder.WriteString(r.birthday.String())
	}
	return builder.String()
}

// AddressBook is the collection of all records, keyed by contact name.
// Iteration order is the order in which names were first added; overwriting
// a record keeps its original position.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord stores the record under its name, overwriting any record already
// stored under the same name.
func (b *AddressBook) AddRecord(record *Record) {
	name := record.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = record
}

// Find returns the record stored under the given name, or nil when there is
// none. The lookup is an exact string match.
func (b *AddressBook) Find(name string) *Record {
	return b.records[name]
}

// Delete removes the record stored under the given name. Deleting an unknown
// name is a no-op.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Records returns all records in iteration order.
func (b *AddressBook) Records() []*Record {
	records := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		records = append(records, b.records[name])
	}
	return records
}

// Len returns the number of records in the book.
func (b *AddressBook) Len() int {
	return len(b.records)
}
