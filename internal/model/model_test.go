package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewPhoneValid constructs phones from valid 10-digit strings. It expects
// that construction succeeds and the rendered form equals the input.
func TestNewPhoneValid(t *testing.T) {
	for _, value := range []string{"0123456789", "9999999999", "0000000000"} {
		phone, err := NewPhone(value)
		assert.NoError(t, err, "value: "+value)
		assert.Equal(t, value, phone.String())
	}
}

// TestNewPhoneInvalid constructs phones from strings that are too short, too
// long or contain non-digits. It expects that every construction fails with
// a validation error.
func TestNewPhoneInvalid(t *testing.T) {
	invalidValues := []string{
		"",
		"123",
		"12345678901", // 11 digits
		"12345678a9",
		"123456789 ",
		"+420123456",
	}
	for _, value := range invalidValues {
		_, err := NewPhone(value)
		assert.ErrorIs(t, err, ErrValidation, "value: "+value)
	}
}

// TestNewBirthdayRoundTrip parses valid DD.MM.YYYY strings. It expects that
// rendering gives back exactly the parsed input.
func TestNewBirthdayRoundTrip(t *testing.T) {
	for _, value := range []string{"29.11.1974", "01.01.2000", "29.02.2024", "31.12.1999"} {
		birthday, err := NewBirthday(value)
		assert.NoError(t, err, "value: "+value)
		assert.Equal(t, value, birthday.String())
	}
}

// TestNewBirthdayInvalid parses malformed and impossible dates. It expects
// that every construction fails with a validation error.
func TestNewBirthdayInvalid(t *testing.T) {
	invalidValues := []string{
		"",
		"1974-11-29",
		"29/11/1974",
		"32.01.2000",
		"29.02.2023", // not a leap year
		"00.01.2000",
		"banana",
	}
	for _, value := range invalidValues {
		_, err := NewBirthday(value)
		assert.ErrorIs(t, err, ErrValidation, "value: "+value)
	}
}

// TestNewRecordEmptyName creates a record without a name. It expects that
// construction fails with a validation error.
func TestNewRecordEmptyName(t *testing.T) {
	_, err := NewRecord("")
	assert.ErrorIs(t, err, ErrValidation)
}

// TestRecordAddAndFindPhone adds phones, including a duplicate, to a record.
// It expects that all additions are kept in order and that lookup returns
// the first match.
func TestRecordAddAndFindPhone(t *testing.T) {
	record, err := NewRecord("Erika Mustermann")
	assert.NoError(t, err)
	assert.NoError(t, record.AddPhone("0123456789"))
	assert.NoError(t, record.AddPhone("9876543210"))
	assert.NoError(t, record.AddPhone("0123456789")) // duplicates are allowed
	assert.Len(t, record.Phones(), 3)
	assert.NotNil(t, record.FindPhone("9876543210"))
	assert.Nil(t, record.FindPhone("1111111111"))
}

// TestRecordRemovePhone removes an existing and then a missing phone. It
// expects that only the first matching phone is removed and that removing an
// unknown number fails with a not-found error.
func TestRecordRemovePhone(t *testing.T) {
	record, _ := NewRecord("Erika Mustermann")
	record.AddPhone("0123456789")
	record.AddPhone("0123456789")
	record.AddPhone("9876543210")

	assert.NoError(t, record.RemovePhone("0123456789"))
	assert.Len(t, record.Phones(), 2)
	assert.Equal(t, "0123456789", record.Phones()[0].String())
	assert.Equal(t, "9876543210", record.Phones()[1].String())

	assert.ErrorIs(t, record.RemovePhone("5555555555"), ErrNotFound)
}

// TestRecordEditPhone replaces an existing phone with a valid new one. It
// expects that the old number is gone and the new number is appended.
func TestRecordEditPhone(t *testing.T) {
	record, _ := NewRecord("Erika Mustermann")
	record.AddPhone("0123456789")
	record.AddPhone("9876543210")

	assert.NoError(t, record.EditPhone("0123456789", "5555555555"))
	assert.Nil(t, record.FindPhone("0123456789"))
	assert.Len(t, record.Phones(), 2)
	assert.Equal(t, "9876543210", record.Phones()[0].String())
	assert.Equal(t, "5555555555", record.Phones()[1].String())
}

// TestRecordEditPhoneInvalidNew edits a phone with an invalid replacement.
// It expects a validation error and that the phone list is completely
// unchanged, since validation must happen before any mutation.
func TestRecordEditPhoneInvalidNew(t *testing.T) {
	record, _ := NewRecord("Erika Mustermann")
	record.AddPhone("0123456789")

	err := record.EditPhone("0123456789", "not-a-phone")
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorContains(t, err, "invalid new phone number")
	assert.Len(t, record.Phones(), 1)
	assert.Equal(t, "0123456789", record.Phones()[0].String())
}

// TestRecordEditPhoneMissingOld edits a phone that the record does not
// carry. It expects a not-found error and an unchanged phone list.
func TestRecordEditPhoneMissingOld(t *testing.T) {
	record, _ := NewRecord("Erika Mustermann")
	record.AddPhone("0123456789")

	assert.ErrorIs(t, record.EditPhone("1111111111", "5555555555"), ErrNotFound)
	assert.Len(t, record.Phones(), 1)
	assert.Equal(t, "0123456789", record.Phones()[0].String())
}

// TestRecordAddBirthday sets a birthday twice. It expects that the second
// value overwrites the first and that invalid values are rejected.
func TestRecordAddBirthday(t *testing.T) {
	record, _ := NewRecord("Erika Mustermann")
	assert.Nil(t, record.Birthday())

	assert.NoError(t, record.AddBirthday("02.03.1969"))
	assert.Equal(t, "02.03.1969", record.Birthday().String())

	assert.NoError(t, record.AddBirthday("04.03.1969"))
	assert.Equal(t, "04.03.1969", record.Birthday().String())

	assert.ErrorIs(t, record.AddBirthday("1969-03-02"), ErrValidation)
	assert.Equal(t, "04.03.1969", record.Birthday().String())
}

// TestRecordString renders records with and without a birthday. It expects
// the single-line format with phones separated by semicolons.
func TestRecordString(t *testing.T) {
	record, _ := NewRecord("Erika Mustermann")
	record.AddPhone("0123456789")
	record.AddPhone("9876543210")
	assert.Equal(t,
		"Contact name: Erika Mustermann, phones: 0123456789; 9876543210",
		record.String())

	record.AddBirthday("02.03.1969")
	assert.Equal(t,
		"Contact name: Erika Mustermann, phones: 0123456789; 9876543210, birthday: 02.03.1969",
		record.String())
}

// TestAddressBookFind looks up a stored and a missing name. It expects that
// the stored record comes back and the missing name yields nil.
func TestAddressBookFind(t *testing.T) {
	book := NewAddressBook()
	record, _ := NewRecord("Aaron")
	book.AddRecord(record)

	assert.Same(t, record, book.Find("Aaron"))
	assert.Nil(t, book.Find("Berta"))
	assert.Nil(t, book.Find("aaron"), "lookup is an exact string match")
}

// TestAddressBookOverwrite adds two records under the same name. It expects
// that the second replaces the first and keeps its iteration position.
func TestAddressBookOverwrite(t *testing.T) {
	book := NewAddressBook()
	first, _ := NewRecord("Aaron")
	book.AddRecord(first)
	other, _ := NewRecord("Berta")
	book.AddRecord(other)
	second, _ := NewRecord("Aaron")
	second.AddPhone("0123456789")
	book.AddRecord(second)

	assert.Equal(t, 2, book.Len())
	assert.Same(t, second, book.Find("Aaron"))
	records := book.Records()
	assert.Equal(t, "Aaron", records[0].Name())
	assert.Equal(t, "Berta", records[1].Name())
}

// TestAddressBookDelete deletes a stored and then an unknown name. It
// expects that the record disappears and that deleting an unknown name is a
// silent no-op.
func TestAddressBookDelete(t *testing.T) {
	book := NewAddressBook()
	record, _ := NewRecord("Aaron")
	book.AddRecord(record)

	book.Delete("Aaron")
	assert.Nil(t, book.Find("Aaron"))
	assert.Equal(t, 0, book.Len())
	assert.Empty(t, book.Records())

	book.Delete("Aaron") // no-op
	assert.Equal(t, 0, book.Len())
}

// TestAddressBookIterationOrder adds several records. It expects that
// Records returns them in insertion order regardless of name ordering.
func TestAddressBookIterationOrder(t *testing.T) {
	book := NewAddressBook()
	for _, name := range []string{"Carla", "Aaron", "Berta"} {
		record, _ := NewRecord(name)
		book.AddRecord(record)
	}
	records := book.Records()
	assert.Len(t, records, 3)
	assert.Equal(t, "Carla", records[0].Name())
	assert.Equal(t, "Aaron", records[1].Name())
	assert.Equal(t, "Berta", records[2].Name())
}
