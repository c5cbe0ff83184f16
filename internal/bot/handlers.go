package bot

import (
	"errors"
	"strings"
	"time"

	"gitlab.com/dirk.krummacker/addressbook/internal/birthday"
	"gitlab.com/dirk.krummacker/addressbook/internal/model"
)

// ErrInvalidArgs is returned by a handler that received the wrong number of
// arguments for its command.
var ErrInvalidArgs = errors.New("wrong number of arguments")

// ErrContactNotFound is returned when the named contact is not in the book.
// It is deliberately distinct from the model's lookup errors: a phone number
// missing inside a record is answered with the generic validation message,
// only a missing contact is answered with "Contact not found.".
var ErrContactNotFound = errors.New("contact not found")

// reply maps a handler error onto its fixed user-facing message. The mapping
// is coarse on purpose: every validation failure shares one message no
// matter which field was rejected.
func reply(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgs):
		return "Invalid command format. Use: [command] [name] [phone]"
	case errors.Is(err, ErrContactNotFound):
		return "Contact not found."
	default:
		return "Give me name and phone please."
	}
}

// addContact adds a phone to the named contact, creating the contact first
// when the name is new.
func addContact(args []string, book *model.AddressBook) (string, error) {
	if len(args) != 2 {
		return "", ErrInvalidArgs
	}
	name, phone := args[0], args[1]
	if record := book.Find(name); record != nil {
		if err := record.AddPhone(phone); err != nil {
			return "", err
		}
		return "Phone added to existing contact.", nil
	}
	record, err := model.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := record.AddPhone(phone); err != nil {
		return "", err
	}
	book.AddRecord(record)
	return "New contact added.", nil
}

// changeContact replaces one phone number of the named contact with another.
func changeContact(args []string, book *model.AddressBook) (string, error) {
	if len(args) != 3 {
		return "", ErrInvalidArgs
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]
	record := book.Find(name)
	if record == nil {
		return "", ErrContactNotFound
	}
	if err := record.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return "Contact updated.", nil
}

// showPhone lists the phone numbers of the named contact, one per line.
func showPhone(args []string, book *model.AddressBook) (string, error) {
	if len(args) != 1 {
		return "", ErrInvalidArgs
	}
	record := book.Find(args[0])
	if record == nil {
		return "", ErrContactNotFound
	}
	lines := make([]string, 0, len(record.Phones()))
	for _, phone := range record.Phones() {
		lines = append(lines, phone.String())
	}
	return strings.Join(lines, "\n"), nil
}

// showAll renders every record in the book, one line per contact.
func showAll(book *model.AddressBook) string {
	if book.Len() == 0 {
		return "Address book is empty."
	}
	lines := make([]string, 0, book.Len())
	for _, record := range book.Records() {
		lines = append(lines, record.String())
	}
	return strings.Join(lines, "\n")
}

// addBirthday sets the birthday of the named contact, overwriting any
// previous one.
func addBirthday(args []string, book *model.AddressBook) (string, error) {
	if len(args) != 2 {
		return "", ErrInvalidArgs
	}
	name, date := args[0], args[1]
	record := book.Find(name)
	if record == nil {
		return "", ErrContactNotFound
	}
	if err := record.AddBirthday(date); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

// showBirthday shows the birthday of the named contact. A missing contact
// and a contact without a birthday get the same answer.
func showBirthday(args []string, book *model.AddressBook) (string, error) {
	if len(args) != 1 {
		return "", ErrInvalidArgs
	}
	record := book.Find(args[0])
	if record == nil || record.Birthday() == nil {
		return "Birthday not found.", nil
	}
	return record.Birthday().String(), nil
}

// upcomingBirthdays lists the contacts to congratulate within the next week,
// counted from the given day.
func upcomingBirthdays(book *model.AddressBook, today time.Time) string {
	greetings := birthday.Upcoming(book, today)
	if len(greetings) == 0 {
		return "No upcoming birthdays in the next week."
	}
	lines := make([]string, 0, len(greetings))
	for _, greeting := range greetings {
		lines = append(lines, greeting.String())
	}
	return strings.Join(lines, "\n")
}
