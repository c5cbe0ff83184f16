// Package birthday computes congratulation dates for the upcoming-birthdays
// report: who has a birthday within the next week, and on which weekday to
// congratulate them.
package birthday

import (
	"fmt"
	"time"

	"gitlab.com/dirk.krummacker/addressbook/internal/model"
)

// window is the number of days ahead (inclusive) a birthday counts as
// upcoming. Today itself counts as well.
const window = 7

// Greeting pairs a contact name with the date on which to congratulate them.
type Greeting struct {
	Name               string
	CongratulationDate time.Time
}

// String renders the greeting as "{name}: {DD.MM.YYYY}".
func (g Greeting) String() string {
	return fmt.Sprintf("%s: %s", g.Name, g.CongratulationDate.Format("02.01.2006"))
}

// Upcoming returns a greeting for every record whose next birthday falls
// within the next 7 days, counted from the given day. Results follow the
// book's iteration order. Birthdays landing on a Saturday or Sunday are
// congratulated on the following Monday instead.
//
// The reference day is an explicit parameter rather than the system clock so
// that callers and tests control what "today" means.
func Upcoming(book *model.AddressBook, today time.Time) []Greeting {
	today = truncateToDay(today)
	var greetings []Greeting
	for _, record := range book.Records() {
		if record.Birthday() == nil {
			continue
		}
		next := nextOccurrence(record.Birthday().Date(), today)
		daysUntil := int(next.Sub(today).Hours() / 24)
		if daysUntil > window {
			continue
		}
		greetings = append(greetings, Greeting{
			Name:               record.Name(),
			CongratulationDate: shiftOffWeekend(next),
		})
	}
	return greetings
}

// nextOccurrence returns the first occurrence of the birthday's month and
// day on or after today. A birthday on February 29 normalizes to March 1 in
// non-leap years, courtesy of time.Date.
func nextOccurrence(birthday, today time.Time) time.Time {
	thisYear := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	if thisYear.Before(today) {
		return time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	}
	return thisYear
}

// shiftOffWeekend moves a Saturday or Sunday date forward to the following
// Monday and leaves weekdays untouched.
func shiftOffWeekend(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	default:
		return date
	}
}

// truncateToDay drops the time-of-day part so that date arithmetic works on
// whole days in UTC.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
