// Package bot implements the interactive assistant: a line-oriented prompt
// that dispatches commands against the address book and saves the book when
// the user leaves.
package bot

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"gitlab.com/dirk.krummacker/addressbook/internal/model"
	"gitlab.com/dirk.krummacker/addressbook/internal/store"
)

// Bot runs the read-eval-print loop. One command is fully processed before
// the next line is read; nothing here is safe for concurrent use.
type Bot struct {
	book  *model.AddressBook
	store store.Store
	in    io.Reader
	out   io.Writer
	log   *zap.Logger

	// now supplies the current date for the birthdays command and is
	// replaced in tests.
	now func() time.Time
}

// New creates a bot operating on the given book and saving it to the given
// store when the user leaves.
func New(book *model.AddressBook, st store.Store, in io.Reader, out io.Writer, logger *zap.Logger) *Bot {
	return &Bot{
		book:  book,
		store: st,
		in:    in,
		out:   out,
		log:   logger,
		now:   time.Now,
	}
}

// Run reads commands until the user types close or exit (or the input ends)
// and then saves the address book. Handler errors are printed and the loop
// continues; only I/O failures end the run early.
func (b *Bot) Run() error {
	fmt.Fprintln(b.out, "Welcome to the assistant bot!")
	scanner := bufio.NewScanner(b.in)
	for {
		fmt.Fprint(b.out, color.CyanString("Enter a command: "))
		if !scanner.Scan() {
			break
		}
		command, args := parseInput(scanner.Text())
		if command == "" {
			continue
		}
		if command == "close" || command == "exit" {
			fmt.Fprintln(b.out, "Good bye!")
			break
		}
		b.log.Debug("dispatching command",
			zap.String("command", command), zap.Int("args", len(args)))
		fmt.Fprintln(b.out, b.dispatch(command, args))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := b.store.Save(b.book); err != nil {
		b.log.Error("saving address book failed", zap.Error(err))
		return fmt.Errorf("save address book: %w", err)
	}
	b.log.Info("address book saved", zap.Int("records", b.book.Len()))
	return nil
}

// dispatch runs one command and returns the text to print. Errors never
// leave this method; they are translated into their fixed messages here.
func (b *Bot) dispatch(command string, args []string) string {
	var result string
	var err error
	switch command {
	case "hello":
		result = "How can I help you?"
	case "add":
		result, err = addContact(args, b.book)
	case "change":
		result, err = changeContact(args, b.book)
	case "phone":
		result, err = showPhone(args, b.book)
	case "all":
		result = showAll(b.book)
	case "add-birthday":
		result, err = addBirthday(args, b.book)
	case "show-birthday":
		result, err = showBirthday(args, b.book)
	case "birthdays":
		result = upcomingBirthdays(b.book, b.now())
	default:
		return color.RedString("Invalid command.")
	}
	if err != nil {
		b.log.Debug("command failed",
			zap.String("command", command), zap.Error(err))
		return color.RedString(reply(err))
	}
	return result
}

// parseInput splits a line into the command name and its arguments. Only the
// command is lowercased; arguments are taken verbatim so that contact names
// keep their spelling.
func parseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
