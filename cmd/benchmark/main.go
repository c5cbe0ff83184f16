package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"gitlab.com/dirk.krummacker/addressbook/internal/model"
	"gitlab.com/dirk.krummacker/addressbook/internal/store"
)

// main measures how the address book and the file store behave as the number
// of contacts grows. For every size it prints the average time per operation
// in microseconds, and for save/load the total time for the whole book.
//
// Usage example on the command line:
// > go run main.go
func main() {
	fmt.Println()
	fmt.Println("  Elements       ADD      FIND      SAVE      LOAD ")
	fmt.Println("---------------------------------------------------")
	sizes := []int{1000, 5000, 10000, 50000, 100000}
	dir, err := os.MkdirTemp("", "addressbook-benchmark")
	if err != nil {
		fmt.Println("could not create temp directory", err)
		panic(err)
	}
	defer os.RemoveAll(dir)

	for _, size := range sizes {
		fmt.Printf("%10d", size)
		book := model.NewAddressBook()
		names := createShuffledNames(size)

		measure(size, func() {
			for _, name := range names {
				record, err := model.NewRecord(name)
				if err != nil {
					panic(err)
				}
				if err := record.AddPhone("0123456789"); err != nil {
					panic(err)
				}
				if err := record.AddBirthday("29.11.1974"); err != nil {
					panic(err)
				}
				book.AddRecord(record)
			}
		})

		rand.Shuffle(len(names), func(i, j int) {
			names[i], names[j] = names[j], names[i]
		})
		measure(size, func() {
			for _, name := range names {
				if book.Find(name) == nil {
					panic("contact disappeared: " + name)
				}
			}
		})

		fileStore := store.NewFileStore(filepath.Join(dir, fmt.Sprintf("book-%d.gob", size)))
		measure(1, func() {
			if err := fileStore.Save(book); err != nil {
				panic(err)
			}
		})
		measure(1, func() {
			if _, err := fileStore.Load(); err != nil {
				panic(err)
			}
		})
		fmt.Println()
	}
}

// measure runs f, divides the elapsed time by the number of operations and
// prints the average in microseconds.
func measure(operations int, f func()) {
	before := time.Now()
	f()
	elapsed := time.Since(before)
	fmt.Printf("%10d", elapsed.Microseconds()/int64(operations))
}

// createShuffledNames builds the given number of unique contact names in
// random order.
func createShuffledNames(count int) []string {
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		names = append(names, fmt.Sprintf("Contact-%06d", i))
	}
	rand.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})
	return names
}
