package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"gitlab.com/dirk.krummacker/addressbook/internal/config"
)

// main blocks until the configured MySQL database accepts connections. It is
// meant for scripts that start the database and the migration together.
//
// Usage example on the command line:
// > DBHOST=localhost DBUSER=dirk DBPWD=bullo92 go run main.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(err)
		return
	}
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		fmt.Println(err)
		return
	}
	defer db.Close()

	totalWaitTime := 0
	for {
		if err := db.Ping(); err == nil {
			fmt.Println("Database is available.")
			break
		} else {
			fmt.Println(err)
		}
		totalWaitTime += 5
		fmt.Printf("Waiting %d seconds", totalWaitTime)
		fmt.Println()
		time.Sleep(5 * time.Second)
	}
}
