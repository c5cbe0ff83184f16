package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"gitlab.com/dirk.krummacker/addressbook/internal/config"
	"gitlab.com/dirk.krummacker/addressbook/internal/store"
)

// Usage example on the command line:
// > DBHOST=localhost DBUSER=dirk DBPWD=bullo92 go run main.go -file=../../scripts/database.sql
func main() {
	filePtr := flag.String("file", "database.sql", "the sql file to execute")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	sqlDB, err := store.OpenDatabase(cfg.DSN())
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	db := sqlx.NewDb(sqlDB, "mysql")
	defer db.Close()

	if err := applyScript(db, *filePtr); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// applyScript reads the given file and executes every ';'-terminated
// statement in order.
func applyScript(db *sqlx.DB, path string) error {
	readFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer readFile.Close()

	fileScanner := bufio.NewScanner(readFile)
	fileScanner.Split(bufio.ScanLines)
	builder := strings.Builder{}
	for fileScanner.Scan() {
		line := fileScanner.Text()
		builder.WriteString(line)
		builder.WriteString(" ")
		if strings.Contains(line, ";") {
			if _, err := db.Exec(builder.String()); err != nil {
				return fmt.Errorf("execute statement: %w", err)
			}
			builder = strings.Builder{}
		}
	}
	return fileScanner.Err()
}
