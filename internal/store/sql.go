package store

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"gitlab.com/dirk.krummacker/addressbook/internal/model"
)

// SQLStore persists the address book in a MySQL database, one row per
// contact plus one row per phone number. The AUTO_INCREMENT ids keep the
// book's insertion order across save and load.
type SQLStore struct {
	db *sqlx.DB
}

// contactRow mirrors one row of the contacts table.
type contactRow struct {
	Id       int64          `db:"id"`
	Name     string         `db:"name"`
	Birthday sql.NullString `db:"birthday"`
}

// phoneRow mirrors one row of the phones table.
type phoneRow struct {
	ContactId int64  `db:"contact_id"`
	Phone     string `db:"phone"`
}

// OpenDatabase opens a MySQL connection for the given data source name and
// verifies it with a ping.
func OpenDatabase(dsn string) (*sql.DB, error) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return sqlDB, nil
}

// NewSQLStore wraps the given database handle. The handle can be a real
// connection for production use or a mock database within unit tests.
func NewSQLStore(sqlDB *sql.DB) *SQLStore {
	return &SQLStore{db: sqlx.NewDb(sqlDB, "mysql")}
}

// Close releases the underlying database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Load reads all contacts and their phones and rebuilds the address book.
// Empty tables yield an empty book.
func (s *SQLStore) Load() (*model.AddressBook, error) {
	var contacts []contactRow
	if err := s.db.Select(&contacts, "SELECT id, name, birthday FROM contacts ORDER BY id"); err != nil {
		return nil, fmt.Errorf("select contacts: %w", err)
	}
	var phones []phoneRow
	if err := s.db.Select(&phones, "SELECT contact_id, phone FROM phones ORDER BY id"); err != nil {
		return nil, fmt.Errorf("select phones: %w", err)
	}

	phonesByContact := make(map[int64][]string)
	for _, row := range phones {
		phonesByContact[row.ContactId] = append(phonesByContact[row.ContactId], row.Phone)
	}
	snapshots := make([]model.RecordSnapshot, 0, len(contacts))
	for _, row := range contacts {
		snapshot := model.RecordSnapshot{
			Name:   row.Name,
			Phones: phonesByContact[row.Id],
		}
		if row.Birthday.Valid {
			snapshot.Birthday = row.Birthday.String
		}
		snapshots = append(snapshots, snapshot)
	}
	book, err := model.FromSnapshot(snapshots)
	if err != nil {
		return nil, fmt.Errorf("load address book: %w", err)
	}
	return book, nil
}

// Save replaces the database contents with the book's snapshot. The rewrite
// runs in a single transaction so that a failed save leaves the previous
// state intact.
func (s *SQLStore) Save(book *model.AddressBook) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := save(tx, book.Snapshot()); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// save writes the snapshot within the given transaction.
func save(tx *sqlx.Tx, snapshots []model.RecordSnapshot) error {
	if _, err := tx.Exec("DELETE FROM phones"); err != nil {
		return fmt.Errorf("clear phones: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM contacts"); err != nil {
		return fmt.Errorf("clear contacts: %w", err)
	}
	for _, snapshot := range snapshots {
		var birthday sql.NullString
		if snapshot.Birthday != "" {
			birthday = sql.NullString{String: snapshot.Birthday, Valid: true}
		}
		result, err := tx.Exec(
			"INSERT INTO contacts (name, birthday) VALUES (?, ?)",
			snapshot.Name, birthday,
		)
		if err != nil {
			return fmt.Errorf("insert contact %q: %w", snapshot.Name, err)
		}
		contactId, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert contact %q: %w", snapshot.Name, err)
		}
		for _, phone := range snapshot.Phones {
			if _, err := tx.Exec(
				"INSERT INTO phones (contact_id, phone) VALUES (?, ?)",
				contactId, phone,
			); err != nil {
				return fmt.Errorf("insert phone for %q: %w", snapshot.Name, err)
			}
		}
	}
	return nil
}
