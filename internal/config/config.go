// Package config reads the program configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Store backend names accepted in ADDRESSBOOK_STORE.
const (
	StoreFile  = "file"
	StoreMySQL = "mysql"
)

// Config holds everything the assistant reads from its environment.
//
// Usage example on the command line:
// > ADDRESSBOOK_STORE=mysql DBUSER=dirk DBPWD=bullo92 DBHOST=localhost assistant
type Config struct {
	// Store selects the persistence backend, either "file" or "mysql".
	Store string `env:"ADDRESSBOOK_STORE" envDefault:"file"`
	// File is the snapshot path used by the file backend.
	File string `env:"ADDRESSBOOK_FILE" envDefault:"addressbook.gob"`
	// LogFile enables logging to the given path; logging is off when empty,
	// because the terminal belongs to the prompt.
	LogFile string `env:"ADDRESSBOOK_LOG"`

	DBUser string `env:"DBUSER"`
	DBPwd  string `env:"DBPWD"`
	DBHost string `env:"DBHOST" envDefault:"localhost"`
	DBName string `env:"DBNAME" envDefault:"test"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Store != StoreFile && cfg.Store != StoreMySQL {
		return Config{}, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
	return cfg, nil
}

// DSN builds the MySQL data source name from the database settings.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s", c.DBUser, c.DBPwd, c.DBHost, c.DBName)
}
