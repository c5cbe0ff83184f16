package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gitlab.com/dirk.krummacker/addressbook/internal/bot"
	"gitlab.com/dirk.krummacker/addressbook/internal/config"
	"gitlab.com/dirk.krummacker/addressbook/internal/store"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var verbose bool

var cfg config.Config

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "assistant",
	Short: "Interactive address book assistant",
	Long: `The assistant is a line-oriented contact manager. It stores names,
phone numbers and birthdays, persists them between runs, and reports whose
birthday is coming up in the next week.

Type 'hello' at the prompt for a greeting, 'close' or 'exit' to leave.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		return initLogger()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssistant()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("assistant version %s\n", version)
	},
}

// initLogger builds the zap logger. The prompt owns the terminal, so log
// output goes to the file named in ADDRESSBOOK_LOG; without it the logger is
// a no-op.
func initLogger() error {
	if cfg.LogFile == "" {
		logger = zap.NewNop()
		return nil
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{cfg.LogFile}
	zapCfg.ErrorOutputPaths = []string{cfg.LogFile}
	if verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = zapCfg.Build()
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	return nil
}

// runAssistant wires configuration, storage and the prompt loop together.
//
// Usage example on the command line:
// > ADDRESSBOOK_FILE=/tmp/book.gob assistant
// > ADDRESSBOOK_STORE=mysql DBUSER=dirk DBPWD=bullo92 DBHOST=localhost assistant
func runAssistant() error {
	st, cleanup, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	book, err := st.Load()
	if err != nil {
		return err
	}
	logger.Info("address book loaded",
		zap.String("store", cfg.Store), zap.Int("records", book.Len()))
	return bot.New(book, st, os.Stdin, os.Stdout, logger).Run()
}

// openStore creates the persistence backend selected in the configuration.
// The returned cleanup function releases any underlying connection.
func openStore(cfg config.Config) (store.Store, func(), error) {
	switch cfg.Store {
	case config.StoreMySQL:
		sqlDB, err := store.OpenDatabase(cfg.DSN())
		if err != nil {
			return nil, nil, err
		}
		sqlStore := store.NewSQLStore(sqlDB)
		return sqlStore, func() { sqlStore.Close() }, nil
	default:
		return store.NewFileStore(cfg.File), func() {}, nil
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.AddCommand(versionCmd)
}
