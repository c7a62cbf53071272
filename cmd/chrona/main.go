package main

import (
	"fmt"
	"os"

	"chrona/internal/cli"
	"chrona/internal/db"
	"chrona/internal/repository"
	"chrona/internal/service"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	// The ledger is in-memory by default: it starts empty and is lost
	// on exit unless exported. CHRONA_DB points it at a file instead.
	dbPath := os.Getenv("CHRONA_DB")
	if dbPath == "" {
		dbPath = ":memory:"
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Sessions: service.NewSessionService(sessionRepo),
		Limits:   service.NewLimitService(sessionRepo, settingsRepo),
		Exchange: service.NewExchangeService(sessionRepo, uow),
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
