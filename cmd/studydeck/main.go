package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/omripeer/studydeck/internal/api"
	"github.com/omripeer/studydeck/internal/cli"
	"github.com/omripeer/studydeck/internal/db"
	"github.com/omripeer/studydeck/internal/i18n"
	"github.com/omripeer/studydeck/internal/prefs"
	"github.com/omripeer/studydeck/internal/undo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env next to the binary; real env vars win.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.studydeck/studydeck.db
	dbPath := os.Getenv("STUDYDECK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".studydeck", "studydeck.db")
	}

	// Determine where course archives land
	downloadDir := os.Getenv("STUDYDECK_DOWNLOADS")
	if downloadDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		downloadDir = filepath.Join(home, ".studydeck", "downloads")
	}

	// Open preference database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	store, err := prefs.NewStore(context.Background(), database)
	if err != nil {
		return fmt.Errorf("loading preferences: %w", err)
	}

	client := api.NewClient(api.LoadConfig())

	app := &cli.App{
		API:         client,
		Prefs:       store,
		I18n:        i18n.NewProvider(store),
		Undo:        undo.NewController(),
		Queries:     cli.NewQueries(client),
		DownloadDir: downloadDir,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
