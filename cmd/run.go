package cmd

import (
	"fmt"

	"github.com/mjard/sciquiz/internal/app"
	"github.com/mjard/sciquiz/internal/content"
	"github.com/mjard/sciquiz/internal/notes"
	"github.com/mjard/sciquiz/internal/progress"
	"github.com/mjard/sciquiz/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	client := buildClient(cmd, st)
	progressRepo := st.ProgressRepo()

	opts := app.Options{
		Client:       client,
		ProgressSvc:  progress.NewService(progressRepo, client),
		NotesSvc:     notes.NewService(st.NoteRepo()),
		ProgressRepo: progressRepo,
		Prefs:        st.PrefsRepo(),
	}
	return app.Run(opts)
}

// openStore resolves the DB path and opens the SQLite store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// buildClient builds the content-service client, layered with request
// logging into the store.
func buildClient(cmd *cobra.Command, st *store.Store) content.Client {
	cfg := content.ConfigFromEnv()
	if u, _ := cmd.Flags().GetString("server"); u != "" {
		cfg.BaseURL = u
	}
	return content.WithLogging(content.NewHTTPClient(cfg), st.EventRepo())
}
