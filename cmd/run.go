package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/codifymate/caprep/internal/api"
	"github.com/codifymate/caprep/internal/app"
	"github.com/codifymate/caprep/internal/auth"
	"github.com/codifymate/caprep/internal/config"
	"github.com/codifymate/caprep/internal/explain"
	"github.com/codifymate/caprep/internal/llm"
	"github.com/codifymate/caprep/internal/store"
)

// runApp wires the full dependency graph and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	client := api.New(cfg.API.BaseURL, cfg.API.Timeout)
	manager := auth.NewManager(client, auth.NewFileStorage(credentialsPath(cfg)))

	// The local LLM provider is optional: without one, explanations come
	// only from the backend.
	var provider llm.Provider
	if llmCfg, ok := llm.DiscoverConfig(); ok {
		provider, err = llm.NewProvider(context.Background(), llmCfg, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Offline explanations will be unavailable.")
			provider = nil
		}
	}

	explainSvc := explain.NewService(client, provider, explain.DefaultConfig())

	return app.Run(app.Deps{
		Client:     client,
		Manager:    manager,
		Events:     st.EventRepo(),
		Snapshots:  st.SnapshotRepo(),
		Explain:    explainSvc,
		ExamBudget: cfg.Exam.Budget,
	})
}

// credentialsPath resolves the token file, honoring CAPREP_CREDENTIALS.
func credentialsPath(cfg *config.Config) string {
	if p := os.Getenv("CAPREP_CREDENTIALS"); p != "" {
		return p
	}
	return filepath.Join(cfg.Data.Dir, "credentials.json")
}
