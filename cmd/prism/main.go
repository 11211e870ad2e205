package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"prism/internal/bridge"
	"prism/internal/config"
	"prism/internal/layouts"
	"prism/internal/storage"
	"prism/internal/store"
	"prism/internal/telemetry"
	"prism/internal/ui"
	"prism/internal/workspace"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			logger.Warn("telemetry shutdown", "err", err)
		}
	}()

	files := storage.NewStoreAt(cfg.StateDir)
	if cfg.StateDir == "" {
		files, err = storage.NewStore()
		if err != nil {
			return err
		}
	}

	persisted, err := files.Load(cfg.Workspace)
	if err != nil {
		logger.Warn("persisted state unreadable, starting fresh", "err", err)
	}
	initial := bridge.InitialJSON(persisted, cfg.InitialLayout, cfg.MaxTabs, func(err error) {
		logger.Warn("persisted state rejected, starting fresh", "err", err)
	})

	st := store.New(initial, cfg.MaxTabs)

	registry := layouts.NewRegistry()
	if err := ui.RegisterDemoLayouts(registry); err != nil {
		return err
	}

	model := ui.New(st, registry, logger)

	br := bridge.New(bridge.Options{
		Interval: cfg.Debounce(),
		MaxTabs:  cfg.MaxTabs,
		Emit: func(w *workspace.Workspace) {
			if err := files.Save(cfg.Workspace, w); err != nil {
				logger.Error("persist workspace", "err", err)
			}
		},
		OnError: model.SetSyncError,
		Logger:  logger,
	})
	st.SetOnChange(br.Schedule)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, runErr := p.Run()

	// Flush the debounce window so the final layout is never lost on exit.
	br.Flush()
	br.Stop()
	return runErr
}

// newLogger logs to the file named by PRISM_DEBUG, or nowhere. Logging to
// the terminal would fight the alternate screen.
func newLogger() *log.Logger {
	path := os.Getenv("PRISM_DEBUG")
	if path == "" {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard)
	}
	logger := log.New(f)
	logger.SetReportTimestamp(true)
	return logger
}
