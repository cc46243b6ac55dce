package root

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"levelup/internal/config"
	"levelup/internal/sheets"
	"levelup/internal/storage"
	"levelup/internal/syncer"
)

// app bundles what a command needs: settings, logger and a syncer over the
// configured backend.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	syn    *syncer.Syncer
	close  func()
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(settingsPath)
	if err != nil {
		return nil, err
	}
	logger := config.NewLogger(cfg.Env.LogLevel, nil)

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	syn := syncer.New(store, syncer.WithLogger(logger), syncer.WithTimeout(cfg.Env.Timeout))
	return &app{cfg: cfg, logger: logger, syn: syn, close: closeStore}, nil
}

// openStore picks the backend. An unconfigured sheets backend yields a nil
// store so the syncer reports ErrNotConfigured.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (sheets.Store, func(), error) {
	s := cfg.Settings
	switch s.Backend {
	case config.BackendSQLite:
		wb, err := openWorkbook(ctx, s.WorkbookPath, logger)
		if err != nil {
			return nil, nil, err
		}
		return wb, func() { _ = wb.Close() }, nil
	default:
		if err := s.Validate(); err != nil {
			return nil, func() {}, nil
		}
		client, err := sheets.NewClient(ctx, s.SheetID, s.APIKey,
			sheets.WithBaseURL(cfg.Env.APIBaseURL),
			sheets.WithTimeout(cfg.Env.Timeout),
			sheets.WithLogger(logger),
		)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil
	}
}

func openWorkbook(ctx context.Context, path string, logger *slog.Logger) (*storage.Workbook, error) {
	if path == "" {
		var err error
		if path, err = storage.DefaultWorkbookPath(); err != nil {
			return nil, err
		}
	}
	return storage.OpenWorkbook(ctx, path, logger)
}

// load connects and pulls, turning store errors into the user-facing text.
func (a *app) load(ctx context.Context) (syncer.PullReport, error) {
	report, err := a.syn.Connect(ctx)
	if err != nil {
		return report, userError(err)
	}
	return report, nil
}

func userError(err error) error {
	switch {
	case errors.Is(err, syncer.ErrNotConfigured):
		return fmt.Errorf("%w (levelup settings set sheet_id <id>; levelup settings set api_key <key>)", err)
	case errors.Is(err, sheets.ErrConnection), errors.Is(err, sheets.ErrNetwork),
		errors.Is(err, sheets.ErrNotFound), errors.Is(err, sheets.ErrPermissionDenied):
		return errors.New(sheets.UserMessage(err))
	default:
		return err
	}
}

// withLoadedApp opens the app, pulls, runs fn and closes the store.
func withLoadedApp(ctx context.Context, fn func(a *app) error) error {
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()
	if _, err := a.load(ctx); err != nil {
		return err
	}
	return fn(a)
}
