package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/five82/jobsheet/internal/config"
	"github.com/five82/jobsheet/internal/logging"
	"github.com/five82/jobsheet/internal/prefs"
	"github.com/five82/jobsheet/internal/sheet"
	"github.com/five82/jobsheet/internal/state"
	"github.com/five82/jobsheet/internal/ui"
)

// Options configure the jobsheet application.
type Options struct {
	ConfigPath string // empty uses ~/.config/jobsheet/config.toml
	PrefsPath  string // empty uses ~/.config/jobsheet/prefs.toml
	SeedPath   string // overrides seed_file from config
	Theme      string // overrides config and saved prefs
}

// Run boots the jobsheet TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	uiOpts, closer, err := prepare(opts)
	if err != nil {
		return err
	}
	defer closer.Close()

	uiOpts.Context = ctx
	uiOpts.Logger.Info("jobsheet starting",
		"records", len(uiOpts.Store.Records()),
		"theme", uiOpts.ThemeName,
	)
	err = ui.Run(uiOpts)
	if err != nil {
		uiOpts.Logger.Error("ui exited", "error", err)
	}
	return err
}

// prepare loads everything the UI needs. The returned closer releases the
// log file.
func prepare(opts Options) (ui.Options, io.Closer, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	logger, closer, err := logging.New(cfg.LogFile, slog.LevelInfo)
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("open log: %w", err)
	}

	records, err := loadRecords(opts.SeedPath, cfg.SeedFile)
	if err != nil {
		closer.Close()
		return ui.Options{}, nil, err
	}

	columns := sheet.DefaultColumns()
	if err := columns.Validate(); err != nil {
		closer.Close()
		return ui.Options{}, nil, fmt.Errorf("column registry: %w", err)
	}

	return ui.Options{
		Store:     state.NewStore(records, columns),
		Config:    cfg,
		ThemeName: pickTheme(opts.Theme, cfg.Theme, userPrefs.Theme),
		PrefsPath: opts.PrefsPath,
		BottomTab: userPrefs.BottomTab,
		Logger:    logger,
	}, closer, nil
}

// loadRecords reads the seed file named on the command line or in config,
// falling back to the built-in records.
func loadRecords(flagPath, configPath string) ([]*sheet.Record, error) {
	path := flagPath
	if path == "" {
		path = configPath
	}
	if path == "" {
		return sheet.DefaultRecords(), nil
	}
	records, err := sheet.LoadRecords(path)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	return records, nil
}

// pickTheme returns the first non-empty name: flag, config, then saved prefs.
func pickTheme(names ...string) string {
	for _, n := range names {
		if n != "" {
			return n
		}
	}
	return ""
}
