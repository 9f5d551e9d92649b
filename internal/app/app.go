package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/renatNoore/to-do-app/internal/config"
	"github.com/renatNoore/to-do-app/internal/prefs"
	"github.com/renatNoore/to-do-app/internal/state"
	"github.com/renatNoore/to-do-app/internal/storage"
	"github.com/renatNoore/to-do-app/internal/ui"
)

// Options configure ticklist startup. Non-empty fields override the config
// file.
type Options struct {
	ConfigPath string
	Backend    string
	DataDir    string
	Ephemeral  bool // use the in-memory backend

	// LogOutput receives log lines. Nil writes to the config's log file.
	LogOutput io.Writer

	// StoreOptions are applied after the logger option.
	StoreOptions []state.Option
}

// Env is an opened ticklist environment: config, storage and the store.
type Env struct {
	Config  config.Config
	Backend storage.Backend
	Store   *state.Store
	Logger  *log.Logger

	closers []io.Closer
}

// Open loads config, opens the storage backend and loads the list.
func Open(ctx context.Context, opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.DataDir != "" {
		dir, err := config.ExpandPath(opts.DataDir)
		if err != nil {
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
		cfg.DataDir = dir
	}
	if opts.Backend != "" {
		cfg.Backend = opts.Backend
	}
	if opts.Ephemeral {
		cfg.Backend = storage.KindMemory
	}

	env := &Env{Config: cfg}

	out := opts.LogOutput
	if out == nil {
		file, err := openLogFile(cfg.LogPath())
		if err != nil {
			return nil, err
		}
		env.closers = append(env.closers, file)
		out = file
	}
	env.Logger = log.NewWithOptions(out, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
		Prefix:          "ticklist",
	})

	backend, err := storage.Open(ctx, cfg.Backend, cfg.DataDir)
	if err != nil {
		_ = env.Close()
		return nil, fmt.Errorf("open %s storage: %w", cfg.Backend, err)
	}
	env.Backend = backend
	env.closers = append([]io.Closer{backend}, env.closers...)

	adapter := storage.NewAdapter(backend,
		storage.WithKey(cfg.StorageKey),
		storage.WithLogger(env.Logger),
	)
	storeOpts := append([]state.Option{state.WithLogger(env.Logger)}, opts.StoreOptions...)
	env.Store = state.New(ctx, adapter, storeOpts...)
	env.Logger.Debug("environment ready", "backend", cfg.Backend, "data_dir", cfg.DataDir)
	return env, nil
}

// Close releases the backend and the log file.
func (e *Env) Close() error {
	var errs []error
	for _, c := range e.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}

// Run boots the ticklist TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Open(ctx, opts)
	if err != nil {
		return err
	}
	defer env.Close()

	userPrefs := prefs.Load(ctx, env.Backend, env.Config.Theme)

	err = ui.Run(ui.Options{
		Context:   ctx,
		Store:     env.Store,
		Prefs:     env.Backend,
		ThemeName: userPrefs.Theme,
		Logger:    env.Logger,
	})
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}
