package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"swim/internal/config"
	"swim/internal/shell"
	"swim/internal/storage"
	"swim/internal/system"
	"swim/internal/ui"
)

// Overrides are command-line values that win over config.yaml.
type Overrides struct {
	Backend string
	Path    string
	Tick    time.Duration
}

// LoadConfig reads config.yaml and applies ov on top.
func LoadConfig(ov Overrides) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if ov.Backend != "" {
		cfg.Storage.Backend = ov.Backend
	}
	if ov.Path != "" {
		cfg.Storage.Path = ov.Path
	}
	if ov.Tick > 0 {
		cfg.TickInterval = ov.Tick
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if _, err := shell.NewLayout(cfg.Screen.Width, cfg.Screen.Height); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Store is an opened file store.
type Store struct {
	FS      *storage.FileSystem
	Backend storage.Backend
}

func (s Store) Close() error { return s.Backend.Close() }

// OpenStore opens the configured backend and seeds it when asked to.
func OpenStore(cfg config.Config) (Store, error) {
	path, err := cfg.StoragePath()
	if err != nil {
		return Store{}, err
	}
	b, err := storage.Open(cfg.Storage.Backend, path)
	if err != nil {
		return Store{}, err
	}
	st := Store{FS: storage.NewFileSystem(b), Backend: b}
	if cfg.Storage.Seed {
		seeded, err := storage.Seed(st.FS)
		if err != nil {
			st.Close()
			return Store{}, fmt.Errorf("seed: %w", err)
		}
		if seeded {
			system.Logger.Info("seeded example programs", "backend", cfg.Storage.Backend)
		}
	}
	return st, nil
}

// Start runs the TUI program and returns any error.
func Start(ov Overrides) error {
	cfg, err := LoadConfig(ov)
	if err != nil {
		return err
	}
	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	closeLog, err := system.Setup(cfg.Log.Level, logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := OpenStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	sh, err := shell.New(st.FS, cfg.Screen.Width, cfg.Screen.Height)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	opts := ui.Options{Tick: cfg.TickInterval, Backend: cfg.Storage.Backend, Context: ctx}
	if d, ok := st.Backend.(*storage.Dir); ok {
		opts.Watcher = d
	}
	system.Logger.Info("starting", "backend", cfg.Storage.Backend, "tick", cfg.TickInterval)

	// Initialize global bubblezone manager for mouse-aware zones.
	zone.NewGlobal()
	if _, err := tea.NewProgram(ui.New(sh, opts), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return err
	}
	return nil
}
