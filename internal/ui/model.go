package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"swim/internal/shell"
)

// Watcher reports external changes to the file store.
type Watcher interface {
	Watch(ctx context.Context) (<-chan struct{}, error)
}

// Options configures the TUI model.
type Options struct {
	Tick    time.Duration
	Backend string
	// Watcher is nil unless the store can observe outside edits.
	Watcher Watcher
	Context context.Context
}

// Model for TUI
type model struct {
	sh      *shell.Shell
	tick    time.Duration
	backend string

	ctx     context.Context
	watcher Watcher
	watchCh <-chan struct{}

	width  int
	height int
	help   help.Model
	keys   keyMap

	quitting bool
}

// New wraps sh in a Bubble Tea model.
func New(sh *shell.Shell, opts Options) tea.Model {
	if opts.Tick <= 0 {
		opts.Tick = 50 * time.Millisecond
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	h := help.New()
	h.ShortSeparator = " · "
	return model{
		sh:      sh,
		tick:    opts.Tick,
		backend: opts.Backend,
		ctx:     opts.Context,
		watcher: opts.Watcher,
		help:    h,
		keys:    newKeyMap(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.tick), startWatchCmd(m.ctx, m.watcher))
}
