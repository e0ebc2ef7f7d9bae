package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"swim/internal/shell"
	"swim/internal/storage"
)

func newModel(t *testing.T) (model, *shell.Shell) {
	t.Helper()
	zone.NewGlobal()
	fs := storage.NewFileSystem(storage.NewMemory())
	if _, err := storage.Seed(fs); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	sh, err := shell.New(fs, 80, 25)
	if err != nil {
		t.Fatalf("shell.New: %v", err)
	}
	return New(sh, Options{Tick: 10 * time.Millisecond, Backend: "memory"}).(model), sh
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func TestKeysReachShell(t *testing.T) {
	m, sh := newModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF3})
	if sh.Active() != 2 {
		t.Fatalf("active = %d, want 2", sh.Active())
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF5})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("new")})
	if !sh.Renaming() || sh.Bar() != "new" {
		t.Fatalf("bar = %q renaming=%v", sh.Bar(), sh.Renaming())
	}
	if m.quitting {
		t.Fatalf("unexpected quit")
	}
}

func TestTickReschedules(t *testing.T) {
	m, sh := newModel(t)
	sh.Run(0)
	_, cmd := update(t, m, tickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("tick must schedule the next tick")
	}
	if sh.Ticks(0) != 1 {
		t.Fatalf("ticks = %d, want 1", sh.Ticks(0))
	}
}

func TestMouseFocusesPane(t *testing.T) {
	m, sh := newModel(t)
	l := sh.Layout()
	x, y, _, _ := l.Pane(3)
	m, _ = update(t, m, tea.MouseMsg{X: x + 1, Y: y + 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if sh.Active() != 3 {
		t.Fatalf("active = %d, want 3", sh.Active())
	}
	// presses are ignored
	x, y, _, _ = l.Pane(0)
	update(t, m, tea.MouseMsg{X: x + 1, Y: y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if sh.Active() != 3 {
		t.Fatalf("press changed focus to %d", sh.Active())
	}
}

func TestFileChangedRefreshesAndResubscribes(t *testing.T) {
	m, _ := newModel(t)
	ch := make(chan struct{}, 1)
	m, cmd := update(t, m, watchStartedMsg{ch: ch})
	if cmd == nil || m.watchCh == nil {
		t.Fatalf("expected subscription")
	}
	ch <- struct{}{}
	if _, ok := cmd().(fileChangedMsg); !ok {
		t.Fatalf("expected fileChangedMsg")
	}
	if _, cmd = update(t, m, fileChangedMsg{}); cmd == nil {
		t.Fatalf("expected resubscription")
	}
	close(ch)
	if msg := cmd(); msg != nil {
		t.Fatalf("closed watcher should yield nil, got %T", msg)
	}
}

func TestViewAndQuit(t *testing.T) {
	m, sh := newModel(t)
	sh.Tick()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	out := m.View()
	for _, want := range []string{"F1 files", "memory", "new file"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !m.quitting {
		t.Fatalf("ctrl+c must quit")
	}
	if m.View() != "Goodbye!\n" {
		t.Fatalf("unexpected final view %q", m.View())
	}
}

func TestRenderStatusBarTruncatesLeft(t *testing.T) {
	bar := renderStatusBar(20, strings.Repeat("x", 30), "right")
	if !strings.Contains(bar, "right") || !strings.Contains(bar, "…") {
		t.Fatalf("unexpected bar %q", bar)
	}
}
