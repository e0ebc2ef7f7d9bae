package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"swim/internal/system"
)

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// startWatchCmd subscribes to store changes. Watch errors are logged and
// leave the UI without live refresh.
func startWatchCmd(ctx context.Context, w Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		ch, err := w.Watch(ctx)
		if err != nil {
			system.Logger.Warn("watch store", "err", err)
			return nil
		}
		return watchStartedMsg{ch: ch}
	}
}

// watchSubscribeCmd waits for the next change notification.
func watchSubscribeCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		if _, ok := <-ch; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}
