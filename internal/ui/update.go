package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"swim/internal/keys"
	"swim/internal/shell"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		// Ctrl+C always quits; the shell itself has no quit key.
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		for _, ev := range keys.FromTea(msg) {
			m.sh.Key(ev)
		}
		return m, nil
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for i := 0; i < shell.Slots; i++ {
			if zone.Get(slotZone(i)).InBounds(msg) {
				m.sh.Focus(i)
				return m, nil
			}
		}
		m.sh.FocusAt(msg.X, msg.Y)
		return m, nil
	case tickMsg:
		m.sh.Tick()
		return m, tickCmd(m.tick)
	case watchStartedMsg:
		m.watchCh = msg.ch
		return m, watchSubscribeCmd(m.watchCh)
	case fileChangedMsg:
		m.sh.RefreshExplorers()
		return m, watchSubscribeCmd(m.watchCh)
	}
	return m, nil
}

func slotZone(i int) string { return "slot." + strconv.Itoa(i) }
