package ui

import (
	"fmt"
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"swim/internal/script"
	"swim/internal/shell"
	appver "swim/internal/version"
)

func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	b := &strings.Builder{}
	b.WriteString(m.sh.Render())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBarLine())
	b.WriteString(m.help.View(m.keys))
	return zone.Scan(b.String())
}

// renderStatusBarLine shows one clickable chip per slot on the left and
// the store and version on the right.
func (m model) renderStatusBarLine() string {
	chips := make([]string, 0, shell.Slots)
	for i := 0; i < shell.Slots; i++ {
		chips = append(chips, zone.Mark(slotZone(i), m.slotChip(i)))
	}
	left := strings.Join(chips, "")
	right := fmt.Sprintf("%s · v%s", m.backendLabel(), appver.AppVersion)
	return renderStatusBar(m.barWidth(), left, right) + "\n"
}

func (m model) slotChip(i int) string {
	label := fmt.Sprintf("F%d %s", i+1, m.sh.Mode(i))
	if st, ok := m.sh.Status(i); ok && st != script.Finished {
		label += " " + st.String()
	}
	if i == m.sh.Active() {
		return ChipKeyStyle().Render(label)
	}
	return ChipStyle(slotColor(m.sh.Mode(i))).Render(label)
}

func (m model) backendLabel() string {
	if m.backend == "" {
		return "memory"
	}
	return m.backend
}

func (m model) barWidth() int {
	if m.width > 0 {
		return m.width
	}
	return m.sh.Layout().Width
}
