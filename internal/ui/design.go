package ui

import (
	"github.com/charmbracelet/lipgloss"

	"swim/internal/shell"
)

// Design centralizes the footer palette.
//
// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	Primary lipgloss.Color // #4d9375
	Blue    lipgloss.Color // #6394bf
	Yellow  lipgloss.Color // #e6cc77
	Muted   lipgloss.Color // #bfbaaa

	// Text on accent backgrounds (chips)
	OnAccent lipgloss.Color // #222

	BarFG lipgloss.AdaptiveColor
	BarBG lipgloss.AdaptiveColor
}

// Vitesse is the footer theme.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Blue:    lipgloss.Color("#6394bf"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Muted:   lipgloss.Color("#bfbaaa"),

	OnAccent: lipgloss.Color("#222"),

	BarFG: lipgloss.AdaptiveColor{Light: "#343433", Dark: "#bfbaaa"},
	BarBG: lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#222"},
}

// ChipKeyStyle is the chip of the active slot.
func ChipKeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(Vitesse.OnAccent).
		Background(Vitesse.Primary).
		Padding(0, 1)
}

// ChipStyle returns a style for the other slot chips.
func ChipStyle(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.OnAccent).Background(bg).Padding(0, 1)
}

// StatusBarBase returns the base style for the status bar background/foreground.
func StatusBarBase() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.BarFG).Background(Vitesse.BarBG)
}

// slotColor tints a chip by what the slot holds.
func slotColor(mode string) lipgloss.Color {
	switch mode {
	case shell.ModeEdit:
		return Vitesse.Blue
	case shell.ModeScript:
		return Vitesse.Yellow
	}
	return Vitesse.Muted
}
