package settings

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"swim/internal/config"
)

// fields holds the form's bound values. Durations are edited as text.
type fields struct {
	backend string
	path    string
	tick    string
	level   string
	seed    bool
}

func fromConfig(c config.Config) fields {
	return fields{
		backend: c.Storage.Backend,
		path:    c.Storage.Path,
		tick:    c.TickInterval.String(),
		level:   c.Log.Level,
		seed:    c.Storage.Seed,
	}
}

// apply writes f over base and validates the result.
func (f fields) apply(base config.Config) (config.Config, error) {
	d, err := time.ParseDuration(f.tick)
	if err != nil {
		return base, fmt.Errorf("tick interval: %w", err)
	}
	c := base
	c.TickInterval = d
	c.Storage.Backend = f.backend
	c.Storage.Path = f.path
	c.Storage.Seed = f.seed
	c.Log.Level = f.level
	if c.Storage.Backend == "memory" {
		c.Storage.Path = ""
	}
	return c, c.Validate()
}

func theme() *huh.Theme {
	green := lipgloss.Color("#03BF87")
	t := huh.ThemeCharm()
	t.FieldSeparator = lipgloss.NewStyle()
	t.Blurred.Title = t.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	t.Focused.Title = t.Focused.Title.Width(18).Foreground(green).Bold(true)
	t.Blurred.SelectedOption = t.Blurred.SelectedOption.Foreground(lipgloss.Color("243"))
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	t.Focused.Base.BorderForeground(green)
	return t
}

func newForm(f *fields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Settings").Description("Edit config.yaml. Changes apply on the next start."),
			huh.NewSelect[string]().
				Title("Storage").
				Options(
					huh.NewOption("in memory", "memory"),
					huh.NewOption("sqlite file", "sqlite"),
					huh.NewOption("directory", "dir"),
				).
				Value(&f.backend),
			huh.NewInput().
				Title("Path").
				Placeholder("files.db").
				Value(&f.path),
			huh.NewConfirm().
				Title("Seed examples").
				Value(&f.seed),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Tick interval").
				Value(&f.tick).
				Validate(func(s string) error {
					d, err := time.ParseDuration(s)
					if err != nil {
						return err
					}
					if d <= 0 {
						return fmt.Errorf("must be positive")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&f.level),
		),
	).WithTheme(theme()).WithWidth(60)
}

// Run launches an interactive form over the current config and saves it on submit.
func Run() error {
	cur, err := config.Load()
	if err != nil {
		return err
	}
	f := fromConfig(cur)
	if err := newForm(&f).Run(); err != nil {
		return err // form canceled or failed
	}
	next, err := f.apply(cur)
	if err != nil {
		return err
	}
	if err := config.Save(next); err != nil {
		return err
	}
	p, _ := config.Path()
	fmt.Printf("\n✓ saved %s\n\n", p)
	return nil
}
