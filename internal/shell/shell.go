// Package shell owns the four slots of the screen: which mode each one is in,
// which one has focus, how keys reach them and which script runs each tick.
package shell

import (
	"fmt"
	"unicode/utf8"

	clog "github.com/charmbracelet/log"

	"swim/internal/document"
	"swim/internal/explorer"
	"swim/internal/interp"
	"swim/internal/keys"
	"swim/internal/pane"
	"swim/internal/script"
	"swim/internal/storage"
	"swim/internal/surface"
	"swim/internal/system"
)

// Slots is the number of panes.
const Slots = 4

// BarCap is the longest name the filename bar accepts.
const BarCap = 64

// EmptyNameMsg is shown when F5 entry is submitted with no name.
const EmptyNameMsg = "ERROR File name must be at least one character"

type slot struct {
	app   app
	pane  *pane.Pane
	ticks int
}

// Shell is the controller behind the screen.
type Shell struct {
	fs     storage.FS
	grid   *surface.Grid
	layout Layout
	log    *clog.Logger

	slots      [Slots]slot
	active     int
	lastTicked int

	renaming bool
	bar      []rune
}

// New builds a shell of the given screen size with every slot browsing fs.
func New(fs storage.FS, width, height int) (*Shell, error) {
	l, err := NewLayout(width, height)
	if err != nil {
		return nil, err
	}
	s := &Shell{
		fs:     fs,
		grid:   surface.NewGrid(width, height),
		layout: l,
		log:    system.Logger.WithPrefix("shell"),
	}
	for i := range s.slots {
		x, y, w, h := l.Pane(i)
		s.slots[i].pane = pane.New(s.grid, x, y, w, h)
		s.slots[i].app = s.browse(i)
	}
	s.draw()
	return s, nil
}

func (s *Shell) Grid() *surface.Grid { return s.grid }
func (s *Shell) Layout() Layout      { return s.layout }
func (s *Shell) Active() int         { return s.active }
func (s *Shell) Renaming() bool      { return s.renaming }
func (s *Shell) Bar() string         { return string(s.bar) }

// Ticks returns the number of scheduler ticks slot i has used.
func (s *Shell) Ticks(i int) int { return s.slots[i].ticks }

// Mode returns ModeFiles, ModeEdit or ModeScript for slot i.
func (s *Shell) Mode(i int) string { return modeOf(s.slots[i].app) }

// Title returns the label text of slot i.
func (s *Shell) Title(i int) string { return s.slots[i].app.title() }

// Status returns the state of the script in slot i, if one is running.
func (s *Shell) Status(i int) (script.Status, bool) {
	a, ok := s.slots[i].app.(*scriptApp)
	if !ok {
		return 0, false
	}
	return a.sess.Status(), true
}

// Render returns the screen as styled text.
func (s *Shell) Render() string { return s.grid.Render() }

func (s *Shell) browse(i int) *browserApp {
	ex, err := explorer.New(s.fs)
	if err != nil {
		s.log.Error("list directory", "slot", i+1, "err", err)
		s.showError(err)
	}
	return &browserApp{ex: ex}
}

// Focus makes slot i the active one.
func (s *Shell) Focus(i int) {
	if i < 0 || i >= Slots {
		return
	}
	s.active = i
}

// FocusAt focuses the slot whose frame contains screen cell (x, y).
func (s *Shell) FocusAt(x, y int) bool {
	for i := range s.slots {
		if s.layout.Frame(i).Contains(x, y) {
			s.Focus(i)
			return true
		}
	}
	return false
}

// Key dispatches one input event.
func (s *Shell) Key(ev keys.Event) {
	if ev.IsRaw() {
		s.raw(ev.Key)
		return
	}
	if s.renaming {
		s.barKey(ev.Char)
		return
	}
	s.char(ev.Char)
}

func (s *Shell) raw(k keys.Key) {
	cur := &s.slots[s.active]
	switch k {
	case keys.F1, keys.F2, keys.F3, keys.F4:
		s.Focus(int(k - keys.F1))
	case keys.F5:
		s.renaming = true
		s.bar = s.bar[:0]
	case keys.F6:
		s.Exit(s.active)
	case keys.Left, keys.Right, keys.Up, keys.Down:
		switch a := cur.app.(type) {
		case *browserApp:
			arrow(k, a.ex.ArrowLeft, a.ex.ArrowRight, a.ex.ArrowUp, a.ex.ArrowDown)
		case *editorApp:
			arrow(k, a.doc.ArrowLeft, a.doc.ArrowRight, a.doc.ArrowUp, a.doc.ArrowDown)
		case *scriptApp:
		}
	}
}

func arrow(k keys.Key, left, right, up, down func()) {
	switch k {
	case keys.Left:
		left()
	case keys.Right:
		right()
	case keys.Up:
		up()
	case keys.Down:
		down()
	}
}

func (s *Shell) char(c rune) {
	cur := &s.slots[s.active]
	switch a := cur.app.(type) {
	case *browserApp:
		switch c {
		case 'e':
			s.Edit(s.active)
		case 'r':
			s.Run(s.active)
		}
	case *editorApp:
		switch {
		case c == keys.Enter:
			a.doc.Newline()
		case c == keys.Backspace || c == keys.Delete:
			a.doc.Backspace()
		case keys.Drawable(c):
			a.doc.InsertChar(c)
		}
	case *scriptApp:
		if c == keys.Enter || keys.Drawable(c) {
			a.sess.Input(c)
		}
	}
}

func (s *Shell) barKey(c rune) {
	switch {
	case c == keys.Enter:
		s.renaming = false
		s.createFile(string(s.bar))
	case c == keys.Backspace || c == keys.Delete:
		if len(s.bar) > 0 {
			s.bar = s.bar[:len(s.bar)-1]
		}
	case keys.Drawable(c):
		if len(s.bar) < BarCap {
			s.bar = append(s.bar, c)
		}
	}
}

func (s *Shell) createFile(name string) {
	s.bar = s.bar[:0]
	if name == "" {
		s.setBar(EmptyNameMsg)
		return
	}
	h, err := s.fs.OpenCreate(name)
	if err == nil {
		err = s.fs.Close(h)
	}
	if err != nil {
		s.log.Warn("create file", "name", name, "err", err)
		s.showError(err)
		return
	}
	s.log.Info("created file", "name", name)
	s.RefreshExplorers()
}

// showError puts err in the filename bar.
func (s *Shell) showError(err error) {
	s.setBar("ERROR " + err.Error())
}

func (s *Shell) setBar(text string) {
	msg := []rune(text)
	if len(msg) > BarCap {
		msg = msg[:BarCap]
	}
	s.bar = append(s.bar[:0], msg...)
}

// RefreshExplorers re-lists the store in every browsing slot.
func (s *Shell) RefreshExplorers() {
	for i := range s.slots {
		if a, ok := s.slots[i].app.(*browserApp); ok {
			if err := a.ex.Refresh(s.fs); err != nil {
				s.log.Error("list directory", "slot", i+1, "err", err)
				s.showError(err)
			}
		}
	}
}

// readSelected returns the selected file of a browsing slot. Storage errors
// are shown in the bar; content that is not text is refused silently.
func (s *Shell) readSelected(i int) (*browserApp, []byte, bool) {
	a, ok := s.slots[i].app.(*browserApp)
	if !ok || a.ex.Name() == "" {
		return nil, nil, false
	}
	buf := make([]byte, storage.MaxFileBytes)
	n, err := a.ex.ReadSelected(s.fs, buf)
	if err != nil {
		s.log.Warn("read file", "name", a.ex.Name(), "err", err)
		s.showError(err)
		return nil, nil, false
	}
	if !utf8.Valid(buf[:n]) {
		s.log.Debug("skipping non-text file", "name", a.ex.Name())
		return nil, nil, false
	}
	return a, buf[:n], true
}

// Edit opens the file selected in slot i in the editor.
func (s *Shell) Edit(i int) {
	a, data, ok := s.readSelected(i)
	if !ok {
		return
	}
	doc := document.New()
	doc.Load(data)
	s.slots[i].app = &editorApp{name: a.ex.Name(), doc: doc}
	s.slots[i].pane.Clear(surface.Normal)
	s.log.Debug("edit", "slot", i+1, "name", a.ex.Name(), "bytes", len(data))
}

// Run starts the file selected in slot i as a script.
func (s *Shell) Run(i int) {
	a, data, ok := s.readSelected(i)
	if !ok {
		return
	}
	sess := script.New(a.ex.Name(), interp.New(string(data)))
	s.slots[i].app = &scriptApp{sess: sess}
	s.slots[i].pane.Clear(surface.Normal)
	s.log.Info("script started", "slot", i+1, "name", a.ex.Name(), "session", sess.ID())
}

// Exit returns slot i to the file browser, saving an open document first.
func (s *Shell) Exit(i int) {
	sl := &s.slots[i]
	selected := ""
	switch a := sl.app.(type) {
	case *editorApp:
		selected = a.name
		if err := s.save(a); err != nil {
			s.log.Error("save", "name", a.name, "err", err)
			s.showError(err)
		}
	case *scriptApp:
		selected = a.sess.Name()
		s.log.Info("script closed", "slot", i+1, "session", a.sess.ID(), "status", a.sess.Status(), "ticks", sl.ticks)
	case *browserApp:
		selected = a.ex.Name()
	}
	b := s.browse(i)
	b.ex.Select(selected)
	sl.app = b
	sl.pane.Clear(surface.Normal)
}

func (s *Shell) save(a *editorApp) error {
	buf := make([]byte, storage.MaxFileBytes)
	n := a.doc.Dump(buf)
	if err := storage.WriteFile(s.fs, a.name, buf[:n]); err != nil {
		return fmt.Errorf("save %s: %w", a.name, err)
	}
	a.doc.MarkSaved()
	s.log.Info("saved", "name", a.name, "bytes", n)
	return nil
}

// Tick gives one running script a step, round robin, then redraws the screen.
func (s *Shell) Tick() {
	s.schedule()
	s.draw()
}

// schedule starts at the slot after the last one that made progress and
// ticks the first script that does work.
func (s *Shell) schedule() {
	for n := 1; n <= Slots; n++ {
		i := (s.lastTicked + n) % Slots
		a, ok := s.slots[i].app.(*scriptApp)
		if !ok {
			continue
		}
		worked := a.sess.Tick()
		if a.sess.Status() == script.Finished && !a.reported {
			a.reported = true
			s.log.Info("script finished", "slot", i+1, "session", a.sess.ID(), "ticks", s.slots[i].ticks+1)
		}
		if worked {
			s.slots[i].ticks++
			s.lastTicked = i
			return
		}
	}
}
