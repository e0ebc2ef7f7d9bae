// Package explorer is the file browser mode: a 3x10 grid of stored names
// with a movable selection.
package explorer

import (
	"github.com/mattn/go-runewidth"

	"swim/internal/pane"
	"swim/internal/storage"
	"swim/internal/surface"
)

const (
	Cols = 3
	Rows = 10
	// CellWidth is the column width of one name in the grid.
	CellWidth = storage.MaxNameBytes
)

var (
	textAttr     = surface.Attr{FG: surface.LightGray, BG: surface.Black}
	selectedAttr = textAttr.Invert()
)

// Explorer lists the files of a store.
type Explorer struct {
	names    [Cols * Rows]string
	count    int
	selected int
}

// New lists fs. A listing error leaves the explorer empty.
func New(fs storage.FS) (*Explorer, error) {
	e := &Explorer{}
	return e, e.Refresh(fs)
}

// Refresh re-reads the directory, keeping the selection in range.
func (e *Explorer) Refresh(fs storage.FS) error {
	names, err := fs.ListDirectory()
	if err != nil {
		return err
	}
	e.names = [Cols * Rows]string{}
	e.count = copy(e.names[:], names)
	e.clamp()
	return nil
}

func (e *Explorer) Count() int    { return e.count }
func (e *Explorer) Selected() int { return e.selected }

// Name returns the selected file name, or "" when the listing is empty.
func (e *Explorer) Name() string {
	if e.count == 0 {
		return ""
	}
	return e.names[e.selected]
}

// Select moves the selection to the named file if it is listed.
func (e *Explorer) Select(name string) bool {
	for i := 0; i < e.count; i++ {
		if e.names[i] == name {
			e.selected = i
			return true
		}
	}
	return false
}

// ReadSelected reads the selected file into buf and returns the byte count.
func (e *Explorer) ReadSelected(fs storage.FS, buf []byte) (int, error) {
	name := e.Name()
	if name == "" {
		return 0, storage.ErrNotFound
	}
	h, err := fs.OpenRead(name)
	if err != nil {
		return 0, err
	}
	total := 0
	for total < len(buf) {
		n, err := fs.Read(h, buf[total:])
		if err != nil {
			fs.Close(h)
			return 0, err
		}
		if n == 0 {
			break
		}
		total += n
	}
	if err := fs.Close(h); err != nil {
		return 0, err
	}
	return total, nil
}

func (e *Explorer) clamp() {
	if e.selected >= e.count {
		e.selected = e.count - 1
	}
	if e.selected < 0 {
		e.selected = 0
	}
}

func (e *Explorer) ArrowLeft() {
	if e.selected%Cols > 0 {
		e.selected--
	}
}

func (e *Explorer) ArrowRight() {
	if e.selected%Cols < Cols-1 {
		e.selected++
	}
	e.clamp()
}

func (e *Explorer) ArrowUp() {
	if e.selected >= Cols {
		e.selected -= Cols
	}
}

func (e *Explorer) ArrowDown() {
	e.selected += Cols
	e.clamp()
}

// Draw plots the name grid and blanks the rest of the pane.
func (e *Explorer) Draw(p *pane.Pane) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			idx := row*Cols + col
			a := textAttr
			if idx == e.selected && idx < e.count {
				a = selectedAttr
			}
			name := runewidth.FillRight(runewidth.Truncate(e.names[idx], CellWidth, ""), CellWidth)
			p.Text(name, col*CellWidth, row, a)
		}
		p.ClearRow(Cols*CellWidth, row, textAttr)
	}
	for row := Rows; row < p.Height(); row++ {
		p.ClearRow(0, row, textAttr)
	}
}
