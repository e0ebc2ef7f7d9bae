package shell

import (
	"fmt"

	"swim/internal/document"
)

// TaskManagerWidth is the column reserved for tick counters on the right.
const TaskManagerWidth = 10

// Minimum screen size that still fits four panes and their frames.
const (
	MinWidth  = 40
	MinHeight = 12
)

// Rect is an inclusive rectangle in screen cells.
type Rect struct {
	X1, Y1, X2, Y2 int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Layout places the filename bar, the four framed panes and the task manager.
type Layout struct {
	Width  int
	Height int
	// Region is the width left of the task manager.
	Region int
	WinW   int
	HUp    int
	HDown  int
	MidX   int
	MidY   int
}

func NewLayout(width, height int) (Layout, error) {
	if width < MinWidth || height < MinHeight {
		return Layout{}, fmt.Errorf("screen %dx%d is smaller than %dx%d", width, height, MinWidth, MinHeight)
	}
	l := Layout{Width: width, Height: height}
	l.Region = width - TaskManagerWidth
	l.WinW = (l.Region - 3) / 2
	l.HUp = (height - 4) / 2
	l.HDown = (height - 4) - l.HUp
	l.MidX = 1 + l.WinW
	l.MidY = 2 + l.HUp
	// a full line, cursor past its end, must fit in the shorter pane
	if rows := document.LineCap/l.WinW + 1; rows > min(l.HUp, l.HDown) {
		return Layout{}, fmt.Errorf("screen %dx%d: panes of %dx%d cannot show a %d-character line", width, height, l.WinW, min(l.HUp, l.HDown), document.LineCap)
	}
	return l, nil
}

// Pane returns the origin and size of slot i's content area.
func (l Layout) Pane(i int) (x, y, w, h int) {
	x, y, w, h = 1, 2, l.WinW, l.HUp
	if i%2 == 1 {
		x = l.MidX + 1
	}
	if i >= 2 {
		y, h = l.MidY+1, l.HDown
	}
	return x, y, w, h
}

// Frame returns the border rectangle around slot i.
func (l Layout) Frame(i int) Rect {
	r := Rect{X1: 0, Y1: 1, X2: l.MidX, Y2: l.MidY}
	if i%2 == 1 {
		r.X1, r.X2 = l.MidX, 2*l.MidX
	}
	if i >= 2 {
		r.Y1, r.Y2 = l.MidY, l.Height-1
	}
	return r
}

// Label returns where slot i's "Fn──title" label starts.
func (l Layout) Label(i int) (x, y int) {
	x, y = l.MidX/2-9, 1
	if i%2 == 1 {
		x = l.MidX*3/2 - 9
	}
	if i >= 2 {
		y = l.MidY
	}
	if x < 1 {
		x = 1
	}
	return x, y
}
