package pane

import "swim/internal/surface"

// Pane is a rectangular region of a surface addressed in local coordinates.
type Pane struct {
	x, y          int
	width, height int
	out           surface.Plotter
}

// New returns a pane at absolute (x, y) with the given size.
func New(out surface.Plotter, x, y, width, height int) *Pane {
	return &Pane{x: x, y: y, width: width, height: height, out: out}
}

func (p *Pane) Width() int  { return p.width }
func (p *Pane) Height() int { return p.height }

// Origin returns the absolute position of the top-left cell.
func (p *Pane) Origin() (int, int) { return p.x, p.y }

// Contains reports whether absolute (x, y) falls inside the pane.
func (p *Pane) Contains(x, y int) bool {
	return x >= p.x && y >= p.y && x < p.x+p.width && y < p.y+p.height
}

// Plot writes a cell at local (x, y). Writes outside the pane are dropped.
func (p *Pane) Plot(c rune, x, y int, a surface.Attr) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return
	}
	p.out.Plot(c, p.x+x, p.y+y, a)
}

// Text writes s on row y starting at column x, clipped to the pane.
func (p *Pane) Text(s string, x, y int, a surface.Attr) {
	for _, r := range s {
		p.Plot(r, x, y, a)
		x++
	}
}

// ClearRow blanks row y from column x to the right edge.
func (p *Pane) ClearRow(x, y int, a surface.Attr) {
	for ; x < p.width; x++ {
		p.Plot(' ', x, y, a)
	}
}

// Clear blanks the whole pane.
func (p *Pane) Clear(a surface.Attr) {
	for y := 0; y < p.height; y++ {
		p.ClearRow(0, y, a)
	}
}
