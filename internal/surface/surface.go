package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is one of the 16 classic text-mode colors.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

// ansi maps text-mode color order onto ANSI palette indexes.
var ansi = [16]string{"0", "4", "2", "6", "1", "5", "3", "7", "8", "12", "10", "14", "9", "13", "11", "15"}

// Lipgloss returns the terminal color for c.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(ansi[c&0x0f])
}

// Attr is the foreground/background pair of a cell.
type Attr struct {
	FG Color
	BG Color
}

// Invert swaps foreground and background.
func (a Attr) Invert() Attr {
	return Attr{FG: a.BG, BG: a.FG}
}

// Common attributes.
var (
	Normal = Attr{FG: LightGray, BG: Black}
	Gray   = Attr{FG: LightGray, BG: DarkGray}
	Active = Attr{FG: LightGreen, BG: DarkGray}
)

// Plotter accepts single-cell writes at absolute coordinates.
type Plotter interface {
	Plot(c rune, x, y int, a Attr)
}

// Cell is a single character position on the grid.
type Cell struct {
	Rune rune
	Attr Attr
}

// Grid is a fixed-size character-cell surface.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid returns a width x height grid filled with blanks.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height, cells: make([]Cell, width*height)}
	g.Fill(' ', Normal)
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Plot writes one cell. Writes outside the grid are dropped.
func (g *Grid) Plot(c rune, x, y int, a Attr) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = Cell{Rune: c, Attr: a}
}

// At returns the cell at (x, y), or a zero cell when out of range.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return Cell{}
	}
	return g.cells[y*g.width+x]
}

// Fill sets every cell.
func (g *Grid) Fill(c rune, a Attr) {
	for i := range g.cells {
		g.cells[i] = Cell{Rune: c, Attr: a}
	}
}

// Text writes s left to right starting at (x, y) and returns the column after it.
func (g *Grid) Text(s string, x, y int, a Attr) int {
	for _, r := range s {
		g.Plot(r, x, y, a)
		x++
	}
	return x
}

// Row returns the runes of row y without styling.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range g.cells[y*g.width : (y+1)*g.width] {
		if c.Rune == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Render returns the grid as newline-separated styled rows.
// Adjacent cells with the same attributes share one style run.
func (g *Grid) Render() string {
	styles := map[Attr]lipgloss.Style{}
	style := func(a Attr) lipgloss.Style {
		if s, ok := styles[a]; ok {
			return s
		}
		s := lipgloss.NewStyle().Foreground(a.FG.Lipgloss()).Background(a.BG.Lipgloss())
		styles[a] = s
		return s
	}

	var b strings.Builder
	var run strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := g.cells[y*g.width : (y+1)*g.width]
		cur := row[0].Attr
		run.Reset()
		for _, c := range row {
			if c.Attr != cur {
				b.WriteString(style(cur).Render(run.String()))
				run.Reset()
				cur = c.Attr
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			run.WriteRune(r)
		}
		b.WriteString(style(cur).Render(run.String()))
	}
	return b.String()
}
