package shell

import (
	"strconv"

	"swim/internal/surface"
)

const barLabel = "F5 - Filename: "

var (
	frameAttr  = surface.Attr{FG: surface.LightGray, BG: surface.DarkGray}
	activeAttr = surface.Attr{FG: surface.LightGreen, BG: surface.DarkGray}
	plainAttr  = surface.Attr{FG: surface.LightGray, BG: surface.Black}
	greenAttr  = surface.Attr{FG: surface.LightGreen, BG: surface.Black}
)

// junctions holds the box character for each of the 3x3 frame corners.
var junctions = [3][3]rune{
	{'┌', '┬', '┐'},
	{'├', '┼', '┤'},
	{'└', '┴', '┘'},
}

func (s *Shell) draw() {
	for i := range s.slots {
		s.slots[i].app.draw(s.slots[i].pane)
	}
	for i := range s.slots {
		if i != s.active {
			s.drawFrame(i, frameAttr)
		}
	}
	s.drawFrame(s.active, activeAttr)
	for i := range s.slots {
		a := frameAttr
		if i == s.active {
			a = activeAttr
		}
		x, y := s.layout.Label(i)
		s.grid.Text("F"+strconv.Itoa(i+1)+"──"+s.slots[i].app.title(), x, y, a)
	}
	s.drawBar()
	s.drawTaskManager()
}

func (s *Shell) drawFrame(i int, a surface.Attr) {
	r := s.layout.Frame(i)
	for x := r.X1; x <= r.X2; x++ {
		s.grid.Plot('─', x, r.Y1, a)
		s.grid.Plot('─', x, r.Y2, a)
	}
	for y := r.Y1; y <= r.Y2; y++ {
		s.grid.Plot('│', r.X1, y, a)
		s.grid.Plot('│', r.X2, y, a)
	}
	col, row := i%2, i/2
	for dy := 0; dy <= 1; dy++ {
		for dx := 0; dx <= 1; dx++ {
			x, y := r.X1, r.Y1
			if dx == 1 {
				x = r.X2
			}
			if dy == 1 {
				y = r.Y2
			}
			s.grid.Plot(junctions[row+dy][col+dx], x, y, a)
		}
	}
}

func (s *Shell) drawBar() {
	a := plainAttr
	if s.renaming {
		a = greenAttr
	}
	x := s.grid.Text(barLabel, 0, 0, a)
	x = s.grid.Text(string(s.bar), x, 0, plainAttr)
	for ; x < s.layout.Region; x++ {
		s.grid.Plot(' ', x, 0, plainAttr)
	}
}

func (s *Shell) drawTaskManager() {
	x0 := s.layout.Region
	for y := 0; y < s.layout.Height; y++ {
		for x := x0; x < s.layout.Width; x++ {
			s.grid.Plot(' ', x, y, plainAttr)
		}
	}
	for i := range s.slots {
		y := 2 * i
		s.grid.Text("F"+strconv.Itoa(i+1), x0, y, plainAttr)
		if st, ok := s.Status(i); ok {
			s.grid.Text(" "+st.String(), x0+2, y, plainAttr)
		}
		s.grid.Plot('└', x0, y+1, plainAttr)
		n := strconv.Itoa(s.slots[i].ticks)
		if len(n) > TaskManagerWidth-1 {
			n = n[len(n)-(TaskManagerWidth-1):]
		}
		s.grid.Text(n, x0+1, y+1, greenAttr)
	}
}
