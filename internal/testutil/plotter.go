package testutil

import "swim/internal/surface"

// Plot is one recorded call.
type Plot struct {
    C    rune
    X, Y int
    A    surface.Attr
}

// Recorder is a surface.Plotter that keeps every call in order.
type Recorder struct {
    Plots []Plot
}

func (r *Recorder) Plot(c rune, x, y int, a surface.Attr) {
    r.Plots = append(r.Plots, Plot{C: c, X: x, Y: y, A: a})
}

// Last returns the most recent plot at (x, y).
func (r *Recorder) Last(x, y int) (Plot, bool) {
    for i := len(r.Plots) - 1; i >= 0; i-- {
        if p := r.Plots[i]; p.X == x && p.Y == y {
            return p, true
        }
    }
    return Plot{}, false
}
