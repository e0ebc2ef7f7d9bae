package pane

import (
	"testing"

	"swim/internal/surface"
	"swim/internal/testutil"
)

func TestPlotTranslatesAndClips(t *testing.T) {
	g := surface.NewGrid(10, 5)
	p := New(g, 2, 1, 3, 2)
	p.Plot('a', 0, 0, surface.Normal)
	p.Plot('b', 2, 1, surface.Normal)
	p.Plot('c', 3, 0, surface.Normal)
	p.Plot('d', 0, 2, surface.Normal)
	p.Plot('e', -1, 0, surface.Normal)

	if got := g.At(2, 1).Rune; got != 'a' {
		t.Fatalf("origin cell: %q", got)
	}
	if got := g.At(4, 2).Rune; got != 'b' {
		t.Fatalf("corner cell: %q", got)
	}
	if got := g.Row(1); got != "  a       " {
		t.Fatalf("row 1 leaked: %q", got)
	}
	if got := g.Row(3); got != "          " {
		t.Fatalf("row 3 leaked: %q", got)
	}
}

func TestClearAndContains(t *testing.T) {
	g := surface.NewGrid(6, 4)
	g.Fill('#', surface.Normal)
	p := New(g, 1, 1, 2, 2)
	p.Clear(surface.Gray)
	if got := g.Row(1); got != "#  ###" {
		t.Fatalf("row 1: %q", got)
	}
	if got := g.Row(3); got != "######" {
		t.Fatalf("row 3: %q", got)
	}
	if !p.Contains(2, 2) || p.Contains(3, 1) || p.Contains(0, 0) {
		t.Fatalf("contains mismatch")
	}
}

func TestClearRowPlotsOnlyInsidePane(t *testing.T) {
	rec := &testutil.Recorder{}
	p := New(rec, 5, 3, 4, 2)
	p.ClearRow(1, 1, surface.Gray)
	if len(rec.Plots) != 3 {
		t.Fatalf("plots = %d, want 3", len(rec.Plots))
	}
	for _, pl := range rec.Plots {
		if pl.Y != 4 || pl.X < 6 || pl.X > 8 || pl.C != ' ' || pl.A != surface.Gray {
			t.Fatalf("unexpected plot %+v", pl)
		}
	}
	if _, ok := rec.Last(9, 4); ok {
		t.Fatalf("plotted past the right edge")
	}
}
