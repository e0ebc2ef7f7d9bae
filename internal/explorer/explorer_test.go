package explorer

import (
	"errors"
	"fmt"
	"testing"

	"swim/internal/pane"
	"swim/internal/storage"
	"swim/internal/surface"
)

func newFS(t *testing.T, names ...string) *storage.FileSystem {
	t.Helper()
	fs := storage.NewFileSystem(storage.NewMemory())
	for _, n := range names {
		if err := storage.WriteFile(fs, n, []byte("data:"+n)); err != nil {
			t.Fatalf("WriteFile(%s): %v", n, err)
		}
	}
	return fs
}

func TestArrowsStayInGrid(t *testing.T) {
	var names []string
	for i := 0; i < 7; i++ {
		names = append(names, fmt.Sprintf("f%d", i))
	}
	e, err := New(newFS(t, names...))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.ArrowLeft()
	if e.Selected() != 0 {
		t.Fatalf("left at edge: %d", e.Selected())
	}
	e.ArrowRight()
	e.ArrowRight()
	e.ArrowRight()
	if e.Selected() != 2 {
		t.Fatalf("right stops at column 3: %d", e.Selected())
	}
	e.ArrowDown()
	e.ArrowDown()
	if e.Selected() != 6 {
		t.Fatalf("down clamps to last file: %d", e.Selected())
	}
	e.ArrowUp()
	if e.Selected() != 3 {
		t.Fatalf("up: %d", e.Selected())
	}
	if e.Name() != "f3" {
		t.Fatalf("name: %q", e.Name())
	}
}

func TestEmptyListing(t *testing.T) {
	e, err := New(newFS(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.ArrowDown()
	e.ArrowRight()
	if e.Selected() != 0 || e.Name() != "" {
		t.Fatalf("selection on empty listing: %d %q", e.Selected(), e.Name())
	}
	if _, err := e.ReadSelected(newFS(t), make([]byte, 8)); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("ReadSelected: %v", err)
	}
}

func TestReadSelectedAndRefresh(t *testing.T) {
	fs := newFS(t, "b", "a")
	e, _ := New(fs)
	e.ArrowRight()
	buf := make([]byte, storage.MaxFileBytes)
	n, err := e.ReadSelected(fs, buf)
	if err != nil {
		t.Fatalf("ReadSelected: %v", err)
	}
	if string(buf[:n]) != "data:b" {
		t.Fatalf("content: %q", buf[:n])
	}
	storage.WriteFile(fs, "c", nil)
	if err := e.Refresh(fs); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if e.Count() != 3 || e.Name() != "b" {
		t.Fatalf("after refresh: %d %q", e.Count(), e.Name())
	}
	if !e.Select("c") || e.Selected() != 2 {
		t.Fatalf("Select: %d", e.Selected())
	}
}

func TestDrawInvertsSelection(t *testing.T) {
	g := surface.NewGrid(33, 11)
	g.Fill('#', surface.Normal)
	p := pane.New(g, 0, 0, 33, 11)
	e, _ := New(newFS(t, "hello", "nums", "pi"))
	e.ArrowRight()
	e.Draw(p)
	if got := g.Row(0); got != "hello     nums      pi           " {
		t.Fatalf("row 0: %q", got)
	}
	if a := g.At(10, 0).Attr; a != selectedAttr {
		t.Fatalf("selected attr: %+v", a)
	}
	if a := g.At(0, 0).Attr; a != textAttr {
		t.Fatalf("plain attr: %+v", a)
	}
	if got := g.Row(10); got != "                                 " {
		t.Fatalf("row 10 not blanked: %q", got)
	}
}
