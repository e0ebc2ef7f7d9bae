package shell

import (
	"strings"
	"testing"

	"swim/internal/document"
	"swim/internal/keys"
	"swim/internal/script"
	"swim/internal/storage"
)

func newShell(t *testing.T, files map[string]string) (*Shell, *storage.FileSystem) {
	t.Helper()
	fs := storage.NewFileSystem(storage.NewMemory())
	if _, err := storage.Seed(fs); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	for name, src := range files {
		if err := storage.WriteFile(fs, name, []byte(src)); err != nil {
			t.Fatalf("WriteFile(%s): %v", name, err)
		}
	}
	s, err := New(fs, 80, 25)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, fs
}

func selectFile(t *testing.T, s *Shell, slot int, name string) {
	t.Helper()
	a, ok := s.slots[slot].app.(*browserApp)
	if !ok {
		t.Fatalf("slot %d is not browsing", slot)
	}
	a.ex.Refresh(s.fs)
	if !a.ex.Select(name) {
		t.Fatalf("slot %d: %s not listed", slot, name)
	}
}

// paneRow returns row y of the screen from column 1, skipping the frame.
func paneRow(s *Shell, y int) string {
	return string([]rune(s.Grid().Row(y))[1:])
}

func press(s *Shell, evs ...keys.Event) {
	for _, ev := range evs {
		s.Key(ev)
	}
}

func typeString(s *Shell, text string) {
	for _, r := range text {
		s.Key(keys.Char(r))
	}
}

func TestLayout(t *testing.T) {
	l, err := NewLayout(80, 25)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	if l.WinW != 33 || l.HUp != 10 || l.HDown != 11 || l.MidX != 34 || l.MidY != 12 {
		t.Fatalf("layout: %+v", l)
	}
	if x, y, w, h := l.Pane(3); x != 35 || y != 13 || w != 33 || h != 11 {
		t.Fatalf("pane 3: %d %d %d %d", x, y, w, h)
	}
	if r := l.Frame(3); r != (Rect{X1: 34, Y1: 12, X2: 68, Y2: 24}) {
		t.Fatalf("frame 3: %+v", r)
	}
	if x, y := l.Label(1); x != 42 || y != 1 {
		t.Fatalf("label 1: %d %d", x, y)
	}
	if _, err := NewLayout(20, 5); err == nil {
		t.Fatalf("tiny screen accepted")
	}
}

func TestLayoutFitsFullLine(t *testing.T) {
	// 40x12 gives 13x4 panes, too short for a 255-character line
	if _, err := NewLayout(MinWidth, MinHeight); err == nil {
		t.Fatalf("40x12 accepted")
	}
	if _, err := NewLayout(80, 19); err == nil {
		t.Fatalf("80x19 accepted")
	}
	l, err := NewLayout(80, 20)
	if err != nil {
		t.Fatalf("NewLayout(80, 20): %v", err)
	}
	if rows := document.LineCap/l.WinW + 1; rows > l.HUp || rows > l.HDown {
		t.Fatalf("line needs %d rows, panes have %d and %d", rows, l.HUp, l.HDown)
	}
}

func TestFocusKeysAndMouse(t *testing.T) {
	s, _ := newShell(t, nil)
	press(s, keys.Raw(keys.F3))
	if s.Active() != 2 {
		t.Fatalf("active: %d", s.Active())
	}
	if !s.FocusAt(50, 5) || s.Active() != 1 {
		t.Fatalf("click focus: %d", s.Active())
	}
	if s.FocusAt(75, 5) {
		t.Fatalf("task manager click focused a slot")
	}
}

func TestEditAndSaveOnExit(t *testing.T) {
	s, fs := newShell(t, nil)
	selectFile(t, s, 0, "hello")
	typeString(s, "e")
	if s.Mode(0) != ModeEdit {
		t.Fatalf("mode: %s", s.Mode(0))
	}
	typeString(s, "x")
	press(s, keys.Raw(keys.Right), keys.Char(keys.Backspace))
	if s.Title(0) != "hello*" {
		t.Fatalf("title: %q", s.Title(0))
	}
	press(s, keys.Raw(keys.F6))
	if s.Mode(0) != ModeFiles {
		t.Fatalf("mode after exit: %s", s.Mode(0))
	}
	got, err := storage.ReadFile(fs, "hello")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != `xrint("Hello, world!")` {
		t.Fatalf("saved: %q", got)
	}
	if name := s.slots[0].app.(*browserApp).ex.Name(); name != "hello" {
		t.Fatalf("selection after exit: %q", name)
	}
}

func TestRunUntilFinished(t *testing.T) {
	s, _ := newShell(t, nil)
	selectFile(t, s, 0, "nums")
	typeString(s, "r")
	if s.Mode(0) != ModeScript || s.Title(0) != "run nums" {
		t.Fatalf("mode %s title %q", s.Mode(0), s.Title(0))
	}
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	if s.Ticks(0) != 2 {
		t.Fatalf("ticks: %d", s.Ticks(0))
	}
	if st, _ := s.Status(0); st != script.Finished {
		t.Fatalf("status: %v", st)
	}
	if !strings.HasPrefix(paneRow(s, 2), "1 ") || !strings.HasPrefix(paneRow(s, 3), "257") {
		t.Fatalf("rows: %q %q", paneRow(s, 2), paneRow(s, 3))
	}
	// arrows are inert on a script
	press(s, keys.Raw(keys.Up), keys.Char(keys.Backspace))
	press(s, keys.Raw(keys.F6))
	if s.Mode(0) != ModeFiles {
		t.Fatalf("mode after exit: %s", s.Mode(0))
	}
}

func TestFullTranscriptShowsInTitle(t *testing.T) {
	fill := "i := 0\nwhile (i < 200) {\n    print(\"abcdefgh\")\n    i := (i + 1)\n}\nx := input(\"?\")"
	s, _ := newShell(t, map[string]string{"fill": fill})
	selectFile(t, s, 0, "fill")
	typeString(s, "r")
	if s.Title(0) != "run fill" {
		t.Fatalf("title: %q", s.Title(0))
	}
	for i := 0; i < 1000; i++ {
		s.Tick()
	}
	if st, _ := s.Status(0); st != script.AwaitingInput {
		t.Fatalf("status: %v", st)
	}
	if s.Title(0) != "run fill (full)" {
		t.Fatalf("title: %q", s.Title(0))
	}
}

const loop = "i := 0\nwhile true {\n    i := (i + 1)\n}"

func TestRoundRobinFairness(t *testing.T) {
	s, _ := newShell(t, map[string]string{"loop": loop})
	for _, i := range []int{0, 2} {
		s.Focus(i)
		selectFile(t, s, i, "loop")
		typeString(s, "r")
	}
	for n := 0; n < 10; n++ {
		before := [2]int{s.Ticks(0), s.Ticks(2)}
		s.Tick()
		s.Tick()
		if s.Ticks(0)-before[0] != 1 || s.Ticks(2)-before[1] != 1 {
			t.Fatalf("round %d: ticks %d %d", n, s.Ticks(0), s.Ticks(2))
		}
	}
}

func TestWaitingScriptDoesNotBlockOthers(t *testing.T) {
	s, _ := newShell(t, map[string]string{
		"loop": loop,
		"ask":  "x := input(\"n?\")\nprint((x * 2))",
	})
	selectFile(t, s, 0, "ask")
	typeString(s, "r")
	s.Focus(1)
	selectFile(t, s, 1, "loop")
	typeString(s, "r")

	for i := 0; i < 4; i++ {
		s.Tick()
	}
	if st, _ := s.Status(0); st != script.AwaitingInput {
		t.Fatalf("status: %v", st)
	}
	if s.Ticks(0) != 1 || s.Ticks(1) != 3 {
		t.Fatalf("ticks: %d %d", s.Ticks(0), s.Ticks(1))
	}

	s.Focus(0)
	typeString(s, "21\n")
	s.Tick()
	if st, _ := s.Status(0); st != script.Continuing {
		t.Fatalf("status after input: %v", st)
	}
	s.Tick()
	if st, _ := s.Status(0); st != script.Finished {
		t.Fatalf("status at end: %v", st)
	}
	if !strings.HasPrefix(paneRow(s, 2), "n?21") || !strings.HasPrefix(paneRow(s, 3), "42") {
		t.Fatalf("rows: %q %q", paneRow(s, 2), paneRow(s, 3))
	}
}

func TestFilenameBar(t *testing.T) {
	s, fs := newShell(t, nil)
	press(s, keys.Raw(keys.F5))
	typeString(s, "newx")
	press(s, keys.Char(keys.Backspace))
	if !s.Renaming() || s.Bar() != "new" {
		t.Fatalf("bar: %v %q", s.Renaming(), s.Bar())
	}
	press(s, keys.Char(keys.Enter))
	if s.Renaming() || s.Bar() != "" {
		t.Fatalf("after create: %v %q", s.Renaming(), s.Bar())
	}
	names, _ := fs.ListDirectory()
	if strings.Join(names, ",") != "average,hello,new,nums,pi" {
		t.Fatalf("names: %v", names)
	}
	if n := s.slots[3].app.(*browserApp).ex.Count(); n != 5 {
		t.Fatalf("explorer not refreshed: %d", n)
	}

	press(s, keys.Raw(keys.F5), keys.Char(keys.Enter))
	if s.Bar() != EmptyNameMsg {
		t.Fatalf("empty name: %q", s.Bar())
	}

	press(s, keys.Raw(keys.F5))
	typeString(s, "abcdefghijk")
	press(s, keys.Char(keys.Enter))
	if s.Bar() != "ERROR file name too long" {
		t.Fatalf("long name: %q", s.Bar())
	}
}

func TestNonTextFileIsNotOpened(t *testing.T) {
	s, fs := newShell(t, nil)
	if err := storage.WriteFile(fs, "bin", []byte{0xff, 0xfe}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	selectFile(t, s, 0, "bin")
	typeString(s, "e")
	typeString(s, "r")
	if s.Mode(0) != ModeFiles || s.Bar() != "" {
		t.Fatalf("mode %s bar %q", s.Mode(0), s.Bar())
	}
}

func TestDrawChrome(t *testing.T) {
	s, _ := newShell(t, nil)
	s.Tick()
	g := s.Grid()
	if !strings.HasPrefix(g.Row(0), barLabel) {
		t.Fatalf("bar row: %q", g.Row(0))
	}
	if got := g.Row(0)[70:72]; got != "F1" {
		t.Fatalf("task manager: %q", got)
	}
	if got := string([]rune(g.Row(1))[8:17]); got != "F1──files" {
		t.Fatalf("label: %q", got)
	}
	if c := g.At(0, 1); c.Rune != '┌' || c.Attr != activeAttr {
		t.Fatalf("top-left corner: %+v", c)
	}
	if c := g.At(34, 12).Rune; c != '┼' {
		t.Fatalf("centre: %q", c)
	}
	if c := g.At(68, 24); c.Rune != '┘' || c.Attr != frameAttr {
		t.Fatalf("bottom-right corner: %+v", c)
	}
}
