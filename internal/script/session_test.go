package script

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"swim/internal/pane"
	"swim/internal/surface"
)

// stubInterp finishes after a fixed number of steps, optionally asking for
// input on the first one.
type stubInterp struct {
	steps    int
	ticks    int
	askFirst bool
	awaiting bool
	inputs   []string
	reject   error
}

func (s *stubInterp) Tick(out io.Writer) Status {
	s.ticks++
	if s.askFirst && s.ticks == 1 {
		fmt.Fprint(out, "? ")
		s.awaiting = true
		return AwaitingInput
	}
	fmt.Fprintf(out, "step %d\n", s.ticks)
	if s.ticks >= s.steps {
		return Finished
	}
	return Continuing
}

func (s *stubInterp) ProvideInput(line string) error {
	if s.reject != nil {
		err := s.reject
		s.reject = nil
		return err
	}
	s.inputs = append(s.inputs, line)
	s.awaiting = false
	return nil
}

func TestTickUntilFinished(t *testing.T) {
	in := &stubInterp{steps: 3}
	s := New("nums", in)
	for i := 0; i < 3; i++ {
		if !s.Tick() {
			t.Fatalf("tick %d did no work", i)
		}
	}
	if s.Status() != Finished {
		t.Fatalf("status: %v", s.Status())
	}
	if s.Tick() {
		t.Fatalf("finished session reported work")
	}
	if in.ticks != 3 {
		t.Fatalf("interpreter ticks: %d", in.ticks)
	}
}

func TestAwaitInputThenResume(t *testing.T) {
	in := &stubInterp{steps: 2, askFirst: true}
	s := New("ask", in)
	if !s.Tick() || s.Status() != AwaitingInput {
		t.Fatalf("status: %v", s.Status())
	}
	if s.Tick() {
		t.Fatalf("waiting tick reported work")
	}
	s.Input('5')
	if s.Tick() {
		t.Fatalf("partial line reported work")
	}
	s.Input('\n')
	if s.Tick() {
		t.Fatalf("input delivery reported work")
	}
	if s.Status() != Continuing {
		t.Fatalf("status after input: %v", s.Status())
	}
	if len(in.inputs) != 1 || in.inputs[0] != "5" {
		t.Fatalf("inputs: %q", in.inputs)
	}
	if got := s.Transcript(); got != "? 5\n" {
		t.Fatalf("transcript: %q", got)
	}
}

func TestRejectedInputStaysWaiting(t *testing.T) {
	in := &stubInterp{steps: 2, askFirst: true, reject: errors.New("empty input")}
	s := New("ask", in)
	s.Tick()
	s.Input('\n')
	s.Tick()
	if s.Status() != AwaitingInput {
		t.Fatalf("status: %v", s.Status())
	}
	if got := s.Transcript(); got != "? \nempty input\n" {
		t.Fatalf("transcript: %q", got)
	}
	s.Input('7')
	s.Input('\n')
	s.Tick()
	if s.Status() != Continuing || in.inputs[0] != "7" {
		t.Fatalf("retry: %v %q", s.Status(), in.inputs)
	}
}

func TestBufferDropsWhenFull(t *testing.T) {
	s := New("x", &stubInterp{steps: 1})
	for i := 0; i < BufferCap+10; i++ {
		s.Input('a')
	}
	if n := len(s.Transcript()); n != BufferCap {
		t.Fatalf("len: %d", n)
	}
	if !s.Full() {
		t.Fatalf("Full() = false at capacity")
	}
}

func TestFullTranscriptBlocksInput(t *testing.T) {
	in := &stubInterp{steps: 2, askFirst: true}
	s := New("x", in)
	if s.Full() {
		t.Fatalf("Full() = true on a new session")
	}
	s.Tick()
	if s.Status() != AwaitingInput {
		t.Fatalf("status: %v", s.Status())
	}
	for !s.Full() {
		s.Input('7')
	}
	s.Input('\n')
	s.Tick()
	if s.Status() != AwaitingInput || len(in.inputs) != 0 {
		t.Fatalf("input got through a full transcript: %v %q", s.Status(), in.inputs)
	}
}

func TestDrawShowsTailAndCursor(t *testing.T) {
	g := surface.NewGrid(4, 3)
	p := pane.New(g, 0, 0, 4, 3)
	s := New("x", &stubInterp{steps: 1})
	for _, r := range "ab\ncdefg\nh" {
		s.Input(r)
	}
	s.Draw(p)
	// rows: "ab", "cdef", "g", "h" -> last three fit
	want := []string{"cdef", "g   ", "h   "}
	for y, w := range want {
		if got := g.Row(y); got != w {
			t.Fatalf("row %d: %q want %q", y, got, w)
		}
	}
	if a := g.At(1, 2).Attr; a != cursorAttr {
		t.Fatalf("cursor attr: %+v", a)
	}
}

func TestRowStartsWrap(t *testing.T) {
	starts, x := rowStarts(strings.Repeat("x", 8), 4)
	if len(starts) != 3 || x != 0 {
		t.Fatalf("starts %v col %d", starts, x)
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	a := New("a", &stubInterp{})
	b := New("b", &stubInterp{})
	if a.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("ids: %q %q", a.ID(), b.ID())
	}
}
