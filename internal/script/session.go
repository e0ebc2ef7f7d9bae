// Package script wraps a running interpreter with its transcript and the
// state needed to pause for keyboard input between scheduler ticks.
package script

import (
	"github.com/google/uuid"

	"swim/internal/pane"
	"swim/internal/surface"
)

// BufferCap is the transcript capacity in bytes.
const BufferCap = 1024

// ioBuffer is the transcript. Program output and typed keys share it; once
// full, further bytes are dropped.
type ioBuffer struct {
	buf []byte
	// mark is where the pending input line starts, or -1.
	mark int
}

// Write never fails; bytes past BufferCap are dropped.
func (b *ioBuffer) Write(p []byte) (int, error) {
	b.add(p)
	return len(p), nil
}

// add appends what fits of p.
func (b *ioBuffer) add(p []byte) {
	room := BufferCap - len(b.buf)
	if room > len(p) {
		room = len(p)
	}
	if room > 0 {
		b.buf = append(b.buf, p[:room]...)
	}
}

func (b *ioBuffer) beginInput() { b.mark = len(b.buf) }

// pendingLine returns the text typed since the mark once it ends in '\n'.
func (b *ioBuffer) pendingLine() (string, bool) {
	if b.mark < 0 || len(b.buf) <= b.mark || b.buf[len(b.buf)-1] != '\n' {
		return "", false
	}
	return string(b.buf[b.mark : len(b.buf)-1]), true
}

// Session is one running script bound to a pane.
type Session struct {
	id     string
	name   string
	interp Interpreter
	io     ioBuffer
	status Status
}

// New starts a session over interp. name is used for display and logging.
func New(name string, interp Interpreter) *Session {
	return &Session{
		id:     uuid.NewString(),
		name:   name,
		interp: interp,
		io:     ioBuffer{buf: make([]byte, 0, BufferCap), mark: -1},
		status: Continuing,
	}
}

func (s *Session) ID() string         { return s.id }
func (s *Session) Name() string       { return s.name }
func (s *Session) Status() Status     { return s.status }
func (s *Session) Transcript() string { return string(s.io.buf) }

// Full reports whether the transcript has no room left. Typed keys are
// dropped from then on, so a pending input request can never complete.
func (s *Session) Full() bool { return len(s.io.buf) >= BufferCap }

// Tick advances the session and reports whether the interpreter did work.
// Waiting for input never counts as work.
func (s *Session) Tick() bool {
	switch s.status {
	case Continuing:
		s.status = s.interp.Tick(&s.io)
		if s.status == AwaitingInput {
			s.io.beginInput()
		}
		return true
	case AwaitingInput:
		line, ok := s.io.pendingLine()
		if !ok {
			return false
		}
		if err := s.interp.ProvideInput(line); err != nil {
			s.io.add([]byte(err.Error() + "\n"))
			s.io.beginInput()
			return false
		}
		s.io.mark = -1
		s.status = Continuing
		return false
	}
	return false
}

// Input appends one typed character to the transcript.
func (s *Session) Input(c rune) {
	s.io.add([]byte(string(c)))
}

var (
	textAttr   = surface.Attr{FG: surface.LightGray, BG: surface.Black}
	cursorAttr = textAttr.Invert()
)

// rowStarts returns the byte offset of every display row of text wrapped at
// width, and the column the cursor sits in after the last character.
func rowStarts(text string, width int) ([]int, int) {
	starts := []int{0}
	x := 0
	for i, r := range text {
		if r == '\n' {
			starts = append(starts, i+1)
			x = 0
			continue
		}
		if x == width {
			starts = append(starts, i)
			x = 0
		}
		x++
	}
	if x == width {
		starts = append(starts, len(text))
		x = 0
	}
	return starts, x
}

// Draw renders the tail of the transcript that fits in p, followed by the
// cursor cell.
func (s *Session) Draw(p *pane.Pane) {
	w, h := p.Width(), p.Height()
	if w <= 0 || h <= 0 {
		return
	}
	text := string(s.io.buf)
	starts, _ := rowStarts(text, w)
	first := 0
	if len(starts) > h {
		first = len(starts) - h
	}

	x, y := 0, 0
	for _, r := range text[starts[first]:] {
		if r == '\n' {
			p.ClearRow(x, y, textAttr)
			x, y = 0, y+1
			continue
		}
		if x == w {
			x, y = 0, y+1
		}
		p.Plot(r, x, y, textAttr)
		x++
	}
	if x == w {
		x, y = 0, y+1
	}
	p.Plot(' ', x, y, cursorAttr)
	p.ClearRow(x+1, y, textAttr)
	for y++; y < h; y++ {
		p.ClearRow(0, y, textAttr)
	}
}
