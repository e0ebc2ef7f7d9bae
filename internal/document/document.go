// Package document implements the fixed-capacity line buffer behind the
// editor mode: cursor editing, byte-exact dump/load and wrap-aware drawing.
package document

import (
	"swim/internal/pane"
	"swim/internal/surface"
)

const (
	// LineCap is the number of characters a line can hold.
	LineCap = 255
	// DocLines is the number of lines in a document.
	DocLines = 64
)

// Line is a fixed-capacity run of characters. Cells at or past Len are blank.
type Line struct {
	data [LineCap]rune
	len  int
}

func (l *Line) Len() int { return l.len }

func (l *Line) String() string { return string(l.data[:l.len]) }

func (l *Line) reset() {
	*l = Line{}
	for i := range l.data {
		l.data[i] = ' '
	}
}

func (l *Line) at(i int) rune {
	if i < 0 || i >= l.len {
		return ' '
	}
	return l.data[i]
}

// Cursor addresses a line and a column within it.
type Cursor struct {
	Line int
	Col  int
}

// Document is a fixed array of lines with a cursor and a scroll offset.
type Document struct {
	lines    [DocLines]Line
	cursor   Cursor
	scroll   int
	modified bool
}

// New returns an empty document.
func New() *Document {
	d := &Document{}
	for i := range d.lines {
		d.lines[i].reset()
	}
	return d
}

func (d *Document) Cursor() Cursor { return d.cursor }
func (d *Document) Scroll() int    { return d.scroll }
func (d *Document) Modified() bool { return d.modified }

// MarkSaved clears the modified flag.
func (d *Document) MarkSaved() { d.modified = false }

// Line returns the content of line i.
func (d *Document) Line(i int) string {
	if i < 0 || i >= DocLines {
		return ""
	}
	return d.lines[i].String()
}

// LineLen returns the length of line i.
func (d *Document) LineLen(i int) int {
	if i < 0 || i >= DocLines {
		return 0
	}
	return d.lines[i].len
}

// SetCursor moves the cursor, clamping it into the document.
func (d *Document) SetCursor(c Cursor) {
	if c.Line < 0 {
		c.Line = 0
	}
	if c.Line >= DocLines {
		c.Line = DocLines - 1
	}
	if c.Col < 0 {
		c.Col = 0
	}
	d.cursor = c
	d.sanity()
}

// sanity clamps the cursor column to the current line.
func (d *Document) sanity() {
	if n := d.lines[d.cursor.Line].len; d.cursor.Col > n {
		d.cursor.Col = n
	}
}

// InsertChar inserts c at the cursor. A full line rejects the insert.
func (d *Document) InsertChar(c rune) {
	d.sanity()
	l := &d.lines[d.cursor.Line]
	if l.len >= LineCap {
		return
	}
	copy(l.data[d.cursor.Col+1:l.len+1], l.data[d.cursor.Col:l.len])
	l.data[d.cursor.Col] = c
	l.len++
	d.cursor.Col++
	d.modified = true
}

// Newline splits the current line at the cursor.
// On the last line this does nothing. When every line slot is in use the
// final line is pushed off the end and lost.
func (d *Document) Newline() {
	d.sanity()
	if d.cursor.Line+1 >= DocLines {
		return
	}
	cur := d.cursor.Line
	copy(d.lines[cur+2:], d.lines[cur+1:DocLines-1])

	next := &d.lines[cur+1]
	next.reset()
	l := &d.lines[cur]
	n := copy(next.data[:], l.data[d.cursor.Col:l.len])
	next.len = n
	for i := d.cursor.Col; i < l.len; i++ {
		l.data[i] = ' '
	}
	l.len = d.cursor.Col

	d.cursor = Cursor{Line: cur + 1, Col: 0}
	d.modified = true
}

// Backspace deletes the character before the cursor, or joins the current
// line onto the previous one when the cursor is at column zero. Characters
// that do not fit in the joined line are dropped.
func (d *Document) Backspace() {
	d.sanity()
	if d.cursor.Col == 0 {
		if d.cursor.Line == 0 {
			return
		}
		prev := &d.lines[d.cursor.Line-1]
		cur := &d.lines[d.cursor.Line]
		col := prev.len
		n := copy(prev.data[prev.len:], cur.data[:cur.len])
		prev.len += n

		copy(d.lines[d.cursor.Line:], d.lines[d.cursor.Line+1:])
		d.lines[DocLines-1].reset()

		d.cursor = Cursor{Line: d.cursor.Line - 1, Col: col}
		d.modified = true
		return
	}
	l := &d.lines[d.cursor.Line]
	copy(l.data[d.cursor.Col-1:], l.data[d.cursor.Col:l.len])
	l.data[l.len-1] = ' '
	l.len--
	d.cursor.Col--
	d.modified = true
}

func (d *Document) ArrowLeft() {
	d.sanity()
	if d.cursor.Col > 0 {
		d.cursor.Col--
		return
	}
	if d.cursor.Line == 0 {
		return
	}
	d.cursor.Line--
	d.cursor.Col = d.lines[d.cursor.Line].len
}

func (d *Document) ArrowRight() {
	d.sanity()
	if d.cursor.Col < d.lines[d.cursor.Line].len {
		d.cursor.Col++
		return
	}
	if d.cursor.Line == DocLines-1 {
		return
	}
	d.cursor.Line++
	d.cursor.Col = 0
}

func (d *Document) ArrowUp() {
	d.sanity()
	if d.cursor.Line == 0 {
		return
	}
	d.cursor.Line--
	d.sanity()
}

func (d *Document) ArrowDown() {
	d.sanity()
	if d.cursor.Line == DocLines-1 {
		return
	}
	d.cursor.Line++
	d.sanity()
}

// Dump writes the lines joined by '\n' into buf, stopping when buf is full,
// then trims trailing newlines. It returns the number of bytes written.
// Characters are stored one byte each.
func (d *Document) Dump(buf []byte) int {
	j := 0
	for i := range d.lines {
		l := &d.lines[i]
		for _, c := range l.data[:l.len] {
			if j >= len(buf) {
				return j
			}
			buf[j] = byte(c)
			j++
		}
		if j >= len(buf) {
			return j
		}
		buf[j] = '\n'
		j++
	}
	for j > 0 && buf[j-1] == '\n' {
		j--
	}
	return j
}

// Lines returns every line of the document, trailing empty lines included.
func (d *Document) Lines() []string {
	out := make([]string, DocLines)
	for i := range d.lines {
		out[i] = d.lines[i].String()
	}
	return out
}

// Load replays data through InsertChar and Newline, then homes the cursor.
// Carriage returns are skipped.
func (d *Document) Load(data []byte) {
	for _, b := range data {
		switch b {
		case '\n':
			d.Newline()
		case '\r':
		default:
			d.InsertChar(rune(b))
		}
	}
	d.cursor = Cursor{}
	d.scroll = 0
	d.modified = false
}

// KeepCursorOnScreen adjusts scroll so the cursor row lies inside a pane of
// the given size when lines wrap at width.
func (d *Document) KeepCursorOnScreen(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	d.sanity()
	total := 0
	for i := d.scroll; i <= d.cursor.Line; i++ {
		if i == d.cursor.Line {
			total += d.cursor.Col/width + 1
		} else {
			total += d.lines[i].len/width + 1
		}
	}
	switch {
	case total == 0:
		d.scroll = d.cursor.Line
	case total >= height:
		d.scroll += total - height
	}
	// A cursor line taller than the pane would push scroll past it.
	if d.scroll > d.cursor.Line {
		d.scroll = d.cursor.Line
	}
}

var (
	textAttr   = surface.Attr{FG: surface.LightGray, BG: surface.Black}
	cursorAttr = textAttr.Invert()
)

// Draw scrolls to the cursor and renders the visible lines into p.
func (d *Document) Draw(p *pane.Pane) {
	w, h := p.Width(), p.Height()
	if w <= 0 || h <= 0 {
		return
	}
	d.KeepCursorOnScreen(w, h)

	used := 0
	for line := d.scroll; used < h && line < DocLines; line++ {
		used += d.drawLine(p, line, used)
	}
	for ; used < h; used++ {
		p.ClearRow(0, used, textAttr)
	}
}

func (d *Document) drawLine(p *pane.Pane, line, top int) int {
	w, h := p.Width(), p.Height()
	l := &d.lines[line]
	rows := l.len/w + 1
	for i := 0; i < rows*w; i++ {
		y := top + i/w
		if y >= h {
			break
		}
		a := textAttr
		if line == d.cursor.Line && i == d.cursor.Col {
			a = cursorAttr
		}
		p.Plot(l.at(i), i%w, y, a)
	}
	return rows
}
