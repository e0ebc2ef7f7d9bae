// Package keys decodes terminal key presses into the events the shell
// understands: named keys and plain characters.
package keys

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Key is a named key with no character value.
type Key int

const (
	None Key = iota
	F1
	F2
	F3
	F4
	F5
	F6
	Up
	Down
	Left
	Right
)

var keyNames = map[Key]string{
	F1: "f1", F2: "f2", F3: "f3", F4: "f4", F5: "f5", F6: "f6",
	Up: "up", Down: "down", Left: "left", Right: "right",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "none"
}

// Control characters delivered as Char events.
const (
	Enter     = '\n'
	Backspace = '\x08'
	Delete    = '\x7f'
)

// Event is either a raw named key or a decoded character.
type Event struct {
	Key  Key
	Char rune
}

func Raw(k Key) Event       { return Event{Key: k} }
func Char(c rune) Event     { return Event{Char: c} }
func (e Event) IsRaw() bool { return e.Key != None }

// Drawable reports whether c can be placed in a single text cell.
func Drawable(c rune) bool {
	return c >= ' ' && c <= '~'
}

var teaKeys = map[tea.KeyType]Event{
	tea.KeyF1:        Raw(F1),
	tea.KeyF2:        Raw(F2),
	tea.KeyF3:        Raw(F3),
	tea.KeyF4:        Raw(F4),
	tea.KeyF5:        Raw(F5),
	tea.KeyF6:        Raw(F6),
	tea.KeyUp:        Raw(Up),
	tea.KeyDown:      Raw(Down),
	tea.KeyLeft:      Raw(Left),
	tea.KeyRight:     Raw(Right),
	tea.KeyEnter:     Char(Enter),
	tea.KeyBackspace: Char(Backspace),
	tea.KeyDelete:    Char(Delete),
	tea.KeySpace:     Char(' '),
}

// FromTea translates a Bubble Tea key message. Pasted text yields one
// event per rune; keys with no meaning to the shell yield none.
func FromTea(msg tea.KeyMsg) []Event {
	if ev, ok := teaKeys[msg.Type]; ok {
		return []Event{ev}
	}
	if msg.Type != tea.KeyRunes || msg.Alt {
		return nil
	}
	out := make([]Event, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		if r == '\r' {
			r = Enter
		}
		out = append(out, Char(r))
	}
	return out
}
