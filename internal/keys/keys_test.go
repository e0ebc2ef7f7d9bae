package keys

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFromTea(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want []Event
	}{
		{tea.KeyMsg{Type: tea.KeyF5}, []Event{Raw(F5)}},
		{tea.KeyMsg{Type: tea.KeyLeft}, []Event{Raw(Left)}},
		{tea.KeyMsg{Type: tea.KeyEnter}, []Event{Char('\n')}},
		{tea.KeyMsg{Type: tea.KeyBackspace}, []Event{Char('\x08')}},
		{tea.KeyMsg{Type: tea.KeyDelete}, []Event{Char('\x7f')}},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []Event{Char(' ')}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, []Event{Char('a'), Char('b')}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, nil},
		{tea.KeyMsg{Type: tea.KeyTab}, nil},
	}
	for _, c := range cases {
		got := FromTea(c.msg)
		if len(got) != len(c.want) {
			t.Fatalf("%v: got %v want %v", c.msg, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("%v: event %d got %+v want %+v", c.msg, i, got[i], c.want[i])
			}
		}
	}
}

func TestDrawable(t *testing.T) {
	for _, c := range []rune{'a', ' ', '~', '('} {
		if !Drawable(c) {
			t.Errorf("%q should be drawable", c)
		}
	}
	for _, c := range []rune{'\n', '\x08', '\x7f', 'é', '世'} {
		if Drawable(c) {
			t.Errorf("%q should not be drawable", c)
		}
	}
}

func TestEventIsRaw(t *testing.T) {
	if !Raw(F1).IsRaw() || Char('a').IsRaw() {
		t.Fatalf("IsRaw mismatch")
	}
}
