package script

import "io"

// Status is the run state of a script.
type Status int

const (
	Continuing Status = iota
	AwaitingInput
	Finished
)

func (s Status) String() string {
	switch s {
	case Continuing:
		return "running"
	case AwaitingInput:
		return "input"
	case Finished:
		return "done"
	}
	return "unknown"
}

// Interpreter executes a program one bounded step per Tick.
type Interpreter interface {
	// Tick runs one step, writing any output to out.
	Tick(out io.Writer) Status
	// ProvideInput hands the interpreter the line it asked for.
	ProvideInput(line string) error
}
