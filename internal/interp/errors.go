package interp

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax           = errors.New("syntax error")
	ErrUnknownVariable  = errors.New("unknown variable")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNotAwaitingInput = errors.New("no input expected")
	ErrEmptyInput       = errors.New("empty input")
)

// PosError ties an error to a source line.
type PosError struct {
	Line int
	Err  error
	Msg  string
}

func (e *PosError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Msg)
}

func (e *PosError) Unwrap() error { return e.Err }

func errAt(line int, err error, format string, args ...any) error {
	return &PosError{Line: line, Err: err, Msg: fmt.Sprintf(format, args...)}
}
