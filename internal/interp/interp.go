// Package interp is a small statement language that runs one statement per
// Tick so a cooperative scheduler can interleave several programs.
package interp

import (
	"fmt"
	"io"
	"strings"

	"swim/internal/script"
)

// frame is one block being executed. A while statement leaves its own pc in
// place while its body runs.
type frame struct {
	stmts []stmt
	pc    int
}

// Interpreter holds the parsed program and its execution state.
type Interpreter struct {
	stack    []frame
	vars     map[string]Value
	awaiting string
	status   script.Status
	// err is a parse failure reported on the first Tick.
	err error
}

var _ script.Interpreter = (*Interpreter)(nil)

// New parses source. Parse errors are reported through the first Tick.
func New(source string) *Interpreter {
	in := &Interpreter{vars: map[string]Value{}, status: script.Continuing}
	prog, err := parse(source)
	if err != nil {
		in.err = err
		return in
	}
	in.stack = []frame{{stmts: prog}}
	return in
}

// Err returns the error that stopped the program, if any.
func (in *Interpreter) Err() error { return in.err }

// Var returns a variable's current value.
func (in *Interpreter) Var(name string) (Value, bool) {
	v, ok := in.vars[name]
	return v, ok
}

// Tick executes one statement.
func (in *Interpreter) Tick(out io.Writer) script.Status {
	switch in.status {
	case script.Finished, script.AwaitingInput:
		return in.status
	}
	if in.err != nil {
		return in.fail(out, in.err)
	}
	in.unwind()
	if len(in.stack) == 0 {
		in.status = script.Finished
		return in.status
	}
	if err := in.step(out); err != nil {
		return in.fail(out, err)
	}
	if in.status == script.AwaitingInput {
		return in.status
	}
	in.unwind()
	if len(in.stack) == 0 {
		in.status = script.Finished
	}
	return in.status
}

// ProvideInput stores line into the variable the pending input statement names.
func (in *Interpreter) ProvideInput(line string) error {
	if in.status != script.AwaitingInput {
		return ErrNotAwaitingInput
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return ErrEmptyInput
	}
	in.vars[in.awaiting] = ParseValue(line)
	in.awaiting = ""
	in.status = script.Continuing
	return nil
}

func (in *Interpreter) fail(out io.Writer, err error) script.Status {
	in.err = err
	fmt.Fprintf(out, "error: %v\n", err)
	in.stack = nil
	in.status = script.Finished
	return in.status
}

// unwind pops finished frames. Finishing a loop body leaves the parent
// pointing at the while statement so its condition is checked next.
func (in *Interpreter) unwind() {
	for len(in.stack) > 0 {
		top := &in.stack[len(in.stack)-1]
		if top.pc < len(top.stmts) {
			return
		}
		in.stack = in.stack[:len(in.stack)-1]
	}
}

func (in *Interpreter) push(stmts []stmt) {
	in.stack = append(in.stack, frame{stmts: stmts})
}

func (in *Interpreter) step(out io.Writer) error {
	top := &in.stack[len(in.stack)-1]
	s := top.stmts[top.pc]
	switch s := s.(type) {
	case *assignStmt:
		v, err := in.eval(s.expr)
		if err != nil {
			return err
		}
		in.vars[s.name] = v
		top.pc++
	case *printStmt:
		v, err := in.eval(s.expr)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n", v)
		top.pc++
	case *inputStmt:
		v, err := in.eval(s.prompt)
		if err != nil {
			return err
		}
		io.WriteString(out, v.String())
		top.pc++
		in.awaiting = s.name
		in.status = script.AwaitingInput
	case *whileStmt:
		ok, err := in.cond(s.cond)
		if err != nil {
			return err
		}
		if !ok {
			top.pc++
			return nil
		}
		if len(s.body) == 0 {
			return nil
		}
		in.push(s.body)
	case *ifStmt:
		ok, err := in.cond(s.cond)
		if err != nil {
			return err
		}
		top.pc++
		if ok && len(s.then) > 0 {
			in.push(s.then)
		} else if !ok && len(s.els) > 0 {
			in.push(s.els)
		}
	}
	return nil
}

func (in *Interpreter) cond(e expr) (bool, error) {
	v, err := in.eval(e)
	if err != nil {
		return false, err
	}
	if v.Kind != KindBool {
		return false, errAt(e.exprLine(), ErrTypeMismatch, "condition is %s, not bool", v.Kind)
	}
	return v.B, nil
}
