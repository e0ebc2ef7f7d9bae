package script

import (
	"bufio"
	"context"
	"errors"
	"io"
)

var (
	// ErrInputClosed means the program asked for input after in was exhausted.
	ErrInputClosed = errors.New("input closed while script awaits input")
	// ErrTranscriptFull means a typed line no longer fits in the transcript.
	ErrTranscriptFull = errors.New("transcript full")
	// ErrTickLimit means the program was still running after the tick limit.
	ErrTickLimit = errors.New("tick limit reached")
)

// Drive runs s to completion without a screen. New program output is copied
// to out after every tick and each line of in answers one input request.
// Typed lines are not echoed. maxTicks <= 0 means no limit.
func Drive(ctx context.Context, s *Session, in io.Reader, out io.Writer, maxTicks int) error {
	sc := bufio.NewScanner(in)
	printed := 0
	for ticks := 0; s.status != Finished; ticks++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if maxTicks > 0 && ticks >= maxTicks {
			return ErrTickLimit
		}
		s.Tick()
		if t := s.io.buf; len(t) > printed {
			if _, err := out.Write(t[printed:]); err != nil {
				return err
			}
			printed = len(t)
		}
		if s.status != AwaitingInput {
			continue
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return err
			}
			return ErrInputClosed
		}
		for _, c := range sc.Text() {
			s.Input(c)
		}
		s.Input('\n')
		if _, ok := s.io.pendingLine(); !ok {
			return ErrTranscriptFull
		}
		printed = len(s.io.buf)
	}
	return nil
}
