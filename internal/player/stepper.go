package player

import (
	"iter"

	"github.com/DanielRosa74/algo-visualizer/internal/step"
)

// Stepper pulls events from a producer one at a time, folding each into
// its board. The producer runs only as far as the events actually
// pulled, so a caller may abandon a stream mid-run without paying for
// the rest of it.
type Stepper struct {
	next  func() (step.Event, bool)
	stop  func()
	board *Board
	done  bool
}

// NewStepper starts a producer in pull mode over a fresh board seeded
// with values. Callers must Close the stepper when finished with it.
func NewStepper(p step.Producer, values []float64) *Stepper {
	next, stop := iter.Pull(iter.Seq[step.Event](p))
	return &Stepper{next: next, stop: stop, board: NewBoard(values)}
}

// Step advances the stream by exactly one event, applies it to the
// board, and returns it. ok is false once the stream is exhausted or
// the stepper has been closed.
func (s *Stepper) Step() (ev step.Event, ok bool) {
	if s.done {
		return nil, false
	}
	ev, ok = s.next()
	if !ok {
		s.done = true
		return nil, false
	}
	s.board.Apply(ev)
	return ev, true
}

// Close abandons the producer. Safe to call more than once.
func (s *Stepper) Close() {
	s.done = true
	s.stop()
}

// Done reports whether the stream is exhausted or closed.
func (s *Stepper) Done() bool { return s.done }

// Board returns the board the stepper folds events into.
func (s *Stepper) Board() *Board { return s.board }
