package player

import (
	"github.com/DanielRosa74/algo-visualizer/internal/step"
)

// Summary aggregates one finished (or interrupted) playback.
type Summary struct {
	Events      int
	Counts      map[step.Kind]int
	Comparisons int
	Moves       int // mutating events: swaps, shifts, inserts, places, copies
	Board       *Board
}

func NewSummary(b *Board) *Summary {
	return &Summary{
		Counts: make(map[step.Kind]int),
		Board:  b,
	}
}

// Observe folds one dispatched event into the totals.
func (s *Summary) Observe(ev step.Event) {
	s.Events++
	k := ev.Kind()
	s.Counts[k]++

	switch k {
	case step.KindCompare:
		s.Comparisons++
	case step.KindSwap, step.KindShift, step.KindInsert, step.KindPlace, step.KindCopy:
		s.Moves++
	}
}

// Outcome reports how the playback ended, OutcomeRunning if it has not.
func (s *Summary) Outcome() Outcome { return s.Board.Outcome }
