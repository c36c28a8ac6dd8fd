package player

import (
	"github.com/DanielRosa74/algo-visualizer/internal/step"
)

// Outcome classifies how a playback ended.
type Outcome uint8

const (
	OutcomeRunning Outcome = iota
	OutcomeFound
	OutcomeNotFound
	OutcomeComplete
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not-found"
	case OutcomeComplete:
		return "complete"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// Board is the render-ready state of one playback. Every event folds
// into it: snapshots replace Values wholesale, transient marks (Active,
// Moved) last one event, and cumulative state (Sorted, Visited) only
// grows. Indices are always positions in the caller's original input.
//
// Snapshot slices arriving in events are never mutated afterwards, so a
// renderer may keep old Values slices around for scrubbing.
type Board struct {
	Values []float64 // current working array, or tree slots for traversals

	Active  []int        // positions touched by the latest compare/backtrack
	Moved   []int        // positions written by the latest swap/move
	Current int          // scanned or visited position, -1 when none
	Min     int          // running minimum candidate, -1 when none
	Window  [2]int       // active subrange endpoints, {-1,-1} when none
	Sorted  map[int]bool // positions settled in final order

	Frontier        []int // pending traversal nodes after the latest queue/stack event
	FrontierIsStack bool
	Visited         []int     // node positions in visit order
	VisitedValues   []float64 // values in visit order
	Depth           int       // depth of the latest visit

	Found   int // position of a located target, -1 when none
	Outcome Outcome
	Message string // diagnostic text when Outcome is OutcomeError

	Steps int
	Last  step.Event
}

// NewBoard copies values into a fresh board with no marks set.
func NewBoard(values []float64) *Board {
	return &Board{
		Values:  append([]float64(nil), values...),
		Current: -1,
		Min:     -1,
		Window:  [2]int{-1, -1},
		Sorted:  make(map[int]bool),
		Found:   -1,
	}
}

// Apply folds one event into the board. Transient marks from the
// previous event are cleared first.
func (b *Board) Apply(ev step.Event) {
	b.Steps++
	b.Last = ev
	b.Active = b.Active[:0]
	b.Moved = b.Moved[:0]

	switch e := ev.(type) {
	case step.Compare:
		b.Active = append(b.Active, e.I)
		if e.J != step.NoIndex {
			b.Active = append(b.Active, e.J)
		}
	case step.Swap:
		b.Values = e.Array
		b.Moved = append(b.Moved, e.I, e.J)
	case step.Range:
		b.Window = [2]int{e.Lo, e.Hi}
	case step.Found:
		b.Found = e.Index
		b.Outcome = OutcomeFound
	case step.NotFound:
		b.Outcome = OutcomeNotFound
	case step.Current:
		b.Current = e.Index
		b.Min = -1
	case step.NewMin:
		b.Min = e.Index
	case step.Move:
		b.Values = e.Array
		b.Moved = append(b.Moved, e.Index)
	case step.Sorted:
		for p := e.Lo; p <= e.Hi; p++ {
			b.Sorted[p] = true
		}
	case step.Divide:
		b.Window = [2]int{e.Lo, e.Hi}
	case step.Merge:
		b.Window = [2]int{e.Lo, e.Hi}
		if e.Array != nil {
			b.Values = e.Array
		}
	case step.Complete:
		if e.Array != nil {
			b.Values = e.Array
		}
		if b.Outcome != OutcomeFound {
			b.Outcome = OutcomeComplete
		}
	case step.Queue:
		b.Frontier = e.Nodes
		b.FrontierIsStack = false
	case step.Stack:
		b.Frontier = e.Nodes
		b.FrontierIsStack = true
	case step.Visit:
		b.Current = e.Index
		b.Visited = append(b.Visited, e.Index)
		b.VisitedValues = append(b.VisitedValues, e.Value)
		b.Depth = e.Depth
	case step.Backtrack:
		b.Active = append(b.Active, e.Index)
		b.Current = e.Index
	case step.Error:
		b.Outcome = OutcomeError
		b.Message = e.Message
	}
}

// Done reports whether a terminal event has been applied.
func (b *Board) Done() bool {
	return b.Outcome != OutcomeRunning
}
