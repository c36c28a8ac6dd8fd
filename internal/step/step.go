package step

// Kind identifies the tag of a playback event.
type Kind uint8

const (
	KindCompare Kind = iota + 1
	KindSwap
	KindRange
	KindFound
	KindNotFound
	KindCurrent
	KindNewMin
	KindShift
	KindInsert
	KindPlace
	KindCopy
	KindSorted
	KindDivide
	KindMerge
	KindComplete
	KindQueue
	KindStack
	KindVisit
	KindBacktrack
	KindError
)

// String returns the wire tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindCompare:
		return "compare"
	case KindSwap:
		return "swap"
	case KindRange:
		return "range"
	case KindFound:
		return "found"
	case KindNotFound:
		return "not-found"
	case KindCurrent:
		return "current"
	case KindNewMin:
		return "new-min"
	case KindShift:
		return "shift"
	case KindInsert:
		return "insert"
	case KindPlace:
		return "place"
	case KindCopy:
		return "copy"
	case KindSorted:
		return "sorted"
	case KindDivide:
		return "divide"
	case KindMerge:
		return "merge"
	case KindComplete:
		return "complete"
	case KindQueue:
		return "queue"
	case KindStack:
		return "stack"
	case KindVisit:
		return "visit"
	case KindBacktrack:
		return "backtrack"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Terminal reports whether the kind closes its stream. No event ever
// follows a terminal one, except that in traversals [Found] is followed
// by the closing [Complete].
func (k Kind) Terminal() bool {
	switch k {
	case KindFound, KindNotFound, KindComplete, KindError:
		return true
	}
	return false
}

// NoIndex marks an absent second operand in a [Compare].
const NoIndex = -1

// Event is one atomic, typed notification of an algorithm's state
// transition. The vocabulary is closed: the variants in this package are
// the only implementations.
type Event interface {
	Kind() Kind
	isEvent()
}

// Producer is a pausable algorithm run. Ranging over it computes one
// event per resumption; stopping the range abandons the run. Unless the
// consumer stops early, the sequence closes with a terminal event.
type Producer func(yield func(Event) bool)

// Compare reports a comparator evaluation; nothing is mutated.
// J is the second element's index, or [NoIndex] when the comparison is
// against Target.
type Compare struct {
	I, J   int
	Target float64
}

// Swap reports two positions exchanged. Array is the complete post-swap
// state.
type Swap struct {
	I, J  int
	Array []float64
}

// Range reports the active search window [Lo, Hi] in original-array
// positions.
type Range struct {
	Lo, Hi int
	Target float64
}

// Found is the terminal success of a search, or a target match during a
// traversal.
type Found struct {
	Index int
	Value float64
}

// NotFound is the terminal failure of a search that exhausted its space.
type NotFound struct {
	Target float64
}

// Current marks the element a pass is currently resolving.
type Current struct {
	Index int
}

// NewMin marks a new minimum candidate during selection.
type NewMin struct {
	Index int
}

// Move reports a single-element relocation. Op is one of [KindShift],
// [KindInsert], [KindPlace] or [KindCopy]; Array is the complete
// post-move state.
type Move struct {
	Op    Kind
	Index int
	Array []float64
}

// Sorted reports positions Lo through Hi settled in final order.
// A single position has Lo == Hi. Sorted ranges only ever grow within a
// run.
type Sorted struct {
	Lo, Hi int
}

// Divide reports a range about to be split.
type Divide struct {
	Lo, Hi int
}

// Merge reports a range whose halves are about to be merged. Array is
// optional; the authoritative snapshots ride on the per-position moves.
type Merge struct {
	Lo, Hi int
	Array  []float64
}

// Complete is the terminal event of a sort or traversal. Sorts carry the
// final array; traversals carry the visited values in traversal order
// and, when a target was supplied, whether it was found.
type Complete struct {
	Lo, Hi    int
	Array     []float64
	Visited   []float64
	HasTarget bool
	Found     bool
}

// Queue is the current BFS frontier, front first, as original indices.
type Queue struct {
	Nodes []int
}

// Stack is the root-to-current DFS path as original indices.
type Stack struct {
	Nodes []int
}

// Visit reports a tree node being processed in traversal order.
type Visit struct {
	Index int
	Value float64
	Depth int
}

// Backtrack reports DFS unwinding past a node.
type Backtrack struct {
	Index int
}

// Error is the terminal event for malformed input. It is both an [Event]
// and a Go error, so the same value travels through a stream or a return
// path.
type Error struct {
	Message string
}

func (e Error) Error() string { return e.Message }

func (Compare) Kind() Kind   { return KindCompare }
func (Swap) Kind() Kind      { return KindSwap }
func (Range) Kind() Kind     { return KindRange }
func (Found) Kind() Kind     { return KindFound }
func (NotFound) Kind() Kind  { return KindNotFound }
func (Current) Kind() Kind   { return KindCurrent }
func (NewMin) Kind() Kind    { return KindNewMin }
func (m Move) Kind() Kind    { return m.Op }
func (Sorted) Kind() Kind    { return KindSorted }
func (Divide) Kind() Kind    { return KindDivide }
func (Merge) Kind() Kind     { return KindMerge }
func (Complete) Kind() Kind  { return KindComplete }
func (Queue) Kind() Kind     { return KindQueue }
func (Stack) Kind() Kind     { return KindStack }
func (Visit) Kind() Kind     { return KindVisit }
func (Backtrack) Kind() Kind { return KindBacktrack }
func (Error) Kind() Kind     { return KindError }

func (Compare) isEvent()   {}
func (Swap) isEvent()      {}
func (Range) isEvent()     {}
func (Found) isEvent()     {}
func (NotFound) isEvent()  {}
func (Current) isEvent()   {}
func (NewMin) isEvent()    {}
func (Move) isEvent()      {}
func (Sorted) isEvent()    {}
func (Divide) isEvent()    {}
func (Merge) isEvent()     {}
func (Complete) isEvent()  {}
func (Queue) isEvent()     {}
func (Stack) isEvent()     {}
func (Visit) isEvent()     {}
func (Backtrack) isEvent() {}
func (Error) isEvent()     {}
