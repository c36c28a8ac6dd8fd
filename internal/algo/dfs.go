package algo

import (
	"math"

	"github.com/DanielRosa74/algo-visualizer/internal/bintree"
	"github.com/DanielRosa74/algo-visualizer/internal/step"
)

// DFS walks the tree depth first, announcing the root-to-current path
// before descending into each node. Order controls when a node's visit
// fires relative to its children; an unrecognized order falls back to
// preorder. On a target match the remaining recursion unwinds with no
// further events before the closing complete; nodes fully processed
// without a match emit a backtrack on the way up.
func DFS(slots []float64, target float64, order Order) step.Producer {
	return func(yield func(step.Event) bool) {
		root := bintree.Build(slots)
		w := &dfsWalk{
			yield:     yield,
			order:     order,
			target:    target,
			hasTarget: !math.IsNaN(target),
		}
		if root != nil {
			w.walk(root, 0)
		}
		if w.stopped {
			return
		}
		yield(step.Complete{HasTarget: w.hasTarget, Found: w.found, Visited: w.visited})
	}
}

// dfsWalk threads the cancellation state through the recursion: walk and
// visit return false to unwind, and stopped records whether the unwind
// came from the consumer (no more events at all) or from a target match
// (complete still follows).
type dfsWalk struct {
	yield     func(step.Event) bool
	order     Order
	target    float64
	hasTarget bool
	path      []int
	visited   []float64
	found     bool
	stopped   bool
}

func (w *dfsWalk) walk(n *bintree.Node, depth int) bool {
	w.path = append(w.path, n.Index)
	if !w.emit(step.Stack{Nodes: append([]int(nil), w.path...)}) {
		return false
	}

	switch w.order {
	case Inorder:
		if n.Left != nil && !w.walk(n.Left, depth+1) {
			return false
		}
		if !w.visit(n, depth) {
			return false
		}
		if n.Right != nil && !w.walk(n.Right, depth+1) {
			return false
		}
	case Postorder:
		if n.Left != nil && !w.walk(n.Left, depth+1) {
			return false
		}
		if n.Right != nil && !w.walk(n.Right, depth+1) {
			return false
		}
		if !w.visit(n, depth) {
			return false
		}
	default:
		if !w.visit(n, depth) {
			return false
		}
		if n.Left != nil && !w.walk(n.Left, depth+1) {
			return false
		}
		if n.Right != nil && !w.walk(n.Right, depth+1) {
			return false
		}
	}

	if !w.emit(step.Backtrack{Index: n.Index}) {
		return false
	}
	w.path = w.path[:len(w.path)-1]
	return true
}

func (w *dfsWalk) visit(n *bintree.Node, depth int) bool {
	if !w.emit(step.Visit{Index: n.Index, Value: n.Value, Depth: depth}) {
		return false
	}
	w.visited = append(w.visited, n.Value)
	if w.hasTarget && n.Value == w.target {
		if !w.yield(step.Found{Index: n.Index, Value: n.Value}) {
			w.stopped = true
		}
		w.found = true
		return false
	}
	return true
}

func (w *dfsWalk) emit(ev step.Event) bool {
	if !w.yield(ev) {
		w.stopped = true
		return false
	}
	return true
}
