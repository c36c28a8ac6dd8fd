package algo

import (
	"math"

	"github.com/DanielRosa74/algo-visualizer/internal/bintree"
	"github.com/DanielRosa74/algo-visualizer/internal/step"
)

// BFS walks the tree level by level. Each iteration announces the
// frontier queue before dequeuing, visits the dequeued node, reports a
// target match, then enqueues the node's children. A math.NaN target
// means traverse only. The closing complete event carries the visited
// values in traversal order.
func BFS(slots []float64, target float64) step.Producer {
	return func(yield func(step.Event) bool) {
		root := bintree.Build(slots)
		hasTarget := !math.IsNaN(target)

		type item struct {
			node  *bintree.Node
			depth int
		}
		var queue []item
		if root != nil {
			queue = append(queue, item{root, 0})
		}

		var visited []float64
		found := false
		for len(queue) > 0 {
			front := make([]int, len(queue))
			for i, it := range queue {
				front[i] = it.node.Index
			}
			if !yield(step.Queue{Nodes: front}) {
				return
			}

			it := queue[0]
			queue = queue[1:]
			if !yield(step.Visit{Index: it.node.Index, Value: it.node.Value, Depth: it.depth}) {
				return
			}
			visited = append(visited, it.node.Value)

			if hasTarget && it.node.Value == target {
				found = true
				if !yield(step.Found{Index: it.node.Index, Value: it.node.Value}) {
					return
				}
				break
			}

			if it.node.Left != nil {
				queue = append(queue, item{it.node.Left, it.depth + 1})
			}
			if it.node.Right != nil {
				queue = append(queue, item{it.node.Right, it.depth + 1})
			}
		}
		yield(step.Complete{HasTarget: hasTarget, Found: found, Visited: visited})
	}
}
