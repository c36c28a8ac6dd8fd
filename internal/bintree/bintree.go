// Package bintree links flat level-order arrays into binary trees for
// the traversal producers.
package bintree

import "math"

// Node is one tree node. Index is the slot the node occupied in the
// level-order input, so events about this node can point back at the
// original array.
type Node struct {
	Value float64
	Left  *Node
	Right *Node
	Index int
}

// Build links a level-order array into a tree. math.NaN marks an absent
// slot. Construction is breadth-first and positional: the children of the
// node at slot i come from slots 2i+1 and 2i+2 when those are in range
// and present, so the tree shape is fully determined by position,
// independent of value. A slot under an absent parent produces no node.
// Empty input, or an absent root, yields nil.
func Build(slots []float64) *Node {
	if len(slots) == 0 || math.IsNaN(slots[0]) {
		return nil
	}

	root := &Node{Value: slots[0], Index: 0}
	queue := []*Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		if l := 2*n.Index + 1; l < len(slots) && !math.IsNaN(slots[l]) {
			n.Left = &Node{Value: slots[l], Index: l}
			queue = append(queue, n.Left)
		}
		if r := 2*n.Index + 2; r < len(slots) && !math.IsNaN(slots[r]) {
			n.Right = &Node{Value: slots[r], Index: r}
			queue = append(queue, n.Right)
		}
	}
	return root
}
