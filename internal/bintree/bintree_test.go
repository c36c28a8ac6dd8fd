package bintree

import (
	"math"
	"testing"
)

func collect(root *Node) map[int]*Node {
	nodes := make(map[int]*Node)
	queue := []*Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == nil {
			continue
		}
		nodes[n.Index] = n
		queue = append(queue, n.Left, n.Right)
	}
	return nodes
}

func TestBuildEmpty(t *testing.T) {
	if Build(nil) != nil {
		t.Error("expected nil tree for nil input")
	}
	if Build([]float64{}) != nil {
		t.Error("expected nil tree for empty input")
	}
	if Build([]float64{math.NaN()}) != nil {
		t.Error("expected nil tree for absent root")
	}
}

func TestBuildComplete(t *testing.T) {
	root := Build([]float64{1, 2, 3})
	if root == nil {
		t.Fatal("expected a tree")
	}
	if root.Value != 1 || root.Index != 0 {
		t.Errorf("root = (%v, %d), want (1, 0)", root.Value, root.Index)
	}
	if root.Left == nil || root.Left.Value != 2 || root.Left.Index != 1 {
		t.Errorf("unexpected left child: %+v", root.Left)
	}
	if root.Right == nil || root.Right.Value != 3 || root.Right.Index != 2 {
		t.Errorf("unexpected right child: %+v", root.Right)
	}
	if root.Left.Left != nil || root.Left.Right != nil {
		t.Error("leaf grew children")
	}
}

func TestBuildSkipsHoles(t *testing.T) {
	nan := math.NaN()
	root := Build([]float64{1, nan, 3})
	if root == nil {
		t.Fatal("expected a tree")
	}
	if root.Left != nil {
		t.Errorf("expected no left child, got %+v", root.Left)
	}
	if root.Right == nil || root.Right.Index != 2 {
		t.Fatalf("expected right child at slot 2, got %+v", root.Right)
	}
}

func TestBuildOrphanSlotsProduceNoNodes(t *testing.T) {
	nan := math.NaN()
	// Slot 1 is absent, so slots 3 and 4 have no parent to hang from.
	root := Build([]float64{1, nan, 3, 4, 5, nan, 7})

	nodes := collect(root)
	for _, slot := range []int{1, 3, 4, 5} {
		if _, ok := nodes[slot]; ok {
			t.Errorf("slot %d should not produce a node", slot)
		}
	}
	n, ok := nodes[6]
	if !ok {
		t.Fatal("expected node at slot 6")
	}
	if n.Value != 7 {
		t.Errorf("node at slot 6 has value %v, want 7", n.Value)
	}
	if nodes[2].Right != n {
		t.Error("slot 6 should hang off slot 2's right")
	}
}

func TestBuildReachability(t *testing.T) {
	nan := math.NaN()
	inputs := [][]float64{
		{1, 2, 3, 4, 5, 6, 7},
		{10, 20, nan, 40, 41},
		{1, 2, 3, nan, nan, 6},
		{5},
	}

	for _, slots := range inputs {
		nodes := collect(Build(slots))
		for i, n := range nodes {
			if i == 0 {
				continue
			}
			parent, ok := nodes[(i-1)/2]
			if !ok {
				t.Fatalf("node at slot %d has no parent node", i)
			}
			if parent.Left != n && parent.Right != n {
				t.Errorf("node at slot %d is not a child of slot %d", i, (i-1)/2)
			}
		}
		for i, n := range nodes {
			if n.Value != slots[i] {
				t.Errorf("node at slot %d carries %v, want %v", i, n.Value, slots[i])
			}
		}
	}
}
