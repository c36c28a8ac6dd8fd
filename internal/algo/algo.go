package algo

import (
	"fmt"

	"github.com/DanielRosa74/algo-visualizer/internal/step"
)

// Family groups algorithms by the board shape they animate.
type Family string

const (
	FamilySort      Family = "sort"
	FamilySearch    Family = "search"
	FamilyTraversal Family = "traversal"
)

// Families lists the families in display order.
var Families = []Family{FamilySort, FamilySearch, FamilyTraversal}

// Order selects when DFS visits a node relative to its children.
type Order string

const (
	Preorder  Order = "preorder"
	Inorder   Order = "inorder"
	Postorder Order = "postorder"
)

// ParseOrder validates a traversal order name.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case Preorder, Inorder, Postorder:
		return Order(s), nil
	}
	return "", fmt.Errorf("unknown traversal order: %s", s)
}

// Input carries one run's parameters. Values is the input array; for
// traversals it is the level-order slot array with math.NaN marking
// holes. Target is math.NaN when absent. Order applies to DFS only.
type Input struct {
	Values []float64
	Target float64
	Order  Order
}

func snapshot(v []float64) []float64 {
	c := make([]float64, len(v))
	copy(c, v)
	return c
}

func fail(yield func(step.Event) bool, err error) {
	yield(step.Error{Message: err.Error()})
}
