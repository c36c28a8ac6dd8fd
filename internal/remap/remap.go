// Package remap translates between a sorted working copy's positions and
// the original input positions, so algorithms that require sortedness can
// run over arbitrary input while reporting indices the caller recognizes.
package remap

import (
	"sort"

	"github.com/DanielRosa74/algo-visualizer/internal/step"
)

// Prepare stable-sorts values ascending and returns the sorted copy
// together with the mapping from sorted position to original position.
// For every sorted position p, values[originalIndexOf[p]] equals
// sorted[p]; ties keep their original relative order, so repeated runs
// over the same input are deterministic. The input itself is never
// mutated.
func Prepare(values []float64) (sorted []float64, originalIndexOf []int, err error) {
	if len(values) == 0 {
		return nil, nil, step.ErrEmptyInput
	}

	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})

	out := make([]float64, len(values))
	for p, i := range idx {
		out[p] = values[i]
	}
	return out, idx, nil
}
