package algo

import "github.com/DanielRosa74/algo-visualizer/internal/step"

// BubbleSort swaps adjacent out-of-order pairs in repeated passes,
// stopping after the first pass that needs no swap. It emits no sorted
// marks; sortedness shows up as passes without swaps.
func BubbleSort(values []float64) step.Producer {
	return func(yield func(step.Event) bool) {
		a := snapshot(values)
		n := len(a)
		for i := 0; i < n-1; i++ {
			swapped := false
			for j := 0; j < n-1-i; j++ {
				if !yield(step.Compare{I: j, J: j + 1}) {
					return
				}
				if a[j] > a[j+1] {
					a[j], a[j+1] = a[j+1], a[j]
					swapped = true
					if !yield(step.Swap{I: j, J: j + 1, Array: snapshot(a)}) {
						return
					}
				}
			}
			if !swapped {
				break
			}
		}
		yield(step.Complete{Lo: 0, Hi: n - 1, Array: a})
	}
}
