package algo

import "github.com/DanielRosa74/algo-visualizer/internal/step"

// SelectionSort resolves one position per pass: it scans the unsorted
// tail for the minimum, announcing each new candidate, swaps it into
// place and marks the grown sorted prefix.
func SelectionSort(values []float64) step.Producer {
	return func(yield func(step.Event) bool) {
		a := snapshot(values)
		n := len(a)
		for i := 0; i < n-1; i++ {
			if !yield(step.Current{Index: i}) {
				return
			}
			min := i
			for j := i + 1; j < n; j++ {
				if !yield(step.Compare{I: j, J: min}) {
					return
				}
				if a[j] < a[min] {
					min = j
					if !yield(step.NewMin{Index: j}) {
						return
					}
				}
			}
			if min != i {
				a[i], a[min] = a[min], a[i]
				if !yield(step.Swap{I: i, J: min, Array: snapshot(a)}) {
					return
				}
			}
			if !yield(step.Sorted{Lo: 0, Hi: i}) {
				return
			}
		}
		if n > 0 {
			if !yield(step.Sorted{Lo: 0, Hi: n - 1}) {
				return
			}
		}
		yield(step.Complete{Lo: 0, Hi: n - 1, Array: a})
	}
}
