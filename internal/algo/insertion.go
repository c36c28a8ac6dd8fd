package algo

import "github.com/DanielRosa74/algo-visualizer/internal/step"

// InsertionSort grows a sorted prefix one element at a time, shifting
// larger prefix elements right until the held element's slot opens up.
// Compares report the scanned position against the element's origin.
func InsertionSort(values []float64) step.Producer {
	return func(yield func(step.Event) bool) {
		a := snapshot(values)
		n := len(a)
		if n > 0 {
			if !yield(step.Sorted{Lo: 0, Hi: 0}) {
				return
			}
		}
		for i := 1; i < n; i++ {
			if !yield(step.Current{Index: i}) {
				return
			}
			key := a[i]
			j := i - 1
			for j >= 0 {
				if !yield(step.Compare{I: j, J: i}) {
					return
				}
				if a[j] <= key {
					break
				}
				a[j+1] = a[j]
				if !yield(step.Move{Op: step.KindShift, Index: j + 1, Array: snapshot(a)}) {
					return
				}
				j--
			}
			if j+1 != i {
				a[j+1] = key
				if !yield(step.Move{Op: step.KindInsert, Index: j + 1, Array: snapshot(a)}) {
					return
				}
			}
			if !yield(step.Sorted{Lo: 0, Hi: i}) {
				return
			}
		}
		yield(step.Complete{Lo: 0, Hi: n - 1, Array: a})
	}
}
