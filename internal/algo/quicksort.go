package algo

import "github.com/DanielRosa74/algo-visualizer/internal/step"

// QuickSort partitions each range around its last element, marking the
// pivot as current, comparing every other element against it and
// settling it with a sorted mark before recursing into both sides.
func QuickSort(values []float64) step.Producer {
	return func(yield func(step.Event) bool) {
		a := snapshot(values)
		n := len(a)
		if !quickRange(yield, a, 0, n-1) {
			return
		}
		yield(step.Complete{Lo: 0, Hi: n - 1, Array: a})
	}
}

func quickRange(yield func(step.Event) bool, a []float64, lo, hi int) bool {
	if lo > hi {
		return true
	}
	if lo == hi {
		return yield(step.Sorted{Lo: lo, Hi: lo})
	}
	if !yield(step.Divide{Lo: lo, Hi: hi}) {
		return false
	}
	if !yield(step.Current{Index: hi}) {
		return false
	}

	i := lo
	for j := lo; j < hi; j++ {
		if !yield(step.Compare{I: j, J: hi}) {
			return false
		}
		if a[j] < a[hi] {
			if i != j {
				a[i], a[j] = a[j], a[i]
				if !yield(step.Swap{I: i, J: j, Array: snapshot(a)}) {
					return false
				}
			}
			i++
		}
	}
	if i != hi {
		a[i], a[hi] = a[hi], a[i]
		if !yield(step.Swap{I: i, J: hi, Array: snapshot(a)}) {
			return false
		}
	}
	if !yield(step.Sorted{Lo: i, Hi: i}) {
		return false
	}

	if !quickRange(yield, a, lo, i-1) {
		return false
	}
	return quickRange(yield, a, i+1, hi)
}
