package algo

import (
	"github.com/DanielRosa74/algo-visualizer/internal/remap"
	"github.com/DanielRosa74/algo-visualizer/internal/step"
)

// BinarySearch halves a window over a sorted working copy of the input,
// announcing the window before each probe. Every reported index,
// window bounds included, is an original-array position.
func BinarySearch(values []float64, target float64) step.Producer {
	return func(yield func(step.Event) bool) {
		sorted, orig, err := remap.Prepare(values)
		if err != nil {
			fail(yield, err)
			return
		}

		lo, hi := 0, len(sorted)-1
		for lo <= hi {
			if !yield(step.Range{Lo: orig[lo], Hi: orig[hi], Target: target}) {
				return
			}
			mid := (lo + hi) / 2
			if !yield(step.Compare{I: orig[mid], J: step.NoIndex, Target: target}) {
				return
			}
			switch {
			case sorted[mid] == target:
				yield(step.Found{Index: orig[mid], Value: sorted[mid]})
				return
			case sorted[mid] < target:
				lo = mid + 1
			default:
				hi = mid - 1
			}
		}
		yield(step.NotFound{Target: target})
	}
}
