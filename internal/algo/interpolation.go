package algo

import (
	"github.com/DanielRosa74/algo-visualizer/internal/remap"
	"github.com/DanielRosa74/algo-visualizer/internal/step"
)

// InterpolationSearch estimates the target's position in the sorted
// working copy by interpolating between the window's endpoint values.
// A window with equal endpoints is decided on its low end without
// looping; an estimate outside the window, or the same estimate twice,
// ends the run as not found.
func InterpolationSearch(values []float64, target float64) step.Producer {
	return func(yield func(step.Event) bool) {
		sorted, orig, err := remap.Prepare(values)
		if err != nil {
			fail(yield, err)
			return
		}

		lo, hi := 0, len(sorted)-1
		last := -1
		for lo <= hi {
			if sorted[lo] == sorted[hi] {
				if !yield(step.Compare{I: orig[lo], J: step.NoIndex, Target: target}) {
					return
				}
				if sorted[lo] == target {
					yield(step.Found{Index: orig[lo], Value: sorted[lo]})
				} else {
					yield(step.NotFound{Target: target})
				}
				return
			}

			pos := lo + int(float64(hi-lo)*(target-sorted[lo])/(sorted[hi]-sorted[lo]))
			if pos < lo || pos > hi || pos == last {
				yield(step.NotFound{Target: target})
				return
			}
			last = pos

			if !yield(step.Compare{I: orig[pos], J: step.NoIndex, Target: target}) {
				return
			}
			switch {
			case sorted[pos] == target:
				yield(step.Found{Index: orig[pos], Value: sorted[pos]})
				return
			case sorted[pos] < target:
				lo = pos + 1
			default:
				hi = pos - 1
			}
		}
		yield(step.NotFound{Target: target})
	}
}
