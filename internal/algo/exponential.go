package algo

import (
	"github.com/DanielRosa74/algo-visualizer/internal/remap"
	"github.com/DanielRosa74/algo-visualizer/internal/step"
)

// ExponentialSearch doubles a probe index over the sorted working copy
// until the probed value reaches the target, then announces the confined
// window [probe/2, min(probe, n-1)] and scans it. All reported indices
// are original-array positions.
func ExponentialSearch(values []float64, target float64) step.Producer {
	return func(yield func(step.Event) bool) {
		sorted, orig, err := remap.Prepare(values)
		if err != nil {
			fail(yield, err)
			return
		}

		n := len(sorted)
		if !yield(step.Compare{I: orig[0], J: step.NoIndex, Target: target}) {
			return
		}
		if sorted[0] == target {
			yield(step.Found{Index: orig[0], Value: sorted[0]})
			return
		}

		probe := 1
		for probe < n {
			if !yield(step.Compare{I: orig[probe], J: step.NoIndex, Target: target}) {
				return
			}
			if sorted[probe] >= target {
				break
			}
			probe *= 2
		}

		lo, hi := probe/2, min(probe, n-1)
		if !yield(step.Range{Lo: orig[lo], Hi: orig[hi], Target: target}) {
			return
		}
		for i := lo; i <= hi; i++ {
			if !yield(step.Compare{I: orig[i], J: step.NoIndex, Target: target}) {
				return
			}
			if sorted[i] == target {
				yield(step.Found{Index: orig[i], Value: sorted[i]})
				return
			}
			if sorted[i] > target {
				break
			}
		}
		yield(step.NotFound{Target: target})
	}
}
