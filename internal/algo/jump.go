package algo

import (
	"math"

	"github.com/DanielRosa74/algo-visualizer/internal/remap"
	"github.com/DanielRosa74/algo-visualizer/internal/step"
)

// JumpSearch probes the sorted working copy at sqrt(n)-sized block ends
// until a block could hold the target, then scans that block linearly.
// All reported indices are original-array positions.
func JumpSearch(values []float64, target float64) step.Producer {
	return func(yield func(step.Event) bool) {
		sorted, orig, err := remap.Prepare(values)
		if err != nil {
			fail(yield, err)
			return
		}

		n := len(sorted)
		blk := int(math.Sqrt(float64(n)))
		if blk < 1 {
			blk = 1
		}

		prev, curr := 0, blk
		for {
			end := min(curr, n)
			if !yield(step.Compare{I: orig[end-1], J: step.NoIndex, Target: target}) {
				return
			}
			if sorted[end-1] >= target {
				break
			}
			prev = curr
			curr += blk
			if prev >= n {
				yield(step.NotFound{Target: target})
				return
			}
		}

		for i := prev; i < min(curr, n); i++ {
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
