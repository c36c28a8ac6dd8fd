package algo

import "github.com/DanielRosa74/algo-visualizer/internal/step"

// LinearSearch scans positions left to right in the original order; no
// remapping is involved.
func LinearSearch(values []float64, target float64) step.Producer {
	return func(yield func(step.Event) bool) {
		if len(values) == 0 {
			fail(yield, step.ErrEmptyInput)
			return
		}
		for i, v := range values {
			if !yield(step.Compare{I: i, J: step.NoIndex, Target: target}) {
				return
			}
			if v == target {
				yield(step.Found{Index: i, Value: v})
				return
			}
		}
		yield(step.NotFound{Target: target})
	}
}
