package algo

import "github.com/DanielRosa74/algo-visualizer/internal/step"

// MergeSort halves ranges recursively, announcing each split with a
// divide event, then merges the sorted halves back. Both recursive calls
// complete before a range's merge event fires; the per-position compares,
// places and copies inside a merge report original-array positions.
func MergeSort(values []float64) step.Producer {
	return func(yield func(step.Event) bool) {
		a := snapshot(values)
		n := len(a)
		if !mergeRange(yield, a, 0, n-1) {
			return
		}
		yield(step.Complete{Lo: 0, Hi: n - 1, Array: a})
	}
}

// mergeRange sorts a[lo..hi] in place, reporting false once the consumer
// stops pulling.
func mergeRange(yield func(step.Event) bool, a []float64, lo, hi int) bool {
	if lo >= hi {
		return true
	}
	if !yield(step.Divide{Lo: lo, Hi: hi}) {
		return false
	}
	mid := (lo + hi) / 2
	if !mergeRange(yield, a, lo, mid) {
		return false
	}
	if !mergeRange(yield, a, mid+1, hi) {
		return false
	}
	if !yield(step.Merge{Lo: lo, Hi: hi}) {
		return false
	}

	left := snapshot(a[lo : mid+1])
	right := snapshot(a[mid+1 : hi+1])
	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		if !yield(step.Compare{I: lo + i, J: mid + 1 + j}) {
			return false
		}
		if left[i] <= right[j] {
			a[k] = left[i]
			i++
		} else {
			a[k] = right[j]
			j++
		}
		if !yield(step.Move{Op: step.KindPlace, Index: k, Array: snapshot(a)}) {
			return false
		}
		k++
	}
	for ; i < len(left); i++ {
		a[k] = left[i]
		if !yield(step.Move{Op: step.KindCopy, Index: k, Array: snapshot(a)}) {
			return false
		}
		k++
	}
	for ; j < len(right); j++ {
		a[k] = right[j]
		if !yield(step.Move{Op: step.KindCopy, Index: k, Array: snapshot(a)}) {
			return false
		}
		k++
	}
	return yield(step.Sorted{Lo: lo, Hi: hi})
}
