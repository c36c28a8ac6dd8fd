package algo

import (
	"strings"
	"testing"

	"github.com/DanielRosa74/algo-visualizer/internal/step"
)

func searchProducers() map[string]func([]float64, float64) step.Producer {
	return map[string]func([]float64, float64) step.Producer{
		"linear":        LinearSearch,
		"binary":        BinarySearch,
		"jump":          JumpSearch,
		"interpolation": InterpolationSearch,
		"exponential":   ExponentialSearch,
	}
}

func TestSearchesFindPresentTargets(t *testing.T) {
	inputs := [][]float64{
		{1, 3, 5, 8},
		{9, 1, 5},
		{5, 3, 8, 1},
		{2, 2, 2, 2},
		{7},
		{10, -4, 6, 0, 3, -4},
	}

	for name, newSearch := range searchProducers() {
		t.Run(name, func(t *testing.T) {
			for _, values := range inputs {
				for _, target := range values {
					events := collect(newSearch(values, target))

					last := events[len(events)-1]
					found, ok := last.(step.Found)
					if !ok {
						t.Fatalf("values %v target %v: stream ended with %s", values, target, last.Kind())
					}
					if found.Index < 0 || found.Index >= len(values) {
						t.Fatalf("values %v target %v: found index %d out of range", values, target, found.Index)
					}
					if values[found.Index] != target {
						t.Errorf("values %v target %v: found reports index %d holding %v",
							values, target, found.Index, values[found.Index])
					}

					for i, ev := range events[:len(events)-1] {
						if _, ok := ev.(step.Found); ok {
							t.Errorf("values %v target %v: found at %d before stream end", values, target, i)
						}
					}
				}
			}
		})
	}
}

func TestSearchesReportAbsentTargets(t *testing.T) {
	cases := []struct {
		values []float64
		target float64
	}{
		{[]float64{1, 3, 5, 8}, 4},
		{[]float64{9, 1, 5}, 7},
		{[]float64{2, 2, 2, 2}, 5},
		{[]float64{2, 2, 2, 2}, 1},
		{[]float64{7}, 8},
		{[]float64{5, 3, 8, 1}, -2},
		{[]float64{5, 3, 8, 1}, 100},
	}

	for name, newSearch := range searchProducers() {
		t.Run(name, func(t *testing.T) {
			for _, tc := range cases {
				events := collect(newSearch(tc.values, tc.target))

				last := events[len(events)-1]
				if nf, ok := last.(step.NotFound); !ok {
					t.Fatalf("values %v target %v: stream ended with %s, want not-found",
						tc.values, tc.target, last.Kind())
				} else if nf.Target != tc.target {
					t.Errorf("not-found target = %v, want %v", nf.Target, tc.target)
				}

				for _, ev := range events {
					if _, ok := ev.(step.Found); ok {
						t.Errorf("values %v target %v: emitted found", tc.values, tc.target)
					}
				}
			}
		})
	}
}

func TestSearchIndicesStayInOriginalRange(t *testing.T) {
	values := []float64{10, -4, 6, 0, 3, -4}
	for name, newSearch := range searchProducers() {
		t.Run(name, func(t *testing.T) {
			for _, target := range []float64{6, -4, 99} {
				for _, ev := range collect(newSearch(values, target)) {
					switch e := ev.(type) {
					case step.Compare:
						if e.I < 0 || e.I >= len(values) {
							t.Fatalf("compare index %d out of range", e.I)
						}
						if e.J != step.NoIndex {
							t.Fatalf("search compare carries second index %d", e.J)
						}
					case step.Range:
						if e.Lo < 0 || e.Lo >= len(values) || e.Hi < 0 || e.Hi >= len(values) {
							t.Fatalf("range [%d,%d] out of bounds", e.Lo, e.Hi)
						}
					}
				}
			}
		})
	}
}

func TestSearchesEmptyInput(t *testing.T) {
	for name, newSearch := range searchProducers() {
		t.Run(name, func(t *testing.T) {
			for _, values := range [][]float64{nil, {}} {
				events := collect(newSearch(values, 5))
				if len(events) != 1 {
					t.Fatalf("expected a single event, got %v", kinds(events))
				}
				e, ok := events[0].(step.Error)
				if !ok {
					t.Fatalf("expected error event, got %s", events[0].Kind())
				}
				if !strings.Contains(e.Message, "empty input") {
					t.Errorf("error message %q does not mention empty input", e.Message)
				}
			}
		})
	}
}

func TestBinarySearchScenario(t *testing.T) {
	events := collect(BinarySearch([]float64{1, 3, 5, 8}, 5))

	want := []string{"range", "compare", "range", "compare", "found"}
	got := kinds(events)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %s, want %s (full: %v)", i, got[i], want[i], got)
		}
	}

	if r := events[0].(step.Range); r.Lo != 0 || r.Hi != 3 || r.Target != 5 {
		t.Errorf("first range = %+v, want [0,3] target 5", r)
	}
	if r := events[2].(step.Range); r.Lo != 2 || r.Hi != 3 {
		t.Errorf("second range = %+v, want [2,3]", r)
	}
	if f := events[4].(step.Found); f.Index != 2 || f.Value != 5 {
		t.Errorf("found = %+v, want index 2 value 5", f)
	}
}

func TestBinarySearchTranslatesWindowBounds(t *testing.T) {
	// sorted copy is [1,5,9] with original positions [1,2,0]
	events := collect(BinarySearch([]float64{9, 1, 5}, 9))

	r, ok := events[0].(step.Range)
	if !ok {
		t.Fatalf("first event = %s, want range", events[0].Kind())
	}
	if r.Lo != 1 || r.Hi != 0 {
		t.Errorf("window endpoints = (%d,%d), want original positions (1,0)", r.Lo, r.Hi)
	}

	last := events[len(events)-1].(step.Found)
	if last.Index != 0 || last.Value != 9 {
		t.Errorf("found = %+v, want index 0 value 9", last)
	}
}

func TestJumpSearchUnsortedOriginalIndices(t *testing.T) {
	events := collect(JumpSearch([]float64{9, 1, 5}, 7))

	var probes []int
	for _, ev := range events {
		if c, ok := ev.(step.Compare); ok {
			probes = append(probes, c.I)
		}
	}
	want := []int{1, 2, 0, 0}
	if len(probes) != len(want) {
		t.Fatalf("probed %v, want %v", probes, want)
	}
	for i := range want {
		if probes[i] != want[i] {
			t.Fatalf("probed %v, want %v", probes, want)
		}
	}

	if _, ok := events[len(events)-1].(step.NotFound); !ok {
		t.Fatalf("stream ended with %s, want not-found", events[len(events)-1].Kind())
	}
}

func TestJumpSearchFindsInUnsortedInput(t *testing.T) {
	events := collect(JumpSearch([]float64{9, 1, 5}, 5))
	f, ok := events[len(events)-1].(step.Found)
	if !ok {
		t.Fatalf("stream ended with %s, want found", events[len(events)-1].Kind())
	}
	if f.Index != 2 || f.Value != 5 {
		t.Errorf("found = %+v, want index 2 value 5", f)
	}
}

func TestInterpolationSearchFlatWindow(t *testing.T) {
	events := collect(InterpolationSearch([]float64{2, 2, 2, 2}, 5))
	got := kinds(events)
	if len(got) != 2 || got[0] != "compare" || got[1] != "not-found" {
		t.Fatalf("expected [compare not-found], got %v", got)
	}

	events = collect(InterpolationSearch([]float64{2, 2, 2, 2}, 2))
	got = kinds(events)
	if len(got) != 2 || got[0] != "compare" || got[1] != "found" {
		t.Fatalf("expected [compare found], got %v", got)
	}
	if f := events[1].(step.Found); f.Index != 0 || f.Value != 2 {
		t.Errorf("found = %+v, want index 0 value 2", f)
	}
}

func TestInterpolationSearchEstimateOutsideWindow(t *testing.T) {
	events := collect(InterpolationSearch([]float64{1, 5, 9}, 20))
	got := kinds(events)
	if len(got) != 1 || got[0] != "not-found" {
		t.Fatalf("expected immediate not-found, got %v", got)
	}
}

func TestExponentialSearchWindow(t *testing.T) {
	events := collect(ExponentialSearch([]float64{1, 3, 5, 8}, 8))

	var ranges []step.Range
	for _, ev := range events {
		if r, ok := ev.(step.Range); ok {
			ranges = append(ranges, r)
		}
	}
	if len(ranges) != 1 {
		t.Fatalf("expected one range event, got %d", len(ranges))
	}
	if ranges[0].Lo != 2 || ranges[0].Hi != 3 {
		t.Errorf("scan window = [%d,%d], want [2,3]", ranges[0].Lo, ranges[0].Hi)
	}

	f := events[len(events)-1].(step.Found)
	if f.Index != 3 || f.Value != 8 {
		t.Errorf("found = %+v, want index 3 value 8", f)
	}
}

func TestExponentialSearchFirstElement(t *testing.T) {
	events := collect(ExponentialSearch([]float64{1, 3, 5, 8}, 1))

	got := kinds(events)
	if len(got) != 2 || got[0] != "compare" || got[1] != "found" {
		t.Fatalf("expected [compare found], got %v", got)
	}
	if f := events[1].(step.Found); f.Index != 0 || f.Value != 1 {
		t.Errorf("found = %+v, want index 0 value 1", f)
	}
}

func TestExponentialSearchUnsortedInput(t *testing.T) {
	// sorted copy [1,3,5,8], original positions [3,1,0,2]
	events := collect(ExponentialSearch([]float64{5, 3, 8, 1}, 8))

	for _, ev := range events {
		if r, ok := ev.(step.Range); ok {
			if r.Lo != 0 || r.Hi != 2 {
				t.Errorf("window endpoints = (%d,%d), want original positions (0,2)", r.Lo, r.Hi)
			}
		}
	}

	f := events[len(events)-1].(step.Found)
	if f.Index != 2 || f.Value != 8 {
		t.Errorf("found = %+v, want index 2 value 8", f)
	}
}
