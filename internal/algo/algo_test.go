package algo

import (
	"testing"

	"github.com/DanielRosa74/algo-visualizer/internal/step"
)

// collect drains a producer into a slice.
func collect(p step.Producer) []step.Event {
	var events []step.Event
	for ev := range p {
		events = append(events, ev)
	}
	return events
}

// replay applies every mutation snapshot wholesale, ignoring the
// terminal snapshot, and returns the final working copy.
func replay(input []float64, events []step.Event) []float64 {
	work := append([]float64(nil), input...)
	for _, ev := range events {
		switch e := ev.(type) {
		case step.Swap:
			work = append([]float64(nil), e.Array...)
		case step.Move:
			work = append([]float64(nil), e.Array...)
		case step.Merge:
			if e.Array != nil {
				work = append([]float64(nil), e.Array...)
			}
		}
	}
	return work
}

func equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func kinds(events []step.Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Kind().String()
	}
	return out
}

func TestStreamsEndWithOneTerminal(t *testing.T) {
	reg := NewRegistry()
	in := Input{Values: []float64{5, 3, 8, 1}, Target: 8, Order: Preorder}

	for _, name := range reg.Names() {
		t.Run(name, func(t *testing.T) {
			a, err := reg.Get(name)
			if err != nil {
				t.Fatalf("get failed: %v", err)
			}
			events := collect(a.New(in))
			if len(events) == 0 {
				t.Fatal("empty stream")
			}

			last := events[len(events)-1]
			if !last.Kind().Terminal() {
				t.Fatalf("stream ended with %s, want a terminal event", last.Kind())
			}
			for i, ev := range events[:len(events)-1] {
				switch ev.Kind() {
				case step.KindNotFound, step.KindComplete, step.KindError:
					t.Errorf("event %d is %s before stream end", i, ev.Kind())
				case step.KindFound:
					if a.Family != FamilyTraversal {
						t.Errorf("event %d is found before stream end", i)
					} else if i != len(events)-2 {
						t.Errorf("found at %d is not followed directly by the closing event", i)
					}
				}
			}
		})
	}
}

func TestProducersSurviveAbandonment(t *testing.T) {
	producers := map[string]step.Producer{
		"bubble": BubbleSort([]float64{5, 3, 8, 1}),
		"merge":  MergeSort([]float64{5, 3, 8, 1, 9, 2}),
		"quick":  QuickSort([]float64{5, 3, 8, 1, 9, 2}),
		"dfs":    DFS([]float64{1, 2, 3, 4, 5, 6, 7}, 99, Postorder),
		"binary": BinarySearch([]float64{5, 3, 8, 1}, 4),
	}

	for name, p := range producers {
		total := len(collect(p))
		for stop := 1; stop < total; stop++ {
			pulled := 0
			for range p {
				pulled++
				if pulled == stop {
					break
				}
			}
			if pulled != stop {
				t.Fatalf("%s: expected to stop after %d events, got %d", name, stop, pulled)
			}
		}
	}
}
