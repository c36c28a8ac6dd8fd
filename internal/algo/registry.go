package algo

import (
	"fmt"
	"sort"

	"github.com/DanielRosa74/algo-visualizer/internal/step"
)

// Algorithm is one catalog entry: display metadata plus the constructor
// turning an [Input] into a runnable producer.
type Algorithm struct {
	Name        string
	Family      Family
	Description string

	// NeedsTarget marks searches, whose target is required.
	// TakesTarget marks traversals, whose target is optional.
	NeedsTarget bool
	TakesTarget bool
	TakesOrder  bool

	New func(Input) step.Producer
}

type Registry struct {
	algorithms map[string]Algorithm
}

func NewRegistry() *Registry {
	r := &Registry{algorithms: make(map[string]Algorithm)}

	r.add(Algorithm{
		Name:        "bubble",
		Family:      FamilySort,
		Description: "adjacent-swap passes until a pass needs no swap",
		New:         func(in Input) step.Producer { return BubbleSort(in.Values) },
	})
	r.add(Algorithm{
		Name:        "selection",
		Family:      FamilySort,
		Description: "select the minimum of the unsorted tail each pass",
		New:         func(in Input) step.Producer { return SelectionSort(in.Values) },
	})
	r.add(Algorithm{
		Name:        "insertion",
		Family:      FamilySort,
		Description: "grow a sorted prefix by inserting each next element",
		New:         func(in Input) step.Producer { return InsertionSort(in.Values) },
	})
	r.add(Algorithm{
		Name:        "merge",
		Family:      FamilySort,
		Description: "halve ranges recursively, then merge the sorted halves",
		New:         func(in Input) step.Producer { return MergeSort(in.Values) },
	})
	r.add(Algorithm{
		Name:        "quick",
		Family:      FamilySort,
		Description: "partition around a pivot, settle it, recurse both sides",
		New:         func(in Input) step.Producer { return QuickSort(in.Values) },
	})

	r.add(Algorithm{
		Name:        "linear",
		Family:      FamilySearch,
		Description: "scan positions left to right in original order",
		NeedsTarget: true,
		New:         func(in Input) step.Producer { return LinearSearch(in.Values, in.Target) },
	})
	r.add(Algorithm{
		Name:        "binary",
		Family:      FamilySearch,
		Description: "halve a window over a sorted working copy",
		NeedsTarget: true,
		New:         func(in Input) step.Producer { return BinarySearch(in.Values, in.Target) },
	})
	r.add(Algorithm{
		Name:        "jump",
		Family:      FamilySearch,
		Description: "probe sqrt-sized blocks, then scan one block",
		NeedsTarget: true,
		New:         func(in Input) step.Producer { return JumpSearch(in.Values, in.Target) },
	})
	r.add(Algorithm{
		Name:        "interpolation",
		Family:      FamilySearch,
		Description: "estimate the target's position from endpoint values",
		NeedsTarget: true,
		New:         func(in Input) step.Producer { return InterpolationSearch(in.Values, in.Target) },
	})
	r.add(Algorithm{
		Name:        "exponential",
		Family:      FamilySearch,
		Description: "double a probe to confine the target, then scan",
		NeedsTarget: true,
		New:         func(in Input) step.Producer { return ExponentialSearch(in.Values, in.Target) },
	})

	r.add(Algorithm{
		Name:        "bfs",
		Family:      FamilyTraversal,
		Description: "level-by-level visit driven by a frontier queue",
		TakesTarget: true,
		New:         func(in Input) step.Producer { return BFS(in.Values, in.Target) },
	})
	r.add(Algorithm{
		Name:        "dfs",
		Family:      FamilyTraversal,
		Description: "depth-first visit in preorder, inorder or postorder",
		TakesTarget: true,
		TakesOrder:  true,
		New:         func(in Input) step.Producer { return DFS(in.Values, in.Target, in.Order) },
	})

	return r
}

func (r *Registry) add(a Algorithm) { r.algorithms[a.Name] = a }

func (r *Registry) Get(name string) (Algorithm, error) {
	a, ok := r.algorithms[name]
	if !ok {
		return Algorithm{}, fmt.Errorf("unknown algorithm: %s", name)
	}
	return a, nil
}

// Names lists every algorithm in lexical order for stable listings.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByFamily lists a family's algorithms in lexical order.
func (r *Registry) ByFamily(f Family) []Algorithm {
	var out []Algorithm
	for _, a := range r.algorithms {
		if a.Family == f {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
