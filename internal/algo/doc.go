// Package algo implements the algorithm producers: five sorts, five
// searches and two tree traversals, each emitting its run as a lazy
// stream of step events.
//
// Every producer follows the same contract:
//
//   - one event per resumption, computed only when the consumer pulls
//   - a compare event before every comparator evaluation
//   - a mutation event, carrying the complete post-mutation array,
//     immediately after any position's value changes
//   - exactly one terminal event closing the stream
//
// Searches that require sortedness (binary, jump, interpolation,
// exponential) run over a working copy prepared by [remap.Prepare] and
// translate every index they report back to the original ordering, so
// callers can highlight the input as they received it. Traversals build
// their tree with [bintree.Build] and report original level-order slots.
//
// The [Registry] maps algorithm names to metadata and constructors:
//
//	reg := algo.NewRegistry()
//	a, err := reg.Get("binary")
//	if err != nil {
//		return err
//	}
//	prod := a.New(algo.Input{Values: values, Target: 5})
package algo
