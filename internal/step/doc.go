// Package step defines the closed event vocabulary algorithm producers
// emit and the contract the playback driver consumes.
//
// The package is a pure data contract:
//
//   - [Event]: one atomic, typed notification of a state transition
//   - [Kind]: the event tag; [Kind.Terminal] reports the stream-closing tags
//   - [Producer]: a pausable run emitting exactly one event per resumption
//   - [Error]: the terminal event for malformed input, also a Go error
//
// # Stream shape
//
// Every stream closes with exactly one of [Found], [NotFound], [Complete]
// or [Error]; in tree traversals [Found] is followed by the closing
// [Complete]. An event carrying an array snapshot carries the complete
// current array, never a delta, so a consumer replaces its working copy
// wholesale. Positions reported by [Sorted] accumulate within a run and
// are never retracted.
//
// # Example
//
//	for ev := range producer {
//		fmt.Println(ev.Kind())
//	}
//
// Consumers dispatch on the concrete variant (or on [Event.Kind]) and
// ignore fields a tag does not define.
package step
