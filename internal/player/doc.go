// Package player turns event streams into paced, observable playbacks.
//
// Three pieces cooperate:
//
//   - [Board] folds events into render-ready state: the working array,
//     transient highlight marks, cumulative settled positions, the
//     traversal frontier, and the final outcome.
//   - [Stepper] wraps a producer in pull mode so a caller advances the
//     stream exactly one event at a time. Interactive frontends drive a
//     Stepper directly from their own clock.
//   - [Player] replays a whole stream with a fixed delay between
//     events, dispatching each one to registered observers. Headless
//     runs use it and read the resulting [Summary].
//
// The player never inspects which algorithm produced a stream; every
// decision is made from event kinds alone.
package player
