package step

import "errors"

// Domain errors for event streams.
var (
	// ErrEmptyInput indicates a producer was handed nothing to work on.
	ErrEmptyInput = errors.New("step: empty input")

	// ErrTruncated indicates a stream ended without a terminal event.
	ErrTruncated = errors.New("step: stream ended without a terminal event")
)
