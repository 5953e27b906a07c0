package seqs

import "errors"

var (
	// ErrInvalidArgument is returned for out-of-range sizes, steps or counts.
	ErrInvalidArgument = errors.New("seqs: invalid argument")
	// ErrNotSequence is yielded when a source cannot be iterated.
	ErrNotSequence = errors.New("seqs: value is not a sequence")
	// ErrNotComparable is returned when two keys have no defined order.
	ErrNotComparable = errors.New("seqs: values are not comparable")
	// ErrNotNumber is returned when a numeric value is required.
	ErrNotNumber = errors.New("seqs: value is not a number")
	// ErrTaskPanic wraps a panic recovered from a parallel task.
	ErrTaskPanic = errors.New("seqs: panic in parallel task")
)
