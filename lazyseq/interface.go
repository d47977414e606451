// Package lazyseq implements replayable concurrent sequences: a single
// producer appends values while any number of consumers traverse the same
// growing sequence, each seeing every value exactly once in append order.
// Values stay cached for the lifetime of the sequence, so a traversal can
// always restart from the beginning; consumers block only while they have
// caught up to the producer. Note that values are opaque to the sequence and
// no copies are made: consumers should not mutate traversed values!
package lazyseq

import (
	"context"
	"errors"
)

// ErrDone is returned by Iterator.Next once a finished sequence has been
// fully drained, and by a Source that has nothing more to yield.
var ErrDone = errors.New("no more values in sequence")

// ErrClosed is returned by producer appends after Finish has been called.
// The rejected values are not added.
var ErrClosed = errors.New("sequence already finished")

// Iterator is one independent, stateful walk over a sequence.
//
// Iterators are not safe for concurrent use and should not be shared across
// goroutines; each consumer obtains its own from Sequence.Iterate.
type Iterator[T any] interface {
	// Next returns the next value in the sequence.
	// - Returns (<value>, nil) when the next value is available.
	// - Returns (zero, ErrDone) when the sequence is finished and drained.
	// - Returns (zero, ctx.Err()) if the context is done first.
	// Blocks until one of these three outcomes occurs.
	Next(ctx context.Context) (T, error)
}

// Sequence is a replayable ordered collection of values that may still be
// growing. Implementations are safe for concurrent use.
type Sequence[T any] interface {
	// Iterate starts a fresh traversal from the first value. Any number of
	// traversals may run concurrently, including while values arrive.
	Iterate() Iterator[T]

	// HasData reports whether at least one value is available.
	HasData() bool

	// Finished reports whether no further value will ever be appended.
	Finished() bool

	// Done returns a channel that is closed once the sequence is finished.
	Done() <-chan struct{}

	// Snapshot returns the values available so far without blocking.
	Snapshot() []T
}

var (
	_ Sequence[any] = (*Stream[any])(nil)
	_ Sequence[any] = (*Memo[any])(nil)
)
