package lazyseq

import (
	"io"
	"iter"
)

// Stream is a Sequence fed through a producer handle. Appended values are
// cached in order and every Iterate call replays them from the beginning,
// so late consumers miss nothing.
type Stream[T any] struct {
	chain *chain[T]
}

// NewStream creates an empty, unfinished stream.
func NewStream[T any]() *Stream[T] {
	return &Stream[T]{chain: newChain[T]()}
}

// Produce returns the stream's producer handle. A stream has exactly one
// logical producer: Produce is meant to be called once, and whoever holds
// the handle owns appending and finishing. Multiple concurrent producers are
// unsupported; the ordering of their appends is unspecified.
func (s *Stream[T]) Produce() *Producer[T] {
	return &Producer[T]{chain: s.chain}
}

// Iterate starts a fresh traversal from the first value.
func (s *Stream[T]) Iterate() Iterator[T] {
	return &streamIterator[T]{cur: s.chain.first()}
}

// HasData reports whether at least one value has been appended.
func (s *Stream[T]) HasData() bool {
	return s.chain.hasData()
}

// Finished reports whether the producer has finished the stream.
func (s *Stream[T]) Finished() bool {
	return s.chain.closed()
}

// Done returns a channel that is closed once the producer has finished.
func (s *Stream[T]) Done() <-chan struct{} {
	return s.chain.done
}

// Snapshot returns the values appended so far without blocking.
func (s *Stream[T]) Snapshot() []T {
	return s.chain.snapshot()
}

// Producer appends values to a Stream and marks it finished. Calls are
// serialized internally, but see Stream.Produce for the single-producer
// contract.
type Producer[T any] struct {
	chain *chain[T]
}

var _ io.Closer = (*Producer[any])(nil)

// Append adds values to the sequence in argument order, waking every
// traversal that waits for them. It never blocks on consumers. Returns
// ErrClosed after Finish; nothing is added then.
func (p *Producer[T]) Append(values ...T) error {
	return p.chain.append(values...)
}

// AppendSeq appends every value yielded by seq as one batch: the sequence
// is either appended whole or, after Finish, rejected whole with ErrClosed.
func (p *Producer[T]) AppendSeq(seq iter.Seq[T]) error {
	return p.chain.appendSeq(seq)
}

// Finish marks the sequence complete, waking every blocked traversal and
// every Done waiter. Idempotent.
func (p *Producer[T]) Finish() {
	p.chain.close()
}

// Close finishes the sequence if it is not finished already, so releasing a
// handle with a deferred Close always unblocks consumers. The returned error
// is always nil.
func (p *Producer[T]) Close() error {
	p.chain.close()
	return nil
}
