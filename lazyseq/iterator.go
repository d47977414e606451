package lazyseq

import (
	"context"
)

// streamIterator walks a chain, blocking on each pending node's ready
// channel until the producer resolves it. The ready channel stays closed
// once closed, so a wakeup racing the wait can never be lost.
type streamIterator[T any] struct {
	cur *node[T] // the node to deliver next; nil once exhausted
}

var _ Iterator[any] = (*streamIterator[any])(nil)

func (it *streamIterator[T]) Next(ctx context.Context) (T, error) {
	var none T
	if it.cur == nil {
		return none, ErrDone
	}
	if err := ctx.Err(); err != nil {
		return none, err
	}

	select {
	case <-it.cur.ready:
		n := it.cur
		if n.next == nil {
			it.cur = nil
			return none, ErrDone
		}
		it.cur = n.next
		return n.value, nil
	case <-ctx.Done():
		return none, ctx.Err()
	}
}

// memoIterator walks a memo's chain. It never waits on a ready channel: when
// its node is pending it asks the memo to advance the source instead, so a
// failed pull surfaces to this caller rather than stranding a waiter.
type memoIterator[T any] struct {
	m   *Memo[T]
	cur *node[T] // the node to deliver next; nil once exhausted
}

var _ Iterator[any] = (*memoIterator[any])(nil)

func (it *memoIterator[T]) Next(ctx context.Context) (T, error) {
	var none T
	if it.cur == nil {
		return none, ErrDone
	}
	if err := ctx.Err(); err != nil {
		return none, err
	}

	// A resolved node is consumed as is; a pending one means no traversal
	// has reached this position yet and the source must be driven.
	if !it.cur.resolved() {
		if err := it.m.advance(it.cur); err != nil {
			return none, err
		}
	}

	n := it.cur
	if n.next == nil {
		it.cur = nil
		return none, ErrDone
	}
	it.cur = n.next
	return n.value, nil
}
