package lazyseq

import (
	"context"
	"errors"
	"iter"
)

// All exposes the remainder of an iterator as a range-over-func sequence.
// Iteration stops at the end of the sequence or when ctx is done; after the
// range the caller can tell the two apart through ctx.Err().
func All[T any](ctx context.Context, it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, err := it.Next(ctx)
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains it and returns the collected values, blocking until the
// sequence finishes or ctx is done.
func Collect[T any](ctx context.Context, it Iterator[T]) ([]T, error) {
	var out []T
	for {
		v, err := it.Next(ctx)
		if errors.Is(err, ErrDone) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

// Consume invokes fn for every remaining value of it, in order. It returns
// nil once the sequence is drained, ctx.Err() when ctx is done first, or the
// first error from fn, which stops consumption.
func Consume[T any](ctx context.Context, it Iterator[T], fn func(context.Context, T) error) error {
	for {
		v, err := it.Next(ctx)
		if errors.Is(err, ErrDone) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(ctx, v); err != nil {
			return err
		}
	}
}
