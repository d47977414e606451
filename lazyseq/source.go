package lazyseq

import "iter"

// Source produces values one pull at a time. Sources are single-pass and
// need not be safe for concurrent use; Memoize supplies both replay and
// synchronization on top.
//
// Next returns the next value, or ErrDone (io.EOF is also accepted) once
// the source is exhausted. Any other error is passed through to the
// traversal that triggered the pull.
type Source[T any] interface {
	Next() (T, error)
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc[T any] func() (T, error)

func (f SourceFunc[T]) Next() (T, error) { return f() }

var _ Source[any] = (SourceFunc[any])(nil)

// FromSeq turns a range-over-func sequence into a single-pass Source.
func FromSeq[T any](seq iter.Seq[T]) Source[T] {
	next, stop := iter.Pull(seq)
	return SourceFunc[T](func() (T, error) {
		v, ok := next()
		if !ok {
			stop()
			var none T
			return none, ErrDone
		}
		return v, nil
	})
}

// SourceError wraps an error raised by a Source pull. It is delivered to the
// traversal whose Next triggered the pull and is not cached, so a later
// traversal at the same position consults the source again.
type SourceError struct {
	Err error
}

func (e *SourceError) Error() string {
	return "pulling from source: " + e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
