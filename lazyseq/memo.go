package lazyseq

import (
	"errors"
	"io"
	"sync"
)

// Memo is a Sequence that wraps a single-pass Source and caches everything
// it yields. Traversals collectively drive the source forward: the first to
// reach an uncached position pulls exactly one value and every concurrent or
// later traversal reuses the cached result, so the source's side effects
// happen once no matter how many consumers replay it.
type Memo[T any] struct {
	mu    sync.Mutex // serializes source pulls
	src   Source[T]
	chain *chain[T]
}

// Memoize wraps src so that any number of concurrent traversals can replay
// it. The source needs no synchronization of its own: it is advanced at most
// once per position, under the memo's lock.
func Memoize[T any](src Source[T]) *Memo[T] {
	return &Memo[T]{src: src, chain: newChain[T]()}
}

// Iterate starts a fresh traversal. Advancing past the cached positions
// pulls from the source on demand.
func (m *Memo[T]) Iterate() Iterator[T] {
	return &memoIterator[T]{m: m, cur: m.chain.first()}
}

// HasData reports whether at least one value has been pulled and cached.
func (m *Memo[T]) HasData() bool {
	return m.chain.hasData()
}

// Finished reports whether the source is known to be exhausted.
func (m *Memo[T]) Finished() bool {
	return m.chain.closed()
}

// Done returns a channel that is closed once the source is exhausted.
func (m *Memo[T]) Done() <-chan struct{} {
	return m.chain.done
}

// Snapshot returns the values cached so far without advancing the source.
func (m *Memo[T]) Snapshot() []T {
	return m.chain.snapshot()
}

// advance resolves the pending node n, pulling one value from the source
// unless another traversal got there first. A successful pull appends the
// value, resolving exactly n. Exhaustion closes the chain, also resolving n
// and keeping the source untouched forever after. A pull error resolves
// nothing: it is wrapped and returned to this caller alone, and the next
// traversal to reach n consults the source again.
func (m *Memo[T]) advance(n *node[T]) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n.resolved() {
		// Filled while this traversal waited on the lock.
		return nil
	}
	v, err := m.src.Next()
	switch {
	case err == nil:
		// n is the pending tail, so appending resolves it.
		return m.chain.append(v)
	case errors.Is(err, ErrDone) || errors.Is(err, io.EOF):
		m.chain.close()
		return nil
	default:
		return &SourceError{Err: err}
	}
}
