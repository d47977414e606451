package lazyseq

// node is one position of an append-only chain. A node starts out pending:
// value and next are unset while ready is open. Resolving the node stores
// the value plus the next pending node and closes ready; the channel close
// is what publishes the fields to concurrent readers.
type node[T any] struct {
	value T             // the value at this position (unset until resolved)
	next  *node[T]      // the following node (nil on the terminator)
	ready chan struct{} // a channel whose closure marks resolution
}

func newNode[T any]() *node[T] {
	return &node[T]{ready: make(chan struct{})}
}

// resolve publishes the node. A nil next marks the end of the chain.
func (n *node[T]) resolve(v T, next *node[T]) {
	n.value = v
	n.next = next
	close(n.ready)
}

// resolved reports whether the node has been published, without blocking.
func (n *node[T]) resolved() bool {
	select {
	case <-n.ready:
		return true
	default:
		return false
	}
}
