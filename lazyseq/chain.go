package lazyseq

import (
	"iter"
	"sync"
)

// chain is the append-only cache behind every sequence: a linked list of
// nodes that always ends in exactly one pending node, the tail. Appending
// resolves the tail with a value and a fresh pending tail; closing resolves
// it as the terminator. head is set once and never moves, so any number of
// traversals can replay the chain from the start.
//
// Structural mutation is serialized by mu. Readers take no lock at all: they
// follow next pointers and synchronize on each node's ready channel.
type chain[T any] struct {
	mu   sync.Mutex
	head *node[T]
	tail *node[T]      // the pending node, as used only by append and close
	done chan struct{} // closed when the chain is closed
}

func newChain[T any]() *chain[T] {
	n := newNode[T]()
	return &chain[T]{head: n, tail: n, done: make(chan struct{})}
}

// append adds values at the tail in argument order. Resolving a node wakes
// every traversal blocked on it. Fails with ErrClosed once the chain is
// closed; nothing is added then.
func (c *chain[T]) append(values ...T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed() {
		return ErrClosed
	}
	for _, v := range values {
		next := newNode[T]()
		c.tail.resolve(v, next)
		c.tail = next
	}
	return nil
}

// appendSeq is append for a lazy sequence of values. The closed check runs
// once, up front, so the sequence is appended whole or not at all.
func (c *chain[T]) appendSeq(seq iter.Seq[T]) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed() {
		return ErrClosed
	}
	for v := range seq {
		next := newNode[T]()
		c.tail.resolve(v, next)
		c.tail = next
	}
	return nil
}

// close resolves the tail as the terminator, releasing every current and
// future waiter. Idempotent.
func (c *chain[T]) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed() {
		return
	}
	var none T
	c.tail.resolve(none, nil)
	close(c.done)
}

func (c *chain[T]) closed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// first returns the head node. It is pending until the first append or close.
func (c *chain[T]) first() *node[T] {
	return c.head
}

// hasData reports whether at least one value has been appended.
func (c *chain[T]) hasData() bool {
	return c.head.resolved() && c.head.next != nil
}

// snapshot collects the values resolved so far without blocking.
func (c *chain[T]) snapshot() []T {
	var out []T
	for n := c.head; n.resolved() && n.next != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}
