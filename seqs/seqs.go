// Package seqs provides lexicographic comparison of Go iterator sequences,
// mirroring the slices.Compare family for iter.Seq values.
package seqs

import (
	"cmp"
	"iter"
)

// Compare compares a and b lexicographically: element by element in yield
// order, with a sequence that is a strict prefix of the other ordering
// first. Both sequences are consumed up to the first difference.
func Compare[T cmp.Ordered](a, b iter.Seq[T]) int {
	return CompareFunc(a, b, cmp.Compare)
}

// CompareFunc is Compare using a custom element comparison, which permits
// sequences of two different types.
func CompareFunc[A, B any](a iter.Seq[A], b iter.Seq[B], compare func(A, B) int) int {
	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()
	for {
		va, okA := nextA()
		vb, okB := nextB()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return +1
		}
		if c := compare(va, vb); c != 0 {
			return c
		}
	}
}

// Equal reports whether a and b yield equal elements in the same order.
func Equal[T comparable](a, b iter.Seq[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal using a custom element equality, which permits
// sequences of two different types.
func EqualFunc[A, B any](a iter.Seq[A], b iter.Seq[B], eq func(A, B) bool) bool {
	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()
	for {
		va, okA := nextA()
		vb, okB := nextB()
		if !okA || !okB {
			return okA == okB
		}
		if !eq(va, vb) {
			return false
		}
	}
}
