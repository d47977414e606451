// Package natsort implements natural ordering of strings: contiguous digit
// runs compare by numeric value rather than byte order, so "item2" sorts
// before "item10".
package natsort

import (
	"cmp"
	"slices"
	"strings"
)

// Compare orders a and b naturally and returns -1, 0, or +1. Maximal digit
// runs compare as unbounded integers while everything else compares
// byte-wise; a string that is a prefix of another orders first. Runs with
// equal numeric value but different leading zeros order the shorter spelling
// first ("a1" < "a01"), so Compare returns 0 only for identical strings.
func Compare(a, b string) int {
	ia, ib := 0, 0
	zeroTie := 0 // first leading-zero difference, the tiebreak of last resort
	for ia < len(a) && ib < len(b) {
		ca, cb := a[ia], b[ib]
		if isDigit(ca) && isDigit(cb) {
			ea, eb := runEnd(a, ia), runEnd(b, ib)
			va, vb := trimZeros(a[ia:ea]), trimZeros(b[ib:eb])
			// A longer trimmed run holds a strictly larger value.
			if c := cmp.Compare(len(va), len(vb)); c != 0 {
				return c
			}
			if c := strings.Compare(va, vb); c != 0 {
				return c
			}
			if zeroTie == 0 {
				zeroTie = cmp.Compare((ea-ia)-len(va), (eb-ib)-len(vb))
			}
			ia, ib = ea, eb
			continue
		}
		if ca != cb {
			return cmp.Compare(ca, cb)
		}
		ia++
		ib++
	}
	if c := cmp.Compare(len(a)-ia, len(b)-ib); c != 0 {
		return c
	}
	return zeroTie
}

// Less reports whether a orders before b naturally.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Sort sorts ss in place into natural order.
func Sort(ss []string) {
	slices.SortFunc(ss, Compare)
}

// IsSorted reports whether ss is in natural order.
func IsSorted(ss []string) bool {
	return slices.IsSortedFunc(ss, Compare)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// runEnd returns the index just past the digit run starting at i.
func runEnd(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

// trimZeros strips leading zeros, keeping at least one digit.
func trimZeros(run string) string {
	if v := strings.TrimLeft(run, "0"); v != "" {
		return v
	}
	return "0"
}
