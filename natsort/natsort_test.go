package natsort_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/sunsided/utilitybelt/natsort"
)

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "a", -1},
		{"a", "a", 0},
		{"a", "b", -1},
		{"a", "ab", -1},
		{"a2", "a10", -1},
		{"item2", "item10", -1},
		{"2", "10", -1},
		{"02", "10", -1},
		{"x9y", "x10x", -1},
		{"a1b2", "a1b10", -1},
		{"a01b2", "a1b10", -1}, // value differences beat zero-padding ones
		{"1.2.3", "1.10.0", -1},
		{"a1", "a01", -1}, // fewer leading zeros first
		{"a01", "a001", -1},
		{"00", "000", -1},
		{"a1", "aa", -1}, // digits order before letters, byte-wise
		{"a10", "a10", 0},
		{"a0010", "a0010", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, natsort.Compare(tc.a, tc.b), "Compare(%q, %q)", tc.a, tc.b)
		assert.Equal(t, -tc.want, natsort.Compare(tc.b, tc.a), "Compare(%q, %q)", tc.b, tc.a)
	}
}

func TestLess(t *testing.T) {
	assert.Assert(t, natsort.Less("file9", "file10"))
	assert.Assert(t, !natsort.Less("file10", "file9"))
	assert.Assert(t, !natsort.Less("file9", "file9"))
}

func TestSort(t *testing.T) {
	ss := []string{"pic10", "pic2", "pic02", "pic1", "pic", "alpha", "pic3x", "pic10a"}
	natsort.Sort(ss)
	assert.DeepEqual(t, []string{"alpha", "pic", "pic1", "pic2", "pic02", "pic3x", "pic10", "pic10a"}, ss)
	assert.Assert(t, natsort.IsSorted(ss))
}

func TestIsSorted(t *testing.T) {
	assert.Assert(t, natsort.IsSorted(nil))
	assert.Assert(t, natsort.IsSorted([]string{"a1", "a2", "a10"}))
	assert.Assert(t, !natsort.IsSorted([]string{"a10", "a2"}))
}
