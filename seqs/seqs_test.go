package seqs_test

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/sunsided/utilitybelt/natsort"
	"github.com/sunsided/utilitybelt/seqs"
)

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b []int
		want int
	}{
		{nil, nil, 0},
		{nil, []int{1}, -1},
		{[]int{1, 2}, []int{1, 2}, 0},
		{[]int{1, 2}, []int{1, 3}, -1},
		{[]int{1, 2}, []int{1, 2, 0}, -1},
		{[]int{2}, []int{1, 9, 9}, 1},
	}
	for _, tc := range cases {
		got := seqs.Compare(slices.Values(tc.a), slices.Values(tc.b))
		assert.Equal(t, tc.want, got, "Compare(%v, %v)", tc.a, tc.b)
		assert.Equal(t, slices.Compare(tc.a, tc.b), got, "should match slices.Compare")
	}
}

func TestCompareFunc(t *testing.T) {
	// Natural ordering element-wise: "2" before "10".
	a := slices.Values([]string{"a", "2"})
	b := slices.Values([]string{"a", "10"})
	assert.Equal(t, -1, seqs.CompareFunc(a, b, natsort.Compare))

	// Mixed element types via the comparison function.
	nums := slices.Values([]int{1, 2, 3})
	words := slices.Values([]string{"1", "2", "3"})
	got := seqs.CompareFunc(nums, words, func(n int, s string) int {
		return natsort.Compare(strconv.Itoa(n), s)
	})
	assert.Equal(t, 0, got)
}

func TestEqual(t *testing.T) {
	assert.Assert(t, seqs.Equal(slices.Values([]int(nil)), slices.Values([]int{})))
	assert.Assert(t, seqs.Equal(slices.Values([]int{1, 2}), slices.Values([]int{1, 2})))
	assert.Assert(t, !seqs.Equal(slices.Values([]int{1, 2}), slices.Values([]int{1})))
	assert.Assert(t, !seqs.Equal(slices.Values([]int{1, 2}), slices.Values([]int{2, 2})))
}

func TestEqualFunc(t *testing.T) {
	a := []string{"Alpha", "beta"}
	b := []string{"alpha", "BETA"}
	assert.Assert(t, seqs.EqualFunc(slices.Values(a), slices.Values(b), strings.EqualFold))
	assert.Assert(t, !seqs.EqualFunc(slices.Values(a), slices.Values(b[:1]), strings.EqualFold))
}
