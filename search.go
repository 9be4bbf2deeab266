package intvec

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// FindLinear scans the elements in order and returns the first index
// holding v, or -1. Works on any ordering.
func (a *IntArray) FindLinear(v int) int {
	for i, x := range a.All() {
		if x == v {
			return i
		}
	}
	return -1
}

// FindBinary searches for v by repeated halving and returns an index holding
// it, or -1.
//
// The elements must be sorted ascending. This is not checked (unless
// WithSortedCheck is set, which only logs); on unsorted elements the result
// is arbitrary. With duplicates any matching index may be returned.
func (a *IntArray) FindBinary(v int) int {
	if a.opts.checkSorted && !slices.IsSorted(a.data[:a.length]) {
		a.opts.logger.LogUnsorted(v, a.length)
	}

	low, high := 0, a.length-1
	for low <= high {
		mid := int(uint(low+high) >> 1)
		switch x := a.data[mid]; {
		case x < v:
			low = mid + 1
		case x > v:
			high = mid - 1
		default:
			return mid
		}
	}
	return -1
}

// Count returns the number of elements equal to v.
func (a *IntArray) Count(v int) int {
	n := 0
	for _, x := range a.All() {
		if x == v {
			n++
		}
	}
	return n
}

// FindAll returns the set of indices holding v.
// Its cardinality equals Count(v). Positions are 32-bit, so arrays longer
// than math.MaxUint32 are not supported here.
func (a *IntArray) FindAll(v int) *roaring.Bitmap {
	rb := roaring.New()
	for i, x := range a.All() {
		if x == v {
			rb.Add(uint32(i)) //nolint:gosec // bitmap positions are 32-bit
		}
	}
	return rb
}
