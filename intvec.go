package intvec

import (
	"iter"
	"strconv"
	"strings"
)

// IntArray is a growable array of integers.
//
// The backing block is data; len(data) is the capacity. Only data[:length]
// holds elements, slots beyond it are never read.
type IntArray struct {
	data   []int
	length int
	opts   options
}

// New creates an IntArray with capacity equal to the growth increment and
// appends values in order through AppendAll. values may be nil.
func New(values []int, optFns ...Option) *IntArray {
	opts := applyOptions(optFns)

	a := &IntArray{
		data: make([]int, opts.growthIncrement),
		opts: opts,
	}
	a.AppendAll(values)

	return a
}

// Len returns the number of valid elements.
func (a *IntArray) Len() int {
	return a.length
}

// Cap returns the number of allocated slots.
func (a *IntArray) Cap() int {
	return len(a.data)
}

// IsEmpty reports whether Len() == 0.
func (a *IntArray) IsEmpty() bool {
	return a.length == 0
}

// Get returns the element at index i.
// It returns *ErrInvalidIndex when i is outside [0, Len()).
func (a *IntArray) Get(i int) (int, error) {
	if err := a.checkIndex(i); err != nil {
		return 0, err
	}
	return a.data[i], nil
}

// Append stores v after the last element. A full block grows by the growth
// increment first.
func (a *IntArray) Append(v int) {
	if a.length == len(a.data) {
		a.grow(len(a.data)+a.opts.growthIncrement, false)
	}
	a.data[a.length] = v
	a.length++
}

// AppendAll appends values in order. When the block is too small it grows
// once, to exactly Len()+len(values), so the copy loop never reallocates.
func (a *IntArray) AppendAll(values []int) {
	if need := a.length + len(values); need > len(a.data) {
		a.grow(need, true)
	}
	for _, v := range values {
		a.Append(v)
	}
}

// RemoveAt deletes the element at index i and shifts the elements after it
// one slot left. Removing the last element shifts nothing. Capacity is kept.
func (a *IntArray) RemoveAt(i int) error {
	if err := a.checkIndex(i); err != nil {
		a.opts.logger.LogRemove(i, 0, err)
		return err
	}

	shifted := copy(a.data[i:], a.data[i+1:a.length])
	a.length--

	a.opts.metricsCollector.RecordRemove(shifted)
	a.opts.logger.LogRemove(i, shifted, nil)

	return nil
}

// Clear drops all elements in O(1). The backing block is retained.
func (a *IntArray) Clear() {
	dropped := a.length
	a.length = 0
	a.opts.logger.LogClear(dropped, len(a.data))
}

// Indices yields the valid indices 0..Len()-1.
func (a *IntArray) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < a.length; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// All yields index/value pairs over the valid range.
func (a *IntArray) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := range a.Indices() {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Values returns a copy of the valid elements.
func (a *IntArray) Values() []int {
	out := make([]int, a.length)
	copy(out, a.data[:a.length])
	return out
}

// String renders the elements as "[e0, e1, ..., en-1]", or "[]" when empty.
func (a *IntArray) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a *IntArray) checkIndex(i int) error {
	if i < 0 || i >= a.length {
		return &ErrInvalidIndex{Index: i, Length: a.length}
	}
	return nil
}

// grow moves the valid elements into a new block of size capacity.
func (a *IntArray) grow(capacity int, bulk bool) {
	from := len(a.data)

	data := make([]int, capacity)
	copy(data, a.data[:a.length])
	a.data = data

	a.opts.metricsCollector.RecordGrow(from, capacity, bulk)
	a.opts.logger.LogGrow(from, capacity, a.length, bulk)
}
