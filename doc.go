// Package intvec provides a growable array of integers.
//
// IntArray owns a contiguous backing block whose capacity grows in fixed
// increments, and a logical length counting the valid elements. Only
// indices in [0, Len()) are meaningful.
//
// # Quick Start
//
//	a := intvec.New([]int{3, 1, 2})
//	a.Append(7)
//	v, _ := a.Get(1)     // 1
//	fmt.Println(a)       // [3, 1, 2, 7]
//	_ = a.RemoveAt(0)    // [1, 2, 7]
//
// # Growth Policy
//
// Two growth paths exist and both are part of the contract:
//
//	a.Append(v)          // full block: grow by the increment (default 100)
//	a.AppendAll(values)  // short block: grow once to exactly Len()+len(values)
//
// Capacity never shrinks. Clear resets the length and keeps the block.
//
// # Searching
//
// FindLinear works on any ordering. FindBinary expects the elements sorted
// ascending and returns an arbitrary answer otherwise:
//
//	a := intvec.New([]int{1, 2, 3, 4, 5})
//	a.FindBinary(4) // 3
//	a.FindBinary(9) // -1
//
// FindAll returns every matching index as a roaring bitmap.
//
// # Concurrency
//
// An IntArray is not safe for concurrent use. Callers sharing one across
// goroutines must guard it themselves.
package intvec
