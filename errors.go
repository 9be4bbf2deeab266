package intvec

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when an index falls outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ErrInvalidIndex describes an out-of-range index access.
//
// errors.Is(err, ErrIndexOutOfRange) reports true for it.
type ErrInvalidIndex struct {
	Index  int
	Length int
}

func (e *ErrInvalidIndex) Error() string {
	return fmt.Sprintf("invalid index %d: length is %d", e.Index, e.Length)
}

func (e *ErrInvalidIndex) Unwrap() error { return ErrIndexOutOfRange }
