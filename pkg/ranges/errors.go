package ranges

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is wrapped by every BoundsError.
var ErrOutOfRange = errors.New("position out of range")

// BoundsError describes a dereference of a position outside
// [Start(), End()) of a range. Adapters panic with it when a precondition is
// violated; Checked turns that panic into an error.
type BoundsError struct {
	Op  string
	Pos any
	// Len is the length of the range, or -1 when it is not known in O(1).
	Len int
}

func (e *BoundsError) Error() string {
	if e.Len < 0 {
		return fmt.Sprintf("%s: position %v out of range", e.Op, e.Pos)
	}
	return fmt.Sprintf("%s: position %v out of range, length %d", e.Op, e.Pos, e.Len)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfRange }

// Checked runs fn and reports a BoundsError raised by any range touched by fn
// as an error instead of a panic. Other panics are not recovered.
//
//	end, err := ranges.Checked(func() uint {
//	    return rng.UniqueCopyBy(src, dest, pred)
//	})
func Checked[T any](fn func() T) (res T, err error) {
	defer func() {
		if r := recover(); r != nil {
			be, ok := r.(*BoundsError)
			if !ok {
				panic(r)
			}
			err = be
		}
	}()
	return fn(), nil
}
