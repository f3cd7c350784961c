// Package array adapts a fixed-length indexable container to every range
// capability. It is the reference other adapters are checked against.
package array

import (
	"fmt"

	"github.com/henderiw/rangekit/pkg/ranges"
)

var (
	_ ranges.RandomAccess[uint, int] = (*Array[int])(nil)
	_ ranges.Output[uint, int]       = (*Array[int])(nil)
)

// Array views a slice as a fixed-length range. Positions are offsets,
// Start() is 0 and End() is the length. The slice is shared, not copied.
type Array[E any] struct {
	ranges.RandomAccessTag
	data []E
}

// Of wraps s. The length of s is the length of the range for its lifetime.
func Of[E any](s []E) *Array[E] {
	return &Array[E]{data: s}
}

// New allocates a zeroed array of n elements.
func New[E any](n int) *Array[E] {
	return &Array[E]{data: make([]E, n)}
}

func (r *Array[E]) Start() uint { return 0 }

func (r *Array[E]) End() uint { return uint(len(r.data)) }

func (r *Array[E]) After(i uint) uint { return i + 1 }

func (r *Array[E]) AfterN(i uint, n int) uint { return i + uint(n) }

func (r *Array[E]) Before(i uint) uint { return i - 1 }

func (r *Array[E]) BeforeN(i uint, n int) uint { return i - uint(n) }

// Distance requires from <= to.
func (r *Array[E]) Distance(from, to uint) int { return int(to - from) }

func (r *Array[E]) At(i uint) E {
	r.check("at", i)
	return r.data[i]
}

func (r *Array[E]) AtMut(i uint) *E {
	r.check("at_mut", i)
	return &r.data[i]
}

func (r *Array[E]) SwapAt(i, j uint) {
	r.check("swap_at", i)
	r.check("swap_at", j)
	r.data[i], r.data[j] = r.data[j], r.data[i]
}

// Len returns the number of elements.
func (r *Array[E]) Len() int { return len(r.data) }

// Slice returns the wrapped slice.
func (r *Array[E]) Slice() []E { return r.data }

// Prefix returns the live part [0, end) of the array, typically the result
// of an in-place compaction or the written part of a destination.
func (r *Array[E]) Prefix(end uint) []E {
	if end > uint(len(r.data)) {
		panic(&ranges.BoundsError{Op: "prefix", Pos: end, Len: len(r.data)})
	}
	return r.data[:end]
}

func (r *Array[E]) String() string {
	return fmt.Sprintf("%v", r.data)
}

func (r *Array[E]) check(op string, i uint) {
	if i >= uint(len(r.data)) {
		panic(&ranges.BoundsError{Op: op, Pos: i, Len: len(r.data)})
	}
}
