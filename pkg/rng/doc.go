// Package rng provides the whole-range forms of the algorithms in package
// algo: the bounds default to the range's own Start() and End(), and the
// copying unique variants write from the start of the destination.
//
//	src := array.Of([]int{1, 1, 2, 3, 3})
//	end := rng.Unique(src) // src.Prefix(end) == [1 2 3]
package rng
