package rng

import (
	"github.com/henderiw/rangekit/pkg/algo"
	"github.com/henderiw/rangekit/pkg/ranges"
)

// UniqueBy compacts adjacent runs of r that pred reports as equivalent and
// returns the new logical end. See algo.UniqueBy.
func UniqueBy[P comparable, E any](r ranges.SemiOutput[P, E], pred func(a, b E) bool) P {
	return algo.UniqueBy(r, r.Start(), r.End(), pred)
}

// Unique compacts adjacent runs of equal elements of r and returns the new
// logical end. See algo.Unique.
func Unique[P comparable, E ranges.Comparable](r ranges.SemiOutput[P, E]) P {
	return algo.Unique(r, r.Start(), r.End())
}

// UniqueCopyBy writes the first element of every adjacent run of src into
// dest from dest.Start() and returns the position past the last write.
// See algo.UniqueCopyBy.
func UniqueCopyBy[P, Q comparable, E ranges.Duplicable](
	src ranges.Input[P, E],
	dest ranges.Output[Q, E],
	pred func(a, b E) bool,
) Q {
	return algo.UniqueCopyBy(src, src.Start(), src.End(), dest, dest.Start(), pred)
}

// UniqueCopy is UniqueCopyBy with == as the equivalence.
func UniqueCopy[P, Q comparable, E ranges.Comparable](
	src ranges.Input[P, E],
	dest ranges.Output[Q, E],
) Q {
	return algo.UniqueCopy(src, src.Start(), src.End(), dest, dest.Start())
}
