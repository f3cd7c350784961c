package rng

import (
	"github.com/henderiw/rangekit/pkg/algo"
	"github.com/henderiw/rangekit/pkg/ranges"
)

// CopyIf copies the elements of src for which pred holds into dest starting
// at out. See algo.CopyIf.
func CopyIf[P, Q comparable, E ranges.Duplicable](
	src ranges.Input[P, E],
	dest ranges.Output[Q, E],
	out Q,
	pred func(E) bool,
) Q {
	return algo.CopyIf(src, src.Start(), src.End(), dest, out, pred)
}

// Copy copies every element of src into dest starting at out.
// See algo.Copy.
func Copy[P, Q comparable, E ranges.Duplicable](
	src ranges.Input[P, E],
	dest ranges.Output[Q, E],
	out Q,
) Q {
	return algo.Copy(src, src.Start(), src.End(), dest, out)
}
