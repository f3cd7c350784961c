package algo

import "github.com/henderiw/rangekit/pkg/ranges"

// CopyIf copies the elements of src in [from, to) for which pred holds into
// dest, starting at out and preserving their order. Elements rejected by
// pred take no room in dest.
//
// It returns the position in dest one past the last written element.
// pred is called exactly once per element of [from, to). dest must have room
// for every element written.
func CopyIf[P, Q comparable, E ranges.Duplicable](
	src ranges.Input[P, E],
	from, to P,
	dest ranges.Output[Q, E],
	out Q,
	pred func(E) bool,
) Q {
	for ; from != to; from = src.After(from) {
		v := src.At(from)
		if !pred(v) {
			continue
		}
		*dest.AtMut(out) = ranges.Dup(v)
		out = dest.After(out)
	}
	return out
}

// Copy copies every element of src in [from, to) into dest starting at out
// and returns the position one past the last written element.
func Copy[P, Q comparable, E ranges.Duplicable](
	src ranges.Input[P, E],
	from, to P,
	dest ranges.Output[Q, E],
	out Q,
) Q {
	return CopyIf(src, from, to, dest, out, always[E])
}

func always[E any](E) bool { return true }
