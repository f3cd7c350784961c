package algo

import "github.com/henderiw/rangekit/pkg/ranges"

// UniqueBy compacts every run of adjacent elements of r in [from, to) that
// pred reports as equivalent down to the first element of the run.
//
// It returns the new logical end: the kept elements occupy [from, newEnd) in
// their original relative order. The physical size of r does not change and
// the order of the elements left in [newEnd, to) is unspecified, since they
// are exchanged with SwapAt rather than shifted.
//
// Only adjacent elements are compared, so equal values separated by a
// different one are kept as separate runs.
//
// pred(kept, next) is called exactly max(0, n-1) times, once per scanned
// element in forward order. kept is always the representative of the current
// run and next the element being scanned. pred need not be an equivalence
// relation: it may accept next by its relation to kept alone, and when E is a
// reference type it may fold next into kept before returning true.
func UniqueBy[P comparable, E any](
	r ranges.SemiOutput[P, E],
	from, to P,
	pred func(a, b E) bool,
) P {
	if from == to {
		return from
	}
	kept := from
	for scan := r.After(from); scan != to; scan = r.After(scan) {
		if pred(r.At(kept), r.At(scan)) {
			continue
		}
		kept = r.After(kept)
		if kept != scan {
			r.SwapAt(kept, scan)
		}
	}
	return r.After(kept)
}

// Unique is UniqueBy with == as the equivalence.
func Unique[P comparable, E ranges.Comparable](r ranges.SemiOutput[P, E], from, to P) P {
	return UniqueBy(r, from, to, ranges.Equal[E])
}

// UniqueCopyBy copies the first element of every run of adjacent equivalent
// elements of src in [from, to) into dest starting at out. src is only read.
//
// It returns the position in dest one past the last written element. dest
// must have room for one element per run, which is at most the length of
// [from, to). pred(kept, next) is called as in UniqueBy: exactly
// max(0, n-1) times in forward order, kept being the last written
// representative.
func UniqueCopyBy[P, Q comparable, E ranges.Duplicable](
	src ranges.Input[P, E],
	from, to P,
	dest ranges.Output[Q, E],
	out Q,
	pred func(a, b E) bool,
) Q {
	if from == to {
		return out
	}
	kept := src.At(from)
	*dest.AtMut(out) = ranges.Dup(kept)
	out = dest.After(out)
	for scan := src.After(from); scan != to; scan = src.After(scan) {
		v := src.At(scan)
		if pred(kept, v) {
			continue
		}
		kept = v
		*dest.AtMut(out) = ranges.Dup(v)
		out = dest.After(out)
	}
	return out
}

// UniqueCopy is UniqueCopyBy with == as the equivalence.
func UniqueCopy[P, Q comparable, E ranges.Comparable](
	src ranges.Input[P, E],
	from, to P,
	dest ranges.Output[Q, E],
	out Q,
) Q {
	return UniqueCopyBy(src, from, to, dest, out, ranges.Equal[E])
}
