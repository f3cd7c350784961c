// Package infix lets the in-place algorithms be called as methods of the
// range they compact:
//
//	end := infix.OfComparable(array.Of(s)).Unique()
//
// It adds no behaviour over package rng. The copy family has no method form
// because a method cannot introduce the destination's position type.
package infix

import (
	"github.com/henderiw/rangekit/pkg/ranges"
	"github.com/henderiw/rangekit/pkg/rng"
)

// Ext carries the method forms available for any element type.
type Ext[P comparable, E any] struct {
	r ranges.SemiOutput[P, E]
}

// Of wraps r.
func Of[P comparable, E any](r ranges.SemiOutput[P, E]) Ext[P, E] {
	return Ext[P, E]{r: r}
}

// UniqueBy is rng.UniqueBy.
func (x Ext[P, E]) UniqueBy(pred func(a, b E) bool) P {
	return rng.UniqueBy(x.r, pred)
}

// EqExt adds the forms that rely on the default equivalence.
type EqExt[P comparable, E ranges.Comparable] struct {
	Ext[P, E]
}

// OfComparable wraps r.
func OfComparable[P comparable, E ranges.Comparable](r ranges.SemiOutput[P, E]) EqExt[P, E] {
	return EqExt[P, E]{Ext: Of(r)}
}

// Unique is rng.Unique.
func (x EqExt[P, E]) Unique() P {
	return rng.Unique(x.r)
}
