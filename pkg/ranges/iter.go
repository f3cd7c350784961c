package ranges

import "iter"

// Values yields the elements of r in [from, to).
func Values[P comparable, E any](r Input[P, E], from, to P) iter.Seq[E] {
	return func(yield func(E) bool) {
		for p := from; p != to; p = r.After(p) {
			if !yield(r.At(p)) {
				return
			}
		}
	}
}

// All yields every position of r with its element.
func All[P comparable, E any](r Input[P, E]) iter.Seq2[P, E] {
	return func(yield func(P, E) bool) {
		end := r.End()
		for p := r.Start(); p != end; p = r.After(p) {
			if !yield(p, r.At(p)) {
				return
			}
		}
	}
}
