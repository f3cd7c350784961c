// Package ranges defines the capability interfaces a container implements to
// take part in the generic algorithms of this module.
//
// Traversal power is layered Input -> Forward -> Bidirectional -> RandomAccess,
// mutation power is layered SemiOutput -> Output. An algorithm is written
// against the weakest capability it needs, so one implementation runs over
// every container that exposes at least that capability.
//
// Go has no associated types, so every interface carries the position type P
// and the element type E as explicit type parameters. A position is a plain
// value scoped to the range that produced it and is only meaningful within
// [Start(), End()]. End() is a sentinel and is never dereferenced.
package ranges

// Input is a readable sequence traversed front to back.
type Input[P comparable, E any] interface {
	// Start returns the position of the first element, or End() when empty.
	Start() P
	// End returns the sentinel position one past the last element.
	End() P
	// After returns the position one step after p. p must not be End().
	After(p P) P
	// AfterN returns the position n steps after p. It must behave as n
	// repeated calls to After; StepN is the default implementation.
	AfterN(p P, n int) P
	// At returns the element at p. p must not be End().
	At(p P) E
}

// Forward is an Input whose positions can be revisited, so a position may be
// kept while traversal continues from another one.
type Forward[P comparable, E any] interface {
	Input[P, E]
	// Distance returns the number of After steps from `from` to `to`.
	// `to` must be reachable from `from`. CountSteps is the default
	// implementation.
	Distance(from, to P) int
}

// Bidirectional is a Forward range that can also step backwards.
type Bidirectional[P comparable, E any] interface {
	Forward[P, E]
	// Before returns the position one step before p. p must not be Start().
	Before(p P) P
	// BeforeN must behave as n repeated calls to Before; StepBackN is the
	// default implementation.
	BeforeN(p P, n int) P
}

// RandomAccess is a Bidirectional range whose AfterN, BeforeN and Distance
// run in O(1). It adds no operation: results must be identical to the
// step-by-step definitions. Implementations embed RandomAccessTag.
type RandomAccess[P comparable, E any] interface {
	Bidirectional[P, E]
	RandomAccess()
}

// SemiOutput is a Forward range that can exchange two of its elements.
// Swapping never creates or destroys a value, so it places no requirement on
// the element type.
type SemiOutput[P comparable, E any] interface {
	Forward[P, E]
	// SwapAt exchanges the elements at i and j. Neither may be End().
	SwapAt(i, j P)
}

// Output is a SemiOutput range with full mutable element access. It is
// required whenever an algorithm writes a value that is not already in the
// range.
type Output[P comparable, E any] interface {
	SemiOutput[P, E]
	// AtMut returns a pointer to the element at p. p must not be End().
	AtMut(p P) *E
}

// RandomAccessTag marks a range as RandomAccess when embedded in it.
type RandomAccessTag struct{}

// RandomAccess implements the RandomAccess marker.
func (RandomAccessTag) RandomAccess() {}

// Len returns the number of elements in r.
func Len[P comparable, E any](r Forward[P, E]) int {
	return r.Distance(r.Start(), r.End())
}
