package ranges

// Duplicable is satisfied by element types that can produce an independent
// copy of a value. Assignment copies every Go value; elements that hold
// references and need a deep copy implement Cloner.
type Duplicable interface {
	any
}

// Comparable is satisfied by Duplicable element types that also have a
// default equivalence, ==.
type Comparable interface {
	comparable
}

// Cloner is implemented by elements whose duplicate must not share state
// with the original.
type Cloner[E any] interface {
	Clone() E
}

// Dup returns an independent copy of v.
func Dup[E Duplicable](v E) E {
	if c, ok := any(v).(Cloner[E]); ok {
		return c.Clone()
	}
	return v
}

// Equal is the default equivalence used when no predicate is supplied.
func Equal[E Comparable](a, b E) bool {
	return a == b
}
