package ranges

// Advancer is the single-step forward traversal every Input provides.
type Advancer[P comparable] interface {
	After(p P) P
}

// Retreater is the single-step backward traversal a Bidirectional provides.
type Retreater[P comparable] interface {
	Before(p P) P
}

// StepN applies After n times starting at p. Ranges without a faster
// AfterN delegate to it.
func StepN[P comparable](r Advancer[P], p P, n int) P {
	for ; n > 0; n-- {
		p = r.After(p)
	}
	return p
}

// StepBackN applies Before n times starting at p.
func StepBackN[P comparable](r Retreater[P], p P, n int) P {
	for ; n > 0; n-- {
		p = r.Before(p)
	}
	return p
}

// CountSteps counts the After steps needed to reach `to` from `from`.
// `to` must be reachable from `from`, otherwise CountSteps does not return.
func CountSteps[P comparable](r Advancer[P], from, to P) int {
	n := 0
	for ; from != to; from = r.After(from) {
		n++
	}
	return n
}
