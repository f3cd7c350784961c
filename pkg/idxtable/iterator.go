package idxtable

// Iterator is a cursor over an EntryRange. It starts before the first entry,
// call Next to move onto it.
type Iterator[T1 any] struct {
	current int
	entries *EntryRange[T1]
}

func newIterator[T1 any](entries *EntryRange[T1]) *Iterator[T1] {
	return &Iterator[T1]{current: entries.Before(entries.Start()), entries: entries}
}

func (r *Iterator[T1]) Value() T1 {
	return r.entries.At(r.current).Data()
}

func (r *Iterator[T1]) ID() int64 {
	return r.entries.At(r.current).ID()
}

func (r *Iterator[T1]) Next() bool {
	r.current = r.entries.After(r.current)
	return r.current < r.entries.End()
}

// IsConsecutive reports whether the current id directly follows the
// previous one.
func (r *Iterator[T1]) IsConsecutive() bool {
	if r.current <= r.entries.Start() {
		return false
	}
	prev := r.entries.At(r.entries.Before(r.current))
	return prev.ID() == r.ID()-1
}
