package idxtable

import (
	"github.com/henderiw/rangekit/pkg/ranges"
)

var _ ranges.RandomAccess[int, Entry[string]] = (*EntryRange[string])(nil)

// EntryRange is a read-only snapshot of table entries ordered by id. It is a
// RandomAccess range, positions are offsets into the snapshot.
type EntryRange[T1 any] struct {
	ranges.RandomAccessTag
	entries []Entry[T1]
}

func newEntryRange[T1 any](slots []slot[T1]) *EntryRange[T1] {
	entries := make([]Entry[T1], 0, len(slots))
	for _, s := range slots {
		entries = append(entries, NewEntry(s.id, s.data))
	}
	return &EntryRange[T1]{entries: entries}
}

func (r *EntryRange[T1]) Start() int                { return 0 }
func (r *EntryRange[T1]) End() int                  { return len(r.entries) }
func (r *EntryRange[T1]) After(i int) int           { return i + 1 }
func (r *EntryRange[T1]) AfterN(i int, n int) int   { return i + n }
func (r *EntryRange[T1]) Before(i int) int          { return i - 1 }
func (r *EntryRange[T1]) BeforeN(i int, n int) int  { return i - n }
func (r *EntryRange[T1]) Distance(from, to int) int { return to - from }

func (r *EntryRange[T1]) At(i int) Entry[T1] {
	if i < 0 || i >= len(r.entries) {
		panic(&ranges.BoundsError{Op: "at", Pos: i, Len: len(r.entries)})
	}
	return r.entries[i]
}

func (r *EntryRange[T1]) Len() int { return len(r.entries) }
