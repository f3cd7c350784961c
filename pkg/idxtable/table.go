package idxtable

import (
	"errors"
	"fmt"
	"sync"

	"github.com/henderiw/rangekit/pkg/array"
	"github.com/henderiw/rangekit/pkg/ranges"
	"github.com/henderiw/rangekit/pkg/rng"
)

var ErrNoFreeEntry = errors.New("no free entry found")

type Table[T1 any] interface {
	Get(id int64) (T1, error)
	Claim(id int64, d T1) error
	ClaimDynamic(d T1) (int64, error)
	ClaimRange(start, size int64, d T1) error
	ClaimSize(size int64, d T1) error
	Release(id int64) error
	Update(id int64, d T1) error

	Iterate() *Iterator[T1]
	IterateFree() *Iterator[T1]
	// Entries returns a snapshot of the claimed entries ordered by id.
	Entries() *EntryRange[T1]

	Count() int
	Has(id int64) bool

	IsFree(id int64) bool
	FindFree() (int64, error)
	FindFreeRange(start, size int64) (map[int64]T1, error)
	FindFreeSize(size int64) (map[int64]T1, error)

	GetAll() map[int64]T1
}

type ValidationFn func(id int64) error

func NewTable[T1 any](s int64, initEntries map[int64]T1, v ValidationFn) (Table[T1], error) {
	if s < 0 {
		return nil, fmt.Errorf("table size %d cannot be negative", s)
	}
	slots := make([]slot[T1], s)
	for id := range slots {
		slots[id].id = int64(id)
	}
	r := &table[T1]{
		m:          new(sync.RWMutex),
		slots:      array.Of(slots),
		size:       s,
		validateFn: v,
	}

	var errm error
	for id, d := range initEntries {
		if err := r.add(id, d, true); err != nil {
			errm = errors.Join(errm, err)
		}
	}

	return r, errm
}

type table[T1 any] struct {
	m          *sync.RWMutex
	slots      *array.Array[slot[T1]]
	count      int
	size       int64
	validateFn ValidationFn
}

func (r *table[T1]) validate(id int64, init bool) error {
	if id < 0 {
		return fmt.Errorf("id %d cannot be negative", id)
	}
	if id > r.size-1 {
		return fmt.Errorf("id %d is bigger then max allowed entries: %d", id, r.size-1)
	}
	if r.validateFn != nil && !init {
		if err := r.validateFn(id); err != nil {
			return err
		}
	}
	return nil
}

func (r *table[T1]) cell(id int64) *slot[T1] {
	return r.slots.AtMut(uint(id))
}

func (r *table[T1]) Get(id int64) (T1, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	var d T1

	if err := r.validate(id, false); err != nil {
		return d, err
	}
	s := r.cell(id)
	if !s.claimed {
		return d, fmt.Errorf("no match found for: %v", id)
	}
	return s.data, nil
}

func (r *table[T1]) Claim(id int64, d T1) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(id, d, false)
}

func (r *table[T1]) ClaimDynamic(d T1) (int64, error) {
	r.m.Lock()
	defer r.m.Unlock()

	free := r.iterateFree()
	for free.Next() {
		// the validation function can still refuse a free id
		if err := r.add(free.ID(), d, false); err != nil {
			continue
		}
		return free.ID(), nil
	}
	return 0, ErrNoFreeEntry
}

func (r *table[T1]) ClaimRange(start, size int64, d T1) error {
	r.m.Lock()
	defer r.m.Unlock()

	entries, err := r.findFreeRange(start, size)
	if err != nil {
		return err
	}
	for id := range entries {
		// getting an error is unlikely as we have a lock
		if err := r.add(id, d, false); err != nil {
			return err
		}
	}
	return nil
}

func (r *table[T1]) ClaimSize(size int64, d T1) error {
	r.m.Lock()
	defer r.m.Unlock()

	entries, err := r.findFreeSize(size)
	if err != nil {
		return err
	}
	for id := range entries {
		// getting an error is unlikely as we have a lock
		if err := r.add(id, d, false); err != nil {
			return err
		}
	}
	return nil
}

func (r *table[T1]) Release(id int64) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.delete(id)
}

func (r *table[T1]) Update(id int64, d T1) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.update(id, d)
}

func (r *table[T1]) Iterate() *Iterator[T1] {
	r.m.RLock()
	defer r.m.RUnlock()

	return newIterator(r.entries(r.count, isClaimed[T1]))
}

func (r *table[T1]) IterateFree() *Iterator[T1] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterateFree()
}

func (r *table[T1]) iterateFree() *Iterator[T1] {
	return newIterator(r.entries(int(r.size)-r.count, isFree[T1]))
}

func (r *table[T1]) Entries() *EntryRange[T1] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.entries(r.count, isClaimed[T1])
}

// entries snapshots the n slots selected by pred. n must be the exact number
// of matching slots since it sizes the destination.
func (r *table[T1]) entries(n int, pred func(slot[T1]) bool) *EntryRange[T1] {
	buf := array.New[slot[T1]](n)
	end := rng.CopyIf(r.slots, buf, buf.Start(), pred)
	return newEntryRange(buf.Prefix(end))
}

func (r *table[T1]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.count
}

func (r *table[T1]) Has(id int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	if id < 0 || id >= r.size {
		return false
	}
	return r.cell(id).claimed
}

func (r *table[T1]) IsFree(id int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.isFree(id)
}

func (r *table[T1]) isFree(id int64) bool {
	if id < 0 || id >= r.size {
		return false
	}
	return !r.cell(id).claimed
}

func (r *table[T1]) FindFree() (int64, error) {
	free := r.IterateFree()

	if free.Next() {
		return free.ID(), nil
	}
	return 0, ErrNoFreeEntry
}

func (r *table[T1]) FindFreeRange(start, size int64) (map[int64]T1, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.findFreeRange(start, size)
}

func (r *table[T1]) findFreeRange(start, size int64) (map[int64]T1, error) {
	if size < 1 {
		return nil, fmt.Errorf("size %d must be at least 1", size)
	}
	if start < 0 {
		return nil, fmt.Errorf("start %d cannot be negative", start)
	}
	if start > r.size-1 {
		return nil, fmt.Errorf("start %d is bigger then max allowed entries: %d", start, r.size)
	}
	// compared before computing end, start+size can overflow
	if size > r.size-start {
		return nil, fmt.Errorf("end of range start %d size %d is bigger then max allowed entries: %d", start, size, r.size)
	}
	end := start + size - 1

	entries := make(map[int64]T1, size)
	for s := range ranges.Values(r.slots, uint(start), uint(end+1)) {
		if s.claimed {
			return nil, fmt.Errorf("entry %d in use in range: start: %d, end %d", s.id, start, end)
		}
		entries[s.id] = s.data
	}
	return entries, nil
}

func (r *table[T1]) FindFreeSize(size int64) (map[int64]T1, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.findFreeSize(size)
}

func (r *table[T1]) findFreeSize(size int64) (map[int64]T1, error) {
	if size < 0 {
		return nil, fmt.Errorf("size %d cannot be negative", size)
	}
	if size > r.size {
		return nil, fmt.Errorf("size %d is bigger then max allowed entries: %d", size, r.size)
	}
	free := r.entries(int(r.size)-r.count, isFree[T1])
	if int64(free.Len()) < size {
		return nil, fmt.Errorf("could not find free entries that fit in size %d", size)
	}
	entries := make(map[int64]T1, size)
	last := free.AfterN(free.Start(), int(size))
	for e := range ranges.Values(free, free.Start(), last) {
		entries[e.ID()] = e.Data()
	}
	return entries, nil
}

func (r *table[T1]) add(id int64, d T1, init bool) error {
	if err := r.validate(id, init); err != nil {
		return err
	}
	s := r.cell(id)
	if s.claimed {
		return fmt.Errorf("entry %d already exists", id)
	}
	s.claimed = true
	s.data = d
	r.count++
	return nil
}

func (r *table[T1]) update(id int64, d T1) error {
	if err := r.validate(id, false); err != nil {
		return err
	}
	s := r.cell(id)
	if !s.claimed {
		return fmt.Errorf("entry %d not found", id)
	}
	s.data = d
	return nil
}

func (r *table[T1]) delete(id int64) error {
	if err := r.validate(id, false); err != nil {
		return err
	}
	s := r.cell(id)
	if s.claimed {
		var d T1
		s.claimed = false
		s.data = d
		r.count--
	}
	return nil
}

func (r *table[T1]) GetAll() map[int64]T1 {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := make(map[int64]T1, r.count)
	for _, e := range ranges.All(r.entries(r.count, isClaimed[T1])) {
		entries[e.ID()] = e.Data()
	}
	return entries
}
