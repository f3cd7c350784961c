// Package vlantable tracks the allocation of the 4096 VLAN ids. The
// untagged, default and reserved VLANs are claimed when the table is created
// and can never be claimed by a user.
package vlantable

import (
	"fmt"
	"maps"
	"strings"

	"github.com/henderiw/rangekit/pkg/array"
	"github.com/henderiw/rangekit/pkg/idxtable"
	"github.com/henderiw/rangekit/pkg/ranges"
	"github.com/henderiw/rangekit/pkg/rng"
	"k8s.io/apimachinery/pkg/labels"
)

const size = 4096

var reserved = map[int64]labels.Set{
	0:    {"type": "untagged", "status": "reserved"},
	1:    {"type": "default", "status": "reserved"},
	4095: {"type": "reserved", "status": "reserved"},
}

type VLANTable interface {
	idxtable.Table[labels.Set]

	GetByLabel(selector labels.Selector) map[int64]labels.Set
	// Segments folds consecutive claimed VLANs with equal labels into one
	// segment, ordered by VLAN id.
	Segments() []Segment
}

// Segment is a run of consecutive VLAN ids sharing the same labels.
type Segment struct {
	From   int64
	To     int64
	Labels labels.Set
}

func (s Segment) String() string {
	var sb strings.Builder
	if s.From == s.To {
		fmt.Fprintf(&sb, "%d", s.From)
	} else {
		fmt.Fprintf(&sb, "%d-%d", s.From, s.To)
	}
	if len(s.Labels) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(s.Labels.String())
	}
	return sb.String()
}

func New() (VLANTable, error) {
	initEntries := make(map[int64]labels.Set, len(reserved))
	for id, d := range reserved {
		initEntries[id] = maps.Clone(d)
	}
	t, err := idxtable.NewTable(size, initEntries, validate)
	if err != nil {
		return nil, err
	}
	return &vlanTable{Table: t}, nil
}

func validate(id int64) error {
	if d, ok := reserved[id]; ok {
		return fmt.Errorf("VLAN %d is the %s VLAN, cannot be claimed", id, d["type"])
	}
	return nil
}

type vlanTable struct {
	idxtable.Table[labels.Set]
}

func (r *vlanTable) GetByLabel(selector labels.Selector) map[int64]labels.Set {
	src := r.Entries()
	dest := array.New[idxtable.Entry[labels.Set]](src.Len())

	end := rng.CopyIf(src, dest, dest.Start(), func(e idxtable.Entry[labels.Set]) bool {
		return selector.Matches(e.Data())
	})

	entries := make(map[int64]labels.Set, end)
	for _, e := range dest.Prefix(end) {
		entries[e.ID()] = e.Data()
	}
	return entries
}

func (r *vlanTable) Segments() []Segment {
	src := r.Entries()
	segments := make([]*Segment, 0, src.Len())
	for _, e := range ranges.All(src) {
		segments = append(segments, &Segment{From: e.ID(), To: e.ID(), Labels: e.Data()})
	}

	// kept is always the segment being grown, so next only has to extend it
	buf := array.Of(segments)
	end := rng.UniqueBy(buf, func(kept, next *Segment) bool {
		if next.From != kept.To+1 || !labels.Equals(kept.Labels, next.Labels) {
			return false
		}
		kept.To = next.To
		return true
	})

	out := make([]Segment, 0, end)
	for _, s := range buf.Prefix(end) {
		out = append(out, *s)
	}
	return out
}
