// Package iprange exposes an IP address range as a read-only Bidirectional
// range of netip.Addr. Addresses are generated rather than stored, and
// stepping is done one address at a time, so the range is not RandomAccess:
// AfterN, BeforeN and Distance walk.
package iprange

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/henderiw/rangekit/pkg/ranges"
	"github.com/henderiw/rangekit/pkg/rng"
	"go4.org/netipx"
)

var _ ranges.Bidirectional[netip.Addr, netip.Addr] = (*Range)(nil)

// Range walks the addresses from From() to To(). Its End() is the address
// after To(), which is the invalid zero netip.Addr when To() is the last
// address of its family.
type Range struct {
	ipRange netipx.IPRange
	// prefix is set when the range was built from a CIDR
	prefix netip.Prefix
}

// New returns the range covering ipRange.
func New(ipRange netipx.IPRange) *Range {
	return &Range{ipRange: ipRange}
}

// FromPrefix returns the range covering p.
func FromPrefix(p netip.Prefix) *Range {
	p = p.Masked()
	return &Range{ipRange: netipx.RangeOfPrefix(p), prefix: p}
}

// Parse accepts a CIDR ("10.0.0.0/24"), an explicit range
// ("10.0.0.10-10.0.0.20") or a single address.
func Parse(s string) (*Range, error) {
	switch {
	case strings.Contains(s, "/"):
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return nil, fmt.Errorf("invalid prefix %q: %w", s, err)
		}
		return FromPrefix(p), nil
	case strings.Contains(s, "-"):
		ipRange, err := netipx.ParseIPRange(s)
		if err != nil {
			return nil, fmt.Errorf("invalid ip range %q: %w", s, err)
		}
		return New(ipRange), nil
	default:
		addr, err := netip.ParseAddr(s)
		if err != nil {
			return nil, fmt.Errorf("invalid ip address %q: %w", s, err)
		}
		return New(netipx.IPRangeFrom(addr, addr)), nil
	}
}

func (r *Range) String() string {
	if r.prefix.IsValid() {
		return r.prefix.String()
	}
	return r.ipRange.String()
}

func (r *Range) From() netip.Addr { return r.ipRange.From() }

func (r *Range) To() netip.Addr { return r.ipRange.To() }

func (r *Range) Start() netip.Addr {
	if !r.ipRange.IsValid() {
		return netip.Addr{}
	}
	return r.ipRange.From()
}

func (r *Range) End() netip.Addr {
	if !r.ipRange.IsValid() {
		return netip.Addr{}
	}
	return r.ipRange.To().Next()
}

func (r *Range) After(p netip.Addr) netip.Addr {
	if p == r.ipRange.To() {
		return r.End()
	}
	return p.Next()
}

func (r *Range) AfterN(p netip.Addr, n int) netip.Addr {
	return ranges.StepN[netip.Addr](r, p, n)
}

func (r *Range) Before(p netip.Addr) netip.Addr {
	if p == r.End() {
		return r.ipRange.To()
	}
	return p.Prev()
}

func (r *Range) BeforeN(p netip.Addr, n int) netip.Addr {
	return ranges.StepBackN[netip.Addr](r, p, n)
}

func (r *Range) Distance(from, to netip.Addr) int {
	return ranges.CountSteps[netip.Addr](r, from, to)
}

func (r *Range) At(p netip.Addr) netip.Addr {
	if !r.ipRange.Contains(p) {
		panic(&ranges.BoundsError{Op: "at", Pos: p, Len: -1})
	}
	return p
}

// Hosts copies the addresses of r usable by hosts into dest starting at out.
// For an IPv4 prefix shorter than /31 the network and broadcast addresses
// are skipped, otherwise every address is copied.
func Hosts[Q comparable](r *Range, dest ranges.Output[Q, netip.Addr], out Q) Q {
	return rng.CopyIf[netip.Addr, Q, netip.Addr](r, dest, out, r.isHost)
}

func (r *Range) isHost(a netip.Addr) bool {
	if !r.prefix.IsValid() || !r.prefix.Addr().Is4() || r.prefix.Bits() >= 31 {
		return true
	}
	return a != r.ipRange.From() && a != r.ipRange.To()
}
