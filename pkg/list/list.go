// Package list is a doubly linked list exposed as a Bidirectional, Output
// range. It has no O(1) jumps, so it is not RandomAccess: AfterN, BeforeN and
// Distance walk the list one node at a time.
package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/henderiw/rangekit/pkg/ranges"
)

var (
	_ ranges.Bidirectional[*Node[int], int] = (*List[int])(nil)
	_ ranges.Output[*Node[int], int]        = (*List[int])(nil)
)

// Node is a position in a List. The zero Node is not a valid position.
type Node[E any] struct {
	prev *Node[E]
	next *Node[E]
	val  E
}

// List is a sentinel-based doubly linked list. Start() is the first node,
// End() is the tail sentinel.
type List[E any] struct {
	head *Node[E]
	tail *Node[E]
	size int
}

// New returns a list holding values in order.
func New[E any](values ...E) *List[E] {
	l := &List[E]{
		head: &Node[E]{},
		tail: &Node[E]{},
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	l.PushBack(values...)
	return l
}

// PushBack appends values to the end of the list.
func (l *List[E]) PushBack(values ...E) {
	for _, v := range values {
		n := &Node[E]{val: v, prev: l.tail.prev, next: l.tail}
		l.tail.prev.next = n
		l.tail.prev = n
		l.size++
	}
}

// Truncate removes every node from p up to the end of the list. p is
// usually the new logical end returned by an in-place algorithm.
func (l *List[E]) Truncate(p *Node[E]) {
	if p == l.tail {
		return
	}
	last := p.prev
	for n := p; n != l.tail; {
		next := n.next
		// Help GC
		n.prev, n.next = nil, nil
		n = next
		l.size--
	}
	last.next = l.tail
	l.tail.prev = last
}

// Len returns the number of elements.
func (l *List[E]) Len() int { return l.size }

// Values yields the elements front to back.
func (l *List[E]) Values() iter.Seq[E] {
	return ranges.Values[*Node[E], E](l, l.Start(), l.End())
}

func (l *List[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head.next; n != l.tail; n = n.next {
		if n != l.head.next {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", n.val)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (l *List[E]) Start() *Node[E] { return l.head.next }

func (l *List[E]) End() *Node[E] { return l.tail }

func (l *List[E]) After(p *Node[E]) *Node[E] { return p.next }

func (l *List[E]) AfterN(p *Node[E], n int) *Node[E] {
	return ranges.StepN[*Node[E]](l, p, n)
}

func (l *List[E]) Before(p *Node[E]) *Node[E] { return p.prev }

func (l *List[E]) BeforeN(p *Node[E], n int) *Node[E] {
	return ranges.StepBackN[*Node[E]](l, p, n)
}

func (l *List[E]) Distance(from, to *Node[E]) int {
	return ranges.CountSteps[*Node[E]](l, from, to)
}

func (l *List[E]) At(p *Node[E]) E {
	l.check("at", p)
	return p.val
}

func (l *List[E]) AtMut(p *Node[E]) *E {
	l.check("at_mut", p)
	return &p.val
}

func (l *List[E]) SwapAt(i, j *Node[E]) {
	l.check("swap_at", i)
	l.check("swap_at", j)
	i.val, j.val = j.val, i.val
}

// check rejects the sentinels and detached nodes.
func (l *List[E]) check(op string, p *Node[E]) {
	if p == nil || p == l.head || p == l.tail || p.next == nil {
		panic(&ranges.BoundsError{Op: op, Pos: fmt.Sprintf("%p", p), Len: l.size})
	}
}
