package lists

import (
	"fmt"
	"iter"
	"strings"
)

// Cons is a cell of a singly linked pair-list.
//
// The empty list is the nil *Cons. There is exactly one empty list and it
// carries no state, so it can never be mutated. Every method is nil-safe.
type Cons struct {
	car any
	cdr *Cons
}

// NewCons returns a new cell with car as head and cdr as tail.
func NewCons(car any, cdr *Cons) *Cons {
	return &Cons{car: car, cdr: cdr}
}

// List builds a pair-list from values, preserving order.
func List(values ...any) *Cons {
	var head *Cons
	for i := len(values) - 1; i >= 0; i-- {
		head = &Cons{car: values[i], cdr: head}
	}
	return head
}

// Car returns the head of the list, or nil for the empty list.
func (c *Cons) Car() any {
	if c == nil {
		return nil
	}
	return c.car
}

// Cdr returns the tail of the list. The tail of the empty list is the empty list.
func (c *Cons) Cdr() *Cons {
	if c == nil {
		return nil
	}
	return c.cdr
}

func (c *Cons) IsEmpty() bool {
	return c == nil
}

// Len walks the list and counts its cells.
func (c *Cons) Len() int {
	n := 0
	for cur := c; cur != nil; cur = cur.cdr {
		n++
	}
	return n
}

// Values returns an iterator over the cars of the list.
func (c *Cons) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for cur := c; cur != nil; cur = cur.cdr {
			if !yield(cur.car) {
				return
			}
		}
	}
}

func (c *Cons) ToSlice() []any {
	res := make([]any, 0, c.Len())
	for cur := c; cur != nil; cur = cur.cdr {
		res = append(res, cur.car)
	}
	return res
}

// String renders the list in parenthesized form, e.g. (1 2 3).
func (c *Cons) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for cur := c; cur != nil; cur = cur.cdr {
		if cur != c {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", cur.car)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Builder appends to the end of a fresh pair-list in O(1) per element.
// The list returned by List is owned by the caller; the builder must not be
// used after that.
type Builder struct {
	head *Cons
	tail *Cons
	size int
}

func (b *Builder) Add(values ...any) {
	for _, v := range values {
		cell := &Cons{car: v}
		if b.tail == nil {
			b.head = cell
		} else {
			b.tail.cdr = cell
		}
		b.tail = cell
		b.size++
	}
}

func (b *Builder) Size() int {
	return b.size
}

func (b *Builder) List() *Cons {
	return b.head
}
