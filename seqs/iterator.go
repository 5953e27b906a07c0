package seqs

import (
	"iter"

	"seqcore/lists"
)

// Iterator is a single-pass pull iterator with one element of lookahead.
//
// Once exhausted, failed or stopped, every further pull reports no value.
// Callers that do not drain an Iterator must call Stop.
type Iterator struct {
	next   func() (any, error, bool)
	stop   func()
	head   any
	peeked bool
	done   bool
	err    error
}

// Pull starts a pull iterator over source.
func Pull(source any) *Iterator {
	next, stop := iter.Pull2(iter.Seq2[any, error](Of(source)))
	return &Iterator{next: next, stop: stop}
}

func (it *Iterator) fill() bool {
	if it.peeked {
		return true
	}
	if it.done {
		return false
	}
	v, err, ok := it.next()
	if !ok {
		it.Stop()
		return false
	}
	if err != nil {
		it.err = err
		it.Stop()
		return false
	}
	it.head, it.peeked = v, true
	return true
}

// Next returns the next element and advances.
func (it *Iterator) Next() (any, bool) {
	if !it.fill() {
		return nil, false
	}
	v := it.head
	it.head, it.peeked = nil, false
	return v, true
}

// Peek returns the next element without consuming it.
func (it *Iterator) Peek() (any, bool) {
	if !it.fill() {
		return nil, false
	}
	return it.head, true
}

func (it *Iterator) HasNext() bool {
	return it.fill()
}

// Err returns the error that ended the iteration, if any.
func (it *Iterator) Err() error {
	return it.err
}

// Stop releases the underlying sequence. It is safe to call more than once.
func (it *Iterator) Stop() {
	if it.done {
		return
	}
	it.done = true
	it.head, it.peeked = nil, false
	it.stop()
}

// Seq drains the remaining elements as a Seq.
// The iterator is stopped when the range loop ends, early or not.
func (it *Iterator) Seq() Seq {
	return func(yield func(any, error) bool) {
		defer it.Stop()
		for {
			v, ok := it.Next()
			if !ok {
				if it.err != nil {
					yield(nil, it.err)
				}
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// take pulls up to n elements into buf and reports how many were added.
func (it *Iterator) take(n int, buf *lists.Vector) int {
	added := 0
	for added < n {
		v, ok := it.Next()
		if !ok {
			break
		}
		buf.Add(v)
		added++
	}
	return added
}

// skip discards up to n elements.
func (it *Iterator) skip(n int) {
	for ; n > 0; n-- {
		if _, ok := it.Next(); !ok {
			return
		}
	}
}
