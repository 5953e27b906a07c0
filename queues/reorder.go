package queues

// Reorder releases values tagged with consecutive sequence numbers in
// order, whatever order they were added in. Sequence numbers start at 0 and
// each must be added exactly once.
type Reorder[T any] struct {
	pending *PriorityQueue[T]
	next    int64
}

func NewReorder[T any](initCapacity int) *Reorder[T] {
	return &Reorder[T]{pending: NewPriorityQueue[T](initCapacity)}
}

// Add stores value under sequence number seq.
func (r *Reorder[T]) Add(seq int64, value T) {
	r.pending.Enqueue(value, seq)
}

// Next returns the value with the next expected sequence number, if it has
// already been added.
func (r *Reorder[T]) Next() (value T, ok bool) {
	if _, seq, found := r.pending.Peek(); !found || seq != r.next {
		return value, false
	}
	value, _ = r.pending.Dequeue()
	r.next++
	return value, true
}

// Pending returns the number of values held back waiting for an earlier one.
func (r *Reorder[T]) Pending() int {
	return r.pending.Size()
}
