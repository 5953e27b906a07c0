// Package queues provides the ordering buffers used by the parallel
// sequence operators.
package queues

import (
	"container/heap"
)

type priorityItem[T any] struct {
	value    T
	priority int64
}

type internalHeap[T any] struct {
	data []priorityItem[T]
}

func (ih *internalHeap[T]) Len() int {
	return len(ih.data)
}

func (ih *internalHeap[T]) Less(i, j int) bool {
	return ih.data[i].priority < ih.data[j].priority
}

func (ih *internalHeap[T]) Swap(i, j int) {
	ih.data[i], ih.data[j] = ih.data[j], ih.data[i]
}

func (ih *internalHeap[T]) Push(x any) {
	ih.data = append(ih.data, x.(priorityItem[T]))
}

func (ih *internalHeap[T]) Pop() any {
	old := ih.data
	n := len(old)
	last := old[n-1]

	// avoid memory leak
	old[n-1] = priorityItem[T]{}
	ih.data = old[:n-1]
	return last
}

// PriorityQueue is a min-heap: Dequeue returns the element with the lowest
// priority first. It is not safe for concurrent use.
type PriorityQueue[T any] struct {
	heap *internalHeap[T]
}

// NewPriorityQueue creates an empty queue with the given initial capacity.
func NewPriorityQueue[T any](initCapacity int) *PriorityQueue[T] {
	if initCapacity < 0 {
		initCapacity = 0
	}
	return &PriorityQueue[T]{
		heap: &internalHeap[T]{data: make([]priorityItem[T], 0, initCapacity)},
	}
}

func (pq *PriorityQueue[T]) Enqueue(value T, priority int64) {
	heap.Push(pq.heap, priorityItem[T]{value: value, priority: priority})
}

func (pq *PriorityQueue[T]) Dequeue() (value T, ok bool) {
	if pq.heap.Len() == 0 {
		return value, false
	}
	return heap.Pop(pq.heap).(priorityItem[T]).value, true
}

// Peek returns the lowest-priority element and its priority without removing it.
func (pq *PriorityQueue[T]) Peek() (value T, priority int64, ok bool) {
	if pq.heap.Len() == 0 {
		return value, 0, false
	}
	top := pq.heap.data[0]
	return top.value, top.priority, true
}

func (pq *PriorityQueue[T]) Size() int {
	return pq.heap.Len()
}

func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.heap.Len() == 0
}
