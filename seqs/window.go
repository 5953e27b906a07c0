package seqs

import (
	"fmt"
	"math"

	"seqcore/lists"
)

// Unbounded is the Flatten depth that descends into every nested sequence.
const Unbounded = -1

// Partition splits seq into lists of size elements, starting a new list
// every step elements.
//
// Scenario 1 (step < size): overlapping windows.
// Scenario 2 (step == size): consecutive chunks.
// Scenario 3 (step > size): gapped windows, step-size elements are skipped in between.
//
// At most size-1 elements of pad are appended to the source to complete the
// last list. With all=false a final list shorter than size is dropped.
// A non-positive size or step is rejected before any element is produced.
func Partition(all bool, size, step int, pad any, seq any) (Seq, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: partition size %d", ErrInvalidArgument, size)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: partition step %d", ErrInvalidArgument, step)
	}

	return func(yield func(any, error) bool) {
		src := Pull(Append(seq, Take(size-1, pad)))
		defer src.Stop()

		window := lists.NewArrayList[any](size)
		for src.HasNext() {
			src.take(size-window.Size(), window)
			if err := src.Err(); err != nil {
				yield(nil, err)
				return
			}

			if all || window.Size() == size {
				if !yield(lists.List(window.ToSlice()...), nil) {
					return
				}
			}

			if !src.HasNext() {
				break
			}
			if step < size {
				// overlapping mode: keep the latter part
				window.RemoveRange(0, step)
			} else {
				// gap mode: clear and skip
				window.Clear()
				src.skip(step - size)
			}
		}
		if err := src.Err(); err != nil {
			yield(nil, err)
		}
	}, nil
}

// PartitionBy splits seq into lists of adjacent elements whose keys are
// equal. Once maxParts-1 lists have been closed, the last list takes every
// remaining element. maxParts <= 0 means no limit.
func PartitionBy(key Callable, maxParts int, seq any) Seq {
	src := Of(seq)
	return func(yield func(any, error) bool) {
		var (
			run      lists.Builder
			previous any
			closed   int
		)
		for v, err := range src {
			if err != nil {
				yield(nil, err)
				return
			}
			current, err := key(v)
			if err != nil {
				yield(nil, err)
				return
			}
			if run.Size() > 0 && closed+1 != maxParts && !Equal(current, previous) {
				if !yield(run.List(), nil) {
					return
				}
				closed++
				run = lists.Builder{}
			}
			if run.Size() == 0 {
				previous = current
			}
			run.Add(v)
		}
		if run.Size() > 0 {
			yield(run.List(), nil)
		}
	}
}

type group struct {
	key   any
	items *lists.Vector
}

// GroupBy realizes seq on the first pull and yields one (key group) list per
// distinct key, in order of first appearance. Elements with equal keys are
// grouped together wherever they occur; group is a Seq over those elements
// in their original order.
func GroupBy(key Callable, seq any) Seq {
	src := Of(seq)
	return func(yield func(any, error) bool) {
		var groups []*group
		for v, err := range src {
			if err != nil {
				yield(nil, err)
				return
			}
			k, err := key(v)
			if err != nil {
				yield(nil, err)
				return
			}
			g := findGroup(groups, k)
			if g == nil {
				g = &group{key: k, items: lists.NewArrayList[any](1)}
				groups = append(groups, g)
			}
			g.items.Add(v)
		}

		for _, g := range groups {
			if !yield(lists.List(g.key, Of(g.items)), nil) {
				return
			}
		}
	}
}

func findGroup(groups []*group, k any) *group {
	for _, g := range groups {
		if Equal(g.key, k) {
			return g
		}
	}
	return nil
}

// Flatten yields the elements of seq, replacing nested sequences by their
// elements down to depth levels. Unbounded (any negative depth) flattens
// completely. Strings are never descended into.
func Flatten(seq any, depth int) Seq {
	if depth < 0 {
		depth = math.MaxInt
	}
	src := Of(seq)
	return func(yield func(any, error) bool) {
		flattenInto(src, depth, yield)
	}
}

func flattenInto(src Seq, depth int, yield func(any, error) bool) bool {
	for v, err := range src {
		if err != nil {
			yield(nil, err)
			return false
		}
		if depth > 0 && IsSequence(v) {
			if !flattenInto(Of(v), depth-1, yield) {
				return false
			}
			continue
		}
		if !yield(v, nil) {
			return false
		}
	}
	return true
}
