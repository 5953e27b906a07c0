package seqs

import (
	"seqcore/lists"
)

// Take yields at most count elements. For count <= 0 the source is never pulled.
func Take(count int, seq any) Seq {
	if count <= 0 {
		return Empty()
	}
	src := Of(seq)
	return func(yield func(any, error) bool) {
		taken := 0
		for v, err := range src {
			if !yield(v, err) || err != nil {
				return
			}
			taken++
			if taken >= count {
				return
			}
		}
	}
}

// Drop skips the first count elements and yields the rest.
// For count <= 0 every element is yielded.
func Drop(count int, seq any) Seq {
	src := Of(seq)
	return func(yield func(any, error) bool) {
		skipped := 0
		for v, err := range src {
			if err == nil && skipped < count {
				skipped++
				continue
			}
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// TakeWhile continues to yield elements from the sequence
// as long as the predicate returns true.
func TakeWhile(pred Callable, seq any) Seq {
	return takeUntil(pred, seq, false)
}

// TakeUntil yields elements until the predicate returns true.
func TakeUntil(pred Callable, seq any) Seq {
	return takeUntil(pred, seq, true)
}

func takeUntil(pred Callable, seq any, stopOn bool) Seq {
	src := Of(seq)
	return func(yield func(any, error) bool) {
		for v, err := range src {
			if err != nil {
				yield(nil, err)
				return
			}
			ok, err := callBool(pred, v)
			if err != nil {
				yield(nil, err)
				return
			}
			if ok == stopOn {
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// DropWhile skips elements from the sequence
// as long as the predicate returns true, then yields the rest.
func DropWhile(pred Callable, seq any) Seq {
	src := Of(seq)
	return func(yield func(any, error) bool) {
		dropping := true
		for v, err := range src {
			if err != nil {
				yield(nil, err)
				return
			}
			if dropping {
				ok, err := callBool(pred, v)
				if err != nil {
					yield(nil, err)
					return
				}
				if ok {
					continue
				}
				dropping = false
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// TakeNth yields the first element and then every step-th element.
// A step <= 1 yields every element.
func TakeNth(step int, seq any) Seq {
	src := Of(seq)
	return func(yield func(any, error) bool) {
		countdown := 1
		for v, err := range src {
			if err != nil {
				yield(nil, err)
				return
			}
			countdown--
			if countdown > 0 {
				continue
			}
			countdown = step
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Subseq yields the elements with index in [start, end), at most count of
// them when count >= 0. If def is not Missing the result is padded with def
// up to count elements.
//
// The optional arguments arrive already defaulted: end = math.MaxInt,
// count = -1, def = Missing.
func Subseq(seq any, start, end, count int, def any) Seq {
	src := Of(seq)
	return func(yield func(any, error) bool) {
		i := -1
		yielded := 0
		for v, err := range src {
			if err != nil {
				yield(nil, err)
				return
			}
			i++
			if i < start {
				continue
			}
			if end <= i || (count >= 0 && count <= yielded) {
				break
			}
			yielded++
			if !yield(v, nil) {
				return
			}
		}

		if IsMissing(def) {
			return
		}
		for ; yielded < count; yielded++ {
			if !yield(def, nil) {
				return
			}
		}
	}
}

// SplitAt realizes the first count elements into a list and returns an
// iterator positioned at the remainder. The caller owns rest and must drain
// or Stop it.
func SplitAt(count int, seq any) (left *lists.Cons, rest *Iterator, err error) {
	it := Pull(seq)
	var b lists.Builder
	for ; count > 0; count-- {
		v, ok := it.Next()
		if !ok {
			break
		}
		b.Add(v)
	}
	if err := it.Err(); err != nil {
		return nil, nil, err
	}
	return b.List(), it, nil
}

// SplitWith realizes the longest prefix satisfying pred into a list and
// returns an iterator positioned at the first element that failed it.
func SplitWith(pred Callable, seq any) (left *lists.Cons, rest *Iterator, err error) {
	it := Pull(seq)
	var b lists.Builder
	for {
		v, ok := it.Peek()
		if !ok {
			break
		}
		match, err := callBool(pred, v)
		if err != nil {
			it.Stop()
			return nil, nil, err
		}
		if !match {
			break
		}
		it.Next()
		b.Add(v)
	}
	if err := it.Err(); err != nil {
		return nil, nil, err
	}
	return b.List(), it, nil
}
