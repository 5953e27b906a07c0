package seqs

import (
	"seqcore/lists"
)

// Distinct yields the elements of seq that are not equivalent under test to
// an earlier element, in first-occurrence order.
func Distinct(seq any, test Callable) Seq {
	return Union(nil, seq, test)
}

// Union yields the distinct elements of seq1 followed by the distinct
// elements of seq2 not already yielded. Membership is decided by test over
// the buffer of yielded elements.
func Union(seq1, seq2 any, test Callable) Seq {
	return func(yield func(any, error) bool) {
		seen := lists.NewArrayList[any](0)
		for _, s := range []any{seq1, seq2} {
			for v, err := range Of(s) {
				if err != nil {
					yield(nil, err)
					return
				}
				_, idx, err := FindItem(seen, v, test, Identity, nil)
				if err != nil {
					yield(nil, err)
					return
				}
				if idx >= 0 {
					continue
				}
				seen.Add(v)
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}

// Intersect yields the elements of seq1 whose key is equivalent to the key
// of some element of seq2. seq2 is realized on the first pull.
func Intersect(seq1, seq2 any, test, key Callable) Seq {
	return membership(seq1, seq2, test, key, true)
}

// Except yields the elements of seq1 whose key matches no element of seq2.
func Except(seq1, seq2 any, test, key Callable) Seq {
	return membership(seq1, seq2, test, key, false)
}

func membership(seq1, seq2 any, test, key Callable, want bool) Seq {
	return func(yield func(any, error) bool) {
		other, err := ToVector(seq2)
		if err != nil {
			yield(nil, err)
			return
		}
		for v, err := range Of(seq1) {
			if err != nil {
				yield(nil, err)
				return
			}
			k, err := key(v)
			if err != nil {
				yield(nil, err)
				return
			}
			_, idx, err := FindItem(other, k, test, key, nil)
			if err != nil {
				yield(nil, err)
				return
			}
			if (idx >= 0) == want {
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}
