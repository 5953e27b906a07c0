package seqs

import (
	"math/rand/v2"

	"seqcore/lists"
)

// leftFirst reports whether the left key is emitted before the right one.
// Ties go left, which makes merging stable.
func leftFirst(test Callable, left, right any) (bool, error) {
	s, err := callSign(test, left, right)
	if err != nil {
		return false, err
	}
	return s <= 0, nil
}

// Merge combines two ordered sequences into one ordered sequence.
// When the keys tie the element of seq1 comes first.
func Merge(seq1, seq2 any, test, key Callable) Seq {
	return func(yield func(any, error) bool) {
		it1, it2 := Pull(seq1), Pull(seq2)
		defer it1.Stop()
		defer it2.Stop()

		for {
			v1, ok1 := it1.Peek()
			v2, ok2 := it2.Peek()
			if err := firstErr(it1.Err(), it2.Err()); err != nil {
				yield(nil, err)
				return
			}
			if !ok1 || !ok2 {
				break
			}
			k1, err := key(v1)
			if err != nil {
				yield(nil, err)
				return
			}
			k2, err := key(v2)
			if err != nil {
				yield(nil, err)
				return
			}
			left, err := leftFirst(test, k1, k2)
			if err != nil {
				yield(nil, err)
				return
			}
			var v any
			if left {
				v, _ = it1.Next()
			} else {
				v, _ = it2.Next()
			}
			if !yield(v, nil) {
				return
			}
		}

		for _, it := range []*Iterator{it1, it2} {
			for v, err := range it.Seq() {
				if !yield(v, err) || err != nil {
					return
				}
			}
		}
	}
}

type keyed struct {
	key any
	val any
}

// Sort realizes seq and returns its elements ordered by test over their
// keys. It is a stable top-down merge sort: O(n log n) comparisons and
// O(n) extra space. Each key is computed once.
func Sort(seq any, test, key Callable) (*lists.Cons, error) {
	var items []keyed
	for v, err := range Of(seq) {
		if err != nil {
			return nil, err
		}
		k, err := key(v)
		if err != nil {
			return nil, err
		}
		items = append(items, keyed{key: k, val: v})
	}

	sorted, err := mergeSort(items, test)
	if err != nil {
		return nil, err
	}
	var b lists.Builder
	for _, it := range sorted {
		b.Add(it.val)
	}
	return b.List(), nil
}

func mergeSort(items []keyed, test Callable) ([]keyed, error) {
	if len(items) <= 1 {
		return items, nil
	}
	middle := len(items) / 2
	left, err := mergeSort(items[:middle], test)
	if err != nil {
		return nil, err
	}
	right, err := mergeSort(items[middle:], test)
	if err != nil {
		return nil, err
	}
	return mergeKeyed(left, right, test)
}

func mergeKeyed(left, right []keyed, test Callable) ([]keyed, error) {
	out := make([]keyed, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		first, err := leftFirst(test, left[i].key, right[j].key)
		if err != nil {
			return nil, err
		}
		if first {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)
	return out, nil
}

// Reverse realizes seq into a new vector in reverse order.
func Reverse(seq any) (*lists.Vector, error) {
	vec, err := ToVector(seq)
	if err != nil {
		return nil, err
	}
	vec.Reverse()
	return vec, nil
}

// RandomSource yields uniform integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

// DefaultRandom draws from the process-wide math/rand/v2 source.
var DefaultRandom RandomSource = globalRandom{}

// Shuffle returns a uniform random permutation of seq, built by repeatedly
// extracting a random element without replacement. A nil rnd uses DefaultRandom.
func Shuffle(seq any, rnd RandomSource) (*lists.Cons, error) {
	if rnd == nil {
		rnd = DefaultRandom
	}
	pool, err := ToVector(seq)
	if err != nil {
		return nil, err
	}
	var b lists.Builder
	for n := pool.Size(); n > 0; n-- {
		v, err := pool.Remove(rnd.IntN(n))
		if err != nil {
			return nil, err
		}
		b.Add(v)
	}
	return b.List(), nil
}
