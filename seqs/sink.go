package seqs

import (
	"fmt"

	"seqcore/lists"
)

// Any reports whether the key of some element satisfies pred.
// It stops at the first match.
func Any(pred Callable, seq any, key Callable) (bool, error) {
	for v, err := range Of(seq) {
		if err != nil {
			return false, err
		}
		ok, err := testKeyed(pred, key, v)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Every reports whether the key of every element satisfies pred.
// It stops at the first mismatch.
func Every(pred Callable, seq any, key Callable) (bool, error) {
	for v, err := range Of(seq) {
		if err != nil {
			return false, err
		}
		ok, err := testKeyed(pred, key, v)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Count returns how many elements have a key equivalent to item under test.
func Count(item any, seq any, test, key Callable) (int, error) {
	count := 0
	for v, err := range Of(seq) {
		if err != nil {
			return 0, err
		}
		k, err := key(v)
		if err != nil {
			return 0, err
		}
		ok, err := callBool(test, item, k)
		if err != nil {
			return 0, err
		}
		if ok {
			count++
		}
	}
	return count, nil
}

// Reduce folds the keys of seq with reducer. When seed is Missing the first
// key is the seed; an empty sequence without a seed reduces to nil.
func Reduce(reducer Callable, seq any, seed any, key Callable) (any, error) {
	acc := seed
	for v, err := range Of(seq) {
		if err != nil {
			return nil, err
		}
		acc, err = step(reducer, key, acc, v)
		if err != nil {
			return nil, err
		}
	}
	if IsMissing(acc) {
		return nil, nil
	}
	return acc, nil
}

// Average returns the mean of the non-nil keys as a float64, or nil when
// there are none.
func Average(seq any, key Callable) (any, error) {
	var sum float64
	count := 0
	for v, err := range Of(seq) {
		if err != nil {
			return nil, err
		}
		k, err := key(v)
		if err != nil {
			return nil, err
		}
		if k == nil {
			continue
		}
		n, ok := toNumber(k)
		if !ok {
			return nil, fmt.Errorf("%w: %v (%T)", ErrNotNumber, k, k)
		}
		sum += n.float()
		count++
	}
	if count == 0 {
		return nil, nil
	}
	return sum / float64(count), nil
}

// FindItem returns the first element whose key is equivalent to item under
// test, with its index. When nothing matches it returns (def, -1, nil).
func FindItem(seq any, item any, test, key Callable, def any) (any, int, error) {
	return findItem(seq, key, def, func(k any) (bool, error) {
		return callBool(test, item, k)
	})
}

// FindItemIf returns the first element whose key satisfies pred, with its index.
func FindItemIf(seq any, pred, key Callable, def any) (any, int, error) {
	return findItem(seq, key, def, func(k any) (bool, error) {
		return callBool(pred, k)
	})
}

func findItem(seq any, key Callable, def any, match func(any) (bool, error)) (any, int, error) {
	i := -1
	for v, err := range Of(seq) {
		if err != nil {
			return nil, -1, err
		}
		i++
		k, err := key(v)
		if err != nil {
			return nil, -1, err
		}
		ok, err := match(k)
		if err != nil {
			return nil, -1, err
		}
		if ok {
			return v, i, nil
		}
	}
	return def, -1, nil
}

// FindProperty looks item up in a property list (k1 v1 k2 v2 ...) and
// returns the value following the first matching key, or def.
func FindProperty(item any, seq any, test, key Callable, def any) (any, error) {
	it := Pull(seq)
	defer it.Stop()
	for {
		prop, ok := it.Next()
		if !ok {
			break
		}
		val, hasVal := it.Next()
		k, err := key(prop)
		if err != nil {
			return nil, err
		}
		match, err := callBool(test, item, k)
		if err != nil {
			return nil, err
		}
		if match {
			if !hasVal {
				break
			}
			return val, nil
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return def, nil
}

// Assoc returns the first entry of an association list whose car has a key
// equivalent to item under test, or nil. Nil entries are skipped.
func Assoc(item any, seq any, test, key Callable) (*lists.Cons, error) {
	return assoc(seq, key, func(k any) (bool, error) {
		return callBool(test, item, k)
	})
}

// AssocIf returns the first entry whose car has a key satisfying pred.
func AssocIf(pred Callable, seq any, key Callable) (*lists.Cons, error) {
	return assoc(seq, key, func(k any) (bool, error) {
		return callBool(pred, k)
	})
}

func assoc(seq any, key Callable, match func(any) (bool, error)) (*lists.Cons, error) {
	for v, err := range Of(seq) {
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		entry, ok := v.(*lists.Cons)
		if !ok {
			return nil, fmt.Errorf("%w: association entry %v is not a list", ErrInvalidArgument, v)
		}
		if entry == nil {
			continue
		}
		k, err := key(entry.Car())
		if err != nil {
			return nil, err
		}
		found, err := match(k)
		if err != nil {
			return nil, err
		}
		if found {
			return entry, nil
		}
	}
	return nil, nil
}

// FindSubsequence returns the first position in seq where subseq occurs,
// comparing keys with test. The search is the naive O(n*m) scan.
func FindSubsequence(subseq any, seq any, test, key Callable) (int, bool, error) {
	hay, err := Collect(seq)
	if err != nil {
		return 0, false, err
	}
	needle, err := Collect(subseq)
	if err != nil {
		return 0, false, err
	}

	for pos := 0; pos+len(needle) <= len(hay); pos++ {
		matched := true
		for i := range needle {
			k1, err := key(hay[pos+i])
			if err != nil {
				return 0, false, err
			}
			k2, err := key(needle[i])
			if err != nil {
				return 0, false, err
			}
			eq, err := callBool(test, k2, k1)
			if err != nil {
				return 0, false, err
			}
			if !eq {
				matched = false
				break
			}
		}
		if matched {
			return pos, true, nil
		}
	}
	return 0, false, nil
}

// Mismatch returns the index of the first position where the keys of seq1
// and seq2 differ under test. It reports false only when both sequences
// are exhausted together without a difference.
func Mismatch(seq1, seq2 any, test, key Callable) (int, bool, error) {
	it1, it2 := Pull(seq1), Pull(seq2)
	defer it1.Stop()
	defer it2.Stop()

	position := 0
	for {
		v1, ok1 := it1.Peek()
		v2, ok2 := it2.Peek()
		if err := firstErr(it1.Err(), it2.Err()); err != nil {
			return 0, false, err
		}
		if !ok1 && !ok2 {
			return 0, false, nil
		}
		if !ok1 || !ok2 {
			return position, true, nil
		}
		k1, err := key(v1)
		if err != nil {
			return 0, false, err
		}
		k2, err := key(v2)
		if err != nil {
			return 0, false, err
		}
		eq, err := callBool(test, k1, k2)
		if err != nil {
			return 0, false, err
		}
		if !eq {
			return position, true, nil
		}
		it1.Next()
		it2.Next()
		position++
	}
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
