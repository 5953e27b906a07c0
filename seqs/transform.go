package seqs

import (
	"seqcore/lists"
)

// Map applies fn to the elements of the sources, yielding the results.
// With more than one source fn receives one argument per source and the
// result ends with the shortest source.
func Map(fn Callable, sources ...any) Seq {
	switch len(sources) {
	case 0:
		return Empty()
	case 1:
		src := Of(sources[0])
		return func(yield func(any, error) bool) {
			for v, err := range src {
				if err != nil {
					yield(nil, err)
					return
				}
				r, err := fn(v)
				if err != nil {
					yield(nil, err)
					return
				}
				if !yield(r, nil) {
					return
				}
			}
		}
	}

	rounds := Unison(sources...)
	return func(yield func(any, error) bool) {
		for round, err := range rounds {
			if err != nil {
				yield(nil, err)
				return
			}
			r, err := fn(round...)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(r, nil) {
				return
			}
		}
	}
}

// Filter yields the elements whose key satisfies pred.
// The key is only used for the test; elements are yielded unchanged.
func Filter(pred Callable, seq any, key Callable) Seq {
	return selectKeyed(pred, seq, key, true)
}

// Remove yields the elements whose key does not satisfy pred.
func Remove(pred Callable, seq any, key Callable) Seq {
	return selectKeyed(pred, seq, key, false)
}

func selectKeyed(pred Callable, seq any, key Callable, keep bool) Seq {
	src := Of(seq)
	return func(yield func(any, error) bool) {
		for v, err := range src {
			if err != nil {
				yield(nil, err)
				return
			}
			ok, err := testKeyed(pred, key, v)
			if err != nil {
				yield(nil, err)
				return
			}
			if ok == keep {
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}

// Keep yields the non-nil results of fn applied to each key.
func Keep(fn Callable, seq any, key Callable) Seq {
	src := Of(seq)
	return func(yield func(any, error) bool) {
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
			r, err := fn(k)
			if err != nil {
				yield(nil, err)
				return
			}
			if r != nil {
				if !yield(r, nil) {
					return
				}
			}
		}
	}
}

// KeepIndexed is Keep with fn receiving (index, key).
func KeepIndexed(fn Callable, seq any, key Callable) Seq {
	src := Of(seq)
	return func(yield func(any, error) bool) {
		index := 0
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
			r, err := fn(index, k)
			if err != nil {
				yield(nil, err)
				return
			}
			index++
			if r != nil {
				if !yield(r, nil) {
					return
				}
			}
		}
	}
}

// Append concatenates the sources.
func Append(sources ...any) Seq {
	return func(yield func(any, error) bool) {
		for _, s := range sources {
			for v, err := range Of(s) {
				if !yield(v, err) || err != nil {
					return
				}
			}
		}
	}
}

// Interpose yields the elements of seq with sep between each pair.
func Interpose(sep any, seq any) Seq {
	src := Of(seq)
	return func(yield func(any, error) bool) {
		first := true
		for v, err := range src {
			if err != nil {
				yield(nil, err)
				return
			}
			if !first {
				if !yield(sep, nil) {
					return
				}
			}
			first = false
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Interleave yields the first element of every source, then the second of
// every source, and so on. Only complete rounds are yielded.
func Interleave(sources ...any) Seq {
	rounds := Unison(sources...)
	return func(yield func(any, error) bool) {
		for round, err := range rounds {
			if err != nil {
				yield(nil, err)
				return
			}
			for _, v := range round {
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}

// Zip yields one vector per unison round of the sources.
func Zip(sources ...any) Seq {
	rounds := Unison(sources...)
	return func(yield func(any, error) bool) {
		for round, err := range rounds {
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(lists.NewVector(round...), nil) {
				return
			}
		}
	}
}

// Reductions yields every intermediate accumulator of a Reduce.
// When seed is Missing the key of the first element becomes the seed.
func Reductions(reducer Callable, seq any, seed any, key Callable) Seq {
	src := Of(seq)
	return func(yield func(any, error) bool) {
		acc := seed
		for v, err := range src {
			if err != nil {
				yield(nil, err)
				return
			}
			acc, err = step(reducer, key, acc, v)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(acc, nil) {
				return
			}
		}
	}
}

func step(reducer, key Callable, acc, v any) (any, error) {
	k, err := key(v)
	if err != nil {
		return nil, err
	}
	if IsMissing(acc) {
		return k, nil
	}
	return reducer(acc, k)
}
