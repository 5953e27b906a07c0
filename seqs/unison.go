package seqs

import "iter"

// Unison steps N sources in lock-step and yields one round per step.
//
// A round holds the current element of every source, in argument order, and
// is a fresh slice the consumer may keep. The first exhausted source ends the
// whole iteration; an incomplete round is never yielded. With no sources the
// iteration is empty.
func Unison(sources ...any) iter.Seq2[[]any, error] {
	return func(yield func([]any, error) bool) {
		if len(sources) == 0 {
			return
		}
		its := make([]*Iterator, len(sources))
		for i, s := range sources {
			its[i] = Pull(s)
		}
		defer func() {
			for _, it := range its {
				it.Stop()
			}
		}()

		for {
			round := make([]any, len(its))
			for i, it := range its {
				v, ok := it.Next()
				if !ok {
					if err := it.Err(); err != nil {
						yield(nil, err)
					}
					return
				}
				round[i] = v
			}
			if !yield(round, nil) {
				return
			}
		}
	}
}
