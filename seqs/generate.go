package seqs

// Range yields start, start+step, ... up to but excluding end.
// A negative step counts down; a zero step yields nothing.
func Range(start, end, step int) Seq {
	return func(yield func(any, error) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i, nil) {
				return
			}
		}
	}
}

// Repeat yields value count times, or forever when count < 0.
func Repeat(count int, value any) Seq {
	return func(yield func(any, error) bool) {
		for i := 0; count < 0 || i < count; i++ {
			if !yield(value, nil) {
				return
			}
		}
	}
}

// Repeatedly yields the results of calling fn with no arguments count times,
// or forever when count < 0.
func Repeatedly(count int, fn Callable) Seq {
	return func(yield func(any, error) bool) {
		for i := 0; count < 0 || i < count; i++ {
			v, err := fn()
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Iterate yields val, fn(val), fn(fn(val)), ... count times, or forever when
// count < 0. fn is only called when the next element is pulled.
func Iterate(count int, fn Callable, val any) Seq {
	return func(yield func(any, error) bool) {
		cur := val
		for i := 0; count < 0 || i < count; i++ {
			if i > 0 {
				next, err := fn(cur)
				if err != nil {
					yield(nil, err)
					return
				}
				cur = next
			}
			if !yield(cur, nil) {
				return
			}
		}
	}
}

// Cycle repeats the elements of seq forever. A pass that produces nothing
// (an empty or single-pass, already consumed source) ends the cycle.
func Cycle(seq any) Seq {
	src := Of(seq)
	return func(yield func(any, error) bool) {
		for {
			produced := 0
			for v, err := range src {
				if !yield(v, err) || err != nil {
					return
				}
				produced++
			}
			if produced == 0 {
				return
			}
		}
	}
}
