package seqs

import (
	"cmp"
	"fmt"
	"math"
	"reflect"

	"seqcore/lists"
)

// Callable is an opaque invocable supplied by the caller: positional
// arguments in, one value out. A returned error aborts the operation that
// invoked it and reaches the consumer unchanged.
type Callable func(args ...any) (any, error)

// Identity returns its first argument. It is the default key.
func Identity(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, nil
	}
	return args[0], nil
}

// EqualTest is the default equivalence test: structural equality of its
// first two arguments.
func EqualTest(args ...any) (any, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: equality test needs 2 arguments, got %d", ErrInvalidArgument, len(args))
	}
	return Equal(args[0], args[1]), nil
}

// CompareTest is the default ordering test. It returns -1, 0 or 1.
func CompareTest(args ...any) (any, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: compare test needs 2 arguments, got %d", ErrInvalidArgument, len(args))
	}
	return Compare(args[0], args[1])
}

// LessOrEqual is an ordering test returning a boolean; true keeps the left
// argument first.
func LessOrEqual(args ...any) (any, error) {
	c, err := CompareTest(args...)
	if err != nil {
		return nil, err
	}
	return c.(int) <= 0, nil
}

// Func1 adapts a one-argument Go function.
func Func1(f func(any) any) Callable {
	return func(args ...any) (any, error) {
		return f(arg(args, 0)), nil
	}
}

// Func2 adapts a two-argument Go function.
func Func2(f func(a, b any) any) Callable {
	return func(args ...any) (any, error) {
		return f(arg(args, 0), arg(args, 1)), nil
	}
}

// Pred adapts a Go predicate.
func Pred(f func(any) bool) Callable {
	return func(args ...any) (any, error) {
		return f(arg(args, 0)), nil
	}
}

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

// Truthy coerces v to a boolean: nil and false are false, everything else is true.
func Truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	}
	return true
}

// Sign coerces the result of an ordering test to -1, 0 or 1.
// A boolean true means "in order" (-1) and false means "out of order" (1).
func Sign(v any) (int, error) {
	if b, ok := v.(bool); ok {
		if b {
			return -1, nil
		}
		return 1, nil
	}
	n, ok := toNumber(v)
	if !ok {
		return 0, fmt.Errorf("%w: %v (%T)", ErrNotNumber, v, v)
	}
	if n.isFloat {
		return cmp.Compare(n.f, 0), nil
	}
	return cmp.Compare(n.i, 0), nil
}

// Equal reports structural equality. Numbers compare by value across Go
// numeric types; lists, vectors and slices compare element-wise.
func Equal(a, b any) bool {
	if na, ok := toNumber(a); ok {
		nb, ok := toNumber(b)
		if !ok {
			return false
		}
		return compareNumbers(na, nb) == 0
	}
	switch x := a.(type) {
	case nil:
		return b == nil
	case string:
		y, ok := b.(string)
		return ok && x == y
	case *lists.Cons:
		y, ok := b.(*lists.Cons)
		if !ok {
			return false
		}
		for ; x != nil && y != nil; x, y = x.Cdr(), y.Cdr() {
			if !Equal(x.Car(), y.Car()) {
				return false
			}
		}
		return x == nil && y == nil
	case *lists.Vector:
		y, ok := b.(*lists.Vector)
		if !ok || x.Size() != y.Size() {
			return false
		}
		return equalSlices(x.ToSlice(), y.ToSlice())
	case []any:
		y, ok := b.([]any)
		return ok && equalSlices(x, y)
	}
	return reflect.DeepEqual(a, b)
}

func equalSlices(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Compare orders numbers by value and strings lexically.
// Other combinations return ErrNotComparable.
func Compare(a, b any) (int, error) {
	if na, ok := toNumber(a); ok {
		if nb, ok := toNumber(b); ok {
			return compareNumbers(na, nb), nil
		}
	}
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return cmp.Compare(sa, sb), nil
		}
	}
	return 0, fmt.Errorf("%w: %v (%T) and %v (%T)", ErrNotComparable, a, a, b, b)
}

type number struct {
	i       int64
	f       float64
	isFloat bool
}

func (n number) float() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

func toNumber(v any) (number, bool) {
	switch x := v.(type) {
	case int:
		return number{i: int64(x)}, true
	case int8:
		return number{i: int64(x)}, true
	case int16:
		return number{i: int64(x)}, true
	case int32:
		return number{i: int64(x)}, true
	case int64:
		return number{i: x}, true
	case uint:
		return fromUint(uint64(x)), true
	case uint8:
		return number{i: int64(x)}, true
	case uint16:
		return number{i: int64(x)}, true
	case uint32:
		return number{i: int64(x)}, true
	case uint64:
		return fromUint(x), true
	case float32:
		return number{f: float64(x), isFloat: true}, true
	case float64:
		return number{f: x, isFloat: true}, true
	}
	return number{}, false
}

func fromUint(u uint64) number {
	if u > math.MaxInt64 {
		return number{f: float64(u), isFloat: true}
	}
	return number{i: int64(u)}
}

func compareNumbers(a, b number) int {
	if !a.isFloat && !b.isFloat {
		return cmp.Compare(a.i, b.i)
	}
	return cmp.Compare(a.float(), b.float())
}

// invocation helpers shared by the combinators

func callBool(fn Callable, args ...any) (bool, error) {
	r, err := fn(args...)
	if err != nil {
		return false, err
	}
	return Truthy(r), nil
}

func callSign(fn Callable, args ...any) (int, error) {
	r, err := fn(args...)
	if err != nil {
		return 0, err
	}
	return Sign(r)
}

// testKeyed applies key to v, then pred to the key.
func testKeyed(pred, key Callable, v any) (bool, error) {
	k, err := key(v)
	if err != nil {
		return false, err
	}
	return callBool(pred, k)
}
