package seqs

import (
	"fmt"
	"iter"
	"reflect"
	"slices"

	"seqcore/lists"
)

// Seq is a lazy sequence of dynamic values.
//
// Each element is yielded as (value, nil). A failure is yielded once as
// (nil, err), after which the sequence ends.
type Seq func(yield func(any, error) bool)

// Seqable is implemented by values that can produce a Seq of their elements.
type Seqable interface {
	Seq() Seq
}

type missingValue struct{}

func (missingValue) String() string { return "#<missing>" }

// Missing marks an optional argument that was not supplied,
// e.g. the seed of Reduce or the default of Subseq.
var Missing any = missingValue{}

func IsMissing(v any) bool {
	_, ok := v.(missingValue)
	return ok
}

// Empty returns a sequence with no elements.
func Empty() Seq {
	return func(yield func(any, error) bool) {}
}

// Of coerces source into a Seq.
//
// Supported sources: nil (empty), Seq, Seqable, *Iterator, *lists.Cons,
// *lists.Vector, iter.Seq[any], iter.Seq2[any, error], []any, string (runes),
// and via reflection any other slice, array or receivable channel.
// Any other value yields ErrNotSequence on the first pull.
func Of(source any) Seq {
	switch s := source.(type) {
	case nil:
		return Empty()
	case Seq:
		if s == nil {
			return Empty()
		}
		return s
	case func(yield func(any, error) bool):
		return Seq(s)
	case iter.Seq2[any, error]:
		return Seq(s)
	case *Iterator:
		return s.Seq()
	case Seqable:
		return s.Seq()
	case *lists.Cons:
		return FromValues(s.Values())
	case *lists.Vector:
		if s == nil {
			return Empty()
		}
		return FromValues(s.Values())
	case iter.Seq[any]:
		return FromValues(s)
	case func(yield func(any) bool):
		return FromValues(s)
	case []any:
		return FromValues(slices.Values(s))
	case string:
		return fromString(s)
	}
	return reflectSeq(source)
}

// FromValues lifts an infallible iterator into a Seq.
func FromValues(values iter.Seq[any]) Seq {
	return func(yield func(any, error) bool) {
		for v := range values {
			if !yield(v, nil) {
				return
			}
		}
	}
}

func fromString(s string) Seq {
	return func(yield func(any, error) bool) {
		for _, r := range s {
			if !yield(r, nil) {
				return
			}
		}
	}
}

func reflectSeq(source any) Seq {
	rv := reflect.ValueOf(source)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return func(yield func(any, error) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !yield(rv.Index(i).Interface(), nil) {
					return
				}
			}
		}
	case reflect.Chan:
		if rv.Type().ChanDir()&reflect.RecvDir != 0 {
			return func(yield func(any, error) bool) {
				for {
					v, ok := rv.Recv()
					if !ok {
						return
					}
					if !yield(v.Interface(), nil) {
						return
					}
				}
			}
		}
	}
	return func(yield func(any, error) bool) {
		yield(nil, fmt.Errorf("%w: %T", ErrNotSequence, source))
	}
}

// IsSequence reports whether v is a sequence that Flatten descends into.
// Strings are sequences for Of, but never for IsSequence.
func IsSequence(v any) bool {
	switch v.(type) {
	case nil, string:
		return false
	case Seq, Seqable, *Iterator, *lists.Cons, *lists.Vector, []any,
		iter.Seq[any], iter.Seq2[any, error]:
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// Collect realizes source into a slice, stopping at the first error.
func Collect(source any) ([]any, error) {
	var res []any
	for v, err := range Of(source) {
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

// ToList realizes source into a pair-list.
func ToList(source any) (*lists.Cons, error) {
	var b lists.Builder
	for v, err := range Of(source) {
		if err != nil {
			return nil, err
		}
		b.Add(v)
	}
	return b.List(), nil
}

// ToVector realizes source into a fresh vector owned by the caller.
func ToVector(source any) (*lists.Vector, error) {
	vec := lists.NewArrayList[any](0)
	for v, err := range Of(source) {
		if err != nil {
			return nil, err
		}
		vec.Add(v)
	}
	return vec, nil
}
