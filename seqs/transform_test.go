package seqs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqcore/lists"
	"seqcore/seqs"
)

var (
	inc    = seqs.Func1(func(v any) any { return v.(int) + 1 })
	double = seqs.Func1(func(v any) any { return v.(int) * 2 })
	add    = seqs.Func2(func(a, b any) any { return a.(int) + b.(int) })
	isEven = seqs.Pred(func(v any) bool { return v.(int)%2 == 0 })
	fails  = seqs.Callable(func(...any) (any, error) { return nil, errBoom })
)

func TestMap(t *testing.T) {
	t.Run("Single", func(t *testing.T) {
		assert.Equal(t, []any{2, 4, 6}, collect(t, seqs.Map(double, []any{1, 2, 3})))
	})

	t.Run("Multiple", func(t *testing.T) {
		got := collect(t, seqs.Map(add, []any{1, 2, 3}, lists.List(10, 20)))
		assert.Equal(t, []any{11, 22}, got)
	})

	t.Run("Lazy", func(t *testing.T) {
		pulled := 0
		got := collect(t, seqs.Take(2, seqs.Map(inc, counting(naturals(), &pulled))))
		assert.Equal(t, []any{1, 2}, got)
		assert.Equal(t, 2, pulled)
	})

	t.Run("CallableError", func(t *testing.T) {
		var got []any
		var gotErr error
		for v, err := range seqs.Map(seqs.Callable(func(args ...any) (any, error) {
			if args[0] == 3 {
				return nil, errBoom
			}
			return args[0], nil
		}), []any{1, 2, 3, 4}) {
			if err != nil {
				gotErr = err
				break
			}
			got = append(got, v)
		}
		require.ErrorIs(t, gotErr, errBoom)
		assert.Equal(t, []any{1, 2}, got)
	})
}

func TestFilterRemove(t *testing.T) {
	src := []any{1, 2, 3, 4, 5}
	assert.Equal(t, []any{2, 4}, collect(t, seqs.Filter(isEven, src, seqs.Identity)))
	assert.Equal(t, []any{1, 3, 5}, collect(t, seqs.Remove(isEven, src, seqs.Identity)))

	// the key is only used for the test
	got := collect(t, seqs.Filter(isEven, src, inc))
	assert.Equal(t, []any{1, 3, 5}, got)

	_, err := seqs.Collect(seqs.Filter(fails, src, seqs.Identity))
	require.ErrorIs(t, err, errBoom)
}

func TestKeep(t *testing.T) {
	halfOfEven := seqs.Func1(func(v any) any {
		if v.(int)%2 != 0 {
			return nil
		}
		return v.(int) / 2
	})
	assert.Equal(t, []any{1, 2}, collect(t, seqs.Keep(halfOfEven, []any{1, 2, 3, 4}, seqs.Identity)))

	evenIndex := seqs.Func2(func(i, v any) any {
		if i.(int)%2 != 0 {
			return nil
		}
		return v
	})
	got := collect(t, seqs.KeepIndexed(evenIndex, []any{"a", "b", "c", "d", "e"}, seqs.Identity))
	assert.Equal(t, []any{"a", "c", "e"}, got)
}

func TestAppendInterpose(t *testing.T) {
	assert.Equal(t, []any{1, 2, 3, 'x'}, collect(t, seqs.Append([]any{1}, nil, lists.List(2, 3), "x")))
	assert.Equal(t, []any{1, ",", 2, ",", 3}, collect(t, seqs.Interpose(",", []any{1, 2, 3})))
	assert.Empty(t, collect(t, seqs.Interpose(",", nil)))

	_, err := seqs.Collect(seqs.Append([]any{1}, failAfter(2), []any{3}))
	require.ErrorIs(t, err, errBoom)
}

func TestInterleave(t *testing.T) {
	got := collect(t, seqs.Interleave([]any{1, 2, 3}, []any{"a", "b", "c"}))
	assert.Equal(t, []any{1, "a", 2, "b", 3, "c"}, got)

	// only complete rounds
	got = collect(t, seqs.Interleave([]any{1, 2, 3}, []any{"a"}))
	assert.Equal(t, []any{1, "a"}, got)
}

func TestZip(t *testing.T) {
	got := collect(t, seqs.Zip([]any{1, 2, 3}, []any{"a", "b", "c", "d", "e"}, []any{true, false}))
	require.Len(t, got, 2)
	assert.Equal(t, []any{1, "a", true}, got[0].(*lists.Vector).ToSlice())
	assert.Equal(t, []any{2, "b", false}, got[1].(*lists.Vector).ToSlice())
}

func TestReductions(t *testing.T) {
	assert.Equal(t, []any{1, 3, 6, 10}, collect(t, seqs.Reductions(add, []any{1, 2, 3, 4}, seqs.Missing, seqs.Identity)))
	assert.Equal(t, []any{101, 103}, collect(t, seqs.Reductions(add, []any{1, 2}, 100, seqs.Identity)))
	assert.Empty(t, collect(t, seqs.Reductions(add, nil, seqs.Missing, seqs.Identity)))

	// unbounded source, bounded consumer
	got := collect(t, seqs.Take(4, seqs.Reductions(add, naturals(), seqs.Missing, seqs.Identity)))
	assert.Equal(t, []any{0, 1, 3, 6}, got)
}
