package seqs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqcore/seqs"
)

func TestRange(t *testing.T) {
	assert.Equal(t, []any{0, 2, 4}, collect(t, seqs.Range(0, 6, 2)))
	assert.Equal(t, []any{3, 2, 1}, collect(t, seqs.Range(3, 0, -1)))
	assert.Empty(t, collect(t, seqs.Range(0, 5, 0)))
	assert.Empty(t, collect(t, seqs.Range(5, 0, 1)))
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, []any{"x", "x", "x"}, collect(t, seqs.Repeat(3, "x")))
	assert.Len(t, collect(t, seqs.Take(5, seqs.Repeat(-1, 0))), 5)
	assert.Empty(t, collect(t, seqs.Repeat(0, 1)))
}

func TestRepeatedly(t *testing.T) {
	n := 0
	next := seqs.Callable(func(...any) (any, error) {
		n++
		return n, nil
	})
	assert.Equal(t, []any{1, 2, 3}, collect(t, seqs.Repeatedly(3, next)))
	assert.Equal(t, []any{4, 5}, collect(t, seqs.Take(2, seqs.Repeatedly(-1, next))))

	_, err := seqs.Collect(seqs.Repeatedly(2, fails))
	require.ErrorIs(t, err, errBoom)
}

func TestIterate(t *testing.T) {
	assert.Equal(t, []any{1, 2, 4, 8}, collect(t, seqs.Iterate(4, double, 1)))

	t.Run("CallsOnlyOnPull", func(t *testing.T) {
		calls := 0
		counted := seqs.Callable(func(args ...any) (any, error) {
			calls++
			return args[0].(int) + 1, nil
		})
		collect(t, seqs.Take(3, seqs.Iterate(-1, counted, 0)))
		assert.Equal(t, 2, calls)
	})
}

func TestCycle(t *testing.T) {
	assert.Equal(t, []any{1, 2, 1, 2, 1}, collect(t, seqs.Take(5, seqs.Cycle([]any{1, 2}))))
	assert.Empty(t, collect(t, seqs.Cycle(nil)))

	// a single-pass source is cycled once
	ch := make(chan int, 2)
	ch <- 1
	ch <- 2
	close(ch)
	assert.Equal(t, []any{1, 2}, collect(t, seqs.Cycle(ch)))
}
