package queues_test

import (
	"math/rand/v2"
	"testing"

	"seqcore/queues"
)

func TestReorder(t *testing.T) {
	r := queues.NewReorder[string](4)

	r.Add(2, "c")
	r.Add(1, "b")
	if _, ok := r.Next(); ok {
		t.Fatal("Next should wait for sequence 0")
	}
	if r.Pending() != 2 {
		t.Errorf("Pending() = %d, want 2", r.Pending())
	}

	r.Add(0, "a")
	for _, want := range []string{"a", "b", "c"} {
		v, ok := r.Next()
		if !ok || v != want {
			t.Fatalf("Next() = %q, %v; want %q", v, ok, want)
		}
	}
	if _, ok := r.Next(); ok {
		t.Error("Next on a drained buffer should fail")
	}
}

func TestReorder_Shuffled(t *testing.T) {
	const n = 500
	order := rand.New(rand.NewPCG(7, 11)).Perm(n)

	r := queues.NewReorder[int](0)
	var released []int
	for _, seq := range order {
		r.Add(int64(seq), seq)
		for {
			v, ok := r.Next()
			if !ok {
				break
			}
			released = append(released, v)
		}
	}

	if len(released) != n {
		t.Fatalf("released %d values, want %d", len(released), n)
	}
	for i, v := range released {
		if v != i {
			t.Fatalf("released[%d] = %d", i, v)
		}
	}
	if r.Pending() != 0 {
		t.Errorf("Pending() = %d after draining", r.Pending())
	}
}
