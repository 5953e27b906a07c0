package queues_test

import (
	"testing"

	"seqcore/queues"
)

func TestPriorityQueue_Ordering(t *testing.T) {
	pq := queues.NewPriorityQueue[string](0)
	if !pq.IsEmpty() {
		t.Fatal("new queue should be empty")
	}

	for _, in := range []struct {
		name     string
		priority int64
	}{{"A", 3}, {"B", 1}, {"C", 4}, {"D", 2}} {
		pq.Enqueue(in.name, in.priority)
	}
	if pq.Size() != 4 {
		t.Errorf("Size() = %d, want 4", pq.Size())
	}

	if v, p, ok := pq.Peek(); !ok || v != "B" || p != 1 {
		t.Errorf("Peek() = %q, %d, %v; want B, 1, true", v, p, ok)
	}

	var got []string
	for {
		v, ok := pq.Dequeue()
		if !ok {
			break
		}
		got = append(got, v)
	}
	want := []string{"B", "D", "A", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dequeue order = %v, want %v", got, want)
		}
	}

	if _, _, ok := pq.Peek(); ok {
		t.Error("Peek on empty queue should fail")
	}
}
