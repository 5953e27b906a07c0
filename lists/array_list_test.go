package lists_test

import (
	"errors"
	"slices"
	"testing"

	"seqcore/lists"
)

func TestArrayList_Basic(t *testing.T) {
	l := lists.NewArrayList[int](0)
	if !l.IsEmpty() {
		t.Error("New list should be empty")
	}
	if l.Size() != 0 {
		t.Errorf("New list size should be 0, got %d", l.Size())
	}

	l.Add(10, 20, 30)
	if l.Size() != 3 {
		t.Errorf("Size should be 3, got %d", l.Size())
	}
	if v, err := l.Get(1); err != nil || v != 20 {
		t.Errorf("Get(1) = %d, %v; want 20, nil", v, err)
	}
	if err := l.Set(1, 25); err != nil {
		t.Errorf("Set(1) failed: %v", err)
	}
	if v, _ := l.Get(1); v != 25 {
		t.Errorf("Get(1) after Set = %d, want 25", v)
	}

	l.Clear()
	if !l.IsEmpty() {
		t.Error("List should be empty after Clear")
	}
}

func TestArrayList_Bounds(t *testing.T) {
	l := lists.NewArrayList[int](2)
	l.Add(1)

	if _, err := l.Get(1); !errors.Is(err, lists.ErrIndexOutOfBounds) {
		t.Errorf("Get(1) err = %v, want ErrIndexOutOfBounds", err)
	}
	if _, err := l.Get(-1); !errors.Is(err, lists.ErrIndexOutOfBounds) {
		t.Errorf("Get(-1) err = %v, want ErrIndexOutOfBounds", err)
	}
	if err := l.Set(5, 0); !errors.Is(err, lists.ErrIndexOutOfBounds) {
		t.Errorf("Set(5) err = %v, want ErrIndexOutOfBounds", err)
	}
	if _, err := l.Remove(3); !errors.Is(err, lists.ErrIndexOutOfBounds) {
		t.Errorf("Remove(3) err = %v, want ErrIndexOutOfBounds", err)
	}
	if err := l.RemoveRange(1, 0); !errors.Is(err, lists.ErrIndexOutOfBounds) {
		t.Errorf("RemoveRange(1, 0) err = %v, want ErrIndexOutOfBounds", err)
	}
	if _, err := l.Slice(0, 2); !errors.Is(err, lists.ErrIndexOutOfBounds) {
		t.Errorf("Slice(0, 2) err = %v, want ErrIndexOutOfBounds", err)
	}
}

func TestArrayList_Remove(t *testing.T) {
	l := lists.NewArrayList[int](0)
	l.Add(0, 1, 2, 3, 4, 5)

	v, err := l.Remove(2)
	if err != nil || v != 2 {
		t.Fatalf("Remove(2) = %d, %v; want 2, nil", v, err)
	}
	// [0 1 3 4 5]
	if err := l.RemoveRange(0, 2); err != nil {
		t.Fatalf("RemoveRange(0, 2) failed: %v", err)
	}
	want := []int{3, 4, 5}
	if got := slices.Collect(l.Values()); !slices.Equal(got, want) {
		t.Errorf("After RemoveRange: got %v, want %v", got, want)
	}
	if err := l.RemoveRange(1, 1); err != nil || l.Size() != 3 {
		t.Errorf("empty RemoveRange changed the list: size %d, err %v", l.Size(), err)
	}
}

func TestArrayList_Copies(t *testing.T) {
	l := lists.NewArrayList[int](0)
	l.Add(1, 2, 3, 4)

	clone := l.Clone()
	clone.Set(0, 100)
	if v, _ := l.Get(0); v != 1 {
		t.Errorf("Clone shares storage: original[0] = %d", v)
	}

	sub, err := l.Slice(1, 3)
	if err != nil {
		t.Fatalf("Slice(1, 3) failed: %v", err)
	}
	if got := sub.ToSlice(); !slices.Equal(got, []int{2, 3}) {
		t.Errorf("Slice(1, 3) = %v, want [2 3]", got)
	}
	sub.Set(0, 200)
	if v, _ := l.Get(1); v != 2 {
		t.Errorf("Slice shares storage: original[1] = %d", v)
	}

	out := l.ToSlice()
	out[0] = -1
	if v, _ := l.Get(0); v != 1 {
		t.Errorf("ToSlice shares storage: original[0] = %d", v)
	}
}

func TestArrayList_Order(t *testing.T) {
	l := lists.NewArrayList[string](0)
	l.Add("a", "b", "c")

	l.Swap(0, 2)
	l.Swap(0, 9) // ignored
	if got := l.ToSlice(); !slices.Equal(got, []string{"c", "b", "a"}) {
		t.Errorf("After Swap: got %v", got)
	}
	l.Reverse()
	if got := l.String(); got != "[a b c]" {
		t.Errorf("String() = %q, want [a b c]", got)
	}

	for i, v := range l.All() {
		if want := string(rune('a' + i)); v != want {
			t.Errorf("All()[%d] = %q, want %q", i, v, want)
		}
	}
}

func TestVector(t *testing.T) {
	values := []any{1, "two", nil}
	v := lists.NewVector(values...)
	values[0] = "changed"

	if got, _ := v.Get(0); got != 1 {
		t.Errorf("NewVector does not copy its input: v[0] = %v", got)
	}
	if v.Size() != 3 {
		t.Errorf("Size() = %d, want 3", v.Size())
	}
	if e := lists.NewVector(); !e.IsEmpty() {
		t.Error("NewVector() should be empty")
	}
}
