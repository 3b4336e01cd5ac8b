package pqueue

import "testing"

func TestSingletonInsertPop(t *testing.T) {
	q := New(func(a, b int) bool { return a < b })
	q.Insert(42)
	got, ok := q.Pop()
	if !ok || got != 42 {
		t.Errorf("Pop() = (%d, %v), want (42, true)", got, ok)
	}
}

func TestPopOrderNonDecreasing(t *testing.T) {
	q := New(func(a, b int) bool { return a > b }) // max-heap: a pops before b when a>b
	for _, p := range []int{100, 99, 98, 97, 99, 98} {
		q.Insert(p)
	}
	want := []int{100, 99, 99, 98, 98, 97}
	for i, w := range want {
		got, ok := q.Pop()
		if !ok || got != w {
			t.Errorf("pop %d = (%d, %v), want %d", i, got, ok, w)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("expected empty queue after draining all inserts")
	}
}

func TestPeekDoesNotRemove(t *testing.T) {
	q := New(func(a, b int) bool { return a < b })
	q.Insert(5)
	q.Insert(1)
	peeked, ok := q.Peek()
	if !ok || peeked != 1 {
		t.Fatalf("Peek() = (%d,%v), want (1,true)", peeked, ok)
	}
	if q.Length() != 2 {
		t.Errorf("Length() = %d after Peek, want 2", q.Length())
	}
}

func TestNilComparatorDegradesToBag(t *testing.T) {
	q := New[int](nil)
	for _, v := range []int{3, 1, 2} {
		q.Insert(v)
	}
	seen := map[int]bool{}
	for i := 0; i < 3; i++ {
		v, ok := q.Pop()
		if !ok {
			t.Fatalf("pop %d: queue empty early", i)
		}
		seen[v] = true
	}
	for _, v := range []int{1, 2, 3} {
		if !seen[v] {
			t.Errorf("value %d never popped from bag-mode queue", v)
		}
	}
}

func TestEmptyQueuePopReturnsFalse(t *testing.T) {
	q := New(func(a, b int) bool { return a < b })
	if _, ok := q.Pop(); ok {
		t.Error("Pop on empty queue should report false")
	}
	if _, ok := q.Peek(); ok {
		t.Error("Peek on empty queue should report false")
	}
}
