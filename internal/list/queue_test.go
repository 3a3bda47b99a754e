package list

import "testing"

func TestQueueEnqueueDequeueOrder(t *testing.T) {
	q := NewQueue[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	if q.Len() != 3 {
		t.Fatalf("expected len 3, got %d", q.Len())
	}

	v, ok := q.Dequeue()
	if !ok || v != 1 {
		t.Fatalf("expected 1, got %d (ok=%v)", v, ok)
	}

	v, ok = q.Front()
	if !ok || v != 2 {
		t.Fatalf("expected front 2, got %d (ok=%v)", v, ok)
	}
	if q.Len() != 2 {
		t.Fatalf("Front must not remove, got len %d", q.Len())
	}
}

func TestQueueDequeueEmpty(t *testing.T) {
	q := NewQueue[string]()
	if _, ok := q.Dequeue(); ok {
		t.Fatal("expected ok=false on empty queue")
	}
}

func TestQueueRotateFront(t *testing.T) {
	q := NewQueue[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	q.RotateFront()
	if got := q.Snapshot(); !equalInts(got, []int{2, 3, 1}) {
		t.Fatalf("unexpected order after rotate: %v", got)
	}
}

func TestQueueRotateFrontEmpty(t *testing.T) {
	q := NewQueue[int]()
	q.RotateFront() // must not panic
	if q.Len() != 0 {
		t.Fatalf("expected empty queue, got len %d", q.Len())
	}
}

func TestQueueFilterInPlace(t *testing.T) {
	q := NewQueue[int]()
	for _, v := range []int{1, 2, 3, 4, 5} {
		q.Enqueue(v)
	}

	removed := q.FilterInPlace(func(v int) bool { return v%2 == 0 })

	if got := q.Snapshot(); !equalInts(got, []int{2, 4}) {
		t.Fatalf("unexpected kept set: %v", got)
	}
	if !equalInts(removed, []int{1, 3, 5}) {
		t.Fatalf("unexpected removed set: %v", removed)
	}
}

func TestQueueFilterInPlaceCallsKeepOncePerElement(t *testing.T) {
	q := NewQueue[int]()
	q.Enqueue(1)
	q.Enqueue(2)

	calls := 0
	q.FilterInPlace(func(v int) bool {
		calls++
		return true
	})

	if calls != 2 {
		t.Fatalf("expected keep to be called exactly twice, got %d", calls)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
