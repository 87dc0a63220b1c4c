package sim

import "testing"

func TestWaitQueue_FIFO_Order(t *testing.T) {
	// GIVEN a queue with customers [0, 1, 2]
	wq := &WaitQueue{}
	wq.Enqueue(0)
	wq.Enqueue(1)
	wq.Enqueue(2)

	// WHEN all customers are dequeued
	var ids []int64
	for {
		id, ok := wq.Dequeue()
		if !ok {
			break
		}
		ids = append(ids, id)
	}

	// THEN they come out in strict arrival order
	want := []int64{0, 1, 2}
	for i, id := range ids {
		if id != want[i] {
			t.Errorf("dequeue order[%d]: got %d, want %d", i, id, want[i])
		}
	}
}

func TestWaitQueue_Peek_NonEmpty_ReturnsFront(t *testing.T) {
	// GIVEN a queue with customers [4, 5]
	wq := &WaitQueue{}
	wq.Enqueue(4)
	wq.Enqueue(5)

	// WHEN Peek() is called
	id, ok := wq.Peek()

	// THEN it returns the front element without removing it
	if !ok || id != 4 {
		t.Errorf("Peek: got (%d, %v), want (4, true)", id, ok)
	}
	if wq.Len() != 2 {
		t.Errorf("Peek modified queue length: got %d, want 2", wq.Len())
	}
}

func TestWaitQueue_Dequeue_Empty_ReportsEmpty(t *testing.T) {
	// GIVEN an empty queue
	wq := &WaitQueue{}

	// WHEN Dequeue() is called
	_, ok := wq.Dequeue()

	// THEN it reports the queue empty
	if ok {
		t.Error("Dequeue on empty queue: got ok=true, want false")
	}
}

func TestWaitQueue_String(t *testing.T) {
	wq := &WaitQueue{}
	wq.Enqueue(1)
	wq.Enqueue(2)
	if got := wq.String(); got != "[1 2]" {
		t.Errorf("String: got %q, want %q", got, "[1 2]")
	}
}
