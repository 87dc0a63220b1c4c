// Implements the WaitQueue, which holds the customers waiting for a server
// slot at one station. Customers are enqueued on arrival when no slot is free.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue is a FIFO queue of customer ids. Customers are served in strict
// arrival order: the departure handler always promotes the head.
type WaitQueue struct {
	queue []int64
}

// Enqueue adds a customer id to the back of the wait queue.
func (wq *WaitQueue) Enqueue(customer int64) {
	wq.queue = append(wq.queue, customer)
}

// Len returns the number of customers in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Peek returns the customer id at the front of the queue without removing it.
// The second return value is false if the queue is empty.
func (wq *WaitQueue) Peek() (int64, bool) {
	if len(wq.queue) == 0 {
		return 0, false
	}
	return wq.queue[0], true
}

// Dequeue removes and returns the customer id at the front of the queue.
// The second return value is false if the queue is empty.
func (wq *WaitQueue) Dequeue() (int64, bool) {
	if len(wq.queue) == 0 {
		return 0, false
	}
	head := wq.queue[0]
	wq.queue = wq.queue[1:]
	return head, true
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, id := range wq.queue {
		sb.WriteString(fmt.Sprint(id))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
