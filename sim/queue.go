// Implements the WaitQueue, which holds customers waiting for a checkout point.
// Customers are enqueued when they are waitlisted on arrival.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue represents a FIFO queue of customers waiting to be served.
// A human server owns one WaitQueue; a self-checkout bank shares one
// WaitQueue across all of its machines.
type WaitQueue struct {
	queue []Customer // FIFO queue of customers
}

// Enqueue adds a customer to the back of the wait queue.
func (wq *WaitQueue) Enqueue(c Customer) {
	wq.queue = append(wq.queue, c)
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range wq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of customers in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Peek returns the customer at the front of the queue without removing it.
// The boolean is false when the queue is empty.
func (wq *WaitQueue) Peek() (Customer, bool) {
	if len(wq.queue) == 0 {
		return Customer{}, false
	}
	return wq.queue[0], true
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage; callers MUST NOT
// append to or reslice it.
func (wq *WaitQueue) Items() []Customer {
	return wq.queue
}

// Dequeue removes the customer at the front of the queue.
// The boolean is false when the queue is empty.
func (wq *WaitQueue) Dequeue() (Customer, bool) {
	if len(wq.queue) == 0 {
		return Customer{}, false
	}
	head := wq.queue[0]
	wq.queue = wq.queue[1:]
	return head, true
}
