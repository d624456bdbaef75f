package command

import (
	"sync/atomic"

	"github.com/lixenwraith/gyre/parameter"
)

// Queue buffers external commands for the frame loop without locks.
// Any number of producers may Push concurrently (CAS on the tail);
// Consume belongs to the frame thread alone. A per-slot published flag
// keeps a half-written command from being handed out, and when
// producers outrun the consumer the oldest entries are overwritten.
type Queue struct {
	commands  [parameter.CommandQueueSize]Command
	published [parameter.CommandQueueSize]atomic.Bool
	head      atomic.Uint64 // consumer position
	tail      atomic.Uint64 // next slot to claim
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends a command; safe from any goroutine
func (q *Queue) Push(cmd Command) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.CommandBufferMask

			q.commands[idx] = cmd
			// Publish only once the payload is fully in place
			q.published[idx].Store(true)

			// Drag head forward when the write lapped unread slots
			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.CommandQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-parameter.CommandQueueSize)
			}
			return
		}
	}
}

// Consume drains every pending command in arrival order.
// Frame thread only.
func (q *Queue) Consume() []Command {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > parameter.CommandQueueSize {
			maxAvailable = parameter.CommandQueueSize
			currentHead = currentTail - parameter.CommandQueueSize
		}

		result := make([]Command, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & parameter.CommandBufferMask

			if !q.published[idx].Load() {
				// Slot claimed but its payload has not landed yet;
				// stop here and pick it up next drain
				break
			}

			result = append(result, q.commands[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len estimates how many commands are waiting
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.CommandQueueSize {
		return parameter.CommandQueueSize
	}
	return diff
}
