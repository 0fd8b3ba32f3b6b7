package event

import (
	"sync/atomic"

	"github.com/lixenwraith/museum/parameter"
)

// EventQueue carries commands and notifications into the host goroutine
// Producers are the museum's teleport command, issued on the host goroutine,
// and the remote bridge, which pushes controller input from one goroutine
// per websocket session. The router is the only consumer and
// drains it from Museum.flush, so listeners always run on the host goroutine.
//
// Slots are claimed with a CAS on tail and marked ready once written; a
// drain stops at the first slot whose writer has not finished. When
// producers outrun the host by a full ring, the oldest events are dropped.
type EventQueue struct {
	slots [parameter.EventQueueSize]GameEvent
	ready [parameter.EventQueueSize]atomic.Bool
	head  atomic.Uint64
	tail  atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push enqueues ev; safe from any goroutine
func (q *EventQueue) Push(ev GameEvent) {
	for {
		seq := q.tail.Load()
		if !q.tail.CompareAndSwap(seq, seq+1) {
			continue
		}
		i := seq & parameter.EventBufferMask
		q.slots[i] = ev
		q.ready[i].Store(true)

		// A full ring drops its oldest unread event
		if head := q.head.Load(); seq+1-head > parameter.EventQueueSize {
			q.head.CompareAndSwap(head, seq+1-parameter.EventQueueSize)
		}
		return
	}
}

// Consume drains every finished event in push order; host goroutine only
func (q *EventQueue) Consume() []GameEvent {
	for {
		head, tail := q.head.Load(), q.tail.Load()
		if head == tail {
			return nil
		}

		n := tail - head
		if n > parameter.EventQueueSize {
			n = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		out := make([]GameEvent, 0, n)
		for k := uint64(0); k < n; k++ {
			i := (head + k) & parameter.EventBufferMask
			if !q.ready[i].Load() {
				break
			}
			out = append(out, q.slots[i])
			q.ready[i].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len reports the approximate backlog
func (q *EventQueue) Len() int {
	head, tail := q.head.Load(), q.tail.Load()
	if tail <= head {
		return 0
	}
	return int(min(tail-head, uint64(parameter.EventQueueSize)))
}
