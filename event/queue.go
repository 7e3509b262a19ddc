// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

package event

import (
	"sync"
	"sync/atomic"
)

// Queue is a lock-free FIFO of events. Producers are native callbacks that
// must never block (backend callback contexts, window-message handlers);
// the consumer is the application thread polling once per iteration.
//
// The zero Queue is not usable; create one with NewQueue.
type Queue struct {
	head atomic.Pointer[queueNode]
	tail atomic.Pointer[queueNode]
	len  atomic.Uint64
}

type queueNode struct {
	next atomic.Pointer[queueNode]
	v    Event
}

var queueNodePool = sync.Pool{
	New: func() any { return &queueNode{} },
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	q := &Queue{}
	sentinel := &queueNode{}
	q.head.Store(sentinel)
	q.tail.Store(sentinel)
	return q
}

// Push appends an event to the tail of the queue.
// It is safe to call from any goroutine or native callback context.
func (q *Queue) Push(ev Event) {
	n := queueNodePool.Get().(*queueNode)
	n.next.Store(nil)
	n.v = ev

	for {
		last := q.tail.Load()
		lastNext := last.next.Load()
		if q.tail.Load() != last {
			continue
		}
		if lastNext == nil {
			if last.next.CompareAndSwap(lastNext, n) {
				q.tail.CompareAndSwap(last, n)
				q.len.Add(1)
				return
			}
		} else {
			// Tail fell behind; help it along.
			q.tail.CompareAndSwap(last, lastNext)
		}
	}
}

// Poll removes and returns the oldest pending event.
// It never blocks; when the queue is empty it returns the None sentinel.
func (q *Queue) Poll() Event {
	for {
		first := q.head.Load()
		last := q.tail.Load()
		firstNext := first.next.Load()
		if first != q.head.Load() {
			continue
		}
		if first == last {
			if firstNext == nil {
				return Event{Type: None}
			}
			q.tail.CompareAndSwap(last, firstNext)
			continue
		}
		v := firstNext.v
		if q.head.CompareAndSwap(first, firstNext) {
			q.len.Add(^uint64(0))
			first.v = Event{}
			queueNodePool.Put(first)
			return v
		}
	}
}

// Len returns the number of pending events.
func (q *Queue) Len() uint64 {
	return q.len.Load()
}
