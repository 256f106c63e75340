/*
 * TULIP4041 - Single producer, single consumer ring.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package ring implements the lock free queues that carry trace records,
// printer bytes and HP-IL frames between the cycle engine and the
// round-robin side. One goroutine pushes, one goroutine pops; neither
// ever blocks.
package ring

import "sync/atomic"

type Ring[T any] struct {
	buf   []T
	mask  uint32
	limit uint32 // requested capacity
	head  atomic.Uint32
	tail  atomic.Uint32
}

// New returns a ring holding exactly size elements.
func New[T any](size int) *Ring[T] {
	n := uint32(2)
	for n < uint32(size)+1 {
		n <<= 1
	}
	return &Ring[T]{buf: make([]T, n), mask: n - 1, limit: uint32(size)}
}

// Push adds one element. Returns false when the ring is full and the
// element was dropped.
func (r *Ring[T]) Push(v T) bool {
	tail := r.tail.Load()
	if (tail-r.head.Load())&r.mask >= r.limit {
		return false
	}
	r.buf[tail] = v
	r.tail.Store((tail + 1) & r.mask)
	return true
}

// PushDrop adds one element, discarding the oldest when the ring is
// full so the newest data survives. Returns true when an element was
// dropped. The tracer uses this: after an overflow the drain starts at
// a cycle number gap.
func (r *Ring[T]) PushDrop(v T) bool {
	dropped := false
	for {
		tail := r.tail.Load()
		head := r.head.Load()
		if (tail-head)&r.mask < r.limit {
			r.buf[tail] = v
			r.tail.Store((tail + 1) & r.mask)
			return dropped
		}
		// full, reclaim the oldest slot
		if r.head.CompareAndSwap(head, (head+1)&r.mask) {
			dropped = true
		}
	}
}

// Pop removes the oldest element. The second result is false when the
// ring is empty. The head moves by compare and swap so PushDrop can
// reclaim the oldest slot from the producer side: a copy taken from a
// slot the producer reclaimed fails the swap and is retried.
func (r *Ring[T]) Pop() (T, bool) {
	for {
		var zero T
		head := r.head.Load()
		if head == r.tail.Load() {
			return zero, false
		}
		v := r.buf[head]
		if r.head.CompareAndSwap(head, (head+1)&r.mask) {
			return v, true
		}
	}
}

// Peek returns the oldest element without removing it.
func (r *Ring[T]) Peek() (T, bool) {
	var zero T
	head := r.head.Load()
	if head == r.tail.Load() {
		return zero, false
	}
	return r.buf[head], true
}

// Len returns the number of queued elements.
func (r *Ring[T]) Len() int {
	return int((r.tail.Load() - r.head.Load()) & r.mask)
}

func (r *Ring[T]) Empty() bool {
	return r.head.Load() == r.tail.Load()
}

func (r *Ring[T]) Full() bool {
	return (r.tail.Load()-r.head.Load())&r.mask >= r.limit
}

// Flush discards everything queued. Only safe while the producer is
// stopped (PWO low).
func (r *Ring[T]) Flush() {
	for {
		if _, ok := r.Pop(); !ok {
			return
		}
	}
}
