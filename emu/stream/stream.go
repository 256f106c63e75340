/*
 * TULIP4041 - Byte stream channels
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

// Package stream defines the byte channel seam between the engine and
// the outside world. Five logical channels exist: console, tracer,
// HP-IL wire, IL scope and printer. The telnet package provides the
// network implementation; Buffer serves the tests.
package stream

import "sync"

// Channel numbers.
const (
	Console = iota
	Tracer
	HPIL
	ILScope
	Printer
	NumChannels
)

// Stream is one logical byte channel.
type Stream interface {
	Connected() bool
	Available() int
	ReadByte() (byte, bool)
	Write(p []byte) (int, error)
	Flush()
}

// Null is a disconnected channel.
type Null struct{}

func (Null) Connected() bool          { return false }
func (Null) Available() int           { return 0 }
func (Null) ReadByte() (byte, bool)   { return 0, false }
func (Null) Write(p []byte) (int, error) { return len(p), nil }
func (Null) Flush()                   {}

// Buffer is an in-memory bidirectional channel for tests: what the
// peer sends is queued with Feed, what the engine writes collects in
// Sent.
type Buffer struct {
	mu   sync.Mutex
	in   []byte
	out  []byte
	conn bool
}

func NewBuffer() *Buffer {
	return &Buffer{conn: true}
}

func (b *Buffer) Connected() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conn
}

func (b *Buffer) SetConnected(conn bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.conn = conn
}

func (b *Buffer) Available() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.in)
}

func (b *Buffer) ReadByte() (byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.in) == 0 {
		return 0, false
	}
	c := b.in[0]
	b.in = b.in[1:]
	return c, true
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.out = append(b.out, p...)
	return len(p), nil
}

func (b *Buffer) Flush() {}

// Feed queues bytes as if the peer sent them.
func (b *Buffer) Feed(p ...byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.in = append(b.in, p...)
}

// Sent drains and returns everything written so far.
func (b *Buffer) Sent() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.out
	b.out = nil
	return out
}
