/*
 * TULIP4041 - byte channel
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

package telnet

import (
	"net"
	"sync"
)

// rxSize bounds the unread data a peer can queue per channel.
const rxSize = 16384

// Channel is one logical byte channel, implementing stream.Stream.
// Reads never block; writes go to the connected client and are dropped
// while disconnected.
type Channel struct {
	mu   sync.Mutex
	conn net.Conn
	rx   []byte
	name string
}

func newChannel(name string) *Channel {
	return &Channel{name: name}
}

// connect attaches a client. Only one client per channel.
func (c *Channel) connect(conn net.Conn) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		return false
	}
	c.conn = conn
	c.rx = nil
	return true
}

func (c *Channel) disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.rx = nil
}

// receive queues bytes read from the client.
func (c *Channel) receive(p []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.rx)+len(p) > rxSize {
		return // peer overruns the poll loop, drop
	}
	c.rx = append(c.rx, p...)
}

// Connected reports whether a client is attached.
func (c *Channel) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// Available returns the number of unread bytes.
func (c *Channel) Available() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.rx)
}

// ReadByte pops one received byte.
func (c *Channel) ReadByte() (byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.rx) == 0 {
		return 0, false
	}
	b := c.rx[0]
	c.rx = c.rx[1:]
	return b, true
}

// Write sends to the connected client. May block until send buffer
// space frees up.
func (c *Channel) Write(p []byte) (int, error) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return len(p), nil
	}
	n, err := conn.Write(p)
	if err != nil {
		c.disconnect()
	}
	return n, err
}

// Flush is a no-op for TCP channels; writes go out immediately.
func (c *Channel) Flush() {}
