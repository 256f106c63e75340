/*
 * TULIP4041 - byte channel server
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

// Package telnet serves the five logical byte channels of the cartridge
// over TCP, one port per channel starting at a base port: console,
// tracer, HP-IL wire, IL scope and printer. Channels carry raw binary,
// one client at a time; the HP-IL channel is where a PILBox peer such
// as pyILPER connects.
package telnet

import (
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/rcornwell/tulip4041/emu/stream"
)

// DefaultBase is the TCP port of channel 0.
const DefaultBase = 4041

var channelName = [stream.NumChannels]string{
	"console", "tracer", "hpil", "ilscope", "printer",
}

type Server struct {
	wg       sync.WaitGroup
	listener net.Listener
	shutdown chan struct{}
	channel  *Channel
	port     string
}

var servers []*Server

// Start listens for all channels at base port. The returned array maps
// channel numbers to their streams.
func Start(base int) ([stream.NumChannels]stream.Stream, error) {
	var chans [stream.NumChannels]stream.Stream
	for num := 0; num < stream.NumChannels; num++ {
		ch := newChannel(channelName[num])
		s, err := newServer(fmt.Sprintf("%d", base+num), ch)
		if err != nil {
			Stop()
			return chans, err
		}
		servers = append(servers, s)
		slog.Info(fmt.Sprintf("Channel %d [%s] listening on port %d", num, ch.name, base+num))

		s.wg.Add(1)
		go s.acceptConnections()
		chans[num] = ch
	}
	return chans, nil
}

// Stop shuts all channel servers down.
func Stop() {
	for _, s := range servers {
		if s == nil {
			continue
		}
		close(s.shutdown)
		s.listener.Close()
		s.channel.disconnect()

		done := make(chan struct{})
		go func() {
			s.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			slog.Warn("Timed out waiting for connections to finish on port: " + s.port)
		}
	}
	servers = nil
}

// Open new listener for one channel.
func newServer(port string, ch *Channel) (*Server, error) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on port %s: %w", port, err)
	}
	return &Server{
		listener: listener,
		shutdown: make(chan struct{}),
		channel:  ch,
		port:     port,
	}, nil
}

// Accept connections, one client per channel.
func (s *Server) acceptConnections() {
	defer s.wg.Done()

	for {
		select {
		case <-s.shutdown:
			return
		default:
			conn, err := s.listener.Accept()
			if err != nil {
				continue
			}
			if !s.channel.connect(conn) {
				// channel busy
				conn.Close()
				continue
			}
			s.wg.Add(1)
			go s.readClient(conn)
		}
	}
}

// readClient pumps received bytes into the channel until it drops.
func (s *Server) readClient(conn net.Conn) {
	defer s.wg.Done()
	buf := make([]byte, 512)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			s.channel.disconnect()
			return
		}
		s.channel.receive(buf[:n])
	}
}
