/*
 * TULIP4041 - PILBox serial tunnel
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

// Package pilbox tunnels 11 bit HP-IL frames over a byte stream using
// the PILBox wire protocol of J-F Garnier. Two packings exist; the
// peer picks one with the encoding of the low byte. The mode commands
// TDIS/CON/COFF/COFI are intercepted locally and acknowledged. While
// disabled or unplugged the tunnel loops outgoing frames straight back.
package pilbox

import (
	"github.com/rcornwell/tulip4041/emu/hp41"
	"github.com/rcornwell/tulip4041/emu/stream"
)

// Tunnel modes, the values of their command frames.
type Mode uint16

const (
	TDIS Mode = Mode(hp41.FrameTDIS) // translator disabled, loopback
	COFI Mode = Mode(hp41.FrameCOFI) // device with IDY forwarding
	CON  Mode = Mode(hp41.FrameCON)  // controller on
	COFF Mode = Mode(hp41.FrameCOFF) // controller off, device side
)

func (m Mode) String() string {
	switch m {
	case TDIS:
		return "TDIS"
	case COFI:
		return "COFI"
	case CON:
		return "CON"
	case COFF:
		return "COFF"
	}
	return "unknown"
}

type Tunnel struct {
	wire  stream.Stream
	mode  Mode
	mode8 bool // 8 bit packing, switched by received low bytes

	rxHi     byte   // high byte waiting for its low byte
	loopback uint16 // pending loopback frame, NoFrame when none

	// Scope is called for every frame crossing the tunnel. Optional.
	Scope func(frame uint16, hi, lo byte, out bool)

	// ModeChanged reports a peer commanded mode switch. Optional.
	ModeChanged func(Mode)
}

func New(wire stream.Stream) *Tunnel {
	return &Tunnel{
		wire:     wire,
		mode:     TDIS,
		mode8:    true,
		loopback: hp41.NoFrame,
	}
}

// Mode returns the current tunnel mode.
func (t *Tunnel) Mode() Mode {
	return t.mode
}

// Encode8 packs a frame in the 8 bit payload form.
func Encode8(frame uint16) (hi, lo byte) {
	hi = 0x20 | byte(frame>>6)&0x1E
	lo = 0x80 | byte(frame&0x7F)
	return hi, lo
}

// Decode8 rebuilds a frame from its 8 bit packing.
func Decode8(hi, lo byte) uint16 {
	return uint16(lo&0x7F) | uint16(hi&0x1E)<<6
}

// Encode7 packs a frame in the 7 bit payload form.
func Encode7(frame uint16) (hi, lo byte) {
	hi = 0x20 | byte(frame>>6)&0x1F
	lo = 0x40 | byte(frame&0x3F)
	return hi, lo
}

// Decode7 rebuilds a frame from its 7 bit packing.
func Decode7(hi, lo byte) uint16 {
	return uint16(lo&0x3F) | uint16(hi&0x1F)<<6
}

// SendFrame puts one frame on the wire. Without a connected peer, or
// in TDIS, the frame loops back and becomes the next received frame.
func (t *Tunnel) SendFrame(frame uint16) {
	if !t.wire.Connected() || t.mode == TDIS {
		t.loopback = frame
		if t.Scope != nil {
			t.Scope(frame, 0, 0, true)
		}
		return
	}
	var hi, lo byte
	if t.mode8 {
		hi, lo = Encode8(frame)
	} else {
		hi, lo = Encode7(frame)
	}
	t.wire.Write([]byte{hi, lo})
	t.wire.Flush()
	if t.Scope != nil {
		t.Scope(frame, hi, lo, true)
	}
}

// RecvFrame polls the wire for one complete frame. The second result
// is false when no frame is available. Mode command frames are handled
// here: the mode switches and the command byte echoes back.
func (t *Tunnel) RecvFrame() (uint16, bool) {
	if !t.wire.Connected() {
		if t.loopback == hp41.NoFrame {
			return hp41.NoFrame, false
		}
		frame := t.loopback
		t.loopback = hp41.NoFrame
		return frame, true
	}

	// Loopback still applies with a peer attached while in TDIS.
	if t.loopback != hp41.NoFrame {
		frame := t.loopback
		t.loopback = hp41.NoFrame
		return frame, true
	}

	if t.wire.Available() == 0 {
		return hp41.NoFrame, false
	}
	c, ok := t.wire.ReadByte()
	if !ok {
		return hp41.NoFrame, false
	}

	var frame uint16
	switch {
	case c&0xE0 == 0x20:
		// high byte, wait for the low byte
		t.rxHi = c
		return hp41.NoFrame, false
	case c&0x80 == 0x80:
		t.mode8 = true
		frame = Decode8(t.rxHi, c)
	case c&0xC0 == 0x40:
		t.mode8 = false
		frame = Decode7(t.rxHi, c)
	default:
		return hp41.NoFrame, false
	}

	if t.Scope != nil {
		t.Scope(frame, t.rxHi, c, false)
	}

	switch frame {
	case hp41.FrameTDIS, hp41.FrameCON, hp41.FrameCOFF, hp41.FrameCOFI:
		t.mode = Mode(frame)
		t.wire.Write([]byte{c}) // acknowledge with the command byte
		t.wire.Flush()
		if t.ModeChanged != nil {
			t.ModeChanged(t.mode)
		}
		return hp41.NoFrame, false
	}
	return frame, true
}
