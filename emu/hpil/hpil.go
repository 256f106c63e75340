/*
 * TULIP4041 - HP-IL device register model
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

// Package hpil is the register level model of the HP82160A HP-IL
// module, device side only. The HP-41 is always the loop controller.
// Nine byte registers R0..R8 are visible to the NUT through the SELP
// sub-protocol; R8 is the write view of R1 (R1W). Frame reception and
// flag derivation follow the register semantics of the 1LB3 chip as
// modelled in V41.
package hpil

import (
	"github.com/rcornwell/tulip4041/emu/hp41"
	"github.com/rcornwell/tulip4041/util/ring"
)

// R0 (status) bits.
const (
	R0SC  = 0x80 // set condition
	R0CA  = 0x40 // controller active
	R0TA  = 0x20 // talker active
	R0LA  = 0x10 // listener active
	R0MCL = 0x01 // master clear, self clearing
	R0CLI = 0x02 // clear IFCR, self clearing
)

// R1 read view (interrupt/status) bits.
const (
	R1ORAV = 0x01 // output register available
	R1FRNS = 0x02 // frame received not as sent
	R1FRAV = 0x04 // frame available
	R1SRQR = 0x08 // service request received
	R1IFCR = 0x10 // interface clear received
	R1CO   = 0xE0 // control bits latched from the frame
)

// R1 write view (R8/R1W) bits.
const (
	R1WFLGENB = 0x01 // gate HP-IL flags onto FI
	R1WCO     = 0xE0 // control bits for outgoing frames
)

// R3 bits.
const R3AutoIDY = 0x40

const queueSize = 32

type HPIL struct {
	reg [9]byte

	lastSent uint16 // last frame sent, for echo compare
	lastCmd  uint16 // last CMD frame, for RFC substitution

	out *ring.Ring[uint16] // frames to the loop, drained on core 0
	in  *ring.Ring[uint16] // frames from the loop, filled on core 0
}

func New() *HPIL {
	h := &HPIL{
		out: ring.New[uint16](queueSize),
		in:  ring.New[uint16](queueSize),
	}
	h.Reset()
	return h
}

// Reset presets the registers for module hot plugging.
func (h *HPIL) Reset() {
	h.reg = [9]byte{}
	h.reg[0] = 0x81 // SC and MCL
	h.reg[4] = 0x01 // selected loop address
	h.reg[5] = 0x01 // current device number
	h.reg[6] = 0x01 // starting device number
}

// Reg returns register r without side effects (tracing).
func (h *HPIL) Reg(r int) byte {
	return h.reg[r]
}

// Regs snapshots all nine registers for the tracer.
func (h *HPIL) Regs() [9]byte {
	return h.reg
}

// WriteReg performs a CPU write to register r. The returned frame is
// the outgoing frame queued by a data register write, or hp41.NoFrame.
func (h *HPIL) WriteReg(r int, v byte) uint16 {
	frameOut := hp41.NoFrame
	switch r {
	case 0: // status
		if v&R0MCL != 0 {
			h.reg[0] |= R0SC
			h.reg[1] &= 0xE1 // IFCR=SRQR=FRNS=FRAV=0
			h.reg[1] |= R1ORAV
			h.reg[8] &^= R1WFLGENB
			h.lastSent = 0 // transfer state reset
		}
		if v&R0CLI != 0 {
			h.reg[1] &^= R1IFCR
		}
		h.reg[0] = v &^ (R0MCL | R0CLI) // both are self clearing

	case 1: // control, write view lands in R1W
		h.reg[8] = v

	case 2: // data, compose a frame and queue it
		frame := uint16(v) | uint16(h.reg[8]&R1WCO)<<3
		h.reg[1] &^= R1FRAV | R1FRNS | R1ORAV
		h.lastSent = frame
		h.out.Push(frame)
		frameOut = frame

	default: // R3..R7 scratch and parallel poll
		h.reg[r] = v
	}
	return frameOut
}

// ReadReg performs a CPU read of register r. Reading the data register
// acknowledges a received frame: the CO bits move from R1R to R1W and
// FRAV/FRNS clear.
func (h *HPIL) ReadReg(r int) byte {
	if r == 2 {
		pending := h.reg[1] & (R1FRAV | R1FRNS)
		h.reg[1] &^= R1FRAV | R1FRNS
		if pending != 0 {
			h.reg[8] &^= R1WCO
			h.reg[8] |= h.reg[1] & R1CO
		}
	}
	return h.reg[r]
}

// SendFrame queues a locally generated frame (Auto-IDY).
func (h *HPIL) SendFrame(frame uint16) {
	if frame != hp41.FrameRFC {
		h.lastSent = frame
	}
	h.out.Push(frame)
}

// PopOut drains one outgoing frame, round-robin side.
func (h *HPIL) PopOut() (uint16, bool) {
	return h.out.Pop()
}

// PushIn delivers one frame from the loop, round-robin side. The
// CMD/RFC handshake runs here: while controller active a CMD is
// remembered and answered with RFC, and a returning RFC substitutes
// the remembered CMD.
func (h *HPIL) PushIn(frame uint16) {
	if h.reg[0]&R0CA != 0 {
		if frame&0x700 == 0x400 { // CMD
			h.lastCmd = frame
			h.SendFrame(hp41.FrameRFC)
			return
		}
		if frame == hp41.FrameRFC {
			frame = h.lastCmd
		}
	}
	h.in.Push(frame)
}

// PendingIn reports whether a received frame waits for the engine.
func (h *HPIL) PendingIn() bool {
	return !h.in.Empty()
}

// ProcessFrame takes one pending received frame and updates the
// register state, cycle engine side. The returned values are the frame
// consumed and whether one was pending at all.
func (h *HPIL) ProcessFrame() (uint16, bool) {
	frame, ok := h.in.Pop()
	if !ok {
		return hp41.NoFrame, false
	}

	switch {
	case frame&0x400 == 0: // DOE: 0xx
		switch {
		case h.reg[0]&R0LA != 0:
			h.reg[1] |= R1FRAV | R1ORAV
		case h.reg[0]&R0TA != 0:
			if byte(h.lastSent) != byte(frame) {
				h.reg[1] |= R1FRNS | R1ORAV
			} else {
				h.reg[1] |= R1ORAV
			}
		default:
			// neither talker nor listener: pass the frame on
			h.out.Push(frame)
		}
		h.setSRQ(frame)

	case frame&0x200 != 0: // IDY: 11x
		if h.reg[0]&(R0TA|R0LA) == R0TA|R0LA {
			h.reg[1] |= R1FRAV | R1ORAV
		} else {
			h.reg[1] |= R1ORAV
		}
		h.setSRQ(frame)

	case frame&0x100 == 0: // CMD: 100
		switch {
		case h.reg[0]&(R0TA|R0LA) == R0TA|R0LA:
			h.reg[1] |= R1FRAV | R1ORAV
		case h.lastSent == frame:
			h.reg[1] |= R1ORAV
		default:
			h.reg[1] |= R1FRNS | R1ORAV
		}
		if frame == hp41.FrameIFC {
			h.reg[1] |= R1IFCR
		}

	default: // RDY: 101
		switch {
		case h.reg[0]&(R0TA|R0LA) == R0TA|R0LA:
			h.reg[1] |= R1FRAV | R1ORAV
		case frame&0xC0 == 0x40: // ARG class
			h.reg[1] |= R1FRAV | R1ORAV
		case h.lastSent == frame:
			h.reg[1] |= R1ORAV
		default:
			h.reg[1] |= R1FRNS | R1ORAV
		}
	}

	// A received frame lands in R2 with its class bits in R1R.
	if h.reg[1]&(R1FRAV|R1FRNS) != 0 {
		h.reg[2] = byte(frame)
		h.reg[1] &= 0x1F
		h.reg[1] |= byte((frame & 0x700) >> 3)
	}
	return frame, true
}

func (h *HPIL) setSRQ(frame uint16) {
	if frame&0x100 != 0 {
		h.reg[1] |= R1SRQR
	} else {
		h.reg[1] &^= R1SRQR
	}
}

// FlagEnabled reports whether FLGENB gates the HP-IL flags onto FI.
func (h *HPIL) FlagEnabled() bool {
	return h.reg[8]&R1WFLGENB != 0
}

// FIPattern merges the HP-IL flags into the FI output words per the
// current register state. lo carries T0..T31 nibbles, hi T32..T55.
func (h *HPIL) FIPattern(lo, hi uint32) (uint32, uint32) {
	if !h.FlagEnabled() {
		lo &= hp41.FI06Off & hp41.FI07Off
		hi &= hp41.FI08Off & hp41.FI09Off & hp41.FI10Off
		return lo, hi
	}
	ctrl := h.reg[1]
	if ctrl&R1ORAV != 0 {
		hi |= hp41.FI10
	} else {
		hi &= hp41.FI10Off
	}
	if ctrl&R1FRNS != 0 {
		hi |= hp41.FI09
	} else {
		hi &= hp41.FI09Off
	}
	if ctrl&R1FRAV != 0 {
		hi |= hp41.FI08
	} else {
		hi &= hp41.FI08Off
	}
	if ctrl&R1SRQR != 0 {
		lo |= hp41.FI07
	} else {
		lo &= hp41.FI07Off
	}
	if ctrl&R1IFCR != 0 {
		lo |= hp41.FI06
	} else {
		lo &= hp41.FI06Off
	}
	return lo, hi
}

// AutoIDYArmed reports whether Auto-IDY keepalives should go out: the
// AutoIDY bit in R3 and controller active in R0 are both set. The
// caller adds the light-sleep condition and the 10 ms cadence.
func (h *HPIL) AutoIDYArmed() bool {
	return h.reg[3]&R3AutoIDY != 0 && h.reg[0]&R0CA != 0
}
