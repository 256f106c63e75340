/*
 * TULIP4041 - HP-41 bus frontend
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

// Package busfront is the seam between the bus sampling state machines
// and the cycle engine. The samplers push right aligned words into
// small RX FIFOs in a fixed per-cycle order; the engine performs
// blocking reads on them as its phase synchronisation and feeds the
// driver TX FIFOs. A PWO edge resets every FIFO and unblocks any
// waiting read.
//
// On hardware the producers are PIO state machines; in this build they
// are the transport or the test bench feeding Feed* directly.
package busfront

import (
	"sync"
	"sync/atomic"
)

// Bus phases of interest within the 56 clock cycle.
const (
	PhaseT0       = 0  // start of DATA output window
	PhaseDataLo   = 31 // D0..D31 sampled
	PhaseAddr     = 32 // ISA address complete (sampled phases 30..46)
	PhaseSync     = 46 // SYNC window starts
	PhaseInst     = 54 // instruction word complete
	PhasesPerCycle = 56
)

// fifoDepth matches the four entry RX FIFO of a PIO state machine.
const fifoDepth = 4

// txDepth gives the drivers a little slack; the ISA driver must never
// be pushed while full (caller keeps one word per cycle).
const txDepth = 8

type Frontend struct {
	mu sync.Mutex

	inst   chan uint32 // instruction words, one per cycle
	addr   chan uint32 // address words, one per cycle
	data   chan uint32 // DATA lo then hi, two per cycle
	fi     chan uint32 // FI lo then hi, two per cycle

	isaOut  chan uint32 // 10 bit ROM words and carry pushes
	dataOut chan uint32 // two words per driven register
	fiOut   chan uint32 // two words per cycle when flags drive
	irOut   chan uint32 // 27 symbol IR frames

	pwo     atomic.Bool
	pwoDrop chan struct{} // closed on the falling PWO edge
	pwoRise chan struct{} // closed on the rising PWO edge
	wakeReq atomic.Bool   // ISA held high to wake the calculator
}

func New() *Frontend {
	return &Frontend{
		inst:    make(chan uint32, fifoDepth),
		addr:    make(chan uint32, fifoDepth),
		data:    make(chan uint32, fifoDepth),
		fi:      make(chan uint32, fifoDepth),
		isaOut:  make(chan uint32, txDepth),
		dataOut: make(chan uint32, txDepth),
		fiOut:   make(chan uint32, txDepth),
		irOut:   make(chan uint32, txDepth),
		pwoDrop: make(chan struct{}),
		pwoRise: make(chan struct{}),
	}
}

// reset drains all FIFOs, the PIO program restart on a PWO edge.
func (f *Frontend) reset() {
	for _, ch := range []chan uint32{
		f.inst, f.addr, f.data, f.fi,
		f.isaOut, f.dataOut, f.fiOut, f.irOut,
	} {
		for {
			select {
			case <-ch:
			default:
			}
			if len(ch) == 0 {
				break
			}
		}
	}
}

// SetPWO tracks the power line. Both edges reset the state machines
// and flush the FIFOs; a falling edge additionally unblocks the engine.
func (f *Frontend) SetPWO(high bool) {
	if f.pwo.Load() == high {
		return
	}
	f.mu.Lock()
	f.pwo.Store(high)
	if high {
		close(f.pwoRise)
		f.pwoRise = make(chan struct{})
	} else {
		close(f.pwoDrop)
		f.pwoDrop = make(chan struct{})
	}
	f.reset()
	f.mu.Unlock()
}

// WaitPWO blocks until the power line is high.
func (f *Frontend) WaitPWO() {
	for {
		f.mu.Lock()
		rise := f.pwoRise
		f.mu.Unlock()
		if f.pwo.Load() {
			return
		}
		<-rise
	}
}

// PWO reports the power line state.
func (f *Frontend) PWO() bool {
	return f.pwo.Load()
}

// get blocks until a word arrives or PWO falls.
func (f *Frontend) get(ch chan uint32) (uint32, bool) {
	f.mu.Lock()
	c := ch
	drop := f.pwoDrop
	f.mu.Unlock()
	if !f.pwo.Load() {
		// PWO already low: only drain what is there.
		select {
		case w := <-c:
			return w, true
		default:
			return 0, false
		}
	}
	select {
	case w := <-c:
		return w, true
	case <-drop:
		return 0, false
	}
}

// GetInst blocks for the next instruction word. The word carries the
// SYNC state in bit 11 and a copy of the msb in bit 10.
func (f *Frontend) GetInst() (uint32, bool) { return f.get(f.inst) }

// GetAddr blocks for the 16 bit ISA address.
func (f *Frontend) GetAddr() (uint32, bool) { return f.get(f.addr) }

// GetData blocks for the next DATA word, lo before hi.
func (f *Frontend) GetData() (uint32, bool) { return f.get(f.data) }

// TryGetFI drains one FI sample without blocking.
func (f *Frontend) TryGetFI() (uint32, bool) {
	select {
	case w := <-f.fi:
		return w, true
	default:
		return 0, false
	}
}

// TryGetData drains one DATA word without blocking, for the spurious
// word consumed during the FI window and for the PWO low path.
func (f *Frontend) TryGetData() (uint32, bool) {
	select {
	case w := <-f.data:
		return w, true
	default:
		return 0, false
	}
}

// TryGetAddr drains one address word without blocking.
func (f *Frontend) TryGetAddr() (uint32, bool) {
	select {
	case w := <-f.addr:
		return w, true
	default:
		return 0, false
	}
}

// put drops the word when the TX FIFO is full; the drivers must never
// stall the engine.
func put(ch chan uint32, w uint32) bool {
	select {
	case ch <- w:
		return true
	default:
		return false
	}
}

// PutISA schedules a 10 bit word for the ISA output window, or the
// single carry bit 0x001 for the carry window.
func (f *Frontend) PutISA(w uint32) bool { return put(f.isaOut, w) }

// PutData schedules one half of the 56 bit DATA output.
func (f *Frontend) PutData(w uint32) bool { return put(f.dataOut, w) }

// PutFI schedules one half of the FI output enable pattern.
func (f *Frontend) PutFI(w uint32) bool { return put(f.fiOut, w) }

// PutIR schedules a 27 symbol IR frame.
func (f *Frontend) PutIR(w uint32) bool { return put(f.irOut, w) }

// Wake forces ISA high to wake the calculator, at least 20us on real
// hardware.
func (f *Frontend) Wake() {
	f.wakeReq.Store(true)
}

// TakeWake consumes a pending wake request, transport side.
func (f *Frontend) TakeWake() bool {
	return f.wakeReq.Swap(false)
}

// Transport side: the sampler feeds and the driver drains below.

// FeedInst pushes one sampled instruction word. The sampler side may
// block until the engine catches up, like a stalled PIO push.
func (f *Frontend) FeedInst(w uint32) { f.inst <- w }

// FeedAddr pushes one sampled address word.
func (f *Frontend) FeedAddr(w uint32) { f.addr <- w }

// FeedData pushes one sampled DATA word.
func (f *Frontend) FeedData(w uint32) { f.data <- w }

// FeedFI pushes one sampled FI word.
func (f *Frontend) FeedFI(w uint32) { f.fi <- w }

// TakeISA drains the ISA driver FIFO.
func (f *Frontend) TakeISA() (uint32, bool) {
	select {
	case w := <-f.isaOut:
		return w, true
	default:
		return 0, false
	}
}

// TakeData drains the DATA driver FIFO.
func (f *Frontend) TakeData() (uint32, bool) {
	select {
	case w := <-f.dataOut:
		return w, true
	default:
		return 0, false
	}
}

// TakeFI drains the FI driver FIFO.
func (f *Frontend) TakeFI() (uint32, bool) {
	select {
	case w := <-f.fiOut:
		return w, true
	default:
		return 0, false
	}
}

// TakeIR drains the IR driver FIFO.
func (f *Frontend) TakeIR() (uint32, bool) {
	select {
	case w := <-f.irOut:
		return w, true
	default:
		return 0, false
	}
}

// FeedCycle pushes one full bus cycle in sampler order: instruction,
// DATA low, address, DATA high, then the FI halves. Test benches and
// transports use this.
func (f *Frontend) FeedCycle(inst, addr, dataLo, dataHi, fiLo, fiHi uint32) {
	f.FeedInst(inst)
	f.FeedData(dataLo)
	f.FeedAddr(addr)
	f.FeedData(dataHi)
	f.FeedFI(fiLo)
	f.FeedFI(fiHi)
}
