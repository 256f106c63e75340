/*
 * TULIP4041 - Bus cycle tracer
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

// Package tracer samples every bus cycle into a lock free ring which
// the round-robin side drains into disassembled text lines. The
// producer never blocks: on a full ring the record drops and the gap
// shows up as a non consecutive cycle number, marked with an O prefix
// on the next drained line. Filtered (skipped) ranges mark the next
// line with =.
package tracer

import (
	"github.com/rcornwell/tulip4041/emu/hp41"
	"github.com/rcornwell/tulip4041/util/ring"
)

// Ring sizing.
const (
	DefaultSize = 5000
	MinSize     = 100
	MaxSize     = 10000

	DefaultPreTrigger = 32
	MaxPreTrigger     = 256
)

// Record is one sampled bus cycle with everything the formatter needs.
type Record struct {
	Cycle   uint32 // cycle counter since the last PWO rise
	DataLo  uint32 // DATA D31..D00
	DataHi  uint32 // DATA D55..D32, right aligned
	FILo    uint32 // FI T0..T31
	FIHi    uint32 // FI T32..T55
	RAMSlct uint16 // selected user memory register
	Addr    uint16 // ISA address
	Inst    uint16 // ISA instruction with SYNC status
	XqInst  uint16 // instruction the cartridge acted on, 0 when none
	FrameIn uint16 // HP-IL frame received, NoFrame when none
	FrameOut uint16 // HP-IL frame sent, NoFrame when none
	Bank    uint8  // resolved bank
	ILRegs  [9]byte
	Carry   bool // carry driven on ISA
}

type Tracer struct {
	buf  *ring.Ring[Record]
	trig trigger
}

// trigger is the pre-trigger window: while armed and not fired,
// records collect in a bounded history that flushes once the start
// address hits.
type trigger struct {
	start   uint16
	end     uint16
	armed   bool
	running bool
	window  []Record
	size    int
}

// New returns a tracer ring of the given capacity, clamped to the
// supported range.
func New(size int) *Tracer {
	if size < MinSize {
		size = MinSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return &Tracer{
		buf:  ring.New[Record](size),
		trig: trigger{size: DefaultPreTrigger},
	}
}

// Push offers one record, cycle engine side, never blocking. A full
// ring gives up its oldest record so the drain always shows the most
// recent cycles; the return value is false when that happened.
func (t *Tracer) Push(rec Record) bool {
	return !t.buf.PushDrop(rec)
}

// Pop drains one record, round-robin side.
func (t *Tracer) Pop() (Record, bool) {
	return t.buf.Pop()
}

// Pending returns the number of queued records.
func (t *Tracer) Pending() int {
	return t.buf.Len()
}

// SetTrigger arms a start/end address trigger with a pre-trigger
// window of n records (clamped to 1..256).
func (t *Tracer) SetTrigger(start, end uint16, n int) {
	if n < 1 {
		n = 1
	}
	if n > MaxPreTrigger {
		n = MaxPreTrigger
	}
	t.trig = trigger{start: start, end: end, armed: true, size: n}
}

// ClearTrigger disarms the trigger; every record passes again.
func (t *Tracer) ClearTrigger() {
	t.trig = trigger{size: DefaultPreTrigger}
}

// Triggered runs a record through the trigger window. The returned
// slice holds records released for formatting: usually just rec, plus
// the buffered pre-trigger history when the trigger fires.
func (t *Tracer) Triggered(rec Record) []Record {
	tr := &t.trig
	if !tr.armed {
		return []Record{rec}
	}
	if tr.running {
		if rec.Addr == tr.end {
			tr.running = false
		}
		return []Record{rec}
	}
	if rec.Addr == tr.start {
		tr.running = true
		out := append(tr.window, rec)
		tr.window = nil
		return out
	}
	// collect pre-trigger history
	tr.window = append(tr.window, rec)
	if len(tr.window) > tr.size {
		tr.window = tr.window[1:]
	}
	return nil
}

// sysLoops are the address windows of the noisy mainframe idle loops.
var sysLoops = [][2]uint16{
	{0x0098, 0x00A1}, // RSTKB and RST05
	{0x0177, 0x0178}, // key debounce delay
	{0x089C, 0x089D}, // BLINK01
	{0x0E9A, 0x0E9E}, // NLT10 wait for key NULL
	{0x0EC9, 0x0ECE}, // NULTST NULL timer
}

// InSysLoop reports whether addr falls in a known system wait loop.
func InSysLoop(addr uint16) bool {
	for _, w := range sysLoops {
		if addr >= w[0] && addr <= w[1] {
			return true
		}
	}
	return false
}

// InSysRom reports whether addr is in the system ROM pages 0..5.
func InSysRom(addr uint16) bool {
	return addr < 0x6000
}

// InILRom reports whether addr is in the IL ROM pages 6 and 7.
func InILRom(addr uint16) bool {
	return addr >= 0x6000 && addr < 0x8000
}

// NoFrame mirrors the queue sentinel for records without IL traffic.
const NoFrame = hp41.NoFrame
