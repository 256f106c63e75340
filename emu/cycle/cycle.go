/*
 * TULIP4041 - Bus cycle engine
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

// Package cycle runs the bus cycle engine: one iteration per HP-41 bus
// cycle, staged by the phase at which each input word arrives. The
// blocking FIFO reads are the phase synchronisation; everything decoded
// in a cycle must respond inside that same cycle. The engine owns all
// mutable emulation state while PWO is high and shares it with the
// round-robin side only through lock free rings.
package cycle

import (
	"sync/atomic"

	"github.com/rcornwell/tulip4041/emu/busfront"
	"github.com/rcornwell/tulip4041/emu/hp41"
	"github.com/rcornwell/tulip4041/emu/hpil"
	"github.com/rcornwell/tulip4041/emu/pagemap"
	"github.com/rcornwell/tulip4041/emu/printer"
	"github.com/rcornwell/tulip4041/emu/settings"
	"github.com/rcornwell/tulip4041/emu/tracer"
	"github.com/rcornwell/tulip4041/emu/xmem"
	"github.com/rcornwell/tulip4041/util/ring"
)

// Selected peripheral states. None hands the bus back to the NUT.
const (
	selNone    = -1
	selPrinter = 9
)

type Engine struct {
	bus   *busfront.Frontend
	set   *settings.Settings
	pages *pagemap.Map
	prt   *printer.Printer
	il    *hpil.HPIL
	xm    *xmem.Memory
	trace *tracer.Tracer

	// Wand byte queue, filled on the round-robin side.
	wand       *ring.Ring[uint16]
	wandCached uint16

	cycle uint32 // cycle counter, resets on PWO rise

	selp  int    // selected peripheral after SELPn
	ilReg int    // HP-IL register latched by SELP0..7
	prph  uint16 // peripheral latched by PRPHSLCT

	// deferred work inside one cycle
	readPending  bool // READDATA waits for the high DATA push
	writePending bool // WRITDATA captures both DATA halves
	printcWait   bool // SELP9_PRINTC byte arrives with DATA low
	ilWriteWait  bool // HPIL_p=C register write waits for DATA low

	// FI pattern computed in stage E for the next cycle
	fiLo uint32
	fiHi uint32

	stop atomic.Bool
}

func New(bus *busfront.Frontend, set *settings.Settings, pages *pagemap.Map,
	prt *printer.Printer, il *hpil.HPIL, xm *xmem.Memory, trace *tracer.Tracer) *Engine {
	return &Engine{
		bus:        bus,
		set:        set,
		pages:      pages,
		prt:        prt,
		il:         il,
		xm:         xm,
		trace:      trace,
		wand:       ring.New[uint16](64),
		wandCached: hp41.NoFrame,
		selp:       selNone,
	}
}

// Wand returns the Wand byte queue for the round-robin side.
func (e *Engine) Wand() *ring.Ring[uint16] {
	return e.wand
}

// Cycles returns the cycle count since the last PWO rise.
func (e *Engine) Cycles() uint32 {
	return atomic.LoadUint32(&e.cycle)
}

// Stop makes Run return after the current cycle.
func (e *Engine) Stop() {
	e.stop.Store(true)
}

// Run is the engine loop, one dedicated goroutine (core 1). It only
// returns after Stop.
func (e *Engine) Run() {
	for !e.stop.Load() {
		if !e.bus.PWO() {
			e.powerUp()
		}
		e.Cycle()
	}
}

// powerUp waits out the sleep and resets per-wake state on the PWO
// rising edge.
func (e *Engine) powerUp() {
	e.bus.WaitPWO()
	atomic.StoreUint32(&e.cycle, 0)
	e.pages.ResetBanks()
	e.selp = selNone
	e.prph = 0
	e.readPending = false
	e.writePending = false
	e.printcWait = false
	e.ilWriteWait = false
	e.fiLo = 0
	e.fiHi = 0
}

// Cycle processes one bus cycle. Exported for the test benches; the
// normal path is Run.
func (e *Engine) Cycle() {
	rec := tracer.Record{
		FrameIn:  hp41.NoFrame,
		FrameOut: hp41.NoFrame,
	}

	// Stage A: post SYNC, the instruction word is complete.
	instWord, ok := e.bus.GetInst()
	if !ok {
		e.partialTrace(&rec)
		return
	}
	rec.Cycle = atomic.AddUint32(&e.cycle, 1) - 1
	// keep the full sampler word: bit 11 is SYNC, bit 10 the msb copy,
	// and the decode constants carry both
	inst := uint16(instWord) & 0xFFF
	sync := instWord&hp41.SyncBit != 0
	rec.Inst = inst

	// Scheduled FI pattern from the previous stage E goes out first,
	// it must be on the bus by T0.
	if e.set.GetBool(settings.FIDriveEnabled) && (e.fiLo != 0 || e.fiHi != 0) {
		e.bus.PutFI(e.fiLo)
		e.bus.PutFI(e.fiHi)
	}

	carry := e.stageA(inst, sync, &rec)
	if carry {
		e.bus.PutISA(0x001)
		rec.Carry = true
	}

	// Stage C: DATA low half at phase 31.
	dataLo, ok := e.bus.GetData()
	if !ok {
		e.partialTrace(&rec)
		return
	}
	rec.DataLo = dataLo
	e.stageC(inst, dataLo, &rec)

	// Stage D: the ISA address is complete at phase 32.
	addrWord, ok := e.bus.GetAddr()
	if !ok {
		e.partialTrace(&rec)
		return
	}
	addr := uint16(addrWord)
	rec.Addr = addr
	e.stageD(inst, addr, &rec)

	// Stage E: DATA high half after T32.
	dataHi, ok := e.bus.GetData()
	if !ok {
		e.partialTrace(&rec)
		return
	}
	rec.DataHi = dataHi & 0xFFFFFF
	e.stageE(inst, rec.DataHi, &rec)

	// FI samples, when the hardware traces them.
	if fi, ok := e.bus.TryGetFI(); ok {
		rec.FILo = fi
	} else {
		rec.FILo = e.fiLo
	}
	if fi, ok := e.bus.TryGetFI(); ok {
		rec.FIHi = fi
	} else {
		rec.FIHi = e.fiHi
	}

	rec.RAMSlct = e.xm.Selected()
	rec.ILRegs = e.il.Regs()
	e.trace.Push(rec)
}

// partialTrace records what a PWO interrupted cycle managed to sample.
func (e *Engine) partialTrace(rec *tracer.Record) {
	// drain a possibly pending address word so the samplers restart clean
	if w, ok := e.bus.TryGetAddr(); ok {
		rec.Addr = uint16(w)
	}
	rec.RAMSlct = e.xm.Selected()
	rec.ILRegs = e.il.Regs()
	e.trace.Push(*rec)
}

// stageA decodes the instruction and produces the immediate responses:
// register data pushes and the carry. Returns whether carry goes out.
func (e *Engine) stageA(inst uint16, sync bool, rec *tracer.Record) bool {
	carry := false

	// READDATA answers from the register cache; the high half follows
	// in stage C once the drivers are past the low window.
	if inst == hp41.InstREADDATA {
		switch {
		case e.xm.Ours():
			rec.XqInst = inst
			e.bus.PutData(e.xm.CacheLo())
			e.readPending = true
		case e.wandSelected():
			rec.XqInst = inst
			e.bus.PutData(uint32(e.wandCached) & 0xFF)
			e.bus.PutData(0)
			e.wandCached = hp41.NoFrame
		}
	}

	if inst == hp41.InstWRITDATA && e.xm.Ours() {
		rec.XqInst = inst
		e.writePending = true
	}

	if inst == hp41.InstRAMSLCT {
		// flush the cache now; the new register address arrives with
		// the DATA low bits in stage C
		e.xm.Flush()
	}

	// Wand flag polls.
	if e.set.GetBool(settings.HP82153AEnabled) {
		switch inst {
		case hp41.InstPBSY, hp41.InstWNDB:
			if e.wandCached != hp41.NoFrame || !e.wand.Empty() {
				rec.XqInst = inst
				carry = true
			}
		}
	}

	// HP82143A printer sub-protocol.
	if e.set.GetBool(settings.HP82143AEnabled) {
		switch inst {
		case hp41.InstSELP9:
			rec.XqInst = inst
			e.selp = selPrinter
		case hp41.SELP9BUSY:
			if e.selp == selPrinter {
				rec.XqInst = inst
				carry = e.prt.Busy()
				e.selp = selNone
			}
		case hp41.SELP9POWON:
			if e.selp == selPrinter {
				rec.XqInst = inst
				carry = e.prt.PowerOn()
				e.selp = selNone
			}
		case hp41.SELP9VALID:
			if e.selp == selPrinter {
				rec.XqInst = inst
				carry = e.prt.Valid()
				e.selp = selNone
			}
		case hp41.SELP9RDPTRN:
			if e.selp == selPrinter {
				rec.XqInst = inst
				status := e.prt.ReadStatus()
				// D0..D32 are zero, the status lands in D33..D55
				e.bus.PutData(0)
				e.bus.PutData(uint32(status) << 1)
			}
		case hp41.SELP9PRINTC:
			if e.selp == selPrinter {
				rec.XqInst = inst
				e.printcWait = true // byte arrives with DATA low
			}
		}
	}

	// HP-IL register sub-protocol after SELP0..7.
	if e.set.GetBool(settings.HP82160AEnabled) {
		switch {
		case sync && inst&hp41.SelpMask == hp41.SelpMatch:
			rec.XqInst = inst
			e.selp = int(inst&hp41.SelpRegMask) >> 6
			e.ilReg = e.selp
		case e.ilSelected() && !sync && inst&hp41.ILReadMask == hp41.ILReadMatch:
			// C=HPIL_p returns the register byte in the DATA low bits
			rec.XqInst = inst
			e.bus.PutData(uint32(e.il.ReadReg(e.ilReg)))
			e.bus.PutData(0)
		case e.ilSelected() && !sync && inst&0x003 == 0x001:
			// HPIL_p=literal, the value sits in the instruction word
			rec.XqInst = inst
			rec.FrameOut = e.il.WriteReg(e.selp, byte((inst&0x3FC)>>2))
			e.selp = selNone
		case e.ilSelected() && !sync && inst&0x003 == 0x003:
			// third word of the sequence, always hands back control
			rec.XqInst = inst
			e.selp = selNone
		case sync && inst&hp41.ILWriteMask == hp41.ILWriteMatch:
			// HPIL_p=C takes the byte from the DATA low bits
			rec.XqInst = inst
			e.ilReg = int(inst&hp41.SelpRegMask) >> 6
			e.ilWriteWait = true
		}
	}

	return carry
}

func (e *Engine) wandSelected() bool {
	return e.set.GetBool(settings.HP82153AEnabled) && e.prph == hp41.PrphWand
}

func (e *Engine) ilSelected() bool {
	return e.selp >= 0 && e.selp <= 7
}

// stageC resolves every action that needs the DATA low bits.
func (e *Engine) stageC(inst uint16, dataLo uint32, rec *tracer.Record) {
	if e.writePending {
		e.xm.StoreLo(dataLo)
	}
	if e.readPending {
		e.bus.PutData(e.xm.CacheHi())
		e.readPending = false
	}

	if e.printcWait {
		e.printcWait = false
		if e.selp == selPrinter && e.set.GetBool(settings.HP82143AEnabled) {
			e.prt.AcceptChar(byte(dataLo))
			e.selp = selNone
		}
	}

	if e.ilWriteWait {
		e.ilWriteWait = false
		rec.FrameOut = e.il.WriteReg(e.ilReg, byte(dataLo))
	}

	switch inst {
	case hp41.InstRAMSLCT:
		rec.XqInst = inst
		e.xm.Select(uint16(dataLo) & 0x3FF)
		e.prph = 0 // RAMSLCT deselects any peripheral
	case hp41.InstPRPHSLCT:
		rec.XqInst = inst
		e.prph = uint16(dataLo) & 0x3FF
	case hp41.SELP9RTNCPU:
		if e.selp == selPrinter {
			rec.XqInst = inst
			e.selp = selNone
		}
	case hp41.InstWROM:
		if e.set.GetBool(settings.QROMEnabled) {
			rec.XqInst = inst
			wromAddr := uint16((dataLo & 0x0FFFF000) >> 12)
			e.pages.Write(wromAddr, uint16(dataLo)&hp41.InstMask)
		}
	}
}

// stageD uses the now complete address: bank switching and the ROM
// word answer on ISA.
func (e *Engine) stageD(inst uint16, addr uint16, rec *tracer.Record) {
	page := hp41.Page(addr)

	if e.set.GetBool(settings.BankswitchEnabled) {
		bank := 0
		switch inst {
		case hp41.InstENBANK1:
			bank = 1
		case hp41.InstENBANK2:
			bank = 2
		case hp41.InstENBANK3:
			bank = 3
		case hp41.InstENBANK4:
			bank = 4
		}
		if bank != 0 {
			rec.XqInst = inst
			e.pages.SwitchBank(page, bank)
		}
	}

	rec.Bank = uint8(e.pages.CurrentBank(page))

	if e.set.GetBool(settings.ROMEnabled) && e.set.GetBool(settings.IsaDriveEnabled) {
		if word, ok := e.pages.Read(addr); ok {
			e.bus.PutISA(uint32(word))
		}
	}
}

// stageE completes deferred writes, takes one received HP-IL frame and
// recomputes the FI pattern for the next cycle.
func (e *Engine) stageE(inst uint16, dataHi uint32, rec *tracer.Record) {
	if e.writePending {
		e.xm.StoreHi(dataHi)
		e.writePending = false
	}

	// Wand queue feeds the cache and the attention flags.
	if e.set.GetBool(settings.HP82153AEnabled) {
		if e.wand.Empty() && e.wandCached == hp41.NoFrame {
			e.fiLo &= hp41.FI00Off & hp41.FI02Off
		} else {
			e.fiLo |= hp41.FI00 | hp41.FI02
			if e.wandCached == hp41.NoFrame {
				if b, ok := e.wand.Pop(); ok {
					e.wandCached = b
				}
			}
		}
	}

	// One pending incoming HP-IL frame per cycle.
	if e.set.GetBool(settings.HP82160AEnabled) && e.il.PendingIn() {
		if frame, ok := e.il.ProcessFrame(); ok {
			rec.FrameIn = frame
		}
	}

	e.fiLo, e.fiHi = e.il.FIPattern(e.fiLo, e.fiHi)
}
