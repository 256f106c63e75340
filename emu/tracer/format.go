/*
 * TULIP4041 - Trace line formatting
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

package tracer

import (
	"fmt"
	"strings"

	"github.com/rcornwell/tulip4041/emu/disassemble"
	"github.com/rcornwell/tulip4041/emu/hp41"
	"github.com/rcornwell/tulip4041/emu/settings"
)

// Formatter turns drained records into text lines. It carries the
// cycle continuity, filter and disassembly state between lines.
type Formatter struct {
	set *settings.Settings
	dis *disassemble.Disassembler

	lastCycle uint32
	skipped   bool // a previous record was filtered out

	lastILIn  uint16
	regCopy   [9]byte
	haveRegs  bool
}

func NewFormatter(set *settings.Settings) *Formatter {
	return &Formatter{
		set:      set,
		dis:      disassemble.New(),
		lastILIn: hp41.NoFrame,
	}
}

// Reset drops carried state, on PWO edges.
func (f *Formatter) Reset() {
	f.dis.Reset()
	f.lastCycle = 0
	f.skipped = false
	f.lastILIn = hp41.NoFrame
}

// Blocked applies the settings driven address filters.
func (f *Formatter) Blocked(rec Record) bool {
	switch {
	case !f.set.GetBool(settings.TracerSysLoopOn) && InSysLoop(rec.Addr):
		return true
	case !f.set.GetBool(settings.TracerSysRomOn) && InSysRom(rec.Addr):
		return true
	case !f.set.GetBool(settings.TracerILRomsOn) && InILRom(rec.Addr):
		return true
	}
	return false
}

// Line formats one record. The second result is false when the record
// was filtered out; the next passing record gets the = marker.
func (f *Formatter) Line(rec Record) (string, bool) {
	marker := ' '
	if rec.Cycle != f.lastCycle+1 && rec.Cycle != 0 {
		marker = 'O' // producer dropped records, ring overflow
	}
	f.lastCycle = rec.Cycle

	if f.Blocked(rec) {
		f.skipped = true
		return "", false
	}
	if f.skipped && marker == ' ' {
		marker = '='
		f.skipped = false
	} else if f.skipped {
		f.skipped = false
	}

	inst := rec.Inst & hp41.InstMask
	sync := rec.Inst >> 11

	// split DATA into sign, mantissa, exponent sign and exponent
	dataX := rec.DataLo & 0x000000FF
	dataXS := (rec.DataLo & 0x00000F00) >> 8
	dataM1 := (rec.DataLo & 0xFFFFF000) >> 12
	dataM2 := rec.DataHi & 0x000FFFFF
	dataS := (rec.DataHi & 0x00F00000) >> 20

	var b strings.Builder
	fmt.Fprintf(&b, "%c  %6d  %04X-%d  %X  %03X  ", marker, rec.Cycle, rec.Addr, rec.Bank, sync, inst)
	fmt.Fprintf(&b, "%X.%05X%05X.%X.%02X  ", dataS, dataM2, dataM1, dataXS, dataX)
	if rec.XqInst == 0 {
		b.WriteString("...  ")
	} else {
		fmt.Fprintf(&b, "%03X  ", rec.XqInst&hp41.InstMask)
	}
	fmt.Fprintf(&b, "R%03X  ", rec.RAMSlct)
	carry := 0
	if rec.Carry {
		carry = 1
	}
	fmt.Fprintf(&b, "C%d  ", carry)

	if f.set.GetBool(settings.TracerFI) {
		b.WriteString("FI")
		fi := uint64(rec.FIHi)<<32 | uint64(rec.FILo)
		for i := 0; i < 14; i++ {
			if (fi>>(i*4))&0x7 == 0x7 {
				fmt.Fprintf(&b, "%X", i)
			} else {
				b.WriteByte('-')
			}
		}
		b.WriteString("  ")
	}

	disLen := b.Len() + 20
	if f.set.GetBool(settings.TracerDisasm) {
		line, done := f.dis.Line(inst, sync != 0)
		if !done {
			b.WriteString("...")
		} else {
			b.WriteString(line)
		}
	}
	for b.Len() < disLen {
		b.WriteByte(' ')
	}

	if f.set.GetBool(settings.TracerILRegs) && f.set.GetBool(settings.HPILPlugged) {
		f.ilTrail(&b, rec)
	}
	return b.String(), true
}

// ilTrail appends the HP-IL frame and register delta columns.
func (f *Formatter) ilTrail(b *strings.Builder, rec Record) {
	switch {
	case rec.FrameOut != hp41.NoFrame:
		fmt.Fprintf(b, "  IL> %03X %s", rec.FrameOut, disassemble.ILMnemonic(rec.FrameOut))
	case rec.FrameIn != hp41.NoFrame && rec.FrameIn != f.lastILIn:
		fmt.Fprintf(b, "  IL< %03X %s", rec.FrameIn, disassemble.ILMnemonic(rec.FrameIn))
		f.lastILIn = rec.FrameIn
	default:
		b.WriteString("             ")
	}

	changed := !f.haveRegs
	for i := range rec.ILRegs {
		if f.regCopy[i] != rec.ILRegs[i] {
			changed = true
		}
	}
	if changed {
		b.WriteString("  Reg ")
		for i, r := range rec.ILRegs {
			fmt.Fprintf(b, "%02X", r)
			if f.haveRegs && f.regCopy[i] != r {
				b.WriteString("* ")
			} else {
				b.WriteString("  ")
			}
		}
		f.regCopy = rec.ILRegs
		f.haveRegs = true
	}
}
