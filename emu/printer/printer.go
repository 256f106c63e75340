/*
 * TULIP4041 - HP82143A printer emulation
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

// Package printer models the HP82143A thermal printer: the 16 bit
// status word read by SELP9_RDPTRN, the print character queue drained
// on the round-robin side, and the key debounce the printer ROM relies
// on when polling status.
package printer

import (
	"github.com/rcornwell/tulip4041/emu/hp41"
	"github.com/rcornwell/tulip4041/emu/settings"
	"github.com/rcornwell/tulip4041/util/ring"
)

// Printer modes in the SMA/SMB field.
const (
	ModeMAN = iota
	ModeNORM
	ModeTRACE
)

// The printer ROM reads status twice per keypress; the key bits clear
// after the second read.
const keyDebounce = 2

// queueSize covers the worst case burst of a PRA of a full alpha
// register plus escape codes.
const queueSize = 256

type Printer struct {
	set       *settings.Settings
	status    uint16
	keyCount  int  // RDPTRN reads until PRT/ADV clear
	advIgnore bool // local paper advance ignored
	queue     *ring.Ring[byte]
}

func New(set *settings.Settings) *Printer {
	p := &Printer{
		set:    set,
		status: hp41.PrtStatusDefault,
		queue:  ring.New[byte](queueSize),
	}
	p.SetMode(int(set.Get(settings.PrtMode)))
	if !set.GetBool(settings.PrtPaper) {
		p.status |= hp41.PrtOOPMask
	}
	return p
}

// Status returns the current status word without side effects.
func (p *Printer) Status() uint16 {
	return p.status
}

// ReadStatus returns the status word for SELP9_RDPTRN and advances the
// key debounce; after the configured number of reads the PRT and ADV
// key bits drop.
func (p *Printer) ReadStatus() uint16 {
	status := p.status
	if p.keyCount > 0 {
		p.keyCount--
		if p.keyCount == 0 {
			p.status &^= hp41.PrtPRTMask | hp41.PrtADVMask
		}
	}
	return status
}

// Busy reports whether the printer should answer SELP9_BUSY with carry:
// powered on with a full print queue.
func (p *Printer) Busy() bool {
	return p.PowerOn() && p.queue.Full()
}

// PowerOn reports the printer power setting, SELP9_POWON.
func (p *Printer) PowerOn() bool {
	return p.set.GetBool(settings.PrtPower)
}

// Valid reports whether the status word is valid, SELP9_VALID. Always
// true while powered.
func (p *Printer) Valid() bool {
	return p.PowerOn()
}

// AcceptChar takes one byte from SELP9_PRINTC. Control codes update the
// status word; every byte still goes into the print queue. Returns
// false when the queue is full and the byte was dropped.
func (p *Printer) AcceptChar(c byte) bool {
	switch {
	case c == 0xE0: // EOL, left justified
		p.status &^= hp41.PrtSCOMask | hp41.PrtTEOMask
		p.status |= hp41.PrtEOLMask
	case c == 0xE8: // EOL, right justified
		p.status &^= hp41.PrtSCOMask
		p.status |= hp41.PrtTEOMask | hp41.PrtEOLMask
	case c >= 0xD0 && c <= 0xD7:
		// set DWM/SCO/LCA from the low three bits
		p.status &^= hp41.PrtDWMMask | hp41.PrtSCOMask | hp41.PrtLCAMask
		p.status |= uint16(c&0x07) << 5
	case c == 0xFE:
		p.advIgnore = false
	case c == 0xFF:
		p.advIgnore = true
	}

	ok := p.queue.Push(c)
	p.updateBufferEmpty()
	return ok
}

// Pop drains one queued print character, round-robin side.
func (p *Printer) Pop() (byte, bool) {
	c, ok := p.queue.Pop()
	p.updateBufferEmpty()
	return c, ok
}

func (p *Printer) updateBufferEmpty() {
	if p.queue.Empty() {
		p.status |= hp41.PrtBEMask
	} else {
		p.status &^= hp41.PrtBEMask
	}
}

// AdvIgnore reports whether local paper advance is being ignored.
func (p *Printer) AdvIgnore() bool {
	return p.advIgnore
}

// PressPrint latches the PRINT key into status and arms the debounce.
func (p *Printer) PressPrint() {
	p.status |= hp41.PrtPRTMask
	p.keyCount = keyDebounce
}

// PressAdv latches the PAPER ADVANCE key.
func (p *Printer) PressAdv() {
	p.status |= hp41.PrtADVMask
	p.keyCount = keyDebounce
}

// TogglePaper flips the out-of-paper state.
func (p *Printer) TogglePaper() {
	p.status ^= hp41.PrtOOPMask
	p.set.SetBool(settings.PrtPaper, p.status&hp41.PrtOOPMask == 0)
}

// SetMode sets MAN, NORM or TRACE in the SMA/SMB field.
func (p *Printer) SetMode(mode int) {
	p.status &^= hp41.PrtSMAMask | hp41.PrtSMBMask
	switch mode {
	case ModeNORM:
		p.status |= hp41.PrtSMBMask
	case ModeTRACE:
		p.status |= hp41.PrtSMAMask
	}
	p.set.Set(settings.PrtMode, uint16(mode))
}

// Mode returns the current mode from the SMA/SMB field.
func (p *Printer) Mode() int {
	switch {
	case p.status&hp41.PrtSMAMask != 0:
		return ModeTRACE
	case p.status&hp41.PrtSMBMask != 0:
		return ModeNORM
	default:
		return ModeMAN
	}
}

// SetPower switches printer power. Power up restores the idle status.
func (p *Printer) SetPower(on bool) {
	p.set.SetBool(settings.PrtPower, on)
	if on {
		p.status |= hp41.PrtIDLMask
		p.updateBufferEmpty()
	}
}
