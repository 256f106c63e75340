/*
 * TULIP4041 - HP82143A printer test cases.
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

package printer

import (
	"testing"

	"github.com/rcornwell/tulip4041/emu/hp41"
	"github.com/rcornwell/tulip4041/emu/settings"
)

func newPrinter() *Printer {
	set := settings.New(nil, nil)
	set.SetDefault()
	set.SetBool(settings.PrtPower, true)
	return New(set)
}

// The ADV key bit survives two status reads and clears on the third.
func TestAdvDebounce(t *testing.T) {
	p := newPrinter()
	p.PressAdv()

	if p.ReadStatus()&hp41.PrtADVMask == 0 {
		t.Error("first read lost the ADV bit")
	}
	if p.ReadStatus()&hp41.PrtADVMask == 0 {
		t.Error("second read lost the ADV bit")
	}
	if p.ReadStatus()&hp41.PrtADVMask != 0 {
		t.Error("third read still reports ADV")
	}
}

func TestPrintDebounce(t *testing.T) {
	p := newPrinter()
	p.PressPrint()
	p.ReadStatus()
	p.ReadStatus()
	if p.Status()&hp41.PrtPRTMask != 0 {
		t.Error("PRT bit not cleared after debounce")
	}
}

func TestModeField(t *testing.T) {
	tests := []struct {
		mode int
		sma  bool
		smb  bool
	}{
		{ModeMAN, false, false},
		{ModeNORM, false, true},
		{ModeTRACE, true, false},
	}
	for _, test := range tests {
		p := newPrinter()
		p.SetMode(test.mode)
		if got := p.Status()&hp41.PrtSMAMask != 0; got != test.sma {
			t.Errorf("mode %d SMA got %v", test.mode, got)
		}
		if got := p.Status()&hp41.PrtSMBMask != 0; got != test.smb {
			t.Errorf("mode %d SMB got %v", test.mode, got)
		}
		if p.Mode() != test.mode {
			t.Errorf("mode read back got %d expected %d", p.Mode(), test.mode)
		}
	}
}

// Control characters update the status word and still queue.
func TestCharSideEffects(t *testing.T) {
	p := newPrinter()

	p.AcceptChar(0xD7) // DWM, SCO, LCA all on
	status := p.Status()
	if status&(hp41.PrtDWMMask|hp41.PrtSCOMask|hp41.PrtLCAMask) !=
		hp41.PrtDWMMask|hp41.PrtSCOMask|hp41.PrtLCAMask {
		t.Errorf("D7 did not set DWM/SCO/LCA: %04X", status)
	}

	p.AcceptChar(0xE0) // left EOL: SCO and TEO clear, EOL set
	status = p.Status()
	if status&hp41.PrtSCOMask != 0 || status&hp41.PrtTEOMask != 0 {
		t.Errorf("E0 left SCO/TEO set: %04X", status)
	}
	if status&hp41.PrtEOLMask == 0 {
		t.Errorf("E0 did not set EOL: %04X", status)
	}

	p.AcceptChar(0xE8) // right EOL: TEO and EOL set
	status = p.Status()
	if status&hp41.PrtTEOMask == 0 || status&hp41.PrtEOLMask == 0 {
		t.Errorf("E8 did not set TEO/EOL: %04X", status)
	}

	p.AcceptChar(0xFF)
	if !p.AdvIgnore() {
		t.Error("FF did not set advance ignore")
	}
	p.AcceptChar(0xFE)
	if p.AdvIgnore() {
		t.Error("FE did not clear advance ignore")
	}

	// all five characters went to the queue
	for i := 0; i < 5; i++ {
		if _, ok := p.Pop(); !ok {
			t.Fatal("queued character missing")
		}
	}
}

func TestBufferEmptyBit(t *testing.T) {
	p := newPrinter()
	if p.Status()&hp41.PrtBEMask == 0 {
		t.Error("buffer empty bit clear on idle printer")
	}
	p.AcceptChar('A')
	if p.Status()&hp41.PrtBEMask != 0 {
		t.Error("buffer empty bit set with a queued character")
	}
	p.Pop()
	if p.Status()&hp41.PrtBEMask == 0 {
		t.Error("buffer empty bit clear after drain")
	}
}

func TestBusyOnFullQueue(t *testing.T) {
	p := newPrinter()
	if p.Busy() {
		t.Error("busy with an empty queue")
	}
	for !p.queue.Full() {
		p.AcceptChar('X')
	}
	if !p.Busy() {
		t.Error("not busy with a full queue")
	}
	if p.AcceptChar('Y') {
		t.Error("accept on a full queue must report the drop")
	}
}

func TestPaperToggle(t *testing.T) {
	p := newPrinter()
	p.TogglePaper()
	if p.Status()&hp41.PrtOOPMask == 0 {
		t.Error("toggle did not set out-of-paper")
	}
	p.TogglePaper()
	if p.Status()&hp41.PrtOOPMask != 0 {
		t.Error("toggle did not clear out-of-paper")
	}
}

// Each parity subset of the IR payload must come out even.
func TestFramePayloadParity(t *testing.T) {
	masks := []struct {
		data  byte
		check uint16 // parity bit position in the payload
	}{
		{0x78, 0x800},
		{0xE6, 0x400},
		{0xD5, 0x200},
		{0x8B, 0x100},
	}
	for b := 0; b < 256; b++ {
		payload := FramePayload(byte(b))
		if payload&0xFF != uint16(b) {
			t.Fatalf("payload %02X lost its data bits", b)
		}
		for _, m := range masks {
			bits := uint16(byte(b) & m.data)
			if payload&m.check != 0 {
				bits |= 0x100
			}
			if parityWord(bits) != 0 {
				t.Errorf("byte %02X subset %02X has odd weight", b, m.data)
			}
		}
	}
}

func parityWord(v uint16) int {
	count := 0
	for v != 0 {
		count += int(v & 1)
		v >>= 1
	}
	return count & 1
}

// The IR frame is three start bits and twelve half bit pairs.
func TestEncodeFrame(t *testing.T) {
	for _, b := range []byte{0x00, 0x41, 0xFF} {
		frame := EncodeFrame(b)
		if frame>>29 != 0b111 {
			t.Errorf("frame %02X start bits got %03b", b, frame>>29)
		}
		payload := FramePayload(b)
		for i := 0; i < 12; i++ {
			pair := (frame >> (27 - 2*i)) & 0b11
			bit := (payload >> (11 - i)) & 1
			switch {
			case bit == 1 && pair != 0b01:
				t.Errorf("frame %02X bit %d: one encoded as %02b", b, i, pair)
			case bit == 0 && pair != 0b10:
				t.Errorf("frame %02X bit %d: zero encoded as %02b", b, i, pair)
			}
		}
		if frame&0x1F != 0 {
			t.Errorf("frame %02X low bits not aligned: %08X", b, frame)
		}
	}
}
