/*
 * TULIP4041 - HP-IL register model test cases.
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

package hpil

import (
	"testing"

	"github.com/rcornwell/tulip4041/emu/hp41"
)

func TestResetPresets(t *testing.T) {
	h := New()
	if h.Reg(0) != 0x81 {
		t.Errorf("R0 after reset got %02X expected 81", h.Reg(0))
	}
	for _, r := range []int{4, 5, 6} {
		if h.Reg(r) != 0x01 {
			t.Errorf("R%d after reset got %02X expected 01", r, h.Reg(r))
		}
	}
}

// Master clear: R1 = E1, FLGENB drops, next DOE is a fresh transfer.
func TestMasterClear(t *testing.T) {
	h := New()
	h.reg[1] = 0xFF
	h.reg[8] = 0xFF

	h.WriteReg(0, 0x01)

	if h.Reg(1) != 0xE1 {
		t.Errorf("R1 after MCL got %02X expected E1", h.Reg(1))
	}
	if h.Reg(8)&R1WFLGENB != 0 {
		t.Error("FLGENB still set after MCL")
	}
	if h.Reg(0)&(R0MCL|R0CLI) != 0 {
		t.Error("MCL and CLIFCR must self clear")
	}

	// fresh DOE while listening sets FRAV as a new transfer
	h.reg[0] = R0LA
	h.in.Push(0x042)
	h.ProcessFrame()
	if h.Reg(1)&(R1FRAV|R1ORAV) != R1FRAV|R1ORAV {
		t.Errorf("R1 after fresh DOE got %02X expected FRAV|ORAV set", h.Reg(1))
	}
	if h.Reg(2) != 0x42 {
		t.Errorf("R2 after fresh DOE got %02X expected 42", h.Reg(2))
	}
}

func TestClearIFCR(t *testing.T) {
	h := New()
	h.reg[1] |= R1IFCR
	h.WriteReg(0, 0x02)
	if h.Reg(1)&R1IFCR != 0 {
		t.Error("CLIFCR did not clear IFCR")
	}
}

// Writing the data register composes the frame from R1W control bits.
func TestDataWriteFrame(t *testing.T) {
	tests := []struct {
		r1w   byte
		data  byte
		frame uint16
	}{
		{0x00, 0x42, 0x042},
		{0x80, 0x42, 0x442}, // CO3 -> frame bit 10
		{0xE0, 0xFF, 0x7FF},
		{0x20, 0x00, 0x100},
	}
	for _, test := range tests {
		h := New()
		h.reg[8] = test.r1w
		frame := h.WriteReg(2, test.data)
		if frame != test.frame {
			t.Errorf("R2 write %02X/%02X got frame %03X expected %03X",
				test.r1w, test.data, frame, test.frame)
		}
		out, ok := h.PopOut()
		if !ok || out != test.frame {
			t.Errorf("outbound queue got %03X expected %03X", out, test.frame)
		}
		if h.Reg(1)&(R1FRAV|R1FRNS|R1ORAV) != 0 {
			t.Error("R2 write must clear FRAV, FRNS and ORAV")
		}
	}
}

// Talker compare: echo match sets only ORAV, mismatch raises FRNS.
func TestTalkerEcho(t *testing.T) {
	h := New()
	h.reg[0] = R0TA
	h.reg[8] = 0x00
	h.WriteReg(2, 0x55) // sends frame 055

	h.in.Push(0x055)
	h.ProcessFrame()
	if h.Reg(1)&R1FRNS != 0 {
		t.Error("matching echo must not set FRNS")
	}
	if h.Reg(1)&R1ORAV == 0 {
		t.Error("matching echo must set ORAV")
	}

	h.WriteReg(2, 0x55)
	h.in.Push(0x056)
	h.ProcessFrame()
	if h.Reg(1)&R1FRNS == 0 {
		t.Error("mismatching echo must set FRNS")
	}
}

// DOE with neither talker nor listener is retransmitted.
func TestDOEPassThrough(t *testing.T) {
	h := New()
	h.reg[0] = 0
	h.in.Push(0x0AA)
	h.ProcessFrame()
	out, ok := h.PopOut()
	if !ok || out != 0x0AA {
		t.Errorf("pass through got %03X/%v expected 0AA", out, ok)
	}
}

func TestIFCSetsIFCR(t *testing.T) {
	h := New()
	h.in.Push(hp41.FrameIFC)
	h.ProcessFrame()
	if h.Reg(1)&R1IFCR == 0 {
		t.Error("IFC frame must set IFCR")
	}
}

// SRQ bit follows the S bit of DOE and IDY frames.
func TestSRQFollowsFrame(t *testing.T) {
	h := New()
	h.reg[0] = R0LA
	h.in.Push(0x1AA)
	h.ProcessFrame()
	if h.Reg(1)&R1SRQR == 0 {
		t.Error("DOE with S bit must set SRQR")
	}
	h.in.Push(0x0AA)
	h.ProcessFrame()
	if h.Reg(1)&R1SRQR != 0 {
		t.Error("DOE without S bit must clear SRQR")
	}
}

// The controller side CMD/RFC handshake lives in the frame pump.
func TestCmdRfcHandshake(t *testing.T) {
	h := New()
	h.reg[0] = R0CA

	h.PushIn(0x401) // GTL command
	if h.PendingIn() {
		t.Error("CMD must not reach the engine directly")
	}
	out, ok := h.PopOut()
	if !ok || out != hp41.FrameRFC {
		t.Errorf("expected RFC answer, got %03X/%v", out, ok)
	}

	h.PushIn(hp41.FrameRFC)
	frame, ok := h.ProcessFrame()
	if !ok || frame != 0x401 {
		t.Errorf("RFC must substitute the remembered CMD, got %03X/%v", frame, ok)
	}
}

// Reading the data register moves the received control bits to R1W and
// clears FRAV/FRNS.
func TestReadDataRegister(t *testing.T) {
	h := New()
	h.reg[0] = R0TA | R0LA // scope mode takes any frame
	h.in.Push(0x742)       // control bits 111
	h.ProcessFrame()

	if got := h.ReadReg(2); got != 0x42 {
		t.Errorf("R2 read got %02X expected 42", got)
	}
	if h.Reg(8)&R1WCO != 0xE0 {
		t.Errorf("R1W control bits got %02X expected E0", h.Reg(8)&R1WCO)
	}
	if h.Reg(1)&(R1FRAV|R1FRNS) != 0 {
		t.Error("R2 read must clear FRAV and FRNS")
	}
}

func TestFIPattern(t *testing.T) {
	h := New()
	h.reg[1] = R1ORAV | R1FRAV | R1IFCR

	// flags gated off without FLGENB
	lo, hi := h.FIPattern(0, 0)
	if lo != 0 || hi != 0 {
		t.Errorf("flags leaked with FLGENB clear: %08X %08X", lo, hi)
	}

	h.reg[8] = R1WFLGENB
	lo, hi = h.FIPattern(0, 0)
	if hi&hp41.FI10 == 0 || hi&hp41.FI08 == 0 {
		t.Errorf("ORAV/FRAV nibbles missing: %08X", hi)
	}
	if hi&hp41.FI09 != 0 {
		t.Errorf("FRNS nibble set without FRNS: %08X", hi)
	}
	if lo&hp41.FI06 == 0 {
		t.Errorf("IFCR nibble missing: %08X", lo)
	}
	if lo&hp41.FI07 != 0 {
		t.Errorf("SRQR nibble set without SRQR: %08X", lo)
	}
}

func TestAutoIDYArmed(t *testing.T) {
	h := New()
	h.reg[0] = R0CA
	if h.AutoIDYArmed() {
		t.Error("armed without the R3 enable bit")
	}
	h.reg[3] = R3AutoIDY
	if !h.AutoIDYArmed() {
		t.Error("not armed with CA and the R3 enable bit")
	}
}
