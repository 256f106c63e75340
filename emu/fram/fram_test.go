/*
 * TULIP4041 - persistent region test cases.
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

package fram

import (
	"path/filepath"
	"testing"

	"github.com/rcornwell/tulip4041/emu/settings"
)

func TestInitMagic(t *testing.T) {
	f := Memory()
	if f.IsInitialised() {
		t.Error("fresh region reports initialised")
	}
	f.SetInitialised()
	if !f.IsInitialised() {
		t.Error("init magic not readable back")
	}
}

func TestXMemRegisters(t *testing.T) {
	f := Memory()
	f.WriteXMem(0xA0, 0x89ABCDE, 0x1234567)
	lo, hi := f.ReadXMem(0xA0)
	if lo != 0x89ABCDE || hi != 0x1234567 {
		t.Errorf("register readback got %08X %08X", lo, hi)
	}

	// out of range registers read as zero
	lo, hi = f.ReadXMem(XMemRegs)
	if lo != 0 || hi != 0 {
		t.Error("out of range register not zero")
	}
}

func TestSettingsStore(t *testing.T) {
	f := Memory()
	var v [settings.NumItems]uint16
	for i := range v {
		v[i] = uint16(i * 3)
	}
	if err := f.WriteSettings(v); err != nil {
		t.Fatal(err)
	}
	got, err := f.ReadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got != v {
		t.Error("settings vector did not survive the store")
	}
}

func TestPageMapStore(t *testing.T) {
	f := Memory()
	buf := make([]byte, 400)
	for i := range buf {
		buf[i] = byte(i)
	}
	if err := f.WritePageMap(buf); err != nil {
		t.Fatal(err)
	}
	got := f.ReadPageMap(len(buf))
	for i := range buf {
		if got[i] != buf[i] {
			t.Fatalf("page map byte %d got %02X expected %02X", i, got[i], buf[i])
		}
	}

	if err := f.WritePageMap(make([]byte, RomMapSpace+1)); err == nil {
		t.Error("oversized page map accepted")
	}
}

func TestRangeErrors(t *testing.T) {
	f := Memory()
	if err := f.Write(Size-1, []byte{1, 2}); err == nil {
		t.Error("write over the end accepted")
	}
	if err := f.Read(-1, make([]byte, 1)); err == nil {
		t.Error("negative read accepted")
	}
}

// A file backed region persists over reopen.
func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.fram")
	f, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	f.SetInitialised()
	f.WriteXMem(1, 0xDEAD, 0xBEEF)
	if err := f.Sync(); err != nil {
		t.Fatal(err)
	}

	f2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if !f2.IsInitialised() {
		t.Error("init magic lost over reopen")
	}
	lo, hi := f2.ReadXMem(1)
	if lo != 0xDEAD || hi != 0xBEEF {
		t.Errorf("register lost over reopen: %08X %08X", lo, hi)
	}
}
