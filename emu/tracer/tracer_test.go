/*
 * TULIP4041 - tracer test cases.
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
	"strings"
	"testing"

	"github.com/rcornwell/tulip4041/emu/hp41"
	"github.com/rcornwell/tulip4041/emu/settings"
	"github.com/rcornwell/tulip4041/util/ring"
)

func newFormatterAllOn() *Formatter {
	set := settings.New(nil, nil)
	set.SetBool(settings.TracerSysRomOn, true)
	set.SetBool(settings.TracerILRomsOn, true)
	set.SetBool(settings.TracerSysLoopOn, true)
	set.SetBool(settings.TracerDisasm, true)
	return NewFormatter(set)
}

func record(cycle uint32, addr uint16, inst uint16) Record {
	return Record{
		Cycle:    cycle,
		Addr:     addr,
		Inst:     inst,
		FrameIn:  hp41.NoFrame,
		FrameOut: hp41.NoFrame,
	}
}

// Cycle numbers drained from the ring must increase strictly.
func TestCycleMonotonic(t *testing.T) {
	tr := New(MinSize)
	for i := uint32(1); i <= 300; i++ {
		tr.Push(record(i, 0x8000, 0))
	}
	last := uint32(0)
	for {
		rec, ok := tr.Pop()
		if !ok {
			break
		}
		if rec.Cycle <= last {
			t.Fatalf("cycle %d after %d", rec.Cycle, last)
		}
		last = rec.Cycle
	}
}

// A full ring drops the oldest records; the drain starts with an O
// marked line whose cycle number is past the gap.
func TestOverflowMarking(t *testing.T) {
	tr := &Tracer{buf: ring.New[Record](4)}
	for i := uint32(1); i <= 10; i++ {
		if tr.Push(record(i, 0x8000, 0x130)) && i > 4 {
			t.Errorf("push %d on a full ring reported no drop", i)
		}
	}

	f := newFormatterAllOn()
	var lines []string
	for {
		rec, ok := tr.Pop()
		if !ok {
			break
		}
		if line, ok := f.Line(rec); ok {
			lines = append(lines, line)
		}
	}

	if len(lines) != 4 {
		t.Fatalf("drained %d lines expected 4", len(lines))
	}
	if lines[0][0] != 'O' {
		t.Errorf("first line not overflow marked: %q", lines[0])
	}
	if !strings.Contains(lines[0], "     7") {
		t.Errorf("first line cycle number wrong: %q", lines[0])
	}
	for _, line := range lines[1:] {
		if line[0] != ' ' {
			t.Errorf("continuation line marked: %q", line)
		}
	}
}

// Filtered ranges drop records and mark the next passing line.
func TestFilters(t *testing.T) {
	f := newFormatterAllOn()
	f.set.SetBool(settings.TracerSysRomOn, false)

	if _, ok := f.Line(record(1, 0x0100, 0)); ok {
		t.Error("system ROM record not blocked")
	}
	line, ok := f.Line(record(2, 0x8000, 0))
	if !ok {
		t.Fatal("user ROM record blocked")
	}
	if line[0] != '=' {
		t.Errorf("line after a skip not marked: %q", line)
	}
}

func TestSysLoopWindows(t *testing.T) {
	for _, addr := range []uint16{0x0098, 0x00A1, 0x0177, 0x089D, 0x0E9C, 0x0ECE} {
		if !InSysLoop(addr) {
			t.Errorf("address %04X not recognised as system loop", addr)
		}
	}
	for _, addr := range []uint16{0x0097, 0x00A2, 0x0179, 0x1000} {
		if InSysLoop(addr) {
			t.Errorf("address %04X wrongly a system loop", addr)
		}
	}
}

// The line carries address, bank, instruction and the disassembly.
func TestLineFormat(t *testing.T) {
	f := newFormatterAllOn()
	rec := record(1, 0x8123, hp41.SyncBit|0x130)
	rec.Bank = 2
	rec.DataLo = 0x56789ABC
	rec.DataHi = 0x01234
	line, ok := f.Line(rec)
	if !ok {
		t.Fatal("line blocked")
	}
	for _, want := range []string{"8123-2", "130", "LDI"} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q misses %q", line, want)
		}
	}
}

// A two word GO/XQ disassembles across two trace lines, the first
// showing the continuation marker.
func TestTwoWordDisassembly(t *testing.T) {
	f := newFormatterAllOn()
	line1, ok := f.Line(record(1, 0x8000, hp41.SyncBit|0x0D1))
	if !ok {
		t.Fatal("first word blocked")
	}
	if !strings.Contains(line1, "...") {
		t.Errorf("first word line misses continuation: %q", line1)
	}
	line2, _ := f.Line(record(2, 0x8001, 0x049))
	if !strings.Contains(line2, "?C XQ 1234") {
		t.Errorf("joined line got %q", line2)
	}
}

// The IL trail shows frames and register changes.
func TestILTrail(t *testing.T) {
	set := settings.New(nil, nil)
	set.SetBool(settings.TracerSysRomOn, true)
	set.SetBool(settings.TracerILRomsOn, true)
	set.SetBool(settings.TracerSysLoopOn, true)
	set.SetBool(settings.TracerILRegs, true)
	set.SetBool(settings.HPILPlugged, true)
	f := NewFormatter(set)

	rec := record(1, 0x8000, 0)
	rec.FrameOut = 0x042
	line, _ := f.Line(rec)
	if !strings.Contains(line, "IL> 042 DAB") {
		t.Errorf("outbound frame missing: %q", line)
	}

	rec = record(2, 0x8000, 0)
	rec.FrameIn = 0x500
	line, _ = f.Line(rec)
	if !strings.Contains(line, "IL< 500 RFC") {
		t.Errorf("inbound frame missing: %q", line)
	}
}

func TestTrigger(t *testing.T) {
	tr := New(MinSize)
	tr.SetTrigger(0x8010, 0x8020, 4)

	// before the trigger fires records only collect
	for i := uint32(1); i <= 8; i++ {
		if out := tr.Triggered(record(i, 0x8000, 0)); out != nil {
			t.Fatal("record released before the trigger")
		}
	}
	// the trigger start releases the window plus the trigger record
	out := tr.Triggered(record(9, 0x8010, 0))
	if len(out) != 5 {
		t.Fatalf("trigger released %d records expected 5", len(out))
	}
	if out[0].Cycle != 5 {
		t.Errorf("window start cycle got %d expected 5", out[0].Cycle)
	}
	// running until the end address passes everything
	if out := tr.Triggered(record(10, 0x8011, 0)); len(out) != 1 {
		t.Error("record not passed while running")
	}
	tr.Triggered(record(11, 0x8020, 0))
	if out := tr.Triggered(record(12, 0x8021, 0)); out != nil {
		t.Error("record passed after the trigger end")
	}
}
