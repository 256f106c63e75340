/*
 * TULIP4041 - extended memory test cases.
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

package xmem

import (
	"testing"

	"github.com/rcornwell/tulip4041/emu/fram"
	"github.com/rcornwell/tulip4041/emu/settings"
)

func newMemory(modules uint16) *Memory {
	set := settings.New(nil, nil)
	set.Set(settings.XMemPages, modules)
	return New(set, fram.Memory())
}

func TestExists(t *testing.T) {
	tests := []struct {
		modules uint16
		addr    uint16
		exists  bool
	}{
		{0, 0x2A0, false},
		{1, 0x200, false}, // base register belongs to XFunctions
		{1, 0x201, true},
		{1, 0x2EF, true},
		{1, 0x2F0, false},
		{1, 0x320, false},
		{2, 0x320, true},
		{2, 0x3EF, true},
		{2, 0x3F0, false},
		{2, 0x100, false},
	}
	for _, test := range tests {
		m := newMemory(test.modules)
		if got := m.Exists(test.addr); got != test.exists {
			t.Errorf("modules %d addr %03X got %v expected %v",
				test.modules, test.addr, got, test.exists)
		}
	}
}

func TestCacheFlushOnSelect(t *testing.T) {
	m := newMemory(2)

	m.Select(0x2A0)
	if !m.Ours() {
		t.Fatal("existing register not selected")
	}
	m.StoreLo(0x12345678)
	m.StoreHi(0x9ABCDE)

	// selecting another register flushes the first one
	m.Select(0x301)
	lo, hi := m.fram.ReadXMem(0x2A0 - Base)
	if lo != 0x12345678 || hi != 0x9ABCDE {
		t.Errorf("flush lost data: %08X %06X", lo, hi)
	}

	// and reloading brings the data back
	m.Select(0x2A0)
	if m.CacheLo() != 0x12345678 || m.CacheHi() != 0x9ABCDE {
		t.Error("reload lost data")
	}
}

func TestForeignSelect(t *testing.T) {
	m := newMemory(1)
	m.Select(0x010) // main RAM, not ours
	if m.Ours() {
		t.Error("foreign register claimed")
	}
	if m.Selected() != 0x010 {
		t.Error("selected address not tracked for tracing")
	}
	m.StoreLo(0xFFFF) // must not stick anywhere
	m.Select(0x201)
	if m.CacheLo() == 0xFFFF {
		t.Error("store to a foreign register leaked")
	}
}

func TestHighHalfMask(t *testing.T) {
	m := newMemory(1)
	m.Select(0x201)
	m.StoreHi(0xFF123456)
	if m.CacheHi() != 0x123456 {
		t.Errorf("high half not masked to 24 bits: %08X", m.CacheHi())
	}
}
