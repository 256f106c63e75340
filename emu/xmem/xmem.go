/*
 * TULIP4041 - Extended memory registers
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

// Package xmem emulates the extended memory registers of the
// XFunctions and XMemory modules: 56 bit registers at HP addresses
// 0x200..0x3FF, backed by the persistent RAM region. Exactly one
// register is cached at a time; RAMSLCT flushes the cache and loads
// the newly selected register.
package xmem

import (
	"github.com/rcornwell/tulip4041/emu/fram"
	"github.com/rcornwell/tulip4041/emu/settings"
)

// Register base of extended memory in the HP-41 address map.
const Base = 0x200

type Memory struct {
	set  *settings.Settings
	fram *fram.Fram

	selected uint16 // last RAMSLCT address, any chip
	ours     uint16 // selected register when it is one of ours, else 0
	cacheLo  uint32
	cacheHi  uint32
	dirty    bool
}

func New(set *settings.Settings, f *fram.Fram) *Memory {
	return &Memory{set: set, fram: f}
}

// Exists reports whether register addr is present under the current
// xmem module count.
func (m *Memory) Exists(addr uint16) bool {
	mods := m.set.Get(settings.XMemPages)
	if mods == 0 {
		return false
	}
	if addr > 0x200 && addr < 0x2F0 {
		return true
	}
	return mods >= 2 && addr > 0x300 && addr < 0x3F0
}

// Select handles RAMSLCT: flush the cached register, then load the new
// selection when it is one of ours.
func (m *Memory) Select(addr uint16) {
	m.Flush()
	m.selected = addr
	if !m.Exists(addr) {
		m.ours = 0
		return
	}
	m.ours = addr
	m.cacheLo, m.cacheHi = m.fram.ReadXMem(int(addr) - Base)
}

// Flush writes the cached register back to persistent RAM.
func (m *Memory) Flush() {
	if m.ours != 0 && m.dirty {
		m.fram.WriteXMem(int(m.ours)-Base, m.cacheLo, m.cacheHi)
	}
	m.dirty = false
}

// Ours reports whether the selected register belongs to us.
func (m *Memory) Ours() bool {
	return m.ours != 0
}

// Selected returns the last RAMSLCT address for tracing.
func (m *Memory) Selected() uint16 {
	return m.selected
}

// CacheLo returns D0..D31 of the cached register.
func (m *Memory) CacheLo() uint32 {
	return m.cacheLo
}

// CacheHi returns D32..D55 of the cached register.
func (m *Memory) CacheHi() uint32 {
	return m.cacheHi
}

// StoreLo caches the low half of a WRITDATA.
func (m *Memory) StoreLo(v uint32) {
	if m.ours != 0 {
		m.cacheLo = v
		m.dirty = true
	}
}

// StoreHi caches the high half of a WRITDATA.
func (m *Memory) StoreHi(v uint32) {
	if m.ours != 0 {
		m.cacheHi = v & 0xFFFFFF
		m.dirty = true
	}
}
