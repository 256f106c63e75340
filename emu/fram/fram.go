/*
 * TULIP4041 - Persistent RAM region
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

// Package fram models the 256 KiB byte addressable persistent RAM of the
// cartridge. The region is backed by a plain file so cartridge state
// survives restarts. Layout:
//
//	0x00000  init magic 0x4041
//	0x00010  serialised page map
//	0x00200  settings file (40 byte meta header + contents)
//	0x00400  tracer filter file
//	0x1D000  legacy settings window (compatibility)
//	0x1E000  extended memory registers, 8 bytes each
package fram

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/rcornwell/tulip4041/emu/modfile"
	"github.com/rcornwell/tulip4041/emu/settings"
)

const (
	Size = 0x40000 // 256 KiB device

	InitAddr  = 0x00000
	InitValue = 0x4041

	RomMapStart = 0x00010
	RomMapSpace = SettingsFile - RomMapStart

	SettingsFile    = 0x00200
	SettingsContent = SettingsFile + MetaHeaderSize

	TracerFile    = 0x00400
	TracerContent = TracerFile + MetaHeaderSize

	LegacySettings = 0x1D000 // 1 KiB compatibility window
	XMemStart      = 0x1E000 // 8 bytes per 56 bit register
	XMemRegs       = 512
)

// MetaHeaderSize aliases the shared file meta header size.
const MetaHeaderSize = modfile.HeaderSize

var ErrRange = errors.New("address outside persistent region")

type Fram struct {
	mem  []byte
	path string
}

// Open maps the persistent region from path, creating a zeroed region
// when the file does not exist or is short.
func Open(path string) (*Fram, error) {
	f := &Fram{mem: make([]byte, Size), path: path}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		copy(f.mem, data)
	case os.IsNotExist(err):
		// fresh region, all zeroes
	default:
		return nil, fmt.Errorf("persistent region %s: %w", path, err)
	}
	return f, nil
}

// Memory returns an in-memory only region, used by tests.
func Memory() *Fram {
	return &Fram{mem: make([]byte, Size)}
}

// Sync writes the region back to its file.
func (f *Fram) Sync() error {
	if f.path == "" {
		return nil
	}
	return os.WriteFile(f.path, f.mem, 0o644)
}

// Read copies len(buf) bytes starting at addr.
func (f *Fram) Read(addr int, buf []byte) error {
	if addr < 0 || addr+len(buf) > Size {
		return ErrRange
	}
	copy(buf, f.mem[addr:])
	return nil
}

// Write copies buf into the region at addr.
func (f *Fram) Write(addr int, buf []byte) error {
	if addr < 0 || addr+len(buf) > Size {
		return ErrRange
	}
	copy(f.mem[addr:], buf)
	return nil
}

// IsInitialised checks the init magic at the start of the region.
func (f *Fram) IsInitialised() bool {
	return binary.LittleEndian.Uint16(f.mem[InitAddr:]) == InitValue
}

// SetInitialised writes the init magic.
func (f *Fram) SetInitialised() {
	binary.LittleEndian.PutUint16(f.mem[InitAddr:], InitValue)
}

// ReadSettings implements settings.Store.
func (f *Fram) ReadSettings() ([settings.NumItems]uint16, error) {
	var v [settings.NumItems]uint16
	for i := range v {
		v[i] = binary.LittleEndian.Uint16(f.mem[SettingsContent+2*i:])
	}
	return v, nil
}

// WriteSettings implements settings.Store. The settings file gets a meta
// header so the region stays walkable as a file chain, and the legacy
// window is mirrored for older hosts.
func (f *Fram) WriteSettings(v [settings.NumItems]uint16) error {
	h := modfile.MetaHeader{Type: modfile.FileGlobals, Name: "GLOBALSETTINGS", Size: settings.NumItems * 2}
	h.Put(f.mem[SettingsFile:])
	for i, val := range v {
		binary.LittleEndian.PutUint16(f.mem[SettingsContent+2*i:], val)
		binary.LittleEndian.PutUint16(f.mem[LegacySettings+2*i:], val)
	}
	return f.Sync()
}

// ReadXMem returns the 56 bit register reg as two halves, D0..D31 and
// D32..D55.
func (f *Fram) ReadXMem(reg int) (uint32, uint32) {
	if reg < 0 || reg >= XMemRegs {
		return 0, 0
	}
	offset := XMemStart + 8*reg
	lo := binary.LittleEndian.Uint32(f.mem[offset:])
	hi := binary.LittleEndian.Uint32(f.mem[offset+4:])
	return lo, hi
}

// WriteXMem stores the 56 bit register reg.
func (f *Fram) WriteXMem(reg int, lo, hi uint32) {
	if reg < 0 || reg >= XMemRegs {
		return
	}
	offset := XMemStart + 8*reg
	binary.LittleEndian.PutUint32(f.mem[offset:], lo)
	binary.LittleEndian.PutUint32(f.mem[offset+4:], hi)
}

// ReadPageMap returns the serialised page map.
func (f *Fram) ReadPageMap(size int) []byte {
	buf := make([]byte, size)
	copy(buf, f.mem[RomMapStart:])
	return buf
}

// WritePageMap stores the serialised page map and syncs.
func (f *Fram) WritePageMap(buf []byte) error {
	if len(buf) > RomMapSpace {
		return ErrRange
	}
	copy(f.mem[RomMapStart:], buf)
	return f.Sync()
}
