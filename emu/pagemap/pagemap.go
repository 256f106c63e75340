/*
 * TULIP4041 - ROM page and bank map
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

// Package pagemap maps the sixteen 4 KiB logical pages of the HP-41
// address space. Each page holds four switchable banks; bank 0 is the
// metadata slot. A page read resolves the active bank, falls back to
// bank 1 when the active bank is not enabled, and reports "nothing
// plugged" otherwise so the engine leaves the bus alone.
package pagemap

import (
	"encoding/binary"
	"errors"

	"github.com/rcornwell/tulip4041/emu/hp41"
	"github.com/rcornwell/tulip4041/emu/modfile"
)

// Bank flag word bits.
const (
	BankActive    uint16 = 0x0001 // bank has valid content
	BankFlash     uint16 = 0x0002 // content lives in the image store
	BankROM       uint16 = 0x0004 // unpacked big endian ROM words
	BankMOD       uint16 = 0x0008 // MOD1 packed
	BankEnabled   uint16 = 0x0010 // enabled for reading
	BankDirty     uint16 = 0x0020 // written, not yet saved
	BankWriteable uint16 = 0x0040 // WROM target
	BankReserved  uint16 = 0x0080 // taken by a physical module
	BankEmbedded  uint16 = 0x0100 // image compiled into the firmware
)

// Current bank byte: low bits hold the bank 1..4, high bit is sticky.
const (
	bankMask   = 0x07
	BankSticky = 0x80
)

const (
	NrBanks = 4

	// Serialised size: per page one bank byte plus five bank records
	// of flag word and image offset, the metadata slot included.
	pageRecord = 1 + (NrBanks+1)*6
	MapSize    = hp41.NrPages * pageRecord
)

var ErrReserved = errors.New("page is reserved")

// ImageStore resolves an image reference to its stored bytes.
type ImageStore interface {
	Bytes(offset int) ([]byte, error)
	WriteWord(offset, index int, word uint16) error
}

type Bank struct {
	Flags  uint16 // type and status
	Offset uint32 // image store offset, or embedded slot
	Name   string // label of the plugged image
	data   []byte // resolved image bytes
	words  []uint16
}

type Page struct {
	Banks [NrBanks + 1]Bank // bank 0 is the page metadata slot
	bank  byte              // active bank 1..4 plus sticky bit
}

type Map struct {
	Pages [hp41.NrPages]Page
	store ImageStore
	dirty bool
}

// New returns an empty map with the system pages 0..3 reserved.
func New(store ImageStore) *Map {
	m := &Map{store: store}
	m.Clear()
	return m
}

// Clear unplugs everything and re-reserves the system pages.
func (m *Map) Clear() {
	for page := range m.Pages {
		m.Pages[page] = Page{}
		if page < hp41.FirstUserPage {
			m.Pages[page].Banks[0].Flags = BankReserved
		}
	}
}

// CurrentBank returns the active bank of page, 1..4.
func (m *Map) CurrentBank(page int) int {
	b := int(m.Pages[page].bank & bankMask)
	if b == 0 {
		return 1
	}
	return b
}

// Sticky reports whether the page keeps its bank across PWO drops.
func (m *Map) Sticky(page int) bool {
	return m.Pages[page].bank&BankSticky != 0
}

// SetSticky marks or clears the sticky bit of page.
func (m *Map) SetSticky(page int, sticky bool) {
	if sticky {
		m.Pages[page].bank |= BankSticky
	} else {
		m.Pages[page].bank &^= BankSticky
	}
	m.dirty = true
}

// Enabled reports whether (page, bank) is plugged and enabled.
func (m *Map) Enabled(page, bank int) bool {
	if bank < 1 || bank > NrBanks {
		return false
	}
	return m.Pages[page].Banks[bank].Flags&BankEnabled != 0
}

// Reserved reports whether page is taken by a physical module or the
// system.
func (m *Map) Reserved(page int) bool {
	return m.Pages[page].Banks[0].Flags&BankReserved != 0
}

// Reserve marks page as taken by a physical module.
func (m *Map) Reserve(page int) {
	m.Pages[page].Banks[0].Flags |= BankReserved
	m.dirty = true
}

// Word returns the 10 bit word at addr from the given bank of the
// addressed page. The second result is false when nothing drives the
// bus there.
func (m *Map) Word(addr uint16, bank int) (uint16, bool) {
	page := hp41.Page(addr)
	// Fall back to bank 1 when a higher bank is selected but not
	// plugged. The Advantage module relies on this.
	if bank > 1 && !m.Enabled(page, bank) && m.Enabled(page, 1) {
		bank = 1
	}
	if !m.Enabled(page, bank) {
		return 0, false
	}
	b := &m.Pages[page].Banks[bank]
	index := addr & hp41.PageMask
	switch {
	case b.Flags&BankEmbedded != 0:
		if int(index) >= len(b.words) {
			return 0, false
		}
		return b.words[index] & hp41.InstMask, true
	case b.Flags&BankMOD != 0:
		return modfile.UnpackWord(b.data, index), true
	default:
		// ROM, MOD2 and QROM images store big endian words.
		w := binary.BigEndian.Uint16(b.data[2*index:])
		return w & hp41.InstMask, true
	}
}

// Read resolves the active bank for addr and returns its word. The
// second result is false when no emulated ROM drives this address; the
// bus then floats to 0x3FF.
func (m *Map) Read(addr uint16) (uint16, bool) {
	return m.Word(addr, m.CurrentBank(hp41.Page(addr)))
}

// Write updates a word through the image store for a writable (QROM)
// bank. Other banks ignore the write.
func (m *Map) Write(addr uint16, word uint16) {
	page := hp41.Page(addr)
	bank := m.CurrentBank(page)
	b := &m.Pages[page].Banks[bank]
	if b.Flags&BankWriteable == 0 || b.Flags&BankEnabled == 0 {
		return
	}
	if b.Flags&BankEmbedded != 0 || b.Flags&BankMOD != 0 {
		return // packed and embedded images are not write targets
	}
	index := int(addr & hp41.PageMask)
	if m.store != nil {
		_ = m.store.WriteWord(int(b.Offset), index, word&hp41.InstMask)
	}
	b.Flags |= BankDirty
	m.dirty = true
}

// SwitchBank applies an ENBANK seen at page. The HP-41CX twin rules
// apply: an ENBANK in page 3 switches page 5; in the port pages 8..F
// both pages of the port pair switch together. Sticky pages persist
// the new bank so it survives PWO drops.
func (m *Map) SwitchBank(page, bank int) {
	if bank < 1 || bank > NrBanks {
		return
	}
	switch {
	case page == 3:
		m.setBank(5, bank)
	case page >= 8:
		m.setBank(page&^1, bank)
		m.setBank(page|1, bank)
	default:
		m.setBank(page, bank)
	}
}

func (m *Map) setBank(page, bank int) {
	p := &m.Pages[page]
	sticky := p.bank & BankSticky
	p.bank = sticky | byte(bank)
	if sticky != 0 && m.Enabled(page, bank) && !m.Reserved(page) {
		m.dirty = true // sticky selection is persisted on PWO low
	}
}

// ResetBanks reverts every non sticky page to bank 1. Called on the
// PWO rising edge. A sticky page keeps its bank only while that bank
// is enabled.
func (m *Map) ResetBanks() {
	for page := range m.Pages {
		p := &m.Pages[page]
		bank := int(p.bank & bankMask)
		if p.bank&BankSticky != 0 && m.Enabled(page, bank) && !m.Reserved(page) {
			continue
		}
		p.bank = (p.bank & BankSticky) | 1
	}
}

// Dirty reports whether the map must be written back on PWO low.
func (m *Map) Dirty() bool {
	return m.dirty
}
