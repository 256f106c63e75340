/*
 * TULIP4041 - Plugging and persistence of the page map
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

package pagemap

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/rcornwell/tulip4041/emu/hp41"
	"github.com/rcornwell/tulip4041/emu/modfile"
)

var (
	ErrBadPage = errors.New("invalid page or bank")
	ErrNoImage = errors.New("image not usable for this page")
)

// embedded firmware images, registered at startup. A bank referencing
// one stores the slot index in its Offset field.
var embedded []embeddedImage

type embeddedImage struct {
	name  string
	words []uint16
}

// RegisterEmbedded adds a firmware built-in ROM image and returns its
// slot. The printer and HP-IL ROMs use this.
func RegisterEmbedded(name string, words []uint16) int {
	embedded = append(embedded, embeddedImage{name: name, words: words})
	return len(embedded) - 1
}

// Plug inserts an image from the store into (page, bank).
func (m *Map) Plug(page, bank int, fileType byte, offset int, name string) error {
	if page < 0 || page >= hp41.NrPages || bank < 1 || bank > NrBanks {
		return ErrBadPage
	}
	if m.Reserved(page) && page < hp41.FirstUserPage {
		return fmt.Errorf("page %X: %w", page, ErrReserved)
	}
	data, err := m.store.Bytes(offset)
	if err != nil {
		return err
	}

	flags := BankActive | BankFlash | BankEnabled
	switch fileType {
	case modfile.FileMOD1:
		flags |= BankMOD
		if len(data) < modfile.MOD1PageSize {
			return ErrNoImage
		}
	case modfile.FileMOD2, modfile.FileROM:
		flags |= BankROM
		if len(data) < modfile.MOD2PageSize {
			return ErrNoImage
		}
	case modfile.FileQROM:
		flags |= BankROM | BankWriteable
		if len(data) < modfile.MOD2PageSize {
			return ErrNoImage
		}
	default:
		return ErrNoImage
	}

	b := &m.Pages[page].Banks[bank]
	b.Flags = flags
	b.Offset = uint32(offset)
	b.Name = name
	b.data = data
	b.words = nil
	if m.Pages[page].bank&bankMask == 0 {
		m.Pages[page].bank |= 1
	}
	m.dirty = true
	return nil
}

// PlugEmbedded inserts a firmware built-in image into (page, bank).
func (m *Map) PlugEmbedded(page, bank, slot int) error {
	if page < 0 || page >= hp41.NrPages || bank < 1 || bank > NrBanks {
		return ErrBadPage
	}
	if slot < 0 || slot >= len(embedded) {
		return ErrNoImage
	}
	b := &m.Pages[page].Banks[bank]
	b.Flags = BankActive | BankEmbedded | BankROM | BankEnabled
	b.Offset = uint32(slot)
	b.Name = embedded[slot].name
	b.words = embedded[slot].words
	b.data = nil
	if m.Pages[page].bank&bankMask == 0 {
		m.Pages[page].bank |= 1
	}
	m.dirty = true
	return nil
}

// Unplug removes the image in (page, bank).
func (m *Map) Unplug(page, bank int) error {
	if page < 0 || page >= hp41.NrPages || bank < 1 || bank > NrBanks {
		return ErrBadPage
	}
	m.Pages[page].Banks[bank] = Bank{}
	used := false
	for i := 1; i <= NrBanks; i++ {
		if m.Pages[page].Banks[i].Flags&BankActive != 0 {
			used = true
		}
	}
	if !used {
		m.Pages[page].bank &= BankSticky
	}
	m.dirty = true
	return nil
}

// Serialise packs the map for the persistent region: per page the
// current bank byte, then flag word and image offset for all five
// bank slots. Labels are not stored; they reload from the image store
// headers.
func (m *Map) Serialise() []byte {
	buf := make([]byte, MapSize)
	pos := 0
	for page := range m.Pages {
		p := &m.Pages[page]
		buf[pos] = p.bank
		pos++
		for bank := 0; bank <= NrBanks; bank++ {
			b := &p.Banks[bank]
			binary.LittleEndian.PutUint16(buf[pos:], b.Flags)
			binary.LittleEndian.PutUint32(buf[pos+2:], b.Offset)
			pos += 6
		}
	}
	return buf
}

// Restore rebuilds the map from its serialised form, resolving image
// references through the store. Unresolvable banks come back disabled.
func (m *Map) Restore(buf []byte) error {
	if len(buf) < MapSize {
		return modfile.ErrHeader
	}
	pos := 0
	for page := range m.Pages {
		p := &m.Pages[page]
		p.bank = buf[pos]
		pos++
		for bank := 0; bank <= NrBanks; bank++ {
			b := &p.Banks[bank]
			b.Flags = binary.LittleEndian.Uint16(buf[pos:])
			b.Offset = binary.LittleEndian.Uint32(buf[pos+2:])
			pos += 6
			b.data = nil
			b.words = nil
			if b.Flags&BankActive == 0 {
				continue
			}
			if b.Flags&BankEmbedded != 0 {
				slot := int(b.Offset)
				if slot < len(embedded) {
					b.words = embedded[slot].words
					b.Name = embedded[slot].name
				} else {
					b.Flags &^= BankEnabled
				}
				continue
			}
			data, err := m.store.Bytes(int(b.Offset))
			if err != nil {
				b.Flags &^= BankEnabled
				continue
			}
			b.data = data
			if h, err := modfile.GetHeader(storeHeader(m.store, int(b.Offset))); err == nil {
				b.Name = h.Name
			}
		}
	}
	m.dirty = false
	return nil
}

// headerReader is implemented by stores that expose raw header bytes.
type headerReader interface {
	HeaderBytes(offset int) []byte
}

func storeHeader(store ImageStore, offset int) []byte {
	if hr, ok := store.(headerReader); ok {
		return hr.HeaderBytes(offset)
	}
	return nil
}
