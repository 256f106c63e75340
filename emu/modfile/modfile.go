/*
 * TULIP4041 - Module file formats
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

// Package modfile defines the on-media formats shared by the persistent
// RAM region and the flash image store: the 40 byte file meta header
// that chains stored files, and the MOD1 packed word format.
package modfile

import (
	"encoding/binary"
	"errors"
)

// File types in a meta header.
const (
	FileEmpty    byte = 0x00 // erased file
	FileMOD1     byte = 0x01
	FileMOD2     byte = 0x02
	FileROM      byte = 0x03
	FileQROM     byte = 0x04 // QROM, lives in persistent RAM
	FileUserMem  byte = 0x10 // user memory image backup
	FileModMap   byte = 0x20 // module map backup
	FileGlobals  byte = 0x30 // global settings backup
	FileTracer   byte = 0x40 // tracer triggers and settings
	FileInit     byte = 0x41 // chain start sentinel
	FileDummy    byte = 0x7F // erased space
	FileEnd      byte = 0xFF // maiden flash, end of chain
	fileNameSize      = 31
)

// HeaderSize is the size of a serialised meta header.
const HeaderSize = 40

var ErrHeader = errors.New("unreadable file header")

// MetaHeader prefixes every file in the persistent region and the image
// store. NextFile is relative to the start of the store.
type MetaHeader struct {
	Type     byte
	Name     string
	Size     uint32
	NextFile uint32
}

// Put serialises the header into buf.
func (h MetaHeader) Put(buf []byte) {
	buf[0] = h.Type
	name := []byte(h.Name)
	if len(name) > fileNameSize {
		name = name[:fileNameSize]
	}
	for i := 0; i < fileNameSize; i++ {
		if i < len(name) {
			buf[1+i] = name[i]
		} else {
			buf[1+i] = 0
		}
	}
	binary.LittleEndian.PutUint32(buf[32:], h.Size)
	binary.LittleEndian.PutUint32(buf[36:], h.NextFile)
}

// GetHeader reads a meta header from buf.
func GetHeader(buf []byte) (MetaHeader, error) {
	if len(buf) < HeaderSize {
		return MetaHeader{}, ErrHeader
	}
	h := MetaHeader{Type: buf[0]}
	name := buf[1 : 1+fileNameSize]
	for i, c := range name {
		if c == 0 {
			name = name[:i]
			break
		}
	}
	h.Name = string(name)
	h.Size = binary.LittleEndian.Uint32(buf[32:])
	h.NextFile = binary.LittleEndian.Uint32(buf[36:])
	return h, nil
}

// MOD1 packing: four 10 bit words per five bytes (J-F Garnier .BIN):
//
//	Byte0=Word0[7-0]
//	Byte1=Word1[5-0]<<2 | Word0[9-8]
//	Byte2=Word2[3-0]<<4 | Word1[9-6]
//	Byte3=Word3[1-0]<<6 | Word2[9-4]
//	Byte4=Word3[9-2]
const (
	MOD1PageSize = 5120 // packed bytes per 4096 word page
	MOD2PageSize = 8192
)

// UnpackWord extracts word addr from a MOD1 packed image.
func UnpackWord(bin []byte, addr uint16) uint16 {
	offset := (uint32(addr) * 5) / 4
	shift := (addr & 3) * 2
	mask1 := uint16(0xFF) << shift
	mask2 := uint16(0xFF) >> (6 - shift)
	word := (uint16(bin[offset]) & mask1) >> shift
	word |= (uint16(bin[offset+1]) & mask2) << (8 - shift)
	return word & 0x3FF
}

// Pack converts 4096 words into the MOD1 packed form.
func Pack(words []uint16) []byte {
	bin := make([]byte, (len(words)*5+3)/4)
	for i := 0; i+3 < len(words); i += 4 {
		w0 := words[i] & 0x3FF
		w1 := words[i+1] & 0x3FF
		w2 := words[i+2] & 0x3FF
		w3 := words[i+3] & 0x3FF
		o := i / 4 * 5
		bin[o] = byte(w0)
		bin[o+1] = byte(w1<<2) | byte(w0>>8)
		bin[o+2] = byte(w2<<4) | byte(w1>>6)
		bin[o+3] = byte(w3<<6) | byte(w2>>4)
		bin[o+4] = byte(w3 >> 2)
	}
	return bin
}

// Swap16 byte swaps a big endian ROM image word.
func Swap16(w uint16) uint16 {
	return w<<8 | w>>8
}
