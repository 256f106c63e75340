/*
 * TULIP4041 - Flash image store
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

// Package flashstore manages the on-chip flash area holding ROM images.
// Files form a chain of records, each a 40 byte meta header followed by
// the contents; a FileInit sentinel opens the chain and a FileEnd record
// terminates it. The store is backed by a plain file on the host.
package flashstore

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rcornwell/tulip4041/emu/modfile"
)

const (
	Base = 0x100000            // flash offset of the store
	Size = 15 * 1024 * 1024    // 15 MiB
)

var (
	ErrNotFound = errors.New("image file not found")
	ErrExists   = errors.New("image file already exists")
	ErrFull     = errors.New("image store is full")
	ErrCorrupt  = errors.New("corrupt image file")
)

// FileInfo describes one record in the chain.
type FileInfo struct {
	Offset int
	Type   byte
	Name   string
	Size   int
}

type Store struct {
	mem  []byte
	path string
}

// Open maps the image store from path, formatting a fresh chain when
// the file does not exist.
func Open(path string) (*Store, error) {
	s := &Store{mem: make([]byte, Size), path: path}
	for i := range s.mem {
		s.mem[i] = 0xFF
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		copy(s.mem, data)
	case os.IsNotExist(err):
		s.format()
	default:
		return nil, fmt.Errorf("image store %s: %w", path, err)
	}
	if _, err := modfile.GetHeader(s.mem); err != nil || s.mem[0] != modfile.FileInit {
		s.format()
	}
	return s, nil
}

// Memory returns an in-memory store, used by tests.
func Memory() *Store {
	s := &Store{mem: make([]byte, Size)}
	for i := range s.mem {
		s.mem[i] = 0xFF
	}
	s.format()
	return s
}

// format writes the chain start sentinel and terminator.
func (s *Store) format() {
	h := modfile.MetaHeader{Type: modfile.FileInit, Name: "TULIP4041", Size: 0, NextFile: modfile.HeaderSize}
	h.Put(s.mem)
	s.mem[modfile.HeaderSize] = modfile.FileEnd
}

// Sync writes the store back to its file.
func (s *Store) Sync() error {
	if s.path == "" {
		return nil
	}
	return os.WriteFile(s.path, s.mem, 0o644)
}

// List walks the chain and returns all live files.
func (s *Store) List() []FileInfo {
	var files []FileInfo
	offset := 0
	for offset+modfile.HeaderSize <= Size {
		h, err := modfile.GetHeader(s.mem[offset:])
		if err != nil || h.Type == modfile.FileEnd {
			break
		}
		if h.Type != modfile.FileInit && h.Type != modfile.FileDummy {
			files = append(files, FileInfo{Offset: offset, Type: h.Type, Name: h.Name, Size: int(h.Size)})
		}
		if h.NextFile == 0 || int(h.NextFile) <= offset {
			break // broken chain
		}
		offset = int(h.NextFile)
	}
	return files
}

// Find returns the record named name.
func (s *Store) Find(name string) (FileInfo, error) {
	for _, f := range s.List() {
		if strings.EqualFold(f.Name, name) {
			return f, nil
		}
	}
	return FileInfo{}, ErrNotFound
}

// Bytes returns the contents of the record at offset after validating
// its header.
func (s *Store) Bytes(offset int) ([]byte, error) {
	if offset < 0 || offset+modfile.HeaderSize > Size {
		return nil, ErrCorrupt
	}
	h, err := modfile.GetHeader(s.mem[offset:])
	if err != nil {
		return nil, err
	}
	start := offset + modfile.HeaderSize
	end := start + int(h.Size)
	if h.Size == 0 || end > Size {
		return nil, ErrCorrupt
	}
	return s.mem[start:end], nil
}

// HeaderBytes returns the raw meta header at offset for label lookups.
func (s *Store) HeaderBytes(offset int) []byte {
	if offset < 0 || offset+modfile.HeaderSize > Size {
		return nil
	}
	return s.mem[offset : offset+modfile.HeaderSize]
}

// Import appends a new record to the chain.
func (s *Store) Import(name string, fileType byte, data []byte) (FileInfo, error) {
	if err := validate(fileType, data); err != nil {
		return FileInfo{}, err
	}
	if _, err := s.Find(name); err == nil {
		return FileInfo{}, ErrExists
	}

	// Find the end record.
	offset := 0
	for {
		h, err := modfile.GetHeader(s.mem[offset:])
		if err != nil {
			return FileInfo{}, err
		}
		if h.Type == modfile.FileEnd {
			break
		}
		if h.NextFile == 0 || int(h.NextFile) <= offset {
			return FileInfo{}, ErrCorrupt
		}
		offset = int(h.NextFile)
	}

	next := offset + modfile.HeaderSize + len(data)
	if next+modfile.HeaderSize > Size {
		return FileInfo{}, ErrFull
	}
	h := modfile.MetaHeader{Type: fileType, Name: name, Size: uint32(len(data)), NextFile: uint32(next)}
	h.Put(s.mem[offset:])
	copy(s.mem[offset+modfile.HeaderSize:], data)
	s.mem[next] = modfile.FileEnd
	if err := s.Sync(); err != nil {
		return FileInfo{}, err
	}
	return FileInfo{Offset: offset, Type: fileType, Name: name, Size: len(data)}, nil
}

// Delete marks the record named name as erased. The space is not
// reclaimed; the chain stays intact.
func (s *Store) Delete(name string) error {
	f, err := s.Find(name)
	if err != nil {
		return err
	}
	s.mem[f.Offset] = modfile.FileDummy
	return s.Sync()
}

// WriteWord updates one 16 bit word inside a stored image. Used by QROM
// emulation (WROM).
func (s *Store) WriteWord(offset, index int, word uint16) error {
	pos := offset + modfile.HeaderSize + 2*index
	if pos+2 > Size {
		return ErrCorrupt
	}
	s.mem[pos] = byte(word >> 8)
	s.mem[pos+1] = byte(word)
	return nil
}

// validate rejects images whose size does not fit their type.
func validate(fileType byte, data []byte) error {
	switch fileType {
	case modfile.FileMOD1:
		if len(data) < modfile.MOD1PageSize {
			return ErrCorrupt
		}
	case modfile.FileMOD2, modfile.FileROM, modfile.FileQROM:
		if len(data) < modfile.MOD2PageSize {
			return ErrCorrupt
		}
	case modfile.FileUserMem, modfile.FileModMap, modfile.FileGlobals, modfile.FileTracer:
		// backups, any size
	default:
		return ErrCorrupt
	}
	return nil
}
