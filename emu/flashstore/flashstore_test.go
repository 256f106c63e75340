/*
 * TULIP4041 - image store test cases.
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

package flashstore

import (
	"errors"
	"testing"

	"github.com/rcornwell/tulip4041/emu/modfile"
)

func romData() []byte {
	return make([]byte, modfile.MOD2PageSize)
}

func TestImportListFind(t *testing.T) {
	s := Memory()
	if files := s.List(); len(files) != 0 {
		t.Fatalf("fresh store lists %d files", len(files))
	}

	info, err := s.Import("ADVANTAGE", modfile.FileROM, romData())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Import("PPCROM", modfile.FileMOD1, make([]byte, modfile.MOD1PageSize)); err != nil {
		t.Fatal(err)
	}

	files := s.List()
	if len(files) != 2 {
		t.Fatalf("list got %d files expected 2", len(files))
	}

	found, err := s.Find("advantage")
	if err != nil {
		t.Fatal(err)
	}
	if found.Offset != info.Offset || found.Type != modfile.FileROM {
		t.Error("find returned the wrong record")
	}

	data, err := s.Bytes(found.Offset)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != modfile.MOD2PageSize {
		t.Errorf("image size got %d", len(data))
	}
}

func TestImportDuplicate(t *testing.T) {
	s := Memory()
	if _, err := s.Import("TWICE", modfile.FileROM, romData()); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Import("TWICE", modfile.FileROM, romData()); !errors.Is(err, ErrExists) {
		t.Errorf("duplicate import got %v expected ErrExists", err)
	}
}

func TestImportBadSize(t *testing.T) {
	s := Memory()
	if _, err := s.Import("SHORT", modfile.FileROM, make([]byte, 100)); !errors.Is(err, ErrCorrupt) {
		t.Errorf("short ROM import got %v expected ErrCorrupt", err)
	}
	if _, err := s.Import("ODD", 0x77, romData()); !errors.Is(err, ErrCorrupt) {
		t.Errorf("unknown type import got %v expected ErrCorrupt", err)
	}
}

func TestDelete(t *testing.T) {
	s := Memory()
	s.Import("KEEP", modfile.FileROM, romData())
	s.Import("DROP", modfile.FileROM, romData())

	if err := s.Delete("DROP"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Find("DROP"); !errors.Is(err, ErrNotFound) {
		t.Error("deleted file still found")
	}
	if _, err := s.Find("KEEP"); err != nil {
		t.Error("chain broken after delete")
	}
	if err := s.Delete("DROP"); !errors.Is(err, ErrNotFound) {
		t.Error("double delete accepted")
	}
}

func TestWriteWord(t *testing.T) {
	s := Memory()
	info, _ := s.Import("QROM", modfile.FileQROM, romData())
	if err := s.WriteWord(info.Offset, 0x123, 0x2AB); err != nil {
		t.Fatal(err)
	}
	data, _ := s.Bytes(info.Offset)
	got := uint16(data[2*0x123])<<8 | uint16(data[2*0x123+1])
	if got != 0x2AB {
		t.Errorf("word readback got %03X expected 2AB", got)
	}
}

func TestBytesCorrupt(t *testing.T) {
	s := Memory()
	if _, err := s.Bytes(Size); !errors.Is(err, ErrCorrupt) {
		t.Error("out of range offset accepted")
	}
	if _, err := s.Bytes(0); err == nil {
		t.Error("zero sized init record returned bytes")
	}
}
