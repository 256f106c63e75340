package modfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Packing then unpacking any 10 bit word array must give the array
// back exactly.
func TestMOD1RoundTrip(t *testing.T) {
	words := make([]uint16, 4096)
	for i := range words {
		words[i] = uint16((i*37 + i>>3) & 0x3FF)
	}

	bin := Pack(words)
	assert.Equal(t, MOD1PageSize, len(bin))

	for i := range words {
		assert.Equal(t, words[i], UnpackWord(bin, uint16(i)), "word %04X", i)
	}
}

func TestMOD1KnownBytes(t *testing.T) {
	// Byte0=Word0[7-0], Byte1=Word1[5-0]<<2|Word0[9-8], ...
	bin := Pack([]uint16{0x3FF, 0x000, 0x155, 0x2AA})
	assert.Equal(t, byte(0xFF), bin[0])
	assert.Equal(t, byte(0x03), bin[1])
	assert.Equal(t, byte(0x50), bin[2])
	assert.Equal(t, byte(0x95), bin[3])
	assert.Equal(t, byte(0xAA), bin[4])
}

func TestHeaderRoundTrip(t *testing.T) {
	h := MetaHeader{Type: FileROM, Name: "ADVANTAGE", Size: 8192, NextFile: 0x2040}
	buf := make([]byte, HeaderSize)
	h.Put(buf)

	got, err := GetHeader(buf)
	assert.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestHeaderLongName(t *testing.T) {
	h := MetaHeader{Type: FileMOD1, Name: "A-VERY-LONG-MODULE-NAME-THAT-OVERFLOWS", Size: 5120}
	buf := make([]byte, HeaderSize)
	h.Put(buf)

	got, err := GetHeader(buf)
	assert.NoError(t, err)
	assert.Len(t, got.Name, 31)
}

func TestHeaderShortBuffer(t *testing.T) {
	_, err := GetHeader(make([]byte, 10))
	assert.ErrorIs(t, err, ErrHeader)
}

func TestSwap16(t *testing.T) {
	assert.Equal(t, uint16(0x3412), Swap16(0x1234))
}
