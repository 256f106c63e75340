/*
 * TULIP4041 - IR printer frame encoding
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

package printer

// Frame layout for the HP82242 style IR emitter: a byte is extended
// with four parity bits to a 12 bit payload, then each payload bit is
// encoded msb first as a half-bit pair, 10 for 0 and 01 for 1, behind
// three start one-bits. The resulting 27 symbols are left aligned in
// the 32 bit word handed to the IR driver.

// parity returns the even parity of byte b.
func parity(b byte) uint16 {
	b ^= b >> 4
	b ^= b >> 2
	b ^= b >> 1
	return uint16(b & 1)
}

// FramePayload extends a byte with its four checksum bits d,c,b,a.
func FramePayload(data byte) uint16 {
	frame := uint16(data)
	if parity(data&0x78) != 0 {
		frame |= 0x800
	}
	if parity(data&0xE6) != 0 {
		frame |= 0x400
	}
	if parity(data&0xD5) != 0 {
		frame |= 0x200
	}
	if parity(data&0x8B) != 0 {
		frame |= 0x100
	}
	return frame
}

// EncodeFrame builds the 27 symbol IR frame for one character, left
// aligned for the IR driver.
func EncodeFrame(data byte) uint32 {
	payload := FramePayload(data)
	frame := uint32(0b111) // start bits
	for i := 0; i < 12; i++ {
		frame <<= 2
		if payload&0x800 != 0 {
			frame |= 0b01
		} else {
			frame |= 0b10
		}
		payload <<= 1
	}
	return frame << 5
}
