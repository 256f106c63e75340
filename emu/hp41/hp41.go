/*
 * TULIP4041 - HP-41 bus definitions
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

// Package hp41 holds the HP-41 bus level constants: NUT instructions as
// they come out of the SYNC/ISA sampler, FI flag nibbles and the printer
// status word layout.
//
// Instructions from the sampler carry the SYNC status in bit 11 and a
// copy of the instruction msb in bit 10:
//
//	0x0xx -> 0x8xx    0x1xx -> 0x9xx
//	0x2xx -> 0xExx    0x3xx -> 0xFxx
package hp41

// One bus cycle is 56 clock phases.
const CyclePhases = 56

// SyncBit is the position of the SYNC status in a sampled instruction.
const SyncBit = 0x800

// InstMask masks the 10 instruction bits from a sampled word.
const InstMask = 0x3FF

// NUT instructions, with and without the SYNC/msb modifier.
const (
	WROM     uint16 = 0x040
	InstWROM uint16 = 0x840 // WROM with SYNC status bit

	// User memory.
	RAMSLCT      uint16 = 0x270
	InstRAMSLCT  uint16 = 0xE70
	READDATA     uint16 = 0x038
	InstREADDATA uint16 = 0x838
	WRITDATA     uint16 = 0x2F0
	InstWRITDATA uint16 = 0xEF0

	InstJNC uint16 = 0xE07 // JNC with SYNC, used by ALD

	// Wand.
	PBSY     uint16 = 0x3AC // set carry if FI 0 set
	WNDB     uint16 = 0x22C // set carry if data in Wand buffer (FI 2)
	InstPBSY uint16 = 0xFAC
	InstWNDB uint16 = 0xE2C

	// Bankswitching.
	InstENBANK1 uint16 = 0x900
	InstENBANK2 uint16 = 0x980
	InstENBANK3 uint16 = 0x940
	InstENBANK4 uint16 = 0x9C0

	// Peripheral selection.
	PRPHSLCT     uint16 = 0x3F0
	InstPRPHSLCT uint16 = 0xFF0

	// HP82143A printer sub-protocol. SELP9 carries SYNC, the rest are
	// issued while the printer owns the bus and have no SYNC bit.
	InstSELP9   uint16 = 0xE64 // 0x264 with SYNC, starts SELP9 mode
	SELP9BUSY   uint16 = 0x003 // set carry if printer busy
	SELP9POWON  uint16 = 0x083 // set carry if printer is ON
	SELP9VALID  uint16 = 0x043 // set carry if status valid
	SELP9PRINTC uint16 = 0x007 // send byte in C[0..1] to the print buffer
	SELP9RDPTRN uint16 = 0x03A // transfer printer status to C[10..13]
	SELP9RTNCPU uint16 = 0x005 // return control to the NUT
)

// SELP0..7 select an HP-IL register. With the SYNC modifier the pattern
// is 0b100ppp100100; the following instruction addresses the register.
const (
	SelpMask    uint16 = 0xE3F // mask to match a SELPn instruction
	SelpMatch   uint16 = 0x824 // 0x824..0x9E4
	SelpRegMask uint16 = 0x1C0 // peripheral number field

	// C=HPIL_p after SELPn: 0b0ppp111010, no SYNC.
	ILReadMask  uint16 = 0x23A
	ILReadMatch uint16 = 0x03A

	// HPIL_p=C: 0b111ppp000000 with SYNC.
	ILWriteMask  uint16 = 0xE3F
	ILWriteMatch uint16 = 0xE00
)

// Peripheral addresses latched by PRPHSLCT from DATA[2..0].
const (
	PrphNone       uint16 = 0x000
	Prph41CL       uint16 = 0x0F0
	PrphMaxx       uint16 = 0x0F3
	PrphTimer      uint16 = 0x0FB
	PrphCardreader uint16 = 0x0FC
	PrphDisplay    uint16 = 0x0FD
	PrphWand       uint16 = 0x0FE
)

// FI flag nibbles. Each flag occupies one 4 bit nibble on the FI line,
// lsb first; the FI output enable is active high while the flag itself
// is active low. Flags 0..7 go out on T0..T31 (low word), flags 8..13
// on T32..T55 (high word).
const (
	FI00 uint32 = 0x00000007 // PBSY (Wand, Printer)
	FI01 uint32 = 0x00000070 // CRDR (Cardreader)
	FI02 uint32 = 0x00000700 // WNDB (Wand)
	FI03 uint32 = 0x00007000
	FI04 uint32 = 0x00070000
	FI05 uint32 = 0x00700000 // EDAV (Blinky IR)
	FI06 uint32 = 0x07000000 // IFCR (HP-IL)
	FI07 uint32 = 0x70000000 // SRQR (HP-IL)

	FI08 uint32 = 0x00000007 // FRAV (HP-IL)
	FI09 uint32 = 0x00000070 // FRNS (HP-IL)
	FI10 uint32 = 0x00000700 // ORAV (HP-IL)
	FI11 uint32 = 0x00007000
	FI12 uint32 = 0x00070000 // ALM (Timer)
	FI13 uint32 = 0x00700000 // SER (all peripherals)

	FI00Off uint32 = 0xFFFFFFF0
	FI02Off uint32 = 0xFFFFF0FF
	FI06Off uint32 = 0xF0FFFFFF
	FI07Off uint32 = 0x0FFFFFFF
	FI08Off uint32 = 0xFFFFFFF0
	FI09Off uint32 = 0xFFFFFF0F
	FI10Off uint32 = 0xFFFFF0FF
)

// Printer status word bits (HP82143A).
const (
	PrtSMA = 15 // TRACE mode when set
	PrtSMB = 14 // NORM when set, MAN when 14 and 15 clear
	PrtPRT = 13 // PRINT key down
	PrtADV = 12 // PAPER ADVANCE key down
	PrtOOP = 11 // Out Of Paper
	PrtLB  = 10 // Low Battery
	PrtIDL = 9  // Idle
	PrtBE  = 8  // Buffer Empty
	PrtLCA = 7  // Lower Case Alpha
	PrtSCO = 6  // Special Column Output (graphics)
	PrtDWM = 5  // Double Wide Mode
	PrtTEO = 4  // Type of End-Of-Line
	PrtEOL = 3  // Last End-Of-Line
	PrtHLD = 2  // Hold for paper

	PrtSMAMask uint16 = 1 << PrtSMA
	PrtSMBMask uint16 = 1 << PrtSMB
	PrtPRTMask uint16 = 1 << PrtPRT
	PrtADVMask uint16 = 1 << PrtADV
	PrtOOPMask uint16 = 1 << PrtOOP
	PrtLBMask  uint16 = 1 << PrtLB
	PrtIDLMask uint16 = 1 << PrtIDL
	PrtBEMask  uint16 = 1 << PrtBE
	PrtLCAMask uint16 = 1 << PrtLCA
	PrtSCOMask uint16 = 1 << PrtSCO
	PrtDWMMask uint16 = 1 << PrtDWM
	PrtTEOMask uint16 = 1 << PrtTEO
	PrtEOLMask uint16 = 1 << PrtEOL
	PrtHLDMask uint16 = 1 << PrtHLD

	// Power on default: IDLE and BUFFER EMPTY set.
	PrtStatusDefault uint16 = PrtIDLMask | PrtBEMask
)

// HP-IL frames handled specially by the engine or the tunnel.
const (
	FrameIFC  uint16 = 0x490 // Interface Clear
	FrameRFC  uint16 = 0x500 // Ready For Command
	FrameIDY  uint16 = 0x6C0 // Auto-IDY keepalive
	FrameTDIS uint16 = 0x494 // PILBox: translator disabled
	FrameCOFI uint16 = 0x495 // PILBox: controller off with IDY
	FrameCON  uint16 = 0x496 // PILBox: controller on
	FrameCOFF uint16 = 0x497 // PILBox: controller off

	NoFrame uint16 = 0xFFFF // queue sentinel: no frame this cycle
)

// Address layout.
const (
	PageSize = 0x1000
	PageMask = 0x0FFF
	AddrMask = 0xFFFF
	NrPages  = 0x10

	FirstUserPage = 0x4 // pages 0..3 are system reserved
)

// Page extracts the hex page from an ISA address.
func Page(addr uint16) int {
	return int(addr >> 12)
}
