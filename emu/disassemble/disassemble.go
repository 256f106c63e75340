/*
 * TULIP4041 - HP-41 disassembler
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

// Package disassemble turns sampled NUT instruction words into JDA
// style mnemonics. The disassembler is stateful: a class 1 GO/XQ takes
// two instruction words and produces one joined line with the second
// word, and a literal following SELP0..7 decodes as an HP-IL register
// operation.
package disassemble

import "fmt"

// Disassembler carries the two-word and peripheral selection state
// between lines.
type Disassembler struct {
	pending    uint16 // first word of a class 1 instruction
	hasPending bool
	selp       int // active SELP peripheral, -1 when none
}

func New() *Disassembler {
	return &Disassembler{selp: -1}
}

// Reset drops carried state, on PWO edges.
func (d *Disassembler) Reset() {
	d.pending = 0
	d.hasPending = false
	d.selp = -1
}

// Mnemonic returns the plain table entry for a 10 bit opcode.
func Mnemonic(inst uint16) string {
	return mnemonics[inst&0x3FF]
}

// Line disassembles one sampled word. sync is true for an instruction
// fetch. The second result is false while the instruction is waiting
// for its second word; the caller prints a continuation marker.
func (d *Disassembler) Line(inst uint16, sync bool) (string, bool) {
	inst &= 0x3FF

	if sync {
		d.selp = -1
		if inst&0x003 == 0x001 {
			// class 1 is two words, join with the next line
			d.pending = inst
			d.hasPending = true
			return "", false
		}
		d.hasPending = false
		if inst&0x03F == 0x024 {
			// SELPn arms peripheral decode for the literal that follows
			d.selp = int(inst&0x3C0) >> 6
		}
		return mnemonics[inst], true
	}

	// No SYNC: second word of a class 1, or a literal.
	if d.hasPending && d.pending&0x003 == 0x001 {
		first := d.pending
		d.hasPending = false
		var kind string
		switch inst & 0x003 {
		case 0x000:
			kind = "?NC XQ"
		case 0x001:
			kind = "?C XQ"
		case 0x002:
			kind = "?NC GO"
		case 0x003:
			kind = "?C GO"
		}
		return fmt.Sprintf("%s %02X%02X", kind, (inst&0x3FC)>>2, (first&0x3FC)>>2), true
	}

	if d.selp >= 0 && d.selp <= 7 {
		line := ilLiteral(inst, d.selp)
		d.selp = -1
		return line, true
	}
	return fmt.Sprintf("%03X", inst), true
}

// ilLiteral decodes a class 0 literal issued while an HP-IL register
// is selected.
func ilLiteral(inst uint16, selp int) string {
	switch {
	case inst&0x23A == 0x03A:
		return fmt.Sprintf("C[0.1]=reg %d", (inst&0x1C0)>>6)
	case inst&0x003 == 0x001:
		return fmt.Sprintf("reg %d=%02X", selp, (inst&0x3FC)>>2)
	case inst&0x003 == 0x003:
		return fmt.Sprintf("%03X  RTN CPU", inst)
	}
	return fmt.Sprintf("%03X", inst)
}

// ilMnemonics is the HP-IL frame mnemonic table, first match by mask.
var ilMnemonics = []struct {
	code uint16
	mask uint16
	name string
}{
	{0x000, 0x700, "DAB"}, // data frame
	{0x100, 0x700, "DSR"},
	{0x200, 0x700, "END"},
	{0x300, 0x700, "ESR"},
	{0x400, 0x7FF, "NUL"},
	{0x401, 0x7FF, "GTL"},
	{0x404, 0x7FF, "SDC"},
	{0x405, 0x7FF, "PPD"},
	{0x408, 0x7FF, "GET"},
	{0x40F, 0x7FF, "ELN"},
	{0x410, 0x7FF, "NOP"},
	{0x411, 0x7FF, "LLO"},
	{0x414, 0x7FF, "DCL"},
	{0x415, 0x7FF, "PPU"},
	{0x418, 0x7FF, "EAR"},
	{0x43F, 0x7FF, "UNL"},
	{0x420, 0x7E0, "LAD"},
	{0x45F, 0x7FF, "UNT"},
	{0x440, 0x7E0, "TAD"},
	{0x460, 0x7E0, "SAD"},
	{0x480, 0x7F0, "PPE"},
	{0x490, 0x7FF, "IFC"},
	{0x492, 0x7FF, "REN"},
	{0x493, 0x7FF, "NRE"},
	{0x494, 0x7FF, "*TDIS"}, // PILBox commands
	{0x495, 0x7FF, "*COFI"},
	{0x496, 0x7FF, "*CON"},
	{0x497, 0x7FF, "*COFF"},
	{0x49A, 0x7FF, "AAU"},
	{0x49B, 0x7FF, "LPD"},
	{0x4A0, 0x7E0, "DDL"},
	{0x4C0, 0x7E0, "DDT"},
	{0x400, 0x700, "CMD"}, // any other command
	{0x500, 0x7FF, "RFC"},
	{0x540, 0x7FF, "ETO"},
	{0x541, 0x7FF, "ETE"},
	{0x542, 0x7FF, "NRD"},
	{0x560, 0x7FF, "SDA"},
	{0x561, 0x7FF, "SST"},
	{0x562, 0x7FF, "SDI"},
	{0x563, 0x7FF, "SAI"},
	{0x564, 0x7FF, "TCT"},
	{0x580, 0x7E0, "AAD"},
	{0x5A0, 0x7E0, "AEP"},
	{0x5C0, 0x7E0, "AES"},
	{0x5E0, 0x7E0, "AMP"},
	{0x500, 0x700, "RDY"},
	{0x600, 0x700, "IDY"},
	{0x700, 0x700, "ISR"},
}

// ILMnemonic names an HP-IL frame for the scope and the tracer.
func ILMnemonic(frame uint16) string {
	for _, m := range ilMnemonics {
		if frame&m.mask == m.code {
			return m.name
		}
	}
	return "???"
}
