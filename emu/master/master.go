/*
 * TULIP4041 - master channel packets
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

// Package master carries the packets between the console, the channel
// servers and the emulation core.
package master

// Packet messages.
const (
	Reset = 1 + iota // restart the emulation state
	Reboot           // reboot to bootloader

	PlugImage   // plug image Name into Page, Bank
	UnplugPage  // unplug Page, Bank
	ReservePage // reserve Page for a physical module

	PrinterPower // toggle printer power
	PrinterMode  // set printer mode to Value
	PrinterPrint // press the PRINT key
	PrinterAdv   // press the PAPER ADVANCE key
	PrinterPaper // toggle out-of-paper

	HPILPlug  // toggle the HP-IL module
	XMemCount // set the number of XMEM modules to Value

	TracerOnOff // enable or disable the tracer per Value
	PowerOn     // drive PWO high (calculator runs)
	PowerOff    // drop PWO (Value 1 = light sleep, 0 = deep sleep)
	WakeUp      // pull ISA to wake the calculator
)

// Packet is one command for the core.
type Packet struct {
	Msg   int
	Page  int
	Bank  int
	Value int
	Name  string
}
