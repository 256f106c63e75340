/*
 * TULIP4041 - Setting descriptions for the console.
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

package settings

var describe = map[int]string{
	HP82143AEnabled: "HP82143A Printer enabled",
	HP82153AEnabled: "HP82153A Wand enabled",
	HP82160AEnabled: "HP82160A HP-IL enabled",
	HP82242AEnabled: "HP82242A IR Printer enabled",
	HP82104AEnabled: "HP82104A Cardreader enabled",
	HP82182AEnabled: "HP82182A Time Module enabled",
	HP41CLEnabled:   "HP41CL emulation enabled",
	HEPAXEnabled:    "HEPAX instructions enabled",
	QROMEnabled:     "QROM enabled (WROM decoded)",
	ROMEnabled:      "ROM reading enabled",

	BankswitchEnabled: "Bankswitching enabled",
	ExpandedEnabled:   "Expanded memory enabled",

	HPILPlugged:      "HP-IL module plugged in page 7",
	ILPrinterPlugged: "IL-Printer module plugged in page 6",
	PrinterPlugged:   "HP82143A Printer module plugged",

	DataDriveEnabled: "DATA drive enabled",
	IsaDriveEnabled:  "ISA drive enabled",
	PwoDriveEnabled:  "PWO drive enabled",
	FIDriveEnabled:   "FI drive enabled",
	IRDriveEnabled:   "IR drive enabled",

	TracerEnabled:   "Tracer enabled",
	TracerILRegs:    "Tracing HP-IL registers",
	TracerDisasm:    "Tracer disassembler on",
	TracerFI:        "Tracer FI line on",
	TracerDisType:   "Tracer mnemonics type",
	TracerSysRomOn:  "Tracing system ROMs pages 0..5",
	TracerUserRomOn: "Tracing user ROM pages 8..F",
	TracerPage4On:   "Tracing page 4",
	TracerPage6On:   "Tracing page 6",
	TracerPage7On:   "Tracing page 7",
	TracerSysLoopOn: "Tracing system loops",
	TracerILRomsOn:  "Tracing IL ROMs pages 6+7",

	ILScopeEnabled:    "HP-IL scope enabled",
	ILScopePILEnabled: "PILBox scope enabled",
	ILScopeTraceIDY:   "IDY frames in HP-IL scope",

	XMemPages: "Extended memory modules",
	UMemPages: "User memory modules",

	PrtMonitorEnabled: "Printer character monitor",
	PwrMonitorEnabled: "Power mode monitor",

	PrtMode:   "Printer mode (0 MAN, 1 NORM, 2 TRACE)",
	PrtDelay:  "IR printer delay",
	PrtPaper:  "Printer paper loaded",
	PrtPower:  "Printer power",
	PrtSerial: "Printer serial output",

	CLIonUSB:     "Console on USB",
	PwoEventShow: "Show PWO events",
	InitOK:       "Settings initialised magic",
	SetNum:       "Active settings set",
}

// Describe returns the human readable name of setting i, or empty for
// placeholder slots.
func Describe(i int) string {
	return describe[i]
}
