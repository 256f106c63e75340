/*
 * TULIP4041 - Global persistent settings
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

// Package settings holds the fixed vector of 16 bit global settings,
// mirrored in the persistent RAM region. Settings are addressed by the
// mnemonic indices below; the vector layout never changes so stored
// settings survive firmware updates.
package settings

import "errors"

// Setting indices.
const (
	HP82143AEnabled = 0 // HP82143A printer active, SELP9 decoded
	HP82153AEnabled = 1 // HP82153A Wand active
	HP82160AEnabled = 2 // HP82160A HP-IL module active
	HP82242AEnabled = 3 // HP82242A Blinky IR printer active
	HP82104AEnabled = 4 // HP82104A Cardreader active
	HP82182AEnabled = 5 // Time module active
	HP41CLEnabled   = 6 // HP41CL emulation (limited set)
	HEPAXEnabled    = 7 // HEPAX native support
	QROMEnabled     = 8 // WROM instruction decoded
	ROMEnabled      = 9 // ROM reading enabled

	BankswitchEnabled = 10 // ENBANK instructions decoded
	ExpandedEnabled   = 11 // expanded memory (MAXX emulation)

	HPILPlugged      = 15 // HP-IL module plugged in page 7
	ILPrinterPlugged = 16 // IL-Printer module plugged in page 6
	PrinterPlugged   = 17 // HP82143A printer module plugged

	DataDriveEnabled = 20 // driving of DATA output enabled
	IsaDriveEnabled  = 21 // driving of ISA enabled (ROM emulation)
	PwoDriveEnabled  = 22 // driving of PWO for HP41 reset
	FIDriveEnabled   = 23 // driving of FI enabled
	IRDriveEnabled   = 24 // driving of the IR led enabled

	TracerEnabled   = 30 // tracer enabled
	TracerILRegs    = 31 // tracing of HP-IL registers
	TracerDisasm    = 32 // disassembly enabled
	TracerFI        = 33 // FI tracing enabled
	TracerDisType   = 34 // mnemonics style (0 = JDA)
	TracerSysRomOn  = 35 // trace system ROMs, pages 0..5
	TracerUserRomOn = 36 // trace user ROM pages 8..F
	TracerPage4On   = 37 // trace page 4
	TracerPage6On   = 38 // trace page 6
	TracerPage7On   = 39 // trace page 7
	TracerSysLoopOn = 40 // trace known system loops
	TracerILRomsOn  = 41 // trace IL ROMs, pages 6+7

	ILScopeEnabled    = 50 // HP-IL scope enabled
	ILScopePILEnabled = 51 // PILBox byte scope enabled
	ILScopeTraceIDY   = 53 // show IDY frames in the scope

	XMemPages = 60 // number of XMEM modules (0, 1, 2)
	UMemPages = 61 // user memory module bits

	PrtMonitorEnabled = 70 // echo printer characters to console
	PwrMonitorEnabled = 71 // report power mode changes to console

	PrtMode   = 80 // 0 MAN, 1 NORM, 2 TRACE, per SMA/SMB field
	PrtDelay  = 81 // pacing for IR printing
	PrtPaper  = 82 // paper loaded
	PrtPower  = 83 // printer power
	PrtSerial = 84 // send printer output to the serial channel

	CLIonUSB     = 90 // console on USB CDC rather than serial
	PwoEventShow = 91 // show PWO events on the console
	InitOK       = 92 // init magic, InitValue when initialised
	SetNum       = 93 // active set of settings

	LastItem = 99
	NumItems = LastItem + 1
)

// InitValue marks an initialised settings vector.
const InitValue = 0x4041

// ErrCalcRunning is returned when persistent storage is touched while
// the calculator is running (PWO high). The FRAM bus is owned by the
// cycle engine then.
var ErrCalcRunning = errors.New("calculator is running, operation needs PWO low")

// Store is the persistent backing for the settings vector.
type Store interface {
	ReadSettings() ([NumItems]uint16, error)
	WriteSettings([NumItems]uint16) error
}

type Settings struct {
	value [NumItems]uint16
	store Store
	idle  func() bool // true when PWO is low; nil means always idle
}

// New returns a settings vector backed by store. The idle check guards
// Save and Retrieve; pass nil to disable the guard (tests).
func New(store Store, idle func() bool) *Settings {
	return &Settings{store: store, idle: idle}
}

// Get returns the value of setting i. Out of range reads return 0.
func (s *Settings) Get(i int) uint16 {
	if i < 0 || i >= NumItems {
		return 0
	}
	return s.value[i]
}

// GetBool returns setting i interpreted as a flag.
func (s *Settings) GetBool(i int) bool {
	return s.Get(i) != 0
}

// Set updates setting i in memory. Save makes it persistent.
func (s *Settings) Set(i int, v uint16) {
	if i < 0 || i >= NumItems {
		return
	}
	s.value[i] = v
}

// SetBool updates flag setting i.
func (s *Settings) SetBool(i int, v bool) {
	if v {
		s.Set(i, 1)
	} else {
		s.Set(i, 0)
	}
}

// IsInitialised reports whether the vector carries the init magic.
func (s *Settings) IsInitialised() bool {
	return s.value[InitOK] == InitValue
}

// SetDefault installs the factory defaults and the init magic.
func (s *Settings) SetDefault() {
	for i := range s.value {
		s.value[i] = 0
	}
	s.value[ROMEnabled] = 1
	s.value[BankswitchEnabled] = 1
	s.value[DataDriveEnabled] = 1
	s.value[IsaDriveEnabled] = 1
	s.value[FIDriveEnabled] = 1

	s.value[TracerEnabled] = 1
	s.value[TracerDisasm] = 1
	s.value[TracerUserRomOn] = 1
	s.value[TracerPage4On] = 1

	s.value[PrtMode] = 1 // NORM
	s.value[PrtPaper] = 1
	s.value[PrtPower] = 0
	s.value[XMemPages] = 0

	s.value[ILScopeEnabled] = 1
	s.value[ILScopeTraceIDY] = 1

	s.value[InitOK] = InitValue
}

// Save writes the vector to the persistent store. Needs PWO low.
func (s *Settings) Save() error {
	if s.idle != nil && !s.idle() {
		return ErrCalcRunning
	}
	return s.store.WriteSettings(s.value)
}

// Retrieve loads the vector from the persistent store. Needs PWO low.
func (s *Settings) Retrieve() error {
	if s.idle != nil && !s.idle() {
		return ErrCalcRunning
	}
	value, err := s.store.ReadSettings()
	if err != nil {
		return err
	}
	s.value = value
	return nil
}

// Vector returns a copy of the full settings vector.
func (s *Settings) Vector() [NumItems]uint16 {
	return s.value
}
