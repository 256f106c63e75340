/*
 * TULIP4041 - core test cases.
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

package core

import (
	"strings"
	"testing"

	"github.com/rcornwell/tulip4041/emu/master"
	"github.com/rcornwell/tulip4041/emu/modfile"
	"github.com/rcornwell/tulip4041/emu/settings"
	"github.com/rcornwell/tulip4041/emu/stream"
)

func newCore(t *testing.T) (*Core, *stream.Buffer) {
	t.Helper()
	console := stream.NewBuffer()
	cfg := Config{}
	cfg.Channels[stream.Console] = console
	c, err := New(cfg, make(chan master.Packet, 4))
	if err != nil {
		t.Fatal(err)
	}
	return c, console
}

// A maiden persistent region boots with factory defaults installed.
func TestBootInstallsDefaults(t *testing.T) {
	c, _ := newCore(t)
	if !c.Settings.IsInitialised() {
		t.Error("settings not initialised on first boot")
	}
	if !c.Fram.IsInitialised() {
		t.Error("persistent region magic not written")
	}
	if !c.Settings.GetBool(settings.TracerEnabled) {
		t.Error("factory defaults not installed")
	}
	for page := 0; page < 4; page++ {
		if !c.Pages.Reserved(page) {
			t.Errorf("system page %X not reserved after boot", page)
		}
	}
}

// Mutations of engine owned state are refused while PWO is high.
func TestCommandsNeedIdleBus(t *testing.T) {
	c, console := newCore(t)
	c.Bus.SetPWO(true)

	c.processPacket(master.Packet{Msg: master.XMemCount, Value: 2})
	out := string(console.Sent())
	if !strings.Contains(out, "refused") {
		t.Errorf("xmem while running not refused: %q", out)
	}
	if c.Settings.Get(settings.XMemPages) == 2 {
		t.Error("xmem count changed while running")
	}

	c.Bus.SetPWO(false)
	c.processPacket(master.Packet{Msg: master.XMemCount, Value: 2})
	if c.Settings.Get(settings.XMemPages) != 2 {
		t.Error("xmem count not set with the bus idle")
	}
}

func TestPlugCommand(t *testing.T) {
	c, console := newCore(t)
	if _, err := c.Store.Import("ADV", modfile.FileROM, make([]byte, modfile.MOD2PageSize)); err != nil {
		t.Fatal(err)
	}

	c.processPacket(master.Packet{Msg: master.PlugImage, Name: "ADV", Page: 8, Bank: 1})
	if !c.Pages.Enabled(8, 1) {
		t.Error("image not plugged")
	}

	c.processPacket(master.Packet{Msg: master.PlugImage, Name: "MISSING", Page: 9, Bank: 1})
	if !strings.Contains(string(console.Sent()), "not found") {
		t.Error("missing image not reported")
	}
	if c.Pages.Enabled(9, 1) {
		t.Error("page changed for a missing image")
	}

	c.processPacket(master.Packet{Msg: master.UnplugPage, Page: 8, Bank: 1})
	if c.Pages.Enabled(8, 1) {
		t.Error("image not unplugged")
	}
}

func TestPrinterCommands(t *testing.T) {
	c, _ := newCore(t)
	c.processPacket(master.Packet{Msg: master.PrinterPower})
	if !c.Printer.PowerOn() {
		t.Error("printer power toggle lost")
	}
	c.processPacket(master.Packet{Msg: master.PrinterMode, Value: 2})
	if c.Printer.Mode() != 2 {
		t.Error("printer mode not set")
	}
	c.processPacket(master.Packet{Msg: master.PrinterAdv})
	if c.Printer.Status()&0x1000 == 0 {
		t.Error("ADV key not latched")
	}
}

func TestHPILPlugToggle(t *testing.T) {
	c, _ := newCore(t)
	was := c.Settings.GetBool(settings.HP82160AEnabled)
	c.processPacket(master.Packet{Msg: master.HPILPlug})
	if c.Settings.GetBool(settings.HP82160AEnabled) == was {
		t.Error("HP-IL toggle lost")
	}
}

// The reboot hook fires on the reboot command.
func TestRebootHook(t *testing.T) {
	console := stream.NewBuffer()
	fired := false
	cfg := Config{RebootHook: func() { fired = true }}
	cfg.Channels[stream.Console] = console
	c, err := New(cfg, make(chan master.Packet, 1))
	if err != nil {
		t.Fatal(err)
	}
	c.processPacket(master.Packet{Msg: master.Reboot})
	if !fired {
		t.Error("reboot hook not called")
	}
}

// Settings survive a save and a fresh boot from the same region.
func TestPersistOverBoot(t *testing.T) {
	c, _ := newCore(t)
	c.Settings.Set(settings.XMemPages, 1)
	if err := c.Settings.Save(); err != nil {
		t.Fatal(err)
	}

	v, err := c.Fram.ReadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if v[settings.XMemPages] != 1 {
		t.Error("setting lost over save")
	}
}
