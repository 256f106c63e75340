/*
 * TULIP4041 - core command processing
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
	"log/slog"

	"github.com/rcornwell/tulip4041/emu/master"
	"github.com/rcornwell/tulip4041/emu/settings"
)

// requireIdle guards every mutation of engine owned state: while the
// calculator runs, the cycle engine owns it all.
func (c *Core) requireIdle(what string) bool {
	if c.Bus.PWO() {
		c.Console("%s refused: %s", what, settings.ErrCalcRunning.Error())
		return false
	}
	return true
}

// processPacket runs one user command on the round robin thread.
func (c *Core) processPacket(packet master.Packet) {
	switch packet.Msg {
	case master.Reset:
		if !c.requireIdle("reset") {
			return
		}
		c.HPIL.Reset()
		c.XMem.Flush()
		c.Pages.ResetBanks()
		c.Console("emulation state reset")

	case master.Reboot:
		c.Console("rebooting to bootloader")
		if c.reboot != nil {
			c.reboot()
		}

	case master.PlugImage:
		if !c.requireIdle("plug") {
			return
		}
		file, err := c.Store.Find(packet.Name)
		if err != nil {
			c.Console("plug %s: %s", packet.Name, err.Error())
			return
		}
		err = c.Pages.Plug(packet.Page, packet.Bank, file.Type, file.Offset, file.Name)
		if err != nil {
			c.Console("plug %s: %s", packet.Name, err.Error())
			return
		}
		c.savePages()
		c.Console("plugged %s into page %X bank %d", file.Name, packet.Page, packet.Bank)

	case master.UnplugPage:
		if !c.requireIdle("unplug") {
			return
		}
		if err := c.Pages.Unplug(packet.Page, packet.Bank); err != nil {
			c.Console("unplug: %s", err.Error())
			return
		}
		c.savePages()
		c.Console("unplugged page %X bank %d", packet.Page, packet.Bank)

	case master.ReservePage:
		if !c.requireIdle("reserve") {
			return
		}
		c.Pages.Reserve(packet.Page)
		c.savePages()
		c.Console("page %X reserved", packet.Page)

	case master.PrinterPower:
		c.Printer.SetPower(!c.Printer.PowerOn())
		c.Console("printer power %v", c.Printer.PowerOn())

	case master.PrinterMode:
		c.Printer.SetMode(packet.Value)
		c.Console("printer mode %d", c.Printer.Mode())

	case master.PrinterPrint:
		c.Printer.PressPrint()

	case master.PrinterAdv:
		c.Printer.PressAdv()

	case master.PrinterPaper:
		c.Printer.TogglePaper()

	case master.HPILPlug:
		on := !c.Settings.GetBool(settings.HP82160AEnabled)
		c.Settings.SetBool(settings.HP82160AEnabled, on)
		c.Settings.SetBool(settings.HPILPlugged, on)
		c.Console("HP-IL module %v", on)

	case master.XMemCount:
		if !c.requireIdle("xmem") {
			return
		}
		if packet.Value < 0 || packet.Value > 2 {
			c.Console("xmem count must be 0..2")
			return
		}
		c.Settings.Set(settings.XMemPages, uint16(packet.Value))
		c.saveSettings()
		c.Console("XMEM modules: %d", packet.Value)

	case master.TracerOnOff:
		c.Settings.Set(settings.TracerEnabled, uint16(packet.Value))
		c.Console("tracer enabled: %v", packet.Value != 0)

	case master.PowerOn:
		c.SetPower(true, true)

	case master.PowerOff:
		c.SetPower(false, packet.Value != 0)

	case master.WakeUp:
		c.Bus.Wake()

	default:
		slog.Warn("unknown master packet")
	}
}

func (c *Core) savePages() {
	if err := c.Fram.WritePageMap(c.Pages.Serialise()); err != nil {
		c.Console("page map save failed: %s", err.Error())
	}
}

func (c *Core) saveSettings() {
	if err := c.Settings.Save(); err != nil {
		c.Console("settings save failed: %s", err.Error())
	}
}
