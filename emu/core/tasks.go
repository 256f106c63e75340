/*
 * TULIP4041 - round robin tasks
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
	"fmt"
	"time"

	"github.com/rcornwell/tulip4041/emu/disassemble"
	"github.com/rcornwell/tulip4041/emu/event"
	"github.com/rcornwell/tulip4041/emu/hp41"
	"github.com/rcornwell/tulip4041/emu/printer"
	"github.com/rcornwell/tulip4041/emu/settings"
	"github.com/rcornwell/tulip4041/emu/stream"
)

// Per-trip work bounds keep every task short so the others stay
// serviced.
const (
	traceBatch = 64
	printBatch = 16
	ilBatch    = 8
)

// autoIDYPeriod is the keepalive cadence toward HP-IL devices while
// the calculator naps between keystrokes.
const autoIDYPeriod = 10 * time.Millisecond

// run is the cooperative round robin, one thread. No task blocks.
func (c *Core) run() {
	ticker := time.NewTicker(200 * time.Microsecond)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case packet := <-c.master:
			c.processPacket(packet)
		case <-ticker.C:
		}

		c.powerTask()
		c.tracerTask()
		c.printerTask()
		c.hpilTask()

		now := time.Now()
		event.Advance(int(now.Sub(c.lastTick).Microseconds()))
		c.lastTick = now
	}
}

// powerTask keeps the power mode current and handles the write backs
// that must wait for a quiet bus.
func (c *Core) powerTask() {
	mode := PowerDeepSleep
	switch {
	case c.Bus.PWO():
		mode = PowerAwake
	case c.syncLine.Load():
		mode = PowerLightSleep
	}
	prev := int(c.powerMode.Swap(int32(mode)))
	if prev == mode {
		return
	}

	if c.Settings.GetBool(settings.PwrMonitorEnabled) {
		elapsed := time.Since(c.awakeAt)
		msg := fmt.Sprintf("** HP41 Powermode: %s - previous mode %s after %d.%03d secs",
			powerName[mode], powerName[prev], int(elapsed.Seconds()), elapsed.Milliseconds()%1000)
		if prev == PowerAwake {
			msg += fmt.Sprintf(" %9d bus cycles", c.Engine.Cycles())
		}
		c.Console("%s", msg)
	}
	c.awakeAt = time.Now()

	// Dropping out of awake: the engine stalls on empty FIFOs, the
	// persistent bus is ours.
	if prev == PowerAwake && c.Pages.Dirty() {
		if err := c.Fram.WritePageMap(c.Pages.Serialise()); err != nil {
			c.Console("page map save failed: %s", err.Error())
		}
	}
	if mode == PowerAwake {
		c.format.Reset()
	}
}

// tracerTask drains sampled cycles into the tracer channel.
func (c *Core) tracerTask() {
	out := c.chans[stream.Tracer]
	enabled := c.Settings.GetBool(settings.TracerEnabled) && out.Connected()

	for i := 0; i < traceBatch; i++ {
		rec, ok := c.Trace.Pop()
		if !ok {
			return
		}
		if !enabled {
			continue // keep draining so the ring never silts up
		}
		for _, r := range c.Trace.Triggered(rec) {
			if line, ok := c.format.Line(r); ok {
				out.Write([]byte(line + "\n\r"))
			}
		}
	}
	out.Flush()
}

// printerTask moves print characters to the printer channel and the IR
// emitter.
func (c *Core) printerTask() {
	for i := 0; i < printBatch; i++ {
		ch, ok := c.Printer.Pop()
		if !ok {
			return
		}
		if c.Settings.GetBool(settings.PrtSerial) {
			c.chans[stream.Printer].Write([]byte{ch})
		}
		if c.Settings.GetBool(settings.IRDriveEnabled) {
			// IR frames pace out through the event queue so a slow
			// receiver keeps up
			delay := int(c.Settings.Get(settings.PrtDelay)) * 1000
			event.AddEvent(c, c.sendIR, delay, int(ch))
		}
		if c.Settings.GetBool(settings.PrtMonitorEnabled) {
			c.Console("printer: %02X", ch)
		}
	}
}

// sendIR pushes one paced IR frame to the driver.
func (c *Core) sendIR(ch int) {
	c.Bus.PutIR(printer.EncodeFrame(byte(ch)))
}

// hpilTask pumps frames between the register model and the PILBox
// tunnel and emits the Auto-IDY keepalives.
func (c *Core) hpilTask() {
	if !c.Settings.GetBool(settings.HP82160AEnabled) {
		return
	}

	for i := 0; i < ilBatch; i++ {
		frame, ok := c.HPIL.PopOut()
		if !ok {
			break
		}
		c.ilScope(frame, true)
		c.Tunnel.SendFrame(frame)
	}

	for i := 0; i < ilBatch; i++ {
		frame, ok := c.Tunnel.RecvFrame()
		if !ok {
			break
		}
		c.ilScope(frame, false)
		c.HPIL.PushIn(frame)
	}

	if c.PowerMode() == PowerLightSleep && c.HPIL.AutoIDYArmed() {
		if time.Since(c.lastIDY) >= autoIDYPeriod {
			c.lastIDY = time.Now()
			c.HPIL.SendFrame(hp41.FrameIDY)
		}
	}
}

// ilScope logs a frame on the IL scope channel.
func (c *Core) ilScope(frame uint16, out bool) {
	scope := c.chans[stream.ILScope]
	if !scope.Connected() || !c.Settings.GetBool(settings.ILScopeEnabled) {
		return
	}
	if frame&0x700 == 0x600 && !c.Settings.GetBool(settings.ILScopeTraceIDY) {
		return
	}
	dir := "<"
	if out {
		dir = ">"
	}
	fmt.Fprintf(scope, " %s %03X %s                           [%8d]\n\r",
		dir, frame, disassemble.ILMnemonic(frame), c.Engine.Cycles())
}

// pilScope logs the raw tunnel bytes on the IL scope channel.
func (c *Core) pilScope(frame uint16, hi, lo byte, out bool) {
	scope := c.chans[stream.ILScope]
	if !scope.Connected() || !c.Settings.GetBool(settings.ILScopePILEnabled) {
		return
	}
	dir := "<"
	if out {
		dir = ">"
	}
	fmt.Fprintf(scope, "  PILBox %s %04X %02X %02X\n\r", dir, frame, hi, lo)
}
