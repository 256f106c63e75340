/*
 * TULIP4041 - emulation core
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

// Package core wires the emulation together and runs both sides: the
// cycle engine on its own goroutine (core 1 on the cartridge) and the
// cooperative round robin of everything else (core 0). Shared state is
// owned by the engine while the calculator runs; the round robin only
// touches it with PWO low.
package core

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rcornwell/tulip4041/emu/busfront"
	"github.com/rcornwell/tulip4041/emu/cycle"
	"github.com/rcornwell/tulip4041/emu/flashstore"
	"github.com/rcornwell/tulip4041/emu/fram"
	"github.com/rcornwell/tulip4041/emu/hpil"
	"github.com/rcornwell/tulip4041/emu/master"
	"github.com/rcornwell/tulip4041/emu/pagemap"
	"github.com/rcornwell/tulip4041/emu/pilbox"
	"github.com/rcornwell/tulip4041/emu/printer"
	"github.com/rcornwell/tulip4041/emu/settings"
	"github.com/rcornwell/tulip4041/emu/stream"
	"github.com/rcornwell/tulip4041/emu/tracer"
	"github.com/rcornwell/tulip4041/emu/xmem"
)

// Power modes derived from PWO and SYNC.
const (
	PowerAwake = iota
	PowerLightSleep
	PowerDeepSleep
)

var powerName = []string{"RUNNING", "STANDBY", "OFF    "}

// Config selects the backing files and channel transport.
type Config struct {
	FramPath  string // persistent RAM image, empty for memory only
	FlashPath string // image store, empty for memory only

	// Channels; unset entries become stream.Null.
	Channels [stream.NumChannels]stream.Stream

	// RebootHook runs on the reboot-to-bootloader command.
	RebootHook func()
}

type Core struct {
	wg     sync.WaitGroup
	done   chan struct{}
	master chan master.Packet

	Bus      *busfront.Frontend
	Settings *settings.Settings
	Fram     *fram.Fram
	Store    *flashstore.Store
	Pages    *pagemap.Map
	Printer  *printer.Printer
	HPIL     *hpil.HPIL
	XMem     *xmem.Memory
	Trace    *tracer.Tracer
	Engine   *cycle.Engine
	Tunnel   *pilbox.Tunnel

	chans  [stream.NumChannels]stream.Stream
	format *tracer.Formatter
	reboot func()

	syncLine  atomic.Bool // SYNC level while PWO is low
	powerMode atomic.Int32
	lastIDY   time.Time
	lastTick  time.Time
	awakeAt   time.Time
}

// New builds a core from the configuration. The master channel feeds
// user commands in.
func New(cfg Config, masterChan chan master.Packet) (*Core, error) {
	c := &Core{
		done:   make(chan struct{}),
		master: masterChan,
		Bus:    busfront.New(),
		reboot: cfg.RebootHook,
	}

	var err error
	if cfg.FramPath != "" {
		c.Fram, err = fram.Open(cfg.FramPath)
		if err != nil {
			return nil, err
		}
	} else {
		c.Fram = fram.Memory()
	}
	if cfg.FlashPath != "" {
		c.Store, err = flashstore.Open(cfg.FlashPath)
		if err != nil {
			return nil, err
		}
	} else {
		c.Store = flashstore.Memory()
	}

	for i := range c.chans {
		if cfg.Channels[i] != nil {
			c.chans[i] = cfg.Channels[i]
		} else {
			c.chans[i] = stream.Null{}
		}
	}

	idle := func() bool { return !c.Bus.PWO() }
	c.Settings = settings.New(c.Fram, idle)
	c.Pages = pagemap.New(c.Store)
	c.boot()

	c.Printer = printer.New(c.Settings)
	c.HPIL = hpil.New()
	c.XMem = xmem.New(c.Settings, c.Fram)
	c.Trace = tracer.New(tracer.DefaultSize)
	c.Engine = cycle.New(c.Bus, c.Settings, c.Pages, c.Printer, c.HPIL, c.XMem, c.Trace)
	c.Tunnel = pilbox.New(c.chans[stream.HPIL])
	c.Tunnel.Scope = c.pilScope
	c.Tunnel.ModeChanged = func(m pilbox.Mode) {
		c.Console("PILBox mode changed to %s", m)
	}
	c.format = tracer.NewFormatter(c.Settings)
	return c, nil
}

// boot loads settings and the page map, installing factory defaults on
// a maiden region.
func (c *Core) boot() {
	if c.Fram.IsInitialised() {
		if err := c.Settings.Retrieve(); err == nil && c.Settings.IsInitialised() {
			if err := c.Pages.Restore(c.Fram.ReadPageMap(pagemap.MapSize)); err != nil {
				slog.Error("page map restore: " + err.Error())
				c.Pages.Clear()
			}
			return
		}
	}

	slog.Info("Persistent region not initialised, installing defaults")
	c.Settings.SetDefault()
	if err := c.Settings.Save(); err != nil {
		slog.Error("settings init: " + err.Error())
	}
	c.Fram.SetInitialised()
	c.Pages.Clear()
	if err := c.Fram.WritePageMap(c.Pages.Serialise()); err != nil {
		slog.Error("page map init: " + err.Error())
	}
}

// Start launches the engine goroutine and the round robin.
func (c *Core) Start() {
	c.lastTick = time.Now()
	c.awakeAt = time.Now()
	c.wg.Add(2)
	go func() {
		defer c.wg.Done()
		c.Engine.Run()
	}()
	go func() {
		defer c.wg.Done()
		c.run()
	}()
}

// Stop shuts both sides down.
func (c *Core) Stop() {
	close(c.done)
	c.Engine.Stop()
	// unblock the engine when it waits for power
	c.Bus.SetPWO(true)
	c.Bus.SetPWO(false)

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		slog.Warn("Timed out waiting for engine to finish.")
	}
}

// Console writes a line to the console channel.
func (c *Core) Console(format string, args ...any) {
	msg := fmt.Sprintf("  "+format+"\r\n", args...)
	c.chans[stream.Console].Write([]byte(msg))
	slog.Debug(msg)
}

// Channel returns one of the byte channels.
func (c *Core) Channel(n int) stream.Stream {
	return c.chans[n]
}

// PowerMode returns the tracked power mode.
func (c *Core) PowerMode() int {
	return int(c.powerMode.Load())
}

// SetPower drives the PWO line, with the SYNC level distinguishing
// light from deep sleep while low.
func (c *Core) SetPower(pwo, sync bool) {
	c.syncLine.Store(sync)
	c.Bus.SetPWO(pwo)
}
