/*
 * TULIP4041 - Main process.
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

package main

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	getopt "github.com/pborman/getopt/v2"
	"github.com/rcornwell/tulip4041/command/parser"
	"github.com/rcornwell/tulip4041/command/reader"
	config "github.com/rcornwell/tulip4041/config/configparser"
	"github.com/rcornwell/tulip4041/emu/core"
	"github.com/rcornwell/tulip4041/emu/master"
	"github.com/rcornwell/tulip4041/emu/settings"
	"github.com/rcornwell/tulip4041/telnet"
	logger "github.com/rcornwell/tulip4041/util/logger"
)

var Logger *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "tulip4041.cfg", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optFram := getopt.StringLong("fram", 'f', "tulip4041.fram", "Persistent RAM image")
	optFlash := getopt.StringLong("flash", 'F', "tulip4041.flash", "Flash image store")
	optPort := getopt.IntLong("port", 'p', telnet.DefaultBase, "Base port for the byte channels")
	optDebug := getopt.BoolLong("debug", 'd', "Echo log to stderr")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		file, _ = os.Create(*optLogFile)
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel}, optDebug))
	slog.SetDefault(Logger)

	Logger.Info("TULIP4041 started")

	// Byte channels come up before the core so boot messages land on
	// the console channel.
	channels, err := telnet.Start(*optPort)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	masterChannel := make(chan master.Packet, 16)

	cfg := core.Config{
		FramPath:  *optFram,
		FlashPath: *optFlash,
		Channels:  channels,
	}
	c, err := core.New(cfg, masterChannel)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	registerConfig(c)
	if _, err := os.Stat(*optConfig); err == nil {
		if err := config.LoadConfigFile(*optConfig); err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
	}

	// Start both cores.
	c.Start()

	// Console on stdin alongside the channel servers.
	consoleDone := make(chan struct{})
	go func() {
		reader.ConsoleReader(&parser.Context{Core: c, Master: masterChannel})
		close(consoleDone)
	}()

	// Wait for a SIGINT or SIGTERM to gracefully shut down.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		Logger.Info("Got quit signal")
	case <-consoleDone:
	}

	Logger.Info("Shutting down engine")
	c.Stop()
	Logger.Info("Shutting down servers...")
	telnet.Stop()
	Logger.Info("Servers stopped.")
}

// registerConfig wires the configuration file keywords. The file loads
// before the engine starts, so the handlers may touch core state
// directly.
func registerConfig(c *core.Core) {
	config.Register("plug", func(opts []config.Option) error {
		page, bank := -1, 1
		name := ""
		for _, opt := range opts {
			switch strings.ToLower(opt.Name) {
			case "page":
				page = int(opt.Value)
			case "bank":
				bank = int(opt.Value)
			case "file":
				name = strings.ToUpper(opt.EqualOpt)
			default:
				return errors.New("plug: unknown option " + opt.Name)
			}
		}
		if page < 0 || name == "" {
			return errors.New("plug needs page= and file=")
		}
		file, err := c.Store.Find(name)
		if err != nil {
			return err
		}
		return c.Pages.Plug(page, bank, file.Type, file.Offset, file.Name)
	})

	config.Register("printer", func(opts []config.Option) error {
		for _, opt := range opts {
			switch strings.ToLower(opt.Name) {
			case "power":
				c.Printer.SetPower(strings.EqualFold(opt.EqualOpt, "on"))
			case "mode":
				switch strings.ToLower(opt.EqualOpt) {
				case "man":
					c.Printer.SetMode(0)
				case "norm":
					c.Printer.SetMode(1)
				case "trace":
					c.Printer.SetMode(2)
				default:
					return errors.New("printer mode is man, norm or trace")
				}
			case "plugged":
				on := strings.EqualFold(opt.EqualOpt, "on")
				c.Settings.SetBool(settings.HP82143AEnabled, on)
				c.Settings.SetBool(settings.PrinterPlugged, on)
			default:
				return errors.New("printer: unknown option " + opt.Name)
			}
		}
		return nil
	})

	config.Register("hpil", func(opts []config.Option) error {
		on := true
		for _, opt := range opts {
			if strings.EqualFold(opt.Name, "off") {
				on = false
			}
		}
		c.Settings.SetBool(settings.HP82160AEnabled, on)
		c.Settings.SetBool(settings.HPILPlugged, on)
		return nil
	})

	config.Register("xmem", func(opts []config.Option) error {
		if len(opts) != 1 || !opts[0].IsNumber && opts[0].Name == "" {
			return errors.New("xmem takes a module count")
		}
		n := opts[0].Value
		if !opts[0].IsNumber {
			// bare number form: xmem 2
			v, err := parseCount(opts[0].Name)
			if err != nil {
				return err
			}
			n = v
		}
		if n > 2 {
			return errors.New("xmem takes 0, 1 or 2")
		}
		c.Settings.Set(settings.XMemPages, uint16(n))
		return nil
	})

	config.Register("tracer", func(opts []config.Option) error {
		for _, opt := range opts {
			switch strings.ToLower(opt.Name) {
			case "on":
				c.Settings.SetBool(settings.TracerEnabled, true)
			case "off":
				c.Settings.SetBool(settings.TracerEnabled, false)
			case "sysrom":
				c.Settings.SetBool(settings.TracerSysRomOn, strings.EqualFold(opt.EqualOpt, "on"))
			case "ilrom":
				c.Settings.SetBool(settings.TracerILRomsOn, strings.EqualFold(opt.EqualOpt, "on"))
			case "sysloop":
				c.Settings.SetBool(settings.TracerSysLoopOn, strings.EqualFold(opt.EqualOpt, "on"))
			default:
				return errors.New("tracer: unknown option " + opt.Name)
			}
		}
		return nil
	})

	config.Register("reserve", func(opts []config.Option) error {
		if len(opts) != 1 {
			return errors.New("reserve takes a page")
		}
		v, err := parseCount(opts[0].Name)
		if err != nil || v > 0xF {
			return errors.New("reserve takes a page 0..F")
		}
		c.Pages.Reserve(int(v))
		return nil
	})
}

func parseCount(s string) (uint32, error) {
	var v uint32
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errors.New("not a number: " + s)
		}
		v = v*10 + uint32(r-'0')
	}
	return v, nil
}
