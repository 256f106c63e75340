/*
 * TULIP4041 - Command parser
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

// Package parser interprets the console commands: plugging images,
// driving the printer and HP-IL peripherals, power control and the
// image store housekeeping.
package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/rcornwell/tulip4041/emu/core"
	"github.com/rcornwell/tulip4041/emu/master"
	"github.com/rcornwell/tulip4041/emu/modfile"
	"github.com/rcornwell/tulip4041/emu/settings"
)

var ErrArgs = errors.New("invalid arguments, try help")

type command struct {
	name    string
	help    string
	handler func(ctx *Context, args []string) (bool, error)
}

// Context hands the parser its targets.
type Context struct {
	Core   *core.Core
	Master chan<- master.Packet
}

var commands []command

func init() {
	commands = []command{
		{"help", "help - list commands", cmdHelp},
		{"exit", "exit - leave the console", cmdExit},
		{"quit", "quit - leave the console", cmdExit},
		{"reset", "reset - reset emulation state (PWO low)", cmdReset},
		{"reboot", "reboot - reboot to bootloader", cmdReboot},
		{"power", "power on|sleep|off - drive the PWO line", cmdPower},
		{"wake", "wake - pull ISA to wake the calculator", cmdWake},
		{"plug", "plug <file> <page> [bank] - plug a stored image", cmdPlug},
		{"unplug", "unplug <page> [bank] - remove an image", cmdUnplug},
		{"reserve", "reserve <page> - reserve a page for a physical module", cmdReserve},
		{"printer", "printer power|print|adv|paper|mode man|norm|trace", cmdPrinter},
		{"hpil", "hpil - toggle the HP-IL module", cmdHPIL},
		{"xmem", "xmem <0..2> - set extended memory modules", cmdXMem},
		{"tracer", "tracer on|off|sysrom|ilrom|sysloop|ilregs - tracer control", cmdTracer},
		{"files", "files - list the image store", cmdFiles},
		{"import", "import <path> [name] - import a ROM/MOD image file", cmdImport},
		{"delete", "delete <name> - delete a stored image", cmdDelete},
		{"settings", "settings - show the global settings", cmdSettings},
		{"status", "status - show page map and peripheral state", cmdStatus},
		{"dump", "dump - dump emulation state", cmdDump},
	}
}

// ProcessCommand interprets one console line. The first result is true
// when the console should close.
func ProcessCommand(line string, ctx *Context) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	name := strings.ToLower(fields[0])
	for i := range commands {
		if commands[i].name == name {
			return commands[i].handler(ctx, fields[1:])
		}
	}
	return false, errors.New("unknown command: " + name + ", try help")
}

// CompleteCmd offers command completions for the line editor.
func CompleteCmd(line string) []string {
	var out []string
	for i := range commands {
		if strings.HasPrefix(commands[i].name, strings.ToLower(line)) {
			out = append(out, commands[i].name)
		}
	}
	return out
}

func cmdHelp(_ *Context, _ []string) (bool, error) {
	for i := range commands {
		if commands[i].name == "quit" {
			continue
		}
		fmt.Println("  " + commands[i].help)
	}
	return false, nil
}

func cmdExit(_ *Context, _ []string) (bool, error) {
	return true, nil
}

func cmdReset(ctx *Context, _ []string) (bool, error) {
	ctx.Master <- master.Packet{Msg: master.Reset}
	return false, nil
}

func cmdReboot(ctx *Context, _ []string) (bool, error) {
	ctx.Master <- master.Packet{Msg: master.Reboot}
	return false, nil
}

func cmdPower(ctx *Context, args []string) (bool, error) {
	if len(args) != 1 {
		return false, ErrArgs
	}
	switch strings.ToLower(args[0]) {
	case "on":
		ctx.Master <- master.Packet{Msg: master.PowerOn}
	case "sleep":
		ctx.Master <- master.Packet{Msg: master.PowerOff, Value: 1}
	case "off":
		ctx.Master <- master.Packet{Msg: master.PowerOff}
	default:
		return false, ErrArgs
	}
	return false, nil
}

func cmdWake(ctx *Context, _ []string) (bool, error) {
	ctx.Master <- master.Packet{Msg: master.WakeUp}
	return false, nil
}

func parsePage(s string) (int, error) {
	page, err := strconv.ParseUint(s, 16, 8)
	if err != nil || page > 0xF {
		return 0, errors.New("page must be 0..F")
	}
	return int(page), nil
}

func cmdPlug(ctx *Context, args []string) (bool, error) {
	if len(args) < 2 || len(args) > 3 {
		return false, ErrArgs
	}
	page, err := parsePage(args[1])
	if err != nil {
		return false, err
	}
	bank := 1
	if len(args) == 3 {
		b, err := strconv.Atoi(args[2])
		if err != nil || b < 1 || b > 4 {
			return false, errors.New("bank must be 1..4")
		}
		bank = b
	}
	ctx.Master <- master.Packet{Msg: master.PlugImage, Name: args[0], Page: page, Bank: bank}
	return false, nil
}

func cmdUnplug(ctx *Context, args []string) (bool, error) {
	if len(args) < 1 || len(args) > 2 {
		return false, ErrArgs
	}
	page, err := parsePage(args[0])
	if err != nil {
		return false, err
	}
	bank := 1
	if len(args) == 2 {
		b, err := strconv.Atoi(args[1])
		if err != nil || b < 1 || b > 4 {
			return false, errors.New("bank must be 1..4")
		}
		bank = b
	}
	ctx.Master <- master.Packet{Msg: master.UnplugPage, Page: page, Bank: bank}
	return false, nil
}

func cmdReserve(ctx *Context, args []string) (bool, error) {
	if len(args) != 1 {
		return false, ErrArgs
	}
	page, err := parsePage(args[0])
	if err != nil {
		return false, err
	}
	ctx.Master <- master.Packet{Msg: master.ReservePage, Page: page}
	return false, nil
}

func cmdPrinter(ctx *Context, args []string) (bool, error) {
	if len(args) == 0 {
		return false, ErrArgs
	}
	switch strings.ToLower(args[0]) {
	case "power":
		ctx.Master <- master.Packet{Msg: master.PrinterPower}
	case "print":
		ctx.Master <- master.Packet{Msg: master.PrinterPrint}
	case "adv":
		ctx.Master <- master.Packet{Msg: master.PrinterAdv}
	case "paper":
		ctx.Master <- master.Packet{Msg: master.PrinterPaper}
	case "mode":
		if len(args) != 2 {
			return false, ErrArgs
		}
		var mode int
		switch strings.ToLower(args[1]) {
		case "man":
			mode = 0
		case "norm":
			mode = 1
		case "trace":
			mode = 2
		default:
			return false, errors.New("mode is man, norm or trace")
		}
		ctx.Master <- master.Packet{Msg: master.PrinterMode, Value: mode}
	default:
		return false, ErrArgs
	}
	return false, nil
}

func cmdHPIL(ctx *Context, _ []string) (bool, error) {
	ctx.Master <- master.Packet{Msg: master.HPILPlug}
	return false, nil
}

func cmdXMem(ctx *Context, args []string) (bool, error) {
	if len(args) != 1 {
		return false, ErrArgs
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 || n > 2 {
		return false, errors.New("xmem takes 0, 1 or 2")
	}
	ctx.Master <- master.Packet{Msg: master.XMemCount, Value: n}
	return false, nil
}

func cmdTracer(ctx *Context, args []string) (bool, error) {
	if len(args) == 0 {
		return false, ErrArgs
	}
	set := ctx.Core.Settings
	flag := func(idx int) {
		set.SetBool(idx, !set.GetBool(idx))
		fmt.Printf("  %s: %v\n", settings.Describe(idx), set.GetBool(idx))
	}
	switch strings.ToLower(args[0]) {
	case "on":
		ctx.Master <- master.Packet{Msg: master.TracerOnOff, Value: 1}
	case "off":
		ctx.Master <- master.Packet{Msg: master.TracerOnOff, Value: 0}
	case "sysrom":
		flag(settings.TracerSysRomOn)
	case "ilrom":
		flag(settings.TracerILRomsOn)
	case "sysloop":
		flag(settings.TracerSysLoopOn)
	case "ilregs":
		flag(settings.TracerILRegs)
	default:
		return false, ErrArgs
	}
	return false, nil
}

func cmdFiles(ctx *Context, _ []string) (bool, error) {
	files := ctx.Core.Store.List()
	if len(files) == 0 {
		fmt.Println("  image store is empty")
		return false, nil
	}
	for _, f := range files {
		fmt.Printf("  %-31s type %02X  %6d bytes at %06X\n", f.Name, f.Type, f.Size, f.Offset)
	}
	return false, nil
}

// fileTypeOf derives the store type from the file extension.
func fileTypeOf(path string) (byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mod":
		return modfile.FileMOD1, nil
	case ".mod2":
		return modfile.FileMOD2, nil
	case ".rom":
		return modfile.FileROM, nil
	default:
		return 0, errors.New("unknown image type, use .mod, .mod2 or .rom")
	}
}

func cmdImport(ctx *Context, args []string) (bool, error) {
	if len(args) < 1 || len(args) > 2 {
		return false, ErrArgs
	}
	fileType, err := fileTypeOf(args[0])
	if err != nil {
		return false, err
	}
	name := strings.ToUpper(strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0])))
	if len(args) == 2 {
		name = strings.ToUpper(args[1])
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return false, err
	}
	info, err := ctx.Core.Store.Import(name, fileType, data)
	if err != nil {
		return false, err
	}
	fmt.Printf("  imported %s, %d bytes at %06X\n", info.Name, info.Size, info.Offset)
	return false, nil
}

func cmdDelete(ctx *Context, args []string) (bool, error) {
	if len(args) != 1 {
		return false, ErrArgs
	}
	return false, ctx.Core.Store.Delete(strings.ToUpper(args[0]))
}

func cmdSettings(ctx *Context, _ []string) (bool, error) {
	vec := ctx.Core.Settings.Vector()
	for i, v := range vec {
		name := settings.Describe(i)
		if name == "" {
			continue
		}
		fmt.Printf("  %2d  %-40s %04X\n", i, name, v)
	}
	return false, nil
}

func cmdStatus(ctx *Context, _ []string) (bool, error) {
	pages := ctx.Core.Pages
	for page := 0; page < 16; page++ {
		bank := pages.CurrentBank(page)
		sticky := ' '
		if pages.Sticky(page) {
			sticky = '*'
		}
		state := "empty"
		switch {
		case pages.Reserved(page):
			state = "reserved"
		case pages.Enabled(page, bank):
			state = pages.Pages[page].Banks[bank].Name
		}
		fmt.Printf("  page %X bank %d%c  %s\n", page, bank, sticky, state)
	}
	fmt.Printf("  printer status %04X  PILBox %s  powermode %s\n",
		ctx.Core.Printer.Status(), ctx.Core.Tunnel.Mode(), powerName(ctx.Core.PowerMode()))
	return false, nil
}

func powerName(mode int) string {
	switch mode {
	case core.PowerAwake:
		return "RUNNING"
	case core.PowerLightSleep:
		return "STANDBY"
	}
	return "OFF"
}

func cmdDump(ctx *Context, _ []string) (bool, error) {
	cfg := spew.NewDefaultConfig()
	cfg.MaxDepth = 2
	cfg.Dump(ctx.Core.Printer, ctx.Core.HPIL.Regs(), ctx.Core.Settings.Vector())
	return false, nil
}
