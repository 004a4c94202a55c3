// This file is part of Gopherz80.
//
// Gopherz80 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherz80 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherz80.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/gopherz80/digest"
	"github.com/jetsetilly/gopherz80/disassembly"
	"github.com/jetsetilly/gopherz80/disassembly/symbols"
	"github.com/jetsetilly/gopherz80/govern"
	"github.com/jetsetilly/gopherz80/hardware"
	"github.com/jetsetilly/gopherz80/hardware/clocks"
	"github.com/jetsetilly/gopherz80/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherz80/hardware/preferences"
	"github.com/jetsetilly/gopherz80/logger"
	"github.com/jetsetilly/gopherz80/modalflag"
	"github.com/jetsetilly/gopherz80/monitor"
	"github.com/jetsetilly/gopherz80/performance"
	"github.com/jetsetilly/gopherz80/performance/limiter"
	"github.com/jetsetilly/gopherz80/prefs"
	"github.com/jetsetilly/gopherz80/scripting"
	"github.com/jetsetilly/gopherz80/statsview"
	"github.com/jetsetilly/gopherz80/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate, for example when the terminal is in raw mode.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// mainSync is used to communicate between the main thread and the launch
// goroutine.
type mainSync struct {
	state chan stateRequest

	// set by the main thread when an interrupt signal is received. the
	// emulation checks it regularly
	interrupted atomic.Bool
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	done := false
	for !done {
		select {
		case <-intChan:
			// the first interrupt asks the emulation to stop. the second
			// ends the program immediately
			if sync.interrupted.Load() {
				fmt.Println("\r")
				done = true
			}
			sync.interrupted.Store(true)

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "MONITOR", "SCRIPT", "DISASM", "PERFORMANCE", "TIMING", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "MONITOR":
		err = mon(md, sync)

	case "SCRIPT":
		err = script(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "TIMING":
		err = timing(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// hardwarePreferences creates the hardware preferences after the values from
// the command line have been pushed to the prefs command line stack. the
// values given by the -prefs flag have priority over the preferences file.
func hardwarePreferences(prefsString string, variant string) (*preferences.Preferences, error) {
	if variant != "" {
		prefsString = fmt.Sprintf("%s; hardware.variant::%s", prefsString, variant)
	}
	prefs.PushCommandLineStack(prefsString)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
		}
	}()

	return preferences.NewPreferences()
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	variant := md.AddString("variant", "", "CPU variant: NMOS, CMOS")
	prefsString := md.AddString("prefs", "", "preferences for this run (eg. \"hardware.randstate::true\")")
	log := md.AddBool("log", false, "echo log to stderr")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsViewAvailability()))
	strict := md.AddBool("strict", false, "stop on unsupported BDOS functions")
	dig := md.AddBool("digest", false, "print the digest of all bus activity when the program ends")
	clock := md.AddString("clock", "", "limit speed to that of a real machine: SPECTRUM, SPECTRUM128, MSX, CPC, TRS80, CPM")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single CP/M program is required")
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	p2, err := hardwarePreferences(*prefsString, *variant)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	m := hardware.NewMachine(p2, os.Stdout)
	m.Strict = *strict
	if err := m.LoadCOM(data); err != nil {
		return err
	}

	var busDigest *digest.Bus
	if *dig {
		busDigest = digest.NewBus(m)
		m.CPU.Plumb(busDigest)
	}

	var lim *limiter.Limiter
	if *clock != "" {
		mhz, ok := clocks.FromString(*clock)
		if !ok {
			return fmt.Errorf("unknown clock (%s)", *clock)
		}
		lim, err = limiter.NewLimiter(mhz)
		if err != nil {
			return err
		}
		defer lim.Stop()
	}

	last := m.CPU.HalfCycles()
	err = m.Run(func() (govern.State, error) {
		if sync.interrupted.Load() {
			return govern.Ending, nil
		}
		if lim != nil {
			lim.Wait((m.CPU.HalfCycles() - last) / 2)
			last = m.CPU.HalfCycles()
		}
		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n%d instructions, %d T-states\n", m.CPU.Instructions(), m.CPU.HalfCycles()/2)
	if busDigest != nil {
		fmt.Printf("%s (%d partial cycles)\n", busDigest.Hash(), busDigest.Cycles())
	}
	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	variant := md.AddString("variant", "", "CPU variant: NMOS, CMOS")
	prefsString := md.AddString("prefs", "", "preferences for this run")
	duration := md.AddString("duration", "5s", "run duration")
	clock := md.AddString("clock", "cpm", "reference clock: SPECTRUM, SPECTRUM128, MSX, CPC, TRS80, CPM")
	profile := md.AddString("profile", "none", "create profiling data: NONE, CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single CP/M program is required")
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	p2, err := hardwarePreferences(*prefsString, *variant)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	// console output is discarded during a performance check
	m := hardware.NewMachine(p2, io.Discard)
	if err := m.LoadCOM(data); err != nil {
		return err
	}

	return performance.Check(md.Output, prf, m, *clock, *duration)
}

func mon(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	variant := md.AddString("variant", "", "CPU variant: NMOS, CMOS")
	prefsString := md.AddString("prefs", "", "preferences for this session")
	origin := md.AddAddress("origin", 0x0000, "load address of binary files (COM files are always loaded at 0x0100)")
	keys := md.AddBool("keys", false, "single key control")
	symbolsFile := md.AddString("symbols", "", "symbols file")
	log := md.AddBool("log", false, "echo log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	p2, err := hardwarePreferences(*prefsString, *variant)
	if err != nil {
		return err
	}

	m := hardware.NewMachine(p2, os.Stdout)

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		data, err := os.ReadFile(md.GetArg(0))
		if err != nil {
			return err
		}
		if strings.EqualFold(filepath.Ext(md.GetArg(0)), ".com") {
			err = m.LoadCOM(data)
		} else {
			err = m.Mem.Load(*origin, data)
			if err == nil {
				err = m.CPU.Set("PC", *origin)
			}
		}
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	mn := monitor.NewMonitor(m, os.Stdout)
	if *symbolsFile != "" {
		mn.Sym, err = symbols.ReadSymbolsFile(*symbolsFile)
		if err != nil {
			return err
		}
	}

	if *keys {
		sync.state <- stateRequest{req: reqNoIntSig}
		return mn.KeyLoop()
	}
	return mn.Loop(os.Stdin)
}

func script(md *modalflag.Modes) error {
	md.NewMode()

	variant := md.AddString("variant", "", "CPU variant: NMOS, CMOS")
	prefsString := md.AddString("prefs", "", "preferences for this script")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single Lua script is required")
	}

	p2, err := hardwarePreferences(*prefsString, *variant)
	if err != nil {
		return err
	}

	scr := scripting.NewScript(hardware.NewMachine(p2, os.Stdout), os.Stdout)
	defer scr.Close()

	return scr.RunFile(md.GetArg(0))
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddAddress("origin", 0x0100, "load address of the binary")
	linear := md.AddBool("linear", false, "decode every byte as an instruction")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	flowInfo := md.AddBool("flow", false, "include flow information in disassembly")
	symbolsFile := md.AddString("symbols", "", "symbols file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single binary file is required")
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	var sym *symbols.Symbols
	if *symbolsFile != "" {
		sym, err = symbols.ReadSymbolsFile(*symbolsFile)
		if err != nil {
			return err
		}
	}

	peek := func(addr uint16) uint8 {
		o := int(addr) - int(*origin)
		if o >= 0 && o < len(data) {
			return data[o]
		}
		return 0
	}

	mode := disassembly.Flow
	if *linear {
		mode = disassembly.Linear
	}

	dsm, err := disassembly.FromMemory(peek, *origin, len(data), mode, sym)
	if err != nil {
		return err
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{ByteCode: *bytecode, FlowInfo: *flowInfo})
}

func timing(md *modalflag.Modes) error {
	md.NewMode()

	page := md.AddString("page", "base", "opcode page: base, ED, CB, DD, FD, DDCB, FDCB")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pg, ok := instructions.PageFromString(*page)
	if !ok {
		return fmt.Errorf("unknown page (%s)", *page)
	}

	writeTiming(md.Output, pg)
	return nil
}

// writeTiming prints the published timing of every opcode in the page as a
// sixteen by sixteen table.
func writeTiming(w io.Writer, pg instructions.Page) {
	fmt.Fprintf(w, "%s page (T-states)\n", pg)
	fmt.Fprint(w, "   ")
	for x := 0; x < 16; x++ {
		fmt.Fprintf(w, "    -%x", x)
	}
	fmt.Fprintln(w)

	for y := 0; y < 16; y++ {
		fmt.Fprintf(w, "%x- ", y)
		for x := 0; x < 16; x++ {
			t := instructions.Lookup(pg, uint8(y<<4|x))
			switch {
			case t.Prefix:
				fmt.Fprintf(w, " %5s", "pfx")
			case t.Conditional():
				fmt.Fprintf(w, " %5s", fmt.Sprintf("%d/%d", t.Taken, t.Declined))
			default:
				fmt.Fprintf(w, " %5d", t.Taken)
			}
		}
		fmt.Fprintln(w)
	}
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Printf("%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Println(r)
	}

	return nil
}

func statsViewAvailability() string {
	if statsview.Available() {
		return "available"
	}
	return "not available in this build"
}
