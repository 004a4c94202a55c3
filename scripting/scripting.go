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

package scripting

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopherz80/curated"
	"github.com/jetsetilly/gopherz80/hardware"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the pattern of errors returned from a failed script.
const ScriptError = "scripting: %v"

// the name of the global table containing the machine functions
const table = "z80"

// Script is a Lua environment attached to a Machine.
type Script struct {
	L      *lua.LState
	m      *hardware.Machine
	output io.Writer
}

// NewScript is the preferred method of initialisation for the Script type.
// The output argument is used for the Lua print function.
func NewScript(m *hardware.Machine, output io.Writer) *Script {
	scr := &Script{
		L:      lua.NewState(),
		m:      m,
		output: output,
	}

	t := scr.L.NewTable()
	scr.L.SetFuncs(t, map[string]lua.LGFunction{
		"load":       scr.load,
		"loadcom":    scr.loadCOM,
		"step":       scr.step,
		"run":        scr.run,
		"advance":    scr.advance,
		"reg":        scr.reg,
		"setreg":     scr.setReg,
		"peek":       scr.peek,
		"poke":       scr.poke,
		"halfcycles": scr.halfCycles,
		"ended":      scr.ended,
		"irq":        scr.irq,
		"nmi":        scr.nmi,
	})
	scr.L.SetGlobal(table, t)
	scr.L.SetGlobal("print", scr.L.NewFunction(scr.print))

	return scr
}

// Close the Lua environment.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunString runs the Lua source.
func (scr *Script) RunString(src string) error {
	if err := scr.L.DoString(src); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunFile runs the Lua file.
func (scr *Script) RunFile(filename string) error {
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// bytes from argument n, which can be a string or a table of numbers
func (scr *Script) bytes(L *lua.LState, n int) []uint8 {
	switch v := L.Get(n).(type) {
	case lua.LString:
		return []uint8(string(v))
	case *lua.LTable:
		data := make([]uint8, 0, v.Len())
		for i := 1; i <= v.Len(); i++ {
			b, ok := v.RawGetInt(i).(lua.LNumber)
			if !ok {
				L.ArgError(n, "table must contain numbers only")
				return nil
			}
			data = append(data, uint8(b))
		}
		return data
	}
	L.ArgError(n, "string or table expected")
	return nil
}

func (scr *Script) check(L *lua.LState, err error) {
	if err != nil {
		L.RaiseError("%v", err)
	}
}

func (scr *Script) load(L *lua.LState) int {
	origin := L.CheckInt(1)
	scr.check(L, scr.m.Mem.Load(uint16(origin), scr.bytes(L, 2)))
	return 0
}

func (scr *Script) loadCOM(L *lua.LState) int {
	scr.check(L, scr.m.LoadCOM(scr.bytes(L, 1)))
	return 0
}

func (scr *Script) step(L *lua.LState) int {
	n, err := scr.m.Step()
	scr.check(L, err)
	L.Push(lua.LNumber(n))
	return 1
}

func (scr *Script) run(L *lua.LState) int {
	scr.check(L, scr.m.Run(nil))
	return 0
}

func (scr *Script) advance(L *lua.LState) int {
	scr.m.CPU.Advance(L.CheckInt(1))
	return 0
}

func (scr *Script) reg(L *lua.LState) int {
	v, err := scr.m.CPU.Get(L.CheckString(1))
	scr.check(L, err)
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) setReg(L *lua.LState) int {
	scr.check(L, scr.m.CPU.Set(L.CheckString(1), uint16(L.CheckInt(2))))
	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.m.Mem.Peek(uint16(L.CheckInt(1)))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	scr.m.Mem.Poke(uint16(L.CheckInt(1)), uint8(L.CheckInt(2)))
	return 0
}

func (scr *Script) halfCycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.m.CPU.HalfCycles()))
	return 1
}

func (scr *Script) ended(L *lua.LState) int {
	L.Push(lua.LBool(scr.m.Ended()))
	return 1
}

func (scr *Script) irq(L *lua.LState) int {
	scr.m.CPU.SetIRQ(L.CheckBool(1))
	return 0
}

func (scr *Script) nmi(L *lua.LState) int {
	scr.m.CPU.SetNMI(L.CheckBool(1), 0)
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	if scr.output != nil {
		fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	}
	return 0
}
