// This file is part of Gopher16.
//
// Gopher16 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher16 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher16.  If not, see <https://www.gnu.org/licenses/>.

package cpu_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher16/hardware/cpu"
	"github.com/jetsetilly/gopher16/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher16/test"
)

// cycleCase describes the state of the CPU before executing an opcode
type cycleCase struct {
	emulation bool
	acc8      bool
	index8    bool
	d         uint16
	index     uint16
}

func (c cycleCase) String() string {
	return fmt.Sprintf("e=%v m=%v x=%v D=%04x X/Y=%04x", c.emulation, c.acc8, c.index8, c.d, c.index)
}

// every opcode in every width mode, with and without direct page and
// indexing penalties, must take the number of cycles predicted by the
// dispatch table
func TestCycleCountsAllOpcodes(t *testing.T) {
	var cases []cycleCase
	for _, d := range []uint16{0x0000, 0x0001} {
		for _, idx := range []uint16{0x0000, 0x00f0} {
			cases = append(cases, cycleCase{emulation: true, acc8: true, index8: true, d: d, index: idx})
			for _, acc8 := range []bool{true, false} {
				for _, index8 := range []bool{true, false} {
					cases = append(cases, cycleCase{acc8: acc8, index8: index8, d: d, index: idx})
				}
			}
		}
	}

	for _, c := range cases {
		for op := range 256 {
			mc, mem := newTestCPU(t)
			if !c.emulation {
				setNative(mc, c.acc8, c.index8)
				mc.S.Load(0x1fff)
			}
			mc.D.Load(c.d)
			mc.X.Load(c.index)
			mc.Y.Load(c.index)

			// operand bytes chosen so that absolute indexing with an index of
			// 0xf0 crosses a page
			mem.putInstructions(0x008000, uint8(op), 0x20, 0x21, 0x22)

			if err := mc.ExecuteInstruction(cpu.NilCycleCallback); err != nil {
				t.Fatal(err)
			}
			if err := mc.LastResult.IsValid(); err != nil {
				t.Errorf("%s: %s: %v", c, mc.LastResult, err)
			}
		}
	}
}

// documented cycle counts for a selection of instructions
func TestDocumentedCycleCounts(t *testing.T) {
	type documented struct {
		name      string
		emulation bool
		acc8      bool
		index8    bool
		d         uint16
		index     uint16
		flags     func(mc *cpu.CPU)
		program   []uint8
		cycles    int
	}

	for _, e := range []documented{
		{name: "LDA #", emulation: true, program: []uint8{0xa9, 0x01}, cycles: 2},
		{name: "LDA # 16bit", program: []uint8{0xa9, 0x01, 0x02}, index8: true, cycles: 3},
		{name: "LDA dp", acc8: true, index8: true, program: []uint8{0xa5, 0x10}, cycles: 3},
		{name: "LDA dp DL!=0", acc8: true, index8: true, d: 0x0001, program: []uint8{0xa5, 0x10}, cycles: 4},
		{name: "LDA abs,X no cross", acc8: true, index8: true, index: 0x01, program: []uint8{0xbd, 0x00, 0x20}, cycles: 4},
		{name: "LDA abs,X cross", acc8: true, index8: true, index: 0xff, program: []uint8{0xbd, 0x01, 0x20}, cycles: 5},
		{name: "LDA abs,X 16bit index", acc8: true, index: 0x01, program: []uint8{0xbd, 0x00, 0x20}, cycles: 5},
		{name: "LDA long,X 16bit", index8: true, program: []uint8{0xbf, 0x00, 0x20, 0x7e}, cycles: 6},
		{name: "ADC (dp),Y 16bit", index8: true, index: 0xff, program: []uint8{0x71, 0x10}, cycles: 6},
		{name: "STA abs,X", acc8: true, index8: true, program: []uint8{0x9d, 0x00, 0x20}, cycles: 5},
		{name: "STA (dp),Y", acc8: true, index8: true, program: []uint8{0x91, 0x10}, cycles: 6},
		{name: "LDA (sr,S),Y", acc8: true, index8: true, program: []uint8{0xb3, 0x01}, cycles: 7},
		{name: "ASL abs,X 16bit", index8: true, program: []uint8{0x1e, 0x00, 0x20}, cycles: 9},
		{name: "INC dp,X 16bit DL!=0", index8: true, d: 0x0001, program: []uint8{0xf6, 0x10}, cycles: 9},
		{name: "BRK emulation", emulation: true, program: []uint8{0x00, 0x00}, cycles: 7},
		{name: "BRK native", acc8: true, index8: true, program: []uint8{0x00, 0x00}, cycles: 8},
		{name: "RTI emulation", emulation: true, program: []uint8{0x40}, cycles: 6},
		{name: "RTI native", acc8: true, index8: true, program: []uint8{0x40}, cycles: 7},
		{name: "BNE taken", acc8: true, index8: true, program: []uint8{0xd0, 0x02}, cycles: 3},
		{name: "BNE not taken", acc8: true, index8: true, flags: func(mc *cpu.CPU) { mc.Status.Zero = true }, program: []uint8{0xd0, 0x02}, cycles: 2},
		{name: "BRA page cross emulation", emulation: true, program: []uint8{0x80, 0x80}, cycles: 4},
		{name: "BRA page cross native", acc8: true, index8: true, program: []uint8{0x80, 0x80}, cycles: 3},
		{name: "JSR abs", acc8: true, index8: true, program: []uint8{0x20, 0x00, 0x90}, cycles: 6},
		{name: "JSL", acc8: true, index8: true, program: []uint8{0x22, 0x00, 0x90, 0x01}, cycles: 8},
		{name: "JSR (abs,X)", acc8: true, index8: true, program: []uint8{0xfc, 0x00, 0x90}, cycles: 8},
		{name: "JMP (abs)", acc8: true, index8: true, program: []uint8{0x6c, 0x00, 0x90}, cycles: 5},
		{name: "JML [abs]", acc8: true, index8: true, program: []uint8{0xdc, 0x00, 0x90}, cycles: 6},
		{name: "RTS", acc8: true, index8: true, program: []uint8{0x60}, cycles: 6},
		{name: "RTL", acc8: true, index8: true, program: []uint8{0x6b}, cycles: 6},
		{name: "PHA 16bit", index8: true, program: []uint8{0x48}, cycles: 4},
		{name: "PLA 16bit", index8: true, program: []uint8{0x68}, cycles: 5},
		{name: "PHX 16bit", acc8: true, program: []uint8{0xda}, cycles: 4},
		{name: "PHD", acc8: true, index8: true, program: []uint8{0x0b}, cycles: 4},
		{name: "PLD", acc8: true, index8: true, program: []uint8{0x2b}, cycles: 5},
		{name: "PEA", acc8: true, index8: true, program: []uint8{0xf4, 0x00, 0x10}, cycles: 5},
		{name: "PEI", acc8: true, index8: true, program: []uint8{0xd4, 0x10}, cycles: 6},
		{name: "PER", acc8: true, index8: true, program: []uint8{0x62, 0x00, 0x10}, cycles: 6},
		{name: "MVN", acc8: true, index8: true, program: []uint8{0x54, 0x7e, 0x7f}, cycles: 7},
		{name: "REP", acc8: true, index8: true, program: []uint8{0xc2, 0x00}, cycles: 3},
		{name: "XBA", acc8: true, index8: true, program: []uint8{0xeb}, cycles: 3},
		{name: "WAI", acc8: true, index8: true, program: []uint8{0xcb}, cycles: 3},
		{name: "STP", acc8: true, index8: true, program: []uint8{0xdb}, cycles: 3},
		{name: "WDM", acc8: true, index8: true, program: []uint8{0x42, 0x00}, cycles: 2},
		{name: "XCE", acc8: true, index8: true, program: []uint8{0xfb}, cycles: 2},
		{name: "TSB abs 16bit", index8: true, program: []uint8{0x0c, 0x00, 0x20}, cycles: 8},
		{name: "LDX abs,Y 16bit", acc8: true, program: []uint8{0xbe, 0x00, 0x20}, cycles: 6},
	} {
		mc, mem := newTestCPU(t)
		if !e.emulation {
			setNative(mc, e.acc8, e.index8)
			mc.S.Load(0x1fff)
		}
		mc.D.Load(e.d)
		mc.X.Load(e.index)
		mc.Y.Load(e.index)
		if e.flags != nil {
			e.flags(mc)
		}

		mem.putInstructions(0x008000, e.program...)
		test.DemandSuccess(t, mc.ExecuteInstruction(cpu.NilCycleCallback), e.name)
		test.ExpectEquality(t, mc.LastResult.Cycles, e.cycles, e.name)
		test.ExpectSuccess(t, mc.LastResult.IsValid(), e.name)
	}
}

// the number of bytes consumed must match the dispatch table for every width
// mode
func TestByteCounts(t *testing.T) {
	tab := instructions.NewTable()

	for m := range instructions.NumWidthModes {
		for op := range 256 {
			mc, mem := newTestCPU(t)
			setNative(mc, !m.Accumulator16(), !m.Index16())
			mem.putInstructions(0x008000, uint8(op), 0x00, 0x00, 0x00)
			test.DemandSuccess(t, mc.ExecuteInstruction(cpu.NilCycleCallback))
			test.ExpectEquality(t, mc.LastResult.ByteCount, tab.Lookup(m, uint8(op)).Bytes, mc.LastResult)
		}
	}
}
