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

package cpu

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopher16/environment"
	"github.com/jetsetilly/gopher16/hardware/clocks"
	"github.com/jetsetilly/gopher16/hardware/cpu/execution"
	"github.com/jetsetilly/gopher16/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher16/hardware/cpu/registers"
	"github.com/jetsetilly/gopher16/hardware/memory/cpubus"
)

// ErrMidInstruction is returned by functions that must only be called between
// instructions.
var ErrMidInstruction = errors.New("cpu: invalid mid-instruction")

// CPU implements the 65816 as found in the console. Register logic is
// implemented by the Register type in the registers sub-package.
type CPU struct {
	env *environment.Environment

	A  registers.Register
	X  registers.Register
	Y  registers.Register
	S  registers.Register
	D  registers.Register
	PC registers.Register

	// program bank and data bank registers
	PB uint8
	DB uint8

	Status registers.StatusRegister

	// some operations only need an accumulator
	acc registers.Register

	mem   cpubus.Memory
	table *instructions.Table

	// cycleCallback is called for every bus cycle
	cycleCallback func(masterCycles int) error

	// the first error returned by cycleCallback during the current
	// instruction. the instruction is completed regardless of any error
	err error

	// last result of ExecuteInstruction() or Interrupt()
	LastResult execution.Result

	// the CPU has executed WAI and is waiting for an interrupt line to be
	// asserted. cleared by Interrupt() or Wake()
	Waiting bool

	// the CPU has executed STP. only a reset will clear this
	Stopped bool
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The env argument can be nil.
func NewCPU(env *environment.Environment, mem cpubus.Memory) *CPU {
	mc := &CPU{
		env:    env,
		mem:    mem,
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		S:      registers.NewRegister(0x01ff, "S"),
		D:      registers.NewRegister(0, "D"),
		PC:     registers.NewRegister(0, "PC"),
		Status: registers.NewStatusRegister(),
		acc:    registers.NewRegister(0, "accumulator"),
		table:  instructions.NewTable(),
	}
	return mc
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory bus into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s PB=%02x DB=%02x P=%s",
		mc.PC, mc.A, mc.X, mc.Y, mc.S, mc.D, mc.PB, mc.DB, mc.Status)
}

// Reset reinitialises all registers. Does not load PC with RESET vector. Use
// cpu.LoadPCIndirect(cpubus.Reset) when appropriate.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Waiting = false
	mc.Stopped = false
	mc.err = nil

	if mc.env != nil && mc.env.Prefs.RandomState.Get().(bool) {
		mc.A.Load(uint16(mc.env.Random.Intn(0x10000)))
		mc.X.Load(uint16(mc.env.Random.Intn(0x10000)))
		mc.Y.Load(uint16(mc.env.Random.Intn(0x10000)))
	} else {
		mc.A.Load(0)
		mc.X.Load(0)
		mc.Y.Load(0)
	}

	mc.Status.Reset()
	mc.applyEmulationMode()

	mc.S.Load(0x01ff)
	mc.D.Load(0)
	mc.PC.Load(0)
	mc.PB = 0
	mc.DB = 0
}

// LoadPCIndirect loads the contents of the bank zero vector into the PC. The
// program bank is set to zero. No bus cycles are consumed.
func (mc *CPU) LoadPCIndirect(vector uint16) error {
	if !mc.LastResult.Final && mc.LastResult.Defn != nil {
		return fmt.Errorf("cpu: load PC indirect: %w", ErrMidInstruction)
	}
	lo := mc.mem.Read(uint32(vector))
	hi := mc.mem.Read(uint32(vector + 1))
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
	mc.PB = 0
	return nil
}

// LoadPC loads a 24 bit address into PB and PC.
func (mc *CPU) LoadPC(address uint32) error {
	if !mc.LastResult.Final && mc.LastResult.Defn != nil {
		return fmt.Errorf("cpu: load PC: %w", ErrMidInstruction)
	}
	mc.PB = uint8(address >> 16)
	mc.PC.Load(uint16(address))
	return nil
}

// ProgramAddress returns the 24 bit address of the next instruction.
func (mc *CPU) ProgramAddress() uint32 {
	return uint32(mc.PB)<<16 | uint32(mc.PC.Value())
}

// WidthMode returns the current width mode of the CPU. This is the width mode
// that will be used to decode the next instruction.
func (mc *CPU) WidthMode() instructions.WidthMode {
	return instructions.NewWidthMode(
		mc.Status.AccumulatorWidth() == registers.Width8,
		mc.Status.IndexRegisterWidth() == registers.Width8)
}

// Wake the CPU from the WAI state without servicing an interrupt. This
// happens when the IRQ line is asserted while interrupts are disabled.
func (mc *CPU) Wake() {
	mc.Waiting = false
}

// applyEmulationMode forces the register widths and the stack pointer to the
// values required by emulation mode. Also clears the high bytes of the index
// registers if they are 8 bit.
func (mc *CPU) applyEmulationMode() {
	if mc.Status.Emulation {
		mc.Status.MemoryWidth = true
		mc.Status.IndexWidth = true
		mc.S.SetHigh(0x01)
	}
	if mc.Status.IndexRegisterWidth() == registers.Width8 {
		mc.X.SetHigh(0x00)
		mc.Y.SetHigh(0x00)
	}
}

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
// It's a convenient way of indicating that nothing needs to happen between
// CPU cycles.
func NilCycleCallback(_ int) error {
	return nil
}

// ExecuteInstruction steps CPU forward one instruction. The cycleCallback
// function is called for every bus cycle.
//
// An error returned by cycleCallback does not interrupt the instruction, the
// instruction is always completed. The first such error is returned by this
// function once the instruction has completed.
func (mc *CPU) ExecuteInstruction(cycleCallback func(masterCycles int) error) error {
	mc.cycleCallback = cycleCallback
	mc.err = nil

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.ProgramAddress()
	mc.LastResult.Emulation = mc.Status.Emulation

	// a stopped or waiting CPU does nothing but time still passes
	if mc.Stopped || mc.Waiting {
		mc.io()
		mc.LastResult.Final = true
		return mc.err
	}

	defn := mc.table.Lookup(mc.WidthMode(), mc.fetch())
	mc.LastResult.Defn = defn

	mc.execute(defn)

	mc.LastResult.Final = true
	return mc.err
}

// tick is called once per bus cycle
func (mc *CPU) tick(masterCycles int) {
	mc.LastResult.Cycles++
	mc.LastResult.MasterCycles += masterCycles
	if mc.err == nil && mc.cycleCallback != nil {
		mc.err = mc.cycleCallback(masterCycles)
	}
}

// io is an internal operation cycle
func (mc *CPU) io() {
	mc.tick(clocks.InternalOperation)
}
