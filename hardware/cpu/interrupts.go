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
	"fmt"

	"github.com/jetsetilly/gopher16/hardware/memory/cpubus"
)

// Interrupt identifies the source of a hardware interrupt.
type Interrupt int

// List of valid Interrupt values.
const (
	NMI Interrupt = iota
	IRQ
	ABORT
)

func (i Interrupt) String() string {
	switch i {
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	case ABORT:
		return "ABORT"
	}
	return "unknown interrupt"
}

// vector returns the address of the interrupt vector for the current mode.
func (mc *CPU) vector(i Interrupt) uint16 {
	if mc.Status.Emulation {
		switch i {
		case NMI:
			return cpubus.EmulationNMI
		case ABORT:
			return cpubus.EmulationABORT
		}
		return cpubus.EmulationIRQ
	}

	switch i {
	case NMI:
		return cpubus.NativeNMI
	case ABORT:
		return cpubus.NativeABORT
	}
	return cpubus.NativeIRQ
}

// interruptSequence pushes the return state and jumps through the vector.
// common to hardware and software interrupts
func (mc *CPU) interruptSequence(vector uint16, brk bool) {
	if !mc.Status.Emulation {
		mc.push(mc.PB)
	}
	mc.push16(mc.PC.Value())
	mc.push(mc.Status.Value(brk))

	mc.Status.InterruptDisable = true
	mc.Status.DecimalMode = false
	mc.PB = 0

	lo := mc.read(uint32(vector))
	hi := mc.read(uint32(vector + 1))
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
}

// Interrupt services a hardware interrupt. Must only be called between
// instructions. Whether an IRQ should be serviced (ie. the state of the
// interrupt disable flag) is the responsibility of the caller.
//
// A stopped CPU ignores interrupts.
func (mc *CPU) Interrupt(i Interrupt, cycleCallback func(masterCycles int) error) error {
	if !mc.LastResult.Final && mc.LastResult.Defn != nil {
		return fmt.Errorf("cpu: interrupt %s: %w", i, ErrMidInstruction)
	}

	if mc.Stopped {
		return nil
	}

	mc.cycleCallback = cycleCallback
	mc.err = nil

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.ProgramAddress()
	mc.LastResult.Emulation = mc.Status.Emulation
	mc.LastResult.Interrupt = true

	mc.Waiting = false

	mc.io()
	mc.io()
	mc.interruptSequence(mc.vector(i), false)

	mc.LastResult.Final = true
	return mc.err
}
