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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher16/assert"
	"github.com/jetsetilly/gopher16/hardware/clocks"
	"github.com/jetsetilly/gopher16/hardware/cpu"
	"github.com/jetsetilly/gopher16/hardware/timing"
)

// Step the console forward by one unit of activity. In order of priority the
// unit is one of:
//
//  1. a requested reset
//  2. the next DMA or HDMA transfer unit
//  3. servicing of a pending NMI or IRQ
//  4. one CPU instruction
//
// An IRQ is only serviced if the CPU's interrupt disable flag is clear. A
// CPU waiting after a WAI instruction is woken by the IRQ line regardless of
// the flag.
func (con *Console) Step() error {
	if con.Mem.Cart == nil {
		return ErrNoCartridge
	}

	if con.resetPending {
		return con.Reset()
	}

	if con.DMA.Active() {
		if n := con.DMA.Step(con.Mem); n > 0 {
			return con.tick(n)
		}
	}

	// a stopped CPU ignores interrupts. it must still be stepped so that
	// time passes
	if !con.CPU.Stopped {
		if con.Timing.NMI() {
			con.Timing.AckNMI()
			return con.CPU.Interrupt(cpu.NMI, con.tick)
		}

		if con.Timing.IRQLine() {
			if !con.CPU.Status.InterruptDisable {
				return con.CPU.Interrupt(cpu.IRQ, con.tick)
			}
			con.CPU.Wake()
		}
	}

	return con.CPU.ExecuteInstruction(con.tick)
}

// tick advances every clocked component of the console by the number of
// master cycles. used as the CPU's cycle callback
func (con *Console) tick(masterCycles int) error {
	con.Timing.Tick(masterCycles)
	con.PPU.Tick(masterCycles)

	assert.Check(con.PPU.Cycles == con.Timing.MasterCycles,
		"hardware: PPU cycles (%d) and master cycles (%d) differ", con.PPU.Cycles, con.Timing.MasterCycles)

	// the audio processor runs from its own clock. master cycles are
	// converted by accumulating the ratio of the two clocks
	con.apuAccumulator += int64(masterCycles) * clocks.APU
	mc := int64(con.Timing.Spec.MasterClock)
	if con.apuAccumulator >= mc {
		n := con.apuAccumulator / mc
		con.apuAccumulator -= n * mc
		if err := con.APU.Tick(int(n)); err != nil && con.err == nil {
			con.err = fmt.Errorf("hardware: %w", err)
		}
	}

	// errors from timing events. the CPU returns the error once the
	// instruction has completed
	if con.err != nil {
		err := con.err
		con.err = nil
		return err
	}

	return nil
}

// TimingEvent implements the timing.Listener interface.
func (con *Console) TimingEvent(ev timing.Event, scanline int) {
	switch ev {
	case timing.HDMAInit:
		con.DMA.StartHDMAInit()

	case timing.HDMAScanline:
		con.DMA.StartHDMAScanline()

	case timing.RenderScanline:
		con.PPU.RenderScanline(scanline)

	case timing.FrameComplete:
		err := con.TV.NewFrame(con.Timing.Frame, con.PPU.Frame())
		con.PPU.EndFrame()
		if err == nil {
			err = con.Input.Process(con.Timing.Frame + 1)
		}
		if err != nil && con.err == nil {
			con.err = fmt.Errorf("hardware: %w", err)
		}
	}
}
