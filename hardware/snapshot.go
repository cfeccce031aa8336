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
	"github.com/jetsetilly/gopher16/hardware/dma"
)

// CPUState is the register state of the CPU.
type CPUState struct {
	A, X, Y, S, D, PC uint16
	PB, DB            uint8
	P                 uint8
	Emulation         bool
	Waiting, Stopped  bool
}

// TimingState is the beam position and register state of the timing
// controller.
type TimingState struct {
	MasterCycles           uint64
	Frame, Scanline, Cycle int
	NMITIMEN, WRIO         uint8
	HTIME, VTIME           uint16
	RDDIV, RDMPY           uint16
	JOY                    [4]uint16
}

// State is a copy of the registers of the console. It contains no references
// to the live emulation and is safe to keep, compare or pass to another
// goroutine.
type State struct {
	Spec     string
	CPU      CPUState
	Timing   TimingState
	Channels [dma.NumChannels]dma.Channel
	MDMAEN   uint8
	HDMAEN   uint8
	APUPorts [8]uint8
}

// Snapshot the register state of the console.
func (con *Console) Snapshot() *State {
	s := &State{
		Spec: con.Timing.Spec.ID,
		CPU: CPUState{
			A:         con.CPU.A.Value(),
			X:         con.CPU.X.Value(),
			Y:         con.CPU.Y.Value(),
			S:         con.CPU.S.Value(),
			D:         con.CPU.D.Value(),
			PC:        con.CPU.PC.Value(),
			PB:        con.CPU.PB,
			DB:        con.CPU.DB,
			P:         con.CPU.Status.Value(false),
			Emulation: con.CPU.Status.Emulation,
			Waiting:   con.CPU.Waiting,
			Stopped:   con.CPU.Stopped,
		},
		Timing: TimingState{
			MasterCycles: con.Timing.MasterCycles,
			Frame:        con.Timing.Frame,
			Scanline:     con.Timing.Scanline,
			Cycle:        con.Timing.Cycle,
			NMITIMEN:     con.Timing.NMITIMEN,
			WRIO:         con.Timing.WRIO,
			HTIME:        con.Timing.HTIME,
			VTIME:        con.Timing.VTIME,
			RDDIV:        con.Timing.RDDIV,
			RDMPY:        con.Timing.RDMPY,
			JOY:          con.Timing.JOY,
		},
		Channels: con.DMA.Channels,
		MDMAEN:   con.DMA.MDMAEN,
		HDMAEN:   con.DMA.HDMAEN,
	}
	copy(s.APUPorts[:4], con.APU.FromCPU[:])
	copy(s.APUPorts[4:], con.APU.ToCPU[:])
	return s
}
