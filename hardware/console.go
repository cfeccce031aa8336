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
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher16/environment"
	"github.com/jetsetilly/gopher16/hardware/apu"
	"github.com/jetsetilly/gopher16/hardware/cpu"
	"github.com/jetsetilly/gopher16/hardware/dma"
	"github.com/jetsetilly/gopher16/hardware/input"
	"github.com/jetsetilly/gopher16/hardware/memory"
	"github.com/jetsetilly/gopher16/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher16/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher16/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher16/hardware/ppu"
	"github.com/jetsetilly/gopher16/hardware/preferences"
	"github.com/jetsetilly/gopher16/hardware/television"
	"github.com/jetsetilly/gopher16/hardware/television/specification"
	"github.com/jetsetilly/gopher16/hardware/timing"
	"github.com/jetsetilly/gopher16/logger"
)

// ErrNoCartridge is returned when the console is asked to run without a
// cartridge.
var ErrNoCartridge = errors.New("hardware: no cartridge attached")

// Console is the main container for the emulated components of the console.
type Console struct {
	env *environment.Environment

	CPU    *cpu.CPU
	Mem    *memory.Memory
	DMA    *dma.Engine
	Timing *timing.Timing
	PPU    *ppu.PPU
	APU    *apu.APU

	Ports *input.Ports
	Input *input.Input

	// the television is not part of the console but is attached to it
	TV *television.Television

	// a reset has been requested and will happen at the start of the next
	// call to Step()
	resetPending bool

	// master cycles not yet converted to audio processor cycles. the value
	// is scaled by the audio processor clock
	apuAccumulator int64

	// the first error from a timing event. timing events happen in the
	// middle of a CPU instruction or DMA unit so the error is returned at
	// the end of the instruction or unit
	err error
}

// NewConsole creates a new console and everything associated with the
// hardware. If tv is nil a television with no renderers or mixers is
// created.
func NewConsole(env *environment.Environment, tv *television.Television) (*Console, error) {
	spec := specification.SpecNTSC
	if env.Prefs.Region.Get().(string) == preferences.RegionPAL {
		spec = specification.SpecPAL
	}

	if tv == nil {
		tv = television.NewTelevision(env, spec)
	}

	con := &Console{
		env: env,
		TV:  tv,
	}

	var err error
	con.Mem, err = memory.NewMemory(env)
	if err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}

	con.CPU = cpu.NewCPU(env, con.Mem)
	con.DMA = dma.NewEngine()
	con.Timing = timing.NewTiming(env, spec)
	con.PPU = ppu.NewPPU(env, spec, con.Timing)
	con.APU = apu.NewAPU(env, con.TV)
	con.Ports = input.NewPorts()
	con.Input = input.NewInput(con.Ports)

	con.Timing.Plumb(con.PPU, con.Ports, con)

	con.Mem.AttachChip(memorymap.PPU, con.PPU)
	con.Mem.AttachChip(memorymap.APU, con.APU)
	con.Mem.AttachChip(memorymap.Joypad, con.Ports)
	con.Mem.AttachChip(memorymap.CPUIO, con.Timing)
	con.Mem.AttachChip(memorymap.DMA, con.DMA)

	// randomisation is seeded by the passage of time in the emulation
	env.Random.Plumb(con)

	con.setSpec(spec)

	return con, nil
}

func (con *Console) String() string {
	s := strings.Builder{}
	s.WriteString(con.Timing.String())
	s.WriteString("\n")
	s.WriteString(con.CPU.String())
	if con.Mem.Cart != nil {
		s.WriteString("\n")
		s.WriteString(con.Mem.Cart.String())
	}
	return s.String()
}

// MasterCycles implements the random.Clock interface.
func (con *Console) MasterCycles() uint64 {
	return con.Timing.MasterCycles
}

// Env returns the environment of the console.
func (con *Console) Env() *environment.Environment {
	return con.env
}

func (con *Console) setSpec(spec specification.Spec) {
	con.Timing.Spec = spec
	con.PPU.SetSpec(spec)
	if con.TV.GetSpec().ID != spec.ID {
		con.TV.SetSpec(spec)
	}
}

// selectSpec chooses the television specification according to the region
// preference and the cartridge header
func (con *Console) selectSpec() specification.Spec {
	switch con.env.Prefs.Region.Get().(string) {
	case preferences.RegionNTSC:
		return specification.SpecNTSC
	case preferences.RegionPAL:
		return specification.SpecPAL
	}
	if con.Mem.Cart != nil && con.Mem.Cart.PAL() {
		return specification.SpecPAL
	}
	return specification.SpecNTSC
}

// AttachCartridge places the cartridge in the console and powers it on. A nil
// cartridge removes the current cartridge.
func (con *Console) AttachCartridge(cart *cartridge.Cartridge) error {
	if err := con.Mem.AttachCartridge(cart); err != nil {
		return fmt.Errorf("hardware: %w", err)
	}

	if cart == nil {
		return nil
	}

	con.setSpec(con.selectSpec())
	logger.Logf(con.env, "hardware", "attached %s (%s)", cart.Filename, con.Timing.Spec.ID)

	return con.PowerOn()
}

// PowerOn puts the console into the power-on state. Unlike Reset(), the
// contents of WRAM, VRAM and the audio RAM are reinitialised.
func (con *Console) PowerOn() error {
	if con.Mem.Cart == nil {
		return ErrNoCartridge
	}

	con.Mem.Reset()
	con.PPU.Reset()
	con.APU.Reset()

	return con.reset()
}

// Reset emulates the reset button on the console. RAM contents are kept.
func (con *Console) Reset() error {
	if con.Mem.Cart == nil {
		return ErrNoCartridge
	}

	con.Mem.SoftReset()
	return con.reset()
}

// RequestReset schedules a reset for the start of the next call to Step().
func (con *Console) RequestReset() {
	con.resetPending = true
}

func (con *Console) reset() error {
	con.resetPending = false
	con.err = nil
	con.apuAccumulator = 0

	con.CPU.Reset()
	con.DMA.Reset()
	con.Timing.Reset()
	con.Ports.Reset()

	// the PPU cycle count must follow the timing controller
	con.PPU.Cycles = con.Timing.MasterCycles

	if err := con.CPU.LoadPCIndirect(cpubus.Reset); err != nil {
		return fmt.Errorf("hardware: %w", err)
	}

	return nil
}
