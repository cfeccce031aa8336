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

package apu

import (
	"fmt"

	"github.com/jetsetilly/gopher16/environment"
	"github.com/jetsetilly/gopher16/hardware/memory/chipbus"
)

// Mixer receives batches of interleaved stereo samples.
type Mixer interface {
	SetAudio(samples []int16) error
}

// RAMSize is the size of the audio RAM.
const RAMSize = 0x10000

// NumPorts is the number of communication ports in each direction.
const NumPorts = 4

// number of audio processor cycles for each stereo sample
const cyclesPerSample = 32

// number of audio processor cycles between a port being written and the IPL
// responding
const responseDelay = 2

// values placed in ports 0 and 1 by the IPL when it is ready
const (
	readySignal0 = 0xaa
	readySignal1 = 0xbb
	startCommand = 0xcc
)

type iplState int

const (
	iplReady iplState = iota
	iplUpload
	iplRunning
)

func (s iplState) String() string {
	switch s {
	case iplReady:
		return "ready"
	case iplUpload:
		return "upload"
	case iplRunning:
		return "running"
	}
	return "unknown"
}

// APU is the audio processor as seen by the CPU.
type APU struct {
	env   *environment.Environment
	mixer Mixer

	RAM []uint8

	// ports written by the CPU and read by the audio processor
	FromCPU [NumPorts]uint8

	// ports written by the audio processor and read by the CPU
	ToCPU [NumPorts]uint8

	state    iplState
	address  uint16
	expected uint8

	// cycles remaining until the IPL responds to a port write. zero if there
	// is nothing to respond to
	delay int

	// audio processor cycles since the last sample
	sampleCycles int

	batch []int16
}

// NewAPU is the preferred method of initialisation for the APU type. The
// mixer can be nil.
func NewAPU(env *environment.Environment, mixer Mixer) *APU {
	apu := &APU{
		env:   env,
		mixer: mixer,
		RAM:   make([]uint8, RAMSize),
	}
	apu.Reset()
	return apu
}

func (apu *APU) String() string {
	return fmt.Sprintf("ipl=%s in=% 02x out=% 02x", apu.state, apu.FromCPU, apu.ToCPU)
}

func (apu *APU) batchSize() int {
	if apu.env == nil {
		return 512
	}
	return apu.env.Prefs.AudioBatch.Get().(int)
}

// Reset the APU. The IPL returns to the ready state.
func (apu *APU) Reset() {
	if apu.env != nil && apu.env.Prefs.RandomState.Get().(bool) {
		apu.env.Random.Fill(apu.RAM)
	} else {
		clear(apu.RAM)
	}

	apu.FromCPU = [NumPorts]uint8{}
	apu.ToCPU = [NumPorts]uint8{readySignal0, readySignal1, 0, 0}

	apu.state = iplReady
	apu.address = 0
	apu.expected = 0
	apu.delay = 0
	apu.sampleCycles = 0
	apu.batch = make([]int16, 0, apu.batchSize()*2)
}

// Running returns true if the IPL has been instructed to jump to the
// uploaded program.
func (apu *APU) Running() bool {
	return apu.state == iplRunning
}

// Address returns the address of the next byte in the upload or the jump
// address once running.
func (apu *APU) Address() uint16 {
	return apu.address
}

// ChipRead implements the chipbus.ChipBus interface.
func (apu *APU) ChipRead(address uint32) (uint8, uint8) {
	return apu.ChipPeek(address)
}

// ChipPeek implements the chipbus.Peeker interface.
func (apu *APU) ChipPeek(address uint32) (uint8, uint8) {
	return apu.ToCPU[address&(NumPorts-1)], chipbus.DriveAll
}

// ChipWrite implements the chipbus.ChipBus interface.
func (apu *APU) ChipWrite(address uint32, data uint8) {
	apu.FromCPU[address&(NumPorts-1)] = data
	apu.delay = responseDelay
}

// Tick advances the APU by the number of audio processor cycles.
func (apu *APU) Tick(n int) error {
	for range n {
		if apu.delay > 0 {
			apu.delay--
			if apu.delay == 0 {
				apu.respond()
			}
		}

		apu.sampleCycles++
		if apu.sampleCycles >= cyclesPerSample {
			apu.sampleCycles = 0
			if err := apu.sample(0, 0); err != nil {
				return err
			}
		}
	}
	return nil
}

func (apu *APU) sample(left, right int16) error {
	apu.batch = append(apu.batch, left, right)
	if len(apu.batch) < apu.batchSize()*2 {
		return nil
	}

	var err error
	if apu.mixer != nil {
		err = apu.mixer.SetAudio(apu.batch)
	}
	apu.batch = make([]int16, 0, apu.batchSize()*2)
	if err != nil {
		return fmt.Errorf("apu: %w", err)
	}
	return nil
}

// the IPL's response to the ports written by the CPU
func (apu *APU) respond() {
	cmd := apu.FromCPU[0]
	if cmd == apu.ToCPU[0] {
		return
	}

	switch apu.state {
	case iplReady:
		if cmd == startCommand {
			apu.command()
		}

	case iplUpload:
		if cmd == apu.expected {
			apu.RAM[apu.address] = apu.FromCPU[1]
			apu.address++
			apu.expected++
			apu.ToCPU[0] = cmd
			return
		}
		apu.command()
	}
}

// a new block or the jump command. the address is in ports 2 and 3 and the
// command is in port 1. a zero command is a jump
func (apu *APU) command() {
	apu.address = uint16(apu.FromCPU[2]) | uint16(apu.FromCPU[3])<<8
	apu.ToCPU[0] = apu.FromCPU[0]

	if apu.FromCPU[1] == 0 {
		apu.state = iplRunning
		return
	}

	apu.state = iplUpload
	apu.expected = 0
}
