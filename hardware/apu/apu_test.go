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

package apu_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher16/hardware/apu"
	"github.com/jetsetilly/gopher16/test"
)

type mockMixer struct {
	batches [][]int16
	err     error
}

func (m *mockMixer) SetAudio(samples []int16) error {
	m.batches = append(m.batches, samples)
	return m.err
}

// write a port in the way a program running on the CPU would, with time for
// the IPL to respond
func writePort(a *apu.APU, port int, data uint8) {
	a.ChipWrite(0x2140|uint32(port), data)
}

func port(a *apu.APU, port int) uint8 {
	d, _ := a.ChipRead(0x2140 | uint32(port))
	return d
}

func TestReady(t *testing.T) {
	a := apu.NewAPU(nil, nil)
	test.ExpectEquality(t, port(a, 0), uint8(0xaa))
	test.ExpectEquality(t, port(a, 1), uint8(0xbb))

	// ports are mirrored every four bytes
	d, _ := a.ChipRead(0x217d)
	test.ExpectEquality(t, d, uint8(0xbb))
}

func TestUpload(t *testing.T) {
	a := apu.NewAPU(nil, nil)

	// start a transfer to $0200
	writePort(a, 2, 0x00)
	writePort(a, 3, 0x02)
	writePort(a, 1, 0x01)
	writePort(a, 0, 0xcc)
	test.ExpectEquality(t, port(a, 0), uint8(0xaa))
	test.ExpectSuccess(t, a.Tick(2))
	test.ExpectEquality(t, port(a, 0), uint8(0xcc))

	data := []uint8{0x8f, 0x6c, 0xf2, 0x00}
	for i, d := range data {
		// data and index written as a sixteen bit value
		writePort(a, 0, uint8(i))
		writePort(a, 1, d)
		test.ExpectSuccess(t, a.Tick(4))
		test.ExpectEquality(t, port(a, 0), uint8(i))
	}

	for i, d := range data {
		test.ExpectEquality(t, a.RAM[0x200+i], d)
	}

	// repeating the last index has no effect
	writePort(a, 0, 0x03)
	test.ExpectSuccess(t, a.Tick(4))
	test.ExpectEquality(t, a.Address(), uint16(0x204))

	// jump to $0200
	writePort(a, 2, 0x00)
	writePort(a, 3, 0x02)
	writePort(a, 1, 0x00)
	writePort(a, 0, 0x05)
	test.ExpectSuccess(t, a.Tick(4))
	test.ExpectEquality(t, port(a, 0), uint8(0x05))
	test.ExpectSuccess(t, a.Running())
	test.ExpectEquality(t, a.Address(), uint16(0x200))
}

func TestSecondBlock(t *testing.T) {
	a := apu.NewAPU(nil, nil)

	writePort(a, 2, 0x00)
	writePort(a, 3, 0x10)
	writePort(a, 1, 0x01)
	writePort(a, 0, 0xcc)
	test.ExpectSuccess(t, a.Tick(4))

	writePort(a, 1, 0x11)
	writePort(a, 0, 0x00)
	test.ExpectSuccess(t, a.Tick(4))

	// new block at $2000
	writePort(a, 2, 0x00)
	writePort(a, 3, 0x20)
	writePort(a, 1, 0x01)
	writePort(a, 0, 0x02)
	test.ExpectSuccess(t, a.Tick(4))
	test.ExpectEquality(t, port(a, 0), uint8(0x02))

	writePort(a, 1, 0x22)
	writePort(a, 0, 0x00)
	test.ExpectSuccess(t, a.Tick(4))

	test.ExpectEquality(t, a.RAM[0x1000], uint8(0x11))
	test.ExpectEquality(t, a.RAM[0x2000], uint8(0x22))
	test.ExpectFailure(t, a.Running())
}

func TestSamples(t *testing.T) {
	m := &mockMixer{}
	a := apu.NewAPU(nil, m)

	// 512 samples of 32 cycles
	test.ExpectSuccess(t, a.Tick(512*32-1))
	test.ExpectEquality(t, len(m.batches), 0)
	test.ExpectSuccess(t, a.Tick(1))
	test.DemandEquality(t, len(m.batches), 1)
	test.ExpectEquality(t, len(m.batches[0]), 1024)

	m.err = errors.New("test")
	test.ExpectFailure(t, a.Tick(512*32))
}
