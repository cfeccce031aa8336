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
	"strings"
	"testing"

	"github.com/jetsetilly/gopher16/hardware/cpu"
	"github.com/jetsetilly/gopher16/hardware/cpu/registers"
)

// MockMem is a sparse 24 bit memory. Unwritten addresses read as zero and
// every access takes the same number of master cycles.
type MockMem struct {
	data       map[uint32]uint8
	accessTime int
}

func NewMockMem() *MockMem {
	return &MockMem{
		data:       make(map[uint32]uint8),
		accessTime: 8,
	}
}

func (mem *MockMem) String() string {
	s := strings.Builder{}
	for a, d := range mem.data {
		s.WriteString(fmt.Sprintf("%06x=%02x ", a, d))
	}
	return s.String()
}

func (mem *MockMem) Read(address uint32) uint8 {
	return mem.data[address]
}

func (mem *MockMem) Write(address uint32, data uint8) {
	mem.data[address] = data
}

func (mem *MockMem) AccessTime(_ uint32) int {
	return mem.accessTime
}

func (mem *MockMem) putInstructions(origin uint32, bytes ...uint8) uint32 {
	for i, b := range bytes {
		mem.data[origin+uint32(i)] = b
	}
	return origin + uint32(len(bytes))
}

func (mem *MockMem) assert(t *testing.T, address uint32, value uint8) {
	t.Helper()
	if mem.data[address] != value {
		t.Errorf("assert MockMem failed (%#02x - wanted %#02x at address %06x)", mem.data[address], value, address)
	}
}

// newTestCPU returns a CPU in emulation mode with the PC at $00:8000
func newTestCPU(t *testing.T) (*cpu.CPU, *MockMem) {
	t.Helper()
	mem := NewMockMem()
	mc := cpu.NewCPU(nil, mem)
	mc.Reset()
	if err := mc.LoadPC(0x008000); err != nil {
		t.Fatal(err)
	}
	return mc, mem
}

// setNative puts the CPU into native mode with the specified register widths
func setNative(mc *cpu.CPU, acc8 bool, index8 bool) {
	mc.Status.Emulation = false
	mc.Status.MemoryWidth = acc8
	mc.Status.IndexWidth = index8
	if index8 {
		mc.X.Load(mc.X.Value() & 0xff)
		mc.Y.Load(mc.Y.Value() & 0xff)
	}
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	if err := mc.ExecuteInstruction(cpu.NilCycleCallback); err != nil {
		t.Fatal(err)
	}
	if err := mc.LastResult.IsValid(); err != nil {
		t.Errorf("%s: %v", mc.LastResult, err)
	}
}

func expectRegister(t *testing.T, r registers.Register, value uint16) {
	t.Helper()
	if r.Value() != value {
		t.Errorf("assert Register failed (%s - wanted %04x)", r, value)
	}
}
