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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher16/hardware/cpu/instructions"
)

// ExpectedCycles returns the number of cycles the instruction should have
// taken, given the conditional penalties recorded in the result.
func (r Result) ExpectedCycles() int {
	cycles := r.Defn.Cycles

	if r.Defn.Has(instructions.ModDirect) && r.DirectPagePenalty {
		cycles++
	}

	if r.Defn.PageSensitive && r.PageFault {
		cycles++
	}

	if r.Defn.Has(instructions.ModNative) && !r.Emulation {
		cycles++
	}

	if r.Defn.IsBranch() {
		if r.BranchTaken {
			cycles++
		}
		if r.Emulation && r.PageFault {
			cycles++
		}
	}

	return cycles
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("cpu: execution not finalised")
	}

	if r.Interrupt {
		exp := 8
		if r.Emulation {
			exp = 7
		}
		if r.Cycles != exp {
			return fmt.Errorf("cpu: number of cycles wrong for interrupt (%d instead of %d)", r.Cycles, exp)
		}
		return nil
	}

	if r.Defn == nil {
		return fmt.Errorf("cpu: execution has no instruction definition")
	}

	// is PageFault valid given content of Defn
	if r.PageFault && !r.Defn.PageSensitive && !r.Defn.IsBranch() {
		return fmt.Errorf("cpu: unexpected page fault for opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Operator)
	}

	// is DirectPagePenalty valid given content of Defn
	if r.DirectPagePenalty && !r.Defn.Has(instructions.ModDirect) {
		return fmt.Errorf("cpu: unexpected direct page penalty for opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Operator)
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return fmt.Errorf("cpu: unexpected number of bytes read during decode for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Operator, r.ByteCount, r.Defn.Bytes)
	}

	if exp := r.ExpectedCycles(); r.Cycles != exp {
		return fmt.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Operator, r.Cycles, exp)
	}

	return nil
}
