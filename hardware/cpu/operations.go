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
	"github.com/jetsetilly/gopher16/assert"
	"github.com/jetsetilly/gopher16/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher16/hardware/cpu/registers"
	"github.com/jetsetilly/gopher16/hardware/memory/cpubus"
)

// width returns the width of the data for the operator. operators that work
// on the index registers use the index register width. everything else uses
// the accumulator width
func (mc *CPU) width(op instructions.Operator) registers.Width {
	switch op {
	case instructions.LDX, instructions.LDY, instructions.STX, instructions.STY,
		instructions.CPX, instructions.CPY, instructions.PHX, instructions.PHY,
		instructions.PLX, instructions.PLY:
		return mc.Status.IndexRegisterWidth()
	}
	return mc.Status.AccumulatorWidth()
}

func (mc *CPU) execute(defn *instructions.Definition) {
	switch defn.Effect {
	case instructions.Read:
		mc.executeRead(defn)
	case instructions.Write:
		mc.executeWrite(defn)
	case instructions.RMW:
		mc.executeRMW(defn)
	case instructions.Internal:
		mc.executeInternal(defn)
	case instructions.Flow:
		mc.executeFlow(defn)
	case instructions.Subroutine:
		mc.executeSubroutine(defn)
	case instructions.Interrupt:
		mc.executeSoftwareInterrupt(defn)
	case instructions.Push:
		mc.executePush(defn)
	case instructions.Pull:
		mc.executePull(defn)
	case instructions.Move:
		mc.executeMove(defn)
	default:
		assert.Check(false, "cpu: unhandled effect category %s for opcode %#02x", defn.Effect, defn.OpCode)
	}
}

func (mc *CPU) adc(v uint16, w registers.Width) {
	if mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Overflow = mc.A.AddDecimal(v, mc.Status.Carry, w)
	} else {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(v, mc.Status.Carry, w)
	}
	mc.Status.SetNZ(mc.A.Get(w), w)
}

func (mc *CPU) sbc(v uint16, w registers.Width) {
	if mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Overflow = mc.A.SubtractDecimal(v, mc.Status.Carry, w)
	} else {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(v, mc.Status.Carry, w)
	}
	mc.Status.SetNZ(mc.A.Get(w), w)
}

func (mc *CPU) compare(r uint16, v uint16, w registers.Width) {
	r &= w.Mask()
	v &= w.Mask()
	mc.Status.Carry = r >= v
	mc.Status.SetNZ(r-v, w)
}

func (mc *CPU) executeRead(defn *instructions.Definition) {
	w := mc.width(defn.Operator)
	ea := mc.effectiveAddress(defn)
	v := mc.readData(ea, w)

	switch defn.Operator {
	case instructions.ADC:
		mc.adc(v, w)
	case instructions.SBC:
		mc.sbc(v, w)
	case instructions.AND:
		mc.A.AND(v, w)
		mc.Status.SetNZ(mc.A.Get(w), w)
	case instructions.EOR:
		mc.A.EOR(v, w)
		mc.Status.SetNZ(mc.A.Get(w), w)
	case instructions.ORA:
		mc.A.ORA(v, w)
		mc.Status.SetNZ(mc.A.Get(w), w)
	case instructions.BIT:
		mc.Status.Zero = mc.A.Get(w)&v == 0
		// immediate mode only affects the zero flag
		if !ea.immediate {
			mc.Status.Sign = w.IsNegative(v)
			mc.Status.Overflow = v&w.OverflowBit() != 0
		}
	case instructions.CMP:
		mc.compare(mc.A.Value(), v, w)
	case instructions.CPX:
		mc.compare(mc.X.Value(), v, w)
	case instructions.CPY:
		mc.compare(mc.Y.Value(), v, w)
	case instructions.LDA:
		mc.A.Set(v, w)
		mc.Status.SetNZ(v, w)
	case instructions.LDX:
		mc.X.Set(v, w)
		mc.Status.SetNZ(v, w)
	case instructions.LDY:
		mc.Y.Set(v, w)
		mc.Status.SetNZ(v, w)
	default:
		assert.Check(false, "cpu: unhandled read operator %s", defn.Operator)
	}
}

func (mc *CPU) executeWrite(defn *instructions.Definition) {
	w := mc.width(defn.Operator)
	ea := mc.effectiveAddress(defn)

	var v uint16
	switch defn.Operator {
	case instructions.STA:
		v = mc.A.Value()
	case instructions.STX:
		v = mc.X.Value()
	case instructions.STY:
		v = mc.Y.Value()
	case instructions.STZ:
		v = 0
	default:
		assert.Check(false, "cpu: unhandled write operator %s", defn.Operator)
	}

	mc.writeData(ea, v, w)
}

// modify performs the read-modify-write operation on the register. the
// register is either the accumulator or the internal register used for
// memory operands
func (mc *CPU) modify(op instructions.Operator, r *registers.Register, w registers.Width) {
	switch op {
	case instructions.ASL:
		mc.Status.Carry = r.ASL(w)
	case instructions.LSR:
		mc.Status.Carry = r.LSR(w)
	case instructions.ROL:
		mc.Status.Carry = r.ROL(mc.Status.Carry, w)
	case instructions.ROR:
		mc.Status.Carry = r.ROR(mc.Status.Carry, w)
	case instructions.INC:
		r.Increment(w)
	case instructions.DEC:
		r.Decrement(w)
	case instructions.TSB:
		mc.Status.Zero = w.IsZero(r.Value() & mc.A.Value())
		r.ORA(mc.A.Value(), w)
		return
	case instructions.TRB:
		mc.Status.Zero = w.IsZero(r.Value() & mc.A.Value())
		r.AND(^mc.A.Value(), w)
		return
	default:
		assert.Check(false, "cpu: unhandled modify operator %s", op)
	}
	mc.Status.SetNZ(r.Get(w), w)
}

func (mc *CPU) executeRMW(defn *instructions.Definition) {
	w := mc.width(defn.Operator)
	ea := mc.effectiveAddress(defn)

	mc.acc.Load(mc.readData(ea, w))
	mc.io()
	mc.modify(defn.Operator, &mc.acc, w)
	mc.writeDataRMW(ea, mc.acc.Value(), w)
}

func (mc *CPU) executeInternal(defn *instructions.Definition) {
	aw := mc.Status.AccumulatorWidth()
	xw := mc.Status.IndexRegisterWidth()

	switch defn.Operator {
	case instructions.WDM:
		// reserved for future expansion. the operand is skipped
		mc.fetch()
		return

	case instructions.REP:
		v := mc.fetch()
		mc.io()
		mc.Status.Load(mc.Status.Value(false) &^ v)
		mc.applyEmulationMode()
		return

	case instructions.SEP:
		v := mc.fetch()
		mc.io()
		mc.Status.Load(mc.Status.Value(false) | v)
		mc.applyEmulationMode()
		return

	case instructions.WAI:
		mc.io()
		mc.io()
		mc.Waiting = true
		return

	case instructions.STP:
		mc.io()
		mc.io()
		mc.Stopped = true
		return

	case instructions.XBA:
		mc.io()
		mc.io()
		mc.A.Swap()
		mc.Status.SetNZ(mc.A.Value(), registers.Width8)
		return
	}

	// all remaining internal instructions take one internal operation cycle
	mc.io()

	switch defn.Operator {
	case instructions.NOP:

	case instructions.ASL, instructions.LSR, instructions.ROL, instructions.ROR,
		instructions.INC, instructions.DEC:
		mc.modify(defn.Operator, &mc.A, aw)

	case instructions.CLC:
		mc.Status.Carry = false
	case instructions.CLD:
		mc.Status.DecimalMode = false
	case instructions.CLI:
		mc.Status.InterruptDisable = false
	case instructions.CLV:
		mc.Status.Overflow = false
	case instructions.SEC:
		mc.Status.Carry = true
	case instructions.SED:
		mc.Status.DecimalMode = true
	case instructions.SEI:
		mc.Status.InterruptDisable = true

	case instructions.XCE:
		mc.Status.Carry, mc.Status.Emulation = mc.Status.Emulation, mc.Status.Carry
		mc.applyEmulationMode()

	case instructions.INX:
		mc.X.Increment(xw)
		mc.Status.SetNZ(mc.X.Value(), xw)
	case instructions.INY:
		mc.Y.Increment(xw)
		mc.Status.SetNZ(mc.Y.Value(), xw)
	case instructions.DEX:
		mc.X.Decrement(xw)
		mc.Status.SetNZ(mc.X.Value(), xw)
	case instructions.DEY:
		mc.Y.Decrement(xw)
		mc.Status.SetNZ(mc.Y.Value(), xw)

	case instructions.TAX:
		mc.X.Set(mc.A.Get(xw), xw)
		mc.Status.SetNZ(mc.X.Value(), xw)
	case instructions.TAY:
		mc.Y.Set(mc.A.Get(xw), xw)
		mc.Status.SetNZ(mc.Y.Value(), xw)
	case instructions.TXA:
		mc.A.Set(mc.X.Value(), aw)
		mc.Status.SetNZ(mc.A.Value(), aw)
	case instructions.TYA:
		mc.A.Set(mc.Y.Value(), aw)
		mc.Status.SetNZ(mc.A.Value(), aw)
	case instructions.TXY:
		mc.Y.Set(mc.X.Value(), xw)
		mc.Status.SetNZ(mc.Y.Value(), xw)
	case instructions.TYX:
		mc.X.Set(mc.Y.Value(), xw)
		mc.Status.SetNZ(mc.X.Value(), xw)
	case instructions.TSX:
		mc.X.Set(mc.S.Get(xw), xw)
		mc.Status.SetNZ(mc.X.Value(), xw)
	case instructions.TXS:
		if mc.Status.Emulation {
			mc.S.Set(mc.X.Value(), registers.Width8)
		} else {
			mc.S.Load(mc.X.Value())
		}
	case instructions.TCS:
		mc.S.Load(mc.A.Value())
		mc.applyEmulationMode()
	case instructions.TSC:
		mc.A.Load(mc.S.Value())
		mc.Status.SetNZ(mc.A.Value(), registers.Width16)
	case instructions.TCD:
		mc.D.Load(mc.A.Value())
		mc.Status.SetNZ(mc.D.Value(), registers.Width16)
	case instructions.TDC:
		mc.A.Load(mc.D.Value())
		mc.Status.SetNZ(mc.A.Value(), registers.Width16)

	default:
		assert.Check(false, "cpu: unhandled internal operator %s", defn.Operator)
	}
}

// branch to the relative offset if the condition is true
func (mc *CPU) branch(condition bool, offset uint8) {
	if !condition {
		return
	}

	mc.io()
	mc.LastResult.BranchTaken = true

	target := mc.PC.Value() + uint16(int16(int8(offset)))

	// crossing a page in emulation mode costs another cycle
	if mc.Status.Emulation && target&0xff00 != mc.PC.Value()&0xff00 {
		mc.io()
		mc.LastResult.PageFault = true
	}

	mc.PC.Load(target)
}

func (mc *CPU) executeFlow(defn *instructions.Definition) {
	switch defn.Operator {
	case instructions.BPL:
		mc.branch(!mc.Status.Sign, mc.fetch())
	case instructions.BMI:
		mc.branch(mc.Status.Sign, mc.fetch())
	case instructions.BVC:
		mc.branch(!mc.Status.Overflow, mc.fetch())
	case instructions.BVS:
		mc.branch(mc.Status.Overflow, mc.fetch())
	case instructions.BCC:
		mc.branch(!mc.Status.Carry, mc.fetch())
	case instructions.BCS:
		mc.branch(mc.Status.Carry, mc.fetch())
	case instructions.BNE:
		mc.branch(!mc.Status.Zero, mc.fetch())
	case instructions.BEQ:
		mc.branch(mc.Status.Zero, mc.fetch())
	case instructions.BRA:
		mc.branch(true, mc.fetch())

	case instructions.BRL:
		rel := mc.fetch16()
		mc.io()
		mc.PC.Load(mc.PC.Value() + rel)

	case instructions.JMP:
		switch defn.AddressingMode {
		case instructions.Absolute:
			mc.PC.Load(mc.fetch16())
		case instructions.AbsoluteIndirect:
			ptr := mc.fetch16()
			lo := mc.read(uint32(ptr))
			hi := mc.read(uint32(ptr + 1))
			mc.PC.Load(uint16(hi)<<8 | uint16(lo))
		case instructions.AbsoluteIndirectX:
			ptr := mc.fetch16() + mc.X.Value()
			mc.io()
			bank := uint32(mc.PB) << 16
			lo := mc.read(bank | uint32(ptr))
			hi := mc.read(bank | uint32(ptr+1))
			mc.PC.Load(uint16(hi)<<8 | uint16(lo))
		}

	case instructions.JML:
		switch defn.AddressingMode {
		case instructions.AbsoluteLong:
			target := mc.fetch16()
			mc.PB = mc.fetch()
			mc.PC.Load(target)
		case instructions.AbsoluteIndirectLong:
			ptr := mc.fetch16()
			lo := mc.read(uint32(ptr))
			hi := mc.read(uint32(ptr + 1))
			mc.PB = mc.read(uint32(ptr + 2))
			mc.PC.Load(uint16(hi)<<8 | uint16(lo))
		}

	default:
		assert.Check(false, "cpu: unhandled flow operator %s", defn.Operator)
	}
}

func (mc *CPU) executeSubroutine(defn *instructions.Definition) {
	switch defn.Operator {
	case instructions.JSR:
		switch defn.AddressingMode {
		case instructions.Absolute:
			target := mc.fetch16()
			mc.io()
			mc.push16(mc.PC.Value() - 1)
			mc.PC.Load(target)
		case instructions.AbsoluteIndirectX:
			lo := mc.fetch()

			// the return address is pushed before the high byte of the
			// operand is read
			mc.pushLong16(mc.PC.Value())
			mc.fixStackPage()

			hi := mc.fetch()
			mc.io()
			ptr := (uint16(hi)<<8 | uint16(lo)) + mc.X.Value()
			bank := uint32(mc.PB) << 16
			tlo := mc.read(bank | uint32(ptr))
			thi := mc.read(bank | uint32(ptr+1))
			mc.PC.Load(uint16(thi)<<8 | uint16(tlo))
		}

	case instructions.JSL:
		target := mc.fetch16()
		mc.pushLong(mc.PB)
		mc.io()
		bank := mc.fetch()
		mc.pushLong16(mc.PC.Value() - 1)
		mc.fixStackPage()
		mc.PB = bank
		mc.PC.Load(target)

	case instructions.RTS:
		mc.io()
		mc.io()
		pc := mc.pull16()
		mc.io()
		mc.PC.Load(pc + 1)

	case instructions.RTL:
		mc.io()
		mc.io()
		pc := mc.pullLong16()
		mc.PB = mc.pullLong()
		mc.fixStackPage()
		mc.PC.Load(pc + 1)

	case instructions.RTI:
		mc.io()
		mc.io()
		mc.Status.Load(mc.pull())
		mc.applyEmulationMode()
		pc := mc.pull16()
		if !mc.Status.Emulation {
			mc.PB = mc.pull()
		}
		mc.PC.Load(pc)

	default:
		assert.Check(false, "cpu: unhandled subroutine operator %s", defn.Operator)
	}
}

func (mc *CPU) executeSoftwareInterrupt(defn *instructions.Definition) {
	// signature byte
	mc.fetch()

	var vector uint16
	switch defn.Operator {
	case instructions.BRK:
		if mc.Status.Emulation {
			vector = cpubus.EmulationIRQ
		} else {
			vector = cpubus.NativeBRK
		}
	case instructions.COP:
		if mc.Status.Emulation {
			vector = cpubus.EmulationCOP
		} else {
			vector = cpubus.NativeCOP
		}
	default:
		assert.Check(false, "cpu: unhandled interrupt operator %s", defn.Operator)
	}

	mc.interruptSequence(vector, defn.Operator == instructions.BRK)
}

func (mc *CPU) executePush(defn *instructions.Definition) {
	switch defn.Operator {
	case instructions.PEA:
		mc.pushLong16(mc.fetch16())
		mc.fixStackPage()
		return

	case instructions.PEI:
		dp := uint16(mc.fetch())
		mc.directPenalty()
		mc.pushLong16(mc.readPointer(dp))
		mc.fixStackPage()
		return

	case instructions.PER:
		rel := mc.fetch16()
		mc.io()
		mc.pushLong16(mc.PC.Value() + rel)
		mc.fixStackPage()
		return
	}

	mc.io()

	switch defn.Operator {
	case instructions.PHA:
		mc.pushWidth(mc.A.Value(), mc.width(defn.Operator))
	case instructions.PHX:
		mc.pushWidth(mc.X.Value(), mc.width(defn.Operator))
	case instructions.PHY:
		mc.pushWidth(mc.Y.Value(), mc.width(defn.Operator))
	case instructions.PHB:
		mc.push(mc.DB)
	case instructions.PHK:
		mc.push(mc.PB)
	case instructions.PHD:
		mc.pushLong16(mc.D.Value())
		mc.fixStackPage()
	case instructions.PHP:
		mc.push(mc.Status.Value(true))
	default:
		assert.Check(false, "cpu: unhandled push operator %s", defn.Operator)
	}
}

func (mc *CPU) executePull(defn *instructions.Definition) {
	mc.io()
	mc.io()

	w := mc.width(defn.Operator)

	switch defn.Operator {
	case instructions.PLA:
		mc.A.Set(mc.pullWidth(w), w)
		mc.Status.SetNZ(mc.A.Value(), w)
	case instructions.PLX:
		mc.X.Set(mc.pullWidth(w), w)
		mc.Status.SetNZ(mc.X.Value(), w)
	case instructions.PLY:
		mc.Y.Set(mc.pullWidth(w), w)
		mc.Status.SetNZ(mc.Y.Value(), w)
	case instructions.PLB:
		mc.DB = mc.pullLong()
		mc.fixStackPage()
		mc.Status.SetNZ(uint16(mc.DB), registers.Width8)
	case instructions.PLD:
		mc.D.Load(mc.pullLong16())
		mc.fixStackPage()
		mc.Status.SetNZ(mc.D.Value(), registers.Width16)
	case instructions.PLP:
		mc.Status.Load(mc.pull())
		mc.applyEmulationMode()
	default:
		assert.Check(false, "cpu: unhandled pull operator %s", defn.Operator)
	}
}

// executeMove transfers one byte of a block move. the instruction repeats
// itself by winding the PC back until the accumulator underflows
func (mc *CPU) executeMove(defn *instructions.Definition) {
	dst := mc.fetch()
	src := mc.fetch()
	mc.DB = dst

	v := mc.read(uint32(src)<<16 | uint32(mc.X.Value()))
	mc.write(uint32(dst)<<16|uint32(mc.Y.Value()), v)
	mc.io()
	mc.io()

	xw := mc.Status.IndexRegisterWidth()
	switch defn.Operator {
	case instructions.MVN:
		mc.X.Increment(xw)
		mc.Y.Increment(xw)
	case instructions.MVP:
		mc.X.Decrement(xw)
		mc.Y.Decrement(xw)
	}

	mc.A.Load(mc.A.Value() - 1)
	if mc.A.Value() != 0xffff {
		mc.PC.Load(mc.PC.Value() - 3)
	}
}
