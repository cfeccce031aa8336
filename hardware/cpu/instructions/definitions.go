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

package instructions

// definitions of all 256 opcodes. the number of bytes and cycles are for an
// 8 bit accumulator and 8 bit index registers. the Modifiers field says how
// the definition changes for other width modes and under what conditions
// extra cycles are taken at execution time
var definitions = [256]Definition{
	{OpCode: 0x00, Operator: BRK, Bytes: 2, Cycles: 7, AddressingMode: Immediate, Effect: Interrupt, Modifiers: ModNative},
	{OpCode: 0x01, Operator: ORA, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectX, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x02, Operator: COP, Bytes: 2, Cycles: 7, AddressingMode: Immediate, Effect: Interrupt, Modifiers: ModNative},
	{OpCode: 0x03, Operator: ORA, Bytes: 2, Cycles: 4, AddressingMode: StackRelative, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x04, Operator: TSB, Bytes: 2, Cycles: 5, AddressingMode: Direct, Effect: RMW, Modifiers: ModAccumulatorRMW | ModDirect},
	{OpCode: 0x05, Operator: ORA, Bytes: 2, Cycles: 3, AddressingMode: Direct, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x06, Operator: ASL, Bytes: 2, Cycles: 5, AddressingMode: Direct, Effect: RMW, Modifiers: ModAccumulatorRMW | ModDirect},
	{OpCode: 0x07, Operator: ORA, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectLong, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x08, Operator: PHP, Bytes: 1, Cycles: 3, AddressingMode: Stack, Effect: Push, Modifiers: 0},
	{OpCode: 0x09, Operator: ORA, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x0a, Operator: ASL, Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Effect: Internal, Modifiers: 0},
	{OpCode: 0x0b, Operator: PHD, Bytes: 1, Cycles: 4, AddressingMode: Stack, Effect: Push, Modifiers: 0},
	{OpCode: 0x0c, Operator: TSB, Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW, Modifiers: ModAccumulatorRMW},
	{OpCode: 0x0d, Operator: ORA, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x0e, Operator: ASL, Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW, Modifiers: ModAccumulatorRMW},
	{OpCode: 0x0f, Operator: ORA, Bytes: 4, Cycles: 5, AddressingMode: AbsoluteLong, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x10, Operator: BPL, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow, Modifiers: 0},
	{OpCode: 0x11, Operator: ORA, Bytes: 2, Cycles: 5, AddressingMode: DirectIndirectY, Effect: Read, Modifiers: ModAccumulator | ModDirect | ModPage},
	{OpCode: 0x12, Operator: ORA, Bytes: 2, Cycles: 5, AddressingMode: DirectIndirect, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x13, Operator: ORA, Bytes: 2, Cycles: 7, AddressingMode: StackRelativeIndirectY, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x14, Operator: TRB, Bytes: 2, Cycles: 5, AddressingMode: Direct, Effect: RMW, Modifiers: ModAccumulatorRMW | ModDirect},
	{OpCode: 0x15, Operator: ORA, Bytes: 2, Cycles: 4, AddressingMode: DirectX, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x16, Operator: ASL, Bytes: 2, Cycles: 6, AddressingMode: DirectX, Effect: RMW, Modifiers: ModAccumulatorRMW | ModDirect},
	{OpCode: 0x17, Operator: ORA, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectLongY, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x18, Operator: CLC, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0x19, Operator: ORA, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteY, Effect: Read, Modifiers: ModAccumulator | ModPage},
	{OpCode: 0x1a, Operator: INC, Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Effect: Internal, Modifiers: 0},
	{OpCode: 0x1b, Operator: TCS, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0x1c, Operator: TRB, Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW, Modifiers: ModAccumulatorRMW},
	{OpCode: 0x1d, Operator: ORA, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteX, Effect: Read, Modifiers: ModAccumulator | ModPage},
	{OpCode: 0x1e, Operator: ASL, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteX, Effect: RMW, Modifiers: ModAccumulatorRMW},
	{OpCode: 0x1f, Operator: ORA, Bytes: 4, Cycles: 5, AddressingMode: AbsoluteLongX, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x20, Operator: JSR, Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: Subroutine, Modifiers: 0},
	{OpCode: 0x21, Operator: AND, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectX, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x22, Operator: JSL, Bytes: 4, Cycles: 8, AddressingMode: AbsoluteLong, Effect: Subroutine, Modifiers: 0},
	{OpCode: 0x23, Operator: AND, Bytes: 2, Cycles: 4, AddressingMode: StackRelative, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x24, Operator: BIT, Bytes: 2, Cycles: 3, AddressingMode: Direct, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x25, Operator: AND, Bytes: 2, Cycles: 3, AddressingMode: Direct, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x26, Operator: ROL, Bytes: 2, Cycles: 5, AddressingMode: Direct, Effect: RMW, Modifiers: ModAccumulatorRMW | ModDirect},
	{OpCode: 0x27, Operator: AND, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectLong, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x28, Operator: PLP, Bytes: 1, Cycles: 4, AddressingMode: Stack, Effect: Pull, Modifiers: 0},
	{OpCode: 0x29, Operator: AND, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x2a, Operator: ROL, Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Effect: Internal, Modifiers: 0},
	{OpCode: 0x2b, Operator: PLD, Bytes: 1, Cycles: 5, AddressingMode: Stack, Effect: Pull, Modifiers: 0},
	{OpCode: 0x2c, Operator: BIT, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x2d, Operator: AND, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x2e, Operator: ROL, Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW, Modifiers: ModAccumulatorRMW},
	{OpCode: 0x2f, Operator: AND, Bytes: 4, Cycles: 5, AddressingMode: AbsoluteLong, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x30, Operator: BMI, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow, Modifiers: 0},
	{OpCode: 0x31, Operator: AND, Bytes: 2, Cycles: 5, AddressingMode: DirectIndirectY, Effect: Read, Modifiers: ModAccumulator | ModDirect | ModPage},
	{OpCode: 0x32, Operator: AND, Bytes: 2, Cycles: 5, AddressingMode: DirectIndirect, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x33, Operator: AND, Bytes: 2, Cycles: 7, AddressingMode: StackRelativeIndirectY, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x34, Operator: BIT, Bytes: 2, Cycles: 4, AddressingMode: DirectX, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x35, Operator: AND, Bytes: 2, Cycles: 4, AddressingMode: DirectX, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x36, Operator: ROL, Bytes: 2, Cycles: 6, AddressingMode: DirectX, Effect: RMW, Modifiers: ModAccumulatorRMW | ModDirect},
	{OpCode: 0x37, Operator: AND, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectLongY, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x38, Operator: SEC, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0x39, Operator: AND, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteY, Effect: Read, Modifiers: ModAccumulator | ModPage},
	{OpCode: 0x3a, Operator: DEC, Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Effect: Internal, Modifiers: 0},
	{OpCode: 0x3b, Operator: TSC, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0x3c, Operator: BIT, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteX, Effect: Read, Modifiers: ModAccumulator | ModPage},
	{OpCode: 0x3d, Operator: AND, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteX, Effect: Read, Modifiers: ModAccumulator | ModPage},
	{OpCode: 0x3e, Operator: ROL, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteX, Effect: RMW, Modifiers: ModAccumulatorRMW},
	{OpCode: 0x3f, Operator: AND, Bytes: 4, Cycles: 5, AddressingMode: AbsoluteLongX, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x40, Operator: RTI, Bytes: 1, Cycles: 6, AddressingMode: Stack, Effect: Subroutine, Modifiers: ModNative},
	{OpCode: 0x41, Operator: EOR, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectX, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x42, Operator: WDM, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Internal, Modifiers: 0},
	{OpCode: 0x43, Operator: EOR, Bytes: 2, Cycles: 4, AddressingMode: StackRelative, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x44, Operator: MVP, Bytes: 3, Cycles: 7, AddressingMode: BlockMove, Effect: Move, Modifiers: 0},
	{OpCode: 0x45, Operator: EOR, Bytes: 2, Cycles: 3, AddressingMode: Direct, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x46, Operator: LSR, Bytes: 2, Cycles: 5, AddressingMode: Direct, Effect: RMW, Modifiers: ModAccumulatorRMW | ModDirect},
	{OpCode: 0x47, Operator: EOR, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectLong, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x48, Operator: PHA, Bytes: 1, Cycles: 3, AddressingMode: Stack, Effect: Push, Modifiers: ModAccumulator},
	{OpCode: 0x49, Operator: EOR, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x4a, Operator: LSR, Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Effect: Internal, Modifiers: 0},
	{OpCode: 0x4b, Operator: PHK, Bytes: 1, Cycles: 3, AddressingMode: Stack, Effect: Push, Modifiers: 0},
	{OpCode: 0x4c, Operator: JMP, Bytes: 3, Cycles: 3, AddressingMode: Absolute, Effect: Flow, Modifiers: 0},
	{OpCode: 0x4d, Operator: EOR, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x4e, Operator: LSR, Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW, Modifiers: ModAccumulatorRMW},
	{OpCode: 0x4f, Operator: EOR, Bytes: 4, Cycles: 5, AddressingMode: AbsoluteLong, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x50, Operator: BVC, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow, Modifiers: 0},
	{OpCode: 0x51, Operator: EOR, Bytes: 2, Cycles: 5, AddressingMode: DirectIndirectY, Effect: Read, Modifiers: ModAccumulator | ModDirect | ModPage},
	{OpCode: 0x52, Operator: EOR, Bytes: 2, Cycles: 5, AddressingMode: DirectIndirect, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x53, Operator: EOR, Bytes: 2, Cycles: 7, AddressingMode: StackRelativeIndirectY, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x54, Operator: MVN, Bytes: 3, Cycles: 7, AddressingMode: BlockMove, Effect: Move, Modifiers: 0},
	{OpCode: 0x55, Operator: EOR, Bytes: 2, Cycles: 4, AddressingMode: DirectX, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x56, Operator: LSR, Bytes: 2, Cycles: 6, AddressingMode: DirectX, Effect: RMW, Modifiers: ModAccumulatorRMW | ModDirect},
	{OpCode: 0x57, Operator: EOR, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectLongY, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x58, Operator: CLI, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0x59, Operator: EOR, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteY, Effect: Read, Modifiers: ModAccumulator | ModPage},
	{OpCode: 0x5a, Operator: PHY, Bytes: 1, Cycles: 3, AddressingMode: Stack, Effect: Push, Modifiers: ModIndex},
	{OpCode: 0x5b, Operator: TCD, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0x5c, Operator: JML, Bytes: 4, Cycles: 4, AddressingMode: AbsoluteLong, Effect: Flow, Modifiers: 0},
	{OpCode: 0x5d, Operator: EOR, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteX, Effect: Read, Modifiers: ModAccumulator | ModPage},
	{OpCode: 0x5e, Operator: LSR, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteX, Effect: RMW, Modifiers: ModAccumulatorRMW},
	{OpCode: 0x5f, Operator: EOR, Bytes: 4, Cycles: 5, AddressingMode: AbsoluteLongX, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x60, Operator: RTS, Bytes: 1, Cycles: 6, AddressingMode: Stack, Effect: Subroutine, Modifiers: 0},
	{OpCode: 0x61, Operator: ADC, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectX, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x62, Operator: PER, Bytes: 3, Cycles: 6, AddressingMode: RelativeLong, Effect: Push, Modifiers: 0},
	{OpCode: 0x63, Operator: ADC, Bytes: 2, Cycles: 4, AddressingMode: StackRelative, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x64, Operator: STZ, Bytes: 2, Cycles: 3, AddressingMode: Direct, Effect: Write, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x65, Operator: ADC, Bytes: 2, Cycles: 3, AddressingMode: Direct, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x66, Operator: ROR, Bytes: 2, Cycles: 5, AddressingMode: Direct, Effect: RMW, Modifiers: ModAccumulatorRMW | ModDirect},
	{OpCode: 0x67, Operator: ADC, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectLong, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x68, Operator: PLA, Bytes: 1, Cycles: 4, AddressingMode: Stack, Effect: Pull, Modifiers: ModAccumulator},
	{OpCode: 0x69, Operator: ADC, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x6a, Operator: ROR, Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Effect: Internal, Modifiers: 0},
	{OpCode: 0x6b, Operator: RTL, Bytes: 1, Cycles: 6, AddressingMode: Stack, Effect: Subroutine, Modifiers: 0},
	{OpCode: 0x6c, Operator: JMP, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndirect, Effect: Flow, Modifiers: 0},
	{OpCode: 0x6d, Operator: ADC, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x6e, Operator: ROR, Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW, Modifiers: ModAccumulatorRMW},
	{OpCode: 0x6f, Operator: ADC, Bytes: 4, Cycles: 5, AddressingMode: AbsoluteLong, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x70, Operator: BVS, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow, Modifiers: 0},
	{OpCode: 0x71, Operator: ADC, Bytes: 2, Cycles: 5, AddressingMode: DirectIndirectY, Effect: Read, Modifiers: ModAccumulator | ModDirect | ModPage},
	{OpCode: 0x72, Operator: ADC, Bytes: 2, Cycles: 5, AddressingMode: DirectIndirect, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x73, Operator: ADC, Bytes: 2, Cycles: 7, AddressingMode: StackRelativeIndirectY, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x74, Operator: STZ, Bytes: 2, Cycles: 4, AddressingMode: DirectX, Effect: Write, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x75, Operator: ADC, Bytes: 2, Cycles: 4, AddressingMode: DirectX, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x76, Operator: ROR, Bytes: 2, Cycles: 6, AddressingMode: DirectX, Effect: RMW, Modifiers: ModAccumulatorRMW | ModDirect},
	{OpCode: 0x77, Operator: ADC, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectLongY, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x78, Operator: SEI, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0x79, Operator: ADC, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteY, Effect: Read, Modifiers: ModAccumulator | ModPage},
	{OpCode: 0x7a, Operator: PLY, Bytes: 1, Cycles: 4, AddressingMode: Stack, Effect: Pull, Modifiers: ModIndex},
	{OpCode: 0x7b, Operator: TDC, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0x7c, Operator: JMP, Bytes: 3, Cycles: 6, AddressingMode: AbsoluteIndirectX, Effect: Flow, Modifiers: 0},
	{OpCode: 0x7d, Operator: ADC, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteX, Effect: Read, Modifiers: ModAccumulator | ModPage},
	{OpCode: 0x7e, Operator: ROR, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteX, Effect: RMW, Modifiers: ModAccumulatorRMW},
	{OpCode: 0x7f, Operator: ADC, Bytes: 4, Cycles: 5, AddressingMode: AbsoluteLongX, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x80, Operator: BRA, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow, Modifiers: 0},
	{OpCode: 0x81, Operator: STA, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectX, Effect: Write, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x82, Operator: BRL, Bytes: 3, Cycles: 4, AddressingMode: RelativeLong, Effect: Flow, Modifiers: 0},
	{OpCode: 0x83, Operator: STA, Bytes: 2, Cycles: 4, AddressingMode: StackRelative, Effect: Write, Modifiers: ModAccumulator},
	{OpCode: 0x84, Operator: STY, Bytes: 2, Cycles: 3, AddressingMode: Direct, Effect: Write, Modifiers: ModIndex | ModDirect},
	{OpCode: 0x85, Operator: STA, Bytes: 2, Cycles: 3, AddressingMode: Direct, Effect: Write, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x86, Operator: STX, Bytes: 2, Cycles: 3, AddressingMode: Direct, Effect: Write, Modifiers: ModIndex | ModDirect},
	{OpCode: 0x87, Operator: STA, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectLong, Effect: Write, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x88, Operator: DEY, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0x89, Operator: BIT, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0x8a, Operator: TXA, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0x8b, Operator: PHB, Bytes: 1, Cycles: 3, AddressingMode: Stack, Effect: Push, Modifiers: 0},
	{OpCode: 0x8c, Operator: STY, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Write, Modifiers: ModIndex},
	{OpCode: 0x8d, Operator: STA, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Write, Modifiers: ModAccumulator},
	{OpCode: 0x8e, Operator: STX, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Write, Modifiers: ModIndex},
	{OpCode: 0x8f, Operator: STA, Bytes: 4, Cycles: 5, AddressingMode: AbsoluteLong, Effect: Write, Modifiers: ModAccumulator},
	{OpCode: 0x90, Operator: BCC, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow, Modifiers: 0},
	{OpCode: 0x91, Operator: STA, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectY, Effect: Write, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x92, Operator: STA, Bytes: 2, Cycles: 5, AddressingMode: DirectIndirect, Effect: Write, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x93, Operator: STA, Bytes: 2, Cycles: 7, AddressingMode: StackRelativeIndirectY, Effect: Write, Modifiers: ModAccumulator},
	{OpCode: 0x94, Operator: STY, Bytes: 2, Cycles: 4, AddressingMode: DirectX, Effect: Write, Modifiers: ModIndex | ModDirect},
	{OpCode: 0x95, Operator: STA, Bytes: 2, Cycles: 4, AddressingMode: DirectX, Effect: Write, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x96, Operator: STX, Bytes: 2, Cycles: 4, AddressingMode: DirectY, Effect: Write, Modifiers: ModIndex | ModDirect},
	{OpCode: 0x97, Operator: STA, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectLongY, Effect: Write, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0x98, Operator: TYA, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0x99, Operator: STA, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteY, Effect: Write, Modifiers: ModAccumulator},
	{OpCode: 0x9a, Operator: TXS, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0x9b, Operator: TXY, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0x9c, Operator: STZ, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Write, Modifiers: ModAccumulator},
	{OpCode: 0x9d, Operator: STA, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteX, Effect: Write, Modifiers: ModAccumulator},
	{OpCode: 0x9e, Operator: STZ, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteX, Effect: Write, Modifiers: ModAccumulator},
	{OpCode: 0x9f, Operator: STA, Bytes: 4, Cycles: 5, AddressingMode: AbsoluteLongX, Effect: Write, Modifiers: ModAccumulator},
	{OpCode: 0xa0, Operator: LDY, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Modifiers: ModIndex},
	{OpCode: 0xa1, Operator: LDA, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectX, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0xa2, Operator: LDX, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Modifiers: ModIndex},
	{OpCode: 0xa3, Operator: LDA, Bytes: 2, Cycles: 4, AddressingMode: StackRelative, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0xa4, Operator: LDY, Bytes: 2, Cycles: 3, AddressingMode: Direct, Effect: Read, Modifiers: ModIndex | ModDirect},
	{OpCode: 0xa5, Operator: LDA, Bytes: 2, Cycles: 3, AddressingMode: Direct, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0xa6, Operator: LDX, Bytes: 2, Cycles: 3, AddressingMode: Direct, Effect: Read, Modifiers: ModIndex | ModDirect},
	{OpCode: 0xa7, Operator: LDA, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectLong, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0xa8, Operator: TAY, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0xa9, Operator: LDA, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0xaa, Operator: TAX, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0xab, Operator: PLB, Bytes: 1, Cycles: 4, AddressingMode: Stack, Effect: Pull, Modifiers: 0},
	{OpCode: 0xac, Operator: LDY, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Modifiers: ModIndex},
	{OpCode: 0xad, Operator: LDA, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0xae, Operator: LDX, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Modifiers: ModIndex},
	{OpCode: 0xaf, Operator: LDA, Bytes: 4, Cycles: 5, AddressingMode: AbsoluteLong, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0xb0, Operator: BCS, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow, Modifiers: 0},
	{OpCode: 0xb1, Operator: LDA, Bytes: 2, Cycles: 5, AddressingMode: DirectIndirectY, Effect: Read, Modifiers: ModAccumulator | ModDirect | ModPage},
	{OpCode: 0xb2, Operator: LDA, Bytes: 2, Cycles: 5, AddressingMode: DirectIndirect, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0xb3, Operator: LDA, Bytes: 2, Cycles: 7, AddressingMode: StackRelativeIndirectY, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0xb4, Operator: LDY, Bytes: 2, Cycles: 4, AddressingMode: DirectX, Effect: Read, Modifiers: ModIndex | ModDirect},
	{OpCode: 0xb5, Operator: LDA, Bytes: 2, Cycles: 4, AddressingMode: DirectX, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0xb6, Operator: LDX, Bytes: 2, Cycles: 4, AddressingMode: DirectY, Effect: Read, Modifiers: ModIndex | ModDirect},
	{OpCode: 0xb7, Operator: LDA, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectLongY, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0xb8, Operator: CLV, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0xb9, Operator: LDA, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteY, Effect: Read, Modifiers: ModAccumulator | ModPage},
	{OpCode: 0xba, Operator: TSX, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0xbb, Operator: TYX, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0xbc, Operator: LDY, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteX, Effect: Read, Modifiers: ModIndex | ModPage},
	{OpCode: 0xbd, Operator: LDA, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteX, Effect: Read, Modifiers: ModAccumulator | ModPage},
	{OpCode: 0xbe, Operator: LDX, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteY, Effect: Read, Modifiers: ModIndex | ModPage},
	{OpCode: 0xbf, Operator: LDA, Bytes: 4, Cycles: 5, AddressingMode: AbsoluteLongX, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0xc0, Operator: CPY, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Modifiers: ModIndex},
	{OpCode: 0xc1, Operator: CMP, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectX, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0xc2, Operator: REP, Bytes: 2, Cycles: 3, AddressingMode: Immediate, Effect: Internal, Modifiers: 0},
	{OpCode: 0xc3, Operator: CMP, Bytes: 2, Cycles: 4, AddressingMode: StackRelative, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0xc4, Operator: CPY, Bytes: 2, Cycles: 3, AddressingMode: Direct, Effect: Read, Modifiers: ModIndex | ModDirect},
	{OpCode: 0xc5, Operator: CMP, Bytes: 2, Cycles: 3, AddressingMode: Direct, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0xc6, Operator: DEC, Bytes: 2, Cycles: 5, AddressingMode: Direct, Effect: RMW, Modifiers: ModAccumulatorRMW | ModDirect},
	{OpCode: 0xc7, Operator: CMP, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectLong, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0xc8, Operator: INY, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0xc9, Operator: CMP, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0xca, Operator: DEX, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0xcb, Operator: WAI, Bytes: 1, Cycles: 3, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0xcc, Operator: CPY, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Modifiers: ModIndex},
	{OpCode: 0xcd, Operator: CMP, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0xce, Operator: DEC, Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW, Modifiers: ModAccumulatorRMW},
	{OpCode: 0xcf, Operator: CMP, Bytes: 4, Cycles: 5, AddressingMode: AbsoluteLong, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0xd0, Operator: BNE, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow, Modifiers: 0},
	{OpCode: 0xd1, Operator: CMP, Bytes: 2, Cycles: 5, AddressingMode: DirectIndirectY, Effect: Read, Modifiers: ModAccumulator | ModDirect | ModPage},
	{OpCode: 0xd2, Operator: CMP, Bytes: 2, Cycles: 5, AddressingMode: DirectIndirect, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0xd3, Operator: CMP, Bytes: 2, Cycles: 7, AddressingMode: StackRelativeIndirectY, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0xd4, Operator: PEI, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirect, Effect: Push, Modifiers: ModDirect},
	{OpCode: 0xd5, Operator: CMP, Bytes: 2, Cycles: 4, AddressingMode: DirectX, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0xd6, Operator: DEC, Bytes: 2, Cycles: 6, AddressingMode: DirectX, Effect: RMW, Modifiers: ModAccumulatorRMW | ModDirect},
	{OpCode: 0xd7, Operator: CMP, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectLongY, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0xd8, Operator: CLD, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0xd9, Operator: CMP, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteY, Effect: Read, Modifiers: ModAccumulator | ModPage},
	{OpCode: 0xda, Operator: PHX, Bytes: 1, Cycles: 3, AddressingMode: Stack, Effect: Push, Modifiers: ModIndex},
	{OpCode: 0xdb, Operator: STP, Bytes: 1, Cycles: 3, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0xdc, Operator: JML, Bytes: 3, Cycles: 6, AddressingMode: AbsoluteIndirectLong, Effect: Flow, Modifiers: 0},
	{OpCode: 0xdd, Operator: CMP, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteX, Effect: Read, Modifiers: ModAccumulator | ModPage},
	{OpCode: 0xde, Operator: DEC, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteX, Effect: RMW, Modifiers: ModAccumulatorRMW},
	{OpCode: 0xdf, Operator: CMP, Bytes: 4, Cycles: 5, AddressingMode: AbsoluteLongX, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0xe0, Operator: CPX, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Modifiers: ModIndex},
	{OpCode: 0xe1, Operator: SBC, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectX, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0xe2, Operator: SEP, Bytes: 2, Cycles: 3, AddressingMode: Immediate, Effect: Internal, Modifiers: 0},
	{OpCode: 0xe3, Operator: SBC, Bytes: 2, Cycles: 4, AddressingMode: StackRelative, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0xe4, Operator: CPX, Bytes: 2, Cycles: 3, AddressingMode: Direct, Effect: Read, Modifiers: ModIndex | ModDirect},
	{OpCode: 0xe5, Operator: SBC, Bytes: 2, Cycles: 3, AddressingMode: Direct, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0xe6, Operator: INC, Bytes: 2, Cycles: 5, AddressingMode: Direct, Effect: RMW, Modifiers: ModAccumulatorRMW | ModDirect},
	{OpCode: 0xe7, Operator: SBC, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectLong, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0xe8, Operator: INX, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0xe9, Operator: SBC, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0xea, Operator: NOP, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0xeb, Operator: XBA, Bytes: 1, Cycles: 3, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0xec, Operator: CPX, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Modifiers: ModIndex},
	{OpCode: 0xed, Operator: SBC, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0xee, Operator: INC, Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW, Modifiers: ModAccumulatorRMW},
	{OpCode: 0xef, Operator: SBC, Bytes: 4, Cycles: 5, AddressingMode: AbsoluteLong, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0xf0, Operator: BEQ, Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow, Modifiers: 0},
	{OpCode: 0xf1, Operator: SBC, Bytes: 2, Cycles: 5, AddressingMode: DirectIndirectY, Effect: Read, Modifiers: ModAccumulator | ModDirect | ModPage},
	{OpCode: 0xf2, Operator: SBC, Bytes: 2, Cycles: 5, AddressingMode: DirectIndirect, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0xf3, Operator: SBC, Bytes: 2, Cycles: 7, AddressingMode: StackRelativeIndirectY, Effect: Read, Modifiers: ModAccumulator},
	{OpCode: 0xf4, Operator: PEA, Bytes: 3, Cycles: 5, AddressingMode: Absolute, Effect: Push, Modifiers: 0},
	{OpCode: 0xf5, Operator: SBC, Bytes: 2, Cycles: 4, AddressingMode: DirectX, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0xf6, Operator: INC, Bytes: 2, Cycles: 6, AddressingMode: DirectX, Effect: RMW, Modifiers: ModAccumulatorRMW | ModDirect},
	{OpCode: 0xf7, Operator: SBC, Bytes: 2, Cycles: 6, AddressingMode: DirectIndirectLongY, Effect: Read, Modifiers: ModAccumulator | ModDirect},
	{OpCode: 0xf8, Operator: SED, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0xf9, Operator: SBC, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteY, Effect: Read, Modifiers: ModAccumulator | ModPage},
	{OpCode: 0xfa, Operator: PLX, Bytes: 1, Cycles: 4, AddressingMode: Stack, Effect: Pull, Modifiers: ModIndex},
	{OpCode: 0xfb, Operator: XCE, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Internal, Modifiers: 0},
	{OpCode: 0xfc, Operator: JSR, Bytes: 3, Cycles: 8, AddressingMode: AbsoluteIndirectX, Effect: Subroutine, Modifiers: 0},
	{OpCode: 0xfd, Operator: SBC, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteX, Effect: Read, Modifiers: ModAccumulator | ModPage},
	{OpCode: 0xfe, Operator: INC, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteX, Effect: RMW, Modifiers: ModAccumulatorRMW},
	{OpCode: 0xff, Operator: SBC, Bytes: 4, Cycles: 5, AddressingMode: AbsoluteLongX, Effect: Read, Modifiers: ModAccumulator},
}
