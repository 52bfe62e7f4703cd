// This file is part of Gopherx86.
//
// Gopherx86 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherx86 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherx86.  If not, see <https://www.gnu.org/licenses/>.

package result

import (
	"github.com/jetsetilly/gopherx86/hardware/cpu/memorysize"
	"github.com/jetsetilly/gopherx86/hardware/cpu/registers"
)

// OperandKind is the kind of value an operand refers to.
type OperandKind uint8

// List of valid OperandKind values.
const (
	OperandNone OperandKind = iota
	OperandRegister
	OperandMemory
	OperandImmediate
	OperandNearBranch
	OperandFarBranch

	// the implicit memory operands of the string instructions. the Register
	// field is the SI or DI register of the address size
	OperandStringSource
	OperandStringDestination
)

func (k OperandKind) String() string {
	switch k {
	case OperandNone:
		return "none"
	case OperandRegister:
		return "register"
	case OperandMemory:
		return "memory"
	case OperandImmediate:
		return "immediate"
	case OperandNearBranch:
		return "near branch"
	case OperandFarBranch:
		return "far branch"
	case OperandStringSource:
		return "string source"
	case OperandStringDestination:
		return "string destination"
	}
	return "unknown operand kind"
}

// Operand is a single operand of an instruction. Which fields are meaningful
// depends on the Kind.
type Operand struct {
	Kind OperandKind

	// OperandRegister, OperandStringSource and OperandStringDestination
	Register registers.Register

	// OperandImmediate. the value has been extended to Size bits. if Signed
	// is true the extension was a sign extension, otherwise a zero
	// extension. ImmediateSize is the number of bits actually encoded in the
	// instruction
	Immediate     uint64
	ImmediateSize int
	Signed        bool

	// size in bits of the immediate or of the branch operand
	Size int

	// OperandNearBranch and OperandFarBranch. the target of a near branch has
	// already been resolved against the address of the next instruction
	Target   uint64
	Selector uint16
}

// Int returns the immediate value interpreted as a signed value of Size bits.
func (op Operand) Int() int64 {
	switch op.Size {
	case 8:
		return int64(int8(op.Immediate))
	case 16:
		return int64(int16(op.Immediate))
	case 32:
		return int64(int32(op.Immediate))
	}
	return int64(op.Immediate)
}

// IsRegister returns true if the operand is a register operand.
func (op Operand) IsRegister() bool {
	return op.Kind == OperandRegister
}

// MemoryOperand describes the memory operand of an instruction.
type MemoryOperand struct {
	Size memorysize.MemorySize

	// the segment register used by the memory access. this is the segment
	// override if there is one or the default segment otherwise
	Segment registers.Register

	Base  registers.Register
	Index registers.Register
	Scale int

	// the displacement sign extended to 64 bits. for memory offset operands
	// (MOV AL,moffs etc.) this is the absolute address. for EVEX compressed
	// displacements this is the scaled value
	Displacement uint64

	// number of displacement bytes encoded in the instruction
	DisplacementSize int

	// the address size in bits
	AddressSize int

	// the memory operand is a single element broadcast to all elements of
	// the vector (EVEX.b with a memory operand)
	Broadcast bool
}

// Prefixes records the prefixes of an instruction.
type Prefixes struct {
	// number of legacy prefix bytes before the opcode (or before the VEX,
	// EVEX or XOP escape)
	Count int

	// a prefix of the same class occurred more than once. the last one seen
	// is the one in effect
	Repeated bool

	Lock bool

	// the F3 and F2 prefixes. false if the prefix was consumed as a
	// mandatory prefix
	Rep   bool
	Repne bool

	// the operand size (66) and address size (67) prefixes
	OperandSize bool
	AddressSize bool

	// the segment override in effect. registers.None if there is no
	// override
	Segment registers.Register

	// the REX prefix in effect. zero if there was no effective REX prefix
	REX uint8

	// the mandatory prefix (0x66, 0xf3 or 0xf2) consumed to select the
	// instruction. zero if there was none
	Mandatory uint8
}

// REXW returns true if the REX prefix in effect has the W bit set.
func (p Prefixes) REXW() bool {
	return p.REX&0x08 == 0x08
}

// ConstantOffsets records where in the instruction bytes the displacement and
// the immediates are found. A size of zero means the field is not present.
type ConstantOffsets struct {
	DisplacementOffset int
	DisplacementSize   int
	ImmediateOffset    int
	ImmediateSize      int
	ImmediateOffset2   int
	ImmediateSize2     int
}

// HasDisplacement returns true if the instruction encodes a displacement.
func (c ConstantOffsets) HasDisplacement() bool {
	return c.DisplacementSize > 0
}

// HasImmediate returns true if the instruction encodes at least one
// immediate.
func (c ConstantOffsets) HasImmediate() bool {
	return c.ImmediateSize > 0
}

// HasImmediate2 returns true if the instruction encodes a second immediate.
func (c ConstantOffsets) HasImmediate2() bool {
	return c.ImmediateSize2 > 0
}
