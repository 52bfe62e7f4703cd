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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherx86/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherx86/hardware/cpu/mnemonics"
	"github.com/jetsetilly/gopherx86/hardware/cpu/registers"
)

// MaxLength is the maximum number of bytes in a single instruction.
const MaxLength = 15

// MaxOperands is the maximum number of operands of a single instruction.
const MaxOperands = 5

// CodeSize is the bitness of the code an instruction was decoded in.
type CodeSize uint8

// List of valid CodeSize values.
const (
	CodeSizeUnknown CodeSize = iota
	CodeSize16
	CodeSize32
	CodeSize64
)

// Bits returns the CodeSize as a number of bits. Zero for CodeSizeUnknown.
func (c CodeSize) Bits() int {
	switch c {
	case CodeSize16:
		return 16
	case CodeSize32:
		return 32
	case CodeSize64:
		return 64
	}
	return 0
}

func (c CodeSize) String() string {
	if c == CodeSizeUnknown {
		return "unknown"
	}
	return fmt.Sprintf("%dbit", c.Bits())
}

// CodeSizeFromBits returns the CodeSize for a bitness of 16, 32 or 64.
// Returns CodeSizeUnknown for any other value.
func CodeSizeFromBits(bits int) CodeSize {
	switch bits {
	case 16:
		return CodeSize16
	case 32:
		return CodeSize32
	case 64:
		return CodeSize64
	}
	return CodeSizeUnknown
}

// Encoding is the family of encoding an instruction was decoded from.
type Encoding uint8

// List of valid Encoding values.
const (
	Legacy Encoding = iota
	VEX
	EVEX
	XOP
)

func (e Encoding) String() string {
	switch e {
	case Legacy:
		return "legacy"
	case VEX:
		return "vex"
	case EVEX:
		return "evex"
	case XOP:
		return "xop"
	}
	return "unknown encoding"
}

// RoundingControl is the embedded rounding mode of an EVEX encoded
// instruction.
type RoundingControl uint8

// List of valid RoundingControl values. The order of the four rounding modes
// matches the two bit EVEX field that selects them.
const (
	RoundNone RoundingControl = iota
	RoundToNearest
	RoundDown
	RoundUp
	RoundTowardZero
)

func (rc RoundingControl) String() string {
	switch rc {
	case RoundNone:
		return "none"
	case RoundToNearest:
		return "rn-sae"
	case RoundDown:
		return "rd-sae"
	case RoundUp:
		return "ru-sae"
	case RoundTowardZero:
		return "rz-sae"
	}
	return "unknown rounding"
}

// Instruction is the record of a single decoded instruction.
type Instruction struct {
	Code     instructions.Code
	CodeSize CodeSize
	Encoding Encoding

	// the address of the first byte of the instruction
	IP uint64

	// number of bytes in the instruction. never more than MaxLength
	Length int

	// the effective operand and address size in bits
	OperandSize int
	AddressSize int

	OperandCount int
	Operands     [MaxOperands]Operand

	// the memory operand. only meaningful if one of the operands is of kind
	// OperandMemory
	Memory MemoryOperand

	Prefixes Prefixes

	// EVEX decorations. OpMask is registers.None if there is no opmask
	OpMask                registers.Register
	ZeroingMasking        bool
	SuppressAllExceptions bool
	RoundingControl       RoundingControl

	Offsets ConstantOffsets
}

// Mnemonic returns the mnemonic of the instruction code.
func (ins Instruction) Mnemonic() mnemonics.Mnemonic {
	return ins.Code.Mnemonic()
}

// Op returns the operand at position n. Returns the zero Operand if n is out
// of range.
func (ins Instruction) Op(n int) Operand {
	if n < 0 || n >= ins.OperandCount {
		return Operand{}
	}
	return ins.Operands[n]
}

// HasMemory returns true if any operand is an explicit memory operand.
func (ins Instruction) HasMemory() bool {
	for i := 0; i < ins.OperandCount; i++ {
		if ins.Operands[i].Kind == OperandMemory {
			return true
		}
	}
	return false
}

// String returns a brief representation of the instruction, suitable for
// logging and test failures. It is not an assembler listing.
func (ins Instruction) String() string {
	s := strings.Builder{}
	s.WriteString(ins.Code.String())
	for i := 0; i < ins.OperandCount; i++ {
		if i == 0 {
			s.WriteString(" ")
		} else {
			s.WriteString(", ")
		}
		op := ins.Operands[i]
		if op.Kind == OperandMemory {
			s.WriteString(ins.Memory.String())
		} else {
			s.WriteString(op.String())
		}
		if i == 0 && ins.OpMask != registers.None {
			s.WriteString(fmt.Sprintf(" {%s}", ins.OpMask))
			if ins.ZeroingMasking {
				s.WriteString(" {z}")
			}
		}
	}
	if ins.RoundingControl != RoundNone {
		s.WriteString(fmt.Sprintf(" {%s}", ins.RoundingControl))
	} else if ins.SuppressAllExceptions {
		s.WriteString(" {sae}")
	}
	return s.String()
}
