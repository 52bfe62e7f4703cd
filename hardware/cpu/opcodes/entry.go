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

package opcodes

import (
	"github.com/jetsetilly/gopherx86/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherx86/hardware/cpu/memorysize"
	"github.com/jetsetilly/gopherx86/hardware/cpu/result"
)

// Kind of an entry.
type Kind uint8

// List of valid Kind values.
const (
	KindInvalid Kind = iota
	KindNormal

	// further decoded by the ModRM byte. see Resolve()
	KindGroup

	// the one byte NOP (0x90). becomes the Alt entry (XCHG r,rAX) if REX.B
	// is set
	KindNop

	// escape bytes. in 16 and 32bit mode the escape is only taken if the
	// following byte has both mod bits set (or for XOP, if the map select
	// field is 8 or more). otherwise the Alt entry (LES, LDS, BOUND and POP
	// respectively) is decoded with the following byte as its ModRM byte
	KindVEX2
	KindVEX3
	KindEVEX
	KindXOP

	// VEX, EVEX and XOP: the operands differ with the W bit. the W0 entry is
	// at Alt and the W1 entry is at Alt+1. see ByW()
	KindW
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNormal:
		return "normal"
	case KindGroup:
		return "group"
	case KindNop:
		return "nop"
	case KindVEX2:
		return "vex2"
	case KindVEX3:
		return "vex3"
	case KindEVEX:
		return "evex"
	case KindXOP:
		return "xop"
	case KindW:
		return "w"
	}
	return "unknown kind"
}

// Flags of an entry.
type Flags uint32

// List of valid Flags.
const (
	// a ModRM byte follows the opcode
	FlagModRM Flags = 1 << iota

	// the LOCK prefix is permitted (with a memory destination)
	FlagLock

	// the ModRM byte must select a memory operand
	FlagNoMod3

	// the ModRM byte must select a register operand
	FlagMod3

	// in 64bit mode the operand size is 64bit unless there is an operand
	// size prefix
	FlagDefault64

	// in 64bit mode the operand size is always 64bit
	FlagForce64

	// the code column is chosen by the address size rather than by the
	// operand size
	FlagAddressSizeColumn

	// VEX, EVEX and XOP: the vvvv field is not used and must be 1111b
	FlagNoVvvv

	// VEX and XOP: general purpose register form. the code column is chosen
	// by the operand size (W bit in 64bit mode) and the vector length must be
	// zero
	FlagVexGPR
	FlagL0

	// EVEX: opmask, zeroing-masking, broadcast, embedded rounding and
	// suppress-all-exceptions are permitted
	FlagMask
	FlagZeroing
	FlagBroadcast
	FlagRounding
	FlagSAE

	// VEX and EVEX: the memory operand uses a vector index register (VSIB).
	// a SIB byte is required
	FlagVSIB
)

// Has returns true if all of the flags in f are set.
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}

// Operand is the encoding of a single operand. The naming follows the
// convention of the opcode maps in the Intel and AMD manuals. The letter
// gives the source of the operand and the suffix its size.
type Operand uint8

// List of valid Operand values.
const (
	OpNone Operand = iota

	// ModRM.rm general purpose register or memory
	OpEb
	OpEw
	OpEv
	OpEd
	OpEy

	// ModRM.rm register of operand size, or 16bit memory
	OpRvM

	// ModRM.rm 32/64bit register, or memory of the size given by the entry
	OpRyM

	// ModRM.rm register only
	OpRv
	OpRy
	OpRd

	// ModRM.rm register ignoring the mod field (MOV to/from control and debug
	// registers)
	OpRcr

	// ModRM.reg
	OpGb
	OpGw
	OpGv
	OpGd
	OpGy
	OpSw
	OpCd
	OpDd

	// ModRM.rm memory only
	OpM

	// immediates and branches
	OpIb
	OpIbs
	OpIw
	OpId
	OpIz
	OpIv
	OpI1
	OpJb
	OpJz
	OpAp

	// memory offset and string operands
	OpO
	OpX
	OpY

	// fixed registers
	OpAL
	OpCL
	OpDX
	OpAX
	OpRAX
	OpEAX
	OpES
	OpCS
	OpSS
	OpDS
	OpFS
	OpGS
	OpST0
	OpSTi
	OpXMM0

	// register in the low three bits of the opcode
	OpZb
	OpZv

	// vector registers. V is ModRM.reg, U is ModRM.rm register, W is
	// ModRM.rm register or memory and H is the VEX.vvvv register. the X
	// suffixed variants are always XMM registers
	OpV
	OpU
	OpW
	OpP
	OpQ
	OpN
	OpH
	OpVX
	OpHX
	OpUX
	OpWX

	// half the vector length. XMM for 128 and 256bit vectors, YMM for 512bit
	OpVh
	OpWh

	// VSIB memory. the index register is the vector length (x suffix) or
	// half the vector length (h suffix)
	OpMVx
	OpMVh

	// opmask registers
	OpK
	OpKR
	OpKH
	OpKM

	// general purpose register in VEX.vvvv
	OpBy

	// vector register in bits 7 to 4 of an immediate byte
	OpIs4
	OpIs4X
)

// Codes is the grid of instruction codes of an entry. The row is the W bit
// of a VEX, EVEX or XOP prefix (always zero for legacy encodings) and the
// column is the operand size (16, 32, 64) or vector length (128, 256, 512).
type Codes [2][3]instructions.Code

// Sizes is the grid of memory sizes corresponding to Codes.
type Sizes [2][3]memorysize.MemorySize

// Operands lists the encoding of each operand of an entry.
type Operands [result.MaxOperands]Operand

// Entry is the handler descriptor for an opcode.
type Entry struct {
	Kind     Kind
	Flags    Flags
	Operands Operands
	Codes    Codes
	Memory   Sizes

	// the size of a single element when the memory operand is broadcast.
	// indexed by W
	Broadcast [2]memorysize.MemorySize

	// index into the group table for KindGroup
	Group uint16

	// index of the alternative entry. see the Kind constants
	Alt uint16
}

// NumOperands returns the number of operands of the entry.
func (e *Entry) NumOperands() int {
	n := 0
	for n < len(e.Operands) && e.Operands[n] != OpNone {
		n++
	}
	return n
}

// Code returns the instruction code for the W bit and column.
func (e *Entry) Code(w int, col int) instructions.Code {
	if w < 0 || w > 1 || col < 0 || col > 2 {
		return instructions.Invalid
	}
	return e.Codes[w][col]
}

// MemorySize returns the memory size for the W bit and column.
func (e *Entry) MemorySize(w int, col int) memorysize.MemorySize {
	if w < 0 || w > 1 || col < 0 || col > 2 {
		return memorysize.Unknown
	}
	return e.Memory[w][col]
}

// Group of entries selected by the ModRM byte. Mem is indexed by ModRM.reg
// when ModRM.mod selects memory and Reg is indexed by ModRM.reg when it
// selects a register. If RM is not zero it is an index into the table of
// entries selected by both ModRM.reg and ModRM.rm for register forms.
type Group struct {
	Mem [8]uint16
	Reg [8]uint16
	RM  uint16
}
