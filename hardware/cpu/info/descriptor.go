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


package info

import (
	"github.com/jetsetilly/gopherx86/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherx86/hardware/cpu/registers"
	"github.com/jetsetilly/gopherx86/hardware/cpu/result"
)

// implicit registers that depend on the code size or the address size of the
// instruction.
type symbol uint8

const (
	symNone symbol = iota

	// SP, ESP or RSP by code size. stack accesses in 16bit and 32bit code
	// follow the stack segment but the descriptor table does not track the
	// B bit of the SS descriptor
	symStackPointer
	symFramePointer

	// the counter of a string instruction. only accessed if there is a rep
	// prefix
	symRepCounter

	// CX, ECX or RCX by address size. LOOP and JCXZ
	symCounter

	// the address registers of the string instructions
	symSource
	symDestination

	symXlatBase
	symMonitorAddress
)

// resolve symbol to a register for the instruction.
func (s symbol) resolve(ins *result.Instruction) registers.Register {
	adsize := ins.AddressSize
	if adsize == 0 {
		adsize = ins.CodeSize.Bits()
	}

	switch s {
	case symStackPointer:
		return registers.GPR(stackSize(ins), 4)
	case symFramePointer:
		return registers.GPR(stackSize(ins), 5)
	case symRepCounter, symCounter:
		return registers.GPR(adsize, 1)
	case symSource:
		return registers.GPR(adsize, 6)
	case symDestination:
		return registers.GPR(adsize, 7)
	case symXlatBase:
		return registers.GPR(adsize, 3)
	case symMonitorAddress:
		return registers.GPR(adsize, 0)
	}
	return registers.None
}

func stackSize(ins *result.Instruction) int {
	if bits := ins.CodeSize.Bits(); bits != 0 {
		return bits
	}
	return 64
}

type implicitAccess struct {
	register registers.Register
	symbol   symbol
	access   OpAccess
}

type rflagsInfo struct {
	read      RflagsBits
	written   RflagsBits
	cleared   RflagsBits
	set       RflagsBits
	undefined RflagsBits
}

type accesses [result.MaxOperands]OpAccess

// the change to the stack pointer. the size of a stack element is the operand
// size of the instruction
type stackOp uint8

const (
	stackNone stackOp = iota
	stackPush
	stackPop

	// PUSHA and POPA. eight elements
	stackPushAll
	stackPopAll

	// the return address and the code segment
	stackFarCall

	// RET and RETF. an immediate operand is added to the stack pointer after
	// the return address has been popped
	stackReturn
	stackFarReturn

	// IRET. three elements, or five in 64bit mode where the stack segment
	// and stack pointer are also popped
	stackInterruptReturn

	// ENTER. the frame pointer, the nested frame pointers and the size of
	// the frame
	stackEnter

	// LEAVE. the stack pointer is loaded from the frame pointer
	stackLeave
)

// the semantics of an instruction code. implicit and rflags are indexes into
// the implicitTable and rflagsTable arrays. index zero in both tables means
// nothing
type descriptor struct {
	access   accesses
	implicit uint16
	rflags   uint16
	flow     FlowControl

	// the instruction always writes zero to the destination if the two
	// source registers are the same. XOR, SUB, PXOR etc.
	zeroIdiom bool

	stack      stackOp
	condition  ConditionCode
	privileged bool
}

// the change to the stack pointer in bytes
func (s stackOp) increment(ins *result.Instruction) int {
	n := ins.OperandSize / 8
	if n == 0 {
		n = stackSize(ins) / 8
	}

	// the immediate operand of RET, RETF and ENTER
	var imm int
	if ins.OperandCount > 0 && ins.Operands[0].Kind == result.OperandImmediate {
		imm = int(ins.Operands[0].Immediate & 0xffff)
	}

	switch s {
	case stackPush:
		return -n
	case stackPop:
		return n
	case stackPushAll:
		return -8 * n
	case stackPopAll:
		return 8 * n
	case stackFarCall:
		return -2 * n
	case stackReturn:
		return n + imm
	case stackFarReturn:
		return 2*n + imm
	case stackInterruptReturn:
		if ins.CodeSize == result.CodeSize64 {
			return 5 * n
		}
		return 3 * n
	case stackEnter:
		var level int
		if ins.OperandCount > 1 {
			level = int(ins.Operands[1].Immediate & 0x1f)
		}
		return -(n + level*n + imm)
	}
	return 0
}

// lookup the descriptor for the instruction code. codes outside of the table
// return the zero descriptor.
func lookup(code instructions.Code) descriptor {
	if int(code) >= len(descriptors) {
		return descriptor{}
	}
	return descriptors[code]
}
