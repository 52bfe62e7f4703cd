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
	"github.com/jetsetilly/gopherx86/hardware/cpu/memorysize"
	"github.com/jetsetilly/gopherx86/hardware/cpu/mnemonics"
	"github.com/jetsetilly/gopherx86/hardware/cpu/registers"
	"github.com/jetsetilly/gopherx86/hardware/cpu/result"
)

// UsedRegister is a register accessed by an instruction.
type UsedRegister struct {
	Register registers.Register
	Access   OpAccess
}

// UsedMemory is a memory location accessed by an instruction. The address is
// described in the same way as result.MemoryOperand.
//
// For IP relative memory operands the Base field is registers.None and the
// Displacement field is the absolute address.
type UsedMemory struct {
	Segment      registers.Register
	Base         registers.Register
	Index        registers.Register
	Scale        int
	Displacement uint64
	Size         memorysize.MemorySize
	AddressSize  int
	Access       OpAccess
}

// AccessInfo is the result of Analyze().
type AccessInfo struct {
	// the access of each operand, in the same order as the operands of the
	// instruction
	Operands [result.MaxOperands]OpAccess

	// registers accessed by the instruction, both explicit operands and
	// implicit registers. a register may appear more than once if it is
	// accessed in more than one way
	Registers []UsedRegister

	// at most one entry for an explicit memory operand. string instructions
	// add an entry for each of their source and destination
	Memory []UsedMemory

	RflagsRead RflagsBits

	// flags that are set according to the result of the instruction
	RflagsWritten RflagsBits

	// flags that are always set to one or always cleared to zero
	RflagsSet     RflagsBits
	RflagsCleared RflagsBits

	// flags that are left in an undefined state
	RflagsUndefined RflagsBits

	Flow FlowControl

	// the condition tested by a conditional instruction. ConditionNone for
	// all other instructions
	ConditionCode ConditionCode

	// the instruction pushes or pops the stack, or otherwise changes the
	// stack pointer as part of its operation. StackPointerIncrement is the
	// change in bytes, which is negative for a push. the increment of LEAVE
	// depends on the frame pointer and is given as zero
	StackInstruction      bool
	StackPointerIncrement int

	// the instruction can only be executed at privilege level zero
	Privileged bool
}

// RflagsModified returns the set of flags changed in any way by the
// instruction.
func (ai AccessInfo) RflagsModified() RflagsBits {
	return ai.RflagsWritten | ai.RflagsSet | ai.RflagsCleared | ai.RflagsUndefined
}

// Op returns the access of operand n. Returns None if n is out of range.
func (ai AccessInfo) Op(n int) OpAccess {
	if n < 0 || n >= len(ai.Operands) {
		return None
	}
	return ai.Operands[n]
}

// Register returns the access of the first entry for the register. The
// second return value is false if the instruction does not access the
// register.
func (ai AccessInfo) Register(reg registers.Register) (OpAccess, bool) {
	for _, r := range ai.Registers {
		if r.Register == reg {
			return r.Access, true
		}
	}
	return None, false
}

// Analyze returns the registers, memory and flags accessed by the
// instruction. The instruction must be one returned by a successful call to
// the decoder. For any other instruction the result is undefined.
func Analyze(ins *result.Instruction) AccessInfo {
	ai := AccessInfo{}
	desc := lookup(ins.Code)

	ai.Flow = desc.flow
	ai.ConditionCode = desc.condition
	ai.Privileged = desc.privileged
	if desc.stack != stackNone {
		ai.StackInstruction = true
		ai.StackPointerIncrement = desc.stack.increment(ins)
	}

	access := desc.access
	if desc.zeroIdiom && isZeroIdiom(ins) {
		access = accesses{Write}
	}

	merge := ins.OpMask != registers.None && !ins.ZeroingMasking &&
		!ins.Op(0).Register.IsOpmask()

	rep := ins.Prefixes.Rep || ins.Prefixes.Repne

	for i := 0; i < ins.OperandCount; i++ {
		op := ins.Operands[i]
		acc := access[i]

		switch op.Kind {
		case result.OperandRegister:
			if i == 0 && merge && acc == Write {
				acc = ReadCondWrite
			}
			if acc == NoMemAccess {
				acc = Read
			}
			ai.Operands[i] = acc
			ai.addRegister(ins, op.Register, acc)

		case result.OperandMemory:
			if ins.OpMask != registers.None {
				switch acc {
				case Read:
					acc = CondRead
				case Write:
					acc = CondWrite
				}
			}
			ai.Operands[i] = acc
			if acc != None {
				ai.addMemory(ins, acc)
			}

		case result.OperandStringSource, result.OperandStringDestination:
			if rep {
				switch acc {
				case Read:
					acc = CondRead
				case Write:
					acc = CondWrite
				case ReadWrite:
					acc = ReadCondWrite
				}
			}
			ai.Operands[i] = acc
			if acc != None {
				ai.addString(ins, op, acc)
			}

		default:
			ai.Operands[i] = acc
		}
	}

	if ins.OpMask != registers.None {
		ai.addRegister(ins, ins.OpMask, Read)
	}

	for _, imp := range implicitTable[desc.implicit] {
		reg := imp.register
		acc := imp.access

		switch imp.symbol {
		case symNone:
		case symRepCounter:
			if !rep {
				continue
			}
			reg = imp.symbol.resolve(ins)
		case symSource, symDestination:
			if !rep && acc == ReadCondWrite {
				acc = ReadWrite
			}
			reg = imp.symbol.resolve(ins)
		default:
			reg = imp.symbol.resolve(ins)
		}

		ai.addRegister(ins, reg, acc)
	}

	flags := rflagsTable[desc.rflags]
	if !zeroCountShift(ins) {
		ai.RflagsRead = flags.read
		ai.RflagsWritten = flags.written
		ai.RflagsSet = flags.set
		ai.RflagsCleared = flags.cleared
		ai.RflagsUndefined = flags.undefined
	}

	return ai
}

// the register written by the processor when reg is written. in 64bit mode
// a write to a 32bit register clears the upper half of the 64bit register and
// a VEX, EVEX or XOP write to a vector register clears the rest of the ZMM
// register.
func widenedRegister(ins *result.Instruction, reg registers.Register) registers.Register {
	if ins.CodeSize == result.CodeSize64 && reg.IsGPR32() {
		return reg.FullRegister()
	}
	if ins.Encoding != result.Legacy && (reg.IsXMM() || reg.IsYMM()) {
		return reg.FullRegister()
	}
	return reg
}

func (ai *AccessInfo) addRegister(ins *result.Instruction, reg registers.Register, acc OpAccess) {
	if reg == registers.None || acc == None {
		return
	}

	if full := widenedRegister(ins, reg); full != reg {
		switch acc {
		case Write, CondWrite:
			reg = full
		case ReadWrite:
			ai.appendRegister(reg, Read)
			reg = full
			acc = Write
		case ReadCondWrite:
			ai.appendRegister(reg, Read)
			reg = full
			acc = CondWrite
		}
	}

	ai.appendRegister(reg, acc)
}

// identical entries are only added once
func (ai *AccessInfo) appendRegister(reg registers.Register, acc OpAccess) {
	for _, r := range ai.Registers {
		if r.Register == reg && r.Access == acc {
			return
		}
	}
	ai.Registers = append(ai.Registers, UsedRegister{Register: reg, Access: acc})
}

// the segment register is only used in 64bit mode if it is FS or GS. the
// other segments have a base of zero
func (ai *AccessInfo) addSegment(ins *result.Instruction, seg registers.Register) {
	if ins.CodeSize != result.CodeSize64 || seg == registers.FS || seg == registers.GS {
		ai.addRegister(ins, seg, Read)
	}
}

func (ai *AccessInfo) addMemory(ins *result.Instruction, acc OpAccess) {
	m := ins.Memory

	if acc != NoMemAccess {
		ai.addSegment(ins, m.Segment)
	}

	mem := UsedMemory{
		Segment:      m.Segment,
		Base:         m.Base,
		Index:        m.Index,
		Scale:        m.Scale,
		Displacement: m.Displacement,
		Size:         m.Size,
		AddressSize:  m.AddressSize,
		Access:       acc,
	}

	if addr, ok := ins.IPRelativeMemoryAddress(); ok {
		mem.Base = registers.None
		mem.Displacement = addr
	} else {
		ai.addRegister(ins, m.Base, Read)
	}
	ai.addRegister(ins, m.Index, Read)

	ai.Memory = append(ai.Memory, mem)
}

func (ai *AccessInfo) addString(ins *result.Instruction, op result.Operand, acc OpAccess) {
	seg := registers.ES
	if op.Kind == result.OperandStringSource {
		seg = ins.Prefixes.Segment
		if seg == registers.None {
			seg = registers.DS
		}
	}
	ai.addSegment(ins, seg)

	// the address register is part of the implicit table
	ai.Memory = append(ai.Memory, UsedMemory{
		Segment:     seg,
		Base:        op.Register,
		Index:       registers.None,
		Scale:       1,
		Size:        stringSize(op.Size),
		AddressSize: ins.AddressSize,
		Access:      acc,
	})
}

func stringSize(bits int) memorysize.MemorySize {
	switch bits {
	case 8:
		return memorysize.UInt8
	case 16:
		return memorysize.UInt16
	case 32:
		return memorysize.UInt32
	case 64:
		return memorysize.UInt64
	}
	return memorysize.Unknown
}

// the last two operands are the same register. the caller must also check
// that the descriptor allows for the idiom
func isZeroIdiom(ins *result.Instruction) bool {
	n := ins.OperandCount
	if n < 2 || ins.OpMask != registers.None {
		return false
	}
	a := ins.Operands[n-2]
	b := ins.Operands[n-1]
	return a.Kind == result.OperandRegister && b.Kind == result.OperandRegister && a.Register == b.Register
}

// a shift or rotate by an immediate count that is zero after masking leaves
// the flags untouched
func zeroCountShift(ins *result.Instruction) bool {
	switch ins.Mnemonic() {
	case mnemonics.Rol, mnemonics.Ror, mnemonics.Rcl, mnemonics.Rcr,
		mnemonics.Shl, mnemonics.Sal, mnemonics.Shr, mnemonics.Sar,
		mnemonics.Shld, mnemonics.Shrd:
	default:
		return false
	}

	if ins.Encoding != result.Legacy {
		return false
	}

	for i := 0; i < ins.OperandCount; i++ {
		op := ins.Operands[i]
		if op.Kind != result.OperandImmediate {
			continue
		}
		mask := uint64(0x1f)
		if ins.OperandSize == 64 {
			mask = 0x3f
		}
		return op.Immediate&mask == 0
	}

	return false
}
