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

package result_test

import (
	"testing"

	"github.com/jetsetilly/gopherx86/curated"
	"github.com/jetsetilly/gopherx86/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherx86/hardware/cpu/memorysize"
	"github.com/jetsetilly/gopherx86/hardware/cpu/registers"
	"github.com/jetsetilly/gopherx86/hardware/cpu/result"
	"github.com/jetsetilly/gopherx86/test"
)

// mov eax, 1
func movImmediate() result.Instruction {
	ins := result.Instruction{
		Code:         instructions.MovR32Imm32,
		CodeSize:     result.CodeSize32,
		IP:           0x1000,
		Length:       5,
		OperandSize:  32,
		AddressSize:  32,
		OperandCount: 2,
	}
	ins.Operands[0] = result.Operand{Kind: result.OperandRegister, Register: registers.EAX}
	ins.Operands[1] = result.Operand{Kind: result.OperandImmediate, Immediate: 1, ImmediateSize: 32, Size: 32}
	ins.Offsets.ImmediateOffset = 1
	ins.Offsets.ImmediateSize = 4
	return ins
}

// neg dword [eax+8]
func negMemory() result.Instruction {
	ins := result.Instruction{
		Code:         instructions.NegRm32,
		CodeSize:     result.CodeSize32,
		Length:       3,
		OperandSize:  32,
		AddressSize:  32,
		OperandCount: 1,
	}
	ins.Operands[0] = result.Operand{Kind: result.OperandMemory}
	ins.Memory = result.MemoryOperand{
		Size:             memorysize.UInt32,
		Segment:          registers.DS,
		Base:             registers.EAX,
		Scale:            1,
		Displacement:     8,
		DisplacementSize: 1,
		AddressSize:      32,
	}
	return ins
}

func TestCodeSize(t *testing.T) {
	for _, b := range []int{16, 32, 64} {
		test.ExpectEquality(t, result.CodeSizeFromBits(b).Bits(), b)
	}
	test.ExpectEquality(t, result.CodeSizeFromBits(8), result.CodeSizeUnknown)
	test.ExpectEquality(t, result.CodeSizeUnknown.Bits(), 0)
	test.ExpectEquality(t, result.CodeSize64.String(), "64bit")
}

func TestIsValid(t *testing.T) {
	test.ExpectSuccess(t, movImmediate().IsValid())
	test.ExpectSuccess(t, negMemory().IsValid())

	ins := movImmediate()
	ins.Code = instructions.Invalid
	test.ExpectSuccess(t, curated.Is(ins.IsValid(), result.InvalidRecord))

	ins = movImmediate()
	ins.Length = result.MaxLength + 1
	test.ExpectFailure(t, ins.IsValid())

	ins = movImmediate()
	ins.CodeSize = result.CodeSizeUnknown
	test.ExpectFailure(t, ins.IsValid())

	// an operand beyond the operand count
	ins = movImmediate()
	ins.OperandCount = 1
	test.ExpectFailure(t, ins.IsValid())

	// an immediate wider than its operand
	ins = movImmediate()
	ins.Operands[1].Size = 16
	test.ExpectFailure(t, ins.IsValid())

	// opmask must be an opmask register
	ins = movImmediate()
	ins.OpMask = registers.EAX
	test.ExpectFailure(t, ins.IsValid())

	ins = negMemory()
	ins.Memory.Scale = 3
	test.ExpectFailure(t, ins.IsValid())

	ins = negMemory()
	ins.Memory.DisplacementSize = 2
	test.ExpectFailure(t, ins.IsValid())

	ins = negMemory()
	ins.Memory.Segment = registers.EAX
	test.ExpectFailure(t, ins.IsValid())
}

func TestOperands(t *testing.T) {
	ins := movImmediate()
	test.ExpectEquality(t, ins.Op(0).Register, registers.EAX)
	test.ExpectEquality(t, ins.Op(2), result.Operand{})
	test.ExpectEquality(t, ins.Op(-1), result.Operand{})
	test.ExpectFailure(t, ins.HasMemory())
	test.ExpectSuccess(t, negMemory().HasMemory())

	op := result.Operand{Kind: result.OperandImmediate, Immediate: 0xfff0, Size: 16, Signed: true}
	test.ExpectEquality(t, op.Int(), int64(-16))
	test.ExpectEquality(t, op.String(), "-16")
}

func TestString(t *testing.T) {
	test.ExpectEquality(t, movImmediate().String(), "MovR32Imm32 eax, 0x1")
	test.ExpectEquality(t, negMemory().String(), "NegRm32 UInt32 ds:[eax+0x8]")

	ins := negMemory()
	ins.Memory.Displacement = 0xfffffffffffffff8
	test.ExpectEquality(t, ins.Memory.String(), "UInt32 ds:[eax-0x8]")

	ins.Memory.Base = registers.None
	ins.Memory.Index = registers.ECX
	ins.Memory.Scale = 4
	ins.Memory.Displacement = 0x10
	test.ExpectEquality(t, ins.Memory.String(), "UInt32 ds:[ecx*4+0x10]")
}

func TestNextIP(t *testing.T) {
	ins := movImmediate()
	test.ExpectEquality(t, ins.NextIP(), uint64(0x1005))

	ins.CodeSize = result.CodeSize16
	ins.IP = 0xfffe
	test.ExpectEquality(t, ins.NextIP(), uint64(0x0003))

	ins.CodeSize = result.CodeSize32
	ins.IP = 0xfffffffe
	test.ExpectEquality(t, ins.NextIP(), uint64(0x00000003))
}

func TestBranchTarget(t *testing.T) {
	ins := movImmediate()
	_, ok := ins.NearBranchTarget()
	test.ExpectFailure(t, ok)

	ins = result.Instruction{
		Code:         instructions.JmpRel8Op64,
		CodeSize:     result.CodeSize64,
		Length:       2,
		OperandCount: 1,
	}
	ins.Operands[0] = result.Operand{Kind: result.OperandNearBranch, Size: 64, Target: 0x2000}
	target, ok := ins.NearBranchTarget()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, target, uint64(0x2000))
}

func TestIPRelative(t *testing.T) {
	// lea eax, [eip+0x10]
	ins := result.Instruction{
		Code:         instructions.LeaR32Mem,
		CodeSize:     result.CodeSize64,
		IP:           0xfffffff0,
		Length:       7,
		OperandSize:  32,
		AddressSize:  32,
		OperandCount: 2,
	}
	ins.Operands[0] = result.Operand{Kind: result.OperandRegister, Register: registers.EAX}
	ins.Operands[1] = result.Operand{Kind: result.OperandMemory}
	ins.Memory = result.MemoryOperand{
		Segment:          registers.DS,
		Base:             registers.EIP,
		Scale:            1,
		Displacement:     0x10,
		DisplacementSize: 4,
		AddressSize:      32,
	}
	test.ExpectSuccess(t, ins.IsIPRelativeMemory())

	// the address wraps at 32 bits
	addr, ok := ins.IPRelativeMemoryAddress()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, addr, uint64(0x7))

	addr, ok = ins.VirtualAddress(1, nil)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, addr, uint64(0x7))

	_, ok = negMemory().IPRelativeMemoryAddress()
	test.ExpectFailure(t, ok)
}

func TestVirtualAddress(t *testing.T) {
	values := map[registers.Register]uint64{
		registers.EAX: 0x100,
		registers.ECX: 0x3,
		registers.ESI: 0x2000,
		registers.EDI: 0x3000,
		registers.FS:  0x10000,
	}
	value := func(reg registers.Register) (uint64, bool) {
		v, ok := values[reg]
		return v, ok
	}

	ins := negMemory()
	addr, ok := ins.VirtualAddress(0, value)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, addr, uint64(0x108))

	ins.Memory.Index = registers.ECX
	ins.Memory.Scale = 8
	addr, ok = ins.VirtualAddress(0, value)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, addr, uint64(0x120))

	// FS base is added
	ins.Memory.Segment = registers.FS
	addr, ok = ins.VirtualAddress(0, value)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, addr, uint64(0x10120))

	// unknown register
	ins.Memory.Index = registers.EDX
	_, ok = ins.VirtualAddress(0, value)
	test.ExpectFailure(t, ok)

	// not a memory operand
	_, ok = movImmediate().VirtualAddress(0, value)
	test.ExpectFailure(t, ok)
	_, ok = movImmediate().VirtualAddress(5, value)
	test.ExpectFailure(t, ok)

	// movsb
	ins = result.Instruction{
		Code:         instructions.MovsbM8M8,
		CodeSize:     result.CodeSize32,
		Length:       1,
		AddressSize:  32,
		OperandCount: 2,
	}
	ins.Operands[0] = result.Operand{Kind: result.OperandStringDestination, Register: registers.EDI}
	ins.Operands[1] = result.Operand{Kind: result.OperandStringSource, Register: registers.ESI}
	addr, ok = ins.VirtualAddress(0, value)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, addr, uint64(0x3000))
	addr, ok = ins.VirtualAddress(1, value)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, addr, uint64(0x2000))
}

func TestRoundingControlString(t *testing.T) {
	test.ExpectEquality(t, result.RoundDown.String(), "rd-sae")
	test.ExpectEquality(t, result.EVEX.String(), "evex")
}
