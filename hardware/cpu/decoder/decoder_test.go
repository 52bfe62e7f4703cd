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

package decoder_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopherx86/bytesource"
	"github.com/jetsetilly/gopherx86/curated"
	"github.com/jetsetilly/gopherx86/hardware/cpu/decoder"
	"github.com/jetsetilly/gopherx86/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherx86/hardware/cpu/memorysize"
	"github.com/jetsetilly/gopherx86/hardware/cpu/registers"
	"github.com/jetsetilly/gopherx86/hardware/cpu/result"
	"github.com/jetsetilly/gopherx86/test"
)

// decode bytes with a decoder of the given bitness and no options
func decode(bitness int, ip uint64, data ...byte) (result.Instruction, int, error) {
	return decoder.Decode(bytesource.NewSlice(data), bitness, ip)
}

// decode bytes that must decode successfully
func demand(t *testing.T, bitness int, ip uint64, data ...byte) result.Instruction {
	t.Helper()
	ins, n, err := decode(bitness, ip, data...)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, ins.Length)
	test.ExpectSuccess(t, ins.IsValid())
	return ins
}

func TestNewDecoder(t *testing.T) {
	for _, b := range []int{16, 32, 64} {
		dec, err := decoder.NewDecoder(b, 0)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, dec.Bitness(), b)
	}

	_, err := decoder.NewDecoder(8, 0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, decoder.UnsupportedBitness))
}

func TestNop(t *testing.T) {
	ins := demand(t, 64, 0x1000, 0x90)
	test.ExpectEquality(t, ins.Code, instructions.Nop)
	test.ExpectEquality(t, ins.Length, 1)
	test.ExpectEquality(t, ins.OperandCount, 0)
	test.ExpectEquality(t, ins.CodeSize, result.CodeSize64)
	test.ExpectEquality(t, ins.IP, uint64(0x1000))
	test.ExpectEquality(t, ins.NextIP(), uint64(0x1001))

	// with REX.B the opcode is XCHG r8d, eax
	ins = demand(t, 64, 0, 0x41, 0x90)
	test.ExpectEquality(t, ins.Code, instructions.XchgR32EAX)
	test.ExpectEquality(t, ins.Op(0).Register, registers.R8D)
	test.ExpectEquality(t, ins.Op(1).Register, registers.EAX)

	// F3 selects PAUSE
	ins = demand(t, 64, 0, 0xf3, 0x90)
	test.ExpectEquality(t, ins.Code, instructions.Pause)
	test.ExpectFailure(t, ins.Prefixes.Rep)
	test.ExpectEquality(t, ins.Prefixes.Mandatory, uint8(0xf3))
}

func TestMoveImmediate(t *testing.T) {
	ins := demand(t, 32, 0, 0xb8, 0x01, 0x00, 0x00, 0x00)
	test.ExpectEquality(t, ins.Code, instructions.MovR32Imm32)
	test.ExpectEquality(t, ins.Length, 5)
	test.ExpectEquality(t, ins.OperandCount, 2)
	test.ExpectEquality(t, ins.Op(0).Kind, result.OperandRegister)
	test.ExpectEquality(t, ins.Op(0).Register, registers.EAX)
	test.ExpectEquality(t, ins.Op(1).Kind, result.OperandImmediate)
	test.ExpectEquality(t, ins.Op(1).Immediate, uint64(1))
	test.ExpectEquality(t, ins.Op(1).ImmediateSize, 32)
	test.ExpectEquality(t, ins.Offsets.ImmediateOffset, 1)
	test.ExpectEquality(t, ins.Offsets.ImmediateSize, 4)
	test.ExpectFailure(t, ins.Offsets.HasDisplacement())

	// operand size prefix
	ins = demand(t, 32, 0, 0x66, 0xb8, 0x34, 0x12)
	test.ExpectEquality(t, ins.Code, instructions.MovR16Imm16)
	test.ExpectEquality(t, ins.Op(0).Register, registers.AX)
	test.ExpectEquality(t, ins.Op(1).Immediate, uint64(0x1234))
	test.ExpectSuccess(t, ins.Prefixes.OperandSize)

	// REX.W gives the 64bit immediate form
	ins = demand(t, 64, 0, 0x48, 0xb8, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11)
	test.ExpectEquality(t, ins.Code, instructions.MovR64Imm64)
	test.ExpectEquality(t, ins.Op(1).Immediate, uint64(0x1122334455667788))
	test.ExpectEquality(t, ins.Op(1).ImmediateSize, 64)
	test.ExpectEquality(t, ins.Length, 10)
}

func TestSignExtendedImmediate(t *testing.T) {
	// add rax, -1
	ins := demand(t, 64, 0, 0x48, 0x83, 0xc0, 0xff)
	test.ExpectEquality(t, ins.Op(1).Immediate, uint64(0xffffffffffffffff))
	test.ExpectEquality(t, ins.Op(1).ImmediateSize, 8)
	test.ExpectEquality(t, ins.Op(1).Size, 64)
	test.ExpectEquality(t, ins.Op(1).Int(), int64(-1))

	// add eax, -1
	ins = demand(t, 32, 0, 0x83, 0xc0, 0xff)
	test.ExpectEquality(t, ins.Code, instructions.AddRm32Imm8)
	test.ExpectEquality(t, ins.Op(1).Immediate, uint64(0xffffffff))
	test.ExpectEquality(t, ins.Op(1).Size, 32)
}

func TestNegMemory(t *testing.T) {
	ins := demand(t, 32, 0, 0xf7, 0x58, 0x08)
	test.ExpectEquality(t, ins.Code, instructions.NegRm32)
	test.ExpectEquality(t, ins.Length, 3)
	test.ExpectEquality(t, ins.OperandCount, 1)
	test.ExpectEquality(t, ins.Op(0).Kind, result.OperandMemory)
	test.ExpectEquality(t, ins.Memory.Base, registers.EAX)
	test.ExpectEquality(t, ins.Memory.Index, registers.None)
	test.ExpectEquality(t, ins.Memory.Displacement, uint64(8))
	test.ExpectEquality(t, ins.Memory.DisplacementSize, 1)
	test.ExpectEquality(t, ins.Memory.Segment, registers.DS)
	test.ExpectEquality(t, ins.Memory.Size, memorysize.UInt32)
	test.ExpectEquality(t, ins.Memory.AddressSize, 32)
	test.ExpectEquality(t, ins.Offsets.DisplacementOffset, 2)
	test.ExpectEquality(t, ins.Offsets.DisplacementSize, 1)
}

func TestInvalidOpcode(t *testing.T) {
	for _, b := range []int{16, 32, 64} {
		_, _, err := decode(b, 0, 0x0f, 0x04, 0x00, 0x00)
		test.ExpectSuccess(t, curated.Is(err, decoder.InvalidEncoding), b)
		test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorInvalid, b)
	}

	// PUSH ES does not exist in 64bit mode
	_, _, err := decode(64, 0, 0x06)
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorInvalid)
	demand(t, 32, 0, 0x06)

	// an SSE opcode where the prefix must select the instruction
	_, _, err = decode(64, 0, 0xf2, 0x0f, 0x28, 0xc1)
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorInvalid)
}

func TestNoMoreBytes(t *testing.T) {
	_, n, err := decode(32, 0, 0xf7)
	test.ExpectSuccess(t, curated.Is(err, decoder.NoMoreBytes))
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorNoMoreBytes)
	test.ExpectEquality(t, n, 1)

	// truncated at every phase boundary of: mov dword [eax*4+0x10], 0x12345678
	full := []byte{0xc7, 0x04, 0x85, 0x10, 0x00, 0x00, 0x00, 0x78, 0x56, 0x34, 0x12}
	ins := demand(t, 32, 0, full...)
	test.ExpectEquality(t, ins.Length, len(full))
	for i := 0; i < len(full); i++ {
		_, _, err := decode(32, 0, full[:i]...)
		test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorNoMoreBytes, i)
	}

	// empty source
	_, n, err = decode(64, 0)
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorNoMoreBytes)
	test.ExpectEquality(t, n, 0)
}

func TestMaximumLength(t *testing.T) {
	// fourteen prefixes and an opcode is fifteen bytes
	b := make([]byte, 0, 20)
	for i := 0; i < 14; i++ {
		b = append(b, 0x2e)
	}
	ins := demand(t, 32, 0, append(b, 0x90)...)
	test.ExpectEquality(t, ins.Length, result.MaxLength)
	test.ExpectSuccess(t, ins.Prefixes.Repeated)
	test.ExpectEquality(t, ins.Prefixes.Count, 14)

	// one more prefix is too many
	b = append(b, 0x2e)
	_, n, err := decode(32, 0, append(b, 0x90)...)
	test.ExpectSuccess(t, curated.Is(err, decoder.InstructionTooLong))
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorTooLong)
	test.ExpectEquality(t, n, result.MaxLength)

	// the length check happens before end of stream is detected
	_, _, err = decode(32, 0, b...)
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorTooLong)
}

// when a prefix class is repeated the last prefix of the class is the one in
// effect. the earlier prefixes are noted only by the Repeated flag
func TestPrefixTieBreak(t *testing.T) {
	// F2 then F3: rep movsb
	ins := demand(t, 32, 0, 0xf2, 0xf3, 0xa4)
	test.ExpectEquality(t, ins.Code, instructions.MovsbM8M8)
	test.ExpectSuccess(t, ins.Prefixes.Rep)
	test.ExpectFailure(t, ins.Prefixes.Repne)
	test.ExpectSuccess(t, ins.Prefixes.Repeated)
	test.ExpectEquality(t, ins.Prefixes.Count, 2)

	// F3 then F2: repne movsb
	ins = demand(t, 32, 0, 0xf3, 0xf2, 0xa4)
	test.ExpectFailure(t, ins.Prefixes.Rep)
	test.ExpectSuccess(t, ins.Prefixes.Repne)

	// the last F2/F3 is also the one used as a mandatory prefix
	ins = demand(t, 64, 0, 0xf2, 0xf3, 0x0f, 0x10, 0xc1)
	test.ExpectEquality(t, ins.Code, instructions.MovssXmmXmmm32)
	ins = demand(t, 64, 0, 0xf3, 0xf2, 0x0f, 0x10, 0xc1)
	test.ExpectEquality(t, ins.Code, instructions.MovsdXmmXmmm64)
	test.ExpectFailure(t, ins.Prefixes.Repne)
	test.ExpectFailure(t, ins.Prefixes.Rep)

	// segment overrides in 32bit mode: the last one wins
	ins = demand(t, 32, 0, 0x2e, 0x3e, 0x8b, 0x00)
	test.ExpectEquality(t, ins.Code, instructions.MovR32Rm32)
	test.ExpectEquality(t, ins.Memory.Segment, registers.DS)
	test.ExpectEquality(t, ins.Prefixes.Segment, registers.DS)
	test.ExpectSuccess(t, ins.Prefixes.Repeated)

	ins = demand(t, 32, 0, 0x64, 0x26, 0x8b, 0x00)
	test.ExpectEquality(t, ins.Memory.Segment, registers.ES)

	// in 64bit mode an FS or GS override is not replaced
	ins = demand(t, 64, 0, 0x64, 0x26, 0x8b, 0x00)
	test.ExpectEquality(t, ins.Memory.Segment, registers.FS)
	ins = demand(t, 64, 0, 0x26, 0x65, 0x8b, 0x00)
	test.ExpectEquality(t, ins.Memory.Segment, registers.GS)

	// a single prefix of each class is not repeated
	ins = demand(t, 32, 0, 0x2e, 0xf3, 0xa4)
	test.ExpectFailure(t, ins.Prefixes.Repeated)
}

func TestREXPlacement(t *testing.T) {
	// REX immediately before the opcode
	ins := demand(t, 64, 0, 0x2e, 0x48, 0x89, 0xc0)
	test.ExpectEquality(t, ins.Code, instructions.MovRm64R64)
	test.ExpectEquality(t, ins.Prefixes.REX, uint8(0x48))

	// a legacy prefix after REX cancels it
	ins = demand(t, 64, 0, 0x48, 0x2e, 0x89, 0xc0)
	test.ExpectEquality(t, ins.Code, instructions.MovRm32R32)
	test.ExpectEquality(t, ins.Prefixes.REX, uint8(0))

	// REX extends registers
	ins = demand(t, 64, 0, 0x4d, 0x89, 0xc8)
	test.ExpectEquality(t, ins.Op(0).Register, registers.R8)
	test.ExpectEquality(t, ins.Op(1).Register, registers.R9)

	// with any REX prefix the byte registers 4 to 7 are SPL, BPL, SIL and DIL
	ins = demand(t, 64, 0, 0x40, 0x88, 0xe6)
	test.ExpectEquality(t, ins.Op(0).Register, registers.SIL)
	test.ExpectEquality(t, ins.Op(1).Register, registers.SPL)
	ins = demand(t, 64, 0, 0x88, 0xe6)
	test.ExpectEquality(t, ins.Op(0).Register, registers.DH)
	test.ExpectEquality(t, ins.Op(1).Register, registers.AH)

	// 40 to 4F are INC and DEC in 32bit mode
	ins = demand(t, 32, 0, 0x48)
	test.ExpectEquality(t, ins.Code, instructions.DecR32)
}

func TestMandatoryPrefix(t *testing.T) {
	ins := demand(t, 64, 0, 0x66, 0x0f, 0x6f, 0xc1)
	test.ExpectEquality(t, ins.Code, instructions.MovdqaXmmXmmm128)
	test.ExpectEquality(t, ins.Prefixes.Mandatory, uint8(0x66))
	test.ExpectFailure(t, ins.Prefixes.OperandSize)
	test.ExpectEquality(t, ins.Op(0).Register, registers.XMM0)
	test.ExpectEquality(t, ins.Op(1).Register, registers.XMM1)

	ins = demand(t, 64, 0, 0xf2, 0x0f, 0x10, 0xc1)
	test.ExpectEquality(t, ins.Code, instructions.MovsdXmmXmmm64)
	test.ExpectEquality(t, ins.Prefixes.Mandatory, uint8(0xf2))
	test.ExpectFailure(t, ins.Prefixes.Repne)

	// REX.W selects the 64bit general purpose register form
	ins = demand(t, 64, 0, 0x66, 0x48, 0x0f, 0x6e, 0xc0)
	test.ExpectEquality(t, ins.Code, instructions.MovqXmmRm64)
	test.ExpectEquality(t, ins.Op(1).Register, registers.RAX)

	// a prefix that does not select an instruction keeps its usual meaning
	ins = demand(t, 32, 0, 0x66, 0xf3, 0x0f, 0xb8, 0xc1)
	test.ExpectEquality(t, ins.Code, instructions.PopcntR16Rm16)
	test.ExpectSuccess(t, ins.Prefixes.OperandSize)
	test.ExpectFailure(t, ins.Prefixes.Rep)
}

func TestAddressing(t *testing.T) {
	// mov eax, [ecx*4+0x1000]
	ins := demand(t, 32, 0, 0x8b, 0x04, 0x8d, 0x00, 0x10, 0x00, 0x00)
	test.ExpectEquality(t, ins.Memory.Base, registers.None)
	test.ExpectEquality(t, ins.Memory.Index, registers.ECX)
	test.ExpectEquality(t, ins.Memory.Scale, 4)
	test.ExpectEquality(t, ins.Memory.Displacement, uint64(0x1000))
	test.ExpectEquality(t, ins.Memory.DisplacementSize, 4)

	// mov eax, [ebp-4] uses the stack segment
	ins = demand(t, 32, 0, 0x8b, 0x45, 0xfc)
	test.ExpectEquality(t, ins.Memory.Base, registers.EBP)
	test.ExpectEquality(t, ins.Memory.Segment, registers.SS)
	test.ExpectEquality(t, ins.Memory.Displacement, uint64(0xfffffffffffffffc))

	// mov rax, [r13+0] uses the data segment
	ins = demand(t, 64, 0, 0x49, 0x8b, 0x45, 0x00)
	test.ExpectEquality(t, ins.Memory.Base, registers.R13)
	test.ExpectEquality(t, ins.Memory.Segment, registers.DS)

	// mov eax, [esp+8]
	ins = demand(t, 32, 0, 0x8b, 0x44, 0x24, 0x08)
	test.ExpectEquality(t, ins.Memory.Base, registers.ESP)
	test.ExpectEquality(t, ins.Memory.Index, registers.None)
	test.ExpectEquality(t, ins.Memory.Segment, registers.SS)

	// 16bit addressing: mov ax, [bp+si+2]
	ins = demand(t, 16, 0, 0x8b, 0x42, 0x02)
	test.ExpectEquality(t, ins.Code, instructions.MovR16Rm16)
	test.ExpectEquality(t, ins.Memory.Base, registers.BP)
	test.ExpectEquality(t, ins.Memory.Index, registers.SI)
	test.ExpectEquality(t, ins.Memory.Segment, registers.SS)
	test.ExpectEquality(t, ins.Memory.AddressSize, 16)

	// 16bit absolute address: mov ax, [0x1234]
	ins = demand(t, 16, 0, 0x8b, 0x06, 0x34, 0x12)
	test.ExpectEquality(t, ins.Memory.Base, registers.None)
	test.ExpectEquality(t, ins.Memory.Displacement, uint64(0x1234))
	test.ExpectEquality(t, ins.Memory.DisplacementSize, 2)

	// address size prefix in 32bit mode: mov eax, [bx]
	ins = demand(t, 32, 0, 0x67, 0x8b, 0x07)
	test.ExpectEquality(t, ins.Memory.Base, registers.BX)
	test.ExpectEquality(t, ins.AddressSize, 16)
	test.ExpectSuccess(t, ins.Prefixes.AddressSize)

	// address size prefix in 64bit mode: mov eax, [ecx]
	ins = demand(t, 64, 0, 0x67, 0x8b, 0x01)
	test.ExpectEquality(t, ins.Memory.Base, registers.ECX)
}

func TestIPRelative(t *testing.T) {
	// lea rax, [rip+0x10]
	ins := demand(t, 64, 0x1000, 0x48, 0x8d, 0x05, 0x10, 0x00, 0x00, 0x00)
	test.ExpectEquality(t, ins.Code, instructions.LeaR64Mem)
	test.ExpectEquality(t, ins.Memory.Base, registers.RIP)
	test.ExpectSuccess(t, ins.IsIPRelativeMemory())
	addr, ok := ins.IPRelativeMemoryAddress()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, addr, uint64(0x1017))

	// 32bit mode has no IP relative addressing
	ins = demand(t, 32, 0x1000, 0x8d, 0x05, 0x10, 0x00, 0x00, 0x00)
	test.ExpectEquality(t, ins.Memory.Base, registers.None)
	test.ExpectFailure(t, ins.IsIPRelativeMemory())
}

func TestMemoryOffset(t *testing.T) {
	ins := demand(t, 32, 0, 0xa1, 0x78, 0x56, 0x34, 0x12)
	test.ExpectEquality(t, ins.Code, instructions.MovEAXMoffs32)
	test.ExpectEquality(t, ins.Memory.Displacement, uint64(0x12345678))
	test.ExpectEquality(t, ins.Memory.DisplacementSize, 4)

	ins = demand(t, 64, 0, 0x48, 0xa1, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01)
	test.ExpectEquality(t, ins.Code, instructions.MovRAXMoffs64)
	test.ExpectEquality(t, ins.Memory.Displacement, uint64(0x0102030405060708))
	test.ExpectEquality(t, ins.Memory.DisplacementSize, 8)
	test.ExpectEquality(t, ins.Length, 10)
}

func TestBranches(t *testing.T) {
	ins := demand(t, 64, 0x1000, 0xe8, 0x00, 0x00, 0x00, 0x00)
	test.ExpectEquality(t, ins.Code, instructions.CallRel32Op64)
	target, ok := ins.NearBranchTarget()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, target, uint64(0x1005))

	// jump to self
	ins = demand(t, 64, 0x2000, 0xeb, 0xfe)
	test.ExpectEquality(t, ins.Code, instructions.JmpRel8Op64)
	test.ExpectEquality(t, ins.Op(0).Target, uint64(0x2000))

	// backwards jump that wraps in 16bit mode
	ins = demand(t, 16, 0x0000, 0xe9, 0xfc, 0xff)
	test.ExpectEquality(t, ins.Code, instructions.JmpRel16)
	test.ExpectEquality(t, ins.Op(0).Target, uint64(0xffff))

	// the operand size prefix is ignored by intel processors in 64bit mode
	ins = demand(t, 64, 0x1000, 0x66, 0xe8, 0x00, 0x00, 0x00, 0x00)
	test.ExpectEquality(t, ins.Code, instructions.CallRel32Op64)
	test.ExpectEquality(t, ins.Length, 6)

	// but not by AMD processors
	dec, err := decoder.NewDecoder(64, decoder.AMD)
	test.DemandSuccess(t, err)
	ins, _, err = dec.Decode(bytesource.NewSlice([]byte{0x66, 0xe8, 0x10, 0x00}), 0x1000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ins.Code, instructions.CallRel16)
	test.ExpectEquality(t, ins.Op(0).Target, uint64(0x1014))

	// far call
	ins = demand(t, 32, 0, 0x9a, 0x78, 0x56, 0x34, 0x12, 0x08, 0x00)
	test.ExpectEquality(t, ins.Code, instructions.CallfPtr1632)
	test.ExpectEquality(t, ins.Op(0).Kind, result.OperandFarBranch)
	test.ExpectEquality(t, ins.Op(0).Target, uint64(0x12345678))
	test.ExpectEquality(t, ins.Op(0).Selector, uint16(0x0008))
	test.ExpectEquality(t, ins.Offsets.ImmediateOffset, 1)
	test.ExpectEquality(t, ins.Offsets.ImmediateOffset2, 5)
	test.ExpectEquality(t, ins.Offsets.ImmediateSize2, 2)
}

func TestLock(t *testing.T) {
	// lock add [eax], ebx
	ins := demand(t, 32, 0, 0xf0, 0x01, 0x18)
	test.ExpectEquality(t, ins.Code, instructions.AddRm32R32)
	test.ExpectSuccess(t, ins.Prefixes.Lock)

	// lock add eax, ebx
	_, _, err := decode(32, 0, 0xf0, 0x01, 0xd8)
	test.ExpectSuccess(t, curated.Is(err, decoder.LockNotAllowed))
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorLockNotAllowed)

	// lock nop
	_, _, err = decode(64, 0, 0xf0, 0x90)
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorLockNotAllowed)

	// accepted without the invalid check
	dec, err := decoder.NewDecoder(32, decoder.NoInvalidCheck)
	test.DemandSuccess(t, err)
	ins, _, err = dec.Decode(bytesource.NewSlice([]byte{0xf0, 0x01, 0xd8}), 0)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ins.Prefixes.Lock)
}

func TestStringInstructions(t *testing.T) {
	ins := demand(t, 32, 0, 0xf3, 0xa4)
	test.ExpectEquality(t, ins.Code, instructions.MovsbM8M8)
	test.ExpectSuccess(t, ins.Prefixes.Rep)
	test.ExpectEquality(t, ins.Op(0).Kind, result.OperandStringDestination)
	test.ExpectEquality(t, ins.Op(0).Register, registers.EDI)
	test.ExpectEquality(t, ins.Op(1).Kind, result.OperandStringSource)
	test.ExpectEquality(t, ins.Op(1).Register, registers.ESI)
	test.ExpectFailure(t, ins.HasMemory())

	// address size prefix
	ins = demand(t, 64, 0, 0x67, 0xa4)
	test.ExpectEquality(t, ins.Op(0).Register, registers.EDI)
	ins = demand(t, 64, 0, 0xa4)
	test.ExpectEquality(t, ins.Op(0).Register, registers.RDI)
}

func TestX87(t *testing.T) {
	// fxch st(1)
	ins := demand(t, 32, 0, 0xd9, 0xc9)
	test.ExpectEquality(t, ins.Code, instructions.FxchSti)
	test.ExpectEquality(t, ins.Op(0).Register, registers.ST1)

	// fld qword [ebp-8]
	ins = demand(t, 32, 0, 0xdd, 0x45, 0xf8)
	test.ExpectEquality(t, ins.Code, instructions.FldM64fp)
	test.ExpectEquality(t, ins.Memory.Size, memorysize.Float64)


	// ffreep st(1)
	ins = demand(t, 32, 0, 0xdf, 0xc1)
	test.ExpectEquality(t, ins.Code, instructions.FfreepSti)
	test.ExpectEquality(t, ins.Mnemonic().String(), "ffreep")
	test.ExpectEquality(t, ins.Op(0).Register, registers.ST1)

	// the memory forms of DF /0 are still FILD
	ins = demand(t, 32, 0, 0xdf, 0x00)
	test.ExpectInequality(t, ins.Code, instructions.FfreepSti)
}

func TestLegacyAlternatives(t *testing.T) {
	// in 32bit mode C5 is LDS unless the following byte has mod 11b
	ins := demand(t, 32, 0, 0xc5, 0x00)
	test.ExpectEquality(t, ins.Code, instructions.LdsR32M1632)
	test.ExpectEquality(t, ins.Length, 2)

	ins = demand(t, 32, 0, 0x62, 0x00)
	test.ExpectEquality(t, ins.Code, instructions.BoundR32M3232)

	// 8F is POP unless the map field is 8 or more
	ins = demand(t, 64, 0, 0x8f, 0xc0)
	test.ExpectEquality(t, ins.Code, instructions.PopRm64)
	test.ExpectEquality(t, ins.Op(0).Register, registers.RAX)
}

func TestVEX(t *testing.T) {
	ins := demand(t, 64, 0, 0xc5, 0xf8, 0x10, 0xc1)
	test.ExpectEquality(t, ins.Code, instructions.VexVmovupsXmmXmmm128)
	test.ExpectEquality(t, ins.Encoding, result.VEX)
	test.ExpectEquality(t, ins.Op(0).Register, registers.XMM0)
	test.ExpectEquality(t, ins.Op(1).Register, registers.XMM1)

	// L=1
	ins = demand(t, 64, 0, 0xc5, 0xfc, 0x10, 0xc1)
	test.ExpectEquality(t, ins.Code, instructions.VexVmovupsYmmYmmm256)
	test.ExpectEquality(t, ins.Op(0).Register, registers.YMM0)

	// three byte form with VEX.R and VEX.B: vmovups ymm8, ymm9
	ins = demand(t, 64, 0, 0xc4, 0x41, 0x7c, 0x10, 0xc1)
	test.ExpectEquality(t, ins.Code, instructions.VexVmovupsYmmYmmm256)
	test.ExpectEquality(t, ins.Op(0).Register, registers.YMM8)
	test.ExpectEquality(t, ins.Op(1).Register, registers.YMM9)

	// VEX.vvvv must be 1111b when unused
	_, _, err := decode(64, 0, 0xc5, 0xf0, 0x10, 0xc1)
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorInvalid)

	// prefixes are not allowed before VEX
	_, _, err = decode(64, 0, 0x66, 0xc5, 0xf8, 0x10, 0xc1)
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorInvalid)
	_, _, err = decode(64, 0, 0x40, 0xc5, 0xf8, 0x10, 0xc1)
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorInvalid)

	// but they are accepted when invalid checks are turned off
	dec, err := decoder.NewDecoder(64, decoder.NoInvalidCheck)
	test.DemandSuccess(t, err)
	ins, _, err = dec.Decode(bytesource.NewSlice([]byte{0x66, 0xc5, 0xf1, 0xfc, 0xc1}), 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ins.Code, instructions.VexVpaddbXmmXmmXmmm128)
	test.ExpectEquality(t, ins.Length, 5)

	// andn rax, rbx, rcx
	ins = demand(t, 64, 0, 0xc4, 0xe2, 0xe0, 0xf2, 0xc1)
	test.ExpectEquality(t, ins.Code, instructions.VexAndnR64R64Rm64)
	test.ExpectEquality(t, ins.Op(0).Register, registers.RAX)
	test.ExpectEquality(t, ins.Op(1).Register, registers.RBX)
	test.ExpectEquality(t, ins.Op(2).Register, registers.RCX)
}

func TestVEXIntegerOps(t *testing.T) {
	// vpaddb xmm0, xmm1, xmm1
	ins := demand(t, 64, 0, 0xc5, 0xf1, 0xfc, 0xc1)
	test.ExpectEquality(t, ins.Code, instructions.VexVpaddbXmmXmmXmmm128)
	test.ExpectEquality(t, ins.Op(0).Register, registers.XMM0)
	test.ExpectEquality(t, ins.Op(1).Register, registers.XMM1)
	test.ExpectEquality(t, ins.Op(2).Register, registers.XMM1)

	// vmovd xmm0, eax and vmovq xmm0, rax
	ins = demand(t, 64, 0, 0xc5, 0xf9, 0x6e, 0xc0)
	test.ExpectEquality(t, ins.Code, instructions.VexVmovdXmmRm32)
	test.ExpectEquality(t, ins.Op(1).Register, registers.EAX)
	ins = demand(t, 64, 0, 0xc4, 0xe1, 0xf9, 0x6e, 0xc0)
	test.ExpectEquality(t, ins.Code, instructions.VexVmovqXmmRm64)
	test.ExpectEquality(t, ins.Op(1).Register, registers.RAX)

	// vpmovmskb eax, ymm1
	ins = demand(t, 64, 0, 0xc5, 0xfd, 0xd7, 0xc1)
	test.ExpectEquality(t, ins.Code, instructions.VexVpmovmskbR32Ymm)
	test.ExpectEquality(t, ins.Op(0).Register, registers.EAX)
	test.ExpectEquality(t, ins.Op(1).Register, registers.YMM1)
}

// every three operand instruction of the 66 0F map has a VEX.128 form with
// the same mnemonic prefixed by a v. the VEX form has the vvvv register as its
// second operand
func TestVEXAgainstLegacyMap(t *testing.T) {
	var opcodes []uint8
	ranges := [][2]uint8{
		{0x14, 0x15}, {0x54, 0x59}, {0x5c, 0x5f}, {0x60, 0x6d}, {0x74, 0x76},
		{0x7c, 0x7d}, {0xd0, 0xd5}, {0xd8, 0xdf}, {0xe0, 0xe5}, {0xe8, 0xef},
		{0xf1, 0xf6}, {0xf8, 0xfe},
	}
	for _, r := range ranges {
		for op := int(r[0]); op <= int(r[1]); op++ {
			opcodes = append(opcodes, uint8(op))
		}
	}

	for _, op := range opcodes {
		tag := fmt.Sprintf("opcode %02x", op)

		legacy, _, err := decode(64, 0, 0x66, 0x0f, op, 0xc1)
		if !test.ExpectSuccess(t, err, tag) {
			continue
		}

		vex, _, err := decode(64, 0, 0xc5, 0xf1, op, 0xc1)
		if !test.ExpectSuccess(t, err, tag) {
			continue
		}

		test.ExpectEquality(t, vex.Encoding, result.VEX, tag)
		test.ExpectEquality(t, vex.Mnemonic().String(), "v"+legacy.Mnemonic().String(), tag)
		test.ExpectEquality(t, vex.OperandCount, 3, tag)
		test.ExpectEquality(t, vex.Op(0).Register, registers.XMM0, tag)
		test.ExpectEquality(t, vex.Op(1).Register, registers.XMM1, tag)
		test.ExpectEquality(t, vex.Op(2).Register, registers.XMM1, tag)
	}
}

func TestVSIB(t *testing.T) {
	// vgatherdps ymm0, [rax+ymm2*4], ymm1
	ins := demand(t, 64, 0, 0xc4, 0xe2, 0x75, 0x92, 0x04, 0x90)
	test.ExpectEquality(t, ins.Code, instructions.VexVgatherdpsYmmVm32yYmm)
	test.ExpectEquality(t, ins.Op(0).Register, registers.YMM0)
	test.ExpectEquality(t, ins.Op(1).Kind, result.OperandMemory)
	test.ExpectEquality(t, ins.Op(2).Register, registers.YMM1)
	test.ExpectEquality(t, ins.Memory.Base, registers.RAX)
	test.ExpectEquality(t, ins.Memory.Index, registers.YMM2)
	test.ExpectEquality(t, ins.Memory.Scale, 4)
	test.ExpectEquality(t, ins.Memory.Size, memorysize.Float32)

	// the address of a VSIB operand depends on the element
	_, ok := ins.VirtualAddress(1, func(registers.Register) (uint64, bool) { return 0, true })
	test.ExpectFailure(t, ok)

	// VEX.W selects vgatherdpd. the index is half the vector length
	ins = demand(t, 64, 0, 0xc4, 0xe2, 0xf5, 0x92, 0x04, 0x90)
	test.ExpectEquality(t, ins.Code, instructions.VexVgatherdpdYmmVm32xYmm)
	test.ExpectEquality(t, ins.Memory.Index, registers.XMM2)

	// an index of 4 is a register and not the absence of an index
	ins = demand(t, 64, 0, 0xc4, 0xe2, 0x75, 0x92, 0x04, 0xa0)
	test.ExpectEquality(t, ins.Memory.Index, registers.YMM4)

	// a SIB byte is required
	_, _, err := decode(64, 0, 0xc4, 0xe2, 0x75, 0x92, 0x00)
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorInvalid)

	// the destination, index and mask must be different registers
	data := []byte{0xc4, 0xe2, 0x75, 0x92, 0x04, 0x80}
	_, _, err = decode(64, 0, data...)
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorInvalid)

	dec, err := decoder.NewDecoder(64, decoder.NoInvalidCheck)
	test.DemandSuccess(t, err)
	ins, _, err = dec.Decode(bytesource.NewSlice(data), 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ins.Memory.Index, registers.YMM0)

	// vpgatherdd zmm0{k1}, [rax+zmm2*4]
	ins = demand(t, 64, 0, 0x62, 0xf2, 0x7d, 0x49, 0x90, 0x04, 0x90)
	test.ExpectEquality(t, ins.Code, instructions.EvexVpgatherddZmmK1Vm32z)
	test.ExpectEquality(t, ins.OpMask, registers.K1)
	test.ExpectEquality(t, ins.Memory.Index, registers.ZMM2)

	// EVEX.V' is the fifth bit of the index register
	ins = demand(t, 64, 0, 0x62, 0xf2, 0x7d, 0x41, 0x90, 0x04, 0x90)
	test.ExpectEquality(t, ins.Memory.Index, registers.ZMM18)

	// compressed displacement is scaled by the element size
	ins = demand(t, 64, 0, 0x62, 0xf2, 0x7d, 0x49, 0x90, 0x44, 0x90, 0x01)
	test.ExpectEquality(t, ins.Memory.Displacement, uint64(4))

	// EVEX gathers must have an opmask
	_, _, err = decode(64, 0, 0x62, 0xf2, 0x7d, 0x48, 0x90, 0x04, 0x90)
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorInvalid)

	// vpscatterdd [rax+zmm2*4]{k1}, zmm0
	ins = demand(t, 64, 0, 0x62, 0xf2, 0x7d, 0x49, 0xa0, 0x04, 0x90)
	test.ExpectEquality(t, ins.Code, instructions.EvexVpscatterddVm32zK1Zmm)
	test.ExpectEquality(t, ins.Op(0).Kind, result.OperandMemory)
	test.ExpectEquality(t, ins.Op(1).Register, registers.ZMM0)
}

func TestXOP(t *testing.T) {
	// vpcmov xmm0, xmm1, xmm2, xmm3
	ins := demand(t, 64, 0, 0x8f, 0xe8, 0x70, 0xa2, 0xc2, 0x30)
	test.ExpectEquality(t, ins.Code, instructions.XopVpcmovXmmXmmXmmm128Xmm)
	test.ExpectEquality(t, ins.Encoding, result.XOP)
	test.ExpectEquality(t, ins.Op(1).Register, registers.XMM1)
	test.ExpectEquality(t, ins.Op(2).Register, registers.XMM2)
	test.ExpectEquality(t, ins.Op(3).Register, registers.XMM3)
	test.ExpectEquality(t, ins.Offsets.ImmediateOffset, 5)
}

func TestEVEXRoundingControl(t *testing.T) {
	expected := []result.RoundingControl{
		result.RoundToNearest,
		result.RoundDown,
		result.RoundUp,
		result.RoundTowardZero,
	}

	// vaddps zmm0, zmm0, zmm2 with embedded rounding. the L'L field is the
	// rounding mode
	for ll, rc := range expected {
		p2 := uint8(0x18 | ll<<5)
		ins := demand(t, 64, 0, 0x62, 0xf1, 0x7c, p2, 0x58, 0xc2)
		test.ExpectEquality(t, ins.Code, instructions.EvexVaddpsZmmK1zZmmZmmm512B32Er, ll)
		test.ExpectEquality(t, ins.RoundingControl, rc, ll)
		test.ExpectEquality(t, ins.Op(2).Register, registers.ZMM2, ll)
		test.ExpectEquality(t, ins.Encoding, result.EVEX, ll)
	}

	// no rounding without EVEX.b
	ins := demand(t, 64, 0, 0x62, 0xf1, 0x7c, 0x48, 0x58, 0xc2)
	test.ExpectEquality(t, ins.RoundingControl, result.RoundNone)
	test.ExpectEquality(t, ins.Op(0).Register, registers.ZMM0)
}

func TestEVEXMasking(t *testing.T) {
	// vaddps zmm0{k1}, zmm0, zmm2
	ins := demand(t, 64, 0, 0x62, 0xf1, 0x7c, 0x49, 0x58, 0xc2)
	test.ExpectEquality(t, ins.OpMask, registers.K1)
	test.ExpectFailure(t, ins.ZeroingMasking)

	// vaddps zmm0{k1}{z}, zmm0, zmm2
	ins = demand(t, 64, 0, 0x62, 0xf1, 0x7c, 0xc9, 0x58, 0xc2)
	test.ExpectEquality(t, ins.OpMask, registers.K1)
	test.ExpectSuccess(t, ins.ZeroingMasking)

	// zeroing without an opmask
	_, _, err := decode(64, 0, 0x62, 0xf1, 0x7c, 0xc8, 0x58, 0xc2)
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorInvalid)

	// which is accepted when invalid checks are turned off
	dec, err := decoder.NewDecoder(64, decoder.NoInvalidCheck)
	test.DemandSuccess(t, err)
	ins, _, err = dec.Decode(bytesource.NewSlice([]byte{0x62, 0xf1, 0x7c, 0xc8, 0x58, 0xc2}), 0)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ins.ZeroingMasking)
	test.ExpectEquality(t, ins.OpMask, registers.None)

	// EVEX.R' and EVEX.V' select the upper sixteen registers
	ins = demand(t, 64, 0, 0x62, 0xe1, 0x74, 0x40, 0x58, 0xc2)
	test.ExpectEquality(t, ins.Op(0).Register, registers.ZMM16)
	test.ExpectEquality(t, ins.Op(1).Register, registers.ZMM17)
}

func TestEVEXIntegerOps(t *testing.T) {
	// vpaddb zmm0, zmm1, zmm2
	ins := demand(t, 64, 0, 0x62, 0xf1, 0x75, 0x48, 0xfc, 0xc2)
	test.ExpectEquality(t, ins.Code, instructions.EvexVpaddbZmmK1zZmmZmmm512)
	test.ExpectEquality(t, ins.Op(0).Register, registers.ZMM0)
	test.ExpectEquality(t, ins.Op(1).Register, registers.ZMM1)
	test.ExpectEquality(t, ins.Op(2).Register, registers.ZMM2)

	// EVEX.W selects the operand size of general purpose register forms
	ins = demand(t, 64, 0, 0x62, 0xf1, 0x7d, 0x08, 0x6e, 0xc0)
	test.ExpectEquality(t, ins.Code, instructions.EvexVmovdXmmRm32)
	test.ExpectEquality(t, ins.Op(1).Register, registers.EAX)
	test.ExpectEquality(t, ins.OperandSize, 32)

	ins = demand(t, 64, 0, 0x62, 0xf1, 0xfd, 0x08, 0x6e, 0xc0)
	test.ExpectEquality(t, ins.Code, instructions.EvexVmovqXmmRm64)
	test.ExpectEquality(t, ins.Op(1).Register, registers.RAX)
	test.ExpectEquality(t, ins.OperandSize, 64)

	// EVEX.W is ignored outside of 64bit mode
	ins = demand(t, 32, 0, 0x62, 0xf1, 0xfd, 0x08, 0x6e, 0xc0)
	test.ExpectEquality(t, ins.Code, instructions.EvexVmovdXmmRm32)

	// the vector length of vmovd must be zero
	_, _, err := decode(64, 0, 0x62, 0xf1, 0x7d, 0x48, 0x6e, 0xc0)
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorInvalid)

	// vmovd xmm0, [rax+4] has a four byte displacement scale
	ins = demand(t, 64, 0, 0x62, 0xf1, 0x7d, 0x08, 0x6e, 0x40, 0x01)
	test.ExpectEquality(t, ins.Memory.Displacement, uint64(4))

	// vpmovdw ymm1, zmm0. the destination is half the vector length
	ins = demand(t, 64, 0, 0x62, 0xf2, 0x7e, 0x48, 0x33, 0xc1)
	test.ExpectEquality(t, ins.Code, instructions.EvexVpmovdwYmmm256K1zZmm)
	test.ExpectEquality(t, ins.Op(0).Register, registers.YMM1)
	test.ExpectEquality(t, ins.Op(1).Register, registers.ZMM0)
}

func TestEVEXCompressedDisplacement(t *testing.T) {
	// vaddps zmm0, zmm0, [rax+0x40]
	ins := demand(t, 64, 0, 0x62, 0xf1, 0x7c, 0x48, 0x58, 0x40, 0x01)
	test.ExpectEquality(t, ins.Memory.Size, memorysize.Packed512Float32)
	test.ExpectEquality(t, ins.Memory.Displacement, uint64(0x40))
	test.ExpectEquality(t, ins.Memory.DisplacementSize, 1)
	test.ExpectFailure(t, ins.Memory.Broadcast)

	// vaddps zmm0, zmm0, [rax+4]{1to16}
	ins = demand(t, 64, 0, 0x62, 0xf1, 0x7c, 0x58, 0x58, 0x40, 0x01)
	test.ExpectSuccess(t, ins.Memory.Broadcast)
	test.ExpectEquality(t, ins.Memory.Size, memorysize.BroadcastFloat32)
	test.ExpectEquality(t, ins.Memory.Displacement, uint64(4))
	test.ExpectEquality(t, ins.RoundingControl, result.RoundNone)

	// xmm form: 16 byte scale
	ins = demand(t, 64, 0, 0x62, 0xf1, 0x7c, 0x08, 0x58, 0x40, 0xff)
	test.ExpectEquality(t, ins.Memory.Displacement, uint64(0xfffffffffffffff0))
}

func TestEVEXReserved(t *testing.T) {
	// P0 bits 2 and 3 must be zero
	_, _, err := decode(64, 0, 0x62, 0xf5, 0x7c, 0x48, 0x58, 0xc2)
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorInvalid)

	// P1 bit 2 must be one
	_, _, err = decode(64, 0, 0x62, 0xf1, 0x78, 0x48, 0x58, 0xc2)
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorInvalid)

	// L'L of 3 without EVEX.b
	_, _, err = decode(64, 0, 0x62, 0xf1, 0x7c, 0x68, 0x58, 0xc2)
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorInvalid)
}

func TestConcurrentDecoding(t *testing.T) {
	dec, err := decoder.NewDecoder(64, 0)
	test.DemandSuccess(t, err)

	data := []byte{0x48, 0x8d, 0x05, 0x10, 0x00, 0x00, 0x00}

	done := make(chan result.Instruction)
	for i := 0; i < 8; i++ {
		go func() {
			ins, _, _ := dec.Decode(bytesource.NewSlice(data), 0x1000)
			done <- ins
		}()
	}
	for i := 0; i < 8; i++ {
		ins := <-done
		test.ExpectEquality(t, ins.Code, instructions.LeaR64Mem)
	}
}
