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


package info_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jetsetilly/gopherx86/bytesource"
	"github.com/jetsetilly/gopherx86/hardware/cpu/decoder"
	"github.com/jetsetilly/gopherx86/hardware/cpu/info"
	"github.com/jetsetilly/gopherx86/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherx86/hardware/cpu/memorysize"
	"github.com/jetsetilly/gopherx86/hardware/cpu/registers"
	"github.com/jetsetilly/gopherx86/hardware/cpu/result"
	"github.com/jetsetilly/gopherx86/test"
)

func analyze(t *testing.T, bitness int, ip uint64, data ...byte) (result.Instruction, info.AccessInfo) {
	t.Helper()
	ins, _, err := decoder.Decode(bytesource.NewSlice(data), bitness, ip)
	test.DemandSuccess(t, err)
	return ins, info.Analyze(&ins)
}

// compare the register list against the expected list
func expectRegisters(t *testing.T, ai info.AccessInfo, expected ...info.UsedRegister) {
	t.Helper()
	test.DemandEquality(t, len(ai.Registers), len(expected))
	for i := range expected {
		test.ExpectEquality(t, ai.Registers[i], expected[i], i)
	}
}

func TestNegMemory(t *testing.T) {
	// neg dword [eax+8]
	ins, ai := analyze(t, 32, 0, 0xf7, 0x58, 0x08)
	test.ExpectEquality(t, ins.Code, instructions.NegRm32)

	test.ExpectEquality(t, ai.Op(0), info.ReadWrite)
	test.DemandEquality(t, len(ai.Memory), 1)
	test.ExpectEquality(t, ai.Memory[0], info.UsedMemory{
		Segment:      registers.DS,
		Base:         registers.EAX,
		Index:        registers.None,
		Scale:        1,
		Displacement: 8,
		Size:         memorysize.UInt32,
		AddressSize:  32,
		Access:       info.ReadWrite,
	})

	expectRegisters(t, ai,
		info.UsedRegister{Register: registers.DS, Access: info.Read},
		info.UsedRegister{Register: registers.EAX, Access: info.Read},
	)

	test.ExpectEquality(t, ai.RflagsWritten, info.OF|info.SF|info.ZF|info.AF|info.CF|info.PF)
	test.ExpectEquality(t, ai.RflagsRead, info.RflagsBits(0))
	test.ExpectFailure(t, ai.RflagsModified().Has(info.AC))
	test.ExpectEquality(t, ai.Flow, info.FlowNext)
}

func TestZeroIdiom(t *testing.T) {
	// xor eax, eax
	_, ai := analyze(t, 64, 0, 0x31, 0xc0)
	test.ExpectEquality(t, ai.Op(0), info.Write)
	test.ExpectEquality(t, ai.Op(1), info.None)
	expectRegisters(t, ai, info.UsedRegister{Register: registers.RAX, Access: info.Write})
	test.ExpectEquality(t, ai.RflagsWritten, info.SF|info.ZF|info.PF)
	test.ExpectEquality(t, ai.RflagsCleared, info.OF|info.CF)
	test.ExpectEquality(t, ai.RflagsUndefined, info.AF)

	// xor eax, ecx is not an idiom. the write to eax clears the upper half of
	// rax
	_, ai = analyze(t, 64, 0, 0x31, 0xc8)
	test.ExpectEquality(t, ai.Op(0), info.ReadWrite)
	test.ExpectEquality(t, ai.Op(1), info.Read)
	expectRegisters(t, ai,
		info.UsedRegister{Register: registers.EAX, Access: info.Read},
		info.UsedRegister{Register: registers.RAX, Access: info.Write},
		info.UsedRegister{Register: registers.ECX, Access: info.Read},
	)

	// in 32bit mode there is no widening
	_, ai = analyze(t, 32, 0, 0x31, 0xc8)
	expectRegisters(t, ai,
		info.UsedRegister{Register: registers.EAX, Access: info.ReadWrite},
		info.UsedRegister{Register: registers.ECX, Access: info.Read},
	)

	// vpxor xmm0, xmm0, xmm0
	ins, ai := analyze(t, 64, 0, 0xc5, 0xf9, 0xef, 0xc0)
	test.ExpectEquality(t, ins.Code, instructions.VexVpxorXmmXmmXmmm128)
	expectRegisters(t, ai, info.UsedRegister{Register: registers.ZMM0, Access: info.Write})

	// vpxor xmm0, xmm1, xmm2
	_, ai = analyze(t, 64, 0, 0xc5, 0xf1, 0xef, 0xc2)
	expectRegisters(t, ai,
		info.UsedRegister{Register: registers.ZMM0, Access: info.Write},
		info.UsedRegister{Register: registers.XMM1, Access: info.Read},
		info.UsedRegister{Register: registers.XMM2, Access: info.Read},
	)

	// pxor xmm0, xmm1. legacy SSE leaves the upper part of the register
	_, ai = analyze(t, 64, 0, 0x66, 0x0f, 0xef, 0xc1)
	expectRegisters(t, ai,
		info.UsedRegister{Register: registers.XMM0, Access: info.ReadWrite},
		info.UsedRegister{Register: registers.XMM1, Access: info.Read},
	)
}

func TestStack(t *testing.T) {
	// push rbp
	ins, ai := analyze(t, 64, 0, 0x55)
	test.ExpectEquality(t, ins.Code, instructions.PushR64)
	expectRegisters(t, ai,
		info.UsedRegister{Register: registers.RBP, Access: info.Read},
		info.UsedRegister{Register: registers.RSP, Access: info.ReadWrite},
	)

	// pop rbp
	_, ai = analyze(t, 64, 0, 0x5d)
	expectRegisters(t, ai,
		info.UsedRegister{Register: registers.RBP, Access: info.Write},
		info.UsedRegister{Register: registers.RSP, Access: info.ReadWrite},
	)

	// push eax. the stack pointer follows the code size
	_, ai = analyze(t, 32, 0, 0x50)
	expectRegisters(t, ai,
		info.UsedRegister{Register: registers.EAX, Access: info.Read},
		info.UsedRegister{Register: registers.ESP, Access: info.ReadWrite},
	)

	_, ai = analyze(t, 16, 0, 0x50)
	expectRegisters(t, ai,
		info.UsedRegister{Register: registers.AX, Access: info.Read},
		info.UsedRegister{Register: registers.SP, Access: info.ReadWrite},
	)
}

func TestStackPointerIncrement(t *testing.T) {
	for _, tc := range []struct {
		bitness   int
		data      []byte
		increment int
	}{
		// push rbp, pop rbp
		{bitness: 64, data: []byte{0x55}, increment: -8},
		{bitness: 64, data: []byte{0x5d}, increment: 8},

		// push eax and push ax
		{bitness: 32, data: []byte{0x50}, increment: -4},
		{bitness: 32, data: []byte{0x66, 0x50}, increment: -2},
		{bitness: 16, data: []byte{0x50}, increment: -2},

		// push 1 is a 64bit push in 64bit mode
		{bitness: 64, data: []byte{0x6a, 0x01}, increment: -8},

		// call and ret
		{bitness: 64, data: []byte{0xe8, 0x00, 0x00, 0x00, 0x00}, increment: -8},
		{bitness: 64, data: []byte{0xc3}, increment: 8},
		{bitness: 32, data: []byte{0xc3}, increment: 4},

		// ret 0x10
		{bitness: 64, data: []byte{0xc2, 0x10, 0x00}, increment: 0x18},
		{bitness: 32, data: []byte{0xc2, 0x10, 0x00}, increment: 0x14},

		// retf 8 pops the code segment as well
		{bitness: 32, data: []byte{0xca, 0x08, 0x00}, increment: 16},

		// pushad, popad
		{bitness: 32, data: []byte{0x60}, increment: -32},
		{bitness: 32, data: []byte{0x61}, increment: 32},

		// iretq pops five elements, iretd three
		{bitness: 64, data: []byte{0x48, 0xcf}, increment: 40},
		{bitness: 32, data: []byte{0xcf}, increment: 12},

		// enter 0x10, 1
		{bitness: 32, data: []byte{0xc8, 0x10, 0x00, 0x01}, increment: -(4 + 4 + 0x10)},

		// leave depends on the frame pointer
		{bitness: 64, data: []byte{0xc9}, increment: 0},
	} {
		tag := fmt.Sprintf("%dbit: % 02x", tc.bitness, tc.data)
		_, ai := analyze(t, tc.bitness, 0, tc.data...)
		test.ExpectSuccess(t, ai.StackInstruction, tag)
		test.ExpectEquality(t, ai.StackPointerIncrement, tc.increment, tag)
	}

	// add eax, ebx does not use the stack
	_, ai := analyze(t, 32, 0, 0x01, 0xd8)
	test.ExpectFailure(t, ai.StackInstruction)
	test.ExpectEquality(t, ai.StackPointerIncrement, 0)
}

func TestConditionCode(t *testing.T) {
	for _, tc := range []struct {
		data      []byte
		condition info.ConditionCode
	}{
		{data: []byte{0x90}, condition: info.ConditionNone},

		// je, jg
		{data: []byte{0x74, 0x00}, condition: info.ConditionE},
		{data: []byte{0x0f, 0x8f, 0x00, 0x00, 0x00, 0x00}, condition: info.ConditionG},

		// setb al, setne al
		{data: []byte{0x0f, 0x92, 0xc0}, condition: info.ConditionB},
		{data: []byte{0x0f, 0x95, 0xc0}, condition: info.ConditionNE},

		// cmovl eax, ecx, cmovae rax, rcx
		{data: []byte{0x0f, 0x4c, 0xc1}, condition: info.ConditionL},
		{data: []byte{0x48, 0x0f, 0x43, 0xc1}, condition: info.ConditionAE},

		// loopne
		{data: []byte{0xe0, 0xfe}, condition: info.ConditionNE},
	} {
		_, ai := analyze(t, 64, 0, tc.data...)
		test.ExpectEquality(t, ai.ConditionCode, tc.condition, tc.data)
		test.ExpectSuccess(t, ai.RflagsRead.Has(tc.condition.Flags()), tc.data)
	}

	test.ExpectEquality(t, info.ConditionE.String(), "e")
	test.ExpectEquality(t, info.ConditionLE.Flags(), info.ZF|info.SF|info.OF)
}

func TestPrivileged(t *testing.T) {
	// hlt
	_, ai := analyze(t, 64, 0, 0xf4)
	test.ExpectSuccess(t, ai.Privileged)

	// mov cr3, rax
	_, ai = analyze(t, 64, 0, 0x0f, 0x22, 0xd8)
	test.ExpectSuccess(t, ai.Privileged)

	// cpuid
	_, ai = analyze(t, 64, 0, 0x0f, 0xa2)
	test.ExpectFailure(t, ai.Privileged)
}

func TestStringInstructions(t *testing.T) {
	// rep movsb
	ins, ai := analyze(t, 64, 0, 0xf3, 0xa4)
	test.ExpectEquality(t, ins.Code, instructions.MovsbM8M8)
	test.ExpectEquality(t, ai.Op(0), info.CondWrite)
	test.ExpectEquality(t, ai.Op(1), info.CondRead)

	test.DemandEquality(t, len(ai.Memory), 2)
	test.ExpectEquality(t, ai.Memory[0].Segment, registers.ES)
	test.ExpectEquality(t, ai.Memory[0].Base, registers.RDI)
	test.ExpectEquality(t, ai.Memory[0].Size, memorysize.UInt8)
	test.ExpectEquality(t, ai.Memory[0].Access, info.CondWrite)
	test.ExpectEquality(t, ai.Memory[1].Segment, registers.DS)
	test.ExpectEquality(t, ai.Memory[1].Base, registers.RSI)
	test.ExpectEquality(t, ai.Memory[1].Access, info.CondRead)

	expectRegisters(t, ai,
		info.UsedRegister{Register: registers.RCX, Access: info.ReadCondWrite},
		info.UsedRegister{Register: registers.RSI, Access: info.ReadCondWrite},
		info.UsedRegister{Register: registers.RDI, Access: info.ReadCondWrite},
	)
	test.ExpectEquality(t, ai.RflagsRead, info.DF)

	// movsb without a prefix does not use the counter
	_, ai = analyze(t, 64, 0, 0xa4)
	test.ExpectEquality(t, ai.Op(0), info.Write)
	test.ExpectEquality(t, ai.Op(1), info.Read)
	expectRegisters(t, ai,
		info.UsedRegister{Register: registers.RSI, Access: info.ReadWrite},
		info.UsedRegister{Register: registers.RDI, Access: info.ReadWrite},
	)

	// outside of 64bit mode the segment registers are used
	_, ai = analyze(t, 32, 0, 0xa4)
	expectRegisters(t, ai,
		info.UsedRegister{Register: registers.ES, Access: info.Read},
		info.UsedRegister{Register: registers.DS, Access: info.Read},
		info.UsedRegister{Register: registers.ESI, Access: info.ReadWrite},
		info.UsedRegister{Register: registers.EDI, Access: info.ReadWrite},
	)

	// segment override applies to the source
	_, ai = analyze(t, 32, 0, 0x2e, 0xa4)
	test.DemandEquality(t, len(ai.Memory), 2)
	test.ExpectEquality(t, ai.Memory[1].Segment, registers.CS)
}

func TestNoMemAccess(t *testing.T) {
	// lea rax, [rax+rcx*4]
	ins, ai := analyze(t, 64, 0, 0x48, 0x8d, 0x04, 0x88)
	test.ExpectEquality(t, ins.Code, instructions.LeaR64Mem)
	test.ExpectEquality(t, ai.Op(1), info.NoMemAccess)
	test.DemandEquality(t, len(ai.Memory), 1)
	test.ExpectEquality(t, ai.Memory[0].Access, info.NoMemAccess)
	test.ExpectEquality(t, ai.Memory[0].Scale, 4)
	expectRegisters(t, ai,
		info.UsedRegister{Register: registers.RAX, Access: info.Write},
		info.UsedRegister{Register: registers.RAX, Access: info.Read},
		info.UsedRegister{Register: registers.RCX, Access: info.Read},
	)

	// the segment register is not used by an address calculation
	_, ai = analyze(t, 32, 0, 0x8d, 0x04, 0x88)
	expectRegisters(t, ai,
		info.UsedRegister{Register: registers.EAX, Access: info.Write},
		info.UsedRegister{Register: registers.EAX, Access: info.Read},
		info.UsedRegister{Register: registers.ECX, Access: info.Read},
	)
}

func TestIPRelative(t *testing.T) {
	// mov eax, [rip+0x10]
	_, ai := analyze(t, 64, 0x1000, 0x8b, 0x05, 0x10, 0x00, 0x00, 0x00)
	test.DemandEquality(t, len(ai.Memory), 1)
	test.ExpectEquality(t, ai.Memory[0].Base, registers.None)
	test.ExpectEquality(t, ai.Memory[0].Displacement, uint64(0x1016))
	test.ExpectEquality(t, ai.Memory[0].Access, info.Read)
	expectRegisters(t, ai, info.UsedRegister{Register: registers.RAX, Access: info.Write})
}

func TestSegmentOverride(t *testing.T) {
	// mov eax, fs:[rax]. of the segment registers only FS and GS are used
	// in 64bit mode
	_, ai := analyze(t, 64, 0, 0x64, 0x8b, 0x00)
	expectRegisters(t, ai,
		info.UsedRegister{Register: registers.RAX, Access: info.Write},
		info.UsedRegister{Register: registers.FS, Access: info.Read},
		info.UsedRegister{Register: registers.RAX, Access: info.Read},
	)

	_, ai = analyze(t, 64, 0, 0x8b, 0x00)
	expectRegisters(t, ai,
		info.UsedRegister{Register: registers.RAX, Access: info.Write},
		info.UsedRegister{Register: registers.RAX, Access: info.Read},
	)
}

func TestFlow(t *testing.T) {
	for _, tc := range []struct {
		data []byte
		flow info.FlowControl
	}{
		{data: []byte{0x90}, flow: info.FlowNext},
		{data: []byte{0xe8, 0x00, 0x00, 0x00, 0x00}, flow: info.FlowCall},
		{data: []byte{0xff, 0xd0}, flow: info.FlowIndirectCall},
		{data: []byte{0xeb, 0x00}, flow: info.FlowUnconditionalBranch},
		{data: []byte{0xff, 0xe0}, flow: info.FlowIndirectBranch},
		{data: []byte{0x74, 0x00}, flow: info.FlowConditionalBranch},
		{data: []byte{0xc3}, flow: info.FlowReturn},
		{data: []byte{0xcc}, flow: info.FlowInterrupt},
		{data: []byte{0x0f, 0x0b}, flow: info.FlowException},
	} {
		_, ai := analyze(t, 64, 0, tc.data...)
		test.ExpectEquality(t, ai.Flow, tc.flow, tc.data)
	}

	// je reads the zero flag
	_, ai := analyze(t, 64, 0, 0x74, 0x00)
	test.ExpectEquality(t, ai.RflagsRead, info.ZF)
	test.ExpectEquality(t, ai.RflagsModified(), info.RflagsBits(0))

	// call pushes the return address
	_, ai = analyze(t, 64, 0, 0xe8, 0x00, 0x00, 0x00, 0x00)
	acc, ok := ai.Register(registers.RSP)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, acc, info.ReadWrite)
}

func TestCounter(t *testing.T) {
	// loop
	_, ai := analyze(t, 64, 0, 0xe2, 0xfe)
	test.ExpectEquality(t, ai.Flow, info.FlowConditionalBranch)
	acc, ok := ai.Register(registers.RCX)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, acc, info.ReadWrite)

	// the counter follows the address size
	_, ai = analyze(t, 32, 0, 0x67, 0xe2, 0xfe)
	acc, ok = ai.Register(registers.CX)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, acc, info.ReadWrite)
	_, ok = ai.Register(registers.ECX)
	test.ExpectFailure(t, ok)
}

func TestShiftCount(t *testing.T) {
	// shl eax, 1
	_, ai := analyze(t, 32, 0, 0xc1, 0xe0, 0x01)
	test.ExpectInequality(t, ai.RflagsModified(), info.RflagsBits(0))

	// shl eax, 0
	_, ai = analyze(t, 32, 0, 0xc1, 0xe0, 0x00)
	test.ExpectEquality(t, ai.RflagsModified(), info.RflagsBits(0))

	// shl eax, 32. the count is masked to five bits
	_, ai = analyze(t, 32, 0, 0xc1, 0xe0, 0x20)
	test.ExpectEquality(t, ai.RflagsModified(), info.RflagsBits(0))

	// shl rax, 32. the count is masked to six bits
	_, ai = analyze(t, 64, 0, 0x48, 0xc1, 0xe0, 0x20)
	test.ExpectInequality(t, ai.RflagsModified(), info.RflagsBits(0))
}

func TestMergeMasking(t *testing.T) {
	// vaddps zmm0{k1}, zmm0, zmm2
	_, ai := analyze(t, 64, 0, 0x62, 0xf1, 0x7c, 0x49, 0x58, 0xc2)
	test.ExpectEquality(t, ai.Op(0), info.ReadCondWrite)
	expectRegisters(t, ai,
		info.UsedRegister{Register: registers.ZMM0, Access: info.ReadCondWrite},
		info.UsedRegister{Register: registers.ZMM0, Access: info.Read},
		info.UsedRegister{Register: registers.ZMM2, Access: info.Read},
		info.UsedRegister{Register: registers.K1, Access: info.Read},
	)

	// vaddps zmm0{k1}{z}, zmm0, zmm2
	_, ai = analyze(t, 64, 0, 0x62, 0xf1, 0x7c, 0xc9, 0x58, 0xc2)
	test.ExpectEquality(t, ai.Op(0), info.Write)
	expectRegisters(t, ai,
		info.UsedRegister{Register: registers.ZMM0, Access: info.Write},
		info.UsedRegister{Register: registers.ZMM0, Access: info.Read},
		info.UsedRegister{Register: registers.ZMM2, Access: info.Read},
		info.UsedRegister{Register: registers.K1, Access: info.Read},
	)
}

func TestRflagsString(t *testing.T) {
	test.ExpectEquality(t, info.RflagsBits(0).String(), "none")
	test.ExpectEquality(t, (info.OF | info.SF).String(), "OF|SF")
	test.ExpectEquality(t, (info.CF | info.AC).String(), "CF|AC")
	test.ExpectEquality(t, info.AllFlags.String(), "OF|SF|ZF|AF|CF|PF|DF|IF|AC")
}

func TestAccessPredicates(t *testing.T) {
	test.ExpectSuccess(t, info.ReadCondWrite.IsRead())
	test.ExpectSuccess(t, info.ReadCondWrite.IsWrite())
	test.ExpectSuccess(t, info.CondRead.IsRead())
	test.ExpectFailure(t, info.CondRead.IsWrite())
	test.ExpectFailure(t, info.NoMemAccess.IsRead())
	test.ExpectFailure(t, info.NoMemAccess.IsWrite())
	test.ExpectEquality(t, info.FlowXbeginXabortXend.String(), "xbegin/xabort/xend")
}

func TestConcurrentAnalysis(t *testing.T) {
	ins, ai := analyze(t, 32, 0, 0xf3, 0xa5)
	expected := fmt.Sprintf("%v", ai)

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				results[i] = fmt.Sprintf("%v", info.Analyze(&ins))
			}
		}(i)
	}
	wg.Wait()

	for i := range results {
		test.ExpectEquality(t, results[i], expected, i)
	}
}
