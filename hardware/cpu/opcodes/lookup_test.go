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

package opcodes_test

import (
	"testing"

	"github.com/jetsetilly/gopherx86/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherx86/hardware/cpu/memorysize"
	"github.com/jetsetilly/gopherx86/hardware/cpu/opcodes"
	"github.com/jetsetilly/gopherx86/test"
)

func TestLegacy(t *testing.T) {
	idx, consumed := opcodes.Legacy(true, opcodes.Map0, opcodes.PrefixNone, 0x90)
	test.ExpectFailure(t, consumed)
	e := opcodes.EntryAt(idx)
	test.ExpectEquality(t, e.Kind, opcodes.KindNop)
	test.ExpectEquality(t, e.Code(0, 1), instructions.Nop)
	test.ExpectEquality(t, opcodes.EntryAt(e.Alt).Code(0, 1), instructions.XchgR32EAX)

	// F3 90 is PAUSE
	idx, consumed = opcodes.Legacy(true, opcodes.Map0, opcodes.PrefixF3, 0x90)
	test.ExpectSuccess(t, consumed)
	test.ExpectEquality(t, opcodes.EntryAt(idx).Code(0, 2), instructions.Pause)

	// 66 90 has no entry of its own and falls back to NOP
	idx, consumed = opcodes.Legacy(true, opcodes.Map0, opcodes.Prefix66, 0x90)
	test.ExpectFailure(t, consumed)
	test.ExpectEquality(t, opcodes.EntryAt(idx).Kind, opcodes.KindNop)

	// a repeat prefix on a string instruction is not mandatory
	idx, consumed = opcodes.Legacy(false, opcodes.Map0, opcodes.PrefixF3, 0xa4)
	test.ExpectFailure(t, consumed)
	test.ExpectEquality(t, opcodes.EntryAt(idx).Code(0, 1), instructions.MovsbM8M8)

	// the operand size column
	idx, _ = opcodes.Legacy(false, opcodes.Map0, opcodes.PrefixNone, 0x8b)
	e = opcodes.EntryAt(idx)
	test.ExpectEquality(t, e.Code(0, 0), instructions.MovR16Rm16)
	test.ExpectEquality(t, e.Code(0, 1), instructions.MovR32Rm32)
	test.ExpectEquality(t, e.Code(0, 2), instructions.MovR64Rm64)
	test.ExpectEquality(t, e.MemorySize(0, 1), memorysize.UInt32)
	test.ExpectEquality(t, e.NumOperands(), 2)
	test.ExpectSuccess(t, e.Flags.Has(opcodes.FlagModRM))
}

func TestLegacyMandatoryPrefix(t *testing.T) {
	idx, consumed := opcodes.Legacy(true, opcodes.Map0F, opcodes.Prefix66, 0x6f)
	test.ExpectSuccess(t, consumed)
	test.ExpectEquality(t, opcodes.EntryAt(idx).Code(0, 1), instructions.MovdqaXmmXmmm128)

	idx, consumed = opcodes.Legacy(false, opcodes.Map0F, opcodes.PrefixF3, 0xb8)
	test.ExpectSuccess(t, consumed)
	test.ExpectEquality(t, opcodes.EntryAt(idx).Code(0, 0), instructions.PopcntR16Rm16)

	// no entry for F2 0F 28 and the opcode does not fall back
	idx, consumed = opcodes.Legacy(true, opcodes.Map0F, opcodes.PrefixF2, 0x28)
	test.ExpectFailure(t, consumed)
	test.ExpectEquality(t, idx, opcodes.Invalid)

	// but without a prefix it is MOVAPS
	idx, _ = opcodes.Legacy(true, opcodes.Map0F, opcodes.PrefixNone, 0x28)
	test.ExpectEquality(t, opcodes.EntryAt(idx).Code(0, 0), instructions.MovapsXmmXmmm128)
}

func TestLegacyModes(t *testing.T) {
	// PUSH ES
	idx, _ := opcodes.Legacy(false, opcodes.Map0, opcodes.PrefixNone, 0x06)
	test.ExpectEquality(t, opcodes.EntryAt(idx).Code(0, 1), instructions.PushES)
	idx, _ = opcodes.Legacy(true, opcodes.Map0, opcodes.PrefixNone, 0x06)
	test.ExpectEquality(t, idx, opcodes.Invalid)

	// escapes and their alternatives
	idx, _ = opcodes.Legacy(false, opcodes.Map0, opcodes.PrefixNone, 0xc5)
	e := opcodes.EntryAt(idx)
	test.ExpectEquality(t, e.Kind, opcodes.KindVEX2)
	test.ExpectEquality(t, opcodes.EntryAt(e.Alt).Code(0, 1), instructions.LdsR32M1632)

	idx, _ = opcodes.Legacy(false, opcodes.Map0, opcodes.PrefixNone, 0x62)
	e = opcodes.EntryAt(idx)
	test.ExpectEquality(t, e.Kind, opcodes.KindEVEX)
	test.ExpectEquality(t, opcodes.EntryAt(e.Alt).Code(0, 1), instructions.BoundR32M3232)

	idx, _ = opcodes.Legacy(true, opcodes.Map0, opcodes.PrefixNone, 0x8f)
	e = opcodes.EntryAt(idx)
	test.ExpectEquality(t, e.Kind, opcodes.KindXOP)
	test.ExpectEquality(t, opcodes.Resolve(e.Alt, 0xc0).Code(0, 2), instructions.PopRm64)

	// out of range arguments
	idx, _ = opcodes.Legacy(true, opcodes.Map0F3A+1, opcodes.PrefixNone, 0x00)
	test.ExpectEquality(t, idx, opcodes.Invalid)
	idx, _ = opcodes.Legacy(true, opcodes.Map0, opcodes.PrefixF2+1, 0x00)
	test.ExpectEquality(t, idx, opcodes.Invalid)
}

func TestByW(t *testing.T) {
	// EVEX.66.0F38 90 is vpgatherdd with W0 and vpgatherdq with W1. the
	// index register is the full vector length for the first and half the
	// vector length for the second
	idx := opcodes.EVEX(opcodes.Map0F38, opcodes.Prefix66, 0x90)
	e := opcodes.EntryAt(idx)
	test.ExpectEquality(t, e.Kind, opcodes.KindW)

	w0 := opcodes.ByW(e, 0)
	test.ExpectEquality(t, w0.Code(0, 2), instructions.EvexVpgatherddZmmK1Vm32z)
	test.ExpectEquality(t, w0.Operands[1], opcodes.OpMVx)
	test.ExpectSuccess(t, w0.Flags.Has(opcodes.FlagVSIB))

	w1 := opcodes.ByW(e, 1)
	test.ExpectEquality(t, w1.Code(1, 2), instructions.EvexVpgatherdqZmmK1Vm32y)
	test.ExpectEquality(t, w1.Operands[1], opcodes.OpMVh)

	// other entries are unchanged
	idx = opcodes.VEX(opcodes.Map0F, opcodes.Prefix66, 0xfc)
	e = opcodes.EntryAt(idx)
	test.ExpectEquality(t, opcodes.ByW(e, 1), e)
	test.ExpectEquality(t, e.Code(0, 0), instructions.VexVpaddbXmmXmmXmmm128)
}

func TestResolve(t *testing.T) {
	// F7 /3 is NEG
	idx, _ := opcodes.Legacy(false, opcodes.Map0, opcodes.PrefixNone, 0xf7)
	test.ExpectEquality(t, opcodes.EntryAt(idx).Kind, opcodes.KindGroup)
	e := opcodes.Resolve(idx, 0x18)
	test.ExpectEquality(t, e.Code(0, 1), instructions.NegRm32)
	test.ExpectSuccess(t, e.Flags.Has(opcodes.FlagLock))

	// the x87 escapes select different instructions for memory and register
	// forms
	idx, _ = opcodes.Legacy(false, opcodes.Map0, opcodes.PrefixNone, 0xd9)
	test.ExpectEquality(t, opcodes.Resolve(idx, 0x00).Code(0, 1), instructions.FldM32fp)
	test.ExpectEquality(t, opcodes.Resolve(idx, 0xc9).Code(0, 1), instructions.FxchSti)
	test.ExpectEquality(t, opcodes.Resolve(idx, 0xd0).Code(0, 1), instructions.Fnop)
	test.ExpectEquality(t, opcodes.Resolve(idx, 0xe0).Code(0, 1), instructions.Fchs)

	// 0F 01 uses the whole of the ModRM byte in the register form
	idx, _ = opcodes.Legacy(true, opcodes.Map0F, opcodes.PrefixNone, 0x01)
	test.ExpectEquality(t, opcodes.Resolve(idx, 0xd0).Code(0, 2), instructions.Xgetbv)
	test.ExpectEquality(t, opcodes.Resolve(idx, 0xc1).Code(0, 2), instructions.Vmcall)
	test.ExpectEquality(t, opcodes.Resolve(idx, 0xf8).Code(0, 2), instructions.Swapgs)

	// non-group entries are unchanged
	idx, _ = opcodes.Legacy(false, opcodes.Map0, opcodes.PrefixNone, 0x8b)
	test.ExpectEquality(t, opcodes.Resolve(idx, 0xc0), opcodes.EntryAt(idx))
}

func TestVectorMaps(t *testing.T) {
	e := opcodes.EntryAt(opcodes.VEX(opcodes.Map0F, opcodes.PrefixNone, 0x10))
	test.ExpectEquality(t, e.Code(0, 0), instructions.VexVmovupsXmmXmmm128)
	test.ExpectEquality(t, e.Code(0, 1), instructions.VexVmovupsYmmYmmm256)
	test.ExpectSuccess(t, e.Flags.Has(opcodes.FlagNoVvvv))

	e = opcodes.EntryAt(opcodes.EVEX(opcodes.Map0F, opcodes.PrefixNone, 0x58))
	test.ExpectEquality(t, e.Code(0, 2), instructions.EvexVaddpsZmmK1zZmmZmmm512B32Er)
	test.ExpectSuccess(t, e.Flags.Has(opcodes.FlagRounding))
	test.ExpectSuccess(t, e.Flags.Has(opcodes.FlagBroadcast))
	test.ExpectEquality(t, e.Broadcast[0], memorysize.BroadcastFloat32)

	e = opcodes.EntryAt(opcodes.XOP(8, opcodes.PrefixNone, 0xa2))
	test.ExpectEquality(t, e.Code(0, 0), instructions.XopVpcmovXmmXmmXmmm128Xmm)
	test.ExpectEquality(t, e.NumOperands(), 4)

	// there are no vector encodings in map 0
	test.ExpectEquality(t, opcodes.VEX(opcodes.Map0, opcodes.PrefixNone, 0x10), opcodes.Invalid)
	test.ExpectEquality(t, opcodes.EVEX(opcodes.Map0, opcodes.PrefixNone, 0x58), opcodes.Invalid)
	test.ExpectEquality(t, opcodes.XOP(7, opcodes.PrefixNone, 0xa2), opcodes.Invalid)
	test.ExpectEquality(t, opcodes.XOP(11, opcodes.PrefixNone, 0xa2), opcodes.Invalid)
}

func TestEntryBounds(t *testing.T) {
	e := opcodes.EntryAt(0xffff)
	test.ExpectEquality(t, e, opcodes.EntryAt(opcodes.Invalid))
	test.ExpectEquality(t, e.Kind, opcodes.KindInvalid)
	test.ExpectEquality(t, e.Code(2, 0), instructions.Invalid)
	test.ExpectEquality(t, e.Code(0, 3), instructions.Invalid)
	test.ExpectEquality(t, e.MemorySize(-1, 0), memorysize.Unknown)
	test.ExpectEquality(t, e.NumOperands(), 0)
}

func TestPrefixByte(t *testing.T) {
	test.ExpectEquality(t, opcodes.PrefixNone.Byte(), uint8(0))
	test.ExpectEquality(t, opcodes.Prefix66.Byte(), uint8(0x66))
	test.ExpectEquality(t, opcodes.PrefixF3.Byte(), uint8(0xf3))
	test.ExpectEquality(t, opcodes.PrefixF2.Byte(), uint8(0xf2))
}
