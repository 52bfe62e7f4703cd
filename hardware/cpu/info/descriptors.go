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
)

// Precomputed instruction descriptors. Do not edit.

var rflagsTable = [...]rflagsInfo{
	{},
	{written: OF | SF | ZF | AF | CF | PF},
	{written: SF | ZF | PF, undefined: AF, cleared: OF | CF},
	{read: CF, written: OF | SF | ZF | AF | CF | PF},
	{read: AF | CF, written: SF | ZF | AF | CF | PF, undefined: OF},
	{read: AF, written: AF | CF, undefined: OF | SF | ZF | PF},
	{written: OF | SF | ZF | AF | PF},
	{written: ZF},
	{written: OF | CF, undefined: SF | ZF | AF | PF},
	{read: DF},
	{read: OF},
	{read: CF},
	{read: ZF},
	{read: ZF | CF},
	{read: SF},
	{read: PF},
	{read: OF | SF},
	{read: OF | SF | ZF},
	{read: OF | SF | ZF | AF | CF | PF | DF | IF | AC},
	{written: OF | SF | ZF | AF | CF | PF | DF | IF | AC},
	{written: SF | ZF | AF | CF | PF},
	{read: SF | ZF | AF | CF | PF},
	{read: DF, written: OF | SF | ZF | AF | CF | PF},
	{written: CF, undefined: OF},
	{written: OF | CF},
	{read: CF, written: CF, undefined: OF},
	{read: CF, written: OF | CF},
	{written: SF | ZF | CF | PF, undefined: OF | AF},
	{written: OF | SF | ZF | CF | PF, undefined: AF},
	{cleared: IF},
	{written: SF | ZF | PF, undefined: OF | AF | CF},
	{read: CF, written: CF},
	{undefined: OF | SF | ZF | AF | CF | PF},
	{cleared: CF},
	{set: CF},
	{set: IF},
	{cleared: DF},
	{set: DF},
	{written: ZF | CF | PF, cleared: OF | SF | AF},
	{cleared: AC},
	{set: AC},
	{written: ZF, cleared: OF | SF | AF | CF | PF},
	{written: CF, undefined: OF | SF | AF | PF},
	{written: ZF, undefined: OF | SF | AF | CF | PF},
	{written: ZF | CF, undefined: OF | SF | AF | PF},
	{written: CF, cleared: OF | SF | ZF | AF | PF},
	{written: ZF | CF, cleared: OF | SF | AF | PF},
	{read: OF, written: OF},
	{written: OF | SF | ZF | CF, cleared: AF | PF},
	{written: SF | ZF | CF, undefined: AF | PF, cleared: OF},
	{written: SF | CF, undefined: AF | PF, cleared: OF | ZF},
	{written: ZF, undefined: SF | AF | PF, cleared: OF | CF},
}

var implicitTable = [...][]implicitAccess{
	nil,
	{{symbol: symStackPointer, access: ReadWrite}},
	{{register: registers.AL, access: ReadWrite}},
	{{register: registers.AX, access: ReadWrite}},
	{{symbol: symStackPointer, access: ReadWrite}, {register: registers.AX, access: Read}, {register: registers.CX, access: Read}, {register: registers.DX, access: Read}, {register: registers.BX, access: Read}, {register: registers.BP, access: Read}, {register: registers.SI, access: Read}, {register: registers.DI, access: Read}},
	{{symbol: symStackPointer, access: ReadWrite}, {register: registers.EAX, access: Read}, {register: registers.ECX, access: Read}, {register: registers.EDX, access: Read}, {register: registers.EBX, access: Read}, {register: registers.EBP, access: Read}, {register: registers.ESI, access: Read}, {register: registers.EDI, access: Read}},
	{{symbol: symStackPointer, access: ReadWrite}, {register: registers.AX, access: Write}, {register: registers.CX, access: Write}, {register: registers.DX, access: Write}, {register: registers.BX, access: Write}, {register: registers.BP, access: Write}, {register: registers.SI, access: Write}, {register: registers.DI, access: Write}},
	{{symbol: symStackPointer, access: ReadWrite}, {register: registers.EAX, access: Write}, {register: registers.ECX, access: Write}, {register: registers.EDX, access: Write}, {register: registers.EBX, access: Write}, {register: registers.EBP, access: Write}, {register: registers.ESI, access: Write}, {register: registers.EDI, access: Write}},
	{{symbol: symRepCounter, access: ReadCondWrite}, {symbol: symDestination, access: ReadCondWrite}},
	{{symbol: symRepCounter, access: ReadCondWrite}, {symbol: symSource, access: ReadCondWrite}},
	{{register: registers.AL, access: Read}, {register: registers.AX, access: Write}},
	{{register: registers.AX, access: Read}, {register: registers.EAX, access: Write}},
	{{register: registers.EAX, access: Read}, {register: registers.RAX, access: Write}},
	{{register: registers.AX, access: Read}, {register: registers.DX, access: Write}},
	{{register: registers.EAX, access: Read}, {register: registers.EDX, access: Write}},
	{{register: registers.RAX, access: Read}, {register: registers.RDX, access: Write}},
	{{register: registers.AH, access: Read}},
	{{register: registers.AH, access: Write}},
	{{symbol: symRepCounter, access: ReadCondWrite}, {symbol: symSource, access: ReadCondWrite}, {symbol: symDestination, access: ReadCondWrite}},
	{{register: registers.EAX, access: ReadCondWrite}},
	{{register: registers.EAX, access: CondWrite}},
	{{symbol: symStackPointer, access: ReadWrite}, {symbol: symFramePointer, access: ReadWrite}},
	{{register: registers.AL, access: Write}},
	{{register: registers.AL, access: ReadWrite}, {symbol: symXlatBase, access: Read}},
	{{symbol: symCounter, access: ReadWrite}},
	{{symbol: symCounter, access: Read}},
	{{register: registers.AX, access: ReadWrite}, {register: registers.DX, access: Write}},
	{{register: registers.EAX, access: ReadWrite}, {register: registers.EDX, access: Write}},
	{{register: registers.RAX, access: ReadWrite}, {register: registers.RDX, access: Write}},
	{{register: registers.AX, access: ReadWrite}, {register: registers.DX, access: ReadWrite}},
	{{register: registers.EAX, access: ReadWrite}, {register: registers.EDX, access: ReadWrite}},
	{{register: registers.RAX, access: ReadWrite}, {register: registers.RDX, access: ReadWrite}},
	{{register: registers.ST0, access: ReadWrite}},
	{{register: registers.ST0, access: Read}},
	{{register: registers.ST0, access: Write}},
	{{register: registers.ST0, access: ReadWrite}, {register: registers.ST1, access: ReadWrite}},
	{{symbol: symMonitorAddress, access: Read}, {register: registers.ECX, access: Read}, {register: registers.EDX, access: Read}},
	{{register: registers.EAX, access: Read}, {register: registers.ECX, access: Read}},
	{{register: registers.ECX, access: Read}, {register: registers.EAX, access: Write}, {register: registers.EDX, access: Write}},
	{{register: registers.ECX, access: Read}, {register: registers.EAX, access: Read}, {register: registers.EDX, access: Read}},
	{{register: registers.EAX, access: Write}, {register: registers.EDX, access: Write}, {register: registers.ECX, access: Write}},
	{{register: registers.RCX, access: Write}, {register: registers.R11, access: Write}},
	{{register: registers.RCX, access: Read}, {register: registers.R11, access: Read}},
	{{register: registers.EAX, access: Write}, {register: registers.EDX, access: Write}},
	{{register: registers.EAX, access: ReadWrite}, {register: registers.ECX, access: ReadWrite}, {register: registers.EDX, access: Write}, {register: registers.EBX, access: Write}},
	{{register: registers.EAX, access: Read}, {register: registers.EDX, access: Read}},
	{{register: registers.EAX, access: ReadWrite}},
	{{register: registers.RAX, access: ReadWrite}},
	{{register: registers.EDX, access: ReadWrite}, {register: registers.EAX, access: ReadWrite}, {register: registers.ECX, access: Read}, {register: registers.EBX, access: Read}},
	{{register: registers.RDX, access: ReadWrite}, {register: registers.RAX, access: ReadWrite}, {register: registers.RCX, access: Read}, {register: registers.RBX, access: Read}},
	{{symbol: symDestination, access: Read}},
	{{register: registers.EAX, access: Read}, {register: registers.EDX, access: Read}, {register: registers.XMM0, access: Write}},
	{{register: registers.EAX, access: Read}, {register: registers.EDX, access: Read}, {register: registers.ECX, access: Write}},
	{{register: registers.XMM0, access: Write}},
	{{register: registers.ECX, access: Write}},
	{{register: registers.EDX, access: Read}},
	{{register: registers.RDX, access: Read}},
}

var descriptors = [instructions.NumCodes]descriptor{
	instructions.AddRm8R8: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.AddRm16R16: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.AddRm32R32: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.AddRm64R64: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.AddR8Rm8: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.AddR16Rm16: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.AddR32Rm32: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.AddR64Rm64: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.AddALImm8: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.AddAXImm16: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.AddEAXImm32: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.AddRAXImm32: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.OrRm8R8: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.OrRm16R16: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.OrRm32R32: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.OrRm64R64: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.OrR8Rm8: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.OrR16Rm16: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.OrR32Rm32: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.OrR64Rm64: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.OrALImm8: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.OrAXImm16: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.OrEAXImm32: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.OrRAXImm32: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AdcRm8R8: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AdcRm16R16: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AdcRm32R32: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AdcRm64R64: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AdcR8Rm8: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AdcR16Rm16: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AdcR32Rm32: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AdcR64Rm64: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AdcALImm8: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AdcAXImm16: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AdcEAXImm32: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AdcRAXImm32: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbRm8R8: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbRm16R16: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbRm32R32: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbRm64R64: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbR8Rm8: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbR16Rm16: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbR32Rm32: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbR64Rm64: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbALImm8: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbAXImm16: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbEAXImm32: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbRAXImm32: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AndRm8R8: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AndRm16R16: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AndRm32R32: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AndRm64R64: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AndR8Rm8: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AndR16Rm16: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AndR32Rm32: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AndR64Rm64: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AndALImm8: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AndAXImm16: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AndEAXImm32: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AndRAXImm32: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.SubRm8R8: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.SubRm16R16: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.SubRm32R32: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.SubRm64R64: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.SubR8Rm8: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.SubR16Rm16: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.SubR32Rm32: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.SubR64Rm64: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.SubALImm8: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.SubAXImm16: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.SubEAXImm32: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.SubRAXImm32: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.XorRm8R8: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.XorRm16R16: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.XorRm32R32: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.XorRm64R64: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.XorR8Rm8: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.XorR16Rm16: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.XorR32Rm32: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.XorR64Rm64: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.XorALImm8: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.XorAXImm16: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.XorEAXImm32: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.XorRAXImm32: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.CmpRm8R8: {access: accesses{Read, Read}, rflags: 1},
	instructions.CmpRm16R16: {access: accesses{Read, Read}, rflags: 1},
	instructions.CmpRm32R32: {access: accesses{Read, Read}, rflags: 1},
	instructions.CmpRm64R64: {access: accesses{Read, Read}, rflags: 1},
	instructions.CmpR8Rm8: {access: accesses{Read, Read}, rflags: 1},
	instructions.CmpR16Rm16: {access: accesses{Read, Read}, rflags: 1},
	instructions.CmpR32Rm32: {access: accesses{Read, Read}, rflags: 1},
	instructions.CmpR64Rm64: {access: accesses{Read, Read}, rflags: 1},
	instructions.CmpALImm8: {access: accesses{Read, Read}, rflags: 1},
	instructions.CmpAXImm16: {access: accesses{Read, Read}, rflags: 1},
	instructions.CmpEAXImm32: {access: accesses{Read, Read}, rflags: 1},
	instructions.CmpRAXImm32: {access: accesses{Read, Read}, rflags: 1},
	instructions.PushES: {access: accesses{Read}, implicit: 1, stack: stackPush},
	instructions.PopES: {access: accesses{Write}, implicit: 1, stack: stackPop},
	instructions.PushCS: {access: accesses{Read}, implicit: 1, stack: stackPush},
	instructions.PushSS: {access: accesses{Read}, implicit: 1, stack: stackPush},
	instructions.PopSS: {access: accesses{Write}, implicit: 1, stack: stackPop},
	instructions.PushDS: {access: accesses{Read}, implicit: 1, stack: stackPush},
	instructions.PopDS: {access: accesses{Write}, implicit: 1, stack: stackPop},
	instructions.Daa: {implicit: 2, rflags: 4},
	instructions.Das: {implicit: 2, rflags: 4},
	instructions.Aaa: {implicit: 3, rflags: 5},
	instructions.Aas: {implicit: 3, rflags: 5},
	instructions.IncR16: {access: accesses{ReadWrite}, rflags: 6},
	instructions.IncR32: {access: accesses{ReadWrite}, rflags: 6},
	instructions.DecR16: {access: accesses{ReadWrite}, rflags: 6},
	instructions.DecR32: {access: accesses{ReadWrite}, rflags: 6},
	instructions.PushR16: {access: accesses{Read}, implicit: 1, stack: stackPush},
	instructions.PushR32: {access: accesses{Read}, implicit: 1, stack: stackPush},
	instructions.PushR64: {access: accesses{Read}, implicit: 1, stack: stackPush},
	instructions.PopR16: {access: accesses{Write}, implicit: 1, stack: stackPop},
	instructions.PopR32: {access: accesses{Write}, implicit: 1, stack: stackPop},
	instructions.PopR64: {access: accesses{Write}, implicit: 1, stack: stackPop},
	instructions.Pusha: {implicit: 4, stack: stackPushAll},
	instructions.Pushad: {implicit: 5, stack: stackPushAll},
	instructions.Popa: {implicit: 6, stack: stackPopAll},
	instructions.Popad: {implicit: 7, stack: stackPopAll},
	instructions.BoundR16M1616: {access: accesses{Read, Read}, flow: FlowInterrupt},
	instructions.BoundR32M3232: {access: accesses{Read, Read}, flow: FlowInterrupt},
	instructions.ArplRm16R16: {access: accesses{ReadWrite, Read}, rflags: 7},
	instructions.MovsxdR16Rm32: {access: accesses{Write, Read}},
	instructions.MovsxdR32Rm32: {access: accesses{Write, Read}},
	instructions.MovsxdR64Rm32: {access: accesses{Write, Read}},
	instructions.PushImm16: {access: accesses{Read}, implicit: 1, stack: stackPush},
	instructions.PushImm32: {access: accesses{Read}, implicit: 1, stack: stackPush},
	instructions.ImulR16Rm16Imm16: {access: accesses{Write, Read, Read}, rflags: 8},
	instructions.ImulR32Rm32Imm32: {access: accesses{Write, Read, Read}, rflags: 8},
	instructions.ImulR64Rm64Imm32: {access: accesses{Write, Read, Read}, rflags: 8},
	instructions.PushImm8: {access: accesses{Read}, implicit: 1, stack: stackPush},
	instructions.ImulR16Rm16Imm8: {access: accesses{Write, Read, Read}, rflags: 8},
	instructions.ImulR32Rm32Imm8: {access: accesses{Write, Read, Read}, rflags: 8},
	instructions.ImulR64Rm64Imm8: {access: accesses{Write, Read, Read}, rflags: 8},
	instructions.InsbM8DX: {access: accesses{Write, Read}, implicit: 8, rflags: 9},
	instructions.InswM16DX: {access: accesses{Write, Read}, implicit: 8, rflags: 9},
	instructions.InsdM32DX: {access: accesses{Write, Read}, implicit: 8, rflags: 9},
	instructions.InsdM64DX: {access: accesses{Write, Read}, implicit: 8, rflags: 9},
	instructions.OutsbDXM8: {access: accesses{Read, Read}, implicit: 9, rflags: 9},
	instructions.OutswDXM16: {access: accesses{Read, Read}, implicit: 9, rflags: 9},
	instructions.OutsdDXM32: {access: accesses{Read, Read}, implicit: 9, rflags: 9},
	instructions.OutsdDXM64: {access: accesses{Read, Read}, implicit: 9, rflags: 9},
	instructions.JoRel8Op16: {access: accesses{Read}, rflags: 10, flow: FlowConditionalBranch, condition: ConditionO},
	instructions.JoRel8Op32: {access: accesses{Read}, rflags: 10, flow: FlowConditionalBranch, condition: ConditionO},
	instructions.JoRel8Op64: {access: accesses{Read}, rflags: 10, flow: FlowConditionalBranch, condition: ConditionO},
	instructions.JnoRel8Op16: {access: accesses{Read}, rflags: 10, flow: FlowConditionalBranch, condition: ConditionNO},
	instructions.JnoRel8Op32: {access: accesses{Read}, rflags: 10, flow: FlowConditionalBranch, condition: ConditionNO},
	instructions.JnoRel8Op64: {access: accesses{Read}, rflags: 10, flow: FlowConditionalBranch, condition: ConditionNO},
	instructions.JbRel8Op16: {access: accesses{Read}, rflags: 11, flow: FlowConditionalBranch, condition: ConditionB},
	instructions.JbRel8Op32: {access: accesses{Read}, rflags: 11, flow: FlowConditionalBranch, condition: ConditionB},
	instructions.JbRel8Op64: {access: accesses{Read}, rflags: 11, flow: FlowConditionalBranch, condition: ConditionB},
	instructions.JaeRel8Op16: {access: accesses{Read}, rflags: 11, flow: FlowConditionalBranch, condition: ConditionAE},
	instructions.JaeRel8Op32: {access: accesses{Read}, rflags: 11, flow: FlowConditionalBranch, condition: ConditionAE},
	instructions.JaeRel8Op64: {access: accesses{Read}, rflags: 11, flow: FlowConditionalBranch, condition: ConditionAE},
	instructions.JeRel8Op16: {access: accesses{Read}, rflags: 12, flow: FlowConditionalBranch, condition: ConditionE},
	instructions.JeRel8Op32: {access: accesses{Read}, rflags: 12, flow: FlowConditionalBranch, condition: ConditionE},
	instructions.JeRel8Op64: {access: accesses{Read}, rflags: 12, flow: FlowConditionalBranch, condition: ConditionE},
	instructions.JneRel8Op16: {access: accesses{Read}, rflags: 12, flow: FlowConditionalBranch, condition: ConditionNE},
	instructions.JneRel8Op32: {access: accesses{Read}, rflags: 12, flow: FlowConditionalBranch, condition: ConditionNE},
	instructions.JneRel8Op64: {access: accesses{Read}, rflags: 12, flow: FlowConditionalBranch, condition: ConditionNE},
	instructions.JbeRel8Op16: {access: accesses{Read}, rflags: 13, flow: FlowConditionalBranch, condition: ConditionBE},
	instructions.JbeRel8Op32: {access: accesses{Read}, rflags: 13, flow: FlowConditionalBranch, condition: ConditionBE},
	instructions.JbeRel8Op64: {access: accesses{Read}, rflags: 13, flow: FlowConditionalBranch, condition: ConditionBE},
	instructions.JaRel8Op16: {access: accesses{Read}, rflags: 13, flow: FlowConditionalBranch, condition: ConditionA},
	instructions.JaRel8Op32: {access: accesses{Read}, rflags: 13, flow: FlowConditionalBranch, condition: ConditionA},
	instructions.JaRel8Op64: {access: accesses{Read}, rflags: 13, flow: FlowConditionalBranch, condition: ConditionA},
	instructions.JsRel8Op16: {access: accesses{Read}, rflags: 14, flow: FlowConditionalBranch, condition: ConditionS},
	instructions.JsRel8Op32: {access: accesses{Read}, rflags: 14, flow: FlowConditionalBranch, condition: ConditionS},
	instructions.JsRel8Op64: {access: accesses{Read}, rflags: 14, flow: FlowConditionalBranch, condition: ConditionS},
	instructions.JnsRel8Op16: {access: accesses{Read}, rflags: 14, flow: FlowConditionalBranch, condition: ConditionNS},
	instructions.JnsRel8Op32: {access: accesses{Read}, rflags: 14, flow: FlowConditionalBranch, condition: ConditionNS},
	instructions.JnsRel8Op64: {access: accesses{Read}, rflags: 14, flow: FlowConditionalBranch, condition: ConditionNS},
	instructions.JpRel8Op16: {access: accesses{Read}, rflags: 15, flow: FlowConditionalBranch, condition: ConditionP},
	instructions.JpRel8Op32: {access: accesses{Read}, rflags: 15, flow: FlowConditionalBranch, condition: ConditionP},
	instructions.JpRel8Op64: {access: accesses{Read}, rflags: 15, flow: FlowConditionalBranch, condition: ConditionP},
	instructions.JnpRel8Op16: {access: accesses{Read}, rflags: 15, flow: FlowConditionalBranch, condition: ConditionNP},
	instructions.JnpRel8Op32: {access: accesses{Read}, rflags: 15, flow: FlowConditionalBranch, condition: ConditionNP},
	instructions.JnpRel8Op64: {access: accesses{Read}, rflags: 15, flow: FlowConditionalBranch, condition: ConditionNP},
	instructions.JlRel8Op16: {access: accesses{Read}, rflags: 16, flow: FlowConditionalBranch, condition: ConditionL},
	instructions.JlRel8Op32: {access: accesses{Read}, rflags: 16, flow: FlowConditionalBranch, condition: ConditionL},
	instructions.JlRel8Op64: {access: accesses{Read}, rflags: 16, flow: FlowConditionalBranch, condition: ConditionL},
	instructions.JgeRel8Op16: {access: accesses{Read}, rflags: 16, flow: FlowConditionalBranch, condition: ConditionGE},
	instructions.JgeRel8Op32: {access: accesses{Read}, rflags: 16, flow: FlowConditionalBranch, condition: ConditionGE},
	instructions.JgeRel8Op64: {access: accesses{Read}, rflags: 16, flow: FlowConditionalBranch, condition: ConditionGE},
	instructions.JleRel8Op16: {access: accesses{Read}, rflags: 17, flow: FlowConditionalBranch, condition: ConditionLE},
	instructions.JleRel8Op32: {access: accesses{Read}, rflags: 17, flow: FlowConditionalBranch, condition: ConditionLE},
	instructions.JleRel8Op64: {access: accesses{Read}, rflags: 17, flow: FlowConditionalBranch, condition: ConditionLE},
	instructions.JgRel8Op16: {access: accesses{Read}, rflags: 17, flow: FlowConditionalBranch, condition: ConditionG},
	instructions.JgRel8Op32: {access: accesses{Read}, rflags: 17, flow: FlowConditionalBranch, condition: ConditionG},
	instructions.JgRel8Op64: {access: accesses{Read}, rflags: 17, flow: FlowConditionalBranch, condition: ConditionG},
	instructions.AddRm8Imm8: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.AddRm16Imm16: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.AddRm32Imm32: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.AddRm64Imm32: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.AddRm8Imm8Op82: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.AddRm16Imm8: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.AddRm32Imm8: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.AddRm64Imm8: {access: accesses{ReadWrite, Read}, rflags: 1},
	instructions.OrRm8Imm8: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.OrRm16Imm16: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.OrRm32Imm32: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.OrRm64Imm32: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.OrRm8Imm8Op82: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.OrRm16Imm8: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.OrRm32Imm8: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.OrRm64Imm8: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AdcRm8Imm8: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AdcRm16Imm16: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AdcRm32Imm32: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AdcRm64Imm32: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AdcRm8Imm8Op82: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AdcRm16Imm8: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AdcRm32Imm8: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AdcRm64Imm8: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbRm8Imm8: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbRm16Imm16: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbRm32Imm32: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbRm64Imm32: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbRm8Imm8Op82: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbRm16Imm8: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbRm32Imm8: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.SbbRm64Imm8: {access: accesses{ReadWrite, Read}, rflags: 3},
	instructions.AndRm8Imm8: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AndRm16Imm16: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AndRm32Imm32: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AndRm64Imm32: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AndRm8Imm8Op82: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AndRm16Imm8: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AndRm32Imm8: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.AndRm64Imm8: {access: accesses{ReadWrite, Read}, rflags: 2},
	instructions.SubRm8Imm8: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.SubRm16Imm16: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.SubRm32Imm32: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.SubRm64Imm32: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.SubRm8Imm8Op82: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.SubRm16Imm8: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.SubRm32Imm8: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.SubRm64Imm8: {access: accesses{ReadWrite, Read}, rflags: 1, zeroIdiom: true},
	instructions.XorRm8Imm8: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.XorRm16Imm16: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.XorRm32Imm32: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.XorRm64Imm32: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.XorRm8Imm8Op82: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.XorRm16Imm8: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.XorRm32Imm8: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.XorRm64Imm8: {access: accesses{ReadWrite, Read}, rflags: 2, zeroIdiom: true},
	instructions.CmpRm8Imm8: {access: accesses{Read, Read}, rflags: 1},
	instructions.CmpRm16Imm16: {access: accesses{Read, Read}, rflags: 1},
	instructions.CmpRm32Imm32: {access: accesses{Read, Read}, rflags: 1},
	instructions.CmpRm64Imm32: {access: accesses{Read, Read}, rflags: 1},
	instructions.CmpRm8Imm8Op82: {access: accesses{Read, Read}, rflags: 1},
	instructions.CmpRm16Imm8: {access: accesses{Read, Read}, rflags: 1},
	instructions.CmpRm32Imm8: {access: accesses{Read, Read}, rflags: 1},
	instructions.CmpRm64Imm8: {access: accesses{Read, Read}, rflags: 1},
	instructions.TestRm8R8: {access: accesses{Read, Read}, rflags: 2},
	instructions.TestRm16R16: {access: accesses{Read, Read}, rflags: 2},
	instructions.TestRm32R32: {access: accesses{Read, Read}, rflags: 2},
	instructions.TestRm64R64: {access: accesses{Read, Read}, rflags: 2},
	instructions.XchgRm8R8: {access: accesses{ReadWrite, ReadWrite}},
	instructions.XchgRm16R16: {access: accesses{ReadWrite, ReadWrite}},
	instructions.XchgRm32R32: {access: accesses{ReadWrite, ReadWrite}},
	instructions.XchgRm64R64: {access: accesses{ReadWrite, ReadWrite}},
	instructions.MovRm8R8: {access: accesses{Write, Read}},
	instructions.MovRm16R16: {access: accesses{Write, Read}},
	instructions.MovRm32R32: {access: accesses{Write, Read}},
	instructions.MovRm64R64: {access: accesses{Write, Read}},
	instructions.MovR8Rm8: {access: accesses{Write, Read}},
	instructions.MovR16Rm16: {access: accesses{Write, Read}},
	instructions.MovR32Rm32: {access: accesses{Write, Read}},
	instructions.MovR64Rm64: {access: accesses{Write, Read}},
	instructions.MovR16m16Sreg: {access: accesses{Write, Read}},
	instructions.MovR32m16Sreg: {access: accesses{Write, Read}},
	instructions.MovR64m16Sreg: {access: accesses{Write, Read}},
	instructions.LeaR16Mem: {access: accesses{Write, NoMemAccess}},
	instructions.LeaR32Mem: {access: accesses{Write, NoMemAccess}},
	instructions.LeaR64Mem: {access: accesses{Write, NoMemAccess}},
	instructions.MovSregRm16: {access: accesses{Write, Read}},
	instructions.PopRm16: {access: accesses{Write}, implicit: 1, stack: stackPop},
	instructions.PopRm32: {access: accesses{Write}, implicit: 1, stack: stackPop},
	instructions.PopRm64: {access: accesses{Write}, implicit: 1, stack: stackPop},
	instructions.Nop: {},
	instructions.Pause: {},
	instructions.XchgR16AX: {access: accesses{ReadWrite, ReadWrite}},
	instructions.XchgR32EAX: {access: accesses{ReadWrite, ReadWrite}},
	instructions.XchgR64RAX: {access: accesses{ReadWrite, ReadWrite}},
	instructions.Cbw: {implicit: 10},
	instructions.Cwde: {implicit: 11},
	instructions.Cdqe: {implicit: 12},
	instructions.Cwd: {implicit: 13},
	instructions.Cdq: {implicit: 14},
	instructions.Cqo: {implicit: 15},
	instructions.CallfPtr1616: {access: accesses{Read}, implicit: 1, flow: FlowCall, stack: stackFarCall},
	instructions.CallfPtr1632: {access: accesses{Read}, implicit: 1, flow: FlowCall, stack: stackFarCall},
	instructions.Wait: {},
	instructions.Pushf: {implicit: 1, rflags: 18, stack: stackPush},
	instructions.Pushfd: {implicit: 1, rflags: 18, stack: stackPush},
	instructions.Pushfq: {implicit: 1, rflags: 18, stack: stackPush},
	instructions.Popf: {implicit: 1, rflags: 19, stack: stackPop},
	instructions.Popfd: {implicit: 1, rflags: 19, stack: stackPop},
	instructions.Popfq: {implicit: 1, rflags: 19, stack: stackPop},
	instructions.Sahf: {implicit: 16, rflags: 20},
	instructions.Lahf: {implicit: 17, rflags: 21},
	instructions.MovALMoffs8: {access: accesses{Write, Read}},
	instructions.MovAXMoffs16: {access: accesses{Write, Read}},
	instructions.MovEAXMoffs32: {access: accesses{Write, Read}},
	instructions.MovRAXMoffs64: {access: accesses{Write, Read}},
	instructions.MovMoffs8AL: {access: accesses{Write, Read}},
	instructions.MovMoffs16AX: {access: accesses{Write, Read}},
	instructions.MovMoffs32EAX: {access: accesses{Write, Read}},
	instructions.MovMoffs64RAX: {access: accesses{Write, Read}},
	instructions.MovsbM8M8: {access: accesses{Write, Read}, implicit: 18, rflags: 9},
	instructions.MovswM16M16: {access: accesses{Write, Read}, implicit: 18, rflags: 9},
	instructions.MovsdM32M32: {access: accesses{Write, Read}, implicit: 18, rflags: 9},
	instructions.MovsqM64M64: {access: accesses{Write, Read}, implicit: 18, rflags: 9},
	instructions.CmpsbM8M8: {access: accesses{Read, Read}, implicit: 18, rflags: 22},
	instructions.CmpswM16M16: {access: accesses{Read, Read}, implicit: 18, rflags: 22},
	instructions.CmpsdM32M32: {access: accesses{Read, Read}, implicit: 18, rflags: 22},
	instructions.CmpsqM64M64: {access: accesses{Read, Read}, implicit: 18, rflags: 22},
	instructions.TestALImm8: {access: accesses{Read, Read}, rflags: 2},
	instructions.TestAXImm16: {access: accesses{Read, Read}, rflags: 2},
	instructions.TestEAXImm32: {access: accesses{Read, Read}, rflags: 2},
	instructions.TestRAXImm32: {access: accesses{Read, Read}, rflags: 2},
	instructions.StosbM8AL: {access: accesses{Write, Read}, implicit: 8, rflags: 9},
	instructions.StoswM16AX: {access: accesses{Write, Read}, implicit: 8, rflags: 9},
	instructions.StosdM32EAX: {access: accesses{Write, Read}, implicit: 8, rflags: 9},
	instructions.StosqM64RAX: {access: accesses{Write, Read}, implicit: 8, rflags: 9},
	instructions.LodsbALM8: {access: accesses{Write, Read}, implicit: 9, rflags: 9},
	instructions.LodswAXM16: {access: accesses{Write, Read}, implicit: 9, rflags: 9},
	instructions.LodsdEAXM32: {access: accesses{Write, Read}, implicit: 9, rflags: 9},
	instructions.LodsqRAXM64: {access: accesses{Write, Read}, implicit: 9, rflags: 9},
	instructions.ScasbALM8: {access: accesses{Read, Read}, implicit: 8, rflags: 22},
	instructions.ScaswAXM16: {access: accesses{Read, Read}, implicit: 8, rflags: 22},
	instructions.ScasdEAXM32: {access: accesses{Read, Read}, implicit: 8, rflags: 22},
	instructions.ScasqRAXM64: {access: accesses{Read, Read}, implicit: 8, rflags: 22},
	instructions.MovR8Imm8: {access: accesses{Write, Read}},
	instructions.MovR16Imm16: {access: accesses{Write, Read}},
	instructions.MovR32Imm32: {access: accesses{Write, Read}},
	instructions.MovR64Imm64: {access: accesses{Write, Read}},
	instructions.RolRm8Imm8: {access: accesses{ReadWrite, Read}, rflags: 23},
	instructions.RolRm16Imm8: {access: accesses{ReadWrite, Read}, rflags: 23},
	instructions.RolRm32Imm8: {access: accesses{ReadWrite, Read}, rflags: 23},
	instructions.RolRm64Imm8: {access: accesses{ReadWrite, Read}, rflags: 23},
	instructions.RolRm8One: {access: accesses{ReadWrite, Read}, rflags: 24},
	instructions.RolRm16One: {access: accesses{ReadWrite, Read}, rflags: 24},
	instructions.RolRm32One: {access: accesses{ReadWrite, Read}, rflags: 24},
	instructions.RolRm64One: {access: accesses{ReadWrite, Read}, rflags: 24},
	instructions.RolRm8CL: {access: accesses{ReadWrite, Read}, rflags: 23},
	instructions.RolRm16CL: {access: accesses{ReadWrite, Read}, rflags: 23},
	instructions.RolRm32CL: {access: accesses{ReadWrite, Read}, rflags: 23},
	instructions.RolRm64CL: {access: accesses{ReadWrite, Read}, rflags: 23},
	instructions.RorRm8Imm8: {access: accesses{ReadWrite, Read}, rflags: 23},
	instructions.RorRm16Imm8: {access: accesses{ReadWrite, Read}, rflags: 23},
	instructions.RorRm32Imm8: {access: accesses{ReadWrite, Read}, rflags: 23},
	instructions.RorRm64Imm8: {access: accesses{ReadWrite, Read}, rflags: 23},
	instructions.RorRm8One: {access: accesses{ReadWrite, Read}, rflags: 24},
	instructions.RorRm16One: {access: accesses{ReadWrite, Read}, rflags: 24},
	instructions.RorRm32One: {access: accesses{ReadWrite, Read}, rflags: 24},
	instructions.RorRm64One: {access: accesses{ReadWrite, Read}, rflags: 24},
	instructions.RorRm8CL: {access: accesses{ReadWrite, Read}, rflags: 23},
	instructions.RorRm16CL: {access: accesses{ReadWrite, Read}, rflags: 23},
	instructions.RorRm32CL: {access: accesses{ReadWrite, Read}, rflags: 23},
	instructions.RorRm64CL: {access: accesses{ReadWrite, Read}, rflags: 23},
	instructions.RclRm8Imm8: {access: accesses{ReadWrite, Read}, rflags: 25},
	instructions.RclRm16Imm8: {access: accesses{ReadWrite, Read}, rflags: 25},
	instructions.RclRm32Imm8: {access: accesses{ReadWrite, Read}, rflags: 25},
	instructions.RclRm64Imm8: {access: accesses{ReadWrite, Read}, rflags: 25},
	instructions.RclRm8One: {access: accesses{ReadWrite, Read}, rflags: 26},
	instructions.RclRm16One: {access: accesses{ReadWrite, Read}, rflags: 26},
	instructions.RclRm32One: {access: accesses{ReadWrite, Read}, rflags: 26},
	instructions.RclRm64One: {access: accesses{ReadWrite, Read}, rflags: 26},
	instructions.RclRm8CL: {access: accesses{ReadWrite, Read}, rflags: 25},
	instructions.RclRm16CL: {access: accesses{ReadWrite, Read}, rflags: 25},
	instructions.RclRm32CL: {access: accesses{ReadWrite, Read}, rflags: 25},
	instructions.RclRm64CL: {access: accesses{ReadWrite, Read}, rflags: 25},
	instructions.RcrRm8Imm8: {access: accesses{ReadWrite, Read}, rflags: 25},
	instructions.RcrRm16Imm8: {access: accesses{ReadWrite, Read}, rflags: 25},
	instructions.RcrRm32Imm8: {access: accesses{ReadWrite, Read}, rflags: 25},
	instructions.RcrRm64Imm8: {access: accesses{ReadWrite, Read}, rflags: 25},
	instructions.RcrRm8One: {access: accesses{ReadWrite, Read}, rflags: 26},
	instructions.RcrRm16One: {access: accesses{ReadWrite, Read}, rflags: 26},
	instructions.RcrRm32One: {access: accesses{ReadWrite, Read}, rflags: 26},
	instructions.RcrRm64One: {access: accesses{ReadWrite, Read}, rflags: 26},
	instructions.RcrRm8CL: {access: accesses{ReadWrite, Read}, rflags: 25},
	instructions.RcrRm16CL: {access: accesses{ReadWrite, Read}, rflags: 25},
	instructions.RcrRm32CL: {access: accesses{ReadWrite, Read}, rflags: 25},
	instructions.RcrRm64CL: {access: accesses{ReadWrite, Read}, rflags: 25},
	instructions.ShlRm8Imm8: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.ShlRm16Imm8: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.ShlRm32Imm8: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.ShlRm64Imm8: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.ShlRm8One: {access: accesses{ReadWrite, Read}, rflags: 28},
	instructions.ShlRm16One: {access: accesses{ReadWrite, Read}, rflags: 28},
	instructions.ShlRm32One: {access: accesses{ReadWrite, Read}, rflags: 28},
	instructions.ShlRm64One: {access: accesses{ReadWrite, Read}, rflags: 28},
	instructions.ShlRm8CL: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.ShlRm16CL: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.ShlRm32CL: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.ShlRm64CL: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.ShrRm8Imm8: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.ShrRm16Imm8: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.ShrRm32Imm8: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.ShrRm64Imm8: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.ShrRm8One: {access: accesses{ReadWrite, Read}, rflags: 28},
	instructions.ShrRm16One: {access: accesses{ReadWrite, Read}, rflags: 28},
	instructions.ShrRm32One: {access: accesses{ReadWrite, Read}, rflags: 28},
	instructions.ShrRm64One: {access: accesses{ReadWrite, Read}, rflags: 28},
	instructions.ShrRm8CL: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.ShrRm16CL: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.ShrRm32CL: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.ShrRm64CL: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.SalRm8Imm8: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.SalRm16Imm8: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.SalRm32Imm8: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.SalRm64Imm8: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.SalRm8One: {access: accesses{ReadWrite, Read}, rflags: 28},
	instructions.SalRm16One: {access: accesses{ReadWrite, Read}, rflags: 28},
	instructions.SalRm32One: {access: accesses{ReadWrite, Read}, rflags: 28},
	instructions.SalRm64One: {access: accesses{ReadWrite, Read}, rflags: 28},
	instructions.SalRm8CL: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.SalRm16CL: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.SalRm32CL: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.SalRm64CL: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.SarRm8Imm8: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.SarRm16Imm8: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.SarRm32Imm8: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.SarRm64Imm8: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.SarRm8One: {access: accesses{ReadWrite, Read}, rflags: 28},
	instructions.SarRm16One: {access: accesses{ReadWrite, Read}, rflags: 28},
	instructions.SarRm32One: {access: accesses{ReadWrite, Read}, rflags: 28},
	instructions.SarRm64One: {access: accesses{ReadWrite, Read}, rflags: 28},
	instructions.SarRm8CL: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.SarRm16CL: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.SarRm32CL: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.SarRm64CL: {access: accesses{ReadWrite, Read}, rflags: 27},
	instructions.RetImm16: {access: accesses{Read}, implicit: 1, flow: FlowReturn, stack: stackReturn},
	instructions.Ret: {implicit: 1, flow: FlowReturn, stack: stackReturn},
	instructions.LesR16M1616: {access: accesses{Write, Read}},
	instructions.LesR32M1632: {access: accesses{Write, Read}},
	instructions.LdsR16M1616: {access: accesses{Write, Read}},
	instructions.LdsR32M1632: {access: accesses{Write, Read}},
	instructions.MovRm8Imm8: {access: accesses{Write, Read}},
	instructions.XabortImm8: {access: accesses{Read}, implicit: 19, flow: FlowXbeginXabortXend},
	instructions.MovRm16Imm16: {access: accesses{Write, Read}},
	instructions.MovRm32Imm32: {access: accesses{Write, Read}},
	instructions.MovRm64Imm32: {access: accesses{Write, Read}},
	instructions.XbeginRel16: {access: accesses{Read}, implicit: 20, flow: FlowXbeginXabortXend},
	instructions.XbeginRel32Op32: {access: accesses{Read}, implicit: 20, flow: FlowXbeginXabortXend},
	instructions.XbeginRel32Op64: {access: accesses{Read}, implicit: 20, flow: FlowXbeginXabortXend},
	instructions.EnterImm16Imm8: {access: accesses{Read, Read}, implicit: 21, stack: stackEnter},
	instructions.Leave: {implicit: 21, stack: stackLeave},
	instructions.RetfImm16: {access: accesses{Read}, implicit: 1, flow: FlowReturn, stack: stackFarReturn},
	instructions.Retf: {implicit: 1, flow: FlowReturn, stack: stackFarReturn},
	instructions.Int3: {implicit: 1, rflags: 29, flow: FlowInterrupt},
	instructions.IntImm8: {access: accesses{Read}, implicit: 1, rflags: 29, flow: FlowInterrupt},
	instructions.Into: {implicit: 1, rflags: 10, flow: FlowInterrupt},
	instructions.Iret: {implicit: 1, rflags: 19, flow: FlowReturn, stack: stackInterruptReturn},
	instructions.Iretd: {implicit: 1, rflags: 19, flow: FlowReturn, stack: stackInterruptReturn},
	instructions.Iretq: {implicit: 1, rflags: 19, flow: FlowReturn, stack: stackInterruptReturn},
	instructions.AamImm8: {access: accesses{Read}, implicit: 3, rflags: 30},
	instructions.AadImm8: {access: accesses{Read}, implicit: 3, rflags: 30},
	instructions.Salc: {implicit: 22, rflags: 11},
	instructions.Xlatb: {implicit: 23},
	instructions.LoopneRel8Op16: {access: accesses{Read}, implicit: 24, rflags: 12, flow: FlowConditionalBranch, condition: ConditionNE},
	instructions.LoopneRel8Op32: {access: accesses{Read}, implicit: 24, rflags: 12, flow: FlowConditionalBranch, condition: ConditionNE},
	instructions.LoopneRel8Op64: {access: accesses{Read}, implicit: 24, rflags: 12, flow: FlowConditionalBranch, condition: ConditionNE},
	instructions.LoopeRel8Op16: {access: accesses{Read}, implicit: 24, rflags: 12, flow: FlowConditionalBranch, condition: ConditionE},
	instructions.LoopeRel8Op32: {access: accesses{Read}, implicit: 24, rflags: 12, flow: FlowConditionalBranch, condition: ConditionE},
	instructions.LoopeRel8Op64: {access: accesses{Read}, implicit: 24, rflags: 12, flow: FlowConditionalBranch, condition: ConditionE},
	instructions.LoopRel8Op16: {access: accesses{Read}, implicit: 24, flow: FlowConditionalBranch},
	instructions.LoopRel8Op32: {access: accesses{Read}, implicit: 24, flow: FlowConditionalBranch},
	instructions.LoopRel8Op64: {access: accesses{Read}, implicit: 24, flow: FlowConditionalBranch},
	instructions.JcxzRel8Op16: {access: accesses{Read}, implicit: 25, flow: FlowConditionalBranch},
	instructions.JecxzRel8Op32: {access: accesses{Read}, implicit: 25, flow: FlowConditionalBranch},
	instructions.JrcxzRel8Op64: {access: accesses{Read}, implicit: 25, flow: FlowConditionalBranch},
	instructions.InALImm8: {access: accesses{Write, Read}},
	instructions.InAXImm8: {access: accesses{Write, Read}},
	instructions.InEAXImm8: {access: accesses{Write, Read}},
	instructions.OutImm8AL: {access: accesses{Read, Read}},
	instructions.OutImm8AX: {access: accesses{Read, Read}},
	instructions.OutImm8EAX: {access: accesses{Read, Read}},
	instructions.CallRel16: {access: accesses{Read}, implicit: 1, flow: FlowCall, stack: stackPush},
	instructions.CallRel32Op32: {access: accesses{Read}, implicit: 1, flow: FlowCall, stack: stackPush},
	instructions.CallRel32Op64: {access: accesses{Read}, implicit: 1, flow: FlowCall, stack: stackPush},
	instructions.JmpRel16: {access: accesses{Read}, flow: FlowUnconditionalBranch},
	instructions.JmpRel32Op32: {access: accesses{Read}, flow: FlowUnconditionalBranch},
	instructions.JmpRel32Op64: {access: accesses{Read}, flow: FlowUnconditionalBranch},
	instructions.JmpfPtr1616: {access: accesses{Read}, flow: FlowUnconditionalBranch},
	instructions.JmpfPtr1632: {access: accesses{Read}, flow: FlowUnconditionalBranch},
	instructions.JmpRel8Op16: {access: accesses{Read}, flow: FlowUnconditionalBranch},
	instructions.JmpRel8Op32: {access: accesses{Read}, flow: FlowUnconditionalBranch},
	instructions.JmpRel8Op64: {access: accesses{Read}, flow: FlowUnconditionalBranch},
	instructions.InALDX: {access: accesses{Write, Read}},
	instructions.InAXDX: {access: accesses{Write, Read}},
	instructions.InEAXDX: {access: accesses{Write, Read}},
	instructions.OutDXAL: {access: accesses{Read, Read}},
	instructions.OutDXAX: {access: accesses{Read, Read}},
	instructions.OutDXEAX: {access: accesses{Read, Read}},
	instructions.Int1: {implicit: 1, rflags: 29, flow: FlowInterrupt},
	instructions.Hlt: {privileged: true},
	instructions.Cmc: {rflags: 31},
	instructions.TestRm8Imm8: {access: accesses{Read, Read}, rflags: 2},
	instructions.TestRm8Imm8F6r1: {access: accesses{Read, Read}, rflags: 2},
	instructions.TestRm16Imm16: {access: accesses{Read, Read}, rflags: 2},
	instructions.TestRm32Imm32: {access: accesses{Read, Read}, rflags: 2},
	instructions.TestRm64Imm32: {access: accesses{Read, Read}, rflags: 2},
	instructions.TestRm16Imm16F7r1: {access: accesses{Read, Read}, rflags: 2},
	instructions.TestRm32Imm32F7r1: {access: accesses{Read, Read}, rflags: 2},
	instructions.TestRm64Imm32F7r1: {access: accesses{Read, Read}, rflags: 2},
	instructions.NotRm8: {access: accesses{ReadWrite}},
	instructions.NotRm16: {access: accesses{ReadWrite}},
	instructions.NotRm32: {access: accesses{ReadWrite}},
	instructions.NotRm64: {access: accesses{ReadWrite}},
	instructions.NegRm8: {access: accesses{ReadWrite}, rflags: 1},
	instructions.NegRm16: {access: accesses{ReadWrite}, rflags: 1},
	instructions.NegRm32: {access: accesses{ReadWrite}, rflags: 1},
	instructions.NegRm64: {access: accesses{ReadWrite}, rflags: 1},
	instructions.MulRm8: {access: accesses{Read}, implicit: 10, rflags: 8},
	instructions.MulRm16: {access: accesses{Read}, implicit: 26, rflags: 8},
	instructions.MulRm32: {access: accesses{Read}, implicit: 27, rflags: 8},
	instructions.MulRm64: {access: accesses{Read}, implicit: 28, rflags: 8},
	instructions.ImulRm8: {access: accesses{Read}, implicit: 10, rflags: 8},
	instructions.ImulRm16: {access: accesses{Read}, implicit: 26, rflags: 8},
	instructions.ImulRm32: {access: accesses{Read}, implicit: 27, rflags: 8},
	instructions.ImulRm64: {access: accesses{Read}, implicit: 28, rflags: 8},
	instructions.DivRm8: {access: accesses{Read}, implicit: 3, rflags: 32},
	instructions.DivRm16: {access: accesses{Read}, implicit: 29, rflags: 32},
	instructions.DivRm32: {access: accesses{Read}, implicit: 30, rflags: 32},
	instructions.DivRm64: {access: accesses{Read}, implicit: 31, rflags: 32},
	instructions.IdivRm8: {access: accesses{Read}, implicit: 3, rflags: 32},
	instructions.IdivRm16: {access: accesses{Read}, implicit: 29, rflags: 32},
	instructions.IdivRm32: {access: accesses{Read}, implicit: 30, rflags: 32},
	instructions.IdivRm64: {access: accesses{Read}, implicit: 31, rflags: 32},
	instructions.Clc: {rflags: 33},
	instructions.Stc: {rflags: 34},
	instructions.Cli: {rflags: 29},
	instructions.Sti: {rflags: 35},
	instructions.Cld: {rflags: 36},
	instructions.Std: {rflags: 37},
	instructions.IncRm8: {access: accesses{ReadWrite}, rflags: 6},
	instructions.DecRm8: {access: accesses{ReadWrite}, rflags: 6},
	instructions.IncRm16: {access: accesses{ReadWrite}, rflags: 6},
	instructions.IncRm32: {access: accesses{ReadWrite}, rflags: 6},
	instructions.IncRm64: {access: accesses{ReadWrite}, rflags: 6},
	instructions.DecRm16: {access: accesses{ReadWrite}, rflags: 6},
	instructions.DecRm32: {access: accesses{ReadWrite}, rflags: 6},
	instructions.DecRm64: {access: accesses{ReadWrite}, rflags: 6},
	instructions.CallRm16: {access: accesses{Read}, implicit: 1, flow: FlowIndirectCall, stack: stackPush},
	instructions.CallRm32: {access: accesses{Read}, implicit: 1, flow: FlowIndirectCall, stack: stackPush},
	instructions.CallRm64: {access: accesses{Read}, implicit: 1, flow: FlowIndirectCall, stack: stackPush},
	instructions.CallfM1616: {access: accesses{Read}, implicit: 1, flow: FlowIndirectCall, stack: stackFarCall},
	instructions.CallfM1632: {access: accesses{Read}, implicit: 1, flow: FlowIndirectCall, stack: stackFarCall},
	instructions.CallfM1664: {access: accesses{Read}, implicit: 1, flow: FlowIndirectCall, stack: stackFarCall},
	instructions.JmpRm16: {access: accesses{Read}, flow: FlowIndirectBranch},
	instructions.JmpRm32: {access: accesses{Read}, flow: FlowIndirectBranch},
	instructions.JmpRm64: {access: accesses{Read}, flow: FlowIndirectBranch},
	instructions.JmpfM1616: {access: accesses{Read}, flow: FlowIndirectBranch},
	instructions.JmpfM1632: {access: accesses{Read}, flow: FlowIndirectBranch},
	instructions.JmpfM1664: {access: accesses{Read}, flow: FlowIndirectBranch},
	instructions.PushRm16: {access: accesses{Read}, implicit: 1, stack: stackPush},
	instructions.PushRm32: {access: accesses{Read}, implicit: 1, stack: stackPush},
	instructions.PushRm64: {access: accesses{Read}, implicit: 1, stack: stackPush},
	instructions.FaddM32fp: {access: accesses{Read}, implicit: 32},
	instructions.FaddM64fp: {access: accesses{Read}, implicit: 32},
	instructions.FaddSt0Sti: {access: accesses{ReadWrite, Read}},
	instructions.FmulM32fp: {access: accesses{Read}, implicit: 32},
	instructions.FmulM64fp: {access: accesses{Read}, implicit: 32},
	instructions.FmulSt0Sti: {access: accesses{ReadWrite, Read}},
	instructions.FcomM32fp: {access: accesses{Read}, implicit: 33},
	instructions.FcomM64fp: {access: accesses{Read}, implicit: 33},
	instructions.FcomSt0Sti: {access: accesses{Read, Read}},
	instructions.FcompM32fp: {access: accesses{Read}, implicit: 33},
	instructions.FcompM64fp: {access: accesses{Read}, implicit: 33},
	instructions.FcompSt0Sti: {access: accesses{Read, Read}},
	instructions.FsubM32fp: {access: accesses{Read}, implicit: 32},
	instructions.FsubM64fp: {access: accesses{Read}, implicit: 32},
	instructions.FsubSt0Sti: {access: accesses{ReadWrite, Read}},
	instructions.FsubrM32fp: {access: accesses{Read}, implicit: 32},
	instructions.FsubrM64fp: {access: accesses{Read}, implicit: 32},
	instructions.FsubrSt0Sti: {access: accesses{ReadWrite, Read}},
	instructions.FdivM32fp: {access: accesses{Read}, implicit: 32},
	instructions.FdivM64fp: {access: accesses{Read}, implicit: 32},
	instructions.FdivSt0Sti: {access: accesses{ReadWrite, Read}},
	instructions.FdivrM32fp: {access: accesses{Read}, implicit: 32},
	instructions.FdivrM64fp: {access: accesses{Read}, implicit: 32},
	instructions.FdivrSt0Sti: {access: accesses{ReadWrite, Read}},
	instructions.FiaddM32int: {access: accesses{Read}, implicit: 32},
	instructions.FiaddM16int: {access: accesses{Read}, implicit: 32},
	instructions.FimulM32int: {access: accesses{Read}, implicit: 32},
	instructions.FimulM16int: {access: accesses{Read}, implicit: 32},
	instructions.FicomM32int: {access: accesses{Read}, implicit: 33},
	instructions.FicomM16int: {access: accesses{Read}, implicit: 33},
	instructions.FicompM32int: {access: accesses{Read}, implicit: 33},
	instructions.FicompM16int: {access: accesses{Read}, implicit: 33},
	instructions.FisubM32int: {access: accesses{Read}, implicit: 32},
	instructions.FisubM16int: {access: accesses{Read}, implicit: 32},
	instructions.FisubrM32int: {access: accesses{Read}, implicit: 32},
	instructions.FisubrM16int: {access: accesses{Read}, implicit: 32},
	instructions.FidivM32int: {access: accesses{Read}, implicit: 32},
	instructions.FidivM16int: {access: accesses{Read}, implicit: 32},
	instructions.FidivrM32int: {access: accesses{Read}, implicit: 32},
	instructions.FidivrM16int: {access: accesses{Read}, implicit: 32},
	instructions.FaddStiSt0: {access: accesses{ReadWrite, Read}},
	instructions.FmulStiSt0: {access: accesses{ReadWrite, Read}},
	instructions.FsubrStiSt0: {access: accesses{ReadWrite, Read}},
	instructions.FsubStiSt0: {access: accesses{ReadWrite, Read}},
	instructions.FdivrStiSt0: {access: accesses{ReadWrite, Read}},
	instructions.FdivStiSt0: {access: accesses{ReadWrite, Read}},
	instructions.FaddpStiSt0: {access: accesses{ReadWrite, Read}},
	instructions.FmulpStiSt0: {access: accesses{ReadWrite, Read}},
	instructions.FsubrpStiSt0: {access: accesses{ReadWrite, Read}},
	instructions.FsubpStiSt0: {access: accesses{ReadWrite, Read}},
	instructions.FdivrpStiSt0: {access: accesses{ReadWrite, Read}},
	instructions.FdivpStiSt0: {access: accesses{ReadWrite, Read}},
	instructions.Fcompp: {implicit: 33},
	instructions.FldM32fp: {access: accesses{Read}, implicit: 34},
	instructions.FstM32fp: {access: accesses{Write}, implicit: 33},
	instructions.FstpM32fp: {access: accesses{Write}, implicit: 33},
	instructions.FldenvM14byte: {access: accesses{Read}},
	instructions.FldenvM28byte: {access: accesses{Read}},
	instructions.FldcwM16: {access: accesses{Read}},
	instructions.FnstenvM14byte: {access: accesses{Write}},
	instructions.FnstenvM28byte: {access: accesses{Write}},
	instructions.FnstcwM16: {access: accesses{Write}},
	instructions.FldSti: {access: accesses{Read}, implicit: 34},
	instructions.FxchSti: {access: accesses{ReadWrite}, implicit: 32},
	instructions.Fnop: {},
	instructions.Fchs: {implicit: 32},
	instructions.Fabs: {implicit: 32},
	instructions.Ftst: {implicit: 33},
	instructions.Fxam: {implicit: 33},
	instructions.Fld1: {implicit: 34},
	instructions.Fldl2t: {implicit: 34},
	instructions.Fldl2e: {implicit: 34},
	instructions.Fldpi: {implicit: 34},
	instructions.Fldlg2: {implicit: 34},
	instructions.Fldln2: {implicit: 34},
	instructions.Fldz: {implicit: 34},
	instructions.F2xm1: {implicit: 32},
	instructions.Fyl2x: {implicit: 35},
	instructions.Fptan: {implicit: 32},
	instructions.Fpatan: {implicit: 35},
	instructions.Fxtract: {implicit: 32},
	instructions.Fprem1: {implicit: 35},
	instructions.Fdecstp: {},
	instructions.Fincstp: {},
	instructions.Fprem: {implicit: 35},
	instructions.Fyl2xp1: {implicit: 35},
	instructions.Fsqrt: {implicit: 32},
	instructions.Fsincos: {implicit: 32},
	instructions.Frndint: {implicit: 32},
	instructions.Fscale: {implicit: 35},
	instructions.Fsin: {implicit: 32},
	instructions.Fcos: {implicit: 32},
	instructions.FcmovbSt0Sti: {access: accesses{CondWrite, Read}, rflags: 11, condition: ConditionB},
	instructions.FcmoveSt0Sti: {access: accesses{CondWrite, Read}, rflags: 12, condition: ConditionE},
	instructions.FcmovbeSt0Sti: {access: accesses{CondWrite, Read}, rflags: 13, condition: ConditionBE},
	instructions.FcmovuSt0Sti: {access: accesses{CondWrite, Read}, rflags: 15, condition: ConditionP},
	instructions.Fucompp: {implicit: 33},
	instructions.FildM32int: {access: accesses{Read}, implicit: 34},
	instructions.FisttpM32int: {access: accesses{Write}, implicit: 33},
	instructions.FistM32int: {access: accesses{Write}, implicit: 33},
	instructions.FistpM32int: {access: accesses{Write}, implicit: 33},
	instructions.FldM80fp: {access: accesses{Read}, implicit: 34},
	instructions.FstpM80fp: {access: accesses{Write}, implicit: 33},
	instructions.FcmovnbSt0Sti: {access: accesses{CondWrite, Read}, rflags: 11, condition: ConditionAE},
	instructions.FcmovneSt0Sti: {access: accesses{CondWrite, Read}, rflags: 12, condition: ConditionNE},
	instructions.FcmovnbeSt0Sti: {access: accesses{CondWrite, Read}, rflags: 13, condition: ConditionA},
	instructions.FcmovnuSt0Sti: {access: accesses{CondWrite, Read}, rflags: 15, condition: ConditionNP},
	instructions.Fnclex: {},
	instructions.Fninit: {},
	instructions.FucomiSt0Sti: {access: accesses{Read, Read}, rflags: 38},
	instructions.FcomiSt0Sti: {access: accesses{Read, Read}, rflags: 38},
	instructions.FldM64fp: {access: accesses{Read}, implicit: 34},
	instructions.FisttpM64int: {access: accesses{Write}, implicit: 33},
	instructions.FstM64fp: {access: accesses{Write}, implicit: 33},
	instructions.FstpM64fp: {access: accesses{Write}, implicit: 33},
	instructions.FrstorM94byte: {access: accesses{Read}},
	instructions.FrstorM108byte: {access: accesses{Read}},
	instructions.FnsaveM94byte: {access: accesses{Write}},
	instructions.FnsaveM108byte: {access: accesses{Write}},
	instructions.FnstswM16: {access: accesses{Write}},
	instructions.FfreeSti: {access: accesses{Write}},
	instructions.FstSti: {access: accesses{Write}, implicit: 33},
	instructions.FstpSti: {access: accesses{Write}, implicit: 33},
	instructions.FucomSti: {access: accesses{Read}, implicit: 33},
	instructions.FucompSti: {access: accesses{Read}, implicit: 33},
	instructions.FildM16int: {access: accesses{Read}, implicit: 34},
	instructions.FisttpM16int: {access: accesses{Write}, implicit: 33},
	instructions.FistM16int: {access: accesses{Write}, implicit: 33},
	instructions.FistpM16int: {access: accesses{Write}, implicit: 33},
	instructions.FbldM80bcd: {access: accesses{Read}, implicit: 34},
	instructions.FildM64int: {access: accesses{Read}, implicit: 34},
	instructions.FbstpM80bcd: {access: accesses{Write}, implicit: 33},
	instructions.FistpM64int: {access: accesses{Write}, implicit: 33},
	instructions.FfreepSti: {access: accesses{Write}},
	instructions.FnstswAX: {access: accesses{Write}},
	instructions.FucomipSt0Sti: {access: accesses{Read, Read}, rflags: 38},
	instructions.FcomipSt0Sti: {access: accesses{Read, Read}, rflags: 38},
	instructions.SldtR16m16: {access: accesses{Write}},
	instructions.SldtR32m16: {access: accesses{Write}},
	instructions.SldtR64m16: {access: accesses{Write}},
	instructions.StrR16m16: {access: accesses{Write}},
	instructions.StrR32m16: {access: accesses{Write}},
	instructions.StrR64m16: {access: accesses{Write}},
	instructions.LldtRm16: {access: accesses{Read}, privileged: true},
	instructions.LtrRm16: {access: accesses{Read}, privileged: true},
	instructions.VerrRm16: {access: accesses{Read}, rflags: 7},
	instructions.VerwRm16: {access: accesses{Read}, rflags: 7},
	instructions.SgdtM1632: {access: accesses{Write}},
	instructions.SgdtM1664: {access: accesses{Write}},
	instructions.SidtM1632: {access: accesses{Write}},
	instructions.SidtM1664: {access: accesses{Write}},
	instructions.LgdtM1632: {access: accesses{Read}, privileged: true},
	instructions.LgdtM1664: {access: accesses{Read}, privileged: true},
	instructions.LidtM1632: {access: accesses{Read}, privileged: true},
	instructions.LidtM1664: {access: accesses{Read}, privileged: true},
	instructions.InvlpgM8: {access: accesses{NoMemAccess}, privileged: true},
	instructions.SmswR16m16: {access: accesses{Write}},
	instructions.SmswR32m16: {access: accesses{Write}},
	instructions.SmswR64m16: {access: accesses{Write}},
	instructions.LmswRm16: {access: accesses{Read}, privileged: true},
	instructions.Vmcall: {},
	instructions.Vmlaunch: {},
	instructions.Vmresume: {},
	instructions.Vmxoff: {},
	instructions.Monitor: {implicit: 36},
	instructions.Mwait: {implicit: 37},
	instructions.Clac: {rflags: 39},
	instructions.Stac: {rflags: 40},
	instructions.Xgetbv: {implicit: 38},
	instructions.Xsetbv: {implicit: 39},
	instructions.Xend: {flow: FlowXbeginXabortXend},
	instructions.Xtest: {rflags: 41},
	instructions.Rdtscp: {implicit: 40},
	instructions.Swapgs: {privileged: true},
	instructions.LarR16Rm16: {access: accesses{Write, Read}, rflags: 7},
	instructions.LarR32Rm16: {access: accesses{Write, Read}, rflags: 7},
	instructions.LarR64Rm16: {access: accesses{Write, Read}, rflags: 7},
	instructions.LslR16Rm16: {access: accesses{Write, Read}, rflags: 7},
	instructions.LslR32Rm16: {access: accesses{Write, Read}, rflags: 7},
	instructions.LslR64Rm16: {access: accesses{Write, Read}, rflags: 7},
	instructions.Syscall: {implicit: 41, rflags: 19, flow: FlowCall},
	instructions.Clts: {privileged: true},
	instructions.Sysret: {implicit: 42, rflags: 19, flow: FlowReturn, privileged: true},
	instructions.Sysretq: {implicit: 42, rflags: 19, flow: FlowReturn, privileged: true},
	instructions.Invd: {privileged: true},
	instructions.Wbinvd: {privileged: true},
	instructions.Ud2: {flow: FlowException},
	instructions.PrefetchwM8: {access: accesses{NoMemAccess}},
	instructions.MovupsXmmXmmm128: {access: accesses{Write, Read}},
	instructions.MovupdXmmXmmm128: {access: accesses{Write, Read}},
	instructions.MovssXmmXmmm32: {access: accesses{ReadWrite, Read}},
	instructions.MovsdXmmXmmm64: {access: accesses{ReadWrite, Read}},
	instructions.MovupsXmmm128Xmm: {access: accesses{Write, Read}},
	instructions.MovupdXmmm128Xmm: {access: accesses{Write, Read}},
	instructions.MovssXmmm32Xmm: {access: accesses{ReadWrite, Read}},
	instructions.MovsdXmmm64Xmm: {access: accesses{ReadWrite, Read}},
	instructions.MovlpsXmmM64: {access: accesses{ReadWrite, Read}},
	instructions.MovhlpsXmmXmm: {access: accesses{ReadWrite, Read}},
	instructions.MovlpdXmmM64: {access: accesses{ReadWrite, Read}},
	instructions.MovsldupXmmXmmm128: {access: accesses{Write, Read}},
	instructions.MovddupXmmXmmm64: {access: accesses{Write, Read}},
	instructions.MovlpsM64Xmm: {access: accesses{Write, Read}},
	instructions.MovlpdM64Xmm: {access: accesses{Write, Read}},
	instructions.UnpcklpsXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.UnpcklpdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.UnpckhpsXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.UnpckhpdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.MovhpsXmmM64: {access: accesses{ReadWrite, Read}},
	instructions.MovlhpsXmmXmm: {access: accesses{ReadWrite, Read}},
	instructions.MovhpdXmmM64: {access: accesses{ReadWrite, Read}},
	instructions.MovshdupXmmXmmm128: {access: accesses{Write, Read}},
	instructions.MovhpsM64Xmm: {access: accesses{Write, Read}},
	instructions.MovhpdM64Xmm: {access: accesses{Write, Read}},
	instructions.PrefetchntaM8: {access: accesses{NoMemAccess}},
	instructions.Prefetcht0M8: {access: accesses{NoMemAccess}},
	instructions.Prefetcht1M8: {access: accesses{NoMemAccess}},
	instructions.Prefetcht2M8: {access: accesses{NoMemAccess}},
	instructions.Endbr64: {},
	instructions.Endbr32: {},
	instructions.NopRm16: {access: accesses{NoMemAccess}},
	instructions.NopRm32: {access: accesses{NoMemAccess}},
	instructions.NopRm64: {access: accesses{NoMemAccess}},
	instructions.MovR32Cr: {access: accesses{Write, Read}, privileged: true},
	instructions.MovR64Cr: {access: accesses{Write, Read}, privileged: true},
	instructions.MovR32Dr: {access: accesses{Write, Read}, privileged: true},
	instructions.MovR64Dr: {access: accesses{Write, Read}, privileged: true},
	instructions.MovCrR32: {access: accesses{Write, Read}, privileged: true},
	instructions.MovCrR64: {access: accesses{Write, Read}, privileged: true},
	instructions.MovDrR32: {access: accesses{Write, Read}, privileged: true},
	instructions.MovDrR64: {access: accesses{Write, Read}, privileged: true},
	instructions.MovapsXmmXmmm128: {access: accesses{Write, Read}},
	instructions.MovapdXmmXmmm128: {access: accesses{Write, Read}},
	instructions.MovapsXmmm128Xmm: {access: accesses{Write, Read}},
	instructions.MovapdXmmm128Xmm: {access: accesses{Write, Read}},
	instructions.Cvtpi2psXmmMmm64: {access: accesses{Write, Read}},
	instructions.Cvtpi2pdXmmMmm64: {access: accesses{Write, Read}},
	instructions.Cvtsi2ssXmmRm32: {access: accesses{ReadWrite, Read}},
	instructions.Cvtsi2ssXmmRm64: {access: accesses{ReadWrite, Read}},
	instructions.Cvtsi2sdXmmRm32: {access: accesses{ReadWrite, Read}},
	instructions.Cvtsi2sdXmmRm64: {access: accesses{ReadWrite, Read}},
	instructions.MovntpsM128Xmm: {access: accesses{Write, Read}},
	instructions.MovntpdM128Xmm: {access: accesses{Write, Read}},
	instructions.Cvttps2piMmXmmm64: {access: accesses{Write, Read}},
	instructions.Cvttpd2piMmXmmm128: {access: accesses{Write, Read}},
	instructions.Cvttss2siR32Xmmm32: {access: accesses{Write, Read}},
	instructions.Cvttss2siR64Xmmm32: {access: accesses{Write, Read}},
	instructions.Cvttsd2siR32Xmmm64: {access: accesses{Write, Read}},
	instructions.Cvttsd2siR64Xmmm64: {access: accesses{Write, Read}},
	instructions.Cvtps2piMmXmmm64: {access: accesses{Write, Read}},
	instructions.Cvtpd2piMmXmmm128: {access: accesses{Write, Read}},
	instructions.Cvtss2siR32Xmmm32: {access: accesses{Write, Read}},
	instructions.Cvtss2siR64Xmmm32: {access: accesses{Write, Read}},
	instructions.Cvtsd2siR32Xmmm64: {access: accesses{Write, Read}},
	instructions.Cvtsd2siR64Xmmm64: {access: accesses{Write, Read}},
	instructions.UcomissXmmXmmm32: {access: accesses{Read, Read}, rflags: 38},
	instructions.UcomisdXmmXmmm64: {access: accesses{Read, Read}, rflags: 38},
	instructions.ComissXmmXmmm32: {access: accesses{Read, Read}, rflags: 38},
	instructions.ComisdXmmXmmm64: {access: accesses{Read, Read}, rflags: 38},
	instructions.Wrmsr: {implicit: 39, privileged: true},
	instructions.Rdtsc: {implicit: 43},
	instructions.Rdmsr: {implicit: 38, privileged: true},
	instructions.Rdpmc: {implicit: 38},
	instructions.Sysenter: {rflags: 29, flow: FlowCall},
	instructions.Sysexit: {rflags: 29, flow: FlowReturn, privileged: true},
	instructions.Getsec: {},
	instructions.CmovoR16Rm16: {access: accesses{CondWrite, Read}, rflags: 10, condition: ConditionO},
	instructions.CmovoR32Rm32: {access: accesses{CondWrite, Read}, rflags: 10, condition: ConditionO},
	instructions.CmovoR64Rm64: {access: accesses{CondWrite, Read}, rflags: 10, condition: ConditionO},
	instructions.JoRel16: {access: accesses{Read}, rflags: 10, flow: FlowConditionalBranch, condition: ConditionO},
	instructions.JoRel32Op32: {access: accesses{Read}, rflags: 10, flow: FlowConditionalBranch, condition: ConditionO},
	instructions.JoRel32Op64: {access: accesses{Read}, rflags: 10, flow: FlowConditionalBranch, condition: ConditionO},
	instructions.SetoRm8: {access: accesses{Write}, rflags: 10, condition: ConditionO},
	instructions.CmovnoR16Rm16: {access: accesses{CondWrite, Read}, rflags: 10, condition: ConditionNO},
	instructions.CmovnoR32Rm32: {access: accesses{CondWrite, Read}, rflags: 10, condition: ConditionNO},
	instructions.CmovnoR64Rm64: {access: accesses{CondWrite, Read}, rflags: 10, condition: ConditionNO},
	instructions.JnoRel16: {access: accesses{Read}, rflags: 10, flow: FlowConditionalBranch, condition: ConditionNO},
	instructions.JnoRel32Op32: {access: accesses{Read}, rflags: 10, flow: FlowConditionalBranch, condition: ConditionNO},
	instructions.JnoRel32Op64: {access: accesses{Read}, rflags: 10, flow: FlowConditionalBranch, condition: ConditionNO},
	instructions.SetnoRm8: {access: accesses{Write}, rflags: 10, condition: ConditionNO},
	instructions.CmovbR16Rm16: {access: accesses{CondWrite, Read}, rflags: 11, condition: ConditionB},
	instructions.CmovbR32Rm32: {access: accesses{CondWrite, Read}, rflags: 11, condition: ConditionB},
	instructions.CmovbR64Rm64: {access: accesses{CondWrite, Read}, rflags: 11, condition: ConditionB},
	instructions.JbRel16: {access: accesses{Read}, rflags: 11, flow: FlowConditionalBranch, condition: ConditionB},
	instructions.JbRel32Op32: {access: accesses{Read}, rflags: 11, flow: FlowConditionalBranch, condition: ConditionB},
	instructions.JbRel32Op64: {access: accesses{Read}, rflags: 11, flow: FlowConditionalBranch, condition: ConditionB},
	instructions.SetbRm8: {access: accesses{Write}, rflags: 11, condition: ConditionB},
	instructions.CmovaeR16Rm16: {access: accesses{CondWrite, Read}, rflags: 11, condition: ConditionAE},
	instructions.CmovaeR32Rm32: {access: accesses{CondWrite, Read}, rflags: 11, condition: ConditionAE},
	instructions.CmovaeR64Rm64: {access: accesses{CondWrite, Read}, rflags: 11, condition: ConditionAE},
	instructions.JaeRel16: {access: accesses{Read}, rflags: 11, flow: FlowConditionalBranch, condition: ConditionAE},
	instructions.JaeRel32Op32: {access: accesses{Read}, rflags: 11, flow: FlowConditionalBranch, condition: ConditionAE},
	instructions.JaeRel32Op64: {access: accesses{Read}, rflags: 11, flow: FlowConditionalBranch, condition: ConditionAE},
	instructions.SetaeRm8: {access: accesses{Write}, rflags: 11, condition: ConditionAE},
	instructions.CmoveR16Rm16: {access: accesses{CondWrite, Read}, rflags: 12, condition: ConditionE},
	instructions.CmoveR32Rm32: {access: accesses{CondWrite, Read}, rflags: 12, condition: ConditionE},
	instructions.CmoveR64Rm64: {access: accesses{CondWrite, Read}, rflags: 12, condition: ConditionE},
	instructions.JeRel16: {access: accesses{Read}, rflags: 12, flow: FlowConditionalBranch, condition: ConditionE},
	instructions.JeRel32Op32: {access: accesses{Read}, rflags: 12, flow: FlowConditionalBranch, condition: ConditionE},
	instructions.JeRel32Op64: {access: accesses{Read}, rflags: 12, flow: FlowConditionalBranch, condition: ConditionE},
	instructions.SeteRm8: {access: accesses{Write}, rflags: 12, condition: ConditionE},
	instructions.CmovneR16Rm16: {access: accesses{CondWrite, Read}, rflags: 12, condition: ConditionNE},
	instructions.CmovneR32Rm32: {access: accesses{CondWrite, Read}, rflags: 12, condition: ConditionNE},
	instructions.CmovneR64Rm64: {access: accesses{CondWrite, Read}, rflags: 12, condition: ConditionNE},
	instructions.JneRel16: {access: accesses{Read}, rflags: 12, flow: FlowConditionalBranch, condition: ConditionNE},
	instructions.JneRel32Op32: {access: accesses{Read}, rflags: 12, flow: FlowConditionalBranch, condition: ConditionNE},
	instructions.JneRel32Op64: {access: accesses{Read}, rflags: 12, flow: FlowConditionalBranch, condition: ConditionNE},
	instructions.SetneRm8: {access: accesses{Write}, rflags: 12, condition: ConditionNE},
	instructions.CmovbeR16Rm16: {access: accesses{CondWrite, Read}, rflags: 13, condition: ConditionBE},
	instructions.CmovbeR32Rm32: {access: accesses{CondWrite, Read}, rflags: 13, condition: ConditionBE},
	instructions.CmovbeR64Rm64: {access: accesses{CondWrite, Read}, rflags: 13, condition: ConditionBE},
	instructions.JbeRel16: {access: accesses{Read}, rflags: 13, flow: FlowConditionalBranch, condition: ConditionBE},
	instructions.JbeRel32Op32: {access: accesses{Read}, rflags: 13, flow: FlowConditionalBranch, condition: ConditionBE},
	instructions.JbeRel32Op64: {access: accesses{Read}, rflags: 13, flow: FlowConditionalBranch, condition: ConditionBE},
	instructions.SetbeRm8: {access: accesses{Write}, rflags: 13, condition: ConditionBE},
	instructions.CmovaR16Rm16: {access: accesses{CondWrite, Read}, rflags: 13, condition: ConditionA},
	instructions.CmovaR32Rm32: {access: accesses{CondWrite, Read}, rflags: 13, condition: ConditionA},
	instructions.CmovaR64Rm64: {access: accesses{CondWrite, Read}, rflags: 13, condition: ConditionA},
	instructions.JaRel16: {access: accesses{Read}, rflags: 13, flow: FlowConditionalBranch, condition: ConditionA},
	instructions.JaRel32Op32: {access: accesses{Read}, rflags: 13, flow: FlowConditionalBranch, condition: ConditionA},
	instructions.JaRel32Op64: {access: accesses{Read}, rflags: 13, flow: FlowConditionalBranch, condition: ConditionA},
	instructions.SetaRm8: {access: accesses{Write}, rflags: 13, condition: ConditionA},
	instructions.CmovsR16Rm16: {access: accesses{CondWrite, Read}, rflags: 14, condition: ConditionS},
	instructions.CmovsR32Rm32: {access: accesses{CondWrite, Read}, rflags: 14, condition: ConditionS},
	instructions.CmovsR64Rm64: {access: accesses{CondWrite, Read}, rflags: 14, condition: ConditionS},
	instructions.JsRel16: {access: accesses{Read}, rflags: 14, flow: FlowConditionalBranch, condition: ConditionS},
	instructions.JsRel32Op32: {access: accesses{Read}, rflags: 14, flow: FlowConditionalBranch, condition: ConditionS},
	instructions.JsRel32Op64: {access: accesses{Read}, rflags: 14, flow: FlowConditionalBranch, condition: ConditionS},
	instructions.SetsRm8: {access: accesses{Write}, rflags: 14, condition: ConditionS},
	instructions.CmovnsR16Rm16: {access: accesses{CondWrite, Read}, rflags: 14, condition: ConditionNS},
	instructions.CmovnsR32Rm32: {access: accesses{CondWrite, Read}, rflags: 14, condition: ConditionNS},
	instructions.CmovnsR64Rm64: {access: accesses{CondWrite, Read}, rflags: 14, condition: ConditionNS},
	instructions.JnsRel16: {access: accesses{Read}, rflags: 14, flow: FlowConditionalBranch, condition: ConditionNS},
	instructions.JnsRel32Op32: {access: accesses{Read}, rflags: 14, flow: FlowConditionalBranch, condition: ConditionNS},
	instructions.JnsRel32Op64: {access: accesses{Read}, rflags: 14, flow: FlowConditionalBranch, condition: ConditionNS},
	instructions.SetnsRm8: {access: accesses{Write}, rflags: 14, condition: ConditionNS},
	instructions.CmovpR16Rm16: {access: accesses{CondWrite, Read}, rflags: 15, condition: ConditionP},
	instructions.CmovpR32Rm32: {access: accesses{CondWrite, Read}, rflags: 15, condition: ConditionP},
	instructions.CmovpR64Rm64: {access: accesses{CondWrite, Read}, rflags: 15, condition: ConditionP},
	instructions.JpRel16: {access: accesses{Read}, rflags: 15, flow: FlowConditionalBranch, condition: ConditionP},
	instructions.JpRel32Op32: {access: accesses{Read}, rflags: 15, flow: FlowConditionalBranch, condition: ConditionP},
	instructions.JpRel32Op64: {access: accesses{Read}, rflags: 15, flow: FlowConditionalBranch, condition: ConditionP},
	instructions.SetpRm8: {access: accesses{Write}, rflags: 15, condition: ConditionP},
	instructions.CmovnpR16Rm16: {access: accesses{CondWrite, Read}, rflags: 15, condition: ConditionNP},
	instructions.CmovnpR32Rm32: {access: accesses{CondWrite, Read}, rflags: 15, condition: ConditionNP},
	instructions.CmovnpR64Rm64: {access: accesses{CondWrite, Read}, rflags: 15, condition: ConditionNP},
	instructions.JnpRel16: {access: accesses{Read}, rflags: 15, flow: FlowConditionalBranch, condition: ConditionNP},
	instructions.JnpRel32Op32: {access: accesses{Read}, rflags: 15, flow: FlowConditionalBranch, condition: ConditionNP},
	instructions.JnpRel32Op64: {access: accesses{Read}, rflags: 15, flow: FlowConditionalBranch, condition: ConditionNP},
	instructions.SetnpRm8: {access: accesses{Write}, rflags: 15, condition: ConditionNP},
	instructions.CmovlR16Rm16: {access: accesses{CondWrite, Read}, rflags: 16, condition: ConditionL},
	instructions.CmovlR32Rm32: {access: accesses{CondWrite, Read}, rflags: 16, condition: ConditionL},
	instructions.CmovlR64Rm64: {access: accesses{CondWrite, Read}, rflags: 16, condition: ConditionL},
	instructions.JlRel16: {access: accesses{Read}, rflags: 16, flow: FlowConditionalBranch, condition: ConditionL},
	instructions.JlRel32Op32: {access: accesses{Read}, rflags: 16, flow: FlowConditionalBranch, condition: ConditionL},
	instructions.JlRel32Op64: {access: accesses{Read}, rflags: 16, flow: FlowConditionalBranch, condition: ConditionL},
	instructions.SetlRm8: {access: accesses{Write}, rflags: 16, condition: ConditionL},
	instructions.CmovgeR16Rm16: {access: accesses{CondWrite, Read}, rflags: 16, condition: ConditionGE},
	instructions.CmovgeR32Rm32: {access: accesses{CondWrite, Read}, rflags: 16, condition: ConditionGE},
	instructions.CmovgeR64Rm64: {access: accesses{CondWrite, Read}, rflags: 16, condition: ConditionGE},
	instructions.JgeRel16: {access: accesses{Read}, rflags: 16, flow: FlowConditionalBranch, condition: ConditionGE},
	instructions.JgeRel32Op32: {access: accesses{Read}, rflags: 16, flow: FlowConditionalBranch, condition: ConditionGE},
	instructions.JgeRel32Op64: {access: accesses{Read}, rflags: 16, flow: FlowConditionalBranch, condition: ConditionGE},
	instructions.SetgeRm8: {access: accesses{Write}, rflags: 16, condition: ConditionGE},
	instructions.CmovleR16Rm16: {access: accesses{CondWrite, Read}, rflags: 17, condition: ConditionLE},
	instructions.CmovleR32Rm32: {access: accesses{CondWrite, Read}, rflags: 17, condition: ConditionLE},
	instructions.CmovleR64Rm64: {access: accesses{CondWrite, Read}, rflags: 17, condition: ConditionLE},
	instructions.JleRel16: {access: accesses{Read}, rflags: 17, flow: FlowConditionalBranch, condition: ConditionLE},
	instructions.JleRel32Op32: {access: accesses{Read}, rflags: 17, flow: FlowConditionalBranch, condition: ConditionLE},
	instructions.JleRel32Op64: {access: accesses{Read}, rflags: 17, flow: FlowConditionalBranch, condition: ConditionLE},
	instructions.SetleRm8: {access: accesses{Write}, rflags: 17, condition: ConditionLE},
	instructions.CmovgR16Rm16: {access: accesses{CondWrite, Read}, rflags: 17, condition: ConditionG},
	instructions.CmovgR32Rm32: {access: accesses{CondWrite, Read}, rflags: 17, condition: ConditionG},
	instructions.CmovgR64Rm64: {access: accesses{CondWrite, Read}, rflags: 17, condition: ConditionG},
	instructions.JgRel16: {access: accesses{Read}, rflags: 17, flow: FlowConditionalBranch, condition: ConditionG},
	instructions.JgRel32Op32: {access: accesses{Read}, rflags: 17, flow: FlowConditionalBranch, condition: ConditionG},
	instructions.JgRel32Op64: {access: accesses{Read}, rflags: 17, flow: FlowConditionalBranch, condition: ConditionG},
	instructions.SetgRm8: {access: accesses{Write}, rflags: 17, condition: ConditionG},
	instructions.MovmskpsR32Xmm: {access: accesses{Write, Read}},
	instructions.MovmskpsR64Xmm: {access: accesses{Write, Read}},
	instructions.MovmskpdR32Xmm: {access: accesses{Write, Read}},
	instructions.MovmskpdR64Xmm: {access: accesses{Write, Read}},
	instructions.SqrtpsXmmXmmm128: {access: accesses{Write, Read}},
	instructions.SqrtpdXmmXmmm128: {access: accesses{Write, Read}},
	instructions.SqrtssXmmXmmm32: {access: accesses{ReadWrite, Read}},
	instructions.SqrtsdXmmXmmm64: {access: accesses{ReadWrite, Read}},
	instructions.RsqrtpsXmmXmmm128: {access: accesses{Write, Read}},
	instructions.RsqrtssXmmXmmm32: {access: accesses{ReadWrite, Read}},
	instructions.RcppsXmmXmmm128: {access: accesses{Write, Read}},
	instructions.RcpssXmmXmmm32: {access: accesses{ReadWrite, Read}},
	instructions.AndpsXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.AndpdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.AndnpsXmmXmmm128: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.AndnpdXmmXmmm128: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.OrpsXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.OrpdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.XorpsXmmXmmm128: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.XorpdXmmXmmm128: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.AddpsXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.AddpdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.AddssXmmXmmm32: {access: accesses{ReadWrite, Read}},
	instructions.AddsdXmmXmmm64: {access: accesses{ReadWrite, Read}},
	instructions.MulpsXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.MulpdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.MulssXmmXmmm32: {access: accesses{ReadWrite, Read}},
	instructions.MulsdXmmXmmm64: {access: accesses{ReadWrite, Read}},
	instructions.Cvtps2pdXmmXmmm64: {access: accesses{Write, Read}},
	instructions.Cvtpd2psXmmXmmm128: {access: accesses{Write, Read}},
	instructions.Cvtss2sdXmmXmmm32: {access: accesses{ReadWrite, Read}},
	instructions.Cvtsd2ssXmmXmmm64: {access: accesses{ReadWrite, Read}},
	instructions.Cvtdq2psXmmXmmm128: {access: accesses{Write, Read}},
	instructions.Cvtps2dqXmmXmmm128: {access: accesses{Write, Read}},
	instructions.Cvttps2dqXmmXmmm128: {access: accesses{Write, Read}},
	instructions.SubpsXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.SubpdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.SubssXmmXmmm32: {access: accesses{ReadWrite, Read}},
	instructions.SubsdXmmXmmm64: {access: accesses{ReadWrite, Read}},
	instructions.MinpsXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.MinpdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.MinssXmmXmmm32: {access: accesses{ReadWrite, Read}},
	instructions.MinsdXmmXmmm64: {access: accesses{ReadWrite, Read}},
	instructions.DivpsXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.DivpdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.DivssXmmXmmm32: {access: accesses{ReadWrite, Read}},
	instructions.DivsdXmmXmmm64: {access: accesses{ReadWrite, Read}},
	instructions.MaxpsXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.MaxpdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.MaxssXmmXmmm32: {access: accesses{ReadWrite, Read}},
	instructions.MaxsdXmmXmmm64: {access: accesses{ReadWrite, Read}},
	instructions.PunpcklbwMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PunpcklbwXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PunpcklwdMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PunpcklwdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PunpckldqMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PunpckldqXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PacksswbMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PacksswbXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PcmpgtbMmMmm64: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.PcmpgtbXmmXmmm128: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.PcmpgtwMmMmm64: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.PcmpgtwXmmXmmm128: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.PcmpgtdMmMmm64: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.PcmpgtdXmmXmmm128: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.PackuswbMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PackuswbXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PunpckhbwMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PunpckhbwXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PunpckhwdMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PunpckhwdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PunpckhdqMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PunpckhdqXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PackssdwMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PackssdwXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PcmpeqbMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PcmpeqbXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PcmpeqwMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PcmpeqwXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PcmpeqdMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PcmpeqdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PsrlwMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PsrlwXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PsrldMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PsrldXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PsrlqMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PsrlqXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PaddqMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PaddqXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PmullwMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PmullwXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PsubusbMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PsubusbXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PsubuswMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PsubuswXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PminubMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PminubXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PandMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PandXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PaddusbMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PaddusbXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PadduswMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PadduswXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PmaxubMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PmaxubXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PandnMmMmm64: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.PandnXmmXmmm128: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.PavgbMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PavgbXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PsrawMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PsrawXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PsradMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PsradXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PavgwMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PavgwXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PmulhuwMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PmulhuwXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PmulhwMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PmulhwXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PsubsbMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PsubsbXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PsubswMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PsubswXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PminswMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PminswXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PorMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PorXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PaddsbMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PaddsbXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PaddswMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PaddswXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PmaxswMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PmaxswXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PxorMmMmm64: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.PxorXmmXmmm128: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.PsllwMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PsllwXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PslldMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PslldXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PsllqMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PsllqXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PmuludqMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PmuludqXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PmaddwdMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PmaddwdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PsadbwMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PsadbwXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PsubbMmMmm64: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.PsubbXmmXmmm128: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.PsubwMmMmm64: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.PsubwXmmXmmm128: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.PsubdMmMmm64: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.PsubdXmmXmmm128: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.PsubqMmMmm64: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.PsubqXmmXmmm128: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.PaddbMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PaddbXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PaddwMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PaddwXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PadddMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PadddXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PunpcklqdqXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PunpckhqdqXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.MovdMmRm32: {access: accesses{Write, Read}},
	instructions.MovqMmRm64: {access: accesses{Write, Read}},
	instructions.MovdXmmRm32: {access: accesses{Write, Read}},
	instructions.MovqXmmRm64: {access: accesses{Write, Read}},
	instructions.MovqMmMmm64: {access: accesses{Write, Read}},
	instructions.MovdqaXmmXmmm128: {access: accesses{Write, Read}},
	instructions.MovdquXmmXmmm128: {access: accesses{Write, Read}},
	instructions.PshufwMmMmm64Imm8: {access: accesses{Write, Read, Read}},
	instructions.PshufdXmmXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.PshufhwXmmXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.PshuflwXmmXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.PsrlwMmImm8: {access: accesses{ReadWrite, Read}},
	instructions.PsrlwXmmImm8: {access: accesses{ReadWrite, Read}},
	instructions.PsrawMmImm8: {access: accesses{ReadWrite, Read}},
	instructions.PsrawXmmImm8: {access: accesses{ReadWrite, Read}},
	instructions.PsllwMmImm8: {access: accesses{ReadWrite, Read}},
	instructions.PsllwXmmImm8: {access: accesses{ReadWrite, Read}},
	instructions.PsrldMmImm8: {access: accesses{ReadWrite, Read}},
	instructions.PsrldXmmImm8: {access: accesses{ReadWrite, Read}},
	instructions.PsradMmImm8: {access: accesses{ReadWrite, Read}},
	instructions.PsradXmmImm8: {access: accesses{ReadWrite, Read}},
	instructions.PslldMmImm8: {access: accesses{ReadWrite, Read}},
	instructions.PslldXmmImm8: {access: accesses{ReadWrite, Read}},
	instructions.PsrlqMmImm8: {access: accesses{ReadWrite, Read}},
	instructions.PsrlqXmmImm8: {access: accesses{ReadWrite, Read}},
	instructions.PsllqMmImm8: {access: accesses{ReadWrite, Read}},
	instructions.PsllqXmmImm8: {access: accesses{ReadWrite, Read}},
	instructions.PsrldqXmmImm8: {access: accesses{ReadWrite, Read}},
	instructions.PslldqXmmImm8: {access: accesses{ReadWrite, Read}},
	instructions.Emms: {},
	instructions.HaddpdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.HaddpsXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.HsubpdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.HsubpsXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.MovdRm32Mm: {access: accesses{Write, Read}},
	instructions.MovqRm64Mm: {access: accesses{Write, Read}},
	instructions.MovdRm32Xmm: {access: accesses{Write, Read}},
	instructions.MovqRm64Xmm: {access: accesses{Write, Read}},
	instructions.MovqXmmXmmm64: {access: accesses{Write, Read}},
	instructions.MovqMmm64Mm: {access: accesses{Write, Read}},
	instructions.MovdqaXmmm128Xmm: {access: accesses{Write, Read}},
	instructions.MovdquXmmm128Xmm: {access: accesses{Write, Read}},
	instructions.PushFS: {access: accesses{Read}, implicit: 1, stack: stackPush},
	instructions.PopFS: {access: accesses{Write}, implicit: 1, stack: stackPop},
	instructions.Cpuid: {implicit: 44},
	instructions.BtRm16R16: {access: accesses{Read, Read}, rflags: 42},
	instructions.BtRm32R32: {access: accesses{Read, Read}, rflags: 42},
	instructions.BtRm64R64: {access: accesses{Read, Read}, rflags: 42},
	instructions.ShldRm16R16Imm8: {access: accesses{ReadWrite, Read, Read}, rflags: 27},
	instructions.ShldRm32R32Imm8: {access: accesses{ReadWrite, Read, Read}, rflags: 27},
	instructions.ShldRm64R64Imm8: {access: accesses{ReadWrite, Read, Read}, rflags: 27},
	instructions.ShldRm16R16CL: {access: accesses{ReadWrite, Read, Read}, rflags: 27},
	instructions.ShldRm32R32CL: {access: accesses{ReadWrite, Read, Read}, rflags: 27},
	instructions.ShldRm64R64CL: {access: accesses{ReadWrite, Read, Read}, rflags: 27},
	instructions.PushGS: {access: accesses{Read}, implicit: 1, stack: stackPush},
	instructions.PopGS: {access: accesses{Write}, implicit: 1, stack: stackPop},
	instructions.Rsm: {},
	instructions.BtsRm16R16: {access: accesses{ReadWrite, Read}, rflags: 42},
	instructions.BtsRm32R32: {access: accesses{ReadWrite, Read}, rflags: 42},
	instructions.BtsRm64R64: {access: accesses{ReadWrite, Read}, rflags: 42},
	instructions.ShrdRm16R16Imm8: {access: accesses{ReadWrite, Read, Read}, rflags: 27},
	instructions.ShrdRm32R32Imm8: {access: accesses{ReadWrite, Read, Read}, rflags: 27},
	instructions.ShrdRm64R64Imm8: {access: accesses{ReadWrite, Read, Read}, rflags: 27},
	instructions.ShrdRm16R16CL: {access: accesses{ReadWrite, Read, Read}, rflags: 27},
	instructions.ShrdRm32R32CL: {access: accesses{ReadWrite, Read, Read}, rflags: 27},
	instructions.ShrdRm64R64CL: {access: accesses{ReadWrite, Read, Read}, rflags: 27},
	instructions.FxsaveM512byte: {access: accesses{Write}},
	instructions.FxrstorM512byte: {access: accesses{Read}},
	instructions.LdmxcsrM32: {access: accesses{Read}},
	instructions.StmxcsrM32: {access: accesses{Write}},
	instructions.XsaveMem: {access: accesses{Write}, implicit: 45},
	instructions.XrstorMem: {access: accesses{Read}, implicit: 45},
	instructions.XsaveoptMem: {access: accesses{Write}, implicit: 45},
	instructions.ClflushM8: {access: accesses{NoMemAccess}},
	instructions.Lfence: {},
	instructions.Mfence: {},
	instructions.Sfence: {},
	instructions.RdfsbaseR32: {access: accesses{Write}},
	instructions.RdfsbaseR64: {access: accesses{Write}},
	instructions.RdgsbaseR32: {access: accesses{Write}},
	instructions.RdgsbaseR64: {access: accesses{Write}},
	instructions.WrfsbaseR32: {access: accesses{Read}},
	instructions.WrfsbaseR64: {access: accesses{Read}},
	instructions.WrgsbaseR32: {access: accesses{Read}},
	instructions.WrgsbaseR64: {access: accesses{Read}},
	instructions.ImulR16Rm16: {access: accesses{ReadWrite, Read}, rflags: 8},
	instructions.ImulR32Rm32: {access: accesses{ReadWrite, Read}, rflags: 8},
	instructions.ImulR64Rm64: {access: accesses{ReadWrite, Read}, rflags: 8},
	instructions.CmpxchgRm8R8: {access: accesses{ReadWrite, Read}, implicit: 2, rflags: 1},
	instructions.CmpxchgRm16R16: {access: accesses{ReadWrite, Read}, implicit: 3, rflags: 1},
	instructions.CmpxchgRm32R32: {access: accesses{ReadWrite, Read}, implicit: 46, rflags: 1},
	instructions.CmpxchgRm64R64: {access: accesses{ReadWrite, Read}, implicit: 47, rflags: 1},
	instructions.LssR16M1616: {access: accesses{Write, Read}},
	instructions.LssR32M1632: {access: accesses{Write, Read}},
	instructions.LssR64M1664: {access: accesses{Write, Read}},
	instructions.BtrRm16R16: {access: accesses{ReadWrite, Read}, rflags: 42},
	instructions.BtrRm32R32: {access: accesses{ReadWrite, Read}, rflags: 42},
	instructions.BtrRm64R64: {access: accesses{ReadWrite, Read}, rflags: 42},
	instructions.LfsR16M1616: {access: accesses{Write, Read}},
	instructions.LfsR32M1632: {access: accesses{Write, Read}},
	instructions.LfsR64M1664: {access: accesses{Write, Read}},
	instructions.LgsR16M1616: {access: accesses{Write, Read}},
	instructions.LgsR32M1632: {access: accesses{Write, Read}},
	instructions.LgsR64M1664: {access: accesses{Write, Read}},
	instructions.MovzxR16Rm8: {access: accesses{Write, Read}},
	instructions.MovzxR32Rm8: {access: accesses{Write, Read}},
	instructions.MovzxR64Rm8: {access: accesses{Write, Read}},
	instructions.MovzxR16Rm16: {access: accesses{Write, Read}},
	instructions.MovzxR32Rm16: {access: accesses{Write, Read}},
	instructions.MovzxR64Rm16: {access: accesses{Write, Read}},
	instructions.PopcntR16Rm16: {access: accesses{Write, Read}, rflags: 41},
	instructions.PopcntR32Rm32: {access: accesses{Write, Read}, rflags: 41},
	instructions.PopcntR64Rm64: {access: accesses{Write, Read}, rflags: 41},
	instructions.Ud1R16Rm16: {access: accesses{Read, Read}, flow: FlowException},
	instructions.Ud1R32Rm32: {access: accesses{Read, Read}, flow: FlowException},
	instructions.Ud1R64Rm64: {access: accesses{Read, Read}, flow: FlowException},
	instructions.BtRm16Imm8: {access: accesses{Read, Read}, rflags: 42},
	instructions.BtRm32Imm8: {access: accesses{Read, Read}, rflags: 42},
	instructions.BtRm64Imm8: {access: accesses{Read, Read}, rflags: 42},
	instructions.BtsRm16Imm8: {access: accesses{ReadWrite, Read}, rflags: 42},
	instructions.BtsRm32Imm8: {access: accesses{ReadWrite, Read}, rflags: 42},
	instructions.BtsRm64Imm8: {access: accesses{ReadWrite, Read}, rflags: 42},
	instructions.BtrRm16Imm8: {access: accesses{ReadWrite, Read}, rflags: 42},
	instructions.BtrRm32Imm8: {access: accesses{ReadWrite, Read}, rflags: 42},
	instructions.BtrRm64Imm8: {access: accesses{ReadWrite, Read}, rflags: 42},
	instructions.BtcRm16Imm8: {access: accesses{ReadWrite, Read}, rflags: 42},
	instructions.BtcRm32Imm8: {access: accesses{ReadWrite, Read}, rflags: 42},
	instructions.BtcRm64Imm8: {access: accesses{ReadWrite, Read}, rflags: 42},
	instructions.BtcRm16R16: {access: accesses{ReadWrite, Read}, rflags: 42},
	instructions.BtcRm32R32: {access: accesses{ReadWrite, Read}, rflags: 42},
	instructions.BtcRm64R64: {access: accesses{ReadWrite, Read}, rflags: 42},
	instructions.BsfR16Rm16: {access: accesses{CondWrite, Read}, rflags: 43},
	instructions.BsfR32Rm32: {access: accesses{CondWrite, Read}, rflags: 43},
	instructions.BsfR64Rm64: {access: accesses{CondWrite, Read}, rflags: 43},
	instructions.TzcntR16Rm16: {access: accesses{Write, Read}, rflags: 44},
	instructions.TzcntR32Rm32: {access: accesses{Write, Read}, rflags: 44},
	instructions.TzcntR64Rm64: {access: accesses{Write, Read}, rflags: 44},
	instructions.BsrR16Rm16: {access: accesses{CondWrite, Read}, rflags: 43},
	instructions.BsrR32Rm32: {access: accesses{CondWrite, Read}, rflags: 43},
	instructions.BsrR64Rm64: {access: accesses{CondWrite, Read}, rflags: 43},
	instructions.LzcntR16Rm16: {access: accesses{Write, Read}, rflags: 44},
	instructions.LzcntR32Rm32: {access: accesses{Write, Read}, rflags: 44},
	instructions.LzcntR64Rm64: {access: accesses{Write, Read}, rflags: 44},
	instructions.MovsxR16Rm8: {access: accesses{Write, Read}},
	instructions.MovsxR32Rm8: {access: accesses{Write, Read}},
	instructions.MovsxR64Rm8: {access: accesses{Write, Read}},
	instructions.MovsxR16Rm16: {access: accesses{Write, Read}},
	instructions.MovsxR32Rm16: {access: accesses{Write, Read}},
	instructions.MovsxR64Rm16: {access: accesses{Write, Read}},
	instructions.XaddRm8R8: {access: accesses{ReadWrite, ReadWrite}, rflags: 1},
	instructions.XaddRm16R16: {access: accesses{ReadWrite, ReadWrite}, rflags: 1},
	instructions.XaddRm32R32: {access: accesses{ReadWrite, ReadWrite}, rflags: 1},
	instructions.XaddRm64R64: {access: accesses{ReadWrite, ReadWrite}, rflags: 1},
	instructions.CmppsXmmXmmm128Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.CmppdXmmXmmm128Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.CmpssXmmXmmm32Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.CmpsdXmmXmmm64Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.MovntiM32R32: {access: accesses{Write, Read}},
	instructions.MovntiM64R64: {access: accesses{Write, Read}},
	instructions.PinsrwMmR32m16Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.PinsrwMmR64m16Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.PinsrwXmmR32m16Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.PinsrwXmmR64m16Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.PextrwR32MmImm8: {access: accesses{Write, Read, Read}},
	instructions.PextrwR64MmImm8: {access: accesses{Write, Read, Read}},
	instructions.PextrwR32XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.PextrwR64XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.ShufpsXmmXmmm128Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.ShufpdXmmXmmm128Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.Cmpxchg8bM64: {access: accesses{ReadWrite}, implicit: 48, rflags: 7},
	instructions.Cmpxchg16bM128: {access: accesses{ReadWrite}, implicit: 49, rflags: 7},
	instructions.RdrandR16: {access: accesses{Write}, rflags: 45},
	instructions.RdrandR32: {access: accesses{Write}, rflags: 45},
	instructions.RdrandR64: {access: accesses{Write}, rflags: 45},
	instructions.RdseedR16: {access: accesses{Write}, rflags: 45},
	instructions.RdseedR32: {access: accesses{Write}, rflags: 45},
	instructions.RdseedR64: {access: accesses{Write}, rflags: 45},
	instructions.RdpidR32: {access: accesses{Write}},
	instructions.RdpidR64: {access: accesses{Write}},
	instructions.BswapR16: {access: accesses{ReadWrite}},
	instructions.BswapR32: {access: accesses{ReadWrite}},
	instructions.BswapR64: {access: accesses{ReadWrite}},
	instructions.AddsubpdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.AddsubpsXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.MovqXmmm64Xmm: {access: accesses{Write, Read}},
	instructions.Movq2dqXmmMm: {access: accesses{Write, Read}},
	instructions.Movdq2qMmXmm: {access: accesses{Write, Read}},
	instructions.PmovmskbR32Mm: {access: accesses{Write, Read}},
	instructions.PmovmskbR64Mm: {access: accesses{Write, Read}},
	instructions.PmovmskbR32Xmm: {access: accesses{Write, Read}},
	instructions.PmovmskbR64Xmm: {access: accesses{Write, Read}},
	instructions.Cvttpd2dqXmmXmmm128: {access: accesses{Write, Read}},
	instructions.Cvtdq2pdXmmXmmm64: {access: accesses{Write, Read}},
	instructions.Cvtpd2dqXmmXmmm128: {access: accesses{Write, Read}},
	instructions.MovntqM64Mm: {access: accesses{Write, Read}},
	instructions.MovntdqM128Xmm: {access: accesses{Write, Read}},
	instructions.LddquXmmM128: {access: accesses{Write, Read}},
	instructions.MaskmovqMmMm: {access: accesses{Read, Read}, implicit: 50},
	instructions.MaskmovdquXmmXmm: {access: accesses{Read, Read}, implicit: 50},
	instructions.Ud0R16Rm16: {access: accesses{Read, Read}, flow: FlowException},
	instructions.Ud0R32Rm32: {access: accesses{Read, Read}, flow: FlowException},
	instructions.Ud0R64Rm64: {access: accesses{Read, Read}, flow: FlowException},
	instructions.PshufbMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PshufbXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PhaddwMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PhaddwXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PhadddMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PhadddXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PhaddswMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PhaddswXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PmaddubswMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PmaddubswXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PhsubwMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PhsubwXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PhsubdMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PhsubdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PhsubswMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PhsubswXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PsignbMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PsignbXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PsignwMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PsignwXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PsigndMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PsigndXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PmulhrswMmMmm64: {access: accesses{ReadWrite, Read}},
	instructions.PmulhrswXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PabsbMmMmm64: {access: accesses{Write, Read}},
	instructions.PabsbXmmXmmm128: {access: accesses{Write, Read}},
	instructions.PabswMmMmm64: {access: accesses{Write, Read}},
	instructions.PabswXmmXmmm128: {access: accesses{Write, Read}},
	instructions.PabsdMmMmm64: {access: accesses{Write, Read}},
	instructions.PabsdXmmXmmm128: {access: accesses{Write, Read}},
	instructions.PblendvbXmmXmmm128Xmm0: {access: accesses{ReadWrite, Read, Read}},
	instructions.BlendvpsXmmXmmm128Xmm0: {access: accesses{ReadWrite, Read, Read}},
	instructions.BlendvpdXmmXmmm128Xmm0: {access: accesses{ReadWrite, Read, Read}},
	instructions.PtestXmmXmmm128: {access: accesses{Read, Read}, rflags: 46},
	instructions.PmovsxbwXmmXmmm64: {access: accesses{Write, Read}},
	instructions.PmovsxbdXmmXmmm32: {access: accesses{Write, Read}},
	instructions.PmovsxbqXmmXmmm16: {access: accesses{Write, Read}},
	instructions.PmovsxwdXmmXmmm64: {access: accesses{Write, Read}},
	instructions.PmovsxwqXmmXmmm32: {access: accesses{Write, Read}},
	instructions.PmovsxdqXmmXmmm64: {access: accesses{Write, Read}},
	instructions.PmovzxbwXmmXmmm64: {access: accesses{Write, Read}},
	instructions.PmovzxbdXmmXmmm32: {access: accesses{Write, Read}},
	instructions.PmovzxbqXmmXmmm16: {access: accesses{Write, Read}},
	instructions.PmovzxwdXmmXmmm64: {access: accesses{Write, Read}},
	instructions.PmovzxwqXmmXmmm32: {access: accesses{Write, Read}},
	instructions.PmovzxdqXmmXmmm64: {access: accesses{Write, Read}},
	instructions.PmuldqXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PcmpeqqXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PackusdwXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PcmpgtqXmmXmmm128: {access: accesses{ReadWrite, Read}, zeroIdiom: true},
	instructions.PminsbXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PminsdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PminuwXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PminudXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PmaxsbXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PmaxsdXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PmaxuwXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PmaxudXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PmulldXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.PhminposuwXmmXmmm128: {access: accesses{Write, Read}},
	instructions.AesimcXmmXmmm128: {access: accesses{Write, Read}},
	instructions.AesencXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.AesenclastXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.AesdecXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.AesdeclastXmmXmmm128: {access: accesses{ReadWrite, Read}},
	instructions.MovntdqaXmmM128: {access: accesses{Write, Read}},
	instructions.MovbeR16M16: {access: accesses{Write, Read}},
	instructions.MovbeR32M32: {access: accesses{Write, Read}},
	instructions.MovbeR64M64: {access: accesses{Write, Read}},
	instructions.Crc32R32Rm8: {access: accesses{ReadWrite, Read}},
	instructions.Crc32R64Rm8: {access: accesses{ReadWrite, Read}},
	instructions.MovbeM16R16: {access: accesses{Write, Read}},
	instructions.MovbeM32R32: {access: accesses{Write, Read}},
	instructions.MovbeM64R64: {access: accesses{Write, Read}},
	instructions.Crc32R32Rm16: {access: accesses{ReadWrite, Read}},
	instructions.Crc32R32Rm32: {access: accesses{ReadWrite, Read}},
	instructions.Crc32R64Rm64: {access: accesses{ReadWrite, Read}},
	instructions.AdcxR32Rm32: {access: accesses{ReadWrite, Read}, rflags: 31},
	instructions.AdcxR64Rm64: {access: accesses{ReadWrite, Read}, rflags: 31},
	instructions.AdoxR32Rm32: {access: accesses{ReadWrite, Read}, rflags: 47},
	instructions.AdoxR64Rm64: {access: accesses{ReadWrite, Read}, rflags: 47},
	instructions.PalignrMmMmm64Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.PalignrXmmXmmm128Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.RoundpsXmmXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.RoundpdXmmXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.RoundssXmmXmmm32Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.RoundsdXmmXmmm64Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.BlendpsXmmXmmm128Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.BlendpdXmmXmmm128Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.PblendwXmmXmmm128Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.PextrbR32m8XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.PextrbR64m8XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.PextrwR32m16XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.PextrwR64m16XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.PextrdRm32XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.PextrqRm64XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.ExtractpsRm32XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.PinsrbXmmR32m8Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.PinsrbXmmR64m8Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.InsertpsXmmXmmm32Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.PinsrdXmmRm32Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.PinsrqXmmRm64Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.DppsXmmXmmm128Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.DppdXmmXmmm128Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.MpsadbwXmmXmmm128Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.PclmulqdqXmmXmmm128Imm8: {access: accesses{ReadWrite, Read, Read}},
	instructions.PcmpestrmXmmXmmm128Imm8: {access: accesses{Read, Read, Read}, implicit: 51, rflags: 48},
	instructions.PcmpestriXmmXmmm128Imm8: {access: accesses{Read, Read, Read}, implicit: 52, rflags: 48},
	instructions.PcmpistrmXmmXmmm128Imm8: {access: accesses{Read, Read, Read}, implicit: 53, rflags: 48},
	instructions.PcmpistriXmmXmmm128Imm8: {access: accesses{Read, Read, Read}, implicit: 54, rflags: 48},
	instructions.AeskeygenassistXmmXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.VexVmovupsXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVmovupsYmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVmovupdXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVmovupdYmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVmovupsXmmm128Xmm: {access: accesses{Write, Read}},
	instructions.VexVmovupsYmmm256Ymm: {access: accesses{Write, Read}},
	instructions.VexVmovupdXmmm128Xmm: {access: accesses{Write, Read}},
	instructions.VexVmovupdYmmm256Ymm: {access: accesses{Write, Read}},
	instructions.VexVmovapsXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVmovapsYmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVmovapdXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVmovapdYmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVmovapsXmmm128Xmm: {access: accesses{Write, Read}},
	instructions.VexVmovapsYmmm256Ymm: {access: accesses{Write, Read}},
	instructions.VexVmovapdXmmm128Xmm: {access: accesses{Write, Read}},
	instructions.VexVmovapdYmmm256Ymm: {access: accesses{Write, Read}},
	instructions.VexVmovssXmmM32: {access: accesses{Write, Read}},
	instructions.VexVmovssXmmXmmXmm: {access: accesses{Write, Read, Read}},
	instructions.VexVmovsdXmmM64: {access: accesses{Write, Read}},
	instructions.VexVmovsdXmmXmmXmm: {access: accesses{Write, Read, Read}},
	instructions.VexVmovssM32Xmm: {access: accesses{Write, Read}},
	instructions.VexVmovssXmmXmmXmmOp0F11: {access: accesses{Write, Read, Read}},
	instructions.VexVmovsdM64Xmm: {access: accesses{Write, Read}},
	instructions.VexVmovsdXmmXmmXmmOp0F11: {access: accesses{Write, Read, Read}},
	instructions.VexVsqrtpsXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVsqrtpsYmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVsqrtpdXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVsqrtpdYmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVsqrtssXmmXmmXmmm32: {access: accesses{Write, Read, Read}},
	instructions.VexVsqrtsdXmmXmmXmmm64: {access: accesses{Write, Read, Read}},
	instructions.VexVandpsXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVandpsYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVandpdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVandpdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVandnpsXmmXmmXmmm128: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVandnpsYmmYmmYmmm256: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVandnpdXmmXmmXmmm128: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVandnpdYmmYmmYmmm256: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVorpsXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVorpsYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVorpdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVorpdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVxorpsXmmXmmXmmm128: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVxorpsYmmYmmYmmm256: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVxorpdXmmXmmXmmm128: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVxorpdYmmYmmYmmm256: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVaddpsXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVaddpsYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVaddpdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVaddpdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVaddssXmmXmmXmmm32: {access: accesses{Write, Read, Read}},
	instructions.VexVaddsdXmmXmmXmmm64: {access: accesses{Write, Read, Read}},
	instructions.VexVmulpsXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVmulpsYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVmulpdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVmulpdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVmulssXmmXmmXmmm32: {access: accesses{Write, Read, Read}},
	instructions.VexVmulsdXmmXmmXmmm64: {access: accesses{Write, Read, Read}},
	instructions.VexVsubpsXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVsubpsYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVsubpdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVsubpdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVsubssXmmXmmXmmm32: {access: accesses{Write, Read, Read}},
	instructions.VexVsubsdXmmXmmXmmm64: {access: accesses{Write, Read, Read}},
	instructions.VexVminpsXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVminpsYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVminpdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVminpdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVminssXmmXmmXmmm32: {access: accesses{Write, Read, Read}},
	instructions.VexVminsdXmmXmmXmmm64: {access: accesses{Write, Read, Read}},
	instructions.VexVdivpsXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVdivpsYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVdivpdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVdivpdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVdivssXmmXmmXmmm32: {access: accesses{Write, Read, Read}},
	instructions.VexVdivsdXmmXmmXmmm64: {access: accesses{Write, Read, Read}},
	instructions.VexVmaxpsXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVmaxpsYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVmaxpdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVmaxpdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVmaxssXmmXmmXmmm32: {access: accesses{Write, Read, Read}},
	instructions.VexVmaxsdXmmXmmXmmm64: {access: accesses{Write, Read, Read}},
	instructions.VexVucomissXmmXmmm32: {access: accesses{Read, Read}, rflags: 38},
	instructions.VexVucomisdXmmXmmm64: {access: accesses{Read, Read}, rflags: 38},
	instructions.VexVcomissXmmXmmm32: {access: accesses{Read, Read}, rflags: 38},
	instructions.VexVcomisdXmmXmmm64: {access: accesses{Read, Read}, rflags: 38},
	instructions.VexVmovdqaXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVmovdqaYmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVmovdquXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVmovdquYmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVmovdqaXmmm128Xmm: {access: accesses{Write, Read}},
	instructions.VexVmovdqaYmmm256Ymm: {access: accesses{Write, Read}},
	instructions.VexVmovdquXmmm128Xmm: {access: accesses{Write, Read}},
	instructions.VexVmovdquYmmm256Ymm: {access: accesses{Write, Read}},
	instructions.VexVzeroupper: {},
	instructions.VexVzeroall: {},
	instructions.VexVcmppsXmmXmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVcmppsYmmYmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVcmppdXmmXmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVcmppdYmmYmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVpaddqXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpaddqYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpandXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpandYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVporXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVporYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpxorXmmXmmXmmm128: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVpxorYmmYmmYmmm256: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVpadddXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpadddYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpsubdXmmXmmXmmm128: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVpsubdYmmYmmYmmm256: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVpcmpeqbXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpcmpeqbYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpcmpeqdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpcmpeqdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpmovmskbR32Xmm: {access: accesses{Write, Read}},
	instructions.VexVpmovmskbR32Ymm: {access: accesses{Write, Read}},
	instructions.VexVldmxcsrM32: {access: accesses{Read}},
	instructions.VexVstmxcsrM32: {access: accesses{Write}},
	instructions.VexKandwKrKrKr: {access: accesses{Write, Read, Read}},
	instructions.VexKorwKrKrKr: {access: accesses{Write, Read, Read}},
	instructions.VexKxorwKrKrKr: {access: accesses{Write, Read, Read}},
	instructions.VexKnotwKrKr: {access: accesses{Write, Read}},
	instructions.VexKmovwKrKm16: {access: accesses{Write, Read}},
	instructions.VexKmovwM16Kr: {access: accesses{Write, Read}},
	instructions.VexKmovwKrR32: {access: accesses{Write, Read}},
	instructions.VexKmovwR32Kr: {access: accesses{Write, Read}},
	instructions.VexKortestwKrKr: {access: accesses{Read, Read}, rflags: 46},
	instructions.VexVpshufbXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpshufbYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVptestXmmXmmm128: {access: accesses{Read, Read}, rflags: 46},
	instructions.VexVptestYmmYmmm256: {access: accesses{Read, Read}, rflags: 46},
	instructions.VexVbroadcastssXmmM32: {access: accesses{Write, Read}},
	instructions.VexVbroadcastssYmmM32: {access: accesses{Write, Read}},
	instructions.VexVbroadcastssXmmXmm: {access: accesses{Write, Read}},
	instructions.VexVbroadcastssYmmXmm: {access: accesses{Write, Read}},
	instructions.VexVpermdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpbroadcastdXmmXmmm32: {access: accesses{Write, Read}},
	instructions.VexVpbroadcastdYmmXmmm32: {access: accesses{Write, Read}},
	instructions.VexVfmadd132psXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmadd132psYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmadd132pdXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmadd132pdYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmadd132ssXmmXmmXmmm32: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmadd132sdXmmXmmXmmm64: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmadd213psXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmadd213psYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmadd213pdXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmadd213pdYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmadd213ssXmmXmmXmmm32: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmadd213sdXmmXmmXmmm64: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmadd231psXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmadd231psYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmadd231pdXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmadd231pdYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmadd231ssXmmXmmXmmm32: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmadd231sdXmmXmmXmmm64: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexAndnR32R32Rm32: {access: accesses{Write, Read, Read}, rflags: 49},
	instructions.VexAndnR64R64Rm64: {access: accesses{Write, Read, Read}, rflags: 49},
	instructions.VexBlsrR32Rm32: {access: accesses{Write, Read}, rflags: 49},
	instructions.VexBlsrR64Rm64: {access: accesses{Write, Read}, rflags: 49},
	instructions.VexBlsmskR32Rm32: {access: accesses{Write, Read}, rflags: 50},
	instructions.VexBlsmskR64Rm64: {access: accesses{Write, Read}, rflags: 50},
	instructions.VexBlsiR32Rm32: {access: accesses{Write, Read}, rflags: 49},
	instructions.VexBlsiR64Rm64: {access: accesses{Write, Read}, rflags: 49},
	instructions.VexBzhiR32Rm32R32: {access: accesses{Write, Read, Read}, rflags: 49},
	instructions.VexBzhiR64Rm64R64: {access: accesses{Write, Read, Read}, rflags: 49},
	instructions.VexPextR32R32Rm32: {access: accesses{Write, Read, Read}},
	instructions.VexPextR64R64Rm64: {access: accesses{Write, Read, Read}},
	instructions.VexPdepR32R32Rm32: {access: accesses{Write, Read, Read}},
	instructions.VexPdepR64R64Rm64: {access: accesses{Write, Read, Read}},
	instructions.VexMulxR32R32Rm32: {access: accesses{Write, Write, Read}, implicit: 55},
	instructions.VexMulxR64R64Rm64: {access: accesses{Write, Write, Read}, implicit: 56},
	instructions.VexBextrR32Rm32R32: {access: accesses{Write, Read, Read}, rflags: 51},
	instructions.VexBextrR64Rm64R64: {access: accesses{Write, Read, Read}, rflags: 51},
	instructions.VexShlxR32Rm32R32: {access: accesses{Write, Read, Read}},
	instructions.VexShlxR64Rm64R64: {access: accesses{Write, Read, Read}},
	instructions.VexSarxR32Rm32R32: {access: accesses{Write, Read, Read}},
	instructions.VexSarxR64Rm64R64: {access: accesses{Write, Read, Read}},
	instructions.VexShrxR32Rm32R32: {access: accesses{Write, Read, Read}},
	instructions.VexShrxR64Rm64R64: {access: accesses{Write, Read, Read}},
	instructions.VexVpermqYmmYmmm256Imm8: {access: accesses{Write, Read, Read}},
	instructions.VexVblendpsXmmXmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVblendpsYmmYmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVinsertf128YmmYmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVextractf128Xmmm128YmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVblendvpsXmmXmmXmmm128Xmm: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVblendvpsYmmYmmYmmm256Ymm: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVblendvpdXmmXmmXmmm128Xmm: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVblendvpdYmmYmmYmmm256Ymm: {access: accesses{Write, Read, Read, Read}},
	instructions.VexRorxR32Rm32Imm8: {access: accesses{Write, Read, Read}},
	instructions.VexRorxR64Rm64Imm8: {access: accesses{Write, Read, Read}},
	instructions.VexVmovlpsXmmXmmM64: {access: accesses{Write, Read, Read}},
	instructions.VexVmovhlpsXmmXmmXmm: {access: accesses{Write, Read, Read}},
	instructions.VexVmovlpdXmmXmmM64: {access: accesses{Write, Read, Read}},
	instructions.VexVmovsldupXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVmovsldupYmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVmovddupXmmXmmm64: {access: accesses{Write, Read}},
	instructions.VexVmovddupYmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVmovlpsM64Xmm: {access: accesses{Write, Read}},
	instructions.VexVmovlpdM64Xmm: {access: accesses{Write, Read}},
	instructions.VexVunpcklpsXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVunpcklpsYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVunpcklpdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVunpcklpdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVunpckhpsXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVunpckhpsYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVunpckhpdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVunpckhpdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVmovhpsXmmXmmM64: {access: accesses{Write, Read, Read}},
	instructions.VexVmovlhpsXmmXmmXmm: {access: accesses{Write, Read, Read}},
	instructions.VexVmovhpdXmmXmmM64: {access: accesses{Write, Read, Read}},
	instructions.VexVmovshdupXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVmovshdupYmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVmovhpsM64Xmm: {access: accesses{Write, Read}},
	instructions.VexVmovhpdM64Xmm: {access: accesses{Write, Read}},
	instructions.VexVcvtsi2ssXmmXmmRm32: {access: accesses{Write, Read, Read}},
	instructions.VexVcvtsi2ssXmmXmmRm64: {access: accesses{Write, Read, Read}},
	instructions.VexVcvtsi2sdXmmXmmRm32: {access: accesses{Write, Read, Read}},
	instructions.VexVcvtsi2sdXmmXmmRm64: {access: accesses{Write, Read, Read}},
	instructions.VexVmovntpsM128Xmm: {access: accesses{Write, Read}},
	instructions.VexVmovntpsM256Ymm: {access: accesses{Write, Read}},
	instructions.VexVmovntpdM128Xmm: {access: accesses{Write, Read}},
	instructions.VexVmovntpdM256Ymm: {access: accesses{Write, Read}},
	instructions.VexVcvttss2siR32Xmmm32: {access: accesses{Write, Read}},
	instructions.VexVcvttss2siR64Xmmm32: {access: accesses{Write, Read}},
	instructions.VexVcvttsd2siR32Xmmm64: {access: accesses{Write, Read}},
	instructions.VexVcvttsd2siR64Xmmm64: {access: accesses{Write, Read}},
	instructions.VexVcvtss2siR32Xmmm32: {access: accesses{Write, Read}},
	instructions.VexVcvtss2siR64Xmmm32: {access: accesses{Write, Read}},
	instructions.VexVcvtsd2siR32Xmmm64: {access: accesses{Write, Read}},
	instructions.VexVcvtsd2siR64Xmmm64: {access: accesses{Write, Read}},
	instructions.VexVmovmskpsR32Xmm: {access: accesses{Write, Read}},
	instructions.VexVmovmskpsR32Ymm: {access: accesses{Write, Read}},
	instructions.VexVmovmskpdR32Xmm: {access: accesses{Write, Read}},
	instructions.VexVmovmskpdR32Ymm: {access: accesses{Write, Read}},
	instructions.VexVrsqrtpsXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVrsqrtpsYmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVrsqrtssXmmXmmXmmm32: {access: accesses{Write, Read, Read}},
	instructions.VexVrcppsXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVrcppsYmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVrcpssXmmXmmXmmm32: {access: accesses{Write, Read, Read}},
	instructions.VexVcvtps2pdXmmXmmm64: {access: accesses{Write, Read}},
	instructions.VexVcvtps2pdYmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVcvtpd2psXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVcvtpd2psXmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVcvtss2sdXmmXmmXmmm32: {access: accesses{Write, Read, Read}},
	instructions.VexVcvtsd2ssXmmXmmXmmm64: {access: accesses{Write, Read, Read}},
	instructions.VexVcvtdq2psXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVcvtdq2psYmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVcvtps2dqXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVcvtps2dqYmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVcvttps2dqXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVcvttps2dqYmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVpunpcklbwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpunpcklbwYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpunpcklwdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpunpcklwdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpunpckldqXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpunpckldqYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpacksswbXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpacksswbYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpcmpgtbXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpcmpgtbYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpcmpgtwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpcmpgtwYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpcmpgtdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpcmpgtdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpackuswbXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpackuswbYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpunpckhbwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpunpckhbwYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpunpckhwdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpunpckhwdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpunpckhdqXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpunpckhdqYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpackssdwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpackssdwYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpunpcklqdqXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpunpcklqdqYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpunpckhqdqXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpunpckhqdqYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpcmpeqwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpcmpeqwYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpmullwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpmullwYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpsubusbXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsubusbYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpsubuswXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsubuswYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpminubXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpminubYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpaddusbXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpaddusbYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpadduswXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpadduswYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpmaxubXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpmaxubYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpandnXmmXmmXmmm128: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVpandnYmmYmmYmmm256: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVpavgbXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpavgbYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpavgwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpavgwYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpmulhuwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpmulhuwYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpmulhwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpmulhwYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpsubsbXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsubsbYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpsubswXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsubswYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpminswXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpminswYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpaddsbXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpaddsbYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpaddswXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpaddswYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpmaxswXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpmaxswYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpmuludqXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpmuludqYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpmaddwdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpmaddwdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpsadbwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsadbwYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpsubbXmmXmmXmmm128: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVpsubbYmmYmmYmmm256: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVpsubwXmmXmmXmmm128: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVpsubwYmmYmmYmmm256: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVpsubqXmmXmmXmmm128: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVpsubqYmmYmmYmmm256: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.VexVpaddbXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpaddbYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpaddwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpaddwYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrlwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrlwYmmYmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrldXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrldYmmYmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrlqXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrlqYmmYmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrawXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrawYmmYmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsradXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsradYmmYmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsllwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsllwYmmYmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpslldXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpslldYmmYmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsllqXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsllqYmmYmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVmovdXmmRm32: {access: accesses{Write, Read}},
	instructions.VexVmovqXmmRm64: {access: accesses{Write, Read}},
	instructions.VexVpshufdXmmXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpshufdYmmYmmm256Imm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpshufhwXmmXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpshufhwYmmYmmm256Imm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpshuflwXmmXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpshuflwYmmYmmm256Imm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrlwXmmXmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrlwYmmYmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrawXmmXmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrawYmmYmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpsllwXmmXmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpsllwYmmYmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrldXmmXmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrldYmmYmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpsradXmmXmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpsradYmmYmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpslldXmmXmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpslldYmmYmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrlqXmmXmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrlqYmmYmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrldqXmmXmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrldqYmmYmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpsllqXmmXmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpsllqYmmYmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpslldqXmmXmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpslldqYmmYmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVhaddpdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVhaddpdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVhaddpsXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVhaddpsYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVhsubpdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVhsubpdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVhsubpsXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVhsubpsYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVmovdRm32Xmm: {access: accesses{Write, Read}},
	instructions.VexVmovqRm64Xmm: {access: accesses{Write, Read}},
	instructions.VexVmovqXmmXmmm64: {access: accesses{Write, Read}},
	instructions.VexVcmpssXmmXmmXmmm32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVcmpsdXmmXmmXmmm64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVpinsrwXmmXmmR32m16Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVpinsrwXmmXmmR64m16Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVpextrwR32XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpextrwR64XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVshufpsXmmXmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVshufpsYmmYmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVshufpdXmmXmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVshufpdYmmYmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVaddsubpdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVaddsubpdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVaddsubpsXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVaddsubpsYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVmovqXmmm64Xmm: {access: accesses{Write, Read}},
	instructions.VexVcvttpd2dqXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVcvttpd2dqXmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVcvtdq2pdXmmXmmm64: {access: accesses{Write, Read}},
	instructions.VexVcvtdq2pdYmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVcvtpd2dqXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVcvtpd2dqXmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVmovntdqM128Xmm: {access: accesses{Write, Read}},
	instructions.VexVmovntdqM256Ymm: {access: accesses{Write, Read}},
	instructions.VexVlddquXmmM128: {access: accesses{Write, Read}},
	instructions.VexVlddquYmmM256: {access: accesses{Write, Read}},
	instructions.VexVmaskmovdquXmmXmm: {access: accesses{Read, Read}, implicit: 50},
	instructions.VexVphaddwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVphaddwYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVphadddXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVphadddYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVphaddswXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVphaddswYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpmaddubswXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpmaddubswYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVphsubwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVphsubwYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVphsubdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVphsubdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVphsubswXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVphsubswYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpsignbXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsignbYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpsignwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsignwYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpsigndXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsigndYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpmulhrswXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpmulhrswYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpmuldqXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpmuldqYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpcmpeqqXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpcmpeqqYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpackusdwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpackusdwYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpcmpgtqXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpcmpgtqYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpminsbXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpminsbYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpminsdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpminsdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpminuwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpminuwYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpminudXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpminudYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpmaxsbXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpmaxsbYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpmaxsdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpmaxsdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpmaxuwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpmaxuwYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpmaxudXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpmaxudYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpmulldXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpmulldYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpermilpsXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpermilpsYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpermilpdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpermilpdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVtestpsXmmXmmm128: {access: accesses{Read, Read}, rflags: 46},
	instructions.VexVtestpsYmmYmmm256: {access: accesses{Read, Read}, rflags: 46},
	instructions.VexVtestpdXmmXmmm128: {access: accesses{Read, Read}, rflags: 46},
	instructions.VexVtestpdYmmYmmm256: {access: accesses{Read, Read}, rflags: 46},
	instructions.VexVcvtph2psXmmXmmm64: {access: accesses{Write, Read}},
	instructions.VexVcvtph2psYmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVpermpsYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVbroadcastsdYmmXmmm64: {access: accesses{Write, Read}},
	instructions.VexVbroadcastf128YmmM128: {access: accesses{Write, Read}},
	instructions.VexVpabsbXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVpabsbYmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVpabswXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVpabswYmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVpabsdXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVpabsdYmmYmmm256: {access: accesses{Write, Read}},
	instructions.VexVpmovsxbwXmmXmmm64: {access: accesses{Write, Read}},
	instructions.VexVpmovsxbwYmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVpmovsxbdXmmXmmm32: {access: accesses{Write, Read}},
	instructions.VexVpmovsxbdYmmXmmm64: {access: accesses{Write, Read}},
	instructions.VexVpmovsxbqXmmXmmm16: {access: accesses{Write, Read}},
	instructions.VexVpmovsxbqYmmXmmm32: {access: accesses{Write, Read}},
	instructions.VexVpmovsxwdXmmXmmm64: {access: accesses{Write, Read}},
	instructions.VexVpmovsxwdYmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVpmovsxwqXmmXmmm32: {access: accesses{Write, Read}},
	instructions.VexVpmovsxwqYmmXmmm64: {access: accesses{Write, Read}},
	instructions.VexVpmovsxdqXmmXmmm64: {access: accesses{Write, Read}},
	instructions.VexVpmovsxdqYmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVpmovzxbwXmmXmmm64: {access: accesses{Write, Read}},
	instructions.VexVpmovzxbwYmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVpmovzxbdXmmXmmm32: {access: accesses{Write, Read}},
	instructions.VexVpmovzxbdYmmXmmm64: {access: accesses{Write, Read}},
	instructions.VexVpmovzxbqXmmXmmm16: {access: accesses{Write, Read}},
	instructions.VexVpmovzxbqYmmXmmm32: {access: accesses{Write, Read}},
	instructions.VexVpmovzxwdXmmXmmm64: {access: accesses{Write, Read}},
	instructions.VexVpmovzxwdYmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVpmovzxwqXmmXmmm32: {access: accesses{Write, Read}},
	instructions.VexVpmovzxwqYmmXmmm64: {access: accesses{Write, Read}},
	instructions.VexVpmovzxdqXmmXmmm64: {access: accesses{Write, Read}},
	instructions.VexVpmovzxdqYmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVmovntdqaXmmM128: {access: accesses{Write, Read}},
	instructions.VexVmovntdqaYmmM256: {access: accesses{Write, Read}},
	instructions.VexVmaskmovpsXmmXmmM128: {access: accesses{Write, Read, CondRead}},
	instructions.VexVmaskmovpsYmmYmmM256: {access: accesses{Write, Read, CondRead}},
	instructions.VexVmaskmovpdXmmXmmM128: {access: accesses{Write, Read, CondRead}},
	instructions.VexVmaskmovpdYmmYmmM256: {access: accesses{Write, Read, CondRead}},
	instructions.VexVmaskmovpsM128XmmXmm: {access: accesses{CondWrite, Read, Read}},
	instructions.VexVmaskmovpsM256YmmYmm: {access: accesses{CondWrite, Read, Read}},
	instructions.VexVmaskmovpdM128XmmXmm: {access: accesses{CondWrite, Read, Read}},
	instructions.VexVmaskmovpdM256YmmYmm: {access: accesses{CondWrite, Read, Read}},
	instructions.VexVphminposuwXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVpsrlvdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrlvdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrlvqXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsrlvqYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpsllvdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsllvdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpsllvqXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsllvqYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpsravdXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVpsravdYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpbroadcastqXmmXmmm64: {access: accesses{Write, Read}},
	instructions.VexVpbroadcastqYmmXmmm64: {access: accesses{Write, Read}},
	instructions.VexVbroadcasti128YmmM128: {access: accesses{Write, Read}},
	instructions.VexVpbroadcastbXmmXmmm8: {access: accesses{Write, Read}},
	instructions.VexVpbroadcastbYmmXmmm8: {access: accesses{Write, Read}},
	instructions.VexVpbroadcastwXmmXmmm16: {access: accesses{Write, Read}},
	instructions.VexVpbroadcastwYmmXmmm16: {access: accesses{Write, Read}},
	instructions.VexVpmaskmovdXmmXmmM128: {access: accesses{Write, Read, CondRead}},
	instructions.VexVpmaskmovdYmmYmmM256: {access: accesses{Write, Read, CondRead}},
	instructions.VexVpmaskmovqXmmXmmM128: {access: accesses{Write, Read, CondRead}},
	instructions.VexVpmaskmovqYmmYmmM256: {access: accesses{Write, Read, CondRead}},
	instructions.VexVpmaskmovdM128XmmXmm: {access: accesses{CondWrite, Read, Read}},
	instructions.VexVpmaskmovdM256YmmYmm: {access: accesses{CondWrite, Read, Read}},
	instructions.VexVpmaskmovqM128XmmXmm: {access: accesses{CondWrite, Read, Read}},
	instructions.VexVpmaskmovqM256YmmYmm: {access: accesses{CondWrite, Read, Read}},
	instructions.VexVpgatherddXmmVm32xXmm: {access: accesses{ReadCondWrite, CondRead, ReadWrite}},
	instructions.VexVpgatherddYmmVm32yYmm: {access: accesses{ReadCondWrite, CondRead, ReadWrite}},
	instructions.VexVpgatherdqXmmVm32xXmm: {access: accesses{ReadCondWrite, CondRead, ReadWrite}},
	instructions.VexVpgatherdqYmmVm32xYmm: {access: accesses{ReadCondWrite, CondRead, ReadWrite}},
	instructions.VexVpgatherqdXmmVm64xXmm: {access: accesses{ReadCondWrite, CondRead, ReadWrite}},
	instructions.VexVpgatherqdXmmVm64yXmm: {access: accesses{ReadCondWrite, CondRead, ReadWrite}},
	instructions.VexVpgatherqqXmmVm64xXmm: {access: accesses{ReadCondWrite, CondRead, ReadWrite}},
	instructions.VexVpgatherqqYmmVm64yYmm: {access: accesses{ReadCondWrite, CondRead, ReadWrite}},
	instructions.VexVgatherdpsXmmVm32xXmm: {access: accesses{ReadCondWrite, CondRead, ReadWrite}},
	instructions.VexVgatherdpsYmmVm32yYmm: {access: accesses{ReadCondWrite, CondRead, ReadWrite}},
	instructions.VexVgatherdpdXmmVm32xXmm: {access: accesses{ReadCondWrite, CondRead, ReadWrite}},
	instructions.VexVgatherdpdYmmVm32xYmm: {access: accesses{ReadCondWrite, CondRead, ReadWrite}},
	instructions.VexVgatherqpsXmmVm64xXmm: {access: accesses{ReadCondWrite, CondRead, ReadWrite}},
	instructions.VexVgatherqpsXmmVm64yXmm: {access: accesses{ReadCondWrite, CondRead, ReadWrite}},
	instructions.VexVgatherqpdXmmVm64xXmm: {access: accesses{ReadCondWrite, CondRead, ReadWrite}},
	instructions.VexVgatherqpdYmmVm64yYmm: {access: accesses{ReadCondWrite, CondRead, ReadWrite}},
	instructions.VexVfmaddsub132psXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmaddsub132psYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmaddsub132pdXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmaddsub132pdYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsubadd132psXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsubadd132psYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsubadd132pdXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsubadd132pdYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsub132psXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsub132psYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsub132pdXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsub132pdYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsub132ssXmmXmmXmmm32: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsub132sdXmmXmmXmmm64: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmadd132psXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmadd132psYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmadd132pdXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmadd132pdYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmadd132ssXmmXmmXmmm32: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmadd132sdXmmXmmXmmm64: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmsub132psXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmsub132psYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmsub132pdXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmsub132pdYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmsub132ssXmmXmmXmmm32: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmsub132sdXmmXmmXmmm64: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmaddsub213psXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmaddsub213psYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmaddsub213pdXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmaddsub213pdYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsubadd213psXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsubadd213psYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsubadd213pdXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsubadd213pdYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsub213psXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsub213psYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsub213pdXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsub213pdYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsub213ssXmmXmmXmmm32: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsub213sdXmmXmmXmmm64: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmadd213psXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmadd213psYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmadd213pdXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmadd213pdYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmadd213ssXmmXmmXmmm32: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmadd213sdXmmXmmXmmm64: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmsub213psXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmsub213psYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmsub213pdXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmsub213pdYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmsub213ssXmmXmmXmmm32: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmsub213sdXmmXmmXmmm64: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmaddsub231psXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmaddsub231psYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmaddsub231pdXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmaddsub231pdYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsubadd231psXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsubadd231psYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsubadd231pdXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsubadd231pdYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsub231psXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsub231psYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsub231pdXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsub231pdYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsub231ssXmmXmmXmmm32: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfmsub231sdXmmXmmXmmm64: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmadd231psXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmadd231psYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmadd231pdXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmadd231pdYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmadd231ssXmmXmmXmmm32: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmadd231sdXmmXmmXmmm64: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmsub231psXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmsub231psYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmsub231pdXmmXmmXmmm128: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmsub231pdYmmYmmYmmm256: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmsub231ssXmmXmmXmmm32: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVfnmsub231sdXmmXmmXmmm64: {access: accesses{ReadWrite, Read, Read}},
	instructions.VexVaesimcXmmXmmm128: {access: accesses{Write, Read}},
	instructions.VexVaesencXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVaesencYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVaesenclastXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVaesenclastYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVaesdecXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVaesdecYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVaesdeclastXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.VexVaesdeclastYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.VexVpermpdYmmYmmm256Imm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpblenddXmmXmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVpblenddYmmYmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVpermilpsXmmXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpermilpsYmmYmmm256Imm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpermilpdXmmXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpermilpdYmmYmmm256Imm8: {access: accesses{Write, Read, Read}},
	instructions.VexVperm2f128YmmYmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVroundpsXmmXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.VexVroundpsYmmYmmm256Imm8: {access: accesses{Write, Read, Read}},
	instructions.VexVroundpdXmmXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.VexVroundpdYmmYmmm256Imm8: {access: accesses{Write, Read, Read}},
	instructions.VexVroundssXmmXmmXmmm32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVroundsdXmmXmmXmmm64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVblendpdXmmXmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVblendpdYmmYmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVpblendwXmmXmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVpblendwYmmYmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVpalignrXmmXmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVpalignrYmmYmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVpextrbR32m8XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpextrbR64m8XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpextrwR32m16XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpextrwR64m16XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpextrdRm32XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpextrqRm64XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVextractpsRm32XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVcvtps2phXmmm64XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVcvtps2phXmmm128YmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVpinsrbXmmXmmR32m8Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVpinsrbXmmXmmR64m8Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVinsertpsXmmXmmXmmm32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVpinsrdXmmXmmRm32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVpinsrqXmmXmmRm64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVinserti128YmmYmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVextracti128Xmmm128YmmImm8: {access: accesses{Write, Read, Read}},
	instructions.VexVdppsXmmXmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVdppsYmmYmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVdppdXmmXmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVmpsadbwXmmXmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVmpsadbwYmmYmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVpclmulqdqXmmXmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVpclmulqdqYmmYmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVperm2i128YmmYmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVpblendvbXmmXmmXmmm128Xmm: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVpblendvbYmmYmmYmmm256Ymm: {access: accesses{Write, Read, Read, Read}},
	instructions.VexVpcmpestrmXmmXmmm128Imm8: {access: accesses{Read, Read, Read}, implicit: 51, rflags: 48},
	instructions.VexVpcmpestriXmmXmmm128Imm8: {access: accesses{Read, Read, Read}, implicit: 52, rflags: 48},
	instructions.VexVpcmpistrmXmmXmmm128Imm8: {access: accesses{Read, Read, Read}, implicit: 53, rflags: 48},
	instructions.VexVpcmpistriXmmXmmm128Imm8: {access: accesses{Read, Read, Read}, implicit: 54, rflags: 48},
	instructions.VexVaeskeygenassistXmmXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVmovupsXmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVmovupsYmmK1zYmmm256: {access: accesses{Write, Read}},
	instructions.EvexVmovupsZmmK1zZmmm512: {access: accesses{Write, Read}},
	instructions.EvexVmovupdXmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVmovupdYmmK1zYmmm256: {access: accesses{Write, Read}},
	instructions.EvexVmovupdZmmK1zZmmm512: {access: accesses{Write, Read}},
	instructions.EvexVmovupsXmmm128K1Xmm: {access: accesses{Write, Read}},
	instructions.EvexVmovupsYmmm256K1Ymm: {access: accesses{Write, Read}},
	instructions.EvexVmovupsZmmm512K1Zmm: {access: accesses{Write, Read}},
	instructions.EvexVmovupdXmmm128K1Xmm: {access: accesses{Write, Read}},
	instructions.EvexVmovupdYmmm256K1Ymm: {access: accesses{Write, Read}},
	instructions.EvexVmovupdZmmm512K1Zmm: {access: accesses{Write, Read}},
	instructions.EvexVmovapsXmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVmovapsYmmK1zYmmm256: {access: accesses{Write, Read}},
	instructions.EvexVmovapsZmmK1zZmmm512: {access: accesses{Write, Read}},
	instructions.EvexVmovapdXmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVmovapdYmmK1zYmmm256: {access: accesses{Write, Read}},
	instructions.EvexVmovapdZmmK1zZmmm512: {access: accesses{Write, Read}},
	instructions.EvexVmovapsXmmm128K1Xmm: {access: accesses{Write, Read}},
	instructions.EvexVmovapsYmmm256K1Ymm: {access: accesses{Write, Read}},
	instructions.EvexVmovapsZmmm512K1Zmm: {access: accesses{Write, Read}},
	instructions.EvexVmovapdXmmm128K1Xmm: {access: accesses{Write, Read}},
	instructions.EvexVmovapdYmmm256K1Ymm: {access: accesses{Write, Read}},
	instructions.EvexVmovapdZmmm512K1Zmm: {access: accesses{Write, Read}},
	instructions.EvexVsqrtpsXmmK1zXmmm128B32: {access: accesses{Write, Read}},
	instructions.EvexVsqrtpsYmmK1zYmmm256B32: {access: accesses{Write, Read}},
	instructions.EvexVsqrtpsZmmK1zZmmm512B32Er: {access: accesses{Write, Read}},
	instructions.EvexVsqrtpdXmmK1zXmmm128B64: {access: accesses{Write, Read}},
	instructions.EvexVsqrtpdYmmK1zYmmm256B64: {access: accesses{Write, Read}},
	instructions.EvexVsqrtpdZmmK1zZmmm512B64Er: {access: accesses{Write, Read}},
	instructions.EvexVsqrtssXmmK1zXmmXmmm32Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVsqrtsdXmmK1zXmmXmmm64Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVaddpsXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVaddpsYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVaddpsZmmK1zZmmZmmm512B32Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVaddpdXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVaddpdYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVaddpdZmmK1zZmmZmmm512B64Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVaddssXmmK1zXmmXmmm32Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVaddsdXmmK1zXmmXmmm64Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVmulpsXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVmulpsYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVmulpsZmmK1zZmmZmmm512B32Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVmulpdXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVmulpdYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVmulpdZmmK1zZmmZmmm512B64Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVmulssXmmK1zXmmXmmm32Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVmulsdXmmK1zXmmXmmm64Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVsubpsXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVsubpsYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVsubpsZmmK1zZmmZmmm512B32Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVsubpdXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVsubpdYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVsubpdZmmK1zZmmZmmm512B64Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVsubssXmmK1zXmmXmmm32Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVsubsdXmmK1zXmmXmmm64Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVdivpsXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVdivpsYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVdivpsZmmK1zZmmZmmm512B32Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVdivpdXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVdivpdYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVdivpdZmmK1zZmmZmmm512B64Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVdivssXmmK1zXmmXmmm32Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVdivsdXmmK1zXmmXmmm64Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVminpsXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVminpsYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVminpsZmmK1zZmmZmmm512B32Sae: {access: accesses{Write, Read, Read}},
	instructions.EvexVminpdXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVminpdYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVminpdZmmK1zZmmZmmm512B64Sae: {access: accesses{Write, Read, Read}},
	instructions.EvexVminssXmmK1zXmmXmmm32Sae: {access: accesses{Write, Read, Read}},
	instructions.EvexVminsdXmmK1zXmmXmmm64Sae: {access: accesses{Write, Read, Read}},
	instructions.EvexVmaxpsXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVmaxpsYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVmaxpsZmmK1zZmmZmmm512B32Sae: {access: accesses{Write, Read, Read}},
	instructions.EvexVmaxpdXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVmaxpdYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVmaxpdZmmK1zZmmZmmm512B64Sae: {access: accesses{Write, Read, Read}},
	instructions.EvexVmaxssXmmK1zXmmXmmm32Sae: {access: accesses{Write, Read, Read}},
	instructions.EvexVmaxsdXmmK1zXmmXmmm64Sae: {access: accesses{Write, Read, Read}},
	instructions.EvexVandpsXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVandpsYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVandpsZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVandpdXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVandpdYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVandpdZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVxorpsXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVxorpsYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVxorpsZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVxorpdXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVxorpdYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVxorpdZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVucomissXmmXmmm32Sae: {access: accesses{Read, Read}, rflags: 38},
	instructions.EvexVucomisdXmmXmmm64Sae: {access: accesses{Read, Read}, rflags: 38},
	instructions.EvexVcomissXmmXmmm32Sae: {access: accesses{Read, Read}, rflags: 38},
	instructions.EvexVcomisdXmmXmmm64Sae: {access: accesses{Read, Read}, rflags: 38},
	instructions.EvexVmovdqa32XmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVmovdqa32YmmK1zYmmm256: {access: accesses{Write, Read}},
	instructions.EvexVmovdqa32ZmmK1zZmmm512: {access: accesses{Write, Read}},
	instructions.EvexVmovdqa64XmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVmovdqa64YmmK1zYmmm256: {access: accesses{Write, Read}},
	instructions.EvexVmovdqa64ZmmK1zZmmm512: {access: accesses{Write, Read}},
	instructions.EvexVmovdqa32Xmmm128K1Xmm: {access: accesses{Write, Read}},
	instructions.EvexVmovdqa32Ymmm256K1Ymm: {access: accesses{Write, Read}},
	instructions.EvexVmovdqa32Zmmm512K1Zmm: {access: accesses{Write, Read}},
	instructions.EvexVmovdqa64Xmmm128K1Xmm: {access: accesses{Write, Read}},
	instructions.EvexVmovdqa64Ymmm256K1Ymm: {access: accesses{Write, Read}},
	instructions.EvexVmovdqa64Zmmm512K1Zmm: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu32XmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu32YmmK1zYmmm256: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu32ZmmK1zZmmm512: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu64XmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu64YmmK1zYmmm256: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu64ZmmK1zZmmm512: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu32Xmmm128K1Xmm: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu32Ymmm256K1Ymm: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu32Zmmm512K1Zmm: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu64Xmmm128K1Xmm: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu64Ymmm256K1Ymm: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu64Zmmm512K1Zmm: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu8XmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu8YmmK1zYmmm256: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu8ZmmK1zZmmm512: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu16XmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu16YmmK1zYmmm256: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu16ZmmK1zZmmm512: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu8Xmmm128K1Xmm: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu8Ymmm256K1Ymm: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu8Zmmm512K1Zmm: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu16Xmmm128K1Xmm: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu16Ymmm256K1Ymm: {access: accesses{Write, Read}},
	instructions.EvexVmovdqu16Zmmm512K1Zmm: {access: accesses{Write, Read}},
	instructions.EvexVpanddXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpanddYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpanddZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpandqXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpandqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpandqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpordXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpordYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpordZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVporqXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVporqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVporqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpxordXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpxordYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpxordZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpxorqXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpxorqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpxorqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpadddXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpadddYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpadddZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpaddqXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpaddqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpaddqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsubdXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpsubdYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpsubdZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVprordXmmK1zXmmm128B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVprordYmmK1zYmmm256B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVprordZmmK1zZmmm512B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVprorqXmmK1zXmmm128B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVprorqYmmK1zYmmm256B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVprorqZmmK1zZmmm512B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVproldXmmK1zXmmm128B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVproldYmmK1zYmmm256B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVproldZmmK1zZmmm512B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVprolqXmmK1zXmmm128B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVprolqYmmK1zYmmm256B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVprolqZmmK1zZmmm512B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsradXmmK1zXmmm128B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsradYmmK1zYmmm256B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsradZmmK1zZmmm512B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsraqXmmK1zXmmm128B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsraqYmmK1zYmmm256B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsraqZmmK1zZmmm512B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVbroadcastssYmmK1zXmmm32: {access: accesses{Write, Read}},
	instructions.EvexVbroadcastssZmmK1zXmmm32: {access: accesses{Write, Read}},
	instructions.EvexVpbroadcastdXmmK1zXmmm32: {access: accesses{Write, Read}},
	instructions.EvexVpbroadcastdYmmK1zXmmm32: {access: accesses{Write, Read}},
	instructions.EvexVpbroadcastdZmmK1zXmmm32: {access: accesses{Write, Read}},
	instructions.EvexVpblendmdXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpblendmdYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpblendmdZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpblendmqXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpblendmqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpblendmqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVfmadd132psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd132psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd132psZmmK1zZmmZmmm512B32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd132pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd132pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd132pdZmmK1zZmmZmmm512B64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd132ssXmmK1zXmmXmmm32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd132sdXmmK1zXmmXmmm64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd213psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd213psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd213psZmmK1zZmmZmmm512B32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd213pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd213pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd213pdZmmK1zZmmZmmm512B64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd213ssXmmK1zXmmXmmm32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd213sdXmmK1zXmmXmmm64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd231psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd231psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd231psZmmK1zZmmZmmm512B32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd231pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd231pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd231pdZmmK1zZmmZmmm512B64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd231ssXmmK1zXmmXmmm32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmadd231sdXmmK1zXmmXmmm64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexValigndXmmK1zXmmXmmm128B32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexValigndYmmK1zYmmYmmm256B32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexValigndZmmK1zZmmZmmm512B32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexValignqXmmK1zXmmXmmm128B64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexValignqYmmK1zYmmYmmm256B64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexValignqZmmK1zZmmZmmm512B64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVrndscalepsXmmK1zXmmm128B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVrndscalepsYmmK1zYmmm256B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVrndscalepsZmmK1zZmmm512B32Imm8Sae: {access: accesses{Write, Read, Read}},
	instructions.EvexVrndscalepdXmmK1zXmmm128B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVrndscalepdYmmK1zYmmm256B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVrndscalepdZmmK1zZmmm512B64Imm8Sae: {access: accesses{Write, Read, Read}},
	instructions.EvexVrndscalessXmmK1zXmmXmmm32Imm8Sae: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVrndscalesdXmmK1zXmmXmmm64Imm8Sae: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpudKrK1XmmXmmm128B32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpudKrK1YmmYmmm256B32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpudKrK1ZmmZmmm512B32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpuqKrK1XmmXmmm128B64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpuqKrK1YmmYmmm256B64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpuqKrK1ZmmZmmm512B64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpdKrK1XmmXmmm128B32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpdKrK1YmmYmmm256B32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpdKrK1ZmmZmmm512B32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpqKrK1XmmXmmm128B64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpqKrK1YmmYmmm256B64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpqKrK1ZmmZmmm512B64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVmovssXmmK1zM32: {access: accesses{Write, Read}},
	instructions.EvexVmovssXmmK1zXmmXmm: {access: accesses{Write, Read, Read}},
	instructions.EvexVmovsdXmmK1zM64: {access: accesses{Write, Read}},
	instructions.EvexVmovsdXmmK1zXmmXmm: {access: accesses{Write, Read, Read}},
	instructions.EvexVmovssM32K1Xmm: {access: accesses{Write, Read}},
	instructions.EvexVmovsdM64K1Xmm: {access: accesses{Write, Read}},
	instructions.EvexVunpcklpsXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVunpcklpsYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVunpcklpsZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVunpcklpdXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVunpcklpdYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVunpcklpdZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVunpckhpsXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVunpckhpsYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVunpckhpsZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVunpckhpdXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVunpckhpdYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVunpckhpdZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVcvtsi2ssXmmXmmRm32Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVcvtsi2ssXmmXmmRm64Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVcvtsi2sdXmmXmmRm32Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVcvtsi2sdXmmXmmRm64Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVmovntpsM128Xmm: {access: accesses{Write, Read}},
	instructions.EvexVmovntpsM256Ymm: {access: accesses{Write, Read}},
	instructions.EvexVmovntpsM512Zmm: {access: accesses{Write, Read}},
	instructions.EvexVmovntpdM128Xmm: {access: accesses{Write, Read}},
	instructions.EvexVmovntpdM256Ymm: {access: accesses{Write, Read}},
	instructions.EvexVmovntpdM512Zmm: {access: accesses{Write, Read}},
	instructions.EvexVcvttss2siR32Xmmm32Sae: {access: accesses{Write, Read}},
	instructions.EvexVcvttss2siR64Xmmm32Sae: {access: accesses{Write, Read}},
	instructions.EvexVcvttsd2siR32Xmmm64Sae: {access: accesses{Write, Read}},
	instructions.EvexVcvttsd2siR64Xmmm64Sae: {access: accesses{Write, Read}},
	instructions.EvexVcvtss2siR32Xmmm32Er: {access: accesses{Write, Read}},
	instructions.EvexVcvtss2siR64Xmmm32Er: {access: accesses{Write, Read}},
	instructions.EvexVcvtsd2siR32Xmmm64Er: {access: accesses{Write, Read}},
	instructions.EvexVcvtsd2siR64Xmmm64Er: {access: accesses{Write, Read}},
	instructions.EvexVandnpsXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVandnpsYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVandnpsZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVandnpdXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVandnpdYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVandnpdZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVorpsXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVorpsYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVorpsZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVorpdXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVorpdYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVorpdZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVcvtps2pdXmmK1zXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVcvtps2pdYmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVcvtps2pdZmmK1zYmmm256Sae: {access: accesses{Write, Read}},
	instructions.EvexVcvtpd2psXmmK1zXmmm128B64: {access: accesses{Write, Read}},
	instructions.EvexVcvtpd2psXmmK1zYmmm256B64: {access: accesses{Write, Read}},
	instructions.EvexVcvtpd2psYmmK1zZmmm512B64Er: {access: accesses{Write, Read}},
	instructions.EvexVcvtss2sdXmmK1zXmmXmmm32Sae: {access: accesses{Write, Read, Read}},
	instructions.EvexVcvtsd2ssXmmK1zXmmXmmm64Er: {access: accesses{Write, Read, Read}},
	instructions.EvexVcvtdq2psXmmK1zXmmm128B32: {access: accesses{Write, Read}},
	instructions.EvexVcvtdq2psYmmK1zYmmm256B32: {access: accesses{Write, Read}},
	instructions.EvexVcvtdq2psZmmK1zZmmm512B32Er: {access: accesses{Write, Read}},
	instructions.EvexVcvtps2dqXmmK1zXmmm128B32: {access: accesses{Write, Read}},
	instructions.EvexVcvtps2dqYmmK1zYmmm256B32: {access: accesses{Write, Read}},
	instructions.EvexVcvtps2dqZmmK1zZmmm512B32Er: {access: accesses{Write, Read}},
	instructions.EvexVcvttps2dqXmmK1zXmmm128B32: {access: accesses{Write, Read}},
	instructions.EvexVcvttps2dqYmmK1zYmmm256B32: {access: accesses{Write, Read}},
	instructions.EvexVcvttps2dqZmmK1zZmmm512B32Sae: {access: accesses{Write, Read}},
	instructions.EvexVpunpcklbwXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpcklbwYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpcklbwZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpcklwdXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpcklwdYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpcklwdZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpacksswbXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpacksswbYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpacksswbZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpackuswbXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpackuswbYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpackuswbZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpckhbwXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpckhbwYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpckhbwZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpckhwdXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpckhwdYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpckhwdZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmullwXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmullwYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmullwZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsubusbXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsubusbYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsubusbZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsubuswXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsubuswYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsubuswZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminubXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminubYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminubZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpaddusbXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpaddusbYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpaddusbZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpadduswXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpadduswYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpadduswZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxubXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxubYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxubZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpavgbXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpavgbYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpavgbZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpavgwXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpavgwYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpavgwZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmulhuwXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmulhuwYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmulhuwZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmulhwXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmulhwYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmulhwZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsubsbXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsubsbYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsubsbZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsubswXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsubswYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsubswZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminswXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminswYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminswZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpaddsbXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpaddsbYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpaddsbZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpaddswXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpaddswYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpaddswZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxswXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxswYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxswZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaddwdXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaddwdYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaddwdZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsubbXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpsubbYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpsubbZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpsubwXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpsubwYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpsubwZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpaddbXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpaddbYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpaddbZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpaddwXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpaddwYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpaddwZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpckldqXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpckldqYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpckldqZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpckhdqXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpckhdqYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpckhdqZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpackssdwXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpackssdwYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpackssdwZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpcklqdqXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpcklqdqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpcklqdqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpckhqdqXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpckhqdqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpunpckhqdqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmuludqXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmuludqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmuludqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsubqXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpsubqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpsubqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpandndXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpandndYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpandndZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpandnqXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpandnqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpandnqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}, zeroIdiom: true},
	instructions.EvexVpsadbwXmmXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsadbwYmmYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsadbwZmmZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpgtbKrK1XmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpgtbKrK1YmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpgtbKrK1ZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpgtwKrK1XmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpgtwKrK1YmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpgtwKrK1ZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpeqbKrK1XmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpeqbKrK1YmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpeqbKrK1ZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpeqwKrK1XmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpeqwKrK1YmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpeqwKrK1ZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpgtdKrK1XmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpgtdKrK1YmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpgtdKrK1ZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpeqdKrK1XmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpeqdKrK1YmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpeqdKrK1ZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVmovdXmmRm32: {access: accesses{Write, Read}},
	instructions.EvexVmovqXmmRm64: {access: accesses{Write, Read}},
	instructions.EvexVmovdRm32Xmm: {access: accesses{Write, Read}},
	instructions.EvexVmovqRm64Xmm: {access: accesses{Write, Read}},
	instructions.EvexVmovqXmmXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVmovqXmmm64Xmm: {access: accesses{Write, Read}},
	instructions.EvexVpshufdXmmK1zXmmm128B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpshufdYmmK1zYmmm256B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpshufdZmmK1zZmmm512B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpshufhwXmmK1zXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpshufhwYmmK1zYmmm256Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpshufhwZmmK1zZmmm512Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpshuflwXmmK1zXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpshuflwYmmK1zYmmm256Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpshuflwZmmK1zZmmm512Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrlwXmmK1zXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrlwYmmK1zYmmm256Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrlwZmmK1zZmmm512Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrawXmmK1zXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrawYmmK1zYmmm256Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrawZmmK1zZmmm512Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsllwXmmK1zXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsllwYmmK1zYmmm256Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsllwZmmK1zZmmm512Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrldXmmK1zXmmm128B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrldYmmK1zYmmm256B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrldZmmK1zZmmm512B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpslldXmmK1zXmmm128B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpslldYmmK1zYmmm256B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpslldZmmK1zZmmm512B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrlqXmmK1zXmmm128B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrlqYmmK1zYmmm256B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrlqZmmK1zZmmm512B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsllqXmmK1zXmmm128B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsllqYmmK1zYmmm256B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsllqZmmK1zZmmm512B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrldqXmmXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrldqYmmYmmm256Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrldqZmmZmmm512Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpslldqXmmXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpslldqYmmYmmm256Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpslldqZmmZmmm512Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrlwXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrlwYmmK1zYmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrlwZmmK1zZmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrawXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrawYmmK1zYmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrawZmmK1zZmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsllwXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsllwYmmK1zYmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsllwZmmK1zZmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrldXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrldYmmK1zYmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrldZmmK1zZmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrlqXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrlqYmmK1zYmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrlqZmmK1zZmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsradXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsradYmmK1zYmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsradZmmK1zZmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsraqXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsraqYmmK1zYmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsraqZmmK1zZmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpslldXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpslldYmmK1zYmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpslldZmmK1zZmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsllqXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsllqYmmK1zYmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsllqZmmK1zZmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVcmppsKrK1XmmXmmm128B32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVcmppsKrK1YmmYmmm256B32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVcmppsKrK1ZmmZmmm512B32Imm8Sae: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVcmppdKrK1XmmXmmm128B64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVcmppdKrK1YmmYmmm256B64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVcmppdKrK1ZmmZmmm512B64Imm8Sae: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVcmpssKrK1XmmXmmm32Imm8Sae: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVcmpsdKrK1XmmXmmm64Imm8Sae: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpinsrwXmmXmmR32m16Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpinsrwXmmXmmR64m16Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpextrwR32XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpextrwR64XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVshufpsXmmK1zXmmXmmm128B32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVshufpsYmmK1zYmmYmmm256B32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVshufpsZmmK1zZmmZmmm512B32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVshufpdXmmK1zXmmXmmm128B64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVshufpdYmmK1zYmmYmmm256B64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVshufpdZmmK1zZmmZmmm512B64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVcvttpd2dqXmmK1zXmmm128B64: {access: accesses{Write, Read}},
	instructions.EvexVcvttpd2dqXmmK1zYmmm256B64: {access: accesses{Write, Read}},
	instructions.EvexVcvttpd2dqYmmK1zZmmm512B64Sae: {access: accesses{Write, Read}},
	instructions.EvexVcvtdq2pdXmmK1zXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVcvtdq2pdYmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVcvtdq2pdZmmK1zYmmm256: {access: accesses{Write, Read}},
	instructions.EvexVcvtpd2dqXmmK1zXmmm128B64: {access: accesses{Write, Read}},
	instructions.EvexVcvtpd2dqXmmK1zYmmm256B64: {access: accesses{Write, Read}},
	instructions.EvexVcvtpd2dqYmmK1zZmmm512B64Er: {access: accesses{Write, Read}},
	instructions.EvexVmovntdqM128Xmm: {access: accesses{Write, Read}},
	instructions.EvexVmovntdqM256Ymm: {access: accesses{Write, Read}},
	instructions.EvexVmovntdqM512Zmm: {access: accesses{Write, Read}},
	instructions.EvexVpshufbXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpshufbYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpshufbZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaddubswXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaddubswYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaddubswZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmulhrswXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmulhrswYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmulhrswZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminsbXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminsbYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminsbZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminuwXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminuwYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminuwZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxsbXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxsbYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxsbZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxuwXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxuwYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxuwZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminsdXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminsdYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminsdZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminsqXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminsqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminsqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminudXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminudYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminudZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminuqXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminuqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpminuqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxsdXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxsdYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxsdZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxsqXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxsqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxsqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxudXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxudYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxudZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxuqXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxuqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmaxuqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmulldXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmulldYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmulldZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmullqXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmullqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmullqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrlvdXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrlvdYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrlvdZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrlvqXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrlvqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsrlvqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsravdXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsravdYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsravdZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsravqXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsravqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsravqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsllvdXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsllvdYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsllvdZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsllvqXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsllvqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpsllvqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermi2dXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermi2dYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermi2dZmmK1zZmmZmmm512B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermi2qXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermi2qYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermi2qZmmK1zZmmZmmm512B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermt2dXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermt2dYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermt2dZmmK1zZmmZmmm512B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermt2qXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermt2qYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermt2qZmmK1zZmmZmmm512B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVblendmpsXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVblendmpsYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVblendmpsZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVblendmpdXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVblendmpdYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVblendmpdZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermi2psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermi2psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermi2psZmmK1zZmmZmmm512B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermi2pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermi2pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermi2pdZmmK1zZmmZmmm512B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermt2psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermt2psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermt2psZmmK1zZmmZmmm512B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermt2pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermt2pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpermt2pdZmmK1zZmmZmmm512B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpmuldqXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmuldqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpmuldqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpackusdwXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpackusdwYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpackusdwZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpeqqKrK1XmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpeqqKrK1YmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpeqqKrK1ZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpgtqKrK1XmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpgtqKrK1YmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpcmpgtqKrK1ZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermilpsXmmK1zXmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermilpsYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermilpsZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermilpdXmmK1zXmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermilpdYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermilpdZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermpsYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermpsZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermpdYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermpdZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermdYmmK1zYmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermdZmmK1zZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermqYmmK1zYmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermqZmmK1zZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVbroadcastsdYmmK1zXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVbroadcastsdZmmK1zXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVbroadcastf32x4YmmK1zM128: {access: accesses{Write, Read}},
	instructions.EvexVbroadcastf32x4ZmmK1zM128: {access: accesses{Write, Read}},
	instructions.EvexVbroadcastf64x2YmmK1zM128: {access: accesses{Write, Read}},
	instructions.EvexVbroadcastf64x2ZmmK1zM128: {access: accesses{Write, Read}},
	instructions.EvexVbroadcasti32x4YmmK1zM128: {access: accesses{Write, Read}},
	instructions.EvexVbroadcasti32x4ZmmK1zM128: {access: accesses{Write, Read}},
	instructions.EvexVbroadcasti64x2YmmK1zM128: {access: accesses{Write, Read}},
	instructions.EvexVbroadcasti64x2ZmmK1zM128: {access: accesses{Write, Read}},
	instructions.EvexVpbroadcastqXmmK1zXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVpbroadcastqYmmK1zXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVpbroadcastqZmmK1zXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVpbroadcastbXmmK1zXmmm8: {access: accesses{Write, Read}},
	instructions.EvexVpbroadcastbYmmK1zXmmm8: {access: accesses{Write, Read}},
	instructions.EvexVpbroadcastbZmmK1zXmmm8: {access: accesses{Write, Read}},
	instructions.EvexVpbroadcastwXmmK1zXmmm16: {access: accesses{Write, Read}},
	instructions.EvexVpbroadcastwYmmK1zXmmm16: {access: accesses{Write, Read}},
	instructions.EvexVpbroadcastwZmmK1zXmmm16: {access: accesses{Write, Read}},
	instructions.EvexVpabsbXmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVpabsbYmmK1zYmmm256: {access: accesses{Write, Read}},
	instructions.EvexVpabsbZmmK1zZmmm512: {access: accesses{Write, Read}},
	instructions.EvexVpabswXmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVpabswYmmK1zYmmm256: {access: accesses{Write, Read}},
	instructions.EvexVpabswZmmK1zZmmm512: {access: accesses{Write, Read}},
	instructions.EvexVpabsdXmmK1zXmmm128B32: {access: accesses{Write, Read}},
	instructions.EvexVpabsdYmmK1zYmmm256B32: {access: accesses{Write, Read}},
	instructions.EvexVpabsdZmmK1zZmmm512B32: {access: accesses{Write, Read}},
	instructions.EvexVpabsqXmmK1zXmmm128B64: {access: accesses{Write, Read}},
	instructions.EvexVpabsqYmmK1zYmmm256B64: {access: accesses{Write, Read}},
	instructions.EvexVpabsqZmmK1zZmmm512B64: {access: accesses{Write, Read}},
	instructions.EvexVpmovsxbwXmmK1zXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVpmovsxbwYmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVpmovsxbwZmmK1zYmmm256: {access: accesses{Write, Read}},
	instructions.EvexVpmovsxbdXmmK1zXmmm32: {access: accesses{Write, Read}},
	instructions.EvexVpmovsxbdYmmK1zXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVpmovsxbdZmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVpmovsxbqXmmK1zXmmm16: {access: accesses{Write, Read}},
	instructions.EvexVpmovsxbqYmmK1zXmmm32: {access: accesses{Write, Read}},
	instructions.EvexVpmovsxbqZmmK1zXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVpmovsxwdXmmK1zXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVpmovsxwdYmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVpmovsxwdZmmK1zYmmm256: {access: accesses{Write, Read}},
	instructions.EvexVpmovsxwqXmmK1zXmmm32: {access: accesses{Write, Read}},
	instructions.EvexVpmovsxwqYmmK1zXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVpmovsxwqZmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVpmovsxdqXmmK1zXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVpmovsxdqYmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVpmovsxdqZmmK1zYmmm256: {access: accesses{Write, Read}},
	instructions.EvexVpmovzxbwXmmK1zXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVpmovzxbwYmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVpmovzxbwZmmK1zYmmm256: {access: accesses{Write, Read}},
	instructions.EvexVpmovzxbdXmmK1zXmmm32: {access: accesses{Write, Read}},
	instructions.EvexVpmovzxbdYmmK1zXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVpmovzxbdZmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVpmovzxbqXmmK1zXmmm16: {access: accesses{Write, Read}},
	instructions.EvexVpmovzxbqYmmK1zXmmm32: {access: accesses{Write, Read}},
	instructions.EvexVpmovzxbqZmmK1zXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVpmovzxwdXmmK1zXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVpmovzxwdYmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVpmovzxwdZmmK1zYmmm256: {access: accesses{Write, Read}},
	instructions.EvexVpmovzxwqXmmK1zXmmm32: {access: accesses{Write, Read}},
	instructions.EvexVpmovzxwqYmmK1zXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVpmovzxwqZmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVpmovzxdqXmmK1zXmmm64: {access: accesses{Write, Read}},
	instructions.EvexVpmovzxdqYmmK1zXmmm128: {access: accesses{Write, Read}},
	instructions.EvexVpmovzxdqZmmK1zYmmm256: {access: accesses{Write, Read}},
	instructions.EvexVpmovwbXmmm64K1zXmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovwbXmmm128K1zYmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovwbYmmm256K1zZmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovdbXmmm32K1zXmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovdbXmmm64K1zYmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovdbXmmm128K1zZmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovqbXmmm16K1zXmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovqbXmmm32K1zYmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovqbXmmm64K1zZmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovdwXmmm64K1zXmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovdwXmmm128K1zYmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovdwYmmm256K1zZmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovqwXmmm32K1zXmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovqwXmmm64K1zYmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovqwXmmm128K1zZmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovqdXmmm64K1zXmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovqdXmmm128K1zYmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovqdYmmm256K1zZmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovm2bXmmKr: {access: accesses{Write, Read}},
	instructions.EvexVpmovm2bYmmKr: {access: accesses{Write, Read}},
	instructions.EvexVpmovm2bZmmKr: {access: accesses{Write, Read}},
	instructions.EvexVpmovm2wXmmKr: {access: accesses{Write, Read}},
	instructions.EvexVpmovm2wYmmKr: {access: accesses{Write, Read}},
	instructions.EvexVpmovm2wZmmKr: {access: accesses{Write, Read}},
	instructions.EvexVpmovm2dXmmKr: {access: accesses{Write, Read}},
	instructions.EvexVpmovm2dYmmKr: {access: accesses{Write, Read}},
	instructions.EvexVpmovm2dZmmKr: {access: accesses{Write, Read}},
	instructions.EvexVpmovm2qXmmKr: {access: accesses{Write, Read}},
	instructions.EvexVpmovm2qYmmKr: {access: accesses{Write, Read}},
	instructions.EvexVpmovm2qZmmKr: {access: accesses{Write, Read}},
	instructions.EvexVpmovb2mKrXmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovb2mKrYmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovb2mKrZmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovw2mKrXmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovw2mKrYmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovw2mKrZmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovd2mKrXmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovd2mKrYmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovd2mKrZmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovq2mKrXmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovq2mKrYmm: {access: accesses{Write, Read}},
	instructions.EvexVpmovq2mKrZmm: {access: accesses{Write, Read}},
	instructions.EvexVptestmbKrK1XmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestmbKrK1YmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestmbKrK1ZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestmwKrK1XmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestmwKrK1YmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestmwKrK1ZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestmdKrK1XmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestmdKrK1YmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestmdKrK1ZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestmqKrK1XmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestmqKrK1YmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestmqKrK1ZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestnmbKrK1XmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestnmbKrK1YmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestnmbKrK1ZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestnmwKrK1XmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestnmwKrK1YmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestnmwKrK1ZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestnmdKrK1XmmXmmm128B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestnmdKrK1YmmYmmm256B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestnmdKrK1ZmmZmmm512B32: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestnmqKrK1XmmXmmm128B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestnmqKrK1YmmYmmm256B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVptestnmqKrK1ZmmZmmm512B64: {access: accesses{Write, Read, Read}},
	instructions.EvexVpblendmbXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpblendmbYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpblendmbZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpblendmwXmmK1zXmmXmmm128: {access: accesses{Write, Read, Read}},
	instructions.EvexVpblendmwYmmK1zYmmYmmm256: {access: accesses{Write, Read, Read}},
	instructions.EvexVpblendmwZmmK1zZmmZmmm512: {access: accesses{Write, Read, Read}},
	instructions.EvexVpconflictdXmmK1zXmmm128B32: {access: accesses{Write, Read}},
	instructions.EvexVpconflictdYmmK1zYmmm256B32: {access: accesses{Write, Read}},
	instructions.EvexVpconflictdZmmK1zZmmm512B32: {access: accesses{Write, Read}},
	instructions.EvexVpconflictqXmmK1zXmmm128B64: {access: accesses{Write, Read}},
	instructions.EvexVpconflictqYmmK1zYmmm256B64: {access: accesses{Write, Read}},
	instructions.EvexVpconflictqZmmK1zZmmm512B64: {access: accesses{Write, Read}},
	instructions.EvexVplzcntdXmmK1zXmmm128B32: {access: accesses{Write, Read}},
	instructions.EvexVplzcntdYmmK1zYmmm256B32: {access: accesses{Write, Read}},
	instructions.EvexVplzcntdZmmK1zZmmm512B32: {access: accesses{Write, Read}},
	instructions.EvexVplzcntqXmmK1zXmmm128B64: {access: accesses{Write, Read}},
	instructions.EvexVplzcntqYmmK1zYmmm256B64: {access: accesses{Write, Read}},
	instructions.EvexVplzcntqZmmK1zZmmm512B64: {access: accesses{Write, Read}},
	instructions.EvexVrcp14psXmmK1zXmmm128B32: {access: accesses{Write, Read}},
	instructions.EvexVrcp14psYmmK1zYmmm256B32: {access: accesses{Write, Read}},
	instructions.EvexVrcp14psZmmK1zZmmm512B32: {access: accesses{Write, Read}},
	instructions.EvexVrcp14pdXmmK1zXmmm128B64: {access: accesses{Write, Read}},
	instructions.EvexVrcp14pdYmmK1zYmmm256B64: {access: accesses{Write, Read}},
	instructions.EvexVrcp14pdZmmK1zZmmm512B64: {access: accesses{Write, Read}},
	instructions.EvexVrsqrt14psXmmK1zXmmm128B32: {access: accesses{Write, Read}},
	instructions.EvexVrsqrt14psYmmK1zYmmm256B32: {access: accesses{Write, Read}},
	instructions.EvexVrsqrt14psZmmK1zZmmm512B32: {access: accesses{Write, Read}},
	instructions.EvexVrsqrt14pdXmmK1zXmmm128B64: {access: accesses{Write, Read}},
	instructions.EvexVrsqrt14pdYmmK1zYmmm256B64: {access: accesses{Write, Read}},
	instructions.EvexVrsqrt14pdZmmK1zZmmm512B64: {access: accesses{Write, Read}},
	instructions.EvexVfmaddsub132psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmaddsub132psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmaddsub132psZmmK1zZmmZmmm512B32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmaddsub132pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmaddsub132pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmaddsub132pdZmmK1zZmmZmmm512B64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsubadd132psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsubadd132psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsubadd132psZmmK1zZmmZmmm512B32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsubadd132pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsubadd132pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsubadd132pdZmmK1zZmmZmmm512B64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub132psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub132psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub132psZmmK1zZmmZmmm512B32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub132pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub132pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub132pdZmmK1zZmmZmmm512B64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub132ssXmmK1zXmmXmmm32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub132sdXmmK1zXmmXmmm64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd132psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd132psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd132psZmmK1zZmmZmmm512B32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd132pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd132pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd132pdZmmK1zZmmZmmm512B64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd132ssXmmK1zXmmXmmm32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd132sdXmmK1zXmmXmmm64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub132psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub132psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub132psZmmK1zZmmZmmm512B32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub132pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub132pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub132pdZmmK1zZmmZmmm512B64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub132ssXmmK1zXmmXmmm32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub132sdXmmK1zXmmXmmm64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmaddsub213psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmaddsub213psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmaddsub213psZmmK1zZmmZmmm512B32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmaddsub213pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmaddsub213pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmaddsub213pdZmmK1zZmmZmmm512B64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsubadd213psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsubadd213psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsubadd213psZmmK1zZmmZmmm512B32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsubadd213pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsubadd213pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsubadd213pdZmmK1zZmmZmmm512B64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub213psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub213psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub213psZmmK1zZmmZmmm512B32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub213pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub213pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub213pdZmmK1zZmmZmmm512B64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub213ssXmmK1zXmmXmmm32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub213sdXmmK1zXmmXmmm64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd213psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd213psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd213psZmmK1zZmmZmmm512B32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd213pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd213pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd213pdZmmK1zZmmZmmm512B64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd213ssXmmK1zXmmXmmm32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd213sdXmmK1zXmmXmmm64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub213psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub213psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub213psZmmK1zZmmZmmm512B32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub213pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub213pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub213pdZmmK1zZmmZmmm512B64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub213ssXmmK1zXmmXmmm32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub213sdXmmK1zXmmXmmm64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmaddsub231psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmaddsub231psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmaddsub231psZmmK1zZmmZmmm512B32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmaddsub231pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmaddsub231pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmaddsub231pdZmmK1zZmmZmmm512B64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsubadd231psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsubadd231psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsubadd231psZmmK1zZmmZmmm512B32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsubadd231pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsubadd231pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsubadd231pdZmmK1zZmmZmmm512B64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub231psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub231psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub231psZmmK1zZmmZmmm512B32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub231pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub231pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub231pdZmmK1zZmmZmmm512B64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub231ssXmmK1zXmmXmmm32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfmsub231sdXmmK1zXmmXmmm64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd231psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd231psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd231psZmmK1zZmmZmmm512B32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd231pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd231pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd231pdZmmK1zZmmZmmm512B64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd231ssXmmK1zXmmXmmm32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmadd231sdXmmK1zXmmXmmm64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub231psXmmK1zXmmXmmm128B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub231psYmmK1zYmmYmmm256B32: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub231psZmmK1zZmmZmmm512B32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub231pdXmmK1zXmmXmmm128B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub231pdYmmK1zYmmYmmm256B64: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub231pdZmmK1zZmmZmmm512B64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub231ssXmmK1zXmmXmmm32Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVfnmsub231sdXmmK1zXmmXmmm64Er: {access: accesses{ReadWrite, Read, Read}},
	instructions.EvexVpgatherddXmmK1Vm32x: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVpgatherddYmmK1Vm32y: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVpgatherddZmmK1Vm32z: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVpgatherdqXmmK1Vm32x: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVpgatherdqYmmK1Vm32x: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVpgatherdqZmmK1Vm32y: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVpgatherqdXmmK1Vm64x: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVpgatherqdXmmK1Vm64y: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVpgatherqdYmmK1Vm64z: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVpgatherqqXmmK1Vm64x: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVpgatherqqYmmK1Vm64y: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVpgatherqqZmmK1Vm64z: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVgatherdpsXmmK1Vm32x: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVgatherdpsYmmK1Vm32y: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVgatherdpsZmmK1Vm32z: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVgatherdpdXmmK1Vm32x: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVgatherdpdYmmK1Vm32x: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVgatherdpdZmmK1Vm32y: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVgatherqpsXmmK1Vm64x: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVgatherqpsXmmK1Vm64y: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVgatherqpsYmmK1Vm64z: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVgatherqpdXmmK1Vm64x: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVgatherqpdYmmK1Vm64y: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVgatherqpdZmmK1Vm64z: {access: accesses{ReadCondWrite, CondRead}},
	instructions.EvexVpscatterddVm32xK1Xmm: {access: accesses{CondWrite, Read}},
	instructions.EvexVpscatterddVm32yK1Ymm: {access: accesses{CondWrite, Read}},
	instructions.EvexVpscatterddVm32zK1Zmm: {access: accesses{CondWrite, Read}},
	instructions.EvexVpscatterdqVm32xK1Xmm: {access: accesses{CondWrite, Read}},
	instructions.EvexVpscatterdqVm32xK1Ymm: {access: accesses{CondWrite, Read}},
	instructions.EvexVpscatterdqVm32yK1Zmm: {access: accesses{CondWrite, Read}},
	instructions.EvexVpscatterqdVm64xK1Xmm: {access: accesses{CondWrite, Read}},
	instructions.EvexVpscatterqdVm64yK1Xmm: {access: accesses{CondWrite, Read}},
	instructions.EvexVpscatterqdVm64zK1Ymm: {access: accesses{CondWrite, Read}},
	instructions.EvexVpscatterqqVm64xK1Xmm: {access: accesses{CondWrite, Read}},
	instructions.EvexVpscatterqqVm64yK1Ymm: {access: accesses{CondWrite, Read}},
	instructions.EvexVpscatterqqVm64zK1Zmm: {access: accesses{CondWrite, Read}},
	instructions.EvexVscatterdpsVm32xK1Xmm: {access: accesses{CondWrite, Read}},
	instructions.EvexVscatterdpsVm32yK1Ymm: {access: accesses{CondWrite, Read}},
	instructions.EvexVscatterdpsVm32zK1Zmm: {access: accesses{CondWrite, Read}},
	instructions.EvexVscatterdpdVm32xK1Xmm: {access: accesses{CondWrite, Read}},
	instructions.EvexVscatterdpdVm32xK1Ymm: {access: accesses{CondWrite, Read}},
	instructions.EvexVscatterdpdVm32yK1Zmm: {access: accesses{CondWrite, Read}},
	instructions.EvexVscatterqpsVm64xK1Xmm: {access: accesses{CondWrite, Read}},
	instructions.EvexVscatterqpsVm64yK1Xmm: {access: accesses{CondWrite, Read}},
	instructions.EvexVscatterqpsVm64zK1Ymm: {access: accesses{CondWrite, Read}},
	instructions.EvexVscatterqpdVm64xK1Xmm: {access: accesses{CondWrite, Read}},
	instructions.EvexVscatterqpdVm64yK1Ymm: {access: accesses{CondWrite, Read}},
	instructions.EvexVscatterqpdVm64zK1Zmm: {access: accesses{CondWrite, Read}},
	instructions.EvexVpermqYmmK1zYmmm256B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermqZmmK1zZmmm512B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermpdYmmK1zYmmm256B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermpdZmmK1zZmmm512B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermilpsXmmK1zXmmm128B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermilpsYmmK1zYmmm256B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermilpsZmmK1zZmmm512B32Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermilpdXmmK1zXmmm128B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermilpdYmmK1zYmmm256B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpermilpdZmmK1zZmmm512B64Imm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpalignrXmmK1zXmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpalignrYmmK1zYmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpalignrZmmK1zZmmZmmm512Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpextrbR32m8XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpextrbR64m8XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpextrwR32m16XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpextrwR64m16XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpextrdRm32XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpextrqRm64XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVextractpsRm32XmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVpinsrbXmmXmmR32m8Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpinsrbXmmXmmR64m8Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVinsertpsXmmXmmXmmm32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpinsrdXmmXmmRm32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpinsrqXmmXmmRm64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVinsertf32x4YmmK1zYmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVinsertf32x4ZmmK1zZmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVinsertf64x2YmmK1zYmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVinsertf64x2ZmmK1zZmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVinserti32x4YmmK1zYmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVinserti32x4ZmmK1zZmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVinserti64x2YmmK1zYmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVinserti64x2ZmmK1zZmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVextractf32x4Xmmm128K1zYmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVextractf32x4Xmmm128K1zZmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVextractf64x2Xmmm128K1zYmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVextractf64x2Xmmm128K1zZmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVextracti32x4Xmmm128K1zYmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVextracti32x4Xmmm128K1zZmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVextracti64x2Xmmm128K1zYmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVextracti64x2Xmmm128K1zZmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVinsertf32x8ZmmK1zZmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVinsertf64x4ZmmK1zZmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVinserti32x8ZmmK1zZmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVinserti64x4ZmmK1zZmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVextractf32x8Ymmm256K1zZmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVextractf64x4Ymmm256K1zZmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVextracti32x8Ymmm256K1zZmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVextracti64x4Ymmm256K1zZmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVcvtps2phXmmm64K1zXmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVcvtps2phXmmm128K1zYmmImm8: {access: accesses{Write, Read, Read}},
	instructions.EvexVcvtps2phYmmm256K1zZmmImm8Sae: {access: accesses{Write, Read, Read}},
	instructions.EvexVshuff32x4YmmK1zYmmYmmm256B32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVshuff32x4ZmmK1zZmmZmmm512B32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVshuff64x2YmmK1zYmmYmmm256B64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVshuff64x2ZmmK1zZmmZmmm512B64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVshufi32x4YmmK1zYmmYmmm256B32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVshufi32x4ZmmK1zZmmZmmm512B32Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVshufi64x2YmmK1zYmmYmmm256B64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVshufi64x2ZmmK1zZmmZmmm512B64Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpternlogdXmmK1zXmmXmmm128B32Imm8: {access: accesses{ReadWrite, Read, Read, Read}},
	instructions.EvexVpternlogdYmmK1zYmmYmmm256B32Imm8: {access: accesses{ReadWrite, Read, Read, Read}},
	instructions.EvexVpternlogdZmmK1zZmmZmmm512B32Imm8: {access: accesses{ReadWrite, Read, Read, Read}},
	instructions.EvexVpternlogqXmmK1zXmmXmmm128B64Imm8: {access: accesses{ReadWrite, Read, Read, Read}},
	instructions.EvexVpternlogqYmmK1zYmmYmmm256B64Imm8: {access: accesses{ReadWrite, Read, Read, Read}},
	instructions.EvexVpternlogqZmmK1zZmmZmmm512B64Imm8: {access: accesses{ReadWrite, Read, Read, Read}},
	instructions.EvexVpcmpubKrK1XmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpubKrK1YmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpubKrK1ZmmZmmm512Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpuwKrK1XmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpuwKrK1YmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpuwKrK1ZmmZmmm512Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpbKrK1XmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpbKrK1YmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpbKrK1ZmmZmmm512Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpwKrK1XmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpwKrK1YmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpcmpwKrK1ZmmZmmm512Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVdbpsadbwXmmK1zXmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVdbpsadbwYmmK1zYmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVdbpsadbwZmmK1zZmmZmmm512Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpclmulqdqXmmXmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpclmulqdqYmmYmmYmmm256Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.EvexVpclmulqdqZmmZmmZmmm512Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.XopVpcmovXmmXmmXmmm128Xmm: {access: accesses{Write, Read, Read, Read}},
	instructions.XopVpcmovYmmYmmYmmm256Ymm: {access: accesses{Write, Read, Read, Read}},
	instructions.XopVppermXmmXmmXmmm128Xmm: {access: accesses{Write, Read, Read, Read}},
	instructions.XopVprotbXmmXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.XopVprotdXmmXmmm128Imm8: {access: accesses{Write, Read, Read}},
	instructions.XopVpcombXmmXmmXmmm128Imm8: {access: accesses{Write, Read, Read, Read}},
	instructions.XopBlcfillR32Rm32: {access: accesses{Write, Read}, rflags: 49},
	instructions.XopBlcfillR64Rm64: {access: accesses{Write, Read}, rflags: 49},
	instructions.XopBlsfillR32Rm32: {access: accesses{Write, Read}, rflags: 49},
	instructions.XopBlsfillR64Rm64: {access: accesses{Write, Read}, rflags: 49},
	instructions.XopBlcsR32Rm32: {access: accesses{Write, Read}, rflags: 49},
	instructions.XopBlcsR64Rm64: {access: accesses{Write, Read}, rflags: 49},
	instructions.XopTzmskR32Rm32: {access: accesses{Write, Read}, rflags: 49},
	instructions.XopTzmskR64Rm64: {access: accesses{Write, Read}, rflags: 49},
	instructions.XopBlcicR32Rm32: {access: accesses{Write, Read}, rflags: 49},
	instructions.XopBlcicR64Rm64: {access: accesses{Write, Read}, rflags: 49},
	instructions.XopBlsicR32Rm32: {access: accesses{Write, Read}, rflags: 49},
	instructions.XopBlsicR64Rm64: {access: accesses{Write, Read}, rflags: 49},
	instructions.XopT1mskcR32Rm32: {access: accesses{Write, Read}, rflags: 49},
	instructions.XopT1mskcR64Rm64: {access: accesses{Write, Read}, rflags: 49},
	instructions.XopBlcmskR32Rm32: {access: accesses{Write, Read}, rflags: 49},
	instructions.XopBlcmskR64Rm64: {access: accesses{Write, Read}, rflags: 49},
	instructions.XopBlciR32Rm32: {access: accesses{Write, Read}, rflags: 49},
	instructions.XopBlciR64Rm64: {access: accesses{Write, Read}, rflags: 49},
	instructions.XopVfrczpsXmmXmmm128: {access: accesses{Write, Read}},
	instructions.XopVfrczpsYmmYmmm256: {access: accesses{Write, Read}},
	instructions.XopVfrczpdXmmXmmm128: {access: accesses{Write, Read}},
	instructions.XopVfrczpdYmmYmmm256: {access: accesses{Write, Read}},
	instructions.XopVprotbXmmXmmm128Xmm: {access: accesses{Write, Read, Read}},
	instructions.XopVprotdXmmXmmm128Xmm: {access: accesses{Write, Read, Read}},
	instructions.XopBextrR32Rm32Imm32: {access: accesses{Write, Read, Read}, rflags: 51},
	instructions.XopBextrR64Rm64Imm32: {access: accesses{Write, Read, Read}, rflags: 51},
	instructions.XopLwpinsR32Rm32Imm32: {access: accesses{Read, Read, Read}, rflags: 45},
	instructions.XopLwpinsR64Rm32Imm32: {access: accesses{Read, Read, Read}, rflags: 45},
	instructions.XopLwpvalR32Rm32Imm32: {access: accesses{Read, Read, Read}},
	instructions.XopLwpvalR64Rm32Imm32: {access: accesses{Read, Read, Read}},
}
