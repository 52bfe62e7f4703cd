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
)

// Precomputed opcode tables. Do not edit.

var entries = [...]Entry{
	{}, // 0
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpGb}, Codes: Codes{{instructions.AddRm8R8, instructions.AddRm8R8, instructions.AddRm8R8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 1
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpGv}, Codes: Codes{{instructions.AddRm16R16, instructions.AddRm32R32, instructions.AddRm64R64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 2
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGb, OpEb}, Codes: Codes{{instructions.AddR8Rm8, instructions.AddR8Rm8, instructions.AddR8Rm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 3
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.AddR16Rm16, instructions.AddR32Rm32, instructions.AddR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 4
	{Kind: KindNormal, Operands: Operands{OpAL, OpIb}, Codes: Codes{{instructions.AddALImm8, instructions.AddALImm8, instructions.AddALImm8}}}, // 5
	{Kind: KindNormal, Operands: Operands{OpRAX, OpIz}, Codes: Codes{{instructions.AddAXImm16, instructions.AddEAXImm32, instructions.AddRAXImm32}}}, // 6
	{Kind: KindNormal, Operands: Operands{OpES}, Codes: Codes{{instructions.PushES, instructions.PushES, instructions.Invalid}}}, // 7
	{Kind: KindNormal, Operands: Operands{OpES}, Codes: Codes{{instructions.PopES, instructions.PopES, instructions.Invalid}}}, // 8
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpGb}, Codes: Codes{{instructions.OrRm8R8, instructions.OrRm8R8, instructions.OrRm8R8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 9
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpGv}, Codes: Codes{{instructions.OrRm16R16, instructions.OrRm32R32, instructions.OrRm64R64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 10
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGb, OpEb}, Codes: Codes{{instructions.OrR8Rm8, instructions.OrR8Rm8, instructions.OrR8Rm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 11
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.OrR16Rm16, instructions.OrR32Rm32, instructions.OrR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 12
	{Kind: KindNormal, Operands: Operands{OpAL, OpIb}, Codes: Codes{{instructions.OrALImm8, instructions.OrALImm8, instructions.OrALImm8}}}, // 13
	{Kind: KindNormal, Operands: Operands{OpRAX, OpIz}, Codes: Codes{{instructions.OrAXImm16, instructions.OrEAXImm32, instructions.OrRAXImm32}}}, // 14
	{Kind: KindNormal, Operands: Operands{OpCS}, Codes: Codes{{instructions.PushCS, instructions.PushCS, instructions.Invalid}}}, // 15
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpGb}, Codes: Codes{{instructions.AdcRm8R8, instructions.AdcRm8R8, instructions.AdcRm8R8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 16
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpGv}, Codes: Codes{{instructions.AdcRm16R16, instructions.AdcRm32R32, instructions.AdcRm64R64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 17
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGb, OpEb}, Codes: Codes{{instructions.AdcR8Rm8, instructions.AdcR8Rm8, instructions.AdcR8Rm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 18
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.AdcR16Rm16, instructions.AdcR32Rm32, instructions.AdcR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 19
	{Kind: KindNormal, Operands: Operands{OpAL, OpIb}, Codes: Codes{{instructions.AdcALImm8, instructions.AdcALImm8, instructions.AdcALImm8}}}, // 20
	{Kind: KindNormal, Operands: Operands{OpRAX, OpIz}, Codes: Codes{{instructions.AdcAXImm16, instructions.AdcEAXImm32, instructions.AdcRAXImm32}}}, // 21
	{Kind: KindNormal, Operands: Operands{OpSS}, Codes: Codes{{instructions.PushSS, instructions.PushSS, instructions.Invalid}}}, // 22
	{Kind: KindNormal, Operands: Operands{OpSS}, Codes: Codes{{instructions.PopSS, instructions.PopSS, instructions.Invalid}}}, // 23
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpGb}, Codes: Codes{{instructions.SbbRm8R8, instructions.SbbRm8R8, instructions.SbbRm8R8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 24
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpGv}, Codes: Codes{{instructions.SbbRm16R16, instructions.SbbRm32R32, instructions.SbbRm64R64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 25
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGb, OpEb}, Codes: Codes{{instructions.SbbR8Rm8, instructions.SbbR8Rm8, instructions.SbbR8Rm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 26
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.SbbR16Rm16, instructions.SbbR32Rm32, instructions.SbbR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 27
	{Kind: KindNormal, Operands: Operands{OpAL, OpIb}, Codes: Codes{{instructions.SbbALImm8, instructions.SbbALImm8, instructions.SbbALImm8}}}, // 28
	{Kind: KindNormal, Operands: Operands{OpRAX, OpIz}, Codes: Codes{{instructions.SbbAXImm16, instructions.SbbEAXImm32, instructions.SbbRAXImm32}}}, // 29
	{Kind: KindNormal, Operands: Operands{OpDS}, Codes: Codes{{instructions.PushDS, instructions.PushDS, instructions.Invalid}}}, // 30
	{Kind: KindNormal, Operands: Operands{OpDS}, Codes: Codes{{instructions.PopDS, instructions.PopDS, instructions.Invalid}}}, // 31
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpGb}, Codes: Codes{{instructions.AndRm8R8, instructions.AndRm8R8, instructions.AndRm8R8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 32
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpGv}, Codes: Codes{{instructions.AndRm16R16, instructions.AndRm32R32, instructions.AndRm64R64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 33
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGb, OpEb}, Codes: Codes{{instructions.AndR8Rm8, instructions.AndR8Rm8, instructions.AndR8Rm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 34
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.AndR16Rm16, instructions.AndR32Rm32, instructions.AndR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 35
	{Kind: KindNormal, Operands: Operands{OpAL, OpIb}, Codes: Codes{{instructions.AndALImm8, instructions.AndALImm8, instructions.AndALImm8}}}, // 36
	{Kind: KindNormal, Operands: Operands{OpRAX, OpIz}, Codes: Codes{{instructions.AndAXImm16, instructions.AndEAXImm32, instructions.AndRAXImm32}}}, // 37
	{Kind: KindNormal, Codes: Codes{{instructions.Daa, instructions.Daa, instructions.Invalid}}}, // 38
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpGb}, Codes: Codes{{instructions.SubRm8R8, instructions.SubRm8R8, instructions.SubRm8R8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 39
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpGv}, Codes: Codes{{instructions.SubRm16R16, instructions.SubRm32R32, instructions.SubRm64R64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 40
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGb, OpEb}, Codes: Codes{{instructions.SubR8Rm8, instructions.SubR8Rm8, instructions.SubR8Rm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 41
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.SubR16Rm16, instructions.SubR32Rm32, instructions.SubR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 42
	{Kind: KindNormal, Operands: Operands{OpAL, OpIb}, Codes: Codes{{instructions.SubALImm8, instructions.SubALImm8, instructions.SubALImm8}}}, // 43
	{Kind: KindNormal, Operands: Operands{OpRAX, OpIz}, Codes: Codes{{instructions.SubAXImm16, instructions.SubEAXImm32, instructions.SubRAXImm32}}}, // 44
	{Kind: KindNormal, Codes: Codes{{instructions.Das, instructions.Das, instructions.Invalid}}}, // 45
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpGb}, Codes: Codes{{instructions.XorRm8R8, instructions.XorRm8R8, instructions.XorRm8R8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 46
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpGv}, Codes: Codes{{instructions.XorRm16R16, instructions.XorRm32R32, instructions.XorRm64R64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 47
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGb, OpEb}, Codes: Codes{{instructions.XorR8Rm8, instructions.XorR8Rm8, instructions.XorR8Rm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 48
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.XorR16Rm16, instructions.XorR32Rm32, instructions.XorR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 49
	{Kind: KindNormal, Operands: Operands{OpAL, OpIb}, Codes: Codes{{instructions.XorALImm8, instructions.XorALImm8, instructions.XorALImm8}}}, // 50
	{Kind: KindNormal, Operands: Operands{OpRAX, OpIz}, Codes: Codes{{instructions.XorAXImm16, instructions.XorEAXImm32, instructions.XorRAXImm32}}}, // 51
	{Kind: KindNormal, Codes: Codes{{instructions.Aaa, instructions.Aaa, instructions.Invalid}}}, // 52
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpGb}, Codes: Codes{{instructions.CmpRm8R8, instructions.CmpRm8R8, instructions.CmpRm8R8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 53
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpGv}, Codes: Codes{{instructions.CmpRm16R16, instructions.CmpRm32R32, instructions.CmpRm64R64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 54
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGb, OpEb}, Codes: Codes{{instructions.CmpR8Rm8, instructions.CmpR8Rm8, instructions.CmpR8Rm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 55
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.CmpR16Rm16, instructions.CmpR32Rm32, instructions.CmpR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 56
	{Kind: KindNormal, Operands: Operands{OpAL, OpIb}, Codes: Codes{{instructions.CmpALImm8, instructions.CmpALImm8, instructions.CmpALImm8}}}, // 57
	{Kind: KindNormal, Operands: Operands{OpRAX, OpIz}, Codes: Codes{{instructions.CmpAXImm16, instructions.CmpEAXImm32, instructions.CmpRAXImm32}}}, // 58
	{Kind: KindNormal, Codes: Codes{{instructions.Aas, instructions.Aas, instructions.Invalid}}}, // 59
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.IncR16, instructions.IncR32, instructions.Invalid}}}, // 60
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.IncR16, instructions.IncR32, instructions.Invalid}}}, // 61
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.IncR16, instructions.IncR32, instructions.Invalid}}}, // 62
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.IncR16, instructions.IncR32, instructions.Invalid}}}, // 63
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.IncR16, instructions.IncR32, instructions.Invalid}}}, // 64
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.IncR16, instructions.IncR32, instructions.Invalid}}}, // 65
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.IncR16, instructions.IncR32, instructions.Invalid}}}, // 66
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.IncR16, instructions.IncR32, instructions.Invalid}}}, // 67
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.DecR16, instructions.DecR32, instructions.Invalid}}}, // 68
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.DecR16, instructions.DecR32, instructions.Invalid}}}, // 69
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.DecR16, instructions.DecR32, instructions.Invalid}}}, // 70
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.DecR16, instructions.DecR32, instructions.Invalid}}}, // 71
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.DecR16, instructions.DecR32, instructions.Invalid}}}, // 72
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.DecR16, instructions.DecR32, instructions.Invalid}}}, // 73
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.DecR16, instructions.DecR32, instructions.Invalid}}}, // 74
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.DecR16, instructions.DecR32, instructions.Invalid}}}, // 75
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpZv}, Codes: Codes{{instructions.PushR16, instructions.PushR32, instructions.PushR64}}}, // 76
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpZv}, Codes: Codes{{instructions.PushR16, instructions.PushR32, instructions.PushR64}}}, // 77
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpZv}, Codes: Codes{{instructions.PushR16, instructions.PushR32, instructions.PushR64}}}, // 78
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpZv}, Codes: Codes{{instructions.PushR16, instructions.PushR32, instructions.PushR64}}}, // 79
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpZv}, Codes: Codes{{instructions.PushR16, instructions.PushR32, instructions.PushR64}}}, // 80
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpZv}, Codes: Codes{{instructions.PushR16, instructions.PushR32, instructions.PushR64}}}, // 81
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpZv}, Codes: Codes{{instructions.PushR16, instructions.PushR32, instructions.PushR64}}}, // 82
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpZv}, Codes: Codes{{instructions.PushR16, instructions.PushR32, instructions.PushR64}}}, // 83
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpZv}, Codes: Codes{{instructions.PopR16, instructions.PopR32, instructions.PopR64}}}, // 84
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpZv}, Codes: Codes{{instructions.PopR16, instructions.PopR32, instructions.PopR64}}}, // 85
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpZv}, Codes: Codes{{instructions.PopR16, instructions.PopR32, instructions.PopR64}}}, // 86
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpZv}, Codes: Codes{{instructions.PopR16, instructions.PopR32, instructions.PopR64}}}, // 87
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpZv}, Codes: Codes{{instructions.PopR16, instructions.PopR32, instructions.PopR64}}}, // 88
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpZv}, Codes: Codes{{instructions.PopR16, instructions.PopR32, instructions.PopR64}}}, // 89
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpZv}, Codes: Codes{{instructions.PopR16, instructions.PopR32, instructions.PopR64}}}, // 90
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpZv}, Codes: Codes{{instructions.PopR16, instructions.PopR32, instructions.PopR64}}}, // 91
	{Kind: KindNormal, Codes: Codes{{instructions.Pusha, instructions.Pushad, instructions.Invalid}}}, // 92
	{Kind: KindNormal, Codes: Codes{{instructions.Popa, instructions.Popad, instructions.Invalid}}}, // 93
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpGv, OpM}, Codes: Codes{{instructions.BoundR16M1616, instructions.BoundR32M3232, instructions.Invalid}}, Memory: Sizes{{memorysize.Bound16, memorysize.Bound32, memorysize.Unknown}}}, // 94
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEw, OpGw}, Codes: Codes{{instructions.ArplRm16R16, instructions.ArplRm16R16, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.Unknown}}}, // 95
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpIz}, Codes: Codes{{instructions.PushImm16, instructions.PushImm32, instructions.PushImm32}}}, // 96
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv, OpIz}, Codes: Codes{{instructions.ImulR16Rm16Imm16, instructions.ImulR32Rm32Imm32, instructions.ImulR64Rm64Imm32}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 97
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpIbs}, Codes: Codes{{instructions.PushImm8, instructions.PushImm8, instructions.PushImm8}}}, // 98
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv, OpIbs}, Codes: Codes{{instructions.ImulR16Rm16Imm8, instructions.ImulR32Rm32Imm8, instructions.ImulR64Rm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 99
	{Kind: KindNormal, Operands: Operands{OpY, OpDX}, Codes: Codes{{instructions.InsbM8DX, instructions.InsbM8DX, instructions.InsbM8DX}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 100
	{Kind: KindNormal, Operands: Operands{OpY, OpDX}, Codes: Codes{{instructions.InswM16DX, instructions.InsdM32DX, instructions.InsdM64DX}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 101
	{Kind: KindNormal, Operands: Operands{OpDX, OpX}, Codes: Codes{{instructions.OutsbDXM8, instructions.OutsbDXM8, instructions.OutsbDXM8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 102
	{Kind: KindNormal, Operands: Operands{OpDX, OpX}, Codes: Codes{{instructions.OutswDXM16, instructions.OutsdDXM32, instructions.OutsdDXM64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 103
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.JoRel8Op16, instructions.JoRel8Op32, instructions.JoRel8Op64}}}, // 104
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.JnoRel8Op16, instructions.JnoRel8Op32, instructions.JnoRel8Op64}}}, // 105
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.JbRel8Op16, instructions.JbRel8Op32, instructions.JbRel8Op64}}}, // 106
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.JaeRel8Op16, instructions.JaeRel8Op32, instructions.JaeRel8Op64}}}, // 107
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.JeRel8Op16, instructions.JeRel8Op32, instructions.JeRel8Op64}}}, // 108
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.JneRel8Op16, instructions.JneRel8Op32, instructions.JneRel8Op64}}}, // 109
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.JbeRel8Op16, instructions.JbeRel8Op32, instructions.JbeRel8Op64}}}, // 110
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.JaRel8Op16, instructions.JaRel8Op32, instructions.JaRel8Op64}}}, // 111
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.JsRel8Op16, instructions.JsRel8Op32, instructions.JsRel8Op64}}}, // 112
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.JnsRel8Op16, instructions.JnsRel8Op32, instructions.JnsRel8Op64}}}, // 113
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.JpRel8Op16, instructions.JpRel8Op32, instructions.JpRel8Op64}}}, // 114
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.JnpRel8Op16, instructions.JnpRel8Op32, instructions.JnpRel8Op64}}}, // 115
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.JlRel8Op16, instructions.JlRel8Op32, instructions.JlRel8Op64}}}, // 116
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.JgeRel8Op16, instructions.JgeRel8Op32, instructions.JgeRel8Op64}}}, // 117
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.JleRel8Op16, instructions.JleRel8Op32, instructions.JleRel8Op64}}}, // 118
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.JgRel8Op16, instructions.JgRel8Op32, instructions.JgRel8Op64}}}, // 119
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.AddRm8Imm8, instructions.AddRm8Imm8, instructions.AddRm8Imm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 120
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.OrRm8Imm8, instructions.OrRm8Imm8, instructions.OrRm8Imm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 121
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.AdcRm8Imm8, instructions.AdcRm8Imm8, instructions.AdcRm8Imm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 122
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.SbbRm8Imm8, instructions.SbbRm8Imm8, instructions.SbbRm8Imm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 123
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.AndRm8Imm8, instructions.AndRm8Imm8, instructions.AndRm8Imm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 124
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.SubRm8Imm8, instructions.SubRm8Imm8, instructions.SubRm8Imm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 125
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.XorRm8Imm8, instructions.XorRm8Imm8, instructions.XorRm8Imm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 126
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.CmpRm8Imm8, instructions.CmpRm8Imm8, instructions.CmpRm8Imm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 127
	{Kind: KindGroup, Flags: FlagModRM, Group: 1}, // 128
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpIz}, Codes: Codes{{instructions.AddRm16Imm16, instructions.AddRm32Imm32, instructions.AddRm64Imm32}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 129
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpIz}, Codes: Codes{{instructions.OrRm16Imm16, instructions.OrRm32Imm32, instructions.OrRm64Imm32}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 130
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpIz}, Codes: Codes{{instructions.AdcRm16Imm16, instructions.AdcRm32Imm32, instructions.AdcRm64Imm32}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 131
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpIz}, Codes: Codes{{instructions.SbbRm16Imm16, instructions.SbbRm32Imm32, instructions.SbbRm64Imm32}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 132
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpIz}, Codes: Codes{{instructions.AndRm16Imm16, instructions.AndRm32Imm32, instructions.AndRm64Imm32}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 133
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpIz}, Codes: Codes{{instructions.SubRm16Imm16, instructions.SubRm32Imm32, instructions.SubRm64Imm32}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 134
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpIz}, Codes: Codes{{instructions.XorRm16Imm16, instructions.XorRm32Imm32, instructions.XorRm64Imm32}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 135
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpIz}, Codes: Codes{{instructions.CmpRm16Imm16, instructions.CmpRm32Imm32, instructions.CmpRm64Imm32}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 136
	{Kind: KindGroup, Flags: FlagModRM, Group: 2}, // 137
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.AddRm8Imm8Op82, instructions.AddRm8Imm8Op82, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.Unknown}}}, // 138
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.OrRm8Imm8Op82, instructions.OrRm8Imm8Op82, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.Unknown}}}, // 139
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.AdcRm8Imm8Op82, instructions.AdcRm8Imm8Op82, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.Unknown}}}, // 140
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.SbbRm8Imm8Op82, instructions.SbbRm8Imm8Op82, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.Unknown}}}, // 141
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.AndRm8Imm8Op82, instructions.AndRm8Imm8Op82, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.Unknown}}}, // 142
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.SubRm8Imm8Op82, instructions.SubRm8Imm8Op82, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.Unknown}}}, // 143
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.XorRm8Imm8Op82, instructions.XorRm8Imm8Op82, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.Unknown}}}, // 144
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.CmpRm8Imm8Op82, instructions.CmpRm8Imm8Op82, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.Unknown}}}, // 145
	{Kind: KindGroup, Flags: FlagModRM, Group: 3}, // 146
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpIbs}, Codes: Codes{{instructions.AddRm16Imm8, instructions.AddRm32Imm8, instructions.AddRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 147
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpIbs}, Codes: Codes{{instructions.OrRm16Imm8, instructions.OrRm32Imm8, instructions.OrRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 148
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpIbs}, Codes: Codes{{instructions.AdcRm16Imm8, instructions.AdcRm32Imm8, instructions.AdcRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 149
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpIbs}, Codes: Codes{{instructions.SbbRm16Imm8, instructions.SbbRm32Imm8, instructions.SbbRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 150
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpIbs}, Codes: Codes{{instructions.AndRm16Imm8, instructions.AndRm32Imm8, instructions.AndRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 151
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpIbs}, Codes: Codes{{instructions.SubRm16Imm8, instructions.SubRm32Imm8, instructions.SubRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 152
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpIbs}, Codes: Codes{{instructions.XorRm16Imm8, instructions.XorRm32Imm8, instructions.XorRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 153
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpIbs}, Codes: Codes{{instructions.CmpRm16Imm8, instructions.CmpRm32Imm8, instructions.CmpRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 154
	{Kind: KindGroup, Flags: FlagModRM, Group: 4}, // 155
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpGb}, Codes: Codes{{instructions.TestRm8R8, instructions.TestRm8R8, instructions.TestRm8R8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 156
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpGv}, Codes: Codes{{instructions.TestRm16R16, instructions.TestRm32R32, instructions.TestRm64R64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 157
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpGb}, Codes: Codes{{instructions.XchgRm8R8, instructions.XchgRm8R8, instructions.XchgRm8R8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 158
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpGv}, Codes: Codes{{instructions.XchgRm16R16, instructions.XchgRm32R32, instructions.XchgRm64R64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 159
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpGb}, Codes: Codes{{instructions.MovRm8R8, instructions.MovRm8R8, instructions.MovRm8R8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 160
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpGv}, Codes: Codes{{instructions.MovRm16R16, instructions.MovRm32R32, instructions.MovRm64R64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 161
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGb, OpEb}, Codes: Codes{{instructions.MovR8Rm8, instructions.MovR8Rm8, instructions.MovR8Rm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 162
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.MovR16Rm16, instructions.MovR32Rm32, instructions.MovR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 163
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpRvM, OpSw}, Codes: Codes{{instructions.MovR16m16Sreg, instructions.MovR32m16Sreg, instructions.MovR64m16Sreg}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 164
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpGv, OpM}, Codes: Codes{{instructions.LeaR16Mem, instructions.LeaR32Mem, instructions.LeaR64Mem}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}}}, // 165
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpSw, OpEw}, Codes: Codes{{instructions.MovSregRm16, instructions.MovSregRm16, instructions.MovSregRm16}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 166
	{Kind: KindNormal, Flags: FlagModRM | FlagDefault64, Operands: Operands{OpEv}, Codes: Codes{{instructions.PopRm16, instructions.PopRm32, instructions.PopRm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 167
	{Kind: KindGroup, Flags: FlagModRM, Group: 5}, // 168
	{Kind: KindNop, Codes: Codes{{instructions.Nop, instructions.Nop, instructions.Nop}}, Alt: 170}, // 169
	{Kind: KindNormal, Operands: Operands{OpZv, OpRAX}, Codes: Codes{{instructions.XchgR16AX, instructions.XchgR32EAX, instructions.XchgR64RAX}}}, // 170
	{Kind: KindNormal, Operands: Operands{OpZv, OpRAX}, Codes: Codes{{instructions.XchgR16AX, instructions.XchgR32EAX, instructions.XchgR64RAX}}}, // 171
	{Kind: KindNormal, Operands: Operands{OpZv, OpRAX}, Codes: Codes{{instructions.XchgR16AX, instructions.XchgR32EAX, instructions.XchgR64RAX}}}, // 172
	{Kind: KindNormal, Operands: Operands{OpZv, OpRAX}, Codes: Codes{{instructions.XchgR16AX, instructions.XchgR32EAX, instructions.XchgR64RAX}}}, // 173
	{Kind: KindNormal, Operands: Operands{OpZv, OpRAX}, Codes: Codes{{instructions.XchgR16AX, instructions.XchgR32EAX, instructions.XchgR64RAX}}}, // 174
	{Kind: KindNormal, Operands: Operands{OpZv, OpRAX}, Codes: Codes{{instructions.XchgR16AX, instructions.XchgR32EAX, instructions.XchgR64RAX}}}, // 175
	{Kind: KindNormal, Operands: Operands{OpZv, OpRAX}, Codes: Codes{{instructions.XchgR16AX, instructions.XchgR32EAX, instructions.XchgR64RAX}}}, // 176
	{Kind: KindNormal, Operands: Operands{OpZv, OpRAX}, Codes: Codes{{instructions.XchgR16AX, instructions.XchgR32EAX, instructions.XchgR64RAX}}}, // 177
	{Kind: KindNormal, Codes: Codes{{instructions.Cbw, instructions.Cwde, instructions.Cdqe}}}, // 178
	{Kind: KindNormal, Codes: Codes{{instructions.Cwd, instructions.Cdq, instructions.Cqo}}}, // 179
	{Kind: KindNormal, Operands: Operands{OpAp}, Codes: Codes{{instructions.CallfPtr1616, instructions.CallfPtr1632, instructions.Invalid}}}, // 180
	{Kind: KindNormal, Codes: Codes{{instructions.Wait, instructions.Wait, instructions.Wait}}}, // 181
	{Kind: KindNormal, Flags: FlagDefault64, Codes: Codes{{instructions.Pushf, instructions.Pushfd, instructions.Pushfq}}}, // 182
	{Kind: KindNormal, Flags: FlagDefault64, Codes: Codes{{instructions.Popf, instructions.Popfd, instructions.Popfq}}}, // 183
	{Kind: KindNormal, Codes: Codes{{instructions.Sahf, instructions.Sahf, instructions.Sahf}}}, // 184
	{Kind: KindNormal, Codes: Codes{{instructions.Lahf, instructions.Lahf, instructions.Lahf}}}, // 185
	{Kind: KindNormal, Operands: Operands{OpAL, OpO}, Codes: Codes{{instructions.MovALMoffs8, instructions.MovALMoffs8, instructions.MovALMoffs8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 186
	{Kind: KindNormal, Operands: Operands{OpRAX, OpO}, Codes: Codes{{instructions.MovAXMoffs16, instructions.MovEAXMoffs32, instructions.MovRAXMoffs64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 187
	{Kind: KindNormal, Operands: Operands{OpO, OpAL}, Codes: Codes{{instructions.MovMoffs8AL, instructions.MovMoffs8AL, instructions.MovMoffs8AL}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 188
	{Kind: KindNormal, Operands: Operands{OpO, OpRAX}, Codes: Codes{{instructions.MovMoffs16AX, instructions.MovMoffs32EAX, instructions.MovMoffs64RAX}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 189
	{Kind: KindNormal, Operands: Operands{OpY, OpX}, Codes: Codes{{instructions.MovsbM8M8, instructions.MovsbM8M8, instructions.MovsbM8M8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 190
	{Kind: KindNormal, Operands: Operands{OpY, OpX}, Codes: Codes{{instructions.MovswM16M16, instructions.MovsdM32M32, instructions.MovsqM64M64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 191
	{Kind: KindNormal, Operands: Operands{OpX, OpY}, Codes: Codes{{instructions.CmpsbM8M8, instructions.CmpsbM8M8, instructions.CmpsbM8M8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 192
	{Kind: KindNormal, Operands: Operands{OpX, OpY}, Codes: Codes{{instructions.CmpswM16M16, instructions.CmpsdM32M32, instructions.CmpsqM64M64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 193
	{Kind: KindNormal, Operands: Operands{OpAL, OpIb}, Codes: Codes{{instructions.TestALImm8, instructions.TestALImm8, instructions.TestALImm8}}}, // 194
	{Kind: KindNormal, Operands: Operands{OpRAX, OpIz}, Codes: Codes{{instructions.TestAXImm16, instructions.TestEAXImm32, instructions.TestRAXImm32}}}, // 195
	{Kind: KindNormal, Operands: Operands{OpY, OpAL}, Codes: Codes{{instructions.StosbM8AL, instructions.StosbM8AL, instructions.StosbM8AL}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 196
	{Kind: KindNormal, Operands: Operands{OpY, OpRAX}, Codes: Codes{{instructions.StoswM16AX, instructions.StosdM32EAX, instructions.StosqM64RAX}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 197
	{Kind: KindNormal, Operands: Operands{OpAL, OpX}, Codes: Codes{{instructions.LodsbALM8, instructions.LodsbALM8, instructions.LodsbALM8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 198
	{Kind: KindNormal, Operands: Operands{OpRAX, OpX}, Codes: Codes{{instructions.LodswAXM16, instructions.LodsdEAXM32, instructions.LodsqRAXM64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 199
	{Kind: KindNormal, Operands: Operands{OpAL, OpY}, Codes: Codes{{instructions.ScasbALM8, instructions.ScasbALM8, instructions.ScasbALM8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 200
	{Kind: KindNormal, Operands: Operands{OpRAX, OpY}, Codes: Codes{{instructions.ScaswAXM16, instructions.ScasdEAXM32, instructions.ScasqRAXM64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 201
	{Kind: KindNormal, Operands: Operands{OpZb, OpIb}, Codes: Codes{{instructions.MovR8Imm8, instructions.MovR8Imm8, instructions.MovR8Imm8}}}, // 202
	{Kind: KindNormal, Operands: Operands{OpZb, OpIb}, Codes: Codes{{instructions.MovR8Imm8, instructions.MovR8Imm8, instructions.MovR8Imm8}}}, // 203
	{Kind: KindNormal, Operands: Operands{OpZb, OpIb}, Codes: Codes{{instructions.MovR8Imm8, instructions.MovR8Imm8, instructions.MovR8Imm8}}}, // 204
	{Kind: KindNormal, Operands: Operands{OpZb, OpIb}, Codes: Codes{{instructions.MovR8Imm8, instructions.MovR8Imm8, instructions.MovR8Imm8}}}, // 205
	{Kind: KindNormal, Operands: Operands{OpZb, OpIb}, Codes: Codes{{instructions.MovR8Imm8, instructions.MovR8Imm8, instructions.MovR8Imm8}}}, // 206
	{Kind: KindNormal, Operands: Operands{OpZb, OpIb}, Codes: Codes{{instructions.MovR8Imm8, instructions.MovR8Imm8, instructions.MovR8Imm8}}}, // 207
	{Kind: KindNormal, Operands: Operands{OpZb, OpIb}, Codes: Codes{{instructions.MovR8Imm8, instructions.MovR8Imm8, instructions.MovR8Imm8}}}, // 208
	{Kind: KindNormal, Operands: Operands{OpZb, OpIb}, Codes: Codes{{instructions.MovR8Imm8, instructions.MovR8Imm8, instructions.MovR8Imm8}}}, // 209
	{Kind: KindNormal, Operands: Operands{OpZv, OpIv}, Codes: Codes{{instructions.MovR16Imm16, instructions.MovR32Imm32, instructions.MovR64Imm64}}}, // 210
	{Kind: KindNormal, Operands: Operands{OpZv, OpIv}, Codes: Codes{{instructions.MovR16Imm16, instructions.MovR32Imm32, instructions.MovR64Imm64}}}, // 211
	{Kind: KindNormal, Operands: Operands{OpZv, OpIv}, Codes: Codes{{instructions.MovR16Imm16, instructions.MovR32Imm32, instructions.MovR64Imm64}}}, // 212
	{Kind: KindNormal, Operands: Operands{OpZv, OpIv}, Codes: Codes{{instructions.MovR16Imm16, instructions.MovR32Imm32, instructions.MovR64Imm64}}}, // 213
	{Kind: KindNormal, Operands: Operands{OpZv, OpIv}, Codes: Codes{{instructions.MovR16Imm16, instructions.MovR32Imm32, instructions.MovR64Imm64}}}, // 214
	{Kind: KindNormal, Operands: Operands{OpZv, OpIv}, Codes: Codes{{instructions.MovR16Imm16, instructions.MovR32Imm32, instructions.MovR64Imm64}}}, // 215
	{Kind: KindNormal, Operands: Operands{OpZv, OpIv}, Codes: Codes{{instructions.MovR16Imm16, instructions.MovR32Imm32, instructions.MovR64Imm64}}}, // 216
	{Kind: KindNormal, Operands: Operands{OpZv, OpIv}, Codes: Codes{{instructions.MovR16Imm16, instructions.MovR32Imm32, instructions.MovR64Imm64}}}, // 217
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.RolRm8Imm8, instructions.RolRm8Imm8, instructions.RolRm8Imm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 218
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.RorRm8Imm8, instructions.RorRm8Imm8, instructions.RorRm8Imm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 219
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.RclRm8Imm8, instructions.RclRm8Imm8, instructions.RclRm8Imm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 220
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.RcrRm8Imm8, instructions.RcrRm8Imm8, instructions.RcrRm8Imm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 221
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.ShlRm8Imm8, instructions.ShlRm8Imm8, instructions.ShlRm8Imm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 222
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.ShrRm8Imm8, instructions.ShrRm8Imm8, instructions.ShrRm8Imm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 223
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.SalRm8Imm8, instructions.SalRm8Imm8, instructions.SalRm8Imm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 224
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.SarRm8Imm8, instructions.SarRm8Imm8, instructions.SarRm8Imm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 225
	{Kind: KindGroup, Flags: FlagModRM, Group: 6}, // 226
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpIb}, Codes: Codes{{instructions.RolRm16Imm8, instructions.RolRm32Imm8, instructions.RolRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 227
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpIb}, Codes: Codes{{instructions.RorRm16Imm8, instructions.RorRm32Imm8, instructions.RorRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 228
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpIb}, Codes: Codes{{instructions.RclRm16Imm8, instructions.RclRm32Imm8, instructions.RclRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 229
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpIb}, Codes: Codes{{instructions.RcrRm16Imm8, instructions.RcrRm32Imm8, instructions.RcrRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 230
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpIb}, Codes: Codes{{instructions.ShlRm16Imm8, instructions.ShlRm32Imm8, instructions.ShlRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 231
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpIb}, Codes: Codes{{instructions.ShrRm16Imm8, instructions.ShrRm32Imm8, instructions.ShrRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 232
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpIb}, Codes: Codes{{instructions.SalRm16Imm8, instructions.SalRm32Imm8, instructions.SalRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 233
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpIb}, Codes: Codes{{instructions.SarRm16Imm8, instructions.SarRm32Imm8, instructions.SarRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 234
	{Kind: KindGroup, Flags: FlagModRM, Group: 7}, // 235
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpIw}, Codes: Codes{{instructions.RetImm16, instructions.RetImm16, instructions.RetImm16}}}, // 236
	{Kind: KindNormal, Flags: FlagForce64, Codes: Codes{{instructions.Ret, instructions.Ret, instructions.Ret}}}, // 237
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpGv, OpM}, Codes: Codes{{instructions.LesR16M1616, instructions.LesR32M1632, instructions.Invalid}}, Memory: Sizes{{memorysize.SegPtr16, memorysize.SegPtr32, memorysize.Unknown}}}, // 238
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpGv, OpM}, Codes: Codes{{instructions.LdsR16M1616, instructions.LdsR32M1632, instructions.Invalid}}, Memory: Sizes{{memorysize.SegPtr16, memorysize.SegPtr32, memorysize.Unknown}}}, // 239
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.MovRm8Imm8, instructions.MovRm8Imm8, instructions.MovRm8Imm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 240
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpIb}, Codes: Codes{{instructions.XabortImm8, instructions.XabortImm8, instructions.XabortImm8}}}, // 241
	{Kind: KindGroup, Flags: FlagModRM, Group: 8}, // 242
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpIz}, Codes: Codes{{instructions.MovRm16Imm16, instructions.MovRm32Imm32, instructions.MovRm64Imm32}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 243
	{Kind: KindNormal, Flags: FlagModRM | FlagForce64, Operands: Operands{OpJz}, Codes: Codes{{instructions.XbeginRel16, instructions.XbeginRel32Op32, instructions.XbeginRel32Op64}}}, // 244
	{Kind: KindGroup, Flags: FlagModRM, Group: 9}, // 245
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpIw, OpIb}, Codes: Codes{{instructions.EnterImm16Imm8, instructions.EnterImm16Imm8, instructions.EnterImm16Imm8}}}, // 246
	{Kind: KindNormal, Flags: FlagDefault64, Codes: Codes{{instructions.Leave, instructions.Leave, instructions.Leave}}}, // 247
	{Kind: KindNormal, Operands: Operands{OpIw}, Codes: Codes{{instructions.RetfImm16, instructions.RetfImm16, instructions.RetfImm16}}}, // 248
	{Kind: KindNormal, Codes: Codes{{instructions.Retf, instructions.Retf, instructions.Retf}}}, // 249
	{Kind: KindNormal, Codes: Codes{{instructions.Int3, instructions.Int3, instructions.Int3}}}, // 250
	{Kind: KindNormal, Operands: Operands{OpIb}, Codes: Codes{{instructions.IntImm8, instructions.IntImm8, instructions.IntImm8}}}, // 251
	{Kind: KindNormal, Codes: Codes{{instructions.Into, instructions.Into, instructions.Invalid}}}, // 252
	{Kind: KindNormal, Codes: Codes{{instructions.Iret, instructions.Iretd, instructions.Iretq}}}, // 253
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpI1}, Codes: Codes{{instructions.RolRm8One, instructions.RolRm8One, instructions.RolRm8One}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 254
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpI1}, Codes: Codes{{instructions.RorRm8One, instructions.RorRm8One, instructions.RorRm8One}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 255
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpI1}, Codes: Codes{{instructions.RclRm8One, instructions.RclRm8One, instructions.RclRm8One}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 256
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpI1}, Codes: Codes{{instructions.RcrRm8One, instructions.RcrRm8One, instructions.RcrRm8One}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 257
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpI1}, Codes: Codes{{instructions.ShlRm8One, instructions.ShlRm8One, instructions.ShlRm8One}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 258
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpI1}, Codes: Codes{{instructions.ShrRm8One, instructions.ShrRm8One, instructions.ShrRm8One}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 259
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpI1}, Codes: Codes{{instructions.SalRm8One, instructions.SalRm8One, instructions.SalRm8One}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 260
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpI1}, Codes: Codes{{instructions.SarRm8One, instructions.SarRm8One, instructions.SarRm8One}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 261
	{Kind: KindGroup, Flags: FlagModRM, Group: 10}, // 262
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpI1}, Codes: Codes{{instructions.RolRm16One, instructions.RolRm32One, instructions.RolRm64One}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 263
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpI1}, Codes: Codes{{instructions.RorRm16One, instructions.RorRm32One, instructions.RorRm64One}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 264
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpI1}, Codes: Codes{{instructions.RclRm16One, instructions.RclRm32One, instructions.RclRm64One}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 265
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpI1}, Codes: Codes{{instructions.RcrRm16One, instructions.RcrRm32One, instructions.RcrRm64One}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 266
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpI1}, Codes: Codes{{instructions.ShlRm16One, instructions.ShlRm32One, instructions.ShlRm64One}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 267
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpI1}, Codes: Codes{{instructions.ShrRm16One, instructions.ShrRm32One, instructions.ShrRm64One}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 268
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpI1}, Codes: Codes{{instructions.SalRm16One, instructions.SalRm32One, instructions.SalRm64One}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 269
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpI1}, Codes: Codes{{instructions.SarRm16One, instructions.SarRm32One, instructions.SarRm64One}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 270
	{Kind: KindGroup, Flags: FlagModRM, Group: 11}, // 271
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpCL}, Codes: Codes{{instructions.RolRm8CL, instructions.RolRm8CL, instructions.RolRm8CL}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 272
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpCL}, Codes: Codes{{instructions.RorRm8CL, instructions.RorRm8CL, instructions.RorRm8CL}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 273
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpCL}, Codes: Codes{{instructions.RclRm8CL, instructions.RclRm8CL, instructions.RclRm8CL}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 274
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpCL}, Codes: Codes{{instructions.RcrRm8CL, instructions.RcrRm8CL, instructions.RcrRm8CL}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 275
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpCL}, Codes: Codes{{instructions.ShlRm8CL, instructions.ShlRm8CL, instructions.ShlRm8CL}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 276
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpCL}, Codes: Codes{{instructions.ShrRm8CL, instructions.ShrRm8CL, instructions.ShrRm8CL}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 277
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpCL}, Codes: Codes{{instructions.SalRm8CL, instructions.SalRm8CL, instructions.SalRm8CL}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 278
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpCL}, Codes: Codes{{instructions.SarRm8CL, instructions.SarRm8CL, instructions.SarRm8CL}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 279
	{Kind: KindGroup, Flags: FlagModRM, Group: 12}, // 280
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpCL}, Codes: Codes{{instructions.RolRm16CL, instructions.RolRm32CL, instructions.RolRm64CL}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 281
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpCL}, Codes: Codes{{instructions.RorRm16CL, instructions.RorRm32CL, instructions.RorRm64CL}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 282
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpCL}, Codes: Codes{{instructions.RclRm16CL, instructions.RclRm32CL, instructions.RclRm64CL}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 283
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpCL}, Codes: Codes{{instructions.RcrRm16CL, instructions.RcrRm32CL, instructions.RcrRm64CL}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 284
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpCL}, Codes: Codes{{instructions.ShlRm16CL, instructions.ShlRm32CL, instructions.ShlRm64CL}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 285
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpCL}, Codes: Codes{{instructions.ShrRm16CL, instructions.ShrRm32CL, instructions.ShrRm64CL}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 286
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpCL}, Codes: Codes{{instructions.SalRm16CL, instructions.SalRm32CL, instructions.SalRm64CL}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 287
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpCL}, Codes: Codes{{instructions.SarRm16CL, instructions.SarRm32CL, instructions.SarRm64CL}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 288
	{Kind: KindGroup, Flags: FlagModRM, Group: 13}, // 289
	{Kind: KindNormal, Operands: Operands{OpIb}, Codes: Codes{{instructions.AamImm8, instructions.AamImm8, instructions.Invalid}}}, // 290
	{Kind: KindNormal, Operands: Operands{OpIb}, Codes: Codes{{instructions.AadImm8, instructions.AadImm8, instructions.Invalid}}}, // 291
	{Kind: KindNormal, Codes: Codes{{instructions.Salc, instructions.Salc, instructions.Invalid}}}, // 292
	{Kind: KindNormal, Codes: Codes{{instructions.Xlatb, instructions.Xlatb, instructions.Xlatb}}}, // 293
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FaddM32fp, instructions.FaddM32fp, instructions.FaddM32fp}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 294
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FmulM32fp, instructions.FmulM32fp, instructions.FmulM32fp}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 295
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FcomM32fp, instructions.FcomM32fp, instructions.FcomM32fp}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 296
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FcompM32fp, instructions.FcompM32fp, instructions.FcompM32fp}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 297
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FsubM32fp, instructions.FsubM32fp, instructions.FsubM32fp}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 298
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FsubrM32fp, instructions.FsubrM32fp, instructions.FsubrM32fp}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 299
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FdivM32fp, instructions.FdivM32fp, instructions.FdivM32fp}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 300
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FdivrM32fp, instructions.FdivrM32fp, instructions.FdivrM32fp}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 301
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FaddSt0Sti, instructions.FaddSt0Sti, instructions.FaddSt0Sti}}}, // 302
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FmulSt0Sti, instructions.FmulSt0Sti, instructions.FmulSt0Sti}}}, // 303
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FcomSt0Sti, instructions.FcomSt0Sti, instructions.FcomSt0Sti}}}, // 304
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FcompSt0Sti, instructions.FcompSt0Sti, instructions.FcompSt0Sti}}}, // 305
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FsubSt0Sti, instructions.FsubSt0Sti, instructions.FsubSt0Sti}}}, // 306
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FsubrSt0Sti, instructions.FsubrSt0Sti, instructions.FsubrSt0Sti}}}, // 307
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FdivSt0Sti, instructions.FdivSt0Sti, instructions.FdivSt0Sti}}}, // 308
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FdivrSt0Sti, instructions.FdivrSt0Sti, instructions.FdivrSt0Sti}}}, // 309
	{Kind: KindGroup, Flags: FlagModRM, Group: 14}, // 310
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FldM32fp, instructions.FldM32fp, instructions.FldM32fp}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 311
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FstM32fp, instructions.FstM32fp, instructions.FstM32fp}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 312
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FstpM32fp, instructions.FstpM32fp, instructions.FstpM32fp}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 313
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FldenvM14byte, instructions.FldenvM28byte, instructions.FldenvM28byte}}, Memory: Sizes{{memorysize.FpuEnv14, memorysize.FpuEnv28, memorysize.FpuEnv28}}}, // 314
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FldcwM16, instructions.FldcwM16, instructions.FldcwM16}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 315
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FnstenvM14byte, instructions.FnstenvM28byte, instructions.FnstenvM28byte}}, Memory: Sizes{{memorysize.FpuEnv14, memorysize.FpuEnv28, memorysize.FpuEnv28}}}, // 316
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FnstcwM16, instructions.FnstcwM16, instructions.FnstcwM16}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 317
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi}, Codes: Codes{{instructions.FldSti, instructions.FldSti, instructions.FldSti}}}, // 318
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi}, Codes: Codes{{instructions.FxchSti, instructions.FxchSti, instructions.FxchSti}}}, // 319
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fnop, instructions.Fnop, instructions.Fnop}}}, // 320
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fchs, instructions.Fchs, instructions.Fchs}}}, // 321
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fabs, instructions.Fabs, instructions.Fabs}}}, // 322
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Ftst, instructions.Ftst, instructions.Ftst}}}, // 323
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fxam, instructions.Fxam, instructions.Fxam}}}, // 324
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fld1, instructions.Fld1, instructions.Fld1}}}, // 325
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fldl2t, instructions.Fldl2t, instructions.Fldl2t}}}, // 326
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fldl2e, instructions.Fldl2e, instructions.Fldl2e}}}, // 327
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fldpi, instructions.Fldpi, instructions.Fldpi}}}, // 328
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fldlg2, instructions.Fldlg2, instructions.Fldlg2}}}, // 329
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fldln2, instructions.Fldln2, instructions.Fldln2}}}, // 330
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fldz, instructions.Fldz, instructions.Fldz}}}, // 331
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.F2xm1, instructions.F2xm1, instructions.F2xm1}}}, // 332
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fyl2x, instructions.Fyl2x, instructions.Fyl2x}}}, // 333
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fptan, instructions.Fptan, instructions.Fptan}}}, // 334
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fpatan, instructions.Fpatan, instructions.Fpatan}}}, // 335
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fxtract, instructions.Fxtract, instructions.Fxtract}}}, // 336
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fprem1, instructions.Fprem1, instructions.Fprem1}}}, // 337
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fdecstp, instructions.Fdecstp, instructions.Fdecstp}}}, // 338
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fincstp, instructions.Fincstp, instructions.Fincstp}}}, // 339
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fprem, instructions.Fprem, instructions.Fprem}}}, // 340
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fyl2xp1, instructions.Fyl2xp1, instructions.Fyl2xp1}}}, // 341
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fsqrt, instructions.Fsqrt, instructions.Fsqrt}}}, // 342
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fsincos, instructions.Fsincos, instructions.Fsincos}}}, // 343
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Frndint, instructions.Frndint, instructions.Frndint}}}, // 344
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fscale, instructions.Fscale, instructions.Fscale}}}, // 345
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fsin, instructions.Fsin, instructions.Fsin}}}, // 346
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fcos, instructions.Fcos, instructions.Fcos}}}, // 347
	{Kind: KindGroup, Flags: FlagModRM, Group: 15}, // 348
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FiaddM32int, instructions.FiaddM32int, instructions.FiaddM32int}}, Memory: Sizes{{memorysize.Int32, memorysize.Int32, memorysize.Int32}}}, // 349
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FimulM32int, instructions.FimulM32int, instructions.FimulM32int}}, Memory: Sizes{{memorysize.Int32, memorysize.Int32, memorysize.Int32}}}, // 350
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FicomM32int, instructions.FicomM32int, instructions.FicomM32int}}, Memory: Sizes{{memorysize.Int32, memorysize.Int32, memorysize.Int32}}}, // 351
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FicompM32int, instructions.FicompM32int, instructions.FicompM32int}}, Memory: Sizes{{memorysize.Int32, memorysize.Int32, memorysize.Int32}}}, // 352
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FisubM32int, instructions.FisubM32int, instructions.FisubM32int}}, Memory: Sizes{{memorysize.Int32, memorysize.Int32, memorysize.Int32}}}, // 353
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FisubrM32int, instructions.FisubrM32int, instructions.FisubrM32int}}, Memory: Sizes{{memorysize.Int32, memorysize.Int32, memorysize.Int32}}}, // 354
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FidivM32int, instructions.FidivM32int, instructions.FidivM32int}}, Memory: Sizes{{memorysize.Int32, memorysize.Int32, memorysize.Int32}}}, // 355
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FidivrM32int, instructions.FidivrM32int, instructions.FidivrM32int}}, Memory: Sizes{{memorysize.Int32, memorysize.Int32, memorysize.Int32}}}, // 356
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FcmovbSt0Sti, instructions.FcmovbSt0Sti, instructions.FcmovbSt0Sti}}}, // 357
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FcmoveSt0Sti, instructions.FcmoveSt0Sti, instructions.FcmoveSt0Sti}}}, // 358
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FcmovbeSt0Sti, instructions.FcmovbeSt0Sti, instructions.FcmovbeSt0Sti}}}, // 359
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FcmovuSt0Sti, instructions.FcmovuSt0Sti, instructions.FcmovuSt0Sti}}}, // 360
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fucompp, instructions.Fucompp, instructions.Fucompp}}}, // 361
	{Kind: KindGroup, Flags: FlagModRM, Group: 16}, // 362
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FildM32int, instructions.FildM32int, instructions.FildM32int}}, Memory: Sizes{{memorysize.Int32, memorysize.Int32, memorysize.Int32}}}, // 363
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FisttpM32int, instructions.FisttpM32int, instructions.FisttpM32int}}, Memory: Sizes{{memorysize.Int32, memorysize.Int32, memorysize.Int32}}}, // 364
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FistM32int, instructions.FistM32int, instructions.FistM32int}}, Memory: Sizes{{memorysize.Int32, memorysize.Int32, memorysize.Int32}}}, // 365
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FistpM32int, instructions.FistpM32int, instructions.FistpM32int}}, Memory: Sizes{{memorysize.Int32, memorysize.Int32, memorysize.Int32}}}, // 366
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FldM80fp, instructions.FldM80fp, instructions.FldM80fp}}, Memory: Sizes{{memorysize.Float80, memorysize.Float80, memorysize.Float80}}}, // 367
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FstpM80fp, instructions.FstpM80fp, instructions.FstpM80fp}}, Memory: Sizes{{memorysize.Float80, memorysize.Float80, memorysize.Float80}}}, // 368
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FcmovnbSt0Sti, instructions.FcmovnbSt0Sti, instructions.FcmovnbSt0Sti}}}, // 369
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FcmovneSt0Sti, instructions.FcmovneSt0Sti, instructions.FcmovneSt0Sti}}}, // 370
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FcmovnbeSt0Sti, instructions.FcmovnbeSt0Sti, instructions.FcmovnbeSt0Sti}}}, // 371
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FcmovnuSt0Sti, instructions.FcmovnuSt0Sti, instructions.FcmovnuSt0Sti}}}, // 372
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FucomiSt0Sti, instructions.FucomiSt0Sti, instructions.FucomiSt0Sti}}}, // 373
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FcomiSt0Sti, instructions.FcomiSt0Sti, instructions.FcomiSt0Sti}}}, // 374
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fnclex, instructions.Fnclex, instructions.Fnclex}}}, // 375
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fninit, instructions.Fninit, instructions.Fninit}}}, // 376
	{Kind: KindGroup, Flags: FlagModRM, Group: 17}, // 377
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FaddM64fp, instructions.FaddM64fp, instructions.FaddM64fp}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 378
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FmulM64fp, instructions.FmulM64fp, instructions.FmulM64fp}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 379
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FcomM64fp, instructions.FcomM64fp, instructions.FcomM64fp}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 380
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FcompM64fp, instructions.FcompM64fp, instructions.FcompM64fp}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 381
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FsubM64fp, instructions.FsubM64fp, instructions.FsubM64fp}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 382
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FsubrM64fp, instructions.FsubrM64fp, instructions.FsubrM64fp}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 383
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FdivM64fp, instructions.FdivM64fp, instructions.FdivM64fp}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 384
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FdivrM64fp, instructions.FdivrM64fp, instructions.FdivrM64fp}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 385
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi, OpST0}, Codes: Codes{{instructions.FaddStiSt0, instructions.FaddStiSt0, instructions.FaddStiSt0}}}, // 386
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi, OpST0}, Codes: Codes{{instructions.FmulStiSt0, instructions.FmulStiSt0, instructions.FmulStiSt0}}}, // 387
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi, OpST0}, Codes: Codes{{instructions.FsubrStiSt0, instructions.FsubrStiSt0, instructions.FsubrStiSt0}}}, // 388
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi, OpST0}, Codes: Codes{{instructions.FsubStiSt0, instructions.FsubStiSt0, instructions.FsubStiSt0}}}, // 389
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi, OpST0}, Codes: Codes{{instructions.FdivrStiSt0, instructions.FdivrStiSt0, instructions.FdivrStiSt0}}}, // 390
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi, OpST0}, Codes: Codes{{instructions.FdivStiSt0, instructions.FdivStiSt0, instructions.FdivStiSt0}}}, // 391
	{Kind: KindGroup, Flags: FlagModRM, Group: 18}, // 392
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FldM64fp, instructions.FldM64fp, instructions.FldM64fp}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 393
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FisttpM64int, instructions.FisttpM64int, instructions.FisttpM64int}}, Memory: Sizes{{memorysize.Int64, memorysize.Int64, memorysize.Int64}}}, // 394
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FstM64fp, instructions.FstM64fp, instructions.FstM64fp}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 395
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FstpM64fp, instructions.FstpM64fp, instructions.FstpM64fp}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 396
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FrstorM94byte, instructions.FrstorM108byte, instructions.FrstorM108byte}}, Memory: Sizes{{memorysize.FpuState94, memorysize.FpuState108, memorysize.FpuState108}}}, // 397
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FnsaveM94byte, instructions.FnsaveM108byte, instructions.FnsaveM108byte}}, Memory: Sizes{{memorysize.FpuState94, memorysize.FpuState108, memorysize.FpuState108}}}, // 398
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FnstswM16, instructions.FnstswM16, instructions.FnstswM16}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 399
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi}, Codes: Codes{{instructions.FfreeSti, instructions.FfreeSti, instructions.FfreeSti}}}, // 400
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi}, Codes: Codes{{instructions.FstSti, instructions.FstSti, instructions.FstSti}}}, // 401
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi}, Codes: Codes{{instructions.FstpSti, instructions.FstpSti, instructions.FstpSti}}}, // 402
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi}, Codes: Codes{{instructions.FucomSti, instructions.FucomSti, instructions.FucomSti}}}, // 403
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi}, Codes: Codes{{instructions.FucompSti, instructions.FucompSti, instructions.FucompSti}}}, // 404
	{Kind: KindGroup, Flags: FlagModRM, Group: 19}, // 405
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FiaddM16int, instructions.FiaddM16int, instructions.FiaddM16int}}, Memory: Sizes{{memorysize.Int16, memorysize.Int16, memorysize.Int16}}}, // 406
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FimulM16int, instructions.FimulM16int, instructions.FimulM16int}}, Memory: Sizes{{memorysize.Int16, memorysize.Int16, memorysize.Int16}}}, // 407
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FicomM16int, instructions.FicomM16int, instructions.FicomM16int}}, Memory: Sizes{{memorysize.Int16, memorysize.Int16, memorysize.Int16}}}, // 408
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FicompM16int, instructions.FicompM16int, instructions.FicompM16int}}, Memory: Sizes{{memorysize.Int16, memorysize.Int16, memorysize.Int16}}}, // 409
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FisubM16int, instructions.FisubM16int, instructions.FisubM16int}}, Memory: Sizes{{memorysize.Int16, memorysize.Int16, memorysize.Int16}}}, // 410
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FisubrM16int, instructions.FisubrM16int, instructions.FisubrM16int}}, Memory: Sizes{{memorysize.Int16, memorysize.Int16, memorysize.Int16}}}, // 411
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FidivM16int, instructions.FidivM16int, instructions.FidivM16int}}, Memory: Sizes{{memorysize.Int16, memorysize.Int16, memorysize.Int16}}}, // 412
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FidivrM16int, instructions.FidivrM16int, instructions.FidivrM16int}}, Memory: Sizes{{memorysize.Int16, memorysize.Int16, memorysize.Int16}}}, // 413
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi, OpST0}, Codes: Codes{{instructions.FaddpStiSt0, instructions.FaddpStiSt0, instructions.FaddpStiSt0}}}, // 414
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi, OpST0}, Codes: Codes{{instructions.FmulpStiSt0, instructions.FmulpStiSt0, instructions.FmulpStiSt0}}}, // 415
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi, OpST0}, Codes: Codes{{instructions.FsubrpStiSt0, instructions.FsubrpStiSt0, instructions.FsubrpStiSt0}}}, // 416
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi, OpST0}, Codes: Codes{{instructions.FsubpStiSt0, instructions.FsubpStiSt0, instructions.FsubpStiSt0}}}, // 417
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi, OpST0}, Codes: Codes{{instructions.FdivrpStiSt0, instructions.FdivrpStiSt0, instructions.FdivrpStiSt0}}}, // 418
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi, OpST0}, Codes: Codes{{instructions.FdivpStiSt0, instructions.FdivpStiSt0, instructions.FdivpStiSt0}}}, // 419
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Fcompp, instructions.Fcompp, instructions.Fcompp}}}, // 420
	{Kind: KindGroup, Flags: FlagModRM, Group: 20}, // 421
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FildM16int, instructions.FildM16int, instructions.FildM16int}}, Memory: Sizes{{memorysize.Int16, memorysize.Int16, memorysize.Int16}}}, // 422
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FisttpM16int, instructions.FisttpM16int, instructions.FisttpM16int}}, Memory: Sizes{{memorysize.Int16, memorysize.Int16, memorysize.Int16}}}, // 423
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FistM16int, instructions.FistM16int, instructions.FistM16int}}, Memory: Sizes{{memorysize.Int16, memorysize.Int16, memorysize.Int16}}}, // 424
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FistpM16int, instructions.FistpM16int, instructions.FistpM16int}}, Memory: Sizes{{memorysize.Int16, memorysize.Int16, memorysize.Int16}}}, // 425
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FbldM80bcd, instructions.FbldM80bcd, instructions.FbldM80bcd}}, Memory: Sizes{{memorysize.Bcd, memorysize.Bcd, memorysize.Bcd}}}, // 426
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FildM64int, instructions.FildM64int, instructions.FildM64int}}, Memory: Sizes{{memorysize.Int64, memorysize.Int64, memorysize.Int64}}}, // 427
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FbstpM80bcd, instructions.FbstpM80bcd, instructions.FbstpM80bcd}}, Memory: Sizes{{memorysize.Bcd, memorysize.Bcd, memorysize.Bcd}}}, // 428
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FistpM64int, instructions.FistpM64int, instructions.FistpM64int}}, Memory: Sizes{{memorysize.Int64, memorysize.Int64, memorysize.Int64}}}, // 429
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpSTi}, Codes: Codes{{instructions.FfreepSti, instructions.FfreepSti, instructions.FfreepSti}}}, // 430
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FucomipSt0Sti, instructions.FucomipSt0Sti, instructions.FucomipSt0Sti}}}, // 431
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpST0, OpSTi}, Codes: Codes{{instructions.FcomipSt0Sti, instructions.FcomipSt0Sti, instructions.FcomipSt0Sti}}}, // 432
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpAX}, Codes: Codes{{instructions.FnstswAX, instructions.FnstswAX, instructions.FnstswAX}}}, // 433
	{Kind: KindGroup, Flags: FlagModRM, Group: 21}, // 434
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.LoopneRel8Op16, instructions.LoopneRel8Op32, instructions.LoopneRel8Op64}}}, // 435
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.LoopeRel8Op16, instructions.LoopeRel8Op32, instructions.LoopeRel8Op64}}}, // 436
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.LoopRel8Op16, instructions.LoopRel8Op32, instructions.LoopRel8Op64}}}, // 437
	{Kind: KindNormal, Flags: FlagForce64 | FlagAddressSizeColumn, Operands: Operands{OpJb}, Codes: Codes{{instructions.JcxzRel8Op16, instructions.JecxzRel8Op32, instructions.JrcxzRel8Op64}}}, // 438
	{Kind: KindNormal, Operands: Operands{OpAL, OpIb}, Codes: Codes{{instructions.InALImm8, instructions.InALImm8, instructions.InALImm8}}}, // 439
	{Kind: KindNormal, Operands: Operands{OpEAX, OpIb}, Codes: Codes{{instructions.InAXImm8, instructions.InEAXImm8, instructions.InEAXImm8}}}, // 440
	{Kind: KindNormal, Operands: Operands{OpIb, OpAL}, Codes: Codes{{instructions.OutImm8AL, instructions.OutImm8AL, instructions.OutImm8AL}}}, // 441
	{Kind: KindNormal, Operands: Operands{OpIb, OpEAX}, Codes: Codes{{instructions.OutImm8AX, instructions.OutImm8EAX, instructions.OutImm8EAX}}}, // 442
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJz}, Codes: Codes{{instructions.CallRel16, instructions.CallRel32Op32, instructions.CallRel32Op64}}}, // 443
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJz}, Codes: Codes{{instructions.JmpRel16, instructions.JmpRel32Op32, instructions.JmpRel32Op64}}}, // 444
	{Kind: KindNormal, Operands: Operands{OpAp}, Codes: Codes{{instructions.JmpfPtr1616, instructions.JmpfPtr1632, instructions.Invalid}}}, // 445
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJb}, Codes: Codes{{instructions.JmpRel8Op16, instructions.JmpRel8Op32, instructions.JmpRel8Op64}}}, // 446
	{Kind: KindNormal, Operands: Operands{OpAL, OpDX}, Codes: Codes{{instructions.InALDX, instructions.InALDX, instructions.InALDX}}}, // 447
	{Kind: KindNormal, Operands: Operands{OpEAX, OpDX}, Codes: Codes{{instructions.InAXDX, instructions.InEAXDX, instructions.InEAXDX}}}, // 448
	{Kind: KindNormal, Operands: Operands{OpDX, OpAL}, Codes: Codes{{instructions.OutDXAL, instructions.OutDXAL, instructions.OutDXAL}}}, // 449
	{Kind: KindNormal, Operands: Operands{OpDX, OpEAX}, Codes: Codes{{instructions.OutDXAX, instructions.OutDXEAX, instructions.OutDXEAX}}}, // 450
	{Kind: KindNormal, Codes: Codes{{instructions.Int1, instructions.Int1, instructions.Int1}}}, // 451
	{Kind: KindNormal, Codes: Codes{{instructions.Hlt, instructions.Hlt, instructions.Hlt}}}, // 452
	{Kind: KindNormal, Codes: Codes{{instructions.Cmc, instructions.Cmc, instructions.Cmc}}}, // 453
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.TestRm8Imm8, instructions.TestRm8Imm8, instructions.TestRm8Imm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 454
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb, OpIb}, Codes: Codes{{instructions.TestRm8Imm8F6r1, instructions.TestRm8Imm8F6r1, instructions.TestRm8Imm8F6r1}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 455
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb}, Codes: Codes{{instructions.NotRm8, instructions.NotRm8, instructions.NotRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 456
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb}, Codes: Codes{{instructions.NegRm8, instructions.NegRm8, instructions.NegRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 457
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.MulRm8, instructions.MulRm8, instructions.MulRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 458
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.ImulRm8, instructions.ImulRm8, instructions.ImulRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 459
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.DivRm8, instructions.DivRm8, instructions.DivRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 460
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.IdivRm8, instructions.IdivRm8, instructions.IdivRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 461
	{Kind: KindGroup, Flags: FlagModRM, Group: 22}, // 462
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpIz}, Codes: Codes{{instructions.TestRm16Imm16, instructions.TestRm32Imm32, instructions.TestRm64Imm32}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 463
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpIz}, Codes: Codes{{instructions.TestRm16Imm16F7r1, instructions.TestRm32Imm32F7r1, instructions.TestRm64Imm32F7r1}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 464
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv}, Codes: Codes{{instructions.NotRm16, instructions.NotRm32, instructions.NotRm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 465
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv}, Codes: Codes{{instructions.NegRm16, instructions.NegRm32, instructions.NegRm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 466
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv}, Codes: Codes{{instructions.MulRm16, instructions.MulRm32, instructions.MulRm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 467
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv}, Codes: Codes{{instructions.ImulRm16, instructions.ImulRm32, instructions.ImulRm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 468
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv}, Codes: Codes{{instructions.DivRm16, instructions.DivRm32, instructions.DivRm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 469
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv}, Codes: Codes{{instructions.IdivRm16, instructions.IdivRm32, instructions.IdivRm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 470
	{Kind: KindGroup, Flags: FlagModRM, Group: 23}, // 471
	{Kind: KindNormal, Codes: Codes{{instructions.Clc, instructions.Clc, instructions.Clc}}}, // 472
	{Kind: KindNormal, Codes: Codes{{instructions.Stc, instructions.Stc, instructions.Stc}}}, // 473
	{Kind: KindNormal, Codes: Codes{{instructions.Cli, instructions.Cli, instructions.Cli}}}, // 474
	{Kind: KindNormal, Codes: Codes{{instructions.Sti, instructions.Sti, instructions.Sti}}}, // 475
	{Kind: KindNormal, Codes: Codes{{instructions.Cld, instructions.Cld, instructions.Cld}}}, // 476
	{Kind: KindNormal, Codes: Codes{{instructions.Std, instructions.Std, instructions.Std}}}, // 477
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb}, Codes: Codes{{instructions.IncRm8, instructions.IncRm8, instructions.IncRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 478
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb}, Codes: Codes{{instructions.DecRm8, instructions.DecRm8, instructions.DecRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 479
	{Kind: KindGroup, Flags: FlagModRM, Group: 24}, // 480
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv}, Codes: Codes{{instructions.IncRm16, instructions.IncRm32, instructions.IncRm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 481
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv}, Codes: Codes{{instructions.DecRm16, instructions.DecRm32, instructions.DecRm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 482
	{Kind: KindNormal, Flags: FlagModRM | FlagForce64, Operands: Operands{OpEv}, Codes: Codes{{instructions.CallRm16, instructions.CallRm32, instructions.CallRm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 483
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.CallfM1616, instructions.CallfM1632, instructions.CallfM1664}}, Memory: Sizes{{memorysize.SegPtr16, memorysize.SegPtr32, memorysize.SegPtr64}}}, // 484
	{Kind: KindNormal, Flags: FlagModRM | FlagForce64, Operands: Operands{OpEv}, Codes: Codes{{instructions.JmpRm16, instructions.JmpRm32, instructions.JmpRm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 485
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.JmpfM1616, instructions.JmpfM1632, instructions.JmpfM1664}}, Memory: Sizes{{memorysize.SegPtr16, memorysize.SegPtr32, memorysize.SegPtr64}}}, // 486
	{Kind: KindNormal, Flags: FlagModRM | FlagDefault64, Operands: Operands{OpEv}, Codes: Codes{{instructions.PushRm16, instructions.PushRm32, instructions.PushRm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 487
	{Kind: KindGroup, Flags: FlagModRM, Group: 25}, // 488
	{Kind: KindNormal, Codes: Codes{{instructions.Pause, instructions.Pause, instructions.Pause}}}, // 489
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpRvM}, Codes: Codes{{instructions.SldtR16m16, instructions.SldtR32m16, instructions.SldtR64m16}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 490
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpRvM}, Codes: Codes{{instructions.StrR16m16, instructions.StrR32m16, instructions.StrR64m16}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 491
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEw}, Codes: Codes{{instructions.LldtRm16, instructions.LldtRm16, instructions.LldtRm16}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 492
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEw}, Codes: Codes{{instructions.LtrRm16, instructions.LtrRm16, instructions.LtrRm16}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 493
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEw}, Codes: Codes{{instructions.VerrRm16, instructions.VerrRm16, instructions.VerrRm16}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 494
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEw}, Codes: Codes{{instructions.VerwRm16, instructions.VerwRm16, instructions.VerwRm16}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 495
	{Kind: KindGroup, Flags: FlagModRM, Group: 26}, // 496
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.SgdtM1632, instructions.SgdtM1632, instructions.SgdtM1664}}, Memory: Sizes{{memorysize.Fword5, memorysize.Fword6, memorysize.Fword10}}}, // 497
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.SidtM1632, instructions.SidtM1632, instructions.SidtM1664}}, Memory: Sizes{{memorysize.Fword5, memorysize.Fword6, memorysize.Fword10}}}, // 498
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.LgdtM1632, instructions.LgdtM1632, instructions.LgdtM1664}}, Memory: Sizes{{memorysize.Fword5, memorysize.Fword6, memorysize.Fword10}}}, // 499
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.LidtM1632, instructions.LidtM1632, instructions.LidtM1664}}, Memory: Sizes{{memorysize.Fword5, memorysize.Fword6, memorysize.Fword10}}}, // 500
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpRvM}, Codes: Codes{{instructions.SmswR16m16, instructions.SmswR32m16, instructions.SmswR64m16}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 501
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEw}, Codes: Codes{{instructions.LmswRm16, instructions.LmswRm16, instructions.LmswRm16}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 502
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.InvlpgM8, instructions.InvlpgM8, instructions.InvlpgM8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 503
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Vmcall, instructions.Vmcall, instructions.Vmcall}}}, // 504
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Vmlaunch, instructions.Vmlaunch, instructions.Vmlaunch}}}, // 505
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Vmresume, instructions.Vmresume, instructions.Vmresume}}}, // 506
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Vmxoff, instructions.Vmxoff, instructions.Vmxoff}}}, // 507
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Monitor, instructions.Monitor, instructions.Monitor}}}, // 508
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Mwait, instructions.Mwait, instructions.Mwait}}}, // 509
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Clac, instructions.Clac, instructions.Clac}}}, // 510
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Stac, instructions.Stac, instructions.Stac}}}, // 511
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Xgetbv, instructions.Xgetbv, instructions.Xgetbv}}}, // 512
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Xsetbv, instructions.Xsetbv, instructions.Xsetbv}}}, // 513
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Xend, instructions.Xend, instructions.Xend}}}, // 514
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Xtest, instructions.Xtest, instructions.Xtest}}}, // 515
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Rdtscp, instructions.Rdtscp, instructions.Rdtscp}}}, // 516
	{Kind: KindGroup, Flags: FlagModRM, Group: 27}, // 517
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEw}, Codes: Codes{{instructions.LarR16Rm16, instructions.LarR32Rm16, instructions.LarR64Rm16}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 518
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEw}, Codes: Codes{{instructions.LslR16Rm16, instructions.LslR32Rm16, instructions.LslR64Rm16}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 519
	{Kind: KindNormal, Codes: Codes{{instructions.Syscall, instructions.Syscall, instructions.Syscall}}}, // 520
	{Kind: KindNormal, Codes: Codes{{instructions.Clts, instructions.Clts, instructions.Clts}}}, // 521
	{Kind: KindNormal, Codes: Codes{{instructions.Sysret, instructions.Sysret, instructions.Sysretq}}}, // 522
	{Kind: KindNormal, Codes: Codes{{instructions.Invd, instructions.Invd, instructions.Invd}}}, // 523
	{Kind: KindNormal, Codes: Codes{{instructions.Wbinvd, instructions.Wbinvd, instructions.Wbinvd}}}, // 524
	{Kind: KindNormal, Codes: Codes{{instructions.Ud2, instructions.Ud2, instructions.Ud2}}}, // 525
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.PrefetchwM8, instructions.PrefetchwM8, instructions.PrefetchwM8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 526
	{Kind: KindGroup, Flags: FlagModRM, Group: 28}, // 527
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MovupsXmmXmmm128, instructions.MovupsXmmXmmm128, instructions.MovupsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 528
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.MovupsXmmm128Xmm, instructions.MovupsXmmm128Xmm, instructions.MovupsXmmm128Xmm}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 529
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpV, OpM}, Codes: Codes{{instructions.MovlpsXmmM64, instructions.MovlpsXmmM64, instructions.MovlpsXmmM64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 530
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpV, OpU}, Codes: Codes{{instructions.MovhlpsXmmXmm, instructions.MovhlpsXmmXmm, instructions.MovhlpsXmmXmm}}}, // 531
	{Kind: KindGroup, Flags: FlagModRM, Group: 29}, // 532
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM, OpV}, Codes: Codes{{instructions.MovlpsM64Xmm, instructions.MovlpsM64Xmm, instructions.MovlpsM64Xmm}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 533
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.UnpcklpsXmmXmmm128, instructions.UnpcklpsXmmXmmm128, instructions.UnpcklpsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 534
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.UnpckhpsXmmXmmm128, instructions.UnpckhpsXmmXmmm128, instructions.UnpckhpsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 535
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpV, OpM}, Codes: Codes{{instructions.MovhpsXmmM64, instructions.MovhpsXmmM64, instructions.MovhpsXmmM64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 536
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpV, OpU}, Codes: Codes{{instructions.MovlhpsXmmXmm, instructions.MovlhpsXmmXmm, instructions.MovlhpsXmmXmm}}}, // 537
	{Kind: KindGroup, Flags: FlagModRM, Group: 30}, // 538
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM, OpV}, Codes: Codes{{instructions.MovhpsM64Xmm, instructions.MovhpsM64Xmm, instructions.MovhpsM64Xmm}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 539
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.PrefetchntaM8, instructions.PrefetchntaM8, instructions.PrefetchntaM8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 540
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.Prefetcht0M8, instructions.Prefetcht0M8, instructions.Prefetcht0M8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 541
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.Prefetcht1M8, instructions.Prefetcht1M8, instructions.Prefetcht1M8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 542
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.Prefetcht2M8, instructions.Prefetcht2M8, instructions.Prefetcht2M8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 543
	{Kind: KindGroup, Flags: FlagModRM, Group: 31}, // 544
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv}, Codes: Codes{{instructions.NopRm16, instructions.NopRm32, instructions.NopRm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 545
	{Kind: KindGroup, Flags: FlagModRM, Group: 32}, // 546
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpRcr, OpCd}, Codes: Codes{{instructions.MovR32Cr, instructions.MovR32Cr, instructions.Invalid}}}, // 547
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpRcr, OpDd}, Codes: Codes{{instructions.MovR32Dr, instructions.MovR32Dr, instructions.Invalid}}}, // 548
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpCd, OpRcr}, Codes: Codes{{instructions.MovCrR32, instructions.MovCrR32, instructions.Invalid}}}, // 549
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpDd, OpRcr}, Codes: Codes{{instructions.MovDrR32, instructions.MovDrR32, instructions.Invalid}}}, // 550
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MovapsXmmXmmm128, instructions.MovapsXmmXmmm128, instructions.MovapsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 551
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.MovapsXmmm128Xmm, instructions.MovapsXmmm128Xmm, instructions.MovapsXmmm128Xmm}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 552
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpQ}, Codes: Codes{{instructions.Cvtpi2psXmmMmm64, instructions.Cvtpi2psXmmMmm64, instructions.Cvtpi2psXmmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 553
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM, OpV}, Codes: Codes{{instructions.MovntpsM128Xmm, instructions.MovntpsM128Xmm, instructions.MovntpsM128Xmm}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 554
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpW}, Codes: Codes{{instructions.Cvttps2piMmXmmm64, instructions.Cvttps2piMmXmmm64, instructions.Cvttps2piMmXmmm64}}, Memory: Sizes{{memorysize.Packed64Float32, memorysize.Packed64Float32, memorysize.Packed64Float32}}}, // 555
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpW}, Codes: Codes{{instructions.Cvtps2piMmXmmm64, instructions.Cvtps2piMmXmmm64, instructions.Cvtps2piMmXmmm64}}, Memory: Sizes{{memorysize.Packed64Float32, memorysize.Packed64Float32, memorysize.Packed64Float32}}}, // 556
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.UcomissXmmXmmm32, instructions.UcomissXmmXmmm32, instructions.UcomissXmmXmmm32}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 557
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.ComissXmmXmmm32, instructions.ComissXmmXmmm32, instructions.ComissXmmXmmm32}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 558
	{Kind: KindNormal, Codes: Codes{{instructions.Wrmsr, instructions.Wrmsr, instructions.Wrmsr}}}, // 559
	{Kind: KindNormal, Codes: Codes{{instructions.Rdtsc, instructions.Rdtsc, instructions.Rdtsc}}}, // 560
	{Kind: KindNormal, Codes: Codes{{instructions.Rdmsr, instructions.Rdmsr, instructions.Rdmsr}}}, // 561
	{Kind: KindNormal, Codes: Codes{{instructions.Rdpmc, instructions.Rdpmc, instructions.Rdpmc}}}, // 562
	{Kind: KindNormal, Codes: Codes{{instructions.Sysenter, instructions.Sysenter, instructions.Sysenter}}}, // 563
	{Kind: KindNormal, Codes: Codes{{instructions.Sysexit, instructions.Sysexit, instructions.Sysexit}}}, // 564
	{Kind: KindNormal, Codes: Codes{{instructions.Getsec, instructions.Getsec, instructions.Getsec}}}, // 565
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.CmovoR16Rm16, instructions.CmovoR32Rm32, instructions.CmovoR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 566
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.CmovnoR16Rm16, instructions.CmovnoR32Rm32, instructions.CmovnoR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 567
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.CmovbR16Rm16, instructions.CmovbR32Rm32, instructions.CmovbR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 568
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.CmovaeR16Rm16, instructions.CmovaeR32Rm32, instructions.CmovaeR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 569
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.CmoveR16Rm16, instructions.CmoveR32Rm32, instructions.CmoveR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 570
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.CmovneR16Rm16, instructions.CmovneR32Rm32, instructions.CmovneR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 571
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.CmovbeR16Rm16, instructions.CmovbeR32Rm32, instructions.CmovbeR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 572
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.CmovaR16Rm16, instructions.CmovaR32Rm32, instructions.CmovaR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 573
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.CmovsR16Rm16, instructions.CmovsR32Rm32, instructions.CmovsR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 574
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.CmovnsR16Rm16, instructions.CmovnsR32Rm32, instructions.CmovnsR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 575
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.CmovpR16Rm16, instructions.CmovpR32Rm32, instructions.CmovpR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 576
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.CmovnpR16Rm16, instructions.CmovnpR32Rm32, instructions.CmovnpR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 577
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.CmovlR16Rm16, instructions.CmovlR32Rm32, instructions.CmovlR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 578
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.CmovgeR16Rm16, instructions.CmovgeR32Rm32, instructions.CmovgeR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 579
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.CmovleR16Rm16, instructions.CmovleR32Rm32, instructions.CmovleR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 580
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.CmovgR16Rm16, instructions.CmovgR32Rm32, instructions.CmovgR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 581
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpGy, OpU}, Codes: Codes{{instructions.MovmskpsR32Xmm, instructions.MovmskpsR32Xmm, instructions.MovmskpsR64Xmm}}}, // 582
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.SqrtpsXmmXmmm128, instructions.SqrtpsXmmXmmm128, instructions.SqrtpsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 583
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.RsqrtpsXmmXmmm128, instructions.RsqrtpsXmmXmmm128, instructions.RsqrtpsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 584
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.RcppsXmmXmmm128, instructions.RcppsXmmXmmm128, instructions.RcppsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 585
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.AndpsXmmXmmm128, instructions.AndpsXmmXmmm128, instructions.AndpsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 586
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.AndnpsXmmXmmm128, instructions.AndnpsXmmXmmm128, instructions.AndnpsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 587
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.OrpsXmmXmmm128, instructions.OrpsXmmXmmm128, instructions.OrpsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 588
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.XorpsXmmXmmm128, instructions.XorpsXmmXmmm128, instructions.XorpsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 589
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.AddpsXmmXmmm128, instructions.AddpsXmmXmmm128, instructions.AddpsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 590
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MulpsXmmXmmm128, instructions.MulpsXmmXmmm128, instructions.MulpsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 591
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.Cvtps2pdXmmXmmm64, instructions.Cvtps2pdXmmXmmm64, instructions.Cvtps2pdXmmXmmm64}}, Memory: Sizes{{memorysize.Packed64Float32, memorysize.Packed64Float32, memorysize.Packed64Float32}}}, // 592
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.Cvtdq2psXmmXmmm128, instructions.Cvtdq2psXmmXmmm128, instructions.Cvtdq2psXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 593
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.SubpsXmmXmmm128, instructions.SubpsXmmXmmm128, instructions.SubpsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 594
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MinpsXmmXmmm128, instructions.MinpsXmmXmmm128, instructions.MinpsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 595
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.DivpsXmmXmmm128, instructions.DivpsXmmXmmm128, instructions.DivpsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 596
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MaxpsXmmXmmm128, instructions.MaxpsXmmXmmm128, instructions.MaxpsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 597
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PunpcklbwMmMmm64, instructions.PunpcklbwMmMmm64, instructions.PunpcklbwMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 598
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PunpcklwdMmMmm64, instructions.PunpcklwdMmMmm64, instructions.PunpcklwdMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 599
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PunpckldqMmMmm64, instructions.PunpckldqMmMmm64, instructions.PunpckldqMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 600
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PacksswbMmMmm64, instructions.PacksswbMmMmm64, instructions.PacksswbMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 601
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PcmpgtbMmMmm64, instructions.PcmpgtbMmMmm64, instructions.PcmpgtbMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 602
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PcmpgtwMmMmm64, instructions.PcmpgtwMmMmm64, instructions.PcmpgtwMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 603
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PcmpgtdMmMmm64, instructions.PcmpgtdMmMmm64, instructions.PcmpgtdMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 604
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PackuswbMmMmm64, instructions.PackuswbMmMmm64, instructions.PackuswbMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 605
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PunpckhbwMmMmm64, instructions.PunpckhbwMmMmm64, instructions.PunpckhbwMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 606
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PunpckhwdMmMmm64, instructions.PunpckhwdMmMmm64, instructions.PunpckhwdMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 607
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PunpckhdqMmMmm64, instructions.PunpckhdqMmMmm64, instructions.PunpckhdqMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 608
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PackssdwMmMmm64, instructions.PackssdwMmMmm64, instructions.PackssdwMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 609
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpEy}, Codes: Codes{{instructions.MovdMmRm32, instructions.MovdMmRm32, instructions.MovqMmRm64}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt64}}}, // 610
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.MovqMmMmm64, instructions.MovqMmMmm64, instructions.MovqMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 611
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ, OpIb}, Codes: Codes{{instructions.PshufwMmMmm64Imm8, instructions.PshufwMmMmm64Imm8, instructions.PshufwMmMmm64Imm8}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 612
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpN, OpIb}, Codes: Codes{{instructions.PsrlwMmImm8, instructions.PsrlwMmImm8, instructions.PsrlwMmImm8}}}, // 613
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpN, OpIb}, Codes: Codes{{instructions.PsrawMmImm8, instructions.PsrawMmImm8, instructions.PsrawMmImm8}}}, // 614
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpN, OpIb}, Codes: Codes{{instructions.PsllwMmImm8, instructions.PsllwMmImm8, instructions.PsllwMmImm8}}}, // 615
	{Kind: KindGroup, Flags: FlagModRM, Group: 33}, // 616
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpN, OpIb}, Codes: Codes{{instructions.PsrldMmImm8, instructions.PsrldMmImm8, instructions.PsrldMmImm8}}}, // 617
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpN, OpIb}, Codes: Codes{{instructions.PsradMmImm8, instructions.PsradMmImm8, instructions.PsradMmImm8}}}, // 618
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpN, OpIb}, Codes: Codes{{instructions.PslldMmImm8, instructions.PslldMmImm8, instructions.PslldMmImm8}}}, // 619
	{Kind: KindGroup, Flags: FlagModRM, Group: 34}, // 620
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpN, OpIb}, Codes: Codes{{instructions.PsrlqMmImm8, instructions.PsrlqMmImm8, instructions.PsrlqMmImm8}}}, // 621
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpN, OpIb}, Codes: Codes{{instructions.PsllqMmImm8, instructions.PsllqMmImm8, instructions.PsllqMmImm8}}}, // 622
	{Kind: KindGroup, Flags: FlagModRM, Group: 35}, // 623
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PcmpeqbMmMmm64, instructions.PcmpeqbMmMmm64, instructions.PcmpeqbMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 624
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PcmpeqwMmMmm64, instructions.PcmpeqwMmMmm64, instructions.PcmpeqwMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 625
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PcmpeqdMmMmm64, instructions.PcmpeqdMmMmm64, instructions.PcmpeqdMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 626
	{Kind: KindNormal, Codes: Codes{{instructions.Emms, instructions.Emms, instructions.Emms}}}, // 627
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEy, OpP}, Codes: Codes{{instructions.MovdRm32Mm, instructions.MovdRm32Mm, instructions.MovqRm64Mm}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt64}}}, // 628
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpQ, OpP}, Codes: Codes{{instructions.MovqMmm64Mm, instructions.MovqMmm64Mm, instructions.MovqMmm64Mm}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 629
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJz}, Codes: Codes{{instructions.JoRel16, instructions.JoRel32Op32, instructions.JoRel32Op64}}}, // 630
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJz}, Codes: Codes{{instructions.JnoRel16, instructions.JnoRel32Op32, instructions.JnoRel32Op64}}}, // 631
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJz}, Codes: Codes{{instructions.JbRel16, instructions.JbRel32Op32, instructions.JbRel32Op64}}}, // 632
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJz}, Codes: Codes{{instructions.JaeRel16, instructions.JaeRel32Op32, instructions.JaeRel32Op64}}}, // 633
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJz}, Codes: Codes{{instructions.JeRel16, instructions.JeRel32Op32, instructions.JeRel32Op64}}}, // 634
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJz}, Codes: Codes{{instructions.JneRel16, instructions.JneRel32Op32, instructions.JneRel32Op64}}}, // 635
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJz}, Codes: Codes{{instructions.JbeRel16, instructions.JbeRel32Op32, instructions.JbeRel32Op64}}}, // 636
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJz}, Codes: Codes{{instructions.JaRel16, instructions.JaRel32Op32, instructions.JaRel32Op64}}}, // 637
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJz}, Codes: Codes{{instructions.JsRel16, instructions.JsRel32Op32, instructions.JsRel32Op64}}}, // 638
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJz}, Codes: Codes{{instructions.JnsRel16, instructions.JnsRel32Op32, instructions.JnsRel32Op64}}}, // 639
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJz}, Codes: Codes{{instructions.JpRel16, instructions.JpRel32Op32, instructions.JpRel32Op64}}}, // 640
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJz}, Codes: Codes{{instructions.JnpRel16, instructions.JnpRel32Op32, instructions.JnpRel32Op64}}}, // 641
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJz}, Codes: Codes{{instructions.JlRel16, instructions.JlRel32Op32, instructions.JlRel32Op64}}}, // 642
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJz}, Codes: Codes{{instructions.JgeRel16, instructions.JgeRel32Op32, instructions.JgeRel32Op64}}}, // 643
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJz}, Codes: Codes{{instructions.JleRel16, instructions.JleRel32Op32, instructions.JleRel32Op64}}}, // 644
	{Kind: KindNormal, Flags: FlagForce64, Operands: Operands{OpJz}, Codes: Codes{{instructions.JgRel16, instructions.JgRel32Op32, instructions.JgRel32Op64}}}, // 645
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.SetoRm8, instructions.SetoRm8, instructions.SetoRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 646
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.SetnoRm8, instructions.SetnoRm8, instructions.SetnoRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 647
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.SetbRm8, instructions.SetbRm8, instructions.SetbRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 648
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.SetaeRm8, instructions.SetaeRm8, instructions.SetaeRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 649
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.SeteRm8, instructions.SeteRm8, instructions.SeteRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 650
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.SetneRm8, instructions.SetneRm8, instructions.SetneRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 651
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.SetbeRm8, instructions.SetbeRm8, instructions.SetbeRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 652
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.SetaRm8, instructions.SetaRm8, instructions.SetaRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 653
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.SetsRm8, instructions.SetsRm8, instructions.SetsRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 654
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.SetnsRm8, instructions.SetnsRm8, instructions.SetnsRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 655
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.SetpRm8, instructions.SetpRm8, instructions.SetpRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 656
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.SetnpRm8, instructions.SetnpRm8, instructions.SetnpRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 657
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.SetlRm8, instructions.SetlRm8, instructions.SetlRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 658
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.SetgeRm8, instructions.SetgeRm8, instructions.SetgeRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 659
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.SetleRm8, instructions.SetleRm8, instructions.SetleRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 660
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEb}, Codes: Codes{{instructions.SetgRm8, instructions.SetgRm8, instructions.SetgRm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 661
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpFS}, Codes: Codes{{instructions.PushFS, instructions.PushFS, instructions.PushFS}}}, // 662
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpFS}, Codes: Codes{{instructions.PopFS, instructions.PopFS, instructions.PopFS}}}, // 663
	{Kind: KindNormal, Codes: Codes{{instructions.Cpuid, instructions.Cpuid, instructions.Cpuid}}}, // 664
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpGv}, Codes: Codes{{instructions.BtRm16R16, instructions.BtRm32R32, instructions.BtRm64R64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 665
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpGv, OpIb}, Codes: Codes{{instructions.ShldRm16R16Imm8, instructions.ShldRm32R32Imm8, instructions.ShldRm64R64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 666
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpGv, OpCL}, Codes: Codes{{instructions.ShldRm16R16CL, instructions.ShldRm32R32CL, instructions.ShldRm64R64CL}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 667
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpGS}, Codes: Codes{{instructions.PushGS, instructions.PushGS, instructions.PushGS}}}, // 668
	{Kind: KindNormal, Flags: FlagDefault64, Operands: Operands{OpGS}, Codes: Codes{{instructions.PopGS, instructions.PopGS, instructions.PopGS}}}, // 669
	{Kind: KindNormal, Codes: Codes{{instructions.Rsm, instructions.Rsm, instructions.Rsm}}}, // 670
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpGv}, Codes: Codes{{instructions.BtsRm16R16, instructions.BtsRm32R32, instructions.BtsRm64R64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 671
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpGv, OpIb}, Codes: Codes{{instructions.ShrdRm16R16Imm8, instructions.ShrdRm32R32Imm8, instructions.ShrdRm64R64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 672
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpGv, OpCL}, Codes: Codes{{instructions.ShrdRm16R16CL, instructions.ShrdRm32R32CL, instructions.ShrdRm64R64CL}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 673
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FxsaveM512byte, instructions.FxsaveM512byte, instructions.FxsaveM512byte}}, Memory: Sizes{{memorysize.Fxsave512, memorysize.Fxsave512, memorysize.Fxsave512}}}, // 674
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.FxrstorM512byte, instructions.FxrstorM512byte, instructions.FxrstorM512byte}}, Memory: Sizes{{memorysize.Fxsave512, memorysize.Fxsave512, memorysize.Fxsave512}}}, // 675
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.LdmxcsrM32, instructions.LdmxcsrM32, instructions.LdmxcsrM32}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt32}}}, // 676
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.StmxcsrM32, instructions.StmxcsrM32, instructions.StmxcsrM32}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt32}}}, // 677
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.XsaveMem, instructions.XsaveMem, instructions.XsaveMem}}, Memory: Sizes{{memorysize.Xsave, memorysize.Xsave, memorysize.Xsave}}}, // 678
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.XrstorMem, instructions.XrstorMem, instructions.XrstorMem}}, Memory: Sizes{{memorysize.Xsave, memorysize.Xsave, memorysize.Xsave}}}, // 679
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.XsaveoptMem, instructions.XsaveoptMem, instructions.XsaveoptMem}}, Memory: Sizes{{memorysize.Xsave, memorysize.Xsave, memorysize.Xsave}}}, // 680
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.ClflushM8, instructions.ClflushM8, instructions.ClflushM8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 681
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Lfence, instructions.Lfence, instructions.Lfence}}}, // 682
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Mfence, instructions.Mfence, instructions.Mfence}}}, // 683
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Sfence, instructions.Sfence, instructions.Sfence}}}, // 684
	{Kind: KindGroup, Flags: FlagModRM, Group: 36}, // 685
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.ImulR16Rm16, instructions.ImulR32Rm32, instructions.ImulR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 686
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpGb}, Codes: Codes{{instructions.CmpxchgRm8R8, instructions.CmpxchgRm8R8, instructions.CmpxchgRm8R8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 687
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpGv}, Codes: Codes{{instructions.CmpxchgRm16R16, instructions.CmpxchgRm32R32, instructions.CmpxchgRm64R64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 688
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpGv, OpM}, Codes: Codes{{instructions.LssR16M1616, instructions.LssR32M1632, instructions.LssR64M1664}}, Memory: Sizes{{memorysize.SegPtr16, memorysize.SegPtr32, memorysize.SegPtr64}}}, // 689
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpGv}, Codes: Codes{{instructions.BtrRm16R16, instructions.BtrRm32R32, instructions.BtrRm64R64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 690
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpGv, OpM}, Codes: Codes{{instructions.LfsR16M1616, instructions.LfsR32M1632, instructions.LfsR64M1664}}, Memory: Sizes{{memorysize.SegPtr16, memorysize.SegPtr32, memorysize.SegPtr64}}}, // 691
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpGv, OpM}, Codes: Codes{{instructions.LgsR16M1616, instructions.LgsR32M1632, instructions.LgsR64M1664}}, Memory: Sizes{{memorysize.SegPtr16, memorysize.SegPtr32, memorysize.SegPtr64}}}, // 692
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEb}, Codes: Codes{{instructions.MovzxR16Rm8, instructions.MovzxR32Rm8, instructions.MovzxR64Rm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 693
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEw}, Codes: Codes{{instructions.MovzxR16Rm16, instructions.MovzxR32Rm16, instructions.MovzxR64Rm16}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 694
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.Ud1R16Rm16, instructions.Ud1R32Rm32, instructions.Ud1R64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 695
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEv, OpIb}, Codes: Codes{{instructions.BtRm16Imm8, instructions.BtRm32Imm8, instructions.BtRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 696
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpIb}, Codes: Codes{{instructions.BtsRm16Imm8, instructions.BtsRm32Imm8, instructions.BtsRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 697
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpIb}, Codes: Codes{{instructions.BtrRm16Imm8, instructions.BtrRm32Imm8, instructions.BtrRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 698
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpIb}, Codes: Codes{{instructions.BtcRm16Imm8, instructions.BtcRm32Imm8, instructions.BtcRm64Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 699
	{Kind: KindGroup, Flags: FlagModRM, Group: 37}, // 700
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpGv}, Codes: Codes{{instructions.BtcRm16R16, instructions.BtcRm32R32, instructions.BtcRm64R64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 701
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.BsfR16Rm16, instructions.BsfR32Rm32, instructions.BsfR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 702
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.BsrR16Rm16, instructions.BsrR32Rm32, instructions.BsrR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 703
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEb}, Codes: Codes{{instructions.MovsxR16Rm8, instructions.MovsxR32Rm8, instructions.MovsxR64Rm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 704
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEw}, Codes: Codes{{instructions.MovsxR16Rm16, instructions.MovsxR32Rm16, instructions.MovsxR64Rm16}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 705
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEb, OpGb}, Codes: Codes{{instructions.XaddRm8R8, instructions.XaddRm8R8, instructions.XaddRm8R8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 706
	{Kind: KindNormal, Flags: FlagModRM | FlagLock, Operands: Operands{OpEv, OpGv}, Codes: Codes{{instructions.XaddRm16R16, instructions.XaddRm32R32, instructions.XaddRm64R64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 707
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.CmppsXmmXmmm128Imm8, instructions.CmppsXmmXmmm128Imm8, instructions.CmppsXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 708
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM, OpGy}, Codes: Codes{{instructions.MovntiM32R32, instructions.MovntiM32R32, instructions.MovntiM64R64}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt64}}}, // 709
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpRyM, OpIb}, Codes: Codes{{instructions.PinsrwMmR32m16Imm8, instructions.PinsrwMmR32m16Imm8, instructions.PinsrwMmR64m16Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 710
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpGy, OpN, OpIb}, Codes: Codes{{instructions.PextrwR32MmImm8, instructions.PextrwR32MmImm8, instructions.PextrwR64MmImm8}}}, // 711
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.ShufpsXmmXmmm128Imm8, instructions.ShufpsXmmXmmm128Imm8, instructions.ShufpsXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 712
	{Kind: KindNormal, Flags: FlagModRM | FlagLock | FlagNoMod3, Operands: Operands{OpM}, Codes: Codes{{instructions.Cmpxchg8bM64, instructions.Cmpxchg8bM64, instructions.Cmpxchg16bM128}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt128}}}, // 713
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpRv}, Codes: Codes{{instructions.RdrandR16, instructions.RdrandR32, instructions.RdrandR64}}}, // 714
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpRv}, Codes: Codes{{instructions.RdseedR16, instructions.RdseedR32, instructions.RdseedR64}}}, // 715
	{Kind: KindGroup, Flags: FlagModRM, Group: 38}, // 716
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.BswapR16, instructions.BswapR32, instructions.BswapR64}}}, // 717
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.BswapR16, instructions.BswapR32, instructions.BswapR64}}}, // 718
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.BswapR16, instructions.BswapR32, instructions.BswapR64}}}, // 719
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.BswapR16, instructions.BswapR32, instructions.BswapR64}}}, // 720
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.BswapR16, instructions.BswapR32, instructions.BswapR64}}}, // 721
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.BswapR16, instructions.BswapR32, instructions.BswapR64}}}, // 722
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.BswapR16, instructions.BswapR32, instructions.BswapR64}}}, // 723
	{Kind: KindNormal, Operands: Operands{OpZv}, Codes: Codes{{instructions.BswapR16, instructions.BswapR32, instructions.BswapR64}}}, // 724
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PsrlwMmMmm64, instructions.PsrlwMmMmm64, instructions.PsrlwMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 725
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PsrldMmMmm64, instructions.PsrldMmMmm64, instructions.PsrldMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 726
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PsrlqMmMmm64, instructions.PsrlqMmMmm64, instructions.PsrlqMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 727
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PaddqMmMmm64, instructions.PaddqMmMmm64, instructions.PaddqMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 728
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PmullwMmMmm64, instructions.PmullwMmMmm64, instructions.PmullwMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 729
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpGy, OpN}, Codes: Codes{{instructions.PmovmskbR32Mm, instructions.PmovmskbR32Mm, instructions.PmovmskbR64Mm}}}, // 730
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PsubusbMmMmm64, instructions.PsubusbMmMmm64, instructions.PsubusbMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 731
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PsubuswMmMmm64, instructions.PsubuswMmMmm64, instructions.PsubuswMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 732
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PminubMmMmm64, instructions.PminubMmMmm64, instructions.PminubMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 733
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PandMmMmm64, instructions.PandMmMmm64, instructions.PandMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 734
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PaddusbMmMmm64, instructions.PaddusbMmMmm64, instructions.PaddusbMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 735
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PadduswMmMmm64, instructions.PadduswMmMmm64, instructions.PadduswMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 736
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PmaxubMmMmm64, instructions.PmaxubMmMmm64, instructions.PmaxubMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 737
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PandnMmMmm64, instructions.PandnMmMmm64, instructions.PandnMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 738
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PavgbMmMmm64, instructions.PavgbMmMmm64, instructions.PavgbMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 739
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PsrawMmMmm64, instructions.PsrawMmMmm64, instructions.PsrawMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 740
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PsradMmMmm64, instructions.PsradMmMmm64, instructions.PsradMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 741
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PavgwMmMmm64, instructions.PavgwMmMmm64, instructions.PavgwMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 742
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PmulhuwMmMmm64, instructions.PmulhuwMmMmm64, instructions.PmulhuwMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 743
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PmulhwMmMmm64, instructions.PmulhwMmMmm64, instructions.PmulhwMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 744
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM, OpP}, Codes: Codes{{instructions.MovntqM64Mm, instructions.MovntqM64Mm, instructions.MovntqM64Mm}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 745
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PsubsbMmMmm64, instructions.PsubsbMmMmm64, instructions.PsubsbMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 746
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PsubswMmMmm64, instructions.PsubswMmMmm64, instructions.PsubswMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 747
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PminswMmMmm64, instructions.PminswMmMmm64, instructions.PminswMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 748
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PorMmMmm64, instructions.PorMmMmm64, instructions.PorMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 749
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PaddsbMmMmm64, instructions.PaddsbMmMmm64, instructions.PaddsbMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 750
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PaddswMmMmm64, instructions.PaddswMmMmm64, instructions.PaddswMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 751
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PmaxswMmMmm64, instructions.PmaxswMmMmm64, instructions.PmaxswMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 752
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PxorMmMmm64, instructions.PxorMmMmm64, instructions.PxorMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 753
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PsllwMmMmm64, instructions.PsllwMmMmm64, instructions.PsllwMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 754
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PslldMmMmm64, instructions.PslldMmMmm64, instructions.PslldMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 755
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PsllqMmMmm64, instructions.PsllqMmMmm64, instructions.PsllqMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 756
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PmuludqMmMmm64, instructions.PmuludqMmMmm64, instructions.PmuludqMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 757
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PmaddwdMmMmm64, instructions.PmaddwdMmMmm64, instructions.PmaddwdMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 758
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PsadbwMmMmm64, instructions.PsadbwMmMmm64, instructions.PsadbwMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 759
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpP, OpN}, Codes: Codes{{instructions.MaskmovqMmMm, instructions.MaskmovqMmMm, instructions.MaskmovqMmMm}}}, // 760
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PsubbMmMmm64, instructions.PsubbMmMmm64, instructions.PsubbMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 761
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PsubwMmMmm64, instructions.PsubwMmMmm64, instructions.PsubwMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 762
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PsubdMmMmm64, instructions.PsubdMmMmm64, instructions.PsubdMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 763
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PsubqMmMmm64, instructions.PsubqMmMmm64, instructions.PsubqMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 764
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PaddbMmMmm64, instructions.PaddbMmMmm64, instructions.PaddbMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 765
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PaddwMmMmm64, instructions.PaddwMmMmm64, instructions.PaddwMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 766
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PadddMmMmm64, instructions.PadddMmMmm64, instructions.PadddMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 767
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.Ud0R16Rm16, instructions.Ud0R32Rm32, instructions.Ud0R64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 768
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MovupdXmmXmmm128, instructions.MovupdXmmXmmm128, instructions.MovupdXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 769
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.MovupdXmmm128Xmm, instructions.MovupdXmmm128Xmm, instructions.MovupdXmmm128Xmm}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 770
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpV, OpM}, Codes: Codes{{instructions.MovlpdXmmM64, instructions.MovlpdXmmM64, instructions.MovlpdXmmM64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 771
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM, OpV}, Codes: Codes{{instructions.MovlpdM64Xmm, instructions.MovlpdM64Xmm, instructions.MovlpdM64Xmm}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 772
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.UnpcklpdXmmXmmm128, instructions.UnpcklpdXmmXmmm128, instructions.UnpcklpdXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 773
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.UnpckhpdXmmXmmm128, instructions.UnpckhpdXmmXmmm128, instructions.UnpckhpdXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 774
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpV, OpM}, Codes: Codes{{instructions.MovhpdXmmM64, instructions.MovhpdXmmM64, instructions.MovhpdXmmM64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 775
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM, OpV}, Codes: Codes{{instructions.MovhpdM64Xmm, instructions.MovhpdM64Xmm, instructions.MovhpdM64Xmm}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 776
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MovapdXmmXmmm128, instructions.MovapdXmmXmmm128, instructions.MovapdXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 777
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.MovapdXmmm128Xmm, instructions.MovapdXmmm128Xmm, instructions.MovapdXmmm128Xmm}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 778
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpQ}, Codes: Codes{{instructions.Cvtpi2pdXmmMmm64, instructions.Cvtpi2pdXmmMmm64, instructions.Cvtpi2pdXmmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 779
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM, OpV}, Codes: Codes{{instructions.MovntpdM128Xmm, instructions.MovntpdM128Xmm, instructions.MovntpdM128Xmm}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 780
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpW}, Codes: Codes{{instructions.Cvttpd2piMmXmmm128, instructions.Cvttpd2piMmXmmm128, instructions.Cvttpd2piMmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 781
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpW}, Codes: Codes{{instructions.Cvtpd2piMmXmmm128, instructions.Cvtpd2piMmXmmm128, instructions.Cvtpd2piMmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 782
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.UcomisdXmmXmmm64, instructions.UcomisdXmmXmmm64, instructions.UcomisdXmmXmmm64}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 783
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.ComisdXmmXmmm64, instructions.ComisdXmmXmmm64, instructions.ComisdXmmXmmm64}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 784
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpGy, OpU}, Codes: Codes{{instructions.MovmskpdR32Xmm, instructions.MovmskpdR32Xmm, instructions.MovmskpdR64Xmm}}}, // 785
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.SqrtpdXmmXmmm128, instructions.SqrtpdXmmXmmm128, instructions.SqrtpdXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 786
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.AndpdXmmXmmm128, instructions.AndpdXmmXmmm128, instructions.AndpdXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 787
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.AndnpdXmmXmmm128, instructions.AndnpdXmmXmmm128, instructions.AndnpdXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 788
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.OrpdXmmXmmm128, instructions.OrpdXmmXmmm128, instructions.OrpdXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 789
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.XorpdXmmXmmm128, instructions.XorpdXmmXmmm128, instructions.XorpdXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 790
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.AddpdXmmXmmm128, instructions.AddpdXmmXmmm128, instructions.AddpdXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 791
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MulpdXmmXmmm128, instructions.MulpdXmmXmmm128, instructions.MulpdXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 792
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.Cvtpd2psXmmXmmm128, instructions.Cvtpd2psXmmXmmm128, instructions.Cvtpd2psXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 793
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.Cvtps2dqXmmXmmm128, instructions.Cvtps2dqXmmXmmm128, instructions.Cvtps2dqXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 794
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.SubpdXmmXmmm128, instructions.SubpdXmmXmmm128, instructions.SubpdXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 795
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MinpdXmmXmmm128, instructions.MinpdXmmXmmm128, instructions.MinpdXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 796
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.DivpdXmmXmmm128, instructions.DivpdXmmXmmm128, instructions.DivpdXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 797
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MaxpdXmmXmmm128, instructions.MaxpdXmmXmmm128, instructions.MaxpdXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 798
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PunpcklbwXmmXmmm128, instructions.PunpcklbwXmmXmmm128, instructions.PunpcklbwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 799
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PunpcklwdXmmXmmm128, instructions.PunpcklwdXmmXmmm128, instructions.PunpcklwdXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 800
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PunpckldqXmmXmmm128, instructions.PunpckldqXmmXmmm128, instructions.PunpckldqXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 801
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PacksswbXmmXmmm128, instructions.PacksswbXmmXmmm128, instructions.PacksswbXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 802
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PcmpgtbXmmXmmm128, instructions.PcmpgtbXmmXmmm128, instructions.PcmpgtbXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 803
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PcmpgtwXmmXmmm128, instructions.PcmpgtwXmmXmmm128, instructions.PcmpgtwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 804
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PcmpgtdXmmXmmm128, instructions.PcmpgtdXmmXmmm128, instructions.PcmpgtdXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 805
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PackuswbXmmXmmm128, instructions.PackuswbXmmXmmm128, instructions.PackuswbXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 806
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PunpckhbwXmmXmmm128, instructions.PunpckhbwXmmXmmm128, instructions.PunpckhbwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 807
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PunpckhwdXmmXmmm128, instructions.PunpckhwdXmmXmmm128, instructions.PunpckhwdXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 808
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PunpckhdqXmmXmmm128, instructions.PunpckhdqXmmXmmm128, instructions.PunpckhdqXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 809
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PackssdwXmmXmmm128, instructions.PackssdwXmmXmmm128, instructions.PackssdwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 810
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PunpcklqdqXmmXmmm128, instructions.PunpcklqdqXmmXmmm128, instructions.PunpcklqdqXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 811
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PunpckhqdqXmmXmmm128, instructions.PunpckhqdqXmmXmmm128, instructions.PunpckhqdqXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 812
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpEy}, Codes: Codes{{instructions.MovdXmmRm32, instructions.MovdXmmRm32, instructions.MovqXmmRm64}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt64}}}, // 813
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MovdqaXmmXmmm128, instructions.MovdqaXmmXmmm128, instructions.MovdqaXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 814
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.PshufdXmmXmmm128Imm8, instructions.PshufdXmmXmmm128Imm8, instructions.PshufdXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 815
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpU, OpIb}, Codes: Codes{{instructions.PsrlwXmmImm8, instructions.PsrlwXmmImm8, instructions.PsrlwXmmImm8}}}, // 816
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpU, OpIb}, Codes: Codes{{instructions.PsrawXmmImm8, instructions.PsrawXmmImm8, instructions.PsrawXmmImm8}}}, // 817
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpU, OpIb}, Codes: Codes{{instructions.PsllwXmmImm8, instructions.PsllwXmmImm8, instructions.PsllwXmmImm8}}}, // 818
	{Kind: KindGroup, Flags: FlagModRM, Group: 39}, // 819
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpU, OpIb}, Codes: Codes{{instructions.PsrldXmmImm8, instructions.PsrldXmmImm8, instructions.PsrldXmmImm8}}}, // 820
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpU, OpIb}, Codes: Codes{{instructions.PsradXmmImm8, instructions.PsradXmmImm8, instructions.PsradXmmImm8}}}, // 821
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpU, OpIb}, Codes: Codes{{instructions.PslldXmmImm8, instructions.PslldXmmImm8, instructions.PslldXmmImm8}}}, // 822
	{Kind: KindGroup, Flags: FlagModRM, Group: 40}, // 823
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpU, OpIb}, Codes: Codes{{instructions.PsrlqXmmImm8, instructions.PsrlqXmmImm8, instructions.PsrlqXmmImm8}}}, // 824
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpU, OpIb}, Codes: Codes{{instructions.PsrldqXmmImm8, instructions.PsrldqXmmImm8, instructions.PsrldqXmmImm8}}}, // 825
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpU, OpIb}, Codes: Codes{{instructions.PsllqXmmImm8, instructions.PsllqXmmImm8, instructions.PsllqXmmImm8}}}, // 826
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpU, OpIb}, Codes: Codes{{instructions.PslldqXmmImm8, instructions.PslldqXmmImm8, instructions.PslldqXmmImm8}}}, // 827
	{Kind: KindGroup, Flags: FlagModRM, Group: 41}, // 828
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PcmpeqbXmmXmmm128, instructions.PcmpeqbXmmXmmm128, instructions.PcmpeqbXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 829
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PcmpeqwXmmXmmm128, instructions.PcmpeqwXmmXmmm128, instructions.PcmpeqwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 830
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PcmpeqdXmmXmmm128, instructions.PcmpeqdXmmXmmm128, instructions.PcmpeqdXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 831
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.HaddpdXmmXmmm128, instructions.HaddpdXmmXmmm128, instructions.HaddpdXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 832
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.HsubpdXmmXmmm128, instructions.HsubpdXmmXmmm128, instructions.HsubpdXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 833
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEy, OpV}, Codes: Codes{{instructions.MovdRm32Xmm, instructions.MovdRm32Xmm, instructions.MovqRm64Xmm}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt64}}}, // 834
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.MovdqaXmmm128Xmm, instructions.MovdqaXmmm128Xmm, instructions.MovdqaXmmm128Xmm}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 835
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.CmppdXmmXmmm128Imm8, instructions.CmppdXmmXmmm128Imm8, instructions.CmppdXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 836
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpRyM, OpIb}, Codes: Codes{{instructions.PinsrwXmmR32m16Imm8, instructions.PinsrwXmmR32m16Imm8, instructions.PinsrwXmmR64m16Imm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 837
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpGy, OpU, OpIb}, Codes: Codes{{instructions.PextrwR32XmmImm8, instructions.PextrwR32XmmImm8, instructions.PextrwR64XmmImm8}}}, // 838
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.ShufpdXmmXmmm128Imm8, instructions.ShufpdXmmXmmm128Imm8, instructions.ShufpdXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 839
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.AddsubpdXmmXmmm128, instructions.AddsubpdXmmXmmm128, instructions.AddsubpdXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 840
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PsrlwXmmXmmm128, instructions.PsrlwXmmXmmm128, instructions.PsrlwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 841
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PsrldXmmXmmm128, instructions.PsrldXmmXmmm128, instructions.PsrldXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 842
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PsrlqXmmXmmm128, instructions.PsrlqXmmXmmm128, instructions.PsrlqXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 843
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PaddqXmmXmmm128, instructions.PaddqXmmXmmm128, instructions.PaddqXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 844
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmullwXmmXmmm128, instructions.PmullwXmmXmmm128, instructions.PmullwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 845
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.MovqXmmm64Xmm, instructions.MovqXmmm64Xmm, instructions.MovqXmmm64Xmm}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 846
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpGy, OpU}, Codes: Codes{{instructions.PmovmskbR32Xmm, instructions.PmovmskbR32Xmm, instructions.PmovmskbR64Xmm}}}, // 847
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PsubusbXmmXmmm128, instructions.PsubusbXmmXmmm128, instructions.PsubusbXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 848
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PsubuswXmmXmmm128, instructions.PsubuswXmmXmmm128, instructions.PsubuswXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 849
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PminubXmmXmmm128, instructions.PminubXmmXmmm128, instructions.PminubXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 850
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PandXmmXmmm128, instructions.PandXmmXmmm128, instructions.PandXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 851
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PaddusbXmmXmmm128, instructions.PaddusbXmmXmmm128, instructions.PaddusbXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 852
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PadduswXmmXmmm128, instructions.PadduswXmmXmmm128, instructions.PadduswXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 853
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmaxubXmmXmmm128, instructions.PmaxubXmmXmmm128, instructions.PmaxubXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 854
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PandnXmmXmmm128, instructions.PandnXmmXmmm128, instructions.PandnXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 855
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PavgbXmmXmmm128, instructions.PavgbXmmXmmm128, instructions.PavgbXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 856
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PsrawXmmXmmm128, instructions.PsrawXmmXmmm128, instructions.PsrawXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 857
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PsradXmmXmmm128, instructions.PsradXmmXmmm128, instructions.PsradXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 858
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PavgwXmmXmmm128, instructions.PavgwXmmXmmm128, instructions.PavgwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 859
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmulhuwXmmXmmm128, instructions.PmulhuwXmmXmmm128, instructions.PmulhuwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 860
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmulhwXmmXmmm128, instructions.PmulhwXmmXmmm128, instructions.PmulhwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 861
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.Cvttpd2dqXmmXmmm128, instructions.Cvttpd2dqXmmXmmm128, instructions.Cvttpd2dqXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 862
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM, OpV}, Codes: Codes{{instructions.MovntdqM128Xmm, instructions.MovntdqM128Xmm, instructions.MovntdqM128Xmm}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 863
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PsubsbXmmXmmm128, instructions.PsubsbXmmXmmm128, instructions.PsubsbXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 864
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PsubswXmmXmmm128, instructions.PsubswXmmXmmm128, instructions.PsubswXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 865
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PminswXmmXmmm128, instructions.PminswXmmXmmm128, instructions.PminswXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 866
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PorXmmXmmm128, instructions.PorXmmXmmm128, instructions.PorXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 867
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PaddsbXmmXmmm128, instructions.PaddsbXmmXmmm128, instructions.PaddsbXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 868
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PaddswXmmXmmm128, instructions.PaddswXmmXmmm128, instructions.PaddswXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 869
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmaxswXmmXmmm128, instructions.PmaxswXmmXmmm128, instructions.PmaxswXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 870
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PxorXmmXmmm128, instructions.PxorXmmXmmm128, instructions.PxorXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 871
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PsllwXmmXmmm128, instructions.PsllwXmmXmmm128, instructions.PsllwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 872
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PslldXmmXmmm128, instructions.PslldXmmXmmm128, instructions.PslldXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 873
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PsllqXmmXmmm128, instructions.PsllqXmmXmmm128, instructions.PsllqXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 874
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmuludqXmmXmmm128, instructions.PmuludqXmmXmmm128, instructions.PmuludqXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 875
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmaddwdXmmXmmm128, instructions.PmaddwdXmmXmmm128, instructions.PmaddwdXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 876
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PsadbwXmmXmmm128, instructions.PsadbwXmmXmmm128, instructions.PsadbwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 877
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpV, OpU}, Codes: Codes{{instructions.MaskmovdquXmmXmm, instructions.MaskmovdquXmmXmm, instructions.MaskmovdquXmmXmm}}}, // 878
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PsubbXmmXmmm128, instructions.PsubbXmmXmmm128, instructions.PsubbXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 879
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PsubwXmmXmmm128, instructions.PsubwXmmXmmm128, instructions.PsubwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 880
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PsubdXmmXmmm128, instructions.PsubdXmmXmmm128, instructions.PsubdXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 881
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PsubqXmmXmmm128, instructions.PsubqXmmXmmm128, instructions.PsubqXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 882
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PaddbXmmXmmm128, instructions.PaddbXmmXmmm128, instructions.PaddbXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 883
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PaddwXmmXmmm128, instructions.PaddwXmmXmmm128, instructions.PaddwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 884
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PadddXmmXmmm128, instructions.PadddXmmXmmm128, instructions.PadddXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 885
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MovssXmmXmmm32, instructions.MovssXmmXmmm32, instructions.MovssXmmXmmm32}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 886
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.MovssXmmm32Xmm, instructions.MovssXmmm32Xmm, instructions.MovssXmmm32Xmm}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 887
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MovsldupXmmXmmm128, instructions.MovsldupXmmXmmm128, instructions.MovsldupXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 888
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MovshdupXmmXmmm128, instructions.MovshdupXmmXmmm128, instructions.MovshdupXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 889
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Endbr64, instructions.Endbr64, instructions.Endbr64}}}, // 890
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Endbr32, instructions.Endbr32, instructions.Endbr32}}}, // 891
	{Kind: KindGroup, Flags: FlagModRM, Group: 42}, // 892
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpEy}, Codes: Codes{{instructions.Cvtsi2ssXmmRm32, instructions.Cvtsi2ssXmmRm32, instructions.Cvtsi2ssXmmRm64}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt64}}}, // 893
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGy, OpW}, Codes: Codes{{instructions.Cvttss2siR32Xmmm32, instructions.Cvttss2siR32Xmmm32, instructions.Cvttss2siR64Xmmm32}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 894
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGy, OpW}, Codes: Codes{{instructions.Cvtss2siR32Xmmm32, instructions.Cvtss2siR32Xmmm32, instructions.Cvtss2siR64Xmmm32}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 895
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.SqrtssXmmXmmm32, instructions.SqrtssXmmXmmm32, instructions.SqrtssXmmXmmm32}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 896
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.RsqrtssXmmXmmm32, instructions.RsqrtssXmmXmmm32, instructions.RsqrtssXmmXmmm32}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 897
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.RcpssXmmXmmm32, instructions.RcpssXmmXmmm32, instructions.RcpssXmmXmmm32}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 898
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.AddssXmmXmmm32, instructions.AddssXmmXmmm32, instructions.AddssXmmXmmm32}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 899
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MulssXmmXmmm32, instructions.MulssXmmXmmm32, instructions.MulssXmmXmmm32}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 900
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.Cvtss2sdXmmXmmm32, instructions.Cvtss2sdXmmXmmm32, instructions.Cvtss2sdXmmXmmm32}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 901
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.Cvttps2dqXmmXmmm128, instructions.Cvttps2dqXmmXmmm128, instructions.Cvttps2dqXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 902
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.SubssXmmXmmm32, instructions.SubssXmmXmmm32, instructions.SubssXmmXmmm32}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 903
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MinssXmmXmmm32, instructions.MinssXmmXmmm32, instructions.MinssXmmXmmm32}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 904
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.DivssXmmXmmm32, instructions.DivssXmmXmmm32, instructions.DivssXmmXmmm32}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 905
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MaxssXmmXmmm32, instructions.MaxssXmmXmmm32, instructions.MaxssXmmXmmm32}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 906
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MovdquXmmXmmm128, instructions.MovdquXmmXmmm128, instructions.MovdquXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 907
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.PshufhwXmmXmmm128Imm8, instructions.PshufhwXmmXmmm128Imm8, instructions.PshufhwXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 908
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MovqXmmXmmm64, instructions.MovqXmmXmmm64, instructions.MovqXmmXmmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 909
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.MovdquXmmm128Xmm, instructions.MovdquXmmm128Xmm, instructions.MovdquXmmm128Xmm}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 910
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.PopcntR16Rm16, instructions.PopcntR32Rm32, instructions.PopcntR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 911
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.TzcntR16Rm16, instructions.TzcntR32Rm32, instructions.TzcntR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 912
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEv}, Codes: Codes{{instructions.LzcntR16Rm16, instructions.LzcntR32Rm32, instructions.LzcntR64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 913
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.CmpssXmmXmmm32Imm8, instructions.CmpssXmmXmmm32Imm8, instructions.CmpssXmmXmmm32Imm8}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 914
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpRy}, Codes: Codes{{instructions.RdpidR32, instructions.RdpidR32, instructions.RdpidR64}}}, // 915
	{Kind: KindGroup, Flags: FlagModRM, Group: 43}, // 916
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpV, OpN}, Codes: Codes{{instructions.Movq2dqXmmMm, instructions.Movq2dqXmmMm, instructions.Movq2dqXmmMm}}}, // 917
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.Cvtdq2pdXmmXmmm64, instructions.Cvtdq2pdXmmXmmm64, instructions.Cvtdq2pdXmmXmmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 918
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MovsdXmmXmmm64, instructions.MovsdXmmXmmm64, instructions.MovsdXmmXmmm64}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 919
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.MovsdXmmm64Xmm, instructions.MovsdXmmm64Xmm, instructions.MovsdXmmm64Xmm}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 920
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MovddupXmmXmmm64, instructions.MovddupXmmXmmm64, instructions.MovddupXmmXmmm64}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 921
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpEy}, Codes: Codes{{instructions.Cvtsi2sdXmmRm32, instructions.Cvtsi2sdXmmRm32, instructions.Cvtsi2sdXmmRm64}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt64}}}, // 922
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGy, OpW}, Codes: Codes{{instructions.Cvttsd2siR32Xmmm64, instructions.Cvttsd2siR32Xmmm64, instructions.Cvttsd2siR64Xmmm64}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 923
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGy, OpW}, Codes: Codes{{instructions.Cvtsd2siR32Xmmm64, instructions.Cvtsd2siR32Xmmm64, instructions.Cvtsd2siR64Xmmm64}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 924
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.SqrtsdXmmXmmm64, instructions.SqrtsdXmmXmmm64, instructions.SqrtsdXmmXmmm64}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 925
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.AddsdXmmXmmm64, instructions.AddsdXmmXmmm64, instructions.AddsdXmmXmmm64}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 926
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MulsdXmmXmmm64, instructions.MulsdXmmXmmm64, instructions.MulsdXmmXmmm64}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 927
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.Cvtsd2ssXmmXmmm64, instructions.Cvtsd2ssXmmXmmm64, instructions.Cvtsd2ssXmmXmmm64}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 928
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.SubsdXmmXmmm64, instructions.SubsdXmmXmmm64, instructions.SubsdXmmXmmm64}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 929
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MinsdXmmXmmm64, instructions.MinsdXmmXmmm64, instructions.MinsdXmmXmmm64}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 930
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.DivsdXmmXmmm64, instructions.DivsdXmmXmmm64, instructions.DivsdXmmXmmm64}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 931
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.MaxsdXmmXmmm64, instructions.MaxsdXmmXmmm64, instructions.MaxsdXmmXmmm64}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 932
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.PshuflwXmmXmmm128Imm8, instructions.PshuflwXmmXmmm128Imm8, instructions.PshuflwXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 933
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.HaddpsXmmXmmm128, instructions.HaddpsXmmXmmm128, instructions.HaddpsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 934
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.HsubpsXmmXmmm128, instructions.HsubpsXmmXmmm128, instructions.HsubpsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 935
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.CmpsdXmmXmmm64Imm8, instructions.CmpsdXmmXmmm64Imm8, instructions.CmpsdXmmXmmm64Imm8}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 936
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.AddsubpsXmmXmmm128, instructions.AddsubpsXmmXmmm128, instructions.AddsubpsXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 937
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpP, OpU}, Codes: Codes{{instructions.Movdq2qMmXmm, instructions.Movdq2qMmXmm, instructions.Movdq2qMmXmm}}}, // 938
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.Cvtpd2dqXmmXmmm128, instructions.Cvtpd2dqXmmXmmm128, instructions.Cvtpd2dqXmmXmmm128}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 939
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpV, OpM}, Codes: Codes{{instructions.LddquXmmM128, instructions.LddquXmmM128, instructions.LddquXmmM128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 940
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PshufbMmMmm64, instructions.PshufbMmMmm64, instructions.PshufbMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 941
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PhaddwMmMmm64, instructions.PhaddwMmMmm64, instructions.PhaddwMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 942
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PhadddMmMmm64, instructions.PhadddMmMmm64, instructions.PhadddMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 943
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PhaddswMmMmm64, instructions.PhaddswMmMmm64, instructions.PhaddswMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 944
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PmaddubswMmMmm64, instructions.PmaddubswMmMmm64, instructions.PmaddubswMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 945
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PhsubwMmMmm64, instructions.PhsubwMmMmm64, instructions.PhsubwMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 946
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PhsubdMmMmm64, instructions.PhsubdMmMmm64, instructions.PhsubdMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 947
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PhsubswMmMmm64, instructions.PhsubswMmMmm64, instructions.PhsubswMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 948
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PsignbMmMmm64, instructions.PsignbMmMmm64, instructions.PsignbMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 949
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PsignwMmMmm64, instructions.PsignwMmMmm64, instructions.PsignwMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 950
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PsigndMmMmm64, instructions.PsigndMmMmm64, instructions.PsigndMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 951
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PmulhrswMmMmm64, instructions.PmulhrswMmMmm64, instructions.PmulhrswMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 952
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PabsbMmMmm64, instructions.PabsbMmMmm64, instructions.PabsbMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 953
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PabswMmMmm64, instructions.PabswMmMmm64, instructions.PabswMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 954
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ}, Codes: Codes{{instructions.PabsdMmMmm64, instructions.PabsdMmMmm64, instructions.PabsdMmMmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 955
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpGv, OpM}, Codes: Codes{{instructions.MovbeR16M16, instructions.MovbeR32M32, instructions.MovbeR64M64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 956
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM, OpGv}, Codes: Codes{{instructions.MovbeM16R16, instructions.MovbeM32R32, instructions.MovbeM64R64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 957
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PshufbXmmXmmm128, instructions.PshufbXmmXmmm128, instructions.PshufbXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 958
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PhaddwXmmXmmm128, instructions.PhaddwXmmXmmm128, instructions.PhaddwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 959
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PhadddXmmXmmm128, instructions.PhadddXmmXmmm128, instructions.PhadddXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 960
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PhaddswXmmXmmm128, instructions.PhaddswXmmXmmm128, instructions.PhaddswXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 961
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmaddubswXmmXmmm128, instructions.PmaddubswXmmXmmm128, instructions.PmaddubswXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 962
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PhsubwXmmXmmm128, instructions.PhsubwXmmXmmm128, instructions.PhsubwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 963
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PhsubdXmmXmmm128, instructions.PhsubdXmmXmmm128, instructions.PhsubdXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 964
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PhsubswXmmXmmm128, instructions.PhsubswXmmXmmm128, instructions.PhsubswXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 965
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PsignbXmmXmmm128, instructions.PsignbXmmXmmm128, instructions.PsignbXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 966
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PsignwXmmXmmm128, instructions.PsignwXmmXmmm128, instructions.PsignwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 967
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PsigndXmmXmmm128, instructions.PsigndXmmXmmm128, instructions.PsigndXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 968
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmulhrswXmmXmmm128, instructions.PmulhrswXmmXmmm128, instructions.PmulhrswXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 969
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpXMM0}, Codes: Codes{{instructions.PblendvbXmmXmmm128Xmm0, instructions.PblendvbXmmXmmm128Xmm0, instructions.PblendvbXmmXmmm128Xmm0}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 970
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpXMM0}, Codes: Codes{{instructions.BlendvpsXmmXmmm128Xmm0, instructions.BlendvpsXmmXmmm128Xmm0, instructions.BlendvpsXmmXmmm128Xmm0}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 971
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpXMM0}, Codes: Codes{{instructions.BlendvpdXmmXmmm128Xmm0, instructions.BlendvpdXmmXmmm128Xmm0, instructions.BlendvpdXmmXmmm128Xmm0}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 972
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PtestXmmXmmm128, instructions.PtestXmmXmmm128, instructions.PtestXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 973
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PabsbXmmXmmm128, instructions.PabsbXmmXmmm128, instructions.PabsbXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 974
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PabswXmmXmmm128, instructions.PabswXmmXmmm128, instructions.PabswXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 975
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PabsdXmmXmmm128, instructions.PabsdXmmXmmm128, instructions.PabsdXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 976
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmovsxbwXmmXmmm64, instructions.PmovsxbwXmmXmmm64, instructions.PmovsxbwXmmXmmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 977
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmovsxbdXmmXmmm32, instructions.PmovsxbdXmmXmmm32, instructions.PmovsxbdXmmXmmm32}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt32}}}, // 978
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmovsxbqXmmXmmm16, instructions.PmovsxbqXmmXmmm16, instructions.PmovsxbqXmmXmmm16}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 979
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmovsxwdXmmXmmm64, instructions.PmovsxwdXmmXmmm64, instructions.PmovsxwdXmmXmmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 980
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmovsxwqXmmXmmm32, instructions.PmovsxwqXmmXmmm32, instructions.PmovsxwqXmmXmmm32}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt32}}}, // 981
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmovsxdqXmmXmmm64, instructions.PmovsxdqXmmXmmm64, instructions.PmovsxdqXmmXmmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 982
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmuldqXmmXmmm128, instructions.PmuldqXmmXmmm128, instructions.PmuldqXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 983
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PcmpeqqXmmXmmm128, instructions.PcmpeqqXmmXmmm128, instructions.PcmpeqqXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 984
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpV, OpM}, Codes: Codes{{instructions.MovntdqaXmmM128, instructions.MovntdqaXmmM128, instructions.MovntdqaXmmM128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 985
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PackusdwXmmXmmm128, instructions.PackusdwXmmXmmm128, instructions.PackusdwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 986
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmovzxbwXmmXmmm64, instructions.PmovzxbwXmmXmmm64, instructions.PmovzxbwXmmXmmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 987
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmovzxbdXmmXmmm32, instructions.PmovzxbdXmmXmmm32, instructions.PmovzxbdXmmXmmm32}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt32}}}, // 988
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmovzxbqXmmXmmm16, instructions.PmovzxbqXmmXmmm16, instructions.PmovzxbqXmmXmmm16}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 989
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmovzxwdXmmXmmm64, instructions.PmovzxwdXmmXmmm64, instructions.PmovzxwdXmmXmmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 990
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmovzxwqXmmXmmm32, instructions.PmovzxwqXmmXmmm32, instructions.PmovzxwqXmmXmmm32}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt32}}}, // 991
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmovzxdqXmmXmmm64, instructions.PmovzxdqXmmXmmm64, instructions.PmovzxdqXmmXmmm64}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 992
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PcmpgtqXmmXmmm128, instructions.PcmpgtqXmmXmmm128, instructions.PcmpgtqXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 993
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PminsbXmmXmmm128, instructions.PminsbXmmXmmm128, instructions.PminsbXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 994
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PminsdXmmXmmm128, instructions.PminsdXmmXmmm128, instructions.PminsdXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 995
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PminuwXmmXmmm128, instructions.PminuwXmmXmmm128, instructions.PminuwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 996
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PminudXmmXmmm128, instructions.PminudXmmXmmm128, instructions.PminudXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 997
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmaxsbXmmXmmm128, instructions.PmaxsbXmmXmmm128, instructions.PmaxsbXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 998
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmaxsdXmmXmmm128, instructions.PmaxsdXmmXmmm128, instructions.PmaxsdXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 999
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmaxuwXmmXmmm128, instructions.PmaxuwXmmXmmm128, instructions.PmaxuwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1000
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmaxudXmmXmmm128, instructions.PmaxudXmmXmmm128, instructions.PmaxudXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1001
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PmulldXmmXmmm128, instructions.PmulldXmmXmmm128, instructions.PmulldXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1002
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.PhminposuwXmmXmmm128, instructions.PhminposuwXmmXmmm128, instructions.PhminposuwXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1003
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.AesimcXmmXmmm128, instructions.AesimcXmmXmmm128, instructions.AesimcXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1004
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.AesencXmmXmmm128, instructions.AesencXmmXmmm128, instructions.AesencXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1005
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.AesenclastXmmXmmm128, instructions.AesenclastXmmXmmm128, instructions.AesenclastXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1006
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.AesdecXmmXmmm128, instructions.AesdecXmmXmmm128, instructions.AesdecXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1007
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.AesdeclastXmmXmmm128, instructions.AesdeclastXmmXmmm128, instructions.AesdeclastXmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1008
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGy, OpEy}, Codes: Codes{{instructions.AdcxR32Rm32, instructions.AdcxR32Rm32, instructions.AdcxR64Rm64}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt64}}}, // 1009
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGy, OpEy}, Codes: Codes{{instructions.AdoxR32Rm32, instructions.AdoxR32Rm32, instructions.AdoxR64Rm64}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt64}}}, // 1010
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGy, OpEb}, Codes: Codes{{instructions.Crc32R32Rm8, instructions.Crc32R32Rm8, instructions.Crc32R64Rm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 1011
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGy, OpEv}, Codes: Codes{{instructions.Crc32R32Rm16, instructions.Crc32R32Rm32, instructions.Crc32R64Rm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 1012
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpP, OpQ, OpIb}, Codes: Codes{{instructions.PalignrMmMmm64Imm8, instructions.PalignrMmMmm64Imm8, instructions.PalignrMmMmm64Imm8}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 1013
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.RoundpsXmmXmmm128Imm8, instructions.RoundpsXmmXmmm128Imm8, instructions.RoundpsXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 1014
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.RoundpdXmmXmmm128Imm8, instructions.RoundpdXmmXmmm128Imm8, instructions.RoundpdXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 1015
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.RoundssXmmXmmm32Imm8, instructions.RoundssXmmXmmm32Imm8, instructions.RoundssXmmXmmm32Imm8}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 1016
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.RoundsdXmmXmmm64Imm8, instructions.RoundsdXmmXmmm64Imm8, instructions.RoundsdXmmXmmm64Imm8}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1017
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.BlendpsXmmXmmm128Imm8, instructions.BlendpsXmmXmmm128Imm8, instructions.BlendpsXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 1018
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.BlendpdXmmXmmm128Imm8, instructions.BlendpdXmmXmmm128Imm8, instructions.BlendpdXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 1019
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.PblendwXmmXmmm128Imm8, instructions.PblendwXmmXmmm128Imm8, instructions.PblendwXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1020
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.PalignrXmmXmmm128Imm8, instructions.PalignrXmmXmmm128Imm8, instructions.PalignrXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1021
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpRyM, OpV, OpIb}, Codes: Codes{{instructions.PextrbR32m8XmmImm8, instructions.PextrbR32m8XmmImm8, instructions.PextrbR64m8XmmImm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 1022
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpRyM, OpV, OpIb}, Codes: Codes{{instructions.PextrwR32m16XmmImm8, instructions.PextrwR32m16XmmImm8, instructions.PextrwR64m16XmmImm8}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 1023
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEy, OpV, OpIb}, Codes: Codes{{instructions.PextrdRm32XmmImm8, instructions.PextrdRm32XmmImm8, instructions.PextrqRm64XmmImm8}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt64}}}, // 1024
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpEd, OpV, OpIb}, Codes: Codes{{instructions.ExtractpsRm32XmmImm8, instructions.ExtractpsRm32XmmImm8, instructions.ExtractpsRm32XmmImm8}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt32}}}, // 1025
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpRyM, OpIb}, Codes: Codes{{instructions.PinsrbXmmR32m8Imm8, instructions.PinsrbXmmR32m8Imm8, instructions.PinsrbXmmR64m8Imm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 1026
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.InsertpsXmmXmmm32Imm8, instructions.InsertpsXmmXmmm32Imm8, instructions.InsertpsXmmXmmm32Imm8}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt32}}}, // 1027
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpEy, OpIb}, Codes: Codes{{instructions.PinsrdXmmRm32Imm8, instructions.PinsrdXmmRm32Imm8, instructions.PinsrqXmmRm64Imm8}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt64}}}, // 1028
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.DppsXmmXmmm128Imm8, instructions.DppsXmmXmmm128Imm8, instructions.DppsXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed128Float32, memorysize.Packed128Float32}}}, // 1029
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.DppdXmmXmmm128Imm8, instructions.DppdXmmXmmm128Imm8, instructions.DppdXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed128Float64, memorysize.Packed128Float64}}}, // 1030
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.MpsadbwXmmXmmm128Imm8, instructions.MpsadbwXmmXmmm128Imm8, instructions.MpsadbwXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1031
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.PclmulqdqXmmXmmm128Imm8, instructions.PclmulqdqXmmXmmm128Imm8, instructions.PclmulqdqXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1032
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.PcmpestrmXmmXmmm128Imm8, instructions.PcmpestrmXmmXmmm128Imm8, instructions.PcmpestrmXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1033
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.PcmpestriXmmXmmm128Imm8, instructions.PcmpestriXmmXmmm128Imm8, instructions.PcmpestriXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1034
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.PcmpistrmXmmXmmm128Imm8, instructions.PcmpistrmXmmXmmm128Imm8, instructions.PcmpistrmXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1035
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.PcmpistriXmmXmmm128Imm8, instructions.PcmpistriXmmXmmm128Imm8, instructions.PcmpistriXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1036
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.AeskeygenassistXmmXmmm128Imm8, instructions.AeskeygenassistXmmXmmm128Imm8, instructions.AeskeygenassistXmmXmmm128Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1037
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpGv, OpEd}, Codes: Codes{{instructions.MovsxdR16Rm32, instructions.MovsxdR32Rm32, instructions.MovsxdR64Rm32}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt32}}}, // 1038
	{Kind: KindGroup, Flags: FlagModRM, Group: 44}, // 1039
	{Kind: KindGroup, Flags: FlagModRM, Group: 45}, // 1040
	{Kind: KindGroup, Flags: FlagModRM, Group: 46}, // 1041
	{Kind: KindGroup, Flags: FlagModRM, Group: 47}, // 1042
	{Kind: KindGroup, Flags: FlagModRM, Group: 48}, // 1043
	{Kind: KindGroup, Flags: FlagModRM, Group: 49}, // 1044
	{Kind: KindGroup, Flags: FlagModRM, Group: 50}, // 1045
	{Kind: KindGroup, Flags: FlagModRM, Group: 51}, // 1046
	{Kind: KindGroup, Flags: FlagModRM, Group: 52}, // 1047
	{Kind: KindGroup, Flags: FlagModRM, Group: 53}, // 1048
	{Kind: KindGroup, Flags: FlagModRM, Group: 54}, // 1049
	{Kind: KindGroup, Flags: FlagModRM, Group: 55}, // 1050
	{Kind: KindGroup, Flags: FlagModRM, Group: 56}, // 1051
	{Kind: KindGroup, Flags: FlagModRM, Group: 57}, // 1052
	{Kind: KindGroup, Flags: FlagModRM, Group: 58}, // 1053
	{Kind: KindGroup, Flags: FlagModRM, Group: 59}, // 1054
	{Kind: KindGroup, Flags: FlagModRM, Group: 60}, // 1055
	{Kind: KindGroup, Flags: FlagModRM, Group: 61}, // 1056
	{Kind: KindGroup, Flags: FlagModRM, Group: 62}, // 1057
	{Kind: KindGroup, Flags: FlagModRM, Group: 63}, // 1058
	{Kind: KindGroup, Flags: FlagModRM, Group: 64}, // 1059
	{Kind: KindGroup, Flags: FlagModRM, Group: 65}, // 1060
	{Kind: KindGroup, Flags: FlagModRM, Group: 66}, // 1061
	{Kind: KindGroup, Flags: FlagModRM, Group: 67}, // 1062
	{Kind: KindGroup, Flags: FlagModRM, Group: 68}, // 1063
	{Kind: KindNormal, Flags: FlagModRM, Codes: Codes{{instructions.Swapgs, instructions.Swapgs, instructions.Swapgs}}}, // 1064
	{Kind: KindGroup, Flags: FlagModRM, Group: 69}, // 1065
	{Kind: KindGroup, Flags: FlagModRM, Group: 70}, // 1066
	{Kind: KindGroup, Flags: FlagModRM, Group: 71}, // 1067
	{Kind: KindGroup, Flags: FlagModRM, Group: 72}, // 1068
	{Kind: KindGroup, Flags: FlagModRM, Group: 73}, // 1069
	{Kind: KindGroup, Flags: FlagModRM, Group: 74}, // 1070
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpRcr, OpCd}, Codes: Codes{{instructions.MovR64Cr, instructions.MovR64Cr, instructions.MovR64Cr}}}, // 1071
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpRcr, OpDd}, Codes: Codes{{instructions.MovR64Dr, instructions.MovR64Dr, instructions.MovR64Dr}}}, // 1072
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpCd, OpRcr}, Codes: Codes{{instructions.MovCrR64, instructions.MovCrR64, instructions.MovCrR64}}}, // 1073
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpDd, OpRcr}, Codes: Codes{{instructions.MovDrR64, instructions.MovDrR64, instructions.MovDrR64}}}, // 1074
	{Kind: KindGroup, Flags: FlagModRM, Group: 75}, // 1075
	{Kind: KindGroup, Flags: FlagModRM, Group: 76}, // 1076
	{Kind: KindGroup, Flags: FlagModRM, Group: 77}, // 1077
	{Kind: KindGroup, Flags: FlagModRM, Group: 78}, // 1078
	{Kind: KindGroup, Flags: FlagModRM, Group: 79}, // 1079
	{Kind: KindGroup, Flags: FlagModRM, Group: 80}, // 1080
	{Kind: KindGroup, Flags: FlagModRM, Group: 81}, // 1081
	{Kind: KindGroup, Flags: FlagModRM, Group: 82}, // 1082
	{Kind: KindGroup, Flags: FlagModRM, Group: 83}, // 1083
	{Kind: KindGroup, Flags: FlagModRM, Group: 84}, // 1084
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpRy}, Codes: Codes{{instructions.RdfsbaseR32, instructions.RdfsbaseR32, instructions.RdfsbaseR64}}}, // 1085
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpRy}, Codes: Codes{{instructions.RdgsbaseR32, instructions.RdgsbaseR32, instructions.RdgsbaseR64}}}, // 1086
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpRy}, Codes: Codes{{instructions.WrfsbaseR32, instructions.WrfsbaseR32, instructions.WrfsbaseR64}}}, // 1087
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpRy}, Codes: Codes{{instructions.WrgsbaseR32, instructions.WrgsbaseR32, instructions.WrgsbaseR64}}}, // 1088
	{Kind: KindGroup, Flags: FlagModRM, Group: 85}, // 1089
	{Kind: KindGroup, Flags: FlagModRM, Group: 86}, // 1090
	{Kind: KindEVEX, Alt: 94}, // 1091
	{Kind: KindVEX3, Alt: 238}, // 1092
	{Kind: KindVEX2, Alt: 239}, // 1093
	{Kind: KindXOP, Alt: 168}, // 1094
	{Kind: KindEVEX}, // 1095
	{Kind: KindVEX3}, // 1096
	{Kind: KindVEX2}, // 1097
	{Kind: KindXOP, Alt: 1042}, // 1098
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.EvexVmovupsXmmK1zXmmm128, instructions.EvexVmovupsYmmK1zYmmm256, instructions.EvexVmovupsZmmK1zZmmm512}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}}, // 1099
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.EvexVmovupsXmmm128K1Xmm, instructions.EvexVmovupsYmmm256K1Ymm, instructions.EvexVmovupsZmmm512K1Zmm}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}}, // 1100
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVunpcklpsXmmK1zXmmXmmm128B32, instructions.EvexVunpcklpsYmmK1zYmmYmmm256B32, instructions.EvexVunpcklpsZmmK1zZmmZmmm512B32}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.Unknown}}, // 1101
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVunpckhpsXmmK1zXmmXmmm128B32, instructions.EvexVunpckhpsYmmK1zYmmYmmm256B32, instructions.EvexVunpckhpsZmmK1zZmmZmmm512B32}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.Unknown}}, // 1102
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.EvexVmovapsXmmK1zXmmm128, instructions.EvexVmovapsYmmK1zYmmm256, instructions.EvexVmovapsZmmK1zZmmm512}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}}, // 1103
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.EvexVmovapsXmmm128K1Xmm, instructions.EvexVmovapsYmmm256K1Ymm, instructions.EvexVmovapsZmmm512K1Zmm}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}}, // 1104
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpM, OpV}, Codes: Codes{{instructions.EvexVmovntpsM128Xmm, instructions.EvexVmovntpsM256Ymm, instructions.EvexVmovntpsM512Zmm}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}}, // 1105
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagSAE, Operands: Operands{OpVX, OpWX}, Codes: Codes{{instructions.EvexVucomissXmmXmmm32Sae, instructions.EvexVucomissXmmXmmm32Sae, instructions.EvexVucomissXmmXmmm32Sae}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 1106
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagSAE, Operands: Operands{OpVX, OpWX}, Codes: Codes{{instructions.EvexVcomissXmmXmmm32Sae, instructions.EvexVcomissXmmXmmm32Sae, instructions.EvexVcomissXmmXmmm32Sae}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 1107
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.EvexVsqrtpsXmmK1zXmmm128B32, instructions.EvexVsqrtpsYmmK1zYmmm256B32, instructions.EvexVsqrtpsZmmK1zZmmm512B32Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.Unknown}}, // 1108
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVandpsXmmK1zXmmXmmm128B32, instructions.EvexVandpsYmmK1zYmmYmmm256B32, instructions.EvexVandpsZmmK1zZmmZmmm512B32}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.Unknown}}, // 1109
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVandnpsXmmK1zXmmXmmm128B32, instructions.EvexVandnpsYmmK1zYmmYmmm256B32, instructions.EvexVandnpsZmmK1zZmmZmmm512B32}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.Unknown}}, // 1110
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVorpsXmmK1zXmmXmmm128B32, instructions.EvexVorpsYmmK1zYmmYmmm256B32, instructions.EvexVorpsZmmK1zZmmZmmm512B32}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.Unknown}}, // 1111
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVxorpsXmmK1zXmmXmmm128B32, instructions.EvexVxorpsYmmK1zYmmYmmm256B32, instructions.EvexVxorpsZmmK1zZmmZmmm512B32}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.Unknown}}, // 1112
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVaddpsXmmK1zXmmXmmm128B32, instructions.EvexVaddpsYmmK1zYmmYmmm256B32, instructions.EvexVaddpsZmmK1zZmmZmmm512B32Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.Unknown}}, // 1113
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVmulpsXmmK1zXmmXmmm128B32, instructions.EvexVmulpsYmmK1zYmmYmmm256B32, instructions.EvexVmulpsZmmK1zZmmZmmm512B32Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.Unknown}}, // 1114
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagSAE, Operands: Operands{OpV, OpWh}, Codes: Codes{{instructions.EvexVcvtps2pdXmmK1zXmmm64, instructions.EvexVcvtps2pdYmmK1zXmmm128, instructions.EvexVcvtps2pdZmmK1zYmmm256Sae}}, Memory: Sizes{{memorysize.Packed64Float32, memorysize.Packed128Float32, memorysize.Packed256Float32}}}, // 1115
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.EvexVcvtdq2psXmmK1zXmmm128B32, instructions.EvexVcvtdq2psYmmK1zYmmm256B32, instructions.EvexVcvtdq2psZmmK1zZmmm512B32Er}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.Unknown}}, // 1116
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVsubpsXmmK1zXmmXmmm128B32, instructions.EvexVsubpsYmmK1zYmmYmmm256B32, instructions.EvexVsubpsZmmK1zZmmZmmm512B32Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.Unknown}}, // 1117
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagSAE, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVminpsXmmK1zXmmXmmm128B32, instructions.EvexVminpsYmmK1zYmmYmmm256B32, instructions.EvexVminpsZmmK1zZmmZmmm512B32Sae}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.Unknown}}, // 1118
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVdivpsXmmK1zXmmXmmm128B32, instructions.EvexVdivpsYmmK1zYmmYmmm256B32, instructions.EvexVdivpsZmmK1zZmmZmmm512B32Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.Unknown}}, // 1119
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagSAE, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVmaxpsXmmK1zXmmXmmm128B32, instructions.EvexVmaxpsYmmK1zYmmYmmm256B32, instructions.EvexVmaxpsZmmK1zZmmZmmm512B32Sae}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.Unknown}}, // 1120
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagBroadcast | FlagSAE, Operands: Operands{OpK, OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVcmppsKrK1XmmXmmm128B32Imm8, instructions.EvexVcmppsKrK1YmmYmmm256B32Imm8, instructions.EvexVcmppsKrK1ZmmZmmm512B32Imm8Sae}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.Unknown}}, // 1121
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVshufpsXmmK1zXmmXmmm128B32Imm8, instructions.EvexVshufpsYmmK1zYmmYmmm256B32Imm8, instructions.EvexVshufpsZmmK1zZmmZmmm512B32Imm8}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.Unknown}}, // 1122
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVmovupdXmmK1zXmmm128, instructions.EvexVmovupdYmmK1zYmmm256, instructions.EvexVmovupdZmmK1zZmmm512}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}}, // 1123
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVmovupdXmmm128K1Xmm, instructions.EvexVmovupdYmmm256K1Ymm, instructions.EvexVmovupdZmmm512K1Zmm}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}}, // 1124
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVunpcklpdXmmK1zXmmXmmm128B64, instructions.EvexVunpcklpdYmmK1zYmmYmmm256B64, instructions.EvexVunpcklpdZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1125
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVunpckhpdXmmK1zXmmXmmm128B64, instructions.EvexVunpckhpdYmmK1zYmmYmmm256B64, instructions.EvexVunpckhpdZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1126
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVmovapdXmmK1zXmmm128, instructions.EvexVmovapdYmmK1zYmmm256, instructions.EvexVmovapdZmmK1zZmmm512}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}}, // 1127
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVmovapdXmmm128K1Xmm, instructions.EvexVmovapdYmmm256K1Ymm, instructions.EvexVmovapdZmmm512K1Zmm}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}}, // 1128
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpM, OpV}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVmovntpdM128Xmm, instructions.EvexVmovntpdM256Ymm, instructions.EvexVmovntpdM512Zmm}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}}, // 1129
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagSAE, Operands: Operands{OpVX, OpWX}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVucomisdXmmXmmm64Sae, instructions.EvexVucomisdXmmXmmm64Sae, instructions.EvexVucomisdXmmXmmm64Sae}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1130
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagSAE, Operands: Operands{OpVX, OpWX}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVcomisdXmmXmmm64Sae, instructions.EvexVcomisdXmmXmmm64Sae, instructions.EvexVcomisdXmmXmmm64Sae}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1131
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVsqrtpdXmmK1zXmmm128B64, instructions.EvexVsqrtpdYmmK1zYmmm256B64, instructions.EvexVsqrtpdZmmK1zZmmm512B64Er}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1132
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVandpdXmmK1zXmmXmmm128B64, instructions.EvexVandpdYmmK1zYmmYmmm256B64, instructions.EvexVandpdZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1133
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVandnpdXmmK1zXmmXmmm128B64, instructions.EvexVandnpdYmmK1zYmmYmmm256B64, instructions.EvexVandnpdZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1134
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVorpdXmmK1zXmmXmmm128B64, instructions.EvexVorpdYmmK1zYmmYmmm256B64, instructions.EvexVorpdZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1135
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVxorpdXmmK1zXmmXmmm128B64, instructions.EvexVxorpdYmmK1zYmmYmmm256B64, instructions.EvexVxorpdZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1136
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVaddpdXmmK1zXmmXmmm128B64, instructions.EvexVaddpdYmmK1zYmmYmmm256B64, instructions.EvexVaddpdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1137
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVmulpdXmmK1zXmmXmmm128B64, instructions.EvexVmulpdYmmK1zYmmYmmm256B64, instructions.EvexVmulpdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1138
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpVh, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVcvtpd2psXmmK1zXmmm128B64, instructions.EvexVcvtpd2psXmmK1zYmmm256B64, instructions.EvexVcvtpd2psYmmK1zZmmm512B64Er}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1139
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.EvexVcvtps2dqXmmK1zXmmm128B32, instructions.EvexVcvtps2dqYmmK1zYmmm256B32, instructions.EvexVcvtps2dqZmmK1zZmmm512B32Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.Unknown}}, // 1140
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVsubpdXmmK1zXmmXmmm128B64, instructions.EvexVsubpdYmmK1zYmmYmmm256B64, instructions.EvexVsubpdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1141
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagSAE, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVminpdXmmK1zXmmXmmm128B64, instructions.EvexVminpdYmmK1zYmmYmmm256B64, instructions.EvexVminpdZmmK1zZmmZmmm512B64Sae}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1142
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVdivpdXmmK1zXmmXmmm128B64, instructions.EvexVdivpdYmmK1zYmmYmmm256B64, instructions.EvexVdivpdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1143
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagSAE, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVmaxpdXmmK1zXmmXmmm128B64, instructions.EvexVmaxpdYmmK1zYmmYmmm256B64, instructions.EvexVmaxpdZmmK1zZmmZmmm512B64Sae}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1144
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpunpcklbwXmmK1zXmmXmmm128, instructions.EvexVpunpcklbwYmmK1zYmmYmmm256, instructions.EvexVpunpcklbwZmmK1zZmmZmmm512}, {instructions.EvexVpunpcklbwXmmK1zXmmXmmm128, instructions.EvexVpunpcklbwYmmK1zYmmYmmm256, instructions.EvexVpunpcklbwZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1145
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpunpcklwdXmmK1zXmmXmmm128, instructions.EvexVpunpcklwdYmmK1zYmmYmmm256, instructions.EvexVpunpcklwdZmmK1zZmmZmmm512}, {instructions.EvexVpunpcklwdXmmK1zXmmXmmm128, instructions.EvexVpunpcklwdYmmK1zYmmYmmm256, instructions.EvexVpunpcklwdZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1146
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpunpckldqXmmK1zXmmXmmm128B32, instructions.EvexVpunpckldqYmmK1zYmmYmmm256B32, instructions.EvexVpunpckldqZmmK1zZmmZmmm512B32}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.Unknown}}, // 1147
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpacksswbXmmK1zXmmXmmm128, instructions.EvexVpacksswbYmmK1zYmmYmmm256, instructions.EvexVpacksswbZmmK1zZmmZmmm512}, {instructions.EvexVpacksswbXmmK1zXmmXmmm128, instructions.EvexVpacksswbYmmK1zYmmYmmm256, instructions.EvexVpacksswbZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1148
	{Kind: KindNormal, Flags: FlagModRM | FlagMask, Operands: Operands{OpK, OpH, OpW}, Codes: Codes{{instructions.EvexVpcmpgtbKrK1XmmXmmm128, instructions.EvexVpcmpgtbKrK1YmmYmmm256, instructions.EvexVpcmpgtbKrK1ZmmZmmm512}, {instructions.EvexVpcmpgtbKrK1XmmXmmm128, instructions.EvexVpcmpgtbKrK1YmmYmmm256, instructions.EvexVpcmpgtbKrK1ZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1149
	{Kind: KindNormal, Flags: FlagModRM | FlagMask, Operands: Operands{OpK, OpH, OpW}, Codes: Codes{{instructions.EvexVpcmpgtwKrK1XmmXmmm128, instructions.EvexVpcmpgtwKrK1YmmYmmm256, instructions.EvexVpcmpgtwKrK1ZmmZmmm512}, {instructions.EvexVpcmpgtwKrK1XmmXmmm128, instructions.EvexVpcmpgtwKrK1YmmYmmm256, instructions.EvexVpcmpgtwKrK1ZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1150
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagBroadcast, Operands: Operands{OpK, OpH, OpW}, Codes: Codes{{instructions.EvexVpcmpgtdKrK1XmmXmmm128B32, instructions.EvexVpcmpgtdKrK1YmmYmmm256B32, instructions.EvexVpcmpgtdKrK1ZmmZmmm512B32}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.Unknown}}, // 1151
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpackuswbXmmK1zXmmXmmm128, instructions.EvexVpackuswbYmmK1zYmmYmmm256, instructions.EvexVpackuswbZmmK1zZmmZmmm512}, {instructions.EvexVpackuswbXmmK1zXmmXmmm128, instructions.EvexVpackuswbYmmK1zYmmYmmm256, instructions.EvexVpackuswbZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1152
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpunpckhbwXmmK1zXmmXmmm128, instructions.EvexVpunpckhbwYmmK1zYmmYmmm256, instructions.EvexVpunpckhbwZmmK1zZmmZmmm512}, {instructions.EvexVpunpckhbwXmmK1zXmmXmmm128, instructions.EvexVpunpckhbwYmmK1zYmmYmmm256, instructions.EvexVpunpckhbwZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1153
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpunpckhwdXmmK1zXmmXmmm128, instructions.EvexVpunpckhwdYmmK1zYmmYmmm256, instructions.EvexVpunpckhwdZmmK1zZmmZmmm512}, {instructions.EvexVpunpckhwdXmmK1zXmmXmmm128, instructions.EvexVpunpckhwdYmmK1zYmmYmmm256, instructions.EvexVpunpckhwdZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1154
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpunpckhdqXmmK1zXmmXmmm128B32, instructions.EvexVpunpckhdqYmmK1zYmmYmmm256B32, instructions.EvexVpunpckhdqZmmK1zZmmZmmm512B32}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.Unknown}}, // 1155
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpackssdwXmmK1zXmmXmmm128B32, instructions.EvexVpackssdwYmmK1zYmmYmmm256B32, instructions.EvexVpackssdwZmmK1zZmmZmmm512B32}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.Unknown}}, // 1156
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpunpcklqdqXmmK1zXmmXmmm128B64, instructions.EvexVpunpcklqdqYmmK1zYmmYmmm256B64, instructions.EvexVpunpcklqdqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastUInt64}}, // 1157
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpunpckhqdqXmmK1zXmmXmmm128B64, instructions.EvexVpunpckhqdqYmmK1zYmmYmmm256B64, instructions.EvexVpunpckhqdqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastUInt64}}, // 1158
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR | FlagL0, Operands: Operands{OpVX, OpEy}, Codes: Codes{{instructions.Invalid, instructions.EvexVmovdXmmRm32, instructions.EvexVmovqXmmRm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1159
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.EvexVmovdqa32XmmK1zXmmm128, instructions.EvexVmovdqa32YmmK1zYmmm256, instructions.EvexVmovdqa32ZmmK1zZmmm512}, {instructions.EvexVmovdqa64XmmK1zXmmm128, instructions.EvexVmovdqa64YmmK1zYmmm256, instructions.EvexVmovdqa64ZmmK1zZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1160
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.EvexVpshufdXmmK1zXmmm128B32Imm8, instructions.EvexVpshufdYmmK1zYmmm256B32Imm8, instructions.EvexVpshufdZmmK1zZmmm512B32Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.Unknown}}, // 1161
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVpsrlwXmmK1zXmmm128Imm8, instructions.EvexVpsrlwYmmK1zYmmm256Imm8, instructions.EvexVpsrlwZmmK1zZmmm512Imm8}, {instructions.EvexVpsrlwXmmK1zXmmm128Imm8, instructions.EvexVpsrlwYmmK1zYmmm256Imm8, instructions.EvexVpsrlwZmmK1zZmmm512Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1162
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVpsrawXmmK1zXmmm128Imm8, instructions.EvexVpsrawYmmK1zYmmm256Imm8, instructions.EvexVpsrawZmmK1zZmmm512Imm8}, {instructions.EvexVpsrawXmmK1zXmmm128Imm8, instructions.EvexVpsrawYmmK1zYmmm256Imm8, instructions.EvexVpsrawZmmK1zZmmm512Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1163
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVpsllwXmmK1zXmmm128Imm8, instructions.EvexVpsllwYmmK1zYmmm256Imm8, instructions.EvexVpsllwZmmK1zZmmm512Imm8}, {instructions.EvexVpsllwXmmK1zXmmm128Imm8, instructions.EvexVpsllwYmmK1zYmmm256Imm8, instructions.EvexVpsllwZmmK1zZmmm512Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1164
	{Kind: KindGroup, Flags: FlagModRM, Group: 87}, // 1165
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVprordXmmK1zXmmm128B32Imm8, instructions.EvexVprordYmmK1zYmmm256B32Imm8, instructions.EvexVprordZmmK1zZmmm512B32Imm8}, {instructions.EvexVprorqXmmK1zXmmm128B64Imm8, instructions.EvexVprorqYmmK1zYmmm256B64Imm8, instructions.EvexVprorqZmmK1zZmmm512B64Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1166
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVproldXmmK1zXmmm128B32Imm8, instructions.EvexVproldYmmK1zYmmm256B32Imm8, instructions.EvexVproldZmmK1zZmmm512B32Imm8}, {instructions.EvexVprolqXmmK1zXmmm128B64Imm8, instructions.EvexVprolqYmmK1zYmmm256B64Imm8, instructions.EvexVprolqZmmK1zZmmm512B64Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1167
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVpsrldXmmK1zXmmm128B32Imm8, instructions.EvexVpsrldYmmK1zYmmm256B32Imm8, instructions.EvexVpsrldZmmK1zZmmm512B32Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.Unknown}}, // 1168
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVpsradXmmK1zXmmm128B32Imm8, instructions.EvexVpsradYmmK1zYmmm256B32Imm8, instructions.EvexVpsradZmmK1zZmmm512B32Imm8}, {instructions.EvexVpsraqXmmK1zXmmm128B64Imm8, instructions.EvexVpsraqYmmK1zYmmm256B64Imm8, instructions.EvexVpsraqZmmK1zZmmm512B64Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1169
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVpslldXmmK1zXmmm128B32Imm8, instructions.EvexVpslldYmmK1zYmmm256B32Imm8, instructions.EvexVpslldZmmK1zZmmm512B32Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.Unknown}}, // 1170
	{Kind: KindGroup, Flags: FlagModRM, Group: 88}, // 1171
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpH, OpW, OpIb}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpsrlqXmmK1zXmmm128B64Imm8, instructions.EvexVpsrlqYmmK1zYmmm256B64Imm8, instructions.EvexVpsrlqZmmK1zZmmm512B64Imm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastUInt64}}, // 1172
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVpsrldqXmmXmmm128Imm8, instructions.EvexVpsrldqYmmYmmm256Imm8, instructions.EvexVpsrldqZmmZmmm512Imm8}, {instructions.EvexVpsrldqXmmXmmm128Imm8, instructions.EvexVpsrldqYmmYmmm256Imm8, instructions.EvexVpsrldqZmmZmmm512Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1173
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpH, OpW, OpIb}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpsllqXmmK1zXmmm128B64Imm8, instructions.EvexVpsllqYmmK1zYmmm256B64Imm8, instructions.EvexVpsllqZmmK1zZmmm512B64Imm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastUInt64}}, // 1174
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVpslldqXmmXmmm128Imm8, instructions.EvexVpslldqYmmYmmm256Imm8, instructions.EvexVpslldqZmmZmmm512Imm8}, {instructions.EvexVpslldqXmmXmmm128Imm8, instructions.EvexVpslldqYmmYmmm256Imm8, instructions.EvexVpslldqZmmZmmm512Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1175
	{Kind: KindGroup, Flags: FlagModRM, Group: 89}, // 1176
	{Kind: KindNormal, Flags: FlagModRM | FlagMask, Operands: Operands{OpK, OpH, OpW}, Codes: Codes{{instructions.EvexVpcmpeqbKrK1XmmXmmm128, instructions.EvexVpcmpeqbKrK1YmmYmmm256, instructions.EvexVpcmpeqbKrK1ZmmZmmm512}, {instructions.EvexVpcmpeqbKrK1XmmXmmm128, instructions.EvexVpcmpeqbKrK1YmmYmmm256, instructions.EvexVpcmpeqbKrK1ZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1177
	{Kind: KindNormal, Flags: FlagModRM | FlagMask, Operands: Operands{OpK, OpH, OpW}, Codes: Codes{{instructions.EvexVpcmpeqwKrK1XmmXmmm128, instructions.EvexVpcmpeqwKrK1YmmYmmm256, instructions.EvexVpcmpeqwKrK1ZmmZmmm512}, {instructions.EvexVpcmpeqwKrK1XmmXmmm128, instructions.EvexVpcmpeqwKrK1YmmYmmm256, instructions.EvexVpcmpeqwKrK1ZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1178
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagBroadcast, Operands: Operands{OpK, OpH, OpW}, Codes: Codes{{instructions.EvexVpcmpeqdKrK1XmmXmmm128B32, instructions.EvexVpcmpeqdKrK1YmmYmmm256B32, instructions.EvexVpcmpeqdKrK1ZmmZmmm512B32}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.Unknown}}, // 1179
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR | FlagL0, Operands: Operands{OpEy, OpVX}, Codes: Codes{{instructions.Invalid, instructions.EvexVmovdRm32Xmm, instructions.EvexVmovqRm64Xmm}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1180
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.EvexVmovdqa32Xmmm128K1Xmm, instructions.EvexVmovdqa32Ymmm256K1Ymm, instructions.EvexVmovdqa32Zmmm512K1Zmm}, {instructions.EvexVmovdqa64Xmmm128K1Xmm, instructions.EvexVmovdqa64Ymmm256K1Ymm, instructions.EvexVmovdqa64Zmmm512K1Zmm}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1181
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagBroadcast | FlagSAE, Operands: Operands{OpK, OpH, OpW, OpIb}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVcmppdKrK1XmmXmmm128B64Imm8, instructions.EvexVcmppdKrK1YmmYmmm256B64Imm8, instructions.EvexVcmppdKrK1ZmmZmmm512B64Imm8Sae}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1182
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpVX, OpHX, OpRyM, OpIb}, Codes: Codes{{instructions.Invalid, instructions.EvexVpinsrwXmmXmmR32m16Imm8, instructions.EvexVpinsrwXmmXmmR64m16Imm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt16, memorysize.UInt16}}}, // 1183
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3 | FlagNoVvvv | FlagVexGPR | FlagL0, Operands: Operands{OpGy, OpUX, OpIb}, Codes: Codes{{instructions.Invalid, instructions.EvexVpextrwR32XmmImm8, instructions.EvexVpextrwR64XmmImm8}}}, // 1184
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVshufpdXmmK1zXmmXmmm128B64Imm8, instructions.EvexVshufpdYmmK1zYmmYmmm256B64Imm8, instructions.EvexVshufpdZmmK1zZmmZmmm512B64Imm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1185
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpWX}, Codes: Codes{{instructions.EvexVpsrlwXmmK1zXmmXmmm128, instructions.EvexVpsrlwYmmK1zYmmXmmm128, instructions.EvexVpsrlwZmmK1zZmmXmmm128}, {instructions.EvexVpsrlwXmmK1zXmmXmmm128, instructions.EvexVpsrlwYmmK1zYmmXmmm128, instructions.EvexVpsrlwZmmK1zZmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}, {memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1186
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpWX}, Codes: Codes{{instructions.EvexVpsrldXmmK1zXmmXmmm128, instructions.EvexVpsrldYmmK1zYmmXmmm128, instructions.EvexVpsrldZmmK1zZmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1187
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpWX}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpsrlqXmmK1zXmmXmmm128, instructions.EvexVpsrlqYmmK1zYmmXmmm128, instructions.EvexVpsrlqZmmK1zZmmXmmm128}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1188
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpaddqXmmK1zXmmXmmm128B64, instructions.EvexVpaddqYmmK1zYmmYmmm256B64, instructions.EvexVpaddqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastUInt64}}, // 1189
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpmullwXmmK1zXmmXmmm128, instructions.EvexVpmullwYmmK1zYmmYmmm256, instructions.EvexVpmullwZmmK1zZmmZmmm512}, {instructions.EvexVpmullwXmmK1zXmmXmmm128, instructions.EvexVpmullwYmmK1zYmmYmmm256, instructions.EvexVpmullwZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1190
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpWX, OpVX}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVmovqXmmm64Xmm, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}}}, // 1191
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpsubusbXmmK1zXmmXmmm128, instructions.EvexVpsubusbYmmK1zYmmYmmm256, instructions.EvexVpsubusbZmmK1zZmmZmmm512}, {instructions.EvexVpsubusbXmmK1zXmmXmmm128, instructions.EvexVpsubusbYmmK1zYmmYmmm256, instructions.EvexVpsubusbZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1192
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpsubuswXmmK1zXmmXmmm128, instructions.EvexVpsubuswYmmK1zYmmYmmm256, instructions.EvexVpsubuswZmmK1zZmmZmmm512}, {instructions.EvexVpsubuswXmmK1zXmmXmmm128, instructions.EvexVpsubuswYmmK1zYmmYmmm256, instructions.EvexVpsubuswZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1193
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpminubXmmK1zXmmXmmm128, instructions.EvexVpminubYmmK1zYmmYmmm256, instructions.EvexVpminubZmmK1zZmmZmmm512}, {instructions.EvexVpminubXmmK1zXmmXmmm128, instructions.EvexVpminubYmmK1zYmmYmmm256, instructions.EvexVpminubZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1194
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpanddXmmK1zXmmXmmm128B32, instructions.EvexVpanddYmmK1zYmmYmmm256B32, instructions.EvexVpanddZmmK1zZmmZmmm512B32}, {instructions.EvexVpandqXmmK1zXmmXmmm128B64, instructions.EvexVpandqYmmK1zYmmYmmm256B64, instructions.EvexVpandqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1195
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpaddusbXmmK1zXmmXmmm128, instructions.EvexVpaddusbYmmK1zYmmYmmm256, instructions.EvexVpaddusbZmmK1zZmmZmmm512}, {instructions.EvexVpaddusbXmmK1zXmmXmmm128, instructions.EvexVpaddusbYmmK1zYmmYmmm256, instructions.EvexVpaddusbZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1196
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpadduswXmmK1zXmmXmmm128, instructions.EvexVpadduswYmmK1zYmmYmmm256, instructions.EvexVpadduswZmmK1zZmmZmmm512}, {instructions.EvexVpadduswXmmK1zXmmXmmm128, instructions.EvexVpadduswYmmK1zYmmYmmm256, instructions.EvexVpadduswZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1197
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpmaxubXmmK1zXmmXmmm128, instructions.EvexVpmaxubYmmK1zYmmYmmm256, instructions.EvexVpmaxubZmmK1zZmmZmmm512}, {instructions.EvexVpmaxubXmmK1zXmmXmmm128, instructions.EvexVpmaxubYmmK1zYmmYmmm256, instructions.EvexVpmaxubZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1198
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpandndXmmK1zXmmXmmm128B32, instructions.EvexVpandndYmmK1zYmmYmmm256B32, instructions.EvexVpandndZmmK1zZmmZmmm512B32}, {instructions.EvexVpandnqXmmK1zXmmXmmm128B64, instructions.EvexVpandnqYmmK1zYmmYmmm256B64, instructions.EvexVpandnqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1199
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpavgbXmmK1zXmmXmmm128, instructions.EvexVpavgbYmmK1zYmmYmmm256, instructions.EvexVpavgbZmmK1zZmmZmmm512}, {instructions.EvexVpavgbXmmK1zXmmXmmm128, instructions.EvexVpavgbYmmK1zYmmYmmm256, instructions.EvexVpavgbZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1200
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpWX}, Codes: Codes{{instructions.EvexVpsrawXmmK1zXmmXmmm128, instructions.EvexVpsrawYmmK1zYmmXmmm128, instructions.EvexVpsrawZmmK1zZmmXmmm128}, {instructions.EvexVpsrawXmmK1zXmmXmmm128, instructions.EvexVpsrawYmmK1zYmmXmmm128, instructions.EvexVpsrawZmmK1zZmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}, {memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1201
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpWX}, Codes: Codes{{instructions.EvexVpsradXmmK1zXmmXmmm128, instructions.EvexVpsradYmmK1zYmmXmmm128, instructions.EvexVpsradZmmK1zZmmXmmm128}, {instructions.EvexVpsraqXmmK1zXmmXmmm128, instructions.EvexVpsraqYmmK1zYmmXmmm128, instructions.EvexVpsraqZmmK1zZmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}, {memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1202
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpavgwXmmK1zXmmXmmm128, instructions.EvexVpavgwYmmK1zYmmYmmm256, instructions.EvexVpavgwZmmK1zZmmZmmm512}, {instructions.EvexVpavgwXmmK1zXmmXmmm128, instructions.EvexVpavgwYmmK1zYmmYmmm256, instructions.EvexVpavgwZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1203
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpmulhuwXmmK1zXmmXmmm128, instructions.EvexVpmulhuwYmmK1zYmmYmmm256, instructions.EvexVpmulhuwZmmK1zZmmZmmm512}, {instructions.EvexVpmulhuwXmmK1zXmmXmmm128, instructions.EvexVpmulhuwYmmK1zYmmYmmm256, instructions.EvexVpmulhuwZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1204
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpmulhwXmmK1zXmmXmmm128, instructions.EvexVpmulhwYmmK1zYmmYmmm256, instructions.EvexVpmulhwZmmK1zZmmZmmm512}, {instructions.EvexVpmulhwXmmK1zXmmXmmm128, instructions.EvexVpmulhwYmmK1zYmmYmmm256, instructions.EvexVpmulhwZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1205
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast | FlagSAE, Operands: Operands{OpVh, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVcvttpd2dqXmmK1zXmmm128B64, instructions.EvexVcvttpd2dqXmmK1zYmmm256B64, instructions.EvexVcvttpd2dqYmmK1zZmmm512B64Sae}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1206
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpM, OpV}, Codes: Codes{{instructions.EvexVmovntdqM128Xmm, instructions.EvexVmovntdqM256Ymm, instructions.EvexVmovntdqM512Zmm}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1207
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpsubsbXmmK1zXmmXmmm128, instructions.EvexVpsubsbYmmK1zYmmYmmm256, instructions.EvexVpsubsbZmmK1zZmmZmmm512}, {instructions.EvexVpsubsbXmmK1zXmmXmmm128, instructions.EvexVpsubsbYmmK1zYmmYmmm256, instructions.EvexVpsubsbZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1208
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpsubswXmmK1zXmmXmmm128, instructions.EvexVpsubswYmmK1zYmmYmmm256, instructions.EvexVpsubswZmmK1zZmmZmmm512}, {instructions.EvexVpsubswXmmK1zXmmXmmm128, instructions.EvexVpsubswYmmK1zYmmYmmm256, instructions.EvexVpsubswZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1209
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpminswXmmK1zXmmXmmm128, instructions.EvexVpminswYmmK1zYmmYmmm256, instructions.EvexVpminswZmmK1zZmmZmmm512}, {instructions.EvexVpminswXmmK1zXmmXmmm128, instructions.EvexVpminswYmmK1zYmmYmmm256, instructions.EvexVpminswZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1210
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpordXmmK1zXmmXmmm128B32, instructions.EvexVpordYmmK1zYmmYmmm256B32, instructions.EvexVpordZmmK1zZmmZmmm512B32}, {instructions.EvexVporqXmmK1zXmmXmmm128B64, instructions.EvexVporqYmmK1zYmmYmmm256B64, instructions.EvexVporqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1211
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpaddsbXmmK1zXmmXmmm128, instructions.EvexVpaddsbYmmK1zYmmYmmm256, instructions.EvexVpaddsbZmmK1zZmmZmmm512}, {instructions.EvexVpaddsbXmmK1zXmmXmmm128, instructions.EvexVpaddsbYmmK1zYmmYmmm256, instructions.EvexVpaddsbZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1212
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpaddswXmmK1zXmmXmmm128, instructions.EvexVpaddswYmmK1zYmmYmmm256, instructions.EvexVpaddswZmmK1zZmmZmmm512}, {instructions.EvexVpaddswXmmK1zXmmXmmm128, instructions.EvexVpaddswYmmK1zYmmYmmm256, instructions.EvexVpaddswZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1213
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpmaxswXmmK1zXmmXmmm128, instructions.EvexVpmaxswYmmK1zYmmYmmm256, instructions.EvexVpmaxswZmmK1zZmmZmmm512}, {instructions.EvexVpmaxswXmmK1zXmmXmmm128, instructions.EvexVpmaxswYmmK1zYmmYmmm256, instructions.EvexVpmaxswZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1214
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpxordXmmK1zXmmXmmm128B32, instructions.EvexVpxordYmmK1zYmmYmmm256B32, instructions.EvexVpxordZmmK1zZmmZmmm512B32}, {instructions.EvexVpxorqXmmK1zXmmXmmm128B64, instructions.EvexVpxorqYmmK1zYmmYmmm256B64, instructions.EvexVpxorqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1215
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpWX}, Codes: Codes{{instructions.EvexVpsllwXmmK1zXmmXmmm128, instructions.EvexVpsllwYmmK1zYmmXmmm128, instructions.EvexVpsllwZmmK1zZmmXmmm128}, {instructions.EvexVpsllwXmmK1zXmmXmmm128, instructions.EvexVpsllwYmmK1zYmmXmmm128, instructions.EvexVpsllwZmmK1zZmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}, {memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1216
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpWX}, Codes: Codes{{instructions.EvexVpslldXmmK1zXmmXmmm128, instructions.EvexVpslldYmmK1zYmmXmmm128, instructions.EvexVpslldZmmK1zZmmXmmm128}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1217
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpWX}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpsllqXmmK1zXmmXmmm128, instructions.EvexVpsllqYmmK1zYmmXmmm128, instructions.EvexVpsllqZmmK1zZmmXmmm128}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt128, memorysize.UInt128}}}, // 1218
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpmuludqXmmK1zXmmXmmm128B64, instructions.EvexVpmuludqYmmK1zYmmYmmm256B64, instructions.EvexVpmuludqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastUInt64}}, // 1219
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpmaddwdXmmK1zXmmXmmm128, instructions.EvexVpmaddwdYmmK1zYmmYmmm256, instructions.EvexVpmaddwdZmmK1zZmmZmmm512}, {instructions.EvexVpmaddwdXmmK1zXmmXmmm128, instructions.EvexVpmaddwdYmmK1zYmmYmmm256, instructions.EvexVpmaddwdZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1220
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpsadbwXmmXmmXmmm128, instructions.EvexVpsadbwYmmYmmYmmm256, instructions.EvexVpsadbwZmmZmmZmmm512}, {instructions.EvexVpsadbwXmmXmmXmmm128, instructions.EvexVpsadbwYmmYmmYmmm256, instructions.EvexVpsadbwZmmZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1221
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpsubbXmmK1zXmmXmmm128, instructions.EvexVpsubbYmmK1zYmmYmmm256, instructions.EvexVpsubbZmmK1zZmmZmmm512}, {instructions.EvexVpsubbXmmK1zXmmXmmm128, instructions.EvexVpsubbYmmK1zYmmYmmm256, instructions.EvexVpsubbZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1222
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpsubwXmmK1zXmmXmmm128, instructions.EvexVpsubwYmmK1zYmmYmmm256, instructions.EvexVpsubwZmmK1zZmmZmmm512}, {instructions.EvexVpsubwXmmK1zXmmXmmm128, instructions.EvexVpsubwYmmK1zYmmYmmm256, instructions.EvexVpsubwZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1223
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpsubdXmmK1zXmmXmmm128B32, instructions.EvexVpsubdYmmK1zYmmYmmm256B32, instructions.EvexVpsubdZmmK1zZmmZmmm512B32}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.Unknown}}, // 1224
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpsubqXmmK1zXmmXmmm128B64, instructions.EvexVpsubqYmmK1zYmmYmmm256B64, instructions.EvexVpsubqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastUInt64}}, // 1225
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpaddbXmmK1zXmmXmmm128, instructions.EvexVpaddbYmmK1zYmmYmmm256, instructions.EvexVpaddbZmmK1zZmmZmmm512}, {instructions.EvexVpaddbXmmK1zXmmXmmm128, instructions.EvexVpaddbYmmK1zYmmYmmm256, instructions.EvexVpaddbZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1226
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpaddwXmmK1zXmmXmmm128, instructions.EvexVpaddwYmmK1zYmmYmmm256, instructions.EvexVpaddwZmmK1zZmmZmmm512}, {instructions.EvexVpaddwXmmK1zXmmXmmm128, instructions.EvexVpaddwYmmK1zYmmYmmm256, instructions.EvexVpaddwZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1227
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpadddXmmK1zXmmXmmm128B32, instructions.EvexVpadddYmmK1zYmmYmmm256B32, instructions.EvexVpadddZmmK1zZmmZmmm512B32}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.Unknown}}, // 1228
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpVX, OpM}, Codes: Codes{{instructions.EvexVmovssXmmK1zM32, instructions.EvexVmovssXmmK1zM32, instructions.EvexVmovssXmmK1zM32}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt32}}}, // 1229
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3 | FlagMask | FlagZeroing, Operands: Operands{OpVX, OpHX, OpUX}, Codes: Codes{{instructions.EvexVmovssXmmK1zXmmXmm, instructions.EvexVmovssXmmK1zXmmXmm, instructions.EvexVmovssXmmK1zXmmXmm}}}, // 1230
	{Kind: KindGroup, Flags: FlagModRM, Group: 90}, // 1231
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagMask, Operands: Operands{OpM, OpVX}, Codes: Codes{{instructions.EvexVmovssM32K1Xmm, instructions.EvexVmovssM32K1Xmm, instructions.EvexVmovssM32K1Xmm}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt32}}}, // 1232
	{Kind: KindGroup, Flags: FlagModRM, Group: 91}, // 1233
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagRounding, Operands: Operands{OpVX, OpHX, OpEy}, Codes: Codes{{instructions.Invalid, instructions.EvexVcvtsi2ssXmmXmmRm32Er, instructions.EvexVcvtsi2ssXmmXmmRm64Er}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1234
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR | FlagSAE, Operands: Operands{OpGy, OpWX}, Codes: Codes{{instructions.Invalid, instructions.EvexVcvttss2siR32Xmmm32Sae, instructions.EvexVcvttss2siR64Xmmm32Sae}}, Memory: Sizes{{memorysize.Unknown, memorysize.Float32, memorysize.Float32}}}, // 1235
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR | FlagRounding, Operands: Operands{OpGy, OpWX}, Codes: Codes{{instructions.Invalid, instructions.EvexVcvtss2siR32Xmmm32Er, instructions.EvexVcvtss2siR64Xmmm32Er}}, Memory: Sizes{{memorysize.Unknown, memorysize.Float32, memorysize.Float32}}}, // 1236
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVsqrtssXmmK1zXmmXmmm32Er, instructions.EvexVsqrtssXmmK1zXmmXmmm32Er, instructions.EvexVsqrtssXmmK1zXmmXmmm32Er}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 1237
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVaddssXmmK1zXmmXmmm32Er, instructions.EvexVaddssXmmK1zXmmXmmm32Er, instructions.EvexVaddssXmmK1zXmmXmmm32Er}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 1238
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVmulssXmmK1zXmmXmmm32Er, instructions.EvexVmulssXmmK1zXmmXmmm32Er, instructions.EvexVmulssXmmK1zXmmXmmm32Er}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 1239
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagSAE, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVcvtss2sdXmmK1zXmmXmmm32Sae, instructions.EvexVcvtss2sdXmmK1zXmmXmmm32Sae, instructions.EvexVcvtss2sdXmmK1zXmmXmmm32Sae}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 1240
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast | FlagSAE, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.EvexVcvttps2dqXmmK1zXmmm128B32, instructions.EvexVcvttps2dqYmmK1zYmmm256B32, instructions.EvexVcvttps2dqZmmK1zZmmm512B32Sae}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.Unknown}}, // 1241
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVsubssXmmK1zXmmXmmm32Er, instructions.EvexVsubssXmmK1zXmmXmmm32Er, instructions.EvexVsubssXmmK1zXmmXmmm32Er}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 1242
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagSAE, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVminssXmmK1zXmmXmmm32Sae, instructions.EvexVminssXmmK1zXmmXmmm32Sae, instructions.EvexVminssXmmK1zXmmXmmm32Sae}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 1243
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVdivssXmmK1zXmmXmmm32Er, instructions.EvexVdivssXmmK1zXmmXmmm32Er, instructions.EvexVdivssXmmK1zXmmXmmm32Er}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 1244
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagSAE, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVmaxssXmmK1zXmmXmmm32Sae, instructions.EvexVmaxssXmmK1zXmmXmmm32Sae, instructions.EvexVmaxssXmmK1zXmmXmmm32Sae}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 1245
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.EvexVmovdqu32XmmK1zXmmm128, instructions.EvexVmovdqu32YmmK1zYmmm256, instructions.EvexVmovdqu32ZmmK1zZmmm512}, {instructions.EvexVmovdqu64XmmK1zXmmm128, instructions.EvexVmovdqu64YmmK1zYmmm256, instructions.EvexVmovdqu64ZmmK1zZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1246
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.EvexVpshufhwXmmK1zXmmm128Imm8, instructions.EvexVpshufhwYmmK1zYmmm256Imm8, instructions.EvexVpshufhwZmmK1zZmmm512Imm8}, {instructions.EvexVpshufhwXmmK1zXmmm128Imm8, instructions.EvexVpshufhwYmmK1zYmmm256Imm8, instructions.EvexVpshufhwZmmK1zZmmm512Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1247
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpVX, OpWX}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVmovqXmmXmmm64, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}}}, // 1248
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.EvexVmovdqu32Xmmm128K1Xmm, instructions.EvexVmovdqu32Ymmm256K1Ymm, instructions.EvexVmovdqu32Zmmm512K1Zmm}, {instructions.EvexVmovdqu64Xmmm128K1Xmm, instructions.EvexVmovdqu64Ymmm256K1Ymm, instructions.EvexVmovdqu64Zmmm512K1Zmm}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1249
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagSAE, Operands: Operands{OpK, OpHX, OpWX, OpIb}, Codes: Codes{{instructions.EvexVcmpssKrK1XmmXmmm32Imm8Sae, instructions.EvexVcmpssKrK1XmmXmmm32Imm8Sae, instructions.EvexVcmpssKrK1XmmXmmm32Imm8Sae}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 1250
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpWh}, Codes: Codes{{instructions.EvexVcvtdq2pdXmmK1zXmmm64, instructions.EvexVcvtdq2pdYmmK1zXmmm128, instructions.EvexVcvtdq2pdZmmK1zYmmm256}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.UInt256}}}, // 1251
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpVX, OpM}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVmovsdXmmK1zM64, instructions.EvexVmovsdXmmK1zM64, instructions.EvexVmovsdXmmK1zM64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 1252
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3 | FlagMask | FlagZeroing, Operands: Operands{OpVX, OpHX, OpUX}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVmovsdXmmK1zXmmXmm, instructions.EvexVmovsdXmmK1zXmmXmm, instructions.EvexVmovsdXmmK1zXmmXmm}}}, // 1253
	{Kind: KindGroup, Flags: FlagModRM, Group: 92}, // 1254
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagMask, Operands: Operands{OpM, OpVX}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVmovsdM64K1Xmm, instructions.EvexVmovsdM64K1Xmm, instructions.EvexVmovsdM64K1Xmm}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 1255
	{Kind: KindGroup, Flags: FlagModRM, Group: 93}, // 1256
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagRounding, Operands: Operands{OpVX, OpHX, OpEy}, Codes: Codes{{instructions.Invalid, instructions.EvexVcvtsi2sdXmmXmmRm32Er, instructions.EvexVcvtsi2sdXmmXmmRm64Er}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1257
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR | FlagSAE, Operands: Operands{OpGy, OpWX}, Codes: Codes{{instructions.Invalid, instructions.EvexVcvttsd2siR32Xmmm64Sae, instructions.EvexVcvttsd2siR64Xmmm64Sae}}, Memory: Sizes{{memorysize.Unknown, memorysize.Float64, memorysize.Float64}}}, // 1258
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR | FlagRounding, Operands: Operands{OpGy, OpWX}, Codes: Codes{{instructions.Invalid, instructions.EvexVcvtsd2siR32Xmmm64Er, instructions.EvexVcvtsd2siR64Xmmm64Er}}, Memory: Sizes{{memorysize.Unknown, memorysize.Float64, memorysize.Float64}}}, // 1259
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVsqrtsdXmmK1zXmmXmmm64Er, instructions.EvexVsqrtsdXmmK1zXmmXmmm64Er, instructions.EvexVsqrtsdXmmK1zXmmXmmm64Er}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1260
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVaddsdXmmK1zXmmXmmm64Er, instructions.EvexVaddsdXmmK1zXmmXmmm64Er, instructions.EvexVaddsdXmmK1zXmmXmmm64Er}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1261
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVmulsdXmmK1zXmmXmmm64Er, instructions.EvexVmulsdXmmK1zXmmXmmm64Er, instructions.EvexVmulsdXmmK1zXmmXmmm64Er}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1262
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVcvtsd2ssXmmK1zXmmXmmm64Er, instructions.EvexVcvtsd2ssXmmK1zXmmXmmm64Er, instructions.EvexVcvtsd2ssXmmK1zXmmXmmm64Er}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1263
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVsubsdXmmK1zXmmXmmm64Er, instructions.EvexVsubsdXmmK1zXmmXmmm64Er, instructions.EvexVsubsdXmmK1zXmmXmmm64Er}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1264
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagSAE, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVminsdXmmK1zXmmXmmm64Sae, instructions.EvexVminsdXmmK1zXmmXmmm64Sae, instructions.EvexVminsdXmmK1zXmmXmmm64Sae}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1265
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVdivsdXmmK1zXmmXmmm64Er, instructions.EvexVdivsdXmmK1zXmmXmmm64Er, instructions.EvexVdivsdXmmK1zXmmXmmm64Er}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1266
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagSAE, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVmaxsdXmmK1zXmmXmmm64Sae, instructions.EvexVmaxsdXmmK1zXmmXmmm64Sae, instructions.EvexVmaxsdXmmK1zXmmXmmm64Sae}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1267
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.EvexVmovdqu8XmmK1zXmmm128, instructions.EvexVmovdqu8YmmK1zYmmm256, instructions.EvexVmovdqu8ZmmK1zZmmm512}, {instructions.EvexVmovdqu16XmmK1zXmmm128, instructions.EvexVmovdqu16YmmK1zYmmm256, instructions.EvexVmovdqu16ZmmK1zZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1268
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.EvexVpshuflwXmmK1zXmmm128Imm8, instructions.EvexVpshuflwYmmK1zYmmm256Imm8, instructions.EvexVpshuflwZmmK1zZmmm512Imm8}, {instructions.EvexVpshuflwXmmK1zXmmm128Imm8, instructions.EvexVpshuflwYmmK1zYmmm256Imm8, instructions.EvexVpshuflwZmmK1zZmmm512Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1269
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.EvexVmovdqu8Xmmm128K1Xmm, instructions.EvexVmovdqu8Ymmm256K1Ymm, instructions.EvexVmovdqu8Zmmm512K1Zmm}, {instructions.EvexVmovdqu16Xmmm128K1Xmm, instructions.EvexVmovdqu16Ymmm256K1Ymm, instructions.EvexVmovdqu16Zmmm512K1Zmm}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1270
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagSAE, Operands: Operands{OpK, OpHX, OpWX, OpIb}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVcmpsdKrK1XmmXmmm64Imm8Sae, instructions.EvexVcmpsdKrK1XmmXmmm64Imm8Sae, instructions.EvexVcmpsdKrK1XmmXmmm64Imm8Sae}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1271
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpVh, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVcvtpd2dqXmmK1zXmmm128B64, instructions.EvexVcvtpd2dqXmmK1zYmmm256B64, instructions.EvexVcvtpd2dqYmmK1zZmmm512B64Er}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1272
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpshufbXmmK1zXmmXmmm128, instructions.EvexVpshufbYmmK1zYmmYmmm256, instructions.EvexVpshufbZmmK1zZmmZmmm512}, {instructions.EvexVpshufbXmmK1zXmmXmmm128, instructions.EvexVpshufbYmmK1zYmmYmmm256, instructions.EvexVpshufbZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1273
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpmaddubswXmmK1zXmmXmmm128, instructions.EvexVpmaddubswYmmK1zYmmYmmm256, instructions.EvexVpmaddubswZmmK1zZmmZmmm512}, {instructions.EvexVpmaddubswXmmK1zXmmXmmm128, instructions.EvexVpmaddubswYmmK1zYmmYmmm256, instructions.EvexVpmaddubswZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1274
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpmulhrswXmmK1zXmmXmmm128, instructions.EvexVpmulhrswYmmK1zYmmYmmm256, instructions.EvexVpmulhrswZmmK1zZmmZmmm512}, {instructions.EvexVpmulhrswXmmK1zXmmXmmm128, instructions.EvexVpmulhrswYmmK1zYmmYmmm256, instructions.EvexVpmulhrswZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1275
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpermilpsXmmK1zXmmXmmm128B32, instructions.EvexVpermilpsYmmK1zYmmYmmm256B32, instructions.EvexVpermilpsZmmK1zZmmZmmm512B32}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.Unknown}}, // 1276
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpermilpdXmmK1zXmmXmmm128B64, instructions.EvexVpermilpdYmmK1zYmmYmmm256B64, instructions.EvexVpermilpdZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastUInt64}}, // 1277
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.EvexVpermpsYmmK1zYmmYmmm256B32, instructions.EvexVpermpsZmmK1zZmmZmmm512B32}, {instructions.Invalid, instructions.EvexVpermpdYmmK1zYmmYmmm256B64, instructions.EvexVpermpdZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Unknown, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1278
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.Invalid, instructions.EvexVbroadcastssYmmK1zXmmm32, instructions.EvexVbroadcastssZmmK1zXmmm32}}, Memory: Sizes{{memorysize.Unknown, memorysize.Float32, memorysize.Float32}}}, // 1279
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.Invalid, instructions.EvexVbroadcastsdYmmK1zXmmm64, instructions.EvexVbroadcastsdZmmK1zXmmm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Unknown, memorysize.Float64, memorysize.Float64}}}, // 1280
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpM}, Codes: Codes{{instructions.Invalid, instructions.EvexVbroadcastf32x4YmmK1zM128, instructions.EvexVbroadcastf32x4ZmmK1zM128}, {instructions.Invalid, instructions.EvexVbroadcastf64x2YmmK1zM128, instructions.EvexVbroadcastf64x2ZmmK1zM128}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt128, memorysize.UInt128}, {memorysize.Unknown, memorysize.UInt128, memorysize.UInt128}}}, // 1281
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.EvexVpabsbXmmK1zXmmm128, instructions.EvexVpabsbYmmK1zYmmm256, instructions.EvexVpabsbZmmK1zZmmm512}, {instructions.EvexVpabsbXmmK1zXmmm128, instructions.EvexVpabsbYmmK1zYmmm256, instructions.EvexVpabsbZmmK1zZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1282
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.EvexVpabswXmmK1zXmmm128, instructions.EvexVpabswYmmK1zYmmm256, instructions.EvexVpabswZmmK1zZmmm512}, {instructions.EvexVpabswXmmK1zXmmm128, instructions.EvexVpabswYmmK1zYmmm256, instructions.EvexVpabswZmmK1zZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1283
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.EvexVpabsdXmmK1zXmmm128B32, instructions.EvexVpabsdYmmK1zYmmm256B32, instructions.EvexVpabsdZmmK1zZmmm512B32}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.Unknown}}, // 1284
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpabsqXmmK1zXmmm128B64, instructions.EvexVpabsqYmmK1zYmmm256B64, instructions.EvexVpabsqZmmK1zZmmm512B64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastUInt64}}, // 1285
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpWh}, Codes: Codes{{instructions.EvexVpmovsxbwXmmK1zXmmm64, instructions.EvexVpmovsxbwYmmK1zXmmm128, instructions.EvexVpmovsxbwZmmK1zYmmm256}, {instructions.EvexVpmovsxbwXmmK1zXmmm64, instructions.EvexVpmovsxbwYmmK1zXmmm128, instructions.EvexVpmovsxbwZmmK1zYmmm256}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.UInt256}, {memorysize.UInt64, memorysize.UInt128, memorysize.UInt256}}}, // 1286
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.EvexVpmovsxbdXmmK1zXmmm32, instructions.EvexVpmovsxbdYmmK1zXmmm64, instructions.EvexVpmovsxbdZmmK1zXmmm128}, {instructions.EvexVpmovsxbdXmmK1zXmmm32, instructions.EvexVpmovsxbdYmmK1zXmmm64, instructions.EvexVpmovsxbdZmmK1zXmmm128}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt64, memorysize.UInt128}, {memorysize.UInt32, memorysize.UInt64, memorysize.UInt128}}}, // 1287
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.EvexVpmovsxbqXmmK1zXmmm16, instructions.EvexVpmovsxbqYmmK1zXmmm32, instructions.EvexVpmovsxbqZmmK1zXmmm64}, {instructions.EvexVpmovsxbqXmmK1zXmmm16, instructions.EvexVpmovsxbqYmmK1zXmmm32, instructions.EvexVpmovsxbqZmmK1zXmmm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}, {memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 1288
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpWh}, Codes: Codes{{instructions.EvexVpmovsxwdXmmK1zXmmm64, instructions.EvexVpmovsxwdYmmK1zXmmm128, instructions.EvexVpmovsxwdZmmK1zYmmm256}, {instructions.EvexVpmovsxwdXmmK1zXmmm64, instructions.EvexVpmovsxwdYmmK1zXmmm128, instructions.EvexVpmovsxwdZmmK1zYmmm256}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.UInt256}, {memorysize.UInt64, memorysize.UInt128, memorysize.UInt256}}}, // 1289
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.EvexVpmovsxwqXmmK1zXmmm32, instructions.EvexVpmovsxwqYmmK1zXmmm64, instructions.EvexVpmovsxwqZmmK1zXmmm128}, {instructions.EvexVpmovsxwqXmmK1zXmmm32, instructions.EvexVpmovsxwqYmmK1zXmmm64, instructions.EvexVpmovsxwqZmmK1zXmmm128}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt64, memorysize.UInt128}, {memorysize.UInt32, memorysize.UInt64, memorysize.UInt128}}}, // 1290
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpWh}, Codes: Codes{{instructions.EvexVpmovsxdqXmmK1zXmmm64, instructions.EvexVpmovsxdqYmmK1zXmmm128, instructions.EvexVpmovsxdqZmmK1zYmmm256}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.UInt256}}}, // 1291
	{Kind: KindNormal, Flags: FlagModRM | FlagMask, Operands: Operands{OpK, OpH, OpW}, Codes: Codes{{instructions.EvexVptestmbKrK1XmmXmmm128, instructions.EvexVptestmbKrK1YmmYmmm256, instructions.EvexVptestmbKrK1ZmmZmmm512}, {instructions.EvexVptestmwKrK1XmmXmmm128, instructions.EvexVptestmwKrK1YmmYmmm256, instructions.EvexVptestmwKrK1ZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1292
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagBroadcast, Operands: Operands{OpK, OpH, OpW}, Codes: Codes{{instructions.EvexVptestmdKrK1XmmXmmm128B32, instructions.EvexVptestmdKrK1YmmYmmm256B32, instructions.EvexVptestmdKrK1ZmmZmmm512B32}, {instructions.EvexVptestmqKrK1XmmXmmm128B64, instructions.EvexVptestmqKrK1YmmYmmm256B64, instructions.EvexVptestmqKrK1ZmmZmmm512B64}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1293
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpmuldqXmmK1zXmmXmmm128B64, instructions.EvexVpmuldqYmmK1zYmmYmmm256B64, instructions.EvexVpmuldqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastUInt64}}, // 1294
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagBroadcast, Operands: Operands{OpK, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpcmpeqqKrK1XmmXmmm128B64, instructions.EvexVpcmpeqqKrK1YmmYmmm256B64, instructions.EvexVpcmpeqqKrK1ZmmZmmm512B64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastUInt64}}, // 1295
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpackusdwXmmK1zXmmXmmm128B32, instructions.EvexVpackusdwYmmK1zYmmYmmm256B32, instructions.EvexVpackusdwZmmK1zZmmZmmm512B32}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.Unknown}}, // 1296
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpWh}, Codes: Codes{{instructions.EvexVpmovzxbwXmmK1zXmmm64, instructions.EvexVpmovzxbwYmmK1zXmmm128, instructions.EvexVpmovzxbwZmmK1zYmmm256}, {instructions.EvexVpmovzxbwXmmK1zXmmm64, instructions.EvexVpmovzxbwYmmK1zXmmm128, instructions.EvexVpmovzxbwZmmK1zYmmm256}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.UInt256}, {memorysize.UInt64, memorysize.UInt128, memorysize.UInt256}}}, // 1297
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.EvexVpmovzxbdXmmK1zXmmm32, instructions.EvexVpmovzxbdYmmK1zXmmm64, instructions.EvexVpmovzxbdZmmK1zXmmm128}, {instructions.EvexVpmovzxbdXmmK1zXmmm32, instructions.EvexVpmovzxbdYmmK1zXmmm64, instructions.EvexVpmovzxbdZmmK1zXmmm128}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt64, memorysize.UInt128}, {memorysize.UInt32, memorysize.UInt64, memorysize.UInt128}}}, // 1298
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.EvexVpmovzxbqXmmK1zXmmm16, instructions.EvexVpmovzxbqYmmK1zXmmm32, instructions.EvexVpmovzxbqZmmK1zXmmm64}, {instructions.EvexVpmovzxbqXmmK1zXmmm16, instructions.EvexVpmovzxbqYmmK1zXmmm32, instructions.EvexVpmovzxbqZmmK1zXmmm64}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}, {memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 1299
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpWh}, Codes: Codes{{instructions.EvexVpmovzxwdXmmK1zXmmm64, instructions.EvexVpmovzxwdYmmK1zXmmm128, instructions.EvexVpmovzxwdZmmK1zYmmm256}, {instructions.EvexVpmovzxwdXmmK1zXmmm64, instructions.EvexVpmovzxwdYmmK1zXmmm128, instructions.EvexVpmovzxwdZmmK1zYmmm256}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.UInt256}, {memorysize.UInt64, memorysize.UInt128, memorysize.UInt256}}}, // 1300
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.EvexVpmovzxwqXmmK1zXmmm32, instructions.EvexVpmovzxwqYmmK1zXmmm64, instructions.EvexVpmovzxwqZmmK1zXmmm128}, {instructions.EvexVpmovzxwqXmmK1zXmmm32, instructions.EvexVpmovzxwqYmmK1zXmmm64, instructions.EvexVpmovzxwqZmmK1zXmmm128}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt64, memorysize.UInt128}, {memorysize.UInt32, memorysize.UInt64, memorysize.UInt128}}}, // 1301
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpWh}, Codes: Codes{{instructions.EvexVpmovzxdqXmmK1zXmmm64, instructions.EvexVpmovzxdqYmmK1zXmmm128, instructions.EvexVpmovzxdqZmmK1zYmmm256}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.UInt256}}}, // 1302
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.EvexVpermdYmmK1zYmmYmmm256B32, instructions.EvexVpermdZmmK1zZmmZmmm512B32}, {instructions.Invalid, instructions.EvexVpermqYmmK1zYmmYmmm256B64, instructions.EvexVpermqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt256, memorysize.UInt512}, {memorysize.Unknown, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1303
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagBroadcast, Operands: Operands{OpK, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpcmpgtqKrK1XmmXmmm128B64, instructions.EvexVpcmpgtqKrK1YmmYmmm256B64, instructions.EvexVpcmpgtqKrK1ZmmZmmm512B64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastUInt64}}, // 1304
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpminsbXmmK1zXmmXmmm128, instructions.EvexVpminsbYmmK1zYmmYmmm256, instructions.EvexVpminsbZmmK1zZmmZmmm512}, {instructions.EvexVpminsbXmmK1zXmmXmmm128, instructions.EvexVpminsbYmmK1zYmmYmmm256, instructions.EvexVpminsbZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1305
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpminsdXmmK1zXmmXmmm128B32, instructions.EvexVpminsdYmmK1zYmmYmmm256B32, instructions.EvexVpminsdZmmK1zZmmZmmm512B32}, {instructions.EvexVpminsqXmmK1zXmmXmmm128B64, instructions.EvexVpminsqYmmK1zYmmYmmm256B64, instructions.EvexVpminsqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1306
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpminuwXmmK1zXmmXmmm128, instructions.EvexVpminuwYmmK1zYmmYmmm256, instructions.EvexVpminuwZmmK1zZmmZmmm512}, {instructions.EvexVpminuwXmmK1zXmmXmmm128, instructions.EvexVpminuwYmmK1zYmmYmmm256, instructions.EvexVpminuwZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1307
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpminudXmmK1zXmmXmmm128B32, instructions.EvexVpminudYmmK1zYmmYmmm256B32, instructions.EvexVpminudZmmK1zZmmZmmm512B32}, {instructions.EvexVpminuqXmmK1zXmmXmmm128B64, instructions.EvexVpminuqYmmK1zYmmYmmm256B64, instructions.EvexVpminuqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1308
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpmaxsbXmmK1zXmmXmmm128, instructions.EvexVpmaxsbYmmK1zYmmYmmm256, instructions.EvexVpmaxsbZmmK1zZmmZmmm512}, {instructions.EvexVpmaxsbXmmK1zXmmXmmm128, instructions.EvexVpmaxsbYmmK1zYmmYmmm256, instructions.EvexVpmaxsbZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1309
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpmaxsdXmmK1zXmmXmmm128B32, instructions.EvexVpmaxsdYmmK1zYmmYmmm256B32, instructions.EvexVpmaxsdZmmK1zZmmZmmm512B32}, {instructions.EvexVpmaxsqXmmK1zXmmXmmm128B64, instructions.EvexVpmaxsqYmmK1zYmmYmmm256B64, instructions.EvexVpmaxsqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1310
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpmaxuwXmmK1zXmmXmmm128, instructions.EvexVpmaxuwYmmK1zYmmYmmm256, instructions.EvexVpmaxuwZmmK1zZmmZmmm512}, {instructions.EvexVpmaxuwXmmK1zXmmXmmm128, instructions.EvexVpmaxuwYmmK1zYmmYmmm256, instructions.EvexVpmaxuwZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1311
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpmaxudXmmK1zXmmXmmm128B32, instructions.EvexVpmaxudYmmK1zYmmYmmm256B32, instructions.EvexVpmaxudZmmK1zZmmZmmm512B32}, {instructions.EvexVpmaxuqXmmK1zXmmXmmm128B64, instructions.EvexVpmaxuqYmmK1zYmmYmmm256B64, instructions.EvexVpmaxuqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1312
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpmulldXmmK1zXmmXmmm128B32, instructions.EvexVpmulldYmmK1zYmmYmmm256B32, instructions.EvexVpmulldZmmK1zZmmZmmm512B32}, {instructions.EvexVpmullqXmmK1zXmmXmmm128B64, instructions.EvexVpmullqYmmK1zYmmYmmm256B64, instructions.EvexVpmullqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1313
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.EvexVplzcntdXmmK1zXmmm128B32, instructions.EvexVplzcntdYmmK1zYmmm256B32, instructions.EvexVplzcntdZmmK1zZmmm512B32}, {instructions.EvexVplzcntqXmmK1zXmmm128B64, instructions.EvexVplzcntqYmmK1zYmmm256B64, instructions.EvexVplzcntqZmmK1zZmmm512B64}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1314
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpsrlvdXmmK1zXmmXmmm128B32, instructions.EvexVpsrlvdYmmK1zYmmYmmm256B32, instructions.EvexVpsrlvdZmmK1zZmmZmmm512B32}, {instructions.EvexVpsrlvqXmmK1zXmmXmmm128B64, instructions.EvexVpsrlvqYmmK1zYmmYmmm256B64, instructions.EvexVpsrlvqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1315
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpsravdXmmK1zXmmXmmm128B32, instructions.EvexVpsravdYmmK1zYmmYmmm256B32, instructions.EvexVpsravdZmmK1zZmmZmmm512B32}, {instructions.EvexVpsravqXmmK1zXmmXmmm128B64, instructions.EvexVpsravqYmmK1zYmmYmmm256B64, instructions.EvexVpsravqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1316
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpsllvdXmmK1zXmmXmmm128B32, instructions.EvexVpsllvdYmmK1zYmmYmmm256B32, instructions.EvexVpsllvdZmmK1zZmmZmmm512B32}, {instructions.EvexVpsllvqXmmK1zXmmXmmm128B64, instructions.EvexVpsllvqYmmK1zYmmYmmm256B64, instructions.EvexVpsllvqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1317
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.EvexVrcp14psXmmK1zXmmm128B32, instructions.EvexVrcp14psYmmK1zYmmm256B32, instructions.EvexVrcp14psZmmK1zZmmm512B32}, {instructions.EvexVrcp14pdXmmK1zXmmm128B64, instructions.EvexVrcp14pdYmmK1zYmmm256B64, instructions.EvexVrcp14pdZmmK1zZmmm512B64}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1318
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.EvexVrsqrt14psXmmK1zXmmm128B32, instructions.EvexVrsqrt14psYmmK1zYmmm256B32, instructions.EvexVrsqrt14psZmmK1zZmmm512B32}, {instructions.EvexVrsqrt14pdXmmK1zXmmm128B64, instructions.EvexVrsqrt14pdYmmK1zYmmm256B64, instructions.EvexVrsqrt14pdZmmK1zZmmm512B64}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1319
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.EvexVpbroadcastdXmmK1zXmmm32, instructions.EvexVpbroadcastdYmmK1zXmmm32, instructions.EvexVpbroadcastdZmmK1zXmmm32}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.UInt32}}}, // 1320
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpbroadcastqXmmK1zXmmm64, instructions.EvexVpbroadcastqYmmK1zXmmm64, instructions.EvexVpbroadcastqZmmK1zXmmm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt64, memorysize.UInt64, memorysize.UInt64}}}, // 1321
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpM}, Codes: Codes{{instructions.Invalid, instructions.EvexVbroadcasti32x4YmmK1zM128, instructions.EvexVbroadcasti32x4ZmmK1zM128}, {instructions.Invalid, instructions.EvexVbroadcasti64x2YmmK1zM128, instructions.EvexVbroadcasti64x2ZmmK1zM128}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt128, memorysize.UInt128}, {memorysize.Unknown, memorysize.UInt128, memorysize.UInt128}}}, // 1322
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpblendmdXmmK1zXmmXmmm128B32, instructions.EvexVpblendmdYmmK1zYmmYmmm256B32, instructions.EvexVpblendmdZmmK1zZmmZmmm512B32}, {instructions.EvexVpblendmqXmmK1zXmmXmmm128B64, instructions.EvexVpblendmqYmmK1zYmmYmmm256B64, instructions.EvexVpblendmqZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1323
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVblendmpsXmmK1zXmmXmmm128B32, instructions.EvexVblendmpsYmmK1zYmmYmmm256B32, instructions.EvexVblendmpsZmmK1zZmmZmmm512B32}, {instructions.EvexVblendmpdXmmK1zXmmXmmm128B64, instructions.EvexVblendmpdYmmK1zYmmYmmm256B64, instructions.EvexVblendmpdZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1324
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpblendmbXmmK1zXmmXmmm128, instructions.EvexVpblendmbYmmK1zYmmYmmm256, instructions.EvexVpblendmbZmmK1zZmmZmmm512}, {instructions.EvexVpblendmwXmmK1zXmmXmmm128, instructions.EvexVpblendmwYmmK1zYmmYmmm256, instructions.EvexVpblendmwZmmK1zZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1325
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpermi2dXmmK1zXmmXmmm128B32, instructions.EvexVpermi2dYmmK1zYmmYmmm256B32, instructions.EvexVpermi2dZmmK1zZmmZmmm512B32}, {instructions.EvexVpermi2qXmmK1zXmmXmmm128B64, instructions.EvexVpermi2qYmmK1zYmmYmmm256B64, instructions.EvexVpermi2qZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1326
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpermi2psXmmK1zXmmXmmm128B32, instructions.EvexVpermi2psYmmK1zYmmYmmm256B32, instructions.EvexVpermi2psZmmK1zZmmZmmm512B32}, {instructions.EvexVpermi2pdXmmK1zXmmXmmm128B64, instructions.EvexVpermi2pdYmmK1zYmmYmmm256B64, instructions.EvexVpermi2pdZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1327
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.EvexVpbroadcastbXmmK1zXmmm8, instructions.EvexVpbroadcastbYmmK1zXmmm8, instructions.EvexVpbroadcastbZmmK1zXmmm8}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.UInt8}}}, // 1328
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.EvexVpbroadcastwXmmK1zXmmm16, instructions.EvexVpbroadcastwYmmK1zXmmm16, instructions.EvexVpbroadcastwZmmK1zXmmm16}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.UInt16}}}, // 1329
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpermt2dXmmK1zXmmXmmm128B32, instructions.EvexVpermt2dYmmK1zYmmYmmm256B32, instructions.EvexVpermt2dZmmK1zZmmZmmm512B32}, {instructions.EvexVpermt2qXmmK1zXmmXmmm128B64, instructions.EvexVpermt2qYmmK1zYmmYmmm256B64, instructions.EvexVpermt2qZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1330
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVpermt2psXmmK1zXmmXmmm128B32, instructions.EvexVpermt2psYmmK1zYmmYmmm256B32, instructions.EvexVpermt2psZmmK1zZmmZmmm512B32}, {instructions.EvexVpermt2pdXmmK1zXmmXmmm128B64, instructions.EvexVpermt2pdYmmK1zYmmYmmm256B64, instructions.EvexVpermt2pdZmmK1zZmmZmmm512B64}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1331
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagVSIB | FlagMask, Operands: Operands{OpV, OpMVx}, Codes: Codes{{instructions.EvexVpgatherddXmmK1Vm32x, instructions.EvexVpgatherddYmmK1Vm32y, instructions.EvexVpgatherddZmmK1Vm32z}}, Memory: Sizes{{memorysize.Int32, memorysize.Int32, memorysize.Int32}}}, // 1332
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagVSIB | FlagMask, Operands: Operands{OpV, OpMVh}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpgatherdqXmmK1Vm32x, instructions.EvexVpgatherdqYmmK1Vm32x, instructions.EvexVpgatherdqZmmK1Vm32y}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Int64, memorysize.Int64, memorysize.Int64}}}, // 1333
	{Kind: KindW, Flags: FlagModRM, Alt: 1332}, // 1334
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagVSIB | FlagMask, Operands: Operands{OpVh, OpMVx}, Codes: Codes{{instructions.EvexVpgatherqdXmmK1Vm64x, instructions.EvexVpgatherqdXmmK1Vm64y, instructions.EvexVpgatherqdYmmK1Vm64z}}, Memory: Sizes{{memorysize.Int32, memorysize.Int32, memorysize.Int32}}}, // 1335
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagVSIB | FlagMask, Operands: Operands{OpV, OpMVx}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpgatherqqXmmK1Vm64x, instructions.EvexVpgatherqqYmmK1Vm64y, instructions.EvexVpgatherqqZmmK1Vm64z}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Int64, memorysize.Int64, memorysize.Int64}}}, // 1336
	{Kind: KindW, Flags: FlagModRM, Alt: 1335}, // 1337
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagVSIB | FlagMask, Operands: Operands{OpV, OpMVx}, Codes: Codes{{instructions.EvexVgatherdpsXmmK1Vm32x, instructions.EvexVgatherdpsYmmK1Vm32y, instructions.EvexVgatherdpsZmmK1Vm32z}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 1338
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagVSIB | FlagMask, Operands: Operands{OpV, OpMVh}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVgatherdpdXmmK1Vm32x, instructions.EvexVgatherdpdYmmK1Vm32x, instructions.EvexVgatherdpdZmmK1Vm32y}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1339
	{Kind: KindW, Flags: FlagModRM, Alt: 1338}, // 1340
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagVSIB | FlagMask, Operands: Operands{OpVh, OpMVx}, Codes: Codes{{instructions.EvexVgatherqpsXmmK1Vm64x, instructions.EvexVgatherqpsXmmK1Vm64y, instructions.EvexVgatherqpsYmmK1Vm64z}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 1341
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagVSIB | FlagMask, Operands: Operands{OpV, OpMVx}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVgatherqpdXmmK1Vm64x, instructions.EvexVgatherqpdYmmK1Vm64y, instructions.EvexVgatherqpdZmmK1Vm64z}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1342
	{Kind: KindW, Flags: FlagModRM, Alt: 1341}, // 1343
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVfmaddsub132psXmmK1zXmmXmmm128B32, instructions.EvexVfmaddsub132psYmmK1zYmmYmmm256B32, instructions.EvexVfmaddsub132psZmmK1zZmmZmmm512B32Er}, {instructions.EvexVfmaddsub132pdXmmK1zXmmXmmm128B64, instructions.EvexVfmaddsub132pdYmmK1zYmmYmmm256B64, instructions.EvexVfmaddsub132pdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1344
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVfmsubadd132psXmmK1zXmmXmmm128B32, instructions.EvexVfmsubadd132psYmmK1zYmmYmmm256B32, instructions.EvexVfmsubadd132psZmmK1zZmmZmmm512B32Er}, {instructions.EvexVfmsubadd132pdXmmK1zXmmXmmm128B64, instructions.EvexVfmsubadd132pdYmmK1zYmmYmmm256B64, instructions.EvexVfmsubadd132pdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1345
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVfmadd132psXmmK1zXmmXmmm128B32, instructions.EvexVfmadd132psYmmK1zYmmYmmm256B32, instructions.EvexVfmadd132psZmmK1zZmmZmmm512B32Er}, {instructions.EvexVfmadd132pdXmmK1zXmmXmmm128B64, instructions.EvexVfmadd132pdYmmK1zYmmYmmm256B64, instructions.EvexVfmadd132pdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1346
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVfmadd132ssXmmK1zXmmXmmm32Er, instructions.EvexVfmadd132ssXmmK1zXmmXmmm32Er, instructions.EvexVfmadd132ssXmmK1zXmmXmmm32Er}, {instructions.EvexVfmadd132sdXmmK1zXmmXmmm64Er, instructions.EvexVfmadd132sdXmmK1zXmmXmmm64Er, instructions.EvexVfmadd132sdXmmK1zXmmXmmm64Er}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1347
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVfmsub132psXmmK1zXmmXmmm128B32, instructions.EvexVfmsub132psYmmK1zYmmYmmm256B32, instructions.EvexVfmsub132psZmmK1zZmmZmmm512B32Er}, {instructions.EvexVfmsub132pdXmmK1zXmmXmmm128B64, instructions.EvexVfmsub132pdYmmK1zYmmYmmm256B64, instructions.EvexVfmsub132pdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1348
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVfmsub132ssXmmK1zXmmXmmm32Er, instructions.EvexVfmsub132ssXmmK1zXmmXmmm32Er, instructions.EvexVfmsub132ssXmmK1zXmmXmmm32Er}, {instructions.EvexVfmsub132sdXmmK1zXmmXmmm64Er, instructions.EvexVfmsub132sdXmmK1zXmmXmmm64Er, instructions.EvexVfmsub132sdXmmK1zXmmXmmm64Er}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1349
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVfnmadd132psXmmK1zXmmXmmm128B32, instructions.EvexVfnmadd132psYmmK1zYmmYmmm256B32, instructions.EvexVfnmadd132psZmmK1zZmmZmmm512B32Er}, {instructions.EvexVfnmadd132pdXmmK1zXmmXmmm128B64, instructions.EvexVfnmadd132pdYmmK1zYmmYmmm256B64, instructions.EvexVfnmadd132pdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1350
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVfnmadd132ssXmmK1zXmmXmmm32Er, instructions.EvexVfnmadd132ssXmmK1zXmmXmmm32Er, instructions.EvexVfnmadd132ssXmmK1zXmmXmmm32Er}, {instructions.EvexVfnmadd132sdXmmK1zXmmXmmm64Er, instructions.EvexVfnmadd132sdXmmK1zXmmXmmm64Er, instructions.EvexVfnmadd132sdXmmK1zXmmXmmm64Er}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1351
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVfnmsub132psXmmK1zXmmXmmm128B32, instructions.EvexVfnmsub132psYmmK1zYmmYmmm256B32, instructions.EvexVfnmsub132psZmmK1zZmmZmmm512B32Er}, {instructions.EvexVfnmsub132pdXmmK1zXmmXmmm128B64, instructions.EvexVfnmsub132pdYmmK1zYmmYmmm256B64, instructions.EvexVfnmsub132pdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1352
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVfnmsub132ssXmmK1zXmmXmmm32Er, instructions.EvexVfnmsub132ssXmmK1zXmmXmmm32Er, instructions.EvexVfnmsub132ssXmmK1zXmmXmmm32Er}, {instructions.EvexVfnmsub132sdXmmK1zXmmXmmm64Er, instructions.EvexVfnmsub132sdXmmK1zXmmXmmm64Er, instructions.EvexVfnmsub132sdXmmK1zXmmXmmm64Er}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1353
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagVSIB | FlagMask, Operands: Operands{OpMVx, OpV}, Codes: Codes{{instructions.EvexVpscatterddVm32xK1Xmm, instructions.EvexVpscatterddVm32yK1Ymm, instructions.EvexVpscatterddVm32zK1Zmm}}, Memory: Sizes{{memorysize.Int32, memorysize.Int32, memorysize.Int32}}}, // 1354
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagVSIB | FlagMask, Operands: Operands{OpMVh, OpV}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpscatterdqVm32xK1Xmm, instructions.EvexVpscatterdqVm32xK1Ymm, instructions.EvexVpscatterdqVm32yK1Zmm}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Int64, memorysize.Int64, memorysize.Int64}}}, // 1355
	{Kind: KindW, Flags: FlagModRM, Alt: 1354}, // 1356
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagVSIB | FlagMask, Operands: Operands{OpMVx, OpVh}, Codes: Codes{{instructions.EvexVpscatterqdVm64xK1Xmm, instructions.EvexVpscatterqdVm64yK1Xmm, instructions.EvexVpscatterqdVm64zK1Ymm}}, Memory: Sizes{{memorysize.Int32, memorysize.Int32, memorysize.Int32}}}, // 1357
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagVSIB | FlagMask, Operands: Operands{OpMVx, OpV}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpscatterqqVm64xK1Xmm, instructions.EvexVpscatterqqVm64yK1Ymm, instructions.EvexVpscatterqqVm64zK1Zmm}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Int64, memorysize.Int64, memorysize.Int64}}}, // 1358
	{Kind: KindW, Flags: FlagModRM, Alt: 1357}, // 1359
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagVSIB | FlagMask, Operands: Operands{OpMVx, OpV}, Codes: Codes{{instructions.EvexVscatterdpsVm32xK1Xmm, instructions.EvexVscatterdpsVm32yK1Ymm, instructions.EvexVscatterdpsVm32zK1Zmm}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 1360
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagVSIB | FlagMask, Operands: Operands{OpMVh, OpV}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVscatterdpdVm32xK1Xmm, instructions.EvexVscatterdpdVm32xK1Ymm, instructions.EvexVscatterdpdVm32yK1Zmm}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1361
	{Kind: KindW, Flags: FlagModRM, Alt: 1360}, // 1362
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagVSIB | FlagMask, Operands: Operands{OpMVx, OpVh}, Codes: Codes{{instructions.EvexVscatterqpsVm64xK1Xmm, instructions.EvexVscatterqpsVm64yK1Xmm, instructions.EvexVscatterqpsVm64zK1Ymm}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 1363
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv | FlagVSIB | FlagMask, Operands: Operands{OpMVx, OpV}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVscatterqpdVm64xK1Xmm, instructions.EvexVscatterqpdVm64yK1Ymm, instructions.EvexVscatterqpdVm64zK1Zmm}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1364
	{Kind: KindW, Flags: FlagModRM, Alt: 1363}, // 1365
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVfmaddsub213psXmmK1zXmmXmmm128B32, instructions.EvexVfmaddsub213psYmmK1zYmmYmmm256B32, instructions.EvexVfmaddsub213psZmmK1zZmmZmmm512B32Er}, {instructions.EvexVfmaddsub213pdXmmK1zXmmXmmm128B64, instructions.EvexVfmaddsub213pdYmmK1zYmmYmmm256B64, instructions.EvexVfmaddsub213pdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1366
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVfmsubadd213psXmmK1zXmmXmmm128B32, instructions.EvexVfmsubadd213psYmmK1zYmmYmmm256B32, instructions.EvexVfmsubadd213psZmmK1zZmmZmmm512B32Er}, {instructions.EvexVfmsubadd213pdXmmK1zXmmXmmm128B64, instructions.EvexVfmsubadd213pdYmmK1zYmmYmmm256B64, instructions.EvexVfmsubadd213pdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1367
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVfmadd213psXmmK1zXmmXmmm128B32, instructions.EvexVfmadd213psYmmK1zYmmYmmm256B32, instructions.EvexVfmadd213psZmmK1zZmmZmmm512B32Er}, {instructions.EvexVfmadd213pdXmmK1zXmmXmmm128B64, instructions.EvexVfmadd213pdYmmK1zYmmYmmm256B64, instructions.EvexVfmadd213pdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1368
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVfmadd213ssXmmK1zXmmXmmm32Er, instructions.EvexVfmadd213ssXmmK1zXmmXmmm32Er, instructions.EvexVfmadd213ssXmmK1zXmmXmmm32Er}, {instructions.EvexVfmadd213sdXmmK1zXmmXmmm64Er, instructions.EvexVfmadd213sdXmmK1zXmmXmmm64Er, instructions.EvexVfmadd213sdXmmK1zXmmXmmm64Er}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1369
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVfmsub213psXmmK1zXmmXmmm128B32, instructions.EvexVfmsub213psYmmK1zYmmYmmm256B32, instructions.EvexVfmsub213psZmmK1zZmmZmmm512B32Er}, {instructions.EvexVfmsub213pdXmmK1zXmmXmmm128B64, instructions.EvexVfmsub213pdYmmK1zYmmYmmm256B64, instructions.EvexVfmsub213pdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1370
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVfmsub213ssXmmK1zXmmXmmm32Er, instructions.EvexVfmsub213ssXmmK1zXmmXmmm32Er, instructions.EvexVfmsub213ssXmmK1zXmmXmmm32Er}, {instructions.EvexVfmsub213sdXmmK1zXmmXmmm64Er, instructions.EvexVfmsub213sdXmmK1zXmmXmmm64Er, instructions.EvexVfmsub213sdXmmK1zXmmXmmm64Er}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1371
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVfnmadd213psXmmK1zXmmXmmm128B32, instructions.EvexVfnmadd213psYmmK1zYmmYmmm256B32, instructions.EvexVfnmadd213psZmmK1zZmmZmmm512B32Er}, {instructions.EvexVfnmadd213pdXmmK1zXmmXmmm128B64, instructions.EvexVfnmadd213pdYmmK1zYmmYmmm256B64, instructions.EvexVfnmadd213pdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1372
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVfnmadd213ssXmmK1zXmmXmmm32Er, instructions.EvexVfnmadd213ssXmmK1zXmmXmmm32Er, instructions.EvexVfnmadd213ssXmmK1zXmmXmmm32Er}, {instructions.EvexVfnmadd213sdXmmK1zXmmXmmm64Er, instructions.EvexVfnmadd213sdXmmK1zXmmXmmm64Er, instructions.EvexVfnmadd213sdXmmK1zXmmXmmm64Er}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1373
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVfnmsub213psXmmK1zXmmXmmm128B32, instructions.EvexVfnmsub213psYmmK1zYmmYmmm256B32, instructions.EvexVfnmsub213psZmmK1zZmmZmmm512B32Er}, {instructions.EvexVfnmsub213pdXmmK1zXmmXmmm128B64, instructions.EvexVfnmsub213pdYmmK1zYmmYmmm256B64, instructions.EvexVfnmsub213pdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1374
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVfnmsub213ssXmmK1zXmmXmmm32Er, instructions.EvexVfnmsub213ssXmmK1zXmmXmmm32Er, instructions.EvexVfnmsub213ssXmmK1zXmmXmmm32Er}, {instructions.EvexVfnmsub213sdXmmK1zXmmXmmm64Er, instructions.EvexVfnmsub213sdXmmK1zXmmXmmm64Er, instructions.EvexVfnmsub213sdXmmK1zXmmXmmm64Er}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1375
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVfmaddsub231psXmmK1zXmmXmmm128B32, instructions.EvexVfmaddsub231psYmmK1zYmmYmmm256B32, instructions.EvexVfmaddsub231psZmmK1zZmmZmmm512B32Er}, {instructions.EvexVfmaddsub231pdXmmK1zXmmXmmm128B64, instructions.EvexVfmaddsub231pdYmmK1zYmmYmmm256B64, instructions.EvexVfmaddsub231pdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1376
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVfmsubadd231psXmmK1zXmmXmmm128B32, instructions.EvexVfmsubadd231psYmmK1zYmmYmmm256B32, instructions.EvexVfmsubadd231psZmmK1zZmmZmmm512B32Er}, {instructions.EvexVfmsubadd231pdXmmK1zXmmXmmm128B64, instructions.EvexVfmsubadd231pdYmmK1zYmmYmmm256B64, instructions.EvexVfmsubadd231pdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1377
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVfmadd231psXmmK1zXmmXmmm128B32, instructions.EvexVfmadd231psYmmK1zYmmYmmm256B32, instructions.EvexVfmadd231psZmmK1zZmmZmmm512B32Er}, {instructions.EvexVfmadd231pdXmmK1zXmmXmmm128B64, instructions.EvexVfmadd231pdYmmK1zYmmYmmm256B64, instructions.EvexVfmadd231pdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1378
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVfmadd231ssXmmK1zXmmXmmm32Er, instructions.EvexVfmadd231ssXmmK1zXmmXmmm32Er, instructions.EvexVfmadd231ssXmmK1zXmmXmmm32Er}, {instructions.EvexVfmadd231sdXmmK1zXmmXmmm64Er, instructions.EvexVfmadd231sdXmmK1zXmmXmmm64Er, instructions.EvexVfmadd231sdXmmK1zXmmXmmm64Er}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1379
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVfmsub231psXmmK1zXmmXmmm128B32, instructions.EvexVfmsub231psYmmK1zYmmYmmm256B32, instructions.EvexVfmsub231psZmmK1zZmmZmmm512B32Er}, {instructions.EvexVfmsub231pdXmmK1zXmmXmmm128B64, instructions.EvexVfmsub231pdYmmK1zYmmYmmm256B64, instructions.EvexVfmsub231pdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1380
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVfmsub231ssXmmK1zXmmXmmm32Er, instructions.EvexVfmsub231ssXmmK1zXmmXmmm32Er, instructions.EvexVfmsub231ssXmmK1zXmmXmmm32Er}, {instructions.EvexVfmsub231sdXmmK1zXmmXmmm64Er, instructions.EvexVfmsub231sdXmmK1zXmmXmmm64Er, instructions.EvexVfmsub231sdXmmK1zXmmXmmm64Er}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1381
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVfnmadd231psXmmK1zXmmXmmm128B32, instructions.EvexVfnmadd231psYmmK1zYmmYmmm256B32, instructions.EvexVfnmadd231psZmmK1zZmmZmmm512B32Er}, {instructions.EvexVfnmadd231pdXmmK1zXmmXmmm128B64, instructions.EvexVfnmadd231pdYmmK1zYmmYmmm256B64, instructions.EvexVfnmadd231pdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1382
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVfnmadd231ssXmmK1zXmmXmmm32Er, instructions.EvexVfnmadd231ssXmmK1zXmmXmmm32Er, instructions.EvexVfnmadd231ssXmmK1zXmmXmmm32Er}, {instructions.EvexVfnmadd231sdXmmK1zXmmXmmm64Er, instructions.EvexVfnmadd231sdXmmK1zXmmXmmm64Er, instructions.EvexVfnmadd231sdXmmK1zXmmXmmm64Er}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1383
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast | FlagRounding, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.EvexVfnmsub231psXmmK1zXmmXmmm128B32, instructions.EvexVfnmsub231psYmmK1zYmmYmmm256B32, instructions.EvexVfnmsub231psZmmK1zZmmZmmm512B32Er}, {instructions.EvexVfnmsub231pdXmmK1zXmmXmmm128B64, instructions.EvexVfnmsub231pdYmmK1zYmmYmmm256B64, instructions.EvexVfnmsub231pdZmmK1zZmmZmmm512B64Er}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.BroadcastFloat64}}, // 1384
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagRounding, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.EvexVfnmsub231ssXmmK1zXmmXmmm32Er, instructions.EvexVfnmsub231ssXmmK1zXmmXmmm32Er, instructions.EvexVfnmsub231ssXmmK1zXmmXmmm32Er}, {instructions.EvexVfnmsub231sdXmmK1zXmmXmmm64Er, instructions.EvexVfnmsub231sdXmmK1zXmmXmmm64Er, instructions.EvexVfnmsub231sdXmmK1zXmmXmmm64Er}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1385
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.EvexVpconflictdXmmK1zXmmm128B32, instructions.EvexVpconflictdYmmK1zYmmm256B32, instructions.EvexVpconflictdZmmK1zZmmm512B32}, {instructions.EvexVpconflictqXmmK1zXmmm128B64, instructions.EvexVpconflictqYmmK1zYmmm256B64, instructions.EvexVpconflictqZmmK1zZmmm512B64}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1386
	{Kind: KindNormal, Flags: FlagModRM | FlagMask, Operands: Operands{OpK, OpH, OpW}, Codes: Codes{{instructions.EvexVptestnmbKrK1XmmXmmm128, instructions.EvexVptestnmbKrK1YmmYmmm256, instructions.EvexVptestnmbKrK1ZmmZmmm512}, {instructions.EvexVptestnmwKrK1XmmXmmm128, instructions.EvexVptestnmwKrK1YmmYmmm256, instructions.EvexVptestnmwKrK1ZmmZmmm512}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1387
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagBroadcast, Operands: Operands{OpK, OpH, OpW}, Codes: Codes{{instructions.EvexVptestnmdKrK1XmmXmmm128B32, instructions.EvexVptestnmdKrK1YmmYmmm256B32, instructions.EvexVptestnmdKrK1ZmmZmmm512B32}, {instructions.EvexVptestnmqKrK1XmmXmmm128B64, instructions.EvexVptestnmqKrK1YmmYmmm256B64, instructions.EvexVptestnmqKrK1ZmmZmmm512B64}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1388
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3 | FlagNoVvvv, Operands: Operands{OpV, OpKR}, Codes: Codes{{instructions.EvexVpmovm2bXmmKr, instructions.EvexVpmovm2bYmmKr, instructions.EvexVpmovm2bZmmKr}, {instructions.EvexVpmovm2wXmmKr, instructions.EvexVpmovm2wYmmKr, instructions.EvexVpmovm2wZmmKr}}}, // 1389
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3 | FlagNoVvvv, Operands: Operands{OpK, OpU}, Codes: Codes{{instructions.EvexVpmovb2mKrXmm, instructions.EvexVpmovb2mKrYmm, instructions.EvexVpmovb2mKrZmm}, {instructions.EvexVpmovw2mKrXmm, instructions.EvexVpmovw2mKrYmm, instructions.EvexVpmovw2mKrZmm}}}, // 1390
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpWh, OpV}, Codes: Codes{{instructions.EvexVpmovwbXmmm64K1zXmm, instructions.EvexVpmovwbXmmm128K1zYmm, instructions.EvexVpmovwbYmmm256K1zZmm}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.UInt256}}}, // 1391
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpWX, OpV}, Codes: Codes{{instructions.EvexVpmovdbXmmm32K1zXmm, instructions.EvexVpmovdbXmmm64K1zYmm, instructions.EvexVpmovdbXmmm128K1zZmm}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt64, memorysize.UInt128}}}, // 1392
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpWX, OpV}, Codes: Codes{{instructions.EvexVpmovqbXmmm16K1zXmm, instructions.EvexVpmovqbXmmm32K1zYmm, instructions.EvexVpmovqbXmmm64K1zZmm}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.UInt64}}}, // 1393
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpWh, OpV}, Codes: Codes{{instructions.EvexVpmovdwXmmm64K1zXmm, instructions.EvexVpmovdwXmmm128K1zYmm, instructions.EvexVpmovdwYmmm256K1zZmm}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.UInt256}}}, // 1394
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpWX, OpV}, Codes: Codes{{instructions.EvexVpmovqwXmmm32K1zXmm, instructions.EvexVpmovqwXmmm64K1zYmm, instructions.EvexVpmovqwXmmm128K1zZmm}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt64, memorysize.UInt128}}}, // 1395
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpWh, OpV}, Codes: Codes{{instructions.EvexVpmovqdXmmm64K1zXmm, instructions.EvexVpmovqdXmmm128K1zYmm, instructions.EvexVpmovqdYmmm256K1zZmm}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.UInt256}}}, // 1396
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3 | FlagNoVvvv, Operands: Operands{OpV, OpKR}, Codes: Codes{{instructions.EvexVpmovm2dXmmKr, instructions.EvexVpmovm2dYmmKr, instructions.EvexVpmovm2dZmmKr}, {instructions.EvexVpmovm2qXmmKr, instructions.EvexVpmovm2qYmmKr, instructions.EvexVpmovm2qZmmKr}}}, // 1397
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3 | FlagNoVvvv, Operands: Operands{OpK, OpU}, Codes: Codes{{instructions.EvexVpmovd2mKrXmm, instructions.EvexVpmovd2mKrYmm, instructions.EvexVpmovd2mKrZmm}, {instructions.EvexVpmovq2mKrXmm, instructions.EvexVpmovq2mKrYmm, instructions.EvexVpmovq2mKrZmm}}}, // 1398
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.Invalid, instructions.EvexVpermqYmmK1zYmmm256B64Imm8, instructions.EvexVpermqZmmK1zZmmm512B64Imm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Unknown, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastUInt64}}, // 1399
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.Invalid, instructions.EvexVpermpdYmmK1zYmmm256B64Imm8, instructions.EvexVpermpdZmmK1zZmmm512B64Imm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Unknown, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1400
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexValigndXmmK1zXmmXmmm128B32Imm8, instructions.EvexValigndYmmK1zYmmYmmm256B32Imm8, instructions.EvexValigndZmmK1zZmmZmmm512B32Imm8}, {instructions.EvexValignqXmmK1zXmmXmmm128B64Imm8, instructions.EvexValignqYmmK1zYmmYmmm256B64Imm8, instructions.EvexValignqZmmK1zZmmZmmm512B64Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1401
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.EvexVpermilpsXmmK1zXmmm128B32Imm8, instructions.EvexVpermilpsYmmK1zYmmm256B32Imm8, instructions.EvexVpermilpsZmmK1zZmmm512B32Imm8}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.Unknown}}, // 1402
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVpermilpdXmmK1zXmmm128B64Imm8, instructions.EvexVpermilpdYmmK1zYmmm256B64Imm8, instructions.EvexVpermilpdZmmK1zZmmm512B64Imm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1403
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast | FlagSAE, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.EvexVrndscalepsXmmK1zXmmm128B32Imm8, instructions.EvexVrndscalepsYmmK1zYmmm256B32Imm8, instructions.EvexVrndscalepsZmmK1zZmmm512B32Imm8Sae}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Packed512Float32}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastFloat32, memorysize.Unknown}}, // 1404
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagBroadcast | FlagSAE, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVrndscalepdXmmK1zXmmm128B64Imm8, instructions.EvexVrndscalepdYmmK1zYmmm256B64Imm8, instructions.EvexVrndscalepdZmmK1zZmmm512B64Imm8Sae}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Packed512Float64}}, Broadcast: [2]memorysize.MemorySize{memorysize.Unknown, memorysize.BroadcastFloat64}}, // 1405
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagSAE, Operands: Operands{OpVX, OpHX, OpWX, OpIb}, Codes: Codes{{instructions.EvexVrndscalessXmmK1zXmmXmmm32Imm8Sae, instructions.EvexVrndscalessXmmK1zXmmXmmm32Imm8Sae, instructions.EvexVrndscalessXmmK1zXmmXmmm32Imm8Sae}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Float32}}}, // 1406
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagSAE, Operands: Operands{OpVX, OpHX, OpWX, OpIb}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.EvexVrndscalesdXmmK1zXmmXmmm64Imm8Sae, instructions.EvexVrndscalesdXmmK1zXmmXmmm64Imm8Sae, instructions.EvexVrndscalesdXmmK1zXmmXmmm64Imm8Sae}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Float64}}}, // 1407
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVpalignrXmmK1zXmmXmmm128Imm8, instructions.EvexVpalignrYmmK1zYmmYmmm256Imm8, instructions.EvexVpalignrZmmK1zZmmZmmm512Imm8}, {instructions.EvexVpalignrXmmK1zXmmXmmm128Imm8, instructions.EvexVpalignrYmmK1zYmmYmmm256Imm8, instructions.EvexVpalignrZmmK1zZmmZmmm512Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1408
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR | FlagL0, Operands: Operands{OpRyM, OpVX, OpIb}, Codes: Codes{{instructions.Invalid, instructions.EvexVpextrbR32m8XmmImm8, instructions.EvexVpextrbR64m8XmmImm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt8, memorysize.UInt8}}}, // 1409
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR | FlagL0, Operands: Operands{OpRyM, OpVX, OpIb}, Codes: Codes{{instructions.Invalid, instructions.EvexVpextrwR32m16XmmImm8, instructions.EvexVpextrwR64m16XmmImm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt16, memorysize.UInt16}}}, // 1410
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR | FlagL0, Operands: Operands{OpEy, OpVX, OpIb}, Codes: Codes{{instructions.Invalid, instructions.EvexVpextrdRm32XmmImm8, instructions.EvexVpextrqRm64XmmImm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1411
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpEd, OpVX, OpIb}, Codes: Codes{{instructions.EvexVextractpsRm32XmmImm8, instructions.Invalid, instructions.Invalid}, {instructions.EvexVextractpsRm32XmmImm8, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt32, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt32, memorysize.Unknown, memorysize.Unknown}}}, // 1412
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpWX, OpIb}, Codes: Codes{{instructions.Invalid, instructions.EvexVinsertf32x4YmmK1zYmmXmmm128Imm8, instructions.EvexVinsertf32x4ZmmK1zZmmXmmm128Imm8}, {instructions.Invalid, instructions.EvexVinsertf64x2YmmK1zYmmXmmm128Imm8, instructions.EvexVinsertf64x2ZmmK1zZmmXmmm128Imm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt128, memorysize.UInt128}, {memorysize.Unknown, memorysize.UInt128, memorysize.UInt128}}}, // 1413
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpWX, OpV, OpIb}, Codes: Codes{{instructions.Invalid, instructions.EvexVextractf32x4Xmmm128K1zYmmImm8, instructions.EvexVextractf32x4Xmmm128K1zZmmImm8}, {instructions.Invalid, instructions.EvexVextractf64x2Xmmm128K1zYmmImm8, instructions.EvexVextractf64x2Xmmm128K1zZmmImm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt128, memorysize.UInt128}, {memorysize.Unknown, memorysize.UInt128, memorysize.UInt128}}}, // 1414
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpWh, OpIb}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.EvexVinsertf32x8ZmmK1zZmmYmmm256Imm8}, {instructions.Invalid, instructions.Invalid, instructions.EvexVinsertf64x4ZmmK1zZmmYmmm256Imm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.UInt256}, {memorysize.Unknown, memorysize.Unknown, memorysize.UInt256}}}, // 1415
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpWh, OpV, OpIb}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.EvexVextractf32x8Ymmm256K1zZmmImm8}, {instructions.Invalid, instructions.Invalid, instructions.EvexVextractf64x4Ymmm256K1zZmmImm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.UInt256}, {memorysize.Unknown, memorysize.Unknown, memorysize.UInt256}}}, // 1416
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing | FlagSAE, Operands: Operands{OpWh, OpV, OpIb}, Codes: Codes{{instructions.EvexVcvtps2phXmmm64K1zXmmImm8, instructions.EvexVcvtps2phXmmm128K1zYmmImm8, instructions.EvexVcvtps2phYmmm256K1zZmmImm8Sae}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.UInt256}}}, // 1417
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagBroadcast, Operands: Operands{OpK, OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVpcmpudKrK1XmmXmmm128B32Imm8, instructions.EvexVpcmpudKrK1YmmYmmm256B32Imm8, instructions.EvexVpcmpudKrK1ZmmZmmm512B32Imm8}, {instructions.EvexVpcmpuqKrK1XmmXmmm128B64Imm8, instructions.EvexVpcmpuqKrK1YmmYmmm256B64Imm8, instructions.EvexVpcmpuqKrK1ZmmZmmm512B64Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1418
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagBroadcast, Operands: Operands{OpK, OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVpcmpdKrK1XmmXmmm128B32Imm8, instructions.EvexVpcmpdKrK1YmmYmmm256B32Imm8, instructions.EvexVpcmpdKrK1ZmmZmmm512B32Imm8}, {instructions.EvexVpcmpqKrK1XmmXmmm128B64Imm8, instructions.EvexVpcmpqKrK1YmmYmmm256B64Imm8, instructions.EvexVpcmpqKrK1ZmmZmmm512B64Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1419
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpVX, OpHX, OpRyM, OpIb}, Codes: Codes{{instructions.Invalid, instructions.EvexVpinsrbXmmXmmR32m8Imm8, instructions.EvexVpinsrbXmmXmmR64m8Imm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt8, memorysize.UInt8}}}, // 1420
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX, OpIb}, Codes: Codes{{instructions.EvexVinsertpsXmmXmmXmmm32Imm8, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt32, memorysize.Unknown, memorysize.Unknown}}}, // 1421
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpVX, OpHX, OpEy, OpIb}, Codes: Codes{{instructions.Invalid, instructions.EvexVpinsrdXmmXmmRm32Imm8, instructions.EvexVpinsrqXmmXmmRm64Imm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1422
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.Invalid, instructions.EvexVshuff32x4YmmK1zYmmYmmm256B32Imm8, instructions.EvexVshuff32x4ZmmK1zZmmZmmm512B32Imm8}, {instructions.Invalid, instructions.EvexVshuff64x2YmmK1zYmmYmmm256B64Imm8, instructions.EvexVshuff64x2ZmmK1zZmmZmmm512B64Imm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt256, memorysize.UInt512}, {memorysize.Unknown, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1423
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVpternlogdXmmK1zXmmXmmm128B32Imm8, instructions.EvexVpternlogdYmmK1zYmmYmmm256B32Imm8, instructions.EvexVpternlogdZmmK1zZmmZmmm512B32Imm8}, {instructions.EvexVpternlogqXmmK1zXmmXmmm128B64Imm8, instructions.EvexVpternlogqYmmK1zYmmYmmm256B64Imm8, instructions.EvexVpternlogqZmmK1zZmmZmmm512B64Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1424
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpWX, OpIb}, Codes: Codes{{instructions.Invalid, instructions.EvexVinserti32x4YmmK1zYmmXmmm128Imm8, instructions.EvexVinserti32x4ZmmK1zZmmXmmm128Imm8}, {instructions.Invalid, instructions.EvexVinserti64x2YmmK1zYmmXmmm128Imm8, instructions.EvexVinserti64x2ZmmK1zZmmXmmm128Imm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt128, memorysize.UInt128}, {memorysize.Unknown, memorysize.UInt128, memorysize.UInt128}}}, // 1425
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpWX, OpV, OpIb}, Codes: Codes{{instructions.Invalid, instructions.EvexVextracti32x4Xmmm128K1zYmmImm8, instructions.EvexVextracti32x4Xmmm128K1zZmmImm8}, {instructions.Invalid, instructions.EvexVextracti64x2Xmmm128K1zYmmImm8, instructions.EvexVextracti64x2Xmmm128K1zZmmImm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt128, memorysize.UInt128}, {memorysize.Unknown, memorysize.UInt128, memorysize.UInt128}}}, // 1426
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpWh, OpIb}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.EvexVinserti32x8ZmmK1zZmmYmmm256Imm8}, {instructions.Invalid, instructions.Invalid, instructions.EvexVinserti64x4ZmmK1zZmmYmmm256Imm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.UInt256}, {memorysize.Unknown, memorysize.Unknown, memorysize.UInt256}}}, // 1427
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagMask | FlagZeroing, Operands: Operands{OpWh, OpV, OpIb}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.EvexVextracti32x8Ymmm256K1zZmmImm8}, {instructions.Invalid, instructions.Invalid, instructions.EvexVextracti64x4Ymmm256K1zZmmImm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.UInt256}, {memorysize.Unknown, memorysize.Unknown, memorysize.UInt256}}}, // 1428
	{Kind: KindNormal, Flags: FlagModRM | FlagMask, Operands: Operands{OpK, OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVpcmpubKrK1XmmXmmm128Imm8, instructions.EvexVpcmpubKrK1YmmYmmm256Imm8, instructions.EvexVpcmpubKrK1ZmmZmmm512Imm8}, {instructions.EvexVpcmpuwKrK1XmmXmmm128Imm8, instructions.EvexVpcmpuwKrK1YmmYmmm256Imm8, instructions.EvexVpcmpuwKrK1ZmmZmmm512Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1429
	{Kind: KindNormal, Flags: FlagModRM | FlagMask, Operands: Operands{OpK, OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVpcmpbKrK1XmmXmmm128Imm8, instructions.EvexVpcmpbKrK1YmmYmmm256Imm8, instructions.EvexVpcmpbKrK1ZmmZmmm512Imm8}, {instructions.EvexVpcmpwKrK1XmmXmmm128Imm8, instructions.EvexVpcmpwKrK1YmmYmmm256Imm8, instructions.EvexVpcmpwKrK1ZmmZmmm512Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1430
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVdbpsadbwXmmK1zXmmXmmm128Imm8, instructions.EvexVdbpsadbwYmmK1zYmmYmmm256Imm8, instructions.EvexVdbpsadbwZmmK1zZmmZmmm512Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1431
	{Kind: KindNormal, Flags: FlagModRM | FlagMask | FlagZeroing | FlagBroadcast, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.Invalid, instructions.EvexVshufi32x4YmmK1zYmmYmmm256B32Imm8, instructions.EvexVshufi32x4ZmmK1zZmmZmmm512B32Imm8}, {instructions.Invalid, instructions.EvexVshufi64x2YmmK1zYmmYmmm256B64Imm8, instructions.EvexVshufi64x2ZmmK1zZmmZmmm512B64Imm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt256, memorysize.UInt512}, {memorysize.Unknown, memorysize.UInt256, memorysize.UInt512}}, Broadcast: [2]memorysize.MemorySize{memorysize.BroadcastUInt32, memorysize.BroadcastUInt64}}, // 1432
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.EvexVpclmulqdqXmmXmmXmmm128Imm8, instructions.EvexVpclmulqdqYmmYmmYmmm256Imm8, instructions.EvexVpclmulqdqZmmZmmZmmm512Imm8}, {instructions.EvexVpclmulqdqXmmXmmXmmm128Imm8, instructions.EvexVpclmulqdqYmmYmmYmmm256Imm8, instructions.EvexVpclmulqdqZmmZmmZmmm512Imm8}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}, {memorysize.UInt128, memorysize.UInt256, memorysize.UInt512}}}, // 1433
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVmovupsXmmXmmm128, instructions.VexVmovupsYmmYmmm256, instructions.Invalid}, {instructions.VexVmovupsXmmXmmm128, instructions.VexVmovupsYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1434
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.VexVmovupsXmmm128Xmm, instructions.VexVmovupsYmmm256Ymm, instructions.Invalid}, {instructions.VexVmovupsXmmm128Xmm, instructions.VexVmovupsYmmm256Ymm, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1435
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpVX, OpHX, OpM}, Codes: Codes{{instructions.VexVmovlpsXmmXmmM64, instructions.Invalid, instructions.Invalid}, {instructions.VexVmovlpsXmmXmmM64, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}}}, // 1436
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpVX, OpHX, OpUX}, Codes: Codes{{instructions.VexVmovhlpsXmmXmmXmm, instructions.Invalid, instructions.Invalid}, {instructions.VexVmovhlpsXmmXmmXmm, instructions.Invalid, instructions.Invalid}}}, // 1437
	{Kind: KindGroup, Flags: FlagModRM, Group: 94}, // 1438
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpM, OpVX}, Codes: Codes{{instructions.VexVmovlpsM64Xmm, instructions.Invalid, instructions.Invalid}, {instructions.VexVmovlpsM64Xmm, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}}}, // 1439
	{Kind: KindGroup, Flags: FlagModRM, Group: 95}, // 1440
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVunpcklpsXmmXmmXmmm128, instructions.VexVunpcklpsYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVunpcklpsXmmXmmXmmm128, instructions.VexVunpcklpsYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1441
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVunpckhpsXmmXmmXmmm128, instructions.VexVunpckhpsYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVunpckhpsXmmXmmXmmm128, instructions.VexVunpckhpsYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1442
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpVX, OpHX, OpM}, Codes: Codes{{instructions.VexVmovhpsXmmXmmM64, instructions.Invalid, instructions.Invalid}, {instructions.VexVmovhpsXmmXmmM64, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}}}, // 1443
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpVX, OpHX, OpUX}, Codes: Codes{{instructions.VexVmovlhpsXmmXmmXmm, instructions.Invalid, instructions.Invalid}, {instructions.VexVmovlhpsXmmXmmXmm, instructions.Invalid, instructions.Invalid}}}, // 1444
	{Kind: KindGroup, Flags: FlagModRM, Group: 96}, // 1445
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpM, OpVX}, Codes: Codes{{instructions.VexVmovhpsM64Xmm, instructions.Invalid, instructions.Invalid}, {instructions.VexVmovhpsM64Xmm, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}}}, // 1446
	{Kind: KindGroup, Flags: FlagModRM, Group: 97}, // 1447
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVmovapsXmmXmmm128, instructions.VexVmovapsYmmYmmm256, instructions.Invalid}, {instructions.VexVmovapsXmmXmmm128, instructions.VexVmovapsYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1448
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.VexVmovapsXmmm128Xmm, instructions.VexVmovapsYmmm256Ymm, instructions.Invalid}, {instructions.VexVmovapsXmmm128Xmm, instructions.VexVmovapsYmmm256Ymm, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1449
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpM, OpV}, Codes: Codes{{instructions.VexVmovntpsM128Xmm, instructions.VexVmovntpsM256Ymm, instructions.Invalid}, {instructions.VexVmovntpsM128Xmm, instructions.VexVmovntpsM256Ymm, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1450
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpVX, OpWX}, Codes: Codes{{instructions.VexVucomissXmmXmmm32, instructions.VexVucomissXmmXmmm32, instructions.Invalid}, {instructions.VexVucomissXmmXmmm32, instructions.VexVucomissXmmXmmm32, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float32, memorysize.Float32, memorysize.Unknown}}}, // 1451
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpVX, OpWX}, Codes: Codes{{instructions.VexVcomissXmmXmmm32, instructions.VexVcomissXmmXmmm32, instructions.Invalid}, {instructions.VexVcomissXmmXmmm32, instructions.VexVcomissXmmXmmm32, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float32, memorysize.Float32, memorysize.Unknown}}}, // 1452
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpK, OpKH, OpKR}, Codes: Codes{{instructions.Invalid, instructions.VexKandwKrKrKr, instructions.Invalid}}}, // 1453
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3 | FlagNoVvvv, Operands: Operands{OpK, OpKR}, Codes: Codes{{instructions.VexKnotwKrKr, instructions.Invalid, instructions.Invalid}}}, // 1454
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpK, OpKH, OpKR}, Codes: Codes{{instructions.Invalid, instructions.VexKorwKrKrKr, instructions.Invalid}}}, // 1455
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpK, OpKH, OpKR}, Codes: Codes{{instructions.Invalid, instructions.VexKxorwKrKrKr, instructions.Invalid}}}, // 1456
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3 | FlagNoVvvv, Operands: Operands{OpGy, OpU}, Codes: Codes{{instructions.VexVmovmskpsR32Xmm, instructions.VexVmovmskpsR32Ymm, instructions.Invalid}, {instructions.VexVmovmskpsR32Xmm, instructions.VexVmovmskpsR32Ymm, instructions.Invalid}}}, // 1457
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVsqrtpsXmmXmmm128, instructions.VexVsqrtpsYmmYmmm256, instructions.Invalid}, {instructions.VexVsqrtpsXmmXmmm128, instructions.VexVsqrtpsYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1458
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVrsqrtpsXmmXmmm128, instructions.VexVrsqrtpsYmmYmmm256, instructions.Invalid}, {instructions.VexVrsqrtpsXmmXmmm128, instructions.VexVrsqrtpsYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1459
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVrcppsXmmXmmm128, instructions.VexVrcppsYmmYmmm256, instructions.Invalid}, {instructions.VexVrcppsXmmXmmm128, instructions.VexVrcppsYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1460
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVandpsXmmXmmXmmm128, instructions.VexVandpsYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVandpsXmmXmmXmmm128, instructions.VexVandpsYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1461
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVandnpsXmmXmmXmmm128, instructions.VexVandnpsYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVandnpsXmmXmmXmmm128, instructions.VexVandnpsYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1462
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVorpsXmmXmmXmmm128, instructions.VexVorpsYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVorpsXmmXmmXmmm128, instructions.VexVorpsYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1463
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVxorpsXmmXmmXmmm128, instructions.VexVxorpsYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVxorpsXmmXmmXmmm128, instructions.VexVxorpsYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1464
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVaddpsXmmXmmXmmm128, instructions.VexVaddpsYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVaddpsXmmXmmXmmm128, instructions.VexVaddpsYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1465
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVmulpsXmmXmmXmmm128, instructions.VexVmulpsYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVmulpsXmmXmmXmmm128, instructions.VexVmulpsYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1466
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWh}, Codes: Codes{{instructions.VexVcvtps2pdXmmXmmm64, instructions.VexVcvtps2pdYmmXmmm128, instructions.Invalid}, {instructions.VexVcvtps2pdXmmXmmm64, instructions.VexVcvtps2pdYmmXmmm128, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed64Float32, memorysize.Packed128Float32, memorysize.Unknown}, {memorysize.Packed64Float32, memorysize.Packed128Float32, memorysize.Unknown}}}, // 1467
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVcvtdq2psXmmXmmm128, instructions.VexVcvtdq2psYmmYmmm256, instructions.Invalid}, {instructions.VexVcvtdq2psXmmXmmm128, instructions.VexVcvtdq2psYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1468
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVsubpsXmmXmmXmmm128, instructions.VexVsubpsYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVsubpsXmmXmmXmmm128, instructions.VexVsubpsYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1469
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVminpsXmmXmmXmmm128, instructions.VexVminpsYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVminpsXmmXmmXmmm128, instructions.VexVminpsYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1470
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVdivpsXmmXmmXmmm128, instructions.VexVdivpsYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVdivpsXmmXmmXmmm128, instructions.VexVdivpsYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1471
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVmaxpsXmmXmmXmmm128, instructions.VexVmaxpsYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVmaxpsXmmXmmXmmm128, instructions.VexVmaxpsYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1472
	{Kind: KindNormal, Flags: FlagNoVvvv, Codes: Codes{{instructions.VexVzeroupper, instructions.VexVzeroall, instructions.Invalid}, {instructions.VexVzeroupper, instructions.VexVzeroall, instructions.Invalid}}}, // 1473
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpK, OpKM}, Codes: Codes{{instructions.VexKmovwKrKm16, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt16, memorysize.Unknown, memorysize.Unknown}}}, // 1474
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpM, OpK}, Codes: Codes{{instructions.VexKmovwM16Kr, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt16, memorysize.Unknown, memorysize.Unknown}}}, // 1475
	{Kind: KindGroup, Flags: FlagModRM, Group: 98}, // 1476
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3 | FlagNoVvvv, Operands: Operands{OpK, OpRd}, Codes: Codes{{instructions.VexKmovwKrR32, instructions.Invalid, instructions.Invalid}}}, // 1477
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3 | FlagNoVvvv, Operands: Operands{OpGd, OpKR}, Codes: Codes{{instructions.VexKmovwR32Kr, instructions.Invalid, instructions.Invalid}}}, // 1478
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3 | FlagNoVvvv, Operands: Operands{OpK, OpKR}, Codes: Codes{{instructions.VexKortestwKrKr, instructions.Invalid, instructions.Invalid}}}, // 1479
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpM}, Codes: Codes{{instructions.VexVldmxcsrM32, instructions.Invalid, instructions.Invalid}, {instructions.VexVldmxcsrM32, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt32, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt32, memorysize.Unknown, memorysize.Unknown}}}, // 1480
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpM}, Codes: Codes{{instructions.VexVstmxcsrM32, instructions.Invalid, instructions.Invalid}, {instructions.VexVstmxcsrM32, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt32, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt32, memorysize.Unknown, memorysize.Unknown}}}, // 1481
	{Kind: KindGroup, Flags: FlagModRM, Group: 99}, // 1482
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.VexVcmppsXmmXmmXmmm128Imm8, instructions.VexVcmppsYmmYmmYmmm256Imm8, instructions.Invalid}, {instructions.VexVcmppsXmmXmmXmmm128Imm8, instructions.VexVcmppsYmmYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1483
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.VexVshufpsXmmXmmXmmm128Imm8, instructions.VexVshufpsYmmYmmYmmm256Imm8, instructions.Invalid}, {instructions.VexVshufpsXmmXmmXmmm128Imm8, instructions.VexVshufpsYmmYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1484
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVmovupdXmmXmmm128, instructions.VexVmovupdYmmYmmm256, instructions.Invalid}, {instructions.VexVmovupdXmmXmmm128, instructions.VexVmovupdYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1485
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.VexVmovupdXmmm128Xmm, instructions.VexVmovupdYmmm256Ymm, instructions.Invalid}, {instructions.VexVmovupdXmmm128Xmm, instructions.VexVmovupdYmmm256Ymm, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1486
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpVX, OpHX, OpM}, Codes: Codes{{instructions.VexVmovlpdXmmXmmM64, instructions.Invalid, instructions.Invalid}, {instructions.VexVmovlpdXmmXmmM64, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}}}, // 1487
	{Kind: KindGroup, Flags: FlagModRM, Group: 100}, // 1488
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpM, OpVX}, Codes: Codes{{instructions.VexVmovlpdM64Xmm, instructions.Invalid, instructions.Invalid}, {instructions.VexVmovlpdM64Xmm, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}}}, // 1489
	{Kind: KindGroup, Flags: FlagModRM, Group: 101}, // 1490
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVunpcklpdXmmXmmXmmm128, instructions.VexVunpcklpdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVunpcklpdXmmXmmXmmm128, instructions.VexVunpcklpdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1491
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVunpckhpdXmmXmmXmmm128, instructions.VexVunpckhpdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVunpckhpdXmmXmmXmmm128, instructions.VexVunpckhpdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1492
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpVX, OpHX, OpM}, Codes: Codes{{instructions.VexVmovhpdXmmXmmM64, instructions.Invalid, instructions.Invalid}, {instructions.VexVmovhpdXmmXmmM64, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}}}, // 1493
	{Kind: KindGroup, Flags: FlagModRM, Group: 102}, // 1494
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpM, OpVX}, Codes: Codes{{instructions.VexVmovhpdM64Xmm, instructions.Invalid, instructions.Invalid}, {instructions.VexVmovhpdM64Xmm, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}}}, // 1495
	{Kind: KindGroup, Flags: FlagModRM, Group: 103}, // 1496
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVmovapdXmmXmmm128, instructions.VexVmovapdYmmYmmm256, instructions.Invalid}, {instructions.VexVmovapdXmmXmmm128, instructions.VexVmovapdYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1497
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.VexVmovapdXmmm128Xmm, instructions.VexVmovapdYmmm256Ymm, instructions.Invalid}, {instructions.VexVmovapdXmmm128Xmm, instructions.VexVmovapdYmmm256Ymm, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1498
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpM, OpV}, Codes: Codes{{instructions.VexVmovntpdM128Xmm, instructions.VexVmovntpdM256Ymm, instructions.Invalid}, {instructions.VexVmovntpdM128Xmm, instructions.VexVmovntpdM256Ymm, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1499
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpVX, OpWX}, Codes: Codes{{instructions.VexVucomisdXmmXmmm64, instructions.VexVucomisdXmmXmmm64, instructions.Invalid}, {instructions.VexVucomisdXmmXmmm64, instructions.VexVucomisdXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1500
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpVX, OpWX}, Codes: Codes{{instructions.VexVcomisdXmmXmmm64, instructions.VexVcomisdXmmXmmm64, instructions.Invalid}, {instructions.VexVcomisdXmmXmmm64, instructions.VexVcomisdXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1501
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3 | FlagNoVvvv, Operands: Operands{OpGy, OpU}, Codes: Codes{{instructions.VexVmovmskpdR32Xmm, instructions.VexVmovmskpdR32Ymm, instructions.Invalid}, {instructions.VexVmovmskpdR32Xmm, instructions.VexVmovmskpdR32Ymm, instructions.Invalid}}}, // 1502
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVsqrtpdXmmXmmm128, instructions.VexVsqrtpdYmmYmmm256, instructions.Invalid}, {instructions.VexVsqrtpdXmmXmmm128, instructions.VexVsqrtpdYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1503
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVandpdXmmXmmXmmm128, instructions.VexVandpdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVandpdXmmXmmXmmm128, instructions.VexVandpdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1504
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVandnpdXmmXmmXmmm128, instructions.VexVandnpdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVandnpdXmmXmmXmmm128, instructions.VexVandnpdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1505
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVorpdXmmXmmXmmm128, instructions.VexVorpdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVorpdXmmXmmXmmm128, instructions.VexVorpdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1506
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVxorpdXmmXmmXmmm128, instructions.VexVxorpdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVxorpdXmmXmmXmmm128, instructions.VexVxorpdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1507
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVaddpdXmmXmmXmmm128, instructions.VexVaddpdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVaddpdXmmXmmXmmm128, instructions.VexVaddpdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1508
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVmulpdXmmXmmXmmm128, instructions.VexVmulpdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVmulpdXmmXmmXmmm128, instructions.VexVmulpdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1509
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpVX, OpW}, Codes: Codes{{instructions.VexVcvtpd2psXmmXmmm128, instructions.VexVcvtpd2psXmmYmmm256, instructions.Invalid}, {instructions.VexVcvtpd2psXmmXmmm128, instructions.VexVcvtpd2psXmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1510
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVcvtps2dqXmmXmmm128, instructions.VexVcvtps2dqYmmYmmm256, instructions.Invalid}, {instructions.VexVcvtps2dqXmmXmmm128, instructions.VexVcvtps2dqYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1511
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVsubpdXmmXmmXmmm128, instructions.VexVsubpdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVsubpdXmmXmmXmmm128, instructions.VexVsubpdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1512
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVminpdXmmXmmXmmm128, instructions.VexVminpdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVminpdXmmXmmXmmm128, instructions.VexVminpdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1513
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVdivpdXmmXmmXmmm128, instructions.VexVdivpdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVdivpdXmmXmmXmmm128, instructions.VexVdivpdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1514
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVmaxpdXmmXmmXmmm128, instructions.VexVmaxpdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVmaxpdXmmXmmXmmm128, instructions.VexVmaxpdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1515
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpunpcklbwXmmXmmXmmm128, instructions.VexVpunpcklbwYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpunpcklbwXmmXmmXmmm128, instructions.VexVpunpcklbwYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1516
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpunpcklwdXmmXmmXmmm128, instructions.VexVpunpcklwdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpunpcklwdXmmXmmXmmm128, instructions.VexVpunpcklwdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1517
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpunpckldqXmmXmmXmmm128, instructions.VexVpunpckldqYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpunpckldqXmmXmmXmmm128, instructions.VexVpunpckldqYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1518
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpacksswbXmmXmmXmmm128, instructions.VexVpacksswbYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpacksswbXmmXmmXmmm128, instructions.VexVpacksswbYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1519
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpcmpgtbXmmXmmXmmm128, instructions.VexVpcmpgtbYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpcmpgtbXmmXmmXmmm128, instructions.VexVpcmpgtbYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1520
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpcmpgtwXmmXmmXmmm128, instructions.VexVpcmpgtwYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpcmpgtwXmmXmmXmmm128, instructions.VexVpcmpgtwYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1521
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpcmpgtdXmmXmmXmmm128, instructions.VexVpcmpgtdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpcmpgtdXmmXmmXmmm128, instructions.VexVpcmpgtdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1522
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpackuswbXmmXmmXmmm128, instructions.VexVpackuswbYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpackuswbXmmXmmXmmm128, instructions.VexVpackuswbYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1523
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpunpckhbwXmmXmmXmmm128, instructions.VexVpunpckhbwYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpunpckhbwXmmXmmXmmm128, instructions.VexVpunpckhbwYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1524
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpunpckhwdXmmXmmXmmm128, instructions.VexVpunpckhwdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpunpckhwdXmmXmmXmmm128, instructions.VexVpunpckhwdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1525
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpunpckhdqXmmXmmXmmm128, instructions.VexVpunpckhdqYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpunpckhdqXmmXmmXmmm128, instructions.VexVpunpckhdqYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1526
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpackssdwXmmXmmXmmm128, instructions.VexVpackssdwYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpackssdwXmmXmmXmmm128, instructions.VexVpackssdwYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1527
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpunpcklqdqXmmXmmXmmm128, instructions.VexVpunpcklqdqYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpunpcklqdqXmmXmmXmmm128, instructions.VexVpunpcklqdqYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1528
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpunpckhqdqXmmXmmXmmm128, instructions.VexVpunpckhqdqYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpunpckhqdqXmmXmmXmmm128, instructions.VexVpunpckhqdqYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1529
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR | FlagL0, Operands: Operands{OpVX, OpEy}, Codes: Codes{{instructions.Invalid, instructions.VexVmovdXmmRm32, instructions.VexVmovqXmmRm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1530
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVmovdqaXmmXmmm128, instructions.VexVmovdqaYmmYmmm256, instructions.Invalid}, {instructions.VexVmovdqaXmmXmmm128, instructions.VexVmovdqaYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1531
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.VexVpshufdXmmXmmm128Imm8, instructions.VexVpshufdYmmYmmm256Imm8, instructions.Invalid}, {instructions.VexVpshufdXmmXmmm128Imm8, instructions.VexVpshufdYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1532
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpH, OpU, OpIb}, Codes: Codes{{instructions.VexVpsrlwXmmXmmImm8, instructions.VexVpsrlwYmmYmmImm8, instructions.Invalid}, {instructions.VexVpsrlwXmmXmmImm8, instructions.VexVpsrlwYmmYmmImm8, instructions.Invalid}}}, // 1533
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpH, OpU, OpIb}, Codes: Codes{{instructions.VexVpsrawXmmXmmImm8, instructions.VexVpsrawYmmYmmImm8, instructions.Invalid}, {instructions.VexVpsrawXmmXmmImm8, instructions.VexVpsrawYmmYmmImm8, instructions.Invalid}}}, // 1534
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpH, OpU, OpIb}, Codes: Codes{{instructions.VexVpsllwXmmXmmImm8, instructions.VexVpsllwYmmYmmImm8, instructions.Invalid}, {instructions.VexVpsllwXmmXmmImm8, instructions.VexVpsllwYmmYmmImm8, instructions.Invalid}}}, // 1535
	{Kind: KindGroup, Flags: FlagModRM, Group: 104}, // 1536
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpH, OpU, OpIb}, Codes: Codes{{instructions.VexVpsrldXmmXmmImm8, instructions.VexVpsrldYmmYmmImm8, instructions.Invalid}, {instructions.VexVpsrldXmmXmmImm8, instructions.VexVpsrldYmmYmmImm8, instructions.Invalid}}}, // 1537
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpH, OpU, OpIb}, Codes: Codes{{instructions.VexVpsradXmmXmmImm8, instructions.VexVpsradYmmYmmImm8, instructions.Invalid}, {instructions.VexVpsradXmmXmmImm8, instructions.VexVpsradYmmYmmImm8, instructions.Invalid}}}, // 1538
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpH, OpU, OpIb}, Codes: Codes{{instructions.VexVpslldXmmXmmImm8, instructions.VexVpslldYmmYmmImm8, instructions.Invalid}, {instructions.VexVpslldXmmXmmImm8, instructions.VexVpslldYmmYmmImm8, instructions.Invalid}}}, // 1539
	{Kind: KindGroup, Flags: FlagModRM, Group: 105}, // 1540
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpH, OpU, OpIb}, Codes: Codes{{instructions.VexVpsrlqXmmXmmImm8, instructions.VexVpsrlqYmmYmmImm8, instructions.Invalid}, {instructions.VexVpsrlqXmmXmmImm8, instructions.VexVpsrlqYmmYmmImm8, instructions.Invalid}}}, // 1541
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpH, OpU, OpIb}, Codes: Codes{{instructions.VexVpsrldqXmmXmmImm8, instructions.VexVpsrldqYmmYmmImm8, instructions.Invalid}, {instructions.VexVpsrldqXmmXmmImm8, instructions.VexVpsrldqYmmYmmImm8, instructions.Invalid}}}, // 1542
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpH, OpU, OpIb}, Codes: Codes{{instructions.VexVpsllqXmmXmmImm8, instructions.VexVpsllqYmmYmmImm8, instructions.Invalid}, {instructions.VexVpsllqXmmXmmImm8, instructions.VexVpsllqYmmYmmImm8, instructions.Invalid}}}, // 1543
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpH, OpU, OpIb}, Codes: Codes{{instructions.VexVpslldqXmmXmmImm8, instructions.VexVpslldqYmmYmmImm8, instructions.Invalid}, {instructions.VexVpslldqXmmXmmImm8, instructions.VexVpslldqYmmYmmImm8, instructions.Invalid}}}, // 1544
	{Kind: KindGroup, Flags: FlagModRM, Group: 106}, // 1545
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpcmpeqbXmmXmmXmmm128, instructions.VexVpcmpeqbYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpcmpeqbXmmXmmXmmm128, instructions.VexVpcmpeqbYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1546
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpcmpeqwXmmXmmXmmm128, instructions.VexVpcmpeqwYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpcmpeqwXmmXmmXmmm128, instructions.VexVpcmpeqwYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1547
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpcmpeqdXmmXmmXmmm128, instructions.VexVpcmpeqdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpcmpeqdXmmXmmXmmm128, instructions.VexVpcmpeqdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1548
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVhaddpdXmmXmmXmmm128, instructions.VexVhaddpdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVhaddpdXmmXmmXmmm128, instructions.VexVhaddpdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1549
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVhsubpdXmmXmmXmmm128, instructions.VexVhsubpdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVhsubpdXmmXmmXmmm128, instructions.VexVhsubpdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1550
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR | FlagL0, Operands: Operands{OpEy, OpVX}, Codes: Codes{{instructions.Invalid, instructions.VexVmovdRm32Xmm, instructions.VexVmovqRm64Xmm}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1551
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.VexVmovdqaXmmm128Xmm, instructions.VexVmovdqaYmmm256Ymm, instructions.Invalid}, {instructions.VexVmovdqaXmmm128Xmm, instructions.VexVmovdqaYmmm256Ymm, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1552
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.VexVcmppdXmmXmmXmmm128Imm8, instructions.VexVcmppdYmmYmmYmmm256Imm8, instructions.Invalid}, {instructions.VexVcmppdXmmXmmXmmm128Imm8, instructions.VexVcmppdYmmYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1553
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpVX, OpHX, OpRyM, OpIb}, Codes: Codes{{instructions.Invalid, instructions.VexVpinsrwXmmXmmR32m16Imm8, instructions.VexVpinsrwXmmXmmR64m16Imm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt16, memorysize.UInt16}}}, // 1554
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3 | FlagNoVvvv | FlagVexGPR | FlagL0, Operands: Operands{OpGy, OpUX, OpIb}, Codes: Codes{{instructions.Invalid, instructions.VexVpextrwR32XmmImm8, instructions.VexVpextrwR64XmmImm8}}}, // 1555
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.VexVshufpdXmmXmmXmmm128Imm8, instructions.VexVshufpdYmmYmmYmmm256Imm8, instructions.Invalid}, {instructions.VexVshufpdXmmXmmXmmm128Imm8, instructions.VexVshufpdYmmYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1556
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVaddsubpdXmmXmmXmmm128, instructions.VexVaddsubpdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVaddsubpdXmmXmmXmmm128, instructions.VexVaddsubpdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1557
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpWX}, Codes: Codes{{instructions.VexVpsrlwXmmXmmXmmm128, instructions.VexVpsrlwYmmYmmXmmm128, instructions.Invalid}, {instructions.VexVpsrlwXmmXmmXmmm128, instructions.VexVpsrlwYmmYmmXmmm128, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt128, memorysize.Unknown}}}, // 1558
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpWX}, Codes: Codes{{instructions.VexVpsrldXmmXmmXmmm128, instructions.VexVpsrldYmmYmmXmmm128, instructions.Invalid}, {instructions.VexVpsrldXmmXmmXmmm128, instructions.VexVpsrldYmmYmmXmmm128, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt128, memorysize.Unknown}}}, // 1559
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpWX}, Codes: Codes{{instructions.VexVpsrlqXmmXmmXmmm128, instructions.VexVpsrlqYmmYmmXmmm128, instructions.Invalid}, {instructions.VexVpsrlqXmmXmmXmmm128, instructions.VexVpsrlqYmmYmmXmmm128, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt128, memorysize.Unknown}}}, // 1560
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpaddqXmmXmmXmmm128, instructions.VexVpaddqYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpaddqXmmXmmXmmm128, instructions.VexVpaddqYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1561
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpmullwXmmXmmXmmm128, instructions.VexVpmullwYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpmullwXmmXmmXmmm128, instructions.VexVpmullwYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1562
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpWX, OpVX}, Codes: Codes{{instructions.VexVmovqXmmm64Xmm, instructions.Invalid, instructions.Invalid}, {instructions.VexVmovqXmmm64Xmm, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}}}, // 1563
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3 | FlagNoVvvv, Operands: Operands{OpGy, OpU}, Codes: Codes{{instructions.VexVpmovmskbR32Xmm, instructions.VexVpmovmskbR32Ymm, instructions.Invalid}, {instructions.VexVpmovmskbR32Xmm, instructions.VexVpmovmskbR32Ymm, instructions.Invalid}}}, // 1564
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpsubusbXmmXmmXmmm128, instructions.VexVpsubusbYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpsubusbXmmXmmXmmm128, instructions.VexVpsubusbYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1565
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpsubuswXmmXmmXmmm128, instructions.VexVpsubuswYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpsubuswXmmXmmXmmm128, instructions.VexVpsubuswYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1566
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpminubXmmXmmXmmm128, instructions.VexVpminubYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpminubXmmXmmXmmm128, instructions.VexVpminubYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1567
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpandXmmXmmXmmm128, instructions.VexVpandYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpandXmmXmmXmmm128, instructions.VexVpandYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1568
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpaddusbXmmXmmXmmm128, instructions.VexVpaddusbYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpaddusbXmmXmmXmmm128, instructions.VexVpaddusbYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1569
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpadduswXmmXmmXmmm128, instructions.VexVpadduswYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpadduswXmmXmmXmmm128, instructions.VexVpadduswYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1570
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpmaxubXmmXmmXmmm128, instructions.VexVpmaxubYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpmaxubXmmXmmXmmm128, instructions.VexVpmaxubYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1571
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpandnXmmXmmXmmm128, instructions.VexVpandnYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpandnXmmXmmXmmm128, instructions.VexVpandnYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1572
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpavgbXmmXmmXmmm128, instructions.VexVpavgbYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpavgbXmmXmmXmmm128, instructions.VexVpavgbYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1573
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpWX}, Codes: Codes{{instructions.VexVpsrawXmmXmmXmmm128, instructions.VexVpsrawYmmYmmXmmm128, instructions.Invalid}, {instructions.VexVpsrawXmmXmmXmmm128, instructions.VexVpsrawYmmYmmXmmm128, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt128, memorysize.Unknown}}}, // 1574
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpWX}, Codes: Codes{{instructions.VexVpsradXmmXmmXmmm128, instructions.VexVpsradYmmYmmXmmm128, instructions.Invalid}, {instructions.VexVpsradXmmXmmXmmm128, instructions.VexVpsradYmmYmmXmmm128, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt128, memorysize.Unknown}}}, // 1575
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpavgwXmmXmmXmmm128, instructions.VexVpavgwYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpavgwXmmXmmXmmm128, instructions.VexVpavgwYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1576
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpmulhuwXmmXmmXmmm128, instructions.VexVpmulhuwYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpmulhuwXmmXmmXmmm128, instructions.VexVpmulhuwYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1577
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpmulhwXmmXmmXmmm128, instructions.VexVpmulhwYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpmulhwXmmXmmXmmm128, instructions.VexVpmulhwYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1578
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpVX, OpW}, Codes: Codes{{instructions.VexVcvttpd2dqXmmXmmm128, instructions.VexVcvttpd2dqXmmYmmm256, instructions.Invalid}, {instructions.VexVcvttpd2dqXmmXmmm128, instructions.VexVcvttpd2dqXmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1579
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpM, OpV}, Codes: Codes{{instructions.VexVmovntdqM128Xmm, instructions.VexVmovntdqM256Ymm, instructions.Invalid}, {instructions.VexVmovntdqM128Xmm, instructions.VexVmovntdqM256Ymm, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1580
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpsubsbXmmXmmXmmm128, instructions.VexVpsubsbYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpsubsbXmmXmmXmmm128, instructions.VexVpsubsbYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1581
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpsubswXmmXmmXmmm128, instructions.VexVpsubswYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpsubswXmmXmmXmmm128, instructions.VexVpsubswYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1582
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpminswXmmXmmXmmm128, instructions.VexVpminswYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpminswXmmXmmXmmm128, instructions.VexVpminswYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1583
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVporXmmXmmXmmm128, instructions.VexVporYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVporXmmXmmXmmm128, instructions.VexVporYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1584
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpaddsbXmmXmmXmmm128, instructions.VexVpaddsbYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpaddsbXmmXmmXmmm128, instructions.VexVpaddsbYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1585
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpaddswXmmXmmXmmm128, instructions.VexVpaddswYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpaddswXmmXmmXmmm128, instructions.VexVpaddswYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1586
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpmaxswXmmXmmXmmm128, instructions.VexVpmaxswYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpmaxswXmmXmmXmmm128, instructions.VexVpmaxswYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1587
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpxorXmmXmmXmmm128, instructions.VexVpxorYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpxorXmmXmmXmmm128, instructions.VexVpxorYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1588
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpWX}, Codes: Codes{{instructions.VexVpsllwXmmXmmXmmm128, instructions.VexVpsllwYmmYmmXmmm128, instructions.Invalid}, {instructions.VexVpsllwXmmXmmXmmm128, instructions.VexVpsllwYmmYmmXmmm128, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt128, memorysize.Unknown}}}, // 1589
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpWX}, Codes: Codes{{instructions.VexVpslldXmmXmmXmmm128, instructions.VexVpslldYmmYmmXmmm128, instructions.Invalid}, {instructions.VexVpslldXmmXmmXmmm128, instructions.VexVpslldYmmYmmXmmm128, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt128, memorysize.Unknown}}}, // 1590
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpWX}, Codes: Codes{{instructions.VexVpsllqXmmXmmXmmm128, instructions.VexVpsllqYmmYmmXmmm128, instructions.Invalid}, {instructions.VexVpsllqXmmXmmXmmm128, instructions.VexVpsllqYmmYmmXmmm128, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt128, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt128, memorysize.Unknown}}}, // 1591
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpmuludqXmmXmmXmmm128, instructions.VexVpmuludqYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpmuludqXmmXmmXmmm128, instructions.VexVpmuludqYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1592
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpmaddwdXmmXmmXmmm128, instructions.VexVpmaddwdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpmaddwdXmmXmmXmmm128, instructions.VexVpmaddwdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1593
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpsadbwXmmXmmXmmm128, instructions.VexVpsadbwYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpsadbwXmmXmmXmmm128, instructions.VexVpsadbwYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1594
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3 | FlagNoVvvv, Operands: Operands{OpVX, OpUX}, Codes: Codes{{instructions.VexVmaskmovdquXmmXmm, instructions.Invalid, instructions.Invalid}, {instructions.VexVmaskmovdquXmmXmm, instructions.Invalid, instructions.Invalid}}}, // 1595
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpsubbXmmXmmXmmm128, instructions.VexVpsubbYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpsubbXmmXmmXmmm128, instructions.VexVpsubbYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1596
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpsubwXmmXmmXmmm128, instructions.VexVpsubwYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpsubwXmmXmmXmmm128, instructions.VexVpsubwYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1597
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpsubdXmmXmmXmmm128, instructions.VexVpsubdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpsubdXmmXmmXmmm128, instructions.VexVpsubdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1598
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpsubqXmmXmmXmmm128, instructions.VexVpsubqYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpsubqXmmXmmXmmm128, instructions.VexVpsubqYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1599
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpaddbXmmXmmXmmm128, instructions.VexVpaddbYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpaddbXmmXmmXmmm128, instructions.VexVpaddbYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1600
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpaddwXmmXmmXmmm128, instructions.VexVpaddwYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpaddwXmmXmmXmmm128, instructions.VexVpaddwYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1601
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpadddXmmXmmXmmm128, instructions.VexVpadddYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpadddXmmXmmXmmm128, instructions.VexVpadddYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1602
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpVX, OpM}, Codes: Codes{{instructions.VexVmovssXmmM32, instructions.VexVmovssXmmM32, instructions.Invalid}, {instructions.VexVmovssXmmM32, instructions.VexVmovssXmmM32, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.Unknown}, {memorysize.UInt32, memorysize.UInt32, memorysize.Unknown}}}, // 1603
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpVX, OpHX, OpUX}, Codes: Codes{{instructions.VexVmovssXmmXmmXmm, instructions.VexVmovssXmmXmmXmm, instructions.Invalid}, {instructions.VexVmovssXmmXmmXmm, instructions.VexVmovssXmmXmmXmm, instructions.Invalid}}}, // 1604
	{Kind: KindGroup, Flags: FlagModRM, Group: 107}, // 1605
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpM, OpVX}, Codes: Codes{{instructions.VexVmovssM32Xmm, instructions.VexVmovssM32Xmm, instructions.Invalid}, {instructions.VexVmovssM32Xmm, instructions.VexVmovssM32Xmm, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.Unknown}, {memorysize.UInt32, memorysize.UInt32, memorysize.Unknown}}}, // 1606
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpUX, OpHX, OpVX}, Codes: Codes{{instructions.VexVmovssXmmXmmXmmOp0F11, instructions.VexVmovssXmmXmmXmmOp0F11, instructions.Invalid}, {instructions.VexVmovssXmmXmmXmmOp0F11, instructions.VexVmovssXmmXmmXmmOp0F11, instructions.Invalid}}}, // 1607
	{Kind: KindGroup, Flags: FlagModRM, Group: 108}, // 1608
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVmovsldupXmmXmmm128, instructions.VexVmovsldupYmmYmmm256, instructions.Invalid}, {instructions.VexVmovsldupXmmXmmm128, instructions.VexVmovsldupYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1609
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVmovshdupXmmXmmm128, instructions.VexVmovshdupYmmYmmm256, instructions.Invalid}, {instructions.VexVmovshdupXmmXmmm128, instructions.VexVmovshdupYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1610
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR, Operands: Operands{OpVX, OpHX, OpEy}, Codes: Codes{{instructions.Invalid, instructions.VexVcvtsi2ssXmmXmmRm32, instructions.VexVcvtsi2ssXmmXmmRm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1611
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR, Operands: Operands{OpGy, OpWX}, Codes: Codes{{instructions.Invalid, instructions.VexVcvttss2siR32Xmmm32, instructions.VexVcvttss2siR64Xmmm32}}, Memory: Sizes{{memorysize.Unknown, memorysize.Float32, memorysize.Float32}}}, // 1612
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR, Operands: Operands{OpGy, OpWX}, Codes: Codes{{instructions.Invalid, instructions.VexVcvtss2siR32Xmmm32, instructions.VexVcvtss2siR64Xmmm32}}, Memory: Sizes{{memorysize.Unknown, memorysize.Float32, memorysize.Float32}}}, // 1613
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVsqrtssXmmXmmXmmm32, instructions.VexVsqrtssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVsqrtssXmmXmmXmmm32, instructions.VexVsqrtssXmmXmmXmmm32, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float32, memorysize.Float32, memorysize.Unknown}}}, // 1614
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVrsqrtssXmmXmmXmmm32, instructions.VexVrsqrtssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVrsqrtssXmmXmmXmmm32, instructions.VexVrsqrtssXmmXmmXmmm32, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float32, memorysize.Float32, memorysize.Unknown}}}, // 1615
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVrcpssXmmXmmXmmm32, instructions.VexVrcpssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVrcpssXmmXmmXmmm32, instructions.VexVrcpssXmmXmmXmmm32, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float32, memorysize.Float32, memorysize.Unknown}}}, // 1616
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVaddssXmmXmmXmmm32, instructions.VexVaddssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVaddssXmmXmmXmmm32, instructions.VexVaddssXmmXmmXmmm32, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float32, memorysize.Float32, memorysize.Unknown}}}, // 1617
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVmulssXmmXmmXmmm32, instructions.VexVmulssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVmulssXmmXmmXmmm32, instructions.VexVmulssXmmXmmXmmm32, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float32, memorysize.Float32, memorysize.Unknown}}}, // 1618
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVcvtss2sdXmmXmmXmmm32, instructions.VexVcvtss2sdXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVcvtss2sdXmmXmmXmmm32, instructions.VexVcvtss2sdXmmXmmXmmm32, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float32, memorysize.Float32, memorysize.Unknown}}}, // 1619
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVcvttps2dqXmmXmmm128, instructions.VexVcvttps2dqYmmYmmm256, instructions.Invalid}, {instructions.VexVcvttps2dqXmmXmmm128, instructions.VexVcvttps2dqYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1620
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVsubssXmmXmmXmmm32, instructions.VexVsubssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVsubssXmmXmmXmmm32, instructions.VexVsubssXmmXmmXmmm32, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float32, memorysize.Float32, memorysize.Unknown}}}, // 1621
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVminssXmmXmmXmmm32, instructions.VexVminssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVminssXmmXmmXmmm32, instructions.VexVminssXmmXmmXmmm32, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float32, memorysize.Float32, memorysize.Unknown}}}, // 1622
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVdivssXmmXmmXmmm32, instructions.VexVdivssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVdivssXmmXmmXmmm32, instructions.VexVdivssXmmXmmXmmm32, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float32, memorysize.Float32, memorysize.Unknown}}}, // 1623
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVmaxssXmmXmmXmmm32, instructions.VexVmaxssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVmaxssXmmXmmXmmm32, instructions.VexVmaxssXmmXmmXmmm32, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float32, memorysize.Float32, memorysize.Unknown}}}, // 1624
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVmovdquXmmXmmm128, instructions.VexVmovdquYmmYmmm256, instructions.Invalid}, {instructions.VexVmovdquXmmXmmm128, instructions.VexVmovdquYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1625
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.VexVpshufhwXmmXmmm128Imm8, instructions.VexVpshufhwYmmYmmm256Imm8, instructions.Invalid}, {instructions.VexVpshufhwXmmXmmm128Imm8, instructions.VexVpshufhwYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1626
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpVX, OpWX}, Codes: Codes{{instructions.VexVmovqXmmXmmm64, instructions.Invalid, instructions.Invalid}, {instructions.VexVmovqXmmXmmm64, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt64, memorysize.Unknown, memorysize.Unknown}}}, // 1627
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpW, OpV}, Codes: Codes{{instructions.VexVmovdquXmmm128Xmm, instructions.VexVmovdquYmmm256Ymm, instructions.Invalid}, {instructions.VexVmovdquXmmm128Xmm, instructions.VexVmovdquYmmm256Ymm, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1628
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX, OpIb}, Codes: Codes{{instructions.VexVcmpssXmmXmmXmmm32Imm8, instructions.VexVcmpssXmmXmmXmmm32Imm8, instructions.Invalid}, {instructions.VexVcmpssXmmXmmXmmm32Imm8, instructions.VexVcmpssXmmXmmXmmm32Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float32, memorysize.Float32, memorysize.Unknown}}}, // 1629
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWh}, Codes: Codes{{instructions.VexVcvtdq2pdXmmXmmm64, instructions.VexVcvtdq2pdYmmXmmm128, instructions.Invalid}, {instructions.VexVcvtdq2pdXmmXmmm64, instructions.VexVcvtdq2pdYmmXmmm128, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.Unknown}, {memorysize.UInt64, memorysize.UInt128, memorysize.Unknown}}}, // 1630
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpVX, OpM}, Codes: Codes{{instructions.VexVmovsdXmmM64, instructions.VexVmovsdXmmM64, instructions.Invalid}, {instructions.VexVmovsdXmmM64, instructions.VexVmovsdXmmM64, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.Unknown}, {memorysize.UInt64, memorysize.UInt64, memorysize.Unknown}}}, // 1631
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpVX, OpHX, OpUX}, Codes: Codes{{instructions.VexVmovsdXmmXmmXmm, instructions.VexVmovsdXmmXmmXmm, instructions.Invalid}, {instructions.VexVmovsdXmmXmmXmm, instructions.VexVmovsdXmmXmmXmm, instructions.Invalid}}}, // 1632
	{Kind: KindGroup, Flags: FlagModRM, Group: 109}, // 1633
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpM, OpVX}, Codes: Codes{{instructions.VexVmovsdM64Xmm, instructions.VexVmovsdM64Xmm, instructions.Invalid}, {instructions.VexVmovsdM64Xmm, instructions.VexVmovsdM64Xmm, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.Unknown}, {memorysize.UInt64, memorysize.UInt64, memorysize.Unknown}}}, // 1634
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3, Operands: Operands{OpUX, OpHX, OpVX}, Codes: Codes{{instructions.VexVmovsdXmmXmmXmmOp0F11, instructions.VexVmovsdXmmXmmXmmOp0F11, instructions.Invalid}, {instructions.VexVmovsdXmmXmmXmmOp0F11, instructions.VexVmovsdXmmXmmXmmOp0F11, instructions.Invalid}}}, // 1635
	{Kind: KindGroup, Flags: FlagModRM, Group: 110}, // 1636
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVmovddupXmmXmmm64, instructions.VexVmovddupYmmYmmm256, instructions.Invalid}, {instructions.VexVmovddupXmmXmmm64, instructions.VexVmovddupYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1637
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR, Operands: Operands{OpVX, OpHX, OpEy}, Codes: Codes{{instructions.Invalid, instructions.VexVcvtsi2sdXmmXmmRm32, instructions.VexVcvtsi2sdXmmXmmRm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1638
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR, Operands: Operands{OpGy, OpWX}, Codes: Codes{{instructions.Invalid, instructions.VexVcvttsd2siR32Xmmm64, instructions.VexVcvttsd2siR64Xmmm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Float64, memorysize.Float64}}}, // 1639
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR, Operands: Operands{OpGy, OpWX}, Codes: Codes{{instructions.Invalid, instructions.VexVcvtsd2siR32Xmmm64, instructions.VexVcvtsd2siR64Xmmm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.Float64, memorysize.Float64}}}, // 1640
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVsqrtsdXmmXmmXmmm64, instructions.VexVsqrtsdXmmXmmXmmm64, instructions.Invalid}, {instructions.VexVsqrtsdXmmXmmXmmm64, instructions.VexVsqrtsdXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1641
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVaddsdXmmXmmXmmm64, instructions.VexVaddsdXmmXmmXmmm64, instructions.Invalid}, {instructions.VexVaddsdXmmXmmXmmm64, instructions.VexVaddsdXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1642
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVmulsdXmmXmmXmmm64, instructions.VexVmulsdXmmXmmXmmm64, instructions.Invalid}, {instructions.VexVmulsdXmmXmmXmmm64, instructions.VexVmulsdXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1643
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVcvtsd2ssXmmXmmXmmm64, instructions.VexVcvtsd2ssXmmXmmXmmm64, instructions.Invalid}, {instructions.VexVcvtsd2ssXmmXmmXmmm64, instructions.VexVcvtsd2ssXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1644
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVsubsdXmmXmmXmmm64, instructions.VexVsubsdXmmXmmXmmm64, instructions.Invalid}, {instructions.VexVsubsdXmmXmmXmmm64, instructions.VexVsubsdXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1645
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVminsdXmmXmmXmmm64, instructions.VexVminsdXmmXmmXmmm64, instructions.Invalid}, {instructions.VexVminsdXmmXmmXmmm64, instructions.VexVminsdXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1646
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVdivsdXmmXmmXmmm64, instructions.VexVdivsdXmmXmmXmmm64, instructions.Invalid}, {instructions.VexVdivsdXmmXmmXmmm64, instructions.VexVdivsdXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1647
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVmaxsdXmmXmmXmmm64, instructions.VexVmaxsdXmmXmmXmmm64, instructions.Invalid}, {instructions.VexVmaxsdXmmXmmXmmm64, instructions.VexVmaxsdXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1648
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.VexVpshuflwXmmXmmm128Imm8, instructions.VexVpshuflwYmmYmmm256Imm8, instructions.Invalid}, {instructions.VexVpshuflwXmmXmmm128Imm8, instructions.VexVpshuflwYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1649
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVhaddpsXmmXmmXmmm128, instructions.VexVhaddpsYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVhaddpsXmmXmmXmmm128, instructions.VexVhaddpsYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1650
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVhsubpsXmmXmmXmmm128, instructions.VexVhsubpsYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVhsubpsXmmXmmXmmm128, instructions.VexVhsubpsYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1651
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX, OpIb}, Codes: Codes{{instructions.VexVcmpsdXmmXmmXmmm64Imm8, instructions.VexVcmpsdXmmXmmXmmm64Imm8, instructions.Invalid}, {instructions.VexVcmpsdXmmXmmXmmm64Imm8, instructions.VexVcmpsdXmmXmmXmmm64Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1652
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVaddsubpsXmmXmmXmmm128, instructions.VexVaddsubpsYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVaddsubpsXmmXmmXmmm128, instructions.VexVaddsubpsYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1653
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpVX, OpW}, Codes: Codes{{instructions.VexVcvtpd2dqXmmXmmm128, instructions.VexVcvtpd2dqXmmYmmm256, instructions.Invalid}, {instructions.VexVcvtpd2dqXmmXmmm128, instructions.VexVcvtpd2dqXmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1654
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpV, OpM}, Codes: Codes{{instructions.VexVlddquXmmM128, instructions.VexVlddquYmmM256, instructions.Invalid}, {instructions.VexVlddquXmmM128, instructions.VexVlddquYmmM256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1655
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpGy, OpBy, OpEy}, Codes: Codes{{instructions.Invalid, instructions.VexAndnR32R32Rm32, instructions.VexAndnR64R64Rm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1656
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpBy, OpEy}, Codes: Codes{{instructions.Invalid, instructions.VexBlsrR32Rm32, instructions.VexBlsrR64Rm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1657
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpBy, OpEy}, Codes: Codes{{instructions.Invalid, instructions.VexBlsmskR32Rm32, instructions.VexBlsmskR64Rm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1658
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpBy, OpEy}, Codes: Codes{{instructions.Invalid, instructions.VexBlsiR32Rm32, instructions.VexBlsiR64Rm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1659
	{Kind: KindGroup, Flags: FlagModRM, Group: 111}, // 1660
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpGy, OpEy, OpBy}, Codes: Codes{{instructions.Invalid, instructions.VexBzhiR32Rm32R32, instructions.VexBzhiR64Rm64R64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1661
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpGy, OpEy, OpBy}, Codes: Codes{{instructions.Invalid, instructions.VexBextrR32Rm32R32, instructions.VexBextrR64Rm64R64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1662
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpshufbXmmXmmXmmm128, instructions.VexVpshufbYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpshufbXmmXmmXmmm128, instructions.VexVpshufbYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1663
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVphaddwXmmXmmXmmm128, instructions.VexVphaddwYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVphaddwXmmXmmXmmm128, instructions.VexVphaddwYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1664
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVphadddXmmXmmXmmm128, instructions.VexVphadddYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVphadddXmmXmmXmmm128, instructions.VexVphadddYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1665
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVphaddswXmmXmmXmmm128, instructions.VexVphaddswYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVphaddswXmmXmmXmmm128, instructions.VexVphaddswYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1666
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpmaddubswXmmXmmXmmm128, instructions.VexVpmaddubswYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpmaddubswXmmXmmXmmm128, instructions.VexVpmaddubswYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1667
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVphsubwXmmXmmXmmm128, instructions.VexVphsubwYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVphsubwXmmXmmXmmm128, instructions.VexVphsubwYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1668
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVphsubdXmmXmmXmmm128, instructions.VexVphsubdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVphsubdXmmXmmXmmm128, instructions.VexVphsubdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1669
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVphsubswXmmXmmXmmm128, instructions.VexVphsubswYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVphsubswXmmXmmXmmm128, instructions.VexVphsubswYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1670
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpsignbXmmXmmXmmm128, instructions.VexVpsignbYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpsignbXmmXmmXmmm128, instructions.VexVpsignbYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1671
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpsignwXmmXmmXmmm128, instructions.VexVpsignwYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpsignwXmmXmmXmmm128, instructions.VexVpsignwYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1672
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpsigndXmmXmmXmmm128, instructions.VexVpsigndYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpsigndXmmXmmXmmm128, instructions.VexVpsigndYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1673
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpmulhrswXmmXmmXmmm128, instructions.VexVpmulhrswYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpmulhrswXmmXmmXmmm128, instructions.VexVpmulhrswYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1674
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpermilpsXmmXmmXmmm128, instructions.VexVpermilpsYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1675
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpermilpdXmmXmmXmmm128, instructions.VexVpermilpdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1676
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVtestpsXmmXmmm128, instructions.VexVtestpsYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1677
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVtestpdXmmXmmm128, instructions.VexVtestpdYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1678
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWh}, Codes: Codes{{instructions.VexVcvtph2psXmmXmmm64, instructions.VexVcvtph2psYmmXmmm128, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.Unknown}}}, // 1679
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.VexVpermpsYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Unknown, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1680
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVptestXmmXmmm128, instructions.VexVptestYmmYmmm256, instructions.Invalid}, {instructions.VexVptestXmmXmmm128, instructions.VexVptestYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1681
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpV, OpM}, Codes: Codes{{instructions.VexVbroadcastssXmmM32, instructions.VexVbroadcastssYmmM32, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.Unknown}}}, // 1682
	{Kind: KindNormal, Flags: FlagModRM | FlagMod3 | FlagNoVvvv, Operands: Operands{OpV, OpUX}, Codes: Codes{{instructions.VexVbroadcastssXmmXmm, instructions.VexVbroadcastssYmmXmm, instructions.Invalid}}}, // 1683
	{Kind: KindGroup, Flags: FlagModRM, Group: 112}, // 1684
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.Invalid, instructions.VexVbroadcastsdYmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Unknown, memorysize.Float64, memorysize.Unknown}}}, // 1685
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpV, OpM}, Codes: Codes{{instructions.Invalid, instructions.VexVbroadcastf128YmmM128, instructions.Invalid}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt128, memorysize.Unknown}}}, // 1686
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVpabsbXmmXmmm128, instructions.VexVpabsbYmmYmmm256, instructions.Invalid}, {instructions.VexVpabsbXmmXmmm128, instructions.VexVpabsbYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1687
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVpabswXmmXmmm128, instructions.VexVpabswYmmYmmm256, instructions.Invalid}, {instructions.VexVpabswXmmXmmm128, instructions.VexVpabswYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1688
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.VexVpabsdXmmXmmm128, instructions.VexVpabsdYmmYmmm256, instructions.Invalid}, {instructions.VexVpabsdXmmXmmm128, instructions.VexVpabsdYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1689
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWh}, Codes: Codes{{instructions.VexVpmovsxbwXmmXmmm64, instructions.VexVpmovsxbwYmmXmmm128, instructions.Invalid}, {instructions.VexVpmovsxbwXmmXmmm64, instructions.VexVpmovsxbwYmmXmmm128, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.Unknown}, {memorysize.UInt64, memorysize.UInt128, memorysize.Unknown}}}, // 1690
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.VexVpmovsxbdXmmXmmm32, instructions.VexVpmovsxbdYmmXmmm64, instructions.Invalid}, {instructions.VexVpmovsxbdXmmXmmm32, instructions.VexVpmovsxbdYmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt64, memorysize.Unknown}, {memorysize.UInt32, memorysize.UInt64, memorysize.Unknown}}}, // 1691
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.VexVpmovsxbqXmmXmmm16, instructions.VexVpmovsxbqYmmXmmm32, instructions.Invalid}, {instructions.VexVpmovsxbqXmmXmmm16, instructions.VexVpmovsxbqYmmXmmm32, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.Unknown}, {memorysize.UInt16, memorysize.UInt32, memorysize.Unknown}}}, // 1692
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWh}, Codes: Codes{{instructions.VexVpmovsxwdXmmXmmm64, instructions.VexVpmovsxwdYmmXmmm128, instructions.Invalid}, {instructions.VexVpmovsxwdXmmXmmm64, instructions.VexVpmovsxwdYmmXmmm128, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.Unknown}, {memorysize.UInt64, memorysize.UInt128, memorysize.Unknown}}}, // 1693
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.VexVpmovsxwqXmmXmmm32, instructions.VexVpmovsxwqYmmXmmm64, instructions.Invalid}, {instructions.VexVpmovsxwqXmmXmmm32, instructions.VexVpmovsxwqYmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt64, memorysize.Unknown}, {memorysize.UInt32, memorysize.UInt64, memorysize.Unknown}}}, // 1694
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWh}, Codes: Codes{{instructions.VexVpmovsxdqXmmXmmm64, instructions.VexVpmovsxdqYmmXmmm128, instructions.Invalid}, {instructions.VexVpmovsxdqXmmXmmm64, instructions.VexVpmovsxdqYmmXmmm128, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.Unknown}, {memorysize.UInt64, memorysize.UInt128, memorysize.Unknown}}}, // 1695
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpmuldqXmmXmmXmmm128, instructions.VexVpmuldqYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpmuldqXmmXmmXmmm128, instructions.VexVpmuldqYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1696
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpcmpeqqXmmXmmXmmm128, instructions.VexVpcmpeqqYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpcmpeqqXmmXmmXmmm128, instructions.VexVpcmpeqqYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1697
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpV, OpM}, Codes: Codes{{instructions.VexVmovntdqaXmmM128, instructions.VexVmovntdqaYmmM256, instructions.Invalid}, {instructions.VexVmovntdqaXmmM128, instructions.VexVmovntdqaYmmM256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1698
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpackusdwXmmXmmXmmm128, instructions.VexVpackusdwYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpackusdwXmmXmmXmmm128, instructions.VexVpackusdwYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1699
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpV, OpH, OpM}, Codes: Codes{{instructions.VexVmaskmovpsXmmXmmM128, instructions.VexVmaskmovpsYmmYmmM256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1700
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpV, OpH, OpM}, Codes: Codes{{instructions.VexVmaskmovpdXmmXmmM128, instructions.VexVmaskmovpdYmmYmmM256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1701
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM, OpH, OpV}, Codes: Codes{{instructions.VexVmaskmovpsM128XmmXmm, instructions.VexVmaskmovpsM256YmmYmm, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1702
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM, OpH, OpV}, Codes: Codes{{instructions.VexVmaskmovpdM128XmmXmm, instructions.VexVmaskmovpdM256YmmYmm, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1703
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWh}, Codes: Codes{{instructions.VexVpmovzxbwXmmXmmm64, instructions.VexVpmovzxbwYmmXmmm128, instructions.Invalid}, {instructions.VexVpmovzxbwXmmXmmm64, instructions.VexVpmovzxbwYmmXmmm128, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.Unknown}, {memorysize.UInt64, memorysize.UInt128, memorysize.Unknown}}}, // 1704
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.VexVpmovzxbdXmmXmmm32, instructions.VexVpmovzxbdYmmXmmm64, instructions.Invalid}, {instructions.VexVpmovzxbdXmmXmmm32, instructions.VexVpmovzxbdYmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt64, memorysize.Unknown}, {memorysize.UInt32, memorysize.UInt64, memorysize.Unknown}}}, // 1705
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.VexVpmovzxbqXmmXmmm16, instructions.VexVpmovzxbqYmmXmmm32, instructions.Invalid}, {instructions.VexVpmovzxbqXmmXmmm16, instructions.VexVpmovzxbqYmmXmmm32, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt32, memorysize.Unknown}, {memorysize.UInt16, memorysize.UInt32, memorysize.Unknown}}}, // 1706
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWh}, Codes: Codes{{instructions.VexVpmovzxwdXmmXmmm64, instructions.VexVpmovzxwdYmmXmmm128, instructions.Invalid}, {instructions.VexVpmovzxwdXmmXmmm64, instructions.VexVpmovzxwdYmmXmmm128, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.Unknown}, {memorysize.UInt64, memorysize.UInt128, memorysize.Unknown}}}, // 1707
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.VexVpmovzxwqXmmXmmm32, instructions.VexVpmovzxwqYmmXmmm64, instructions.Invalid}, {instructions.VexVpmovzxwqXmmXmmm32, instructions.VexVpmovzxwqYmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt64, memorysize.Unknown}, {memorysize.UInt32, memorysize.UInt64, memorysize.Unknown}}}, // 1708
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWh}, Codes: Codes{{instructions.VexVpmovzxdqXmmXmmm64, instructions.VexVpmovzxdqYmmXmmm128, instructions.Invalid}, {instructions.VexVpmovzxdqXmmXmmm64, instructions.VexVpmovzxdqYmmXmmm128, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.Unknown}, {memorysize.UInt64, memorysize.UInt128, memorysize.Unknown}}}, // 1709
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.Invalid, instructions.VexVpermdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt256, memorysize.Unknown}}}, // 1710
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpcmpgtqXmmXmmXmmm128, instructions.VexVpcmpgtqYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpcmpgtqXmmXmmXmmm128, instructions.VexVpcmpgtqYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1711
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpminsbXmmXmmXmmm128, instructions.VexVpminsbYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpminsbXmmXmmXmmm128, instructions.VexVpminsbYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1712
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpminsdXmmXmmXmmm128, instructions.VexVpminsdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpminsdXmmXmmXmmm128, instructions.VexVpminsdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1713
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpminuwXmmXmmXmmm128, instructions.VexVpminuwYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpminuwXmmXmmXmmm128, instructions.VexVpminuwYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1714
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpminudXmmXmmXmmm128, instructions.VexVpminudYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpminudXmmXmmXmmm128, instructions.VexVpminudYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1715
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpmaxsbXmmXmmXmmm128, instructions.VexVpmaxsbYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpmaxsbXmmXmmXmmm128, instructions.VexVpmaxsbYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1716
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpmaxsdXmmXmmXmmm128, instructions.VexVpmaxsdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpmaxsdXmmXmmXmmm128, instructions.VexVpmaxsdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1717
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpmaxuwXmmXmmXmmm128, instructions.VexVpmaxuwYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpmaxuwXmmXmmXmmm128, instructions.VexVpmaxuwYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1718
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpmaxudXmmXmmXmmm128, instructions.VexVpmaxudYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpmaxudXmmXmmXmmm128, instructions.VexVpmaxudYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1719
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpmulldXmmXmmXmmm128, instructions.VexVpmulldYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpmulldXmmXmmXmmm128, instructions.VexVpmulldYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1720
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpVX, OpWX}, Codes: Codes{{instructions.VexVphminposuwXmmXmmm128, instructions.Invalid, instructions.Invalid}, {instructions.VexVphminposuwXmmXmmm128, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}}}, // 1721
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpsrlvdXmmXmmXmmm128, instructions.VexVpsrlvdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpsrlvqXmmXmmXmmm128, instructions.VexVpsrlvqYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1722
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpsravdXmmXmmXmmm128, instructions.VexVpsravdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1723
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVpsllvdXmmXmmXmmm128, instructions.VexVpsllvdYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVpsllvqXmmXmmXmmm128, instructions.VexVpsllvqYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1724
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.VexVpbroadcastdXmmXmmm32, instructions.VexVpbroadcastdYmmXmmm32, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt32, memorysize.UInt32, memorysize.Unknown}}}, // 1725
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.VexVpbroadcastqXmmXmmm64, instructions.VexVpbroadcastqYmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt64, memorysize.Unknown}}}, // 1726
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagNoVvvv, Operands: Operands{OpV, OpM}, Codes: Codes{{instructions.Invalid, instructions.VexVbroadcasti128YmmM128, instructions.Invalid}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt128, memorysize.Unknown}}}, // 1727
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.VexVpbroadcastbXmmXmmm8, instructions.VexVpbroadcastbYmmXmmm8, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt8, memorysize.UInt8, memorysize.Unknown}}}, // 1728
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpWX}, Codes: Codes{{instructions.VexVpbroadcastwXmmXmmm16, instructions.VexVpbroadcastwYmmXmmm16, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt16, memorysize.UInt16, memorysize.Unknown}}}, // 1729
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpV, OpH, OpM}, Codes: Codes{{instructions.VexVpmaskmovdXmmXmmM128, instructions.VexVpmaskmovdYmmYmmM256, instructions.Invalid}, {instructions.VexVpmaskmovqXmmXmmM128, instructions.VexVpmaskmovqYmmYmmM256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1730
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3, Operands: Operands{OpM, OpH, OpV}, Codes: Codes{{instructions.VexVpmaskmovdM128XmmXmm, instructions.VexVpmaskmovdM256YmmYmm, instructions.Invalid}, {instructions.VexVpmaskmovqM128XmmXmm, instructions.VexVpmaskmovqM256YmmYmm, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1731
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagVSIB, Operands: Operands{OpV, OpMVx, OpH}, Codes: Codes{{instructions.VexVpgatherddXmmVm32xXmm, instructions.VexVpgatherddYmmVm32yYmm, instructions.Invalid}}, Memory: Sizes{{memorysize.Int32, memorysize.Int32, memorysize.Unknown}}}, // 1732
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagVSIB, Operands: Operands{OpV, OpMVh, OpH}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.VexVpgatherdqXmmVm32xXmm, instructions.VexVpgatherdqYmmVm32xYmm, instructions.Invalid}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Int64, memorysize.Int64, memorysize.Unknown}}}, // 1733
	{Kind: KindW, Flags: FlagModRM, Alt: 1732}, // 1734
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagVSIB, Operands: Operands{OpVX, OpMVx, OpHX}, Codes: Codes{{instructions.VexVpgatherqdXmmVm64xXmm, instructions.VexVpgatherqdXmmVm64yXmm, instructions.Invalid}}, Memory: Sizes{{memorysize.Int32, memorysize.Int32, memorysize.Unknown}}}, // 1735
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagVSIB, Operands: Operands{OpV, OpMVx, OpH}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.VexVpgatherqqXmmVm64xXmm, instructions.VexVpgatherqqYmmVm64yYmm, instructions.Invalid}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Int64, memorysize.Int64, memorysize.Unknown}}}, // 1736
	{Kind: KindW, Flags: FlagModRM, Alt: 1735}, // 1737
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagVSIB, Operands: Operands{OpV, OpMVx, OpH}, Codes: Codes{{instructions.VexVgatherdpsXmmVm32xXmm, instructions.VexVgatherdpsYmmVm32yYmm, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}}}, // 1738
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagVSIB, Operands: Operands{OpV, OpMVh, OpH}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.VexVgatherdpdXmmVm32xXmm, instructions.VexVgatherdpdYmmVm32xYmm, instructions.Invalid}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1739
	{Kind: KindW, Flags: FlagModRM, Alt: 1738}, // 1740
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagVSIB, Operands: Operands{OpVX, OpMVx, OpHX}, Codes: Codes{{instructions.VexVgatherqpsXmmVm64xXmm, instructions.VexVgatherqpsXmmVm64yXmm, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}}}, // 1741
	{Kind: KindNormal, Flags: FlagModRM | FlagNoMod3 | FlagVSIB, Operands: Operands{OpV, OpMVx, OpH}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.VexVgatherqpdXmmVm64xXmm, instructions.VexVgatherqpdYmmVm64yYmm, instructions.Invalid}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1742
	{Kind: KindW, Flags: FlagModRM, Alt: 1741}, // 1743
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVfmaddsub132psXmmXmmXmmm128, instructions.VexVfmaddsub132psYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVfmaddsub132pdXmmXmmXmmm128, instructions.VexVfmaddsub132pdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1744
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVfmsubadd132psXmmXmmXmmm128, instructions.VexVfmsubadd132psYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVfmsubadd132pdXmmXmmXmmm128, instructions.VexVfmsubadd132pdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1745
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVfmadd132psXmmXmmXmmm128, instructions.VexVfmadd132psYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVfmadd132pdXmmXmmXmmm128, instructions.VexVfmadd132pdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1746
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVfmadd132ssXmmXmmXmmm32, instructions.VexVfmadd132ssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVfmadd132sdXmmXmmXmmm64, instructions.VexVfmadd132sdXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1747
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVfmsub132psXmmXmmXmmm128, instructions.VexVfmsub132psYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVfmsub132pdXmmXmmXmmm128, instructions.VexVfmsub132pdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1748
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVfmsub132ssXmmXmmXmmm32, instructions.VexVfmsub132ssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVfmsub132sdXmmXmmXmmm64, instructions.VexVfmsub132sdXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1749
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVfnmadd132psXmmXmmXmmm128, instructions.VexVfnmadd132psYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVfnmadd132pdXmmXmmXmmm128, instructions.VexVfnmadd132pdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1750
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVfnmadd132ssXmmXmmXmmm32, instructions.VexVfnmadd132ssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVfnmadd132sdXmmXmmXmmm64, instructions.VexVfnmadd132sdXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1751
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVfnmsub132psXmmXmmXmmm128, instructions.VexVfnmsub132psYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVfnmsub132pdXmmXmmXmmm128, instructions.VexVfnmsub132pdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1752
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVfnmsub132ssXmmXmmXmmm32, instructions.VexVfnmsub132ssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVfnmsub132sdXmmXmmXmmm64, instructions.VexVfnmsub132sdXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1753
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVfmaddsub213psXmmXmmXmmm128, instructions.VexVfmaddsub213psYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVfmaddsub213pdXmmXmmXmmm128, instructions.VexVfmaddsub213pdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1754
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVfmsubadd213psXmmXmmXmmm128, instructions.VexVfmsubadd213psYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVfmsubadd213pdXmmXmmXmmm128, instructions.VexVfmsubadd213pdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1755
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVfmadd213psXmmXmmXmmm128, instructions.VexVfmadd213psYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVfmadd213pdXmmXmmXmmm128, instructions.VexVfmadd213pdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1756
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVfmadd213ssXmmXmmXmmm32, instructions.VexVfmadd213ssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVfmadd213sdXmmXmmXmmm64, instructions.VexVfmadd213sdXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1757
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVfmsub213psXmmXmmXmmm128, instructions.VexVfmsub213psYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVfmsub213pdXmmXmmXmmm128, instructions.VexVfmsub213pdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1758
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVfmsub213ssXmmXmmXmmm32, instructions.VexVfmsub213ssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVfmsub213sdXmmXmmXmmm64, instructions.VexVfmsub213sdXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1759
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVfnmadd213psXmmXmmXmmm128, instructions.VexVfnmadd213psYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVfnmadd213pdXmmXmmXmmm128, instructions.VexVfnmadd213pdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1760
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVfnmadd213ssXmmXmmXmmm32, instructions.VexVfnmadd213ssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVfnmadd213sdXmmXmmXmmm64, instructions.VexVfnmadd213sdXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1761
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVfnmsub213psXmmXmmXmmm128, instructions.VexVfnmsub213psYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVfnmsub213pdXmmXmmXmmm128, instructions.VexVfnmsub213pdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1762
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVfnmsub213ssXmmXmmXmmm32, instructions.VexVfnmsub213ssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVfnmsub213sdXmmXmmXmmm64, instructions.VexVfnmsub213sdXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1763
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVfmaddsub231psXmmXmmXmmm128, instructions.VexVfmaddsub231psYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVfmaddsub231pdXmmXmmXmmm128, instructions.VexVfmaddsub231pdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1764
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVfmsubadd231psXmmXmmXmmm128, instructions.VexVfmsubadd231psYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVfmsubadd231pdXmmXmmXmmm128, instructions.VexVfmsubadd231pdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1765
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVfmadd231psXmmXmmXmmm128, instructions.VexVfmadd231psYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVfmadd231pdXmmXmmXmmm128, instructions.VexVfmadd231pdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1766
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVfmadd231ssXmmXmmXmmm32, instructions.VexVfmadd231ssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVfmadd231sdXmmXmmXmmm64, instructions.VexVfmadd231sdXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1767
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVfmsub231psXmmXmmXmmm128, instructions.VexVfmsub231psYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVfmsub231pdXmmXmmXmmm128, instructions.VexVfmsub231pdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1768
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVfmsub231ssXmmXmmXmmm32, instructions.VexVfmsub231ssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVfmsub231sdXmmXmmXmmm64, instructions.VexVfmsub231sdXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1769
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVfnmadd231psXmmXmmXmmm128, instructions.VexVfnmadd231psYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVfnmadd231pdXmmXmmXmmm128, instructions.VexVfnmadd231pdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1770
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVfnmadd231ssXmmXmmXmmm32, instructions.VexVfnmadd231ssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVfnmadd231sdXmmXmmXmmm64, instructions.VexVfnmadd231sdXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1771
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVfnmsub231psXmmXmmXmmm128, instructions.VexVfnmsub231psYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVfnmsub231pdXmmXmmXmmm128, instructions.VexVfnmsub231pdYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1772
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX}, Codes: Codes{{instructions.VexVfnmsub231ssXmmXmmXmmm32, instructions.VexVfnmsub231ssXmmXmmXmmm32, instructions.Invalid}, {instructions.VexVfnmsub231sdXmmXmmXmmm64, instructions.VexVfnmsub231sdXmmXmmXmmm64, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1773
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpVX, OpWX}, Codes: Codes{{instructions.VexVaesimcXmmXmmm128, instructions.Invalid, instructions.Invalid}, {instructions.VexVaesimcXmmXmmm128, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}}}, // 1774
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVaesencXmmXmmXmmm128, instructions.VexVaesencYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVaesencXmmXmmXmmm128, instructions.VexVaesencYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1775
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVaesenclastXmmXmmXmmm128, instructions.VexVaesenclastYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVaesenclastXmmXmmXmmm128, instructions.VexVaesenclastYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1776
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVaesdecXmmXmmXmmm128, instructions.VexVaesdecYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVaesdecXmmXmmXmmm128, instructions.VexVaesdecYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1777
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW}, Codes: Codes{{instructions.VexVaesdeclastXmmXmmXmmm128, instructions.VexVaesdeclastYmmYmmYmmm256, instructions.Invalid}, {instructions.VexVaesdeclastXmmXmmXmmm128, instructions.VexVaesdeclastYmmYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1778
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpGy, OpEy, OpBy}, Codes: Codes{{instructions.Invalid, instructions.VexShlxR32Rm32R32, instructions.VexShlxR64Rm64R64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1779
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpGy, OpBy, OpEy}, Codes: Codes{{instructions.Invalid, instructions.VexPextR32R32Rm32, instructions.VexPextR64R64Rm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1780
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpGy, OpEy, OpBy}, Codes: Codes{{instructions.Invalid, instructions.VexSarxR32Rm32R32, instructions.VexSarxR64Rm64R64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1781
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpGy, OpBy, OpEy}, Codes: Codes{{instructions.Invalid, instructions.VexPdepR32R32Rm32, instructions.VexPdepR64R64Rm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1782
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpGy, OpBy, OpEy}, Codes: Codes{{instructions.Invalid, instructions.VexMulxR32R32Rm32, instructions.VexMulxR64R64Rm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1783
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpGy, OpEy, OpBy}, Codes: Codes{{instructions.Invalid, instructions.VexShrxR32Rm32R32, instructions.VexShrxR64Rm64R64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1784
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.Invalid, instructions.VexVpermqYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Unknown, memorysize.UInt256, memorysize.Unknown}}}, // 1785
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.Invalid, instructions.Invalid, instructions.Invalid}, {instructions.Invalid, instructions.VexVpermpdYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Unknown, memorysize.Unknown, memorysize.Unknown}, {memorysize.Unknown, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1786
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.VexVpblenddXmmXmmXmmm128Imm8, instructions.VexVpblenddYmmYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1787
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.VexVpermilpsXmmXmmm128Imm8, instructions.VexVpermilpsYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1788
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.VexVpermilpdXmmXmmm128Imm8, instructions.VexVpermilpdYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1789
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.Invalid, instructions.VexVperm2f128YmmYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt256, memorysize.Unknown}}}, // 1790
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.VexVroundpsXmmXmmm128Imm8, instructions.VexVroundpsYmmYmmm256Imm8, instructions.Invalid}, {instructions.VexVroundpsXmmXmmm128Imm8, instructions.VexVroundpsYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1791
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW, OpIb}, Codes: Codes{{instructions.VexVroundpdXmmXmmm128Imm8, instructions.VexVroundpdYmmYmmm256Imm8, instructions.Invalid}, {instructions.VexVroundpdXmmXmmm128Imm8, instructions.VexVroundpdYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1792
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX, OpIb}, Codes: Codes{{instructions.VexVroundssXmmXmmXmmm32Imm8, instructions.VexVroundssXmmXmmXmmm32Imm8, instructions.Invalid}, {instructions.VexVroundssXmmXmmXmmm32Imm8, instructions.VexVroundssXmmXmmXmmm32Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Float32, memorysize.Float32, memorysize.Unknown}, {memorysize.Float32, memorysize.Float32, memorysize.Unknown}}}, // 1793
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX, OpIb}, Codes: Codes{{instructions.VexVroundsdXmmXmmXmmm64Imm8, instructions.VexVroundsdXmmXmmXmmm64Imm8, instructions.Invalid}, {instructions.VexVroundsdXmmXmmXmmm64Imm8, instructions.VexVroundsdXmmXmmXmmm64Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Float64, memorysize.Float64, memorysize.Unknown}, {memorysize.Float64, memorysize.Float64, memorysize.Unknown}}}, // 1794
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.VexVblendpsXmmXmmXmmm128Imm8, instructions.VexVblendpsYmmYmmYmmm256Imm8, instructions.Invalid}, {instructions.VexVblendpsXmmXmmXmmm128Imm8, instructions.VexVblendpsYmmYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1795
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.VexVblendpdXmmXmmXmmm128Imm8, instructions.VexVblendpdYmmYmmYmmm256Imm8, instructions.Invalid}, {instructions.VexVblendpdXmmXmmXmmm128Imm8, instructions.VexVblendpdYmmYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}, {memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1796
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.VexVpblendwXmmXmmXmmm128Imm8, instructions.VexVpblendwYmmYmmYmmm256Imm8, instructions.Invalid}, {instructions.VexVpblendwXmmXmmXmmm128Imm8, instructions.VexVpblendwYmmYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1797
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.VexVpalignrXmmXmmXmmm128Imm8, instructions.VexVpalignrYmmYmmYmmm256Imm8, instructions.Invalid}, {instructions.VexVpalignrXmmXmmXmmm128Imm8, instructions.VexVpalignrYmmYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1798
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR | FlagL0, Operands: Operands{OpRyM, OpVX, OpIb}, Codes: Codes{{instructions.Invalid, instructions.VexVpextrbR32m8XmmImm8, instructions.VexVpextrbR64m8XmmImm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt8, memorysize.UInt8}}}, // 1799
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR | FlagL0, Operands: Operands{OpRyM, OpVX, OpIb}, Codes: Codes{{instructions.Invalid, instructions.VexVpextrwR32m16XmmImm8, instructions.VexVpextrwR64m16XmmImm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt16, memorysize.UInt16}}}, // 1800
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR | FlagL0, Operands: Operands{OpEy, OpVX, OpIb}, Codes: Codes{{instructions.Invalid, instructions.VexVpextrdRm32XmmImm8, instructions.VexVpextrqRm64XmmImm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1801
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpEd, OpVX, OpIb}, Codes: Codes{{instructions.VexVextractpsRm32XmmImm8, instructions.Invalid, instructions.Invalid}, {instructions.VexVextractpsRm32XmmImm8, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt32, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt32, memorysize.Unknown, memorysize.Unknown}}}, // 1802
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpWX, OpIb}, Codes: Codes{{instructions.Invalid, instructions.VexVinsertf128YmmYmmXmmm128Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt128, memorysize.Unknown}}}, // 1803
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpWX, OpV, OpIb}, Codes: Codes{{instructions.Invalid, instructions.VexVextractf128Xmmm128YmmImm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt128, memorysize.Unknown}}}, // 1804
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpWh, OpV, OpIb}, Codes: Codes{{instructions.VexVcvtps2phXmmm64XmmImm8, instructions.VexVcvtps2phXmmm128YmmImm8, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt64, memorysize.UInt128, memorysize.Unknown}}}, // 1805
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpVX, OpHX, OpRyM, OpIb}, Codes: Codes{{instructions.Invalid, instructions.VexVpinsrbXmmXmmR32m8Imm8, instructions.VexVpinsrbXmmXmmR64m8Imm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt8, memorysize.UInt8}}}, // 1806
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX, OpIb}, Codes: Codes{{instructions.VexVinsertpsXmmXmmXmmm32Imm8, instructions.Invalid, instructions.Invalid}, {instructions.VexVinsertpsXmmXmmXmmm32Imm8, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt32, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt32, memorysize.Unknown, memorysize.Unknown}}}, // 1807
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpVX, OpHX, OpEy, OpIb}, Codes: Codes{{instructions.Invalid, instructions.VexVpinsrdXmmXmmRm32Imm8, instructions.VexVpinsrqXmmXmmRm64Imm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1808
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpWX, OpIb}, Codes: Codes{{instructions.Invalid, instructions.VexVinserti128YmmYmmXmmm128Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt128, memorysize.Unknown}}}, // 1809
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpWX, OpV, OpIb}, Codes: Codes{{instructions.Invalid, instructions.VexVextracti128Xmmm128YmmImm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt128, memorysize.Unknown}}}, // 1810
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.VexVdppsXmmXmmXmmm128Imm8, instructions.VexVdppsYmmYmmYmmm256Imm8, instructions.Invalid}, {instructions.VexVdppsXmmXmmXmmm128Imm8, instructions.VexVdppsYmmYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}, {memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1811
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX, OpIb}, Codes: Codes{{instructions.VexVdppdXmmXmmXmmm128Imm8, instructions.Invalid, instructions.Invalid}, {instructions.VexVdppdXmmXmmXmmm128Imm8, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}}}, // 1812
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.VexVmpsadbwXmmXmmXmmm128Imm8, instructions.VexVmpsadbwYmmYmmYmmm256Imm8, instructions.Invalid}, {instructions.VexVmpsadbwXmmXmmXmmm128Imm8, instructions.VexVmpsadbwYmmYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1813
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.VexVpclmulqdqXmmXmmXmmm128Imm8, instructions.VexVpclmulqdqYmmYmmYmmm256Imm8, instructions.Invalid}, {instructions.VexVpclmulqdqXmmXmmXmmm128Imm8, instructions.VexVpclmulqdqYmmYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}, {memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1814
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW, OpIb}, Codes: Codes{{instructions.Invalid, instructions.VexVperm2i128YmmYmmYmmm256Imm8, instructions.Invalid}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt256, memorysize.Unknown}}}, // 1815
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW, OpIs4}, Codes: Codes{{instructions.VexVblendvpsXmmXmmXmmm128Xmm, instructions.VexVblendvpsYmmYmmYmmm256Ymm, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1816
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW, OpIs4}, Codes: Codes{{instructions.VexVblendvpdXmmXmmXmmm128Xmm, instructions.VexVblendvpdYmmYmmYmmm256Ymm, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1817
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW, OpIs4}, Codes: Codes{{instructions.VexVpblendvbXmmXmmXmmm128Xmm, instructions.VexVpblendvbYmmYmmYmmm256Ymm, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1818
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpVX, OpWX, OpIb}, Codes: Codes{{instructions.VexVpcmpestrmXmmXmmm128Imm8, instructions.Invalid, instructions.Invalid}, {instructions.VexVpcmpestrmXmmXmmm128Imm8, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}}}, // 1819
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpVX, OpWX, OpIb}, Codes: Codes{{instructions.VexVpcmpestriXmmXmmm128Imm8, instructions.Invalid, instructions.Invalid}, {instructions.VexVpcmpestriXmmXmmm128Imm8, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}}}, // 1820
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpVX, OpWX, OpIb}, Codes: Codes{{instructions.VexVpcmpistrmXmmXmmm128Imm8, instructions.Invalid, instructions.Invalid}, {instructions.VexVpcmpistrmXmmXmmm128Imm8, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}}}, // 1821
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpVX, OpWX, OpIb}, Codes: Codes{{instructions.VexVpcmpistriXmmXmmm128Imm8, instructions.Invalid, instructions.Invalid}, {instructions.VexVpcmpistriXmmXmmm128Imm8, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}}}, // 1822
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpVX, OpWX, OpIb}, Codes: Codes{{instructions.VexVaeskeygenassistXmmXmmm128Imm8, instructions.Invalid, instructions.Invalid}, {instructions.VexVaeskeygenassistXmmXmmm128Imm8, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}, {memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}}}, // 1823
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR | FlagL0, Operands: Operands{OpGy, OpEy, OpIb}, Codes: Codes{{instructions.Invalid, instructions.VexRorxR32Rm32Imm8, instructions.VexRorxR64Rm64Imm8}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1824
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpV, OpH, OpW, OpIs4}, Codes: Codes{{instructions.XopVpcmovXmmXmmXmmm128Xmm, instructions.XopVpcmovYmmYmmYmmm256Ymm, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.UInt256, memorysize.Unknown}}}, // 1825
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX, OpIs4X}, Codes: Codes{{instructions.XopVppermXmmXmmXmmm128Xmm, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}}}, // 1826
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpVX, OpWX, OpIb}, Codes: Codes{{instructions.XopVprotbXmmXmmm128Imm8, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}}}, // 1827
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpVX, OpWX, OpIb}, Codes: Codes{{instructions.XopVprotdXmmXmmm128Imm8, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}}}, // 1828
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpHX, OpWX, OpIb}, Codes: Codes{{instructions.XopVpcombXmmXmmXmmm128Imm8, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}}}, // 1829
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpBy, OpEy}, Codes: Codes{{instructions.Invalid, instructions.XopBlcfillR32Rm32, instructions.XopBlcfillR64Rm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1830
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpBy, OpEy}, Codes: Codes{{instructions.Invalid, instructions.XopBlsfillR32Rm32, instructions.XopBlsfillR64Rm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1831
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpBy, OpEy}, Codes: Codes{{instructions.Invalid, instructions.XopBlcsR32Rm32, instructions.XopBlcsR64Rm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1832
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpBy, OpEy}, Codes: Codes{{instructions.Invalid, instructions.XopTzmskR32Rm32, instructions.XopTzmskR64Rm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1833
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpBy, OpEy}, Codes: Codes{{instructions.Invalid, instructions.XopBlcicR32Rm32, instructions.XopBlcicR64Rm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1834
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpBy, OpEy}, Codes: Codes{{instructions.Invalid, instructions.XopBlsicR32Rm32, instructions.XopBlsicR64Rm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1835
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpBy, OpEy}, Codes: Codes{{instructions.Invalid, instructions.XopT1mskcR32Rm32, instructions.XopT1mskcR64Rm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1836
	{Kind: KindGroup, Flags: FlagModRM, Group: 113}, // 1837
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpBy, OpEy}, Codes: Codes{{instructions.Invalid, instructions.XopBlcmskR32Rm32, instructions.XopBlcmskR64Rm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1838
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpBy, OpEy}, Codes: Codes{{instructions.Invalid, instructions.XopBlciR32Rm32, instructions.XopBlciR64Rm64}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1839
	{Kind: KindGroup, Flags: FlagModRM, Group: 114}, // 1840
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.XopVfrczpsXmmXmmm128, instructions.XopVfrczpsYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float32, memorysize.Packed256Float32, memorysize.Unknown}}}, // 1841
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv, Operands: Operands{OpV, OpW}, Codes: Codes{{instructions.XopVfrczpdXmmXmmm128, instructions.XopVfrczpdYmmYmmm256, instructions.Invalid}}, Memory: Sizes{{memorysize.Packed128Float64, memorysize.Packed256Float64, memorysize.Unknown}}}, // 1842
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpWX, OpHX}, Codes: Codes{{instructions.XopVprotbXmmXmmm128Xmm, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}}}, // 1843
	{Kind: KindNormal, Flags: FlagModRM, Operands: Operands{OpVX, OpWX, OpHX}, Codes: Codes{{instructions.XopVprotdXmmXmmm128Xmm, instructions.Invalid, instructions.Invalid}}, Memory: Sizes{{memorysize.UInt128, memorysize.Unknown, memorysize.Unknown}}}, // 1844
	{Kind: KindNormal, Flags: FlagModRM | FlagNoVvvv | FlagVexGPR | FlagL0, Operands: Operands{OpGy, OpEy, OpId}, Codes: Codes{{instructions.Invalid, instructions.XopBextrR32Rm32Imm32, instructions.XopBextrR64Rm64Imm32}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt64}}}, // 1845
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpBy, OpEd, OpId}, Codes: Codes{{instructions.Invalid, instructions.XopLwpinsR32Rm32Imm32, instructions.XopLwpinsR64Rm32Imm32}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt32}}}, // 1846
	{Kind: KindNormal, Flags: FlagModRM | FlagVexGPR | FlagL0, Operands: Operands{OpBy, OpEd, OpId}, Codes: Codes{{instructions.Invalid, instructions.XopLwpvalR32Rm32Imm32, instructions.XopLwpvalR64Rm32Imm32}}, Memory: Sizes{{memorysize.Unknown, memorysize.UInt32, memorysize.UInt32}}}, // 1847
	{Kind: KindGroup, Flags: FlagModRM, Group: 115}, // 1848
}

var groups = [...]Group{
	{},
	{Mem: [8]uint16{120, 121, 122, 123, 124, 125, 126, 127}, Reg: [8]uint16{120, 121, 122, 123, 124, 125, 126, 127}},
	{Mem: [8]uint16{129, 130, 131, 132, 133, 134, 135, 136}, Reg: [8]uint16{129, 130, 131, 132, 133, 134, 135, 136}},
	{Mem: [8]uint16{138, 139, 140, 141, 142, 143, 144, 145}, Reg: [8]uint16{138, 139, 140, 141, 142, 143, 144, 145}},
	{Mem: [8]uint16{147, 148, 149, 150, 151, 152, 153, 154}, Reg: [8]uint16{147, 148, 149, 150, 151, 152, 153, 154}},
	{Mem: [8]uint16{167, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{167, 0, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{218, 219, 220, 221, 222, 223, 224, 225}, Reg: [8]uint16{218, 219, 220, 221, 222, 223, 224, 225}},
	{Mem: [8]uint16{227, 228, 229, 230, 231, 232, 233, 234}, Reg: [8]uint16{227, 228, 229, 230, 231, 232, 233, 234}},
	{Mem: [8]uint16{240, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{240, 0, 0, 0, 0, 0, 0, 0}, RM: 1},
	{Mem: [8]uint16{243, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{243, 0, 0, 0, 0, 0, 0, 0}, RM: 2},
	{Mem: [8]uint16{254, 255, 256, 257, 258, 259, 260, 261}, Reg: [8]uint16{254, 255, 256, 257, 258, 259, 260, 261}},
	{Mem: [8]uint16{263, 264, 265, 266, 267, 268, 269, 270}, Reg: [8]uint16{263, 264, 265, 266, 267, 268, 269, 270}},
	{Mem: [8]uint16{272, 273, 274, 275, 276, 277, 278, 279}, Reg: [8]uint16{272, 273, 274, 275, 276, 277, 278, 279}},
	{Mem: [8]uint16{281, 282, 283, 284, 285, 286, 287, 288}, Reg: [8]uint16{281, 282, 283, 284, 285, 286, 287, 288}},
	{Mem: [8]uint16{294, 295, 296, 297, 298, 299, 300, 301}, Reg: [8]uint16{302, 303, 304, 305, 306, 307, 308, 309}},
	{Mem: [8]uint16{311, 0, 312, 313, 314, 315, 316, 317}, Reg: [8]uint16{318, 319, 0, 0, 0, 0, 0, 0}, RM: 3},
	{Mem: [8]uint16{349, 350, 351, 352, 353, 354, 355, 356}, Reg: [8]uint16{357, 358, 359, 360, 0, 0, 0, 0}, RM: 4},
	{Mem: [8]uint16{363, 364, 365, 366, 0, 367, 0, 368}, Reg: [8]uint16{369, 370, 371, 372, 0, 373, 374, 0}, RM: 5},
	{Mem: [8]uint16{378, 379, 380, 381, 382, 383, 384, 385}, Reg: [8]uint16{386, 387, 0, 0, 388, 389, 390, 391}},
	{Mem: [8]uint16{393, 394, 395, 396, 397, 0, 398, 399}, Reg: [8]uint16{400, 0, 401, 402, 403, 404, 0, 0}},
	{Mem: [8]uint16{406, 407, 408, 409, 410, 411, 412, 413}, Reg: [8]uint16{414, 415, 0, 0, 416, 417, 418, 419}, RM: 6},
	{Mem: [8]uint16{422, 423, 424, 425, 426, 427, 428, 429}, Reg: [8]uint16{430, 0, 0, 0, 0, 431, 432, 0}, RM: 7},
	{Mem: [8]uint16{454, 455, 456, 457, 458, 459, 460, 461}, Reg: [8]uint16{454, 455, 456, 457, 458, 459, 460, 461}},
	{Mem: [8]uint16{463, 464, 465, 466, 467, 468, 469, 470}, Reg: [8]uint16{463, 464, 465, 466, 467, 468, 469, 470}},
	{Mem: [8]uint16{478, 479, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{478, 479, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{481, 482, 483, 484, 485, 486, 487, 0}, Reg: [8]uint16{481, 482, 483, 0, 485, 0, 487, 0}},
	{Mem: [8]uint16{490, 491, 492, 493, 494, 495, 0, 0}, Reg: [8]uint16{490, 491, 492, 493, 494, 495, 0, 0}},
	{Mem: [8]uint16{497, 498, 499, 500, 501, 0, 502, 503}, Reg: [8]uint16{0, 0, 0, 0, 501, 0, 502, 0}, RM: 8},
	{Mem: [8]uint16{0, 526, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{530, 530, 530, 530, 530, 530, 530, 530}, Reg: [8]uint16{531, 531, 531, 531, 531, 531, 531, 531}},
	{Mem: [8]uint16{536, 536, 536, 536, 536, 536, 536, 536}, Reg: [8]uint16{537, 537, 537, 537, 537, 537, 537, 537}},
	{Mem: [8]uint16{540, 541, 542, 543, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{545, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{545, 0, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 613, 0, 614, 0, 615, 0}},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 617, 0, 618, 0, 619, 0}},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 621, 0, 0, 0, 622, 0}},
	{Mem: [8]uint16{674, 675, 676, 677, 678, 679, 680, 681}, Reg: [8]uint16{0, 0, 0, 0, 0, 682, 683, 684}},
	{Mem: [8]uint16{0, 0, 0, 0, 696, 697, 698, 699}, Reg: [8]uint16{0, 0, 0, 0, 696, 697, 698, 699}},
	{Mem: [8]uint16{0, 713, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 714, 715}},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 816, 0, 817, 0, 818, 0}},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 820, 0, 821, 0, 822, 0}},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 824, 825, 0, 0, 826, 827}},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, RM: 9},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 0, 915}},
	{Mem: [8]uint16{120, 121, 122, 123, 124, 125, 126, 127}, Reg: [8]uint16{120, 121, 122, 123, 124, 125, 126, 127}},
	{Mem: [8]uint16{129, 130, 131, 132, 133, 134, 135, 136}, Reg: [8]uint16{129, 130, 131, 132, 133, 134, 135, 136}},
	{Mem: [8]uint16{147, 148, 149, 150, 151, 152, 153, 154}, Reg: [8]uint16{147, 148, 149, 150, 151, 152, 153, 154}},
	{Mem: [8]uint16{167, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{167, 0, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{218, 219, 220, 221, 222, 223, 224, 225}, Reg: [8]uint16{218, 219, 220, 221, 222, 223, 224, 225}},
	{Mem: [8]uint16{227, 228, 229, 230, 231, 232, 233, 234}, Reg: [8]uint16{227, 228, 229, 230, 231, 232, 233, 234}},
	{Mem: [8]uint16{240, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{240, 0, 0, 0, 0, 0, 0, 0}, RM: 10},
	{Mem: [8]uint16{243, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{243, 0, 0, 0, 0, 0, 0, 0}, RM: 11},
	{Mem: [8]uint16{254, 255, 256, 257, 258, 259, 260, 261}, Reg: [8]uint16{254, 255, 256, 257, 258, 259, 260, 261}},
	{Mem: [8]uint16{263, 264, 265, 266, 267, 268, 269, 270}, Reg: [8]uint16{263, 264, 265, 266, 267, 268, 269, 270}},
	{Mem: [8]uint16{272, 273, 274, 275, 276, 277, 278, 279}, Reg: [8]uint16{272, 273, 274, 275, 276, 277, 278, 279}},
	{Mem: [8]uint16{281, 282, 283, 284, 285, 286, 287, 288}, Reg: [8]uint16{281, 282, 283, 284, 285, 286, 287, 288}},
	{Mem: [8]uint16{294, 295, 296, 297, 298, 299, 300, 301}, Reg: [8]uint16{302, 303, 304, 305, 306, 307, 308, 309}},
	{Mem: [8]uint16{311, 0, 312, 313, 314, 315, 316, 317}, Reg: [8]uint16{318, 319, 0, 0, 0, 0, 0, 0}, RM: 12},
	{Mem: [8]uint16{349, 350, 351, 352, 353, 354, 355, 356}, Reg: [8]uint16{357, 358, 359, 360, 0, 0, 0, 0}, RM: 13},
	{Mem: [8]uint16{363, 364, 365, 366, 0, 367, 0, 368}, Reg: [8]uint16{369, 370, 371, 372, 0, 373, 374, 0}, RM: 14},
	{Mem: [8]uint16{378, 379, 380, 381, 382, 383, 384, 385}, Reg: [8]uint16{386, 387, 0, 0, 388, 389, 390, 391}},
	{Mem: [8]uint16{393, 394, 395, 396, 397, 0, 398, 399}, Reg: [8]uint16{400, 0, 401, 402, 403, 404, 0, 0}},
	{Mem: [8]uint16{406, 407, 408, 409, 410, 411, 412, 413}, Reg: [8]uint16{414, 415, 0, 0, 416, 417, 418, 419}, RM: 15},
	{Mem: [8]uint16{422, 423, 424, 425, 426, 427, 428, 429}, Reg: [8]uint16{430, 0, 0, 0, 0, 431, 432, 0}, RM: 16},
	{Mem: [8]uint16{454, 455, 456, 457, 458, 459, 460, 461}, Reg: [8]uint16{454, 455, 456, 457, 458, 459, 460, 461}},
	{Mem: [8]uint16{463, 464, 465, 466, 467, 468, 469, 470}, Reg: [8]uint16{463, 464, 465, 466, 467, 468, 469, 470}},
	{Mem: [8]uint16{478, 479, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{478, 479, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{481, 482, 483, 484, 485, 486, 487, 0}, Reg: [8]uint16{481, 482, 483, 0, 485, 0, 487, 0}},
	{Mem: [8]uint16{490, 491, 492, 493, 494, 495, 0, 0}, Reg: [8]uint16{490, 491, 492, 493, 494, 495, 0, 0}},
	{Mem: [8]uint16{497, 498, 499, 500, 501, 0, 502, 503}, Reg: [8]uint16{0, 0, 0, 0, 501, 0, 502, 0}, RM: 17},
	{Mem: [8]uint16{0, 526, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{530, 530, 530, 530, 530, 530, 530, 530}, Reg: [8]uint16{531, 531, 531, 531, 531, 531, 531, 531}},
	{Mem: [8]uint16{536, 536, 536, 536, 536, 536, 536, 536}, Reg: [8]uint16{537, 537, 537, 537, 537, 537, 537, 537}},
	{Mem: [8]uint16{540, 541, 542, 543, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{545, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{545, 0, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 613, 0, 614, 0, 615, 0}},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 617, 0, 618, 0, 619, 0}},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 621, 0, 0, 0, 622, 0}},
	{Mem: [8]uint16{674, 675, 676, 677, 678, 679, 680, 681}, Reg: [8]uint16{0, 0, 0, 0, 0, 682, 683, 684}},
	{Mem: [8]uint16{0, 0, 0, 0, 696, 697, 698, 699}, Reg: [8]uint16{0, 0, 0, 0, 696, 697, 698, 699}},
	{Mem: [8]uint16{0, 713, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 714, 715}},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 816, 0, 817, 0, 818, 0}},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 820, 0, 821, 0, 822, 0}},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 824, 825, 0, 0, 826, 827}},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, RM: 18},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{1085, 1086, 1087, 1088, 0, 0, 0, 0}},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 0, 915}},
	{Mem: [8]uint16{0, 0, 1162, 0, 1163, 0, 1164, 0}, Reg: [8]uint16{0, 0, 1162, 0, 1163, 0, 1164, 0}},
	{Mem: [8]uint16{1166, 1167, 1168, 0, 1169, 0, 1170, 0}, Reg: [8]uint16{1166, 1167, 1168, 0, 1169, 0, 1170, 0}},
	{Mem: [8]uint16{0, 0, 1172, 1173, 0, 0, 1174, 1175}, Reg: [8]uint16{0, 0, 1172, 1173, 0, 0, 1174, 1175}},
	{Mem: [8]uint16{1229, 1229, 1229, 1229, 1229, 1229, 1229, 1229}, Reg: [8]uint16{1230, 1230, 1230, 1230, 1230, 1230, 1230, 1230}},
	{Mem: [8]uint16{1232, 1232, 1232, 1232, 1232, 1232, 1232, 1232}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{1252, 1252, 1252, 1252, 1252, 1252, 1252, 1252}, Reg: [8]uint16{1253, 1253, 1253, 1253, 1253, 1253, 1253, 1253}},
	{Mem: [8]uint16{1255, 1255, 1255, 1255, 1255, 1255, 1255, 1255}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{1436, 1436, 1436, 1436, 1436, 1436, 1436, 1436}, Reg: [8]uint16{1437, 1437, 1437, 1437, 1437, 1437, 1437, 1437}},
	{Mem: [8]uint16{1439, 1439, 1439, 1439, 1439, 1439, 1439, 1439}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{1443, 1443, 1443, 1443, 1443, 1443, 1443, 1443}, Reg: [8]uint16{1444, 1444, 1444, 1444, 1444, 1444, 1444, 1444}},
	{Mem: [8]uint16{1446, 1446, 1446, 1446, 1446, 1446, 1446, 1446}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{1475, 1475, 1475, 1475, 1475, 1475, 1475, 1475}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{0, 0, 1480, 1481, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{1487, 1487, 1487, 1487, 1487, 1487, 1487, 1487}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{1489, 1489, 1489, 1489, 1489, 1489, 1489, 1489}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{1493, 1493, 1493, 1493, 1493, 1493, 1493, 1493}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{1495, 1495, 1495, 1495, 1495, 1495, 1495, 1495}, Reg: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 1533, 0, 1534, 0, 1535, 0}},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 1537, 0, 1538, 0, 1539, 0}},
	{Mem: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{0, 0, 1541, 1542, 0, 0, 1543, 1544}},
	{Mem: [8]uint16{1603, 1603, 1603, 1603, 1603, 1603, 1603, 1603}, Reg: [8]uint16{1604, 1604, 1604, 1604, 1604, 1604, 1604, 1604}},
	{Mem: [8]uint16{1606, 1606, 1606, 1606, 1606, 1606, 1606, 1606}, Reg: [8]uint16{1607, 1607, 1607, 1607, 1607, 1607, 1607, 1607}},
	{Mem: [8]uint16{1631, 1631, 1631, 1631, 1631, 1631, 1631, 1631}, Reg: [8]uint16{1632, 1632, 1632, 1632, 1632, 1632, 1632, 1632}},
	{Mem: [8]uint16{1634, 1634, 1634, 1634, 1634, 1634, 1634, 1634}, Reg: [8]uint16{1635, 1635, 1635, 1635, 1635, 1635, 1635, 1635}},
	{Mem: [8]uint16{0, 1657, 1658, 1659, 0, 0, 0, 0}, Reg: [8]uint16{0, 1657, 1658, 1659, 0, 0, 0, 0}},
	{Mem: [8]uint16{1682, 1682, 1682, 1682, 1682, 1682, 1682, 1682}, Reg: [8]uint16{1683, 1683, 1683, 1683, 1683, 1683, 1683, 1683}},
	{Mem: [8]uint16{0, 1830, 1831, 1832, 1833, 1834, 1835, 1836}, Reg: [8]uint16{0, 1830, 1831, 1832, 1833, 1834, 1835, 1836}},
	{Mem: [8]uint16{0, 1838, 0, 0, 0, 0, 1839, 0}, Reg: [8]uint16{0, 1838, 0, 0, 0, 0, 1839, 0}},
	{Mem: [8]uint16{1846, 1847, 0, 0, 0, 0, 0, 0}, Reg: [8]uint16{1846, 1847, 0, 0, 0, 0, 0, 0}},
}

var rmTables = [...][8][8]uint16{
	{},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{241, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{244, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{320, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{321, 322, 0, 0, 323, 324, 0, 0},
		{325, 326, 327, 328, 329, 330, 331, 0},
		{332, 333, 334, 335, 336, 337, 338, 339},
		{340, 341, 342, 343, 344, 345, 346, 347},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 361, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 375, 376, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 420, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{433, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		{0, 504, 505, 506, 507, 0, 0, 0},
		{508, 509, 510, 511, 0, 0, 0, 0},
		{512, 513, 0, 0, 0, 514, 515, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 516, 0, 0, 0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 890, 891, 0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{241, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{244, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{320, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{321, 322, 0, 0, 323, 324, 0, 0},
		{325, 326, 327, 328, 329, 330, 331, 0},
		{332, 333, 334, 335, 336, 337, 338, 339},
		{340, 341, 342, 343, 344, 345, 346, 347},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 361, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 375, 376, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 420, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{433, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		{0, 504, 505, 506, 507, 0, 0, 0},
		{508, 509, 510, 511, 0, 0, 0, 0},
		{512, 513, 0, 0, 0, 514, 515, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1064, 516, 0, 0, 0, 0, 0, 0},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 890, 891, 0, 0, 0, 0},
	},
}

var legacyTable = [2][4][4][256]uint16{
	0: {
		0: {
			0: {
				0x00: 1, 0x01: 2, 0x02: 3, 0x03: 4, 0x04: 5, 0x05: 6, 0x06: 7, 0x07: 8,
				0x08: 9, 0x09: 10, 0x0a: 11, 0x0b: 12, 0x0c: 13, 0x0d: 14, 0x0e: 15, 0x10: 16,
				0x11: 17, 0x12: 18, 0x13: 19, 0x14: 20, 0x15: 21, 0x16: 22, 0x17: 23, 0x18: 24,
				0x19: 25, 0x1a: 26, 0x1b: 27, 0x1c: 28, 0x1d: 29, 0x1e: 30, 0x1f: 31, 0x20: 32,
				0x21: 33, 0x22: 34, 0x23: 35, 0x24: 36, 0x25: 37, 0x27: 38, 0x28: 39, 0x29: 40,
				0x2a: 41, 0x2b: 42, 0x2c: 43, 0x2d: 44, 0x2f: 45, 0x30: 46, 0x31: 47, 0x32: 48,
				0x33: 49, 0x34: 50, 0x35: 51, 0x37: 52, 0x38: 53, 0x39: 54, 0x3a: 55, 0x3b: 56,
				0x3c: 57, 0x3d: 58, 0x3f: 59, 0x40: 60, 0x41: 61, 0x42: 62, 0x43: 63, 0x44: 64,
				0x45: 65, 0x46: 66, 0x47: 67, 0x48: 68, 0x49: 69, 0x4a: 70, 0x4b: 71, 0x4c: 72,
				0x4d: 73, 0x4e: 74, 0x4f: 75, 0x50: 76, 0x51: 77, 0x52: 78, 0x53: 79, 0x54: 80,
				0x55: 81, 0x56: 82, 0x57: 83, 0x58: 84, 0x59: 85, 0x5a: 86, 0x5b: 87, 0x5c: 88,
				0x5d: 89, 0x5e: 90, 0x5f: 91, 0x60: 92, 0x61: 93, 0x62: 1091, 0x63: 95, 0x68: 96,
				0x69: 97, 0x6a: 98, 0x6b: 99, 0x6c: 100, 0x6d: 101, 0x6e: 102, 0x6f: 103, 0x70: 104,
				0x71: 105, 0x72: 106, 0x73: 107, 0x74: 108, 0x75: 109, 0x76: 110, 0x77: 111, 0x78: 112,
				0x79: 113, 0x7a: 114, 0x7b: 115, 0x7c: 116, 0x7d: 117, 0x7e: 118, 0x7f: 119, 0x80: 128,
				0x81: 137, 0x82: 146, 0x83: 155, 0x84: 156, 0x85: 157, 0x86: 158, 0x87: 159, 0x88: 160,
				0x89: 161, 0x8a: 162, 0x8b: 163, 0x8c: 164, 0x8d: 165, 0x8e: 166, 0x8f: 1094, 0x90: 169,
				0x91: 171, 0x92: 172, 0x93: 173, 0x94: 174, 0x95: 175, 0x96: 176, 0x97: 177, 0x98: 178,
				0x99: 179, 0x9a: 180, 0x9b: 181, 0x9c: 182, 0x9d: 183, 0x9e: 184, 0x9f: 185, 0xa0: 186,
				0xa1: 187, 0xa2: 188, 0xa3: 189, 0xa4: 190, 0xa5: 191, 0xa6: 192, 0xa7: 193, 0xa8: 194,
				0xa9: 195, 0xaa: 196, 0xab: 197, 0xac: 198, 0xad: 199, 0xae: 200, 0xaf: 201, 0xb0: 202,
				0xb1: 203, 0xb2: 204, 0xb3: 205, 0xb4: 206, 0xb5: 207, 0xb6: 208, 0xb7: 209, 0xb8: 210,
				0xb9: 211, 0xba: 212, 0xbb: 213, 0xbc: 214, 0xbd: 215, 0xbe: 216, 0xbf: 217, 0xc0: 226,
				0xc1: 235, 0xc2: 236, 0xc3: 237, 0xc4: 1092, 0xc5: 1093, 0xc6: 242, 0xc7: 245, 0xc8: 246,
				0xc9: 247, 0xca: 248, 0xcb: 249, 0xcc: 250, 0xcd: 251, 0xce: 252, 0xcf: 253, 0xd0: 262,
				0xd1: 271, 0xd2: 280, 0xd3: 289, 0xd4: 290, 0xd5: 291, 0xd6: 292, 0xd7: 293, 0xd8: 310,
				0xd9: 348, 0xda: 362, 0xdb: 377, 0xdc: 392, 0xdd: 405, 0xde: 421, 0xdf: 434, 0xe0: 435,
				0xe1: 436, 0xe2: 437, 0xe3: 438, 0xe4: 439, 0xe5: 440, 0xe6: 441, 0xe7: 442, 0xe8: 443,
				0xe9: 444, 0xea: 445, 0xeb: 446, 0xec: 447, 0xed: 448, 0xee: 449, 0xef: 450, 0xf1: 451,
				0xf4: 452, 0xf5: 453, 0xf6: 462, 0xf7: 471, 0xf8: 472, 0xf9: 473, 0xfa: 474, 0xfb: 475,
				0xfc: 476, 0xfd: 477, 0xfe: 480, 0xff: 488,
			},
			2: {
				0x90: 489,
			},
		},
		1: {
			0: {
				0x00: 496, 0x01: 517, 0x02: 518, 0x03: 519, 0x05: 520, 0x06: 521, 0x07: 522, 0x08: 523,
				0x09: 524, 0x0b: 525, 0x0d: 527, 0x10: 528, 0x11: 529, 0x12: 532, 0x13: 533, 0x14: 534,
				0x15: 535, 0x16: 538, 0x17: 539, 0x18: 544, 0x1f: 546, 0x20: 547, 0x21: 548, 0x22: 549,
				0x23: 550, 0x28: 551, 0x29: 552, 0x2a: 553, 0x2b: 554, 0x2c: 555, 0x2d: 556, 0x2e: 557,
				0x2f: 558, 0x30: 559, 0x31: 560, 0x32: 561, 0x33: 562, 0x34: 563, 0x35: 564, 0x37: 565,
				0x40: 566, 0x41: 567, 0x42: 568, 0x43: 569, 0x44: 570, 0x45: 571, 0x46: 572, 0x47: 573,
				0x48: 574, 0x49: 575, 0x4a: 576, 0x4b: 577, 0x4c: 578, 0x4d: 579, 0x4e: 580, 0x4f: 581,
				0x50: 582, 0x51: 583, 0x52: 584, 0x53: 585, 0x54: 586, 0x55: 587, 0x56: 588, 0x57: 589,
				0x58: 590, 0x59: 591, 0x5a: 592, 0x5b: 593, 0x5c: 594, 0x5d: 595, 0x5e: 596, 0x5f: 597,
				0x60: 598, 0x61: 599, 0x62: 600, 0x63: 601, 0x64: 602, 0x65: 603, 0x66: 604, 0x67: 605,
				0x68: 606, 0x69: 607, 0x6a: 608, 0x6b: 609, 0x6e: 610, 0x6f: 611, 0x70: 612, 0x71: 616,
				0x72: 620, 0x73: 623, 0x74: 624, 0x75: 625, 0x76: 626, 0x77: 627, 0x7e: 628, 0x7f: 629,
				0x80: 630, 0x81: 631, 0x82: 632, 0x83: 633, 0x84: 634, 0x85: 635, 0x86: 636, 0x87: 637,
				0x88: 638, 0x89: 639, 0x8a: 640, 0x8b: 641, 0x8c: 642, 0x8d: 643, 0x8e: 644, 0x8f: 645,
				0x90: 646, 0x91: 647, 0x92: 648, 0x93: 649, 0x94: 650, 0x95: 651, 0x96: 652, 0x97: 653,
				0x98: 654, 0x99: 655, 0x9a: 656, 0x9b: 657, 0x9c: 658, 0x9d: 659, 0x9e: 660, 0x9f: 661,
				0xa0: 662, 0xa1: 663, 0xa2: 664, 0xa3: 665, 0xa4: 666, 0xa5: 667, 0xa8: 668, 0xa9: 669,
				0xaa: 670, 0xab: 671, 0xac: 672, 0xad: 673, 0xae: 685, 0xaf: 686, 0xb0: 687, 0xb1: 688,
				0xb2: 689, 0xb3: 690, 0xb4: 691, 0xb5: 692, 0xb6: 693, 0xb7: 694, 0xb9: 695, 0xba: 700,
				0xbb: 701, 0xbc: 702, 0xbd: 703, 0xbe: 704, 0xbf: 705, 0xc0: 706, 0xc1: 707, 0xc2: 708,
				0xc3: 709, 0xc4: 710, 0xc5: 711, 0xc6: 712, 0xc7: 716, 0xc8: 717, 0xc9: 718, 0xca: 719,
				0xcb: 720, 0xcc: 721, 0xcd: 722, 0xce: 723, 0xcf: 724, 0xd1: 725, 0xd2: 726, 0xd3: 727,
				0xd4: 728, 0xd5: 729, 0xd7: 730, 0xd8: 731, 0xd9: 732, 0xda: 733, 0xdb: 734, 0xdc: 735,
				0xdd: 736, 0xde: 737, 0xdf: 738, 0xe0: 739, 0xe1: 740, 0xe2: 741, 0xe3: 742, 0xe4: 743,
				0xe5: 744, 0xe7: 745, 0xe8: 746, 0xe9: 747, 0xea: 748, 0xeb: 749, 0xec: 750, 0xed: 751,
				0xee: 752, 0xef: 753, 0xf1: 754, 0xf2: 755, 0xf3: 756, 0xf4: 757, 0xf5: 758, 0xf6: 759,
				0xf7: 760, 0xf8: 761, 0xf9: 762, 0xfa: 763, 0xfb: 764, 0xfc: 765, 0xfd: 766, 0xfe: 767,
				0xff: 768,
			},
			1: {
				0x10: 769, 0x11: 770, 0x12: 771, 0x13: 772, 0x14: 773, 0x15: 774, 0x16: 775, 0x17: 776,
				0x28: 777, 0x29: 778, 0x2a: 779, 0x2b: 780, 0x2c: 781, 0x2d: 782, 0x2e: 783, 0x2f: 784,
				0x50: 785, 0x51: 786, 0x54: 787, 0x55: 788, 0x56: 789, 0x57: 790, 0x58: 791, 0x59: 792,
				0x5a: 793, 0x5b: 794, 0x5c: 795, 0x5d: 796, 0x5e: 797, 0x5f: 798, 0x60: 799, 0x61: 800,
				0x62: 801, 0x63: 802, 0x64: 803, 0x65: 804, 0x66: 805, 0x67: 806, 0x68: 807, 0x69: 808,
				0x6a: 809, 0x6b: 810, 0x6c: 811, 0x6d: 812, 0x6e: 813, 0x6f: 814, 0x70: 815, 0x71: 819,
				0x72: 823, 0x73: 828, 0x74: 829, 0x75: 830, 0x76: 831, 0x7c: 832, 0x7d: 833, 0x7e: 834,
				0x7f: 835, 0xc2: 836, 0xc4: 837, 0xc5: 838, 0xc6: 839, 0xd0: 840, 0xd1: 841, 0xd2: 842,
				0xd3: 843, 0xd4: 844, 0xd5: 845, 0xd6: 846, 0xd7: 847, 0xd8: 848, 0xd9: 849, 0xda: 850,
				0xdb: 851, 0xdc: 852, 0xdd: 853, 0xde: 854, 0xdf: 855, 0xe0: 856, 0xe1: 857, 0xe2: 858,
				0xe3: 859, 0xe4: 860, 0xe5: 861, 0xe6: 862, 0xe7: 863, 0xe8: 864, 0xe9: 865, 0xea: 866,
				0xeb: 867, 0xec: 868, 0xed: 869, 0xee: 870, 0xef: 871, 0xf1: 872, 0xf2: 873, 0xf3: 874,
				0xf4: 875, 0xf5: 876, 0xf6: 877, 0xf7: 878, 0xf8: 879, 0xf9: 880, 0xfa: 881, 0xfb: 882,
				0xfc: 883, 0xfd: 884, 0xfe: 885,
			},
			2: {
				0x10: 886, 0x11: 887, 0x12: 888, 0x16: 889, 0x1e: 892, 0x2a: 893, 0x2c: 894, 0x2d: 895,
				0x51: 896, 0x52: 897, 0x53: 898, 0x58: 899, 0x59: 900, 0x5a: 901, 0x5b: 902, 0x5c: 903,
				0x5d: 904, 0x5e: 905, 0x5f: 906, 0x6f: 907, 0x70: 908, 0x7e: 909, 0x7f: 910, 0xb8: 911,
				0xbc: 912, 0xbd: 913, 0xc2: 914, 0xc7: 916, 0xd6: 917, 0xe6: 918,
			},
			3: {
				0x10: 919, 0x11: 920, 0x12: 921, 0x2a: 922, 0x2c: 923, 0x2d: 924, 0x51: 925, 0x58: 926,
				0x59: 927, 0x5a: 928, 0x5c: 929, 0x5d: 930, 0x5e: 931, 0x5f: 932, 0x70: 933, 0x7c: 934,
				0x7d: 935, 0xc2: 936, 0xd0: 937, 0xd6: 938, 0xe6: 939, 0xf0: 940,
			},
		},
		2: {
			0: {
				0x00: 941, 0x01: 942, 0x02: 943, 0x03: 944, 0x04: 945, 0x05: 946, 0x06: 947, 0x07: 948,
				0x08: 949, 0x09: 950, 0x0a: 951, 0x0b: 952, 0x1c: 953, 0x1d: 954, 0x1e: 955, 0xf0: 956,
				0xf1: 957,
			},
			1: {
				0x00: 958, 0x01: 959, 0x02: 960, 0x03: 961, 0x04: 962, 0x05: 963, 0x06: 964, 0x07: 965,
				0x08: 966, 0x09: 967, 0x0a: 968, 0x0b: 969, 0x10: 970, 0x14: 971, 0x15: 972, 0x17: 973,
				0x1c: 974, 0x1d: 975, 0x1e: 976, 0x20: 977, 0x21: 978, 0x22: 979, 0x23: 980, 0x24: 981,
				0x25: 982, 0x28: 983, 0x29: 984, 0x2a: 985, 0x2b: 986, 0x30: 987, 0x31: 988, 0x32: 989,
				0x33: 990, 0x34: 991, 0x35: 992, 0x37: 993, 0x38: 994, 0x39: 995, 0x3a: 996, 0x3b: 997,
				0x3c: 998, 0x3d: 999, 0x3e: 1000, 0x3f: 1001, 0x40: 1002, 0x41: 1003, 0xdb: 1004, 0xdc: 1005,
				0xdd: 1006, 0xde: 1007, 0xdf: 1008, 0xf6: 1009,
			},
			2: {
				0xf6: 1010,
			},
			3: {
				0xf0: 1011, 0xf1: 1012,
			},
		},
		3: {
			0: {
				0x0f: 1013,
			},
			1: {
				0x08: 1014, 0x09: 1015, 0x0a: 1016, 0x0b: 1017, 0x0c: 1018, 0x0d: 1019, 0x0e: 1020, 0x0f: 1021,
				0x14: 1022, 0x15: 1023, 0x16: 1024, 0x17: 1025, 0x20: 1026, 0x21: 1027, 0x22: 1028, 0x40: 1029,
				0x41: 1030, 0x42: 1031, 0x44: 1032, 0x60: 1033, 0x61: 1034, 0x62: 1035, 0x63: 1036, 0xdf: 1037,
			},
		},
	},
	1: {
		0: {
			0: {
				0x00: 1, 0x01: 2, 0x02: 3, 0x03: 4, 0x04: 5, 0x05: 6, 0x08: 9, 0x09: 10,
				0x0a: 11, 0x0b: 12, 0x0c: 13, 0x0d: 14, 0x10: 16, 0x11: 17, 0x12: 18, 0x13: 19,
				0x14: 20, 0x15: 21, 0x18: 24, 0x19: 25, 0x1a: 26, 0x1b: 27, 0x1c: 28, 0x1d: 29,
				0x20: 32, 0x21: 33, 0x22: 34, 0x23: 35, 0x24: 36, 0x25: 37, 0x28: 39, 0x29: 40,
				0x2a: 41, 0x2b: 42, 0x2c: 43, 0x2d: 44, 0x30: 46, 0x31: 47, 0x32: 48, 0x33: 49,
				0x34: 50, 0x35: 51, 0x38: 53, 0x39: 54, 0x3a: 55, 0x3b: 56, 0x3c: 57, 0x3d: 58,
				0x50: 76, 0x51: 77, 0x52: 78, 0x53: 79, 0x54: 80, 0x55: 81, 0x56: 82, 0x57: 83,
				0x58: 84, 0x59: 85, 0x5a: 86, 0x5b: 87, 0x5c: 88, 0x5d: 89, 0x5e: 90, 0x5f: 91,
				0x62: 1095, 0x63: 1038, 0x68: 96, 0x69: 97, 0x6a: 98, 0x6b: 99, 0x6c: 100, 0x6d: 101,
				0x6e: 102, 0x6f: 103, 0x70: 104, 0x71: 105, 0x72: 106, 0x73: 107, 0x74: 108, 0x75: 109,
				0x76: 110, 0x77: 111, 0x78: 112, 0x79: 113, 0x7a: 114, 0x7b: 115, 0x7c: 116, 0x7d: 117,
				0x7e: 118, 0x7f: 119, 0x80: 1039, 0x81: 1040, 0x83: 1041, 0x84: 156, 0x85: 157, 0x86: 158,
				0x87: 159, 0x88: 160, 0x89: 161, 0x8a: 162, 0x8b: 163, 0x8c: 164, 0x8d: 165, 0x8e: 166,
				0x8f: 1098, 0x90: 169, 0x91: 171, 0x92: 172, 0x93: 173, 0x94: 174, 0x95: 175, 0x96: 176,
				0x97: 177, 0x98: 178, 0x99: 179, 0x9b: 181, 0x9c: 182, 0x9d: 183, 0x9e: 184, 0x9f: 185,
				0xa0: 186, 0xa1: 187, 0xa2: 188, 0xa3: 189, 0xa4: 190, 0xa5: 191, 0xa6: 192, 0xa7: 193,
				0xa8: 194, 0xa9: 195, 0xaa: 196, 0xab: 197, 0xac: 198, 0xad: 199, 0xae: 200, 0xaf: 201,
				0xb0: 202, 0xb1: 203, 0xb2: 204, 0xb3: 205, 0xb4: 206, 0xb5: 207, 0xb6: 208, 0xb7: 209,
				0xb8: 210, 0xb9: 211, 0xba: 212, 0xbb: 213, 0xbc: 214, 0xbd: 215, 0xbe: 216, 0xbf: 217,
				0xc0: 1043, 0xc1: 1044, 0xc2: 236, 0xc3: 237, 0xc4: 1096, 0xc5: 1097, 0xc6: 1045, 0xc7: 1046,
				0xc8: 246, 0xc9: 247, 0xca: 248, 0xcb: 249, 0xcc: 250, 0xcd: 251, 0xcf: 253, 0xd0: 1047,
				0xd1: 1048, 0xd2: 1049, 0xd3: 1050, 0xd7: 293, 0xd8: 1051, 0xd9: 1052, 0xda: 1053, 0xdb: 1054,
				0xdc: 1055, 0xdd: 1056, 0xde: 1057, 0xdf: 1058, 0xe0: 435, 0xe1: 436, 0xe2: 437, 0xe3: 438,
				0xe4: 439, 0xe5: 440, 0xe6: 441, 0xe7: 442, 0xe8: 443, 0xe9: 444, 0xeb: 446, 0xec: 447,
				0xed: 448, 0xee: 449, 0xef: 450, 0xf1: 451, 0xf4: 452, 0xf5: 453, 0xf6: 1059, 0xf7: 1060,
				0xf8: 472, 0xf9: 473, 0xfa: 474, 0xfb: 475, 0xfc: 476, 0xfd: 477, 0xfe: 1061, 0xff: 1062,
			},
			2: {
				0x90: 489,
			},
		},
		1: {
			0: {
				0x00: 1063, 0x01: 1065, 0x02: 518, 0x03: 519, 0x05: 520, 0x06: 521, 0x07: 522, 0x08: 523,
				0x09: 524, 0x0b: 525, 0x0d: 1066, 0x10: 528, 0x11: 529, 0x12: 1067, 0x13: 533, 0x14: 534,
				0x15: 535, 0x16: 1068, 0x17: 539, 0x18: 1069, 0x1f: 1070, 0x20: 1071, 0x21: 1072, 0x22: 1073,
				0x23: 1074, 0x28: 551, 0x29: 552, 0x2a: 553, 0x2b: 554, 0x2c: 555, 0x2d: 556, 0x2e: 557,
				0x2f: 558, 0x30: 559, 0x31: 560, 0x32: 561, 0x33: 562, 0x34: 563, 0x35: 564, 0x37: 565,
				0x40: 566, 0x41: 567, 0x42: 568, 0x43: 569, 0x44: 570, 0x45: 571, 0x46: 572, 0x47: 573,
				0x48: 574, 0x49: 575, 0x4a: 576, 0x4b: 577, 0x4c: 578, 0x4d: 579, 0x4e: 580, 0x4f: 581,
				0x50: 582, 0x51: 583, 0x52: 584, 0x53: 585, 0x54: 586, 0x55: 587, 0x56: 588, 0x57: 589,
				0x58: 590, 0x59: 591, 0x5a: 592, 0x5b: 593, 0x5c: 594, 0x5d: 595, 0x5e: 596, 0x5f: 597,
				0x60: 598, 0x61: 599, 0x62: 600, 0x63: 601, 0x64: 602, 0x65: 603, 0x66: 604, 0x67: 605,
				0x68: 606, 0x69: 607, 0x6a: 608, 0x6b: 609, 0x6e: 610, 0x6f: 611, 0x70: 612, 0x71: 1075,
				0x72: 1076, 0x73: 1077, 0x74: 624, 0x75: 625, 0x76: 626, 0x77: 627, 0x7e: 628, 0x7f: 629,
				0x80: 630, 0x81: 631, 0x82: 632, 0x83: 633, 0x84: 634, 0x85: 635, 0x86: 636, 0x87: 637,
				0x88: 638, 0x89: 639, 0x8a: 640, 0x8b: 641, 0x8c: 642, 0x8d: 643, 0x8e: 644, 0x8f: 645,
				0x90: 646, 0x91: 647, 0x92: 648, 0x93: 649, 0x94: 650, 0x95: 651, 0x96: 652, 0x97: 653,
				0x98: 654, 0x99: 655, 0x9a: 656, 0x9b: 657, 0x9c: 658, 0x9d: 659, 0x9e: 660, 0x9f: 661,
				0xa0: 662, 0xa1: 663, 0xa2: 664, 0xa3: 665, 0xa4: 666, 0xa5: 667, 0xa8: 668, 0xa9: 669,
				0xaa: 670, 0xab: 671, 0xac: 672, 0xad: 673, 0xae: 1078, 0xaf: 686, 0xb0: 687, 0xb1: 688,
				0xb2: 689, 0xb3: 690, 0xb4: 691, 0xb5: 692, 0xb6: 693, 0xb7: 694, 0xb9: 695, 0xba: 1079,
				0xbb: 701, 0xbc: 702, 0xbd: 703, 0xbe: 704, 0xbf: 705, 0xc0: 706, 0xc1: 707, 0xc2: 708,
				0xc3: 709, 0xc4: 710, 0xc5: 711, 0xc6: 712, 0xc7: 1080, 0xc8: 717, 0xc9: 718, 0xca: 719,
				0xcb: 720, 0xcc: 721, 0xcd: 722, 0xce: 723, 0xcf: 724, 0xd1: 725, 0xd2: 726, 0xd3: 727,
				0xd4: 728, 0xd5: 729, 0xd7: 730, 0xd8: 731, 0xd9: 732, 0xda: 733, 0xdb: 734, 0xdc: 735,
				0xdd: 736, 0xde: 737, 0xdf: 738, 0xe0: 739, 0xe1: 740, 0xe2: 741, 0xe3: 742, 0xe4: 743,
				0xe5: 744, 0xe7: 745, 0xe8: 746, 0xe9: 747, 0xea: 748, 0xeb: 749, 0xec: 750, 0xed: 751,
				0xee: 752, 0xef: 753, 0xf1: 754, 0xf2: 755, 0xf3: 756, 0xf4: 757, 0xf5: 758, 0xf6: 759,
				0xf7: 760, 0xf8: 761, 0xf9: 762, 0xfa: 763, 0xfb: 764, 0xfc: 765, 0xfd: 766, 0xfe: 767,
				0xff: 768,
			},
			1: {
				0x10: 769, 0x11: 770, 0x12: 771, 0x13: 772, 0x14: 773, 0x15: 774, 0x16: 775, 0x17: 776,
				0x28: 777, 0x29: 778, 0x2a: 779, 0x2b: 780, 0x2c: 781, 0x2d: 782, 0x2e: 783, 0x2f: 784,
				0x50: 785, 0x51: 786, 0x54: 787, 0x55: 788, 0x56: 789, 0x57: 790, 0x58: 791, 0x59: 792,
				0x5a: 793, 0x5b: 794, 0x5c: 795, 0x5d: 796, 0x5e: 797, 0x5f: 798, 0x60: 799, 0x61: 800,
				0x62: 801, 0x63: 802, 0x64: 803, 0x65: 804, 0x66: 805, 0x67: 806, 0x68: 807, 0x69: 808,
				0x6a: 809, 0x6b: 810, 0x6c: 811, 0x6d: 812, 0x6e: 813, 0x6f: 814, 0x70: 815, 0x71: 1081,
				0x72: 1082, 0x73: 1083, 0x74: 829, 0x75: 830, 0x76: 831, 0x7c: 832, 0x7d: 833, 0x7e: 834,
				0x7f: 835, 0xc2: 836, 0xc4: 837, 0xc5: 838, 0xc6: 839, 0xd0: 840, 0xd1: 841, 0xd2: 842,
				0xd3: 843, 0xd4: 844, 0xd5: 845, 0xd6: 846, 0xd7: 847, 0xd8: 848, 0xd9: 849, 0xda: 850,
				0xdb: 851, 0xdc: 852, 0xdd: 853, 0xde: 854, 0xdf: 855, 0xe0: 856, 0xe1: 857, 0xe2: 858,
				0xe3: 859, 0xe4: 860, 0xe5: 861, 0xe6: 862, 0xe7: 863, 0xe8: 864, 0xe9: 865, 0xea: 866,
				0xeb: 867, 0xec: 868, 0xed: 869, 0xee: 870, 0xef: 871, 0xf1: 872, 0xf2: 873, 0xf3: 874,
				0xf4: 875, 0xf5: 876, 0xf6: 877, 0xf7: 878, 0xf8: 879, 0xf9: 880, 0xfa: 881, 0xfb: 882,
				0xfc: 883, 0xfd: 884, 0xfe: 885,
			},
			2: {
				0x10: 886, 0x11: 887, 0x12: 888, 0x16: 889, 0x1e: 1084, 0x2a: 893, 0x2c: 894, 0x2d: 895,
				0x51: 896, 0x52: 897, 0x53: 898, 0x58: 899, 0x59: 900, 0x5a: 901, 0x5b: 902, 0x5c: 903,
				0x5d: 904, 0x5e: 905, 0x5f: 906, 0x6f: 907, 0x70: 908, 0x7e: 909, 0x7f: 910, 0xae: 1089,
				0xb8: 911, 0xbc: 912, 0xbd: 913, 0xc2: 914, 0xc7: 1090, 0xd6: 917, 0xe6: 918,
			},
			3: {
				0x10: 919, 0x11: 920, 0x12: 921, 0x2a: 922, 0x2c: 923, 0x2d: 924, 0x51: 925, 0x58: 926,
				0x59: 927, 0x5a: 928, 0x5c: 929, 0x5d: 930, 0x5e: 931, 0x5f: 932, 0x70: 933, 0x7c: 934,
				0x7d: 935, 0xc2: 936, 0xd0: 937, 0xd6: 938, 0xe6: 939, 0xf0: 940,
			},
		},
		2: {
			0: {
				0x00: 941, 0x01: 942, 0x02: 943, 0x03: 944, 0x04: 945, 0x05: 946, 0x06: 947, 0x07: 948,
				0x08: 949, 0x09: 950, 0x0a: 951, 0x0b: 952, 0x1c: 953, 0x1d: 954, 0x1e: 955, 0xf0: 956,
				0xf1: 957,
			},
			1: {
				0x00: 958, 0x01: 959, 0x02: 960, 0x03: 961, 0x04: 962, 0x05: 963, 0x06: 964, 0x07: 965,
				0x08: 966, 0x09: 967, 0x0a: 968, 0x0b: 969, 0x10: 970, 0x14: 971, 0x15: 972, 0x17: 973,
				0x1c: 974, 0x1d: 975, 0x1e: 976, 0x20: 977, 0x21: 978, 0x22: 979, 0x23: 980, 0x24: 981,
				0x25: 982, 0x28: 983, 0x29: 984, 0x2a: 985, 0x2b: 986, 0x30: 987, 0x31: 988, 0x32: 989,
				0x33: 990, 0x34: 991, 0x35: 992, 0x37: 993, 0x38: 994, 0x39: 995, 0x3a: 996, 0x3b: 997,
				0x3c: 998, 0x3d: 999, 0x3e: 1000, 0x3f: 1001, 0x40: 1002, 0x41: 1003, 0xdb: 1004, 0xdc: 1005,
				0xdd: 1006, 0xde: 1007, 0xdf: 1008, 0xf6: 1009,
			},
			2: {
				0xf6: 1010,
			},
			3: {
				0xf0: 1011, 0xf1: 1012,
			},
		},
		3: {
			0: {
				0x0f: 1013,
			},
			1: {
				0x08: 1014, 0x09: 1015, 0x0a: 1016, 0x0b: 1017, 0x0c: 1018, 0x0d: 1019, 0x0e: 1020, 0x0f: 1021,
				0x14: 1022, 0x15: 1023, 0x16: 1024, 0x17: 1025, 0x20: 1026, 0x21: 1027, 0x22: 1028, 0x40: 1029,
				0x41: 1030, 0x42: 1031, 0x44: 1032, 0x60: 1033, 0x61: 1034, 0x62: 1035, 0x63: 1036, 0xdf: 1037,
			},
		},
	},
}

var vexTable = [3][4][256]uint16{
	0: {
		0: {
			0x10: 1434, 0x11: 1435, 0x12: 1438, 0x13: 1440, 0x14: 1441, 0x15: 1442, 0x16: 1445, 0x17: 1447,
			0x28: 1448, 0x29: 1449, 0x2b: 1450, 0x2e: 1451, 0x2f: 1452, 0x41: 1453, 0x44: 1454, 0x45: 1455,
			0x47: 1456, 0x50: 1457, 0x51: 1458, 0x52: 1459, 0x53: 1460, 0x54: 1461, 0x55: 1462, 0x56: 1463,
			0x57: 1464, 0x58: 1465, 0x59: 1466, 0x5a: 1467, 0x5b: 1468, 0x5c: 1469, 0x5d: 1470, 0x5e: 1471,
			0x5f: 1472, 0x77: 1473, 0x90: 1474, 0x91: 1476, 0x92: 1477, 0x93: 1478, 0x98: 1479, 0xae: 1482,
			0xc2: 1483, 0xc6: 1484,
		},
		1: {
			0x10: 1485, 0x11: 1486, 0x12: 1488, 0x13: 1490, 0x14: 1491, 0x15: 1492, 0x16: 1494, 0x17: 1496,
			0x28: 1497, 0x29: 1498, 0x2b: 1499, 0x2e: 1500, 0x2f: 1501, 0x50: 1502, 0x51: 1503, 0x54: 1504,
			0x55: 1505, 0x56: 1506, 0x57: 1507, 0x58: 1508, 0x59: 1509, 0x5a: 1510, 0x5b: 1511, 0x5c: 1512,
			0x5d: 1513, 0x5e: 1514, 0x5f: 1515, 0x60: 1516, 0x61: 1517, 0x62: 1518, 0x63: 1519, 0x64: 1520,
			0x65: 1521, 0x66: 1522, 0x67: 1523, 0x68: 1524, 0x69: 1525, 0x6a: 1526, 0x6b: 1527, 0x6c: 1528,
			0x6d: 1529, 0x6e: 1530, 0x6f: 1531, 0x70: 1532, 0x71: 1536, 0x72: 1540, 0x73: 1545, 0x74: 1546,
			0x75: 1547, 0x76: 1548, 0x7c: 1549, 0x7d: 1550, 0x7e: 1551, 0x7f: 1552, 0xc2: 1553, 0xc4: 1554,
			0xc5: 1555, 0xc6: 1556, 0xd0: 1557, 0xd1: 1558, 0xd2: 1559, 0xd3: 1560, 0xd4: 1561, 0xd5: 1562,
			0xd6: 1563, 0xd7: 1564, 0xd8: 1565, 0xd9: 1566, 0xda: 1567, 0xdb: 1568, 0xdc: 1569, 0xdd: 1570,
			0xde: 1571, 0xdf: 1572, 0xe0: 1573, 0xe1: 1574, 0xe2: 1575, 0xe3: 1576, 0xe4: 1577, 0xe5: 1578,
			0xe6: 1579, 0xe7: 1580, 0xe8: 1581, 0xe9: 1582, 0xea: 1583, 0xeb: 1584, 0xec: 1585, 0xed: 1586,
			0xee: 1587, 0xef: 1588, 0xf1: 1589, 0xf2: 1590, 0xf3: 1591, 0xf4: 1592, 0xf5: 1593, 0xf6: 1594,
			0xf7: 1595, 0xf8: 1596, 0xf9: 1597, 0xfa: 1598, 0xfb: 1599, 0xfc: 1600, 0xfd: 1601, 0xfe: 1602,
		},
		2: {
			0x10: 1605, 0x11: 1608, 0x12: 1609, 0x16: 1610, 0x2a: 1611, 0x2c: 1612, 0x2d: 1613, 0x51: 1614,
			0x52: 1615, 0x53: 1616, 0x58: 1617, 0x59: 1618, 0x5a: 1619, 0x5b: 1620, 0x5c: 1621, 0x5d: 1622,
			0x5e: 1623, 0x5f: 1624, 0x6f: 1625, 0x70: 1626, 0x7e: 1627, 0x7f: 1628, 0xc2: 1629, 0xe6: 1630,
		},
		3: {
			0x10: 1633, 0x11: 1636, 0x12: 1637, 0x2a: 1638, 0x2c: 1639, 0x2d: 1640, 0x51: 1641, 0x58: 1642,
			0x59: 1643, 0x5a: 1644, 0x5c: 1645, 0x5d: 1646, 0x5e: 1647, 0x5f: 1648, 0x70: 1649, 0x7c: 1650,
			0x7d: 1651, 0xc2: 1652, 0xd0: 1653, 0xe6: 1654, 0xf0: 1655,
		},
	},
	1: {
		0: {
			0xf2: 1656, 0xf3: 1660, 0xf5: 1661, 0xf7: 1662,
		},
		1: {
			0x00: 1663, 0x01: 1664, 0x02: 1665, 0x03: 1666, 0x04: 1667, 0x05: 1668, 0x06: 1669, 0x07: 1670,
			0x08: 1671, 0x09: 1672, 0x0a: 1673, 0x0b: 1674, 0x0c: 1675, 0x0d: 1676, 0x0e: 1677, 0x0f: 1678,
			0x13: 1679, 0x16: 1680, 0x17: 1681, 0x18: 1684, 0x19: 1685, 0x1a: 1686, 0x1c: 1687, 0x1d: 1688,
			0x1e: 1689, 0x20: 1690, 0x21: 1691, 0x22: 1692, 0x23: 1693, 0x24: 1694, 0x25: 1695, 0x28: 1696,
			0x29: 1697, 0x2a: 1698, 0x2b: 1699, 0x2c: 1700, 0x2d: 1701, 0x2e: 1702, 0x2f: 1703, 0x30: 1704,
			0x31: 1705, 0x32: 1706, 0x33: 1707, 0x34: 1708, 0x35: 1709, 0x36: 1710, 0x37: 1711, 0x38: 1712,
			0x39: 1713, 0x3a: 1714, 0x3b: 1715, 0x3c: 1716, 0x3d: 1717, 0x3e: 1718, 0x3f: 1719, 0x40: 1720,
			0x41: 1721, 0x45: 1722, 0x46: 1723, 0x47: 1724, 0x58: 1725, 0x59: 1726, 0x5a: 1727, 0x78: 1728,
			0x79: 1729, 0x8c: 1730, 0x8e: 1731, 0x90: 1734, 0x91: 1737, 0x92: 1740, 0x93: 1743, 0x96: 1744,
			0x97: 1745, 0x98: 1746, 0x99: 1747, 0x9a: 1748, 0x9b: 1749, 0x9c: 1750, 0x9d: 1751, 0x9e: 1752,
			0x9f: 1753, 0xa6: 1754, 0xa7: 1755, 0xa8: 1756, 0xa9: 1757, 0xaa: 1758, 0xab: 1759, 0xac: 1760,
			0xad: 1761, 0xae: 1762, 0xaf: 1763, 0xb6: 1764, 0xb7: 1765, 0xb8: 1766, 0xb9: 1767, 0xba: 1768,
			0xbb: 1769, 0xbc: 1770, 0xbd: 1771, 0xbe: 1772, 0xbf: 1773, 0xdb: 1774, 0xdc: 1775, 0xdd: 1776,
			0xde: 1777, 0xdf: 1778, 0xf7: 1779,
		},
		2: {
			0xf5: 1780, 0xf7: 1781,
		},
		3: {
			0xf5: 1782, 0xf6: 1783, 0xf7: 1784,
		},
	},
	2: {
		1: {
			0x00: 1785, 0x01: 1786, 0x02: 1787, 0x04: 1788, 0x05: 1789, 0x06: 1790, 0x08: 1791, 0x09: 1792,
			0x0a: 1793, 0x0b: 1794, 0x0c: 1795, 0x0d: 1796, 0x0e: 1797, 0x0f: 1798, 0x14: 1799, 0x15: 1800,
			0x16: 1801, 0x17: 1802, 0x18: 1803, 0x19: 1804, 0x1d: 1805, 0x20: 1806, 0x21: 1807, 0x22: 1808,
			0x38: 1809, 0x39: 1810, 0x40: 1811, 0x41: 1812, 0x42: 1813, 0x44: 1814, 0x46: 1815, 0x4a: 1816,
			0x4b: 1817, 0x4c: 1818, 0x60: 1819, 0x61: 1820, 0x62: 1821, 0x63: 1822, 0xdf: 1823,
		},
		3: {
			0xf0: 1824,
		},
	},
}

var evexTable = [3][4][256]uint16{
	0: {
		0: {
			0x10: 1099, 0x11: 1100, 0x14: 1101, 0x15: 1102, 0x28: 1103, 0x29: 1104, 0x2b: 1105, 0x2e: 1106,
			0x2f: 1107, 0x51: 1108, 0x54: 1109, 0x55: 1110, 0x56: 1111, 0x57: 1112, 0x58: 1113, 0x59: 1114,
			0x5a: 1115, 0x5b: 1116, 0x5c: 1117, 0x5d: 1118, 0x5e: 1119, 0x5f: 1120, 0xc2: 1121, 0xc6: 1122,
		},
		1: {
			0x10: 1123, 0x11: 1124, 0x14: 1125, 0x15: 1126, 0x28: 1127, 0x29: 1128, 0x2b: 1129, 0x2e: 1130,
			0x2f: 1131, 0x51: 1132, 0x54: 1133, 0x55: 1134, 0x56: 1135, 0x57: 1136, 0x58: 1137, 0x59: 1138,
			0x5a: 1139, 0x5b: 1140, 0x5c: 1141, 0x5d: 1142, 0x5e: 1143, 0x5f: 1144, 0x60: 1145, 0x61: 1146,
			0x62: 1147, 0x63: 1148, 0x64: 1149, 0x65: 1150, 0x66: 1151, 0x67: 1152, 0x68: 1153, 0x69: 1154,
			0x6a: 1155, 0x6b: 1156, 0x6c: 1157, 0x6d: 1158, 0x6e: 1159, 0x6f: 1160, 0x70: 1161, 0x71: 1165,
			0x72: 1171, 0x73: 1176, 0x74: 1177, 0x75: 1178, 0x76: 1179, 0x7e: 1180, 0x7f: 1181, 0xc2: 1182,
			0xc4: 1183, 0xc5: 1184, 0xc6: 1185, 0xd1: 1186, 0xd2: 1187, 0xd3: 1188, 0xd4: 1189, 0xd5: 1190,
			0xd6: 1191, 0xd8: 1192, 0xd9: 1193, 0xda: 1194, 0xdb: 1195, 0xdc: 1196, 0xdd: 1197, 0xde: 1198,
			0xdf: 1199, 0xe0: 1200, 0xe1: 1201, 0xe2: 1202, 0xe3: 1203, 0xe4: 1204, 0xe5: 1205, 0xe6: 1206,
			0xe7: 1207, 0xe8: 1208, 0xe9: 1209, 0xea: 1210, 0xeb: 1211, 0xec: 1212, 0xed: 1213, 0xee: 1214,
			0xef: 1215, 0xf1: 1216, 0xf2: 1217, 0xf3: 1218, 0xf4: 1219, 0xf5: 1220, 0xf6: 1221, 0xf8: 1222,
			0xf9: 1223, 0xfa: 1224, 0xfb: 1225, 0xfc: 1226, 0xfd: 1227, 0xfe: 1228,
		},
		2: {
			0x10: 1231, 0x11: 1233, 0x2a: 1234, 0x2c: 1235, 0x2d: 1236, 0x51: 1237, 0x58: 1238, 0x59: 1239,
			0x5a: 1240, 0x5b: 1241, 0x5c: 1242, 0x5d: 1243, 0x5e: 1244, 0x5f: 1245, 0x6f: 1246, 0x70: 1247,
			0x7e: 1248, 0x7f: 1249, 0xc2: 1250, 0xe6: 1251,
		},
		3: {
			0x10: 1254, 0x11: 1256, 0x2a: 1257, 0x2c: 1258, 0x2d: 1259, 0x51: 1260, 0x58: 1261, 0x59: 1262,
			0x5a: 1263, 0x5c: 1264, 0x5d: 1265, 0x5e: 1266, 0x5f: 1267, 0x6f: 1268, 0x70: 1269, 0x7f: 1270,
			0xc2: 1271, 0xe6: 1272,
		},
	},
	1: {
		1: {
			0x00: 1273, 0x04: 1274, 0x0b: 1275, 0x0c: 1276, 0x0d: 1277, 0x16: 1278, 0x18: 1279, 0x19: 1280,
			0x1a: 1281, 0x1c: 1282, 0x1d: 1283, 0x1e: 1284, 0x1f: 1285, 0x20: 1286, 0x21: 1287, 0x22: 1288,
			0x23: 1289, 0x24: 1290, 0x25: 1291, 0x26: 1292, 0x27: 1293, 0x28: 1294, 0x29: 1295, 0x2b: 1296,
			0x30: 1297, 0x31: 1298, 0x32: 1299, 0x33: 1300, 0x34: 1301, 0x35: 1302, 0x36: 1303, 0x37: 1304,
			0x38: 1305, 0x39: 1306, 0x3a: 1307, 0x3b: 1308, 0x3c: 1309, 0x3d: 1310, 0x3e: 1311, 0x3f: 1312,
			0x40: 1313, 0x44: 1314, 0x45: 1315, 0x46: 1316, 0x47: 1317, 0x4c: 1318, 0x4e: 1319, 0x58: 1320,
			0x59: 1321, 0x5a: 1322, 0x64: 1323, 0x65: 1324, 0x66: 1325, 0x76: 1326, 0x77: 1327, 0x78: 1328,
			0x79: 1329, 0x7e: 1330, 0x7f: 1331, 0x90: 1334, 0x91: 1337, 0x92: 1340, 0x93: 1343, 0x96: 1344,
			0x97: 1345, 0x98: 1346, 0x99: 1347, 0x9a: 1348, 0x9b: 1349, 0x9c: 1350, 0x9d: 1351, 0x9e: 1352,
			0x9f: 1353, 0xa0: 1356, 0xa1: 1359, 0xa2: 1362, 0xa3: 1365, 0xa6: 1366, 0xa7: 1367, 0xa8: 1368,
			0xa9: 1369, 0xaa: 1370, 0xab: 1371, 0xac: 1372, 0xad: 1373, 0xae: 1374, 0xaf: 1375, 0xb6: 1376,
			0xb7: 1377, 0xb8: 1378, 0xb9: 1379, 0xba: 1380, 0xbb: 1381, 0xbc: 1382, 0xbd: 1383, 0xbe: 1384,
			0xbf: 1385, 0xc4: 1386,
		},
		2: {
			0x26: 1387, 0x27: 1388, 0x28: 1389, 0x29: 1390, 0x30: 1391, 0x31: 1392, 0x32: 1393, 0x33: 1394,
			0x34: 1395, 0x35: 1396, 0x38: 1397, 0x39: 1398,
		},
	},
	2: {
		1: {
			0x00: 1399, 0x01: 1400, 0x03: 1401, 0x04: 1402, 0x05: 1403, 0x08: 1404, 0x09: 1405, 0x0a: 1406,
			0x0b: 1407, 0x0f: 1408, 0x14: 1409, 0x15: 1410, 0x16: 1411, 0x17: 1412, 0x18: 1413, 0x19: 1414,
			0x1a: 1415, 0x1b: 1416, 0x1d: 1417, 0x1e: 1418, 0x1f: 1419, 0x20: 1420, 0x21: 1421, 0x22: 1422,
			0x23: 1423, 0x25: 1424, 0x38: 1425, 0x39: 1426, 0x3a: 1427, 0x3b: 1428, 0x3e: 1429, 0x3f: 1430,
			0x42: 1431, 0x43: 1432, 0x44: 1433,
		},
	},
}

var xopTable = [3][4][256]uint16{
	0: {
		0: {
			0xa2: 1825, 0xa3: 1826, 0xc0: 1827, 0xc2: 1828, 0xcc: 1829,
		},
	},
	1: {
		0: {
			0x01: 1837, 0x02: 1840, 0x80: 1841, 0x81: 1842, 0x90: 1843, 0x92: 1844,
		},
	},
	2: {
		0: {
			0x10: 1845, 0x12: 1848,
		},
	},
}

var strictPrefix = [4][256]bool{
	1: {
		0x10: true, 0x11: true, 0x12: true, 0x13: true, 0x14: true, 0x15: true, 0x16: true, 0x17: true,
		0x28: true, 0x29: true, 0x2a: true, 0x2b: true, 0x2c: true, 0x2d: true, 0x2e: true, 0x2f: true,
		0x50: true, 0x51: true, 0x52: true, 0x53: true, 0x54: true, 0x55: true, 0x56: true, 0x57: true,
		0x58: true, 0x59: true, 0x5a: true, 0x5b: true, 0x5c: true, 0x5d: true, 0x5e: true, 0x5f: true,
		0x60: true, 0x61: true, 0x62: true, 0x63: true, 0x64: true, 0x65: true, 0x66: true, 0x67: true,
		0x68: true, 0x69: true, 0x6a: true, 0x6b: true, 0x6c: true, 0x6d: true, 0x6e: true, 0x6f: true,
		0x70: true, 0x71: true, 0x72: true, 0x73: true, 0x74: true, 0x75: true, 0x76: true, 0x7c: true,
		0x7d: true, 0x7e: true, 0x7f: true, 0xc2: true, 0xc4: true, 0xc5: true, 0xc6: true, 0xd0: true,
		0xd1: true, 0xd2: true, 0xd3: true, 0xd4: true, 0xd5: true, 0xd6: true, 0xd7: true, 0xd8: true,
		0xd9: true, 0xda: true, 0xdb: true, 0xdc: true, 0xdd: true, 0xde: true, 0xdf: true, 0xe0: true,
		0xe1: true, 0xe2: true, 0xe3: true, 0xe4: true, 0xe5: true, 0xe6: true, 0xe7: true, 0xe8: true,
		0xe9: true, 0xea: true, 0xeb: true, 0xec: true, 0xed: true, 0xee: true, 0xef: true, 0xf0: true,
		0xf1: true, 0xf2: true, 0xf3: true, 0xf4: true, 0xf5: true, 0xf6: true, 0xf7: true, 0xf8: true,
		0xf9: true, 0xfa: true, 0xfb: true, 0xfc: true, 0xfd: true, 0xfe: true,
	},
	2: {
		0x00: true, 0x01: true, 0x02: true, 0x03: true, 0x04: true, 0x05: true, 0x06: true, 0x07: true,
		0x08: true, 0x09: true, 0x0a: true, 0x0b: true, 0x10: true, 0x14: true, 0x15: true, 0x17: true,
		0x1c: true, 0x1d: true, 0x1e: true, 0x20: true, 0x21: true, 0x22: true, 0x23: true, 0x24: true,
		0x25: true, 0x28: true, 0x29: true, 0x2a: true, 0x2b: true, 0x30: true, 0x31: true, 0x32: true,
		0x33: true, 0x34: true, 0x35: true, 0x37: true, 0x38: true, 0x39: true, 0x3a: true, 0x3b: true,
		0x3c: true, 0x3d: true, 0x3e: true, 0x3f: true, 0x40: true, 0x41: true, 0xdb: true, 0xdc: true,
		0xdd: true, 0xde: true, 0xdf: true,
	},
	3: {
		0x08: true, 0x09: true, 0x0a: true, 0x0b: true, 0x0c: true, 0x0d: true, 0x0e: true, 0x0f: true,
		0x14: true, 0x15: true, 0x16: true, 0x17: true, 0x20: true, 0x21: true, 0x22: true, 0x40: true,
		0x41: true, 0x42: true, 0x44: true, 0x60: true, 0x61: true, 0x62: true, 0x63: true, 0xdf: true,
	},
}
