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

package instructions

import "github.com/jetsetilly/gopherx86/hardware/cpu/mnemonics"

// Precomputed list of instruction codes. Do not edit.

// List of instruction codes. A code identifies the mnemonic together with the
// kind and size of each operand.
const (
	Invalid Code = iota
	AddRm8R8
	AddRm16R16
	AddRm32R32
	AddRm64R64
	AddR8Rm8
	AddR16Rm16
	AddR32Rm32
	AddR64Rm64
	AddALImm8
	AddAXImm16
	AddEAXImm32
	AddRAXImm32
	OrRm8R8
	OrRm16R16
	OrRm32R32
	OrRm64R64
	OrR8Rm8
	OrR16Rm16
	OrR32Rm32
	OrR64Rm64
	OrALImm8
	OrAXImm16
	OrEAXImm32
	OrRAXImm32
	AdcRm8R8
	AdcRm16R16
	AdcRm32R32
	AdcRm64R64
	AdcR8Rm8
	AdcR16Rm16
	AdcR32Rm32
	AdcR64Rm64
	AdcALImm8
	AdcAXImm16
	AdcEAXImm32
	AdcRAXImm32
	SbbRm8R8
	SbbRm16R16
	SbbRm32R32
	SbbRm64R64
	SbbR8Rm8
	SbbR16Rm16
	SbbR32Rm32
	SbbR64Rm64
	SbbALImm8
	SbbAXImm16
	SbbEAXImm32
	SbbRAXImm32
	AndRm8R8
	AndRm16R16
	AndRm32R32
	AndRm64R64
	AndR8Rm8
	AndR16Rm16
	AndR32Rm32
	AndR64Rm64
	AndALImm8
	AndAXImm16
	AndEAXImm32
	AndRAXImm32
	SubRm8R8
	SubRm16R16
	SubRm32R32
	SubRm64R64
	SubR8Rm8
	SubR16Rm16
	SubR32Rm32
	SubR64Rm64
	SubALImm8
	SubAXImm16
	SubEAXImm32
	SubRAXImm32
	XorRm8R8
	XorRm16R16
	XorRm32R32
	XorRm64R64
	XorR8Rm8
	XorR16Rm16
	XorR32Rm32
	XorR64Rm64
	XorALImm8
	XorAXImm16
	XorEAXImm32
	XorRAXImm32
	CmpRm8R8
	CmpRm16R16
	CmpRm32R32
	CmpRm64R64
	CmpR8Rm8
	CmpR16Rm16
	CmpR32Rm32
	CmpR64Rm64
	CmpALImm8
	CmpAXImm16
	CmpEAXImm32
	CmpRAXImm32
	PushES
	PopES
	PushCS
	PushSS
	PopSS
	PushDS
	PopDS
	Daa
	Das
	Aaa
	Aas
	IncR16
	IncR32
	DecR16
	DecR32
	PushR16
	PushR32
	PushR64
	PopR16
	PopR32
	PopR64
	Pusha
	Pushad
	Popa
	Popad
	BoundR16M1616
	BoundR32M3232
	ArplRm16R16
	MovsxdR16Rm32
	MovsxdR32Rm32
	MovsxdR64Rm32
	PushImm16
	PushImm32
	ImulR16Rm16Imm16
	ImulR32Rm32Imm32
	ImulR64Rm64Imm32
	PushImm8
	ImulR16Rm16Imm8
	ImulR32Rm32Imm8
	ImulR64Rm64Imm8
	InsbM8DX
	InswM16DX
	InsdM32DX
	InsdM64DX
	OutsbDXM8
	OutswDXM16
	OutsdDXM32
	OutsdDXM64
	JoRel8Op16
	JoRel8Op32
	JoRel8Op64
	JnoRel8Op16
	JnoRel8Op32
	JnoRel8Op64
	JbRel8Op16
	JbRel8Op32
	JbRel8Op64
	JaeRel8Op16
	JaeRel8Op32
	JaeRel8Op64
	JeRel8Op16
	JeRel8Op32
	JeRel8Op64
	JneRel8Op16
	JneRel8Op32
	JneRel8Op64
	JbeRel8Op16
	JbeRel8Op32
	JbeRel8Op64
	JaRel8Op16
	JaRel8Op32
	JaRel8Op64
	JsRel8Op16
	JsRel8Op32
	JsRel8Op64
	JnsRel8Op16
	JnsRel8Op32
	JnsRel8Op64
	JpRel8Op16
	JpRel8Op32
	JpRel8Op64
	JnpRel8Op16
	JnpRel8Op32
	JnpRel8Op64
	JlRel8Op16
	JlRel8Op32
	JlRel8Op64
	JgeRel8Op16
	JgeRel8Op32
	JgeRel8Op64
	JleRel8Op16
	JleRel8Op32
	JleRel8Op64
	JgRel8Op16
	JgRel8Op32
	JgRel8Op64
	AddRm8Imm8
	AddRm16Imm16
	AddRm32Imm32
	AddRm64Imm32
	AddRm8Imm8Op82
	AddRm16Imm8
	AddRm32Imm8
	AddRm64Imm8
	OrRm8Imm8
	OrRm16Imm16
	OrRm32Imm32
	OrRm64Imm32
	OrRm8Imm8Op82
	OrRm16Imm8
	OrRm32Imm8
	OrRm64Imm8
	AdcRm8Imm8
	AdcRm16Imm16
	AdcRm32Imm32
	AdcRm64Imm32
	AdcRm8Imm8Op82
	AdcRm16Imm8
	AdcRm32Imm8
	AdcRm64Imm8
	SbbRm8Imm8
	SbbRm16Imm16
	SbbRm32Imm32
	SbbRm64Imm32
	SbbRm8Imm8Op82
	SbbRm16Imm8
	SbbRm32Imm8
	SbbRm64Imm8
	AndRm8Imm8
	AndRm16Imm16
	AndRm32Imm32
	AndRm64Imm32
	AndRm8Imm8Op82
	AndRm16Imm8
	AndRm32Imm8
	AndRm64Imm8
	SubRm8Imm8
	SubRm16Imm16
	SubRm32Imm32
	SubRm64Imm32
	SubRm8Imm8Op82
	SubRm16Imm8
	SubRm32Imm8
	SubRm64Imm8
	XorRm8Imm8
	XorRm16Imm16
	XorRm32Imm32
	XorRm64Imm32
	XorRm8Imm8Op82
	XorRm16Imm8
	XorRm32Imm8
	XorRm64Imm8
	CmpRm8Imm8
	CmpRm16Imm16
	CmpRm32Imm32
	CmpRm64Imm32
	CmpRm8Imm8Op82
	CmpRm16Imm8
	CmpRm32Imm8
	CmpRm64Imm8
	TestRm8R8
	TestRm16R16
	TestRm32R32
	TestRm64R64
	XchgRm8R8
	XchgRm16R16
	XchgRm32R32
	XchgRm64R64
	MovRm8R8
	MovRm16R16
	MovRm32R32
	MovRm64R64
	MovR8Rm8
	MovR16Rm16
	MovR32Rm32
	MovR64Rm64
	MovR16m16Sreg
	MovR32m16Sreg
	MovR64m16Sreg
	LeaR16Mem
	LeaR32Mem
	LeaR64Mem
	MovSregRm16
	PopRm16
	PopRm32
	PopRm64
	Nop
	Pause
	XchgR16AX
	XchgR32EAX
	XchgR64RAX
	Cbw
	Cwde
	Cdqe
	Cwd
	Cdq
	Cqo
	CallfPtr1616
	CallfPtr1632
	Wait
	Pushf
	Pushfd
	Pushfq
	Popf
	Popfd
	Popfq
	Sahf
	Lahf
	MovALMoffs8
	MovAXMoffs16
	MovEAXMoffs32
	MovRAXMoffs64
	MovMoffs8AL
	MovMoffs16AX
	MovMoffs32EAX
	MovMoffs64RAX
	MovsbM8M8
	MovswM16M16
	MovsdM32M32
	MovsqM64M64
	CmpsbM8M8
	CmpswM16M16
	CmpsdM32M32
	CmpsqM64M64
	TestALImm8
	TestAXImm16
	TestEAXImm32
	TestRAXImm32
	StosbM8AL
	StoswM16AX
	StosdM32EAX
	StosqM64RAX
	LodsbALM8
	LodswAXM16
	LodsdEAXM32
	LodsqRAXM64
	ScasbALM8
	ScaswAXM16
	ScasdEAXM32
	ScasqRAXM64
	MovR8Imm8
	MovR16Imm16
	MovR32Imm32
	MovR64Imm64
	RolRm8Imm8
	RolRm16Imm8
	RolRm32Imm8
	RolRm64Imm8
	RolRm8One
	RolRm16One
	RolRm32One
	RolRm64One
	RolRm8CL
	RolRm16CL
	RolRm32CL
	RolRm64CL
	RorRm8Imm8
	RorRm16Imm8
	RorRm32Imm8
	RorRm64Imm8
	RorRm8One
	RorRm16One
	RorRm32One
	RorRm64One
	RorRm8CL
	RorRm16CL
	RorRm32CL
	RorRm64CL
	RclRm8Imm8
	RclRm16Imm8
	RclRm32Imm8
	RclRm64Imm8
	RclRm8One
	RclRm16One
	RclRm32One
	RclRm64One
	RclRm8CL
	RclRm16CL
	RclRm32CL
	RclRm64CL
	RcrRm8Imm8
	RcrRm16Imm8
	RcrRm32Imm8
	RcrRm64Imm8
	RcrRm8One
	RcrRm16One
	RcrRm32One
	RcrRm64One
	RcrRm8CL
	RcrRm16CL
	RcrRm32CL
	RcrRm64CL
	ShlRm8Imm8
	ShlRm16Imm8
	ShlRm32Imm8
	ShlRm64Imm8
	ShlRm8One
	ShlRm16One
	ShlRm32One
	ShlRm64One
	ShlRm8CL
	ShlRm16CL
	ShlRm32CL
	ShlRm64CL
	ShrRm8Imm8
	ShrRm16Imm8
	ShrRm32Imm8
	ShrRm64Imm8
	ShrRm8One
	ShrRm16One
	ShrRm32One
	ShrRm64One
	ShrRm8CL
	ShrRm16CL
	ShrRm32CL
	ShrRm64CL
	SalRm8Imm8
	SalRm16Imm8
	SalRm32Imm8
	SalRm64Imm8
	SalRm8One
	SalRm16One
	SalRm32One
	SalRm64One
	SalRm8CL
	SalRm16CL
	SalRm32CL
	SalRm64CL
	SarRm8Imm8
	SarRm16Imm8
	SarRm32Imm8
	SarRm64Imm8
	SarRm8One
	SarRm16One
	SarRm32One
	SarRm64One
	SarRm8CL
	SarRm16CL
	SarRm32CL
	SarRm64CL
	RetImm16
	Ret
	LesR16M1616
	LesR32M1632
	LdsR16M1616
	LdsR32M1632
	MovRm8Imm8
	XabortImm8
	MovRm16Imm16
	MovRm32Imm32
	MovRm64Imm32
	XbeginRel16
	XbeginRel32Op32
	XbeginRel32Op64
	EnterImm16Imm8
	Leave
	RetfImm16
	Retf
	Int3
	IntImm8
	Into
	Iret
	Iretd
	Iretq
	AamImm8
	AadImm8
	Salc
	Xlatb
	LoopneRel8Op16
	LoopneRel8Op32
	LoopneRel8Op64
	LoopeRel8Op16
	LoopeRel8Op32
	LoopeRel8Op64
	LoopRel8Op16
	LoopRel8Op32
	LoopRel8Op64
	JcxzRel8Op16
	JecxzRel8Op32
	JrcxzRel8Op64
	InALImm8
	InAXImm8
	InEAXImm8
	OutImm8AL
	OutImm8AX
	OutImm8EAX
	CallRel16
	CallRel32Op32
	CallRel32Op64
	JmpRel16
	JmpRel32Op32
	JmpRel32Op64
	JmpfPtr1616
	JmpfPtr1632
	JmpRel8Op16
	JmpRel8Op32
	JmpRel8Op64
	InALDX
	InAXDX
	InEAXDX
	OutDXAL
	OutDXAX
	OutDXEAX
	Int1
	Hlt
	Cmc
	TestRm8Imm8
	TestRm8Imm8F6r1
	TestRm16Imm16
	TestRm32Imm32
	TestRm64Imm32
	TestRm16Imm16F7r1
	TestRm32Imm32F7r1
	TestRm64Imm32F7r1
	NotRm8
	NotRm16
	NotRm32
	NotRm64
	NegRm8
	NegRm16
	NegRm32
	NegRm64
	MulRm8
	MulRm16
	MulRm32
	MulRm64
	ImulRm8
	ImulRm16
	ImulRm32
	ImulRm64
	DivRm8
	DivRm16
	DivRm32
	DivRm64
	IdivRm8
	IdivRm16
	IdivRm32
	IdivRm64
	Clc
	Stc
	Cli
	Sti
	Cld
	Std
	IncRm8
	DecRm8
	IncRm16
	IncRm32
	IncRm64
	DecRm16
	DecRm32
	DecRm64
	CallRm16
	CallRm32
	CallRm64
	CallfM1616
	CallfM1632
	CallfM1664
	JmpRm16
	JmpRm32
	JmpRm64
	JmpfM1616
	JmpfM1632
	JmpfM1664
	PushRm16
	PushRm32
	PushRm64
	FaddM32fp
	FaddM64fp
	FaddSt0Sti
	FmulM32fp
	FmulM64fp
	FmulSt0Sti
	FcomM32fp
	FcomM64fp
	FcomSt0Sti
	FcompM32fp
	FcompM64fp
	FcompSt0Sti
	FsubM32fp
	FsubM64fp
	FsubSt0Sti
	FsubrM32fp
	FsubrM64fp
	FsubrSt0Sti
	FdivM32fp
	FdivM64fp
	FdivSt0Sti
	FdivrM32fp
	FdivrM64fp
	FdivrSt0Sti
	FiaddM32int
	FiaddM16int
	FimulM32int
	FimulM16int
	FicomM32int
	FicomM16int
	FicompM32int
	FicompM16int
	FisubM32int
	FisubM16int
	FisubrM32int
	FisubrM16int
	FidivM32int
	FidivM16int
	FidivrM32int
	FidivrM16int
	FaddStiSt0
	FmulStiSt0
	FsubrStiSt0
	FsubStiSt0
	FdivrStiSt0
	FdivStiSt0
	FaddpStiSt0
	FmulpStiSt0
	FsubrpStiSt0
	FsubpStiSt0
	FdivrpStiSt0
	FdivpStiSt0
	Fcompp
	FldM32fp
	FstM32fp
	FstpM32fp
	FldenvM14byte
	FldenvM28byte
	FldcwM16
	FnstenvM14byte
	FnstenvM28byte
	FnstcwM16
	FldSti
	FxchSti
	Fnop
	Fchs
	Fabs
	Ftst
	Fxam
	Fld1
	Fldl2t
	Fldl2e
	Fldpi
	Fldlg2
	Fldln2
	Fldz
	F2xm1
	Fyl2x
	Fptan
	Fpatan
	Fxtract
	Fprem1
	Fdecstp
	Fincstp
	Fprem
	Fyl2xp1
	Fsqrt
	Fsincos
	Frndint
	Fscale
	Fsin
	Fcos
	FcmovbSt0Sti
	FcmoveSt0Sti
	FcmovbeSt0Sti
	FcmovuSt0Sti
	Fucompp
	FildM32int
	FisttpM32int
	FistM32int
	FistpM32int
	FldM80fp
	FstpM80fp
	FcmovnbSt0Sti
	FcmovneSt0Sti
	FcmovnbeSt0Sti
	FcmovnuSt0Sti
	Fnclex
	Fninit
	FucomiSt0Sti
	FcomiSt0Sti
	FldM64fp
	FisttpM64int
	FstM64fp
	FstpM64fp
	FrstorM94byte
	FrstorM108byte
	FnsaveM94byte
	FnsaveM108byte
	FnstswM16
	FfreeSti
	FstSti
	FstpSti
	FucomSti
	FucompSti
	FildM16int
	FisttpM16int
	FistM16int
	FistpM16int
	FbldM80bcd
	FildM64int
	FbstpM80bcd
	FistpM64int
	FfreepSti
	FnstswAX
	FucomipSt0Sti
	FcomipSt0Sti
	SldtR16m16
	SldtR32m16
	SldtR64m16
	StrR16m16
	StrR32m16
	StrR64m16
	LldtRm16
	LtrRm16
	VerrRm16
	VerwRm16
	SgdtM1632
	SgdtM1664
	SidtM1632
	SidtM1664
	LgdtM1632
	LgdtM1664
	LidtM1632
	LidtM1664
	InvlpgM8
	SmswR16m16
	SmswR32m16
	SmswR64m16
	LmswRm16
	Vmcall
	Vmlaunch
	Vmresume
	Vmxoff
	Monitor
	Mwait
	Clac
	Stac
	Xgetbv
	Xsetbv
	Xend
	Xtest
	Rdtscp
	Swapgs
	LarR16Rm16
	LarR32Rm16
	LarR64Rm16
	LslR16Rm16
	LslR32Rm16
	LslR64Rm16
	Syscall
	Clts
	Sysret
	Sysretq
	Invd
	Wbinvd
	Ud2
	PrefetchwM8
	MovupsXmmXmmm128
	MovupdXmmXmmm128
	MovssXmmXmmm32
	MovsdXmmXmmm64
	MovupsXmmm128Xmm
	MovupdXmmm128Xmm
	MovssXmmm32Xmm
	MovsdXmmm64Xmm
	MovlpsXmmM64
	MovhlpsXmmXmm
	MovlpdXmmM64
	MovsldupXmmXmmm128
	MovddupXmmXmmm64
	MovlpsM64Xmm
	MovlpdM64Xmm
	UnpcklpsXmmXmmm128
	UnpcklpdXmmXmmm128
	UnpckhpsXmmXmmm128
	UnpckhpdXmmXmmm128
	MovhpsXmmM64
	MovlhpsXmmXmm
	MovhpdXmmM64
	MovshdupXmmXmmm128
	MovhpsM64Xmm
	MovhpdM64Xmm
	PrefetchntaM8
	Prefetcht0M8
	Prefetcht1M8
	Prefetcht2M8
	Endbr64
	Endbr32
	NopRm16
	NopRm32
	NopRm64
	MovR32Cr
	MovR64Cr
	MovR32Dr
	MovR64Dr
	MovCrR32
	MovCrR64
	MovDrR32
	MovDrR64
	MovapsXmmXmmm128
	MovapdXmmXmmm128
	MovapsXmmm128Xmm
	MovapdXmmm128Xmm
	Cvtpi2psXmmMmm64
	Cvtpi2pdXmmMmm64
	Cvtsi2ssXmmRm32
	Cvtsi2ssXmmRm64
	Cvtsi2sdXmmRm32
	Cvtsi2sdXmmRm64
	MovntpsM128Xmm
	MovntpdM128Xmm
	Cvttps2piMmXmmm64
	Cvttpd2piMmXmmm128
	Cvttss2siR32Xmmm32
	Cvttss2siR64Xmmm32
	Cvttsd2siR32Xmmm64
	Cvttsd2siR64Xmmm64
	Cvtps2piMmXmmm64
	Cvtpd2piMmXmmm128
	Cvtss2siR32Xmmm32
	Cvtss2siR64Xmmm32
	Cvtsd2siR32Xmmm64
	Cvtsd2siR64Xmmm64
	UcomissXmmXmmm32
	UcomisdXmmXmmm64
	ComissXmmXmmm32
	ComisdXmmXmmm64
	Wrmsr
	Rdtsc
	Rdmsr
	Rdpmc
	Sysenter
	Sysexit
	Getsec
	CmovoR16Rm16
	CmovoR32Rm32
	CmovoR64Rm64
	JoRel16
	JoRel32Op32
	JoRel32Op64
	SetoRm8
	CmovnoR16Rm16
	CmovnoR32Rm32
	CmovnoR64Rm64
	JnoRel16
	JnoRel32Op32
	JnoRel32Op64
	SetnoRm8
	CmovbR16Rm16
	CmovbR32Rm32
	CmovbR64Rm64
	JbRel16
	JbRel32Op32
	JbRel32Op64
	SetbRm8
	CmovaeR16Rm16
	CmovaeR32Rm32
	CmovaeR64Rm64
	JaeRel16
	JaeRel32Op32
	JaeRel32Op64
	SetaeRm8
	CmoveR16Rm16
	CmoveR32Rm32
	CmoveR64Rm64
	JeRel16
	JeRel32Op32
	JeRel32Op64
	SeteRm8
	CmovneR16Rm16
	CmovneR32Rm32
	CmovneR64Rm64
	JneRel16
	JneRel32Op32
	JneRel32Op64
	SetneRm8
	CmovbeR16Rm16
	CmovbeR32Rm32
	CmovbeR64Rm64
	JbeRel16
	JbeRel32Op32
	JbeRel32Op64
	SetbeRm8
	CmovaR16Rm16
	CmovaR32Rm32
	CmovaR64Rm64
	JaRel16
	JaRel32Op32
	JaRel32Op64
	SetaRm8
	CmovsR16Rm16
	CmovsR32Rm32
	CmovsR64Rm64
	JsRel16
	JsRel32Op32
	JsRel32Op64
	SetsRm8
	CmovnsR16Rm16
	CmovnsR32Rm32
	CmovnsR64Rm64
	JnsRel16
	JnsRel32Op32
	JnsRel32Op64
	SetnsRm8
	CmovpR16Rm16
	CmovpR32Rm32
	CmovpR64Rm64
	JpRel16
	JpRel32Op32
	JpRel32Op64
	SetpRm8
	CmovnpR16Rm16
	CmovnpR32Rm32
	CmovnpR64Rm64
	JnpRel16
	JnpRel32Op32
	JnpRel32Op64
	SetnpRm8
	CmovlR16Rm16
	CmovlR32Rm32
	CmovlR64Rm64
	JlRel16
	JlRel32Op32
	JlRel32Op64
	SetlRm8
	CmovgeR16Rm16
	CmovgeR32Rm32
	CmovgeR64Rm64
	JgeRel16
	JgeRel32Op32
	JgeRel32Op64
	SetgeRm8
	CmovleR16Rm16
	CmovleR32Rm32
	CmovleR64Rm64
	JleRel16
	JleRel32Op32
	JleRel32Op64
	SetleRm8
	CmovgR16Rm16
	CmovgR32Rm32
	CmovgR64Rm64
	JgRel16
	JgRel32Op32
	JgRel32Op64
	SetgRm8
	MovmskpsR32Xmm
	MovmskpsR64Xmm
	MovmskpdR32Xmm
	MovmskpdR64Xmm
	SqrtpsXmmXmmm128
	SqrtpdXmmXmmm128
	SqrtssXmmXmmm32
	SqrtsdXmmXmmm64
	RsqrtpsXmmXmmm128
	RsqrtssXmmXmmm32
	RcppsXmmXmmm128
	RcpssXmmXmmm32
	AndpsXmmXmmm128
	AndpdXmmXmmm128
	AndnpsXmmXmmm128
	AndnpdXmmXmmm128
	OrpsXmmXmmm128
	OrpdXmmXmmm128
	XorpsXmmXmmm128
	XorpdXmmXmmm128
	AddpsXmmXmmm128
	AddpdXmmXmmm128
	AddssXmmXmmm32
	AddsdXmmXmmm64
	MulpsXmmXmmm128
	MulpdXmmXmmm128
	MulssXmmXmmm32
	MulsdXmmXmmm64
	Cvtps2pdXmmXmmm64
	Cvtpd2psXmmXmmm128
	Cvtss2sdXmmXmmm32
	Cvtsd2ssXmmXmmm64
	Cvtdq2psXmmXmmm128
	Cvtps2dqXmmXmmm128
	Cvttps2dqXmmXmmm128
	SubpsXmmXmmm128
	SubpdXmmXmmm128
	SubssXmmXmmm32
	SubsdXmmXmmm64
	MinpsXmmXmmm128
	MinpdXmmXmmm128
	MinssXmmXmmm32
	MinsdXmmXmmm64
	DivpsXmmXmmm128
	DivpdXmmXmmm128
	DivssXmmXmmm32
	DivsdXmmXmmm64
	MaxpsXmmXmmm128
	MaxpdXmmXmmm128
	MaxssXmmXmmm32
	MaxsdXmmXmmm64
	PunpcklbwMmMmm64
	PunpcklbwXmmXmmm128
	PunpcklwdMmMmm64
	PunpcklwdXmmXmmm128
	PunpckldqMmMmm64
	PunpckldqXmmXmmm128
	PacksswbMmMmm64
	PacksswbXmmXmmm128
	PcmpgtbMmMmm64
	PcmpgtbXmmXmmm128
	PcmpgtwMmMmm64
	PcmpgtwXmmXmmm128
	PcmpgtdMmMmm64
	PcmpgtdXmmXmmm128
	PackuswbMmMmm64
	PackuswbXmmXmmm128
	PunpckhbwMmMmm64
	PunpckhbwXmmXmmm128
	PunpckhwdMmMmm64
	PunpckhwdXmmXmmm128
	PunpckhdqMmMmm64
	PunpckhdqXmmXmmm128
	PackssdwMmMmm64
	PackssdwXmmXmmm128
	PcmpeqbMmMmm64
	PcmpeqbXmmXmmm128
	PcmpeqwMmMmm64
	PcmpeqwXmmXmmm128
	PcmpeqdMmMmm64
	PcmpeqdXmmXmmm128
	PsrlwMmMmm64
	PsrlwXmmXmmm128
	PsrldMmMmm64
	PsrldXmmXmmm128
	PsrlqMmMmm64
	PsrlqXmmXmmm128
	PaddqMmMmm64
	PaddqXmmXmmm128
	PmullwMmMmm64
	PmullwXmmXmmm128
	PsubusbMmMmm64
	PsubusbXmmXmmm128
	PsubuswMmMmm64
	PsubuswXmmXmmm128
	PminubMmMmm64
	PminubXmmXmmm128
	PandMmMmm64
	PandXmmXmmm128
	PaddusbMmMmm64
	PaddusbXmmXmmm128
	PadduswMmMmm64
	PadduswXmmXmmm128
	PmaxubMmMmm64
	PmaxubXmmXmmm128
	PandnMmMmm64
	PandnXmmXmmm128
	PavgbMmMmm64
	PavgbXmmXmmm128
	PsrawMmMmm64
	PsrawXmmXmmm128
	PsradMmMmm64
	PsradXmmXmmm128
	PavgwMmMmm64
	PavgwXmmXmmm128
	PmulhuwMmMmm64
	PmulhuwXmmXmmm128
	PmulhwMmMmm64
	PmulhwXmmXmmm128
	PsubsbMmMmm64
	PsubsbXmmXmmm128
	PsubswMmMmm64
	PsubswXmmXmmm128
	PminswMmMmm64
	PminswXmmXmmm128
	PorMmMmm64
	PorXmmXmmm128
	PaddsbMmMmm64
	PaddsbXmmXmmm128
	PaddswMmMmm64
	PaddswXmmXmmm128
	PmaxswMmMmm64
	PmaxswXmmXmmm128
	PxorMmMmm64
	PxorXmmXmmm128
	PsllwMmMmm64
	PsllwXmmXmmm128
	PslldMmMmm64
	PslldXmmXmmm128
	PsllqMmMmm64
	PsllqXmmXmmm128
	PmuludqMmMmm64
	PmuludqXmmXmmm128
	PmaddwdMmMmm64
	PmaddwdXmmXmmm128
	PsadbwMmMmm64
	PsadbwXmmXmmm128
	PsubbMmMmm64
	PsubbXmmXmmm128
	PsubwMmMmm64
	PsubwXmmXmmm128
	PsubdMmMmm64
	PsubdXmmXmmm128
	PsubqMmMmm64
	PsubqXmmXmmm128
	PaddbMmMmm64
	PaddbXmmXmmm128
	PaddwMmMmm64
	PaddwXmmXmmm128
	PadddMmMmm64
	PadddXmmXmmm128
	PunpcklqdqXmmXmmm128
	PunpckhqdqXmmXmmm128
	MovdMmRm32
	MovqMmRm64
	MovdXmmRm32
	MovqXmmRm64
	MovqMmMmm64
	MovdqaXmmXmmm128
	MovdquXmmXmmm128
	PshufwMmMmm64Imm8
	PshufdXmmXmmm128Imm8
	PshufhwXmmXmmm128Imm8
	PshuflwXmmXmmm128Imm8
	PsrlwMmImm8
	PsrlwXmmImm8
	PsrawMmImm8
	PsrawXmmImm8
	PsllwMmImm8
	PsllwXmmImm8
	PsrldMmImm8
	PsrldXmmImm8
	PsradMmImm8
	PsradXmmImm8
	PslldMmImm8
	PslldXmmImm8
	PsrlqMmImm8
	PsrlqXmmImm8
	PsllqMmImm8
	PsllqXmmImm8
	PsrldqXmmImm8
	PslldqXmmImm8
	Emms
	HaddpdXmmXmmm128
	HaddpsXmmXmmm128
	HsubpdXmmXmmm128
	HsubpsXmmXmmm128
	MovdRm32Mm
	MovqRm64Mm
	MovdRm32Xmm
	MovqRm64Xmm
	MovqXmmXmmm64
	MovqMmm64Mm
	MovdqaXmmm128Xmm
	MovdquXmmm128Xmm
	PushFS
	PopFS
	Cpuid
	BtRm16R16
	BtRm32R32
	BtRm64R64
	ShldRm16R16Imm8
	ShldRm32R32Imm8
	ShldRm64R64Imm8
	ShldRm16R16CL
	ShldRm32R32CL
	ShldRm64R64CL
	PushGS
	PopGS
	Rsm
	BtsRm16R16
	BtsRm32R32
	BtsRm64R64
	ShrdRm16R16Imm8
	ShrdRm32R32Imm8
	ShrdRm64R64Imm8
	ShrdRm16R16CL
	ShrdRm32R32CL
	ShrdRm64R64CL
	FxsaveM512byte
	FxrstorM512byte
	LdmxcsrM32
	StmxcsrM32
	XsaveMem
	XrstorMem
	XsaveoptMem
	ClflushM8
	Lfence
	Mfence
	Sfence
	RdfsbaseR32
	RdfsbaseR64
	RdgsbaseR32
	RdgsbaseR64
	WrfsbaseR32
	WrfsbaseR64
	WrgsbaseR32
	WrgsbaseR64
	ImulR16Rm16
	ImulR32Rm32
	ImulR64Rm64
	CmpxchgRm8R8
	CmpxchgRm16R16
	CmpxchgRm32R32
	CmpxchgRm64R64
	LssR16M1616
	LssR32M1632
	LssR64M1664
	BtrRm16R16
	BtrRm32R32
	BtrRm64R64
	LfsR16M1616
	LfsR32M1632
	LfsR64M1664
	LgsR16M1616
	LgsR32M1632
	LgsR64M1664
	MovzxR16Rm8
	MovzxR32Rm8
	MovzxR64Rm8
	MovzxR16Rm16
	MovzxR32Rm16
	MovzxR64Rm16
	PopcntR16Rm16
	PopcntR32Rm32
	PopcntR64Rm64
	Ud1R16Rm16
	Ud1R32Rm32
	Ud1R64Rm64
	BtRm16Imm8
	BtRm32Imm8
	BtRm64Imm8
	BtsRm16Imm8
	BtsRm32Imm8
	BtsRm64Imm8
	BtrRm16Imm8
	BtrRm32Imm8
	BtrRm64Imm8
	BtcRm16Imm8
	BtcRm32Imm8
	BtcRm64Imm8
	BtcRm16R16
	BtcRm32R32
	BtcRm64R64
	BsfR16Rm16
	BsfR32Rm32
	BsfR64Rm64
	TzcntR16Rm16
	TzcntR32Rm32
	TzcntR64Rm64
	BsrR16Rm16
	BsrR32Rm32
	BsrR64Rm64
	LzcntR16Rm16
	LzcntR32Rm32
	LzcntR64Rm64
	MovsxR16Rm8
	MovsxR32Rm8
	MovsxR64Rm8
	MovsxR16Rm16
	MovsxR32Rm16
	MovsxR64Rm16
	XaddRm8R8
	XaddRm16R16
	XaddRm32R32
	XaddRm64R64
	CmppsXmmXmmm128Imm8
	CmppdXmmXmmm128Imm8
	CmpssXmmXmmm32Imm8
	CmpsdXmmXmmm64Imm8
	MovntiM32R32
	MovntiM64R64
	PinsrwMmR32m16Imm8
	PinsrwMmR64m16Imm8
	PinsrwXmmR32m16Imm8
	PinsrwXmmR64m16Imm8
	PextrwR32MmImm8
	PextrwR64MmImm8
	PextrwR32XmmImm8
	PextrwR64XmmImm8
	ShufpsXmmXmmm128Imm8
	ShufpdXmmXmmm128Imm8
	Cmpxchg8bM64
	Cmpxchg16bM128
	RdrandR16
	RdrandR32
	RdrandR64
	RdseedR16
	RdseedR32
	RdseedR64
	RdpidR32
	RdpidR64
	BswapR16
	BswapR32
	BswapR64
	AddsubpdXmmXmmm128
	AddsubpsXmmXmmm128
	MovqXmmm64Xmm
	Movq2dqXmmMm
	Movdq2qMmXmm
	PmovmskbR32Mm
	PmovmskbR64Mm
	PmovmskbR32Xmm
	PmovmskbR64Xmm
	Cvttpd2dqXmmXmmm128
	Cvtdq2pdXmmXmmm64
	Cvtpd2dqXmmXmmm128
	MovntqM64Mm
	MovntdqM128Xmm
	LddquXmmM128
	MaskmovqMmMm
	MaskmovdquXmmXmm
	Ud0R16Rm16
	Ud0R32Rm32
	Ud0R64Rm64
	PshufbMmMmm64
	PshufbXmmXmmm128
	PhaddwMmMmm64
	PhaddwXmmXmmm128
	PhadddMmMmm64
	PhadddXmmXmmm128
	PhaddswMmMmm64
	PhaddswXmmXmmm128
	PmaddubswMmMmm64
	PmaddubswXmmXmmm128
	PhsubwMmMmm64
	PhsubwXmmXmmm128
	PhsubdMmMmm64
	PhsubdXmmXmmm128
	PhsubswMmMmm64
	PhsubswXmmXmmm128
	PsignbMmMmm64
	PsignbXmmXmmm128
	PsignwMmMmm64
	PsignwXmmXmmm128
	PsigndMmMmm64
	PsigndXmmXmmm128
	PmulhrswMmMmm64
	PmulhrswXmmXmmm128
	PabsbMmMmm64
	PabsbXmmXmmm128
	PabswMmMmm64
	PabswXmmXmmm128
	PabsdMmMmm64
	PabsdXmmXmmm128
	PblendvbXmmXmmm128Xmm0
	BlendvpsXmmXmmm128Xmm0
	BlendvpdXmmXmmm128Xmm0
	PtestXmmXmmm128
	PmovsxbwXmmXmmm64
	PmovsxbdXmmXmmm32
	PmovsxbqXmmXmmm16
	PmovsxwdXmmXmmm64
	PmovsxwqXmmXmmm32
	PmovsxdqXmmXmmm64
	PmovzxbwXmmXmmm64
	PmovzxbdXmmXmmm32
	PmovzxbqXmmXmmm16
	PmovzxwdXmmXmmm64
	PmovzxwqXmmXmmm32
	PmovzxdqXmmXmmm64
	PmuldqXmmXmmm128
	PcmpeqqXmmXmmm128
	PackusdwXmmXmmm128
	PcmpgtqXmmXmmm128
	PminsbXmmXmmm128
	PminsdXmmXmmm128
	PminuwXmmXmmm128
	PminudXmmXmmm128
	PmaxsbXmmXmmm128
	PmaxsdXmmXmmm128
	PmaxuwXmmXmmm128
	PmaxudXmmXmmm128
	PmulldXmmXmmm128
	PhminposuwXmmXmmm128
	AesimcXmmXmmm128
	AesencXmmXmmm128
	AesenclastXmmXmmm128
	AesdecXmmXmmm128
	AesdeclastXmmXmmm128
	MovntdqaXmmM128
	MovbeR16M16
	MovbeR32M32
	MovbeR64M64
	Crc32R32Rm8
	Crc32R64Rm8
	MovbeM16R16
	MovbeM32R32
	MovbeM64R64
	Crc32R32Rm16
	Crc32R32Rm32
	Crc32R64Rm64
	AdcxR32Rm32
	AdcxR64Rm64
	AdoxR32Rm32
	AdoxR64Rm64
	PalignrMmMmm64Imm8
	PalignrXmmXmmm128Imm8
	RoundpsXmmXmmm128Imm8
	RoundpdXmmXmmm128Imm8
	RoundssXmmXmmm32Imm8
	RoundsdXmmXmmm64Imm8
	BlendpsXmmXmmm128Imm8
	BlendpdXmmXmmm128Imm8
	PblendwXmmXmmm128Imm8
	PextrbR32m8XmmImm8
	PextrbR64m8XmmImm8
	PextrwR32m16XmmImm8
	PextrwR64m16XmmImm8
	PextrdRm32XmmImm8
	PextrqRm64XmmImm8
	ExtractpsRm32XmmImm8
	PinsrbXmmR32m8Imm8
	PinsrbXmmR64m8Imm8
	InsertpsXmmXmmm32Imm8
	PinsrdXmmRm32Imm8
	PinsrqXmmRm64Imm8
	DppsXmmXmmm128Imm8
	DppdXmmXmmm128Imm8
	MpsadbwXmmXmmm128Imm8
	PclmulqdqXmmXmmm128Imm8
	PcmpestrmXmmXmmm128Imm8
	PcmpestriXmmXmmm128Imm8
	PcmpistrmXmmXmmm128Imm8
	PcmpistriXmmXmmm128Imm8
	AeskeygenassistXmmXmmm128Imm8
	VexVmovupsXmmXmmm128
	VexVmovupsYmmYmmm256
	VexVmovupdXmmXmmm128
	VexVmovupdYmmYmmm256
	VexVmovupsXmmm128Xmm
	VexVmovupsYmmm256Ymm
	VexVmovupdXmmm128Xmm
	VexVmovupdYmmm256Ymm
	VexVmovapsXmmXmmm128
	VexVmovapsYmmYmmm256
	VexVmovapdXmmXmmm128
	VexVmovapdYmmYmmm256
	VexVmovapsXmmm128Xmm
	VexVmovapsYmmm256Ymm
	VexVmovapdXmmm128Xmm
	VexVmovapdYmmm256Ymm
	VexVmovssXmmM32
	VexVmovssXmmXmmXmm
	VexVmovsdXmmM64
	VexVmovsdXmmXmmXmm
	VexVmovssM32Xmm
	VexVmovssXmmXmmXmmOp0F11
	VexVmovsdM64Xmm
	VexVmovsdXmmXmmXmmOp0F11
	VexVsqrtpsXmmXmmm128
	VexVsqrtpsYmmYmmm256
	VexVsqrtpdXmmXmmm128
	VexVsqrtpdYmmYmmm256
	VexVsqrtssXmmXmmXmmm32
	VexVsqrtsdXmmXmmXmmm64
	VexVandpsXmmXmmXmmm128
	VexVandpsYmmYmmYmmm256
	VexVandpdXmmXmmXmmm128
	VexVandpdYmmYmmYmmm256
	VexVandnpsXmmXmmXmmm128
	VexVandnpsYmmYmmYmmm256
	VexVandnpdXmmXmmXmmm128
	VexVandnpdYmmYmmYmmm256
	VexVorpsXmmXmmXmmm128
	VexVorpsYmmYmmYmmm256
	VexVorpdXmmXmmXmmm128
	VexVorpdYmmYmmYmmm256
	VexVxorpsXmmXmmXmmm128
	VexVxorpsYmmYmmYmmm256
	VexVxorpdXmmXmmXmmm128
	VexVxorpdYmmYmmYmmm256
	VexVaddpsXmmXmmXmmm128
	VexVaddpsYmmYmmYmmm256
	VexVaddpdXmmXmmXmmm128
	VexVaddpdYmmYmmYmmm256
	VexVaddssXmmXmmXmmm32
	VexVaddsdXmmXmmXmmm64
	VexVmulpsXmmXmmXmmm128
	VexVmulpsYmmYmmYmmm256
	VexVmulpdXmmXmmXmmm128
	VexVmulpdYmmYmmYmmm256
	VexVmulssXmmXmmXmmm32
	VexVmulsdXmmXmmXmmm64
	VexVsubpsXmmXmmXmmm128
	VexVsubpsYmmYmmYmmm256
	VexVsubpdXmmXmmXmmm128
	VexVsubpdYmmYmmYmmm256
	VexVsubssXmmXmmXmmm32
	VexVsubsdXmmXmmXmmm64
	VexVminpsXmmXmmXmmm128
	VexVminpsYmmYmmYmmm256
	VexVminpdXmmXmmXmmm128
	VexVminpdYmmYmmYmmm256
	VexVminssXmmXmmXmmm32
	VexVminsdXmmXmmXmmm64
	VexVdivpsXmmXmmXmmm128
	VexVdivpsYmmYmmYmmm256
	VexVdivpdXmmXmmXmmm128
	VexVdivpdYmmYmmYmmm256
	VexVdivssXmmXmmXmmm32
	VexVdivsdXmmXmmXmmm64
	VexVmaxpsXmmXmmXmmm128
	VexVmaxpsYmmYmmYmmm256
	VexVmaxpdXmmXmmXmmm128
	VexVmaxpdYmmYmmYmmm256
	VexVmaxssXmmXmmXmmm32
	VexVmaxsdXmmXmmXmmm64
	VexVucomissXmmXmmm32
	VexVucomisdXmmXmmm64
	VexVcomissXmmXmmm32
	VexVcomisdXmmXmmm64
	VexVmovdqaXmmXmmm128
	VexVmovdqaYmmYmmm256
	VexVmovdquXmmXmmm128
	VexVmovdquYmmYmmm256
	VexVmovdqaXmmm128Xmm
	VexVmovdqaYmmm256Ymm
	VexVmovdquXmmm128Xmm
	VexVmovdquYmmm256Ymm
	VexVzeroupper
	VexVzeroall
	VexVcmppsXmmXmmXmmm128Imm8
	VexVcmppsYmmYmmYmmm256Imm8
	VexVcmppdXmmXmmXmmm128Imm8
	VexVcmppdYmmYmmYmmm256Imm8
	VexVpaddqXmmXmmXmmm128
	VexVpaddqYmmYmmYmmm256
	VexVpandXmmXmmXmmm128
	VexVpandYmmYmmYmmm256
	VexVporXmmXmmXmmm128
	VexVporYmmYmmYmmm256
	VexVpxorXmmXmmXmmm128
	VexVpxorYmmYmmYmmm256
	VexVpadddXmmXmmXmmm128
	VexVpadddYmmYmmYmmm256
	VexVpsubdXmmXmmXmmm128
	VexVpsubdYmmYmmYmmm256
	VexVpcmpeqbXmmXmmXmmm128
	VexVpcmpeqbYmmYmmYmmm256
	VexVpcmpeqdXmmXmmXmmm128
	VexVpcmpeqdYmmYmmYmmm256
	VexVpmovmskbR32Xmm
	VexVpmovmskbR32Ymm
	VexVldmxcsrM32
	VexVstmxcsrM32
	VexKandwKrKrKr
	VexKorwKrKrKr
	VexKxorwKrKrKr
	VexKnotwKrKr
	VexKmovwKrKm16
	VexKmovwM16Kr
	VexKmovwKrR32
	VexKmovwR32Kr
	VexKortestwKrKr
	VexVpshufbXmmXmmXmmm128
	VexVpshufbYmmYmmYmmm256
	VexVptestXmmXmmm128
	VexVptestYmmYmmm256
	VexVbroadcastssXmmM32
	VexVbroadcastssYmmM32
	VexVbroadcastssXmmXmm
	VexVbroadcastssYmmXmm
	VexVpermdYmmYmmYmmm256
	VexVpbroadcastdXmmXmmm32
	VexVpbroadcastdYmmXmmm32
	VexVfmadd132psXmmXmmXmmm128
	VexVfmadd132psYmmYmmYmmm256
	VexVfmadd132pdXmmXmmXmmm128
	VexVfmadd132pdYmmYmmYmmm256
	VexVfmadd132ssXmmXmmXmmm32
	VexVfmadd132sdXmmXmmXmmm64
	VexVfmadd213psXmmXmmXmmm128
	VexVfmadd213psYmmYmmYmmm256
	VexVfmadd213pdXmmXmmXmmm128
	VexVfmadd213pdYmmYmmYmmm256
	VexVfmadd213ssXmmXmmXmmm32
	VexVfmadd213sdXmmXmmXmmm64
	VexVfmadd231psXmmXmmXmmm128
	VexVfmadd231psYmmYmmYmmm256
	VexVfmadd231pdXmmXmmXmmm128
	VexVfmadd231pdYmmYmmYmmm256
	VexVfmadd231ssXmmXmmXmmm32
	VexVfmadd231sdXmmXmmXmmm64
	VexAndnR32R32Rm32
	VexAndnR64R64Rm64
	VexBlsrR32Rm32
	VexBlsrR64Rm64
	VexBlsmskR32Rm32
	VexBlsmskR64Rm64
	VexBlsiR32Rm32
	VexBlsiR64Rm64
	VexBzhiR32Rm32R32
	VexBzhiR64Rm64R64
	VexPextR32R32Rm32
	VexPextR64R64Rm64
	VexPdepR32R32Rm32
	VexPdepR64R64Rm64
	VexMulxR32R32Rm32
	VexMulxR64R64Rm64
	VexBextrR32Rm32R32
	VexBextrR64Rm64R64
	VexShlxR32Rm32R32
	VexShlxR64Rm64R64
	VexSarxR32Rm32R32
	VexSarxR64Rm64R64
	VexShrxR32Rm32R32
	VexShrxR64Rm64R64
	VexVpermqYmmYmmm256Imm8
	VexVblendpsXmmXmmXmmm128Imm8
	VexVblendpsYmmYmmYmmm256Imm8
	VexVinsertf128YmmYmmXmmm128Imm8
	VexVextractf128Xmmm128YmmImm8
	VexVblendvpsXmmXmmXmmm128Xmm
	VexVblendvpsYmmYmmYmmm256Ymm
	VexVblendvpdXmmXmmXmmm128Xmm
	VexVblendvpdYmmYmmYmmm256Ymm
	VexRorxR32Rm32Imm8
	VexRorxR64Rm64Imm8
	VexVmovlpsXmmXmmM64
	VexVmovhlpsXmmXmmXmm
	VexVmovlpdXmmXmmM64
	VexVmovsldupXmmXmmm128
	VexVmovsldupYmmYmmm256
	VexVmovddupXmmXmmm64
	VexVmovddupYmmYmmm256
	VexVmovlpsM64Xmm
	VexVmovlpdM64Xmm
	VexVunpcklpsXmmXmmXmmm128
	VexVunpcklpsYmmYmmYmmm256
	VexVunpcklpdXmmXmmXmmm128
	VexVunpcklpdYmmYmmYmmm256
	VexVunpckhpsXmmXmmXmmm128
	VexVunpckhpsYmmYmmYmmm256
	VexVunpckhpdXmmXmmXmmm128
	VexVunpckhpdYmmYmmYmmm256
	VexVmovhpsXmmXmmM64
	VexVmovlhpsXmmXmmXmm
	VexVmovhpdXmmXmmM64
	VexVmovshdupXmmXmmm128
	VexVmovshdupYmmYmmm256
	VexVmovhpsM64Xmm
	VexVmovhpdM64Xmm
	VexVcvtsi2ssXmmXmmRm32
	VexVcvtsi2ssXmmXmmRm64
	VexVcvtsi2sdXmmXmmRm32
	VexVcvtsi2sdXmmXmmRm64
	VexVmovntpsM128Xmm
	VexVmovntpsM256Ymm
	VexVmovntpdM128Xmm
	VexVmovntpdM256Ymm
	VexVcvttss2siR32Xmmm32
	VexVcvttss2siR64Xmmm32
	VexVcvttsd2siR32Xmmm64
	VexVcvttsd2siR64Xmmm64
	VexVcvtss2siR32Xmmm32
	VexVcvtss2siR64Xmmm32
	VexVcvtsd2siR32Xmmm64
	VexVcvtsd2siR64Xmmm64
	VexVmovmskpsR32Xmm
	VexVmovmskpsR32Ymm
	VexVmovmskpdR32Xmm
	VexVmovmskpdR32Ymm
	VexVrsqrtpsXmmXmmm128
	VexVrsqrtpsYmmYmmm256
	VexVrsqrtssXmmXmmXmmm32
	VexVrcppsXmmXmmm128
	VexVrcppsYmmYmmm256
	VexVrcpssXmmXmmXmmm32
	VexVcvtps2pdXmmXmmm64
	VexVcvtps2pdYmmXmmm128
	VexVcvtpd2psXmmXmmm128
	VexVcvtpd2psXmmYmmm256
	VexVcvtss2sdXmmXmmXmmm32
	VexVcvtsd2ssXmmXmmXmmm64
	VexVcvtdq2psXmmXmmm128
	VexVcvtdq2psYmmYmmm256
	VexVcvtps2dqXmmXmmm128
	VexVcvtps2dqYmmYmmm256
	VexVcvttps2dqXmmXmmm128
	VexVcvttps2dqYmmYmmm256
	VexVpunpcklbwXmmXmmXmmm128
	VexVpunpcklbwYmmYmmYmmm256
	VexVpunpcklwdXmmXmmXmmm128
	VexVpunpcklwdYmmYmmYmmm256
	VexVpunpckldqXmmXmmXmmm128
	VexVpunpckldqYmmYmmYmmm256
	VexVpacksswbXmmXmmXmmm128
	VexVpacksswbYmmYmmYmmm256
	VexVpcmpgtbXmmXmmXmmm128
	VexVpcmpgtbYmmYmmYmmm256
	VexVpcmpgtwXmmXmmXmmm128
	VexVpcmpgtwYmmYmmYmmm256
	VexVpcmpgtdXmmXmmXmmm128
	VexVpcmpgtdYmmYmmYmmm256
	VexVpackuswbXmmXmmXmmm128
	VexVpackuswbYmmYmmYmmm256
	VexVpunpckhbwXmmXmmXmmm128
	VexVpunpckhbwYmmYmmYmmm256
	VexVpunpckhwdXmmXmmXmmm128
	VexVpunpckhwdYmmYmmYmmm256
	VexVpunpckhdqXmmXmmXmmm128
	VexVpunpckhdqYmmYmmYmmm256
	VexVpackssdwXmmXmmXmmm128
	VexVpackssdwYmmYmmYmmm256
	VexVpunpcklqdqXmmXmmXmmm128
	VexVpunpcklqdqYmmYmmYmmm256
	VexVpunpckhqdqXmmXmmXmmm128
	VexVpunpckhqdqYmmYmmYmmm256
	VexVpcmpeqwXmmXmmXmmm128
	VexVpcmpeqwYmmYmmYmmm256
	VexVpmullwXmmXmmXmmm128
	VexVpmullwYmmYmmYmmm256
	VexVpsubusbXmmXmmXmmm128
	VexVpsubusbYmmYmmYmmm256
	VexVpsubuswXmmXmmXmmm128
	VexVpsubuswYmmYmmYmmm256
	VexVpminubXmmXmmXmmm128
	VexVpminubYmmYmmYmmm256
	VexVpaddusbXmmXmmXmmm128
	VexVpaddusbYmmYmmYmmm256
	VexVpadduswXmmXmmXmmm128
	VexVpadduswYmmYmmYmmm256
	VexVpmaxubXmmXmmXmmm128
	VexVpmaxubYmmYmmYmmm256
	VexVpandnXmmXmmXmmm128
	VexVpandnYmmYmmYmmm256
	VexVpavgbXmmXmmXmmm128
	VexVpavgbYmmYmmYmmm256
	VexVpavgwXmmXmmXmmm128
	VexVpavgwYmmYmmYmmm256
	VexVpmulhuwXmmXmmXmmm128
	VexVpmulhuwYmmYmmYmmm256
	VexVpmulhwXmmXmmXmmm128
	VexVpmulhwYmmYmmYmmm256
	VexVpsubsbXmmXmmXmmm128
	VexVpsubsbYmmYmmYmmm256
	VexVpsubswXmmXmmXmmm128
	VexVpsubswYmmYmmYmmm256
	VexVpminswXmmXmmXmmm128
	VexVpminswYmmYmmYmmm256
	VexVpaddsbXmmXmmXmmm128
	VexVpaddsbYmmYmmYmmm256
	VexVpaddswXmmXmmXmmm128
	VexVpaddswYmmYmmYmmm256
	VexVpmaxswXmmXmmXmmm128
	VexVpmaxswYmmYmmYmmm256
	VexVpmuludqXmmXmmXmmm128
	VexVpmuludqYmmYmmYmmm256
	VexVpmaddwdXmmXmmXmmm128
	VexVpmaddwdYmmYmmYmmm256
	VexVpsadbwXmmXmmXmmm128
	VexVpsadbwYmmYmmYmmm256
	VexVpsubbXmmXmmXmmm128
	VexVpsubbYmmYmmYmmm256
	VexVpsubwXmmXmmXmmm128
	VexVpsubwYmmYmmYmmm256
	VexVpsubqXmmXmmXmmm128
	VexVpsubqYmmYmmYmmm256
	VexVpaddbXmmXmmXmmm128
	VexVpaddbYmmYmmYmmm256
	VexVpaddwXmmXmmXmmm128
	VexVpaddwYmmYmmYmmm256
	VexVpsrlwXmmXmmXmmm128
	VexVpsrlwYmmYmmXmmm128
	VexVpsrldXmmXmmXmmm128
	VexVpsrldYmmYmmXmmm128
	VexVpsrlqXmmXmmXmmm128
	VexVpsrlqYmmYmmXmmm128
	VexVpsrawXmmXmmXmmm128
	VexVpsrawYmmYmmXmmm128
	VexVpsradXmmXmmXmmm128
	VexVpsradYmmYmmXmmm128
	VexVpsllwXmmXmmXmmm128
	VexVpsllwYmmYmmXmmm128
	VexVpslldXmmXmmXmmm128
	VexVpslldYmmYmmXmmm128
	VexVpsllqXmmXmmXmmm128
	VexVpsllqYmmYmmXmmm128
	VexVmovdXmmRm32
	VexVmovqXmmRm64
	VexVpshufdXmmXmmm128Imm8
	VexVpshufdYmmYmmm256Imm8
	VexVpshufhwXmmXmmm128Imm8
	VexVpshufhwYmmYmmm256Imm8
	VexVpshuflwXmmXmmm128Imm8
	VexVpshuflwYmmYmmm256Imm8
	VexVpsrlwXmmXmmImm8
	VexVpsrlwYmmYmmImm8
	VexVpsrawXmmXmmImm8
	VexVpsrawYmmYmmImm8
	VexVpsllwXmmXmmImm8
	VexVpsllwYmmYmmImm8
	VexVpsrldXmmXmmImm8
	VexVpsrldYmmYmmImm8
	VexVpsradXmmXmmImm8
	VexVpsradYmmYmmImm8
	VexVpslldXmmXmmImm8
	VexVpslldYmmYmmImm8
	VexVpsrlqXmmXmmImm8
	VexVpsrlqYmmYmmImm8
	VexVpsrldqXmmXmmImm8
	VexVpsrldqYmmYmmImm8
	VexVpsllqXmmXmmImm8
	VexVpsllqYmmYmmImm8
	VexVpslldqXmmXmmImm8
	VexVpslldqYmmYmmImm8
	VexVhaddpdXmmXmmXmmm128
	VexVhaddpdYmmYmmYmmm256
	VexVhaddpsXmmXmmXmmm128
	VexVhaddpsYmmYmmYmmm256
	VexVhsubpdXmmXmmXmmm128
	VexVhsubpdYmmYmmYmmm256
	VexVhsubpsXmmXmmXmmm128
	VexVhsubpsYmmYmmYmmm256
	VexVmovdRm32Xmm
	VexVmovqRm64Xmm
	VexVmovqXmmXmmm64
	VexVcmpssXmmXmmXmmm32Imm8
	VexVcmpsdXmmXmmXmmm64Imm8
	VexVpinsrwXmmXmmR32m16Imm8
	VexVpinsrwXmmXmmR64m16Imm8
	VexVpextrwR32XmmImm8
	VexVpextrwR64XmmImm8
	VexVshufpsXmmXmmXmmm128Imm8
	VexVshufpsYmmYmmYmmm256Imm8
	VexVshufpdXmmXmmXmmm128Imm8
	VexVshufpdYmmYmmYmmm256Imm8
	VexVaddsubpdXmmXmmXmmm128
	VexVaddsubpdYmmYmmYmmm256
	VexVaddsubpsXmmXmmXmmm128
	VexVaddsubpsYmmYmmYmmm256
	VexVmovqXmmm64Xmm
	VexVcvttpd2dqXmmXmmm128
	VexVcvttpd2dqXmmYmmm256
	VexVcvtdq2pdXmmXmmm64
	VexVcvtdq2pdYmmXmmm128
	VexVcvtpd2dqXmmXmmm128
	VexVcvtpd2dqXmmYmmm256
	VexVmovntdqM128Xmm
	VexVmovntdqM256Ymm
	VexVlddquXmmM128
	VexVlddquYmmM256
	VexVmaskmovdquXmmXmm
	VexVphaddwXmmXmmXmmm128
	VexVphaddwYmmYmmYmmm256
	VexVphadddXmmXmmXmmm128
	VexVphadddYmmYmmYmmm256
	VexVphaddswXmmXmmXmmm128
	VexVphaddswYmmYmmYmmm256
	VexVpmaddubswXmmXmmXmmm128
	VexVpmaddubswYmmYmmYmmm256
	VexVphsubwXmmXmmXmmm128
	VexVphsubwYmmYmmYmmm256
	VexVphsubdXmmXmmXmmm128
	VexVphsubdYmmYmmYmmm256
	VexVphsubswXmmXmmXmmm128
	VexVphsubswYmmYmmYmmm256
	VexVpsignbXmmXmmXmmm128
	VexVpsignbYmmYmmYmmm256
	VexVpsignwXmmXmmXmmm128
	VexVpsignwYmmYmmYmmm256
	VexVpsigndXmmXmmXmmm128
	VexVpsigndYmmYmmYmmm256
	VexVpmulhrswXmmXmmXmmm128
	VexVpmulhrswYmmYmmYmmm256
	VexVpmuldqXmmXmmXmmm128
	VexVpmuldqYmmYmmYmmm256
	VexVpcmpeqqXmmXmmXmmm128
	VexVpcmpeqqYmmYmmYmmm256
	VexVpackusdwXmmXmmXmmm128
	VexVpackusdwYmmYmmYmmm256
	VexVpcmpgtqXmmXmmXmmm128
	VexVpcmpgtqYmmYmmYmmm256
	VexVpminsbXmmXmmXmmm128
	VexVpminsbYmmYmmYmmm256
	VexVpminsdXmmXmmXmmm128
	VexVpminsdYmmYmmYmmm256
	VexVpminuwXmmXmmXmmm128
	VexVpminuwYmmYmmYmmm256
	VexVpminudXmmXmmXmmm128
	VexVpminudYmmYmmYmmm256
	VexVpmaxsbXmmXmmXmmm128
	VexVpmaxsbYmmYmmYmmm256
	VexVpmaxsdXmmXmmXmmm128
	VexVpmaxsdYmmYmmYmmm256
	VexVpmaxuwXmmXmmXmmm128
	VexVpmaxuwYmmYmmYmmm256
	VexVpmaxudXmmXmmXmmm128
	VexVpmaxudYmmYmmYmmm256
	VexVpmulldXmmXmmXmmm128
	VexVpmulldYmmYmmYmmm256
	VexVpermilpsXmmXmmXmmm128
	VexVpermilpsYmmYmmYmmm256
	VexVpermilpdXmmXmmXmmm128
	VexVpermilpdYmmYmmYmmm256
	VexVtestpsXmmXmmm128
	VexVtestpsYmmYmmm256
	VexVtestpdXmmXmmm128
	VexVtestpdYmmYmmm256
	VexVcvtph2psXmmXmmm64
	VexVcvtph2psYmmXmmm128
	VexVpermpsYmmYmmYmmm256
	VexVbroadcastsdYmmXmmm64
	VexVbroadcastf128YmmM128
	VexVpabsbXmmXmmm128
	VexVpabsbYmmYmmm256
	VexVpabswXmmXmmm128
	VexVpabswYmmYmmm256
	VexVpabsdXmmXmmm128
	VexVpabsdYmmYmmm256
	VexVpmovsxbwXmmXmmm64
	VexVpmovsxbwYmmXmmm128
	VexVpmovsxbdXmmXmmm32
	VexVpmovsxbdYmmXmmm64
	VexVpmovsxbqXmmXmmm16
	VexVpmovsxbqYmmXmmm32
	VexVpmovsxwdXmmXmmm64
	VexVpmovsxwdYmmXmmm128
	VexVpmovsxwqXmmXmmm32
	VexVpmovsxwqYmmXmmm64
	VexVpmovsxdqXmmXmmm64
	VexVpmovsxdqYmmXmmm128
	VexVpmovzxbwXmmXmmm64
	VexVpmovzxbwYmmXmmm128
	VexVpmovzxbdXmmXmmm32
	VexVpmovzxbdYmmXmmm64
	VexVpmovzxbqXmmXmmm16
	VexVpmovzxbqYmmXmmm32
	VexVpmovzxwdXmmXmmm64
	VexVpmovzxwdYmmXmmm128
	VexVpmovzxwqXmmXmmm32
	VexVpmovzxwqYmmXmmm64
	VexVpmovzxdqXmmXmmm64
	VexVpmovzxdqYmmXmmm128
	VexVmovntdqaXmmM128
	VexVmovntdqaYmmM256
	VexVmaskmovpsXmmXmmM128
	VexVmaskmovpsYmmYmmM256
	VexVmaskmovpdXmmXmmM128
	VexVmaskmovpdYmmYmmM256
	VexVmaskmovpsM128XmmXmm
	VexVmaskmovpsM256YmmYmm
	VexVmaskmovpdM128XmmXmm
	VexVmaskmovpdM256YmmYmm
	VexVphminposuwXmmXmmm128
	VexVpsrlvdXmmXmmXmmm128
	VexVpsrlvdYmmYmmYmmm256
	VexVpsrlvqXmmXmmXmmm128
	VexVpsrlvqYmmYmmYmmm256
	VexVpsllvdXmmXmmXmmm128
	VexVpsllvdYmmYmmYmmm256
	VexVpsllvqXmmXmmXmmm128
	VexVpsllvqYmmYmmYmmm256
	VexVpsravdXmmXmmXmmm128
	VexVpsravdYmmYmmYmmm256
	VexVpbroadcastqXmmXmmm64
	VexVpbroadcastqYmmXmmm64
	VexVbroadcasti128YmmM128
	VexVpbroadcastbXmmXmmm8
	VexVpbroadcastbYmmXmmm8
	VexVpbroadcastwXmmXmmm16
	VexVpbroadcastwYmmXmmm16
	VexVpmaskmovdXmmXmmM128
	VexVpmaskmovdYmmYmmM256
	VexVpmaskmovqXmmXmmM128
	VexVpmaskmovqYmmYmmM256
	VexVpmaskmovdM128XmmXmm
	VexVpmaskmovdM256YmmYmm
	VexVpmaskmovqM128XmmXmm
	VexVpmaskmovqM256YmmYmm
	VexVpgatherddXmmVm32xXmm
	VexVpgatherddYmmVm32yYmm
	VexVpgatherdqXmmVm32xXmm
	VexVpgatherdqYmmVm32xYmm
	VexVpgatherqdXmmVm64xXmm
	VexVpgatherqdXmmVm64yXmm
	VexVpgatherqqXmmVm64xXmm
	VexVpgatherqqYmmVm64yYmm
	VexVgatherdpsXmmVm32xXmm
	VexVgatherdpsYmmVm32yYmm
	VexVgatherdpdXmmVm32xXmm
	VexVgatherdpdYmmVm32xYmm
	VexVgatherqpsXmmVm64xXmm
	VexVgatherqpsXmmVm64yXmm
	VexVgatherqpdXmmVm64xXmm
	VexVgatherqpdYmmVm64yYmm
	VexVfmaddsub132psXmmXmmXmmm128
	VexVfmaddsub132psYmmYmmYmmm256
	VexVfmaddsub132pdXmmXmmXmmm128
	VexVfmaddsub132pdYmmYmmYmmm256
	VexVfmsubadd132psXmmXmmXmmm128
	VexVfmsubadd132psYmmYmmYmmm256
	VexVfmsubadd132pdXmmXmmXmmm128
	VexVfmsubadd132pdYmmYmmYmmm256
	VexVfmsub132psXmmXmmXmmm128
	VexVfmsub132psYmmYmmYmmm256
	VexVfmsub132pdXmmXmmXmmm128
	VexVfmsub132pdYmmYmmYmmm256
	VexVfmsub132ssXmmXmmXmmm32
	VexVfmsub132sdXmmXmmXmmm64
	VexVfnmadd132psXmmXmmXmmm128
	VexVfnmadd132psYmmYmmYmmm256
	VexVfnmadd132pdXmmXmmXmmm128
	VexVfnmadd132pdYmmYmmYmmm256
	VexVfnmadd132ssXmmXmmXmmm32
	VexVfnmadd132sdXmmXmmXmmm64
	VexVfnmsub132psXmmXmmXmmm128
	VexVfnmsub132psYmmYmmYmmm256
	VexVfnmsub132pdXmmXmmXmmm128
	VexVfnmsub132pdYmmYmmYmmm256
	VexVfnmsub132ssXmmXmmXmmm32
	VexVfnmsub132sdXmmXmmXmmm64
	VexVfmaddsub213psXmmXmmXmmm128
	VexVfmaddsub213psYmmYmmYmmm256
	VexVfmaddsub213pdXmmXmmXmmm128
	VexVfmaddsub213pdYmmYmmYmmm256
	VexVfmsubadd213psXmmXmmXmmm128
	VexVfmsubadd213psYmmYmmYmmm256
	VexVfmsubadd213pdXmmXmmXmmm128
	VexVfmsubadd213pdYmmYmmYmmm256
	VexVfmsub213psXmmXmmXmmm128
	VexVfmsub213psYmmYmmYmmm256
	VexVfmsub213pdXmmXmmXmmm128
	VexVfmsub213pdYmmYmmYmmm256
	VexVfmsub213ssXmmXmmXmmm32
	VexVfmsub213sdXmmXmmXmmm64
	VexVfnmadd213psXmmXmmXmmm128
	VexVfnmadd213psYmmYmmYmmm256
	VexVfnmadd213pdXmmXmmXmmm128
	VexVfnmadd213pdYmmYmmYmmm256
	VexVfnmadd213ssXmmXmmXmmm32
	VexVfnmadd213sdXmmXmmXmmm64
	VexVfnmsub213psXmmXmmXmmm128
	VexVfnmsub213psYmmYmmYmmm256
	VexVfnmsub213pdXmmXmmXmmm128
	VexVfnmsub213pdYmmYmmYmmm256
	VexVfnmsub213ssXmmXmmXmmm32
	VexVfnmsub213sdXmmXmmXmmm64
	VexVfmaddsub231psXmmXmmXmmm128
	VexVfmaddsub231psYmmYmmYmmm256
	VexVfmaddsub231pdXmmXmmXmmm128
	VexVfmaddsub231pdYmmYmmYmmm256
	VexVfmsubadd231psXmmXmmXmmm128
	VexVfmsubadd231psYmmYmmYmmm256
	VexVfmsubadd231pdXmmXmmXmmm128
	VexVfmsubadd231pdYmmYmmYmmm256
	VexVfmsub231psXmmXmmXmmm128
	VexVfmsub231psYmmYmmYmmm256
	VexVfmsub231pdXmmXmmXmmm128
	VexVfmsub231pdYmmYmmYmmm256
	VexVfmsub231ssXmmXmmXmmm32
	VexVfmsub231sdXmmXmmXmmm64
	VexVfnmadd231psXmmXmmXmmm128
	VexVfnmadd231psYmmYmmYmmm256
	VexVfnmadd231pdXmmXmmXmmm128
	VexVfnmadd231pdYmmYmmYmmm256
	VexVfnmadd231ssXmmXmmXmmm32
	VexVfnmadd231sdXmmXmmXmmm64
	VexVfnmsub231psXmmXmmXmmm128
	VexVfnmsub231psYmmYmmYmmm256
	VexVfnmsub231pdXmmXmmXmmm128
	VexVfnmsub231pdYmmYmmYmmm256
	VexVfnmsub231ssXmmXmmXmmm32
	VexVfnmsub231sdXmmXmmXmmm64
	VexVaesimcXmmXmmm128
	VexVaesencXmmXmmXmmm128
	VexVaesencYmmYmmYmmm256
	VexVaesenclastXmmXmmXmmm128
	VexVaesenclastYmmYmmYmmm256
	VexVaesdecXmmXmmXmmm128
	VexVaesdecYmmYmmYmmm256
	VexVaesdeclastXmmXmmXmmm128
	VexVaesdeclastYmmYmmYmmm256
	VexVpermpdYmmYmmm256Imm8
	VexVpblenddXmmXmmXmmm128Imm8
	VexVpblenddYmmYmmYmmm256Imm8
	VexVpermilpsXmmXmmm128Imm8
	VexVpermilpsYmmYmmm256Imm8
	VexVpermilpdXmmXmmm128Imm8
	VexVpermilpdYmmYmmm256Imm8
	VexVperm2f128YmmYmmYmmm256Imm8
	VexVroundpsXmmXmmm128Imm8
	VexVroundpsYmmYmmm256Imm8
	VexVroundpdXmmXmmm128Imm8
	VexVroundpdYmmYmmm256Imm8
	VexVroundssXmmXmmXmmm32Imm8
	VexVroundsdXmmXmmXmmm64Imm8
	VexVblendpdXmmXmmXmmm128Imm8
	VexVblendpdYmmYmmYmmm256Imm8
	VexVpblendwXmmXmmXmmm128Imm8
	VexVpblendwYmmYmmYmmm256Imm8
	VexVpalignrXmmXmmXmmm128Imm8
	VexVpalignrYmmYmmYmmm256Imm8
	VexVpextrbR32m8XmmImm8
	VexVpextrbR64m8XmmImm8
	VexVpextrwR32m16XmmImm8
	VexVpextrwR64m16XmmImm8
	VexVpextrdRm32XmmImm8
	VexVpextrqRm64XmmImm8
	VexVextractpsRm32XmmImm8
	VexVcvtps2phXmmm64XmmImm8
	VexVcvtps2phXmmm128YmmImm8
	VexVpinsrbXmmXmmR32m8Imm8
	VexVpinsrbXmmXmmR64m8Imm8
	VexVinsertpsXmmXmmXmmm32Imm8
	VexVpinsrdXmmXmmRm32Imm8
	VexVpinsrqXmmXmmRm64Imm8
	VexVinserti128YmmYmmXmmm128Imm8
	VexVextracti128Xmmm128YmmImm8
	VexVdppsXmmXmmXmmm128Imm8
	VexVdppsYmmYmmYmmm256Imm8
	VexVdppdXmmXmmXmmm128Imm8
	VexVmpsadbwXmmXmmXmmm128Imm8
	VexVmpsadbwYmmYmmYmmm256Imm8
	VexVpclmulqdqXmmXmmXmmm128Imm8
	VexVpclmulqdqYmmYmmYmmm256Imm8
	VexVperm2i128YmmYmmYmmm256Imm8
	VexVpblendvbXmmXmmXmmm128Xmm
	VexVpblendvbYmmYmmYmmm256Ymm
	VexVpcmpestrmXmmXmmm128Imm8
	VexVpcmpestriXmmXmmm128Imm8
	VexVpcmpistrmXmmXmmm128Imm8
	VexVpcmpistriXmmXmmm128Imm8
	VexVaeskeygenassistXmmXmmm128Imm8
	EvexVmovupsXmmK1zXmmm128
	EvexVmovupsYmmK1zYmmm256
	EvexVmovupsZmmK1zZmmm512
	EvexVmovupdXmmK1zXmmm128
	EvexVmovupdYmmK1zYmmm256
	EvexVmovupdZmmK1zZmmm512
	EvexVmovupsXmmm128K1Xmm
	EvexVmovupsYmmm256K1Ymm
	EvexVmovupsZmmm512K1Zmm
	EvexVmovupdXmmm128K1Xmm
	EvexVmovupdYmmm256K1Ymm
	EvexVmovupdZmmm512K1Zmm
	EvexVmovapsXmmK1zXmmm128
	EvexVmovapsYmmK1zYmmm256
	EvexVmovapsZmmK1zZmmm512
	EvexVmovapdXmmK1zXmmm128
	EvexVmovapdYmmK1zYmmm256
	EvexVmovapdZmmK1zZmmm512
	EvexVmovapsXmmm128K1Xmm
	EvexVmovapsYmmm256K1Ymm
	EvexVmovapsZmmm512K1Zmm
	EvexVmovapdXmmm128K1Xmm
	EvexVmovapdYmmm256K1Ymm
	EvexVmovapdZmmm512K1Zmm
	EvexVsqrtpsXmmK1zXmmm128B32
	EvexVsqrtpsYmmK1zYmmm256B32
	EvexVsqrtpsZmmK1zZmmm512B32Er
	EvexVsqrtpdXmmK1zXmmm128B64
	EvexVsqrtpdYmmK1zYmmm256B64
	EvexVsqrtpdZmmK1zZmmm512B64Er
	EvexVsqrtssXmmK1zXmmXmmm32Er
	EvexVsqrtsdXmmK1zXmmXmmm64Er
	EvexVaddpsXmmK1zXmmXmmm128B32
	EvexVaddpsYmmK1zYmmYmmm256B32
	EvexVaddpsZmmK1zZmmZmmm512B32Er
	EvexVaddpdXmmK1zXmmXmmm128B64
	EvexVaddpdYmmK1zYmmYmmm256B64
	EvexVaddpdZmmK1zZmmZmmm512B64Er
	EvexVaddssXmmK1zXmmXmmm32Er
	EvexVaddsdXmmK1zXmmXmmm64Er
	EvexVmulpsXmmK1zXmmXmmm128B32
	EvexVmulpsYmmK1zYmmYmmm256B32
	EvexVmulpsZmmK1zZmmZmmm512B32Er
	EvexVmulpdXmmK1zXmmXmmm128B64
	EvexVmulpdYmmK1zYmmYmmm256B64
	EvexVmulpdZmmK1zZmmZmmm512B64Er
	EvexVmulssXmmK1zXmmXmmm32Er
	EvexVmulsdXmmK1zXmmXmmm64Er
	EvexVsubpsXmmK1zXmmXmmm128B32
	EvexVsubpsYmmK1zYmmYmmm256B32
	EvexVsubpsZmmK1zZmmZmmm512B32Er
	EvexVsubpdXmmK1zXmmXmmm128B64
	EvexVsubpdYmmK1zYmmYmmm256B64
	EvexVsubpdZmmK1zZmmZmmm512B64Er
	EvexVsubssXmmK1zXmmXmmm32Er
	EvexVsubsdXmmK1zXmmXmmm64Er
	EvexVdivpsXmmK1zXmmXmmm128B32
	EvexVdivpsYmmK1zYmmYmmm256B32
	EvexVdivpsZmmK1zZmmZmmm512B32Er
	EvexVdivpdXmmK1zXmmXmmm128B64
	EvexVdivpdYmmK1zYmmYmmm256B64
	EvexVdivpdZmmK1zZmmZmmm512B64Er
	EvexVdivssXmmK1zXmmXmmm32Er
	EvexVdivsdXmmK1zXmmXmmm64Er
	EvexVminpsXmmK1zXmmXmmm128B32
	EvexVminpsYmmK1zYmmYmmm256B32
	EvexVminpsZmmK1zZmmZmmm512B32Sae
	EvexVminpdXmmK1zXmmXmmm128B64
	EvexVminpdYmmK1zYmmYmmm256B64
	EvexVminpdZmmK1zZmmZmmm512B64Sae
	EvexVminssXmmK1zXmmXmmm32Sae
	EvexVminsdXmmK1zXmmXmmm64Sae
	EvexVmaxpsXmmK1zXmmXmmm128B32
	EvexVmaxpsYmmK1zYmmYmmm256B32
	EvexVmaxpsZmmK1zZmmZmmm512B32Sae
	EvexVmaxpdXmmK1zXmmXmmm128B64
	EvexVmaxpdYmmK1zYmmYmmm256B64
	EvexVmaxpdZmmK1zZmmZmmm512B64Sae
	EvexVmaxssXmmK1zXmmXmmm32Sae
	EvexVmaxsdXmmK1zXmmXmmm64Sae
	EvexVandpsXmmK1zXmmXmmm128B32
	EvexVandpsYmmK1zYmmYmmm256B32
	EvexVandpsZmmK1zZmmZmmm512B32
	EvexVandpdXmmK1zXmmXmmm128B64
	EvexVandpdYmmK1zYmmYmmm256B64
	EvexVandpdZmmK1zZmmZmmm512B64
	EvexVxorpsXmmK1zXmmXmmm128B32
	EvexVxorpsYmmK1zYmmYmmm256B32
	EvexVxorpsZmmK1zZmmZmmm512B32
	EvexVxorpdXmmK1zXmmXmmm128B64
	EvexVxorpdYmmK1zYmmYmmm256B64
	EvexVxorpdZmmK1zZmmZmmm512B64
	EvexVucomissXmmXmmm32Sae
	EvexVucomisdXmmXmmm64Sae
	EvexVcomissXmmXmmm32Sae
	EvexVcomisdXmmXmmm64Sae
	EvexVmovdqa32XmmK1zXmmm128
	EvexVmovdqa32YmmK1zYmmm256
	EvexVmovdqa32ZmmK1zZmmm512
	EvexVmovdqa64XmmK1zXmmm128
	EvexVmovdqa64YmmK1zYmmm256
	EvexVmovdqa64ZmmK1zZmmm512
	EvexVmovdqa32Xmmm128K1Xmm
	EvexVmovdqa32Ymmm256K1Ymm
	EvexVmovdqa32Zmmm512K1Zmm
	EvexVmovdqa64Xmmm128K1Xmm
	EvexVmovdqa64Ymmm256K1Ymm
	EvexVmovdqa64Zmmm512K1Zmm
	EvexVmovdqu32XmmK1zXmmm128
	EvexVmovdqu32YmmK1zYmmm256
	EvexVmovdqu32ZmmK1zZmmm512
	EvexVmovdqu64XmmK1zXmmm128
	EvexVmovdqu64YmmK1zYmmm256
	EvexVmovdqu64ZmmK1zZmmm512
	EvexVmovdqu32Xmmm128K1Xmm
	EvexVmovdqu32Ymmm256K1Ymm
	EvexVmovdqu32Zmmm512K1Zmm
	EvexVmovdqu64Xmmm128K1Xmm
	EvexVmovdqu64Ymmm256K1Ymm
	EvexVmovdqu64Zmmm512K1Zmm
	EvexVmovdqu8XmmK1zXmmm128
	EvexVmovdqu8YmmK1zYmmm256
	EvexVmovdqu8ZmmK1zZmmm512
	EvexVmovdqu16XmmK1zXmmm128
	EvexVmovdqu16YmmK1zYmmm256
	EvexVmovdqu16ZmmK1zZmmm512
	EvexVmovdqu8Xmmm128K1Xmm
	EvexVmovdqu8Ymmm256K1Ymm
	EvexVmovdqu8Zmmm512K1Zmm
	EvexVmovdqu16Xmmm128K1Xmm
	EvexVmovdqu16Ymmm256K1Ymm
	EvexVmovdqu16Zmmm512K1Zmm
	EvexVpanddXmmK1zXmmXmmm128B32
	EvexVpanddYmmK1zYmmYmmm256B32
	EvexVpanddZmmK1zZmmZmmm512B32
	EvexVpandqXmmK1zXmmXmmm128B64
	EvexVpandqYmmK1zYmmYmmm256B64
	EvexVpandqZmmK1zZmmZmmm512B64
	EvexVpordXmmK1zXmmXmmm128B32
	EvexVpordYmmK1zYmmYmmm256B32
	EvexVpordZmmK1zZmmZmmm512B32
	EvexVporqXmmK1zXmmXmmm128B64
	EvexVporqYmmK1zYmmYmmm256B64
	EvexVporqZmmK1zZmmZmmm512B64
	EvexVpxordXmmK1zXmmXmmm128B32
	EvexVpxordYmmK1zYmmYmmm256B32
	EvexVpxordZmmK1zZmmZmmm512B32
	EvexVpxorqXmmK1zXmmXmmm128B64
	EvexVpxorqYmmK1zYmmYmmm256B64
	EvexVpxorqZmmK1zZmmZmmm512B64
	EvexVpadddXmmK1zXmmXmmm128B32
	EvexVpadddYmmK1zYmmYmmm256B32
	EvexVpadddZmmK1zZmmZmmm512B32
	EvexVpaddqXmmK1zXmmXmmm128B64
	EvexVpaddqYmmK1zYmmYmmm256B64
	EvexVpaddqZmmK1zZmmZmmm512B64
	EvexVpsubdXmmK1zXmmXmmm128B32
	EvexVpsubdYmmK1zYmmYmmm256B32
	EvexVpsubdZmmK1zZmmZmmm512B32
	EvexVprordXmmK1zXmmm128B32Imm8
	EvexVprordYmmK1zYmmm256B32Imm8
	EvexVprordZmmK1zZmmm512B32Imm8
	EvexVprorqXmmK1zXmmm128B64Imm8
	EvexVprorqYmmK1zYmmm256B64Imm8
	EvexVprorqZmmK1zZmmm512B64Imm8
	EvexVproldXmmK1zXmmm128B32Imm8
	EvexVproldYmmK1zYmmm256B32Imm8
	EvexVproldZmmK1zZmmm512B32Imm8
	EvexVprolqXmmK1zXmmm128B64Imm8
	EvexVprolqYmmK1zYmmm256B64Imm8
	EvexVprolqZmmK1zZmmm512B64Imm8
	EvexVpsradXmmK1zXmmm128B32Imm8
	EvexVpsradYmmK1zYmmm256B32Imm8
	EvexVpsradZmmK1zZmmm512B32Imm8
	EvexVpsraqXmmK1zXmmm128B64Imm8
	EvexVpsraqYmmK1zYmmm256B64Imm8
	EvexVpsraqZmmK1zZmmm512B64Imm8
	EvexVbroadcastssYmmK1zXmmm32
	EvexVbroadcastssZmmK1zXmmm32
	EvexVpbroadcastdXmmK1zXmmm32
	EvexVpbroadcastdYmmK1zXmmm32
	EvexVpbroadcastdZmmK1zXmmm32
	EvexVpblendmdXmmK1zXmmXmmm128B32
	EvexVpblendmdYmmK1zYmmYmmm256B32
	EvexVpblendmdZmmK1zZmmZmmm512B32
	EvexVpblendmqXmmK1zXmmXmmm128B64
	EvexVpblendmqYmmK1zYmmYmmm256B64
	EvexVpblendmqZmmK1zZmmZmmm512B64
	EvexVfmadd132psXmmK1zXmmXmmm128B32
	EvexVfmadd132psYmmK1zYmmYmmm256B32
	EvexVfmadd132psZmmK1zZmmZmmm512B32Er
	EvexVfmadd132pdXmmK1zXmmXmmm128B64
	EvexVfmadd132pdYmmK1zYmmYmmm256B64
	EvexVfmadd132pdZmmK1zZmmZmmm512B64Er
	EvexVfmadd132ssXmmK1zXmmXmmm32Er
	EvexVfmadd132sdXmmK1zXmmXmmm64Er
	EvexVfmadd213psXmmK1zXmmXmmm128B32
	EvexVfmadd213psYmmK1zYmmYmmm256B32
	EvexVfmadd213psZmmK1zZmmZmmm512B32Er
	EvexVfmadd213pdXmmK1zXmmXmmm128B64
	EvexVfmadd213pdYmmK1zYmmYmmm256B64
	EvexVfmadd213pdZmmK1zZmmZmmm512B64Er
	EvexVfmadd213ssXmmK1zXmmXmmm32Er
	EvexVfmadd213sdXmmK1zXmmXmmm64Er
	EvexVfmadd231psXmmK1zXmmXmmm128B32
	EvexVfmadd231psYmmK1zYmmYmmm256B32
	EvexVfmadd231psZmmK1zZmmZmmm512B32Er
	EvexVfmadd231pdXmmK1zXmmXmmm128B64
	EvexVfmadd231pdYmmK1zYmmYmmm256B64
	EvexVfmadd231pdZmmK1zZmmZmmm512B64Er
	EvexVfmadd231ssXmmK1zXmmXmmm32Er
	EvexVfmadd231sdXmmK1zXmmXmmm64Er
	EvexValigndXmmK1zXmmXmmm128B32Imm8
	EvexValigndYmmK1zYmmYmmm256B32Imm8
	EvexValigndZmmK1zZmmZmmm512B32Imm8
	EvexValignqXmmK1zXmmXmmm128B64Imm8
	EvexValignqYmmK1zYmmYmmm256B64Imm8
	EvexValignqZmmK1zZmmZmmm512B64Imm8
	EvexVrndscalepsXmmK1zXmmm128B32Imm8
	EvexVrndscalepsYmmK1zYmmm256B32Imm8
	EvexVrndscalepsZmmK1zZmmm512B32Imm8Sae
	EvexVrndscalepdXmmK1zXmmm128B64Imm8
	EvexVrndscalepdYmmK1zYmmm256B64Imm8
	EvexVrndscalepdZmmK1zZmmm512B64Imm8Sae
	EvexVrndscalessXmmK1zXmmXmmm32Imm8Sae
	EvexVrndscalesdXmmK1zXmmXmmm64Imm8Sae
	EvexVpcmpudKrK1XmmXmmm128B32Imm8
	EvexVpcmpudKrK1YmmYmmm256B32Imm8
	EvexVpcmpudKrK1ZmmZmmm512B32Imm8
	EvexVpcmpuqKrK1XmmXmmm128B64Imm8
	EvexVpcmpuqKrK1YmmYmmm256B64Imm8
	EvexVpcmpuqKrK1ZmmZmmm512B64Imm8
	EvexVpcmpdKrK1XmmXmmm128B32Imm8
	EvexVpcmpdKrK1YmmYmmm256B32Imm8
	EvexVpcmpdKrK1ZmmZmmm512B32Imm8
	EvexVpcmpqKrK1XmmXmmm128B64Imm8
	EvexVpcmpqKrK1YmmYmmm256B64Imm8
	EvexVpcmpqKrK1ZmmZmmm512B64Imm8
	EvexVmovssXmmK1zM32
	EvexVmovssXmmK1zXmmXmm
	EvexVmovsdXmmK1zM64
	EvexVmovsdXmmK1zXmmXmm
	EvexVmovssM32K1Xmm
	EvexVmovsdM64K1Xmm
	EvexVunpcklpsXmmK1zXmmXmmm128B32
	EvexVunpcklpsYmmK1zYmmYmmm256B32
	EvexVunpcklpsZmmK1zZmmZmmm512B32
	EvexVunpcklpdXmmK1zXmmXmmm128B64
	EvexVunpcklpdYmmK1zYmmYmmm256B64
	EvexVunpcklpdZmmK1zZmmZmmm512B64
	EvexVunpckhpsXmmK1zXmmXmmm128B32
	EvexVunpckhpsYmmK1zYmmYmmm256B32
	EvexVunpckhpsZmmK1zZmmZmmm512B32
	EvexVunpckhpdXmmK1zXmmXmmm128B64
	EvexVunpckhpdYmmK1zYmmYmmm256B64
	EvexVunpckhpdZmmK1zZmmZmmm512B64
	EvexVcvtsi2ssXmmXmmRm32Er
	EvexVcvtsi2ssXmmXmmRm64Er
	EvexVcvtsi2sdXmmXmmRm32Er
	EvexVcvtsi2sdXmmXmmRm64Er
	EvexVmovntpsM128Xmm
	EvexVmovntpsM256Ymm
	EvexVmovntpsM512Zmm
	EvexVmovntpdM128Xmm
	EvexVmovntpdM256Ymm
	EvexVmovntpdM512Zmm
	EvexVcvttss2siR32Xmmm32Sae
	EvexVcvttss2siR64Xmmm32Sae
	EvexVcvttsd2siR32Xmmm64Sae
	EvexVcvttsd2siR64Xmmm64Sae
	EvexVcvtss2siR32Xmmm32Er
	EvexVcvtss2siR64Xmmm32Er
	EvexVcvtsd2siR32Xmmm64Er
	EvexVcvtsd2siR64Xmmm64Er
	EvexVandnpsXmmK1zXmmXmmm128B32
	EvexVandnpsYmmK1zYmmYmmm256B32
	EvexVandnpsZmmK1zZmmZmmm512B32
	EvexVandnpdXmmK1zXmmXmmm128B64
	EvexVandnpdYmmK1zYmmYmmm256B64
	EvexVandnpdZmmK1zZmmZmmm512B64
	EvexVorpsXmmK1zXmmXmmm128B32
	EvexVorpsYmmK1zYmmYmmm256B32
	EvexVorpsZmmK1zZmmZmmm512B32
	EvexVorpdXmmK1zXmmXmmm128B64
	EvexVorpdYmmK1zYmmYmmm256B64
	EvexVorpdZmmK1zZmmZmmm512B64
	EvexVcvtps2pdXmmK1zXmmm64
	EvexVcvtps2pdYmmK1zXmmm128
	EvexVcvtps2pdZmmK1zYmmm256Sae
	EvexVcvtpd2psXmmK1zXmmm128B64
	EvexVcvtpd2psXmmK1zYmmm256B64
	EvexVcvtpd2psYmmK1zZmmm512B64Er
	EvexVcvtss2sdXmmK1zXmmXmmm32Sae
	EvexVcvtsd2ssXmmK1zXmmXmmm64Er
	EvexVcvtdq2psXmmK1zXmmm128B32
	EvexVcvtdq2psYmmK1zYmmm256B32
	EvexVcvtdq2psZmmK1zZmmm512B32Er
	EvexVcvtps2dqXmmK1zXmmm128B32
	EvexVcvtps2dqYmmK1zYmmm256B32
	EvexVcvtps2dqZmmK1zZmmm512B32Er
	EvexVcvttps2dqXmmK1zXmmm128B32
	EvexVcvttps2dqYmmK1zYmmm256B32
	EvexVcvttps2dqZmmK1zZmmm512B32Sae
	EvexVpunpcklbwXmmK1zXmmXmmm128
	EvexVpunpcklbwYmmK1zYmmYmmm256
	EvexVpunpcklbwZmmK1zZmmZmmm512
	EvexVpunpcklwdXmmK1zXmmXmmm128
	EvexVpunpcklwdYmmK1zYmmYmmm256
	EvexVpunpcklwdZmmK1zZmmZmmm512
	EvexVpacksswbXmmK1zXmmXmmm128
	EvexVpacksswbYmmK1zYmmYmmm256
	EvexVpacksswbZmmK1zZmmZmmm512
	EvexVpackuswbXmmK1zXmmXmmm128
	EvexVpackuswbYmmK1zYmmYmmm256
	EvexVpackuswbZmmK1zZmmZmmm512
	EvexVpunpckhbwXmmK1zXmmXmmm128
	EvexVpunpckhbwYmmK1zYmmYmmm256
	EvexVpunpckhbwZmmK1zZmmZmmm512
	EvexVpunpckhwdXmmK1zXmmXmmm128
	EvexVpunpckhwdYmmK1zYmmYmmm256
	EvexVpunpckhwdZmmK1zZmmZmmm512
	EvexVpmullwXmmK1zXmmXmmm128
	EvexVpmullwYmmK1zYmmYmmm256
	EvexVpmullwZmmK1zZmmZmmm512
	EvexVpsubusbXmmK1zXmmXmmm128
	EvexVpsubusbYmmK1zYmmYmmm256
	EvexVpsubusbZmmK1zZmmZmmm512
	EvexVpsubuswXmmK1zXmmXmmm128
	EvexVpsubuswYmmK1zYmmYmmm256
	EvexVpsubuswZmmK1zZmmZmmm512
	EvexVpminubXmmK1zXmmXmmm128
	EvexVpminubYmmK1zYmmYmmm256
	EvexVpminubZmmK1zZmmZmmm512
	EvexVpaddusbXmmK1zXmmXmmm128
	EvexVpaddusbYmmK1zYmmYmmm256
	EvexVpaddusbZmmK1zZmmZmmm512
	EvexVpadduswXmmK1zXmmXmmm128
	EvexVpadduswYmmK1zYmmYmmm256
	EvexVpadduswZmmK1zZmmZmmm512
	EvexVpmaxubXmmK1zXmmXmmm128
	EvexVpmaxubYmmK1zYmmYmmm256
	EvexVpmaxubZmmK1zZmmZmmm512
	EvexVpavgbXmmK1zXmmXmmm128
	EvexVpavgbYmmK1zYmmYmmm256
	EvexVpavgbZmmK1zZmmZmmm512
	EvexVpavgwXmmK1zXmmXmmm128
	EvexVpavgwYmmK1zYmmYmmm256
	EvexVpavgwZmmK1zZmmZmmm512
	EvexVpmulhuwXmmK1zXmmXmmm128
	EvexVpmulhuwYmmK1zYmmYmmm256
	EvexVpmulhuwZmmK1zZmmZmmm512
	EvexVpmulhwXmmK1zXmmXmmm128
	EvexVpmulhwYmmK1zYmmYmmm256
	EvexVpmulhwZmmK1zZmmZmmm512
	EvexVpsubsbXmmK1zXmmXmmm128
	EvexVpsubsbYmmK1zYmmYmmm256
	EvexVpsubsbZmmK1zZmmZmmm512
	EvexVpsubswXmmK1zXmmXmmm128
	EvexVpsubswYmmK1zYmmYmmm256
	EvexVpsubswZmmK1zZmmZmmm512
	EvexVpminswXmmK1zXmmXmmm128
	EvexVpminswYmmK1zYmmYmmm256
	EvexVpminswZmmK1zZmmZmmm512
	EvexVpaddsbXmmK1zXmmXmmm128
	EvexVpaddsbYmmK1zYmmYmmm256
	EvexVpaddsbZmmK1zZmmZmmm512
	EvexVpaddswXmmK1zXmmXmmm128
	EvexVpaddswYmmK1zYmmYmmm256
	EvexVpaddswZmmK1zZmmZmmm512
	EvexVpmaxswXmmK1zXmmXmmm128
	EvexVpmaxswYmmK1zYmmYmmm256
	EvexVpmaxswZmmK1zZmmZmmm512
	EvexVpmaddwdXmmK1zXmmXmmm128
	EvexVpmaddwdYmmK1zYmmYmmm256
	EvexVpmaddwdZmmK1zZmmZmmm512
	EvexVpsubbXmmK1zXmmXmmm128
	EvexVpsubbYmmK1zYmmYmmm256
	EvexVpsubbZmmK1zZmmZmmm512
	EvexVpsubwXmmK1zXmmXmmm128
	EvexVpsubwYmmK1zYmmYmmm256
	EvexVpsubwZmmK1zZmmZmmm512
	EvexVpaddbXmmK1zXmmXmmm128
	EvexVpaddbYmmK1zYmmYmmm256
	EvexVpaddbZmmK1zZmmZmmm512
	EvexVpaddwXmmK1zXmmXmmm128
	EvexVpaddwYmmK1zYmmYmmm256
	EvexVpaddwZmmK1zZmmZmmm512
	EvexVpunpckldqXmmK1zXmmXmmm128B32
	EvexVpunpckldqYmmK1zYmmYmmm256B32
	EvexVpunpckldqZmmK1zZmmZmmm512B32
	EvexVpunpckhdqXmmK1zXmmXmmm128B32
	EvexVpunpckhdqYmmK1zYmmYmmm256B32
	EvexVpunpckhdqZmmK1zZmmZmmm512B32
	EvexVpackssdwXmmK1zXmmXmmm128B32
	EvexVpackssdwYmmK1zYmmYmmm256B32
	EvexVpackssdwZmmK1zZmmZmmm512B32
	EvexVpunpcklqdqXmmK1zXmmXmmm128B64
	EvexVpunpcklqdqYmmK1zYmmYmmm256B64
	EvexVpunpcklqdqZmmK1zZmmZmmm512B64
	EvexVpunpckhqdqXmmK1zXmmXmmm128B64
	EvexVpunpckhqdqYmmK1zYmmYmmm256B64
	EvexVpunpckhqdqZmmK1zZmmZmmm512B64
	EvexVpmuludqXmmK1zXmmXmmm128B64
	EvexVpmuludqYmmK1zYmmYmmm256B64
	EvexVpmuludqZmmK1zZmmZmmm512B64
	EvexVpsubqXmmK1zXmmXmmm128B64
	EvexVpsubqYmmK1zYmmYmmm256B64
	EvexVpsubqZmmK1zZmmZmmm512B64
	EvexVpandndXmmK1zXmmXmmm128B32
	EvexVpandndYmmK1zYmmYmmm256B32
	EvexVpandndZmmK1zZmmZmmm512B32
	EvexVpandnqXmmK1zXmmXmmm128B64
	EvexVpandnqYmmK1zYmmYmmm256B64
	EvexVpandnqZmmK1zZmmZmmm512B64
	EvexVpsadbwXmmXmmXmmm128
	EvexVpsadbwYmmYmmYmmm256
	EvexVpsadbwZmmZmmZmmm512
	EvexVpcmpgtbKrK1XmmXmmm128
	EvexVpcmpgtbKrK1YmmYmmm256
	EvexVpcmpgtbKrK1ZmmZmmm512
	EvexVpcmpgtwKrK1XmmXmmm128
	EvexVpcmpgtwKrK1YmmYmmm256
	EvexVpcmpgtwKrK1ZmmZmmm512
	EvexVpcmpeqbKrK1XmmXmmm128
	EvexVpcmpeqbKrK1YmmYmmm256
	EvexVpcmpeqbKrK1ZmmZmmm512
	EvexVpcmpeqwKrK1XmmXmmm128
	EvexVpcmpeqwKrK1YmmYmmm256
	EvexVpcmpeqwKrK1ZmmZmmm512
	EvexVpcmpgtdKrK1XmmXmmm128B32
	EvexVpcmpgtdKrK1YmmYmmm256B32
	EvexVpcmpgtdKrK1ZmmZmmm512B32
	EvexVpcmpeqdKrK1XmmXmmm128B32
	EvexVpcmpeqdKrK1YmmYmmm256B32
	EvexVpcmpeqdKrK1ZmmZmmm512B32
	EvexVmovdXmmRm32
	EvexVmovqXmmRm64
	EvexVmovdRm32Xmm
	EvexVmovqRm64Xmm
	EvexVmovqXmmXmmm64
	EvexVmovqXmmm64Xmm
	EvexVpshufdXmmK1zXmmm128B32Imm8
	EvexVpshufdYmmK1zYmmm256B32Imm8
	EvexVpshufdZmmK1zZmmm512B32Imm8
	EvexVpshufhwXmmK1zXmmm128Imm8
	EvexVpshufhwYmmK1zYmmm256Imm8
	EvexVpshufhwZmmK1zZmmm512Imm8
	EvexVpshuflwXmmK1zXmmm128Imm8
	EvexVpshuflwYmmK1zYmmm256Imm8
	EvexVpshuflwZmmK1zZmmm512Imm8
	EvexVpsrlwXmmK1zXmmm128Imm8
	EvexVpsrlwYmmK1zYmmm256Imm8
	EvexVpsrlwZmmK1zZmmm512Imm8
	EvexVpsrawXmmK1zXmmm128Imm8
	EvexVpsrawYmmK1zYmmm256Imm8
	EvexVpsrawZmmK1zZmmm512Imm8
	EvexVpsllwXmmK1zXmmm128Imm8
	EvexVpsllwYmmK1zYmmm256Imm8
	EvexVpsllwZmmK1zZmmm512Imm8
	EvexVpsrldXmmK1zXmmm128B32Imm8
	EvexVpsrldYmmK1zYmmm256B32Imm8
	EvexVpsrldZmmK1zZmmm512B32Imm8
	EvexVpslldXmmK1zXmmm128B32Imm8
	EvexVpslldYmmK1zYmmm256B32Imm8
	EvexVpslldZmmK1zZmmm512B32Imm8
	EvexVpsrlqXmmK1zXmmm128B64Imm8
	EvexVpsrlqYmmK1zYmmm256B64Imm8
	EvexVpsrlqZmmK1zZmmm512B64Imm8
	EvexVpsllqXmmK1zXmmm128B64Imm8
	EvexVpsllqYmmK1zYmmm256B64Imm8
	EvexVpsllqZmmK1zZmmm512B64Imm8
	EvexVpsrldqXmmXmmm128Imm8
	EvexVpsrldqYmmYmmm256Imm8
	EvexVpsrldqZmmZmmm512Imm8
	EvexVpslldqXmmXmmm128Imm8
	EvexVpslldqYmmYmmm256Imm8
	EvexVpslldqZmmZmmm512Imm8
	EvexVpsrlwXmmK1zXmmXmmm128
	EvexVpsrlwYmmK1zYmmXmmm128
	EvexVpsrlwZmmK1zZmmXmmm128
	EvexVpsrawXmmK1zXmmXmmm128
	EvexVpsrawYmmK1zYmmXmmm128
	EvexVpsrawZmmK1zZmmXmmm128
	EvexVpsllwXmmK1zXmmXmmm128
	EvexVpsllwYmmK1zYmmXmmm128
	EvexVpsllwZmmK1zZmmXmmm128
	EvexVpsrldXmmK1zXmmXmmm128
	EvexVpsrldYmmK1zYmmXmmm128
	EvexVpsrldZmmK1zZmmXmmm128
	EvexVpsrlqXmmK1zXmmXmmm128
	EvexVpsrlqYmmK1zYmmXmmm128
	EvexVpsrlqZmmK1zZmmXmmm128
	EvexVpsradXmmK1zXmmXmmm128
	EvexVpsradYmmK1zYmmXmmm128
	EvexVpsradZmmK1zZmmXmmm128
	EvexVpsraqXmmK1zXmmXmmm128
	EvexVpsraqYmmK1zYmmXmmm128
	EvexVpsraqZmmK1zZmmXmmm128
	EvexVpslldXmmK1zXmmXmmm128
	EvexVpslldYmmK1zYmmXmmm128
	EvexVpslldZmmK1zZmmXmmm128
	EvexVpsllqXmmK1zXmmXmmm128
	EvexVpsllqYmmK1zYmmXmmm128
	EvexVpsllqZmmK1zZmmXmmm128
	EvexVcmppsKrK1XmmXmmm128B32Imm8
	EvexVcmppsKrK1YmmYmmm256B32Imm8
	EvexVcmppsKrK1ZmmZmmm512B32Imm8Sae
	EvexVcmppdKrK1XmmXmmm128B64Imm8
	EvexVcmppdKrK1YmmYmmm256B64Imm8
	EvexVcmppdKrK1ZmmZmmm512B64Imm8Sae
	EvexVcmpssKrK1XmmXmmm32Imm8Sae
	EvexVcmpsdKrK1XmmXmmm64Imm8Sae
	EvexVpinsrwXmmXmmR32m16Imm8
	EvexVpinsrwXmmXmmR64m16Imm8
	EvexVpextrwR32XmmImm8
	EvexVpextrwR64XmmImm8
	EvexVshufpsXmmK1zXmmXmmm128B32Imm8
	EvexVshufpsYmmK1zYmmYmmm256B32Imm8
	EvexVshufpsZmmK1zZmmZmmm512B32Imm8
	EvexVshufpdXmmK1zXmmXmmm128B64Imm8
	EvexVshufpdYmmK1zYmmYmmm256B64Imm8
	EvexVshufpdZmmK1zZmmZmmm512B64Imm8
	EvexVcvttpd2dqXmmK1zXmmm128B64
	EvexVcvttpd2dqXmmK1zYmmm256B64
	EvexVcvttpd2dqYmmK1zZmmm512B64Sae
	EvexVcvtdq2pdXmmK1zXmmm64
	EvexVcvtdq2pdYmmK1zXmmm128
	EvexVcvtdq2pdZmmK1zYmmm256
	EvexVcvtpd2dqXmmK1zXmmm128B64
	EvexVcvtpd2dqXmmK1zYmmm256B64
	EvexVcvtpd2dqYmmK1zZmmm512B64Er
	EvexVmovntdqM128Xmm
	EvexVmovntdqM256Ymm
	EvexVmovntdqM512Zmm
	EvexVpshufbXmmK1zXmmXmmm128
	EvexVpshufbYmmK1zYmmYmmm256
	EvexVpshufbZmmK1zZmmZmmm512
	EvexVpmaddubswXmmK1zXmmXmmm128
	EvexVpmaddubswYmmK1zYmmYmmm256
	EvexVpmaddubswZmmK1zZmmZmmm512
	EvexVpmulhrswXmmK1zXmmXmmm128
	EvexVpmulhrswYmmK1zYmmYmmm256
	EvexVpmulhrswZmmK1zZmmZmmm512
	EvexVpminsbXmmK1zXmmXmmm128
	EvexVpminsbYmmK1zYmmYmmm256
	EvexVpminsbZmmK1zZmmZmmm512
	EvexVpminuwXmmK1zXmmXmmm128
	EvexVpminuwYmmK1zYmmYmmm256
	EvexVpminuwZmmK1zZmmZmmm512
	EvexVpmaxsbXmmK1zXmmXmmm128
	EvexVpmaxsbYmmK1zYmmYmmm256
	EvexVpmaxsbZmmK1zZmmZmmm512
	EvexVpmaxuwXmmK1zXmmXmmm128
	EvexVpmaxuwYmmK1zYmmYmmm256
	EvexVpmaxuwZmmK1zZmmZmmm512
	EvexVpminsdXmmK1zXmmXmmm128B32
	EvexVpminsdYmmK1zYmmYmmm256B32
	EvexVpminsdZmmK1zZmmZmmm512B32
	EvexVpminsqXmmK1zXmmXmmm128B64
	EvexVpminsqYmmK1zYmmYmmm256B64
	EvexVpminsqZmmK1zZmmZmmm512B64
	EvexVpminudXmmK1zXmmXmmm128B32
	EvexVpminudYmmK1zYmmYmmm256B32
	EvexVpminudZmmK1zZmmZmmm512B32
	EvexVpminuqXmmK1zXmmXmmm128B64
	EvexVpminuqYmmK1zYmmYmmm256B64
	EvexVpminuqZmmK1zZmmZmmm512B64
	EvexVpmaxsdXmmK1zXmmXmmm128B32
	EvexVpmaxsdYmmK1zYmmYmmm256B32
	EvexVpmaxsdZmmK1zZmmZmmm512B32
	EvexVpmaxsqXmmK1zXmmXmmm128B64
	EvexVpmaxsqYmmK1zYmmYmmm256B64
	EvexVpmaxsqZmmK1zZmmZmmm512B64
	EvexVpmaxudXmmK1zXmmXmmm128B32
	EvexVpmaxudYmmK1zYmmYmmm256B32
	EvexVpmaxudZmmK1zZmmZmmm512B32
	EvexVpmaxuqXmmK1zXmmXmmm128B64
	EvexVpmaxuqYmmK1zYmmYmmm256B64
	EvexVpmaxuqZmmK1zZmmZmmm512B64
	EvexVpmulldXmmK1zXmmXmmm128B32
	EvexVpmulldYmmK1zYmmYmmm256B32
	EvexVpmulldZmmK1zZmmZmmm512B32
	EvexVpmullqXmmK1zXmmXmmm128B64
	EvexVpmullqYmmK1zYmmYmmm256B64
	EvexVpmullqZmmK1zZmmZmmm512B64
	EvexVpsrlvdXmmK1zXmmXmmm128B32
	EvexVpsrlvdYmmK1zYmmYmmm256B32
	EvexVpsrlvdZmmK1zZmmZmmm512B32
	EvexVpsrlvqXmmK1zXmmXmmm128B64
	EvexVpsrlvqYmmK1zYmmYmmm256B64
	EvexVpsrlvqZmmK1zZmmZmmm512B64
	EvexVpsravdXmmK1zXmmXmmm128B32
	EvexVpsravdYmmK1zYmmYmmm256B32
	EvexVpsravdZmmK1zZmmZmmm512B32
	EvexVpsravqXmmK1zXmmXmmm128B64
	EvexVpsravqYmmK1zYmmYmmm256B64
	EvexVpsravqZmmK1zZmmZmmm512B64
	EvexVpsllvdXmmK1zXmmXmmm128B32
	EvexVpsllvdYmmK1zYmmYmmm256B32
	EvexVpsllvdZmmK1zZmmZmmm512B32
	EvexVpsllvqXmmK1zXmmXmmm128B64
	EvexVpsllvqYmmK1zYmmYmmm256B64
	EvexVpsllvqZmmK1zZmmZmmm512B64
	EvexVpermi2dXmmK1zXmmXmmm128B32
	EvexVpermi2dYmmK1zYmmYmmm256B32
	EvexVpermi2dZmmK1zZmmZmmm512B32
	EvexVpermi2qXmmK1zXmmXmmm128B64
	EvexVpermi2qYmmK1zYmmYmmm256B64
	EvexVpermi2qZmmK1zZmmZmmm512B64
	EvexVpermt2dXmmK1zXmmXmmm128B32
	EvexVpermt2dYmmK1zYmmYmmm256B32
	EvexVpermt2dZmmK1zZmmZmmm512B32
	EvexVpermt2qXmmK1zXmmXmmm128B64
	EvexVpermt2qYmmK1zYmmYmmm256B64
	EvexVpermt2qZmmK1zZmmZmmm512B64
	EvexVblendmpsXmmK1zXmmXmmm128B32
	EvexVblendmpsYmmK1zYmmYmmm256B32
	EvexVblendmpsZmmK1zZmmZmmm512B32
	EvexVblendmpdXmmK1zXmmXmmm128B64
	EvexVblendmpdYmmK1zYmmYmmm256B64
	EvexVblendmpdZmmK1zZmmZmmm512B64
	EvexVpermi2psXmmK1zXmmXmmm128B32
	EvexVpermi2psYmmK1zYmmYmmm256B32
	EvexVpermi2psZmmK1zZmmZmmm512B32
	EvexVpermi2pdXmmK1zXmmXmmm128B64
	EvexVpermi2pdYmmK1zYmmYmmm256B64
	EvexVpermi2pdZmmK1zZmmZmmm512B64
	EvexVpermt2psXmmK1zXmmXmmm128B32
	EvexVpermt2psYmmK1zYmmYmmm256B32
	EvexVpermt2psZmmK1zZmmZmmm512B32
	EvexVpermt2pdXmmK1zXmmXmmm128B64
	EvexVpermt2pdYmmK1zYmmYmmm256B64
	EvexVpermt2pdZmmK1zZmmZmmm512B64
	EvexVpmuldqXmmK1zXmmXmmm128B64
	EvexVpmuldqYmmK1zYmmYmmm256B64
	EvexVpmuldqZmmK1zZmmZmmm512B64
	EvexVpackusdwXmmK1zXmmXmmm128B32
	EvexVpackusdwYmmK1zYmmYmmm256B32
	EvexVpackusdwZmmK1zZmmZmmm512B32
	EvexVpcmpeqqKrK1XmmXmmm128B64
	EvexVpcmpeqqKrK1YmmYmmm256B64
	EvexVpcmpeqqKrK1ZmmZmmm512B64
	EvexVpcmpgtqKrK1XmmXmmm128B64
	EvexVpcmpgtqKrK1YmmYmmm256B64
	EvexVpcmpgtqKrK1ZmmZmmm512B64
	EvexVpermilpsXmmK1zXmmXmmm128B32
	EvexVpermilpsYmmK1zYmmYmmm256B32
	EvexVpermilpsZmmK1zZmmZmmm512B32
	EvexVpermilpdXmmK1zXmmXmmm128B64
	EvexVpermilpdYmmK1zYmmYmmm256B64
	EvexVpermilpdZmmK1zZmmZmmm512B64
	EvexVpermpsYmmK1zYmmYmmm256B32
	EvexVpermpsZmmK1zZmmZmmm512B32
	EvexVpermpdYmmK1zYmmYmmm256B64
	EvexVpermpdZmmK1zZmmZmmm512B64
	EvexVpermdYmmK1zYmmYmmm256B32
	EvexVpermdZmmK1zZmmZmmm512B32
	EvexVpermqYmmK1zYmmYmmm256B64
	EvexVpermqZmmK1zZmmZmmm512B64
	EvexVbroadcastsdYmmK1zXmmm64
	EvexVbroadcastsdZmmK1zXmmm64
	EvexVbroadcastf32x4YmmK1zM128
	EvexVbroadcastf32x4ZmmK1zM128
	EvexVbroadcastf64x2YmmK1zM128
	EvexVbroadcastf64x2ZmmK1zM128
	EvexVbroadcasti32x4YmmK1zM128
	EvexVbroadcasti32x4ZmmK1zM128
	EvexVbroadcasti64x2YmmK1zM128
	EvexVbroadcasti64x2ZmmK1zM128
	EvexVpbroadcastqXmmK1zXmmm64
	EvexVpbroadcastqYmmK1zXmmm64
	EvexVpbroadcastqZmmK1zXmmm64
	EvexVpbroadcastbXmmK1zXmmm8
	EvexVpbroadcastbYmmK1zXmmm8
	EvexVpbroadcastbZmmK1zXmmm8
	EvexVpbroadcastwXmmK1zXmmm16
	EvexVpbroadcastwYmmK1zXmmm16
	EvexVpbroadcastwZmmK1zXmmm16
	EvexVpabsbXmmK1zXmmm128
	EvexVpabsbYmmK1zYmmm256
	EvexVpabsbZmmK1zZmmm512
	EvexVpabswXmmK1zXmmm128
	EvexVpabswYmmK1zYmmm256
	EvexVpabswZmmK1zZmmm512
	EvexVpabsdXmmK1zXmmm128B32
	EvexVpabsdYmmK1zYmmm256B32
	EvexVpabsdZmmK1zZmmm512B32
	EvexVpabsqXmmK1zXmmm128B64
	EvexVpabsqYmmK1zYmmm256B64
	EvexVpabsqZmmK1zZmmm512B64
	EvexVpmovsxbwXmmK1zXmmm64
	EvexVpmovsxbwYmmK1zXmmm128
	EvexVpmovsxbwZmmK1zYmmm256
	EvexVpmovsxbdXmmK1zXmmm32
	EvexVpmovsxbdYmmK1zXmmm64
	EvexVpmovsxbdZmmK1zXmmm128
	EvexVpmovsxbqXmmK1zXmmm16
	EvexVpmovsxbqYmmK1zXmmm32
	EvexVpmovsxbqZmmK1zXmmm64
	EvexVpmovsxwdXmmK1zXmmm64
	EvexVpmovsxwdYmmK1zXmmm128
	EvexVpmovsxwdZmmK1zYmmm256
	EvexVpmovsxwqXmmK1zXmmm32
	EvexVpmovsxwqYmmK1zXmmm64
	EvexVpmovsxwqZmmK1zXmmm128
	EvexVpmovsxdqXmmK1zXmmm64
	EvexVpmovsxdqYmmK1zXmmm128
	EvexVpmovsxdqZmmK1zYmmm256
	EvexVpmovzxbwXmmK1zXmmm64
	EvexVpmovzxbwYmmK1zXmmm128
	EvexVpmovzxbwZmmK1zYmmm256
	EvexVpmovzxbdXmmK1zXmmm32
	EvexVpmovzxbdYmmK1zXmmm64
	EvexVpmovzxbdZmmK1zXmmm128
	EvexVpmovzxbqXmmK1zXmmm16
	EvexVpmovzxbqYmmK1zXmmm32
	EvexVpmovzxbqZmmK1zXmmm64
	EvexVpmovzxwdXmmK1zXmmm64
	EvexVpmovzxwdYmmK1zXmmm128
	EvexVpmovzxwdZmmK1zYmmm256
	EvexVpmovzxwqXmmK1zXmmm32
	EvexVpmovzxwqYmmK1zXmmm64
	EvexVpmovzxwqZmmK1zXmmm128
	EvexVpmovzxdqXmmK1zXmmm64
	EvexVpmovzxdqYmmK1zXmmm128
	EvexVpmovzxdqZmmK1zYmmm256
	EvexVpmovwbXmmm64K1zXmm
	EvexVpmovwbXmmm128K1zYmm
	EvexVpmovwbYmmm256K1zZmm
	EvexVpmovdbXmmm32K1zXmm
	EvexVpmovdbXmmm64K1zYmm
	EvexVpmovdbXmmm128K1zZmm
	EvexVpmovqbXmmm16K1zXmm
	EvexVpmovqbXmmm32K1zYmm
	EvexVpmovqbXmmm64K1zZmm
	EvexVpmovdwXmmm64K1zXmm
	EvexVpmovdwXmmm128K1zYmm
	EvexVpmovdwYmmm256K1zZmm
	EvexVpmovqwXmmm32K1zXmm
	EvexVpmovqwXmmm64K1zYmm
	EvexVpmovqwXmmm128K1zZmm
	EvexVpmovqdXmmm64K1zXmm
	EvexVpmovqdXmmm128K1zYmm
	EvexVpmovqdYmmm256K1zZmm
	EvexVpmovm2bXmmKr
	EvexVpmovm2bYmmKr
	EvexVpmovm2bZmmKr
	EvexVpmovm2wXmmKr
	EvexVpmovm2wYmmKr
	EvexVpmovm2wZmmKr
	EvexVpmovm2dXmmKr
	EvexVpmovm2dYmmKr
	EvexVpmovm2dZmmKr
	EvexVpmovm2qXmmKr
	EvexVpmovm2qYmmKr
	EvexVpmovm2qZmmKr
	EvexVpmovb2mKrXmm
	EvexVpmovb2mKrYmm
	EvexVpmovb2mKrZmm
	EvexVpmovw2mKrXmm
	EvexVpmovw2mKrYmm
	EvexVpmovw2mKrZmm
	EvexVpmovd2mKrXmm
	EvexVpmovd2mKrYmm
	EvexVpmovd2mKrZmm
	EvexVpmovq2mKrXmm
	EvexVpmovq2mKrYmm
	EvexVpmovq2mKrZmm
	EvexVptestmbKrK1XmmXmmm128
	EvexVptestmbKrK1YmmYmmm256
	EvexVptestmbKrK1ZmmZmmm512
	EvexVptestmwKrK1XmmXmmm128
	EvexVptestmwKrK1YmmYmmm256
	EvexVptestmwKrK1ZmmZmmm512
	EvexVptestmdKrK1XmmXmmm128B32
	EvexVptestmdKrK1YmmYmmm256B32
	EvexVptestmdKrK1ZmmZmmm512B32
	EvexVptestmqKrK1XmmXmmm128B64
	EvexVptestmqKrK1YmmYmmm256B64
	EvexVptestmqKrK1ZmmZmmm512B64
	EvexVptestnmbKrK1XmmXmmm128
	EvexVptestnmbKrK1YmmYmmm256
	EvexVptestnmbKrK1ZmmZmmm512
	EvexVptestnmwKrK1XmmXmmm128
	EvexVptestnmwKrK1YmmYmmm256
	EvexVptestnmwKrK1ZmmZmmm512
	EvexVptestnmdKrK1XmmXmmm128B32
	EvexVptestnmdKrK1YmmYmmm256B32
	EvexVptestnmdKrK1ZmmZmmm512B32
	EvexVptestnmqKrK1XmmXmmm128B64
	EvexVptestnmqKrK1YmmYmmm256B64
	EvexVptestnmqKrK1ZmmZmmm512B64
	EvexVpblendmbXmmK1zXmmXmmm128
	EvexVpblendmbYmmK1zYmmYmmm256
	EvexVpblendmbZmmK1zZmmZmmm512
	EvexVpblendmwXmmK1zXmmXmmm128
	EvexVpblendmwYmmK1zYmmYmmm256
	EvexVpblendmwZmmK1zZmmZmmm512
	EvexVpconflictdXmmK1zXmmm128B32
	EvexVpconflictdYmmK1zYmmm256B32
	EvexVpconflictdZmmK1zZmmm512B32
	EvexVpconflictqXmmK1zXmmm128B64
	EvexVpconflictqYmmK1zYmmm256B64
	EvexVpconflictqZmmK1zZmmm512B64
	EvexVplzcntdXmmK1zXmmm128B32
	EvexVplzcntdYmmK1zYmmm256B32
	EvexVplzcntdZmmK1zZmmm512B32
	EvexVplzcntqXmmK1zXmmm128B64
	EvexVplzcntqYmmK1zYmmm256B64
	EvexVplzcntqZmmK1zZmmm512B64
	EvexVrcp14psXmmK1zXmmm128B32
	EvexVrcp14psYmmK1zYmmm256B32
	EvexVrcp14psZmmK1zZmmm512B32
	EvexVrcp14pdXmmK1zXmmm128B64
	EvexVrcp14pdYmmK1zYmmm256B64
	EvexVrcp14pdZmmK1zZmmm512B64
	EvexVrsqrt14psXmmK1zXmmm128B32
	EvexVrsqrt14psYmmK1zYmmm256B32
	EvexVrsqrt14psZmmK1zZmmm512B32
	EvexVrsqrt14pdXmmK1zXmmm128B64
	EvexVrsqrt14pdYmmK1zYmmm256B64
	EvexVrsqrt14pdZmmK1zZmmm512B64
	EvexVfmaddsub132psXmmK1zXmmXmmm128B32
	EvexVfmaddsub132psYmmK1zYmmYmmm256B32
	EvexVfmaddsub132psZmmK1zZmmZmmm512B32Er
	EvexVfmaddsub132pdXmmK1zXmmXmmm128B64
	EvexVfmaddsub132pdYmmK1zYmmYmmm256B64
	EvexVfmaddsub132pdZmmK1zZmmZmmm512B64Er
	EvexVfmsubadd132psXmmK1zXmmXmmm128B32
	EvexVfmsubadd132psYmmK1zYmmYmmm256B32
	EvexVfmsubadd132psZmmK1zZmmZmmm512B32Er
	EvexVfmsubadd132pdXmmK1zXmmXmmm128B64
	EvexVfmsubadd132pdYmmK1zYmmYmmm256B64
	EvexVfmsubadd132pdZmmK1zZmmZmmm512B64Er
	EvexVfmsub132psXmmK1zXmmXmmm128B32
	EvexVfmsub132psYmmK1zYmmYmmm256B32
	EvexVfmsub132psZmmK1zZmmZmmm512B32Er
	EvexVfmsub132pdXmmK1zXmmXmmm128B64
	EvexVfmsub132pdYmmK1zYmmYmmm256B64
	EvexVfmsub132pdZmmK1zZmmZmmm512B64Er
	EvexVfmsub132ssXmmK1zXmmXmmm32Er
	EvexVfmsub132sdXmmK1zXmmXmmm64Er
	EvexVfnmadd132psXmmK1zXmmXmmm128B32
	EvexVfnmadd132psYmmK1zYmmYmmm256B32
	EvexVfnmadd132psZmmK1zZmmZmmm512B32Er
	EvexVfnmadd132pdXmmK1zXmmXmmm128B64
	EvexVfnmadd132pdYmmK1zYmmYmmm256B64
	EvexVfnmadd132pdZmmK1zZmmZmmm512B64Er
	EvexVfnmadd132ssXmmK1zXmmXmmm32Er
	EvexVfnmadd132sdXmmK1zXmmXmmm64Er
	EvexVfnmsub132psXmmK1zXmmXmmm128B32
	EvexVfnmsub132psYmmK1zYmmYmmm256B32
	EvexVfnmsub132psZmmK1zZmmZmmm512B32Er
	EvexVfnmsub132pdXmmK1zXmmXmmm128B64
	EvexVfnmsub132pdYmmK1zYmmYmmm256B64
	EvexVfnmsub132pdZmmK1zZmmZmmm512B64Er
	EvexVfnmsub132ssXmmK1zXmmXmmm32Er
	EvexVfnmsub132sdXmmK1zXmmXmmm64Er
	EvexVfmaddsub213psXmmK1zXmmXmmm128B32
	EvexVfmaddsub213psYmmK1zYmmYmmm256B32
	EvexVfmaddsub213psZmmK1zZmmZmmm512B32Er
	EvexVfmaddsub213pdXmmK1zXmmXmmm128B64
	EvexVfmaddsub213pdYmmK1zYmmYmmm256B64
	EvexVfmaddsub213pdZmmK1zZmmZmmm512B64Er
	EvexVfmsubadd213psXmmK1zXmmXmmm128B32
	EvexVfmsubadd213psYmmK1zYmmYmmm256B32
	EvexVfmsubadd213psZmmK1zZmmZmmm512B32Er
	EvexVfmsubadd213pdXmmK1zXmmXmmm128B64
	EvexVfmsubadd213pdYmmK1zYmmYmmm256B64
	EvexVfmsubadd213pdZmmK1zZmmZmmm512B64Er
	EvexVfmsub213psXmmK1zXmmXmmm128B32
	EvexVfmsub213psYmmK1zYmmYmmm256B32
	EvexVfmsub213psZmmK1zZmmZmmm512B32Er
	EvexVfmsub213pdXmmK1zXmmXmmm128B64
	EvexVfmsub213pdYmmK1zYmmYmmm256B64
	EvexVfmsub213pdZmmK1zZmmZmmm512B64Er
	EvexVfmsub213ssXmmK1zXmmXmmm32Er
	EvexVfmsub213sdXmmK1zXmmXmmm64Er
	EvexVfnmadd213psXmmK1zXmmXmmm128B32
	EvexVfnmadd213psYmmK1zYmmYmmm256B32
	EvexVfnmadd213psZmmK1zZmmZmmm512B32Er
	EvexVfnmadd213pdXmmK1zXmmXmmm128B64
	EvexVfnmadd213pdYmmK1zYmmYmmm256B64
	EvexVfnmadd213pdZmmK1zZmmZmmm512B64Er
	EvexVfnmadd213ssXmmK1zXmmXmmm32Er
	EvexVfnmadd213sdXmmK1zXmmXmmm64Er
	EvexVfnmsub213psXmmK1zXmmXmmm128B32
	EvexVfnmsub213psYmmK1zYmmYmmm256B32
	EvexVfnmsub213psZmmK1zZmmZmmm512B32Er
	EvexVfnmsub213pdXmmK1zXmmXmmm128B64
	EvexVfnmsub213pdYmmK1zYmmYmmm256B64
	EvexVfnmsub213pdZmmK1zZmmZmmm512B64Er
	EvexVfnmsub213ssXmmK1zXmmXmmm32Er
	EvexVfnmsub213sdXmmK1zXmmXmmm64Er
	EvexVfmaddsub231psXmmK1zXmmXmmm128B32
	EvexVfmaddsub231psYmmK1zYmmYmmm256B32
	EvexVfmaddsub231psZmmK1zZmmZmmm512B32Er
	EvexVfmaddsub231pdXmmK1zXmmXmmm128B64
	EvexVfmaddsub231pdYmmK1zYmmYmmm256B64
	EvexVfmaddsub231pdZmmK1zZmmZmmm512B64Er
	EvexVfmsubadd231psXmmK1zXmmXmmm128B32
	EvexVfmsubadd231psYmmK1zYmmYmmm256B32
	EvexVfmsubadd231psZmmK1zZmmZmmm512B32Er
	EvexVfmsubadd231pdXmmK1zXmmXmmm128B64
	EvexVfmsubadd231pdYmmK1zYmmYmmm256B64
	EvexVfmsubadd231pdZmmK1zZmmZmmm512B64Er
	EvexVfmsub231psXmmK1zXmmXmmm128B32
	EvexVfmsub231psYmmK1zYmmYmmm256B32
	EvexVfmsub231psZmmK1zZmmZmmm512B32Er
	EvexVfmsub231pdXmmK1zXmmXmmm128B64
	EvexVfmsub231pdYmmK1zYmmYmmm256B64
	EvexVfmsub231pdZmmK1zZmmZmmm512B64Er
	EvexVfmsub231ssXmmK1zXmmXmmm32Er
	EvexVfmsub231sdXmmK1zXmmXmmm64Er
	EvexVfnmadd231psXmmK1zXmmXmmm128B32
	EvexVfnmadd231psYmmK1zYmmYmmm256B32
	EvexVfnmadd231psZmmK1zZmmZmmm512B32Er
	EvexVfnmadd231pdXmmK1zXmmXmmm128B64
	EvexVfnmadd231pdYmmK1zYmmYmmm256B64
	EvexVfnmadd231pdZmmK1zZmmZmmm512B64Er
	EvexVfnmadd231ssXmmK1zXmmXmmm32Er
	EvexVfnmadd231sdXmmK1zXmmXmmm64Er
	EvexVfnmsub231psXmmK1zXmmXmmm128B32
	EvexVfnmsub231psYmmK1zYmmYmmm256B32
	EvexVfnmsub231psZmmK1zZmmZmmm512B32Er
	EvexVfnmsub231pdXmmK1zXmmXmmm128B64
	EvexVfnmsub231pdYmmK1zYmmYmmm256B64
	EvexVfnmsub231pdZmmK1zZmmZmmm512B64Er
	EvexVfnmsub231ssXmmK1zXmmXmmm32Er
	EvexVfnmsub231sdXmmK1zXmmXmmm64Er
	EvexVpgatherddXmmK1Vm32x
	EvexVpgatherddYmmK1Vm32y
	EvexVpgatherddZmmK1Vm32z
	EvexVpgatherdqXmmK1Vm32x
	EvexVpgatherdqYmmK1Vm32x
	EvexVpgatherdqZmmK1Vm32y
	EvexVpgatherqdXmmK1Vm64x
	EvexVpgatherqdXmmK1Vm64y
	EvexVpgatherqdYmmK1Vm64z
	EvexVpgatherqqXmmK1Vm64x
	EvexVpgatherqqYmmK1Vm64y
	EvexVpgatherqqZmmK1Vm64z
	EvexVgatherdpsXmmK1Vm32x
	EvexVgatherdpsYmmK1Vm32y
	EvexVgatherdpsZmmK1Vm32z
	EvexVgatherdpdXmmK1Vm32x
	EvexVgatherdpdYmmK1Vm32x
	EvexVgatherdpdZmmK1Vm32y
	EvexVgatherqpsXmmK1Vm64x
	EvexVgatherqpsXmmK1Vm64y
	EvexVgatherqpsYmmK1Vm64z
	EvexVgatherqpdXmmK1Vm64x
	EvexVgatherqpdYmmK1Vm64y
	EvexVgatherqpdZmmK1Vm64z
	EvexVpscatterddVm32xK1Xmm
	EvexVpscatterddVm32yK1Ymm
	EvexVpscatterddVm32zK1Zmm
	EvexVpscatterdqVm32xK1Xmm
	EvexVpscatterdqVm32xK1Ymm
	EvexVpscatterdqVm32yK1Zmm
	EvexVpscatterqdVm64xK1Xmm
	EvexVpscatterqdVm64yK1Xmm
	EvexVpscatterqdVm64zK1Ymm
	EvexVpscatterqqVm64xK1Xmm
	EvexVpscatterqqVm64yK1Ymm
	EvexVpscatterqqVm64zK1Zmm
	EvexVscatterdpsVm32xK1Xmm
	EvexVscatterdpsVm32yK1Ymm
	EvexVscatterdpsVm32zK1Zmm
	EvexVscatterdpdVm32xK1Xmm
	EvexVscatterdpdVm32xK1Ymm
	EvexVscatterdpdVm32yK1Zmm
	EvexVscatterqpsVm64xK1Xmm
	EvexVscatterqpsVm64yK1Xmm
	EvexVscatterqpsVm64zK1Ymm
	EvexVscatterqpdVm64xK1Xmm
	EvexVscatterqpdVm64yK1Ymm
	EvexVscatterqpdVm64zK1Zmm
	EvexVpermqYmmK1zYmmm256B64Imm8
	EvexVpermqZmmK1zZmmm512B64Imm8
	EvexVpermpdYmmK1zYmmm256B64Imm8
	EvexVpermpdZmmK1zZmmm512B64Imm8
	EvexVpermilpsXmmK1zXmmm128B32Imm8
	EvexVpermilpsYmmK1zYmmm256B32Imm8
	EvexVpermilpsZmmK1zZmmm512B32Imm8
	EvexVpermilpdXmmK1zXmmm128B64Imm8
	EvexVpermilpdYmmK1zYmmm256B64Imm8
	EvexVpermilpdZmmK1zZmmm512B64Imm8
	EvexVpalignrXmmK1zXmmXmmm128Imm8
	EvexVpalignrYmmK1zYmmYmmm256Imm8
	EvexVpalignrZmmK1zZmmZmmm512Imm8
	EvexVpextrbR32m8XmmImm8
	EvexVpextrbR64m8XmmImm8
	EvexVpextrwR32m16XmmImm8
	EvexVpextrwR64m16XmmImm8
	EvexVpextrdRm32XmmImm8
	EvexVpextrqRm64XmmImm8
	EvexVextractpsRm32XmmImm8
	EvexVpinsrbXmmXmmR32m8Imm8
	EvexVpinsrbXmmXmmR64m8Imm8
	EvexVinsertpsXmmXmmXmmm32Imm8
	EvexVpinsrdXmmXmmRm32Imm8
	EvexVpinsrqXmmXmmRm64Imm8
	EvexVinsertf32x4YmmK1zYmmXmmm128Imm8
	EvexVinsertf32x4ZmmK1zZmmXmmm128Imm8
	EvexVinsertf64x2YmmK1zYmmXmmm128Imm8
	EvexVinsertf64x2ZmmK1zZmmXmmm128Imm8
	EvexVinserti32x4YmmK1zYmmXmmm128Imm8
	EvexVinserti32x4ZmmK1zZmmXmmm128Imm8
	EvexVinserti64x2YmmK1zYmmXmmm128Imm8
	EvexVinserti64x2ZmmK1zZmmXmmm128Imm8
	EvexVextractf32x4Xmmm128K1zYmmImm8
	EvexVextractf32x4Xmmm128K1zZmmImm8
	EvexVextractf64x2Xmmm128K1zYmmImm8
	EvexVextractf64x2Xmmm128K1zZmmImm8
	EvexVextracti32x4Xmmm128K1zYmmImm8
	EvexVextracti32x4Xmmm128K1zZmmImm8
	EvexVextracti64x2Xmmm128K1zYmmImm8
	EvexVextracti64x2Xmmm128K1zZmmImm8
	EvexVinsertf32x8ZmmK1zZmmYmmm256Imm8
	EvexVinsertf64x4ZmmK1zZmmYmmm256Imm8
	EvexVinserti32x8ZmmK1zZmmYmmm256Imm8
	EvexVinserti64x4ZmmK1zZmmYmmm256Imm8
	EvexVextractf32x8Ymmm256K1zZmmImm8
	EvexVextractf64x4Ymmm256K1zZmmImm8
	EvexVextracti32x8Ymmm256K1zZmmImm8
	EvexVextracti64x4Ymmm256K1zZmmImm8
	EvexVcvtps2phXmmm64K1zXmmImm8
	EvexVcvtps2phXmmm128K1zYmmImm8
	EvexVcvtps2phYmmm256K1zZmmImm8Sae
	EvexVshuff32x4YmmK1zYmmYmmm256B32Imm8
	EvexVshuff32x4ZmmK1zZmmZmmm512B32Imm8
	EvexVshuff64x2YmmK1zYmmYmmm256B64Imm8
	EvexVshuff64x2ZmmK1zZmmZmmm512B64Imm8
	EvexVshufi32x4YmmK1zYmmYmmm256B32Imm8
	EvexVshufi32x4ZmmK1zZmmZmmm512B32Imm8
	EvexVshufi64x2YmmK1zYmmYmmm256B64Imm8
	EvexVshufi64x2ZmmK1zZmmZmmm512B64Imm8
	EvexVpternlogdXmmK1zXmmXmmm128B32Imm8
	EvexVpternlogdYmmK1zYmmYmmm256B32Imm8
	EvexVpternlogdZmmK1zZmmZmmm512B32Imm8
	EvexVpternlogqXmmK1zXmmXmmm128B64Imm8
	EvexVpternlogqYmmK1zYmmYmmm256B64Imm8
	EvexVpternlogqZmmK1zZmmZmmm512B64Imm8
	EvexVpcmpubKrK1XmmXmmm128Imm8
	EvexVpcmpubKrK1YmmYmmm256Imm8
	EvexVpcmpubKrK1ZmmZmmm512Imm8
	EvexVpcmpuwKrK1XmmXmmm128Imm8
	EvexVpcmpuwKrK1YmmYmmm256Imm8
	EvexVpcmpuwKrK1ZmmZmmm512Imm8
	EvexVpcmpbKrK1XmmXmmm128Imm8
	EvexVpcmpbKrK1YmmYmmm256Imm8
	EvexVpcmpbKrK1ZmmZmmm512Imm8
	EvexVpcmpwKrK1XmmXmmm128Imm8
	EvexVpcmpwKrK1YmmYmmm256Imm8
	EvexVpcmpwKrK1ZmmZmmm512Imm8
	EvexVdbpsadbwXmmK1zXmmXmmm128Imm8
	EvexVdbpsadbwYmmK1zYmmYmmm256Imm8
	EvexVdbpsadbwZmmK1zZmmZmmm512Imm8
	EvexVpclmulqdqXmmXmmXmmm128Imm8
	EvexVpclmulqdqYmmYmmYmmm256Imm8
	EvexVpclmulqdqZmmZmmZmmm512Imm8
	XopVpcmovXmmXmmXmmm128Xmm
	XopVpcmovYmmYmmYmmm256Ymm
	XopVppermXmmXmmXmmm128Xmm
	XopVprotbXmmXmmm128Imm8
	XopVprotdXmmXmmm128Imm8
	XopVpcombXmmXmmXmmm128Imm8
	XopBlcfillR32Rm32
	XopBlcfillR64Rm64
	XopBlsfillR32Rm32
	XopBlsfillR64Rm64
	XopBlcsR32Rm32
	XopBlcsR64Rm64
	XopTzmskR32Rm32
	XopTzmskR64Rm64
	XopBlcicR32Rm32
	XopBlcicR64Rm64
	XopBlsicR32Rm32
	XopBlsicR64Rm64
	XopT1mskcR32Rm32
	XopT1mskcR64Rm64
	XopBlcmskR32Rm32
	XopBlcmskR64Rm64
	XopBlciR32Rm32
	XopBlciR64Rm64
	XopVfrczpsXmmXmmm128
	XopVfrczpsYmmYmmm256
	XopVfrczpdXmmXmmm128
	XopVfrczpdYmmYmmm256
	XopVprotbXmmXmmm128Xmm
	XopVprotdXmmXmmm128Xmm
	XopBextrR32Rm32Imm32
	XopBextrR64Rm64Imm32
	XopLwpinsR32Rm32Imm32
	XopLwpinsR64Rm32Imm32
	XopLwpvalR32Rm32Imm32
	XopLwpvalR64Rm32Imm32
)

// NumCodes is the number of entries in the list of codes.
const NumCodes = 3214

var names = [NumCodes]string{
	Invalid: "Invalid",
	AddRm8R8: "AddRm8R8",
	AddRm16R16: "AddRm16R16",
	AddRm32R32: "AddRm32R32",
	AddRm64R64: "AddRm64R64",
	AddR8Rm8: "AddR8Rm8",
	AddR16Rm16: "AddR16Rm16",
	AddR32Rm32: "AddR32Rm32",
	AddR64Rm64: "AddR64Rm64",
	AddALImm8: "AddALImm8",
	AddAXImm16: "AddAXImm16",
	AddEAXImm32: "AddEAXImm32",
	AddRAXImm32: "AddRAXImm32",
	OrRm8R8: "OrRm8R8",
	OrRm16R16: "OrRm16R16",
	OrRm32R32: "OrRm32R32",
	OrRm64R64: "OrRm64R64",
	OrR8Rm8: "OrR8Rm8",
	OrR16Rm16: "OrR16Rm16",
	OrR32Rm32: "OrR32Rm32",
	OrR64Rm64: "OrR64Rm64",
	OrALImm8: "OrALImm8",
	OrAXImm16: "OrAXImm16",
	OrEAXImm32: "OrEAXImm32",
	OrRAXImm32: "OrRAXImm32",
	AdcRm8R8: "AdcRm8R8",
	AdcRm16R16: "AdcRm16R16",
	AdcRm32R32: "AdcRm32R32",
	AdcRm64R64: "AdcRm64R64",
	AdcR8Rm8: "AdcR8Rm8",
	AdcR16Rm16: "AdcR16Rm16",
	AdcR32Rm32: "AdcR32Rm32",
	AdcR64Rm64: "AdcR64Rm64",
	AdcALImm8: "AdcALImm8",
	AdcAXImm16: "AdcAXImm16",
	AdcEAXImm32: "AdcEAXImm32",
	AdcRAXImm32: "AdcRAXImm32",
	SbbRm8R8: "SbbRm8R8",
	SbbRm16R16: "SbbRm16R16",
	SbbRm32R32: "SbbRm32R32",
	SbbRm64R64: "SbbRm64R64",
	SbbR8Rm8: "SbbR8Rm8",
	SbbR16Rm16: "SbbR16Rm16",
	SbbR32Rm32: "SbbR32Rm32",
	SbbR64Rm64: "SbbR64Rm64",
	SbbALImm8: "SbbALImm8",
	SbbAXImm16: "SbbAXImm16",
	SbbEAXImm32: "SbbEAXImm32",
	SbbRAXImm32: "SbbRAXImm32",
	AndRm8R8: "AndRm8R8",
	AndRm16R16: "AndRm16R16",
	AndRm32R32: "AndRm32R32",
	AndRm64R64: "AndRm64R64",
	AndR8Rm8: "AndR8Rm8",
	AndR16Rm16: "AndR16Rm16",
	AndR32Rm32: "AndR32Rm32",
	AndR64Rm64: "AndR64Rm64",
	AndALImm8: "AndALImm8",
	AndAXImm16: "AndAXImm16",
	AndEAXImm32: "AndEAXImm32",
	AndRAXImm32: "AndRAXImm32",
	SubRm8R8: "SubRm8R8",
	SubRm16R16: "SubRm16R16",
	SubRm32R32: "SubRm32R32",
	SubRm64R64: "SubRm64R64",
	SubR8Rm8: "SubR8Rm8",
	SubR16Rm16: "SubR16Rm16",
	SubR32Rm32: "SubR32Rm32",
	SubR64Rm64: "SubR64Rm64",
	SubALImm8: "SubALImm8",
	SubAXImm16: "SubAXImm16",
	SubEAXImm32: "SubEAXImm32",
	SubRAXImm32: "SubRAXImm32",
	XorRm8R8: "XorRm8R8",
	XorRm16R16: "XorRm16R16",
	XorRm32R32: "XorRm32R32",
	XorRm64R64: "XorRm64R64",
	XorR8Rm8: "XorR8Rm8",
	XorR16Rm16: "XorR16Rm16",
	XorR32Rm32: "XorR32Rm32",
	XorR64Rm64: "XorR64Rm64",
	XorALImm8: "XorALImm8",
	XorAXImm16: "XorAXImm16",
	XorEAXImm32: "XorEAXImm32",
	XorRAXImm32: "XorRAXImm32",
	CmpRm8R8: "CmpRm8R8",
	CmpRm16R16: "CmpRm16R16",
	CmpRm32R32: "CmpRm32R32",
	CmpRm64R64: "CmpRm64R64",
	CmpR8Rm8: "CmpR8Rm8",
	CmpR16Rm16: "CmpR16Rm16",
	CmpR32Rm32: "CmpR32Rm32",
	CmpR64Rm64: "CmpR64Rm64",
	CmpALImm8: "CmpALImm8",
	CmpAXImm16: "CmpAXImm16",
	CmpEAXImm32: "CmpEAXImm32",
	CmpRAXImm32: "CmpRAXImm32",
	PushES: "PushES",
	PopES: "PopES",
	PushCS: "PushCS",
	PushSS: "PushSS",
	PopSS: "PopSS",
	PushDS: "PushDS",
	PopDS: "PopDS",
	Daa: "Daa",
	Das: "Das",
	Aaa: "Aaa",
	Aas: "Aas",
	IncR16: "IncR16",
	IncR32: "IncR32",
	DecR16: "DecR16",
	DecR32: "DecR32",
	PushR16: "PushR16",
	PushR32: "PushR32",
	PushR64: "PushR64",
	PopR16: "PopR16",
	PopR32: "PopR32",
	PopR64: "PopR64",
	Pusha: "Pusha",
	Pushad: "Pushad",
	Popa: "Popa",
	Popad: "Popad",
	BoundR16M1616: "BoundR16M1616",
	BoundR32M3232: "BoundR32M3232",
	ArplRm16R16: "ArplRm16R16",
	MovsxdR16Rm32: "MovsxdR16Rm32",
	MovsxdR32Rm32: "MovsxdR32Rm32",
	MovsxdR64Rm32: "MovsxdR64Rm32",
	PushImm16: "PushImm16",
	PushImm32: "PushImm32",
	ImulR16Rm16Imm16: "ImulR16Rm16Imm16",
	ImulR32Rm32Imm32: "ImulR32Rm32Imm32",
	ImulR64Rm64Imm32: "ImulR64Rm64Imm32",
	PushImm8: "PushImm8",
	ImulR16Rm16Imm8: "ImulR16Rm16Imm8",
	ImulR32Rm32Imm8: "ImulR32Rm32Imm8",
	ImulR64Rm64Imm8: "ImulR64Rm64Imm8",
	InsbM8DX: "InsbM8DX",
	InswM16DX: "InswM16DX",
	InsdM32DX: "InsdM32DX",
	InsdM64DX: "InsdM64DX",
	OutsbDXM8: "OutsbDXM8",
	OutswDXM16: "OutswDXM16",
	OutsdDXM32: "OutsdDXM32",
	OutsdDXM64: "OutsdDXM64",
	JoRel8Op16: "JoRel8Op16",
	JoRel8Op32: "JoRel8Op32",
	JoRel8Op64: "JoRel8Op64",
	JnoRel8Op16: "JnoRel8Op16",
	JnoRel8Op32: "JnoRel8Op32",
	JnoRel8Op64: "JnoRel8Op64",
	JbRel8Op16: "JbRel8Op16",
	JbRel8Op32: "JbRel8Op32",
	JbRel8Op64: "JbRel8Op64",
	JaeRel8Op16: "JaeRel8Op16",
	JaeRel8Op32: "JaeRel8Op32",
	JaeRel8Op64: "JaeRel8Op64",
	JeRel8Op16: "JeRel8Op16",
	JeRel8Op32: "JeRel8Op32",
	JeRel8Op64: "JeRel8Op64",
	JneRel8Op16: "JneRel8Op16",
	JneRel8Op32: "JneRel8Op32",
	JneRel8Op64: "JneRel8Op64",
	JbeRel8Op16: "JbeRel8Op16",
	JbeRel8Op32: "JbeRel8Op32",
	JbeRel8Op64: "JbeRel8Op64",
	JaRel8Op16: "JaRel8Op16",
	JaRel8Op32: "JaRel8Op32",
	JaRel8Op64: "JaRel8Op64",
	JsRel8Op16: "JsRel8Op16",
	JsRel8Op32: "JsRel8Op32",
	JsRel8Op64: "JsRel8Op64",
	JnsRel8Op16: "JnsRel8Op16",
	JnsRel8Op32: "JnsRel8Op32",
	JnsRel8Op64: "JnsRel8Op64",
	JpRel8Op16: "JpRel8Op16",
	JpRel8Op32: "JpRel8Op32",
	JpRel8Op64: "JpRel8Op64",
	JnpRel8Op16: "JnpRel8Op16",
	JnpRel8Op32: "JnpRel8Op32",
	JnpRel8Op64: "JnpRel8Op64",
	JlRel8Op16: "JlRel8Op16",
	JlRel8Op32: "JlRel8Op32",
	JlRel8Op64: "JlRel8Op64",
	JgeRel8Op16: "JgeRel8Op16",
	JgeRel8Op32: "JgeRel8Op32",
	JgeRel8Op64: "JgeRel8Op64",
	JleRel8Op16: "JleRel8Op16",
	JleRel8Op32: "JleRel8Op32",
	JleRel8Op64: "JleRel8Op64",
	JgRel8Op16: "JgRel8Op16",
	JgRel8Op32: "JgRel8Op32",
	JgRel8Op64: "JgRel8Op64",
	AddRm8Imm8: "AddRm8Imm8",
	AddRm16Imm16: "AddRm16Imm16",
	AddRm32Imm32: "AddRm32Imm32",
	AddRm64Imm32: "AddRm64Imm32",
	AddRm8Imm8Op82: "AddRm8Imm8Op82",
	AddRm16Imm8: "AddRm16Imm8",
	AddRm32Imm8: "AddRm32Imm8",
	AddRm64Imm8: "AddRm64Imm8",
	OrRm8Imm8: "OrRm8Imm8",
	OrRm16Imm16: "OrRm16Imm16",
	OrRm32Imm32: "OrRm32Imm32",
	OrRm64Imm32: "OrRm64Imm32",
	OrRm8Imm8Op82: "OrRm8Imm8Op82",
	OrRm16Imm8: "OrRm16Imm8",
	OrRm32Imm8: "OrRm32Imm8",
	OrRm64Imm8: "OrRm64Imm8",
	AdcRm8Imm8: "AdcRm8Imm8",
	AdcRm16Imm16: "AdcRm16Imm16",
	AdcRm32Imm32: "AdcRm32Imm32",
	AdcRm64Imm32: "AdcRm64Imm32",
	AdcRm8Imm8Op82: "AdcRm8Imm8Op82",
	AdcRm16Imm8: "AdcRm16Imm8",
	AdcRm32Imm8: "AdcRm32Imm8",
	AdcRm64Imm8: "AdcRm64Imm8",
	SbbRm8Imm8: "SbbRm8Imm8",
	SbbRm16Imm16: "SbbRm16Imm16",
	SbbRm32Imm32: "SbbRm32Imm32",
	SbbRm64Imm32: "SbbRm64Imm32",
	SbbRm8Imm8Op82: "SbbRm8Imm8Op82",
	SbbRm16Imm8: "SbbRm16Imm8",
	SbbRm32Imm8: "SbbRm32Imm8",
	SbbRm64Imm8: "SbbRm64Imm8",
	AndRm8Imm8: "AndRm8Imm8",
	AndRm16Imm16: "AndRm16Imm16",
	AndRm32Imm32: "AndRm32Imm32",
	AndRm64Imm32: "AndRm64Imm32",
	AndRm8Imm8Op82: "AndRm8Imm8Op82",
	AndRm16Imm8: "AndRm16Imm8",
	AndRm32Imm8: "AndRm32Imm8",
	AndRm64Imm8: "AndRm64Imm8",
	SubRm8Imm8: "SubRm8Imm8",
	SubRm16Imm16: "SubRm16Imm16",
	SubRm32Imm32: "SubRm32Imm32",
	SubRm64Imm32: "SubRm64Imm32",
	SubRm8Imm8Op82: "SubRm8Imm8Op82",
	SubRm16Imm8: "SubRm16Imm8",
	SubRm32Imm8: "SubRm32Imm8",
	SubRm64Imm8: "SubRm64Imm8",
	XorRm8Imm8: "XorRm8Imm8",
	XorRm16Imm16: "XorRm16Imm16",
	XorRm32Imm32: "XorRm32Imm32",
	XorRm64Imm32: "XorRm64Imm32",
	XorRm8Imm8Op82: "XorRm8Imm8Op82",
	XorRm16Imm8: "XorRm16Imm8",
	XorRm32Imm8: "XorRm32Imm8",
	XorRm64Imm8: "XorRm64Imm8",
	CmpRm8Imm8: "CmpRm8Imm8",
	CmpRm16Imm16: "CmpRm16Imm16",
	CmpRm32Imm32: "CmpRm32Imm32",
	CmpRm64Imm32: "CmpRm64Imm32",
	CmpRm8Imm8Op82: "CmpRm8Imm8Op82",
	CmpRm16Imm8: "CmpRm16Imm8",
	CmpRm32Imm8: "CmpRm32Imm8",
	CmpRm64Imm8: "CmpRm64Imm8",
	TestRm8R8: "TestRm8R8",
	TestRm16R16: "TestRm16R16",
	TestRm32R32: "TestRm32R32",
	TestRm64R64: "TestRm64R64",
	XchgRm8R8: "XchgRm8R8",
	XchgRm16R16: "XchgRm16R16",
	XchgRm32R32: "XchgRm32R32",
	XchgRm64R64: "XchgRm64R64",
	MovRm8R8: "MovRm8R8",
	MovRm16R16: "MovRm16R16",
	MovRm32R32: "MovRm32R32",
	MovRm64R64: "MovRm64R64",
	MovR8Rm8: "MovR8Rm8",
	MovR16Rm16: "MovR16Rm16",
	MovR32Rm32: "MovR32Rm32",
	MovR64Rm64: "MovR64Rm64",
	MovR16m16Sreg: "MovR16m16Sreg",
	MovR32m16Sreg: "MovR32m16Sreg",
	MovR64m16Sreg: "MovR64m16Sreg",
	LeaR16Mem: "LeaR16Mem",
	LeaR32Mem: "LeaR32Mem",
	LeaR64Mem: "LeaR64Mem",
	MovSregRm16: "MovSregRm16",
	PopRm16: "PopRm16",
	PopRm32: "PopRm32",
	PopRm64: "PopRm64",
	Nop: "Nop",
	Pause: "Pause",
	XchgR16AX: "XchgR16AX",
	XchgR32EAX: "XchgR32EAX",
	XchgR64RAX: "XchgR64RAX",
	Cbw: "Cbw",
	Cwde: "Cwde",
	Cdqe: "Cdqe",
	Cwd: "Cwd",
	Cdq: "Cdq",
	Cqo: "Cqo",
	CallfPtr1616: "CallfPtr1616",
	CallfPtr1632: "CallfPtr1632",
	Wait: "Wait",
	Pushf: "Pushf",
	Pushfd: "Pushfd",
	Pushfq: "Pushfq",
	Popf: "Popf",
	Popfd: "Popfd",
	Popfq: "Popfq",
	Sahf: "Sahf",
	Lahf: "Lahf",
	MovALMoffs8: "MovALMoffs8",
	MovAXMoffs16: "MovAXMoffs16",
	MovEAXMoffs32: "MovEAXMoffs32",
	MovRAXMoffs64: "MovRAXMoffs64",
	MovMoffs8AL: "MovMoffs8AL",
	MovMoffs16AX: "MovMoffs16AX",
	MovMoffs32EAX: "MovMoffs32EAX",
	MovMoffs64RAX: "MovMoffs64RAX",
	MovsbM8M8: "MovsbM8M8",
	MovswM16M16: "MovswM16M16",
	MovsdM32M32: "MovsdM32M32",
	MovsqM64M64: "MovsqM64M64",
	CmpsbM8M8: "CmpsbM8M8",
	CmpswM16M16: "CmpswM16M16",
	CmpsdM32M32: "CmpsdM32M32",
	CmpsqM64M64: "CmpsqM64M64",
	TestALImm8: "TestALImm8",
	TestAXImm16: "TestAXImm16",
	TestEAXImm32: "TestEAXImm32",
	TestRAXImm32: "TestRAXImm32",
	StosbM8AL: "StosbM8AL",
	StoswM16AX: "StoswM16AX",
	StosdM32EAX: "StosdM32EAX",
	StosqM64RAX: "StosqM64RAX",
	LodsbALM8: "LodsbALM8",
	LodswAXM16: "LodswAXM16",
	LodsdEAXM32: "LodsdEAXM32",
	LodsqRAXM64: "LodsqRAXM64",
	ScasbALM8: "ScasbALM8",
	ScaswAXM16: "ScaswAXM16",
	ScasdEAXM32: "ScasdEAXM32",
	ScasqRAXM64: "ScasqRAXM64",
	MovR8Imm8: "MovR8Imm8",
	MovR16Imm16: "MovR16Imm16",
	MovR32Imm32: "MovR32Imm32",
	MovR64Imm64: "MovR64Imm64",
	RolRm8Imm8: "RolRm8Imm8",
	RolRm16Imm8: "RolRm16Imm8",
	RolRm32Imm8: "RolRm32Imm8",
	RolRm64Imm8: "RolRm64Imm8",
	RolRm8One: "RolRm8One",
	RolRm16One: "RolRm16One",
	RolRm32One: "RolRm32One",
	RolRm64One: "RolRm64One",
	RolRm8CL: "RolRm8CL",
	RolRm16CL: "RolRm16CL",
	RolRm32CL: "RolRm32CL",
	RolRm64CL: "RolRm64CL",
	RorRm8Imm8: "RorRm8Imm8",
	RorRm16Imm8: "RorRm16Imm8",
	RorRm32Imm8: "RorRm32Imm8",
	RorRm64Imm8: "RorRm64Imm8",
	RorRm8One: "RorRm8One",
	RorRm16One: "RorRm16One",
	RorRm32One: "RorRm32One",
	RorRm64One: "RorRm64One",
	RorRm8CL: "RorRm8CL",
	RorRm16CL: "RorRm16CL",
	RorRm32CL: "RorRm32CL",
	RorRm64CL: "RorRm64CL",
	RclRm8Imm8: "RclRm8Imm8",
	RclRm16Imm8: "RclRm16Imm8",
	RclRm32Imm8: "RclRm32Imm8",
	RclRm64Imm8: "RclRm64Imm8",
	RclRm8One: "RclRm8One",
	RclRm16One: "RclRm16One",
	RclRm32One: "RclRm32One",
	RclRm64One: "RclRm64One",
	RclRm8CL: "RclRm8CL",
	RclRm16CL: "RclRm16CL",
	RclRm32CL: "RclRm32CL",
	RclRm64CL: "RclRm64CL",
	RcrRm8Imm8: "RcrRm8Imm8",
	RcrRm16Imm8: "RcrRm16Imm8",
	RcrRm32Imm8: "RcrRm32Imm8",
	RcrRm64Imm8: "RcrRm64Imm8",
	RcrRm8One: "RcrRm8One",
	RcrRm16One: "RcrRm16One",
	RcrRm32One: "RcrRm32One",
	RcrRm64One: "RcrRm64One",
	RcrRm8CL: "RcrRm8CL",
	RcrRm16CL: "RcrRm16CL",
	RcrRm32CL: "RcrRm32CL",
	RcrRm64CL: "RcrRm64CL",
	ShlRm8Imm8: "ShlRm8Imm8",
	ShlRm16Imm8: "ShlRm16Imm8",
	ShlRm32Imm8: "ShlRm32Imm8",
	ShlRm64Imm8: "ShlRm64Imm8",
	ShlRm8One: "ShlRm8One",
	ShlRm16One: "ShlRm16One",
	ShlRm32One: "ShlRm32One",
	ShlRm64One: "ShlRm64One",
	ShlRm8CL: "ShlRm8CL",
	ShlRm16CL: "ShlRm16CL",
	ShlRm32CL: "ShlRm32CL",
	ShlRm64CL: "ShlRm64CL",
	ShrRm8Imm8: "ShrRm8Imm8",
	ShrRm16Imm8: "ShrRm16Imm8",
	ShrRm32Imm8: "ShrRm32Imm8",
	ShrRm64Imm8: "ShrRm64Imm8",
	ShrRm8One: "ShrRm8One",
	ShrRm16One: "ShrRm16One",
	ShrRm32One: "ShrRm32One",
	ShrRm64One: "ShrRm64One",
	ShrRm8CL: "ShrRm8CL",
	ShrRm16CL: "ShrRm16CL",
	ShrRm32CL: "ShrRm32CL",
	ShrRm64CL: "ShrRm64CL",
	SalRm8Imm8: "SalRm8Imm8",
	SalRm16Imm8: "SalRm16Imm8",
	SalRm32Imm8: "SalRm32Imm8",
	SalRm64Imm8: "SalRm64Imm8",
	SalRm8One: "SalRm8One",
	SalRm16One: "SalRm16One",
	SalRm32One: "SalRm32One",
	SalRm64One: "SalRm64One",
	SalRm8CL: "SalRm8CL",
	SalRm16CL: "SalRm16CL",
	SalRm32CL: "SalRm32CL",
	SalRm64CL: "SalRm64CL",
	SarRm8Imm8: "SarRm8Imm8",
	SarRm16Imm8: "SarRm16Imm8",
	SarRm32Imm8: "SarRm32Imm8",
	SarRm64Imm8: "SarRm64Imm8",
	SarRm8One: "SarRm8One",
	SarRm16One: "SarRm16One",
	SarRm32One: "SarRm32One",
	SarRm64One: "SarRm64One",
	SarRm8CL: "SarRm8CL",
	SarRm16CL: "SarRm16CL",
	SarRm32CL: "SarRm32CL",
	SarRm64CL: "SarRm64CL",
	RetImm16: "RetImm16",
	Ret: "Ret",
	LesR16M1616: "LesR16M1616",
	LesR32M1632: "LesR32M1632",
	LdsR16M1616: "LdsR16M1616",
	LdsR32M1632: "LdsR32M1632",
	MovRm8Imm8: "MovRm8Imm8",
	XabortImm8: "XabortImm8",
	MovRm16Imm16: "MovRm16Imm16",
	MovRm32Imm32: "MovRm32Imm32",
	MovRm64Imm32: "MovRm64Imm32",
	XbeginRel16: "XbeginRel16",
	XbeginRel32Op32: "XbeginRel32Op32",
	XbeginRel32Op64: "XbeginRel32Op64",
	EnterImm16Imm8: "EnterImm16Imm8",
	Leave: "Leave",
	RetfImm16: "RetfImm16",
	Retf: "Retf",
	Int3: "Int3",
	IntImm8: "IntImm8",
	Into: "Into",
	Iret: "Iret",
	Iretd: "Iretd",
	Iretq: "Iretq",
	AamImm8: "AamImm8",
	AadImm8: "AadImm8",
	Salc: "Salc",
	Xlatb: "Xlatb",
	LoopneRel8Op16: "LoopneRel8Op16",
	LoopneRel8Op32: "LoopneRel8Op32",
	LoopneRel8Op64: "LoopneRel8Op64",
	LoopeRel8Op16: "LoopeRel8Op16",
	LoopeRel8Op32: "LoopeRel8Op32",
	LoopeRel8Op64: "LoopeRel8Op64",
	LoopRel8Op16: "LoopRel8Op16",
	LoopRel8Op32: "LoopRel8Op32",
	LoopRel8Op64: "LoopRel8Op64",
	JcxzRel8Op16: "JcxzRel8Op16",
	JecxzRel8Op32: "JecxzRel8Op32",
	JrcxzRel8Op64: "JrcxzRel8Op64",
	InALImm8: "InALImm8",
	InAXImm8: "InAXImm8",
	InEAXImm8: "InEAXImm8",
	OutImm8AL: "OutImm8AL",
	OutImm8AX: "OutImm8AX",
	OutImm8EAX: "OutImm8EAX",
	CallRel16: "CallRel16",
	CallRel32Op32: "CallRel32Op32",
	CallRel32Op64: "CallRel32Op64",
	JmpRel16: "JmpRel16",
	JmpRel32Op32: "JmpRel32Op32",
	JmpRel32Op64: "JmpRel32Op64",
	JmpfPtr1616: "JmpfPtr1616",
	JmpfPtr1632: "JmpfPtr1632",
	JmpRel8Op16: "JmpRel8Op16",
	JmpRel8Op32: "JmpRel8Op32",
	JmpRel8Op64: "JmpRel8Op64",
	InALDX: "InALDX",
	InAXDX: "InAXDX",
	InEAXDX: "InEAXDX",
	OutDXAL: "OutDXAL",
	OutDXAX: "OutDXAX",
	OutDXEAX: "OutDXEAX",
	Int1: "Int1",
	Hlt: "Hlt",
	Cmc: "Cmc",
	TestRm8Imm8: "TestRm8Imm8",
	TestRm8Imm8F6r1: "TestRm8Imm8F6r1",
	TestRm16Imm16: "TestRm16Imm16",
	TestRm32Imm32: "TestRm32Imm32",
	TestRm64Imm32: "TestRm64Imm32",
	TestRm16Imm16F7r1: "TestRm16Imm16F7r1",
	TestRm32Imm32F7r1: "TestRm32Imm32F7r1",
	TestRm64Imm32F7r1: "TestRm64Imm32F7r1",
	NotRm8: "NotRm8",
	NotRm16: "NotRm16",
	NotRm32: "NotRm32",
	NotRm64: "NotRm64",
	NegRm8: "NegRm8",
	NegRm16: "NegRm16",
	NegRm32: "NegRm32",
	NegRm64: "NegRm64",
	MulRm8: "MulRm8",
	MulRm16: "MulRm16",
	MulRm32: "MulRm32",
	MulRm64: "MulRm64",
	ImulRm8: "ImulRm8",
	ImulRm16: "ImulRm16",
	ImulRm32: "ImulRm32",
	ImulRm64: "ImulRm64",
	DivRm8: "DivRm8",
	DivRm16: "DivRm16",
	DivRm32: "DivRm32",
	DivRm64: "DivRm64",
	IdivRm8: "IdivRm8",
	IdivRm16: "IdivRm16",
	IdivRm32: "IdivRm32",
	IdivRm64: "IdivRm64",
	Clc: "Clc",
	Stc: "Stc",
	Cli: "Cli",
	Sti: "Sti",
	Cld: "Cld",
	Std: "Std",
	IncRm8: "IncRm8",
	DecRm8: "DecRm8",
	IncRm16: "IncRm16",
	IncRm32: "IncRm32",
	IncRm64: "IncRm64",
	DecRm16: "DecRm16",
	DecRm32: "DecRm32",
	DecRm64: "DecRm64",
	CallRm16: "CallRm16",
	CallRm32: "CallRm32",
	CallRm64: "CallRm64",
	CallfM1616: "CallfM1616",
	CallfM1632: "CallfM1632",
	CallfM1664: "CallfM1664",
	JmpRm16: "JmpRm16",
	JmpRm32: "JmpRm32",
	JmpRm64: "JmpRm64",
	JmpfM1616: "JmpfM1616",
	JmpfM1632: "JmpfM1632",
	JmpfM1664: "JmpfM1664",
	PushRm16: "PushRm16",
	PushRm32: "PushRm32",
	PushRm64: "PushRm64",
	FaddM32fp: "FaddM32fp",
	FaddM64fp: "FaddM64fp",
	FaddSt0Sti: "FaddSt0Sti",
	FmulM32fp: "FmulM32fp",
	FmulM64fp: "FmulM64fp",
	FmulSt0Sti: "FmulSt0Sti",
	FcomM32fp: "FcomM32fp",
	FcomM64fp: "FcomM64fp",
	FcomSt0Sti: "FcomSt0Sti",
	FcompM32fp: "FcompM32fp",
	FcompM64fp: "FcompM64fp",
	FcompSt0Sti: "FcompSt0Sti",
	FsubM32fp: "FsubM32fp",
	FsubM64fp: "FsubM64fp",
	FsubSt0Sti: "FsubSt0Sti",
	FsubrM32fp: "FsubrM32fp",
	FsubrM64fp: "FsubrM64fp",
	FsubrSt0Sti: "FsubrSt0Sti",
	FdivM32fp: "FdivM32fp",
	FdivM64fp: "FdivM64fp",
	FdivSt0Sti: "FdivSt0Sti",
	FdivrM32fp: "FdivrM32fp",
	FdivrM64fp: "FdivrM64fp",
	FdivrSt0Sti: "FdivrSt0Sti",
	FiaddM32int: "FiaddM32int",
	FiaddM16int: "FiaddM16int",
	FimulM32int: "FimulM32int",
	FimulM16int: "FimulM16int",
	FicomM32int: "FicomM32int",
	FicomM16int: "FicomM16int",
	FicompM32int: "FicompM32int",
	FicompM16int: "FicompM16int",
	FisubM32int: "FisubM32int",
	FisubM16int: "FisubM16int",
	FisubrM32int: "FisubrM32int",
	FisubrM16int: "FisubrM16int",
	FidivM32int: "FidivM32int",
	FidivM16int: "FidivM16int",
	FidivrM32int: "FidivrM32int",
	FidivrM16int: "FidivrM16int",
	FaddStiSt0: "FaddStiSt0",
	FmulStiSt0: "FmulStiSt0",
	FsubrStiSt0: "FsubrStiSt0",
	FsubStiSt0: "FsubStiSt0",
	FdivrStiSt0: "FdivrStiSt0",
	FdivStiSt0: "FdivStiSt0",
	FaddpStiSt0: "FaddpStiSt0",
	FmulpStiSt0: "FmulpStiSt0",
	FsubrpStiSt0: "FsubrpStiSt0",
	FsubpStiSt0: "FsubpStiSt0",
	FdivrpStiSt0: "FdivrpStiSt0",
	FdivpStiSt0: "FdivpStiSt0",
	Fcompp: "Fcompp",
	FldM32fp: "FldM32fp",
	FstM32fp: "FstM32fp",
	FstpM32fp: "FstpM32fp",
	FldenvM14byte: "FldenvM14byte",
	FldenvM28byte: "FldenvM28byte",
	FldcwM16: "FldcwM16",
	FnstenvM14byte: "FnstenvM14byte",
	FnstenvM28byte: "FnstenvM28byte",
	FnstcwM16: "FnstcwM16",
	FldSti: "FldSti",
	FxchSti: "FxchSti",
	Fnop: "Fnop",
	Fchs: "Fchs",
	Fabs: "Fabs",
	Ftst: "Ftst",
	Fxam: "Fxam",
	Fld1: "Fld1",
	Fldl2t: "Fldl2t",
	Fldl2e: "Fldl2e",
	Fldpi: "Fldpi",
	Fldlg2: "Fldlg2",
	Fldln2: "Fldln2",
	Fldz: "Fldz",
	F2xm1: "F2xm1",
	Fyl2x: "Fyl2x",
	Fptan: "Fptan",
	Fpatan: "Fpatan",
	Fxtract: "Fxtract",
	Fprem1: "Fprem1",
	Fdecstp: "Fdecstp",
	Fincstp: "Fincstp",
	Fprem: "Fprem",
	Fyl2xp1: "Fyl2xp1",
	Fsqrt: "Fsqrt",
	Fsincos: "Fsincos",
	Frndint: "Frndint",
	Fscale: "Fscale",
	Fsin: "Fsin",
	Fcos: "Fcos",
	FcmovbSt0Sti: "FcmovbSt0Sti",
	FcmoveSt0Sti: "FcmoveSt0Sti",
	FcmovbeSt0Sti: "FcmovbeSt0Sti",
	FcmovuSt0Sti: "FcmovuSt0Sti",
	Fucompp: "Fucompp",
	FildM32int: "FildM32int",
	FisttpM32int: "FisttpM32int",
	FistM32int: "FistM32int",
	FistpM32int: "FistpM32int",
	FldM80fp: "FldM80fp",
	FstpM80fp: "FstpM80fp",
	FcmovnbSt0Sti: "FcmovnbSt0Sti",
	FcmovneSt0Sti: "FcmovneSt0Sti",
	FcmovnbeSt0Sti: "FcmovnbeSt0Sti",
	FcmovnuSt0Sti: "FcmovnuSt0Sti",
	Fnclex: "Fnclex",
	Fninit: "Fninit",
	FucomiSt0Sti: "FucomiSt0Sti",
	FcomiSt0Sti: "FcomiSt0Sti",
	FldM64fp: "FldM64fp",
	FisttpM64int: "FisttpM64int",
	FstM64fp: "FstM64fp",
	FstpM64fp: "FstpM64fp",
	FrstorM94byte: "FrstorM94byte",
	FrstorM108byte: "FrstorM108byte",
	FnsaveM94byte: "FnsaveM94byte",
	FnsaveM108byte: "FnsaveM108byte",
	FnstswM16: "FnstswM16",
	FfreeSti: "FfreeSti",
	FstSti: "FstSti",
	FstpSti: "FstpSti",
	FucomSti: "FucomSti",
	FucompSti: "FucompSti",
	FildM16int: "FildM16int",
	FisttpM16int: "FisttpM16int",
	FistM16int: "FistM16int",
	FistpM16int: "FistpM16int",
	FbldM80bcd: "FbldM80bcd",
	FildM64int: "FildM64int",
	FbstpM80bcd: "FbstpM80bcd",
	FistpM64int: "FistpM64int",
	FfreepSti: "FfreepSti",
	FnstswAX: "FnstswAX",
	FucomipSt0Sti: "FucomipSt0Sti",
	FcomipSt0Sti: "FcomipSt0Sti",
	SldtR16m16: "SldtR16m16",
	SldtR32m16: "SldtR32m16",
	SldtR64m16: "SldtR64m16",
	StrR16m16: "StrR16m16",
	StrR32m16: "StrR32m16",
	StrR64m16: "StrR64m16",
	LldtRm16: "LldtRm16",
	LtrRm16: "LtrRm16",
	VerrRm16: "VerrRm16",
	VerwRm16: "VerwRm16",
	SgdtM1632: "SgdtM1632",
	SgdtM1664: "SgdtM1664",
	SidtM1632: "SidtM1632",
	SidtM1664: "SidtM1664",
	LgdtM1632: "LgdtM1632",
	LgdtM1664: "LgdtM1664",
	LidtM1632: "LidtM1632",
	LidtM1664: "LidtM1664",
	InvlpgM8: "InvlpgM8",
	SmswR16m16: "SmswR16m16",
	SmswR32m16: "SmswR32m16",
	SmswR64m16: "SmswR64m16",
	LmswRm16: "LmswRm16",
	Vmcall: "Vmcall",
	Vmlaunch: "Vmlaunch",
	Vmresume: "Vmresume",
	Vmxoff: "Vmxoff",
	Monitor: "Monitor",
	Mwait: "Mwait",
	Clac: "Clac",
	Stac: "Stac",
	Xgetbv: "Xgetbv",
	Xsetbv: "Xsetbv",
	Xend: "Xend",
	Xtest: "Xtest",
	Rdtscp: "Rdtscp",
	Swapgs: "Swapgs",
	LarR16Rm16: "LarR16Rm16",
	LarR32Rm16: "LarR32Rm16",
	LarR64Rm16: "LarR64Rm16",
	LslR16Rm16: "LslR16Rm16",
	LslR32Rm16: "LslR32Rm16",
	LslR64Rm16: "LslR64Rm16",
	Syscall: "Syscall",
	Clts: "Clts",
	Sysret: "Sysret",
	Sysretq: "Sysretq",
	Invd: "Invd",
	Wbinvd: "Wbinvd",
	Ud2: "Ud2",
	PrefetchwM8: "PrefetchwM8",
	MovupsXmmXmmm128: "MovupsXmmXmmm128",
	MovupdXmmXmmm128: "MovupdXmmXmmm128",
	MovssXmmXmmm32: "MovssXmmXmmm32",
	MovsdXmmXmmm64: "MovsdXmmXmmm64",
	MovupsXmmm128Xmm: "MovupsXmmm128Xmm",
	MovupdXmmm128Xmm: "MovupdXmmm128Xmm",
	MovssXmmm32Xmm: "MovssXmmm32Xmm",
	MovsdXmmm64Xmm: "MovsdXmmm64Xmm",
	MovlpsXmmM64: "MovlpsXmmM64",
	MovhlpsXmmXmm: "MovhlpsXmmXmm",
	MovlpdXmmM64: "MovlpdXmmM64",
	MovsldupXmmXmmm128: "MovsldupXmmXmmm128",
	MovddupXmmXmmm64: "MovddupXmmXmmm64",
	MovlpsM64Xmm: "MovlpsM64Xmm",
	MovlpdM64Xmm: "MovlpdM64Xmm",
	UnpcklpsXmmXmmm128: "UnpcklpsXmmXmmm128",
	UnpcklpdXmmXmmm128: "UnpcklpdXmmXmmm128",
	UnpckhpsXmmXmmm128: "UnpckhpsXmmXmmm128",
	UnpckhpdXmmXmmm128: "UnpckhpdXmmXmmm128",
	MovhpsXmmM64: "MovhpsXmmM64",
	MovlhpsXmmXmm: "MovlhpsXmmXmm",
	MovhpdXmmM64: "MovhpdXmmM64",
	MovshdupXmmXmmm128: "MovshdupXmmXmmm128",
	MovhpsM64Xmm: "MovhpsM64Xmm",
	MovhpdM64Xmm: "MovhpdM64Xmm",
	PrefetchntaM8: "PrefetchntaM8",
	Prefetcht0M8: "Prefetcht0M8",
	Prefetcht1M8: "Prefetcht1M8",
	Prefetcht2M8: "Prefetcht2M8",
	Endbr64: "Endbr64",
	Endbr32: "Endbr32",
	NopRm16: "NopRm16",
	NopRm32: "NopRm32",
	NopRm64: "NopRm64",
	MovR32Cr: "MovR32Cr",
	MovR64Cr: "MovR64Cr",
	MovR32Dr: "MovR32Dr",
	MovR64Dr: "MovR64Dr",
	MovCrR32: "MovCrR32",
	MovCrR64: "MovCrR64",
	MovDrR32: "MovDrR32",
	MovDrR64: "MovDrR64",
	MovapsXmmXmmm128: "MovapsXmmXmmm128",
	MovapdXmmXmmm128: "MovapdXmmXmmm128",
	MovapsXmmm128Xmm: "MovapsXmmm128Xmm",
	MovapdXmmm128Xmm: "MovapdXmmm128Xmm",
	Cvtpi2psXmmMmm64: "Cvtpi2psXmmMmm64",
	Cvtpi2pdXmmMmm64: "Cvtpi2pdXmmMmm64",
	Cvtsi2ssXmmRm32: "Cvtsi2ssXmmRm32",
	Cvtsi2ssXmmRm64: "Cvtsi2ssXmmRm64",
	Cvtsi2sdXmmRm32: "Cvtsi2sdXmmRm32",
	Cvtsi2sdXmmRm64: "Cvtsi2sdXmmRm64",
	MovntpsM128Xmm: "MovntpsM128Xmm",
	MovntpdM128Xmm: "MovntpdM128Xmm",
	Cvttps2piMmXmmm64: "Cvttps2piMmXmmm64",
	Cvttpd2piMmXmmm128: "Cvttpd2piMmXmmm128",
	Cvttss2siR32Xmmm32: "Cvttss2siR32Xmmm32",
	Cvttss2siR64Xmmm32: "Cvttss2siR64Xmmm32",
	Cvttsd2siR32Xmmm64: "Cvttsd2siR32Xmmm64",
	Cvttsd2siR64Xmmm64: "Cvttsd2siR64Xmmm64",
	Cvtps2piMmXmmm64: "Cvtps2piMmXmmm64",
	Cvtpd2piMmXmmm128: "Cvtpd2piMmXmmm128",
	Cvtss2siR32Xmmm32: "Cvtss2siR32Xmmm32",
	Cvtss2siR64Xmmm32: "Cvtss2siR64Xmmm32",
	Cvtsd2siR32Xmmm64: "Cvtsd2siR32Xmmm64",
	Cvtsd2siR64Xmmm64: "Cvtsd2siR64Xmmm64",
	UcomissXmmXmmm32: "UcomissXmmXmmm32",
	UcomisdXmmXmmm64: "UcomisdXmmXmmm64",
	ComissXmmXmmm32: "ComissXmmXmmm32",
	ComisdXmmXmmm64: "ComisdXmmXmmm64",
	Wrmsr: "Wrmsr",
	Rdtsc: "Rdtsc",
	Rdmsr: "Rdmsr",
	Rdpmc: "Rdpmc",
	Sysenter: "Sysenter",
	Sysexit: "Sysexit",
	Getsec: "Getsec",
	CmovoR16Rm16: "CmovoR16Rm16",
	CmovoR32Rm32: "CmovoR32Rm32",
	CmovoR64Rm64: "CmovoR64Rm64",
	JoRel16: "JoRel16",
	JoRel32Op32: "JoRel32Op32",
	JoRel32Op64: "JoRel32Op64",
	SetoRm8: "SetoRm8",
	CmovnoR16Rm16: "CmovnoR16Rm16",
	CmovnoR32Rm32: "CmovnoR32Rm32",
	CmovnoR64Rm64: "CmovnoR64Rm64",
	JnoRel16: "JnoRel16",
	JnoRel32Op32: "JnoRel32Op32",
	JnoRel32Op64: "JnoRel32Op64",
	SetnoRm8: "SetnoRm8",
	CmovbR16Rm16: "CmovbR16Rm16",
	CmovbR32Rm32: "CmovbR32Rm32",
	CmovbR64Rm64: "CmovbR64Rm64",
	JbRel16: "JbRel16",
	JbRel32Op32: "JbRel32Op32",
	JbRel32Op64: "JbRel32Op64",
	SetbRm8: "SetbRm8",
	CmovaeR16Rm16: "CmovaeR16Rm16",
	CmovaeR32Rm32: "CmovaeR32Rm32",
	CmovaeR64Rm64: "CmovaeR64Rm64",
	JaeRel16: "JaeRel16",
	JaeRel32Op32: "JaeRel32Op32",
	JaeRel32Op64: "JaeRel32Op64",
	SetaeRm8: "SetaeRm8",
	CmoveR16Rm16: "CmoveR16Rm16",
	CmoveR32Rm32: "CmoveR32Rm32",
	CmoveR64Rm64: "CmoveR64Rm64",
	JeRel16: "JeRel16",
	JeRel32Op32: "JeRel32Op32",
	JeRel32Op64: "JeRel32Op64",
	SeteRm8: "SeteRm8",
	CmovneR16Rm16: "CmovneR16Rm16",
	CmovneR32Rm32: "CmovneR32Rm32",
	CmovneR64Rm64: "CmovneR64Rm64",
	JneRel16: "JneRel16",
	JneRel32Op32: "JneRel32Op32",
	JneRel32Op64: "JneRel32Op64",
	SetneRm8: "SetneRm8",
	CmovbeR16Rm16: "CmovbeR16Rm16",
	CmovbeR32Rm32: "CmovbeR32Rm32",
	CmovbeR64Rm64: "CmovbeR64Rm64",
	JbeRel16: "JbeRel16",
	JbeRel32Op32: "JbeRel32Op32",
	JbeRel32Op64: "JbeRel32Op64",
	SetbeRm8: "SetbeRm8",
	CmovaR16Rm16: "CmovaR16Rm16",
	CmovaR32Rm32: "CmovaR32Rm32",
	CmovaR64Rm64: "CmovaR64Rm64",
	JaRel16: "JaRel16",
	JaRel32Op32: "JaRel32Op32",
	JaRel32Op64: "JaRel32Op64",
	SetaRm8: "SetaRm8",
	CmovsR16Rm16: "CmovsR16Rm16",
	CmovsR32Rm32: "CmovsR32Rm32",
	CmovsR64Rm64: "CmovsR64Rm64",
	JsRel16: "JsRel16",
	JsRel32Op32: "JsRel32Op32",
	JsRel32Op64: "JsRel32Op64",
	SetsRm8: "SetsRm8",
	CmovnsR16Rm16: "CmovnsR16Rm16",
	CmovnsR32Rm32: "CmovnsR32Rm32",
	CmovnsR64Rm64: "CmovnsR64Rm64",
	JnsRel16: "JnsRel16",
	JnsRel32Op32: "JnsRel32Op32",
	JnsRel32Op64: "JnsRel32Op64",
	SetnsRm8: "SetnsRm8",
	CmovpR16Rm16: "CmovpR16Rm16",
	CmovpR32Rm32: "CmovpR32Rm32",
	CmovpR64Rm64: "CmovpR64Rm64",
	JpRel16: "JpRel16",
	JpRel32Op32: "JpRel32Op32",
	JpRel32Op64: "JpRel32Op64",
	SetpRm8: "SetpRm8",
	CmovnpR16Rm16: "CmovnpR16Rm16",
	CmovnpR32Rm32: "CmovnpR32Rm32",
	CmovnpR64Rm64: "CmovnpR64Rm64",
	JnpRel16: "JnpRel16",
	JnpRel32Op32: "JnpRel32Op32",
	JnpRel32Op64: "JnpRel32Op64",
	SetnpRm8: "SetnpRm8",
	CmovlR16Rm16: "CmovlR16Rm16",
	CmovlR32Rm32: "CmovlR32Rm32",
	CmovlR64Rm64: "CmovlR64Rm64",
	JlRel16: "JlRel16",
	JlRel32Op32: "JlRel32Op32",
	JlRel32Op64: "JlRel32Op64",
	SetlRm8: "SetlRm8",
	CmovgeR16Rm16: "CmovgeR16Rm16",
	CmovgeR32Rm32: "CmovgeR32Rm32",
	CmovgeR64Rm64: "CmovgeR64Rm64",
	JgeRel16: "JgeRel16",
	JgeRel32Op32: "JgeRel32Op32",
	JgeRel32Op64: "JgeRel32Op64",
	SetgeRm8: "SetgeRm8",
	CmovleR16Rm16: "CmovleR16Rm16",
	CmovleR32Rm32: "CmovleR32Rm32",
	CmovleR64Rm64: "CmovleR64Rm64",
	JleRel16: "JleRel16",
	JleRel32Op32: "JleRel32Op32",
	JleRel32Op64: "JleRel32Op64",
	SetleRm8: "SetleRm8",
	CmovgR16Rm16: "CmovgR16Rm16",
	CmovgR32Rm32: "CmovgR32Rm32",
	CmovgR64Rm64: "CmovgR64Rm64",
	JgRel16: "JgRel16",
	JgRel32Op32: "JgRel32Op32",
	JgRel32Op64: "JgRel32Op64",
	SetgRm8: "SetgRm8",
	MovmskpsR32Xmm: "MovmskpsR32Xmm",
	MovmskpsR64Xmm: "MovmskpsR64Xmm",
	MovmskpdR32Xmm: "MovmskpdR32Xmm",
	MovmskpdR64Xmm: "MovmskpdR64Xmm",
	SqrtpsXmmXmmm128: "SqrtpsXmmXmmm128",
	SqrtpdXmmXmmm128: "SqrtpdXmmXmmm128",
	SqrtssXmmXmmm32: "SqrtssXmmXmmm32",
	SqrtsdXmmXmmm64: "SqrtsdXmmXmmm64",
	RsqrtpsXmmXmmm128: "RsqrtpsXmmXmmm128",
	RsqrtssXmmXmmm32: "RsqrtssXmmXmmm32",
	RcppsXmmXmmm128: "RcppsXmmXmmm128",
	RcpssXmmXmmm32: "RcpssXmmXmmm32",
	AndpsXmmXmmm128: "AndpsXmmXmmm128",
	AndpdXmmXmmm128: "AndpdXmmXmmm128",
	AndnpsXmmXmmm128: "AndnpsXmmXmmm128",
	AndnpdXmmXmmm128: "AndnpdXmmXmmm128",
	OrpsXmmXmmm128: "OrpsXmmXmmm128",
	OrpdXmmXmmm128: "OrpdXmmXmmm128",
	XorpsXmmXmmm128: "XorpsXmmXmmm128",
	XorpdXmmXmmm128: "XorpdXmmXmmm128",
	AddpsXmmXmmm128: "AddpsXmmXmmm128",
	AddpdXmmXmmm128: "AddpdXmmXmmm128",
	AddssXmmXmmm32: "AddssXmmXmmm32",
	AddsdXmmXmmm64: "AddsdXmmXmmm64",
	MulpsXmmXmmm128: "MulpsXmmXmmm128",
	MulpdXmmXmmm128: "MulpdXmmXmmm128",
	MulssXmmXmmm32: "MulssXmmXmmm32",
	MulsdXmmXmmm64: "MulsdXmmXmmm64",
	Cvtps2pdXmmXmmm64: "Cvtps2pdXmmXmmm64",
	Cvtpd2psXmmXmmm128: "Cvtpd2psXmmXmmm128",
	Cvtss2sdXmmXmmm32: "Cvtss2sdXmmXmmm32",
	Cvtsd2ssXmmXmmm64: "Cvtsd2ssXmmXmmm64",
	Cvtdq2psXmmXmmm128: "Cvtdq2psXmmXmmm128",
	Cvtps2dqXmmXmmm128: "Cvtps2dqXmmXmmm128",
	Cvttps2dqXmmXmmm128: "Cvttps2dqXmmXmmm128",
	SubpsXmmXmmm128: "SubpsXmmXmmm128",
	SubpdXmmXmmm128: "SubpdXmmXmmm128",
	SubssXmmXmmm32: "SubssXmmXmmm32",
	SubsdXmmXmmm64: "SubsdXmmXmmm64",
	MinpsXmmXmmm128: "MinpsXmmXmmm128",
	MinpdXmmXmmm128: "MinpdXmmXmmm128",
	MinssXmmXmmm32: "MinssXmmXmmm32",
	MinsdXmmXmmm64: "MinsdXmmXmmm64",
	DivpsXmmXmmm128: "DivpsXmmXmmm128",
	DivpdXmmXmmm128: "DivpdXmmXmmm128",
	DivssXmmXmmm32: "DivssXmmXmmm32",
	DivsdXmmXmmm64: "DivsdXmmXmmm64",
	MaxpsXmmXmmm128: "MaxpsXmmXmmm128",
	MaxpdXmmXmmm128: "MaxpdXmmXmmm128",
	MaxssXmmXmmm32: "MaxssXmmXmmm32",
	MaxsdXmmXmmm64: "MaxsdXmmXmmm64",
	PunpcklbwMmMmm64: "PunpcklbwMmMmm64",
	PunpcklbwXmmXmmm128: "PunpcklbwXmmXmmm128",
	PunpcklwdMmMmm64: "PunpcklwdMmMmm64",
	PunpcklwdXmmXmmm128: "PunpcklwdXmmXmmm128",
	PunpckldqMmMmm64: "PunpckldqMmMmm64",
	PunpckldqXmmXmmm128: "PunpckldqXmmXmmm128",
	PacksswbMmMmm64: "PacksswbMmMmm64",
	PacksswbXmmXmmm128: "PacksswbXmmXmmm128",
	PcmpgtbMmMmm64: "PcmpgtbMmMmm64",
	PcmpgtbXmmXmmm128: "PcmpgtbXmmXmmm128",
	PcmpgtwMmMmm64: "PcmpgtwMmMmm64",
	PcmpgtwXmmXmmm128: "PcmpgtwXmmXmmm128",
	PcmpgtdMmMmm64: "PcmpgtdMmMmm64",
	PcmpgtdXmmXmmm128: "PcmpgtdXmmXmmm128",
	PackuswbMmMmm64: "PackuswbMmMmm64",
	PackuswbXmmXmmm128: "PackuswbXmmXmmm128",
	PunpckhbwMmMmm64: "PunpckhbwMmMmm64",
	PunpckhbwXmmXmmm128: "PunpckhbwXmmXmmm128",
	PunpckhwdMmMmm64: "PunpckhwdMmMmm64",
	PunpckhwdXmmXmmm128: "PunpckhwdXmmXmmm128",
	PunpckhdqMmMmm64: "PunpckhdqMmMmm64",
	PunpckhdqXmmXmmm128: "PunpckhdqXmmXmmm128",
	PackssdwMmMmm64: "PackssdwMmMmm64",
	PackssdwXmmXmmm128: "PackssdwXmmXmmm128",
	PcmpeqbMmMmm64: "PcmpeqbMmMmm64",
	PcmpeqbXmmXmmm128: "PcmpeqbXmmXmmm128",
	PcmpeqwMmMmm64: "PcmpeqwMmMmm64",
	PcmpeqwXmmXmmm128: "PcmpeqwXmmXmmm128",
	PcmpeqdMmMmm64: "PcmpeqdMmMmm64",
	PcmpeqdXmmXmmm128: "PcmpeqdXmmXmmm128",
	PsrlwMmMmm64: "PsrlwMmMmm64",
	PsrlwXmmXmmm128: "PsrlwXmmXmmm128",
	PsrldMmMmm64: "PsrldMmMmm64",
	PsrldXmmXmmm128: "PsrldXmmXmmm128",
	PsrlqMmMmm64: "PsrlqMmMmm64",
	PsrlqXmmXmmm128: "PsrlqXmmXmmm128",
	PaddqMmMmm64: "PaddqMmMmm64",
	PaddqXmmXmmm128: "PaddqXmmXmmm128",
	PmullwMmMmm64: "PmullwMmMmm64",
	PmullwXmmXmmm128: "PmullwXmmXmmm128",
	PsubusbMmMmm64: "PsubusbMmMmm64",
	PsubusbXmmXmmm128: "PsubusbXmmXmmm128",
	PsubuswMmMmm64: "PsubuswMmMmm64",
	PsubuswXmmXmmm128: "PsubuswXmmXmmm128",
	PminubMmMmm64: "PminubMmMmm64",
	PminubXmmXmmm128: "PminubXmmXmmm128",
	PandMmMmm64: "PandMmMmm64",
	PandXmmXmmm128: "PandXmmXmmm128",
	PaddusbMmMmm64: "PaddusbMmMmm64",
	PaddusbXmmXmmm128: "PaddusbXmmXmmm128",
	PadduswMmMmm64: "PadduswMmMmm64",
	PadduswXmmXmmm128: "PadduswXmmXmmm128",
	PmaxubMmMmm64: "PmaxubMmMmm64",
	PmaxubXmmXmmm128: "PmaxubXmmXmmm128",
	PandnMmMmm64: "PandnMmMmm64",
	PandnXmmXmmm128: "PandnXmmXmmm128",
	PavgbMmMmm64: "PavgbMmMmm64",
	PavgbXmmXmmm128: "PavgbXmmXmmm128",
	PsrawMmMmm64: "PsrawMmMmm64",
	PsrawXmmXmmm128: "PsrawXmmXmmm128",
	PsradMmMmm64: "PsradMmMmm64",
	PsradXmmXmmm128: "PsradXmmXmmm128",
	PavgwMmMmm64: "PavgwMmMmm64",
	PavgwXmmXmmm128: "PavgwXmmXmmm128",
	PmulhuwMmMmm64: "PmulhuwMmMmm64",
	PmulhuwXmmXmmm128: "PmulhuwXmmXmmm128",
	PmulhwMmMmm64: "PmulhwMmMmm64",
	PmulhwXmmXmmm128: "PmulhwXmmXmmm128",
	PsubsbMmMmm64: "PsubsbMmMmm64",
	PsubsbXmmXmmm128: "PsubsbXmmXmmm128",
	PsubswMmMmm64: "PsubswMmMmm64",
	PsubswXmmXmmm128: "PsubswXmmXmmm128",
	PminswMmMmm64: "PminswMmMmm64",
	PminswXmmXmmm128: "PminswXmmXmmm128",
	PorMmMmm64: "PorMmMmm64",
	PorXmmXmmm128: "PorXmmXmmm128",
	PaddsbMmMmm64: "PaddsbMmMmm64",
	PaddsbXmmXmmm128: "PaddsbXmmXmmm128",
	PaddswMmMmm64: "PaddswMmMmm64",
	PaddswXmmXmmm128: "PaddswXmmXmmm128",
	PmaxswMmMmm64: "PmaxswMmMmm64",
	PmaxswXmmXmmm128: "PmaxswXmmXmmm128",
	PxorMmMmm64: "PxorMmMmm64",
	PxorXmmXmmm128: "PxorXmmXmmm128",
	PsllwMmMmm64: "PsllwMmMmm64",
	PsllwXmmXmmm128: "PsllwXmmXmmm128",
	PslldMmMmm64: "PslldMmMmm64",
	PslldXmmXmmm128: "PslldXmmXmmm128",
	PsllqMmMmm64: "PsllqMmMmm64",
	PsllqXmmXmmm128: "PsllqXmmXmmm128",
	PmuludqMmMmm64: "PmuludqMmMmm64",
	PmuludqXmmXmmm128: "PmuludqXmmXmmm128",
	PmaddwdMmMmm64: "PmaddwdMmMmm64",
	PmaddwdXmmXmmm128: "PmaddwdXmmXmmm128",
	PsadbwMmMmm64: "PsadbwMmMmm64",
	PsadbwXmmXmmm128: "PsadbwXmmXmmm128",
	PsubbMmMmm64: "PsubbMmMmm64",
	PsubbXmmXmmm128: "PsubbXmmXmmm128",
	PsubwMmMmm64: "PsubwMmMmm64",
	PsubwXmmXmmm128: "PsubwXmmXmmm128",
	PsubdMmMmm64: "PsubdMmMmm64",
	PsubdXmmXmmm128: "PsubdXmmXmmm128",
	PsubqMmMmm64: "PsubqMmMmm64",
	PsubqXmmXmmm128: "PsubqXmmXmmm128",
	PaddbMmMmm64: "PaddbMmMmm64",
	PaddbXmmXmmm128: "PaddbXmmXmmm128",
	PaddwMmMmm64: "PaddwMmMmm64",
	PaddwXmmXmmm128: "PaddwXmmXmmm128",
	PadddMmMmm64: "PadddMmMmm64",
	PadddXmmXmmm128: "PadddXmmXmmm128",
	PunpcklqdqXmmXmmm128: "PunpcklqdqXmmXmmm128",
	PunpckhqdqXmmXmmm128: "PunpckhqdqXmmXmmm128",
	MovdMmRm32: "MovdMmRm32",
	MovqMmRm64: "MovqMmRm64",
	MovdXmmRm32: "MovdXmmRm32",
	MovqXmmRm64: "MovqXmmRm64",
	MovqMmMmm64: "MovqMmMmm64",
	MovdqaXmmXmmm128: "MovdqaXmmXmmm128",
	MovdquXmmXmmm128: "MovdquXmmXmmm128",
	PshufwMmMmm64Imm8: "PshufwMmMmm64Imm8",
	PshufdXmmXmmm128Imm8: "PshufdXmmXmmm128Imm8",
	PshufhwXmmXmmm128Imm8: "PshufhwXmmXmmm128Imm8",
	PshuflwXmmXmmm128Imm8: "PshuflwXmmXmmm128Imm8",
	PsrlwMmImm8: "PsrlwMmImm8",
	PsrlwXmmImm8: "PsrlwXmmImm8",
	PsrawMmImm8: "PsrawMmImm8",
	PsrawXmmImm8: "PsrawXmmImm8",
	PsllwMmImm8: "PsllwMmImm8",
	PsllwXmmImm8: "PsllwXmmImm8",
	PsrldMmImm8: "PsrldMmImm8",
	PsrldXmmImm8: "PsrldXmmImm8",
	PsradMmImm8: "PsradMmImm8",
	PsradXmmImm8: "PsradXmmImm8",
	PslldMmImm8: "PslldMmImm8",
	PslldXmmImm8: "PslldXmmImm8",
	PsrlqMmImm8: "PsrlqMmImm8",
	PsrlqXmmImm8: "PsrlqXmmImm8",
	PsllqMmImm8: "PsllqMmImm8",
	PsllqXmmImm8: "PsllqXmmImm8",
	PsrldqXmmImm8: "PsrldqXmmImm8",
	PslldqXmmImm8: "PslldqXmmImm8",
	Emms: "Emms",
	HaddpdXmmXmmm128: "HaddpdXmmXmmm128",
	HaddpsXmmXmmm128: "HaddpsXmmXmmm128",
	HsubpdXmmXmmm128: "HsubpdXmmXmmm128",
	HsubpsXmmXmmm128: "HsubpsXmmXmmm128",
	MovdRm32Mm: "MovdRm32Mm",
	MovqRm64Mm: "MovqRm64Mm",
	MovdRm32Xmm: "MovdRm32Xmm",
	MovqRm64Xmm: "MovqRm64Xmm",
	MovqXmmXmmm64: "MovqXmmXmmm64",
	MovqMmm64Mm: "MovqMmm64Mm",
	MovdqaXmmm128Xmm: "MovdqaXmmm128Xmm",
	MovdquXmmm128Xmm: "MovdquXmmm128Xmm",
	PushFS: "PushFS",
	PopFS: "PopFS",
	Cpuid: "Cpuid",
	BtRm16R16: "BtRm16R16",
	BtRm32R32: "BtRm32R32",
	BtRm64R64: "BtRm64R64",
	ShldRm16R16Imm8: "ShldRm16R16Imm8",
	ShldRm32R32Imm8: "ShldRm32R32Imm8",
	ShldRm64R64Imm8: "ShldRm64R64Imm8",
	ShldRm16R16CL: "ShldRm16R16CL",
	ShldRm32R32CL: "ShldRm32R32CL",
	ShldRm64R64CL: "ShldRm64R64CL",
	PushGS: "PushGS",
	PopGS: "PopGS",
	Rsm: "Rsm",
	BtsRm16R16: "BtsRm16R16",
	BtsRm32R32: "BtsRm32R32",
	BtsRm64R64: "BtsRm64R64",
	ShrdRm16R16Imm8: "ShrdRm16R16Imm8",
	ShrdRm32R32Imm8: "ShrdRm32R32Imm8",
	ShrdRm64R64Imm8: "ShrdRm64R64Imm8",
	ShrdRm16R16CL: "ShrdRm16R16CL",
	ShrdRm32R32CL: "ShrdRm32R32CL",
	ShrdRm64R64CL: "ShrdRm64R64CL",
	FxsaveM512byte: "FxsaveM512byte",
	FxrstorM512byte: "FxrstorM512byte",
	LdmxcsrM32: "LdmxcsrM32",
	StmxcsrM32: "StmxcsrM32",
	XsaveMem: "XsaveMem",
	XrstorMem: "XrstorMem",
	XsaveoptMem: "XsaveoptMem",
	ClflushM8: "ClflushM8",
	Lfence: "Lfence",
	Mfence: "Mfence",
	Sfence: "Sfence",
	RdfsbaseR32: "RdfsbaseR32",
	RdfsbaseR64: "RdfsbaseR64",
	RdgsbaseR32: "RdgsbaseR32",
	RdgsbaseR64: "RdgsbaseR64",
	WrfsbaseR32: "WrfsbaseR32",
	WrfsbaseR64: "WrfsbaseR64",
	WrgsbaseR32: "WrgsbaseR32",
	WrgsbaseR64: "WrgsbaseR64",
	ImulR16Rm16: "ImulR16Rm16",
	ImulR32Rm32: "ImulR32Rm32",
	ImulR64Rm64: "ImulR64Rm64",
	CmpxchgRm8R8: "CmpxchgRm8R8",
	CmpxchgRm16R16: "CmpxchgRm16R16",
	CmpxchgRm32R32: "CmpxchgRm32R32",
	CmpxchgRm64R64: "CmpxchgRm64R64",
	LssR16M1616: "LssR16M1616",
	LssR32M1632: "LssR32M1632",
	LssR64M1664: "LssR64M1664",
	BtrRm16R16: "BtrRm16R16",
	BtrRm32R32: "BtrRm32R32",
	BtrRm64R64: "BtrRm64R64",
	LfsR16M1616: "LfsR16M1616",
	LfsR32M1632: "LfsR32M1632",
	LfsR64M1664: "LfsR64M1664",
	LgsR16M1616: "LgsR16M1616",
	LgsR32M1632: "LgsR32M1632",
	LgsR64M1664: "LgsR64M1664",
	MovzxR16Rm8: "MovzxR16Rm8",
	MovzxR32Rm8: "MovzxR32Rm8",
	MovzxR64Rm8: "MovzxR64Rm8",
	MovzxR16Rm16: "MovzxR16Rm16",
	MovzxR32Rm16: "MovzxR32Rm16",
	MovzxR64Rm16: "MovzxR64Rm16",
	PopcntR16Rm16: "PopcntR16Rm16",
	PopcntR32Rm32: "PopcntR32Rm32",
	PopcntR64Rm64: "PopcntR64Rm64",
	Ud1R16Rm16: "Ud1R16Rm16",
	Ud1R32Rm32: "Ud1R32Rm32",
	Ud1R64Rm64: "Ud1R64Rm64",
	BtRm16Imm8: "BtRm16Imm8",
	BtRm32Imm8: "BtRm32Imm8",
	BtRm64Imm8: "BtRm64Imm8",
	BtsRm16Imm8: "BtsRm16Imm8",
	BtsRm32Imm8: "BtsRm32Imm8",
	BtsRm64Imm8: "BtsRm64Imm8",
	BtrRm16Imm8: "BtrRm16Imm8",
	BtrRm32Imm8: "BtrRm32Imm8",
	BtrRm64Imm8: "BtrRm64Imm8",
	BtcRm16Imm8: "BtcRm16Imm8",
	BtcRm32Imm8: "BtcRm32Imm8",
	BtcRm64Imm8: "BtcRm64Imm8",
	BtcRm16R16: "BtcRm16R16",
	BtcRm32R32: "BtcRm32R32",
	BtcRm64R64: "BtcRm64R64",
	BsfR16Rm16: "BsfR16Rm16",
	BsfR32Rm32: "BsfR32Rm32",
	BsfR64Rm64: "BsfR64Rm64",
	TzcntR16Rm16: "TzcntR16Rm16",
	TzcntR32Rm32: "TzcntR32Rm32",
	TzcntR64Rm64: "TzcntR64Rm64",
	BsrR16Rm16: "BsrR16Rm16",
	BsrR32Rm32: "BsrR32Rm32",
	BsrR64Rm64: "BsrR64Rm64",
	LzcntR16Rm16: "LzcntR16Rm16",
	LzcntR32Rm32: "LzcntR32Rm32",
	LzcntR64Rm64: "LzcntR64Rm64",
	MovsxR16Rm8: "MovsxR16Rm8",
	MovsxR32Rm8: "MovsxR32Rm8",
	MovsxR64Rm8: "MovsxR64Rm8",
	MovsxR16Rm16: "MovsxR16Rm16",
	MovsxR32Rm16: "MovsxR32Rm16",
	MovsxR64Rm16: "MovsxR64Rm16",
	XaddRm8R8: "XaddRm8R8",
	XaddRm16R16: "XaddRm16R16",
	XaddRm32R32: "XaddRm32R32",
	XaddRm64R64: "XaddRm64R64",
	CmppsXmmXmmm128Imm8: "CmppsXmmXmmm128Imm8",
	CmppdXmmXmmm128Imm8: "CmppdXmmXmmm128Imm8",
	CmpssXmmXmmm32Imm8: "CmpssXmmXmmm32Imm8",
	CmpsdXmmXmmm64Imm8: "CmpsdXmmXmmm64Imm8",
	MovntiM32R32: "MovntiM32R32",
	MovntiM64R64: "MovntiM64R64",
	PinsrwMmR32m16Imm8: "PinsrwMmR32m16Imm8",
	PinsrwMmR64m16Imm8: "PinsrwMmR64m16Imm8",
	PinsrwXmmR32m16Imm8: "PinsrwXmmR32m16Imm8",
	PinsrwXmmR64m16Imm8: "PinsrwXmmR64m16Imm8",
	PextrwR32MmImm8: "PextrwR32MmImm8",
	PextrwR64MmImm8: "PextrwR64MmImm8",
	PextrwR32XmmImm8: "PextrwR32XmmImm8",
	PextrwR64XmmImm8: "PextrwR64XmmImm8",
	ShufpsXmmXmmm128Imm8: "ShufpsXmmXmmm128Imm8",
	ShufpdXmmXmmm128Imm8: "ShufpdXmmXmmm128Imm8",
	Cmpxchg8bM64: "Cmpxchg8bM64",
	Cmpxchg16bM128: "Cmpxchg16bM128",
	RdrandR16: "RdrandR16",
	RdrandR32: "RdrandR32",
	RdrandR64: "RdrandR64",
	RdseedR16: "RdseedR16",
	RdseedR32: "RdseedR32",
	RdseedR64: "RdseedR64",
	RdpidR32: "RdpidR32",
	RdpidR64: "RdpidR64",
	BswapR16: "BswapR16",
	BswapR32: "BswapR32",
	BswapR64: "BswapR64",
	AddsubpdXmmXmmm128: "AddsubpdXmmXmmm128",
	AddsubpsXmmXmmm128: "AddsubpsXmmXmmm128",
	MovqXmmm64Xmm: "MovqXmmm64Xmm",
	Movq2dqXmmMm: "Movq2dqXmmMm",
	Movdq2qMmXmm: "Movdq2qMmXmm",
	PmovmskbR32Mm: "PmovmskbR32Mm",
	PmovmskbR64Mm: "PmovmskbR64Mm",
	PmovmskbR32Xmm: "PmovmskbR32Xmm",
	PmovmskbR64Xmm: "PmovmskbR64Xmm",
	Cvttpd2dqXmmXmmm128: "Cvttpd2dqXmmXmmm128",
	Cvtdq2pdXmmXmmm64: "Cvtdq2pdXmmXmmm64",
	Cvtpd2dqXmmXmmm128: "Cvtpd2dqXmmXmmm128",
	MovntqM64Mm: "MovntqM64Mm",
	MovntdqM128Xmm: "MovntdqM128Xmm",
	LddquXmmM128: "LddquXmmM128",
	MaskmovqMmMm: "MaskmovqMmMm",
	MaskmovdquXmmXmm: "MaskmovdquXmmXmm",
	Ud0R16Rm16: "Ud0R16Rm16",
	Ud0R32Rm32: "Ud0R32Rm32",
	Ud0R64Rm64: "Ud0R64Rm64",
	PshufbMmMmm64: "PshufbMmMmm64",
	PshufbXmmXmmm128: "PshufbXmmXmmm128",
	PhaddwMmMmm64: "PhaddwMmMmm64",
	PhaddwXmmXmmm128: "PhaddwXmmXmmm128",
	PhadddMmMmm64: "PhadddMmMmm64",
	PhadddXmmXmmm128: "PhadddXmmXmmm128",
	PhaddswMmMmm64: "PhaddswMmMmm64",
	PhaddswXmmXmmm128: "PhaddswXmmXmmm128",
	PmaddubswMmMmm64: "PmaddubswMmMmm64",
	PmaddubswXmmXmmm128: "PmaddubswXmmXmmm128",
	PhsubwMmMmm64: "PhsubwMmMmm64",
	PhsubwXmmXmmm128: "PhsubwXmmXmmm128",
	PhsubdMmMmm64: "PhsubdMmMmm64",
	PhsubdXmmXmmm128: "PhsubdXmmXmmm128",
	PhsubswMmMmm64: "PhsubswMmMmm64",
	PhsubswXmmXmmm128: "PhsubswXmmXmmm128",
	PsignbMmMmm64: "PsignbMmMmm64",
	PsignbXmmXmmm128: "PsignbXmmXmmm128",
	PsignwMmMmm64: "PsignwMmMmm64",
	PsignwXmmXmmm128: "PsignwXmmXmmm128",
	PsigndMmMmm64: "PsigndMmMmm64",
	PsigndXmmXmmm128: "PsigndXmmXmmm128",
	PmulhrswMmMmm64: "PmulhrswMmMmm64",
	PmulhrswXmmXmmm128: "PmulhrswXmmXmmm128",
	PabsbMmMmm64: "PabsbMmMmm64",
	PabsbXmmXmmm128: "PabsbXmmXmmm128",
	PabswMmMmm64: "PabswMmMmm64",
	PabswXmmXmmm128: "PabswXmmXmmm128",
	PabsdMmMmm64: "PabsdMmMmm64",
	PabsdXmmXmmm128: "PabsdXmmXmmm128",
	PblendvbXmmXmmm128Xmm0: "PblendvbXmmXmmm128Xmm0",
	BlendvpsXmmXmmm128Xmm0: "BlendvpsXmmXmmm128Xmm0",
	BlendvpdXmmXmmm128Xmm0: "BlendvpdXmmXmmm128Xmm0",
	PtestXmmXmmm128: "PtestXmmXmmm128",
	PmovsxbwXmmXmmm64: "PmovsxbwXmmXmmm64",
	PmovsxbdXmmXmmm32: "PmovsxbdXmmXmmm32",
	PmovsxbqXmmXmmm16: "PmovsxbqXmmXmmm16",
	PmovsxwdXmmXmmm64: "PmovsxwdXmmXmmm64",
	PmovsxwqXmmXmmm32: "PmovsxwqXmmXmmm32",
	PmovsxdqXmmXmmm64: "PmovsxdqXmmXmmm64",
	PmovzxbwXmmXmmm64: "PmovzxbwXmmXmmm64",
	PmovzxbdXmmXmmm32: "PmovzxbdXmmXmmm32",
	PmovzxbqXmmXmmm16: "PmovzxbqXmmXmmm16",
	PmovzxwdXmmXmmm64: "PmovzxwdXmmXmmm64",
	PmovzxwqXmmXmmm32: "PmovzxwqXmmXmmm32",
	PmovzxdqXmmXmmm64: "PmovzxdqXmmXmmm64",
	PmuldqXmmXmmm128: "PmuldqXmmXmmm128",
	PcmpeqqXmmXmmm128: "PcmpeqqXmmXmmm128",
	PackusdwXmmXmmm128: "PackusdwXmmXmmm128",
	PcmpgtqXmmXmmm128: "PcmpgtqXmmXmmm128",
	PminsbXmmXmmm128: "PminsbXmmXmmm128",
	PminsdXmmXmmm128: "PminsdXmmXmmm128",
	PminuwXmmXmmm128: "PminuwXmmXmmm128",
	PminudXmmXmmm128: "PminudXmmXmmm128",
	PmaxsbXmmXmmm128: "PmaxsbXmmXmmm128",
	PmaxsdXmmXmmm128: "PmaxsdXmmXmmm128",
	PmaxuwXmmXmmm128: "PmaxuwXmmXmmm128",
	PmaxudXmmXmmm128: "PmaxudXmmXmmm128",
	PmulldXmmXmmm128: "PmulldXmmXmmm128",
	PhminposuwXmmXmmm128: "PhminposuwXmmXmmm128",
	AesimcXmmXmmm128: "AesimcXmmXmmm128",
	AesencXmmXmmm128: "AesencXmmXmmm128",
	AesenclastXmmXmmm128: "AesenclastXmmXmmm128",
	AesdecXmmXmmm128: "AesdecXmmXmmm128",
	AesdeclastXmmXmmm128: "AesdeclastXmmXmmm128",
	MovntdqaXmmM128: "MovntdqaXmmM128",
	MovbeR16M16: "MovbeR16M16",
	MovbeR32M32: "MovbeR32M32",
	MovbeR64M64: "MovbeR64M64",
	Crc32R32Rm8: "Crc32R32Rm8",
	Crc32R64Rm8: "Crc32R64Rm8",
	MovbeM16R16: "MovbeM16R16",
	MovbeM32R32: "MovbeM32R32",
	MovbeM64R64: "MovbeM64R64",
	Crc32R32Rm16: "Crc32R32Rm16",
	Crc32R32Rm32: "Crc32R32Rm32",
	Crc32R64Rm64: "Crc32R64Rm64",
	AdcxR32Rm32: "AdcxR32Rm32",
	AdcxR64Rm64: "AdcxR64Rm64",
	AdoxR32Rm32: "AdoxR32Rm32",
	AdoxR64Rm64: "AdoxR64Rm64",
	PalignrMmMmm64Imm8: "PalignrMmMmm64Imm8",
	PalignrXmmXmmm128Imm8: "PalignrXmmXmmm128Imm8",
	RoundpsXmmXmmm128Imm8: "RoundpsXmmXmmm128Imm8",
	RoundpdXmmXmmm128Imm8: "RoundpdXmmXmmm128Imm8",
	RoundssXmmXmmm32Imm8: "RoundssXmmXmmm32Imm8",
	RoundsdXmmXmmm64Imm8: "RoundsdXmmXmmm64Imm8",
	BlendpsXmmXmmm128Imm8: "BlendpsXmmXmmm128Imm8",
	BlendpdXmmXmmm128Imm8: "BlendpdXmmXmmm128Imm8",
	PblendwXmmXmmm128Imm8: "PblendwXmmXmmm128Imm8",
	PextrbR32m8XmmImm8: "PextrbR32m8XmmImm8",
	PextrbR64m8XmmImm8: "PextrbR64m8XmmImm8",
	PextrwR32m16XmmImm8: "PextrwR32m16XmmImm8",
	PextrwR64m16XmmImm8: "PextrwR64m16XmmImm8",
	PextrdRm32XmmImm8: "PextrdRm32XmmImm8",
	PextrqRm64XmmImm8: "PextrqRm64XmmImm8",
	ExtractpsRm32XmmImm8: "ExtractpsRm32XmmImm8",
	PinsrbXmmR32m8Imm8: "PinsrbXmmR32m8Imm8",
	PinsrbXmmR64m8Imm8: "PinsrbXmmR64m8Imm8",
	InsertpsXmmXmmm32Imm8: "InsertpsXmmXmmm32Imm8",
	PinsrdXmmRm32Imm8: "PinsrdXmmRm32Imm8",
	PinsrqXmmRm64Imm8: "PinsrqXmmRm64Imm8",
	DppsXmmXmmm128Imm8: "DppsXmmXmmm128Imm8",
	DppdXmmXmmm128Imm8: "DppdXmmXmmm128Imm8",
	MpsadbwXmmXmmm128Imm8: "MpsadbwXmmXmmm128Imm8",
	PclmulqdqXmmXmmm128Imm8: "PclmulqdqXmmXmmm128Imm8",
	PcmpestrmXmmXmmm128Imm8: "PcmpestrmXmmXmmm128Imm8",
	PcmpestriXmmXmmm128Imm8: "PcmpestriXmmXmmm128Imm8",
	PcmpistrmXmmXmmm128Imm8: "PcmpistrmXmmXmmm128Imm8",
	PcmpistriXmmXmmm128Imm8: "PcmpistriXmmXmmm128Imm8",
	AeskeygenassistXmmXmmm128Imm8: "AeskeygenassistXmmXmmm128Imm8",
	VexVmovupsXmmXmmm128: "VexVmovupsXmmXmmm128",
	VexVmovupsYmmYmmm256: "VexVmovupsYmmYmmm256",
	VexVmovupdXmmXmmm128: "VexVmovupdXmmXmmm128",
	VexVmovupdYmmYmmm256: "VexVmovupdYmmYmmm256",
	VexVmovupsXmmm128Xmm: "VexVmovupsXmmm128Xmm",
	VexVmovupsYmmm256Ymm: "VexVmovupsYmmm256Ymm",
	VexVmovupdXmmm128Xmm: "VexVmovupdXmmm128Xmm",
	VexVmovupdYmmm256Ymm: "VexVmovupdYmmm256Ymm",
	VexVmovapsXmmXmmm128: "VexVmovapsXmmXmmm128",
	VexVmovapsYmmYmmm256: "VexVmovapsYmmYmmm256",
	VexVmovapdXmmXmmm128: "VexVmovapdXmmXmmm128",
	VexVmovapdYmmYmmm256: "VexVmovapdYmmYmmm256",
	VexVmovapsXmmm128Xmm: "VexVmovapsXmmm128Xmm",
	VexVmovapsYmmm256Ymm: "VexVmovapsYmmm256Ymm",
	VexVmovapdXmmm128Xmm: "VexVmovapdXmmm128Xmm",
	VexVmovapdYmmm256Ymm: "VexVmovapdYmmm256Ymm",
	VexVmovssXmmM32: "VexVmovssXmmM32",
	VexVmovssXmmXmmXmm: "VexVmovssXmmXmmXmm",
	VexVmovsdXmmM64: "VexVmovsdXmmM64",
	VexVmovsdXmmXmmXmm: "VexVmovsdXmmXmmXmm",
	VexVmovssM32Xmm: "VexVmovssM32Xmm",
	VexVmovssXmmXmmXmmOp0F11: "VexVmovssXmmXmmXmmOp0F11",
	VexVmovsdM64Xmm: "VexVmovsdM64Xmm",
	VexVmovsdXmmXmmXmmOp0F11: "VexVmovsdXmmXmmXmmOp0F11",
	VexVsqrtpsXmmXmmm128: "VexVsqrtpsXmmXmmm128",
	VexVsqrtpsYmmYmmm256: "VexVsqrtpsYmmYmmm256",
	VexVsqrtpdXmmXmmm128: "VexVsqrtpdXmmXmmm128",
	VexVsqrtpdYmmYmmm256: "VexVsqrtpdYmmYmmm256",
	VexVsqrtssXmmXmmXmmm32: "VexVsqrtssXmmXmmXmmm32",
	VexVsqrtsdXmmXmmXmmm64: "VexVsqrtsdXmmXmmXmmm64",
	VexVandpsXmmXmmXmmm128: "VexVandpsXmmXmmXmmm128",
	VexVandpsYmmYmmYmmm256: "VexVandpsYmmYmmYmmm256",
	VexVandpdXmmXmmXmmm128: "VexVandpdXmmXmmXmmm128",
	VexVandpdYmmYmmYmmm256: "VexVandpdYmmYmmYmmm256",
	VexVandnpsXmmXmmXmmm128: "VexVandnpsXmmXmmXmmm128",
	VexVandnpsYmmYmmYmmm256: "VexVandnpsYmmYmmYmmm256",
	VexVandnpdXmmXmmXmmm128: "VexVandnpdXmmXmmXmmm128",
	VexVandnpdYmmYmmYmmm256: "VexVandnpdYmmYmmYmmm256",
	VexVorpsXmmXmmXmmm128: "VexVorpsXmmXmmXmmm128",
	VexVorpsYmmYmmYmmm256: "VexVorpsYmmYmmYmmm256",
	VexVorpdXmmXmmXmmm128: "VexVorpdXmmXmmXmmm128",
	VexVorpdYmmYmmYmmm256: "VexVorpdYmmYmmYmmm256",
	VexVxorpsXmmXmmXmmm128: "VexVxorpsXmmXmmXmmm128",
	VexVxorpsYmmYmmYmmm256: "VexVxorpsYmmYmmYmmm256",
	VexVxorpdXmmXmmXmmm128: "VexVxorpdXmmXmmXmmm128",
	VexVxorpdYmmYmmYmmm256: "VexVxorpdYmmYmmYmmm256",
	VexVaddpsXmmXmmXmmm128: "VexVaddpsXmmXmmXmmm128",
	VexVaddpsYmmYmmYmmm256: "VexVaddpsYmmYmmYmmm256",
	VexVaddpdXmmXmmXmmm128: "VexVaddpdXmmXmmXmmm128",
	VexVaddpdYmmYmmYmmm256: "VexVaddpdYmmYmmYmmm256",
	VexVaddssXmmXmmXmmm32: "VexVaddssXmmXmmXmmm32",
	VexVaddsdXmmXmmXmmm64: "VexVaddsdXmmXmmXmmm64",
	VexVmulpsXmmXmmXmmm128: "VexVmulpsXmmXmmXmmm128",
	VexVmulpsYmmYmmYmmm256: "VexVmulpsYmmYmmYmmm256",
	VexVmulpdXmmXmmXmmm128: "VexVmulpdXmmXmmXmmm128",
	VexVmulpdYmmYmmYmmm256: "VexVmulpdYmmYmmYmmm256",
	VexVmulssXmmXmmXmmm32: "VexVmulssXmmXmmXmmm32",
	VexVmulsdXmmXmmXmmm64: "VexVmulsdXmmXmmXmmm64",
	VexVsubpsXmmXmmXmmm128: "VexVsubpsXmmXmmXmmm128",
	VexVsubpsYmmYmmYmmm256: "VexVsubpsYmmYmmYmmm256",
	VexVsubpdXmmXmmXmmm128: "VexVsubpdXmmXmmXmmm128",
	VexVsubpdYmmYmmYmmm256: "VexVsubpdYmmYmmYmmm256",
	VexVsubssXmmXmmXmmm32: "VexVsubssXmmXmmXmmm32",
	VexVsubsdXmmXmmXmmm64: "VexVsubsdXmmXmmXmmm64",
	VexVminpsXmmXmmXmmm128: "VexVminpsXmmXmmXmmm128",
	VexVminpsYmmYmmYmmm256: "VexVminpsYmmYmmYmmm256",
	VexVminpdXmmXmmXmmm128: "VexVminpdXmmXmmXmmm128",
	VexVminpdYmmYmmYmmm256: "VexVminpdYmmYmmYmmm256",
	VexVminssXmmXmmXmmm32: "VexVminssXmmXmmXmmm32",
	VexVminsdXmmXmmXmmm64: "VexVminsdXmmXmmXmmm64",
	VexVdivpsXmmXmmXmmm128: "VexVdivpsXmmXmmXmmm128",
	VexVdivpsYmmYmmYmmm256: "VexVdivpsYmmYmmYmmm256",
	VexVdivpdXmmXmmXmmm128: "VexVdivpdXmmXmmXmmm128",
	VexVdivpdYmmYmmYmmm256: "VexVdivpdYmmYmmYmmm256",
	VexVdivssXmmXmmXmmm32: "VexVdivssXmmXmmXmmm32",
	VexVdivsdXmmXmmXmmm64: "VexVdivsdXmmXmmXmmm64",
	VexVmaxpsXmmXmmXmmm128: "VexVmaxpsXmmXmmXmmm128",
	VexVmaxpsYmmYmmYmmm256: "VexVmaxpsYmmYmmYmmm256",
	VexVmaxpdXmmXmmXmmm128: "VexVmaxpdXmmXmmXmmm128",
	VexVmaxpdYmmYmmYmmm256: "VexVmaxpdYmmYmmYmmm256",
	VexVmaxssXmmXmmXmmm32: "VexVmaxssXmmXmmXmmm32",
	VexVmaxsdXmmXmmXmmm64: "VexVmaxsdXmmXmmXmmm64",
	VexVucomissXmmXmmm32: "VexVucomissXmmXmmm32",
	VexVucomisdXmmXmmm64: "VexVucomisdXmmXmmm64",
	VexVcomissXmmXmmm32: "VexVcomissXmmXmmm32",
	VexVcomisdXmmXmmm64: "VexVcomisdXmmXmmm64",
	VexVmovdqaXmmXmmm128: "VexVmovdqaXmmXmmm128",
	VexVmovdqaYmmYmmm256: "VexVmovdqaYmmYmmm256",
	VexVmovdquXmmXmmm128: "VexVmovdquXmmXmmm128",
	VexVmovdquYmmYmmm256: "VexVmovdquYmmYmmm256",
	VexVmovdqaXmmm128Xmm: "VexVmovdqaXmmm128Xmm",
	VexVmovdqaYmmm256Ymm: "VexVmovdqaYmmm256Ymm",
	VexVmovdquXmmm128Xmm: "VexVmovdquXmmm128Xmm",
	VexVmovdquYmmm256Ymm: "VexVmovdquYmmm256Ymm",
	VexVzeroupper: "VexVzeroupper",
	VexVzeroall: "VexVzeroall",
	VexVcmppsXmmXmmXmmm128Imm8: "VexVcmppsXmmXmmXmmm128Imm8",
	VexVcmppsYmmYmmYmmm256Imm8: "VexVcmppsYmmYmmYmmm256Imm8",
	VexVcmppdXmmXmmXmmm128Imm8: "VexVcmppdXmmXmmXmmm128Imm8",
	VexVcmppdYmmYmmYmmm256Imm8: "VexVcmppdYmmYmmYmmm256Imm8",
	VexVpaddqXmmXmmXmmm128: "VexVpaddqXmmXmmXmmm128",
	VexVpaddqYmmYmmYmmm256: "VexVpaddqYmmYmmYmmm256",
	VexVpandXmmXmmXmmm128: "VexVpandXmmXmmXmmm128",
	VexVpandYmmYmmYmmm256: "VexVpandYmmYmmYmmm256",
	VexVporXmmXmmXmmm128: "VexVporXmmXmmXmmm128",
	VexVporYmmYmmYmmm256: "VexVporYmmYmmYmmm256",
	VexVpxorXmmXmmXmmm128: "VexVpxorXmmXmmXmmm128",
	VexVpxorYmmYmmYmmm256: "VexVpxorYmmYmmYmmm256",
	VexVpadddXmmXmmXmmm128: "VexVpadddXmmXmmXmmm128",
	VexVpadddYmmYmmYmmm256: "VexVpadddYmmYmmYmmm256",
	VexVpsubdXmmXmmXmmm128: "VexVpsubdXmmXmmXmmm128",
	VexVpsubdYmmYmmYmmm256: "VexVpsubdYmmYmmYmmm256",
	VexVpcmpeqbXmmXmmXmmm128: "VexVpcmpeqbXmmXmmXmmm128",
	VexVpcmpeqbYmmYmmYmmm256: "VexVpcmpeqbYmmYmmYmmm256",
	VexVpcmpeqdXmmXmmXmmm128: "VexVpcmpeqdXmmXmmXmmm128",
	VexVpcmpeqdYmmYmmYmmm256: "VexVpcmpeqdYmmYmmYmmm256",
	VexVpmovmskbR32Xmm: "VexVpmovmskbR32Xmm",
	VexVpmovmskbR32Ymm: "VexVpmovmskbR32Ymm",
	VexVldmxcsrM32: "VexVldmxcsrM32",
	VexVstmxcsrM32: "VexVstmxcsrM32",
	VexKandwKrKrKr: "VexKandwKrKrKr",
	VexKorwKrKrKr: "VexKorwKrKrKr",
	VexKxorwKrKrKr: "VexKxorwKrKrKr",
	VexKnotwKrKr: "VexKnotwKrKr",
	VexKmovwKrKm16: "VexKmovwKrKm16",
	VexKmovwM16Kr: "VexKmovwM16Kr",
	VexKmovwKrR32: "VexKmovwKrR32",
	VexKmovwR32Kr: "VexKmovwR32Kr",
	VexKortestwKrKr: "VexKortestwKrKr",
	VexVpshufbXmmXmmXmmm128: "VexVpshufbXmmXmmXmmm128",
	VexVpshufbYmmYmmYmmm256: "VexVpshufbYmmYmmYmmm256",
	VexVptestXmmXmmm128: "VexVptestXmmXmmm128",
	VexVptestYmmYmmm256: "VexVptestYmmYmmm256",
	VexVbroadcastssXmmM32: "VexVbroadcastssXmmM32",
	VexVbroadcastssYmmM32: "VexVbroadcastssYmmM32",
	VexVbroadcastssXmmXmm: "VexVbroadcastssXmmXmm",
	VexVbroadcastssYmmXmm: "VexVbroadcastssYmmXmm",
	VexVpermdYmmYmmYmmm256: "VexVpermdYmmYmmYmmm256",
	VexVpbroadcastdXmmXmmm32: "VexVpbroadcastdXmmXmmm32",
	VexVpbroadcastdYmmXmmm32: "VexVpbroadcastdYmmXmmm32",
	VexVfmadd132psXmmXmmXmmm128: "VexVfmadd132psXmmXmmXmmm128",
	VexVfmadd132psYmmYmmYmmm256: "VexVfmadd132psYmmYmmYmmm256",
	VexVfmadd132pdXmmXmmXmmm128: "VexVfmadd132pdXmmXmmXmmm128",
	VexVfmadd132pdYmmYmmYmmm256: "VexVfmadd132pdYmmYmmYmmm256",
	VexVfmadd132ssXmmXmmXmmm32: "VexVfmadd132ssXmmXmmXmmm32",
	VexVfmadd132sdXmmXmmXmmm64: "VexVfmadd132sdXmmXmmXmmm64",
	VexVfmadd213psXmmXmmXmmm128: "VexVfmadd213psXmmXmmXmmm128",
	VexVfmadd213psYmmYmmYmmm256: "VexVfmadd213psYmmYmmYmmm256",
	VexVfmadd213pdXmmXmmXmmm128: "VexVfmadd213pdXmmXmmXmmm128",
	VexVfmadd213pdYmmYmmYmmm256: "VexVfmadd213pdYmmYmmYmmm256",
	VexVfmadd213ssXmmXmmXmmm32: "VexVfmadd213ssXmmXmmXmmm32",
	VexVfmadd213sdXmmXmmXmmm64: "VexVfmadd213sdXmmXmmXmmm64",
	VexVfmadd231psXmmXmmXmmm128: "VexVfmadd231psXmmXmmXmmm128",
	VexVfmadd231psYmmYmmYmmm256: "VexVfmadd231psYmmYmmYmmm256",
	VexVfmadd231pdXmmXmmXmmm128: "VexVfmadd231pdXmmXmmXmmm128",
	VexVfmadd231pdYmmYmmYmmm256: "VexVfmadd231pdYmmYmmYmmm256",
	VexVfmadd231ssXmmXmmXmmm32: "VexVfmadd231ssXmmXmmXmmm32",
	VexVfmadd231sdXmmXmmXmmm64: "VexVfmadd231sdXmmXmmXmmm64",
	VexAndnR32R32Rm32: "VexAndnR32R32Rm32",
	VexAndnR64R64Rm64: "VexAndnR64R64Rm64",
	VexBlsrR32Rm32: "VexBlsrR32Rm32",
	VexBlsrR64Rm64: "VexBlsrR64Rm64",
	VexBlsmskR32Rm32: "VexBlsmskR32Rm32",
	VexBlsmskR64Rm64: "VexBlsmskR64Rm64",
	VexBlsiR32Rm32: "VexBlsiR32Rm32",
	VexBlsiR64Rm64: "VexBlsiR64Rm64",
	VexBzhiR32Rm32R32: "VexBzhiR32Rm32R32",
	VexBzhiR64Rm64R64: "VexBzhiR64Rm64R64",
	VexPextR32R32Rm32: "VexPextR32R32Rm32",
	VexPextR64R64Rm64: "VexPextR64R64Rm64",
	VexPdepR32R32Rm32: "VexPdepR32R32Rm32",
	VexPdepR64R64Rm64: "VexPdepR64R64Rm64",
	VexMulxR32R32Rm32: "VexMulxR32R32Rm32",
	VexMulxR64R64Rm64: "VexMulxR64R64Rm64",
	VexBextrR32Rm32R32: "VexBextrR32Rm32R32",
	VexBextrR64Rm64R64: "VexBextrR64Rm64R64",
	VexShlxR32Rm32R32: "VexShlxR32Rm32R32",
	VexShlxR64Rm64R64: "VexShlxR64Rm64R64",
	VexSarxR32Rm32R32: "VexSarxR32Rm32R32",
	VexSarxR64Rm64R64: "VexSarxR64Rm64R64",
	VexShrxR32Rm32R32: "VexShrxR32Rm32R32",
	VexShrxR64Rm64R64: "VexShrxR64Rm64R64",
	VexVpermqYmmYmmm256Imm8: "VexVpermqYmmYmmm256Imm8",
	VexVblendpsXmmXmmXmmm128Imm8: "VexVblendpsXmmXmmXmmm128Imm8",
	VexVblendpsYmmYmmYmmm256Imm8: "VexVblendpsYmmYmmYmmm256Imm8",
	VexVinsertf128YmmYmmXmmm128Imm8: "VexVinsertf128YmmYmmXmmm128Imm8",
	VexVextractf128Xmmm128YmmImm8: "VexVextractf128Xmmm128YmmImm8",
	VexVblendvpsXmmXmmXmmm128Xmm: "VexVblendvpsXmmXmmXmmm128Xmm",
	VexVblendvpsYmmYmmYmmm256Ymm: "VexVblendvpsYmmYmmYmmm256Ymm",
	VexVblendvpdXmmXmmXmmm128Xmm: "VexVblendvpdXmmXmmXmmm128Xmm",
	VexVblendvpdYmmYmmYmmm256Ymm: "VexVblendvpdYmmYmmYmmm256Ymm",
	VexRorxR32Rm32Imm8: "VexRorxR32Rm32Imm8",
	VexRorxR64Rm64Imm8: "VexRorxR64Rm64Imm8",
	VexVmovlpsXmmXmmM64: "VexVmovlpsXmmXmmM64",
	VexVmovhlpsXmmXmmXmm: "VexVmovhlpsXmmXmmXmm",
	VexVmovlpdXmmXmmM64: "VexVmovlpdXmmXmmM64",
	VexVmovsldupXmmXmmm128: "VexVmovsldupXmmXmmm128",
	VexVmovsldupYmmYmmm256: "VexVmovsldupYmmYmmm256",
	VexVmovddupXmmXmmm64: "VexVmovddupXmmXmmm64",
	VexVmovddupYmmYmmm256: "VexVmovddupYmmYmmm256",
	VexVmovlpsM64Xmm: "VexVmovlpsM64Xmm",
	VexVmovlpdM64Xmm: "VexVmovlpdM64Xmm",
	VexVunpcklpsXmmXmmXmmm128: "VexVunpcklpsXmmXmmXmmm128",
	VexVunpcklpsYmmYmmYmmm256: "VexVunpcklpsYmmYmmYmmm256",
	VexVunpcklpdXmmXmmXmmm128: "VexVunpcklpdXmmXmmXmmm128",
	VexVunpcklpdYmmYmmYmmm256: "VexVunpcklpdYmmYmmYmmm256",
	VexVunpckhpsXmmXmmXmmm128: "VexVunpckhpsXmmXmmXmmm128",
	VexVunpckhpsYmmYmmYmmm256: "VexVunpckhpsYmmYmmYmmm256",
	VexVunpckhpdXmmXmmXmmm128: "VexVunpckhpdXmmXmmXmmm128",
	VexVunpckhpdYmmYmmYmmm256: "VexVunpckhpdYmmYmmYmmm256",
	VexVmovhpsXmmXmmM64: "VexVmovhpsXmmXmmM64",
	VexVmovlhpsXmmXmmXmm: "VexVmovlhpsXmmXmmXmm",
	VexVmovhpdXmmXmmM64: "VexVmovhpdXmmXmmM64",
	VexVmovshdupXmmXmmm128: "VexVmovshdupXmmXmmm128",
	VexVmovshdupYmmYmmm256: "VexVmovshdupYmmYmmm256",
	VexVmovhpsM64Xmm: "VexVmovhpsM64Xmm",
	VexVmovhpdM64Xmm: "VexVmovhpdM64Xmm",
	VexVcvtsi2ssXmmXmmRm32: "VexVcvtsi2ssXmmXmmRm32",
	VexVcvtsi2ssXmmXmmRm64: "VexVcvtsi2ssXmmXmmRm64",
	VexVcvtsi2sdXmmXmmRm32: "VexVcvtsi2sdXmmXmmRm32",
	VexVcvtsi2sdXmmXmmRm64: "VexVcvtsi2sdXmmXmmRm64",
	VexVmovntpsM128Xmm: "VexVmovntpsM128Xmm",
	VexVmovntpsM256Ymm: "VexVmovntpsM256Ymm",
	VexVmovntpdM128Xmm: "VexVmovntpdM128Xmm",
	VexVmovntpdM256Ymm: "VexVmovntpdM256Ymm",
	VexVcvttss2siR32Xmmm32: "VexVcvttss2siR32Xmmm32",
	VexVcvttss2siR64Xmmm32: "VexVcvttss2siR64Xmmm32",
	VexVcvttsd2siR32Xmmm64: "VexVcvttsd2siR32Xmmm64",
	VexVcvttsd2siR64Xmmm64: "VexVcvttsd2siR64Xmmm64",
	VexVcvtss2siR32Xmmm32: "VexVcvtss2siR32Xmmm32",
	VexVcvtss2siR64Xmmm32: "VexVcvtss2siR64Xmmm32",
	VexVcvtsd2siR32Xmmm64: "VexVcvtsd2siR32Xmmm64",
	VexVcvtsd2siR64Xmmm64: "VexVcvtsd2siR64Xmmm64",
	VexVmovmskpsR32Xmm: "VexVmovmskpsR32Xmm",
	VexVmovmskpsR32Ymm: "VexVmovmskpsR32Ymm",
	VexVmovmskpdR32Xmm: "VexVmovmskpdR32Xmm",
	VexVmovmskpdR32Ymm: "VexVmovmskpdR32Ymm",
	VexVrsqrtpsXmmXmmm128: "VexVrsqrtpsXmmXmmm128",
	VexVrsqrtpsYmmYmmm256: "VexVrsqrtpsYmmYmmm256",
	VexVrsqrtssXmmXmmXmmm32: "VexVrsqrtssXmmXmmXmmm32",
	VexVrcppsXmmXmmm128: "VexVrcppsXmmXmmm128",
	VexVrcppsYmmYmmm256: "VexVrcppsYmmYmmm256",
	VexVrcpssXmmXmmXmmm32: "VexVrcpssXmmXmmXmmm32",
	VexVcvtps2pdXmmXmmm64: "VexVcvtps2pdXmmXmmm64",
	VexVcvtps2pdYmmXmmm128: "VexVcvtps2pdYmmXmmm128",
	VexVcvtpd2psXmmXmmm128: "VexVcvtpd2psXmmXmmm128",
	VexVcvtpd2psXmmYmmm256: "VexVcvtpd2psXmmYmmm256",
	VexVcvtss2sdXmmXmmXmmm32: "VexVcvtss2sdXmmXmmXmmm32",
	VexVcvtsd2ssXmmXmmXmmm64: "VexVcvtsd2ssXmmXmmXmmm64",
	VexVcvtdq2psXmmXmmm128: "VexVcvtdq2psXmmXmmm128",
	VexVcvtdq2psYmmYmmm256: "VexVcvtdq2psYmmYmmm256",
	VexVcvtps2dqXmmXmmm128: "VexVcvtps2dqXmmXmmm128",
	VexVcvtps2dqYmmYmmm256: "VexVcvtps2dqYmmYmmm256",
	VexVcvttps2dqXmmXmmm128: "VexVcvttps2dqXmmXmmm128",
	VexVcvttps2dqYmmYmmm256: "VexVcvttps2dqYmmYmmm256",
	VexVpunpcklbwXmmXmmXmmm128: "VexVpunpcklbwXmmXmmXmmm128",
	VexVpunpcklbwYmmYmmYmmm256: "VexVpunpcklbwYmmYmmYmmm256",
	VexVpunpcklwdXmmXmmXmmm128: "VexVpunpcklwdXmmXmmXmmm128",
	VexVpunpcklwdYmmYmmYmmm256: "VexVpunpcklwdYmmYmmYmmm256",
	VexVpunpckldqXmmXmmXmmm128: "VexVpunpckldqXmmXmmXmmm128",
	VexVpunpckldqYmmYmmYmmm256: "VexVpunpckldqYmmYmmYmmm256",
	VexVpacksswbXmmXmmXmmm128: "VexVpacksswbXmmXmmXmmm128",
	VexVpacksswbYmmYmmYmmm256: "VexVpacksswbYmmYmmYmmm256",
	VexVpcmpgtbXmmXmmXmmm128: "VexVpcmpgtbXmmXmmXmmm128",
	VexVpcmpgtbYmmYmmYmmm256: "VexVpcmpgtbYmmYmmYmmm256",
	VexVpcmpgtwXmmXmmXmmm128: "VexVpcmpgtwXmmXmmXmmm128",
	VexVpcmpgtwYmmYmmYmmm256: "VexVpcmpgtwYmmYmmYmmm256",
	VexVpcmpgtdXmmXmmXmmm128: "VexVpcmpgtdXmmXmmXmmm128",
	VexVpcmpgtdYmmYmmYmmm256: "VexVpcmpgtdYmmYmmYmmm256",
	VexVpackuswbXmmXmmXmmm128: "VexVpackuswbXmmXmmXmmm128",
	VexVpackuswbYmmYmmYmmm256: "VexVpackuswbYmmYmmYmmm256",
	VexVpunpckhbwXmmXmmXmmm128: "VexVpunpckhbwXmmXmmXmmm128",
	VexVpunpckhbwYmmYmmYmmm256: "VexVpunpckhbwYmmYmmYmmm256",
	VexVpunpckhwdXmmXmmXmmm128: "VexVpunpckhwdXmmXmmXmmm128",
	VexVpunpckhwdYmmYmmYmmm256: "VexVpunpckhwdYmmYmmYmmm256",
	VexVpunpckhdqXmmXmmXmmm128: "VexVpunpckhdqXmmXmmXmmm128",
	VexVpunpckhdqYmmYmmYmmm256: "VexVpunpckhdqYmmYmmYmmm256",
	VexVpackssdwXmmXmmXmmm128: "VexVpackssdwXmmXmmXmmm128",
	VexVpackssdwYmmYmmYmmm256: "VexVpackssdwYmmYmmYmmm256",
	VexVpunpcklqdqXmmXmmXmmm128: "VexVpunpcklqdqXmmXmmXmmm128",
	VexVpunpcklqdqYmmYmmYmmm256: "VexVpunpcklqdqYmmYmmYmmm256",
	VexVpunpckhqdqXmmXmmXmmm128: "VexVpunpckhqdqXmmXmmXmmm128",
	VexVpunpckhqdqYmmYmmYmmm256: "VexVpunpckhqdqYmmYmmYmmm256",
	VexVpcmpeqwXmmXmmXmmm128: "VexVpcmpeqwXmmXmmXmmm128",
	VexVpcmpeqwYmmYmmYmmm256: "VexVpcmpeqwYmmYmmYmmm256",
	VexVpmullwXmmXmmXmmm128: "VexVpmullwXmmXmmXmmm128",
	VexVpmullwYmmYmmYmmm256: "VexVpmullwYmmYmmYmmm256",
	VexVpsubusbXmmXmmXmmm128: "VexVpsubusbXmmXmmXmmm128",
	VexVpsubusbYmmYmmYmmm256: "VexVpsubusbYmmYmmYmmm256",
	VexVpsubuswXmmXmmXmmm128: "VexVpsubuswXmmXmmXmmm128",
	VexVpsubuswYmmYmmYmmm256: "VexVpsubuswYmmYmmYmmm256",
	VexVpminubXmmXmmXmmm128: "VexVpminubXmmXmmXmmm128",
	VexVpminubYmmYmmYmmm256: "VexVpminubYmmYmmYmmm256",
	VexVpaddusbXmmXmmXmmm128: "VexVpaddusbXmmXmmXmmm128",
	VexVpaddusbYmmYmmYmmm256: "VexVpaddusbYmmYmmYmmm256",
	VexVpadduswXmmXmmXmmm128: "VexVpadduswXmmXmmXmmm128",
	VexVpadduswYmmYmmYmmm256: "VexVpadduswYmmYmmYmmm256",
	VexVpmaxubXmmXmmXmmm128: "VexVpmaxubXmmXmmXmmm128",
	VexVpmaxubYmmYmmYmmm256: "VexVpmaxubYmmYmmYmmm256",
	VexVpandnXmmXmmXmmm128: "VexVpandnXmmXmmXmmm128",
	VexVpandnYmmYmmYmmm256: "VexVpandnYmmYmmYmmm256",
	VexVpavgbXmmXmmXmmm128: "VexVpavgbXmmXmmXmmm128",
	VexVpavgbYmmYmmYmmm256: "VexVpavgbYmmYmmYmmm256",
	VexVpavgwXmmXmmXmmm128: "VexVpavgwXmmXmmXmmm128",
	VexVpavgwYmmYmmYmmm256: "VexVpavgwYmmYmmYmmm256",
	VexVpmulhuwXmmXmmXmmm128: "VexVpmulhuwXmmXmmXmmm128",
	VexVpmulhuwYmmYmmYmmm256: "VexVpmulhuwYmmYmmYmmm256",
	VexVpmulhwXmmXmmXmmm128: "VexVpmulhwXmmXmmXmmm128",
	VexVpmulhwYmmYmmYmmm256: "VexVpmulhwYmmYmmYmmm256",
	VexVpsubsbXmmXmmXmmm128: "VexVpsubsbXmmXmmXmmm128",
	VexVpsubsbYmmYmmYmmm256: "VexVpsubsbYmmYmmYmmm256",
	VexVpsubswXmmXmmXmmm128: "VexVpsubswXmmXmmXmmm128",
	VexVpsubswYmmYmmYmmm256: "VexVpsubswYmmYmmYmmm256",
	VexVpminswXmmXmmXmmm128: "VexVpminswXmmXmmXmmm128",
	VexVpminswYmmYmmYmmm256: "VexVpminswYmmYmmYmmm256",
	VexVpaddsbXmmXmmXmmm128: "VexVpaddsbXmmXmmXmmm128",
	VexVpaddsbYmmYmmYmmm256: "VexVpaddsbYmmYmmYmmm256",
	VexVpaddswXmmXmmXmmm128: "VexVpaddswXmmXmmXmmm128",
	VexVpaddswYmmYmmYmmm256: "VexVpaddswYmmYmmYmmm256",
	VexVpmaxswXmmXmmXmmm128: "VexVpmaxswXmmXmmXmmm128",
	VexVpmaxswYmmYmmYmmm256: "VexVpmaxswYmmYmmYmmm256",
	VexVpmuludqXmmXmmXmmm128: "VexVpmuludqXmmXmmXmmm128",
	VexVpmuludqYmmYmmYmmm256: "VexVpmuludqYmmYmmYmmm256",
	VexVpmaddwdXmmXmmXmmm128: "VexVpmaddwdXmmXmmXmmm128",
	VexVpmaddwdYmmYmmYmmm256: "VexVpmaddwdYmmYmmYmmm256",
	VexVpsadbwXmmXmmXmmm128: "VexVpsadbwXmmXmmXmmm128",
	VexVpsadbwYmmYmmYmmm256: "VexVpsadbwYmmYmmYmmm256",
	VexVpsubbXmmXmmXmmm128: "VexVpsubbXmmXmmXmmm128",
	VexVpsubbYmmYmmYmmm256: "VexVpsubbYmmYmmYmmm256",
	VexVpsubwXmmXmmXmmm128: "VexVpsubwXmmXmmXmmm128",
	VexVpsubwYmmYmmYmmm256: "VexVpsubwYmmYmmYmmm256",
	VexVpsubqXmmXmmXmmm128: "VexVpsubqXmmXmmXmmm128",
	VexVpsubqYmmYmmYmmm256: "VexVpsubqYmmYmmYmmm256",
	VexVpaddbXmmXmmXmmm128: "VexVpaddbXmmXmmXmmm128",
	VexVpaddbYmmYmmYmmm256: "VexVpaddbYmmYmmYmmm256",
	VexVpaddwXmmXmmXmmm128: "VexVpaddwXmmXmmXmmm128",
	VexVpaddwYmmYmmYmmm256: "VexVpaddwYmmYmmYmmm256",
	VexVpsrlwXmmXmmXmmm128: "VexVpsrlwXmmXmmXmmm128",
	VexVpsrlwYmmYmmXmmm128: "VexVpsrlwYmmYmmXmmm128",
	VexVpsrldXmmXmmXmmm128: "VexVpsrldXmmXmmXmmm128",
	VexVpsrldYmmYmmXmmm128: "VexVpsrldYmmYmmXmmm128",
	VexVpsrlqXmmXmmXmmm128: "VexVpsrlqXmmXmmXmmm128",
	VexVpsrlqYmmYmmXmmm128: "VexVpsrlqYmmYmmXmmm128",
	VexVpsrawXmmXmmXmmm128: "VexVpsrawXmmXmmXmmm128",
	VexVpsrawYmmYmmXmmm128: "VexVpsrawYmmYmmXmmm128",
	VexVpsradXmmXmmXmmm128: "VexVpsradXmmXmmXmmm128",
	VexVpsradYmmYmmXmmm128: "VexVpsradYmmYmmXmmm128",
	VexVpsllwXmmXmmXmmm128: "VexVpsllwXmmXmmXmmm128",
	VexVpsllwYmmYmmXmmm128: "VexVpsllwYmmYmmXmmm128",
	VexVpslldXmmXmmXmmm128: "VexVpslldXmmXmmXmmm128",
	VexVpslldYmmYmmXmmm128: "VexVpslldYmmYmmXmmm128",
	VexVpsllqXmmXmmXmmm128: "VexVpsllqXmmXmmXmmm128",
	VexVpsllqYmmYmmXmmm128: "VexVpsllqYmmYmmXmmm128",
	VexVmovdXmmRm32: "VexVmovdXmmRm32",
	VexVmovqXmmRm64: "VexVmovqXmmRm64",
	VexVpshufdXmmXmmm128Imm8: "VexVpshufdXmmXmmm128Imm8",
	VexVpshufdYmmYmmm256Imm8: "VexVpshufdYmmYmmm256Imm8",
	VexVpshufhwXmmXmmm128Imm8: "VexVpshufhwXmmXmmm128Imm8",
	VexVpshufhwYmmYmmm256Imm8: "VexVpshufhwYmmYmmm256Imm8",
	VexVpshuflwXmmXmmm128Imm8: "VexVpshuflwXmmXmmm128Imm8",
	VexVpshuflwYmmYmmm256Imm8: "VexVpshuflwYmmYmmm256Imm8",
	VexVpsrlwXmmXmmImm8: "VexVpsrlwXmmXmmImm8",
	VexVpsrlwYmmYmmImm8: "VexVpsrlwYmmYmmImm8",
	VexVpsrawXmmXmmImm8: "VexVpsrawXmmXmmImm8",
	VexVpsrawYmmYmmImm8: "VexVpsrawYmmYmmImm8",
	VexVpsllwXmmXmmImm8: "VexVpsllwXmmXmmImm8",
	VexVpsllwYmmYmmImm8: "VexVpsllwYmmYmmImm8",
	VexVpsrldXmmXmmImm8: "VexVpsrldXmmXmmImm8",
	VexVpsrldYmmYmmImm8: "VexVpsrldYmmYmmImm8",
	VexVpsradXmmXmmImm8: "VexVpsradXmmXmmImm8",
	VexVpsradYmmYmmImm8: "VexVpsradYmmYmmImm8",
	VexVpslldXmmXmmImm8: "VexVpslldXmmXmmImm8",
	VexVpslldYmmYmmImm8: "VexVpslldYmmYmmImm8",
	VexVpsrlqXmmXmmImm8: "VexVpsrlqXmmXmmImm8",
	VexVpsrlqYmmYmmImm8: "VexVpsrlqYmmYmmImm8",
	VexVpsrldqXmmXmmImm8: "VexVpsrldqXmmXmmImm8",
	VexVpsrldqYmmYmmImm8: "VexVpsrldqYmmYmmImm8",
	VexVpsllqXmmXmmImm8: "VexVpsllqXmmXmmImm8",
	VexVpsllqYmmYmmImm8: "VexVpsllqYmmYmmImm8",
	VexVpslldqXmmXmmImm8: "VexVpslldqXmmXmmImm8",
	VexVpslldqYmmYmmImm8: "VexVpslldqYmmYmmImm8",
	VexVhaddpdXmmXmmXmmm128: "VexVhaddpdXmmXmmXmmm128",
	VexVhaddpdYmmYmmYmmm256: "VexVhaddpdYmmYmmYmmm256",
	VexVhaddpsXmmXmmXmmm128: "VexVhaddpsXmmXmmXmmm128",
	VexVhaddpsYmmYmmYmmm256: "VexVhaddpsYmmYmmYmmm256",
	VexVhsubpdXmmXmmXmmm128: "VexVhsubpdXmmXmmXmmm128",
	VexVhsubpdYmmYmmYmmm256: "VexVhsubpdYmmYmmYmmm256",
	VexVhsubpsXmmXmmXmmm128: "VexVhsubpsXmmXmmXmmm128",
	VexVhsubpsYmmYmmYmmm256: "VexVhsubpsYmmYmmYmmm256",
	VexVmovdRm32Xmm: "VexVmovdRm32Xmm",
	VexVmovqRm64Xmm: "VexVmovqRm64Xmm",
	VexVmovqXmmXmmm64: "VexVmovqXmmXmmm64",
	VexVcmpssXmmXmmXmmm32Imm8: "VexVcmpssXmmXmmXmmm32Imm8",
	VexVcmpsdXmmXmmXmmm64Imm8: "VexVcmpsdXmmXmmXmmm64Imm8",
	VexVpinsrwXmmXmmR32m16Imm8: "VexVpinsrwXmmXmmR32m16Imm8",
	VexVpinsrwXmmXmmR64m16Imm8: "VexVpinsrwXmmXmmR64m16Imm8",
	VexVpextrwR32XmmImm8: "VexVpextrwR32XmmImm8",
	VexVpextrwR64XmmImm8: "VexVpextrwR64XmmImm8",
	VexVshufpsXmmXmmXmmm128Imm8: "VexVshufpsXmmXmmXmmm128Imm8",
	VexVshufpsYmmYmmYmmm256Imm8: "VexVshufpsYmmYmmYmmm256Imm8",
	VexVshufpdXmmXmmXmmm128Imm8: "VexVshufpdXmmXmmXmmm128Imm8",
	VexVshufpdYmmYmmYmmm256Imm8: "VexVshufpdYmmYmmYmmm256Imm8",
	VexVaddsubpdXmmXmmXmmm128: "VexVaddsubpdXmmXmmXmmm128",
	VexVaddsubpdYmmYmmYmmm256: "VexVaddsubpdYmmYmmYmmm256",
	VexVaddsubpsXmmXmmXmmm128: "VexVaddsubpsXmmXmmXmmm128",
	VexVaddsubpsYmmYmmYmmm256: "VexVaddsubpsYmmYmmYmmm256",
	VexVmovqXmmm64Xmm: "VexVmovqXmmm64Xmm",
	VexVcvttpd2dqXmmXmmm128: "VexVcvttpd2dqXmmXmmm128",
	VexVcvttpd2dqXmmYmmm256: "VexVcvttpd2dqXmmYmmm256",
	VexVcvtdq2pdXmmXmmm64: "VexVcvtdq2pdXmmXmmm64",
	VexVcvtdq2pdYmmXmmm128: "VexVcvtdq2pdYmmXmmm128",
	VexVcvtpd2dqXmmXmmm128: "VexVcvtpd2dqXmmXmmm128",
	VexVcvtpd2dqXmmYmmm256: "VexVcvtpd2dqXmmYmmm256",
	VexVmovntdqM128Xmm: "VexVmovntdqM128Xmm",
	VexVmovntdqM256Ymm: "VexVmovntdqM256Ymm",
	VexVlddquXmmM128: "VexVlddquXmmM128",
	VexVlddquYmmM256: "VexVlddquYmmM256",
	VexVmaskmovdquXmmXmm: "VexVmaskmovdquXmmXmm",
	VexVphaddwXmmXmmXmmm128: "VexVphaddwXmmXmmXmmm128",
	VexVphaddwYmmYmmYmmm256: "VexVphaddwYmmYmmYmmm256",
	VexVphadddXmmXmmXmmm128: "VexVphadddXmmXmmXmmm128",
	VexVphadddYmmYmmYmmm256: "VexVphadddYmmYmmYmmm256",
	VexVphaddswXmmXmmXmmm128: "VexVphaddswXmmXmmXmmm128",
	VexVphaddswYmmYmmYmmm256: "VexVphaddswYmmYmmYmmm256",
	VexVpmaddubswXmmXmmXmmm128: "VexVpmaddubswXmmXmmXmmm128",
	VexVpmaddubswYmmYmmYmmm256: "VexVpmaddubswYmmYmmYmmm256",
	VexVphsubwXmmXmmXmmm128: "VexVphsubwXmmXmmXmmm128",
	VexVphsubwYmmYmmYmmm256: "VexVphsubwYmmYmmYmmm256",
	VexVphsubdXmmXmmXmmm128: "VexVphsubdXmmXmmXmmm128",
	VexVphsubdYmmYmmYmmm256: "VexVphsubdYmmYmmYmmm256",
	VexVphsubswXmmXmmXmmm128: "VexVphsubswXmmXmmXmmm128",
	VexVphsubswYmmYmmYmmm256: "VexVphsubswYmmYmmYmmm256",
	VexVpsignbXmmXmmXmmm128: "VexVpsignbXmmXmmXmmm128",
	VexVpsignbYmmYmmYmmm256: "VexVpsignbYmmYmmYmmm256",
	VexVpsignwXmmXmmXmmm128: "VexVpsignwXmmXmmXmmm128",
	VexVpsignwYmmYmmYmmm256: "VexVpsignwYmmYmmYmmm256",
	VexVpsigndXmmXmmXmmm128: "VexVpsigndXmmXmmXmmm128",
	VexVpsigndYmmYmmYmmm256: "VexVpsigndYmmYmmYmmm256",
	VexVpmulhrswXmmXmmXmmm128: "VexVpmulhrswXmmXmmXmmm128",
	VexVpmulhrswYmmYmmYmmm256: "VexVpmulhrswYmmYmmYmmm256",
	VexVpmuldqXmmXmmXmmm128: "VexVpmuldqXmmXmmXmmm128",
	VexVpmuldqYmmYmmYmmm256: "VexVpmuldqYmmYmmYmmm256",
	VexVpcmpeqqXmmXmmXmmm128: "VexVpcmpeqqXmmXmmXmmm128",
	VexVpcmpeqqYmmYmmYmmm256: "VexVpcmpeqqYmmYmmYmmm256",
	VexVpackusdwXmmXmmXmmm128: "VexVpackusdwXmmXmmXmmm128",
	VexVpackusdwYmmYmmYmmm256: "VexVpackusdwYmmYmmYmmm256",
	VexVpcmpgtqXmmXmmXmmm128: "VexVpcmpgtqXmmXmmXmmm128",
	VexVpcmpgtqYmmYmmYmmm256: "VexVpcmpgtqYmmYmmYmmm256",
	VexVpminsbXmmXmmXmmm128: "VexVpminsbXmmXmmXmmm128",
	VexVpminsbYmmYmmYmmm256: "VexVpminsbYmmYmmYmmm256",
	VexVpminsdXmmXmmXmmm128: "VexVpminsdXmmXmmXmmm128",
	VexVpminsdYmmYmmYmmm256: "VexVpminsdYmmYmmYmmm256",
	VexVpminuwXmmXmmXmmm128: "VexVpminuwXmmXmmXmmm128",
	VexVpminuwYmmYmmYmmm256: "VexVpminuwYmmYmmYmmm256",
	VexVpminudXmmXmmXmmm128: "VexVpminudXmmXmmXmmm128",
	VexVpminudYmmYmmYmmm256: "VexVpminudYmmYmmYmmm256",
	VexVpmaxsbXmmXmmXmmm128: "VexVpmaxsbXmmXmmXmmm128",
	VexVpmaxsbYmmYmmYmmm256: "VexVpmaxsbYmmYmmYmmm256",
	VexVpmaxsdXmmXmmXmmm128: "VexVpmaxsdXmmXmmXmmm128",
	VexVpmaxsdYmmYmmYmmm256: "VexVpmaxsdYmmYmmYmmm256",
	VexVpmaxuwXmmXmmXmmm128: "VexVpmaxuwXmmXmmXmmm128",
	VexVpmaxuwYmmYmmYmmm256: "VexVpmaxuwYmmYmmYmmm256",
	VexVpmaxudXmmXmmXmmm128: "VexVpmaxudXmmXmmXmmm128",
	VexVpmaxudYmmYmmYmmm256: "VexVpmaxudYmmYmmYmmm256",
	VexVpmulldXmmXmmXmmm128: "VexVpmulldXmmXmmXmmm128",
	VexVpmulldYmmYmmYmmm256: "VexVpmulldYmmYmmYmmm256",
	VexVpermilpsXmmXmmXmmm128: "VexVpermilpsXmmXmmXmmm128",
	VexVpermilpsYmmYmmYmmm256: "VexVpermilpsYmmYmmYmmm256",
	VexVpermilpdXmmXmmXmmm128: "VexVpermilpdXmmXmmXmmm128",
	VexVpermilpdYmmYmmYmmm256: "VexVpermilpdYmmYmmYmmm256",
	VexVtestpsXmmXmmm128: "VexVtestpsXmmXmmm128",
	VexVtestpsYmmYmmm256: "VexVtestpsYmmYmmm256",
	VexVtestpdXmmXmmm128: "VexVtestpdXmmXmmm128",
	VexVtestpdYmmYmmm256: "VexVtestpdYmmYmmm256",
	VexVcvtph2psXmmXmmm64: "VexVcvtph2psXmmXmmm64",
	VexVcvtph2psYmmXmmm128: "VexVcvtph2psYmmXmmm128",
	VexVpermpsYmmYmmYmmm256: "VexVpermpsYmmYmmYmmm256",
	VexVbroadcastsdYmmXmmm64: "VexVbroadcastsdYmmXmmm64",
	VexVbroadcastf128YmmM128: "VexVbroadcastf128YmmM128",
	VexVpabsbXmmXmmm128: "VexVpabsbXmmXmmm128",
	VexVpabsbYmmYmmm256: "VexVpabsbYmmYmmm256",
	VexVpabswXmmXmmm128: "VexVpabswXmmXmmm128",
	VexVpabswYmmYmmm256: "VexVpabswYmmYmmm256",
	VexVpabsdXmmXmmm128: "VexVpabsdXmmXmmm128",
	VexVpabsdYmmYmmm256: "VexVpabsdYmmYmmm256",
	VexVpmovsxbwXmmXmmm64: "VexVpmovsxbwXmmXmmm64",
	VexVpmovsxbwYmmXmmm128: "VexVpmovsxbwYmmXmmm128",
	VexVpmovsxbdXmmXmmm32: "VexVpmovsxbdXmmXmmm32",
	VexVpmovsxbdYmmXmmm64: "VexVpmovsxbdYmmXmmm64",
	VexVpmovsxbqXmmXmmm16: "VexVpmovsxbqXmmXmmm16",
	VexVpmovsxbqYmmXmmm32: "VexVpmovsxbqYmmXmmm32",
	VexVpmovsxwdXmmXmmm64: "VexVpmovsxwdXmmXmmm64",
	VexVpmovsxwdYmmXmmm128: "VexVpmovsxwdYmmXmmm128",
	VexVpmovsxwqXmmXmmm32: "VexVpmovsxwqXmmXmmm32",
	VexVpmovsxwqYmmXmmm64: "VexVpmovsxwqYmmXmmm64",
	VexVpmovsxdqXmmXmmm64: "VexVpmovsxdqXmmXmmm64",
	VexVpmovsxdqYmmXmmm128: "VexVpmovsxdqYmmXmmm128",
	VexVpmovzxbwXmmXmmm64: "VexVpmovzxbwXmmXmmm64",
	VexVpmovzxbwYmmXmmm128: "VexVpmovzxbwYmmXmmm128",
	VexVpmovzxbdXmmXmmm32: "VexVpmovzxbdXmmXmmm32",
	VexVpmovzxbdYmmXmmm64: "VexVpmovzxbdYmmXmmm64",
	VexVpmovzxbqXmmXmmm16: "VexVpmovzxbqXmmXmmm16",
	VexVpmovzxbqYmmXmmm32: "VexVpmovzxbqYmmXmmm32",
	VexVpmovzxwdXmmXmmm64: "VexVpmovzxwdXmmXmmm64",
	VexVpmovzxwdYmmXmmm128: "VexVpmovzxwdYmmXmmm128",
	VexVpmovzxwqXmmXmmm32: "VexVpmovzxwqXmmXmmm32",
	VexVpmovzxwqYmmXmmm64: "VexVpmovzxwqYmmXmmm64",
	VexVpmovzxdqXmmXmmm64: "VexVpmovzxdqXmmXmmm64",
	VexVpmovzxdqYmmXmmm128: "VexVpmovzxdqYmmXmmm128",
	VexVmovntdqaXmmM128: "VexVmovntdqaXmmM128",
	VexVmovntdqaYmmM256: "VexVmovntdqaYmmM256",
	VexVmaskmovpsXmmXmmM128: "VexVmaskmovpsXmmXmmM128",
	VexVmaskmovpsYmmYmmM256: "VexVmaskmovpsYmmYmmM256",
	VexVmaskmovpdXmmXmmM128: "VexVmaskmovpdXmmXmmM128",
	VexVmaskmovpdYmmYmmM256: "VexVmaskmovpdYmmYmmM256",
	VexVmaskmovpsM128XmmXmm: "VexVmaskmovpsM128XmmXmm",
	VexVmaskmovpsM256YmmYmm: "VexVmaskmovpsM256YmmYmm",
	VexVmaskmovpdM128XmmXmm: "VexVmaskmovpdM128XmmXmm",
	VexVmaskmovpdM256YmmYmm: "VexVmaskmovpdM256YmmYmm",
	VexVphminposuwXmmXmmm128: "VexVphminposuwXmmXmmm128",
	VexVpsrlvdXmmXmmXmmm128: "VexVpsrlvdXmmXmmXmmm128",
	VexVpsrlvdYmmYmmYmmm256: "VexVpsrlvdYmmYmmYmmm256",
	VexVpsrlvqXmmXmmXmmm128: "VexVpsrlvqXmmXmmXmmm128",
	VexVpsrlvqYmmYmmYmmm256: "VexVpsrlvqYmmYmmYmmm256",
	VexVpsllvdXmmXmmXmmm128: "VexVpsllvdXmmXmmXmmm128",
	VexVpsllvdYmmYmmYmmm256: "VexVpsllvdYmmYmmYmmm256",
	VexVpsllvqXmmXmmXmmm128: "VexVpsllvqXmmXmmXmmm128",
	VexVpsllvqYmmYmmYmmm256: "VexVpsllvqYmmYmmYmmm256",
	VexVpsravdXmmXmmXmmm128: "VexVpsravdXmmXmmXmmm128",
	VexVpsravdYmmYmmYmmm256: "VexVpsravdYmmYmmYmmm256",
	VexVpbroadcastqXmmXmmm64: "VexVpbroadcastqXmmXmmm64",
	VexVpbroadcastqYmmXmmm64: "VexVpbroadcastqYmmXmmm64",
	VexVbroadcasti128YmmM128: "VexVbroadcasti128YmmM128",
	VexVpbroadcastbXmmXmmm8: "VexVpbroadcastbXmmXmmm8",
	VexVpbroadcastbYmmXmmm8: "VexVpbroadcastbYmmXmmm8",
	VexVpbroadcastwXmmXmmm16: "VexVpbroadcastwXmmXmmm16",
	VexVpbroadcastwYmmXmmm16: "VexVpbroadcastwYmmXmmm16",
	VexVpmaskmovdXmmXmmM128: "VexVpmaskmovdXmmXmmM128",
	VexVpmaskmovdYmmYmmM256: "VexVpmaskmovdYmmYmmM256",
	VexVpmaskmovqXmmXmmM128: "VexVpmaskmovqXmmXmmM128",
	VexVpmaskmovqYmmYmmM256: "VexVpmaskmovqYmmYmmM256",
	VexVpmaskmovdM128XmmXmm: "VexVpmaskmovdM128XmmXmm",
	VexVpmaskmovdM256YmmYmm: "VexVpmaskmovdM256YmmYmm",
	VexVpmaskmovqM128XmmXmm: "VexVpmaskmovqM128XmmXmm",
	VexVpmaskmovqM256YmmYmm: "VexVpmaskmovqM256YmmYmm",
	VexVpgatherddXmmVm32xXmm: "VexVpgatherddXmmVm32xXmm",
	VexVpgatherddYmmVm32yYmm: "VexVpgatherddYmmVm32yYmm",
	VexVpgatherdqXmmVm32xXmm: "VexVpgatherdqXmmVm32xXmm",
	VexVpgatherdqYmmVm32xYmm: "VexVpgatherdqYmmVm32xYmm",
	VexVpgatherqdXmmVm64xXmm: "VexVpgatherqdXmmVm64xXmm",
	VexVpgatherqdXmmVm64yXmm: "VexVpgatherqdXmmVm64yXmm",
	VexVpgatherqqXmmVm64xXmm: "VexVpgatherqqXmmVm64xXmm",
	VexVpgatherqqYmmVm64yYmm: "VexVpgatherqqYmmVm64yYmm",
	VexVgatherdpsXmmVm32xXmm: "VexVgatherdpsXmmVm32xXmm",
	VexVgatherdpsYmmVm32yYmm: "VexVgatherdpsYmmVm32yYmm",
	VexVgatherdpdXmmVm32xXmm: "VexVgatherdpdXmmVm32xXmm",
	VexVgatherdpdYmmVm32xYmm: "VexVgatherdpdYmmVm32xYmm",
	VexVgatherqpsXmmVm64xXmm: "VexVgatherqpsXmmVm64xXmm",
	VexVgatherqpsXmmVm64yXmm: "VexVgatherqpsXmmVm64yXmm",
	VexVgatherqpdXmmVm64xXmm: "VexVgatherqpdXmmVm64xXmm",
	VexVgatherqpdYmmVm64yYmm: "VexVgatherqpdYmmVm64yYmm",
	VexVfmaddsub132psXmmXmmXmmm128: "VexVfmaddsub132psXmmXmmXmmm128",
	VexVfmaddsub132psYmmYmmYmmm256: "VexVfmaddsub132psYmmYmmYmmm256",
	VexVfmaddsub132pdXmmXmmXmmm128: "VexVfmaddsub132pdXmmXmmXmmm128",
	VexVfmaddsub132pdYmmYmmYmmm256: "VexVfmaddsub132pdYmmYmmYmmm256",
	VexVfmsubadd132psXmmXmmXmmm128: "VexVfmsubadd132psXmmXmmXmmm128",
	VexVfmsubadd132psYmmYmmYmmm256: "VexVfmsubadd132psYmmYmmYmmm256",
	VexVfmsubadd132pdXmmXmmXmmm128: "VexVfmsubadd132pdXmmXmmXmmm128",
	VexVfmsubadd132pdYmmYmmYmmm256: "VexVfmsubadd132pdYmmYmmYmmm256",
	VexVfmsub132psXmmXmmXmmm128: "VexVfmsub132psXmmXmmXmmm128",
	VexVfmsub132psYmmYmmYmmm256: "VexVfmsub132psYmmYmmYmmm256",
	VexVfmsub132pdXmmXmmXmmm128: "VexVfmsub132pdXmmXmmXmmm128",
	VexVfmsub132pdYmmYmmYmmm256: "VexVfmsub132pdYmmYmmYmmm256",
	VexVfmsub132ssXmmXmmXmmm32: "VexVfmsub132ssXmmXmmXmmm32",
	VexVfmsub132sdXmmXmmXmmm64: "VexVfmsub132sdXmmXmmXmmm64",
	VexVfnmadd132psXmmXmmXmmm128: "VexVfnmadd132psXmmXmmXmmm128",
	VexVfnmadd132psYmmYmmYmmm256: "VexVfnmadd132psYmmYmmYmmm256",
	VexVfnmadd132pdXmmXmmXmmm128: "VexVfnmadd132pdXmmXmmXmmm128",
	VexVfnmadd132pdYmmYmmYmmm256: "VexVfnmadd132pdYmmYmmYmmm256",
	VexVfnmadd132ssXmmXmmXmmm32: "VexVfnmadd132ssXmmXmmXmmm32",
	VexVfnmadd132sdXmmXmmXmmm64: "VexVfnmadd132sdXmmXmmXmmm64",
	VexVfnmsub132psXmmXmmXmmm128: "VexVfnmsub132psXmmXmmXmmm128",
	VexVfnmsub132psYmmYmmYmmm256: "VexVfnmsub132psYmmYmmYmmm256",
	VexVfnmsub132pdXmmXmmXmmm128: "VexVfnmsub132pdXmmXmmXmmm128",
	VexVfnmsub132pdYmmYmmYmmm256: "VexVfnmsub132pdYmmYmmYmmm256",
	VexVfnmsub132ssXmmXmmXmmm32: "VexVfnmsub132ssXmmXmmXmmm32",
	VexVfnmsub132sdXmmXmmXmmm64: "VexVfnmsub132sdXmmXmmXmmm64",
	VexVfmaddsub213psXmmXmmXmmm128: "VexVfmaddsub213psXmmXmmXmmm128",
	VexVfmaddsub213psYmmYmmYmmm256: "VexVfmaddsub213psYmmYmmYmmm256",
	VexVfmaddsub213pdXmmXmmXmmm128: "VexVfmaddsub213pdXmmXmmXmmm128",
	VexVfmaddsub213pdYmmYmmYmmm256: "VexVfmaddsub213pdYmmYmmYmmm256",
	VexVfmsubadd213psXmmXmmXmmm128: "VexVfmsubadd213psXmmXmmXmmm128",
	VexVfmsubadd213psYmmYmmYmmm256: "VexVfmsubadd213psYmmYmmYmmm256",
	VexVfmsubadd213pdXmmXmmXmmm128: "VexVfmsubadd213pdXmmXmmXmmm128",
	VexVfmsubadd213pdYmmYmmYmmm256: "VexVfmsubadd213pdYmmYmmYmmm256",
	VexVfmsub213psXmmXmmXmmm128: "VexVfmsub213psXmmXmmXmmm128",
	VexVfmsub213psYmmYmmYmmm256: "VexVfmsub213psYmmYmmYmmm256",
	VexVfmsub213pdXmmXmmXmmm128: "VexVfmsub213pdXmmXmmXmmm128",
	VexVfmsub213pdYmmYmmYmmm256: "VexVfmsub213pdYmmYmmYmmm256",
	VexVfmsub213ssXmmXmmXmmm32: "VexVfmsub213ssXmmXmmXmmm32",
	VexVfmsub213sdXmmXmmXmmm64: "VexVfmsub213sdXmmXmmXmmm64",
	VexVfnmadd213psXmmXmmXmmm128: "VexVfnmadd213psXmmXmmXmmm128",
	VexVfnmadd213psYmmYmmYmmm256: "VexVfnmadd213psYmmYmmYmmm256",
	VexVfnmadd213pdXmmXmmXmmm128: "VexVfnmadd213pdXmmXmmXmmm128",
	VexVfnmadd213pdYmmYmmYmmm256: "VexVfnmadd213pdYmmYmmYmmm256",
	VexVfnmadd213ssXmmXmmXmmm32: "VexVfnmadd213ssXmmXmmXmmm32",
	VexVfnmadd213sdXmmXmmXmmm64: "VexVfnmadd213sdXmmXmmXmmm64",
	VexVfnmsub213psXmmXmmXmmm128: "VexVfnmsub213psXmmXmmXmmm128",
	VexVfnmsub213psYmmYmmYmmm256: "VexVfnmsub213psYmmYmmYmmm256",
	VexVfnmsub213pdXmmXmmXmmm128: "VexVfnmsub213pdXmmXmmXmmm128",
	VexVfnmsub213pdYmmYmmYmmm256: "VexVfnmsub213pdYmmYmmYmmm256",
	VexVfnmsub213ssXmmXmmXmmm32: "VexVfnmsub213ssXmmXmmXmmm32",
	VexVfnmsub213sdXmmXmmXmmm64: "VexVfnmsub213sdXmmXmmXmmm64",
	VexVfmaddsub231psXmmXmmXmmm128: "VexVfmaddsub231psXmmXmmXmmm128",
	VexVfmaddsub231psYmmYmmYmmm256: "VexVfmaddsub231psYmmYmmYmmm256",
	VexVfmaddsub231pdXmmXmmXmmm128: "VexVfmaddsub231pdXmmXmmXmmm128",
	VexVfmaddsub231pdYmmYmmYmmm256: "VexVfmaddsub231pdYmmYmmYmmm256",
	VexVfmsubadd231psXmmXmmXmmm128: "VexVfmsubadd231psXmmXmmXmmm128",
	VexVfmsubadd231psYmmYmmYmmm256: "VexVfmsubadd231psYmmYmmYmmm256",
	VexVfmsubadd231pdXmmXmmXmmm128: "VexVfmsubadd231pdXmmXmmXmmm128",
	VexVfmsubadd231pdYmmYmmYmmm256: "VexVfmsubadd231pdYmmYmmYmmm256",
	VexVfmsub231psXmmXmmXmmm128: "VexVfmsub231psXmmXmmXmmm128",
	VexVfmsub231psYmmYmmYmmm256: "VexVfmsub231psYmmYmmYmmm256",
	VexVfmsub231pdXmmXmmXmmm128: "VexVfmsub231pdXmmXmmXmmm128",
	VexVfmsub231pdYmmYmmYmmm256: "VexVfmsub231pdYmmYmmYmmm256",
	VexVfmsub231ssXmmXmmXmmm32: "VexVfmsub231ssXmmXmmXmmm32",
	VexVfmsub231sdXmmXmmXmmm64: "VexVfmsub231sdXmmXmmXmmm64",
	VexVfnmadd231psXmmXmmXmmm128: "VexVfnmadd231psXmmXmmXmmm128",
	VexVfnmadd231psYmmYmmYmmm256: "VexVfnmadd231psYmmYmmYmmm256",
	VexVfnmadd231pdXmmXmmXmmm128: "VexVfnmadd231pdXmmXmmXmmm128",
	VexVfnmadd231pdYmmYmmYmmm256: "VexVfnmadd231pdYmmYmmYmmm256",
	VexVfnmadd231ssXmmXmmXmmm32: "VexVfnmadd231ssXmmXmmXmmm32",
	VexVfnmadd231sdXmmXmmXmmm64: "VexVfnmadd231sdXmmXmmXmmm64",
	VexVfnmsub231psXmmXmmXmmm128: "VexVfnmsub231psXmmXmmXmmm128",
	VexVfnmsub231psYmmYmmYmmm256: "VexVfnmsub231psYmmYmmYmmm256",
	VexVfnmsub231pdXmmXmmXmmm128: "VexVfnmsub231pdXmmXmmXmmm128",
	VexVfnmsub231pdYmmYmmYmmm256: "VexVfnmsub231pdYmmYmmYmmm256",
	VexVfnmsub231ssXmmXmmXmmm32: "VexVfnmsub231ssXmmXmmXmmm32",
	VexVfnmsub231sdXmmXmmXmmm64: "VexVfnmsub231sdXmmXmmXmmm64",
	VexVaesimcXmmXmmm128: "VexVaesimcXmmXmmm128",
	VexVaesencXmmXmmXmmm128: "VexVaesencXmmXmmXmmm128",
	VexVaesencYmmYmmYmmm256: "VexVaesencYmmYmmYmmm256",
	VexVaesenclastXmmXmmXmmm128: "VexVaesenclastXmmXmmXmmm128",
	VexVaesenclastYmmYmmYmmm256: "VexVaesenclastYmmYmmYmmm256",
	VexVaesdecXmmXmmXmmm128: "VexVaesdecXmmXmmXmmm128",
	VexVaesdecYmmYmmYmmm256: "VexVaesdecYmmYmmYmmm256",
	VexVaesdeclastXmmXmmXmmm128: "VexVaesdeclastXmmXmmXmmm128",
	VexVaesdeclastYmmYmmYmmm256: "VexVaesdeclastYmmYmmYmmm256",
	VexVpermpdYmmYmmm256Imm8: "VexVpermpdYmmYmmm256Imm8",
	VexVpblenddXmmXmmXmmm128Imm8: "VexVpblenddXmmXmmXmmm128Imm8",
	VexVpblenddYmmYmmYmmm256Imm8: "VexVpblenddYmmYmmYmmm256Imm8",
	VexVpermilpsXmmXmmm128Imm8: "VexVpermilpsXmmXmmm128Imm8",
	VexVpermilpsYmmYmmm256Imm8: "VexVpermilpsYmmYmmm256Imm8",
	VexVpermilpdXmmXmmm128Imm8: "VexVpermilpdXmmXmmm128Imm8",
	VexVpermilpdYmmYmmm256Imm8: "VexVpermilpdYmmYmmm256Imm8",
	VexVperm2f128YmmYmmYmmm256Imm8: "VexVperm2f128YmmYmmYmmm256Imm8",
	VexVroundpsXmmXmmm128Imm8: "VexVroundpsXmmXmmm128Imm8",
	VexVroundpsYmmYmmm256Imm8: "VexVroundpsYmmYmmm256Imm8",
	VexVroundpdXmmXmmm128Imm8: "VexVroundpdXmmXmmm128Imm8",
	VexVroundpdYmmYmmm256Imm8: "VexVroundpdYmmYmmm256Imm8",
	VexVroundssXmmXmmXmmm32Imm8: "VexVroundssXmmXmmXmmm32Imm8",
	VexVroundsdXmmXmmXmmm64Imm8: "VexVroundsdXmmXmmXmmm64Imm8",
	VexVblendpdXmmXmmXmmm128Imm8: "VexVblendpdXmmXmmXmmm128Imm8",
	VexVblendpdYmmYmmYmmm256Imm8: "VexVblendpdYmmYmmYmmm256Imm8",
	VexVpblendwXmmXmmXmmm128Imm8: "VexVpblendwXmmXmmXmmm128Imm8",
	VexVpblendwYmmYmmYmmm256Imm8: "VexVpblendwYmmYmmYmmm256Imm8",
	VexVpalignrXmmXmmXmmm128Imm8: "VexVpalignrXmmXmmXmmm128Imm8",
	VexVpalignrYmmYmmYmmm256Imm8: "VexVpalignrYmmYmmYmmm256Imm8",
	VexVpextrbR32m8XmmImm8: "VexVpextrbR32m8XmmImm8",
	VexVpextrbR64m8XmmImm8: "VexVpextrbR64m8XmmImm8",
	VexVpextrwR32m16XmmImm8: "VexVpextrwR32m16XmmImm8",
	VexVpextrwR64m16XmmImm8: "VexVpextrwR64m16XmmImm8",
	VexVpextrdRm32XmmImm8: "VexVpextrdRm32XmmImm8",
	VexVpextrqRm64XmmImm8: "VexVpextrqRm64XmmImm8",
	VexVextractpsRm32XmmImm8: "VexVextractpsRm32XmmImm8",
	VexVcvtps2phXmmm64XmmImm8: "VexVcvtps2phXmmm64XmmImm8",
	VexVcvtps2phXmmm128YmmImm8: "VexVcvtps2phXmmm128YmmImm8",
	VexVpinsrbXmmXmmR32m8Imm8: "VexVpinsrbXmmXmmR32m8Imm8",
	VexVpinsrbXmmXmmR64m8Imm8: "VexVpinsrbXmmXmmR64m8Imm8",
	VexVinsertpsXmmXmmXmmm32Imm8: "VexVinsertpsXmmXmmXmmm32Imm8",
	VexVpinsrdXmmXmmRm32Imm8: "VexVpinsrdXmmXmmRm32Imm8",
	VexVpinsrqXmmXmmRm64Imm8: "VexVpinsrqXmmXmmRm64Imm8",
	VexVinserti128YmmYmmXmmm128Imm8: "VexVinserti128YmmYmmXmmm128Imm8",
	VexVextracti128Xmmm128YmmImm8: "VexVextracti128Xmmm128YmmImm8",
	VexVdppsXmmXmmXmmm128Imm8: "VexVdppsXmmXmmXmmm128Imm8",
	VexVdppsYmmYmmYmmm256Imm8: "VexVdppsYmmYmmYmmm256Imm8",
	VexVdppdXmmXmmXmmm128Imm8: "VexVdppdXmmXmmXmmm128Imm8",
	VexVmpsadbwXmmXmmXmmm128Imm8: "VexVmpsadbwXmmXmmXmmm128Imm8",
	VexVmpsadbwYmmYmmYmmm256Imm8: "VexVmpsadbwYmmYmmYmmm256Imm8",
	VexVpclmulqdqXmmXmmXmmm128Imm8: "VexVpclmulqdqXmmXmmXmmm128Imm8",
	VexVpclmulqdqYmmYmmYmmm256Imm8: "VexVpclmulqdqYmmYmmYmmm256Imm8",
	VexVperm2i128YmmYmmYmmm256Imm8: "VexVperm2i128YmmYmmYmmm256Imm8",
	VexVpblendvbXmmXmmXmmm128Xmm: "VexVpblendvbXmmXmmXmmm128Xmm",
	VexVpblendvbYmmYmmYmmm256Ymm: "VexVpblendvbYmmYmmYmmm256Ymm",
	VexVpcmpestrmXmmXmmm128Imm8: "VexVpcmpestrmXmmXmmm128Imm8",
	VexVpcmpestriXmmXmmm128Imm8: "VexVpcmpestriXmmXmmm128Imm8",
	VexVpcmpistrmXmmXmmm128Imm8: "VexVpcmpistrmXmmXmmm128Imm8",
	VexVpcmpistriXmmXmmm128Imm8: "VexVpcmpistriXmmXmmm128Imm8",
	VexVaeskeygenassistXmmXmmm128Imm8: "VexVaeskeygenassistXmmXmmm128Imm8",
	EvexVmovupsXmmK1zXmmm128: "EvexVmovupsXmmK1zXmmm128",
	EvexVmovupsYmmK1zYmmm256: "EvexVmovupsYmmK1zYmmm256",
	EvexVmovupsZmmK1zZmmm512: "EvexVmovupsZmmK1zZmmm512",
	EvexVmovupdXmmK1zXmmm128: "EvexVmovupdXmmK1zXmmm128",
	EvexVmovupdYmmK1zYmmm256: "EvexVmovupdYmmK1zYmmm256",
	EvexVmovupdZmmK1zZmmm512: "EvexVmovupdZmmK1zZmmm512",
	EvexVmovupsXmmm128K1Xmm: "EvexVmovupsXmmm128K1Xmm",
	EvexVmovupsYmmm256K1Ymm: "EvexVmovupsYmmm256K1Ymm",
	EvexVmovupsZmmm512K1Zmm: "EvexVmovupsZmmm512K1Zmm",
	EvexVmovupdXmmm128K1Xmm: "EvexVmovupdXmmm128K1Xmm",
	EvexVmovupdYmmm256K1Ymm: "EvexVmovupdYmmm256K1Ymm",
	EvexVmovupdZmmm512K1Zmm: "EvexVmovupdZmmm512K1Zmm",
	EvexVmovapsXmmK1zXmmm128: "EvexVmovapsXmmK1zXmmm128",
	EvexVmovapsYmmK1zYmmm256: "EvexVmovapsYmmK1zYmmm256",
	EvexVmovapsZmmK1zZmmm512: "EvexVmovapsZmmK1zZmmm512",
	EvexVmovapdXmmK1zXmmm128: "EvexVmovapdXmmK1zXmmm128",
	EvexVmovapdYmmK1zYmmm256: "EvexVmovapdYmmK1zYmmm256",
	EvexVmovapdZmmK1zZmmm512: "EvexVmovapdZmmK1zZmmm512",
	EvexVmovapsXmmm128K1Xmm: "EvexVmovapsXmmm128K1Xmm",
	EvexVmovapsYmmm256K1Ymm: "EvexVmovapsYmmm256K1Ymm",
	EvexVmovapsZmmm512K1Zmm: "EvexVmovapsZmmm512K1Zmm",
	EvexVmovapdXmmm128K1Xmm: "EvexVmovapdXmmm128K1Xmm",
	EvexVmovapdYmmm256K1Ymm: "EvexVmovapdYmmm256K1Ymm",
	EvexVmovapdZmmm512K1Zmm: "EvexVmovapdZmmm512K1Zmm",
	EvexVsqrtpsXmmK1zXmmm128B32: "EvexVsqrtpsXmmK1zXmmm128B32",
	EvexVsqrtpsYmmK1zYmmm256B32: "EvexVsqrtpsYmmK1zYmmm256B32",
	EvexVsqrtpsZmmK1zZmmm512B32Er: "EvexVsqrtpsZmmK1zZmmm512B32Er",
	EvexVsqrtpdXmmK1zXmmm128B64: "EvexVsqrtpdXmmK1zXmmm128B64",
	EvexVsqrtpdYmmK1zYmmm256B64: "EvexVsqrtpdYmmK1zYmmm256B64",
	EvexVsqrtpdZmmK1zZmmm512B64Er: "EvexVsqrtpdZmmK1zZmmm512B64Er",
	EvexVsqrtssXmmK1zXmmXmmm32Er: "EvexVsqrtssXmmK1zXmmXmmm32Er",
	EvexVsqrtsdXmmK1zXmmXmmm64Er: "EvexVsqrtsdXmmK1zXmmXmmm64Er",
	EvexVaddpsXmmK1zXmmXmmm128B32: "EvexVaddpsXmmK1zXmmXmmm128B32",
	EvexVaddpsYmmK1zYmmYmmm256B32: "EvexVaddpsYmmK1zYmmYmmm256B32",
	EvexVaddpsZmmK1zZmmZmmm512B32Er: "EvexVaddpsZmmK1zZmmZmmm512B32Er",
	EvexVaddpdXmmK1zXmmXmmm128B64: "EvexVaddpdXmmK1zXmmXmmm128B64",
	EvexVaddpdYmmK1zYmmYmmm256B64: "EvexVaddpdYmmK1zYmmYmmm256B64",
	EvexVaddpdZmmK1zZmmZmmm512B64Er: "EvexVaddpdZmmK1zZmmZmmm512B64Er",
	EvexVaddssXmmK1zXmmXmmm32Er: "EvexVaddssXmmK1zXmmXmmm32Er",
	EvexVaddsdXmmK1zXmmXmmm64Er: "EvexVaddsdXmmK1zXmmXmmm64Er",
	EvexVmulpsXmmK1zXmmXmmm128B32: "EvexVmulpsXmmK1zXmmXmmm128B32",
	EvexVmulpsYmmK1zYmmYmmm256B32: "EvexVmulpsYmmK1zYmmYmmm256B32",
	EvexVmulpsZmmK1zZmmZmmm512B32Er: "EvexVmulpsZmmK1zZmmZmmm512B32Er",
	EvexVmulpdXmmK1zXmmXmmm128B64: "EvexVmulpdXmmK1zXmmXmmm128B64",
	EvexVmulpdYmmK1zYmmYmmm256B64: "EvexVmulpdYmmK1zYmmYmmm256B64",
	EvexVmulpdZmmK1zZmmZmmm512B64Er: "EvexVmulpdZmmK1zZmmZmmm512B64Er",
	EvexVmulssXmmK1zXmmXmmm32Er: "EvexVmulssXmmK1zXmmXmmm32Er",
	EvexVmulsdXmmK1zXmmXmmm64Er: "EvexVmulsdXmmK1zXmmXmmm64Er",
	EvexVsubpsXmmK1zXmmXmmm128B32: "EvexVsubpsXmmK1zXmmXmmm128B32",
	EvexVsubpsYmmK1zYmmYmmm256B32: "EvexVsubpsYmmK1zYmmYmmm256B32",
	EvexVsubpsZmmK1zZmmZmmm512B32Er: "EvexVsubpsZmmK1zZmmZmmm512B32Er",
	EvexVsubpdXmmK1zXmmXmmm128B64: "EvexVsubpdXmmK1zXmmXmmm128B64",
	EvexVsubpdYmmK1zYmmYmmm256B64: "EvexVsubpdYmmK1zYmmYmmm256B64",
	EvexVsubpdZmmK1zZmmZmmm512B64Er: "EvexVsubpdZmmK1zZmmZmmm512B64Er",
	EvexVsubssXmmK1zXmmXmmm32Er: "EvexVsubssXmmK1zXmmXmmm32Er",
	EvexVsubsdXmmK1zXmmXmmm64Er: "EvexVsubsdXmmK1zXmmXmmm64Er",
	EvexVdivpsXmmK1zXmmXmmm128B32: "EvexVdivpsXmmK1zXmmXmmm128B32",
	EvexVdivpsYmmK1zYmmYmmm256B32: "EvexVdivpsYmmK1zYmmYmmm256B32",
	EvexVdivpsZmmK1zZmmZmmm512B32Er: "EvexVdivpsZmmK1zZmmZmmm512B32Er",
	EvexVdivpdXmmK1zXmmXmmm128B64: "EvexVdivpdXmmK1zXmmXmmm128B64",
	EvexVdivpdYmmK1zYmmYmmm256B64: "EvexVdivpdYmmK1zYmmYmmm256B64",
	EvexVdivpdZmmK1zZmmZmmm512B64Er: "EvexVdivpdZmmK1zZmmZmmm512B64Er",
	EvexVdivssXmmK1zXmmXmmm32Er: "EvexVdivssXmmK1zXmmXmmm32Er",
	EvexVdivsdXmmK1zXmmXmmm64Er: "EvexVdivsdXmmK1zXmmXmmm64Er",
	EvexVminpsXmmK1zXmmXmmm128B32: "EvexVminpsXmmK1zXmmXmmm128B32",
	EvexVminpsYmmK1zYmmYmmm256B32: "EvexVminpsYmmK1zYmmYmmm256B32",
	EvexVminpsZmmK1zZmmZmmm512B32Sae: "EvexVminpsZmmK1zZmmZmmm512B32Sae",
	EvexVminpdXmmK1zXmmXmmm128B64: "EvexVminpdXmmK1zXmmXmmm128B64",
	EvexVminpdYmmK1zYmmYmmm256B64: "EvexVminpdYmmK1zYmmYmmm256B64",
	EvexVminpdZmmK1zZmmZmmm512B64Sae: "EvexVminpdZmmK1zZmmZmmm512B64Sae",
	EvexVminssXmmK1zXmmXmmm32Sae: "EvexVminssXmmK1zXmmXmmm32Sae",
	EvexVminsdXmmK1zXmmXmmm64Sae: "EvexVminsdXmmK1zXmmXmmm64Sae",
	EvexVmaxpsXmmK1zXmmXmmm128B32: "EvexVmaxpsXmmK1zXmmXmmm128B32",
	EvexVmaxpsYmmK1zYmmYmmm256B32: "EvexVmaxpsYmmK1zYmmYmmm256B32",
	EvexVmaxpsZmmK1zZmmZmmm512B32Sae: "EvexVmaxpsZmmK1zZmmZmmm512B32Sae",
	EvexVmaxpdXmmK1zXmmXmmm128B64: "EvexVmaxpdXmmK1zXmmXmmm128B64",
	EvexVmaxpdYmmK1zYmmYmmm256B64: "EvexVmaxpdYmmK1zYmmYmmm256B64",
	EvexVmaxpdZmmK1zZmmZmmm512B64Sae: "EvexVmaxpdZmmK1zZmmZmmm512B64Sae",
	EvexVmaxssXmmK1zXmmXmmm32Sae: "EvexVmaxssXmmK1zXmmXmmm32Sae",
	EvexVmaxsdXmmK1zXmmXmmm64Sae: "EvexVmaxsdXmmK1zXmmXmmm64Sae",
	EvexVandpsXmmK1zXmmXmmm128B32: "EvexVandpsXmmK1zXmmXmmm128B32",
	EvexVandpsYmmK1zYmmYmmm256B32: "EvexVandpsYmmK1zYmmYmmm256B32",
	EvexVandpsZmmK1zZmmZmmm512B32: "EvexVandpsZmmK1zZmmZmmm512B32",
	EvexVandpdXmmK1zXmmXmmm128B64: "EvexVandpdXmmK1zXmmXmmm128B64",
	EvexVandpdYmmK1zYmmYmmm256B64: "EvexVandpdYmmK1zYmmYmmm256B64",
	EvexVandpdZmmK1zZmmZmmm512B64: "EvexVandpdZmmK1zZmmZmmm512B64",
	EvexVxorpsXmmK1zXmmXmmm128B32: "EvexVxorpsXmmK1zXmmXmmm128B32",
	EvexVxorpsYmmK1zYmmYmmm256B32: "EvexVxorpsYmmK1zYmmYmmm256B32",
	EvexVxorpsZmmK1zZmmZmmm512B32: "EvexVxorpsZmmK1zZmmZmmm512B32",
	EvexVxorpdXmmK1zXmmXmmm128B64: "EvexVxorpdXmmK1zXmmXmmm128B64",
	EvexVxorpdYmmK1zYmmYmmm256B64: "EvexVxorpdYmmK1zYmmYmmm256B64",
	EvexVxorpdZmmK1zZmmZmmm512B64: "EvexVxorpdZmmK1zZmmZmmm512B64",
	EvexVucomissXmmXmmm32Sae: "EvexVucomissXmmXmmm32Sae",
	EvexVucomisdXmmXmmm64Sae: "EvexVucomisdXmmXmmm64Sae",
	EvexVcomissXmmXmmm32Sae: "EvexVcomissXmmXmmm32Sae",
	EvexVcomisdXmmXmmm64Sae: "EvexVcomisdXmmXmmm64Sae",
	EvexVmovdqa32XmmK1zXmmm128: "EvexVmovdqa32XmmK1zXmmm128",
	EvexVmovdqa32YmmK1zYmmm256: "EvexVmovdqa32YmmK1zYmmm256",
	EvexVmovdqa32ZmmK1zZmmm512: "EvexVmovdqa32ZmmK1zZmmm512",
	EvexVmovdqa64XmmK1zXmmm128: "EvexVmovdqa64XmmK1zXmmm128",
	EvexVmovdqa64YmmK1zYmmm256: "EvexVmovdqa64YmmK1zYmmm256",
	EvexVmovdqa64ZmmK1zZmmm512: "EvexVmovdqa64ZmmK1zZmmm512",
	EvexVmovdqa32Xmmm128K1Xmm: "EvexVmovdqa32Xmmm128K1Xmm",
	EvexVmovdqa32Ymmm256K1Ymm: "EvexVmovdqa32Ymmm256K1Ymm",
	EvexVmovdqa32Zmmm512K1Zmm: "EvexVmovdqa32Zmmm512K1Zmm",
	EvexVmovdqa64Xmmm128K1Xmm: "EvexVmovdqa64Xmmm128K1Xmm",
	EvexVmovdqa64Ymmm256K1Ymm: "EvexVmovdqa64Ymmm256K1Ymm",
	EvexVmovdqa64Zmmm512K1Zmm: "EvexVmovdqa64Zmmm512K1Zmm",
	EvexVmovdqu32XmmK1zXmmm128: "EvexVmovdqu32XmmK1zXmmm128",
	EvexVmovdqu32YmmK1zYmmm256: "EvexVmovdqu32YmmK1zYmmm256",
	EvexVmovdqu32ZmmK1zZmmm512: "EvexVmovdqu32ZmmK1zZmmm512",
	EvexVmovdqu64XmmK1zXmmm128: "EvexVmovdqu64XmmK1zXmmm128",
	EvexVmovdqu64YmmK1zYmmm256: "EvexVmovdqu64YmmK1zYmmm256",
	EvexVmovdqu64ZmmK1zZmmm512: "EvexVmovdqu64ZmmK1zZmmm512",
	EvexVmovdqu32Xmmm128K1Xmm: "EvexVmovdqu32Xmmm128K1Xmm",
	EvexVmovdqu32Ymmm256K1Ymm: "EvexVmovdqu32Ymmm256K1Ymm",
	EvexVmovdqu32Zmmm512K1Zmm: "EvexVmovdqu32Zmmm512K1Zmm",
	EvexVmovdqu64Xmmm128K1Xmm: "EvexVmovdqu64Xmmm128K1Xmm",
	EvexVmovdqu64Ymmm256K1Ymm: "EvexVmovdqu64Ymmm256K1Ymm",
	EvexVmovdqu64Zmmm512K1Zmm: "EvexVmovdqu64Zmmm512K1Zmm",
	EvexVmovdqu8XmmK1zXmmm128: "EvexVmovdqu8XmmK1zXmmm128",
	EvexVmovdqu8YmmK1zYmmm256: "EvexVmovdqu8YmmK1zYmmm256",
	EvexVmovdqu8ZmmK1zZmmm512: "EvexVmovdqu8ZmmK1zZmmm512",
	EvexVmovdqu16XmmK1zXmmm128: "EvexVmovdqu16XmmK1zXmmm128",
	EvexVmovdqu16YmmK1zYmmm256: "EvexVmovdqu16YmmK1zYmmm256",
	EvexVmovdqu16ZmmK1zZmmm512: "EvexVmovdqu16ZmmK1zZmmm512",
	EvexVmovdqu8Xmmm128K1Xmm: "EvexVmovdqu8Xmmm128K1Xmm",
	EvexVmovdqu8Ymmm256K1Ymm: "EvexVmovdqu8Ymmm256K1Ymm",
	EvexVmovdqu8Zmmm512K1Zmm: "EvexVmovdqu8Zmmm512K1Zmm",
	EvexVmovdqu16Xmmm128K1Xmm: "EvexVmovdqu16Xmmm128K1Xmm",
	EvexVmovdqu16Ymmm256K1Ymm: "EvexVmovdqu16Ymmm256K1Ymm",
	EvexVmovdqu16Zmmm512K1Zmm: "EvexVmovdqu16Zmmm512K1Zmm",
	EvexVpanddXmmK1zXmmXmmm128B32: "EvexVpanddXmmK1zXmmXmmm128B32",
	EvexVpanddYmmK1zYmmYmmm256B32: "EvexVpanddYmmK1zYmmYmmm256B32",
	EvexVpanddZmmK1zZmmZmmm512B32: "EvexVpanddZmmK1zZmmZmmm512B32",
	EvexVpandqXmmK1zXmmXmmm128B64: "EvexVpandqXmmK1zXmmXmmm128B64",
	EvexVpandqYmmK1zYmmYmmm256B64: "EvexVpandqYmmK1zYmmYmmm256B64",
	EvexVpandqZmmK1zZmmZmmm512B64: "EvexVpandqZmmK1zZmmZmmm512B64",
	EvexVpordXmmK1zXmmXmmm128B32: "EvexVpordXmmK1zXmmXmmm128B32",
	EvexVpordYmmK1zYmmYmmm256B32: "EvexVpordYmmK1zYmmYmmm256B32",
	EvexVpordZmmK1zZmmZmmm512B32: "EvexVpordZmmK1zZmmZmmm512B32",
	EvexVporqXmmK1zXmmXmmm128B64: "EvexVporqXmmK1zXmmXmmm128B64",
	EvexVporqYmmK1zYmmYmmm256B64: "EvexVporqYmmK1zYmmYmmm256B64",
	EvexVporqZmmK1zZmmZmmm512B64: "EvexVporqZmmK1zZmmZmmm512B64",
	EvexVpxordXmmK1zXmmXmmm128B32: "EvexVpxordXmmK1zXmmXmmm128B32",
	EvexVpxordYmmK1zYmmYmmm256B32: "EvexVpxordYmmK1zYmmYmmm256B32",
	EvexVpxordZmmK1zZmmZmmm512B32: "EvexVpxordZmmK1zZmmZmmm512B32",
	EvexVpxorqXmmK1zXmmXmmm128B64: "EvexVpxorqXmmK1zXmmXmmm128B64",
	EvexVpxorqYmmK1zYmmYmmm256B64: "EvexVpxorqYmmK1zYmmYmmm256B64",
	EvexVpxorqZmmK1zZmmZmmm512B64: "EvexVpxorqZmmK1zZmmZmmm512B64",
	EvexVpadddXmmK1zXmmXmmm128B32: "EvexVpadddXmmK1zXmmXmmm128B32",
	EvexVpadddYmmK1zYmmYmmm256B32: "EvexVpadddYmmK1zYmmYmmm256B32",
	EvexVpadddZmmK1zZmmZmmm512B32: "EvexVpadddZmmK1zZmmZmmm512B32",
	EvexVpaddqXmmK1zXmmXmmm128B64: "EvexVpaddqXmmK1zXmmXmmm128B64",
	EvexVpaddqYmmK1zYmmYmmm256B64: "EvexVpaddqYmmK1zYmmYmmm256B64",
	EvexVpaddqZmmK1zZmmZmmm512B64: "EvexVpaddqZmmK1zZmmZmmm512B64",
	EvexVpsubdXmmK1zXmmXmmm128B32: "EvexVpsubdXmmK1zXmmXmmm128B32",
	EvexVpsubdYmmK1zYmmYmmm256B32: "EvexVpsubdYmmK1zYmmYmmm256B32",
	EvexVpsubdZmmK1zZmmZmmm512B32: "EvexVpsubdZmmK1zZmmZmmm512B32",
	EvexVprordXmmK1zXmmm128B32Imm8: "EvexVprordXmmK1zXmmm128B32Imm8",
	EvexVprordYmmK1zYmmm256B32Imm8: "EvexVprordYmmK1zYmmm256B32Imm8",
	EvexVprordZmmK1zZmmm512B32Imm8: "EvexVprordZmmK1zZmmm512B32Imm8",
	EvexVprorqXmmK1zXmmm128B64Imm8: "EvexVprorqXmmK1zXmmm128B64Imm8",
	EvexVprorqYmmK1zYmmm256B64Imm8: "EvexVprorqYmmK1zYmmm256B64Imm8",
	EvexVprorqZmmK1zZmmm512B64Imm8: "EvexVprorqZmmK1zZmmm512B64Imm8",
	EvexVproldXmmK1zXmmm128B32Imm8: "EvexVproldXmmK1zXmmm128B32Imm8",
	EvexVproldYmmK1zYmmm256B32Imm8: "EvexVproldYmmK1zYmmm256B32Imm8",
	EvexVproldZmmK1zZmmm512B32Imm8: "EvexVproldZmmK1zZmmm512B32Imm8",
	EvexVprolqXmmK1zXmmm128B64Imm8: "EvexVprolqXmmK1zXmmm128B64Imm8",
	EvexVprolqYmmK1zYmmm256B64Imm8: "EvexVprolqYmmK1zYmmm256B64Imm8",
	EvexVprolqZmmK1zZmmm512B64Imm8: "EvexVprolqZmmK1zZmmm512B64Imm8",
	EvexVpsradXmmK1zXmmm128B32Imm8: "EvexVpsradXmmK1zXmmm128B32Imm8",
	EvexVpsradYmmK1zYmmm256B32Imm8: "EvexVpsradYmmK1zYmmm256B32Imm8",
	EvexVpsradZmmK1zZmmm512B32Imm8: "EvexVpsradZmmK1zZmmm512B32Imm8",
	EvexVpsraqXmmK1zXmmm128B64Imm8: "EvexVpsraqXmmK1zXmmm128B64Imm8",
	EvexVpsraqYmmK1zYmmm256B64Imm8: "EvexVpsraqYmmK1zYmmm256B64Imm8",
	EvexVpsraqZmmK1zZmmm512B64Imm8: "EvexVpsraqZmmK1zZmmm512B64Imm8",
	EvexVbroadcastssYmmK1zXmmm32: "EvexVbroadcastssYmmK1zXmmm32",
	EvexVbroadcastssZmmK1zXmmm32: "EvexVbroadcastssZmmK1zXmmm32",
	EvexVpbroadcastdXmmK1zXmmm32: "EvexVpbroadcastdXmmK1zXmmm32",
	EvexVpbroadcastdYmmK1zXmmm32: "EvexVpbroadcastdYmmK1zXmmm32",
	EvexVpbroadcastdZmmK1zXmmm32: "EvexVpbroadcastdZmmK1zXmmm32",
	EvexVpblendmdXmmK1zXmmXmmm128B32: "EvexVpblendmdXmmK1zXmmXmmm128B32",
	EvexVpblendmdYmmK1zYmmYmmm256B32: "EvexVpblendmdYmmK1zYmmYmmm256B32",
	EvexVpblendmdZmmK1zZmmZmmm512B32: "EvexVpblendmdZmmK1zZmmZmmm512B32",
	EvexVpblendmqXmmK1zXmmXmmm128B64: "EvexVpblendmqXmmK1zXmmXmmm128B64",
	EvexVpblendmqYmmK1zYmmYmmm256B64: "EvexVpblendmqYmmK1zYmmYmmm256B64",
	EvexVpblendmqZmmK1zZmmZmmm512B64: "EvexVpblendmqZmmK1zZmmZmmm512B64",
	EvexVfmadd132psXmmK1zXmmXmmm128B32: "EvexVfmadd132psXmmK1zXmmXmmm128B32",
	EvexVfmadd132psYmmK1zYmmYmmm256B32: "EvexVfmadd132psYmmK1zYmmYmmm256B32",
	EvexVfmadd132psZmmK1zZmmZmmm512B32Er: "EvexVfmadd132psZmmK1zZmmZmmm512B32Er",
	EvexVfmadd132pdXmmK1zXmmXmmm128B64: "EvexVfmadd132pdXmmK1zXmmXmmm128B64",
	EvexVfmadd132pdYmmK1zYmmYmmm256B64: "EvexVfmadd132pdYmmK1zYmmYmmm256B64",
	EvexVfmadd132pdZmmK1zZmmZmmm512B64Er: "EvexVfmadd132pdZmmK1zZmmZmmm512B64Er",
	EvexVfmadd132ssXmmK1zXmmXmmm32Er: "EvexVfmadd132ssXmmK1zXmmXmmm32Er",
	EvexVfmadd132sdXmmK1zXmmXmmm64Er: "EvexVfmadd132sdXmmK1zXmmXmmm64Er",
	EvexVfmadd213psXmmK1zXmmXmmm128B32: "EvexVfmadd213psXmmK1zXmmXmmm128B32",
	EvexVfmadd213psYmmK1zYmmYmmm256B32: "EvexVfmadd213psYmmK1zYmmYmmm256B32",
	EvexVfmadd213psZmmK1zZmmZmmm512B32Er: "EvexVfmadd213psZmmK1zZmmZmmm512B32Er",
	EvexVfmadd213pdXmmK1zXmmXmmm128B64: "EvexVfmadd213pdXmmK1zXmmXmmm128B64",
	EvexVfmadd213pdYmmK1zYmmYmmm256B64: "EvexVfmadd213pdYmmK1zYmmYmmm256B64",
	EvexVfmadd213pdZmmK1zZmmZmmm512B64Er: "EvexVfmadd213pdZmmK1zZmmZmmm512B64Er",
	EvexVfmadd213ssXmmK1zXmmXmmm32Er: "EvexVfmadd213ssXmmK1zXmmXmmm32Er",
	EvexVfmadd213sdXmmK1zXmmXmmm64Er: "EvexVfmadd213sdXmmK1zXmmXmmm64Er",
	EvexVfmadd231psXmmK1zXmmXmmm128B32: "EvexVfmadd231psXmmK1zXmmXmmm128B32",
	EvexVfmadd231psYmmK1zYmmYmmm256B32: "EvexVfmadd231psYmmK1zYmmYmmm256B32",
	EvexVfmadd231psZmmK1zZmmZmmm512B32Er: "EvexVfmadd231psZmmK1zZmmZmmm512B32Er",
	EvexVfmadd231pdXmmK1zXmmXmmm128B64: "EvexVfmadd231pdXmmK1zXmmXmmm128B64",
	EvexVfmadd231pdYmmK1zYmmYmmm256B64: "EvexVfmadd231pdYmmK1zYmmYmmm256B64",
	EvexVfmadd231pdZmmK1zZmmZmmm512B64Er: "EvexVfmadd231pdZmmK1zZmmZmmm512B64Er",
	EvexVfmadd231ssXmmK1zXmmXmmm32Er: "EvexVfmadd231ssXmmK1zXmmXmmm32Er",
	EvexVfmadd231sdXmmK1zXmmXmmm64Er: "EvexVfmadd231sdXmmK1zXmmXmmm64Er",
	EvexValigndXmmK1zXmmXmmm128B32Imm8: "EvexValigndXmmK1zXmmXmmm128B32Imm8",
	EvexValigndYmmK1zYmmYmmm256B32Imm8: "EvexValigndYmmK1zYmmYmmm256B32Imm8",
	EvexValigndZmmK1zZmmZmmm512B32Imm8: "EvexValigndZmmK1zZmmZmmm512B32Imm8",
	EvexValignqXmmK1zXmmXmmm128B64Imm8: "EvexValignqXmmK1zXmmXmmm128B64Imm8",
	EvexValignqYmmK1zYmmYmmm256B64Imm8: "EvexValignqYmmK1zYmmYmmm256B64Imm8",
	EvexValignqZmmK1zZmmZmmm512B64Imm8: "EvexValignqZmmK1zZmmZmmm512B64Imm8",
	EvexVrndscalepsXmmK1zXmmm128B32Imm8: "EvexVrndscalepsXmmK1zXmmm128B32Imm8",
	EvexVrndscalepsYmmK1zYmmm256B32Imm8: "EvexVrndscalepsYmmK1zYmmm256B32Imm8",
	EvexVrndscalepsZmmK1zZmmm512B32Imm8Sae: "EvexVrndscalepsZmmK1zZmmm512B32Imm8Sae",
	EvexVrndscalepdXmmK1zXmmm128B64Imm8: "EvexVrndscalepdXmmK1zXmmm128B64Imm8",
	EvexVrndscalepdYmmK1zYmmm256B64Imm8: "EvexVrndscalepdYmmK1zYmmm256B64Imm8",
	EvexVrndscalepdZmmK1zZmmm512B64Imm8Sae: "EvexVrndscalepdZmmK1zZmmm512B64Imm8Sae",
	EvexVrndscalessXmmK1zXmmXmmm32Imm8Sae: "EvexVrndscalessXmmK1zXmmXmmm32Imm8Sae",
	EvexVrndscalesdXmmK1zXmmXmmm64Imm8Sae: "EvexVrndscalesdXmmK1zXmmXmmm64Imm8Sae",
	EvexVpcmpudKrK1XmmXmmm128B32Imm8: "EvexVpcmpudKrK1XmmXmmm128B32Imm8",
	EvexVpcmpudKrK1YmmYmmm256B32Imm8: "EvexVpcmpudKrK1YmmYmmm256B32Imm8",
	EvexVpcmpudKrK1ZmmZmmm512B32Imm8: "EvexVpcmpudKrK1ZmmZmmm512B32Imm8",
	EvexVpcmpuqKrK1XmmXmmm128B64Imm8: "EvexVpcmpuqKrK1XmmXmmm128B64Imm8",
	EvexVpcmpuqKrK1YmmYmmm256B64Imm8: "EvexVpcmpuqKrK1YmmYmmm256B64Imm8",
	EvexVpcmpuqKrK1ZmmZmmm512B64Imm8: "EvexVpcmpuqKrK1ZmmZmmm512B64Imm8",
	EvexVpcmpdKrK1XmmXmmm128B32Imm8: "EvexVpcmpdKrK1XmmXmmm128B32Imm8",
	EvexVpcmpdKrK1YmmYmmm256B32Imm8: "EvexVpcmpdKrK1YmmYmmm256B32Imm8",
	EvexVpcmpdKrK1ZmmZmmm512B32Imm8: "EvexVpcmpdKrK1ZmmZmmm512B32Imm8",
	EvexVpcmpqKrK1XmmXmmm128B64Imm8: "EvexVpcmpqKrK1XmmXmmm128B64Imm8",
	EvexVpcmpqKrK1YmmYmmm256B64Imm8: "EvexVpcmpqKrK1YmmYmmm256B64Imm8",
	EvexVpcmpqKrK1ZmmZmmm512B64Imm8: "EvexVpcmpqKrK1ZmmZmmm512B64Imm8",
	EvexVmovssXmmK1zM32: "EvexVmovssXmmK1zM32",
	EvexVmovssXmmK1zXmmXmm: "EvexVmovssXmmK1zXmmXmm",
	EvexVmovsdXmmK1zM64: "EvexVmovsdXmmK1zM64",
	EvexVmovsdXmmK1zXmmXmm: "EvexVmovsdXmmK1zXmmXmm",
	EvexVmovssM32K1Xmm: "EvexVmovssM32K1Xmm",
	EvexVmovsdM64K1Xmm: "EvexVmovsdM64K1Xmm",
	EvexVunpcklpsXmmK1zXmmXmmm128B32: "EvexVunpcklpsXmmK1zXmmXmmm128B32",
	EvexVunpcklpsYmmK1zYmmYmmm256B32: "EvexVunpcklpsYmmK1zYmmYmmm256B32",
	EvexVunpcklpsZmmK1zZmmZmmm512B32: "EvexVunpcklpsZmmK1zZmmZmmm512B32",
	EvexVunpcklpdXmmK1zXmmXmmm128B64: "EvexVunpcklpdXmmK1zXmmXmmm128B64",
	EvexVunpcklpdYmmK1zYmmYmmm256B64: "EvexVunpcklpdYmmK1zYmmYmmm256B64",
	EvexVunpcklpdZmmK1zZmmZmmm512B64: "EvexVunpcklpdZmmK1zZmmZmmm512B64",
	EvexVunpckhpsXmmK1zXmmXmmm128B32: "EvexVunpckhpsXmmK1zXmmXmmm128B32",
	EvexVunpckhpsYmmK1zYmmYmmm256B32: "EvexVunpckhpsYmmK1zYmmYmmm256B32",
	EvexVunpckhpsZmmK1zZmmZmmm512B32: "EvexVunpckhpsZmmK1zZmmZmmm512B32",
	EvexVunpckhpdXmmK1zXmmXmmm128B64: "EvexVunpckhpdXmmK1zXmmXmmm128B64",
	EvexVunpckhpdYmmK1zYmmYmmm256B64: "EvexVunpckhpdYmmK1zYmmYmmm256B64",
	EvexVunpckhpdZmmK1zZmmZmmm512B64: "EvexVunpckhpdZmmK1zZmmZmmm512B64",
	EvexVcvtsi2ssXmmXmmRm32Er: "EvexVcvtsi2ssXmmXmmRm32Er",
	EvexVcvtsi2ssXmmXmmRm64Er: "EvexVcvtsi2ssXmmXmmRm64Er",
	EvexVcvtsi2sdXmmXmmRm32Er: "EvexVcvtsi2sdXmmXmmRm32Er",
	EvexVcvtsi2sdXmmXmmRm64Er: "EvexVcvtsi2sdXmmXmmRm64Er",
	EvexVmovntpsM128Xmm: "EvexVmovntpsM128Xmm",
	EvexVmovntpsM256Ymm: "EvexVmovntpsM256Ymm",
	EvexVmovntpsM512Zmm: "EvexVmovntpsM512Zmm",
	EvexVmovntpdM128Xmm: "EvexVmovntpdM128Xmm",
	EvexVmovntpdM256Ymm: "EvexVmovntpdM256Ymm",
	EvexVmovntpdM512Zmm: "EvexVmovntpdM512Zmm",
	EvexVcvttss2siR32Xmmm32Sae: "EvexVcvttss2siR32Xmmm32Sae",
	EvexVcvttss2siR64Xmmm32Sae: "EvexVcvttss2siR64Xmmm32Sae",
	EvexVcvttsd2siR32Xmmm64Sae: "EvexVcvttsd2siR32Xmmm64Sae",
	EvexVcvttsd2siR64Xmmm64Sae: "EvexVcvttsd2siR64Xmmm64Sae",
	EvexVcvtss2siR32Xmmm32Er: "EvexVcvtss2siR32Xmmm32Er",
	EvexVcvtss2siR64Xmmm32Er: "EvexVcvtss2siR64Xmmm32Er",
	EvexVcvtsd2siR32Xmmm64Er: "EvexVcvtsd2siR32Xmmm64Er",
	EvexVcvtsd2siR64Xmmm64Er: "EvexVcvtsd2siR64Xmmm64Er",
	EvexVandnpsXmmK1zXmmXmmm128B32: "EvexVandnpsXmmK1zXmmXmmm128B32",
	EvexVandnpsYmmK1zYmmYmmm256B32: "EvexVandnpsYmmK1zYmmYmmm256B32",
	EvexVandnpsZmmK1zZmmZmmm512B32: "EvexVandnpsZmmK1zZmmZmmm512B32",
	EvexVandnpdXmmK1zXmmXmmm128B64: "EvexVandnpdXmmK1zXmmXmmm128B64",
	EvexVandnpdYmmK1zYmmYmmm256B64: "EvexVandnpdYmmK1zYmmYmmm256B64",
	EvexVandnpdZmmK1zZmmZmmm512B64: "EvexVandnpdZmmK1zZmmZmmm512B64",
	EvexVorpsXmmK1zXmmXmmm128B32: "EvexVorpsXmmK1zXmmXmmm128B32",
	EvexVorpsYmmK1zYmmYmmm256B32: "EvexVorpsYmmK1zYmmYmmm256B32",
	EvexVorpsZmmK1zZmmZmmm512B32: "EvexVorpsZmmK1zZmmZmmm512B32",
	EvexVorpdXmmK1zXmmXmmm128B64: "EvexVorpdXmmK1zXmmXmmm128B64",
	EvexVorpdYmmK1zYmmYmmm256B64: "EvexVorpdYmmK1zYmmYmmm256B64",
	EvexVorpdZmmK1zZmmZmmm512B64: "EvexVorpdZmmK1zZmmZmmm512B64",
	EvexVcvtps2pdXmmK1zXmmm64: "EvexVcvtps2pdXmmK1zXmmm64",
	EvexVcvtps2pdYmmK1zXmmm128: "EvexVcvtps2pdYmmK1zXmmm128",
	EvexVcvtps2pdZmmK1zYmmm256Sae: "EvexVcvtps2pdZmmK1zYmmm256Sae",
	EvexVcvtpd2psXmmK1zXmmm128B64: "EvexVcvtpd2psXmmK1zXmmm128B64",
	EvexVcvtpd2psXmmK1zYmmm256B64: "EvexVcvtpd2psXmmK1zYmmm256B64",
	EvexVcvtpd2psYmmK1zZmmm512B64Er: "EvexVcvtpd2psYmmK1zZmmm512B64Er",
	EvexVcvtss2sdXmmK1zXmmXmmm32Sae: "EvexVcvtss2sdXmmK1zXmmXmmm32Sae",
	EvexVcvtsd2ssXmmK1zXmmXmmm64Er: "EvexVcvtsd2ssXmmK1zXmmXmmm64Er",
	EvexVcvtdq2psXmmK1zXmmm128B32: "EvexVcvtdq2psXmmK1zXmmm128B32",
	EvexVcvtdq2psYmmK1zYmmm256B32: "EvexVcvtdq2psYmmK1zYmmm256B32",
	EvexVcvtdq2psZmmK1zZmmm512B32Er: "EvexVcvtdq2psZmmK1zZmmm512B32Er",
	EvexVcvtps2dqXmmK1zXmmm128B32: "EvexVcvtps2dqXmmK1zXmmm128B32",
	EvexVcvtps2dqYmmK1zYmmm256B32: "EvexVcvtps2dqYmmK1zYmmm256B32",
	EvexVcvtps2dqZmmK1zZmmm512B32Er: "EvexVcvtps2dqZmmK1zZmmm512B32Er",
	EvexVcvttps2dqXmmK1zXmmm128B32: "EvexVcvttps2dqXmmK1zXmmm128B32",
	EvexVcvttps2dqYmmK1zYmmm256B32: "EvexVcvttps2dqYmmK1zYmmm256B32",
	EvexVcvttps2dqZmmK1zZmmm512B32Sae: "EvexVcvttps2dqZmmK1zZmmm512B32Sae",
	EvexVpunpcklbwXmmK1zXmmXmmm128: "EvexVpunpcklbwXmmK1zXmmXmmm128",
	EvexVpunpcklbwYmmK1zYmmYmmm256: "EvexVpunpcklbwYmmK1zYmmYmmm256",
	EvexVpunpcklbwZmmK1zZmmZmmm512: "EvexVpunpcklbwZmmK1zZmmZmmm512",
	EvexVpunpcklwdXmmK1zXmmXmmm128: "EvexVpunpcklwdXmmK1zXmmXmmm128",
	EvexVpunpcklwdYmmK1zYmmYmmm256: "EvexVpunpcklwdYmmK1zYmmYmmm256",
	EvexVpunpcklwdZmmK1zZmmZmmm512: "EvexVpunpcklwdZmmK1zZmmZmmm512",
	EvexVpacksswbXmmK1zXmmXmmm128: "EvexVpacksswbXmmK1zXmmXmmm128",
	EvexVpacksswbYmmK1zYmmYmmm256: "EvexVpacksswbYmmK1zYmmYmmm256",
	EvexVpacksswbZmmK1zZmmZmmm512: "EvexVpacksswbZmmK1zZmmZmmm512",
	EvexVpackuswbXmmK1zXmmXmmm128: "EvexVpackuswbXmmK1zXmmXmmm128",
	EvexVpackuswbYmmK1zYmmYmmm256: "EvexVpackuswbYmmK1zYmmYmmm256",
	EvexVpackuswbZmmK1zZmmZmmm512: "EvexVpackuswbZmmK1zZmmZmmm512",
	EvexVpunpckhbwXmmK1zXmmXmmm128: "EvexVpunpckhbwXmmK1zXmmXmmm128",
	EvexVpunpckhbwYmmK1zYmmYmmm256: "EvexVpunpckhbwYmmK1zYmmYmmm256",
	EvexVpunpckhbwZmmK1zZmmZmmm512: "EvexVpunpckhbwZmmK1zZmmZmmm512",
	EvexVpunpckhwdXmmK1zXmmXmmm128: "EvexVpunpckhwdXmmK1zXmmXmmm128",
	EvexVpunpckhwdYmmK1zYmmYmmm256: "EvexVpunpckhwdYmmK1zYmmYmmm256",
	EvexVpunpckhwdZmmK1zZmmZmmm512: "EvexVpunpckhwdZmmK1zZmmZmmm512",
	EvexVpmullwXmmK1zXmmXmmm128: "EvexVpmullwXmmK1zXmmXmmm128",
	EvexVpmullwYmmK1zYmmYmmm256: "EvexVpmullwYmmK1zYmmYmmm256",
	EvexVpmullwZmmK1zZmmZmmm512: "EvexVpmullwZmmK1zZmmZmmm512",
	EvexVpsubusbXmmK1zXmmXmmm128: "EvexVpsubusbXmmK1zXmmXmmm128",
	EvexVpsubusbYmmK1zYmmYmmm256: "EvexVpsubusbYmmK1zYmmYmmm256",
	EvexVpsubusbZmmK1zZmmZmmm512: "EvexVpsubusbZmmK1zZmmZmmm512",
	EvexVpsubuswXmmK1zXmmXmmm128: "EvexVpsubuswXmmK1zXmmXmmm128",
	EvexVpsubuswYmmK1zYmmYmmm256: "EvexVpsubuswYmmK1zYmmYmmm256",
	EvexVpsubuswZmmK1zZmmZmmm512: "EvexVpsubuswZmmK1zZmmZmmm512",
	EvexVpminubXmmK1zXmmXmmm128: "EvexVpminubXmmK1zXmmXmmm128",
	EvexVpminubYmmK1zYmmYmmm256: "EvexVpminubYmmK1zYmmYmmm256",
	EvexVpminubZmmK1zZmmZmmm512: "EvexVpminubZmmK1zZmmZmmm512",
	EvexVpaddusbXmmK1zXmmXmmm128: "EvexVpaddusbXmmK1zXmmXmmm128",
	EvexVpaddusbYmmK1zYmmYmmm256: "EvexVpaddusbYmmK1zYmmYmmm256",
	EvexVpaddusbZmmK1zZmmZmmm512: "EvexVpaddusbZmmK1zZmmZmmm512",
	EvexVpadduswXmmK1zXmmXmmm128: "EvexVpadduswXmmK1zXmmXmmm128",
	EvexVpadduswYmmK1zYmmYmmm256: "EvexVpadduswYmmK1zYmmYmmm256",
	EvexVpadduswZmmK1zZmmZmmm512: "EvexVpadduswZmmK1zZmmZmmm512",
	EvexVpmaxubXmmK1zXmmXmmm128: "EvexVpmaxubXmmK1zXmmXmmm128",
	EvexVpmaxubYmmK1zYmmYmmm256: "EvexVpmaxubYmmK1zYmmYmmm256",
	EvexVpmaxubZmmK1zZmmZmmm512: "EvexVpmaxubZmmK1zZmmZmmm512",
	EvexVpavgbXmmK1zXmmXmmm128: "EvexVpavgbXmmK1zXmmXmmm128",
	EvexVpavgbYmmK1zYmmYmmm256: "EvexVpavgbYmmK1zYmmYmmm256",
	EvexVpavgbZmmK1zZmmZmmm512: "EvexVpavgbZmmK1zZmmZmmm512",
	EvexVpavgwXmmK1zXmmXmmm128: "EvexVpavgwXmmK1zXmmXmmm128",
	EvexVpavgwYmmK1zYmmYmmm256: "EvexVpavgwYmmK1zYmmYmmm256",
	EvexVpavgwZmmK1zZmmZmmm512: "EvexVpavgwZmmK1zZmmZmmm512",
	EvexVpmulhuwXmmK1zXmmXmmm128: "EvexVpmulhuwXmmK1zXmmXmmm128",
	EvexVpmulhuwYmmK1zYmmYmmm256: "EvexVpmulhuwYmmK1zYmmYmmm256",
	EvexVpmulhuwZmmK1zZmmZmmm512: "EvexVpmulhuwZmmK1zZmmZmmm512",
	EvexVpmulhwXmmK1zXmmXmmm128: "EvexVpmulhwXmmK1zXmmXmmm128",
	EvexVpmulhwYmmK1zYmmYmmm256: "EvexVpmulhwYmmK1zYmmYmmm256",
	EvexVpmulhwZmmK1zZmmZmmm512: "EvexVpmulhwZmmK1zZmmZmmm512",
	EvexVpsubsbXmmK1zXmmXmmm128: "EvexVpsubsbXmmK1zXmmXmmm128",
	EvexVpsubsbYmmK1zYmmYmmm256: "EvexVpsubsbYmmK1zYmmYmmm256",
	EvexVpsubsbZmmK1zZmmZmmm512: "EvexVpsubsbZmmK1zZmmZmmm512",
	EvexVpsubswXmmK1zXmmXmmm128: "EvexVpsubswXmmK1zXmmXmmm128",
	EvexVpsubswYmmK1zYmmYmmm256: "EvexVpsubswYmmK1zYmmYmmm256",
	EvexVpsubswZmmK1zZmmZmmm512: "EvexVpsubswZmmK1zZmmZmmm512",
	EvexVpminswXmmK1zXmmXmmm128: "EvexVpminswXmmK1zXmmXmmm128",
	EvexVpminswYmmK1zYmmYmmm256: "EvexVpminswYmmK1zYmmYmmm256",
	EvexVpminswZmmK1zZmmZmmm512: "EvexVpminswZmmK1zZmmZmmm512",
	EvexVpaddsbXmmK1zXmmXmmm128: "EvexVpaddsbXmmK1zXmmXmmm128",
	EvexVpaddsbYmmK1zYmmYmmm256: "EvexVpaddsbYmmK1zYmmYmmm256",
	EvexVpaddsbZmmK1zZmmZmmm512: "EvexVpaddsbZmmK1zZmmZmmm512",
	EvexVpaddswXmmK1zXmmXmmm128: "EvexVpaddswXmmK1zXmmXmmm128",
	EvexVpaddswYmmK1zYmmYmmm256: "EvexVpaddswYmmK1zYmmYmmm256",
	EvexVpaddswZmmK1zZmmZmmm512: "EvexVpaddswZmmK1zZmmZmmm512",
	EvexVpmaxswXmmK1zXmmXmmm128: "EvexVpmaxswXmmK1zXmmXmmm128",
	EvexVpmaxswYmmK1zYmmYmmm256: "EvexVpmaxswYmmK1zYmmYmmm256",
	EvexVpmaxswZmmK1zZmmZmmm512: "EvexVpmaxswZmmK1zZmmZmmm512",
	EvexVpmaddwdXmmK1zXmmXmmm128: "EvexVpmaddwdXmmK1zXmmXmmm128",
	EvexVpmaddwdYmmK1zYmmYmmm256: "EvexVpmaddwdYmmK1zYmmYmmm256",
	EvexVpmaddwdZmmK1zZmmZmmm512: "EvexVpmaddwdZmmK1zZmmZmmm512",
	EvexVpsubbXmmK1zXmmXmmm128: "EvexVpsubbXmmK1zXmmXmmm128",
	EvexVpsubbYmmK1zYmmYmmm256: "EvexVpsubbYmmK1zYmmYmmm256",
	EvexVpsubbZmmK1zZmmZmmm512: "EvexVpsubbZmmK1zZmmZmmm512",
	EvexVpsubwXmmK1zXmmXmmm128: "EvexVpsubwXmmK1zXmmXmmm128",
	EvexVpsubwYmmK1zYmmYmmm256: "EvexVpsubwYmmK1zYmmYmmm256",
	EvexVpsubwZmmK1zZmmZmmm512: "EvexVpsubwZmmK1zZmmZmmm512",
	EvexVpaddbXmmK1zXmmXmmm128: "EvexVpaddbXmmK1zXmmXmmm128",
	EvexVpaddbYmmK1zYmmYmmm256: "EvexVpaddbYmmK1zYmmYmmm256",
	EvexVpaddbZmmK1zZmmZmmm512: "EvexVpaddbZmmK1zZmmZmmm512",
	EvexVpaddwXmmK1zXmmXmmm128: "EvexVpaddwXmmK1zXmmXmmm128",
	EvexVpaddwYmmK1zYmmYmmm256: "EvexVpaddwYmmK1zYmmYmmm256",
	EvexVpaddwZmmK1zZmmZmmm512: "EvexVpaddwZmmK1zZmmZmmm512",
	EvexVpunpckldqXmmK1zXmmXmmm128B32: "EvexVpunpckldqXmmK1zXmmXmmm128B32",
	EvexVpunpckldqYmmK1zYmmYmmm256B32: "EvexVpunpckldqYmmK1zYmmYmmm256B32",
	EvexVpunpckldqZmmK1zZmmZmmm512B32: "EvexVpunpckldqZmmK1zZmmZmmm512B32",
	EvexVpunpckhdqXmmK1zXmmXmmm128B32: "EvexVpunpckhdqXmmK1zXmmXmmm128B32",
	EvexVpunpckhdqYmmK1zYmmYmmm256B32: "EvexVpunpckhdqYmmK1zYmmYmmm256B32",
	EvexVpunpckhdqZmmK1zZmmZmmm512B32: "EvexVpunpckhdqZmmK1zZmmZmmm512B32",
	EvexVpackssdwXmmK1zXmmXmmm128B32: "EvexVpackssdwXmmK1zXmmXmmm128B32",
	EvexVpackssdwYmmK1zYmmYmmm256B32: "EvexVpackssdwYmmK1zYmmYmmm256B32",
	EvexVpackssdwZmmK1zZmmZmmm512B32: "EvexVpackssdwZmmK1zZmmZmmm512B32",
	EvexVpunpcklqdqXmmK1zXmmXmmm128B64: "EvexVpunpcklqdqXmmK1zXmmXmmm128B64",
	EvexVpunpcklqdqYmmK1zYmmYmmm256B64: "EvexVpunpcklqdqYmmK1zYmmYmmm256B64",
	EvexVpunpcklqdqZmmK1zZmmZmmm512B64: "EvexVpunpcklqdqZmmK1zZmmZmmm512B64",
	EvexVpunpckhqdqXmmK1zXmmXmmm128B64: "EvexVpunpckhqdqXmmK1zXmmXmmm128B64",
	EvexVpunpckhqdqYmmK1zYmmYmmm256B64: "EvexVpunpckhqdqYmmK1zYmmYmmm256B64",
	EvexVpunpckhqdqZmmK1zZmmZmmm512B64: "EvexVpunpckhqdqZmmK1zZmmZmmm512B64",
	EvexVpmuludqXmmK1zXmmXmmm128B64: "EvexVpmuludqXmmK1zXmmXmmm128B64",
	EvexVpmuludqYmmK1zYmmYmmm256B64: "EvexVpmuludqYmmK1zYmmYmmm256B64",
	EvexVpmuludqZmmK1zZmmZmmm512B64: "EvexVpmuludqZmmK1zZmmZmmm512B64",
	EvexVpsubqXmmK1zXmmXmmm128B64: "EvexVpsubqXmmK1zXmmXmmm128B64",
	EvexVpsubqYmmK1zYmmYmmm256B64: "EvexVpsubqYmmK1zYmmYmmm256B64",
	EvexVpsubqZmmK1zZmmZmmm512B64: "EvexVpsubqZmmK1zZmmZmmm512B64",
	EvexVpandndXmmK1zXmmXmmm128B32: "EvexVpandndXmmK1zXmmXmmm128B32",
	EvexVpandndYmmK1zYmmYmmm256B32: "EvexVpandndYmmK1zYmmYmmm256B32",
	EvexVpandndZmmK1zZmmZmmm512B32: "EvexVpandndZmmK1zZmmZmmm512B32",
	EvexVpandnqXmmK1zXmmXmmm128B64: "EvexVpandnqXmmK1zXmmXmmm128B64",
	EvexVpandnqYmmK1zYmmYmmm256B64: "EvexVpandnqYmmK1zYmmYmmm256B64",
	EvexVpandnqZmmK1zZmmZmmm512B64: "EvexVpandnqZmmK1zZmmZmmm512B64",
	EvexVpsadbwXmmXmmXmmm128: "EvexVpsadbwXmmXmmXmmm128",
	EvexVpsadbwYmmYmmYmmm256: "EvexVpsadbwYmmYmmYmmm256",
	EvexVpsadbwZmmZmmZmmm512: "EvexVpsadbwZmmZmmZmmm512",
	EvexVpcmpgtbKrK1XmmXmmm128: "EvexVpcmpgtbKrK1XmmXmmm128",
	EvexVpcmpgtbKrK1YmmYmmm256: "EvexVpcmpgtbKrK1YmmYmmm256",
	EvexVpcmpgtbKrK1ZmmZmmm512: "EvexVpcmpgtbKrK1ZmmZmmm512",
	EvexVpcmpgtwKrK1XmmXmmm128: "EvexVpcmpgtwKrK1XmmXmmm128",
	EvexVpcmpgtwKrK1YmmYmmm256: "EvexVpcmpgtwKrK1YmmYmmm256",
	EvexVpcmpgtwKrK1ZmmZmmm512: "EvexVpcmpgtwKrK1ZmmZmmm512",
	EvexVpcmpeqbKrK1XmmXmmm128: "EvexVpcmpeqbKrK1XmmXmmm128",
	EvexVpcmpeqbKrK1YmmYmmm256: "EvexVpcmpeqbKrK1YmmYmmm256",
	EvexVpcmpeqbKrK1ZmmZmmm512: "EvexVpcmpeqbKrK1ZmmZmmm512",
	EvexVpcmpeqwKrK1XmmXmmm128: "EvexVpcmpeqwKrK1XmmXmmm128",
	EvexVpcmpeqwKrK1YmmYmmm256: "EvexVpcmpeqwKrK1YmmYmmm256",
	EvexVpcmpeqwKrK1ZmmZmmm512: "EvexVpcmpeqwKrK1ZmmZmmm512",
	EvexVpcmpgtdKrK1XmmXmmm128B32: "EvexVpcmpgtdKrK1XmmXmmm128B32",
	EvexVpcmpgtdKrK1YmmYmmm256B32: "EvexVpcmpgtdKrK1YmmYmmm256B32",
	EvexVpcmpgtdKrK1ZmmZmmm512B32: "EvexVpcmpgtdKrK1ZmmZmmm512B32",
	EvexVpcmpeqdKrK1XmmXmmm128B32: "EvexVpcmpeqdKrK1XmmXmmm128B32",
	EvexVpcmpeqdKrK1YmmYmmm256B32: "EvexVpcmpeqdKrK1YmmYmmm256B32",
	EvexVpcmpeqdKrK1ZmmZmmm512B32: "EvexVpcmpeqdKrK1ZmmZmmm512B32",
	EvexVmovdXmmRm32: "EvexVmovdXmmRm32",
	EvexVmovqXmmRm64: "EvexVmovqXmmRm64",
	EvexVmovdRm32Xmm: "EvexVmovdRm32Xmm",
	EvexVmovqRm64Xmm: "EvexVmovqRm64Xmm",
	EvexVmovqXmmXmmm64: "EvexVmovqXmmXmmm64",
	EvexVmovqXmmm64Xmm: "EvexVmovqXmmm64Xmm",
	EvexVpshufdXmmK1zXmmm128B32Imm8: "EvexVpshufdXmmK1zXmmm128B32Imm8",
	EvexVpshufdYmmK1zYmmm256B32Imm8: "EvexVpshufdYmmK1zYmmm256B32Imm8",
	EvexVpshufdZmmK1zZmmm512B32Imm8: "EvexVpshufdZmmK1zZmmm512B32Imm8",
	EvexVpshufhwXmmK1zXmmm128Imm8: "EvexVpshufhwXmmK1zXmmm128Imm8",
	EvexVpshufhwYmmK1zYmmm256Imm8: "EvexVpshufhwYmmK1zYmmm256Imm8",
	EvexVpshufhwZmmK1zZmmm512Imm8: "EvexVpshufhwZmmK1zZmmm512Imm8",
	EvexVpshuflwXmmK1zXmmm128Imm8: "EvexVpshuflwXmmK1zXmmm128Imm8",
	EvexVpshuflwYmmK1zYmmm256Imm8: "EvexVpshuflwYmmK1zYmmm256Imm8",
	EvexVpshuflwZmmK1zZmmm512Imm8: "EvexVpshuflwZmmK1zZmmm512Imm8",
	EvexVpsrlwXmmK1zXmmm128Imm8: "EvexVpsrlwXmmK1zXmmm128Imm8",
	EvexVpsrlwYmmK1zYmmm256Imm8: "EvexVpsrlwYmmK1zYmmm256Imm8",
	EvexVpsrlwZmmK1zZmmm512Imm8: "EvexVpsrlwZmmK1zZmmm512Imm8",
	EvexVpsrawXmmK1zXmmm128Imm8: "EvexVpsrawXmmK1zXmmm128Imm8",
	EvexVpsrawYmmK1zYmmm256Imm8: "EvexVpsrawYmmK1zYmmm256Imm8",
	EvexVpsrawZmmK1zZmmm512Imm8: "EvexVpsrawZmmK1zZmmm512Imm8",
	EvexVpsllwXmmK1zXmmm128Imm8: "EvexVpsllwXmmK1zXmmm128Imm8",
	EvexVpsllwYmmK1zYmmm256Imm8: "EvexVpsllwYmmK1zYmmm256Imm8",
	EvexVpsllwZmmK1zZmmm512Imm8: "EvexVpsllwZmmK1zZmmm512Imm8",
	EvexVpsrldXmmK1zXmmm128B32Imm8: "EvexVpsrldXmmK1zXmmm128B32Imm8",
	EvexVpsrldYmmK1zYmmm256B32Imm8: "EvexVpsrldYmmK1zYmmm256B32Imm8",
	EvexVpsrldZmmK1zZmmm512B32Imm8: "EvexVpsrldZmmK1zZmmm512B32Imm8",
	EvexVpslldXmmK1zXmmm128B32Imm8: "EvexVpslldXmmK1zXmmm128B32Imm8",
	EvexVpslldYmmK1zYmmm256B32Imm8: "EvexVpslldYmmK1zYmmm256B32Imm8",
	EvexVpslldZmmK1zZmmm512B32Imm8: "EvexVpslldZmmK1zZmmm512B32Imm8",
	EvexVpsrlqXmmK1zXmmm128B64Imm8: "EvexVpsrlqXmmK1zXmmm128B64Imm8",
	EvexVpsrlqYmmK1zYmmm256B64Imm8: "EvexVpsrlqYmmK1zYmmm256B64Imm8",
	EvexVpsrlqZmmK1zZmmm512B64Imm8: "EvexVpsrlqZmmK1zZmmm512B64Imm8",
	EvexVpsllqXmmK1zXmmm128B64Imm8: "EvexVpsllqXmmK1zXmmm128B64Imm8",
	EvexVpsllqYmmK1zYmmm256B64Imm8: "EvexVpsllqYmmK1zYmmm256B64Imm8",
	EvexVpsllqZmmK1zZmmm512B64Imm8: "EvexVpsllqZmmK1zZmmm512B64Imm8",
	EvexVpsrldqXmmXmmm128Imm8: "EvexVpsrldqXmmXmmm128Imm8",
	EvexVpsrldqYmmYmmm256Imm8: "EvexVpsrldqYmmYmmm256Imm8",
	EvexVpsrldqZmmZmmm512Imm8: "EvexVpsrldqZmmZmmm512Imm8",
	EvexVpslldqXmmXmmm128Imm8: "EvexVpslldqXmmXmmm128Imm8",
	EvexVpslldqYmmYmmm256Imm8: "EvexVpslldqYmmYmmm256Imm8",
	EvexVpslldqZmmZmmm512Imm8: "EvexVpslldqZmmZmmm512Imm8",
	EvexVpsrlwXmmK1zXmmXmmm128: "EvexVpsrlwXmmK1zXmmXmmm128",
	EvexVpsrlwYmmK1zYmmXmmm128: "EvexVpsrlwYmmK1zYmmXmmm128",
	EvexVpsrlwZmmK1zZmmXmmm128: "EvexVpsrlwZmmK1zZmmXmmm128",
	EvexVpsrawXmmK1zXmmXmmm128: "EvexVpsrawXmmK1zXmmXmmm128",
	EvexVpsrawYmmK1zYmmXmmm128: "EvexVpsrawYmmK1zYmmXmmm128",
	EvexVpsrawZmmK1zZmmXmmm128: "EvexVpsrawZmmK1zZmmXmmm128",
	EvexVpsllwXmmK1zXmmXmmm128: "EvexVpsllwXmmK1zXmmXmmm128",
	EvexVpsllwYmmK1zYmmXmmm128: "EvexVpsllwYmmK1zYmmXmmm128",
	EvexVpsllwZmmK1zZmmXmmm128: "EvexVpsllwZmmK1zZmmXmmm128",
	EvexVpsrldXmmK1zXmmXmmm128: "EvexVpsrldXmmK1zXmmXmmm128",
	EvexVpsrldYmmK1zYmmXmmm128: "EvexVpsrldYmmK1zYmmXmmm128",
	EvexVpsrldZmmK1zZmmXmmm128: "EvexVpsrldZmmK1zZmmXmmm128",
	EvexVpsrlqXmmK1zXmmXmmm128: "EvexVpsrlqXmmK1zXmmXmmm128",
	EvexVpsrlqYmmK1zYmmXmmm128: "EvexVpsrlqYmmK1zYmmXmmm128",
	EvexVpsrlqZmmK1zZmmXmmm128: "EvexVpsrlqZmmK1zZmmXmmm128",
	EvexVpsradXmmK1zXmmXmmm128: "EvexVpsradXmmK1zXmmXmmm128",
	EvexVpsradYmmK1zYmmXmmm128: "EvexVpsradYmmK1zYmmXmmm128",
	EvexVpsradZmmK1zZmmXmmm128: "EvexVpsradZmmK1zZmmXmmm128",
	EvexVpsraqXmmK1zXmmXmmm128: "EvexVpsraqXmmK1zXmmXmmm128",
	EvexVpsraqYmmK1zYmmXmmm128: "EvexVpsraqYmmK1zYmmXmmm128",
	EvexVpsraqZmmK1zZmmXmmm128: "EvexVpsraqZmmK1zZmmXmmm128",
	EvexVpslldXmmK1zXmmXmmm128: "EvexVpslldXmmK1zXmmXmmm128",
	EvexVpslldYmmK1zYmmXmmm128: "EvexVpslldYmmK1zYmmXmmm128",
	EvexVpslldZmmK1zZmmXmmm128: "EvexVpslldZmmK1zZmmXmmm128",
	EvexVpsllqXmmK1zXmmXmmm128: "EvexVpsllqXmmK1zXmmXmmm128",
	EvexVpsllqYmmK1zYmmXmmm128: "EvexVpsllqYmmK1zYmmXmmm128",
	EvexVpsllqZmmK1zZmmXmmm128: "EvexVpsllqZmmK1zZmmXmmm128",
	EvexVcmppsKrK1XmmXmmm128B32Imm8: "EvexVcmppsKrK1XmmXmmm128B32Imm8",
	EvexVcmppsKrK1YmmYmmm256B32Imm8: "EvexVcmppsKrK1YmmYmmm256B32Imm8",
	EvexVcmppsKrK1ZmmZmmm512B32Imm8Sae: "EvexVcmppsKrK1ZmmZmmm512B32Imm8Sae",
	EvexVcmppdKrK1XmmXmmm128B64Imm8: "EvexVcmppdKrK1XmmXmmm128B64Imm8",
	EvexVcmppdKrK1YmmYmmm256B64Imm8: "EvexVcmppdKrK1YmmYmmm256B64Imm8",
	EvexVcmppdKrK1ZmmZmmm512B64Imm8Sae: "EvexVcmppdKrK1ZmmZmmm512B64Imm8Sae",
	EvexVcmpssKrK1XmmXmmm32Imm8Sae: "EvexVcmpssKrK1XmmXmmm32Imm8Sae",
	EvexVcmpsdKrK1XmmXmmm64Imm8Sae: "EvexVcmpsdKrK1XmmXmmm64Imm8Sae",
	EvexVpinsrwXmmXmmR32m16Imm8: "EvexVpinsrwXmmXmmR32m16Imm8",
	EvexVpinsrwXmmXmmR64m16Imm8: "EvexVpinsrwXmmXmmR64m16Imm8",
	EvexVpextrwR32XmmImm8: "EvexVpextrwR32XmmImm8",
	EvexVpextrwR64XmmImm8: "EvexVpextrwR64XmmImm8",
	EvexVshufpsXmmK1zXmmXmmm128B32Imm8: "EvexVshufpsXmmK1zXmmXmmm128B32Imm8",
	EvexVshufpsYmmK1zYmmYmmm256B32Imm8: "EvexVshufpsYmmK1zYmmYmmm256B32Imm8",
	EvexVshufpsZmmK1zZmmZmmm512B32Imm8: "EvexVshufpsZmmK1zZmmZmmm512B32Imm8",
	EvexVshufpdXmmK1zXmmXmmm128B64Imm8: "EvexVshufpdXmmK1zXmmXmmm128B64Imm8",
	EvexVshufpdYmmK1zYmmYmmm256B64Imm8: "EvexVshufpdYmmK1zYmmYmmm256B64Imm8",
	EvexVshufpdZmmK1zZmmZmmm512B64Imm8: "EvexVshufpdZmmK1zZmmZmmm512B64Imm8",
	EvexVcvttpd2dqXmmK1zXmmm128B64: "EvexVcvttpd2dqXmmK1zXmmm128B64",
	EvexVcvttpd2dqXmmK1zYmmm256B64: "EvexVcvttpd2dqXmmK1zYmmm256B64",
	EvexVcvttpd2dqYmmK1zZmmm512B64Sae: "EvexVcvttpd2dqYmmK1zZmmm512B64Sae",
	EvexVcvtdq2pdXmmK1zXmmm64: "EvexVcvtdq2pdXmmK1zXmmm64",
	EvexVcvtdq2pdYmmK1zXmmm128: "EvexVcvtdq2pdYmmK1zXmmm128",
	EvexVcvtdq2pdZmmK1zYmmm256: "EvexVcvtdq2pdZmmK1zYmmm256",
	EvexVcvtpd2dqXmmK1zXmmm128B64: "EvexVcvtpd2dqXmmK1zXmmm128B64",
	EvexVcvtpd2dqXmmK1zYmmm256B64: "EvexVcvtpd2dqXmmK1zYmmm256B64",
	EvexVcvtpd2dqYmmK1zZmmm512B64Er: "EvexVcvtpd2dqYmmK1zZmmm512B64Er",
	EvexVmovntdqM128Xmm: "EvexVmovntdqM128Xmm",
	EvexVmovntdqM256Ymm: "EvexVmovntdqM256Ymm",
	EvexVmovntdqM512Zmm: "EvexVmovntdqM512Zmm",
	EvexVpshufbXmmK1zXmmXmmm128: "EvexVpshufbXmmK1zXmmXmmm128",
	EvexVpshufbYmmK1zYmmYmmm256: "EvexVpshufbYmmK1zYmmYmmm256",
	EvexVpshufbZmmK1zZmmZmmm512: "EvexVpshufbZmmK1zZmmZmmm512",
	EvexVpmaddubswXmmK1zXmmXmmm128: "EvexVpmaddubswXmmK1zXmmXmmm128",
	EvexVpmaddubswYmmK1zYmmYmmm256: "EvexVpmaddubswYmmK1zYmmYmmm256",
	EvexVpmaddubswZmmK1zZmmZmmm512: "EvexVpmaddubswZmmK1zZmmZmmm512",
	EvexVpmulhrswXmmK1zXmmXmmm128: "EvexVpmulhrswXmmK1zXmmXmmm128",
	EvexVpmulhrswYmmK1zYmmYmmm256: "EvexVpmulhrswYmmK1zYmmYmmm256",
	EvexVpmulhrswZmmK1zZmmZmmm512: "EvexVpmulhrswZmmK1zZmmZmmm512",
	EvexVpminsbXmmK1zXmmXmmm128: "EvexVpminsbXmmK1zXmmXmmm128",
	EvexVpminsbYmmK1zYmmYmmm256: "EvexVpminsbYmmK1zYmmYmmm256",
	EvexVpminsbZmmK1zZmmZmmm512: "EvexVpminsbZmmK1zZmmZmmm512",
	EvexVpminuwXmmK1zXmmXmmm128: "EvexVpminuwXmmK1zXmmXmmm128",
	EvexVpminuwYmmK1zYmmYmmm256: "EvexVpminuwYmmK1zYmmYmmm256",
	EvexVpminuwZmmK1zZmmZmmm512: "EvexVpminuwZmmK1zZmmZmmm512",
	EvexVpmaxsbXmmK1zXmmXmmm128: "EvexVpmaxsbXmmK1zXmmXmmm128",
	EvexVpmaxsbYmmK1zYmmYmmm256: "EvexVpmaxsbYmmK1zYmmYmmm256",
	EvexVpmaxsbZmmK1zZmmZmmm512: "EvexVpmaxsbZmmK1zZmmZmmm512",
	EvexVpmaxuwXmmK1zXmmXmmm128: "EvexVpmaxuwXmmK1zXmmXmmm128",
	EvexVpmaxuwYmmK1zYmmYmmm256: "EvexVpmaxuwYmmK1zYmmYmmm256",
	EvexVpmaxuwZmmK1zZmmZmmm512: "EvexVpmaxuwZmmK1zZmmZmmm512",
	EvexVpminsdXmmK1zXmmXmmm128B32: "EvexVpminsdXmmK1zXmmXmmm128B32",
	EvexVpminsdYmmK1zYmmYmmm256B32: "EvexVpminsdYmmK1zYmmYmmm256B32",
	EvexVpminsdZmmK1zZmmZmmm512B32: "EvexVpminsdZmmK1zZmmZmmm512B32",
	EvexVpminsqXmmK1zXmmXmmm128B64: "EvexVpminsqXmmK1zXmmXmmm128B64",
	EvexVpminsqYmmK1zYmmYmmm256B64: "EvexVpminsqYmmK1zYmmYmmm256B64",
	EvexVpminsqZmmK1zZmmZmmm512B64: "EvexVpminsqZmmK1zZmmZmmm512B64",
	EvexVpminudXmmK1zXmmXmmm128B32: "EvexVpminudXmmK1zXmmXmmm128B32",
	EvexVpminudYmmK1zYmmYmmm256B32: "EvexVpminudYmmK1zYmmYmmm256B32",
	EvexVpminudZmmK1zZmmZmmm512B32: "EvexVpminudZmmK1zZmmZmmm512B32",
	EvexVpminuqXmmK1zXmmXmmm128B64: "EvexVpminuqXmmK1zXmmXmmm128B64",
	EvexVpminuqYmmK1zYmmYmmm256B64: "EvexVpminuqYmmK1zYmmYmmm256B64",
	EvexVpminuqZmmK1zZmmZmmm512B64: "EvexVpminuqZmmK1zZmmZmmm512B64",
	EvexVpmaxsdXmmK1zXmmXmmm128B32: "EvexVpmaxsdXmmK1zXmmXmmm128B32",
	EvexVpmaxsdYmmK1zYmmYmmm256B32: "EvexVpmaxsdYmmK1zYmmYmmm256B32",
	EvexVpmaxsdZmmK1zZmmZmmm512B32: "EvexVpmaxsdZmmK1zZmmZmmm512B32",
	EvexVpmaxsqXmmK1zXmmXmmm128B64: "EvexVpmaxsqXmmK1zXmmXmmm128B64",
	EvexVpmaxsqYmmK1zYmmYmmm256B64: "EvexVpmaxsqYmmK1zYmmYmmm256B64",
	EvexVpmaxsqZmmK1zZmmZmmm512B64: "EvexVpmaxsqZmmK1zZmmZmmm512B64",
	EvexVpmaxudXmmK1zXmmXmmm128B32: "EvexVpmaxudXmmK1zXmmXmmm128B32",
	EvexVpmaxudYmmK1zYmmYmmm256B32: "EvexVpmaxudYmmK1zYmmYmmm256B32",
	EvexVpmaxudZmmK1zZmmZmmm512B32: "EvexVpmaxudZmmK1zZmmZmmm512B32",
	EvexVpmaxuqXmmK1zXmmXmmm128B64: "EvexVpmaxuqXmmK1zXmmXmmm128B64",
	EvexVpmaxuqYmmK1zYmmYmmm256B64: "EvexVpmaxuqYmmK1zYmmYmmm256B64",
	EvexVpmaxuqZmmK1zZmmZmmm512B64: "EvexVpmaxuqZmmK1zZmmZmmm512B64",
	EvexVpmulldXmmK1zXmmXmmm128B32: "EvexVpmulldXmmK1zXmmXmmm128B32",
	EvexVpmulldYmmK1zYmmYmmm256B32: "EvexVpmulldYmmK1zYmmYmmm256B32",
	EvexVpmulldZmmK1zZmmZmmm512B32: "EvexVpmulldZmmK1zZmmZmmm512B32",
	EvexVpmullqXmmK1zXmmXmmm128B64: "EvexVpmullqXmmK1zXmmXmmm128B64",
	EvexVpmullqYmmK1zYmmYmmm256B64: "EvexVpmullqYmmK1zYmmYmmm256B64",
	EvexVpmullqZmmK1zZmmZmmm512B64: "EvexVpmullqZmmK1zZmmZmmm512B64",
	EvexVpsrlvdXmmK1zXmmXmmm128B32: "EvexVpsrlvdXmmK1zXmmXmmm128B32",
	EvexVpsrlvdYmmK1zYmmYmmm256B32: "EvexVpsrlvdYmmK1zYmmYmmm256B32",
	EvexVpsrlvdZmmK1zZmmZmmm512B32: "EvexVpsrlvdZmmK1zZmmZmmm512B32",
	EvexVpsrlvqXmmK1zXmmXmmm128B64: "EvexVpsrlvqXmmK1zXmmXmmm128B64",
	EvexVpsrlvqYmmK1zYmmYmmm256B64: "EvexVpsrlvqYmmK1zYmmYmmm256B64",
	EvexVpsrlvqZmmK1zZmmZmmm512B64: "EvexVpsrlvqZmmK1zZmmZmmm512B64",
	EvexVpsravdXmmK1zXmmXmmm128B32: "EvexVpsravdXmmK1zXmmXmmm128B32",
	EvexVpsravdYmmK1zYmmYmmm256B32: "EvexVpsravdYmmK1zYmmYmmm256B32",
	EvexVpsravdZmmK1zZmmZmmm512B32: "EvexVpsravdZmmK1zZmmZmmm512B32",
	EvexVpsravqXmmK1zXmmXmmm128B64: "EvexVpsravqXmmK1zXmmXmmm128B64",
	EvexVpsravqYmmK1zYmmYmmm256B64: "EvexVpsravqYmmK1zYmmYmmm256B64",
	EvexVpsravqZmmK1zZmmZmmm512B64: "EvexVpsravqZmmK1zZmmZmmm512B64",
	EvexVpsllvdXmmK1zXmmXmmm128B32: "EvexVpsllvdXmmK1zXmmXmmm128B32",
	EvexVpsllvdYmmK1zYmmYmmm256B32: "EvexVpsllvdYmmK1zYmmYmmm256B32",
	EvexVpsllvdZmmK1zZmmZmmm512B32: "EvexVpsllvdZmmK1zZmmZmmm512B32",
	EvexVpsllvqXmmK1zXmmXmmm128B64: "EvexVpsllvqXmmK1zXmmXmmm128B64",
	EvexVpsllvqYmmK1zYmmYmmm256B64: "EvexVpsllvqYmmK1zYmmYmmm256B64",
	EvexVpsllvqZmmK1zZmmZmmm512B64: "EvexVpsllvqZmmK1zZmmZmmm512B64",
	EvexVpermi2dXmmK1zXmmXmmm128B32: "EvexVpermi2dXmmK1zXmmXmmm128B32",
	EvexVpermi2dYmmK1zYmmYmmm256B32: "EvexVpermi2dYmmK1zYmmYmmm256B32",
	EvexVpermi2dZmmK1zZmmZmmm512B32: "EvexVpermi2dZmmK1zZmmZmmm512B32",
	EvexVpermi2qXmmK1zXmmXmmm128B64: "EvexVpermi2qXmmK1zXmmXmmm128B64",
	EvexVpermi2qYmmK1zYmmYmmm256B64: "EvexVpermi2qYmmK1zYmmYmmm256B64",
	EvexVpermi2qZmmK1zZmmZmmm512B64: "EvexVpermi2qZmmK1zZmmZmmm512B64",
	EvexVpermt2dXmmK1zXmmXmmm128B32: "EvexVpermt2dXmmK1zXmmXmmm128B32",
	EvexVpermt2dYmmK1zYmmYmmm256B32: "EvexVpermt2dYmmK1zYmmYmmm256B32",
	EvexVpermt2dZmmK1zZmmZmmm512B32: "EvexVpermt2dZmmK1zZmmZmmm512B32",
	EvexVpermt2qXmmK1zXmmXmmm128B64: "EvexVpermt2qXmmK1zXmmXmmm128B64",
	EvexVpermt2qYmmK1zYmmYmmm256B64: "EvexVpermt2qYmmK1zYmmYmmm256B64",
	EvexVpermt2qZmmK1zZmmZmmm512B64: "EvexVpermt2qZmmK1zZmmZmmm512B64",
	EvexVblendmpsXmmK1zXmmXmmm128B32: "EvexVblendmpsXmmK1zXmmXmmm128B32",
	EvexVblendmpsYmmK1zYmmYmmm256B32: "EvexVblendmpsYmmK1zYmmYmmm256B32",
	EvexVblendmpsZmmK1zZmmZmmm512B32: "EvexVblendmpsZmmK1zZmmZmmm512B32",
	EvexVblendmpdXmmK1zXmmXmmm128B64: "EvexVblendmpdXmmK1zXmmXmmm128B64",
	EvexVblendmpdYmmK1zYmmYmmm256B64: "EvexVblendmpdYmmK1zYmmYmmm256B64",
	EvexVblendmpdZmmK1zZmmZmmm512B64: "EvexVblendmpdZmmK1zZmmZmmm512B64",
	EvexVpermi2psXmmK1zXmmXmmm128B32: "EvexVpermi2psXmmK1zXmmXmmm128B32",
	EvexVpermi2psYmmK1zYmmYmmm256B32: "EvexVpermi2psYmmK1zYmmYmmm256B32",
	EvexVpermi2psZmmK1zZmmZmmm512B32: "EvexVpermi2psZmmK1zZmmZmmm512B32",
	EvexVpermi2pdXmmK1zXmmXmmm128B64: "EvexVpermi2pdXmmK1zXmmXmmm128B64",
	EvexVpermi2pdYmmK1zYmmYmmm256B64: "EvexVpermi2pdYmmK1zYmmYmmm256B64",
	EvexVpermi2pdZmmK1zZmmZmmm512B64: "EvexVpermi2pdZmmK1zZmmZmmm512B64",
	EvexVpermt2psXmmK1zXmmXmmm128B32: "EvexVpermt2psXmmK1zXmmXmmm128B32",
	EvexVpermt2psYmmK1zYmmYmmm256B32: "EvexVpermt2psYmmK1zYmmYmmm256B32",
	EvexVpermt2psZmmK1zZmmZmmm512B32: "EvexVpermt2psZmmK1zZmmZmmm512B32",
	EvexVpermt2pdXmmK1zXmmXmmm128B64: "EvexVpermt2pdXmmK1zXmmXmmm128B64",
	EvexVpermt2pdYmmK1zYmmYmmm256B64: "EvexVpermt2pdYmmK1zYmmYmmm256B64",
	EvexVpermt2pdZmmK1zZmmZmmm512B64: "EvexVpermt2pdZmmK1zZmmZmmm512B64",
	EvexVpmuldqXmmK1zXmmXmmm128B64: "EvexVpmuldqXmmK1zXmmXmmm128B64",
	EvexVpmuldqYmmK1zYmmYmmm256B64: "EvexVpmuldqYmmK1zYmmYmmm256B64",
	EvexVpmuldqZmmK1zZmmZmmm512B64: "EvexVpmuldqZmmK1zZmmZmmm512B64",
	EvexVpackusdwXmmK1zXmmXmmm128B32: "EvexVpackusdwXmmK1zXmmXmmm128B32",
	EvexVpackusdwYmmK1zYmmYmmm256B32: "EvexVpackusdwYmmK1zYmmYmmm256B32",
	EvexVpackusdwZmmK1zZmmZmmm512B32: "EvexVpackusdwZmmK1zZmmZmmm512B32",
	EvexVpcmpeqqKrK1XmmXmmm128B64: "EvexVpcmpeqqKrK1XmmXmmm128B64",
	EvexVpcmpeqqKrK1YmmYmmm256B64: "EvexVpcmpeqqKrK1YmmYmmm256B64",
	EvexVpcmpeqqKrK1ZmmZmmm512B64: "EvexVpcmpeqqKrK1ZmmZmmm512B64",
	EvexVpcmpgtqKrK1XmmXmmm128B64: "EvexVpcmpgtqKrK1XmmXmmm128B64",
	EvexVpcmpgtqKrK1YmmYmmm256B64: "EvexVpcmpgtqKrK1YmmYmmm256B64",
	EvexVpcmpgtqKrK1ZmmZmmm512B64: "EvexVpcmpgtqKrK1ZmmZmmm512B64",
	EvexVpermilpsXmmK1zXmmXmmm128B32: "EvexVpermilpsXmmK1zXmmXmmm128B32",
	EvexVpermilpsYmmK1zYmmYmmm256B32: "EvexVpermilpsYmmK1zYmmYmmm256B32",
	EvexVpermilpsZmmK1zZmmZmmm512B32: "EvexVpermilpsZmmK1zZmmZmmm512B32",
	EvexVpermilpdXmmK1zXmmXmmm128B64: "EvexVpermilpdXmmK1zXmmXmmm128B64",
	EvexVpermilpdYmmK1zYmmYmmm256B64: "EvexVpermilpdYmmK1zYmmYmmm256B64",
	EvexVpermilpdZmmK1zZmmZmmm512B64: "EvexVpermilpdZmmK1zZmmZmmm512B64",
	EvexVpermpsYmmK1zYmmYmmm256B32: "EvexVpermpsYmmK1zYmmYmmm256B32",
	EvexVpermpsZmmK1zZmmZmmm512B32: "EvexVpermpsZmmK1zZmmZmmm512B32",
	EvexVpermpdYmmK1zYmmYmmm256B64: "EvexVpermpdYmmK1zYmmYmmm256B64",
	EvexVpermpdZmmK1zZmmZmmm512B64: "EvexVpermpdZmmK1zZmmZmmm512B64",
	EvexVpermdYmmK1zYmmYmmm256B32: "EvexVpermdYmmK1zYmmYmmm256B32",
	EvexVpermdZmmK1zZmmZmmm512B32: "EvexVpermdZmmK1zZmmZmmm512B32",
	EvexVpermqYmmK1zYmmYmmm256B64: "EvexVpermqYmmK1zYmmYmmm256B64",
	EvexVpermqZmmK1zZmmZmmm512B64: "EvexVpermqZmmK1zZmmZmmm512B64",
	EvexVbroadcastsdYmmK1zXmmm64: "EvexVbroadcastsdYmmK1zXmmm64",
	EvexVbroadcastsdZmmK1zXmmm64: "EvexVbroadcastsdZmmK1zXmmm64",
	EvexVbroadcastf32x4YmmK1zM128: "EvexVbroadcastf32x4YmmK1zM128",
	EvexVbroadcastf32x4ZmmK1zM128: "EvexVbroadcastf32x4ZmmK1zM128",
	EvexVbroadcastf64x2YmmK1zM128: "EvexVbroadcastf64x2YmmK1zM128",
	EvexVbroadcastf64x2ZmmK1zM128: "EvexVbroadcastf64x2ZmmK1zM128",
	EvexVbroadcasti32x4YmmK1zM128: "EvexVbroadcasti32x4YmmK1zM128",
	EvexVbroadcasti32x4ZmmK1zM128: "EvexVbroadcasti32x4ZmmK1zM128",
	EvexVbroadcasti64x2YmmK1zM128: "EvexVbroadcasti64x2YmmK1zM128",
	EvexVbroadcasti64x2ZmmK1zM128: "EvexVbroadcasti64x2ZmmK1zM128",
	EvexVpbroadcastqXmmK1zXmmm64: "EvexVpbroadcastqXmmK1zXmmm64",
	EvexVpbroadcastqYmmK1zXmmm64: "EvexVpbroadcastqYmmK1zXmmm64",
	EvexVpbroadcastqZmmK1zXmmm64: "EvexVpbroadcastqZmmK1zXmmm64",
	EvexVpbroadcastbXmmK1zXmmm8: "EvexVpbroadcastbXmmK1zXmmm8",
	EvexVpbroadcastbYmmK1zXmmm8: "EvexVpbroadcastbYmmK1zXmmm8",
	EvexVpbroadcastbZmmK1zXmmm8: "EvexVpbroadcastbZmmK1zXmmm8",
	EvexVpbroadcastwXmmK1zXmmm16: "EvexVpbroadcastwXmmK1zXmmm16",
	EvexVpbroadcastwYmmK1zXmmm16: "EvexVpbroadcastwYmmK1zXmmm16",
	EvexVpbroadcastwZmmK1zXmmm16: "EvexVpbroadcastwZmmK1zXmmm16",
	EvexVpabsbXmmK1zXmmm128: "EvexVpabsbXmmK1zXmmm128",
	EvexVpabsbYmmK1zYmmm256: "EvexVpabsbYmmK1zYmmm256",
	EvexVpabsbZmmK1zZmmm512: "EvexVpabsbZmmK1zZmmm512",
	EvexVpabswXmmK1zXmmm128: "EvexVpabswXmmK1zXmmm128",
	EvexVpabswYmmK1zYmmm256: "EvexVpabswYmmK1zYmmm256",
	EvexVpabswZmmK1zZmmm512: "EvexVpabswZmmK1zZmmm512",
	EvexVpabsdXmmK1zXmmm128B32: "EvexVpabsdXmmK1zXmmm128B32",
	EvexVpabsdYmmK1zYmmm256B32: "EvexVpabsdYmmK1zYmmm256B32",
	EvexVpabsdZmmK1zZmmm512B32: "EvexVpabsdZmmK1zZmmm512B32",
	EvexVpabsqXmmK1zXmmm128B64: "EvexVpabsqXmmK1zXmmm128B64",
	EvexVpabsqYmmK1zYmmm256B64: "EvexVpabsqYmmK1zYmmm256B64",
	EvexVpabsqZmmK1zZmmm512B64: "EvexVpabsqZmmK1zZmmm512B64",
	EvexVpmovsxbwXmmK1zXmmm64: "EvexVpmovsxbwXmmK1zXmmm64",
	EvexVpmovsxbwYmmK1zXmmm128: "EvexVpmovsxbwYmmK1zXmmm128",
	EvexVpmovsxbwZmmK1zYmmm256: "EvexVpmovsxbwZmmK1zYmmm256",
	EvexVpmovsxbdXmmK1zXmmm32: "EvexVpmovsxbdXmmK1zXmmm32",
	EvexVpmovsxbdYmmK1zXmmm64: "EvexVpmovsxbdYmmK1zXmmm64",
	EvexVpmovsxbdZmmK1zXmmm128: "EvexVpmovsxbdZmmK1zXmmm128",
	EvexVpmovsxbqXmmK1zXmmm16: "EvexVpmovsxbqXmmK1zXmmm16",
	EvexVpmovsxbqYmmK1zXmmm32: "EvexVpmovsxbqYmmK1zXmmm32",
	EvexVpmovsxbqZmmK1zXmmm64: "EvexVpmovsxbqZmmK1zXmmm64",
	EvexVpmovsxwdXmmK1zXmmm64: "EvexVpmovsxwdXmmK1zXmmm64",
	EvexVpmovsxwdYmmK1zXmmm128: "EvexVpmovsxwdYmmK1zXmmm128",
	EvexVpmovsxwdZmmK1zYmmm256: "EvexVpmovsxwdZmmK1zYmmm256",
	EvexVpmovsxwqXmmK1zXmmm32: "EvexVpmovsxwqXmmK1zXmmm32",
	EvexVpmovsxwqYmmK1zXmmm64: "EvexVpmovsxwqYmmK1zXmmm64",
	EvexVpmovsxwqZmmK1zXmmm128: "EvexVpmovsxwqZmmK1zXmmm128",
	EvexVpmovsxdqXmmK1zXmmm64: "EvexVpmovsxdqXmmK1zXmmm64",
	EvexVpmovsxdqYmmK1zXmmm128: "EvexVpmovsxdqYmmK1zXmmm128",
	EvexVpmovsxdqZmmK1zYmmm256: "EvexVpmovsxdqZmmK1zYmmm256",
	EvexVpmovzxbwXmmK1zXmmm64: "EvexVpmovzxbwXmmK1zXmmm64",
	EvexVpmovzxbwYmmK1zXmmm128: "EvexVpmovzxbwYmmK1zXmmm128",
	EvexVpmovzxbwZmmK1zYmmm256: "EvexVpmovzxbwZmmK1zYmmm256",
	EvexVpmovzxbdXmmK1zXmmm32: "EvexVpmovzxbdXmmK1zXmmm32",
	EvexVpmovzxbdYmmK1zXmmm64: "EvexVpmovzxbdYmmK1zXmmm64",
	EvexVpmovzxbdZmmK1zXmmm128: "EvexVpmovzxbdZmmK1zXmmm128",
	EvexVpmovzxbqXmmK1zXmmm16: "EvexVpmovzxbqXmmK1zXmmm16",
	EvexVpmovzxbqYmmK1zXmmm32: "EvexVpmovzxbqYmmK1zXmmm32",
	EvexVpmovzxbqZmmK1zXmmm64: "EvexVpmovzxbqZmmK1zXmmm64",
	EvexVpmovzxwdXmmK1zXmmm64: "EvexVpmovzxwdXmmK1zXmmm64",
	EvexVpmovzxwdYmmK1zXmmm128: "EvexVpmovzxwdYmmK1zXmmm128",
	EvexVpmovzxwdZmmK1zYmmm256: "EvexVpmovzxwdZmmK1zYmmm256",
	EvexVpmovzxwqXmmK1zXmmm32: "EvexVpmovzxwqXmmK1zXmmm32",
	EvexVpmovzxwqYmmK1zXmmm64: "EvexVpmovzxwqYmmK1zXmmm64",
	EvexVpmovzxwqZmmK1zXmmm128: "EvexVpmovzxwqZmmK1zXmmm128",
	EvexVpmovzxdqXmmK1zXmmm64: "EvexVpmovzxdqXmmK1zXmmm64",
	EvexVpmovzxdqYmmK1zXmmm128: "EvexVpmovzxdqYmmK1zXmmm128",
	EvexVpmovzxdqZmmK1zYmmm256: "EvexVpmovzxdqZmmK1zYmmm256",
	EvexVpmovwbXmmm64K1zXmm: "EvexVpmovwbXmmm64K1zXmm",
	EvexVpmovwbXmmm128K1zYmm: "EvexVpmovwbXmmm128K1zYmm",
	EvexVpmovwbYmmm256K1zZmm: "EvexVpmovwbYmmm256K1zZmm",
	EvexVpmovdbXmmm32K1zXmm: "EvexVpmovdbXmmm32K1zXmm",
	EvexVpmovdbXmmm64K1zYmm: "EvexVpmovdbXmmm64K1zYmm",
	EvexVpmovdbXmmm128K1zZmm: "EvexVpmovdbXmmm128K1zZmm",
	EvexVpmovqbXmmm16K1zXmm: "EvexVpmovqbXmmm16K1zXmm",
	EvexVpmovqbXmmm32K1zYmm: "EvexVpmovqbXmmm32K1zYmm",
	EvexVpmovqbXmmm64K1zZmm: "EvexVpmovqbXmmm64K1zZmm",
	EvexVpmovdwXmmm64K1zXmm: "EvexVpmovdwXmmm64K1zXmm",
	EvexVpmovdwXmmm128K1zYmm: "EvexVpmovdwXmmm128K1zYmm",
	EvexVpmovdwYmmm256K1zZmm: "EvexVpmovdwYmmm256K1zZmm",
	EvexVpmovqwXmmm32K1zXmm: "EvexVpmovqwXmmm32K1zXmm",
	EvexVpmovqwXmmm64K1zYmm: "EvexVpmovqwXmmm64K1zYmm",
	EvexVpmovqwXmmm128K1zZmm: "EvexVpmovqwXmmm128K1zZmm",
	EvexVpmovqdXmmm64K1zXmm: "EvexVpmovqdXmmm64K1zXmm",
	EvexVpmovqdXmmm128K1zYmm: "EvexVpmovqdXmmm128K1zYmm",
	EvexVpmovqdYmmm256K1zZmm: "EvexVpmovqdYmmm256K1zZmm",
	EvexVpmovm2bXmmKr: "EvexVpmovm2bXmmKr",
	EvexVpmovm2bYmmKr: "EvexVpmovm2bYmmKr",
	EvexVpmovm2bZmmKr: "EvexVpmovm2bZmmKr",
	EvexVpmovm2wXmmKr: "EvexVpmovm2wXmmKr",
	EvexVpmovm2wYmmKr: "EvexVpmovm2wYmmKr",
	EvexVpmovm2wZmmKr: "EvexVpmovm2wZmmKr",
	EvexVpmovm2dXmmKr: "EvexVpmovm2dXmmKr",
	EvexVpmovm2dYmmKr: "EvexVpmovm2dYmmKr",
	EvexVpmovm2dZmmKr: "EvexVpmovm2dZmmKr",
	EvexVpmovm2qXmmKr: "EvexVpmovm2qXmmKr",
	EvexVpmovm2qYmmKr: "EvexVpmovm2qYmmKr",
	EvexVpmovm2qZmmKr: "EvexVpmovm2qZmmKr",
	EvexVpmovb2mKrXmm: "EvexVpmovb2mKrXmm",
	EvexVpmovb2mKrYmm: "EvexVpmovb2mKrYmm",
	EvexVpmovb2mKrZmm: "EvexVpmovb2mKrZmm",
	EvexVpmovw2mKrXmm: "EvexVpmovw2mKrXmm",
	EvexVpmovw2mKrYmm: "EvexVpmovw2mKrYmm",
	EvexVpmovw2mKrZmm: "EvexVpmovw2mKrZmm",
	EvexVpmovd2mKrXmm: "EvexVpmovd2mKrXmm",
	EvexVpmovd2mKrYmm: "EvexVpmovd2mKrYmm",
	EvexVpmovd2mKrZmm: "EvexVpmovd2mKrZmm",
	EvexVpmovq2mKrXmm: "EvexVpmovq2mKrXmm",
	EvexVpmovq2mKrYmm: "EvexVpmovq2mKrYmm",
	EvexVpmovq2mKrZmm: "EvexVpmovq2mKrZmm",
	EvexVptestmbKrK1XmmXmmm128: "EvexVptestmbKrK1XmmXmmm128",
	EvexVptestmbKrK1YmmYmmm256: "EvexVptestmbKrK1YmmYmmm256",
	EvexVptestmbKrK1ZmmZmmm512: "EvexVptestmbKrK1ZmmZmmm512",
	EvexVptestmwKrK1XmmXmmm128: "EvexVptestmwKrK1XmmXmmm128",
	EvexVptestmwKrK1YmmYmmm256: "EvexVptestmwKrK1YmmYmmm256",
	EvexVptestmwKrK1ZmmZmmm512: "EvexVptestmwKrK1ZmmZmmm512",
	EvexVptestmdKrK1XmmXmmm128B32: "EvexVptestmdKrK1XmmXmmm128B32",
	EvexVptestmdKrK1YmmYmmm256B32: "EvexVptestmdKrK1YmmYmmm256B32",
	EvexVptestmdKrK1ZmmZmmm512B32: "EvexVptestmdKrK1ZmmZmmm512B32",
	EvexVptestmqKrK1XmmXmmm128B64: "EvexVptestmqKrK1XmmXmmm128B64",
	EvexVptestmqKrK1YmmYmmm256B64: "EvexVptestmqKrK1YmmYmmm256B64",
	EvexVptestmqKrK1ZmmZmmm512B64: "EvexVptestmqKrK1ZmmZmmm512B64",
	EvexVptestnmbKrK1XmmXmmm128: "EvexVptestnmbKrK1XmmXmmm128",
	EvexVptestnmbKrK1YmmYmmm256: "EvexVptestnmbKrK1YmmYmmm256",
	EvexVptestnmbKrK1ZmmZmmm512: "EvexVptestnmbKrK1ZmmZmmm512",
	EvexVptestnmwKrK1XmmXmmm128: "EvexVptestnmwKrK1XmmXmmm128",
	EvexVptestnmwKrK1YmmYmmm256: "EvexVptestnmwKrK1YmmYmmm256",
	EvexVptestnmwKrK1ZmmZmmm512: "EvexVptestnmwKrK1ZmmZmmm512",
	EvexVptestnmdKrK1XmmXmmm128B32: "EvexVptestnmdKrK1XmmXmmm128B32",
	EvexVptestnmdKrK1YmmYmmm256B32: "EvexVptestnmdKrK1YmmYmmm256B32",
	EvexVptestnmdKrK1ZmmZmmm512B32: "EvexVptestnmdKrK1ZmmZmmm512B32",
	EvexVptestnmqKrK1XmmXmmm128B64: "EvexVptestnmqKrK1XmmXmmm128B64",
	EvexVptestnmqKrK1YmmYmmm256B64: "EvexVptestnmqKrK1YmmYmmm256B64",
	EvexVptestnmqKrK1ZmmZmmm512B64: "EvexVptestnmqKrK1ZmmZmmm512B64",
	EvexVpblendmbXmmK1zXmmXmmm128: "EvexVpblendmbXmmK1zXmmXmmm128",
	EvexVpblendmbYmmK1zYmmYmmm256: "EvexVpblendmbYmmK1zYmmYmmm256",
	EvexVpblendmbZmmK1zZmmZmmm512: "EvexVpblendmbZmmK1zZmmZmmm512",
	EvexVpblendmwXmmK1zXmmXmmm128: "EvexVpblendmwXmmK1zXmmXmmm128",
	EvexVpblendmwYmmK1zYmmYmmm256: "EvexVpblendmwYmmK1zYmmYmmm256",
	EvexVpblendmwZmmK1zZmmZmmm512: "EvexVpblendmwZmmK1zZmmZmmm512",
	EvexVpconflictdXmmK1zXmmm128B32: "EvexVpconflictdXmmK1zXmmm128B32",
	EvexVpconflictdYmmK1zYmmm256B32: "EvexVpconflictdYmmK1zYmmm256B32",
	EvexVpconflictdZmmK1zZmmm512B32: "EvexVpconflictdZmmK1zZmmm512B32",
	EvexVpconflictqXmmK1zXmmm128B64: "EvexVpconflictqXmmK1zXmmm128B64",
	EvexVpconflictqYmmK1zYmmm256B64: "EvexVpconflictqYmmK1zYmmm256B64",
	EvexVpconflictqZmmK1zZmmm512B64: "EvexVpconflictqZmmK1zZmmm512B64",
	EvexVplzcntdXmmK1zXmmm128B32: "EvexVplzcntdXmmK1zXmmm128B32",
	EvexVplzcntdYmmK1zYmmm256B32: "EvexVplzcntdYmmK1zYmmm256B32",
	EvexVplzcntdZmmK1zZmmm512B32: "EvexVplzcntdZmmK1zZmmm512B32",
	EvexVplzcntqXmmK1zXmmm128B64: "EvexVplzcntqXmmK1zXmmm128B64",
	EvexVplzcntqYmmK1zYmmm256B64: "EvexVplzcntqYmmK1zYmmm256B64",
	EvexVplzcntqZmmK1zZmmm512B64: "EvexVplzcntqZmmK1zZmmm512B64",
	EvexVrcp14psXmmK1zXmmm128B32: "EvexVrcp14psXmmK1zXmmm128B32",
	EvexVrcp14psYmmK1zYmmm256B32: "EvexVrcp14psYmmK1zYmmm256B32",
	EvexVrcp14psZmmK1zZmmm512B32: "EvexVrcp14psZmmK1zZmmm512B32",
	EvexVrcp14pdXmmK1zXmmm128B64: "EvexVrcp14pdXmmK1zXmmm128B64",
	EvexVrcp14pdYmmK1zYmmm256B64: "EvexVrcp14pdYmmK1zYmmm256B64",
	EvexVrcp14pdZmmK1zZmmm512B64: "EvexVrcp14pdZmmK1zZmmm512B64",
	EvexVrsqrt14psXmmK1zXmmm128B32: "EvexVrsqrt14psXmmK1zXmmm128B32",
	EvexVrsqrt14psYmmK1zYmmm256B32: "EvexVrsqrt14psYmmK1zYmmm256B32",
	EvexVrsqrt14psZmmK1zZmmm512B32: "EvexVrsqrt14psZmmK1zZmmm512B32",
	EvexVrsqrt14pdXmmK1zXmmm128B64: "EvexVrsqrt14pdXmmK1zXmmm128B64",
	EvexVrsqrt14pdYmmK1zYmmm256B64: "EvexVrsqrt14pdYmmK1zYmmm256B64",
	EvexVrsqrt14pdZmmK1zZmmm512B64: "EvexVrsqrt14pdZmmK1zZmmm512B64",
	EvexVfmaddsub132psXmmK1zXmmXmmm128B32: "EvexVfmaddsub132psXmmK1zXmmXmmm128B32",
	EvexVfmaddsub132psYmmK1zYmmYmmm256B32: "EvexVfmaddsub132psYmmK1zYmmYmmm256B32",
	EvexVfmaddsub132psZmmK1zZmmZmmm512B32Er: "EvexVfmaddsub132psZmmK1zZmmZmmm512B32Er",
	EvexVfmaddsub132pdXmmK1zXmmXmmm128B64: "EvexVfmaddsub132pdXmmK1zXmmXmmm128B64",
	EvexVfmaddsub132pdYmmK1zYmmYmmm256B64: "EvexVfmaddsub132pdYmmK1zYmmYmmm256B64",
	EvexVfmaddsub132pdZmmK1zZmmZmmm512B64Er: "EvexVfmaddsub132pdZmmK1zZmmZmmm512B64Er",
	EvexVfmsubadd132psXmmK1zXmmXmmm128B32: "EvexVfmsubadd132psXmmK1zXmmXmmm128B32",
	EvexVfmsubadd132psYmmK1zYmmYmmm256B32: "EvexVfmsubadd132psYmmK1zYmmYmmm256B32",
	EvexVfmsubadd132psZmmK1zZmmZmmm512B32Er: "EvexVfmsubadd132psZmmK1zZmmZmmm512B32Er",
	EvexVfmsubadd132pdXmmK1zXmmXmmm128B64: "EvexVfmsubadd132pdXmmK1zXmmXmmm128B64",
	EvexVfmsubadd132pdYmmK1zYmmYmmm256B64: "EvexVfmsubadd132pdYmmK1zYmmYmmm256B64",
	EvexVfmsubadd132pdZmmK1zZmmZmmm512B64Er: "EvexVfmsubadd132pdZmmK1zZmmZmmm512B64Er",
	EvexVfmsub132psXmmK1zXmmXmmm128B32: "EvexVfmsub132psXmmK1zXmmXmmm128B32",
	EvexVfmsub132psYmmK1zYmmYmmm256B32: "EvexVfmsub132psYmmK1zYmmYmmm256B32",
	EvexVfmsub132psZmmK1zZmmZmmm512B32Er: "EvexVfmsub132psZmmK1zZmmZmmm512B32Er",
	EvexVfmsub132pdXmmK1zXmmXmmm128B64: "EvexVfmsub132pdXmmK1zXmmXmmm128B64",
	EvexVfmsub132pdYmmK1zYmmYmmm256B64: "EvexVfmsub132pdYmmK1zYmmYmmm256B64",
	EvexVfmsub132pdZmmK1zZmmZmmm512B64Er: "EvexVfmsub132pdZmmK1zZmmZmmm512B64Er",
	EvexVfmsub132ssXmmK1zXmmXmmm32Er: "EvexVfmsub132ssXmmK1zXmmXmmm32Er",
	EvexVfmsub132sdXmmK1zXmmXmmm64Er: "EvexVfmsub132sdXmmK1zXmmXmmm64Er",
	EvexVfnmadd132psXmmK1zXmmXmmm128B32: "EvexVfnmadd132psXmmK1zXmmXmmm128B32",
	EvexVfnmadd132psYmmK1zYmmYmmm256B32: "EvexVfnmadd132psYmmK1zYmmYmmm256B32",
	EvexVfnmadd132psZmmK1zZmmZmmm512B32Er: "EvexVfnmadd132psZmmK1zZmmZmmm512B32Er",
	EvexVfnmadd132pdXmmK1zXmmXmmm128B64: "EvexVfnmadd132pdXmmK1zXmmXmmm128B64",
	EvexVfnmadd132pdYmmK1zYmmYmmm256B64: "EvexVfnmadd132pdYmmK1zYmmYmmm256B64",
	EvexVfnmadd132pdZmmK1zZmmZmmm512B64Er: "EvexVfnmadd132pdZmmK1zZmmZmmm512B64Er",
	EvexVfnmadd132ssXmmK1zXmmXmmm32Er: "EvexVfnmadd132ssXmmK1zXmmXmmm32Er",
	EvexVfnmadd132sdXmmK1zXmmXmmm64Er: "EvexVfnmadd132sdXmmK1zXmmXmmm64Er",
	EvexVfnmsub132psXmmK1zXmmXmmm128B32: "EvexVfnmsub132psXmmK1zXmmXmmm128B32",
	EvexVfnmsub132psYmmK1zYmmYmmm256B32: "EvexVfnmsub132psYmmK1zYmmYmmm256B32",
	EvexVfnmsub132psZmmK1zZmmZmmm512B32Er: "EvexVfnmsub132psZmmK1zZmmZmmm512B32Er",
	EvexVfnmsub132pdXmmK1zXmmXmmm128B64: "EvexVfnmsub132pdXmmK1zXmmXmmm128B64",
	EvexVfnmsub132pdYmmK1zYmmYmmm256B64: "EvexVfnmsub132pdYmmK1zYmmYmmm256B64",
	EvexVfnmsub132pdZmmK1zZmmZmmm512B64Er: "EvexVfnmsub132pdZmmK1zZmmZmmm512B64Er",
	EvexVfnmsub132ssXmmK1zXmmXmmm32Er: "EvexVfnmsub132ssXmmK1zXmmXmmm32Er",
	EvexVfnmsub132sdXmmK1zXmmXmmm64Er: "EvexVfnmsub132sdXmmK1zXmmXmmm64Er",
	EvexVfmaddsub213psXmmK1zXmmXmmm128B32: "EvexVfmaddsub213psXmmK1zXmmXmmm128B32",
	EvexVfmaddsub213psYmmK1zYmmYmmm256B32: "EvexVfmaddsub213psYmmK1zYmmYmmm256B32",
	EvexVfmaddsub213psZmmK1zZmmZmmm512B32Er: "EvexVfmaddsub213psZmmK1zZmmZmmm512B32Er",
	EvexVfmaddsub213pdXmmK1zXmmXmmm128B64: "EvexVfmaddsub213pdXmmK1zXmmXmmm128B64",
	EvexVfmaddsub213pdYmmK1zYmmYmmm256B64: "EvexVfmaddsub213pdYmmK1zYmmYmmm256B64",
	EvexVfmaddsub213pdZmmK1zZmmZmmm512B64Er: "EvexVfmaddsub213pdZmmK1zZmmZmmm512B64Er",
	EvexVfmsubadd213psXmmK1zXmmXmmm128B32: "EvexVfmsubadd213psXmmK1zXmmXmmm128B32",
	EvexVfmsubadd213psYmmK1zYmmYmmm256B32: "EvexVfmsubadd213psYmmK1zYmmYmmm256B32",
	EvexVfmsubadd213psZmmK1zZmmZmmm512B32Er: "EvexVfmsubadd213psZmmK1zZmmZmmm512B32Er",
	EvexVfmsubadd213pdXmmK1zXmmXmmm128B64: "EvexVfmsubadd213pdXmmK1zXmmXmmm128B64",
	EvexVfmsubadd213pdYmmK1zYmmYmmm256B64: "EvexVfmsubadd213pdYmmK1zYmmYmmm256B64",
	EvexVfmsubadd213pdZmmK1zZmmZmmm512B64Er: "EvexVfmsubadd213pdZmmK1zZmmZmmm512B64Er",
	EvexVfmsub213psXmmK1zXmmXmmm128B32: "EvexVfmsub213psXmmK1zXmmXmmm128B32",
	EvexVfmsub213psYmmK1zYmmYmmm256B32: "EvexVfmsub213psYmmK1zYmmYmmm256B32",
	EvexVfmsub213psZmmK1zZmmZmmm512B32Er: "EvexVfmsub213psZmmK1zZmmZmmm512B32Er",
	EvexVfmsub213pdXmmK1zXmmXmmm128B64: "EvexVfmsub213pdXmmK1zXmmXmmm128B64",
	EvexVfmsub213pdYmmK1zYmmYmmm256B64: "EvexVfmsub213pdYmmK1zYmmYmmm256B64",
	EvexVfmsub213pdZmmK1zZmmZmmm512B64Er: "EvexVfmsub213pdZmmK1zZmmZmmm512B64Er",
	EvexVfmsub213ssXmmK1zXmmXmmm32Er: "EvexVfmsub213ssXmmK1zXmmXmmm32Er",
	EvexVfmsub213sdXmmK1zXmmXmmm64Er: "EvexVfmsub213sdXmmK1zXmmXmmm64Er",
	EvexVfnmadd213psXmmK1zXmmXmmm128B32: "EvexVfnmadd213psXmmK1zXmmXmmm128B32",
	EvexVfnmadd213psYmmK1zYmmYmmm256B32: "EvexVfnmadd213psYmmK1zYmmYmmm256B32",
	EvexVfnmadd213psZmmK1zZmmZmmm512B32Er: "EvexVfnmadd213psZmmK1zZmmZmmm512B32Er",
	EvexVfnmadd213pdXmmK1zXmmXmmm128B64: "EvexVfnmadd213pdXmmK1zXmmXmmm128B64",
	EvexVfnmadd213pdYmmK1zYmmYmmm256B64: "EvexVfnmadd213pdYmmK1zYmmYmmm256B64",
	EvexVfnmadd213pdZmmK1zZmmZmmm512B64Er: "EvexVfnmadd213pdZmmK1zZmmZmmm512B64Er",
	EvexVfnmadd213ssXmmK1zXmmXmmm32Er: "EvexVfnmadd213ssXmmK1zXmmXmmm32Er",
	EvexVfnmadd213sdXmmK1zXmmXmmm64Er: "EvexVfnmadd213sdXmmK1zXmmXmmm64Er",
	EvexVfnmsub213psXmmK1zXmmXmmm128B32: "EvexVfnmsub213psXmmK1zXmmXmmm128B32",
	EvexVfnmsub213psYmmK1zYmmYmmm256B32: "EvexVfnmsub213psYmmK1zYmmYmmm256B32",
	EvexVfnmsub213psZmmK1zZmmZmmm512B32Er: "EvexVfnmsub213psZmmK1zZmmZmmm512B32Er",
	EvexVfnmsub213pdXmmK1zXmmXmmm128B64: "EvexVfnmsub213pdXmmK1zXmmXmmm128B64",
	EvexVfnmsub213pdYmmK1zYmmYmmm256B64: "EvexVfnmsub213pdYmmK1zYmmYmmm256B64",
	EvexVfnmsub213pdZmmK1zZmmZmmm512B64Er: "EvexVfnmsub213pdZmmK1zZmmZmmm512B64Er",
	EvexVfnmsub213ssXmmK1zXmmXmmm32Er: "EvexVfnmsub213ssXmmK1zXmmXmmm32Er",
	EvexVfnmsub213sdXmmK1zXmmXmmm64Er: "EvexVfnmsub213sdXmmK1zXmmXmmm64Er",
	EvexVfmaddsub231psXmmK1zXmmXmmm128B32: "EvexVfmaddsub231psXmmK1zXmmXmmm128B32",
	EvexVfmaddsub231psYmmK1zYmmYmmm256B32: "EvexVfmaddsub231psYmmK1zYmmYmmm256B32",
	EvexVfmaddsub231psZmmK1zZmmZmmm512B32Er: "EvexVfmaddsub231psZmmK1zZmmZmmm512B32Er",
	EvexVfmaddsub231pdXmmK1zXmmXmmm128B64: "EvexVfmaddsub231pdXmmK1zXmmXmmm128B64",
	EvexVfmaddsub231pdYmmK1zYmmYmmm256B64: "EvexVfmaddsub231pdYmmK1zYmmYmmm256B64",
	EvexVfmaddsub231pdZmmK1zZmmZmmm512B64Er: "EvexVfmaddsub231pdZmmK1zZmmZmmm512B64Er",
	EvexVfmsubadd231psXmmK1zXmmXmmm128B32: "EvexVfmsubadd231psXmmK1zXmmXmmm128B32",
	EvexVfmsubadd231psYmmK1zYmmYmmm256B32: "EvexVfmsubadd231psYmmK1zYmmYmmm256B32",
	EvexVfmsubadd231psZmmK1zZmmZmmm512B32Er: "EvexVfmsubadd231psZmmK1zZmmZmmm512B32Er",
	EvexVfmsubadd231pdXmmK1zXmmXmmm128B64: "EvexVfmsubadd231pdXmmK1zXmmXmmm128B64",
	EvexVfmsubadd231pdYmmK1zYmmYmmm256B64: "EvexVfmsubadd231pdYmmK1zYmmYmmm256B64",
	EvexVfmsubadd231pdZmmK1zZmmZmmm512B64Er: "EvexVfmsubadd231pdZmmK1zZmmZmmm512B64Er",
	EvexVfmsub231psXmmK1zXmmXmmm128B32: "EvexVfmsub231psXmmK1zXmmXmmm128B32",
	EvexVfmsub231psYmmK1zYmmYmmm256B32: "EvexVfmsub231psYmmK1zYmmYmmm256B32",
	EvexVfmsub231psZmmK1zZmmZmmm512B32Er: "EvexVfmsub231psZmmK1zZmmZmmm512B32Er",
	EvexVfmsub231pdXmmK1zXmmXmmm128B64: "EvexVfmsub231pdXmmK1zXmmXmmm128B64",
	EvexVfmsub231pdYmmK1zYmmYmmm256B64: "EvexVfmsub231pdYmmK1zYmmYmmm256B64",
	EvexVfmsub231pdZmmK1zZmmZmmm512B64Er: "EvexVfmsub231pdZmmK1zZmmZmmm512B64Er",
	EvexVfmsub231ssXmmK1zXmmXmmm32Er: "EvexVfmsub231ssXmmK1zXmmXmmm32Er",
	EvexVfmsub231sdXmmK1zXmmXmmm64Er: "EvexVfmsub231sdXmmK1zXmmXmmm64Er",
	EvexVfnmadd231psXmmK1zXmmXmmm128B32: "EvexVfnmadd231psXmmK1zXmmXmmm128B32",
	EvexVfnmadd231psYmmK1zYmmYmmm256B32: "EvexVfnmadd231psYmmK1zYmmYmmm256B32",
	EvexVfnmadd231psZmmK1zZmmZmmm512B32Er: "EvexVfnmadd231psZmmK1zZmmZmmm512B32Er",
	EvexVfnmadd231pdXmmK1zXmmXmmm128B64: "EvexVfnmadd231pdXmmK1zXmmXmmm128B64",
	EvexVfnmadd231pdYmmK1zYmmYmmm256B64: "EvexVfnmadd231pdYmmK1zYmmYmmm256B64",
	EvexVfnmadd231pdZmmK1zZmmZmmm512B64Er: "EvexVfnmadd231pdZmmK1zZmmZmmm512B64Er",
	EvexVfnmadd231ssXmmK1zXmmXmmm32Er: "EvexVfnmadd231ssXmmK1zXmmXmmm32Er",
	EvexVfnmadd231sdXmmK1zXmmXmmm64Er: "EvexVfnmadd231sdXmmK1zXmmXmmm64Er",
	EvexVfnmsub231psXmmK1zXmmXmmm128B32: "EvexVfnmsub231psXmmK1zXmmXmmm128B32",
	EvexVfnmsub231psYmmK1zYmmYmmm256B32: "EvexVfnmsub231psYmmK1zYmmYmmm256B32",
	EvexVfnmsub231psZmmK1zZmmZmmm512B32Er: "EvexVfnmsub231psZmmK1zZmmZmmm512B32Er",
	EvexVfnmsub231pdXmmK1zXmmXmmm128B64: "EvexVfnmsub231pdXmmK1zXmmXmmm128B64",
	EvexVfnmsub231pdYmmK1zYmmYmmm256B64: "EvexVfnmsub231pdYmmK1zYmmYmmm256B64",
	EvexVfnmsub231pdZmmK1zZmmZmmm512B64Er: "EvexVfnmsub231pdZmmK1zZmmZmmm512B64Er",
	EvexVfnmsub231ssXmmK1zXmmXmmm32Er: "EvexVfnmsub231ssXmmK1zXmmXmmm32Er",
	EvexVfnmsub231sdXmmK1zXmmXmmm64Er: "EvexVfnmsub231sdXmmK1zXmmXmmm64Er",
	EvexVpgatherddXmmK1Vm32x: "EvexVpgatherddXmmK1Vm32x",
	EvexVpgatherddYmmK1Vm32y: "EvexVpgatherddYmmK1Vm32y",
	EvexVpgatherddZmmK1Vm32z: "EvexVpgatherddZmmK1Vm32z",
	EvexVpgatherdqXmmK1Vm32x: "EvexVpgatherdqXmmK1Vm32x",
	EvexVpgatherdqYmmK1Vm32x: "EvexVpgatherdqYmmK1Vm32x",
	EvexVpgatherdqZmmK1Vm32y: "EvexVpgatherdqZmmK1Vm32y",
	EvexVpgatherqdXmmK1Vm64x: "EvexVpgatherqdXmmK1Vm64x",
	EvexVpgatherqdXmmK1Vm64y: "EvexVpgatherqdXmmK1Vm64y",
	EvexVpgatherqdYmmK1Vm64z: "EvexVpgatherqdYmmK1Vm64z",
	EvexVpgatherqqXmmK1Vm64x: "EvexVpgatherqqXmmK1Vm64x",
	EvexVpgatherqqYmmK1Vm64y: "EvexVpgatherqqYmmK1Vm64y",
	EvexVpgatherqqZmmK1Vm64z: "EvexVpgatherqqZmmK1Vm64z",
	EvexVgatherdpsXmmK1Vm32x: "EvexVgatherdpsXmmK1Vm32x",
	EvexVgatherdpsYmmK1Vm32y: "EvexVgatherdpsYmmK1Vm32y",
	EvexVgatherdpsZmmK1Vm32z: "EvexVgatherdpsZmmK1Vm32z",
	EvexVgatherdpdXmmK1Vm32x: "EvexVgatherdpdXmmK1Vm32x",
	EvexVgatherdpdYmmK1Vm32x: "EvexVgatherdpdYmmK1Vm32x",
	EvexVgatherdpdZmmK1Vm32y: "EvexVgatherdpdZmmK1Vm32y",
	EvexVgatherqpsXmmK1Vm64x: "EvexVgatherqpsXmmK1Vm64x",
	EvexVgatherqpsXmmK1Vm64y: "EvexVgatherqpsXmmK1Vm64y",
	EvexVgatherqpsYmmK1Vm64z: "EvexVgatherqpsYmmK1Vm64z",
	EvexVgatherqpdXmmK1Vm64x: "EvexVgatherqpdXmmK1Vm64x",
	EvexVgatherqpdYmmK1Vm64y: "EvexVgatherqpdYmmK1Vm64y",
	EvexVgatherqpdZmmK1Vm64z: "EvexVgatherqpdZmmK1Vm64z",
	EvexVpscatterddVm32xK1Xmm: "EvexVpscatterddVm32xK1Xmm",
	EvexVpscatterddVm32yK1Ymm: "EvexVpscatterddVm32yK1Ymm",
	EvexVpscatterddVm32zK1Zmm: "EvexVpscatterddVm32zK1Zmm",
	EvexVpscatterdqVm32xK1Xmm: "EvexVpscatterdqVm32xK1Xmm",
	EvexVpscatterdqVm32xK1Ymm: "EvexVpscatterdqVm32xK1Ymm",
	EvexVpscatterdqVm32yK1Zmm: "EvexVpscatterdqVm32yK1Zmm",
	EvexVpscatterqdVm64xK1Xmm: "EvexVpscatterqdVm64xK1Xmm",
	EvexVpscatterqdVm64yK1Xmm: "EvexVpscatterqdVm64yK1Xmm",
	EvexVpscatterqdVm64zK1Ymm: "EvexVpscatterqdVm64zK1Ymm",
	EvexVpscatterqqVm64xK1Xmm: "EvexVpscatterqqVm64xK1Xmm",
	EvexVpscatterqqVm64yK1Ymm: "EvexVpscatterqqVm64yK1Ymm",
	EvexVpscatterqqVm64zK1Zmm: "EvexVpscatterqqVm64zK1Zmm",
	EvexVscatterdpsVm32xK1Xmm: "EvexVscatterdpsVm32xK1Xmm",
	EvexVscatterdpsVm32yK1Ymm: "EvexVscatterdpsVm32yK1Ymm",
	EvexVscatterdpsVm32zK1Zmm: "EvexVscatterdpsVm32zK1Zmm",
	EvexVscatterdpdVm32xK1Xmm: "EvexVscatterdpdVm32xK1Xmm",
	EvexVscatterdpdVm32xK1Ymm: "EvexVscatterdpdVm32xK1Ymm",
	EvexVscatterdpdVm32yK1Zmm: "EvexVscatterdpdVm32yK1Zmm",
	EvexVscatterqpsVm64xK1Xmm: "EvexVscatterqpsVm64xK1Xmm",
	EvexVscatterqpsVm64yK1Xmm: "EvexVscatterqpsVm64yK1Xmm",
	EvexVscatterqpsVm64zK1Ymm: "EvexVscatterqpsVm64zK1Ymm",
	EvexVscatterqpdVm64xK1Xmm: "EvexVscatterqpdVm64xK1Xmm",
	EvexVscatterqpdVm64yK1Ymm: "EvexVscatterqpdVm64yK1Ymm",
	EvexVscatterqpdVm64zK1Zmm: "EvexVscatterqpdVm64zK1Zmm",
	EvexVpermqYmmK1zYmmm256B64Imm8: "EvexVpermqYmmK1zYmmm256B64Imm8",
	EvexVpermqZmmK1zZmmm512B64Imm8: "EvexVpermqZmmK1zZmmm512B64Imm8",
	EvexVpermpdYmmK1zYmmm256B64Imm8: "EvexVpermpdYmmK1zYmmm256B64Imm8",
	EvexVpermpdZmmK1zZmmm512B64Imm8: "EvexVpermpdZmmK1zZmmm512B64Imm8",
	EvexVpermilpsXmmK1zXmmm128B32Imm8: "EvexVpermilpsXmmK1zXmmm128B32Imm8",
	EvexVpermilpsYmmK1zYmmm256B32Imm8: "EvexVpermilpsYmmK1zYmmm256B32Imm8",
	EvexVpermilpsZmmK1zZmmm512B32Imm8: "EvexVpermilpsZmmK1zZmmm512B32Imm8",
	EvexVpermilpdXmmK1zXmmm128B64Imm8: "EvexVpermilpdXmmK1zXmmm128B64Imm8",
	EvexVpermilpdYmmK1zYmmm256B64Imm8: "EvexVpermilpdYmmK1zYmmm256B64Imm8",
	EvexVpermilpdZmmK1zZmmm512B64Imm8: "EvexVpermilpdZmmK1zZmmm512B64Imm8",
	EvexVpalignrXmmK1zXmmXmmm128Imm8: "EvexVpalignrXmmK1zXmmXmmm128Imm8",
	EvexVpalignrYmmK1zYmmYmmm256Imm8: "EvexVpalignrYmmK1zYmmYmmm256Imm8",
	EvexVpalignrZmmK1zZmmZmmm512Imm8: "EvexVpalignrZmmK1zZmmZmmm512Imm8",
	EvexVpextrbR32m8XmmImm8: "EvexVpextrbR32m8XmmImm8",
	EvexVpextrbR64m8XmmImm8: "EvexVpextrbR64m8XmmImm8",
	EvexVpextrwR32m16XmmImm8: "EvexVpextrwR32m16XmmImm8",
	EvexVpextrwR64m16XmmImm8: "EvexVpextrwR64m16XmmImm8",
	EvexVpextrdRm32XmmImm8: "EvexVpextrdRm32XmmImm8",
	EvexVpextrqRm64XmmImm8: "EvexVpextrqRm64XmmImm8",
	EvexVextractpsRm32XmmImm8: "EvexVextractpsRm32XmmImm8",
	EvexVpinsrbXmmXmmR32m8Imm8: "EvexVpinsrbXmmXmmR32m8Imm8",
	EvexVpinsrbXmmXmmR64m8Imm8: "EvexVpinsrbXmmXmmR64m8Imm8",
	EvexVinsertpsXmmXmmXmmm32Imm8: "EvexVinsertpsXmmXmmXmmm32Imm8",
	EvexVpinsrdXmmXmmRm32Imm8: "EvexVpinsrdXmmXmmRm32Imm8",
	EvexVpinsrqXmmXmmRm64Imm8: "EvexVpinsrqXmmXmmRm64Imm8",
	EvexVinsertf32x4YmmK1zYmmXmmm128Imm8: "EvexVinsertf32x4YmmK1zYmmXmmm128Imm8",
	EvexVinsertf32x4ZmmK1zZmmXmmm128Imm8: "EvexVinsertf32x4ZmmK1zZmmXmmm128Imm8",
	EvexVinsertf64x2YmmK1zYmmXmmm128Imm8: "EvexVinsertf64x2YmmK1zYmmXmmm128Imm8",
	EvexVinsertf64x2ZmmK1zZmmXmmm128Imm8: "EvexVinsertf64x2ZmmK1zZmmXmmm128Imm8",
	EvexVinserti32x4YmmK1zYmmXmmm128Imm8: "EvexVinserti32x4YmmK1zYmmXmmm128Imm8",
	EvexVinserti32x4ZmmK1zZmmXmmm128Imm8: "EvexVinserti32x4ZmmK1zZmmXmmm128Imm8",
	EvexVinserti64x2YmmK1zYmmXmmm128Imm8: "EvexVinserti64x2YmmK1zYmmXmmm128Imm8",
	EvexVinserti64x2ZmmK1zZmmXmmm128Imm8: "EvexVinserti64x2ZmmK1zZmmXmmm128Imm8",
	EvexVextractf32x4Xmmm128K1zYmmImm8: "EvexVextractf32x4Xmmm128K1zYmmImm8",
	EvexVextractf32x4Xmmm128K1zZmmImm8: "EvexVextractf32x4Xmmm128K1zZmmImm8",
	EvexVextractf64x2Xmmm128K1zYmmImm8: "EvexVextractf64x2Xmmm128K1zYmmImm8",
	EvexVextractf64x2Xmmm128K1zZmmImm8: "EvexVextractf64x2Xmmm128K1zZmmImm8",
	EvexVextracti32x4Xmmm128K1zYmmImm8: "EvexVextracti32x4Xmmm128K1zYmmImm8",
	EvexVextracti32x4Xmmm128K1zZmmImm8: "EvexVextracti32x4Xmmm128K1zZmmImm8",
	EvexVextracti64x2Xmmm128K1zYmmImm8: "EvexVextracti64x2Xmmm128K1zYmmImm8",
	EvexVextracti64x2Xmmm128K1zZmmImm8: "EvexVextracti64x2Xmmm128K1zZmmImm8",
	EvexVinsertf32x8ZmmK1zZmmYmmm256Imm8: "EvexVinsertf32x8ZmmK1zZmmYmmm256Imm8",
	EvexVinsertf64x4ZmmK1zZmmYmmm256Imm8: "EvexVinsertf64x4ZmmK1zZmmYmmm256Imm8",
	EvexVinserti32x8ZmmK1zZmmYmmm256Imm8: "EvexVinserti32x8ZmmK1zZmmYmmm256Imm8",
	EvexVinserti64x4ZmmK1zZmmYmmm256Imm8: "EvexVinserti64x4ZmmK1zZmmYmmm256Imm8",
	EvexVextractf32x8Ymmm256K1zZmmImm8: "EvexVextractf32x8Ymmm256K1zZmmImm8",
	EvexVextractf64x4Ymmm256K1zZmmImm8: "EvexVextractf64x4Ymmm256K1zZmmImm8",
	EvexVextracti32x8Ymmm256K1zZmmImm8: "EvexVextracti32x8Ymmm256K1zZmmImm8",
	EvexVextracti64x4Ymmm256K1zZmmImm8: "EvexVextracti64x4Ymmm256K1zZmmImm8",
	EvexVcvtps2phXmmm64K1zXmmImm8: "EvexVcvtps2phXmmm64K1zXmmImm8",
	EvexVcvtps2phXmmm128K1zYmmImm8: "EvexVcvtps2phXmmm128K1zYmmImm8",
	EvexVcvtps2phYmmm256K1zZmmImm8Sae: "EvexVcvtps2phYmmm256K1zZmmImm8Sae",
	EvexVshuff32x4YmmK1zYmmYmmm256B32Imm8: "EvexVshuff32x4YmmK1zYmmYmmm256B32Imm8",
	EvexVshuff32x4ZmmK1zZmmZmmm512B32Imm8: "EvexVshuff32x4ZmmK1zZmmZmmm512B32Imm8",
	EvexVshuff64x2YmmK1zYmmYmmm256B64Imm8: "EvexVshuff64x2YmmK1zYmmYmmm256B64Imm8",
	EvexVshuff64x2ZmmK1zZmmZmmm512B64Imm8: "EvexVshuff64x2ZmmK1zZmmZmmm512B64Imm8",
	EvexVshufi32x4YmmK1zYmmYmmm256B32Imm8: "EvexVshufi32x4YmmK1zYmmYmmm256B32Imm8",
	EvexVshufi32x4ZmmK1zZmmZmmm512B32Imm8: "EvexVshufi32x4ZmmK1zZmmZmmm512B32Imm8",
	EvexVshufi64x2YmmK1zYmmYmmm256B64Imm8: "EvexVshufi64x2YmmK1zYmmYmmm256B64Imm8",
	EvexVshufi64x2ZmmK1zZmmZmmm512B64Imm8: "EvexVshufi64x2ZmmK1zZmmZmmm512B64Imm8",
	EvexVpternlogdXmmK1zXmmXmmm128B32Imm8: "EvexVpternlogdXmmK1zXmmXmmm128B32Imm8",
	EvexVpternlogdYmmK1zYmmYmmm256B32Imm8: "EvexVpternlogdYmmK1zYmmYmmm256B32Imm8",
	EvexVpternlogdZmmK1zZmmZmmm512B32Imm8: "EvexVpternlogdZmmK1zZmmZmmm512B32Imm8",
	EvexVpternlogqXmmK1zXmmXmmm128B64Imm8: "EvexVpternlogqXmmK1zXmmXmmm128B64Imm8",
	EvexVpternlogqYmmK1zYmmYmmm256B64Imm8: "EvexVpternlogqYmmK1zYmmYmmm256B64Imm8",
	EvexVpternlogqZmmK1zZmmZmmm512B64Imm8: "EvexVpternlogqZmmK1zZmmZmmm512B64Imm8",
	EvexVpcmpubKrK1XmmXmmm128Imm8: "EvexVpcmpubKrK1XmmXmmm128Imm8",
	EvexVpcmpubKrK1YmmYmmm256Imm8: "EvexVpcmpubKrK1YmmYmmm256Imm8",
	EvexVpcmpubKrK1ZmmZmmm512Imm8: "EvexVpcmpubKrK1ZmmZmmm512Imm8",
	EvexVpcmpuwKrK1XmmXmmm128Imm8: "EvexVpcmpuwKrK1XmmXmmm128Imm8",
	EvexVpcmpuwKrK1YmmYmmm256Imm8: "EvexVpcmpuwKrK1YmmYmmm256Imm8",
	EvexVpcmpuwKrK1ZmmZmmm512Imm8: "EvexVpcmpuwKrK1ZmmZmmm512Imm8",
	EvexVpcmpbKrK1XmmXmmm128Imm8: "EvexVpcmpbKrK1XmmXmmm128Imm8",
	EvexVpcmpbKrK1YmmYmmm256Imm8: "EvexVpcmpbKrK1YmmYmmm256Imm8",
	EvexVpcmpbKrK1ZmmZmmm512Imm8: "EvexVpcmpbKrK1ZmmZmmm512Imm8",
	EvexVpcmpwKrK1XmmXmmm128Imm8: "EvexVpcmpwKrK1XmmXmmm128Imm8",
	EvexVpcmpwKrK1YmmYmmm256Imm8: "EvexVpcmpwKrK1YmmYmmm256Imm8",
	EvexVpcmpwKrK1ZmmZmmm512Imm8: "EvexVpcmpwKrK1ZmmZmmm512Imm8",
	EvexVdbpsadbwXmmK1zXmmXmmm128Imm8: "EvexVdbpsadbwXmmK1zXmmXmmm128Imm8",
	EvexVdbpsadbwYmmK1zYmmYmmm256Imm8: "EvexVdbpsadbwYmmK1zYmmYmmm256Imm8",
	EvexVdbpsadbwZmmK1zZmmZmmm512Imm8: "EvexVdbpsadbwZmmK1zZmmZmmm512Imm8",
	EvexVpclmulqdqXmmXmmXmmm128Imm8: "EvexVpclmulqdqXmmXmmXmmm128Imm8",
	EvexVpclmulqdqYmmYmmYmmm256Imm8: "EvexVpclmulqdqYmmYmmYmmm256Imm8",
	EvexVpclmulqdqZmmZmmZmmm512Imm8: "EvexVpclmulqdqZmmZmmZmmm512Imm8",
	XopVpcmovXmmXmmXmmm128Xmm: "XopVpcmovXmmXmmXmmm128Xmm",
	XopVpcmovYmmYmmYmmm256Ymm: "XopVpcmovYmmYmmYmmm256Ymm",
	XopVppermXmmXmmXmmm128Xmm: "XopVppermXmmXmmXmmm128Xmm",
	XopVprotbXmmXmmm128Imm8: "XopVprotbXmmXmmm128Imm8",
	XopVprotdXmmXmmm128Imm8: "XopVprotdXmmXmmm128Imm8",
	XopVpcombXmmXmmXmmm128Imm8: "XopVpcombXmmXmmXmmm128Imm8",
	XopBlcfillR32Rm32: "XopBlcfillR32Rm32",
	XopBlcfillR64Rm64: "XopBlcfillR64Rm64",
	XopBlsfillR32Rm32: "XopBlsfillR32Rm32",
	XopBlsfillR64Rm64: "XopBlsfillR64Rm64",
	XopBlcsR32Rm32: "XopBlcsR32Rm32",
	XopBlcsR64Rm64: "XopBlcsR64Rm64",
	XopTzmskR32Rm32: "XopTzmskR32Rm32",
	XopTzmskR64Rm64: "XopTzmskR64Rm64",
	XopBlcicR32Rm32: "XopBlcicR32Rm32",
	XopBlcicR64Rm64: "XopBlcicR64Rm64",
	XopBlsicR32Rm32: "XopBlsicR32Rm32",
	XopBlsicR64Rm64: "XopBlsicR64Rm64",
	XopT1mskcR32Rm32: "XopT1mskcR32Rm32",
	XopT1mskcR64Rm64: "XopT1mskcR64Rm64",
	XopBlcmskR32Rm32: "XopBlcmskR32Rm32",
	XopBlcmskR64Rm64: "XopBlcmskR64Rm64",
	XopBlciR32Rm32: "XopBlciR32Rm32",
	XopBlciR64Rm64: "XopBlciR64Rm64",
	XopVfrczpsXmmXmmm128: "XopVfrczpsXmmXmmm128",
	XopVfrczpsYmmYmmm256: "XopVfrczpsYmmYmmm256",
	XopVfrczpdXmmXmmm128: "XopVfrczpdXmmXmmm128",
	XopVfrczpdYmmYmmm256: "XopVfrczpdYmmYmmm256",
	XopVprotbXmmXmmm128Xmm: "XopVprotbXmmXmmm128Xmm",
	XopVprotdXmmXmmm128Xmm: "XopVprotdXmmXmmm128Xmm",
	XopBextrR32Rm32Imm32: "XopBextrR32Rm32Imm32",
	XopBextrR64Rm64Imm32: "XopBextrR64Rm64Imm32",
	XopLwpinsR32Rm32Imm32: "XopLwpinsR32Rm32Imm32",
	XopLwpinsR64Rm32Imm32: "XopLwpinsR64Rm32Imm32",
	XopLwpvalR32Rm32Imm32: "XopLwpvalR32Rm32Imm32",
	XopLwpvalR64Rm32Imm32: "XopLwpvalR64Rm32Imm32",
}

var codeMnemonics = [NumCodes]mnemonics.Mnemonic{
	Invalid: mnemonics.Invalid,
	AddRm8R8: mnemonics.Add,
	AddRm16R16: mnemonics.Add,
	AddRm32R32: mnemonics.Add,
	AddRm64R64: mnemonics.Add,
	AddR8Rm8: mnemonics.Add,
	AddR16Rm16: mnemonics.Add,
	AddR32Rm32: mnemonics.Add,
	AddR64Rm64: mnemonics.Add,
	AddALImm8: mnemonics.Add,
	AddAXImm16: mnemonics.Add,
	AddEAXImm32: mnemonics.Add,
	AddRAXImm32: mnemonics.Add,
	OrRm8R8: mnemonics.Or,
	OrRm16R16: mnemonics.Or,
	OrRm32R32: mnemonics.Or,
	OrRm64R64: mnemonics.Or,
	OrR8Rm8: mnemonics.Or,
	OrR16Rm16: mnemonics.Or,
	OrR32Rm32: mnemonics.Or,
	OrR64Rm64: mnemonics.Or,
	OrALImm8: mnemonics.Or,
	OrAXImm16: mnemonics.Or,
	OrEAXImm32: mnemonics.Or,
	OrRAXImm32: mnemonics.Or,
	AdcRm8R8: mnemonics.Adc,
	AdcRm16R16: mnemonics.Adc,
	AdcRm32R32: mnemonics.Adc,
	AdcRm64R64: mnemonics.Adc,
	AdcR8Rm8: mnemonics.Adc,
	AdcR16Rm16: mnemonics.Adc,
	AdcR32Rm32: mnemonics.Adc,
	AdcR64Rm64: mnemonics.Adc,
	AdcALImm8: mnemonics.Adc,
	AdcAXImm16: mnemonics.Adc,
	AdcEAXImm32: mnemonics.Adc,
	AdcRAXImm32: mnemonics.Adc,
	SbbRm8R8: mnemonics.Sbb,
	SbbRm16R16: mnemonics.Sbb,
	SbbRm32R32: mnemonics.Sbb,
	SbbRm64R64: mnemonics.Sbb,
	SbbR8Rm8: mnemonics.Sbb,
	SbbR16Rm16: mnemonics.Sbb,
	SbbR32Rm32: mnemonics.Sbb,
	SbbR64Rm64: mnemonics.Sbb,
	SbbALImm8: mnemonics.Sbb,
	SbbAXImm16: mnemonics.Sbb,
	SbbEAXImm32: mnemonics.Sbb,
	SbbRAXImm32: mnemonics.Sbb,
	AndRm8R8: mnemonics.And,
	AndRm16R16: mnemonics.And,
	AndRm32R32: mnemonics.And,
	AndRm64R64: mnemonics.And,
	AndR8Rm8: mnemonics.And,
	AndR16Rm16: mnemonics.And,
	AndR32Rm32: mnemonics.And,
	AndR64Rm64: mnemonics.And,
	AndALImm8: mnemonics.And,
	AndAXImm16: mnemonics.And,
	AndEAXImm32: mnemonics.And,
	AndRAXImm32: mnemonics.And,
	SubRm8R8: mnemonics.Sub,
	SubRm16R16: mnemonics.Sub,
	SubRm32R32: mnemonics.Sub,
	SubRm64R64: mnemonics.Sub,
	SubR8Rm8: mnemonics.Sub,
	SubR16Rm16: mnemonics.Sub,
	SubR32Rm32: mnemonics.Sub,
	SubR64Rm64: mnemonics.Sub,
	SubALImm8: mnemonics.Sub,
	SubAXImm16: mnemonics.Sub,
	SubEAXImm32: mnemonics.Sub,
	SubRAXImm32: mnemonics.Sub,
	XorRm8R8: mnemonics.Xor,
	XorRm16R16: mnemonics.Xor,
	XorRm32R32: mnemonics.Xor,
	XorRm64R64: mnemonics.Xor,
	XorR8Rm8: mnemonics.Xor,
	XorR16Rm16: mnemonics.Xor,
	XorR32Rm32: mnemonics.Xor,
	XorR64Rm64: mnemonics.Xor,
	XorALImm8: mnemonics.Xor,
	XorAXImm16: mnemonics.Xor,
	XorEAXImm32: mnemonics.Xor,
	XorRAXImm32: mnemonics.Xor,
	CmpRm8R8: mnemonics.Cmp,
	CmpRm16R16: mnemonics.Cmp,
	CmpRm32R32: mnemonics.Cmp,
	CmpRm64R64: mnemonics.Cmp,
	CmpR8Rm8: mnemonics.Cmp,
	CmpR16Rm16: mnemonics.Cmp,
	CmpR32Rm32: mnemonics.Cmp,
	CmpR64Rm64: mnemonics.Cmp,
	CmpALImm8: mnemonics.Cmp,
	CmpAXImm16: mnemonics.Cmp,
	CmpEAXImm32: mnemonics.Cmp,
	CmpRAXImm32: mnemonics.Cmp,
	PushES: mnemonics.Push,
	PopES: mnemonics.Pop,
	PushCS: mnemonics.Push,
	PushSS: mnemonics.Push,
	PopSS: mnemonics.Pop,
	PushDS: mnemonics.Push,
	PopDS: mnemonics.Pop,
	Daa: mnemonics.Daa,
	Das: mnemonics.Das,
	Aaa: mnemonics.Aaa,
	Aas: mnemonics.Aas,
	IncR16: mnemonics.Inc,
	IncR32: mnemonics.Inc,
	DecR16: mnemonics.Dec,
	DecR32: mnemonics.Dec,
	PushR16: mnemonics.Push,
	PushR32: mnemonics.Push,
	PushR64: mnemonics.Push,
	PopR16: mnemonics.Pop,
	PopR32: mnemonics.Pop,
	PopR64: mnemonics.Pop,
	Pusha: mnemonics.Pusha,
	Pushad: mnemonics.Pushad,
	Popa: mnemonics.Popa,
	Popad: mnemonics.Popad,
	BoundR16M1616: mnemonics.Bound,
	BoundR32M3232: mnemonics.Bound,
	ArplRm16R16: mnemonics.Arpl,
	MovsxdR16Rm32: mnemonics.Movsxd,
	MovsxdR32Rm32: mnemonics.Movsxd,
	MovsxdR64Rm32: mnemonics.Movsxd,
	PushImm16: mnemonics.Push,
	PushImm32: mnemonics.Push,
	ImulR16Rm16Imm16: mnemonics.Imul,
	ImulR32Rm32Imm32: mnemonics.Imul,
	ImulR64Rm64Imm32: mnemonics.Imul,
	PushImm8: mnemonics.Push,
	ImulR16Rm16Imm8: mnemonics.Imul,
	ImulR32Rm32Imm8: mnemonics.Imul,
	ImulR64Rm64Imm8: mnemonics.Imul,
	InsbM8DX: mnemonics.Insb,
	InswM16DX: mnemonics.Insw,
	InsdM32DX: mnemonics.Insd,
	InsdM64DX: mnemonics.Insd,
	OutsbDXM8: mnemonics.Outsb,
	OutswDXM16: mnemonics.Outsw,
	OutsdDXM32: mnemonics.Outsd,
	OutsdDXM64: mnemonics.Outsd,
	JoRel8Op16: mnemonics.Jo,
	JoRel8Op32: mnemonics.Jo,
	JoRel8Op64: mnemonics.Jo,
	JnoRel8Op16: mnemonics.Jno,
	JnoRel8Op32: mnemonics.Jno,
	JnoRel8Op64: mnemonics.Jno,
	JbRel8Op16: mnemonics.Jb,
	JbRel8Op32: mnemonics.Jb,
	JbRel8Op64: mnemonics.Jb,
	JaeRel8Op16: mnemonics.Jae,
	JaeRel8Op32: mnemonics.Jae,
	JaeRel8Op64: mnemonics.Jae,
	JeRel8Op16: mnemonics.Je,
	JeRel8Op32: mnemonics.Je,
	JeRel8Op64: mnemonics.Je,
	JneRel8Op16: mnemonics.Jne,
	JneRel8Op32: mnemonics.Jne,
	JneRel8Op64: mnemonics.Jne,
	JbeRel8Op16: mnemonics.Jbe,
	JbeRel8Op32: mnemonics.Jbe,
	JbeRel8Op64: mnemonics.Jbe,
	JaRel8Op16: mnemonics.Ja,
	JaRel8Op32: mnemonics.Ja,
	JaRel8Op64: mnemonics.Ja,
	JsRel8Op16: mnemonics.Js,
	JsRel8Op32: mnemonics.Js,
	JsRel8Op64: mnemonics.Js,
	JnsRel8Op16: mnemonics.Jns,
	JnsRel8Op32: mnemonics.Jns,
	JnsRel8Op64: mnemonics.Jns,
	JpRel8Op16: mnemonics.Jp,
	JpRel8Op32: mnemonics.Jp,
	JpRel8Op64: mnemonics.Jp,
	JnpRel8Op16: mnemonics.Jnp,
	JnpRel8Op32: mnemonics.Jnp,
	JnpRel8Op64: mnemonics.Jnp,
	JlRel8Op16: mnemonics.Jl,
	JlRel8Op32: mnemonics.Jl,
	JlRel8Op64: mnemonics.Jl,
	JgeRel8Op16: mnemonics.Jge,
	JgeRel8Op32: mnemonics.Jge,
	JgeRel8Op64: mnemonics.Jge,
	JleRel8Op16: mnemonics.Jle,
	JleRel8Op32: mnemonics.Jle,
	JleRel8Op64: mnemonics.Jle,
	JgRel8Op16: mnemonics.Jg,
	JgRel8Op32: mnemonics.Jg,
	JgRel8Op64: mnemonics.Jg,
	AddRm8Imm8: mnemonics.Add,
	AddRm16Imm16: mnemonics.Add,
	AddRm32Imm32: mnemonics.Add,
	AddRm64Imm32: mnemonics.Add,
	AddRm8Imm8Op82: mnemonics.Add,
	AddRm16Imm8: mnemonics.Add,
	AddRm32Imm8: mnemonics.Add,
	AddRm64Imm8: mnemonics.Add,
	OrRm8Imm8: mnemonics.Or,
	OrRm16Imm16: mnemonics.Or,
	OrRm32Imm32: mnemonics.Or,
	OrRm64Imm32: mnemonics.Or,
	OrRm8Imm8Op82: mnemonics.Or,
	OrRm16Imm8: mnemonics.Or,
	OrRm32Imm8: mnemonics.Or,
	OrRm64Imm8: mnemonics.Or,
	AdcRm8Imm8: mnemonics.Adc,
	AdcRm16Imm16: mnemonics.Adc,
	AdcRm32Imm32: mnemonics.Adc,
	AdcRm64Imm32: mnemonics.Adc,
	AdcRm8Imm8Op82: mnemonics.Adc,
	AdcRm16Imm8: mnemonics.Adc,
	AdcRm32Imm8: mnemonics.Adc,
	AdcRm64Imm8: mnemonics.Adc,
	SbbRm8Imm8: mnemonics.Sbb,
	SbbRm16Imm16: mnemonics.Sbb,
	SbbRm32Imm32: mnemonics.Sbb,
	SbbRm64Imm32: mnemonics.Sbb,
	SbbRm8Imm8Op82: mnemonics.Sbb,
	SbbRm16Imm8: mnemonics.Sbb,
	SbbRm32Imm8: mnemonics.Sbb,
	SbbRm64Imm8: mnemonics.Sbb,
	AndRm8Imm8: mnemonics.And,
	AndRm16Imm16: mnemonics.And,
	AndRm32Imm32: mnemonics.And,
	AndRm64Imm32: mnemonics.And,
	AndRm8Imm8Op82: mnemonics.And,
	AndRm16Imm8: mnemonics.And,
	AndRm32Imm8: mnemonics.And,
	AndRm64Imm8: mnemonics.And,
	SubRm8Imm8: mnemonics.Sub,
	SubRm16Imm16: mnemonics.Sub,
	SubRm32Imm32: mnemonics.Sub,
	SubRm64Imm32: mnemonics.Sub,
	SubRm8Imm8Op82: mnemonics.Sub,
	SubRm16Imm8: mnemonics.Sub,
	SubRm32Imm8: mnemonics.Sub,
	SubRm64Imm8: mnemonics.Sub,
	XorRm8Imm8: mnemonics.Xor,
	XorRm16Imm16: mnemonics.Xor,
	XorRm32Imm32: mnemonics.Xor,
	XorRm64Imm32: mnemonics.Xor,
	XorRm8Imm8Op82: mnemonics.Xor,
	XorRm16Imm8: mnemonics.Xor,
	XorRm32Imm8: mnemonics.Xor,
	XorRm64Imm8: mnemonics.Xor,
	CmpRm8Imm8: mnemonics.Cmp,
	CmpRm16Imm16: mnemonics.Cmp,
	CmpRm32Imm32: mnemonics.Cmp,
	CmpRm64Imm32: mnemonics.Cmp,
	CmpRm8Imm8Op82: mnemonics.Cmp,
	CmpRm16Imm8: mnemonics.Cmp,
	CmpRm32Imm8: mnemonics.Cmp,
	CmpRm64Imm8: mnemonics.Cmp,
	TestRm8R8: mnemonics.Test,
	TestRm16R16: mnemonics.Test,
	TestRm32R32: mnemonics.Test,
	TestRm64R64: mnemonics.Test,
	XchgRm8R8: mnemonics.Xchg,
	XchgRm16R16: mnemonics.Xchg,
	XchgRm32R32: mnemonics.Xchg,
	XchgRm64R64: mnemonics.Xchg,
	MovRm8R8: mnemonics.Mov,
	MovRm16R16: mnemonics.Mov,
	MovRm32R32: mnemonics.Mov,
	MovRm64R64: mnemonics.Mov,
	MovR8Rm8: mnemonics.Mov,
	MovR16Rm16: mnemonics.Mov,
	MovR32Rm32: mnemonics.Mov,
	MovR64Rm64: mnemonics.Mov,
	MovR16m16Sreg: mnemonics.Mov,
	MovR32m16Sreg: mnemonics.Mov,
	MovR64m16Sreg: mnemonics.Mov,
	LeaR16Mem: mnemonics.Lea,
	LeaR32Mem: mnemonics.Lea,
	LeaR64Mem: mnemonics.Lea,
	MovSregRm16: mnemonics.Mov,
	PopRm16: mnemonics.Pop,
	PopRm32: mnemonics.Pop,
	PopRm64: mnemonics.Pop,
	Nop: mnemonics.Nop,
	Pause: mnemonics.Pause,
	XchgR16AX: mnemonics.Xchg,
	XchgR32EAX: mnemonics.Xchg,
	XchgR64RAX: mnemonics.Xchg,
	Cbw: mnemonics.Cbw,
	Cwde: mnemonics.Cwde,
	Cdqe: mnemonics.Cdqe,
	Cwd: mnemonics.Cwd,
	Cdq: mnemonics.Cdq,
	Cqo: mnemonics.Cqo,
	CallfPtr1616: mnemonics.Callf,
	CallfPtr1632: mnemonics.Callf,
	Wait: mnemonics.Wait,
	Pushf: mnemonics.Pushf,
	Pushfd: mnemonics.Pushfd,
	Pushfq: mnemonics.Pushfq,
	Popf: mnemonics.Popf,
	Popfd: mnemonics.Popfd,
	Popfq: mnemonics.Popfq,
	Sahf: mnemonics.Sahf,
	Lahf: mnemonics.Lahf,
	MovALMoffs8: mnemonics.Mov,
	MovAXMoffs16: mnemonics.Mov,
	MovEAXMoffs32: mnemonics.Mov,
	MovRAXMoffs64: mnemonics.Mov,
	MovMoffs8AL: mnemonics.Mov,
	MovMoffs16AX: mnemonics.Mov,
	MovMoffs32EAX: mnemonics.Mov,
	MovMoffs64RAX: mnemonics.Mov,
	MovsbM8M8: mnemonics.Movsb,
	MovswM16M16: mnemonics.Movsw,
	MovsdM32M32: mnemonics.Movsd,
	MovsqM64M64: mnemonics.Movsq,
	CmpsbM8M8: mnemonics.Cmpsb,
	CmpswM16M16: mnemonics.Cmpsw,
	CmpsdM32M32: mnemonics.Cmpsd,
	CmpsqM64M64: mnemonics.Cmpsq,
	TestALImm8: mnemonics.Test,
	TestAXImm16: mnemonics.Test,
	TestEAXImm32: mnemonics.Test,
	TestRAXImm32: mnemonics.Test,
	StosbM8AL: mnemonics.Stosb,
	StoswM16AX: mnemonics.Stosw,
	StosdM32EAX: mnemonics.Stosd,
	StosqM64RAX: mnemonics.Stosq,
	LodsbALM8: mnemonics.Lodsb,
	LodswAXM16: mnemonics.Lodsw,
	LodsdEAXM32: mnemonics.Lodsd,
	LodsqRAXM64: mnemonics.Lodsq,
	ScasbALM8: mnemonics.Scasb,
	ScaswAXM16: mnemonics.Scasw,
	ScasdEAXM32: mnemonics.Scasd,
	ScasqRAXM64: mnemonics.Scasq,
	MovR8Imm8: mnemonics.Mov,
	MovR16Imm16: mnemonics.Mov,
	MovR32Imm32: mnemonics.Mov,
	MovR64Imm64: mnemonics.Mov,
	RolRm8Imm8: mnemonics.Rol,
	RolRm16Imm8: mnemonics.Rol,
	RolRm32Imm8: mnemonics.Rol,
	RolRm64Imm8: mnemonics.Rol,
	RolRm8One: mnemonics.Rol,
	RolRm16One: mnemonics.Rol,
	RolRm32One: mnemonics.Rol,
	RolRm64One: mnemonics.Rol,
	RolRm8CL: mnemonics.Rol,
	RolRm16CL: mnemonics.Rol,
	RolRm32CL: mnemonics.Rol,
	RolRm64CL: mnemonics.Rol,
	RorRm8Imm8: mnemonics.Ror,
	RorRm16Imm8: mnemonics.Ror,
	RorRm32Imm8: mnemonics.Ror,
	RorRm64Imm8: mnemonics.Ror,
	RorRm8One: mnemonics.Ror,
	RorRm16One: mnemonics.Ror,
	RorRm32One: mnemonics.Ror,
	RorRm64One: mnemonics.Ror,
	RorRm8CL: mnemonics.Ror,
	RorRm16CL: mnemonics.Ror,
	RorRm32CL: mnemonics.Ror,
	RorRm64CL: mnemonics.Ror,
	RclRm8Imm8: mnemonics.Rcl,
	RclRm16Imm8: mnemonics.Rcl,
	RclRm32Imm8: mnemonics.Rcl,
	RclRm64Imm8: mnemonics.Rcl,
	RclRm8One: mnemonics.Rcl,
	RclRm16One: mnemonics.Rcl,
	RclRm32One: mnemonics.Rcl,
	RclRm64One: mnemonics.Rcl,
	RclRm8CL: mnemonics.Rcl,
	RclRm16CL: mnemonics.Rcl,
	RclRm32CL: mnemonics.Rcl,
	RclRm64CL: mnemonics.Rcl,
	RcrRm8Imm8: mnemonics.Rcr,
	RcrRm16Imm8: mnemonics.Rcr,
	RcrRm32Imm8: mnemonics.Rcr,
	RcrRm64Imm8: mnemonics.Rcr,
	RcrRm8One: mnemonics.Rcr,
	RcrRm16One: mnemonics.Rcr,
	RcrRm32One: mnemonics.Rcr,
	RcrRm64One: mnemonics.Rcr,
	RcrRm8CL: mnemonics.Rcr,
	RcrRm16CL: mnemonics.Rcr,
	RcrRm32CL: mnemonics.Rcr,
	RcrRm64CL: mnemonics.Rcr,
	ShlRm8Imm8: mnemonics.Shl,
	ShlRm16Imm8: mnemonics.Shl,
	ShlRm32Imm8: mnemonics.Shl,
	ShlRm64Imm8: mnemonics.Shl,
	ShlRm8One: mnemonics.Shl,
	ShlRm16One: mnemonics.Shl,
	ShlRm32One: mnemonics.Shl,
	ShlRm64One: mnemonics.Shl,
	ShlRm8CL: mnemonics.Shl,
	ShlRm16CL: mnemonics.Shl,
	ShlRm32CL: mnemonics.Shl,
	ShlRm64CL: mnemonics.Shl,
	ShrRm8Imm8: mnemonics.Shr,
	ShrRm16Imm8: mnemonics.Shr,
	ShrRm32Imm8: mnemonics.Shr,
	ShrRm64Imm8: mnemonics.Shr,
	ShrRm8One: mnemonics.Shr,
	ShrRm16One: mnemonics.Shr,
	ShrRm32One: mnemonics.Shr,
	ShrRm64One: mnemonics.Shr,
	ShrRm8CL: mnemonics.Shr,
	ShrRm16CL: mnemonics.Shr,
	ShrRm32CL: mnemonics.Shr,
	ShrRm64CL: mnemonics.Shr,
	SalRm8Imm8: mnemonics.Sal,
	SalRm16Imm8: mnemonics.Sal,
	SalRm32Imm8: mnemonics.Sal,
	SalRm64Imm8: mnemonics.Sal,
	SalRm8One: mnemonics.Sal,
	SalRm16One: mnemonics.Sal,
	SalRm32One: mnemonics.Sal,
	SalRm64One: mnemonics.Sal,
	SalRm8CL: mnemonics.Sal,
	SalRm16CL: mnemonics.Sal,
	SalRm32CL: mnemonics.Sal,
	SalRm64CL: mnemonics.Sal,
	SarRm8Imm8: mnemonics.Sar,
	SarRm16Imm8: mnemonics.Sar,
	SarRm32Imm8: mnemonics.Sar,
	SarRm64Imm8: mnemonics.Sar,
	SarRm8One: mnemonics.Sar,
	SarRm16One: mnemonics.Sar,
	SarRm32One: mnemonics.Sar,
	SarRm64One: mnemonics.Sar,
	SarRm8CL: mnemonics.Sar,
	SarRm16CL: mnemonics.Sar,
	SarRm32CL: mnemonics.Sar,
	SarRm64CL: mnemonics.Sar,
	RetImm16: mnemonics.Ret,
	Ret: mnemonics.Ret,
	LesR16M1616: mnemonics.Les,
	LesR32M1632: mnemonics.Les,
	LdsR16M1616: mnemonics.Lds,
	LdsR32M1632: mnemonics.Lds,
	MovRm8Imm8: mnemonics.Mov,
	XabortImm8: mnemonics.Xabort,
	MovRm16Imm16: mnemonics.Mov,
	MovRm32Imm32: mnemonics.Mov,
	MovRm64Imm32: mnemonics.Mov,
	XbeginRel16: mnemonics.Xbegin,
	XbeginRel32Op32: mnemonics.Xbegin,
	XbeginRel32Op64: mnemonics.Xbegin,
	EnterImm16Imm8: mnemonics.Enter,
	Leave: mnemonics.Leave,
	RetfImm16: mnemonics.Retf,
	Retf: mnemonics.Retf,
	Int3: mnemonics.Int3,
	IntImm8: mnemonics.Int,
	Into: mnemonics.Into,
	Iret: mnemonics.Iret,
	Iretd: mnemonics.Iretd,
	Iretq: mnemonics.Iretq,
	AamImm8: mnemonics.Aam,
	AadImm8: mnemonics.Aad,
	Salc: mnemonics.Salc,
	Xlatb: mnemonics.Xlatb,
	LoopneRel8Op16: mnemonics.Loopne,
	LoopneRel8Op32: mnemonics.Loopne,
	LoopneRel8Op64: mnemonics.Loopne,
	LoopeRel8Op16: mnemonics.Loope,
	LoopeRel8Op32: mnemonics.Loope,
	LoopeRel8Op64: mnemonics.Loope,
	LoopRel8Op16: mnemonics.Loop,
	LoopRel8Op32: mnemonics.Loop,
	LoopRel8Op64: mnemonics.Loop,
	JcxzRel8Op16: mnemonics.Jcxz,
	JecxzRel8Op32: mnemonics.Jecxz,
	JrcxzRel8Op64: mnemonics.Jrcxz,
	InALImm8: mnemonics.In,
	InAXImm8: mnemonics.In,
	InEAXImm8: mnemonics.In,
	OutImm8AL: mnemonics.Out,
	OutImm8AX: mnemonics.Out,
	OutImm8EAX: mnemonics.Out,
	CallRel16: mnemonics.Call,
	CallRel32Op32: mnemonics.Call,
	CallRel32Op64: mnemonics.Call,
	JmpRel16: mnemonics.Jmp,
	JmpRel32Op32: mnemonics.Jmp,
	JmpRel32Op64: mnemonics.Jmp,
	JmpfPtr1616: mnemonics.Jmpf,
	JmpfPtr1632: mnemonics.Jmpf,
	JmpRel8Op16: mnemonics.Jmp,
	JmpRel8Op32: mnemonics.Jmp,
	JmpRel8Op64: mnemonics.Jmp,
	InALDX: mnemonics.In,
	InAXDX: mnemonics.In,
	InEAXDX: mnemonics.In,
	OutDXAL: mnemonics.Out,
	OutDXAX: mnemonics.Out,
	OutDXEAX: mnemonics.Out,
	Int1: mnemonics.Int1,
	Hlt: mnemonics.Hlt,
	Cmc: mnemonics.Cmc,
	TestRm8Imm8: mnemonics.Test,
	TestRm8Imm8F6r1: mnemonics.Test,
	TestRm16Imm16: mnemonics.Test,
	TestRm32Imm32: mnemonics.Test,
	TestRm64Imm32: mnemonics.Test,
	TestRm16Imm16F7r1: mnemonics.Test,
	TestRm32Imm32F7r1: mnemonics.Test,
	TestRm64Imm32F7r1: mnemonics.Test,
	NotRm8: mnemonics.Not,
	NotRm16: mnemonics.Not,
	NotRm32: mnemonics.Not,
	NotRm64: mnemonics.Not,
	NegRm8: mnemonics.Neg,
	NegRm16: mnemonics.Neg,
	NegRm32: mnemonics.Neg,
	NegRm64: mnemonics.Neg,
	MulRm8: mnemonics.Mul,
	MulRm16: mnemonics.Mul,
	MulRm32: mnemonics.Mul,
	MulRm64: mnemonics.Mul,
	ImulRm8: mnemonics.Imul,
	ImulRm16: mnemonics.Imul,
	ImulRm32: mnemonics.Imul,
	ImulRm64: mnemonics.Imul,
	DivRm8: mnemonics.Div,
	DivRm16: mnemonics.Div,
	DivRm32: mnemonics.Div,
	DivRm64: mnemonics.Div,
	IdivRm8: mnemonics.Idiv,
	IdivRm16: mnemonics.Idiv,
	IdivRm32: mnemonics.Idiv,
	IdivRm64: mnemonics.Idiv,
	Clc: mnemonics.Clc,
	Stc: mnemonics.Stc,
	Cli: mnemonics.Cli,
	Sti: mnemonics.Sti,
	Cld: mnemonics.Cld,
	Std: mnemonics.Std,
	IncRm8: mnemonics.Inc,
	DecRm8: mnemonics.Dec,
	IncRm16: mnemonics.Inc,
	IncRm32: mnemonics.Inc,
	IncRm64: mnemonics.Inc,
	DecRm16: mnemonics.Dec,
	DecRm32: mnemonics.Dec,
	DecRm64: mnemonics.Dec,
	CallRm16: mnemonics.Call,
	CallRm32: mnemonics.Call,
	CallRm64: mnemonics.Call,
	CallfM1616: mnemonics.Callf,
	CallfM1632: mnemonics.Callf,
	CallfM1664: mnemonics.Callf,
	JmpRm16: mnemonics.Jmp,
	JmpRm32: mnemonics.Jmp,
	JmpRm64: mnemonics.Jmp,
	JmpfM1616: mnemonics.Jmpf,
	JmpfM1632: mnemonics.Jmpf,
	JmpfM1664: mnemonics.Jmpf,
	PushRm16: mnemonics.Push,
	PushRm32: mnemonics.Push,
	PushRm64: mnemonics.Push,
	FaddM32fp: mnemonics.Fadd,
	FaddM64fp: mnemonics.Fadd,
	FaddSt0Sti: mnemonics.Fadd,
	FmulM32fp: mnemonics.Fmul,
	FmulM64fp: mnemonics.Fmul,
	FmulSt0Sti: mnemonics.Fmul,
	FcomM32fp: mnemonics.Fcom,
	FcomM64fp: mnemonics.Fcom,
	FcomSt0Sti: mnemonics.Fcom,
	FcompM32fp: mnemonics.Fcomp,
	FcompM64fp: mnemonics.Fcomp,
	FcompSt0Sti: mnemonics.Fcomp,
	FsubM32fp: mnemonics.Fsub,
	FsubM64fp: mnemonics.Fsub,
	FsubSt0Sti: mnemonics.Fsub,
	FsubrM32fp: mnemonics.Fsubr,
	FsubrM64fp: mnemonics.Fsubr,
	FsubrSt0Sti: mnemonics.Fsubr,
	FdivM32fp: mnemonics.Fdiv,
	FdivM64fp: mnemonics.Fdiv,
	FdivSt0Sti: mnemonics.Fdiv,
	FdivrM32fp: mnemonics.Fdivr,
	FdivrM64fp: mnemonics.Fdivr,
	FdivrSt0Sti: mnemonics.Fdivr,
	FiaddM32int: mnemonics.Fiadd,
	FiaddM16int: mnemonics.Fiadd,
	FimulM32int: mnemonics.Fimul,
	FimulM16int: mnemonics.Fimul,
	FicomM32int: mnemonics.Ficom,
	FicomM16int: mnemonics.Ficom,
	FicompM32int: mnemonics.Ficomp,
	FicompM16int: mnemonics.Ficomp,
	FisubM32int: mnemonics.Fisub,
	FisubM16int: mnemonics.Fisub,
	FisubrM32int: mnemonics.Fisubr,
	FisubrM16int: mnemonics.Fisubr,
	FidivM32int: mnemonics.Fidiv,
	FidivM16int: mnemonics.Fidiv,
	FidivrM32int: mnemonics.Fidivr,
	FidivrM16int: mnemonics.Fidivr,
	FaddStiSt0: mnemonics.Fadd,
	FmulStiSt0: mnemonics.Fmul,
	FsubrStiSt0: mnemonics.Fsubr,
	FsubStiSt0: mnemonics.Fsub,
	FdivrStiSt0: mnemonics.Fdivr,
	FdivStiSt0: mnemonics.Fdiv,
	FaddpStiSt0: mnemonics.Faddp,
	FmulpStiSt0: mnemonics.Fmulp,
	FsubrpStiSt0: mnemonics.Fsubrp,
	FsubpStiSt0: mnemonics.Fsubp,
	FdivrpStiSt0: mnemonics.Fdivrp,
	FdivpStiSt0: mnemonics.Fdivp,
	Fcompp: mnemonics.Fcompp,
	FldM32fp: mnemonics.Fld,
	FstM32fp: mnemonics.Fst,
	FstpM32fp: mnemonics.Fstp,
	FldenvM14byte: mnemonics.Fldenv,
	FldenvM28byte: mnemonics.Fldenv,
	FldcwM16: mnemonics.Fldcw,
	FnstenvM14byte: mnemonics.Fnstenv,
	FnstenvM28byte: mnemonics.Fnstenv,
	FnstcwM16: mnemonics.Fnstcw,
	FldSti: mnemonics.Fld,
	FxchSti: mnemonics.Fxch,
	Fnop: mnemonics.Fnop,
	Fchs: mnemonics.Fchs,
	Fabs: mnemonics.Fabs,
	Ftst: mnemonics.Ftst,
	Fxam: mnemonics.Fxam,
	Fld1: mnemonics.Fld1,
	Fldl2t: mnemonics.Fldl2t,
	Fldl2e: mnemonics.Fldl2e,
	Fldpi: mnemonics.Fldpi,
	Fldlg2: mnemonics.Fldlg2,
	Fldln2: mnemonics.Fldln2,
	Fldz: mnemonics.Fldz,
	F2xm1: mnemonics.F2xm1,
	Fyl2x: mnemonics.Fyl2x,
	Fptan: mnemonics.Fptan,
	Fpatan: mnemonics.Fpatan,
	Fxtract: mnemonics.Fxtract,
	Fprem1: mnemonics.Fprem1,
	Fdecstp: mnemonics.Fdecstp,
	Fincstp: mnemonics.Fincstp,
	Fprem: mnemonics.Fprem,
	Fyl2xp1: mnemonics.Fyl2xp1,
	Fsqrt: mnemonics.Fsqrt,
	Fsincos: mnemonics.Fsincos,
	Frndint: mnemonics.Frndint,
	Fscale: mnemonics.Fscale,
	Fsin: mnemonics.Fsin,
	Fcos: mnemonics.Fcos,
	FcmovbSt0Sti: mnemonics.Fcmovb,
	FcmoveSt0Sti: mnemonics.Fcmove,
	FcmovbeSt0Sti: mnemonics.Fcmovbe,
	FcmovuSt0Sti: mnemonics.Fcmovu,
	Fucompp: mnemonics.Fucompp,
	FildM32int: mnemonics.Fild,
	FisttpM32int: mnemonics.Fisttp,
	FistM32int: mnemonics.Fist,
	FistpM32int: mnemonics.Fistp,
	FldM80fp: mnemonics.Fld,
	FstpM80fp: mnemonics.Fstp,
	FcmovnbSt0Sti: mnemonics.Fcmovnb,
	FcmovneSt0Sti: mnemonics.Fcmovne,
	FcmovnbeSt0Sti: mnemonics.Fcmovnbe,
	FcmovnuSt0Sti: mnemonics.Fcmovnu,
	Fnclex: mnemonics.Fnclex,
	Fninit: mnemonics.Fninit,
	FucomiSt0Sti: mnemonics.Fucomi,
	FcomiSt0Sti: mnemonics.Fcomi,
	FldM64fp: mnemonics.Fld,
	FisttpM64int: mnemonics.Fisttp,
	FstM64fp: mnemonics.Fst,
	FstpM64fp: mnemonics.Fstp,
	FrstorM94byte: mnemonics.Frstor,
	FrstorM108byte: mnemonics.Frstor,
	FnsaveM94byte: mnemonics.Fnsave,
	FnsaveM108byte: mnemonics.Fnsave,
	FnstswM16: mnemonics.Fnstsw,
	FfreeSti: mnemonics.Ffree,
	FstSti: mnemonics.Fst,
	FstpSti: mnemonics.Fstp,
	FucomSti: mnemonics.Fucom,
	FucompSti: mnemonics.Fucomp,
	FildM16int: mnemonics.Fild,
	FisttpM16int: mnemonics.Fisttp,
	FistM16int: mnemonics.Fist,
	FistpM16int: mnemonics.Fistp,
	FbldM80bcd: mnemonics.Fbld,
	FildM64int: mnemonics.Fild,
	FbstpM80bcd: mnemonics.Fbstp,
	FistpM64int: mnemonics.Fistp,
	FfreepSti: mnemonics.Ffreep,
	FnstswAX: mnemonics.Fnstsw,
	FucomipSt0Sti: mnemonics.Fucomip,
	FcomipSt0Sti: mnemonics.Fcomip,
	SldtR16m16: mnemonics.Sldt,
	SldtR32m16: mnemonics.Sldt,
	SldtR64m16: mnemonics.Sldt,
	StrR16m16: mnemonics.Str,
	StrR32m16: mnemonics.Str,
	StrR64m16: mnemonics.Str,
	LldtRm16: mnemonics.Lldt,
	LtrRm16: mnemonics.Ltr,
	VerrRm16: mnemonics.Verr,
	VerwRm16: mnemonics.Verw,
	SgdtM1632: mnemonics.Sgdt,
	SgdtM1664: mnemonics.Sgdt,
	SidtM1632: mnemonics.Sidt,
	SidtM1664: mnemonics.Sidt,
	LgdtM1632: mnemonics.Lgdt,
	LgdtM1664: mnemonics.Lgdt,
	LidtM1632: mnemonics.Lidt,
	LidtM1664: mnemonics.Lidt,
	InvlpgM8: mnemonics.Invlpg,
	SmswR16m16: mnemonics.Smsw,
	SmswR32m16: mnemonics.Smsw,
	SmswR64m16: mnemonics.Smsw,
	LmswRm16: mnemonics.Lmsw,
	Vmcall: mnemonics.Vmcall,
	Vmlaunch: mnemonics.Vmlaunch,
	Vmresume: mnemonics.Vmresume,
	Vmxoff: mnemonics.Vmxoff,
	Monitor: mnemonics.Monitor,
	Mwait: mnemonics.Mwait,
	Clac: mnemonics.Clac,
	Stac: mnemonics.Stac,
	Xgetbv: mnemonics.Xgetbv,
	Xsetbv: mnemonics.Xsetbv,
	Xend: mnemonics.Xend,
	Xtest: mnemonics.Xtest,
	Rdtscp: mnemonics.Rdtscp,
	Swapgs: mnemonics.Swapgs,
	LarR16Rm16: mnemonics.Lar,
	LarR32Rm16: mnemonics.Lar,
	LarR64Rm16: mnemonics.Lar,
	LslR16Rm16: mnemonics.Lsl,
	LslR32Rm16: mnemonics.Lsl,
	LslR64Rm16: mnemonics.Lsl,
	Syscall: mnemonics.Syscall,
	Clts: mnemonics.Clts,
	Sysret: mnemonics.Sysret,
	Sysretq: mnemonics.Sysretq,
	Invd: mnemonics.Invd,
	Wbinvd: mnemonics.Wbinvd,
	Ud2: mnemonics.Ud2,
	PrefetchwM8: mnemonics.Prefetchw,
	MovupsXmmXmmm128: mnemonics.Movups,
	MovupdXmmXmmm128: mnemonics.Movupd,
	MovssXmmXmmm32: mnemonics.Movss,
	MovsdXmmXmmm64: mnemonics.Movsd,
	MovupsXmmm128Xmm: mnemonics.Movups,
	MovupdXmmm128Xmm: mnemonics.Movupd,
	MovssXmmm32Xmm: mnemonics.Movss,
	MovsdXmmm64Xmm: mnemonics.Movsd,
	MovlpsXmmM64: mnemonics.Movlps,
	MovhlpsXmmXmm: mnemonics.Movhlps,
	MovlpdXmmM64: mnemonics.Movlpd,
	MovsldupXmmXmmm128: mnemonics.Movsldup,
	MovddupXmmXmmm64: mnemonics.Movddup,
	MovlpsM64Xmm: mnemonics.Movlps,
	MovlpdM64Xmm: mnemonics.Movlpd,
	UnpcklpsXmmXmmm128: mnemonics.Unpcklps,
	UnpcklpdXmmXmmm128: mnemonics.Unpcklpd,
	UnpckhpsXmmXmmm128: mnemonics.Unpckhps,
	UnpckhpdXmmXmmm128: mnemonics.Unpckhpd,
	MovhpsXmmM64: mnemonics.Movhps,
	MovlhpsXmmXmm: mnemonics.Movlhps,
	MovhpdXmmM64: mnemonics.Movhpd,
	MovshdupXmmXmmm128: mnemonics.Movshdup,
	MovhpsM64Xmm: mnemonics.Movhps,
	MovhpdM64Xmm: mnemonics.Movhpd,
	PrefetchntaM8: mnemonics.Prefetchnta,
	Prefetcht0M8: mnemonics.Prefetcht0,
	Prefetcht1M8: mnemonics.Prefetcht1,
	Prefetcht2M8: mnemonics.Prefetcht2,
	Endbr64: mnemonics.Endbr64,
	Endbr32: mnemonics.Endbr32,
	NopRm16: mnemonics.Nop,
	NopRm32: mnemonics.Nop,
	NopRm64: mnemonics.Nop,
	MovR32Cr: mnemonics.Mov,
	MovR64Cr: mnemonics.Mov,
	MovR32Dr: mnemonics.Mov,
	MovR64Dr: mnemonics.Mov,
	MovCrR32: mnemonics.Mov,
	MovCrR64: mnemonics.Mov,
	MovDrR32: mnemonics.Mov,
	MovDrR64: mnemonics.Mov,
	MovapsXmmXmmm128: mnemonics.Movaps,
	MovapdXmmXmmm128: mnemonics.Movapd,
	MovapsXmmm128Xmm: mnemonics.Movaps,
	MovapdXmmm128Xmm: mnemonics.Movapd,
	Cvtpi2psXmmMmm64: mnemonics.Cvtpi2ps,
	Cvtpi2pdXmmMmm64: mnemonics.Cvtpi2pd,
	Cvtsi2ssXmmRm32: mnemonics.Cvtsi2ss,
	Cvtsi2ssXmmRm64: mnemonics.Cvtsi2ss,
	Cvtsi2sdXmmRm32: mnemonics.Cvtsi2sd,
	Cvtsi2sdXmmRm64: mnemonics.Cvtsi2sd,
	MovntpsM128Xmm: mnemonics.Movntps,
	MovntpdM128Xmm: mnemonics.Movntpd,
	Cvttps2piMmXmmm64: mnemonics.Cvttps2pi,
	Cvttpd2piMmXmmm128: mnemonics.Cvttpd2pi,
	Cvttss2siR32Xmmm32: mnemonics.Cvttss2si,
	Cvttss2siR64Xmmm32: mnemonics.Cvttss2si,
	Cvttsd2siR32Xmmm64: mnemonics.Cvttsd2si,
	Cvttsd2siR64Xmmm64: mnemonics.Cvttsd2si,
	Cvtps2piMmXmmm64: mnemonics.Cvtps2pi,
	Cvtpd2piMmXmmm128: mnemonics.Cvtpd2pi,
	Cvtss2siR32Xmmm32: mnemonics.Cvtss2si,
	Cvtss2siR64Xmmm32: mnemonics.Cvtss2si,
	Cvtsd2siR32Xmmm64: mnemonics.Cvtsd2si,
	Cvtsd2siR64Xmmm64: mnemonics.Cvtsd2si,
	UcomissXmmXmmm32: mnemonics.Ucomiss,
	UcomisdXmmXmmm64: mnemonics.Ucomisd,
	ComissXmmXmmm32: mnemonics.Comiss,
	ComisdXmmXmmm64: mnemonics.Comisd,
	Wrmsr: mnemonics.Wrmsr,
	Rdtsc: mnemonics.Rdtsc,
	Rdmsr: mnemonics.Rdmsr,
	Rdpmc: mnemonics.Rdpmc,
	Sysenter: mnemonics.Sysenter,
	Sysexit: mnemonics.Sysexit,
	Getsec: mnemonics.Getsec,
	CmovoR16Rm16: mnemonics.Cmovo,
	CmovoR32Rm32: mnemonics.Cmovo,
	CmovoR64Rm64: mnemonics.Cmovo,
	JoRel16: mnemonics.Jo,
	JoRel32Op32: mnemonics.Jo,
	JoRel32Op64: mnemonics.Jo,
	SetoRm8: mnemonics.Seto,
	CmovnoR16Rm16: mnemonics.Cmovno,
	CmovnoR32Rm32: mnemonics.Cmovno,
	CmovnoR64Rm64: mnemonics.Cmovno,
	JnoRel16: mnemonics.Jno,
	JnoRel32Op32: mnemonics.Jno,
	JnoRel32Op64: mnemonics.Jno,
	SetnoRm8: mnemonics.Setno,
	CmovbR16Rm16: mnemonics.Cmovb,
	CmovbR32Rm32: mnemonics.Cmovb,
	CmovbR64Rm64: mnemonics.Cmovb,
	JbRel16: mnemonics.Jb,
	JbRel32Op32: mnemonics.Jb,
	JbRel32Op64: mnemonics.Jb,
	SetbRm8: mnemonics.Setb,
	CmovaeR16Rm16: mnemonics.Cmovae,
	CmovaeR32Rm32: mnemonics.Cmovae,
	CmovaeR64Rm64: mnemonics.Cmovae,
	JaeRel16: mnemonics.Jae,
	JaeRel32Op32: mnemonics.Jae,
	JaeRel32Op64: mnemonics.Jae,
	SetaeRm8: mnemonics.Setae,
	CmoveR16Rm16: mnemonics.Cmove,
	CmoveR32Rm32: mnemonics.Cmove,
	CmoveR64Rm64: mnemonics.Cmove,
	JeRel16: mnemonics.Je,
	JeRel32Op32: mnemonics.Je,
	JeRel32Op64: mnemonics.Je,
	SeteRm8: mnemonics.Sete,
	CmovneR16Rm16: mnemonics.Cmovne,
	CmovneR32Rm32: mnemonics.Cmovne,
	CmovneR64Rm64: mnemonics.Cmovne,
	JneRel16: mnemonics.Jne,
	JneRel32Op32: mnemonics.Jne,
	JneRel32Op64: mnemonics.Jne,
	SetneRm8: mnemonics.Setne,
	CmovbeR16Rm16: mnemonics.Cmovbe,
	CmovbeR32Rm32: mnemonics.Cmovbe,
	CmovbeR64Rm64: mnemonics.Cmovbe,
	JbeRel16: mnemonics.Jbe,
	JbeRel32Op32: mnemonics.Jbe,
	JbeRel32Op64: mnemonics.Jbe,
	SetbeRm8: mnemonics.Setbe,
	CmovaR16Rm16: mnemonics.Cmova,
	CmovaR32Rm32: mnemonics.Cmova,
	CmovaR64Rm64: mnemonics.Cmova,
	JaRel16: mnemonics.Ja,
	JaRel32Op32: mnemonics.Ja,
	JaRel32Op64: mnemonics.Ja,
	SetaRm8: mnemonics.Seta,
	CmovsR16Rm16: mnemonics.Cmovs,
	CmovsR32Rm32: mnemonics.Cmovs,
	CmovsR64Rm64: mnemonics.Cmovs,
	JsRel16: mnemonics.Js,
	JsRel32Op32: mnemonics.Js,
	JsRel32Op64: mnemonics.Js,
	SetsRm8: mnemonics.Sets,
	CmovnsR16Rm16: mnemonics.Cmovns,
	CmovnsR32Rm32: mnemonics.Cmovns,
	CmovnsR64Rm64: mnemonics.Cmovns,
	JnsRel16: mnemonics.Jns,
	JnsRel32Op32: mnemonics.Jns,
	JnsRel32Op64: mnemonics.Jns,
	SetnsRm8: mnemonics.Setns,
	CmovpR16Rm16: mnemonics.Cmovp,
	CmovpR32Rm32: mnemonics.Cmovp,
	CmovpR64Rm64: mnemonics.Cmovp,
	JpRel16: mnemonics.Jp,
	JpRel32Op32: mnemonics.Jp,
	JpRel32Op64: mnemonics.Jp,
	SetpRm8: mnemonics.Setp,
	CmovnpR16Rm16: mnemonics.Cmovnp,
	CmovnpR32Rm32: mnemonics.Cmovnp,
	CmovnpR64Rm64: mnemonics.Cmovnp,
	JnpRel16: mnemonics.Jnp,
	JnpRel32Op32: mnemonics.Jnp,
	JnpRel32Op64: mnemonics.Jnp,
	SetnpRm8: mnemonics.Setnp,
	CmovlR16Rm16: mnemonics.Cmovl,
	CmovlR32Rm32: mnemonics.Cmovl,
	CmovlR64Rm64: mnemonics.Cmovl,
	JlRel16: mnemonics.Jl,
	JlRel32Op32: mnemonics.Jl,
	JlRel32Op64: mnemonics.Jl,
	SetlRm8: mnemonics.Setl,
	CmovgeR16Rm16: mnemonics.Cmovge,
	CmovgeR32Rm32: mnemonics.Cmovge,
	CmovgeR64Rm64: mnemonics.Cmovge,
	JgeRel16: mnemonics.Jge,
	JgeRel32Op32: mnemonics.Jge,
	JgeRel32Op64: mnemonics.Jge,
	SetgeRm8: mnemonics.Setge,
	CmovleR16Rm16: mnemonics.Cmovle,
	CmovleR32Rm32: mnemonics.Cmovle,
	CmovleR64Rm64: mnemonics.Cmovle,
	JleRel16: mnemonics.Jle,
	JleRel32Op32: mnemonics.Jle,
	JleRel32Op64: mnemonics.Jle,
	SetleRm8: mnemonics.Setle,
	CmovgR16Rm16: mnemonics.Cmovg,
	CmovgR32Rm32: mnemonics.Cmovg,
	CmovgR64Rm64: mnemonics.Cmovg,
	JgRel16: mnemonics.Jg,
	JgRel32Op32: mnemonics.Jg,
	JgRel32Op64: mnemonics.Jg,
	SetgRm8: mnemonics.Setg,
	MovmskpsR32Xmm: mnemonics.Movmskps,
	MovmskpsR64Xmm: mnemonics.Movmskps,
	MovmskpdR32Xmm: mnemonics.Movmskpd,
	MovmskpdR64Xmm: mnemonics.Movmskpd,
	SqrtpsXmmXmmm128: mnemonics.Sqrtps,
	SqrtpdXmmXmmm128: mnemonics.Sqrtpd,
	SqrtssXmmXmmm32: mnemonics.Sqrtss,
	SqrtsdXmmXmmm64: mnemonics.Sqrtsd,
	RsqrtpsXmmXmmm128: mnemonics.Rsqrtps,
	RsqrtssXmmXmmm32: mnemonics.Rsqrtss,
	RcppsXmmXmmm128: mnemonics.Rcpps,
	RcpssXmmXmmm32: mnemonics.Rcpss,
	AndpsXmmXmmm128: mnemonics.Andps,
	AndpdXmmXmmm128: mnemonics.Andpd,
	AndnpsXmmXmmm128: mnemonics.Andnps,
	AndnpdXmmXmmm128: mnemonics.Andnpd,
	OrpsXmmXmmm128: mnemonics.Orps,
	OrpdXmmXmmm128: mnemonics.Orpd,
	XorpsXmmXmmm128: mnemonics.Xorps,
	XorpdXmmXmmm128: mnemonics.Xorpd,
	AddpsXmmXmmm128: mnemonics.Addps,
	AddpdXmmXmmm128: mnemonics.Addpd,
	AddssXmmXmmm32: mnemonics.Addss,
	AddsdXmmXmmm64: mnemonics.Addsd,
	MulpsXmmXmmm128: mnemonics.Mulps,
	MulpdXmmXmmm128: mnemonics.Mulpd,
	MulssXmmXmmm32: mnemonics.Mulss,
	MulsdXmmXmmm64: mnemonics.Mulsd,
	Cvtps2pdXmmXmmm64: mnemonics.Cvtps2pd,
	Cvtpd2psXmmXmmm128: mnemonics.Cvtpd2ps,
	Cvtss2sdXmmXmmm32: mnemonics.Cvtss2sd,
	Cvtsd2ssXmmXmmm64: mnemonics.Cvtsd2ss,
	Cvtdq2psXmmXmmm128: mnemonics.Cvtdq2ps,
	Cvtps2dqXmmXmmm128: mnemonics.Cvtps2dq,
	Cvttps2dqXmmXmmm128: mnemonics.Cvttps2dq,
	SubpsXmmXmmm128: mnemonics.Subps,
	SubpdXmmXmmm128: mnemonics.Subpd,
	SubssXmmXmmm32: mnemonics.Subss,
	SubsdXmmXmmm64: mnemonics.Subsd,
	MinpsXmmXmmm128: mnemonics.Minps,
	MinpdXmmXmmm128: mnemonics.Minpd,
	MinssXmmXmmm32: mnemonics.Minss,
	MinsdXmmXmmm64: mnemonics.Minsd,
	DivpsXmmXmmm128: mnemonics.Divps,
	DivpdXmmXmmm128: mnemonics.Divpd,
	DivssXmmXmmm32: mnemonics.Divss,
	DivsdXmmXmmm64: mnemonics.Divsd,
	MaxpsXmmXmmm128: mnemonics.Maxps,
	MaxpdXmmXmmm128: mnemonics.Maxpd,
	MaxssXmmXmmm32: mnemonics.Maxss,
	MaxsdXmmXmmm64: mnemonics.Maxsd,
	PunpcklbwMmMmm64: mnemonics.Punpcklbw,
	PunpcklbwXmmXmmm128: mnemonics.Punpcklbw,
	PunpcklwdMmMmm64: mnemonics.Punpcklwd,
	PunpcklwdXmmXmmm128: mnemonics.Punpcklwd,
	PunpckldqMmMmm64: mnemonics.Punpckldq,
	PunpckldqXmmXmmm128: mnemonics.Punpckldq,
	PacksswbMmMmm64: mnemonics.Packsswb,
	PacksswbXmmXmmm128: mnemonics.Packsswb,
	PcmpgtbMmMmm64: mnemonics.Pcmpgtb,
	PcmpgtbXmmXmmm128: mnemonics.Pcmpgtb,
	PcmpgtwMmMmm64: mnemonics.Pcmpgtw,
	PcmpgtwXmmXmmm128: mnemonics.Pcmpgtw,
	PcmpgtdMmMmm64: mnemonics.Pcmpgtd,
	PcmpgtdXmmXmmm128: mnemonics.Pcmpgtd,
	PackuswbMmMmm64: mnemonics.Packuswb,
	PackuswbXmmXmmm128: mnemonics.Packuswb,
	PunpckhbwMmMmm64: mnemonics.Punpckhbw,
	PunpckhbwXmmXmmm128: mnemonics.Punpckhbw,
	PunpckhwdMmMmm64: mnemonics.Punpckhwd,
	PunpckhwdXmmXmmm128: mnemonics.Punpckhwd,
	PunpckhdqMmMmm64: mnemonics.Punpckhdq,
	PunpckhdqXmmXmmm128: mnemonics.Punpckhdq,
	PackssdwMmMmm64: mnemonics.Packssdw,
	PackssdwXmmXmmm128: mnemonics.Packssdw,
	PcmpeqbMmMmm64: mnemonics.Pcmpeqb,
	PcmpeqbXmmXmmm128: mnemonics.Pcmpeqb,
	PcmpeqwMmMmm64: mnemonics.Pcmpeqw,
	PcmpeqwXmmXmmm128: mnemonics.Pcmpeqw,
	PcmpeqdMmMmm64: mnemonics.Pcmpeqd,
	PcmpeqdXmmXmmm128: mnemonics.Pcmpeqd,
	PsrlwMmMmm64: mnemonics.Psrlw,
	PsrlwXmmXmmm128: mnemonics.Psrlw,
	PsrldMmMmm64: mnemonics.Psrld,
	PsrldXmmXmmm128: mnemonics.Psrld,
	PsrlqMmMmm64: mnemonics.Psrlq,
	PsrlqXmmXmmm128: mnemonics.Psrlq,
	PaddqMmMmm64: mnemonics.Paddq,
	PaddqXmmXmmm128: mnemonics.Paddq,
	PmullwMmMmm64: mnemonics.Pmullw,
	PmullwXmmXmmm128: mnemonics.Pmullw,
	PsubusbMmMmm64: mnemonics.Psubusb,
	PsubusbXmmXmmm128: mnemonics.Psubusb,
	PsubuswMmMmm64: mnemonics.Psubusw,
	PsubuswXmmXmmm128: mnemonics.Psubusw,
	PminubMmMmm64: mnemonics.Pminub,
	PminubXmmXmmm128: mnemonics.Pminub,
	PandMmMmm64: mnemonics.Pand,
	PandXmmXmmm128: mnemonics.Pand,
	PaddusbMmMmm64: mnemonics.Paddusb,
	PaddusbXmmXmmm128: mnemonics.Paddusb,
	PadduswMmMmm64: mnemonics.Paddusw,
	PadduswXmmXmmm128: mnemonics.Paddusw,
	PmaxubMmMmm64: mnemonics.Pmaxub,
	PmaxubXmmXmmm128: mnemonics.Pmaxub,
	PandnMmMmm64: mnemonics.Pandn,
	PandnXmmXmmm128: mnemonics.Pandn,
	PavgbMmMmm64: mnemonics.Pavgb,
	PavgbXmmXmmm128: mnemonics.Pavgb,
	PsrawMmMmm64: mnemonics.Psraw,
	PsrawXmmXmmm128: mnemonics.Psraw,
	PsradMmMmm64: mnemonics.Psrad,
	PsradXmmXmmm128: mnemonics.Psrad,
	PavgwMmMmm64: mnemonics.Pavgw,
	PavgwXmmXmmm128: mnemonics.Pavgw,
	PmulhuwMmMmm64: mnemonics.Pmulhuw,
	PmulhuwXmmXmmm128: mnemonics.Pmulhuw,
	PmulhwMmMmm64: mnemonics.Pmulhw,
	PmulhwXmmXmmm128: mnemonics.Pmulhw,
	PsubsbMmMmm64: mnemonics.Psubsb,
	PsubsbXmmXmmm128: mnemonics.Psubsb,
	PsubswMmMmm64: mnemonics.Psubsw,
	PsubswXmmXmmm128: mnemonics.Psubsw,
	PminswMmMmm64: mnemonics.Pminsw,
	PminswXmmXmmm128: mnemonics.Pminsw,
	PorMmMmm64: mnemonics.Por,
	PorXmmXmmm128: mnemonics.Por,
	PaddsbMmMmm64: mnemonics.Paddsb,
	PaddsbXmmXmmm128: mnemonics.Paddsb,
	PaddswMmMmm64: mnemonics.Paddsw,
	PaddswXmmXmmm128: mnemonics.Paddsw,
	PmaxswMmMmm64: mnemonics.Pmaxsw,
	PmaxswXmmXmmm128: mnemonics.Pmaxsw,
	PxorMmMmm64: mnemonics.Pxor,
	PxorXmmXmmm128: mnemonics.Pxor,
	PsllwMmMmm64: mnemonics.Psllw,
	PsllwXmmXmmm128: mnemonics.Psllw,
	PslldMmMmm64: mnemonics.Pslld,
	PslldXmmXmmm128: mnemonics.Pslld,
	PsllqMmMmm64: mnemonics.Psllq,
	PsllqXmmXmmm128: mnemonics.Psllq,
	PmuludqMmMmm64: mnemonics.Pmuludq,
	PmuludqXmmXmmm128: mnemonics.Pmuludq,
	PmaddwdMmMmm64: mnemonics.Pmaddwd,
	PmaddwdXmmXmmm128: mnemonics.Pmaddwd,
	PsadbwMmMmm64: mnemonics.Psadbw,
	PsadbwXmmXmmm128: mnemonics.Psadbw,
	PsubbMmMmm64: mnemonics.Psubb,
	PsubbXmmXmmm128: mnemonics.Psubb,
	PsubwMmMmm64: mnemonics.Psubw,
	PsubwXmmXmmm128: mnemonics.Psubw,
	PsubdMmMmm64: mnemonics.Psubd,
	PsubdXmmXmmm128: mnemonics.Psubd,
	PsubqMmMmm64: mnemonics.Psubq,
	PsubqXmmXmmm128: mnemonics.Psubq,
	PaddbMmMmm64: mnemonics.Paddb,
	PaddbXmmXmmm128: mnemonics.Paddb,
	PaddwMmMmm64: mnemonics.Paddw,
	PaddwXmmXmmm128: mnemonics.Paddw,
	PadddMmMmm64: mnemonics.Paddd,
	PadddXmmXmmm128: mnemonics.Paddd,
	PunpcklqdqXmmXmmm128: mnemonics.Punpcklqdq,
	PunpckhqdqXmmXmmm128: mnemonics.Punpckhqdq,
	MovdMmRm32: mnemonics.Movd,
	MovqMmRm64: mnemonics.Movq,
	MovdXmmRm32: mnemonics.Movd,
	MovqXmmRm64: mnemonics.Movq,
	MovqMmMmm64: mnemonics.Movq,
	MovdqaXmmXmmm128: mnemonics.Movdqa,
	MovdquXmmXmmm128: mnemonics.Movdqu,
	PshufwMmMmm64Imm8: mnemonics.Pshufw,
	PshufdXmmXmmm128Imm8: mnemonics.Pshufd,
	PshufhwXmmXmmm128Imm8: mnemonics.Pshufhw,
	PshuflwXmmXmmm128Imm8: mnemonics.Pshuflw,
	PsrlwMmImm8: mnemonics.Psrlw,
	PsrlwXmmImm8: mnemonics.Psrlw,
	PsrawMmImm8: mnemonics.Psraw,
	PsrawXmmImm8: mnemonics.Psraw,
	PsllwMmImm8: mnemonics.Psllw,
	PsllwXmmImm8: mnemonics.Psllw,
	PsrldMmImm8: mnemonics.Psrld,
	PsrldXmmImm8: mnemonics.Psrld,
	PsradMmImm8: mnemonics.Psrad,
	PsradXmmImm8: mnemonics.Psrad,
	PslldMmImm8: mnemonics.Pslld,
	PslldXmmImm8: mnemonics.Pslld,
	PsrlqMmImm8: mnemonics.Psrlq,
	PsrlqXmmImm8: mnemonics.Psrlq,
	PsllqMmImm8: mnemonics.Psllq,
	PsllqXmmImm8: mnemonics.Psllq,
	PsrldqXmmImm8: mnemonics.Psrldq,
	PslldqXmmImm8: mnemonics.Pslldq,
	Emms: mnemonics.Emms,
	HaddpdXmmXmmm128: mnemonics.Haddpd,
	HaddpsXmmXmmm128: mnemonics.Haddps,
	HsubpdXmmXmmm128: mnemonics.Hsubpd,
	HsubpsXmmXmmm128: mnemonics.Hsubps,
	MovdRm32Mm: mnemonics.Movd,
	MovqRm64Mm: mnemonics.Movq,
	MovdRm32Xmm: mnemonics.Movd,
	MovqRm64Xmm: mnemonics.Movq,
	MovqXmmXmmm64: mnemonics.Movq,
	MovqMmm64Mm: mnemonics.Movq,
	MovdqaXmmm128Xmm: mnemonics.Movdqa,
	MovdquXmmm128Xmm: mnemonics.Movdqu,
	PushFS: mnemonics.Push,
	PopFS: mnemonics.Pop,
	Cpuid: mnemonics.Cpuid,
	BtRm16R16: mnemonics.Bt,
	BtRm32R32: mnemonics.Bt,
	BtRm64R64: mnemonics.Bt,
	ShldRm16R16Imm8: mnemonics.Shld,
	ShldRm32R32Imm8: mnemonics.Shld,
	ShldRm64R64Imm8: mnemonics.Shld,
	ShldRm16R16CL: mnemonics.Shld,
	ShldRm32R32CL: mnemonics.Shld,
	ShldRm64R64CL: mnemonics.Shld,
	PushGS: mnemonics.Push,
	PopGS: mnemonics.Pop,
	Rsm: mnemonics.Rsm,
	BtsRm16R16: mnemonics.Bts,
	BtsRm32R32: mnemonics.Bts,
	BtsRm64R64: mnemonics.Bts,
	ShrdRm16R16Imm8: mnemonics.Shrd,
	ShrdRm32R32Imm8: mnemonics.Shrd,
	ShrdRm64R64Imm8: mnemonics.Shrd,
	ShrdRm16R16CL: mnemonics.Shrd,
	ShrdRm32R32CL: mnemonics.Shrd,
	ShrdRm64R64CL: mnemonics.Shrd,
	FxsaveM512byte: mnemonics.Fxsave,
	FxrstorM512byte: mnemonics.Fxrstor,
	LdmxcsrM32: mnemonics.Ldmxcsr,
	StmxcsrM32: mnemonics.Stmxcsr,
	XsaveMem: mnemonics.Xsave,
	XrstorMem: mnemonics.Xrstor,
	XsaveoptMem: mnemonics.Xsaveopt,
	ClflushM8: mnemonics.Clflush,
	Lfence: mnemonics.Lfence,
	Mfence: mnemonics.Mfence,
	Sfence: mnemonics.Sfence,
	RdfsbaseR32: mnemonics.Rdfsbase,
	RdfsbaseR64: mnemonics.Rdfsbase,
	RdgsbaseR32: mnemonics.Rdgsbase,
	RdgsbaseR64: mnemonics.Rdgsbase,
	WrfsbaseR32: mnemonics.Wrfsbase,
	WrfsbaseR64: mnemonics.Wrfsbase,
	WrgsbaseR32: mnemonics.Wrgsbase,
	WrgsbaseR64: mnemonics.Wrgsbase,
	ImulR16Rm16: mnemonics.Imul,
	ImulR32Rm32: mnemonics.Imul,
	ImulR64Rm64: mnemonics.Imul,
	CmpxchgRm8R8: mnemonics.Cmpxchg,
	CmpxchgRm16R16: mnemonics.Cmpxchg,
	CmpxchgRm32R32: mnemonics.Cmpxchg,
	CmpxchgRm64R64: mnemonics.Cmpxchg,
	LssR16M1616: mnemonics.Lss,
	LssR32M1632: mnemonics.Lss,
	LssR64M1664: mnemonics.Lss,
	BtrRm16R16: mnemonics.Btr,
	BtrRm32R32: mnemonics.Btr,
	BtrRm64R64: mnemonics.Btr,
	LfsR16M1616: mnemonics.Lfs,
	LfsR32M1632: mnemonics.Lfs,
	LfsR64M1664: mnemonics.Lfs,
	LgsR16M1616: mnemonics.Lgs,
	LgsR32M1632: mnemonics.Lgs,
	LgsR64M1664: mnemonics.Lgs,
	MovzxR16Rm8: mnemonics.Movzx,
	MovzxR32Rm8: mnemonics.Movzx,
	MovzxR64Rm8: mnemonics.Movzx,
	MovzxR16Rm16: mnemonics.Movzx,
	MovzxR32Rm16: mnemonics.Movzx,
	MovzxR64Rm16: mnemonics.Movzx,
	PopcntR16Rm16: mnemonics.Popcnt,
	PopcntR32Rm32: mnemonics.Popcnt,
	PopcntR64Rm64: mnemonics.Popcnt,
	Ud1R16Rm16: mnemonics.Ud1,
	Ud1R32Rm32: mnemonics.Ud1,
	Ud1R64Rm64: mnemonics.Ud1,
	BtRm16Imm8: mnemonics.Bt,
	BtRm32Imm8: mnemonics.Bt,
	BtRm64Imm8: mnemonics.Bt,
	BtsRm16Imm8: mnemonics.Bts,
	BtsRm32Imm8: mnemonics.Bts,
	BtsRm64Imm8: mnemonics.Bts,
	BtrRm16Imm8: mnemonics.Btr,
	BtrRm32Imm8: mnemonics.Btr,
	BtrRm64Imm8: mnemonics.Btr,
	BtcRm16Imm8: mnemonics.Btc,
	BtcRm32Imm8: mnemonics.Btc,
	BtcRm64Imm8: mnemonics.Btc,
	BtcRm16R16: mnemonics.Btc,
	BtcRm32R32: mnemonics.Btc,
	BtcRm64R64: mnemonics.Btc,
	BsfR16Rm16: mnemonics.Bsf,
	BsfR32Rm32: mnemonics.Bsf,
	BsfR64Rm64: mnemonics.Bsf,
	TzcntR16Rm16: mnemonics.Tzcnt,
	TzcntR32Rm32: mnemonics.Tzcnt,
	TzcntR64Rm64: mnemonics.Tzcnt,
	BsrR16Rm16: mnemonics.Bsr,
	BsrR32Rm32: mnemonics.Bsr,
	BsrR64Rm64: mnemonics.Bsr,
	LzcntR16Rm16: mnemonics.Lzcnt,
	LzcntR32Rm32: mnemonics.Lzcnt,
	LzcntR64Rm64: mnemonics.Lzcnt,
	MovsxR16Rm8: mnemonics.Movsx,
	MovsxR32Rm8: mnemonics.Movsx,
	MovsxR64Rm8: mnemonics.Movsx,
	MovsxR16Rm16: mnemonics.Movsx,
	MovsxR32Rm16: mnemonics.Movsx,
	MovsxR64Rm16: mnemonics.Movsx,
	XaddRm8R8: mnemonics.Xadd,
	XaddRm16R16: mnemonics.Xadd,
	XaddRm32R32: mnemonics.Xadd,
	XaddRm64R64: mnemonics.Xadd,
	CmppsXmmXmmm128Imm8: mnemonics.Cmpps,
	CmppdXmmXmmm128Imm8: mnemonics.Cmppd,
	CmpssXmmXmmm32Imm8: mnemonics.Cmpss,
	CmpsdXmmXmmm64Imm8: mnemonics.Cmpsd,
	MovntiM32R32: mnemonics.Movnti,
	MovntiM64R64: mnemonics.Movnti,
	PinsrwMmR32m16Imm8: mnemonics.Pinsrw,
	PinsrwMmR64m16Imm8: mnemonics.Pinsrw,
	PinsrwXmmR32m16Imm8: mnemonics.Pinsrw,
	PinsrwXmmR64m16Imm8: mnemonics.Pinsrw,
	PextrwR32MmImm8: mnemonics.Pextrw,
	PextrwR64MmImm8: mnemonics.Pextrw,
	PextrwR32XmmImm8: mnemonics.Pextrw,
	PextrwR64XmmImm8: mnemonics.Pextrw,
	ShufpsXmmXmmm128Imm8: mnemonics.Shufps,
	ShufpdXmmXmmm128Imm8: mnemonics.Shufpd,
	Cmpxchg8bM64: mnemonics.Cmpxchg8b,
	Cmpxchg16bM128: mnemonics.Cmpxchg16b,
	RdrandR16: mnemonics.Rdrand,
	RdrandR32: mnemonics.Rdrand,
	RdrandR64: mnemonics.Rdrand,
	RdseedR16: mnemonics.Rdseed,
	RdseedR32: mnemonics.Rdseed,
	RdseedR64: mnemonics.Rdseed,
	RdpidR32: mnemonics.Rdpid,
	RdpidR64: mnemonics.Rdpid,
	BswapR16: mnemonics.Bswap,
	BswapR32: mnemonics.Bswap,
	BswapR64: mnemonics.Bswap,
	AddsubpdXmmXmmm128: mnemonics.Addsubpd,
	AddsubpsXmmXmmm128: mnemonics.Addsubps,
	MovqXmmm64Xmm: mnemonics.Movq,
	Movq2dqXmmMm: mnemonics.Movq2dq,
	Movdq2qMmXmm: mnemonics.Movdq2q,
	PmovmskbR32Mm: mnemonics.Pmovmskb,
	PmovmskbR64Mm: mnemonics.Pmovmskb,
	PmovmskbR32Xmm: mnemonics.Pmovmskb,
	PmovmskbR64Xmm: mnemonics.Pmovmskb,
	Cvttpd2dqXmmXmmm128: mnemonics.Cvttpd2dq,
	Cvtdq2pdXmmXmmm64: mnemonics.Cvtdq2pd,
	Cvtpd2dqXmmXmmm128: mnemonics.Cvtpd2dq,
	MovntqM64Mm: mnemonics.Movntq,
	MovntdqM128Xmm: mnemonics.Movntdq,
	LddquXmmM128: mnemonics.Lddqu,
	MaskmovqMmMm: mnemonics.Maskmovq,
	MaskmovdquXmmXmm: mnemonics.Maskmovdqu,
	Ud0R16Rm16: mnemonics.Ud0,
	Ud0R32Rm32: mnemonics.Ud0,
	Ud0R64Rm64: mnemonics.Ud0,
	PshufbMmMmm64: mnemonics.Pshufb,
	PshufbXmmXmmm128: mnemonics.Pshufb,
	PhaddwMmMmm64: mnemonics.Phaddw,
	PhaddwXmmXmmm128: mnemonics.Phaddw,
	PhadddMmMmm64: mnemonics.Phaddd,
	PhadddXmmXmmm128: mnemonics.Phaddd,
	PhaddswMmMmm64: mnemonics.Phaddsw,
	PhaddswXmmXmmm128: mnemonics.Phaddsw,
	PmaddubswMmMmm64: mnemonics.Pmaddubsw,
	PmaddubswXmmXmmm128: mnemonics.Pmaddubsw,
	PhsubwMmMmm64: mnemonics.Phsubw,
	PhsubwXmmXmmm128: mnemonics.Phsubw,
	PhsubdMmMmm64: mnemonics.Phsubd,
	PhsubdXmmXmmm128: mnemonics.Phsubd,
	PhsubswMmMmm64: mnemonics.Phsubsw,
	PhsubswXmmXmmm128: mnemonics.Phsubsw,
	PsignbMmMmm64: mnemonics.Psignb,
	PsignbXmmXmmm128: mnemonics.Psignb,
	PsignwMmMmm64: mnemonics.Psignw,
	PsignwXmmXmmm128: mnemonics.Psignw,
	PsigndMmMmm64: mnemonics.Psignd,
	PsigndXmmXmmm128: mnemonics.Psignd,
	PmulhrswMmMmm64: mnemonics.Pmulhrsw,
	PmulhrswXmmXmmm128: mnemonics.Pmulhrsw,
	PabsbMmMmm64: mnemonics.Pabsb,
	PabsbXmmXmmm128: mnemonics.Pabsb,
	PabswMmMmm64: mnemonics.Pabsw,
	PabswXmmXmmm128: mnemonics.Pabsw,
	PabsdMmMmm64: mnemonics.Pabsd,
	PabsdXmmXmmm128: mnemonics.Pabsd,
	PblendvbXmmXmmm128Xmm0: mnemonics.Pblendvb,
	BlendvpsXmmXmmm128Xmm0: mnemonics.Blendvps,
	BlendvpdXmmXmmm128Xmm0: mnemonics.Blendvpd,
	PtestXmmXmmm128: mnemonics.Ptest,
	PmovsxbwXmmXmmm64: mnemonics.Pmovsxbw,
	PmovsxbdXmmXmmm32: mnemonics.Pmovsxbd,
	PmovsxbqXmmXmmm16: mnemonics.Pmovsxbq,
	PmovsxwdXmmXmmm64: mnemonics.Pmovsxwd,
	PmovsxwqXmmXmmm32: mnemonics.Pmovsxwq,
	PmovsxdqXmmXmmm64: mnemonics.Pmovsxdq,
	PmovzxbwXmmXmmm64: mnemonics.Pmovzxbw,
	PmovzxbdXmmXmmm32: mnemonics.Pmovzxbd,
	PmovzxbqXmmXmmm16: mnemonics.Pmovzxbq,
	PmovzxwdXmmXmmm64: mnemonics.Pmovzxwd,
	PmovzxwqXmmXmmm32: mnemonics.Pmovzxwq,
	PmovzxdqXmmXmmm64: mnemonics.Pmovzxdq,
	PmuldqXmmXmmm128: mnemonics.Pmuldq,
	PcmpeqqXmmXmmm128: mnemonics.Pcmpeqq,
	PackusdwXmmXmmm128: mnemonics.Packusdw,
	PcmpgtqXmmXmmm128: mnemonics.Pcmpgtq,
	PminsbXmmXmmm128: mnemonics.Pminsb,
	PminsdXmmXmmm128: mnemonics.Pminsd,
	PminuwXmmXmmm128: mnemonics.Pminuw,
	PminudXmmXmmm128: mnemonics.Pminud,
	PmaxsbXmmXmmm128: mnemonics.Pmaxsb,
	PmaxsdXmmXmmm128: mnemonics.Pmaxsd,
	PmaxuwXmmXmmm128: mnemonics.Pmaxuw,
	PmaxudXmmXmmm128: mnemonics.Pmaxud,
	PmulldXmmXmmm128: mnemonics.Pmulld,
	PhminposuwXmmXmmm128: mnemonics.Phminposuw,
	AesimcXmmXmmm128: mnemonics.Aesimc,
	AesencXmmXmmm128: mnemonics.Aesenc,
	AesenclastXmmXmmm128: mnemonics.Aesenclast,
	AesdecXmmXmmm128: mnemonics.Aesdec,
	AesdeclastXmmXmmm128: mnemonics.Aesdeclast,
	MovntdqaXmmM128: mnemonics.Movntdqa,
	MovbeR16M16: mnemonics.Movbe,
	MovbeR32M32: mnemonics.Movbe,
	MovbeR64M64: mnemonics.Movbe,
	Crc32R32Rm8: mnemonics.Crc32,
	Crc32R64Rm8: mnemonics.Crc32,
	MovbeM16R16: mnemonics.Movbe,
	MovbeM32R32: mnemonics.Movbe,
	MovbeM64R64: mnemonics.Movbe,
	Crc32R32Rm16: mnemonics.Crc32,
	Crc32R32Rm32: mnemonics.Crc32,
	Crc32R64Rm64: mnemonics.Crc32,
	AdcxR32Rm32: mnemonics.Adcx,
	AdcxR64Rm64: mnemonics.Adcx,
	AdoxR32Rm32: mnemonics.Adox,
	AdoxR64Rm64: mnemonics.Adox,
	PalignrMmMmm64Imm8: mnemonics.Palignr,
	PalignrXmmXmmm128Imm8: mnemonics.Palignr,
	RoundpsXmmXmmm128Imm8: mnemonics.Roundps,
	RoundpdXmmXmmm128Imm8: mnemonics.Roundpd,
	RoundssXmmXmmm32Imm8: mnemonics.Roundss,
	RoundsdXmmXmmm64Imm8: mnemonics.Roundsd,
	BlendpsXmmXmmm128Imm8: mnemonics.Blendps,
	BlendpdXmmXmmm128Imm8: mnemonics.Blendpd,
	PblendwXmmXmmm128Imm8: mnemonics.Pblendw,
	PextrbR32m8XmmImm8: mnemonics.Pextrb,
	PextrbR64m8XmmImm8: mnemonics.Pextrb,
	PextrwR32m16XmmImm8: mnemonics.Pextrw,
	PextrwR64m16XmmImm8: mnemonics.Pextrw,
	PextrdRm32XmmImm8: mnemonics.Pextrd,
	PextrqRm64XmmImm8: mnemonics.Pextrq,
	ExtractpsRm32XmmImm8: mnemonics.Extractps,
	PinsrbXmmR32m8Imm8: mnemonics.Pinsrb,
	PinsrbXmmR64m8Imm8: mnemonics.Pinsrb,
	InsertpsXmmXmmm32Imm8: mnemonics.Insertps,
	PinsrdXmmRm32Imm8: mnemonics.Pinsrd,
	PinsrqXmmRm64Imm8: mnemonics.Pinsrq,
	DppsXmmXmmm128Imm8: mnemonics.Dpps,
	DppdXmmXmmm128Imm8: mnemonics.Dppd,
	MpsadbwXmmXmmm128Imm8: mnemonics.Mpsadbw,
	PclmulqdqXmmXmmm128Imm8: mnemonics.Pclmulqdq,
	PcmpestrmXmmXmmm128Imm8: mnemonics.Pcmpestrm,
	PcmpestriXmmXmmm128Imm8: mnemonics.Pcmpestri,
	PcmpistrmXmmXmmm128Imm8: mnemonics.Pcmpistrm,
	PcmpistriXmmXmmm128Imm8: mnemonics.Pcmpistri,
	AeskeygenassistXmmXmmm128Imm8: mnemonics.Aeskeygenassist,
	VexVmovupsXmmXmmm128: mnemonics.Vmovups,
	VexVmovupsYmmYmmm256: mnemonics.Vmovups,
	VexVmovupdXmmXmmm128: mnemonics.Vmovupd,
	VexVmovupdYmmYmmm256: mnemonics.Vmovupd,
	VexVmovupsXmmm128Xmm: mnemonics.Vmovups,
	VexVmovupsYmmm256Ymm: mnemonics.Vmovups,
	VexVmovupdXmmm128Xmm: mnemonics.Vmovupd,
	VexVmovupdYmmm256Ymm: mnemonics.Vmovupd,
	VexVmovapsXmmXmmm128: mnemonics.Vmovaps,
	VexVmovapsYmmYmmm256: mnemonics.Vmovaps,
	VexVmovapdXmmXmmm128: mnemonics.Vmovapd,
	VexVmovapdYmmYmmm256: mnemonics.Vmovapd,
	VexVmovapsXmmm128Xmm: mnemonics.Vmovaps,
	VexVmovapsYmmm256Ymm: mnemonics.Vmovaps,
	VexVmovapdXmmm128Xmm: mnemonics.Vmovapd,
	VexVmovapdYmmm256Ymm: mnemonics.Vmovapd,
	VexVmovssXmmM32: mnemonics.Vmovss,
	VexVmovssXmmXmmXmm: mnemonics.Vmovss,
	VexVmovsdXmmM64: mnemonics.Vmovsd,
	VexVmovsdXmmXmmXmm: mnemonics.Vmovsd,
	VexVmovssM32Xmm: mnemonics.Vmovss,
	VexVmovssXmmXmmXmmOp0F11: mnemonics.Vmovss,
	VexVmovsdM64Xmm: mnemonics.Vmovsd,
	VexVmovsdXmmXmmXmmOp0F11: mnemonics.Vmovsd,
	VexVsqrtpsXmmXmmm128: mnemonics.Vsqrtps,
	VexVsqrtpsYmmYmmm256: mnemonics.Vsqrtps,
	VexVsqrtpdXmmXmmm128: mnemonics.Vsqrtpd,
	VexVsqrtpdYmmYmmm256: mnemonics.Vsqrtpd,
	VexVsqrtssXmmXmmXmmm32: mnemonics.Vsqrtss,
	VexVsqrtsdXmmXmmXmmm64: mnemonics.Vsqrtsd,
	VexVandpsXmmXmmXmmm128: mnemonics.Vandps,
	VexVandpsYmmYmmYmmm256: mnemonics.Vandps,
	VexVandpdXmmXmmXmmm128: mnemonics.Vandpd,
	VexVandpdYmmYmmYmmm256: mnemonics.Vandpd,
	VexVandnpsXmmXmmXmmm128: mnemonics.Vandnps,
	VexVandnpsYmmYmmYmmm256: mnemonics.Vandnps,
	VexVandnpdXmmXmmXmmm128: mnemonics.Vandnpd,
	VexVandnpdYmmYmmYmmm256: mnemonics.Vandnpd,
	VexVorpsXmmXmmXmmm128: mnemonics.Vorps,
	VexVorpsYmmYmmYmmm256: mnemonics.Vorps,
	VexVorpdXmmXmmXmmm128: mnemonics.Vorpd,
	VexVorpdYmmYmmYmmm256: mnemonics.Vorpd,
	VexVxorpsXmmXmmXmmm128: mnemonics.Vxorps,
	VexVxorpsYmmYmmYmmm256: mnemonics.Vxorps,
	VexVxorpdXmmXmmXmmm128: mnemonics.Vxorpd,
	VexVxorpdYmmYmmYmmm256: mnemonics.Vxorpd,
	VexVaddpsXmmXmmXmmm128: mnemonics.Vaddps,
	VexVaddpsYmmYmmYmmm256: mnemonics.Vaddps,
	VexVaddpdXmmXmmXmmm128: mnemonics.Vaddpd,
	VexVaddpdYmmYmmYmmm256: mnemonics.Vaddpd,
	VexVaddssXmmXmmXmmm32: mnemonics.Vaddss,
	VexVaddsdXmmXmmXmmm64: mnemonics.Vaddsd,
	VexVmulpsXmmXmmXmmm128: mnemonics.Vmulps,
	VexVmulpsYmmYmmYmmm256: mnemonics.Vmulps,
	VexVmulpdXmmXmmXmmm128: mnemonics.Vmulpd,
	VexVmulpdYmmYmmYmmm256: mnemonics.Vmulpd,
	VexVmulssXmmXmmXmmm32: mnemonics.Vmulss,
	VexVmulsdXmmXmmXmmm64: mnemonics.Vmulsd,
	VexVsubpsXmmXmmXmmm128: mnemonics.Vsubps,
	VexVsubpsYmmYmmYmmm256: mnemonics.Vsubps,
	VexVsubpdXmmXmmXmmm128: mnemonics.Vsubpd,
	VexVsubpdYmmYmmYmmm256: mnemonics.Vsubpd,
	VexVsubssXmmXmmXmmm32: mnemonics.Vsubss,
	VexVsubsdXmmXmmXmmm64: mnemonics.Vsubsd,
	VexVminpsXmmXmmXmmm128: mnemonics.Vminps,
	VexVminpsYmmYmmYmmm256: mnemonics.Vminps,
	VexVminpdXmmXmmXmmm128: mnemonics.Vminpd,
	VexVminpdYmmYmmYmmm256: mnemonics.Vminpd,
	VexVminssXmmXmmXmmm32: mnemonics.Vminss,
	VexVminsdXmmXmmXmmm64: mnemonics.Vminsd,
	VexVdivpsXmmXmmXmmm128: mnemonics.Vdivps,
	VexVdivpsYmmYmmYmmm256: mnemonics.Vdivps,
	VexVdivpdXmmXmmXmmm128: mnemonics.Vdivpd,
	VexVdivpdYmmYmmYmmm256: mnemonics.Vdivpd,
	VexVdivssXmmXmmXmmm32: mnemonics.Vdivss,
	VexVdivsdXmmXmmXmmm64: mnemonics.Vdivsd,
	VexVmaxpsXmmXmmXmmm128: mnemonics.Vmaxps,
	VexVmaxpsYmmYmmYmmm256: mnemonics.Vmaxps,
	VexVmaxpdXmmXmmXmmm128: mnemonics.Vmaxpd,
	VexVmaxpdYmmYmmYmmm256: mnemonics.Vmaxpd,
	VexVmaxssXmmXmmXmmm32: mnemonics.Vmaxss,
	VexVmaxsdXmmXmmXmmm64: mnemonics.Vmaxsd,
	VexVucomissXmmXmmm32: mnemonics.Vucomiss,
	VexVucomisdXmmXmmm64: mnemonics.Vucomisd,
	VexVcomissXmmXmmm32: mnemonics.Vcomiss,
	VexVcomisdXmmXmmm64: mnemonics.Vcomisd,
	VexVmovdqaXmmXmmm128: mnemonics.Vmovdqa,
	VexVmovdqaYmmYmmm256: mnemonics.Vmovdqa,
	VexVmovdquXmmXmmm128: mnemonics.Vmovdqu,
	VexVmovdquYmmYmmm256: mnemonics.Vmovdqu,
	VexVmovdqaXmmm128Xmm: mnemonics.Vmovdqa,
	VexVmovdqaYmmm256Ymm: mnemonics.Vmovdqa,
	VexVmovdquXmmm128Xmm: mnemonics.Vmovdqu,
	VexVmovdquYmmm256Ymm: mnemonics.Vmovdqu,
	VexVzeroupper: mnemonics.Vzeroupper,
	VexVzeroall: mnemonics.Vzeroall,
	VexVcmppsXmmXmmXmmm128Imm8: mnemonics.Vcmpps,
	VexVcmppsYmmYmmYmmm256Imm8: mnemonics.Vcmpps,
	VexVcmppdXmmXmmXmmm128Imm8: mnemonics.Vcmppd,
	VexVcmppdYmmYmmYmmm256Imm8: mnemonics.Vcmppd,
	VexVpaddqXmmXmmXmmm128: mnemonics.Vpaddq,
	VexVpaddqYmmYmmYmmm256: mnemonics.Vpaddq,
	VexVpandXmmXmmXmmm128: mnemonics.Vpand,
	VexVpandYmmYmmYmmm256: mnemonics.Vpand,
	VexVporXmmXmmXmmm128: mnemonics.Vpor,
	VexVporYmmYmmYmmm256: mnemonics.Vpor,
	VexVpxorXmmXmmXmmm128: mnemonics.Vpxor,
	VexVpxorYmmYmmYmmm256: mnemonics.Vpxor,
	VexVpadddXmmXmmXmmm128: mnemonics.Vpaddd,
	VexVpadddYmmYmmYmmm256: mnemonics.Vpaddd,
	VexVpsubdXmmXmmXmmm128: mnemonics.Vpsubd,
	VexVpsubdYmmYmmYmmm256: mnemonics.Vpsubd,
	VexVpcmpeqbXmmXmmXmmm128: mnemonics.Vpcmpeqb,
	VexVpcmpeqbYmmYmmYmmm256: mnemonics.Vpcmpeqb,
	VexVpcmpeqdXmmXmmXmmm128: mnemonics.Vpcmpeqd,
	VexVpcmpeqdYmmYmmYmmm256: mnemonics.Vpcmpeqd,
	VexVpmovmskbR32Xmm: mnemonics.Vpmovmskb,
	VexVpmovmskbR32Ymm: mnemonics.Vpmovmskb,
	VexVldmxcsrM32: mnemonics.Vldmxcsr,
	VexVstmxcsrM32: mnemonics.Vstmxcsr,
	VexKandwKrKrKr: mnemonics.Kandw,
	VexKorwKrKrKr: mnemonics.Korw,
	VexKxorwKrKrKr: mnemonics.Kxorw,
	VexKnotwKrKr: mnemonics.Knotw,
	VexKmovwKrKm16: mnemonics.Kmovw,
	VexKmovwM16Kr: mnemonics.Kmovw,
	VexKmovwKrR32: mnemonics.Kmovw,
	VexKmovwR32Kr: mnemonics.Kmovw,
	VexKortestwKrKr: mnemonics.Kortestw,
	VexVpshufbXmmXmmXmmm128: mnemonics.Vpshufb,
	VexVpshufbYmmYmmYmmm256: mnemonics.Vpshufb,
	VexVptestXmmXmmm128: mnemonics.Vptest,
	VexVptestYmmYmmm256: mnemonics.Vptest,
	VexVbroadcastssXmmM32: mnemonics.Vbroadcastss,
	VexVbroadcastssYmmM32: mnemonics.Vbroadcastss,
	VexVbroadcastssXmmXmm: mnemonics.Vbroadcastss,
	VexVbroadcastssYmmXmm: mnemonics.Vbroadcastss,
	VexVpermdYmmYmmYmmm256: mnemonics.Vpermd,
	VexVpbroadcastdXmmXmmm32: mnemonics.Vpbroadcastd,
	VexVpbroadcastdYmmXmmm32: mnemonics.Vpbroadcastd,
	VexVfmadd132psXmmXmmXmmm128: mnemonics.Vfmadd132ps,
	VexVfmadd132psYmmYmmYmmm256: mnemonics.Vfmadd132ps,
	VexVfmadd132pdXmmXmmXmmm128: mnemonics.Vfmadd132pd,
	VexVfmadd132pdYmmYmmYmmm256: mnemonics.Vfmadd132pd,
	VexVfmadd132ssXmmXmmXmmm32: mnemonics.Vfmadd132ss,
	VexVfmadd132sdXmmXmmXmmm64: mnemonics.Vfmadd132sd,
	VexVfmadd213psXmmXmmXmmm128: mnemonics.Vfmadd213ps,
	VexVfmadd213psYmmYmmYmmm256: mnemonics.Vfmadd213ps,
	VexVfmadd213pdXmmXmmXmmm128: mnemonics.Vfmadd213pd,
	VexVfmadd213pdYmmYmmYmmm256: mnemonics.Vfmadd213pd,
	VexVfmadd213ssXmmXmmXmmm32: mnemonics.Vfmadd213ss,
	VexVfmadd213sdXmmXmmXmmm64: mnemonics.Vfmadd213sd,
	VexVfmadd231psXmmXmmXmmm128: mnemonics.Vfmadd231ps,
	VexVfmadd231psYmmYmmYmmm256: mnemonics.Vfmadd231ps,
	VexVfmadd231pdXmmXmmXmmm128: mnemonics.Vfmadd231pd,
	VexVfmadd231pdYmmYmmYmmm256: mnemonics.Vfmadd231pd,
	VexVfmadd231ssXmmXmmXmmm32: mnemonics.Vfmadd231ss,
	VexVfmadd231sdXmmXmmXmmm64: mnemonics.Vfmadd231sd,
	VexAndnR32R32Rm32: mnemonics.Andn,
	VexAndnR64R64Rm64: mnemonics.Andn,
	VexBlsrR32Rm32: mnemonics.Blsr,
	VexBlsrR64Rm64: mnemonics.Blsr,
	VexBlsmskR32Rm32: mnemonics.Blsmsk,
	VexBlsmskR64Rm64: mnemonics.Blsmsk,
	VexBlsiR32Rm32: mnemonics.Blsi,
	VexBlsiR64Rm64: mnemonics.Blsi,
	VexBzhiR32Rm32R32: mnemonics.Bzhi,
	VexBzhiR64Rm64R64: mnemonics.Bzhi,
	VexPextR32R32Rm32: mnemonics.Pext,
	VexPextR64R64Rm64: mnemonics.Pext,
	VexPdepR32R32Rm32: mnemonics.Pdep,
	VexPdepR64R64Rm64: mnemonics.Pdep,
	VexMulxR32R32Rm32: mnemonics.Mulx,
	VexMulxR64R64Rm64: mnemonics.Mulx,
	VexBextrR32Rm32R32: mnemonics.Bextr,
	VexBextrR64Rm64R64: mnemonics.Bextr,
	VexShlxR32Rm32R32: mnemonics.Shlx,
	VexShlxR64Rm64R64: mnemonics.Shlx,
	VexSarxR32Rm32R32: mnemonics.Sarx,
	VexSarxR64Rm64R64: mnemonics.Sarx,
	VexShrxR32Rm32R32: mnemonics.Shrx,
	VexShrxR64Rm64R64: mnemonics.Shrx,
	VexVpermqYmmYmmm256Imm8: mnemonics.Vpermq,
	VexVblendpsXmmXmmXmmm128Imm8: mnemonics.Vblendps,
	VexVblendpsYmmYmmYmmm256Imm8: mnemonics.Vblendps,
	VexVinsertf128YmmYmmXmmm128Imm8: mnemonics.Vinsertf128,
	VexVextractf128Xmmm128YmmImm8: mnemonics.Vextractf128,
	VexVblendvpsXmmXmmXmmm128Xmm: mnemonics.Vblendvps,
	VexVblendvpsYmmYmmYmmm256Ymm: mnemonics.Vblendvps,
	VexVblendvpdXmmXmmXmmm128Xmm: mnemonics.Vblendvpd,
	VexVblendvpdYmmYmmYmmm256Ymm: mnemonics.Vblendvpd,
	VexRorxR32Rm32Imm8: mnemonics.Rorx,
	VexRorxR64Rm64Imm8: mnemonics.Rorx,
	VexVmovlpsXmmXmmM64: mnemonics.Vmovlps,
	VexVmovhlpsXmmXmmXmm: mnemonics.Vmovhlps,
	VexVmovlpdXmmXmmM64: mnemonics.Vmovlpd,
	VexVmovsldupXmmXmmm128: mnemonics.Vmovsldup,
	VexVmovsldupYmmYmmm256: mnemonics.Vmovsldup,
	VexVmovddupXmmXmmm64: mnemonics.Vmovddup,
	VexVmovddupYmmYmmm256: mnemonics.Vmovddup,
	VexVmovlpsM64Xmm: mnemonics.Vmovlps,
	VexVmovlpdM64Xmm: mnemonics.Vmovlpd,
	VexVunpcklpsXmmXmmXmmm128: mnemonics.Vunpcklps,
	VexVunpcklpsYmmYmmYmmm256: mnemonics.Vunpcklps,
	VexVunpcklpdXmmXmmXmmm128: mnemonics.Vunpcklpd,
	VexVunpcklpdYmmYmmYmmm256: mnemonics.Vunpcklpd,
	VexVunpckhpsXmmXmmXmmm128: mnemonics.Vunpckhps,
	VexVunpckhpsYmmYmmYmmm256: mnemonics.Vunpckhps,
	VexVunpckhpdXmmXmmXmmm128: mnemonics.Vunpckhpd,
	VexVunpckhpdYmmYmmYmmm256: mnemonics.Vunpckhpd,
	VexVmovhpsXmmXmmM64: mnemonics.Vmovhps,
	VexVmovlhpsXmmXmmXmm: mnemonics.Vmovlhps,
	VexVmovhpdXmmXmmM64: mnemonics.Vmovhpd,
	VexVmovshdupXmmXmmm128: mnemonics.Vmovshdup,
	VexVmovshdupYmmYmmm256: mnemonics.Vmovshdup,
	VexVmovhpsM64Xmm: mnemonics.Vmovhps,
	VexVmovhpdM64Xmm: mnemonics.Vmovhpd,
	VexVcvtsi2ssXmmXmmRm32: mnemonics.Vcvtsi2ss,
	VexVcvtsi2ssXmmXmmRm64: mnemonics.Vcvtsi2ss,
	VexVcvtsi2sdXmmXmmRm32: mnemonics.Vcvtsi2sd,
	VexVcvtsi2sdXmmXmmRm64: mnemonics.Vcvtsi2sd,
	VexVmovntpsM128Xmm: mnemonics.Vmovntps,
	VexVmovntpsM256Ymm: mnemonics.Vmovntps,
	VexVmovntpdM128Xmm: mnemonics.Vmovntpd,
	VexVmovntpdM256Ymm: mnemonics.Vmovntpd,
	VexVcvttss2siR32Xmmm32: mnemonics.Vcvttss2si,
	VexVcvttss2siR64Xmmm32: mnemonics.Vcvttss2si,
	VexVcvttsd2siR32Xmmm64: mnemonics.Vcvttsd2si,
	VexVcvttsd2siR64Xmmm64: mnemonics.Vcvttsd2si,
	VexVcvtss2siR32Xmmm32: mnemonics.Vcvtss2si,
	VexVcvtss2siR64Xmmm32: mnemonics.Vcvtss2si,
	VexVcvtsd2siR32Xmmm64: mnemonics.Vcvtsd2si,
	VexVcvtsd2siR64Xmmm64: mnemonics.Vcvtsd2si,
	VexVmovmskpsR32Xmm: mnemonics.Vmovmskps,
	VexVmovmskpsR32Ymm: mnemonics.Vmovmskps,
	VexVmovmskpdR32Xmm: mnemonics.Vmovmskpd,
	VexVmovmskpdR32Ymm: mnemonics.Vmovmskpd,
	VexVrsqrtpsXmmXmmm128: mnemonics.Vrsqrtps,
	VexVrsqrtpsYmmYmmm256: mnemonics.Vrsqrtps,
	VexVrsqrtssXmmXmmXmmm32: mnemonics.Vrsqrtss,
	VexVrcppsXmmXmmm128: mnemonics.Vrcpps,
	VexVrcppsYmmYmmm256: mnemonics.Vrcpps,
	VexVrcpssXmmXmmXmmm32: mnemonics.Vrcpss,
	VexVcvtps2pdXmmXmmm64: mnemonics.Vcvtps2pd,
	VexVcvtps2pdYmmXmmm128: mnemonics.Vcvtps2pd,
	VexVcvtpd2psXmmXmmm128: mnemonics.Vcvtpd2ps,
	VexVcvtpd2psXmmYmmm256: mnemonics.Vcvtpd2ps,
	VexVcvtss2sdXmmXmmXmmm32: mnemonics.Vcvtss2sd,
	VexVcvtsd2ssXmmXmmXmmm64: mnemonics.Vcvtsd2ss,
	VexVcvtdq2psXmmXmmm128: mnemonics.Vcvtdq2ps,
	VexVcvtdq2psYmmYmmm256: mnemonics.Vcvtdq2ps,
	VexVcvtps2dqXmmXmmm128: mnemonics.Vcvtps2dq,
	VexVcvtps2dqYmmYmmm256: mnemonics.Vcvtps2dq,
	VexVcvttps2dqXmmXmmm128: mnemonics.Vcvttps2dq,
	VexVcvttps2dqYmmYmmm256: mnemonics.Vcvttps2dq,
	VexVpunpcklbwXmmXmmXmmm128: mnemonics.Vpunpcklbw,
	VexVpunpcklbwYmmYmmYmmm256: mnemonics.Vpunpcklbw,
	VexVpunpcklwdXmmXmmXmmm128: mnemonics.Vpunpcklwd,
	VexVpunpcklwdYmmYmmYmmm256: mnemonics.Vpunpcklwd,
	VexVpunpckldqXmmXmmXmmm128: mnemonics.Vpunpckldq,
	VexVpunpckldqYmmYmmYmmm256: mnemonics.Vpunpckldq,
	VexVpacksswbXmmXmmXmmm128: mnemonics.Vpacksswb,
	VexVpacksswbYmmYmmYmmm256: mnemonics.Vpacksswb,
	VexVpcmpgtbXmmXmmXmmm128: mnemonics.Vpcmpgtb,
	VexVpcmpgtbYmmYmmYmmm256: mnemonics.Vpcmpgtb,
	VexVpcmpgtwXmmXmmXmmm128: mnemonics.Vpcmpgtw,
	VexVpcmpgtwYmmYmmYmmm256: mnemonics.Vpcmpgtw,
	VexVpcmpgtdXmmXmmXmmm128: mnemonics.Vpcmpgtd,
	VexVpcmpgtdYmmYmmYmmm256: mnemonics.Vpcmpgtd,
	VexVpackuswbXmmXmmXmmm128: mnemonics.Vpackuswb,
	VexVpackuswbYmmYmmYmmm256: mnemonics.Vpackuswb,
	VexVpunpckhbwXmmXmmXmmm128: mnemonics.Vpunpckhbw,
	VexVpunpckhbwYmmYmmYmmm256: mnemonics.Vpunpckhbw,
	VexVpunpckhwdXmmXmmXmmm128: mnemonics.Vpunpckhwd,
	VexVpunpckhwdYmmYmmYmmm256: mnemonics.Vpunpckhwd,
	VexVpunpckhdqXmmXmmXmmm128: mnemonics.Vpunpckhdq,
	VexVpunpckhdqYmmYmmYmmm256: mnemonics.Vpunpckhdq,
	VexVpackssdwXmmXmmXmmm128: mnemonics.Vpackssdw,
	VexVpackssdwYmmYmmYmmm256: mnemonics.Vpackssdw,
	VexVpunpcklqdqXmmXmmXmmm128: mnemonics.Vpunpcklqdq,
	VexVpunpcklqdqYmmYmmYmmm256: mnemonics.Vpunpcklqdq,
	VexVpunpckhqdqXmmXmmXmmm128: mnemonics.Vpunpckhqdq,
	VexVpunpckhqdqYmmYmmYmmm256: mnemonics.Vpunpckhqdq,
	VexVpcmpeqwXmmXmmXmmm128: mnemonics.Vpcmpeqw,
	VexVpcmpeqwYmmYmmYmmm256: mnemonics.Vpcmpeqw,
	VexVpmullwXmmXmmXmmm128: mnemonics.Vpmullw,
	VexVpmullwYmmYmmYmmm256: mnemonics.Vpmullw,
	VexVpsubusbXmmXmmXmmm128: mnemonics.Vpsubusb,
	VexVpsubusbYmmYmmYmmm256: mnemonics.Vpsubusb,
	VexVpsubuswXmmXmmXmmm128: mnemonics.Vpsubusw,
	VexVpsubuswYmmYmmYmmm256: mnemonics.Vpsubusw,
	VexVpminubXmmXmmXmmm128: mnemonics.Vpminub,
	VexVpminubYmmYmmYmmm256: mnemonics.Vpminub,
	VexVpaddusbXmmXmmXmmm128: mnemonics.Vpaddusb,
	VexVpaddusbYmmYmmYmmm256: mnemonics.Vpaddusb,
	VexVpadduswXmmXmmXmmm128: mnemonics.Vpaddusw,
	VexVpadduswYmmYmmYmmm256: mnemonics.Vpaddusw,
	VexVpmaxubXmmXmmXmmm128: mnemonics.Vpmaxub,
	VexVpmaxubYmmYmmYmmm256: mnemonics.Vpmaxub,
	VexVpandnXmmXmmXmmm128: mnemonics.Vpandn,
	VexVpandnYmmYmmYmmm256: mnemonics.Vpandn,
	VexVpavgbXmmXmmXmmm128: mnemonics.Vpavgb,
	VexVpavgbYmmYmmYmmm256: mnemonics.Vpavgb,
	VexVpavgwXmmXmmXmmm128: mnemonics.Vpavgw,
	VexVpavgwYmmYmmYmmm256: mnemonics.Vpavgw,
	VexVpmulhuwXmmXmmXmmm128: mnemonics.Vpmulhuw,
	VexVpmulhuwYmmYmmYmmm256: mnemonics.Vpmulhuw,
	VexVpmulhwXmmXmmXmmm128: mnemonics.Vpmulhw,
	VexVpmulhwYmmYmmYmmm256: mnemonics.Vpmulhw,
	VexVpsubsbXmmXmmXmmm128: mnemonics.Vpsubsb,
	VexVpsubsbYmmYmmYmmm256: mnemonics.Vpsubsb,
	VexVpsubswXmmXmmXmmm128: mnemonics.Vpsubsw,
	VexVpsubswYmmYmmYmmm256: mnemonics.Vpsubsw,
	VexVpminswXmmXmmXmmm128: mnemonics.Vpminsw,
	VexVpminswYmmYmmYmmm256: mnemonics.Vpminsw,
	VexVpaddsbXmmXmmXmmm128: mnemonics.Vpaddsb,
	VexVpaddsbYmmYmmYmmm256: mnemonics.Vpaddsb,
	VexVpaddswXmmXmmXmmm128: mnemonics.Vpaddsw,
	VexVpaddswYmmYmmYmmm256: mnemonics.Vpaddsw,
	VexVpmaxswXmmXmmXmmm128: mnemonics.Vpmaxsw,
	VexVpmaxswYmmYmmYmmm256: mnemonics.Vpmaxsw,
	VexVpmuludqXmmXmmXmmm128: mnemonics.Vpmuludq,
	VexVpmuludqYmmYmmYmmm256: mnemonics.Vpmuludq,
	VexVpmaddwdXmmXmmXmmm128: mnemonics.Vpmaddwd,
	VexVpmaddwdYmmYmmYmmm256: mnemonics.Vpmaddwd,
	VexVpsadbwXmmXmmXmmm128: mnemonics.Vpsadbw,
	VexVpsadbwYmmYmmYmmm256: mnemonics.Vpsadbw,
	VexVpsubbXmmXmmXmmm128: mnemonics.Vpsubb,
	VexVpsubbYmmYmmYmmm256: mnemonics.Vpsubb,
	VexVpsubwXmmXmmXmmm128: mnemonics.Vpsubw,
	VexVpsubwYmmYmmYmmm256: mnemonics.Vpsubw,
	VexVpsubqXmmXmmXmmm128: mnemonics.Vpsubq,
	VexVpsubqYmmYmmYmmm256: mnemonics.Vpsubq,
	VexVpaddbXmmXmmXmmm128: mnemonics.Vpaddb,
	VexVpaddbYmmYmmYmmm256: mnemonics.Vpaddb,
	VexVpaddwXmmXmmXmmm128: mnemonics.Vpaddw,
	VexVpaddwYmmYmmYmmm256: mnemonics.Vpaddw,
	VexVpsrlwXmmXmmXmmm128: mnemonics.Vpsrlw,
	VexVpsrlwYmmYmmXmmm128: mnemonics.Vpsrlw,
	VexVpsrldXmmXmmXmmm128: mnemonics.Vpsrld,
	VexVpsrldYmmYmmXmmm128: mnemonics.Vpsrld,
	VexVpsrlqXmmXmmXmmm128: mnemonics.Vpsrlq,
	VexVpsrlqYmmYmmXmmm128: mnemonics.Vpsrlq,
	VexVpsrawXmmXmmXmmm128: mnemonics.Vpsraw,
	VexVpsrawYmmYmmXmmm128: mnemonics.Vpsraw,
	VexVpsradXmmXmmXmmm128: mnemonics.Vpsrad,
	VexVpsradYmmYmmXmmm128: mnemonics.Vpsrad,
	VexVpsllwXmmXmmXmmm128: mnemonics.Vpsllw,
	VexVpsllwYmmYmmXmmm128: mnemonics.Vpsllw,
	VexVpslldXmmXmmXmmm128: mnemonics.Vpslld,
	VexVpslldYmmYmmXmmm128: mnemonics.Vpslld,
	VexVpsllqXmmXmmXmmm128: mnemonics.Vpsllq,
	VexVpsllqYmmYmmXmmm128: mnemonics.Vpsllq,
	VexVmovdXmmRm32: mnemonics.Vmovd,
	VexVmovqXmmRm64: mnemonics.Vmovq,
	VexVpshufdXmmXmmm128Imm8: mnemonics.Vpshufd,
	VexVpshufdYmmYmmm256Imm8: mnemonics.Vpshufd,
	VexVpshufhwXmmXmmm128Imm8: mnemonics.Vpshufhw,
	VexVpshufhwYmmYmmm256Imm8: mnemonics.Vpshufhw,
	VexVpshuflwXmmXmmm128Imm8: mnemonics.Vpshuflw,
	VexVpshuflwYmmYmmm256Imm8: mnemonics.Vpshuflw,
	VexVpsrlwXmmXmmImm8: mnemonics.Vpsrlw,
	VexVpsrlwYmmYmmImm8: mnemonics.Vpsrlw,
	VexVpsrawXmmXmmImm8: mnemonics.Vpsraw,
	VexVpsrawYmmYmmImm8: mnemonics.Vpsraw,
	VexVpsllwXmmXmmImm8: mnemonics.Vpsllw,
	VexVpsllwYmmYmmImm8: mnemonics.Vpsllw,
	VexVpsrldXmmXmmImm8: mnemonics.Vpsrld,
	VexVpsrldYmmYmmImm8: mnemonics.Vpsrld,
	VexVpsradXmmXmmImm8: mnemonics.Vpsrad,
	VexVpsradYmmYmmImm8: mnemonics.Vpsrad,
	VexVpslldXmmXmmImm8: mnemonics.Vpslld,
	VexVpslldYmmYmmImm8: mnemonics.Vpslld,
	VexVpsrlqXmmXmmImm8: mnemonics.Vpsrlq,
	VexVpsrlqYmmYmmImm8: mnemonics.Vpsrlq,
	VexVpsrldqXmmXmmImm8: mnemonics.Vpsrldq,
	VexVpsrldqYmmYmmImm8: mnemonics.Vpsrldq,
	VexVpsllqXmmXmmImm8: mnemonics.Vpsllq,
	VexVpsllqYmmYmmImm8: mnemonics.Vpsllq,
	VexVpslldqXmmXmmImm8: mnemonics.Vpslldq,
	VexVpslldqYmmYmmImm8: mnemonics.Vpslldq,
	VexVhaddpdXmmXmmXmmm128: mnemonics.Vhaddpd,
	VexVhaddpdYmmYmmYmmm256: mnemonics.Vhaddpd,
	VexVhaddpsXmmXmmXmmm128: mnemonics.Vhaddps,
	VexVhaddpsYmmYmmYmmm256: mnemonics.Vhaddps,
	VexVhsubpdXmmXmmXmmm128: mnemonics.Vhsubpd,
	VexVhsubpdYmmYmmYmmm256: mnemonics.Vhsubpd,
	VexVhsubpsXmmXmmXmmm128: mnemonics.Vhsubps,
	VexVhsubpsYmmYmmYmmm256: mnemonics.Vhsubps,
	VexVmovdRm32Xmm: mnemonics.Vmovd,
	VexVmovqRm64Xmm: mnemonics.Vmovq,
	VexVmovqXmmXmmm64: mnemonics.Vmovq,
	VexVcmpssXmmXmmXmmm32Imm8: mnemonics.Vcmpss,
	VexVcmpsdXmmXmmXmmm64Imm8: mnemonics.Vcmpsd,
	VexVpinsrwXmmXmmR32m16Imm8: mnemonics.Vpinsrw,
	VexVpinsrwXmmXmmR64m16Imm8: mnemonics.Vpinsrw,
	VexVpextrwR32XmmImm8: mnemonics.Vpextrw,
	VexVpextrwR64XmmImm8: mnemonics.Vpextrw,
	VexVshufpsXmmXmmXmmm128Imm8: mnemonics.Vshufps,
	VexVshufpsYmmYmmYmmm256Imm8: mnemonics.Vshufps,
	VexVshufpdXmmXmmXmmm128Imm8: mnemonics.Vshufpd,
	VexVshufpdYmmYmmYmmm256Imm8: mnemonics.Vshufpd,
	VexVaddsubpdXmmXmmXmmm128: mnemonics.Vaddsubpd,
	VexVaddsubpdYmmYmmYmmm256: mnemonics.Vaddsubpd,
	VexVaddsubpsXmmXmmXmmm128: mnemonics.Vaddsubps,
	VexVaddsubpsYmmYmmYmmm256: mnemonics.Vaddsubps,
	VexVmovqXmmm64Xmm: mnemonics.Vmovq,
	VexVcvttpd2dqXmmXmmm128: mnemonics.Vcvttpd2dq,
	VexVcvttpd2dqXmmYmmm256: mnemonics.Vcvttpd2dq,
	VexVcvtdq2pdXmmXmmm64: mnemonics.Vcvtdq2pd,
	VexVcvtdq2pdYmmXmmm128: mnemonics.Vcvtdq2pd,
	VexVcvtpd2dqXmmXmmm128: mnemonics.Vcvtpd2dq,
	VexVcvtpd2dqXmmYmmm256: mnemonics.Vcvtpd2dq,
	VexVmovntdqM128Xmm: mnemonics.Vmovntdq,
	VexVmovntdqM256Ymm: mnemonics.Vmovntdq,
	VexVlddquXmmM128: mnemonics.Vlddqu,
	VexVlddquYmmM256: mnemonics.Vlddqu,
	VexVmaskmovdquXmmXmm: mnemonics.Vmaskmovdqu,
	VexVphaddwXmmXmmXmmm128: mnemonics.Vphaddw,
	VexVphaddwYmmYmmYmmm256: mnemonics.Vphaddw,
	VexVphadddXmmXmmXmmm128: mnemonics.Vphaddd,
	VexVphadddYmmYmmYmmm256: mnemonics.Vphaddd,
	VexVphaddswXmmXmmXmmm128: mnemonics.Vphaddsw,
	VexVphaddswYmmYmmYmmm256: mnemonics.Vphaddsw,
	VexVpmaddubswXmmXmmXmmm128: mnemonics.Vpmaddubsw,
	VexVpmaddubswYmmYmmYmmm256: mnemonics.Vpmaddubsw,
	VexVphsubwXmmXmmXmmm128: mnemonics.Vphsubw,
	VexVphsubwYmmYmmYmmm256: mnemonics.Vphsubw,
	VexVphsubdXmmXmmXmmm128: mnemonics.Vphsubd,
	VexVphsubdYmmYmmYmmm256: mnemonics.Vphsubd,
	VexVphsubswXmmXmmXmmm128: mnemonics.Vphsubsw,
	VexVphsubswYmmYmmYmmm256: mnemonics.Vphsubsw,
	VexVpsignbXmmXmmXmmm128: mnemonics.Vpsignb,
	VexVpsignbYmmYmmYmmm256: mnemonics.Vpsignb,
	VexVpsignwXmmXmmXmmm128: mnemonics.Vpsignw,
	VexVpsignwYmmYmmYmmm256: mnemonics.Vpsignw,
	VexVpsigndXmmXmmXmmm128: mnemonics.Vpsignd,
	VexVpsigndYmmYmmYmmm256: mnemonics.Vpsignd,
	VexVpmulhrswXmmXmmXmmm128: mnemonics.Vpmulhrsw,
	VexVpmulhrswYmmYmmYmmm256: mnemonics.Vpmulhrsw,
	VexVpmuldqXmmXmmXmmm128: mnemonics.Vpmuldq,
	VexVpmuldqYmmYmmYmmm256: mnemonics.Vpmuldq,
	VexVpcmpeqqXmmXmmXmmm128: mnemonics.Vpcmpeqq,
	VexVpcmpeqqYmmYmmYmmm256: mnemonics.Vpcmpeqq,
	VexVpackusdwXmmXmmXmmm128: mnemonics.Vpackusdw,
	VexVpackusdwYmmYmmYmmm256: mnemonics.Vpackusdw,
	VexVpcmpgtqXmmXmmXmmm128: mnemonics.Vpcmpgtq,
	VexVpcmpgtqYmmYmmYmmm256: mnemonics.Vpcmpgtq,
	VexVpminsbXmmXmmXmmm128: mnemonics.Vpminsb,
	VexVpminsbYmmYmmYmmm256: mnemonics.Vpminsb,
	VexVpminsdXmmXmmXmmm128: mnemonics.Vpminsd,
	VexVpminsdYmmYmmYmmm256: mnemonics.Vpminsd,
	VexVpminuwXmmXmmXmmm128: mnemonics.Vpminuw,
	VexVpminuwYmmYmmYmmm256: mnemonics.Vpminuw,
	VexVpminudXmmXmmXmmm128: mnemonics.Vpminud,
	VexVpminudYmmYmmYmmm256: mnemonics.Vpminud,
	VexVpmaxsbXmmXmmXmmm128: mnemonics.Vpmaxsb,
	VexVpmaxsbYmmYmmYmmm256: mnemonics.Vpmaxsb,
	VexVpmaxsdXmmXmmXmmm128: mnemonics.Vpmaxsd,
	VexVpmaxsdYmmYmmYmmm256: mnemonics.Vpmaxsd,
	VexVpmaxuwXmmXmmXmmm128: mnemonics.Vpmaxuw,
	VexVpmaxuwYmmYmmYmmm256: mnemonics.Vpmaxuw,
	VexVpmaxudXmmXmmXmmm128: mnemonics.Vpmaxud,
	VexVpmaxudYmmYmmYmmm256: mnemonics.Vpmaxud,
	VexVpmulldXmmXmmXmmm128: mnemonics.Vpmulld,
	VexVpmulldYmmYmmYmmm256: mnemonics.Vpmulld,
	VexVpermilpsXmmXmmXmmm128: mnemonics.Vpermilps,
	VexVpermilpsYmmYmmYmmm256: mnemonics.Vpermilps,
	VexVpermilpdXmmXmmXmmm128: mnemonics.Vpermilpd,
	VexVpermilpdYmmYmmYmmm256: mnemonics.Vpermilpd,
	VexVtestpsXmmXmmm128: mnemonics.Vtestps,
	VexVtestpsYmmYmmm256: mnemonics.Vtestps,
	VexVtestpdXmmXmmm128: mnemonics.Vtestpd,
	VexVtestpdYmmYmmm256: mnemonics.Vtestpd,
	VexVcvtph2psXmmXmmm64: mnemonics.Vcvtph2ps,
	VexVcvtph2psYmmXmmm128: mnemonics.Vcvtph2ps,
	VexVpermpsYmmYmmYmmm256: mnemonics.Vpermps,
	VexVbroadcastsdYmmXmmm64: mnemonics.Vbroadcastsd,
	VexVbroadcastf128YmmM128: mnemonics.Vbroadcastf128,
	VexVpabsbXmmXmmm128: mnemonics.Vpabsb,
	VexVpabsbYmmYmmm256: mnemonics.Vpabsb,
	VexVpabswXmmXmmm128: mnemonics.Vpabsw,
	VexVpabswYmmYmmm256: mnemonics.Vpabsw,
	VexVpabsdXmmXmmm128: mnemonics.Vpabsd,
	VexVpabsdYmmYmmm256: mnemonics.Vpabsd,
	VexVpmovsxbwXmmXmmm64: mnemonics.Vpmovsxbw,
	VexVpmovsxbwYmmXmmm128: mnemonics.Vpmovsxbw,
	VexVpmovsxbdXmmXmmm32: mnemonics.Vpmovsxbd,
	VexVpmovsxbdYmmXmmm64: mnemonics.Vpmovsxbd,
	VexVpmovsxbqXmmXmmm16: mnemonics.Vpmovsxbq,
	VexVpmovsxbqYmmXmmm32: mnemonics.Vpmovsxbq,
	VexVpmovsxwdXmmXmmm64: mnemonics.Vpmovsxwd,
	VexVpmovsxwdYmmXmmm128: mnemonics.Vpmovsxwd,
	VexVpmovsxwqXmmXmmm32: mnemonics.Vpmovsxwq,
	VexVpmovsxwqYmmXmmm64: mnemonics.Vpmovsxwq,
	VexVpmovsxdqXmmXmmm64: mnemonics.Vpmovsxdq,
	VexVpmovsxdqYmmXmmm128: mnemonics.Vpmovsxdq,
	VexVpmovzxbwXmmXmmm64: mnemonics.Vpmovzxbw,
	VexVpmovzxbwYmmXmmm128: mnemonics.Vpmovzxbw,
	VexVpmovzxbdXmmXmmm32: mnemonics.Vpmovzxbd,
	VexVpmovzxbdYmmXmmm64: mnemonics.Vpmovzxbd,
	VexVpmovzxbqXmmXmmm16: mnemonics.Vpmovzxbq,
	VexVpmovzxbqYmmXmmm32: mnemonics.Vpmovzxbq,
	VexVpmovzxwdXmmXmmm64: mnemonics.Vpmovzxwd,
	VexVpmovzxwdYmmXmmm128: mnemonics.Vpmovzxwd,
	VexVpmovzxwqXmmXmmm32: mnemonics.Vpmovzxwq,
	VexVpmovzxwqYmmXmmm64: mnemonics.Vpmovzxwq,
	VexVpmovzxdqXmmXmmm64: mnemonics.Vpmovzxdq,
	VexVpmovzxdqYmmXmmm128: mnemonics.Vpmovzxdq,
	VexVmovntdqaXmmM128: mnemonics.Vmovntdqa,
	VexVmovntdqaYmmM256: mnemonics.Vmovntdqa,
	VexVmaskmovpsXmmXmmM128: mnemonics.Vmaskmovps,
	VexVmaskmovpsYmmYmmM256: mnemonics.Vmaskmovps,
	VexVmaskmovpdXmmXmmM128: mnemonics.Vmaskmovpd,
	VexVmaskmovpdYmmYmmM256: mnemonics.Vmaskmovpd,
	VexVmaskmovpsM128XmmXmm: mnemonics.Vmaskmovps,
	VexVmaskmovpsM256YmmYmm: mnemonics.Vmaskmovps,
	VexVmaskmovpdM128XmmXmm: mnemonics.Vmaskmovpd,
	VexVmaskmovpdM256YmmYmm: mnemonics.Vmaskmovpd,
	VexVphminposuwXmmXmmm128: mnemonics.Vphminposuw,
	VexVpsrlvdXmmXmmXmmm128: mnemonics.Vpsrlvd,
	VexVpsrlvdYmmYmmYmmm256: mnemonics.Vpsrlvd,
	VexVpsrlvqXmmXmmXmmm128: mnemonics.Vpsrlvq,
	VexVpsrlvqYmmYmmYmmm256: mnemonics.Vpsrlvq,
	VexVpsllvdXmmXmmXmmm128: mnemonics.Vpsllvd,
	VexVpsllvdYmmYmmYmmm256: mnemonics.Vpsllvd,
	VexVpsllvqXmmXmmXmmm128: mnemonics.Vpsllvq,
	VexVpsllvqYmmYmmYmmm256: mnemonics.Vpsllvq,
	VexVpsravdXmmXmmXmmm128: mnemonics.Vpsravd,
	VexVpsravdYmmYmmYmmm256: mnemonics.Vpsravd,
	VexVpbroadcastqXmmXmmm64: mnemonics.Vpbroadcastq,
	VexVpbroadcastqYmmXmmm64: mnemonics.Vpbroadcastq,
	VexVbroadcasti128YmmM128: mnemonics.Vbroadcasti128,
	VexVpbroadcastbXmmXmmm8: mnemonics.Vpbroadcastb,
	VexVpbroadcastbYmmXmmm8: mnemonics.Vpbroadcastb,
	VexVpbroadcastwXmmXmmm16: mnemonics.Vpbroadcastw,
	VexVpbroadcastwYmmXmmm16: mnemonics.Vpbroadcastw,
	VexVpmaskmovdXmmXmmM128: mnemonics.Vpmaskmovd,
	VexVpmaskmovdYmmYmmM256: mnemonics.Vpmaskmovd,
	VexVpmaskmovqXmmXmmM128: mnemonics.Vpmaskmovq,
	VexVpmaskmovqYmmYmmM256: mnemonics.Vpmaskmovq,
	VexVpmaskmovdM128XmmXmm: mnemonics.Vpmaskmovd,
	VexVpmaskmovdM256YmmYmm: mnemonics.Vpmaskmovd,
	VexVpmaskmovqM128XmmXmm: mnemonics.Vpmaskmovq,
	VexVpmaskmovqM256YmmYmm: mnemonics.Vpmaskmovq,
	VexVpgatherddXmmVm32xXmm: mnemonics.Vpgatherdd,
	VexVpgatherddYmmVm32yYmm: mnemonics.Vpgatherdd,
	VexVpgatherdqXmmVm32xXmm: mnemonics.Vpgatherdq,
	VexVpgatherdqYmmVm32xYmm: mnemonics.Vpgatherdq,
	VexVpgatherqdXmmVm64xXmm: mnemonics.Vpgatherqd,
	VexVpgatherqdXmmVm64yXmm: mnemonics.Vpgatherqd,
	VexVpgatherqqXmmVm64xXmm: mnemonics.Vpgatherqq,
	VexVpgatherqqYmmVm64yYmm: mnemonics.Vpgatherqq,
	VexVgatherdpsXmmVm32xXmm: mnemonics.Vgatherdps,
	VexVgatherdpsYmmVm32yYmm: mnemonics.Vgatherdps,
	VexVgatherdpdXmmVm32xXmm: mnemonics.Vgatherdpd,
	VexVgatherdpdYmmVm32xYmm: mnemonics.Vgatherdpd,
	VexVgatherqpsXmmVm64xXmm: mnemonics.Vgatherqps,
	VexVgatherqpsXmmVm64yXmm: mnemonics.Vgatherqps,
	VexVgatherqpdXmmVm64xXmm: mnemonics.Vgatherqpd,
	VexVgatherqpdYmmVm64yYmm: mnemonics.Vgatherqpd,
	VexVfmaddsub132psXmmXmmXmmm128: mnemonics.Vfmaddsub132ps,
	VexVfmaddsub132psYmmYmmYmmm256: mnemonics.Vfmaddsub132ps,
	VexVfmaddsub132pdXmmXmmXmmm128: mnemonics.Vfmaddsub132pd,
	VexVfmaddsub132pdYmmYmmYmmm256: mnemonics.Vfmaddsub132pd,
	VexVfmsubadd132psXmmXmmXmmm128: mnemonics.Vfmsubadd132ps,
	VexVfmsubadd132psYmmYmmYmmm256: mnemonics.Vfmsubadd132ps,
	VexVfmsubadd132pdXmmXmmXmmm128: mnemonics.Vfmsubadd132pd,
	VexVfmsubadd132pdYmmYmmYmmm256: mnemonics.Vfmsubadd132pd,
	VexVfmsub132psXmmXmmXmmm128: mnemonics.Vfmsub132ps,
	VexVfmsub132psYmmYmmYmmm256: mnemonics.Vfmsub132ps,
	VexVfmsub132pdXmmXmmXmmm128: mnemonics.Vfmsub132pd,
	VexVfmsub132pdYmmYmmYmmm256: mnemonics.Vfmsub132pd,
	VexVfmsub132ssXmmXmmXmmm32: mnemonics.Vfmsub132ss,
	VexVfmsub132sdXmmXmmXmmm64: mnemonics.Vfmsub132sd,
	VexVfnmadd132psXmmXmmXmmm128: mnemonics.Vfnmadd132ps,
	VexVfnmadd132psYmmYmmYmmm256: mnemonics.Vfnmadd132ps,
	VexVfnmadd132pdXmmXmmXmmm128: mnemonics.Vfnmadd132pd,
	VexVfnmadd132pdYmmYmmYmmm256: mnemonics.Vfnmadd132pd,
	VexVfnmadd132ssXmmXmmXmmm32: mnemonics.Vfnmadd132ss,
	VexVfnmadd132sdXmmXmmXmmm64: mnemonics.Vfnmadd132sd,
	VexVfnmsub132psXmmXmmXmmm128: mnemonics.Vfnmsub132ps,
	VexVfnmsub132psYmmYmmYmmm256: mnemonics.Vfnmsub132ps,
	VexVfnmsub132pdXmmXmmXmmm128: mnemonics.Vfnmsub132pd,
	VexVfnmsub132pdYmmYmmYmmm256: mnemonics.Vfnmsub132pd,
	VexVfnmsub132ssXmmXmmXmmm32: mnemonics.Vfnmsub132ss,
	VexVfnmsub132sdXmmXmmXmmm64: mnemonics.Vfnmsub132sd,
	VexVfmaddsub213psXmmXmmXmmm128: mnemonics.Vfmaddsub213ps,
	VexVfmaddsub213psYmmYmmYmmm256: mnemonics.Vfmaddsub213ps,
	VexVfmaddsub213pdXmmXmmXmmm128: mnemonics.Vfmaddsub213pd,
	VexVfmaddsub213pdYmmYmmYmmm256: mnemonics.Vfmaddsub213pd,
	VexVfmsubadd213psXmmXmmXmmm128: mnemonics.Vfmsubadd213ps,
	VexVfmsubadd213psYmmYmmYmmm256: mnemonics.Vfmsubadd213ps,
	VexVfmsubadd213pdXmmXmmXmmm128: mnemonics.Vfmsubadd213pd,
	VexVfmsubadd213pdYmmYmmYmmm256: mnemonics.Vfmsubadd213pd,
	VexVfmsub213psXmmXmmXmmm128: mnemonics.Vfmsub213ps,
	VexVfmsub213psYmmYmmYmmm256: mnemonics.Vfmsub213ps,
	VexVfmsub213pdXmmXmmXmmm128: mnemonics.Vfmsub213pd,
	VexVfmsub213pdYmmYmmYmmm256: mnemonics.Vfmsub213pd,
	VexVfmsub213ssXmmXmmXmmm32: mnemonics.Vfmsub213ss,
	VexVfmsub213sdXmmXmmXmmm64: mnemonics.Vfmsub213sd,
	VexVfnmadd213psXmmXmmXmmm128: mnemonics.Vfnmadd213ps,
	VexVfnmadd213psYmmYmmYmmm256: mnemonics.Vfnmadd213ps,
	VexVfnmadd213pdXmmXmmXmmm128: mnemonics.Vfnmadd213pd,
	VexVfnmadd213pdYmmYmmYmmm256: mnemonics.Vfnmadd213pd,
	VexVfnmadd213ssXmmXmmXmmm32: mnemonics.Vfnmadd213ss,
	VexVfnmadd213sdXmmXmmXmmm64: mnemonics.Vfnmadd213sd,
	VexVfnmsub213psXmmXmmXmmm128: mnemonics.Vfnmsub213ps,
	VexVfnmsub213psYmmYmmYmmm256: mnemonics.Vfnmsub213ps,
	VexVfnmsub213pdXmmXmmXmmm128: mnemonics.Vfnmsub213pd,
	VexVfnmsub213pdYmmYmmYmmm256: mnemonics.Vfnmsub213pd,
	VexVfnmsub213ssXmmXmmXmmm32: mnemonics.Vfnmsub213ss,
	VexVfnmsub213sdXmmXmmXmmm64: mnemonics.Vfnmsub213sd,
	VexVfmaddsub231psXmmXmmXmmm128: mnemonics.Vfmaddsub231ps,
	VexVfmaddsub231psYmmYmmYmmm256: mnemonics.Vfmaddsub231ps,
	VexVfmaddsub231pdXmmXmmXmmm128: mnemonics.Vfmaddsub231pd,
	VexVfmaddsub231pdYmmYmmYmmm256: mnemonics.Vfmaddsub231pd,
	VexVfmsubadd231psXmmXmmXmmm128: mnemonics.Vfmsubadd231ps,
	VexVfmsubadd231psYmmYmmYmmm256: mnemonics.Vfmsubadd231ps,
	VexVfmsubadd231pdXmmXmmXmmm128: mnemonics.Vfmsubadd231pd,
	VexVfmsubadd231pdYmmYmmYmmm256: mnemonics.Vfmsubadd231pd,
	VexVfmsub231psXmmXmmXmmm128: mnemonics.Vfmsub231ps,
	VexVfmsub231psYmmYmmYmmm256: mnemonics.Vfmsub231ps,
	VexVfmsub231pdXmmXmmXmmm128: mnemonics.Vfmsub231pd,
	VexVfmsub231pdYmmYmmYmmm256: mnemonics.Vfmsub231pd,
	VexVfmsub231ssXmmXmmXmmm32: mnemonics.Vfmsub231ss,
	VexVfmsub231sdXmmXmmXmmm64: mnemonics.Vfmsub231sd,
	VexVfnmadd231psXmmXmmXmmm128: mnemonics.Vfnmadd231ps,
	VexVfnmadd231psYmmYmmYmmm256: mnemonics.Vfnmadd231ps,
	VexVfnmadd231pdXmmXmmXmmm128: mnemonics.Vfnmadd231pd,
	VexVfnmadd231pdYmmYmmYmmm256: mnemonics.Vfnmadd231pd,
	VexVfnmadd231ssXmmXmmXmmm32: mnemonics.Vfnmadd231ss,
	VexVfnmadd231sdXmmXmmXmmm64: mnemonics.Vfnmadd231sd,
	VexVfnmsub231psXmmXmmXmmm128: mnemonics.Vfnmsub231ps,
	VexVfnmsub231psYmmYmmYmmm256: mnemonics.Vfnmsub231ps,
	VexVfnmsub231pdXmmXmmXmmm128: mnemonics.Vfnmsub231pd,
	VexVfnmsub231pdYmmYmmYmmm256: mnemonics.Vfnmsub231pd,
	VexVfnmsub231ssXmmXmmXmmm32: mnemonics.Vfnmsub231ss,
	VexVfnmsub231sdXmmXmmXmmm64: mnemonics.Vfnmsub231sd,
	VexVaesimcXmmXmmm128: mnemonics.Vaesimc,
	VexVaesencXmmXmmXmmm128: mnemonics.Vaesenc,
	VexVaesencYmmYmmYmmm256: mnemonics.Vaesenc,
	VexVaesenclastXmmXmmXmmm128: mnemonics.Vaesenclast,
	VexVaesenclastYmmYmmYmmm256: mnemonics.Vaesenclast,
	VexVaesdecXmmXmmXmmm128: mnemonics.Vaesdec,
	VexVaesdecYmmYmmYmmm256: mnemonics.Vaesdec,
	VexVaesdeclastXmmXmmXmmm128: mnemonics.Vaesdeclast,
	VexVaesdeclastYmmYmmYmmm256: mnemonics.Vaesdeclast,
	VexVpermpdYmmYmmm256Imm8: mnemonics.Vpermpd,
	VexVpblenddXmmXmmXmmm128Imm8: mnemonics.Vpblendd,
	VexVpblenddYmmYmmYmmm256Imm8: mnemonics.Vpblendd,
	VexVpermilpsXmmXmmm128Imm8: mnemonics.Vpermilps,
	VexVpermilpsYmmYmmm256Imm8: mnemonics.Vpermilps,
	VexVpermilpdXmmXmmm128Imm8: mnemonics.Vpermilpd,
	VexVpermilpdYmmYmmm256Imm8: mnemonics.Vpermilpd,
	VexVperm2f128YmmYmmYmmm256Imm8: mnemonics.Vperm2f128,
	VexVroundpsXmmXmmm128Imm8: mnemonics.Vroundps,
	VexVroundpsYmmYmmm256Imm8: mnemonics.Vroundps,
	VexVroundpdXmmXmmm128Imm8: mnemonics.Vroundpd,
	VexVroundpdYmmYmmm256Imm8: mnemonics.Vroundpd,
	VexVroundssXmmXmmXmmm32Imm8: mnemonics.Vroundss,
	VexVroundsdXmmXmmXmmm64Imm8: mnemonics.Vroundsd,
	VexVblendpdXmmXmmXmmm128Imm8: mnemonics.Vblendpd,
	VexVblendpdYmmYmmYmmm256Imm8: mnemonics.Vblendpd,
	VexVpblendwXmmXmmXmmm128Imm8: mnemonics.Vpblendw,
	VexVpblendwYmmYmmYmmm256Imm8: mnemonics.Vpblendw,
	VexVpalignrXmmXmmXmmm128Imm8: mnemonics.Vpalignr,
	VexVpalignrYmmYmmYmmm256Imm8: mnemonics.Vpalignr,
	VexVpextrbR32m8XmmImm8: mnemonics.Vpextrb,
	VexVpextrbR64m8XmmImm8: mnemonics.Vpextrb,
	VexVpextrwR32m16XmmImm8: mnemonics.Vpextrw,
	VexVpextrwR64m16XmmImm8: mnemonics.Vpextrw,
	VexVpextrdRm32XmmImm8: mnemonics.Vpextrd,
	VexVpextrqRm64XmmImm8: mnemonics.Vpextrq,
	VexVextractpsRm32XmmImm8: mnemonics.Vextractps,
	VexVcvtps2phXmmm64XmmImm8: mnemonics.Vcvtps2ph,
	VexVcvtps2phXmmm128YmmImm8: mnemonics.Vcvtps2ph,
	VexVpinsrbXmmXmmR32m8Imm8: mnemonics.Vpinsrb,
	VexVpinsrbXmmXmmR64m8Imm8: mnemonics.Vpinsrb,
	VexVinsertpsXmmXmmXmmm32Imm8: mnemonics.Vinsertps,
	VexVpinsrdXmmXmmRm32Imm8: mnemonics.Vpinsrd,
	VexVpinsrqXmmXmmRm64Imm8: mnemonics.Vpinsrq,
	VexVinserti128YmmYmmXmmm128Imm8: mnemonics.Vinserti128,
	VexVextracti128Xmmm128YmmImm8: mnemonics.Vextracti128,
	VexVdppsXmmXmmXmmm128Imm8: mnemonics.Vdpps,
	VexVdppsYmmYmmYmmm256Imm8: mnemonics.Vdpps,
	VexVdppdXmmXmmXmmm128Imm8: mnemonics.Vdppd,
	VexVmpsadbwXmmXmmXmmm128Imm8: mnemonics.Vmpsadbw,
	VexVmpsadbwYmmYmmYmmm256Imm8: mnemonics.Vmpsadbw,
	VexVpclmulqdqXmmXmmXmmm128Imm8: mnemonics.Vpclmulqdq,
	VexVpclmulqdqYmmYmmYmmm256Imm8: mnemonics.Vpclmulqdq,
	VexVperm2i128YmmYmmYmmm256Imm8: mnemonics.Vperm2i128,
	VexVpblendvbXmmXmmXmmm128Xmm: mnemonics.Vpblendvb,
	VexVpblendvbYmmYmmYmmm256Ymm: mnemonics.Vpblendvb,
	VexVpcmpestrmXmmXmmm128Imm8: mnemonics.Vpcmpestrm,
	VexVpcmpestriXmmXmmm128Imm8: mnemonics.Vpcmpestri,
	VexVpcmpistrmXmmXmmm128Imm8: mnemonics.Vpcmpistrm,
	VexVpcmpistriXmmXmmm128Imm8: mnemonics.Vpcmpistri,
	VexVaeskeygenassistXmmXmmm128Imm8: mnemonics.Vaeskeygenassist,
	EvexVmovupsXmmK1zXmmm128: mnemonics.Vmovups,
	EvexVmovupsYmmK1zYmmm256: mnemonics.Vmovups,
	EvexVmovupsZmmK1zZmmm512: mnemonics.Vmovups,
	EvexVmovupdXmmK1zXmmm128: mnemonics.Vmovupd,
	EvexVmovupdYmmK1zYmmm256: mnemonics.Vmovupd,
	EvexVmovupdZmmK1zZmmm512: mnemonics.Vmovupd,
	EvexVmovupsXmmm128K1Xmm: mnemonics.Vmovups,
	EvexVmovupsYmmm256K1Ymm: mnemonics.Vmovups,
	EvexVmovupsZmmm512K1Zmm: mnemonics.Vmovups,
	EvexVmovupdXmmm128K1Xmm: mnemonics.Vmovupd,
	EvexVmovupdYmmm256K1Ymm: mnemonics.Vmovupd,
	EvexVmovupdZmmm512K1Zmm: mnemonics.Vmovupd,
	EvexVmovapsXmmK1zXmmm128: mnemonics.Vmovaps,
	EvexVmovapsYmmK1zYmmm256: mnemonics.Vmovaps,
	EvexVmovapsZmmK1zZmmm512: mnemonics.Vmovaps,
	EvexVmovapdXmmK1zXmmm128: mnemonics.Vmovapd,
	EvexVmovapdYmmK1zYmmm256: mnemonics.Vmovapd,
	EvexVmovapdZmmK1zZmmm512: mnemonics.Vmovapd,
	EvexVmovapsXmmm128K1Xmm: mnemonics.Vmovaps,
	EvexVmovapsYmmm256K1Ymm: mnemonics.Vmovaps,
	EvexVmovapsZmmm512K1Zmm: mnemonics.Vmovaps,
	EvexVmovapdXmmm128K1Xmm: mnemonics.Vmovapd,
	EvexVmovapdYmmm256K1Ymm: mnemonics.Vmovapd,
	EvexVmovapdZmmm512K1Zmm: mnemonics.Vmovapd,
	EvexVsqrtpsXmmK1zXmmm128B32: mnemonics.Vsqrtps,
	EvexVsqrtpsYmmK1zYmmm256B32: mnemonics.Vsqrtps,
	EvexVsqrtpsZmmK1zZmmm512B32Er: mnemonics.Vsqrtps,
	EvexVsqrtpdXmmK1zXmmm128B64: mnemonics.Vsqrtpd,
	EvexVsqrtpdYmmK1zYmmm256B64: mnemonics.Vsqrtpd,
	EvexVsqrtpdZmmK1zZmmm512B64Er: mnemonics.Vsqrtpd,
	EvexVsqrtssXmmK1zXmmXmmm32Er: mnemonics.Vsqrtss,
	EvexVsqrtsdXmmK1zXmmXmmm64Er: mnemonics.Vsqrtsd,
	EvexVaddpsXmmK1zXmmXmmm128B32: mnemonics.Vaddps,
	EvexVaddpsYmmK1zYmmYmmm256B32: mnemonics.Vaddps,
	EvexVaddpsZmmK1zZmmZmmm512B32Er: mnemonics.Vaddps,
	EvexVaddpdXmmK1zXmmXmmm128B64: mnemonics.Vaddpd,
	EvexVaddpdYmmK1zYmmYmmm256B64: mnemonics.Vaddpd,
	EvexVaddpdZmmK1zZmmZmmm512B64Er: mnemonics.Vaddpd,
	EvexVaddssXmmK1zXmmXmmm32Er: mnemonics.Vaddss,
	EvexVaddsdXmmK1zXmmXmmm64Er: mnemonics.Vaddsd,
	EvexVmulpsXmmK1zXmmXmmm128B32: mnemonics.Vmulps,
	EvexVmulpsYmmK1zYmmYmmm256B32: mnemonics.Vmulps,
	EvexVmulpsZmmK1zZmmZmmm512B32Er: mnemonics.Vmulps,
	EvexVmulpdXmmK1zXmmXmmm128B64: mnemonics.Vmulpd,
	EvexVmulpdYmmK1zYmmYmmm256B64: mnemonics.Vmulpd,
	EvexVmulpdZmmK1zZmmZmmm512B64Er: mnemonics.Vmulpd,
	EvexVmulssXmmK1zXmmXmmm32Er: mnemonics.Vmulss,
	EvexVmulsdXmmK1zXmmXmmm64Er: mnemonics.Vmulsd,
	EvexVsubpsXmmK1zXmmXmmm128B32: mnemonics.Vsubps,
	EvexVsubpsYmmK1zYmmYmmm256B32: mnemonics.Vsubps,
	EvexVsubpsZmmK1zZmmZmmm512B32Er: mnemonics.Vsubps,
	EvexVsubpdXmmK1zXmmXmmm128B64: mnemonics.Vsubpd,
	EvexVsubpdYmmK1zYmmYmmm256B64: mnemonics.Vsubpd,
	EvexVsubpdZmmK1zZmmZmmm512B64Er: mnemonics.Vsubpd,
	EvexVsubssXmmK1zXmmXmmm32Er: mnemonics.Vsubss,
	EvexVsubsdXmmK1zXmmXmmm64Er: mnemonics.Vsubsd,
	EvexVdivpsXmmK1zXmmXmmm128B32: mnemonics.Vdivps,
	EvexVdivpsYmmK1zYmmYmmm256B32: mnemonics.Vdivps,
	EvexVdivpsZmmK1zZmmZmmm512B32Er: mnemonics.Vdivps,
	EvexVdivpdXmmK1zXmmXmmm128B64: mnemonics.Vdivpd,
	EvexVdivpdYmmK1zYmmYmmm256B64: mnemonics.Vdivpd,
	EvexVdivpdZmmK1zZmmZmmm512B64Er: mnemonics.Vdivpd,
	EvexVdivssXmmK1zXmmXmmm32Er: mnemonics.Vdivss,
	EvexVdivsdXmmK1zXmmXmmm64Er: mnemonics.Vdivsd,
	EvexVminpsXmmK1zXmmXmmm128B32: mnemonics.Vminps,
	EvexVminpsYmmK1zYmmYmmm256B32: mnemonics.Vminps,
	EvexVminpsZmmK1zZmmZmmm512B32Sae: mnemonics.Vminps,
	EvexVminpdXmmK1zXmmXmmm128B64: mnemonics.Vminpd,
	EvexVminpdYmmK1zYmmYmmm256B64: mnemonics.Vminpd,
	EvexVminpdZmmK1zZmmZmmm512B64Sae: mnemonics.Vminpd,
	EvexVminssXmmK1zXmmXmmm32Sae: mnemonics.Vminss,
	EvexVminsdXmmK1zXmmXmmm64Sae: mnemonics.Vminsd,
	EvexVmaxpsXmmK1zXmmXmmm128B32: mnemonics.Vmaxps,
	EvexVmaxpsYmmK1zYmmYmmm256B32: mnemonics.Vmaxps,
	EvexVmaxpsZmmK1zZmmZmmm512B32Sae: mnemonics.Vmaxps,
	EvexVmaxpdXmmK1zXmmXmmm128B64: mnemonics.Vmaxpd,
	EvexVmaxpdYmmK1zYmmYmmm256B64: mnemonics.Vmaxpd,
	EvexVmaxpdZmmK1zZmmZmmm512B64Sae: mnemonics.Vmaxpd,
	EvexVmaxssXmmK1zXmmXmmm32Sae: mnemonics.Vmaxss,
	EvexVmaxsdXmmK1zXmmXmmm64Sae: mnemonics.Vmaxsd,
	EvexVandpsXmmK1zXmmXmmm128B32: mnemonics.Vandps,
	EvexVandpsYmmK1zYmmYmmm256B32: mnemonics.Vandps,
	EvexVandpsZmmK1zZmmZmmm512B32: mnemonics.Vandps,
	EvexVandpdXmmK1zXmmXmmm128B64: mnemonics.Vandpd,
	EvexVandpdYmmK1zYmmYmmm256B64: mnemonics.Vandpd,
	EvexVandpdZmmK1zZmmZmmm512B64: mnemonics.Vandpd,
	EvexVxorpsXmmK1zXmmXmmm128B32: mnemonics.Vxorps,
	EvexVxorpsYmmK1zYmmYmmm256B32: mnemonics.Vxorps,
	EvexVxorpsZmmK1zZmmZmmm512B32: mnemonics.Vxorps,
	EvexVxorpdXmmK1zXmmXmmm128B64: mnemonics.Vxorpd,
	EvexVxorpdYmmK1zYmmYmmm256B64: mnemonics.Vxorpd,
	EvexVxorpdZmmK1zZmmZmmm512B64: mnemonics.Vxorpd,
	EvexVucomissXmmXmmm32Sae: mnemonics.Vucomiss,
	EvexVucomisdXmmXmmm64Sae: mnemonics.Vucomisd,
	EvexVcomissXmmXmmm32Sae: mnemonics.Vcomiss,
	EvexVcomisdXmmXmmm64Sae: mnemonics.Vcomisd,
	EvexVmovdqa32XmmK1zXmmm128: mnemonics.Vmovdqa32,
	EvexVmovdqa32YmmK1zYmmm256: mnemonics.Vmovdqa32,
	EvexVmovdqa32ZmmK1zZmmm512: mnemonics.Vmovdqa32,
	EvexVmovdqa64XmmK1zXmmm128: mnemonics.Vmovdqa64,
	EvexVmovdqa64YmmK1zYmmm256: mnemonics.Vmovdqa64,
	EvexVmovdqa64ZmmK1zZmmm512: mnemonics.Vmovdqa64,
	EvexVmovdqa32Xmmm128K1Xmm: mnemonics.Vmovdqa32,
	EvexVmovdqa32Ymmm256K1Ymm: mnemonics.Vmovdqa32,
	EvexVmovdqa32Zmmm512K1Zmm: mnemonics.Vmovdqa32,
	EvexVmovdqa64Xmmm128K1Xmm: mnemonics.Vmovdqa64,
	EvexVmovdqa64Ymmm256K1Ymm: mnemonics.Vmovdqa64,
	EvexVmovdqa64Zmmm512K1Zmm: mnemonics.Vmovdqa64,
	EvexVmovdqu32XmmK1zXmmm128: mnemonics.Vmovdqu32,
	EvexVmovdqu32YmmK1zYmmm256: mnemonics.Vmovdqu32,
	EvexVmovdqu32ZmmK1zZmmm512: mnemonics.Vmovdqu32,
	EvexVmovdqu64XmmK1zXmmm128: mnemonics.Vmovdqu64,
	EvexVmovdqu64YmmK1zYmmm256: mnemonics.Vmovdqu64,
	EvexVmovdqu64ZmmK1zZmmm512: mnemonics.Vmovdqu64,
	EvexVmovdqu32Xmmm128K1Xmm: mnemonics.Vmovdqu32,
	EvexVmovdqu32Ymmm256K1Ymm: mnemonics.Vmovdqu32,
	EvexVmovdqu32Zmmm512K1Zmm: mnemonics.Vmovdqu32,
	EvexVmovdqu64Xmmm128K1Xmm: mnemonics.Vmovdqu64,
	EvexVmovdqu64Ymmm256K1Ymm: mnemonics.Vmovdqu64,
	EvexVmovdqu64Zmmm512K1Zmm: mnemonics.Vmovdqu64,
	EvexVmovdqu8XmmK1zXmmm128: mnemonics.Vmovdqu8,
	EvexVmovdqu8YmmK1zYmmm256: mnemonics.Vmovdqu8,
	EvexVmovdqu8ZmmK1zZmmm512: mnemonics.Vmovdqu8,
	EvexVmovdqu16XmmK1zXmmm128: mnemonics.Vmovdqu16,
	EvexVmovdqu16YmmK1zYmmm256: mnemonics.Vmovdqu16,
	EvexVmovdqu16ZmmK1zZmmm512: mnemonics.Vmovdqu16,
	EvexVmovdqu8Xmmm128K1Xmm: mnemonics.Vmovdqu8,
	EvexVmovdqu8Ymmm256K1Ymm: mnemonics.Vmovdqu8,
	EvexVmovdqu8Zmmm512K1Zmm: mnemonics.Vmovdqu8,
	EvexVmovdqu16Xmmm128K1Xmm: mnemonics.Vmovdqu16,
	EvexVmovdqu16Ymmm256K1Ymm: mnemonics.Vmovdqu16,
	EvexVmovdqu16Zmmm512K1Zmm: mnemonics.Vmovdqu16,
	EvexVpanddXmmK1zXmmXmmm128B32: mnemonics.Vpandd,
	EvexVpanddYmmK1zYmmYmmm256B32: mnemonics.Vpandd,
	EvexVpanddZmmK1zZmmZmmm512B32: mnemonics.Vpandd,
	EvexVpandqXmmK1zXmmXmmm128B64: mnemonics.Vpandq,
	EvexVpandqYmmK1zYmmYmmm256B64: mnemonics.Vpandq,
	EvexVpandqZmmK1zZmmZmmm512B64: mnemonics.Vpandq,
	EvexVpordXmmK1zXmmXmmm128B32: mnemonics.Vpord,
	EvexVpordYmmK1zYmmYmmm256B32: mnemonics.Vpord,
	EvexVpordZmmK1zZmmZmmm512B32: mnemonics.Vpord,
	EvexVporqXmmK1zXmmXmmm128B64: mnemonics.Vporq,
	EvexVporqYmmK1zYmmYmmm256B64: mnemonics.Vporq,
	EvexVporqZmmK1zZmmZmmm512B64: mnemonics.Vporq,
	EvexVpxordXmmK1zXmmXmmm128B32: mnemonics.Vpxord,
	EvexVpxordYmmK1zYmmYmmm256B32: mnemonics.Vpxord,
	EvexVpxordZmmK1zZmmZmmm512B32: mnemonics.Vpxord,
	EvexVpxorqXmmK1zXmmXmmm128B64: mnemonics.Vpxorq,
	EvexVpxorqYmmK1zYmmYmmm256B64: mnemonics.Vpxorq,
	EvexVpxorqZmmK1zZmmZmmm512B64: mnemonics.Vpxorq,
	EvexVpadddXmmK1zXmmXmmm128B32: mnemonics.Vpaddd,
	EvexVpadddYmmK1zYmmYmmm256B32: mnemonics.Vpaddd,
	EvexVpadddZmmK1zZmmZmmm512B32: mnemonics.Vpaddd,
	EvexVpaddqXmmK1zXmmXmmm128B64: mnemonics.Vpaddq,
	EvexVpaddqYmmK1zYmmYmmm256B64: mnemonics.Vpaddq,
	EvexVpaddqZmmK1zZmmZmmm512B64: mnemonics.Vpaddq,
	EvexVpsubdXmmK1zXmmXmmm128B32: mnemonics.Vpsubd,
	EvexVpsubdYmmK1zYmmYmmm256B32: mnemonics.Vpsubd,
	EvexVpsubdZmmK1zZmmZmmm512B32: mnemonics.Vpsubd,
	EvexVprordXmmK1zXmmm128B32Imm8: mnemonics.Vprord,
	EvexVprordYmmK1zYmmm256B32Imm8: mnemonics.Vprord,
	EvexVprordZmmK1zZmmm512B32Imm8: mnemonics.Vprord,
	EvexVprorqXmmK1zXmmm128B64Imm8: mnemonics.Vprorq,
	EvexVprorqYmmK1zYmmm256B64Imm8: mnemonics.Vprorq,
	EvexVprorqZmmK1zZmmm512B64Imm8: mnemonics.Vprorq,
	EvexVproldXmmK1zXmmm128B32Imm8: mnemonics.Vprold,
	EvexVproldYmmK1zYmmm256B32Imm8: mnemonics.Vprold,
	EvexVproldZmmK1zZmmm512B32Imm8: mnemonics.Vprold,
	EvexVprolqXmmK1zXmmm128B64Imm8: mnemonics.Vprolq,
	EvexVprolqYmmK1zYmmm256B64Imm8: mnemonics.Vprolq,
	EvexVprolqZmmK1zZmmm512B64Imm8: mnemonics.Vprolq,
	EvexVpsradXmmK1zXmmm128B32Imm8: mnemonics.Vpsrad,
	EvexVpsradYmmK1zYmmm256B32Imm8: mnemonics.Vpsrad,
	EvexVpsradZmmK1zZmmm512B32Imm8: mnemonics.Vpsrad,
	EvexVpsraqXmmK1zXmmm128B64Imm8: mnemonics.Vpsraq,
	EvexVpsraqYmmK1zYmmm256B64Imm8: mnemonics.Vpsraq,
	EvexVpsraqZmmK1zZmmm512B64Imm8: mnemonics.Vpsraq,
	EvexVbroadcastssYmmK1zXmmm32: mnemonics.Vbroadcastss,
	EvexVbroadcastssZmmK1zXmmm32: mnemonics.Vbroadcastss,
	EvexVpbroadcastdXmmK1zXmmm32: mnemonics.Vpbroadcastd,
	EvexVpbroadcastdYmmK1zXmmm32: mnemonics.Vpbroadcastd,
	EvexVpbroadcastdZmmK1zXmmm32: mnemonics.Vpbroadcastd,
	EvexVpblendmdXmmK1zXmmXmmm128B32: mnemonics.Vpblendmd,
	EvexVpblendmdYmmK1zYmmYmmm256B32: mnemonics.Vpblendmd,
	EvexVpblendmdZmmK1zZmmZmmm512B32: mnemonics.Vpblendmd,
	EvexVpblendmqXmmK1zXmmXmmm128B64: mnemonics.Vpblendmq,
	EvexVpblendmqYmmK1zYmmYmmm256B64: mnemonics.Vpblendmq,
	EvexVpblendmqZmmK1zZmmZmmm512B64: mnemonics.Vpblendmq,
	EvexVfmadd132psXmmK1zXmmXmmm128B32: mnemonics.Vfmadd132ps,
	EvexVfmadd132psYmmK1zYmmYmmm256B32: mnemonics.Vfmadd132ps,
	EvexVfmadd132psZmmK1zZmmZmmm512B32Er: mnemonics.Vfmadd132ps,
	EvexVfmadd132pdXmmK1zXmmXmmm128B64: mnemonics.Vfmadd132pd,
	EvexVfmadd132pdYmmK1zYmmYmmm256B64: mnemonics.Vfmadd132pd,
	EvexVfmadd132pdZmmK1zZmmZmmm512B64Er: mnemonics.Vfmadd132pd,
	EvexVfmadd132ssXmmK1zXmmXmmm32Er: mnemonics.Vfmadd132ss,
	EvexVfmadd132sdXmmK1zXmmXmmm64Er: mnemonics.Vfmadd132sd,
	EvexVfmadd213psXmmK1zXmmXmmm128B32: mnemonics.Vfmadd213ps,
	EvexVfmadd213psYmmK1zYmmYmmm256B32: mnemonics.Vfmadd213ps,
	EvexVfmadd213psZmmK1zZmmZmmm512B32Er: mnemonics.Vfmadd213ps,
	EvexVfmadd213pdXmmK1zXmmXmmm128B64: mnemonics.Vfmadd213pd,
	EvexVfmadd213pdYmmK1zYmmYmmm256B64: mnemonics.Vfmadd213pd,
	EvexVfmadd213pdZmmK1zZmmZmmm512B64Er: mnemonics.Vfmadd213pd,
	EvexVfmadd213ssXmmK1zXmmXmmm32Er: mnemonics.Vfmadd213ss,
	EvexVfmadd213sdXmmK1zXmmXmmm64Er: mnemonics.Vfmadd213sd,
	EvexVfmadd231psXmmK1zXmmXmmm128B32: mnemonics.Vfmadd231ps,
	EvexVfmadd231psYmmK1zYmmYmmm256B32: mnemonics.Vfmadd231ps,
	EvexVfmadd231psZmmK1zZmmZmmm512B32Er: mnemonics.Vfmadd231ps,
	EvexVfmadd231pdXmmK1zXmmXmmm128B64: mnemonics.Vfmadd231pd,
	EvexVfmadd231pdYmmK1zYmmYmmm256B64: mnemonics.Vfmadd231pd,
	EvexVfmadd231pdZmmK1zZmmZmmm512B64Er: mnemonics.Vfmadd231pd,
	EvexVfmadd231ssXmmK1zXmmXmmm32Er: mnemonics.Vfmadd231ss,
	EvexVfmadd231sdXmmK1zXmmXmmm64Er: mnemonics.Vfmadd231sd,
	EvexValigndXmmK1zXmmXmmm128B32Imm8: mnemonics.Valignd,
	EvexValigndYmmK1zYmmYmmm256B32Imm8: mnemonics.Valignd,
	EvexValigndZmmK1zZmmZmmm512B32Imm8: mnemonics.Valignd,
	EvexValignqXmmK1zXmmXmmm128B64Imm8: mnemonics.Valignq,
	EvexValignqYmmK1zYmmYmmm256B64Imm8: mnemonics.Valignq,
	EvexValignqZmmK1zZmmZmmm512B64Imm8: mnemonics.Valignq,
	EvexVrndscalepsXmmK1zXmmm128B32Imm8: mnemonics.Vrndscaleps,
	EvexVrndscalepsYmmK1zYmmm256B32Imm8: mnemonics.Vrndscaleps,
	EvexVrndscalepsZmmK1zZmmm512B32Imm8Sae: mnemonics.Vrndscaleps,
	EvexVrndscalepdXmmK1zXmmm128B64Imm8: mnemonics.Vrndscalepd,
	EvexVrndscalepdYmmK1zYmmm256B64Imm8: mnemonics.Vrndscalepd,
	EvexVrndscalepdZmmK1zZmmm512B64Imm8Sae: mnemonics.Vrndscalepd,
	EvexVrndscalessXmmK1zXmmXmmm32Imm8Sae: mnemonics.Vrndscaless,
	EvexVrndscalesdXmmK1zXmmXmmm64Imm8Sae: mnemonics.Vrndscalesd,
	EvexVpcmpudKrK1XmmXmmm128B32Imm8: mnemonics.Vpcmpud,
	EvexVpcmpudKrK1YmmYmmm256B32Imm8: mnemonics.Vpcmpud,
	EvexVpcmpudKrK1ZmmZmmm512B32Imm8: mnemonics.Vpcmpud,
	EvexVpcmpuqKrK1XmmXmmm128B64Imm8: mnemonics.Vpcmpuq,
	EvexVpcmpuqKrK1YmmYmmm256B64Imm8: mnemonics.Vpcmpuq,
	EvexVpcmpuqKrK1ZmmZmmm512B64Imm8: mnemonics.Vpcmpuq,
	EvexVpcmpdKrK1XmmXmmm128B32Imm8: mnemonics.Vpcmpd,
	EvexVpcmpdKrK1YmmYmmm256B32Imm8: mnemonics.Vpcmpd,
	EvexVpcmpdKrK1ZmmZmmm512B32Imm8: mnemonics.Vpcmpd,
	EvexVpcmpqKrK1XmmXmmm128B64Imm8: mnemonics.Vpcmpq,
	EvexVpcmpqKrK1YmmYmmm256B64Imm8: mnemonics.Vpcmpq,
	EvexVpcmpqKrK1ZmmZmmm512B64Imm8: mnemonics.Vpcmpq,
	EvexVmovssXmmK1zM32: mnemonics.Vmovss,
	EvexVmovssXmmK1zXmmXmm: mnemonics.Vmovss,
	EvexVmovsdXmmK1zM64: mnemonics.Vmovsd,
	EvexVmovsdXmmK1zXmmXmm: mnemonics.Vmovsd,
	EvexVmovssM32K1Xmm: mnemonics.Vmovss,
	EvexVmovsdM64K1Xmm: mnemonics.Vmovsd,
	EvexVunpcklpsXmmK1zXmmXmmm128B32: mnemonics.Vunpcklps,
	EvexVunpcklpsYmmK1zYmmYmmm256B32: mnemonics.Vunpcklps,
	EvexVunpcklpsZmmK1zZmmZmmm512B32: mnemonics.Vunpcklps,
	EvexVunpcklpdXmmK1zXmmXmmm128B64: mnemonics.Vunpcklpd,
	EvexVunpcklpdYmmK1zYmmYmmm256B64: mnemonics.Vunpcklpd,
	EvexVunpcklpdZmmK1zZmmZmmm512B64: mnemonics.Vunpcklpd,
	EvexVunpckhpsXmmK1zXmmXmmm128B32: mnemonics.Vunpckhps,
	EvexVunpckhpsYmmK1zYmmYmmm256B32: mnemonics.Vunpckhps,
	EvexVunpckhpsZmmK1zZmmZmmm512B32: mnemonics.Vunpckhps,
	EvexVunpckhpdXmmK1zXmmXmmm128B64: mnemonics.Vunpckhpd,
	EvexVunpckhpdYmmK1zYmmYmmm256B64: mnemonics.Vunpckhpd,
	EvexVunpckhpdZmmK1zZmmZmmm512B64: mnemonics.Vunpckhpd,
	EvexVcvtsi2ssXmmXmmRm32Er: mnemonics.Vcvtsi2ss,
	EvexVcvtsi2ssXmmXmmRm64Er: mnemonics.Vcvtsi2ss,
	EvexVcvtsi2sdXmmXmmRm32Er: mnemonics.Vcvtsi2sd,
	EvexVcvtsi2sdXmmXmmRm64Er: mnemonics.Vcvtsi2sd,
	EvexVmovntpsM128Xmm: mnemonics.Vmovntps,
	EvexVmovntpsM256Ymm: mnemonics.Vmovntps,
	EvexVmovntpsM512Zmm: mnemonics.Vmovntps,
	EvexVmovntpdM128Xmm: mnemonics.Vmovntpd,
	EvexVmovntpdM256Ymm: mnemonics.Vmovntpd,
	EvexVmovntpdM512Zmm: mnemonics.Vmovntpd,
	EvexVcvttss2siR32Xmmm32Sae: mnemonics.Vcvttss2si,
	EvexVcvttss2siR64Xmmm32Sae: mnemonics.Vcvttss2si,
	EvexVcvttsd2siR32Xmmm64Sae: mnemonics.Vcvttsd2si,
	EvexVcvttsd2siR64Xmmm64Sae: mnemonics.Vcvttsd2si,
	EvexVcvtss2siR32Xmmm32Er: mnemonics.Vcvtss2si,
	EvexVcvtss2siR64Xmmm32Er: mnemonics.Vcvtss2si,
	EvexVcvtsd2siR32Xmmm64Er: mnemonics.Vcvtsd2si,
	EvexVcvtsd2siR64Xmmm64Er: mnemonics.Vcvtsd2si,
	EvexVandnpsXmmK1zXmmXmmm128B32: mnemonics.Vandnps,
	EvexVandnpsYmmK1zYmmYmmm256B32: mnemonics.Vandnps,
	EvexVandnpsZmmK1zZmmZmmm512B32: mnemonics.Vandnps,
	EvexVandnpdXmmK1zXmmXmmm128B64: mnemonics.Vandnpd,
	EvexVandnpdYmmK1zYmmYmmm256B64: mnemonics.Vandnpd,
	EvexVandnpdZmmK1zZmmZmmm512B64: mnemonics.Vandnpd,
	EvexVorpsXmmK1zXmmXmmm128B32: mnemonics.Vorps,
	EvexVorpsYmmK1zYmmYmmm256B32: mnemonics.Vorps,
	EvexVorpsZmmK1zZmmZmmm512B32: mnemonics.Vorps,
	EvexVorpdXmmK1zXmmXmmm128B64: mnemonics.Vorpd,
	EvexVorpdYmmK1zYmmYmmm256B64: mnemonics.Vorpd,
	EvexVorpdZmmK1zZmmZmmm512B64: mnemonics.Vorpd,
	EvexVcvtps2pdXmmK1zXmmm64: mnemonics.Vcvtps2pd,
	EvexVcvtps2pdYmmK1zXmmm128: mnemonics.Vcvtps2pd,
	EvexVcvtps2pdZmmK1zYmmm256Sae: mnemonics.Vcvtps2pd,
	EvexVcvtpd2psXmmK1zXmmm128B64: mnemonics.Vcvtpd2ps,
	EvexVcvtpd2psXmmK1zYmmm256B64: mnemonics.Vcvtpd2ps,
	EvexVcvtpd2psYmmK1zZmmm512B64Er: mnemonics.Vcvtpd2ps,
	EvexVcvtss2sdXmmK1zXmmXmmm32Sae: mnemonics.Vcvtss2sd,
	EvexVcvtsd2ssXmmK1zXmmXmmm64Er: mnemonics.Vcvtsd2ss,
	EvexVcvtdq2psXmmK1zXmmm128B32: mnemonics.Vcvtdq2ps,
	EvexVcvtdq2psYmmK1zYmmm256B32: mnemonics.Vcvtdq2ps,
	EvexVcvtdq2psZmmK1zZmmm512B32Er: mnemonics.Vcvtdq2ps,
	EvexVcvtps2dqXmmK1zXmmm128B32: mnemonics.Vcvtps2dq,
	EvexVcvtps2dqYmmK1zYmmm256B32: mnemonics.Vcvtps2dq,
	EvexVcvtps2dqZmmK1zZmmm512B32Er: mnemonics.Vcvtps2dq,
	EvexVcvttps2dqXmmK1zXmmm128B32: mnemonics.Vcvttps2dq,
	EvexVcvttps2dqYmmK1zYmmm256B32: mnemonics.Vcvttps2dq,
	EvexVcvttps2dqZmmK1zZmmm512B32Sae: mnemonics.Vcvttps2dq,
	EvexVpunpcklbwXmmK1zXmmXmmm128: mnemonics.Vpunpcklbw,
	EvexVpunpcklbwYmmK1zYmmYmmm256: mnemonics.Vpunpcklbw,
	EvexVpunpcklbwZmmK1zZmmZmmm512: mnemonics.Vpunpcklbw,
	EvexVpunpcklwdXmmK1zXmmXmmm128: mnemonics.Vpunpcklwd,
	EvexVpunpcklwdYmmK1zYmmYmmm256: mnemonics.Vpunpcklwd,
	EvexVpunpcklwdZmmK1zZmmZmmm512: mnemonics.Vpunpcklwd,
	EvexVpacksswbXmmK1zXmmXmmm128: mnemonics.Vpacksswb,
	EvexVpacksswbYmmK1zYmmYmmm256: mnemonics.Vpacksswb,
	EvexVpacksswbZmmK1zZmmZmmm512: mnemonics.Vpacksswb,
	EvexVpackuswbXmmK1zXmmXmmm128: mnemonics.Vpackuswb,
	EvexVpackuswbYmmK1zYmmYmmm256: mnemonics.Vpackuswb,
	EvexVpackuswbZmmK1zZmmZmmm512: mnemonics.Vpackuswb,
	EvexVpunpckhbwXmmK1zXmmXmmm128: mnemonics.Vpunpckhbw,
	EvexVpunpckhbwYmmK1zYmmYmmm256: mnemonics.Vpunpckhbw,
	EvexVpunpckhbwZmmK1zZmmZmmm512: mnemonics.Vpunpckhbw,
	EvexVpunpckhwdXmmK1zXmmXmmm128: mnemonics.Vpunpckhwd,
	EvexVpunpckhwdYmmK1zYmmYmmm256: mnemonics.Vpunpckhwd,
	EvexVpunpckhwdZmmK1zZmmZmmm512: mnemonics.Vpunpckhwd,
	EvexVpmullwXmmK1zXmmXmmm128: mnemonics.Vpmullw,
	EvexVpmullwYmmK1zYmmYmmm256: mnemonics.Vpmullw,
	EvexVpmullwZmmK1zZmmZmmm512: mnemonics.Vpmullw,
	EvexVpsubusbXmmK1zXmmXmmm128: mnemonics.Vpsubusb,
	EvexVpsubusbYmmK1zYmmYmmm256: mnemonics.Vpsubusb,
	EvexVpsubusbZmmK1zZmmZmmm512: mnemonics.Vpsubusb,
	EvexVpsubuswXmmK1zXmmXmmm128: mnemonics.Vpsubusw,
	EvexVpsubuswYmmK1zYmmYmmm256: mnemonics.Vpsubusw,
	EvexVpsubuswZmmK1zZmmZmmm512: mnemonics.Vpsubusw,
	EvexVpminubXmmK1zXmmXmmm128: mnemonics.Vpminub,
	EvexVpminubYmmK1zYmmYmmm256: mnemonics.Vpminub,
	EvexVpminubZmmK1zZmmZmmm512: mnemonics.Vpminub,
	EvexVpaddusbXmmK1zXmmXmmm128: mnemonics.Vpaddusb,
	EvexVpaddusbYmmK1zYmmYmmm256: mnemonics.Vpaddusb,
	EvexVpaddusbZmmK1zZmmZmmm512: mnemonics.Vpaddusb,
	EvexVpadduswXmmK1zXmmXmmm128: mnemonics.Vpaddusw,
	EvexVpadduswYmmK1zYmmYmmm256: mnemonics.Vpaddusw,
	EvexVpadduswZmmK1zZmmZmmm512: mnemonics.Vpaddusw,
	EvexVpmaxubXmmK1zXmmXmmm128: mnemonics.Vpmaxub,
	EvexVpmaxubYmmK1zYmmYmmm256: mnemonics.Vpmaxub,
	EvexVpmaxubZmmK1zZmmZmmm512: mnemonics.Vpmaxub,
	EvexVpavgbXmmK1zXmmXmmm128: mnemonics.Vpavgb,
	EvexVpavgbYmmK1zYmmYmmm256: mnemonics.Vpavgb,
	EvexVpavgbZmmK1zZmmZmmm512: mnemonics.Vpavgb,
	EvexVpavgwXmmK1zXmmXmmm128: mnemonics.Vpavgw,
	EvexVpavgwYmmK1zYmmYmmm256: mnemonics.Vpavgw,
	EvexVpavgwZmmK1zZmmZmmm512: mnemonics.Vpavgw,
	EvexVpmulhuwXmmK1zXmmXmmm128: mnemonics.Vpmulhuw,
	EvexVpmulhuwYmmK1zYmmYmmm256: mnemonics.Vpmulhuw,
	EvexVpmulhuwZmmK1zZmmZmmm512: mnemonics.Vpmulhuw,
	EvexVpmulhwXmmK1zXmmXmmm128: mnemonics.Vpmulhw,
	EvexVpmulhwYmmK1zYmmYmmm256: mnemonics.Vpmulhw,
	EvexVpmulhwZmmK1zZmmZmmm512: mnemonics.Vpmulhw,
	EvexVpsubsbXmmK1zXmmXmmm128: mnemonics.Vpsubsb,
	EvexVpsubsbYmmK1zYmmYmmm256: mnemonics.Vpsubsb,
	EvexVpsubsbZmmK1zZmmZmmm512: mnemonics.Vpsubsb,
	EvexVpsubswXmmK1zXmmXmmm128: mnemonics.Vpsubsw,
	EvexVpsubswYmmK1zYmmYmmm256: mnemonics.Vpsubsw,
	EvexVpsubswZmmK1zZmmZmmm512: mnemonics.Vpsubsw,
	EvexVpminswXmmK1zXmmXmmm128: mnemonics.Vpminsw,
	EvexVpminswYmmK1zYmmYmmm256: mnemonics.Vpminsw,
	EvexVpminswZmmK1zZmmZmmm512: mnemonics.Vpminsw,
	EvexVpaddsbXmmK1zXmmXmmm128: mnemonics.Vpaddsb,
	EvexVpaddsbYmmK1zYmmYmmm256: mnemonics.Vpaddsb,
	EvexVpaddsbZmmK1zZmmZmmm512: mnemonics.Vpaddsb,
	EvexVpaddswXmmK1zXmmXmmm128: mnemonics.Vpaddsw,
	EvexVpaddswYmmK1zYmmYmmm256: mnemonics.Vpaddsw,
	EvexVpaddswZmmK1zZmmZmmm512: mnemonics.Vpaddsw,
	EvexVpmaxswXmmK1zXmmXmmm128: mnemonics.Vpmaxsw,
	EvexVpmaxswYmmK1zYmmYmmm256: mnemonics.Vpmaxsw,
	EvexVpmaxswZmmK1zZmmZmmm512: mnemonics.Vpmaxsw,
	EvexVpmaddwdXmmK1zXmmXmmm128: mnemonics.Vpmaddwd,
	EvexVpmaddwdYmmK1zYmmYmmm256: mnemonics.Vpmaddwd,
	EvexVpmaddwdZmmK1zZmmZmmm512: mnemonics.Vpmaddwd,
	EvexVpsubbXmmK1zXmmXmmm128: mnemonics.Vpsubb,
	EvexVpsubbYmmK1zYmmYmmm256: mnemonics.Vpsubb,
	EvexVpsubbZmmK1zZmmZmmm512: mnemonics.Vpsubb,
	EvexVpsubwXmmK1zXmmXmmm128: mnemonics.Vpsubw,
	EvexVpsubwYmmK1zYmmYmmm256: mnemonics.Vpsubw,
	EvexVpsubwZmmK1zZmmZmmm512: mnemonics.Vpsubw,
	EvexVpaddbXmmK1zXmmXmmm128: mnemonics.Vpaddb,
	EvexVpaddbYmmK1zYmmYmmm256: mnemonics.Vpaddb,
	EvexVpaddbZmmK1zZmmZmmm512: mnemonics.Vpaddb,
	EvexVpaddwXmmK1zXmmXmmm128: mnemonics.Vpaddw,
	EvexVpaddwYmmK1zYmmYmmm256: mnemonics.Vpaddw,
	EvexVpaddwZmmK1zZmmZmmm512: mnemonics.Vpaddw,
	EvexVpunpckldqXmmK1zXmmXmmm128B32: mnemonics.Vpunpckldq,
	EvexVpunpckldqYmmK1zYmmYmmm256B32: mnemonics.Vpunpckldq,
	EvexVpunpckldqZmmK1zZmmZmmm512B32: mnemonics.Vpunpckldq,
	EvexVpunpckhdqXmmK1zXmmXmmm128B32: mnemonics.Vpunpckhdq,
	EvexVpunpckhdqYmmK1zYmmYmmm256B32: mnemonics.Vpunpckhdq,
	EvexVpunpckhdqZmmK1zZmmZmmm512B32: mnemonics.Vpunpckhdq,
	EvexVpackssdwXmmK1zXmmXmmm128B32: mnemonics.Vpackssdw,
	EvexVpackssdwYmmK1zYmmYmmm256B32: mnemonics.Vpackssdw,
	EvexVpackssdwZmmK1zZmmZmmm512B32: mnemonics.Vpackssdw,
	EvexVpunpcklqdqXmmK1zXmmXmmm128B64: mnemonics.Vpunpcklqdq,
	EvexVpunpcklqdqYmmK1zYmmYmmm256B64: mnemonics.Vpunpcklqdq,
	EvexVpunpcklqdqZmmK1zZmmZmmm512B64: mnemonics.Vpunpcklqdq,
	EvexVpunpckhqdqXmmK1zXmmXmmm128B64: mnemonics.Vpunpckhqdq,
	EvexVpunpckhqdqYmmK1zYmmYmmm256B64: mnemonics.Vpunpckhqdq,
	EvexVpunpckhqdqZmmK1zZmmZmmm512B64: mnemonics.Vpunpckhqdq,
	EvexVpmuludqXmmK1zXmmXmmm128B64: mnemonics.Vpmuludq,
	EvexVpmuludqYmmK1zYmmYmmm256B64: mnemonics.Vpmuludq,
	EvexVpmuludqZmmK1zZmmZmmm512B64: mnemonics.Vpmuludq,
	EvexVpsubqXmmK1zXmmXmmm128B64: mnemonics.Vpsubq,
	EvexVpsubqYmmK1zYmmYmmm256B64: mnemonics.Vpsubq,
	EvexVpsubqZmmK1zZmmZmmm512B64: mnemonics.Vpsubq,
	EvexVpandndXmmK1zXmmXmmm128B32: mnemonics.Vpandnd,
	EvexVpandndYmmK1zYmmYmmm256B32: mnemonics.Vpandnd,
	EvexVpandndZmmK1zZmmZmmm512B32: mnemonics.Vpandnd,
	EvexVpandnqXmmK1zXmmXmmm128B64: mnemonics.Vpandnq,
	EvexVpandnqYmmK1zYmmYmmm256B64: mnemonics.Vpandnq,
	EvexVpandnqZmmK1zZmmZmmm512B64: mnemonics.Vpandnq,
	EvexVpsadbwXmmXmmXmmm128: mnemonics.Vpsadbw,
	EvexVpsadbwYmmYmmYmmm256: mnemonics.Vpsadbw,
	EvexVpsadbwZmmZmmZmmm512: mnemonics.Vpsadbw,
	EvexVpcmpgtbKrK1XmmXmmm128: mnemonics.Vpcmpgtb,
	EvexVpcmpgtbKrK1YmmYmmm256: mnemonics.Vpcmpgtb,
	EvexVpcmpgtbKrK1ZmmZmmm512: mnemonics.Vpcmpgtb,
	EvexVpcmpgtwKrK1XmmXmmm128: mnemonics.Vpcmpgtw,
	EvexVpcmpgtwKrK1YmmYmmm256: mnemonics.Vpcmpgtw,
	EvexVpcmpgtwKrK1ZmmZmmm512: mnemonics.Vpcmpgtw,
	EvexVpcmpeqbKrK1XmmXmmm128: mnemonics.Vpcmpeqb,
	EvexVpcmpeqbKrK1YmmYmmm256: mnemonics.Vpcmpeqb,
	EvexVpcmpeqbKrK1ZmmZmmm512: mnemonics.Vpcmpeqb,
	EvexVpcmpeqwKrK1XmmXmmm128: mnemonics.Vpcmpeqw,
	EvexVpcmpeqwKrK1YmmYmmm256: mnemonics.Vpcmpeqw,
	EvexVpcmpeqwKrK1ZmmZmmm512: mnemonics.Vpcmpeqw,
	EvexVpcmpgtdKrK1XmmXmmm128B32: mnemonics.Vpcmpgtd,
	EvexVpcmpgtdKrK1YmmYmmm256B32: mnemonics.Vpcmpgtd,
	EvexVpcmpgtdKrK1ZmmZmmm512B32: mnemonics.Vpcmpgtd,
	EvexVpcmpeqdKrK1XmmXmmm128B32: mnemonics.Vpcmpeqd,
	EvexVpcmpeqdKrK1YmmYmmm256B32: mnemonics.Vpcmpeqd,
	EvexVpcmpeqdKrK1ZmmZmmm512B32: mnemonics.Vpcmpeqd,
	EvexVmovdXmmRm32: mnemonics.Vmovd,
	EvexVmovqXmmRm64: mnemonics.Vmovq,
	EvexVmovdRm32Xmm: mnemonics.Vmovd,
	EvexVmovqRm64Xmm: mnemonics.Vmovq,
	EvexVmovqXmmXmmm64: mnemonics.Vmovq,
	EvexVmovqXmmm64Xmm: mnemonics.Vmovq,
	EvexVpshufdXmmK1zXmmm128B32Imm8: mnemonics.Vpshufd,
	EvexVpshufdYmmK1zYmmm256B32Imm8: mnemonics.Vpshufd,
	EvexVpshufdZmmK1zZmmm512B32Imm8: mnemonics.Vpshufd,
	EvexVpshufhwXmmK1zXmmm128Imm8: mnemonics.Vpshufhw,
	EvexVpshufhwYmmK1zYmmm256Imm8: mnemonics.Vpshufhw,
	EvexVpshufhwZmmK1zZmmm512Imm8: mnemonics.Vpshufhw,
	EvexVpshuflwXmmK1zXmmm128Imm8: mnemonics.Vpshuflw,
	EvexVpshuflwYmmK1zYmmm256Imm8: mnemonics.Vpshuflw,
	EvexVpshuflwZmmK1zZmmm512Imm8: mnemonics.Vpshuflw,
	EvexVpsrlwXmmK1zXmmm128Imm8: mnemonics.Vpsrlw,
	EvexVpsrlwYmmK1zYmmm256Imm8: mnemonics.Vpsrlw,
	EvexVpsrlwZmmK1zZmmm512Imm8: mnemonics.Vpsrlw,
	EvexVpsrawXmmK1zXmmm128Imm8: mnemonics.Vpsraw,
	EvexVpsrawYmmK1zYmmm256Imm8: mnemonics.Vpsraw,
	EvexVpsrawZmmK1zZmmm512Imm8: mnemonics.Vpsraw,
	EvexVpsllwXmmK1zXmmm128Imm8: mnemonics.Vpsllw,
	EvexVpsllwYmmK1zYmmm256Imm8: mnemonics.Vpsllw,
	EvexVpsllwZmmK1zZmmm512Imm8: mnemonics.Vpsllw,
	EvexVpsrldXmmK1zXmmm128B32Imm8: mnemonics.Vpsrld,
	EvexVpsrldYmmK1zYmmm256B32Imm8: mnemonics.Vpsrld,
	EvexVpsrldZmmK1zZmmm512B32Imm8: mnemonics.Vpsrld,
	EvexVpslldXmmK1zXmmm128B32Imm8: mnemonics.Vpslld,
	EvexVpslldYmmK1zYmmm256B32Imm8: mnemonics.Vpslld,
	EvexVpslldZmmK1zZmmm512B32Imm8: mnemonics.Vpslld,
	EvexVpsrlqXmmK1zXmmm128B64Imm8: mnemonics.Vpsrlq,
	EvexVpsrlqYmmK1zYmmm256B64Imm8: mnemonics.Vpsrlq,
	EvexVpsrlqZmmK1zZmmm512B64Imm8: mnemonics.Vpsrlq,
	EvexVpsllqXmmK1zXmmm128B64Imm8: mnemonics.Vpsllq,
	EvexVpsllqYmmK1zYmmm256B64Imm8: mnemonics.Vpsllq,
	EvexVpsllqZmmK1zZmmm512B64Imm8: mnemonics.Vpsllq,
	EvexVpsrldqXmmXmmm128Imm8: mnemonics.Vpsrldq,
	EvexVpsrldqYmmYmmm256Imm8: mnemonics.Vpsrldq,
	EvexVpsrldqZmmZmmm512Imm8: mnemonics.Vpsrldq,
	EvexVpslldqXmmXmmm128Imm8: mnemonics.Vpslldq,
	EvexVpslldqYmmYmmm256Imm8: mnemonics.Vpslldq,
	EvexVpslldqZmmZmmm512Imm8: mnemonics.Vpslldq,
	EvexVpsrlwXmmK1zXmmXmmm128: mnemonics.Vpsrlw,
	EvexVpsrlwYmmK1zYmmXmmm128: mnemonics.Vpsrlw,
	EvexVpsrlwZmmK1zZmmXmmm128: mnemonics.Vpsrlw,
	EvexVpsrawXmmK1zXmmXmmm128: mnemonics.Vpsraw,
	EvexVpsrawYmmK1zYmmXmmm128: mnemonics.Vpsraw,
	EvexVpsrawZmmK1zZmmXmmm128: mnemonics.Vpsraw,
	EvexVpsllwXmmK1zXmmXmmm128: mnemonics.Vpsllw,
	EvexVpsllwYmmK1zYmmXmmm128: mnemonics.Vpsllw,
	EvexVpsllwZmmK1zZmmXmmm128: mnemonics.Vpsllw,
	EvexVpsrldXmmK1zXmmXmmm128: mnemonics.Vpsrld,
	EvexVpsrldYmmK1zYmmXmmm128: mnemonics.Vpsrld,
	EvexVpsrldZmmK1zZmmXmmm128: mnemonics.Vpsrld,
	EvexVpsrlqXmmK1zXmmXmmm128: mnemonics.Vpsrlq,
	EvexVpsrlqYmmK1zYmmXmmm128: mnemonics.Vpsrlq,
	EvexVpsrlqZmmK1zZmmXmmm128: mnemonics.Vpsrlq,
	EvexVpsradXmmK1zXmmXmmm128: mnemonics.Vpsrad,
	EvexVpsradYmmK1zYmmXmmm128: mnemonics.Vpsrad,
	EvexVpsradZmmK1zZmmXmmm128: mnemonics.Vpsrad,
	EvexVpsraqXmmK1zXmmXmmm128: mnemonics.Vpsraq,
	EvexVpsraqYmmK1zYmmXmmm128: mnemonics.Vpsraq,
	EvexVpsraqZmmK1zZmmXmmm128: mnemonics.Vpsraq,
	EvexVpslldXmmK1zXmmXmmm128: mnemonics.Vpslld,
	EvexVpslldYmmK1zYmmXmmm128: mnemonics.Vpslld,
	EvexVpslldZmmK1zZmmXmmm128: mnemonics.Vpslld,
	EvexVpsllqXmmK1zXmmXmmm128: mnemonics.Vpsllq,
	EvexVpsllqYmmK1zYmmXmmm128: mnemonics.Vpsllq,
	EvexVpsllqZmmK1zZmmXmmm128: mnemonics.Vpsllq,
	EvexVcmppsKrK1XmmXmmm128B32Imm8: mnemonics.Vcmpps,
	EvexVcmppsKrK1YmmYmmm256B32Imm8: mnemonics.Vcmpps,
	EvexVcmppsKrK1ZmmZmmm512B32Imm8Sae: mnemonics.Vcmpps,
	EvexVcmppdKrK1XmmXmmm128B64Imm8: mnemonics.Vcmppd,
	EvexVcmppdKrK1YmmYmmm256B64Imm8: mnemonics.Vcmppd,
	EvexVcmppdKrK1ZmmZmmm512B64Imm8Sae: mnemonics.Vcmppd,
	EvexVcmpssKrK1XmmXmmm32Imm8Sae: mnemonics.Vcmpss,
	EvexVcmpsdKrK1XmmXmmm64Imm8Sae: mnemonics.Vcmpsd,
	EvexVpinsrwXmmXmmR32m16Imm8: mnemonics.Vpinsrw,
	EvexVpinsrwXmmXmmR64m16Imm8: mnemonics.Vpinsrw,
	EvexVpextrwR32XmmImm8: mnemonics.Vpextrw,
	EvexVpextrwR64XmmImm8: mnemonics.Vpextrw,
	EvexVshufpsXmmK1zXmmXmmm128B32Imm8: mnemonics.Vshufps,
	EvexVshufpsYmmK1zYmmYmmm256B32Imm8: mnemonics.Vshufps,
	EvexVshufpsZmmK1zZmmZmmm512B32Imm8: mnemonics.Vshufps,
	EvexVshufpdXmmK1zXmmXmmm128B64Imm8: mnemonics.Vshufpd,
	EvexVshufpdYmmK1zYmmYmmm256B64Imm8: mnemonics.Vshufpd,
	EvexVshufpdZmmK1zZmmZmmm512B64Imm8: mnemonics.Vshufpd,
	EvexVcvttpd2dqXmmK1zXmmm128B64: mnemonics.Vcvttpd2dq,
	EvexVcvttpd2dqXmmK1zYmmm256B64: mnemonics.Vcvttpd2dq,
	EvexVcvttpd2dqYmmK1zZmmm512B64Sae: mnemonics.Vcvttpd2dq,
	EvexVcvtdq2pdXmmK1zXmmm64: mnemonics.Vcvtdq2pd,
	EvexVcvtdq2pdYmmK1zXmmm128: mnemonics.Vcvtdq2pd,
	EvexVcvtdq2pdZmmK1zYmmm256: mnemonics.Vcvtdq2pd,
	EvexVcvtpd2dqXmmK1zXmmm128B64: mnemonics.Vcvtpd2dq,
	EvexVcvtpd2dqXmmK1zYmmm256B64: mnemonics.Vcvtpd2dq,
	EvexVcvtpd2dqYmmK1zZmmm512B64Er: mnemonics.Vcvtpd2dq,
	EvexVmovntdqM128Xmm: mnemonics.Vmovntdq,
	EvexVmovntdqM256Ymm: mnemonics.Vmovntdq,
	EvexVmovntdqM512Zmm: mnemonics.Vmovntdq,
	EvexVpshufbXmmK1zXmmXmmm128: mnemonics.Vpshufb,
	EvexVpshufbYmmK1zYmmYmmm256: mnemonics.Vpshufb,
	EvexVpshufbZmmK1zZmmZmmm512: mnemonics.Vpshufb,
	EvexVpmaddubswXmmK1zXmmXmmm128: mnemonics.Vpmaddubsw,
	EvexVpmaddubswYmmK1zYmmYmmm256: mnemonics.Vpmaddubsw,
	EvexVpmaddubswZmmK1zZmmZmmm512: mnemonics.Vpmaddubsw,
	EvexVpmulhrswXmmK1zXmmXmmm128: mnemonics.Vpmulhrsw,
	EvexVpmulhrswYmmK1zYmmYmmm256: mnemonics.Vpmulhrsw,
	EvexVpmulhrswZmmK1zZmmZmmm512: mnemonics.Vpmulhrsw,
	EvexVpminsbXmmK1zXmmXmmm128: mnemonics.Vpminsb,
	EvexVpminsbYmmK1zYmmYmmm256: mnemonics.Vpminsb,
	EvexVpminsbZmmK1zZmmZmmm512: mnemonics.Vpminsb,
	EvexVpminuwXmmK1zXmmXmmm128: mnemonics.Vpminuw,
	EvexVpminuwYmmK1zYmmYmmm256: mnemonics.Vpminuw,
	EvexVpminuwZmmK1zZmmZmmm512: mnemonics.Vpminuw,
	EvexVpmaxsbXmmK1zXmmXmmm128: mnemonics.Vpmaxsb,
	EvexVpmaxsbYmmK1zYmmYmmm256: mnemonics.Vpmaxsb,
	EvexVpmaxsbZmmK1zZmmZmmm512: mnemonics.Vpmaxsb,
	EvexVpmaxuwXmmK1zXmmXmmm128: mnemonics.Vpmaxuw,
	EvexVpmaxuwYmmK1zYmmYmmm256: mnemonics.Vpmaxuw,
	EvexVpmaxuwZmmK1zZmmZmmm512: mnemonics.Vpmaxuw,
	EvexVpminsdXmmK1zXmmXmmm128B32: mnemonics.Vpminsd,
	EvexVpminsdYmmK1zYmmYmmm256B32: mnemonics.Vpminsd,
	EvexVpminsdZmmK1zZmmZmmm512B32: mnemonics.Vpminsd,
	EvexVpminsqXmmK1zXmmXmmm128B64: mnemonics.Vpminsq,
	EvexVpminsqYmmK1zYmmYmmm256B64: mnemonics.Vpminsq,
	EvexVpminsqZmmK1zZmmZmmm512B64: mnemonics.Vpminsq,
	EvexVpminudXmmK1zXmmXmmm128B32: mnemonics.Vpminud,
	EvexVpminudYmmK1zYmmYmmm256B32: mnemonics.Vpminud,
	EvexVpminudZmmK1zZmmZmmm512B32: mnemonics.Vpminud,
	EvexVpminuqXmmK1zXmmXmmm128B64: mnemonics.Vpminuq,
	EvexVpminuqYmmK1zYmmYmmm256B64: mnemonics.Vpminuq,
	EvexVpminuqZmmK1zZmmZmmm512B64: mnemonics.Vpminuq,
	EvexVpmaxsdXmmK1zXmmXmmm128B32: mnemonics.Vpmaxsd,
	EvexVpmaxsdYmmK1zYmmYmmm256B32: mnemonics.Vpmaxsd,
	EvexVpmaxsdZmmK1zZmmZmmm512B32: mnemonics.Vpmaxsd,
	EvexVpmaxsqXmmK1zXmmXmmm128B64: mnemonics.Vpmaxsq,
	EvexVpmaxsqYmmK1zYmmYmmm256B64: mnemonics.Vpmaxsq,
	EvexVpmaxsqZmmK1zZmmZmmm512B64: mnemonics.Vpmaxsq,
	EvexVpmaxudXmmK1zXmmXmmm128B32: mnemonics.Vpmaxud,
	EvexVpmaxudYmmK1zYmmYmmm256B32: mnemonics.Vpmaxud,
	EvexVpmaxudZmmK1zZmmZmmm512B32: mnemonics.Vpmaxud,
	EvexVpmaxuqXmmK1zXmmXmmm128B64: mnemonics.Vpmaxuq,
	EvexVpmaxuqYmmK1zYmmYmmm256B64: mnemonics.Vpmaxuq,
	EvexVpmaxuqZmmK1zZmmZmmm512B64: mnemonics.Vpmaxuq,
	EvexVpmulldXmmK1zXmmXmmm128B32: mnemonics.Vpmulld,
	EvexVpmulldYmmK1zYmmYmmm256B32: mnemonics.Vpmulld,
	EvexVpmulldZmmK1zZmmZmmm512B32: mnemonics.Vpmulld,
	EvexVpmullqXmmK1zXmmXmmm128B64: mnemonics.Vpmullq,
	EvexVpmullqYmmK1zYmmYmmm256B64: mnemonics.Vpmullq,
	EvexVpmullqZmmK1zZmmZmmm512B64: mnemonics.Vpmullq,
	EvexVpsrlvdXmmK1zXmmXmmm128B32: mnemonics.Vpsrlvd,
	EvexVpsrlvdYmmK1zYmmYmmm256B32: mnemonics.Vpsrlvd,
	EvexVpsrlvdZmmK1zZmmZmmm512B32: mnemonics.Vpsrlvd,
	EvexVpsrlvqXmmK1zXmmXmmm128B64: mnemonics.Vpsrlvq,
	EvexVpsrlvqYmmK1zYmmYmmm256B64: mnemonics.Vpsrlvq,
	EvexVpsrlvqZmmK1zZmmZmmm512B64: mnemonics.Vpsrlvq,
	EvexVpsravdXmmK1zXmmXmmm128B32: mnemonics.Vpsravd,
	EvexVpsravdYmmK1zYmmYmmm256B32: mnemonics.Vpsravd,
	EvexVpsravdZmmK1zZmmZmmm512B32: mnemonics.Vpsravd,
	EvexVpsravqXmmK1zXmmXmmm128B64: mnemonics.Vpsravq,
	EvexVpsravqYmmK1zYmmYmmm256B64: mnemonics.Vpsravq,
	EvexVpsravqZmmK1zZmmZmmm512B64: mnemonics.Vpsravq,
	EvexVpsllvdXmmK1zXmmXmmm128B32: mnemonics.Vpsllvd,
	EvexVpsllvdYmmK1zYmmYmmm256B32: mnemonics.Vpsllvd,
	EvexVpsllvdZmmK1zZmmZmmm512B32: mnemonics.Vpsllvd,
	EvexVpsllvqXmmK1zXmmXmmm128B64: mnemonics.Vpsllvq,
	EvexVpsllvqYmmK1zYmmYmmm256B64: mnemonics.Vpsllvq,
	EvexVpsllvqZmmK1zZmmZmmm512B64: mnemonics.Vpsllvq,
	EvexVpermi2dXmmK1zXmmXmmm128B32: mnemonics.Vpermi2d,
	EvexVpermi2dYmmK1zYmmYmmm256B32: mnemonics.Vpermi2d,
	EvexVpermi2dZmmK1zZmmZmmm512B32: mnemonics.Vpermi2d,
	EvexVpermi2qXmmK1zXmmXmmm128B64: mnemonics.Vpermi2q,
	EvexVpermi2qYmmK1zYmmYmmm256B64: mnemonics.Vpermi2q,
	EvexVpermi2qZmmK1zZmmZmmm512B64: mnemonics.Vpermi2q,
	EvexVpermt2dXmmK1zXmmXmmm128B32: mnemonics.Vpermt2d,
	EvexVpermt2dYmmK1zYmmYmmm256B32: mnemonics.Vpermt2d,
	EvexVpermt2dZmmK1zZmmZmmm512B32: mnemonics.Vpermt2d,
	EvexVpermt2qXmmK1zXmmXmmm128B64: mnemonics.Vpermt2q,
	EvexVpermt2qYmmK1zYmmYmmm256B64: mnemonics.Vpermt2q,
	EvexVpermt2qZmmK1zZmmZmmm512B64: mnemonics.Vpermt2q,
	EvexVblendmpsXmmK1zXmmXmmm128B32: mnemonics.Vblendmps,
	EvexVblendmpsYmmK1zYmmYmmm256B32: mnemonics.Vblendmps,
	EvexVblendmpsZmmK1zZmmZmmm512B32: mnemonics.Vblendmps,
	EvexVblendmpdXmmK1zXmmXmmm128B64: mnemonics.Vblendmpd,
	EvexVblendmpdYmmK1zYmmYmmm256B64: mnemonics.Vblendmpd,
	EvexVblendmpdZmmK1zZmmZmmm512B64: mnemonics.Vblendmpd,
	EvexVpermi2psXmmK1zXmmXmmm128B32: mnemonics.Vpermi2ps,
	EvexVpermi2psYmmK1zYmmYmmm256B32: mnemonics.Vpermi2ps,
	EvexVpermi2psZmmK1zZmmZmmm512B32: mnemonics.Vpermi2ps,
	EvexVpermi2pdXmmK1zXmmXmmm128B64: mnemonics.Vpermi2pd,
	EvexVpermi2pdYmmK1zYmmYmmm256B64: mnemonics.Vpermi2pd,
	EvexVpermi2pdZmmK1zZmmZmmm512B64: mnemonics.Vpermi2pd,
	EvexVpermt2psXmmK1zXmmXmmm128B32: mnemonics.Vpermt2ps,
	EvexVpermt2psYmmK1zYmmYmmm256B32: mnemonics.Vpermt2ps,
	EvexVpermt2psZmmK1zZmmZmmm512B32: mnemonics.Vpermt2ps,
	EvexVpermt2pdXmmK1zXmmXmmm128B64: mnemonics.Vpermt2pd,
	EvexVpermt2pdYmmK1zYmmYmmm256B64: mnemonics.Vpermt2pd,
	EvexVpermt2pdZmmK1zZmmZmmm512B64: mnemonics.Vpermt2pd,
	EvexVpmuldqXmmK1zXmmXmmm128B64: mnemonics.Vpmuldq,
	EvexVpmuldqYmmK1zYmmYmmm256B64: mnemonics.Vpmuldq,
	EvexVpmuldqZmmK1zZmmZmmm512B64: mnemonics.Vpmuldq,
	EvexVpackusdwXmmK1zXmmXmmm128B32: mnemonics.Vpackusdw,
	EvexVpackusdwYmmK1zYmmYmmm256B32: mnemonics.Vpackusdw,
	EvexVpackusdwZmmK1zZmmZmmm512B32: mnemonics.Vpackusdw,
	EvexVpcmpeqqKrK1XmmXmmm128B64: mnemonics.Vpcmpeqq,
	EvexVpcmpeqqKrK1YmmYmmm256B64: mnemonics.Vpcmpeqq,
	EvexVpcmpeqqKrK1ZmmZmmm512B64: mnemonics.Vpcmpeqq,
	EvexVpcmpgtqKrK1XmmXmmm128B64: mnemonics.Vpcmpgtq,
	EvexVpcmpgtqKrK1YmmYmmm256B64: mnemonics.Vpcmpgtq,
	EvexVpcmpgtqKrK1ZmmZmmm512B64: mnemonics.Vpcmpgtq,
	EvexVpermilpsXmmK1zXmmXmmm128B32: mnemonics.Vpermilps,
	EvexVpermilpsYmmK1zYmmYmmm256B32: mnemonics.Vpermilps,
	EvexVpermilpsZmmK1zZmmZmmm512B32: mnemonics.Vpermilps,
	EvexVpermilpdXmmK1zXmmXmmm128B64: mnemonics.Vpermilpd,
	EvexVpermilpdYmmK1zYmmYmmm256B64: mnemonics.Vpermilpd,
	EvexVpermilpdZmmK1zZmmZmmm512B64: mnemonics.Vpermilpd,
	EvexVpermpsYmmK1zYmmYmmm256B32: mnemonics.Vpermps,
	EvexVpermpsZmmK1zZmmZmmm512B32: mnemonics.Vpermps,
	EvexVpermpdYmmK1zYmmYmmm256B64: mnemonics.Vpermpd,
	EvexVpermpdZmmK1zZmmZmmm512B64: mnemonics.Vpermpd,
	EvexVpermdYmmK1zYmmYmmm256B32: mnemonics.Vpermd,
	EvexVpermdZmmK1zZmmZmmm512B32: mnemonics.Vpermd,
	EvexVpermqYmmK1zYmmYmmm256B64: mnemonics.Vpermq,
	EvexVpermqZmmK1zZmmZmmm512B64: mnemonics.Vpermq,
	EvexVbroadcastsdYmmK1zXmmm64: mnemonics.Vbroadcastsd,
	EvexVbroadcastsdZmmK1zXmmm64: mnemonics.Vbroadcastsd,
	EvexVbroadcastf32x4YmmK1zM128: mnemonics.Vbroadcastf32x4,
	EvexVbroadcastf32x4ZmmK1zM128: mnemonics.Vbroadcastf32x4,
	EvexVbroadcastf64x2YmmK1zM128: mnemonics.Vbroadcastf64x2,
	EvexVbroadcastf64x2ZmmK1zM128: mnemonics.Vbroadcastf64x2,
	EvexVbroadcasti32x4YmmK1zM128: mnemonics.Vbroadcasti32x4,
	EvexVbroadcasti32x4ZmmK1zM128: mnemonics.Vbroadcasti32x4,
	EvexVbroadcasti64x2YmmK1zM128: mnemonics.Vbroadcasti64x2,
	EvexVbroadcasti64x2ZmmK1zM128: mnemonics.Vbroadcasti64x2,
	EvexVpbroadcastqXmmK1zXmmm64: mnemonics.Vpbroadcastq,
	EvexVpbroadcastqYmmK1zXmmm64: mnemonics.Vpbroadcastq,
	EvexVpbroadcastqZmmK1zXmmm64: mnemonics.Vpbroadcastq,
	EvexVpbroadcastbXmmK1zXmmm8: mnemonics.Vpbroadcastb,
	EvexVpbroadcastbYmmK1zXmmm8: mnemonics.Vpbroadcastb,
	EvexVpbroadcastbZmmK1zXmmm8: mnemonics.Vpbroadcastb,
	EvexVpbroadcastwXmmK1zXmmm16: mnemonics.Vpbroadcastw,
	EvexVpbroadcastwYmmK1zXmmm16: mnemonics.Vpbroadcastw,
	EvexVpbroadcastwZmmK1zXmmm16: mnemonics.Vpbroadcastw,
	EvexVpabsbXmmK1zXmmm128: mnemonics.Vpabsb,
	EvexVpabsbYmmK1zYmmm256: mnemonics.Vpabsb,
	EvexVpabsbZmmK1zZmmm512: mnemonics.Vpabsb,
	EvexVpabswXmmK1zXmmm128: mnemonics.Vpabsw,
	EvexVpabswYmmK1zYmmm256: mnemonics.Vpabsw,
	EvexVpabswZmmK1zZmmm512: mnemonics.Vpabsw,
	EvexVpabsdXmmK1zXmmm128B32: mnemonics.Vpabsd,
	EvexVpabsdYmmK1zYmmm256B32: mnemonics.Vpabsd,
	EvexVpabsdZmmK1zZmmm512B32: mnemonics.Vpabsd,
	EvexVpabsqXmmK1zXmmm128B64: mnemonics.Vpabsq,
	EvexVpabsqYmmK1zYmmm256B64: mnemonics.Vpabsq,
	EvexVpabsqZmmK1zZmmm512B64: mnemonics.Vpabsq,
	EvexVpmovsxbwXmmK1zXmmm64: mnemonics.Vpmovsxbw,
	EvexVpmovsxbwYmmK1zXmmm128: mnemonics.Vpmovsxbw,
	EvexVpmovsxbwZmmK1zYmmm256: mnemonics.Vpmovsxbw,
	EvexVpmovsxbdXmmK1zXmmm32: mnemonics.Vpmovsxbd,
	EvexVpmovsxbdYmmK1zXmmm64: mnemonics.Vpmovsxbd,
	EvexVpmovsxbdZmmK1zXmmm128: mnemonics.Vpmovsxbd,
	EvexVpmovsxbqXmmK1zXmmm16: mnemonics.Vpmovsxbq,
	EvexVpmovsxbqYmmK1zXmmm32: mnemonics.Vpmovsxbq,
	EvexVpmovsxbqZmmK1zXmmm64: mnemonics.Vpmovsxbq,
	EvexVpmovsxwdXmmK1zXmmm64: mnemonics.Vpmovsxwd,
	EvexVpmovsxwdYmmK1zXmmm128: mnemonics.Vpmovsxwd,
	EvexVpmovsxwdZmmK1zYmmm256: mnemonics.Vpmovsxwd,
	EvexVpmovsxwqXmmK1zXmmm32: mnemonics.Vpmovsxwq,
	EvexVpmovsxwqYmmK1zXmmm64: mnemonics.Vpmovsxwq,
	EvexVpmovsxwqZmmK1zXmmm128: mnemonics.Vpmovsxwq,
	EvexVpmovsxdqXmmK1zXmmm64: mnemonics.Vpmovsxdq,
	EvexVpmovsxdqYmmK1zXmmm128: mnemonics.Vpmovsxdq,
	EvexVpmovsxdqZmmK1zYmmm256: mnemonics.Vpmovsxdq,
	EvexVpmovzxbwXmmK1zXmmm64: mnemonics.Vpmovzxbw,
	EvexVpmovzxbwYmmK1zXmmm128: mnemonics.Vpmovzxbw,
	EvexVpmovzxbwZmmK1zYmmm256: mnemonics.Vpmovzxbw,
	EvexVpmovzxbdXmmK1zXmmm32: mnemonics.Vpmovzxbd,
	EvexVpmovzxbdYmmK1zXmmm64: mnemonics.Vpmovzxbd,
	EvexVpmovzxbdZmmK1zXmmm128: mnemonics.Vpmovzxbd,
	EvexVpmovzxbqXmmK1zXmmm16: mnemonics.Vpmovzxbq,
	EvexVpmovzxbqYmmK1zXmmm32: mnemonics.Vpmovzxbq,
	EvexVpmovzxbqZmmK1zXmmm64: mnemonics.Vpmovzxbq,
	EvexVpmovzxwdXmmK1zXmmm64: mnemonics.Vpmovzxwd,
	EvexVpmovzxwdYmmK1zXmmm128: mnemonics.Vpmovzxwd,
	EvexVpmovzxwdZmmK1zYmmm256: mnemonics.Vpmovzxwd,
	EvexVpmovzxwqXmmK1zXmmm32: mnemonics.Vpmovzxwq,
	EvexVpmovzxwqYmmK1zXmmm64: mnemonics.Vpmovzxwq,
	EvexVpmovzxwqZmmK1zXmmm128: mnemonics.Vpmovzxwq,
	EvexVpmovzxdqXmmK1zXmmm64: mnemonics.Vpmovzxdq,
	EvexVpmovzxdqYmmK1zXmmm128: mnemonics.Vpmovzxdq,
	EvexVpmovzxdqZmmK1zYmmm256: mnemonics.Vpmovzxdq,
	EvexVpmovwbXmmm64K1zXmm: mnemonics.Vpmovwb,
	EvexVpmovwbXmmm128K1zYmm: mnemonics.Vpmovwb,
	EvexVpmovwbYmmm256K1zZmm: mnemonics.Vpmovwb,
	EvexVpmovdbXmmm32K1zXmm: mnemonics.Vpmovdb,
	EvexVpmovdbXmmm64K1zYmm: mnemonics.Vpmovdb,
	EvexVpmovdbXmmm128K1zZmm: mnemonics.Vpmovdb,
	EvexVpmovqbXmmm16K1zXmm: mnemonics.Vpmovqb,
	EvexVpmovqbXmmm32K1zYmm: mnemonics.Vpmovqb,
	EvexVpmovqbXmmm64K1zZmm: mnemonics.Vpmovqb,
	EvexVpmovdwXmmm64K1zXmm: mnemonics.Vpmovdw,
	EvexVpmovdwXmmm128K1zYmm: mnemonics.Vpmovdw,
	EvexVpmovdwYmmm256K1zZmm: mnemonics.Vpmovdw,
	EvexVpmovqwXmmm32K1zXmm: mnemonics.Vpmovqw,
	EvexVpmovqwXmmm64K1zYmm: mnemonics.Vpmovqw,
	EvexVpmovqwXmmm128K1zZmm: mnemonics.Vpmovqw,
	EvexVpmovqdXmmm64K1zXmm: mnemonics.Vpmovqd,
	EvexVpmovqdXmmm128K1zYmm: mnemonics.Vpmovqd,
	EvexVpmovqdYmmm256K1zZmm: mnemonics.Vpmovqd,
	EvexVpmovm2bXmmKr: mnemonics.Vpmovm2b,
	EvexVpmovm2bYmmKr: mnemonics.Vpmovm2b,
	EvexVpmovm2bZmmKr: mnemonics.Vpmovm2b,
	EvexVpmovm2wXmmKr: mnemonics.Vpmovm2w,
	EvexVpmovm2wYmmKr: mnemonics.Vpmovm2w,
	EvexVpmovm2wZmmKr: mnemonics.Vpmovm2w,
	EvexVpmovm2dXmmKr: mnemonics.Vpmovm2d,
	EvexVpmovm2dYmmKr: mnemonics.Vpmovm2d,
	EvexVpmovm2dZmmKr: mnemonics.Vpmovm2d,
	EvexVpmovm2qXmmKr: mnemonics.Vpmovm2q,
	EvexVpmovm2qYmmKr: mnemonics.Vpmovm2q,
	EvexVpmovm2qZmmKr: mnemonics.Vpmovm2q,
	EvexVpmovb2mKrXmm: mnemonics.Vpmovb2m,
	EvexVpmovb2mKrYmm: mnemonics.Vpmovb2m,
	EvexVpmovb2mKrZmm: mnemonics.Vpmovb2m,
	EvexVpmovw2mKrXmm: mnemonics.Vpmovw2m,
	EvexVpmovw2mKrYmm: mnemonics.Vpmovw2m,
	EvexVpmovw2mKrZmm: mnemonics.Vpmovw2m,
	EvexVpmovd2mKrXmm: mnemonics.Vpmovd2m,
	EvexVpmovd2mKrYmm: mnemonics.Vpmovd2m,
	EvexVpmovd2mKrZmm: mnemonics.Vpmovd2m,
	EvexVpmovq2mKrXmm: mnemonics.Vpmovq2m,
	EvexVpmovq2mKrYmm: mnemonics.Vpmovq2m,
	EvexVpmovq2mKrZmm: mnemonics.Vpmovq2m,
	EvexVptestmbKrK1XmmXmmm128: mnemonics.Vptestmb,
	EvexVptestmbKrK1YmmYmmm256: mnemonics.Vptestmb,
	EvexVptestmbKrK1ZmmZmmm512: mnemonics.Vptestmb,
	EvexVptestmwKrK1XmmXmmm128: mnemonics.Vptestmw,
	EvexVptestmwKrK1YmmYmmm256: mnemonics.Vptestmw,
	EvexVptestmwKrK1ZmmZmmm512: mnemonics.Vptestmw,
	EvexVptestmdKrK1XmmXmmm128B32: mnemonics.Vptestmd,
	EvexVptestmdKrK1YmmYmmm256B32: mnemonics.Vptestmd,
	EvexVptestmdKrK1ZmmZmmm512B32: mnemonics.Vptestmd,
	EvexVptestmqKrK1XmmXmmm128B64: mnemonics.Vptestmq,
	EvexVptestmqKrK1YmmYmmm256B64: mnemonics.Vptestmq,
	EvexVptestmqKrK1ZmmZmmm512B64: mnemonics.Vptestmq,
	EvexVptestnmbKrK1XmmXmmm128: mnemonics.Vptestnmb,
	EvexVptestnmbKrK1YmmYmmm256: mnemonics.Vptestnmb,
	EvexVptestnmbKrK1ZmmZmmm512: mnemonics.Vptestnmb,
	EvexVptestnmwKrK1XmmXmmm128: mnemonics.Vptestnmw,
	EvexVptestnmwKrK1YmmYmmm256: mnemonics.Vptestnmw,
	EvexVptestnmwKrK1ZmmZmmm512: mnemonics.Vptestnmw,
	EvexVptestnmdKrK1XmmXmmm128B32: mnemonics.Vptestnmd,
	EvexVptestnmdKrK1YmmYmmm256B32: mnemonics.Vptestnmd,
	EvexVptestnmdKrK1ZmmZmmm512B32: mnemonics.Vptestnmd,
	EvexVptestnmqKrK1XmmXmmm128B64: mnemonics.Vptestnmq,
	EvexVptestnmqKrK1YmmYmmm256B64: mnemonics.Vptestnmq,
	EvexVptestnmqKrK1ZmmZmmm512B64: mnemonics.Vptestnmq,
	EvexVpblendmbXmmK1zXmmXmmm128: mnemonics.Vpblendmb,
	EvexVpblendmbYmmK1zYmmYmmm256: mnemonics.Vpblendmb,
	EvexVpblendmbZmmK1zZmmZmmm512: mnemonics.Vpblendmb,
	EvexVpblendmwXmmK1zXmmXmmm128: mnemonics.Vpblendmw,
	EvexVpblendmwYmmK1zYmmYmmm256: mnemonics.Vpblendmw,
	EvexVpblendmwZmmK1zZmmZmmm512: mnemonics.Vpblendmw,
	EvexVpconflictdXmmK1zXmmm128B32: mnemonics.Vpconflictd,
	EvexVpconflictdYmmK1zYmmm256B32: mnemonics.Vpconflictd,
	EvexVpconflictdZmmK1zZmmm512B32: mnemonics.Vpconflictd,
	EvexVpconflictqXmmK1zXmmm128B64: mnemonics.Vpconflictq,
	EvexVpconflictqYmmK1zYmmm256B64: mnemonics.Vpconflictq,
	EvexVpconflictqZmmK1zZmmm512B64: mnemonics.Vpconflictq,
	EvexVplzcntdXmmK1zXmmm128B32: mnemonics.Vplzcntd,
	EvexVplzcntdYmmK1zYmmm256B32: mnemonics.Vplzcntd,
	EvexVplzcntdZmmK1zZmmm512B32: mnemonics.Vplzcntd,
	EvexVplzcntqXmmK1zXmmm128B64: mnemonics.Vplzcntq,
	EvexVplzcntqYmmK1zYmmm256B64: mnemonics.Vplzcntq,
	EvexVplzcntqZmmK1zZmmm512B64: mnemonics.Vplzcntq,
	EvexVrcp14psXmmK1zXmmm128B32: mnemonics.Vrcp14ps,
	EvexVrcp14psYmmK1zYmmm256B32: mnemonics.Vrcp14ps,
	EvexVrcp14psZmmK1zZmmm512B32: mnemonics.Vrcp14ps,
	EvexVrcp14pdXmmK1zXmmm128B64: mnemonics.Vrcp14pd,
	EvexVrcp14pdYmmK1zYmmm256B64: mnemonics.Vrcp14pd,
	EvexVrcp14pdZmmK1zZmmm512B64: mnemonics.Vrcp14pd,
	EvexVrsqrt14psXmmK1zXmmm128B32: mnemonics.Vrsqrt14ps,
	EvexVrsqrt14psYmmK1zYmmm256B32: mnemonics.Vrsqrt14ps,
	EvexVrsqrt14psZmmK1zZmmm512B32: mnemonics.Vrsqrt14ps,
	EvexVrsqrt14pdXmmK1zXmmm128B64: mnemonics.Vrsqrt14pd,
	EvexVrsqrt14pdYmmK1zYmmm256B64: mnemonics.Vrsqrt14pd,
	EvexVrsqrt14pdZmmK1zZmmm512B64: mnemonics.Vrsqrt14pd,
	EvexVfmaddsub132psXmmK1zXmmXmmm128B32: mnemonics.Vfmaddsub132ps,
	EvexVfmaddsub132psYmmK1zYmmYmmm256B32: mnemonics.Vfmaddsub132ps,
	EvexVfmaddsub132psZmmK1zZmmZmmm512B32Er: mnemonics.Vfmaddsub132ps,
	EvexVfmaddsub132pdXmmK1zXmmXmmm128B64: mnemonics.Vfmaddsub132pd,
	EvexVfmaddsub132pdYmmK1zYmmYmmm256B64: mnemonics.Vfmaddsub132pd,
	EvexVfmaddsub132pdZmmK1zZmmZmmm512B64Er: mnemonics.Vfmaddsub132pd,
	EvexVfmsubadd132psXmmK1zXmmXmmm128B32: mnemonics.Vfmsubadd132ps,
	EvexVfmsubadd132psYmmK1zYmmYmmm256B32: mnemonics.Vfmsubadd132ps,
	EvexVfmsubadd132psZmmK1zZmmZmmm512B32Er: mnemonics.Vfmsubadd132ps,
	EvexVfmsubadd132pdXmmK1zXmmXmmm128B64: mnemonics.Vfmsubadd132pd,
	EvexVfmsubadd132pdYmmK1zYmmYmmm256B64: mnemonics.Vfmsubadd132pd,
	EvexVfmsubadd132pdZmmK1zZmmZmmm512B64Er: mnemonics.Vfmsubadd132pd,
	EvexVfmsub132psXmmK1zXmmXmmm128B32: mnemonics.Vfmsub132ps,
	EvexVfmsub132psYmmK1zYmmYmmm256B32: mnemonics.Vfmsub132ps,
	EvexVfmsub132psZmmK1zZmmZmmm512B32Er: mnemonics.Vfmsub132ps,
	EvexVfmsub132pdXmmK1zXmmXmmm128B64: mnemonics.Vfmsub132pd,
	EvexVfmsub132pdYmmK1zYmmYmmm256B64: mnemonics.Vfmsub132pd,
	EvexVfmsub132pdZmmK1zZmmZmmm512B64Er: mnemonics.Vfmsub132pd,
	EvexVfmsub132ssXmmK1zXmmXmmm32Er: mnemonics.Vfmsub132ss,
	EvexVfmsub132sdXmmK1zXmmXmmm64Er: mnemonics.Vfmsub132sd,
	EvexVfnmadd132psXmmK1zXmmXmmm128B32: mnemonics.Vfnmadd132ps,
	EvexVfnmadd132psYmmK1zYmmYmmm256B32: mnemonics.Vfnmadd132ps,
	EvexVfnmadd132psZmmK1zZmmZmmm512B32Er: mnemonics.Vfnmadd132ps,
	EvexVfnmadd132pdXmmK1zXmmXmmm128B64: mnemonics.Vfnmadd132pd,
	EvexVfnmadd132pdYmmK1zYmmYmmm256B64: mnemonics.Vfnmadd132pd,
	EvexVfnmadd132pdZmmK1zZmmZmmm512B64Er: mnemonics.Vfnmadd132pd,
	EvexVfnmadd132ssXmmK1zXmmXmmm32Er: mnemonics.Vfnmadd132ss,
	EvexVfnmadd132sdXmmK1zXmmXmmm64Er: mnemonics.Vfnmadd132sd,
	EvexVfnmsub132psXmmK1zXmmXmmm128B32: mnemonics.Vfnmsub132ps,
	EvexVfnmsub132psYmmK1zYmmYmmm256B32: mnemonics.Vfnmsub132ps,
	EvexVfnmsub132psZmmK1zZmmZmmm512B32Er: mnemonics.Vfnmsub132ps,
	EvexVfnmsub132pdXmmK1zXmmXmmm128B64: mnemonics.Vfnmsub132pd,
	EvexVfnmsub132pdYmmK1zYmmYmmm256B64: mnemonics.Vfnmsub132pd,
	EvexVfnmsub132pdZmmK1zZmmZmmm512B64Er: mnemonics.Vfnmsub132pd,
	EvexVfnmsub132ssXmmK1zXmmXmmm32Er: mnemonics.Vfnmsub132ss,
	EvexVfnmsub132sdXmmK1zXmmXmmm64Er: mnemonics.Vfnmsub132sd,
	EvexVfmaddsub213psXmmK1zXmmXmmm128B32: mnemonics.Vfmaddsub213ps,
	EvexVfmaddsub213psYmmK1zYmmYmmm256B32: mnemonics.Vfmaddsub213ps,
	EvexVfmaddsub213psZmmK1zZmmZmmm512B32Er: mnemonics.Vfmaddsub213ps,
	EvexVfmaddsub213pdXmmK1zXmmXmmm128B64: mnemonics.Vfmaddsub213pd,
	EvexVfmaddsub213pdYmmK1zYmmYmmm256B64: mnemonics.Vfmaddsub213pd,
	EvexVfmaddsub213pdZmmK1zZmmZmmm512B64Er: mnemonics.Vfmaddsub213pd,
	EvexVfmsubadd213psXmmK1zXmmXmmm128B32: mnemonics.Vfmsubadd213ps,
	EvexVfmsubadd213psYmmK1zYmmYmmm256B32: mnemonics.Vfmsubadd213ps,
	EvexVfmsubadd213psZmmK1zZmmZmmm512B32Er: mnemonics.Vfmsubadd213ps,
	EvexVfmsubadd213pdXmmK1zXmmXmmm128B64: mnemonics.Vfmsubadd213pd,
	EvexVfmsubadd213pdYmmK1zYmmYmmm256B64: mnemonics.Vfmsubadd213pd,
	EvexVfmsubadd213pdZmmK1zZmmZmmm512B64Er: mnemonics.Vfmsubadd213pd,
	EvexVfmsub213psXmmK1zXmmXmmm128B32: mnemonics.Vfmsub213ps,
	EvexVfmsub213psYmmK1zYmmYmmm256B32: mnemonics.Vfmsub213ps,
	EvexVfmsub213psZmmK1zZmmZmmm512B32Er: mnemonics.Vfmsub213ps,
	EvexVfmsub213pdXmmK1zXmmXmmm128B64: mnemonics.Vfmsub213pd,
	EvexVfmsub213pdYmmK1zYmmYmmm256B64: mnemonics.Vfmsub213pd,
	EvexVfmsub213pdZmmK1zZmmZmmm512B64Er: mnemonics.Vfmsub213pd,
	EvexVfmsub213ssXmmK1zXmmXmmm32Er: mnemonics.Vfmsub213ss,
	EvexVfmsub213sdXmmK1zXmmXmmm64Er: mnemonics.Vfmsub213sd,
	EvexVfnmadd213psXmmK1zXmmXmmm128B32: mnemonics.Vfnmadd213ps,
	EvexVfnmadd213psYmmK1zYmmYmmm256B32: mnemonics.Vfnmadd213ps,
	EvexVfnmadd213psZmmK1zZmmZmmm512B32Er: mnemonics.Vfnmadd213ps,
	EvexVfnmadd213pdXmmK1zXmmXmmm128B64: mnemonics.Vfnmadd213pd,
	EvexVfnmadd213pdYmmK1zYmmYmmm256B64: mnemonics.Vfnmadd213pd,
	EvexVfnmadd213pdZmmK1zZmmZmmm512B64Er: mnemonics.Vfnmadd213pd,
	EvexVfnmadd213ssXmmK1zXmmXmmm32Er: mnemonics.Vfnmadd213ss,
	EvexVfnmadd213sdXmmK1zXmmXmmm64Er: mnemonics.Vfnmadd213sd,
	EvexVfnmsub213psXmmK1zXmmXmmm128B32: mnemonics.Vfnmsub213ps,
	EvexVfnmsub213psYmmK1zYmmYmmm256B32: mnemonics.Vfnmsub213ps,
	EvexVfnmsub213psZmmK1zZmmZmmm512B32Er: mnemonics.Vfnmsub213ps,
	EvexVfnmsub213pdXmmK1zXmmXmmm128B64: mnemonics.Vfnmsub213pd,
	EvexVfnmsub213pdYmmK1zYmmYmmm256B64: mnemonics.Vfnmsub213pd,
	EvexVfnmsub213pdZmmK1zZmmZmmm512B64Er: mnemonics.Vfnmsub213pd,
	EvexVfnmsub213ssXmmK1zXmmXmmm32Er: mnemonics.Vfnmsub213ss,
	EvexVfnmsub213sdXmmK1zXmmXmmm64Er: mnemonics.Vfnmsub213sd,
	EvexVfmaddsub231psXmmK1zXmmXmmm128B32: mnemonics.Vfmaddsub231ps,
	EvexVfmaddsub231psYmmK1zYmmYmmm256B32: mnemonics.Vfmaddsub231ps,
	EvexVfmaddsub231psZmmK1zZmmZmmm512B32Er: mnemonics.Vfmaddsub231ps,
	EvexVfmaddsub231pdXmmK1zXmmXmmm128B64: mnemonics.Vfmaddsub231pd,
	EvexVfmaddsub231pdYmmK1zYmmYmmm256B64: mnemonics.Vfmaddsub231pd,
	EvexVfmaddsub231pdZmmK1zZmmZmmm512B64Er: mnemonics.Vfmaddsub231pd,
	EvexVfmsubadd231psXmmK1zXmmXmmm128B32: mnemonics.Vfmsubadd231ps,
	EvexVfmsubadd231psYmmK1zYmmYmmm256B32: mnemonics.Vfmsubadd231ps,
	EvexVfmsubadd231psZmmK1zZmmZmmm512B32Er: mnemonics.Vfmsubadd231ps,
	EvexVfmsubadd231pdXmmK1zXmmXmmm128B64: mnemonics.Vfmsubadd231pd,
	EvexVfmsubadd231pdYmmK1zYmmYmmm256B64: mnemonics.Vfmsubadd231pd,
	EvexVfmsubadd231pdZmmK1zZmmZmmm512B64Er: mnemonics.Vfmsubadd231pd,
	EvexVfmsub231psXmmK1zXmmXmmm128B32: mnemonics.Vfmsub231ps,
	EvexVfmsub231psYmmK1zYmmYmmm256B32: mnemonics.Vfmsub231ps,
	EvexVfmsub231psZmmK1zZmmZmmm512B32Er: mnemonics.Vfmsub231ps,
	EvexVfmsub231pdXmmK1zXmmXmmm128B64: mnemonics.Vfmsub231pd,
	EvexVfmsub231pdYmmK1zYmmYmmm256B64: mnemonics.Vfmsub231pd,
	EvexVfmsub231pdZmmK1zZmmZmmm512B64Er: mnemonics.Vfmsub231pd,
	EvexVfmsub231ssXmmK1zXmmXmmm32Er: mnemonics.Vfmsub231ss,
	EvexVfmsub231sdXmmK1zXmmXmmm64Er: mnemonics.Vfmsub231sd,
	EvexVfnmadd231psXmmK1zXmmXmmm128B32: mnemonics.Vfnmadd231ps,
	EvexVfnmadd231psYmmK1zYmmYmmm256B32: mnemonics.Vfnmadd231ps,
	EvexVfnmadd231psZmmK1zZmmZmmm512B32Er: mnemonics.Vfnmadd231ps,
	EvexVfnmadd231pdXmmK1zXmmXmmm128B64: mnemonics.Vfnmadd231pd,
	EvexVfnmadd231pdYmmK1zYmmYmmm256B64: mnemonics.Vfnmadd231pd,
	EvexVfnmadd231pdZmmK1zZmmZmmm512B64Er: mnemonics.Vfnmadd231pd,
	EvexVfnmadd231ssXmmK1zXmmXmmm32Er: mnemonics.Vfnmadd231ss,
	EvexVfnmadd231sdXmmK1zXmmXmmm64Er: mnemonics.Vfnmadd231sd,
	EvexVfnmsub231psXmmK1zXmmXmmm128B32: mnemonics.Vfnmsub231ps,
	EvexVfnmsub231psYmmK1zYmmYmmm256B32: mnemonics.Vfnmsub231ps,
	EvexVfnmsub231psZmmK1zZmmZmmm512B32Er: mnemonics.Vfnmsub231ps,
	EvexVfnmsub231pdXmmK1zXmmXmmm128B64: mnemonics.Vfnmsub231pd,
	EvexVfnmsub231pdYmmK1zYmmYmmm256B64: mnemonics.Vfnmsub231pd,
	EvexVfnmsub231pdZmmK1zZmmZmmm512B64Er: mnemonics.Vfnmsub231pd,
	EvexVfnmsub231ssXmmK1zXmmXmmm32Er: mnemonics.Vfnmsub231ss,
	EvexVfnmsub231sdXmmK1zXmmXmmm64Er: mnemonics.Vfnmsub231sd,
	EvexVpgatherddXmmK1Vm32x: mnemonics.Vpgatherdd,
	EvexVpgatherddYmmK1Vm32y: mnemonics.Vpgatherdd,
	EvexVpgatherddZmmK1Vm32z: mnemonics.Vpgatherdd,
	EvexVpgatherdqXmmK1Vm32x: mnemonics.Vpgatherdq,
	EvexVpgatherdqYmmK1Vm32x: mnemonics.Vpgatherdq,
	EvexVpgatherdqZmmK1Vm32y: mnemonics.Vpgatherdq,
	EvexVpgatherqdXmmK1Vm64x: mnemonics.Vpgatherqd,
	EvexVpgatherqdXmmK1Vm64y: mnemonics.Vpgatherqd,
	EvexVpgatherqdYmmK1Vm64z: mnemonics.Vpgatherqd,
	EvexVpgatherqqXmmK1Vm64x: mnemonics.Vpgatherqq,
	EvexVpgatherqqYmmK1Vm64y: mnemonics.Vpgatherqq,
	EvexVpgatherqqZmmK1Vm64z: mnemonics.Vpgatherqq,
	EvexVgatherdpsXmmK1Vm32x: mnemonics.Vgatherdps,
	EvexVgatherdpsYmmK1Vm32y: mnemonics.Vgatherdps,
	EvexVgatherdpsZmmK1Vm32z: mnemonics.Vgatherdps,
	EvexVgatherdpdXmmK1Vm32x: mnemonics.Vgatherdpd,
	EvexVgatherdpdYmmK1Vm32x: mnemonics.Vgatherdpd,
	EvexVgatherdpdZmmK1Vm32y: mnemonics.Vgatherdpd,
	EvexVgatherqpsXmmK1Vm64x: mnemonics.Vgatherqps,
	EvexVgatherqpsXmmK1Vm64y: mnemonics.Vgatherqps,
	EvexVgatherqpsYmmK1Vm64z: mnemonics.Vgatherqps,
	EvexVgatherqpdXmmK1Vm64x: mnemonics.Vgatherqpd,
	EvexVgatherqpdYmmK1Vm64y: mnemonics.Vgatherqpd,
	EvexVgatherqpdZmmK1Vm64z: mnemonics.Vgatherqpd,
	EvexVpscatterddVm32xK1Xmm: mnemonics.Vpscatterdd,
	EvexVpscatterddVm32yK1Ymm: mnemonics.Vpscatterdd,
	EvexVpscatterddVm32zK1Zmm: mnemonics.Vpscatterdd,
	EvexVpscatterdqVm32xK1Xmm: mnemonics.Vpscatterdq,
	EvexVpscatterdqVm32xK1Ymm: mnemonics.Vpscatterdq,
	EvexVpscatterdqVm32yK1Zmm: mnemonics.Vpscatterdq,
	EvexVpscatterqdVm64xK1Xmm: mnemonics.Vpscatterqd,
	EvexVpscatterqdVm64yK1Xmm: mnemonics.Vpscatterqd,
	EvexVpscatterqdVm64zK1Ymm: mnemonics.Vpscatterqd,
	EvexVpscatterqqVm64xK1Xmm: mnemonics.Vpscatterqq,
	EvexVpscatterqqVm64yK1Ymm: mnemonics.Vpscatterqq,
	EvexVpscatterqqVm64zK1Zmm: mnemonics.Vpscatterqq,
	EvexVscatterdpsVm32xK1Xmm: mnemonics.Vscatterdps,
	EvexVscatterdpsVm32yK1Ymm: mnemonics.Vscatterdps,
	EvexVscatterdpsVm32zK1Zmm: mnemonics.Vscatterdps,
	EvexVscatterdpdVm32xK1Xmm: mnemonics.Vscatterdpd,
	EvexVscatterdpdVm32xK1Ymm: mnemonics.Vscatterdpd,
	EvexVscatterdpdVm32yK1Zmm: mnemonics.Vscatterdpd,
	EvexVscatterqpsVm64xK1Xmm: mnemonics.Vscatterqps,
	EvexVscatterqpsVm64yK1Xmm: mnemonics.Vscatterqps,
	EvexVscatterqpsVm64zK1Ymm: mnemonics.Vscatterqps,
	EvexVscatterqpdVm64xK1Xmm: mnemonics.Vscatterqpd,
	EvexVscatterqpdVm64yK1Ymm: mnemonics.Vscatterqpd,
	EvexVscatterqpdVm64zK1Zmm: mnemonics.Vscatterqpd,
	EvexVpermqYmmK1zYmmm256B64Imm8: mnemonics.Vpermq,
	EvexVpermqZmmK1zZmmm512B64Imm8: mnemonics.Vpermq,
	EvexVpermpdYmmK1zYmmm256B64Imm8: mnemonics.Vpermpd,
	EvexVpermpdZmmK1zZmmm512B64Imm8: mnemonics.Vpermpd,
	EvexVpermilpsXmmK1zXmmm128B32Imm8: mnemonics.Vpermilps,
	EvexVpermilpsYmmK1zYmmm256B32Imm8: mnemonics.Vpermilps,
	EvexVpermilpsZmmK1zZmmm512B32Imm8: mnemonics.Vpermilps,
	EvexVpermilpdXmmK1zXmmm128B64Imm8: mnemonics.Vpermilpd,
	EvexVpermilpdYmmK1zYmmm256B64Imm8: mnemonics.Vpermilpd,
	EvexVpermilpdZmmK1zZmmm512B64Imm8: mnemonics.Vpermilpd,
	EvexVpalignrXmmK1zXmmXmmm128Imm8: mnemonics.Vpalignr,
	EvexVpalignrYmmK1zYmmYmmm256Imm8: mnemonics.Vpalignr,
	EvexVpalignrZmmK1zZmmZmmm512Imm8: mnemonics.Vpalignr,
	EvexVpextrbR32m8XmmImm8: mnemonics.Vpextrb,
	EvexVpextrbR64m8XmmImm8: mnemonics.Vpextrb,
	EvexVpextrwR32m16XmmImm8: mnemonics.Vpextrw,
	EvexVpextrwR64m16XmmImm8: mnemonics.Vpextrw,
	EvexVpextrdRm32XmmImm8: mnemonics.Vpextrd,
	EvexVpextrqRm64XmmImm8: mnemonics.Vpextrq,
	EvexVextractpsRm32XmmImm8: mnemonics.Vextractps,
	EvexVpinsrbXmmXmmR32m8Imm8: mnemonics.Vpinsrb,
	EvexVpinsrbXmmXmmR64m8Imm8: mnemonics.Vpinsrb,
	EvexVinsertpsXmmXmmXmmm32Imm8: mnemonics.Vinsertps,
	EvexVpinsrdXmmXmmRm32Imm8: mnemonics.Vpinsrd,
	EvexVpinsrqXmmXmmRm64Imm8: mnemonics.Vpinsrq,
	EvexVinsertf32x4YmmK1zYmmXmmm128Imm8: mnemonics.Vinsertf32x4,
	EvexVinsertf32x4ZmmK1zZmmXmmm128Imm8: mnemonics.Vinsertf32x4,
	EvexVinsertf64x2YmmK1zYmmXmmm128Imm8: mnemonics.Vinsertf64x2,
	EvexVinsertf64x2ZmmK1zZmmXmmm128Imm8: mnemonics.Vinsertf64x2,
	EvexVinserti32x4YmmK1zYmmXmmm128Imm8: mnemonics.Vinserti32x4,
	EvexVinserti32x4ZmmK1zZmmXmmm128Imm8: mnemonics.Vinserti32x4,
	EvexVinserti64x2YmmK1zYmmXmmm128Imm8: mnemonics.Vinserti64x2,
	EvexVinserti64x2ZmmK1zZmmXmmm128Imm8: mnemonics.Vinserti64x2,
	EvexVextractf32x4Xmmm128K1zYmmImm8: mnemonics.Vextractf32x4,
	EvexVextractf32x4Xmmm128K1zZmmImm8: mnemonics.Vextractf32x4,
	EvexVextractf64x2Xmmm128K1zYmmImm8: mnemonics.Vextractf64x2,
	EvexVextractf64x2Xmmm128K1zZmmImm8: mnemonics.Vextractf64x2,
	EvexVextracti32x4Xmmm128K1zYmmImm8: mnemonics.Vextracti32x4,
	EvexVextracti32x4Xmmm128K1zZmmImm8: mnemonics.Vextracti32x4,
	EvexVextracti64x2Xmmm128K1zYmmImm8: mnemonics.Vextracti64x2,
	EvexVextracti64x2Xmmm128K1zZmmImm8: mnemonics.Vextracti64x2,
	EvexVinsertf32x8ZmmK1zZmmYmmm256Imm8: mnemonics.Vinsertf32x8,
	EvexVinsertf64x4ZmmK1zZmmYmmm256Imm8: mnemonics.Vinsertf64x4,
	EvexVinserti32x8ZmmK1zZmmYmmm256Imm8: mnemonics.Vinserti32x8,
	EvexVinserti64x4ZmmK1zZmmYmmm256Imm8: mnemonics.Vinserti64x4,
	EvexVextractf32x8Ymmm256K1zZmmImm8: mnemonics.Vextractf32x8,
	EvexVextractf64x4Ymmm256K1zZmmImm8: mnemonics.Vextractf64x4,
	EvexVextracti32x8Ymmm256K1zZmmImm8: mnemonics.Vextracti32x8,
	EvexVextracti64x4Ymmm256K1zZmmImm8: mnemonics.Vextracti64x4,
	EvexVcvtps2phXmmm64K1zXmmImm8: mnemonics.Vcvtps2ph,
	EvexVcvtps2phXmmm128K1zYmmImm8: mnemonics.Vcvtps2ph,
	EvexVcvtps2phYmmm256K1zZmmImm8Sae: mnemonics.Vcvtps2ph,
	EvexVshuff32x4YmmK1zYmmYmmm256B32Imm8: mnemonics.Vshuff32x4,
	EvexVshuff32x4ZmmK1zZmmZmmm512B32Imm8: mnemonics.Vshuff32x4,
	EvexVshuff64x2YmmK1zYmmYmmm256B64Imm8: mnemonics.Vshuff64x2,
	EvexVshuff64x2ZmmK1zZmmZmmm512B64Imm8: mnemonics.Vshuff64x2,
	EvexVshufi32x4YmmK1zYmmYmmm256B32Imm8: mnemonics.Vshufi32x4,
	EvexVshufi32x4ZmmK1zZmmZmmm512B32Imm8: mnemonics.Vshufi32x4,
	EvexVshufi64x2YmmK1zYmmYmmm256B64Imm8: mnemonics.Vshufi64x2,
	EvexVshufi64x2ZmmK1zZmmZmmm512B64Imm8: mnemonics.Vshufi64x2,
	EvexVpternlogdXmmK1zXmmXmmm128B32Imm8: mnemonics.Vpternlogd,
	EvexVpternlogdYmmK1zYmmYmmm256B32Imm8: mnemonics.Vpternlogd,
	EvexVpternlogdZmmK1zZmmZmmm512B32Imm8: mnemonics.Vpternlogd,
	EvexVpternlogqXmmK1zXmmXmmm128B64Imm8: mnemonics.Vpternlogq,
	EvexVpternlogqYmmK1zYmmYmmm256B64Imm8: mnemonics.Vpternlogq,
	EvexVpternlogqZmmK1zZmmZmmm512B64Imm8: mnemonics.Vpternlogq,
	EvexVpcmpubKrK1XmmXmmm128Imm8: mnemonics.Vpcmpub,
	EvexVpcmpubKrK1YmmYmmm256Imm8: mnemonics.Vpcmpub,
	EvexVpcmpubKrK1ZmmZmmm512Imm8: mnemonics.Vpcmpub,
	EvexVpcmpuwKrK1XmmXmmm128Imm8: mnemonics.Vpcmpuw,
	EvexVpcmpuwKrK1YmmYmmm256Imm8: mnemonics.Vpcmpuw,
	EvexVpcmpuwKrK1ZmmZmmm512Imm8: mnemonics.Vpcmpuw,
	EvexVpcmpbKrK1XmmXmmm128Imm8: mnemonics.Vpcmpb,
	EvexVpcmpbKrK1YmmYmmm256Imm8: mnemonics.Vpcmpb,
	EvexVpcmpbKrK1ZmmZmmm512Imm8: mnemonics.Vpcmpb,
	EvexVpcmpwKrK1XmmXmmm128Imm8: mnemonics.Vpcmpw,
	EvexVpcmpwKrK1YmmYmmm256Imm8: mnemonics.Vpcmpw,
	EvexVpcmpwKrK1ZmmZmmm512Imm8: mnemonics.Vpcmpw,
	EvexVdbpsadbwXmmK1zXmmXmmm128Imm8: mnemonics.Vdbpsadbw,
	EvexVdbpsadbwYmmK1zYmmYmmm256Imm8: mnemonics.Vdbpsadbw,
	EvexVdbpsadbwZmmK1zZmmZmmm512Imm8: mnemonics.Vdbpsadbw,
	EvexVpclmulqdqXmmXmmXmmm128Imm8: mnemonics.Vpclmulqdq,
	EvexVpclmulqdqYmmYmmYmmm256Imm8: mnemonics.Vpclmulqdq,
	EvexVpclmulqdqZmmZmmZmmm512Imm8: mnemonics.Vpclmulqdq,
	XopVpcmovXmmXmmXmmm128Xmm: mnemonics.Vpcmov,
	XopVpcmovYmmYmmYmmm256Ymm: mnemonics.Vpcmov,
	XopVppermXmmXmmXmmm128Xmm: mnemonics.Vpperm,
	XopVprotbXmmXmmm128Imm8: mnemonics.Vprotb,
	XopVprotdXmmXmmm128Imm8: mnemonics.Vprotd,
	XopVpcombXmmXmmXmmm128Imm8: mnemonics.Vpcomb,
	XopBlcfillR32Rm32: mnemonics.Blcfill,
	XopBlcfillR64Rm64: mnemonics.Blcfill,
	XopBlsfillR32Rm32: mnemonics.Blsfill,
	XopBlsfillR64Rm64: mnemonics.Blsfill,
	XopBlcsR32Rm32: mnemonics.Blcs,
	XopBlcsR64Rm64: mnemonics.Blcs,
	XopTzmskR32Rm32: mnemonics.Tzmsk,
	XopTzmskR64Rm64: mnemonics.Tzmsk,
	XopBlcicR32Rm32: mnemonics.Blcic,
	XopBlcicR64Rm64: mnemonics.Blcic,
	XopBlsicR32Rm32: mnemonics.Blsic,
	XopBlsicR64Rm64: mnemonics.Blsic,
	XopT1mskcR32Rm32: mnemonics.T1mskc,
	XopT1mskcR64Rm64: mnemonics.T1mskc,
	XopBlcmskR32Rm32: mnemonics.Blcmsk,
	XopBlcmskR64Rm64: mnemonics.Blcmsk,
	XopBlciR32Rm32: mnemonics.Blci,
	XopBlciR64Rm64: mnemonics.Blci,
	XopVfrczpsXmmXmmm128: mnemonics.Vfrczps,
	XopVfrczpsYmmYmmm256: mnemonics.Vfrczps,
	XopVfrczpdXmmXmmm128: mnemonics.Vfrczpd,
	XopVfrczpdYmmYmmm256: mnemonics.Vfrczpd,
	XopVprotbXmmXmmm128Xmm: mnemonics.Vprotb,
	XopVprotdXmmXmmm128Xmm: mnemonics.Vprotd,
	XopBextrR32Rm32Imm32: mnemonics.Bextr,
	XopBextrR64Rm64Imm32: mnemonics.Bextr,
	XopLwpinsR32Rm32Imm32: mnemonics.Lwpins,
	XopLwpinsR64Rm32Imm32: mnemonics.Lwpins,
	XopLwpvalR32Rm32Imm32: mnemonics.Lwpval,
	XopLwpvalR64Rm32Imm32: mnemonics.Lwpval,
}
