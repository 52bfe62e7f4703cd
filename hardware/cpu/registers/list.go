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

package registers

// List of all registers. The order of each group is significant and must not
// be changed.
const (
	None Register = iota

	// 8bit general purpose registers. AH to BH are only addressable without a REX
	// prefix and SPL to DIL only with one.
	AL
	CL
	DL
	BL
	AH
	CH
	DH
	BH
	SPL
	BPL
	SIL
	DIL
	R8L
	R9L
	R10L
	R11L
	R12L
	R13L
	R14L
	R15L

	// 16bit general purpose registers
	AX
	CX
	DX
	BX
	SP
	BP
	SI
	DI
	R8W
	R9W
	R10W
	R11W
	R12W
	R13W
	R14W
	R15W

	// 32bit general purpose registers
	EAX
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI
	R8D
	R9D
	R10D
	R11D
	R12D
	R13D
	R14D
	R15D

	// 64bit general purpose registers
	RAX
	RCX
	RDX
	RBX
	RSP
	RBP
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15

	// instruction pointers
	EIP
	RIP

	// segment registers
	ES
	CS
	SS
	DS
	FS
	GS

	// vector registers
	XMM0
	XMM1
	XMM2
	XMM3
	XMM4
	XMM5
	XMM6
	XMM7
	XMM8
	XMM9
	XMM10
	XMM11
	XMM12
	XMM13
	XMM14
	XMM15
	XMM16
	XMM17
	XMM18
	XMM19
	XMM20
	XMM21
	XMM22
	XMM23
	XMM24
	XMM25
	XMM26
	XMM27
	XMM28
	XMM29
	XMM30
	XMM31
	YMM0
	YMM1
	YMM2
	YMM3
	YMM4
	YMM5
	YMM6
	YMM7
	YMM8
	YMM9
	YMM10
	YMM11
	YMM12
	YMM13
	YMM14
	YMM15
	YMM16
	YMM17
	YMM18
	YMM19
	YMM20
	YMM21
	YMM22
	YMM23
	YMM24
	YMM25
	YMM26
	YMM27
	YMM28
	YMM29
	YMM30
	YMM31
	ZMM0
	ZMM1
	ZMM2
	ZMM3
	ZMM4
	ZMM5
	ZMM6
	ZMM7
	ZMM8
	ZMM9
	ZMM10
	ZMM11
	ZMM12
	ZMM13
	ZMM14
	ZMM15
	ZMM16
	ZMM17
	ZMM18
	ZMM19
	ZMM20
	ZMM21
	ZMM22
	ZMM23
	ZMM24
	ZMM25
	ZMM26
	ZMM27
	ZMM28
	ZMM29
	ZMM30
	ZMM31

	// opmask registers
	K0
	K1
	K2
	K3
	K4
	K5
	K6
	K7

	// control registers
	CR0
	CR1
	CR2
	CR3
	CR4
	CR5
	CR6
	CR7
	CR8
	CR9
	CR10
	CR11
	CR12
	CR13
	CR14
	CR15

	// debug registers
	DR0
	DR1
	DR2
	DR3
	DR4
	DR5
	DR6
	DR7
	DR8
	DR9
	DR10
	DR11
	DR12
	DR13
	DR14
	DR15

	// x87 stack registers
	ST0
	ST1
	ST2
	ST3
	ST4
	ST5
	ST6
	ST7

	// MMX registers
	MM0
	MM1
	MM2
	MM3
	MM4
	MM5
	MM6
	MM7
)

// NumRegisters is the number of entries in the Register enumeration, including
// None.
const NumRegisters = 229

var names = [NumRegisters]string{
	None: "none",
	AL: "al",
	CL: "cl",
	DL: "dl",
	BL: "bl",
	AH: "ah",
	CH: "ch",
	DH: "dh",
	BH: "bh",
	SPL: "spl",
	BPL: "bpl",
	SIL: "sil",
	DIL: "dil",
	R8L: "r8l",
	R9L: "r9l",
	R10L: "r10l",
	R11L: "r11l",
	R12L: "r12l",
	R13L: "r13l",
	R14L: "r14l",
	R15L: "r15l",
	AX: "ax",
	CX: "cx",
	DX: "dx",
	BX: "bx",
	SP: "sp",
	BP: "bp",
	SI: "si",
	DI: "di",
	R8W: "r8w",
	R9W: "r9w",
	R10W: "r10w",
	R11W: "r11w",
	R12W: "r12w",
	R13W: "r13w",
	R14W: "r14w",
	R15W: "r15w",
	EAX: "eax",
	ECX: "ecx",
	EDX: "edx",
	EBX: "ebx",
	ESP: "esp",
	EBP: "ebp",
	ESI: "esi",
	EDI: "edi",
	R8D: "r8d",
	R9D: "r9d",
	R10D: "r10d",
	R11D: "r11d",
	R12D: "r12d",
	R13D: "r13d",
	R14D: "r14d",
	R15D: "r15d",
	RAX: "rax",
	RCX: "rcx",
	RDX: "rdx",
	RBX: "rbx",
	RSP: "rsp",
	RBP: "rbp",
	RSI: "rsi",
	RDI: "rdi",
	R8: "r8",
	R9: "r9",
	R10: "r10",
	R11: "r11",
	R12: "r12",
	R13: "r13",
	R14: "r14",
	R15: "r15",
	EIP: "eip",
	RIP: "rip",
	ES: "es",
	CS: "cs",
	SS: "ss",
	DS: "ds",
	FS: "fs",
	GS: "gs",
	XMM0: "xmm0",
	XMM1: "xmm1",
	XMM2: "xmm2",
	XMM3: "xmm3",
	XMM4: "xmm4",
	XMM5: "xmm5",
	XMM6: "xmm6",
	XMM7: "xmm7",
	XMM8: "xmm8",
	XMM9: "xmm9",
	XMM10: "xmm10",
	XMM11: "xmm11",
	XMM12: "xmm12",
	XMM13: "xmm13",
	XMM14: "xmm14",
	XMM15: "xmm15",
	XMM16: "xmm16",
	XMM17: "xmm17",
	XMM18: "xmm18",
	XMM19: "xmm19",
	XMM20: "xmm20",
	XMM21: "xmm21",
	XMM22: "xmm22",
	XMM23: "xmm23",
	XMM24: "xmm24",
	XMM25: "xmm25",
	XMM26: "xmm26",
	XMM27: "xmm27",
	XMM28: "xmm28",
	XMM29: "xmm29",
	XMM30: "xmm30",
	XMM31: "xmm31",
	YMM0: "ymm0",
	YMM1: "ymm1",
	YMM2: "ymm2",
	YMM3: "ymm3",
	YMM4: "ymm4",
	YMM5: "ymm5",
	YMM6: "ymm6",
	YMM7: "ymm7",
	YMM8: "ymm8",
	YMM9: "ymm9",
	YMM10: "ymm10",
	YMM11: "ymm11",
	YMM12: "ymm12",
	YMM13: "ymm13",
	YMM14: "ymm14",
	YMM15: "ymm15",
	YMM16: "ymm16",
	YMM17: "ymm17",
	YMM18: "ymm18",
	YMM19: "ymm19",
	YMM20: "ymm20",
	YMM21: "ymm21",
	YMM22: "ymm22",
	YMM23: "ymm23",
	YMM24: "ymm24",
	YMM25: "ymm25",
	YMM26: "ymm26",
	YMM27: "ymm27",
	YMM28: "ymm28",
	YMM29: "ymm29",
	YMM30: "ymm30",
	YMM31: "ymm31",
	ZMM0: "zmm0",
	ZMM1: "zmm1",
	ZMM2: "zmm2",
	ZMM3: "zmm3",
	ZMM4: "zmm4",
	ZMM5: "zmm5",
	ZMM6: "zmm6",
	ZMM7: "zmm7",
	ZMM8: "zmm8",
	ZMM9: "zmm9",
	ZMM10: "zmm10",
	ZMM11: "zmm11",
	ZMM12: "zmm12",
	ZMM13: "zmm13",
	ZMM14: "zmm14",
	ZMM15: "zmm15",
	ZMM16: "zmm16",
	ZMM17: "zmm17",
	ZMM18: "zmm18",
	ZMM19: "zmm19",
	ZMM20: "zmm20",
	ZMM21: "zmm21",
	ZMM22: "zmm22",
	ZMM23: "zmm23",
	ZMM24: "zmm24",
	ZMM25: "zmm25",
	ZMM26: "zmm26",
	ZMM27: "zmm27",
	ZMM28: "zmm28",
	ZMM29: "zmm29",
	ZMM30: "zmm30",
	ZMM31: "zmm31",
	K0: "k0",
	K1: "k1",
	K2: "k2",
	K3: "k3",
	K4: "k4",
	K5: "k5",
	K6: "k6",
	K7: "k7",
	CR0: "cr0",
	CR1: "cr1",
	CR2: "cr2",
	CR3: "cr3",
	CR4: "cr4",
	CR5: "cr5",
	CR6: "cr6",
	CR7: "cr7",
	CR8: "cr8",
	CR9: "cr9",
	CR10: "cr10",
	CR11: "cr11",
	CR12: "cr12",
	CR13: "cr13",
	CR14: "cr14",
	CR15: "cr15",
	DR0: "dr0",
	DR1: "dr1",
	DR2: "dr2",
	DR3: "dr3",
	DR4: "dr4",
	DR5: "dr5",
	DR6: "dr6",
	DR7: "dr7",
	DR8: "dr8",
	DR9: "dr9",
	DR10: "dr10",
	DR11: "dr11",
	DR12: "dr12",
	DR13: "dr13",
	DR14: "dr14",
	DR15: "dr15",
	ST0: "st0",
	ST1: "st1",
	ST2: "st2",
	ST3: "st3",
	ST4: "st4",
	ST5: "st5",
	ST6: "st6",
	ST7: "st7",
	MM0: "mm0",
	MM1: "mm1",
	MM2: "mm2",
	MM3: "mm3",
	MM4: "mm4",
	MM5: "mm5",
	MM6: "mm6",
	MM7: "mm7",
}
