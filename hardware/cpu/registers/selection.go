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

// GPR8 returns the 8bit register with encoding number n. The rex argument
// selects SPL, BPL, SIL and DIL instead of AH, CH, DH and BH for numbers 4 to
// 7.
func GPR8(n int, rex bool) Register {
	if n < 4 || (!rex && n < 8) {
		return AL + Register(n)
	}
	return AL + Register(n) + 4
}

// GPR16 returns the 16bit register with encoding number n.
func GPR16(n int) Register {
	return AX + Register(n&15)
}

// GPR32 returns the 32bit register with encoding number n.
func GPR32(n int) Register {
	return EAX + Register(n&15)
}

// GPR64 returns the 64bit register with encoding number n.
func GPR64(n int) Register {
	return RAX + Register(n&15)
}

// GPR returns the general purpose register of the width given in bits. The
// width must be 16, 32 or 64.
func GPR(width int, n int) Register {
	switch width {
	case 16:
		return GPR16(n)
	case 32:
		return GPR32(n)
	case 64:
		return GPR64(n)
	}
	return None
}

// Vector returns the vector register selected by n, with the width of the
// register chosen by the vector length field (0 is XMM, 1 is YMM and 2 is
// ZMM).
func Vector(length int, n int) Register {
	switch length {
	case 0:
		return XMM0 + Register(n&31)
	case 1:
		return YMM0 + Register(n&31)
	case 2:
		return ZMM0 + Register(n&31)
	}
	return None
}

// Segment returns the segment register with encoding number n. The numbers 6
// and 7 are reserved and return None.
func Segment(n int) Register {
	if n < 0 || n > 5 {
		return None
	}
	return ES + Register(n)
}

// Control returns the control register with number n.
func Control(n int) Register {
	return CR0 + Register(n&15)
}

// Debug returns the debug register with number n.
func Debug(n int) Register {
	return DR0 + Register(n&15)
}

// Opmask returns the opmask register with number n.
func Opmask(n int) Register {
	return K0 + Register(n&7)
}

// ST returns the x87 stack register at depth n.
func ST(n int) Register {
	return ST0 + Register(n&7)
}

// MM returns the MMX register with number n.
func MM(n int) Register {
	return MM0 + Register(n&7)
}
