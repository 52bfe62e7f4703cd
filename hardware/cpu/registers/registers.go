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

// Register identifies a single architectural register. The zero value is None.
type Register uint8

func (r Register) String() string {
	if int(r) >= NumRegisters {
		return "unknown"
	}
	return names[r]
}

// Valid returns true if r is a member of the enumeration, including None.
func (r Register) Valid() bool {
	return int(r) < NumRegisters
}

// IsGPR8 returns true for the 8bit general purpose registers.
func (r Register) IsGPR8() bool {
	return r >= AL && r <= R15L
}

// IsGPR16 returns true for the 16bit general purpose registers.
func (r Register) IsGPR16() bool {
	return r >= AX && r <= R15W
}

// IsGPR32 returns true for the 32bit general purpose registers.
func (r Register) IsGPR32() bool {
	return r >= EAX && r <= R15D
}

// IsGPR64 returns true for the 64bit general purpose registers.
func (r Register) IsGPR64() bool {
	return r >= RAX && r <= R15
}

// IsGPR returns true for any general purpose register.
func (r Register) IsGPR() bool {
	return r >= AL && r <= R15
}

// IsIP returns true for EIP and RIP.
func (r Register) IsIP() bool {
	return r == EIP || r == RIP
}

// IsSegment returns true for ES, CS, SS, DS, FS and GS.
func (r Register) IsSegment() bool {
	return r >= ES && r <= GS
}

// IsXMM returns true for the 128bit vector registers.
func (r Register) IsXMM() bool {
	return r >= XMM0 && r <= XMM31
}

// IsYMM returns true for the 256bit vector registers.
func (r Register) IsYMM() bool {
	return r >= YMM0 && r <= YMM31
}

// IsZMM returns true for the 512bit vector registers.
func (r Register) IsZMM() bool {
	return r >= ZMM0 && r <= ZMM31
}

// IsVector returns true for XMM, YMM and ZMM registers.
func (r Register) IsVector() bool {
	return r >= XMM0 && r <= ZMM31
}

// IsOpmask returns true for K0 to K7.
func (r Register) IsOpmask() bool {
	return r >= K0 && r <= K7
}

// IsCR returns true for the control registers.
func (r Register) IsCR() bool {
	return r >= CR0 && r <= CR15
}

// IsDR returns true for the debug registers.
func (r Register) IsDR() bool {
	return r >= DR0 && r <= DR15
}

// IsST returns true for the x87 stack registers.
func (r Register) IsST() bool {
	return r >= ST0 && r <= ST7
}

// IsMM returns true for the MMX registers.
func (r Register) IsMM() bool {
	return r >= MM0 && r <= MM7
}

// Base returns the first register in the group r belongs to.
func (r Register) Base() Register {
	switch {
	case r.IsGPR8():
		return AL
	case r.IsGPR16():
		return AX
	case r.IsGPR32():
		return EAX
	case r.IsGPR64():
		return RAX
	case r.IsIP():
		return EIP
	case r.IsSegment():
		return ES
	case r.IsXMM():
		return XMM0
	case r.IsYMM():
		return YMM0
	case r.IsZMM():
		return ZMM0
	case r.IsOpmask():
		return K0
	case r.IsCR():
		return CR0
	case r.IsDR():
		return DR0
	case r.IsST():
		return ST0
	case r.IsMM():
		return MM0
	}
	return None
}

// Number returns the index of the register inside its group. For 8bit
// registers this is the encoding number, so SPL and AH both report 4.
func (r Register) Number() int {
	if r == None {
		return 0
	}
	n := int(r - r.Base())
	if r.IsGPR8() && n >= 8 {
		n -= 4
	}
	return n
}

// Size returns the width of the register in bytes. None has zero size.
func (r Register) Size() int {
	switch {
	case r.IsGPR8():
		return 1
	case r.IsGPR16(), r.IsSegment():
		return 2
	case r.IsGPR32(), r == EIP:
		return 4
	case r.IsGPR64(), r == RIP, r.IsOpmask(), r.IsMM():
		return 8
	case r.IsCR(), r.IsDR():
		return 8
	case r.IsST():
		return 10
	case r.IsXMM():
		return 16
	case r.IsYMM():
		return 32
	case r.IsZMM():
		return 64
	}
	return 0
}

// FullRegister returns the widest register that contains r. AH returns RAX
// and XMM3 returns ZMM3. Registers that are not part of a wider register are
// returned unchanged.
func (r Register) FullRegister() Register {
	switch {
	case r.IsGPR8():
		if r >= AH && r <= BH {
			return RAX + (r - AH)
		}
		if r >= SPL {
			return RAX + (r - SPL) + 4
		}
		return RAX + (r - AL)
	case r.IsGPR16():
		return RAX + (r - AX)
	case r.IsGPR32():
		return RAX + (r - EAX)
	case r.IsGPR64():
		return r
	case r == EIP:
		return RIP
	case r.IsXMM():
		return ZMM0 + (r - XMM0)
	case r.IsYMM():
		return ZMM0 + (r - YMM0)
	}
	return r
}

// FullRegister32 is like FullRegister but a 64bit general purpose register is
// reduced to its 32bit form. Used when describing 16 and 32bit code.
func (r Register) FullRegister32() Register {
	f := r.FullRegister()
	if f.IsGPR64() {
		return EAX + (f - RAX)
	}
	if f == RIP {
		return EIP
	}
	return f
}
