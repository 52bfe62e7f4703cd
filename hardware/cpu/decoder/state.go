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

package decoder

import (
	"github.com/jetsetilly/gopherx86/bytesource"
	"github.com/jetsetilly/gopherx86/curated"
	"github.com/jetsetilly/gopherx86/hardware/cpu/opcodes"
	"github.com/jetsetilly/gopherx86/hardware/cpu/registers"
	"github.com/jetsetilly/gopherx86/hardware/cpu/result"
)

// classes of legacy prefix. used to detect repeated prefixes
const (
	classSegment = 1 << iota
	classOperandSize
	classAddressSize
	classLock
	classRepeat
)

// state of a single call to Decode()
type state struct {
	dec    *Decoder
	src    bytesource.Source
	mode64 bool

	ins    result.Instruction
	length int

	// legacy prefixes as seen in the prefix phase
	classes      int
	segment      registers.Register
	segmentFSGS  bool
	opsizePrefix bool
	adsizePrefix bool
	lock         bool
	repeat       uint8
	rex          uint8

	// the mandatory prefix used for the table lookup and whether the table
	// consumed it
	mandatory opcodes.Prefix
	consumed  bool

	opcode uint8

	// ModRM fields. haveModRM is true if the ModRM byte was read while
	// checking for a VEX, EVEX or XOP escape
	haveModRM bool
	modrm     uint8
	mod       uint8
	reg       uint8
	rm        uint8

	// register extension bits from REX, VEX, EVEX or XOP. extR2 and extX are
	// the EVEX R' and X bits as they apply to vector registers
	extR  uint8
	extX  uint8
	extB  uint8
	extR2 uint8

	// VEX, EVEX and XOP fields. vvvv is stored not inverted and includes
	// EVEX.V' in bit 4
	w         int
	vvvv      uint8
	vl        int
	aaa       uint8
	zeroing   bool
	broadcast bool

	// operand and address size in bits
	opsize int
	adsize int

	// column of the code grid
	col int

	// immediates read so far. used to fill in the constant offsets
	immCount int

	// compressed displacement scale for EVEX
	disp8N int

	// the memory operand has a vector index register. vsibLength is the
	// vector length of the index and vsibIndex its register number once the
	// SIB byte has been read
	vsib       bool
	vsibLength int
	vsibIndex  int
}

// next byte from the byte source. the length check happens before the read
// so that an overlong instruction is always reported as such, even if the
// byte source has run out
func (st *state) next() (uint8, error) {
	if st.length >= result.MaxLength {
		return 0, curated.Errorf(InstructionTooLong)
	}
	b, ok := st.src.Next()
	if !ok {
		return 0, curated.Errorf(NoMoreBytes)
	}
	st.length++
	return b, nil
}

func (st *state) next16() (uint16, error) {
	lo, err := st.next()
	if err != nil {
		return 0, err
	}
	hi, err := st.next()
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

func (st *state) next32() (uint32, error) {
	lo, err := st.next16()
	if err != nil {
		return 0, err
	}
	hi, err := st.next16()
	if err != nil {
		return 0, err
	}
	return uint32(lo) | uint32(hi)<<16, nil
}

func (st *state) next64() (uint64, error) {
	lo, err := st.next32()
	if err != nil {
		return 0, err
	}
	hi, err := st.next32()
	if err != nil {
		return 0, err
	}
	return uint64(lo) | uint64(hi)<<32, nil
}

// read a little-endian value of the number of bytes given
func (st *state) nextN(bytes int) (uint64, error) {
	switch bytes {
	case 1:
		v, err := st.next()
		return uint64(v), err
	case 2:
		v, err := st.next16()
		return uint64(v), err
	case 4:
		v, err := st.next32()
		return uint64(v), err
	}
	return st.next64()
}

func (st *state) invalid(detail string) error {
	return curated.Errorf(InvalidEncoding, detail)
}

// strict returns true if reserved encodings should be rejected
func (st *state) strict() bool {
	return st.dec.options&NoInvalidCheck != NoInvalidCheck
}

// decode a single instruction. phases are run in order and the first error
// stops decoding
func (st *state) decode() error {
	b, err := st.prefixes()
	if err != nil {
		return err
	}

	idx, err := st.opcodeLookup(b)
	if err != nil {
		return err
	}

	e := opcodes.EntryAt(idx)

	switch e.Kind {
	case opcodes.KindInvalid:
		return st.invalid("no entry for opcode")

	case opcodes.KindNop:
		if st.extB == 1 {
			idx = e.Alt
		}

	case opcodes.KindVEX2, opcodes.KindVEX3, opcodes.KindEVEX, opcodes.KindXOP:
		escape, err := st.isEscape(e.Kind)
		if err != nil {
			return err
		}
		if !escape {
			// the byte read while checking for the escape is the ModRM byte
			// of the alternative instruction
			idx = e.Alt
			if idx == opcodes.Invalid {
				return st.invalid("no entry for opcode")
			}
			break
		}
		return st.vector(e.Kind)
	}

	return st.legacy(idx)
}

// legacy (non-VEX) encodings. idx is the index of the opcode entry, which may
// still need resolving with the ModRM byte
func (st *state) legacy(idx uint16) error {
	st.ins.Encoding = result.Legacy

	e := opcodes.EntryAt(idx)
	if e.Flags.Has(opcodes.FlagModRM) {
		if err := st.readModRM(); err != nil {
			return err
		}
		e = opcodes.Resolve(idx, st.modrm)
	}

	if e.Kind != opcodes.KindNormal && e.Kind != opcodes.KindNop {
		return st.invalid("no entry for opcode")
	}

	st.legacySizes(e.Flags)

	st.col = sizeColumn(st.opsize)
	if e.Flags.Has(opcodes.FlagAddressSizeColumn) {
		st.col = sizeColumn(st.adsize)
	}

	return st.finish(e, 0)
}

// operand and address size of legacy encodings
func (st *state) legacySizes(fl opcodes.Flags) {
	opsizePrefix := st.opsizePrefix && !(st.consumed && st.mandatory == opcodes.Prefix66)

	switch st.dec.bitness {
	case 16:
		st.opsize = 16
		if opsizePrefix {
			st.opsize = 32
		}
		st.adsize = 16
		if st.adsizePrefix {
			st.adsize = 32
		}
	case 32:
		st.opsize = 32
		if opsizePrefix {
			st.opsize = 16
		}
		st.adsize = 32
		if st.adsizePrefix {
			st.adsize = 16
		}
	default:
		switch {
		case st.rex&0x08 == 0x08:
			st.opsize = 64
		case fl.Has(opcodes.FlagForce64):
			st.opsize = 64
			if opsizePrefix && st.dec.options&AMD == AMD {
				st.opsize = 16
			}
		case opsizePrefix:
			st.opsize = 16
		case fl.Has(opcodes.FlagDefault64):
			st.opsize = 64
		default:
			st.opsize = 32
		}
		st.adsize = 64
		if st.adsizePrefix {
			st.adsize = 32
		}
	}
}

// column of the code grid for an operand or address size
func sizeColumn(bits int) int {
	switch bits {
	case 16:
		return 0
	case 32:
		return 1
	}
	return 2
}

// finish decoding once the entry has been resolved and the column chosen.
// the remaining phases are the same for all encodings
func (st *state) finish(e *opcodes.Entry, row int) error {
	code := e.Code(row, st.col)
	if !code.IsValid() {
		return st.invalid("no instruction for operand size")
	}

	if e.Flags.Has(opcodes.FlagModRM) {
		if e.Flags.Has(opcodes.FlagNoMod3) && st.mod == 0x03 {
			return st.invalid("register operand not allowed")
		}
		if e.Flags.Has(opcodes.FlagMod3) && st.mod != 0x03 {
			return st.invalid("memory operand not allowed")
		}
	}

	if st.lock && st.strict() {
		if !e.Flags.Has(opcodes.FlagLock) || st.mod == 0x03 {
			return curated.Errorf(LockNotAllowed, code)
		}
	}

	st.ins.Code = code
	st.ins.OperandSize = st.opsize
	st.ins.AddressSize = st.adsize

	if err := st.operands(e, row); err != nil {
		return err
	}

	st.finalisePrefixes()
	st.ins.Length = st.length

	return nil
}

// record the effective prefixes in the instruction
func (st *state) finalisePrefixes() {
	p := &st.ins.Prefixes
	p.Lock = st.lock
	p.Segment = st.segment
	p.AddressSize = st.adsizePrefix
	p.OperandSize = st.opsizePrefix
	p.Rep = st.repeat == 0xf3
	p.Repne = st.repeat == 0xf2
	p.REX = st.rex

	if st.consumed {
		p.Mandatory = st.mandatory.Byte()
		switch st.mandatory {
		case opcodes.Prefix66:
			p.OperandSize = false
		case opcodes.PrefixF3:
			p.Rep = false
		case opcodes.PrefixF2:
			p.Repne = false
		}
	}
}
