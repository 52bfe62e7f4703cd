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
	"github.com/jetsetilly/gopherx86/hardware/cpu/opcodes"
	"github.com/jetsetilly/gopherx86/hardware/cpu/registers"
)

// note that a prefix class has been seen. a class seen more than once is
// recorded in the instruction. the last prefix of a class is the one in
// effect
func (st *state) prefixClass(class int) {
	if st.classes&class == class {
		st.ins.Prefixes.Repeated = true
	}
	st.classes |= class
}

// the prefix phase. returns the first byte that is not a prefix
func (st *state) prefixes() (uint8, error) {
	for {
		b, err := st.next()
		if err != nil {
			return 0, err
		}

		switch b {
		case 0x26, 0x2e, 0x36, 0x3e:
			st.prefixClass(classSegment)

			// in 64bit mode the ES, CS, SS and DS overrides do not replace an
			// earlier FS or GS override
			if !st.mode64 || !st.segmentFSGS {
				st.segment = registers.Segment(int(b>>3) & 0x03)
			}

		case 0x64, 0x65:
			st.prefixClass(classSegment)
			st.segment = registers.FS
			if b == 0x65 {
				st.segment = registers.GS
			}
			st.segmentFSGS = true

		case 0x66:
			st.prefixClass(classOperandSize)
			st.opsizePrefix = true

		case 0x67:
			st.prefixClass(classAddressSize)
			st.adsizePrefix = true

		case 0xf0:
			st.prefixClass(classLock)
			st.lock = true

		case 0xf2, 0xf3:
			st.prefixClass(classRepeat)
			st.repeat = b

		default:
			if st.mode64 && b&0xf0 == 0x40 {
				// only the REX byte immediately before the opcode has any
				// effect
				if st.rex != 0 {
					st.ins.Prefixes.Repeated = true
				}
				st.rex = b
				continue
			}
			return b, nil
		}

		// a legacy prefix after a REX prefix cancels it
		st.rex = 0
		st.ins.Prefixes.Count++
	}
}

// the opcode phase for legacy maps. returns the index of the opcode entry
func (st *state) opcodeLookup(b uint8) (uint16, error) {
	if st.rex != 0 {
		st.extR = (st.rex >> 2) & 0x01
		st.extX = (st.rex >> 1) & 0x01
		st.extB = st.rex & 0x01
	}

	// the mandatory prefix is the last of F2 and F3, or 66 if neither is
	// present
	switch {
	case st.repeat == 0xf3:
		st.mandatory = opcodes.PrefixF3
	case st.repeat == 0xf2:
		st.mandatory = opcodes.PrefixF2
	case st.opsizePrefix:
		st.mandatory = opcodes.Prefix66
	default:
		st.mandatory = opcodes.PrefixNone
	}

	m := opcodes.Map0
	if b == 0x0f {
		var err error
		b, err = st.next()
		if err != nil {
			return 0, err
		}
		m = opcodes.Map0F

		if b == 0x38 || b == 0x3a {
			if b == 0x38 {
				m = opcodes.Map0F38
			} else {
				m = opcodes.Map0F3A
			}
			b, err = st.next()
			if err != nil {
				return 0, err
			}
		}
	}

	st.opcode = b

	idx, consumed := opcodes.Legacy(st.mode64, m, st.mandatory, b)
	st.consumed = consumed

	return idx, nil
}

// read the ModRM byte if it hasn't been read already and split it into its
// fields. the reg and rm fields are not extended
func (st *state) readModRM() error {
	if !st.haveModRM {
		b, err := st.next()
		if err != nil {
			return err
		}
		st.modrm = b
		st.haveModRM = true
	}
	st.mod = st.modrm >> 6
	st.reg = (st.modrm >> 3) & 0x07
	st.rm = st.modrm & 0x07
	return nil
}
