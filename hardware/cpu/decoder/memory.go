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
	"github.com/jetsetilly/gopherx86/hardware/cpu/registers"
	"github.com/jetsetilly/gopherx86/hardware/cpu/result"
)

// base and index registers of the 16bit addressing forms, indexed by the rm
// field of the ModRM byte
var memory16 = [8][2]registers.Register{
	{registers.BX, registers.SI},
	{registers.BX, registers.DI},
	{registers.BP, registers.SI},
	{registers.BP, registers.DI},
	{registers.SI, registers.None},
	{registers.DI, registers.None},
	{registers.BP, registers.None},
	{registers.BX, registers.None},
}

// the memory phase. decodes the SIB byte and the displacement. the ModRM byte
// has been read and the mod field is not 11b
func (st *state) memory(m *result.MemoryOperand) error {
	m.AddressSize = st.adsize
	m.Scale = 1

	if st.vsib && st.adsize == 16 {
		return st.invalid("vsib with 16bit addressing")
	}

	var err error
	if st.adsize == 16 {
		err = st.memory16(m)
	} else {
		err = st.memory32(m)
	}
	if err != nil {
		return err
	}

	if st.segment != registers.None {
		m.Segment = st.segment
	}

	return nil
}

func (st *state) memory16(m *result.MemoryOperand) error {
	m.Base = memory16[st.rm][0]
	m.Index = memory16[st.rm][1]
	m.Segment = registers.DS
	if m.Base == registers.BP {
		m.Segment = registers.SS
	}

	switch st.mod {
	case 0x00:
		if st.rm == 0x06 {
			m.Base = registers.None
			m.Segment = registers.DS
			return st.displacement(m, 2)
		}
	case 0x01:
		return st.displacement(m, 1)
	case 0x02:
		return st.displacement(m, 2)
	}
	return nil
}

func (st *state) memory32(m *result.MemoryOperand) error {
	width := st.adsize
	m.Segment = registers.DS

	if st.vsib && st.rm != 0x04 {
		return st.invalid("vsib without sib byte")
	}

	if st.rm == 0x04 {
		sib, err := st.next()
		if err != nil {
			return err
		}

		m.Scale = 1 << (sib >> 6)

		index := int((sib>>3)&0x07) | int(st.extX)<<3
		if st.vsib {
			// there is no "no index" encoding for a vector index. EVEX.V'
			// is the fifth bit of the register number
			if st.ins.Encoding == result.EVEX {
				index |= int(st.vvvv>>4) << 4
			}
			st.vsibIndex = index
			m.Index = registers.Vector(st.vsibLength, index)
		} else if index != 0x04 {
			m.Index = registers.GPR(width, index)
		}

		base := sib & 0x07
		if base == 0x05 && st.mod == 0x00 {
			return st.displacement(m, 4)
		}

		m.Base = registers.GPR(width, int(base)|int(st.extB)<<3)
		if st.extB == 0 && (base == 0x04 || base == 0x05) {
			m.Segment = registers.SS
		}
	} else if st.rm == 0x05 && st.mod == 0x00 {
		if st.mode64 {
			m.Base = registers.RIP
			if width == 32 {
				m.Base = registers.EIP
			}
		}
		return st.displacement(m, 4)
	} else {
		m.Base = registers.GPR(width, int(st.rm)|int(st.extB)<<3)
		if st.rm == 0x05 && st.extB == 0 {
			m.Segment = registers.SS
		}
	}

	switch st.mod {
	case 0x01:
		return st.displacement(m, 1)
	case 0x02:
		return st.displacement(m, 4)
	}
	return nil
}

// read a displacement of the number of bytes given and sign extend it to 64
// bits. an 8bit displacement in an EVEX encoded instruction is scaled
func (st *state) displacement(m *result.MemoryOperand, bytes int) error {
	st.ins.Offsets.DisplacementOffset = st.length
	st.ins.Offsets.DisplacementSize = bytes

	v, err := st.nextN(bytes)
	if err != nil {
		return err
	}

	m.DisplacementSize = bytes

	switch bytes {
	case 1:
		d := int64(int8(v))
		if st.disp8N > 1 {
			d *= int64(st.disp8N)
		}
		m.Displacement = uint64(d)
	case 2:
		m.Displacement = uint64(int64(int16(v)))
	case 4:
		m.Displacement = uint64(int64(int32(v)))
	default:
		m.Displacement = v
	}

	return nil
}
