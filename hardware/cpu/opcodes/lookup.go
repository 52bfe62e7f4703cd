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

// Map is the opcode map selected by the escape bytes or by the map field of
// a VEX, EVEX or XOP prefix.
type Map uint8

// List of valid Map values. For VEX and EVEX encodings Map0F, Map0F38 and
// Map0F3A correspond to the mmmmm values 1, 2 and 3. For XOP encodings they
// correspond to the map values 8, 9 and 10.
const (
	Map0 Map = iota
	Map0F
	Map0F38
	Map0F3A
)

// Prefix is the mandatory prefix, or the VEX/EVEX/XOP pp field.
type Prefix uint8

// List of valid Prefix values. The order is the order of the pp field.
const (
	PrefixNone Prefix = iota
	Prefix66
	PrefixF3
	PrefixF2
)

// Byte returns the prefix byte. Zero for PrefixNone.
func (p Prefix) Byte() uint8 {
	switch p {
	case Prefix66:
		return 0x66
	case PrefixF3:
		return 0xf3
	case PrefixF2:
		return 0xf2
	}
	return 0
}

// Invalid is the index of the invalid entry.
const Invalid uint16 = 0

// EntryAt returns the entry at index idx. The invalid entry is returned for
// an out of range index.
func EntryAt(idx uint16) *Entry {
	if int(idx) >= len(entries) {
		return &entries[Invalid]
	}
	return &entries[idx]
}

// Legacy looks up an opcode in the legacy (non-VEX) maps. The consumed return
// value is true if the entry was selected by the mandatory prefix, in which
// case the prefix does not have its usual meaning.
//
// If there is no entry for the mandatory prefix the entry for no prefix is
// returned, unless the opcode is one where the prefix always selects the
// instruction (the SSE and MMX opcodes), in which case the invalid entry is
// returned.
func Legacy(mode64 bool, m Map, p Prefix, op uint8) (idx uint16, consumed bool) {
	if m > Map0F3A || p > PrefixF2 {
		return Invalid, false
	}

	mode := 0
	if mode64 {
		mode = 1
	}

	if p != PrefixNone {
		if idx := legacyTable[mode][m][p][op]; idx != Invalid {
			return idx, true
		}
		if strictPrefix[m][op] {
			return Invalid, false
		}
	}

	return legacyTable[mode][m][PrefixNone][op], false
}

// VEX looks up an opcode in the VEX maps.
func VEX(m Map, p Prefix, op uint8) uint16 {
	if m < Map0F || m > Map0F3A || p > PrefixF2 {
		return Invalid
	}
	return vexTable[m-Map0F][p][op]
}

// EVEX looks up an opcode in the EVEX maps.
func EVEX(m Map, p Prefix, op uint8) uint16 {
	if m < Map0F || m > Map0F3A || p > PrefixF2 {
		return Invalid
	}
	return evexTable[m-Map0F][p][op]
}

// XOP looks up an opcode in the XOP maps. The map selector is the value of the
// map field of the XOP prefix (8, 9 or 10).
func XOP(sel uint8, p Prefix, op uint8) uint16 {
	if sel < 8 || sel > 10 || p > PrefixF2 {
		return Invalid
	}
	return xopTable[sel-8][p][op]
}

// Resolve returns the entry for the opcode at index idx. Entries of
// KindGroup are resolved further using the ModRM byte. Other entries are
// returned unchanged.
func Resolve(idx uint16, modrm uint8) *Entry {
	e := EntryAt(idx)
	if e.Kind != KindGroup {
		return e
	}

	g := &groups[e.Group]
	mod := modrm >> 6
	reg := (modrm >> 3) & 0x07
	rm := modrm & 0x07

	if mod != 0x03 {
		return EntryAt(g.Mem[reg])
	}

	if g.RM != 0 {
		if i := rmTables[g.RM][reg][rm]; i != Invalid {
			return EntryAt(i)
		}
	}

	return EntryAt(g.Reg[reg])
}

// ByW returns the entry selected by the W bit for entries of KindW. Other
// entries are returned unchanged.
func ByW(e *Entry, w int) *Entry {
	if e.Kind != KindW {
		return e
	}
	return EntryAt(e.Alt + uint16(w&0x01))
}
