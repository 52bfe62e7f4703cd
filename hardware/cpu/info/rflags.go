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

import "strings"

// RflagsBits is a set of RFLAGS bits. The bit assignments are fixed and do not
// correspond to the bit positions in the RFLAGS register.
type RflagsBits uint16

// List of RFLAGS bits.
const (
	OF RflagsBits = 1 << iota
	SF
	ZF
	AF
	CF
	PF
	DF
	IF
	AC

	// every bit in the set
	AllFlags = OF | SF | ZF | AF | CF | PF | DF | IF | AC
)

var rflagsNames = []string{"OF", "SF", "ZF", "AF", "CF", "PF", "DF", "IF", "AC"}

// String returns the names of the bits in the set separated by a vertical
// bar. An empty set returns "none".
func (f RflagsBits) String() string {
	if f&AllFlags == 0 {
		return "none"
	}

	s := strings.Builder{}
	for i, n := range rflagsNames {
		if f&(1<<i) != 0 {
			if s.Len() > 0 {
				s.WriteString("|")
			}
			s.WriteString(n)
		}
	}
	return s.String()
}

// Has returns true if every bit in b is also in f.
func (f RflagsBits) Has(b RflagsBits) bool {
	return f&b == b
}
