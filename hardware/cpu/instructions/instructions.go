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

// Code identifies an instruction form. The zero value is Invalid.
type Code uint16

func (c Code) String() string {
	if int(c) >= NumCodes {
		return "unknown"
	}
	return names[c]
}

// Mnemonic returns the mnemonic of the instruction code.
func (c Code) Mnemonic() mnemonics.Mnemonic {
	if int(c) >= NumCodes {
		return mnemonics.Invalid
	}
	return codeMnemonics[c]
}

// IsValid returns false for Invalid and for values outside the enumeration.
func (c Code) IsValid() bool {
	return c != Invalid && int(c) < NumCodes
}
