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

package mnemonics

// Mnemonic identifies an instruction irrespective of its operands. The zero
// value is Invalid.
type Mnemonic uint16

// String returns the lower case assembler name of the mnemonic.
func (m Mnemonic) String() string {
	if int(m) >= NumMnemonics {
		return "unknown"
	}
	return names[m]
}
