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

package mnemonics_test

import (
	"testing"

	"github.com/jetsetilly/gopherx86/hardware/cpu/mnemonics"
	"github.com/jetsetilly/gopherx86/test"
)

func TestMnemonicNames(t *testing.T) {
	test.ExpectEquality(t, mnemonics.Invalid.String(), "invalid")
	test.ExpectEquality(t, mnemonics.Add.String(), "add")
	test.ExpectEquality(t, mnemonics.Vfmadd231ps.String(), "vfmadd231ps")
	test.ExpectEquality(t, mnemonics.Mnemonic(mnemonics.NumMnemonics + 1).String(), "unknown")
}

func TestMnemonicNamesUnique(t *testing.T) {
	seen := make(map[string]mnemonics.Mnemonic)
	for m := mnemonics.Mnemonic(0); int(m) < mnemonics.NumMnemonics; m++ {
		s := m.String()
		if o, ok := seen[s]; ok {
			t.Errorf("mnemonic %d and %d share the name %q", o, m, s)
		}
		seen[s] = m
	}
}
