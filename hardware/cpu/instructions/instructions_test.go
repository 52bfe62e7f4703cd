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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopherx86/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherx86/hardware/cpu/mnemonics"
	"github.com/jetsetilly/gopherx86/test"
)

func TestCodeMnemonic(t *testing.T) {
	test.ExpectEquality(t, instructions.Invalid.Mnemonic(), mnemonics.Invalid)
	test.ExpectEquality(t, instructions.AddRm8R8.Mnemonic(), mnemonics.Add)
	test.ExpectEquality(t, instructions.NegRm32.Mnemonic(), mnemonics.Neg)
	test.ExpectEquality(t, instructions.Nop.Mnemonic(), mnemonics.Nop)
	test.ExpectEquality(t, instructions.EvexVaddpsZmmK1zZmmZmmm512B32Er.Mnemonic(), mnemonics.Vaddps)
}

func TestCodeString(t *testing.T) {
	test.ExpectEquality(t, instructions.MovR32Imm32.String(), "MovR32Imm32")
	test.ExpectEquality(t, instructions.Code(instructions.NumCodes).String(), "unknown")
	test.ExpectEquality(t, instructions.Code(instructions.NumCodes).Mnemonic(), mnemonics.Invalid)
}

func TestCodeValidity(t *testing.T) {
	test.ExpectFailure(t, instructions.Invalid.IsValid())
	test.ExpectSuccess(t, instructions.Nop.IsValid())
	test.ExpectFailure(t, instructions.Code(instructions.NumCodes).IsValid())
}

func TestEveryCodeHasMnemonic(t *testing.T) {
	for c := instructions.Code(1); int(c) < instructions.NumCodes; c++ {
		if c.Mnemonic() == mnemonics.Invalid {
			t.Errorf("code %s has no mnemonic", c)
		}
	}
}
