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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopherx86/hardware/cpu/registers"
	"github.com/jetsetilly/gopherx86/test"
)

func TestGPR8Selection(t *testing.T) {
	test.ExpectEquality(t, registers.GPR8(0, false), registers.AL)
	test.ExpectEquality(t, registers.GPR8(4, false), registers.AH)
	test.ExpectEquality(t, registers.GPR8(7, false), registers.BH)
	test.ExpectEquality(t, registers.GPR8(4, true), registers.SPL)
	test.ExpectEquality(t, registers.GPR8(7, true), registers.DIL)
	test.ExpectEquality(t, registers.GPR8(8, true), registers.R8L)
	test.ExpectEquality(t, registers.GPR8(15, true), registers.R15L)
}

func TestNumber(t *testing.T) {
	test.ExpectEquality(t, registers.AH.Number(), 4)
	test.ExpectEquality(t, registers.SPL.Number(), 4)
	test.ExpectEquality(t, registers.R9L.Number(), 9)
	test.ExpectEquality(t, registers.R13D.Number(), 13)
	test.ExpectEquality(t, registers.ZMM31.Number(), 31)
	test.ExpectEquality(t, registers.GS.Number(), 5)
	test.ExpectEquality(t, registers.None.Number(), 0)
}

func TestFullRegister(t *testing.T) {
	test.ExpectEquality(t, registers.AH.FullRegister(), registers.RAX)
	test.ExpectEquality(t, registers.BH.FullRegister(), registers.RBX)
	test.ExpectEquality(t, registers.SIL.FullRegister(), registers.RSI)
	test.ExpectEquality(t, registers.R10L.FullRegister(), registers.R10)
	test.ExpectEquality(t, registers.CX.FullRegister(), registers.RCX)
	test.ExpectEquality(t, registers.XMM7.FullRegister(), registers.ZMM7)
	test.ExpectEquality(t, registers.ES.FullRegister(), registers.ES)
	test.ExpectEquality(t, registers.R12.FullRegister32(), registers.R12D)
}

func TestSizes(t *testing.T) {
	test.ExpectEquality(t, registers.DIL.Size(), 1)
	test.ExpectEquality(t, registers.R8W.Size(), 2)
	test.ExpectEquality(t, registers.ESP.Size(), 4)
	test.ExpectEquality(t, registers.RIP.Size(), 8)
	test.ExpectEquality(t, registers.YMM2.Size(), 32)
	test.ExpectEquality(t, registers.ST3.Size(), 10)
	test.ExpectEquality(t, registers.None.Size(), 0)
}

func TestEnumeration(t *testing.T) {
	for r := registers.None; int(r) < registers.NumRegisters; r++ {
		test.ExpectSuccess(t, r.Valid())
		test.ExpectInequality(t, r.String(), "unknown")
	}
	test.ExpectFailure(t, registers.Register(registers.NumRegisters).Valid())
	test.ExpectEquality(t, registers.Segment(6), registers.None)
	test.ExpectEquality(t, registers.Vector(3, 0), registers.None)
	test.ExpectEquality(t, registers.Vector(2, 17), registers.ZMM17)
	test.ExpectEquality(t, registers.GPR(64, 8), registers.R8)
}
