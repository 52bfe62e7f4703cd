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

import (
	"testing"

	"github.com/jetsetilly/gopherx86/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherx86/test"
)

func TestRflagsTable(t *testing.T) {
	for i, f := range rflagsTable {
		// a flag is never affected in more than one way
		test.ExpectEquality(t, f.written&f.set, RflagsBits(0), i)
		test.ExpectEquality(t, f.written&f.cleared, RflagsBits(0), i)
		test.ExpectEquality(t, f.written&f.undefined, RflagsBits(0), i)
		test.ExpectEquality(t, f.set&f.cleared, RflagsBits(0), i)
		test.ExpectEquality(t, f.set&f.undefined, RflagsBits(0), i)
		test.ExpectEquality(t, f.cleared&f.undefined, RflagsBits(0), i)
	}
}

func TestDescriptorIndexes(t *testing.T) {
	for c, d := range descriptors {
		code := instructions.Code(c)
		test.ExpectSuccess(t, int(d.implicit) < len(implicitTable), code)
		test.ExpectSuccess(t, int(d.rflags) < len(rflagsTable), code)
	}

	for i, imp := range implicitTable {
		for _, a := range imp {
			// exactly one of register and symbol
			test.ExpectSuccess(t, (a.symbol == symNone) != (a.register == 0), i)
			test.ExpectInequality(t, a.access, None, i)
		}
	}
}

// a conditional instruction reads the flags it tests
func TestConditionFlags(t *testing.T) {
	for c, d := range descriptors {
		if d.condition == ConditionNone {
			continue
		}
		code := instructions.Code(c)
		test.ExpectSuccess(t, rflagsTable[d.rflags].read.Has(d.condition.Flags()), code)
	}
}

func TestLookup(t *testing.T) {
	test.ExpectEquality(t, lookup(instructions.Code(instructions.NumCodes)), descriptor{})
	test.ExpectEquality(t, lookup(instructions.Ud2).flow, FlowException)
	test.ExpectEquality(t, lookup(instructions.PushR64).stack, stackPush)
	test.ExpectEquality(t, lookup(instructions.RetImm16).stack, stackReturn)
}
