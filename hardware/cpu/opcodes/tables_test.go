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

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopherx86/hardware/cpu/result"
	"github.com/jetsetilly/gopherx86/test"
)

// checks an index found in one of the lookup tables
func checkIndex(t *testing.T, idx uint16, tag string) {
	t.Helper()
	if int(idx) >= len(entries) {
		t.Fatalf("%s: index %d out of range", tag, idx)
	}
}

func TestTableIndexes(t *testing.T) {
	for mode := range legacyTable {
		for m := range legacyTable[mode] {
			for p := range legacyTable[mode][m] {
				for op, idx := range legacyTable[mode][m][p] {
					checkIndex(t, idx, fmt.Sprintf("legacy %d %d %d %02x", mode, m, p, op))
				}
			}
		}
	}

	for m := range vexTable {
		for p := range vexTable[m] {
			for op := range vexTable[m][p] {
				checkIndex(t, vexTable[m][p][op], fmt.Sprintf("vex %d %d %02x", m, p, op))
				checkIndex(t, evexTable[m][p][op], fmt.Sprintf("evex %d %d %02x", m, p, op))
				checkIndex(t, xopTable[m][p][op], fmt.Sprintf("xop %d %d %02x", m, p, op))
			}
		}
	}

	for i, g := range groups {
		for reg := 0; reg < 8; reg++ {
			checkIndex(t, g.Mem[reg], fmt.Sprintf("group %d mem %d", i, reg))
			checkIndex(t, g.Reg[reg], fmt.Sprintf("group %d reg %d", i, reg))
		}
		if int(g.RM) >= len(rmTables) {
			t.Fatalf("group %d: rm table %d out of range", i, g.RM)
		}
	}

	for i := range rmTables {
		for reg := range rmTables[i] {
			for rm, idx := range rmTables[i][reg] {
				checkIndex(t, idx, fmt.Sprintf("rm table %d %d %d", i, reg, rm))
			}
		}
	}
}

func TestEntries(t *testing.T) {
	test.ExpectEquality(t, entries[Invalid].Kind, KindInvalid)

	for i := range entries {
		e := &entries[i]
		tag := fmt.Sprintf("entry %d", i)

		switch e.Kind {
		case KindNormal, KindNop:
			valid := false
			for w := 0; w < 2; w++ {
				for col := 0; col < 3; col++ {
					valid = valid || e.Code(w, col).IsValid()
				}
			}
			test.ExpectSuccess(t, valid, tag)

			// operands are packed at the start of the list
			n := e.NumOperands()
			for j := n; j < result.MaxOperands; j++ {
				test.ExpectEquality(t, e.Operands[j], OpNone, tag)
			}

		case KindGroup:
			if int(e.Group) >= len(groups) || e.Group == 0 {
				t.Errorf("%s: group %d out of range", tag, e.Group)
			}
			test.ExpectSuccess(t, e.Flags.Has(FlagModRM), tag)

			// groups do not nest
			g := groups[e.Group]
			for reg := 0; reg < 8; reg++ {
				test.ExpectInequality(t, entries[g.Mem[reg]].Kind, KindGroup, tag)
				test.ExpectInequality(t, entries[g.Reg[reg]].Kind, KindGroup, tag)
			}

		case KindVEX2, KindVEX3, KindEVEX, KindXOP:
			checkIndex(t, e.Alt, tag)

		case KindW:
			checkIndex(t, e.Alt+1, tag)
			test.ExpectEquality(t, entries[e.Alt].Kind, KindNormal, tag)
			test.ExpectEquality(t, entries[e.Alt+1].Kind, KindNormal, tag)
			test.ExpectEquality(t, ByW(e, 0), &entries[e.Alt], tag)
			test.ExpectEquality(t, ByW(e, 1), &entries[e.Alt+1], tag)
		}

		// VSIB forms have a memory operand with a vector index
		if e.Kind == KindNormal && e.Flags.Has(FlagVSIB) {
			test.ExpectSuccess(t, e.Flags.Has(FlagNoMod3), tag)
			vsib := false
			for _, op := range e.Operands {
				vsib = vsib || op == OpMVx || op == OpMVh
			}
			test.ExpectSuccess(t, vsib, tag)
		}

		if e.Kind == KindNop {
			test.ExpectEquality(t, entries[e.Alt].Kind, KindNormal, tag)
		}
	}
}

// the strict prefix flag only makes sense for opcodes that have at least one
// prefixed entry
func TestStrictPrefix(t *testing.T) {
	for m := range strictPrefix {
		for op, strict := range strictPrefix[m] {
			if !strict {
				continue
			}
			prefixed := false
			for mode := 0; mode < 2; mode++ {
				for p := Prefix66; p <= PrefixF2; p++ {
					prefixed = prefixed || legacyTable[mode][m][p][op] != Invalid
				}
			}
			test.ExpectSuccess(t, prefixed, fmt.Sprintf("map %d opcode %02x", m, op))
		}
	}
}

func TestKindString(t *testing.T) {
	test.ExpectEquality(t, KindInvalid.String(), "invalid")
	test.ExpectEquality(t, KindNormal.String(), "normal")
	test.ExpectInequality(t, KindEVEX.String(), KindVEX2.String())
	test.ExpectEquality(t, KindW.String(), "w")
}
