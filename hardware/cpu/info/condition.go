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

// ConditionCode is the condition tested by a Jcc, SETcc, CMOVcc, FCMOVcc or
// LOOPcc instruction.
type ConditionCode uint8

// List of valid ConditionCode values. The order, with the exception of
// ConditionNone, is the order of the condition field of the opcode.
const (
	ConditionNone ConditionCode = iota
	ConditionO
	ConditionNO
	ConditionB
	ConditionAE
	ConditionE
	ConditionNE
	ConditionBE
	ConditionA
	ConditionS
	ConditionNS
	ConditionP
	ConditionNP
	ConditionL
	ConditionGE
	ConditionLE
	ConditionG
)

var conditionNames = []string{
	"none", "o", "no", "b", "ae", "e", "ne", "be", "a",
	"s", "ns", "p", "np", "l", "ge", "le", "g",
}

func (c ConditionCode) String() string {
	if int(c) < len(conditionNames) {
		return conditionNames[c]
	}
	return "unknown condition"
}

// Flags returns the RFLAGS bits tested by the condition.
func (c ConditionCode) Flags() RflagsBits {
	switch c {
	case ConditionO, ConditionNO:
		return OF
	case ConditionB, ConditionAE:
		return CF
	case ConditionE, ConditionNE:
		return ZF
	case ConditionBE, ConditionA:
		return CF | ZF
	case ConditionS, ConditionNS:
		return SF
	case ConditionP, ConditionNP:
		return PF
	case ConditionL, ConditionGE:
		return SF | OF
	case ConditionLE, ConditionG:
		return ZF | SF | OF
	}
	return 0
}
