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

// OpAccess is the way an instruction accesses an operand, a register or a
// memory location.
type OpAccess uint8

// List of valid OpAccess values.
const (
	None OpAccess = iota
	Read

	// the value is read only if a condition holds. for example, the string
	// source of an instruction with a rep prefix
	CondRead

	Write
	CondWrite
	ReadWrite

	// the value is always read but only written if a condition holds
	ReadCondWrite

	// the memory operand is used for its address only. LEA and the hint
	// instructions
	NoMemAccess
)

func (a OpAccess) String() string {
	switch a {
	case None:
		return "none"
	case Read:
		return "read"
	case CondRead:
		return "cond read"
	case Write:
		return "write"
	case CondWrite:
		return "cond write"
	case ReadWrite:
		return "read write"
	case ReadCondWrite:
		return "read cond write"
	case NoMemAccess:
		return "no mem access"
	}
	return "unknown access"
}

// IsRead returns true if the access reads the value, conditionally or not.
func (a OpAccess) IsRead() bool {
	switch a {
	case Read, CondRead, ReadWrite, ReadCondWrite:
		return true
	}
	return false
}

// IsWrite returns true if the access writes the value, conditionally or not.
func (a OpAccess) IsWrite() bool {
	switch a {
	case Write, CondWrite, ReadWrite, ReadCondWrite:
		return true
	}
	return false
}

// FlowControl classifies the effect of an instruction on the instruction
// pointer.
type FlowControl uint8

// List of valid FlowControl values.
const (
	// execution continues with the next instruction
	FlowNext FlowControl = iota

	FlowUnconditionalBranch
	FlowIndirectBranch
	FlowConditionalBranch
	FlowReturn
	FlowCall
	FlowIndirectCall
	FlowInterrupt

	// XBEGIN, XABORT and XEND
	FlowXbeginXabortXend

	// the instruction always raises an exception. UD0, UD1 and UD2
	FlowException
)

func (f FlowControl) String() string {
	switch f {
	case FlowNext:
		return "next"
	case FlowUnconditionalBranch:
		return "unconditional branch"
	case FlowIndirectBranch:
		return "indirect branch"
	case FlowConditionalBranch:
		return "conditional branch"
	case FlowReturn:
		return "return"
	case FlowCall:
		return "call"
	case FlowIndirectCall:
		return "indirect call"
	case FlowInterrupt:
		return "interrupt"
	case FlowXbeginXabortXend:
		return "xbegin/xabort/xend"
	case FlowException:
		return "exception"
	}
	return "unknown flow"
}
