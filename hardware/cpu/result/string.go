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

package result

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherx86/hardware/cpu/registers"
)

func (op Operand) String() string {
	switch op.Kind {
	case OperandNone:
		return ""
	case OperandRegister:
		return op.Register.String()
	case OperandImmediate:
		if op.Signed {
			return fmt.Sprintf("%d", op.Int())
		}
		return fmt.Sprintf("%#x", op.Immediate)
	case OperandNearBranch:
		return fmt.Sprintf("%#x", op.Target)
	case OperandFarBranch:
		return fmt.Sprintf("%#04x:%#x", op.Selector, op.Target)
	case OperandStringSource:
		return fmt.Sprintf("[%s]", op.Register)
	case OperandStringDestination:
		return fmt.Sprintf("es:[%s]", op.Register)
	case OperandMemory:
		return "mem"
	}
	return "?"
}

func (m MemoryOperand) String() string {
	s := strings.Builder{}
	s.WriteString(m.Size.String())
	s.WriteString(" ")
	if m.Segment != registers.None {
		s.WriteString(m.Segment.String())
		s.WriteString(":")
	}
	s.WriteString("[")

	sep := false
	if m.Base != registers.None {
		s.WriteString(m.Base.String())
		sep = true
	}
	if m.Index != registers.None {
		if sep {
			s.WriteString("+")
		}
		s.WriteString(m.Index.String())
		if m.Scale > 1 {
			s.WriteString(fmt.Sprintf("*%d", m.Scale))
		}
		sep = true
	}
	if m.DisplacementSize > 0 || !sep {
		d := int64(m.Displacement)
		switch {
		case !sep:
			s.WriteString(fmt.Sprintf("%#x", m.Displacement))
		case d < 0:
			s.WriteString(fmt.Sprintf("-%#x", -d))
		default:
			s.WriteString(fmt.Sprintf("+%#x", d))
		}
	}
	s.WriteString("]")

	if m.Broadcast {
		s.WriteString(" {1toN}")
	}

	return s.String()
}
