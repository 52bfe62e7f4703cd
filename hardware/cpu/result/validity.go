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
	"github.com/jetsetilly/gopherx86/curated"
	"github.com/jetsetilly/gopherx86/hardware/cpu/memorysize"
	"github.com/jetsetilly/gopherx86/hardware/cpu/registers"
)

// InvalidRecord is the pattern of the error returned by IsValid().
const InvalidRecord = "invalid instruction record: %v"

// IsValid checks whether the instance of Instruction contains consistent data.
// Intended to be used during development of the decoder, to make sure the
// implementation hasn't gone off the rails.
func (ins Instruction) IsValid() error {
	if !ins.Code.IsValid() {
		return curated.Errorf(InvalidRecord, "invalid code")
	}

	if ins.CodeSize == CodeSizeUnknown || ins.CodeSize > CodeSize64 {
		return curated.Errorf(InvalidRecord, "unknown code size")
	}

	if ins.Length < 1 || ins.Length > MaxLength {
		return curated.Errorf(InvalidRecord, curated.Errorf("length of %d bytes", ins.Length))
	}

	if ins.OperandCount < 0 || ins.OperandCount > MaxOperands {
		return curated.Errorf(InvalidRecord, curated.Errorf("%d operands", ins.OperandCount))
	}

	if !ins.OpMask.Valid() || (ins.OpMask != registers.None && !ins.OpMask.IsOpmask()) {
		return curated.Errorf(InvalidRecord, curated.Errorf("opmask %s", ins.OpMask))
	}

	// operands beyond the operand count must be empty
	for i := ins.OperandCount; i < MaxOperands; i++ {
		if ins.Operands[i] != (Operand{}) {
			return curated.Errorf(InvalidRecord, curated.Errorf("unused operand %d is not empty", i))
		}
	}

	memory := 0
	for i := 0; i < ins.OperandCount; i++ {
		op := ins.Operands[i]
		switch op.Kind {
		case OperandRegister, OperandStringSource, OperandStringDestination:
			if op.Register == registers.None || !op.Register.Valid() {
				return curated.Errorf(InvalidRecord, curated.Errorf("operand %d register", i))
			}
		case OperandMemory:
			memory++
		case OperandImmediate:
			switch op.ImmediateSize {
			case 8, 16, 32, 64:
			default:
				return curated.Errorf(InvalidRecord, curated.Errorf("operand %d immediate size %d", i, op.ImmediateSize))
			}
			if op.ImmediateSize > op.Size {
				return curated.Errorf(InvalidRecord, curated.Errorf("operand %d immediate wider than operand", i))
			}
		case OperandNearBranch, OperandFarBranch:
		default:
			return curated.Errorf(InvalidRecord, curated.Errorf("operand %d has no kind", i))
		}
	}

	if memory > 1 {
		return curated.Errorf(InvalidRecord, "more than one memory operand")
	}

	if memory == 1 {
		if err := ins.Memory.isValid(); err != nil {
			return curated.Errorf(InvalidRecord, err)
		}
	}

	return nil
}

func (m MemoryOperand) isValid() error {
	if int(m.Size) >= memorysize.NumMemorySizes {
		return curated.Errorf("memory size %d", m.Size)
	}

	for _, r := range []registers.Register{m.Base, m.Index, m.Segment} {
		if !r.Valid() {
			return curated.Errorf("register out of range")
		}
	}

	if m.Segment != registers.None && !m.Segment.IsSegment() {
		return curated.Errorf("segment register %s", m.Segment)
	}

	switch m.Scale {
	case 1, 2, 4, 8:
	default:
		return curated.Errorf("scale of %d", m.Scale)
	}

	switch m.AddressSize {
	case 16, 32, 64:
	default:
		return curated.Errorf("address size of %d", m.AddressSize)
	}

	// displacement width must be one that the address size can encode
	switch m.DisplacementSize {
	case 0, 1:
	case 2:
		if m.AddressSize != 16 {
			return curated.Errorf("16bit displacement with %dbit addressing", m.AddressSize)
		}
	case 4:
		if m.AddressSize == 16 {
			return curated.Errorf("32bit displacement with 16bit addressing")
		}
	case 8:
		if m.AddressSize != 64 {
			return curated.Errorf("64bit displacement with %dbit addressing", m.AddressSize)
		}
	default:
		return curated.Errorf("displacement of %d bytes", m.DisplacementSize)
	}

	return nil
}
