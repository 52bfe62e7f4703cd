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

import "github.com/jetsetilly/gopherx86/hardware/cpu/registers"

// mask an address to the number of bits given
func maskAddress(addr uint64, bits int) uint64 {
	switch bits {
	case 16:
		return addr & 0xffff
	case 32:
		return addr & 0xffffffff
	}
	return addr
}

// NextIP returns the address of the instruction that follows this one.
func (ins Instruction) NextIP() uint64 {
	bits := ins.CodeSize.Bits()
	if bits == 0 {
		bits = 64
	}
	return maskAddress(ins.IP+uint64(ins.Length), bits)
}

// NearBranchTarget returns the target of a near branch instruction (a
// relative jump, call or loop). The second return value is false if the
// instruction has no near branch operand.
func (ins Instruction) NearBranchTarget() (uint64, bool) {
	for i := 0; i < ins.OperandCount; i++ {
		if ins.Operands[i].Kind == OperandNearBranch {
			return ins.Operands[i].Target, true
		}
	}
	return 0, false
}

// IsIPRelativeMemory returns true if the memory operand is addressed relative
// to the instruction pointer (RIP or EIP relative addressing in 64bit mode).
func (ins Instruction) IsIPRelativeMemory() bool {
	return ins.HasMemory() && ins.Memory.Base.IsIP()
}

// IPRelativeMemoryAddress returns the absolute address referenced by an IP
// relative memory operand. The second return value is false if the memory
// operand is not IP relative.
func (ins Instruction) IPRelativeMemoryAddress() (uint64, bool) {
	if !ins.IsIPRelativeMemory() {
		return 0, false
	}
	addr := ins.NextIP() + ins.Memory.Displacement
	if ins.Memory.Base == registers.EIP {
		return maskAddress(addr, 32), true
	}
	return addr, true
}

// RegisterValue is used by VirtualAddress() to ask for the value of a
// register. It should return false if the value is not known.
type RegisterValue func(reg registers.Register) (uint64, bool)

// VirtualAddress returns the address accessed by the memory operand at
// operand position n. Segment bases are not applied (with the exception of
// the FS and GS bases, which the RegisterValue function may supply if asked
// for the FS or GS register).
//
// The second return value is false if operand n is not a memory operand, if
// the value of a register could not be obtained or if the memory operand has
// a vector index register (VSIB), in which case there is an address per
// element.
func (ins Instruction) VirtualAddress(n int, value RegisterValue) (uint64, bool) {
	if n < 0 || n >= ins.OperandCount {
		return 0, false
	}

	op := ins.Operands[n]

	var addr uint64
	var bits int

	switch op.Kind {
	case OperandMemory:
		m := ins.Memory
		bits = m.AddressSize

		if m.Base.IsIP() {
			return ins.IPRelativeMemoryAddress()
		}
		if m.Index.IsVector() {
			return 0, false
		}

		addr = m.Displacement
		if m.Base != registers.None {
			v, ok := value(m.Base)
			if !ok {
				return 0, false
			}
			addr += v
		}
		if m.Index != registers.None {
			v, ok := value(m.Index)
			if !ok {
				return 0, false
			}
			addr += v * uint64(m.Scale)
		}

	case OperandStringSource, OperandStringDestination:
		bits = ins.AddressSize
		v, ok := value(op.Register)
		if !ok {
			return 0, false
		}
		addr = v

	default:
		return 0, false
	}

	addr = maskAddress(addr, bits)

	seg := ins.Memory.Segment
	if op.Kind == OperandStringDestination {
		seg = registers.ES
	} else if op.Kind == OperandStringSource {
		seg = ins.Prefixes.Segment
	}
	if seg == registers.FS || seg == registers.GS {
		if base, ok := value(seg); ok {
			addr += base
		}
	}

	return addr, true
}
