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

package decoder

import (
	"github.com/jetsetilly/gopherx86/hardware/cpu/opcodes"
	"github.com/jetsetilly/gopherx86/hardware/cpu/registers"
	"github.com/jetsetilly/gopherx86/hardware/cpu/result"
)

// mask a value to the number of bits given
func mask(v uint64, bits int) uint64 {
	switch bits {
	case 8:
		return v & 0xff
	case 16:
		return v & 0xffff
	case 32:
		return v & 0xffffffff
	}
	return v
}

// sign extend a value of the number of bytes given
func signExtend(v uint64, bytes int) uint64 {
	switch bytes {
	case 1:
		return uint64(int64(int8(v)))
	case 2:
		return uint64(int64(int16(v)))
	case 4:
		return uint64(int64(int32(v)))
	}
	return v
}

// the ModRM phase is finished. the remaining phases fill in the operands,
// reading the displacement and the immediates as required
func (st *state) operands(e *opcodes.Entry, row int) error {
	n := e.NumOperands()
	st.ins.OperandCount = n

	memoryForm := e.Flags.Has(opcodes.FlagModRM) && st.mod != 0x03
	for i := 0; i < n; i++ {
		if e.Operands[i] == opcodes.OpRcr {
			memoryForm = false
		}
	}

	for i := 0; i < n; i++ {
		switch e.Operands[i] {
		case opcodes.OpMVx:
			st.vsib = true
			st.vsibLength = st.col
		case opcodes.OpMVh:
			st.vsib = true
			st.vsibLength = halfLength(st.col)
		}
	}

	if memoryForm {
		m := result.MemoryOperand{
			Size: e.MemorySize(row, st.col),
		}
		if st.broadcast {
			m.Broadcast = true
			m.Size = e.Broadcast[row]
		}
		if err := st.memory(&m); err != nil {
			return err
		}
		st.ins.Memory = m
	}

	for i := 0; i < n; i++ {
		op, err := st.operand(e, i, row, memoryForm)
		if err != nil {
			return err
		}
		st.ins.Operands[i] = op
	}

	return nil
}

func register(r registers.Register) result.Operand {
	return result.Operand{Kind: result.OperandRegister, Register: r}
}

// an operand encoded in the rm field of the ModRM byte. r is the register to
// use if the operand is not memory
func (st *state) rmOperand(r registers.Register, memoryForm bool) result.Operand {
	if memoryForm {
		return result.Operand{Kind: result.OperandMemory}
	}
	return register(r)
}

// width of the y sized general purpose register operands
func (st *state) widthY() int {
	if st.opsize == 64 {
		return 64
	}
	return 32
}

// vector length for V, H, U and W operands
func (st *state) vectorLength() int {
	if st.ins.Encoding == result.Legacy {
		return 0
	}
	return st.col
}

// vector length of the half width operands. YMM for 512bit vectors and XMM
// otherwise
func halfLength(length int) int {
	if length == 2 {
		return 1
	}
	return 0
}

// register number of a vector register in the reg field
func (st *state) vectorReg() int {
	return int(st.reg) | int(st.extR)<<3 | int(st.extR2)<<4
}

// register number of a vector register in the rm field
func (st *state) vectorRM() int {
	n := int(st.rm) | int(st.extB)<<3
	if st.ins.Encoding == result.EVEX {
		n |= int(st.extX) << 4
	}
	return n
}

// read an immediate of the number of bytes given and note its position
func (st *state) immediate(bytes int) (uint64, error) {
	offset := st.length

	v, err := st.nextN(bytes)
	if err != nil {
		return 0, err
	}

	if st.immCount == 0 {
		st.ins.Offsets.ImmediateOffset = offset
		st.ins.Offsets.ImmediateSize = bytes
	} else {
		st.ins.Offsets.ImmediateOffset2 = offset
		st.ins.Offsets.ImmediateSize2 = bytes
	}
	st.immCount++

	return v, nil
}

// immediate operand. the value is extended to size bits
func (st *state) immediateOperand(bytes int, size int, signed bool) (result.Operand, error) {
	v, err := st.immediate(bytes)
	if err != nil {
		return result.Operand{}, err
	}
	if signed {
		v = signExtend(v, bytes)
	}
	return result.Operand{
		Kind:          result.OperandImmediate,
		Immediate:     mask(v, size),
		ImmediateSize: bytes * 8,
		Signed:        signed,
		Size:          size,
	}, nil
}

// near branch operand. the relative offset is the last field of the
// instruction so the address of the next instruction is known
func (st *state) branchOperand(bytes int) (result.Operand, error) {
	v, err := st.immediate(bytes)
	if err != nil {
		return result.Operand{}, err
	}

	next := mask(st.ins.IP+uint64(st.length), st.dec.bitness)
	target := mask(next+signExtend(v, bytes), st.opsize)

	return result.Operand{
		Kind:   result.OperandNearBranch,
		Size:   st.opsize,
		Target: target,
	}, nil
}

// the operand at position i of the entry
func (st *state) operand(e *opcodes.Entry, i int, row int, memoryForm bool) (result.Operand, error) {
	regNum := int(st.reg) | int(st.extR)<<3
	rmNum := int(st.rm) | int(st.extB)<<3
	rex := st.rex != 0

	switch e.Operands[i] {
	case opcodes.OpEb:
		return st.rmOperand(registers.GPR8(rmNum, rex), memoryForm), nil
	case opcodes.OpEw:
		return st.rmOperand(registers.GPR16(rmNum), memoryForm), nil
	case opcodes.OpEv, opcodes.OpRvM:
		return st.rmOperand(registers.GPR(st.opsize, rmNum), memoryForm), nil
	case opcodes.OpEd:
		return st.rmOperand(registers.GPR32(rmNum), memoryForm), nil
	case opcodes.OpEy, opcodes.OpRyM:
		return st.rmOperand(registers.GPR(st.widthY(), rmNum), memoryForm), nil

	case opcodes.OpRv, opcodes.OpRy, opcodes.OpRd:
		if memoryForm {
			return result.Operand{}, st.invalid("memory operand not allowed")
		}
		switch e.Operands[i] {
		case opcodes.OpRv:
			return register(registers.GPR(st.opsize, rmNum)), nil
		case opcodes.OpRy:
			return register(registers.GPR(st.widthY(), rmNum)), nil
		}
		return register(registers.GPR32(rmNum)), nil

	case opcodes.OpRcr:
		if st.mode64 {
			return register(registers.GPR64(rmNum)), nil
		}
		return register(registers.GPR32(rmNum)), nil

	case opcodes.OpGb:
		return register(registers.GPR8(regNum, rex)), nil
	case opcodes.OpGw:
		return register(registers.GPR16(regNum)), nil
	case opcodes.OpGv:
		return register(registers.GPR(st.opsize, regNum)), nil
	case opcodes.OpGd:
		return register(registers.GPR32(regNum)), nil
	case opcodes.OpGy:
		return register(registers.GPR(st.widthY(), regNum)), nil

	case opcodes.OpSw:
		r := registers.Segment(int(st.reg))
		if r == registers.None {
			return result.Operand{}, st.invalid("segment register")
		}
		if i == 0 && r == registers.CS {
			return result.Operand{}, st.invalid("cs as destination")
		}
		return register(r), nil
	case opcodes.OpCd:
		return register(registers.Control(regNum)), nil
	case opcodes.OpDd:
		return register(registers.Debug(regNum)), nil

	case opcodes.OpM, opcodes.OpMVx, opcodes.OpMVh:
		if !memoryForm {
			return result.Operand{}, st.invalid("register operand not allowed")
		}
		return result.Operand{Kind: result.OperandMemory}, nil

	case opcodes.OpIb:
		return st.immediateOperand(1, 8, false)
	case opcodes.OpIbs:
		return st.immediateOperand(1, st.opsize, true)
	case opcodes.OpIw:
		return st.immediateOperand(2, 16, false)
	case opcodes.OpId:
		return st.immediateOperand(4, 32, false)
	case opcodes.OpIz:
		switch st.opsize {
		case 16:
			return st.immediateOperand(2, 16, false)
		case 32:
			return st.immediateOperand(4, 32, false)
		}
		return st.immediateOperand(4, 64, true)
	case opcodes.OpIv:
		return st.immediateOperand(st.opsize/8, st.opsize, false)
	case opcodes.OpI1:
		return result.Operand{
			Kind:          result.OperandImmediate,
			Immediate:     1,
			ImmediateSize: 8,
			Size:          8,
		}, nil

	case opcodes.OpJb:
		return st.branchOperand(1)
	case opcodes.OpJz:
		if st.opsize == 16 {
			return st.branchOperand(2)
		}
		return st.branchOperand(4)

	case opcodes.OpAp:
		bytes := 4
		if st.opsize == 16 {
			bytes = 2
		}
		offset, err := st.immediate(bytes)
		if err != nil {
			return result.Operand{}, err
		}
		selector, err := st.immediate(2)
		if err != nil {
			return result.Operand{}, err
		}
		return result.Operand{
			Kind:     result.OperandFarBranch,
			Size:     st.opsize,
			Target:   offset,
			Selector: uint16(selector),
		}, nil

	case opcodes.OpO:
		return st.offsetOperand(e, row)

	case opcodes.OpX:
		return result.Operand{
			Kind:     result.OperandStringSource,
			Register: registers.GPR(st.adsize, 6),
			Size:     e.MemorySize(row, st.col).Size() * 8,
		}, nil
	case opcodes.OpY:
		return result.Operand{
			Kind:     result.OperandStringDestination,
			Register: registers.GPR(st.adsize, 7),
			Size:     e.MemorySize(row, st.col).Size() * 8,
		}, nil

	case opcodes.OpAL:
		return register(registers.AL), nil
	case opcodes.OpCL:
		return register(registers.CL), nil
	case opcodes.OpDX:
		return register(registers.DX), nil
	case opcodes.OpAX:
		return register(registers.AX), nil
	case opcodes.OpRAX:
		return register(registers.GPR(st.opsize, 0)), nil
	case opcodes.OpEAX:
		if st.opsize == 16 {
			return register(registers.AX), nil
		}
		return register(registers.EAX), nil
	case opcodes.OpES:
		return register(registers.ES), nil
	case opcodes.OpCS:
		return register(registers.CS), nil
	case opcodes.OpSS:
		return register(registers.SS), nil
	case opcodes.OpDS:
		return register(registers.DS), nil
	case opcodes.OpFS:
		return register(registers.FS), nil
	case opcodes.OpGS:
		return register(registers.GS), nil
	case opcodes.OpST0:
		return register(registers.ST0), nil
	case opcodes.OpSTi:
		return register(registers.ST(int(st.rm))), nil
	case opcodes.OpXMM0:
		return register(registers.XMM0), nil

	case opcodes.OpZb:
		return register(registers.GPR8(int(st.opcode&0x07)|int(st.extB)<<3, rex)), nil
	case opcodes.OpZv:
		return register(registers.GPR(st.opsize, int(st.opcode&0x07)|int(st.extB)<<3)), nil

	case opcodes.OpV:
		return register(registers.Vector(st.vectorLength(), st.vectorReg())), nil
	case opcodes.OpVX:
		return register(registers.Vector(0, st.vectorReg())), nil
	case opcodes.OpVh:
		return register(registers.Vector(halfLength(st.vectorLength()), st.vectorReg())), nil
	case opcodes.OpU, opcodes.OpUX:
		if memoryForm {
			return result.Operand{}, st.invalid("memory operand not allowed")
		}
		if e.Operands[i] == opcodes.OpUX {
			return register(registers.Vector(0, st.vectorRM())), nil
		}
		return register(registers.Vector(st.vectorLength(), st.vectorRM())), nil
	case opcodes.OpW:
		return st.rmOperand(registers.Vector(st.vectorLength(), st.vectorRM()), memoryForm), nil
	case opcodes.OpWX:
		return st.rmOperand(registers.Vector(0, st.vectorRM()), memoryForm), nil
	case opcodes.OpWh:
		return st.rmOperand(registers.Vector(halfLength(st.vectorLength()), st.vectorRM()), memoryForm), nil
	case opcodes.OpH:
		return register(registers.Vector(st.vectorLength(), int(st.vvvv))), nil
	case opcodes.OpHX:
		return register(registers.Vector(0, int(st.vvvv))), nil

	case opcodes.OpP:
		return register(registers.MM(int(st.reg))), nil
	case opcodes.OpQ:
		return st.rmOperand(registers.MM(int(st.rm)), memoryForm), nil
	case opcodes.OpN:
		if memoryForm {
			return result.Operand{}, st.invalid("memory operand not allowed")
		}
		return register(registers.MM(int(st.rm))), nil

	case opcodes.OpK:
		if (st.extR != 0 || st.extR2 != 0) && st.strict() {
			return result.Operand{}, st.invalid("opmask register")
		}
		return register(registers.Opmask(int(st.reg))), nil
	case opcodes.OpKR:
		if memoryForm {
			return result.Operand{}, st.invalid("memory operand not allowed")
		}
		if (st.extB != 0 || st.extX != 0) && st.strict() {
			return result.Operand{}, st.invalid("opmask register")
		}
		return register(registers.Opmask(int(st.rm))), nil
	case opcodes.OpKH:
		if st.vvvv > 0x07 && st.strict() {
			return result.Operand{}, st.invalid("opmask register")
		}
		return register(registers.Opmask(int(st.vvvv))), nil
	case opcodes.OpKM:
		return st.rmOperand(registers.Opmask(int(st.rm)), memoryForm), nil

	case opcodes.OpBy:
		return register(registers.GPR(st.widthY(), int(st.vvvv))), nil

	case opcodes.OpIs4, opcodes.OpIs4X:
		v, err := st.immediate(1)
		if err != nil {
			return result.Operand{}, err
		}
		n := int(v >> 4)
		if !st.mode64 {
			n &= 0x07
		}
		if e.Operands[i] == opcodes.OpIs4X {
			return register(registers.Vector(0, n)), nil
		}
		return register(registers.Vector(st.vectorLength(), n)), nil
	}

	return result.Operand{}, st.invalid("unknown operand encoding")
}

// memory offset operand of the MOV AL/AX/EAX/RAX forms. the offset is the
// size of the address
func (st *state) offsetOperand(e *opcodes.Entry, row int) (result.Operand, error) {
	bytes := st.adsize / 8

	st.ins.Offsets.DisplacementOffset = st.length
	st.ins.Offsets.DisplacementSize = bytes

	v, err := st.nextN(bytes)
	if err != nil {
		return result.Operand{}, err
	}

	m := result.MemoryOperand{
		Size:             e.MemorySize(row, st.col),
		Segment:          registers.DS,
		Scale:            1,
		Displacement:     v,
		DisplacementSize: bytes,
		AddressSize:      st.adsize,
	}
	if st.segment != registers.None {
		m.Segment = st.segment
	}
	st.ins.Memory = m

	return result.Operand{Kind: result.OperandMemory}, nil
}
