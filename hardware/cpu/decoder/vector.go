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

// read the byte following a VEX, EVEX or XOP escape and decide whether the
// escape really is an escape. in 16 and 32bit mode C4, C5 and 62 are only
// escapes if the mod field of the following byte is 11b, otherwise they are
// LES, LDS and BOUND. 8F is only an XOP escape if the map select field is 8
// or more, otherwise it is POP
//
// if the byte is not part of an escape it is kept as the ModRM byte
func (st *state) isEscape(kind opcodes.Kind) (bool, error) {
	b, err := st.next()
	if err != nil {
		return false, err
	}

	var escape bool
	if kind == opcodes.KindXOP {
		escape = b&0x1f >= 0x08
	} else {
		escape = st.mode64 || b >= 0xc0
	}

	if !escape {
		st.modrm = b
		st.haveModRM = true
		return false, nil
	}

	// first payload byte. this is P0 for EVEX
	st.modrm = b
	return true, nil
}

// VEX, EVEX and XOP encodings. the first payload byte has been read and is
// in the modrm field of the state
func (st *state) vector(kind opcodes.Kind) error {
	p0 := st.modrm
	st.modrm = 0

	if (st.rex != 0 || st.opsizePrefix || st.repeat != 0 || st.lock) && st.strict() {
		return st.invalid("prefix before vector escape")
	}

	switch kind {
	case opcodes.KindVEX2:
		return st.vex2(p0)
	case opcodes.KindVEX3:
		return st.vex3(p0, false)
	case opcodes.KindXOP:
		return st.vex3(p0, true)
	}
	return st.evex(p0)
}

// sizes of VEX, EVEX and XOP encodings. the operand size is as for legacy
// encodings and is only meaningful for general purpose register forms
func (st *state) vectorSizes() {
	st.legacySizes(0)
}

// general purpose register forms choose the code column by the W bit, which
// is ignored outside of 64bit mode. the returned value is the row of the code
// grid
func (st *state) gprSizes() int {
	st.col = 1
	st.opsize = 32
	if st.mode64 && st.w == 1 {
		st.col = 2
		st.opsize = 64
	}
	return 0
}

// extension bits are ignored outside of 64bit mode
func (st *state) extensions(inverted uint8) {
	if !st.mode64 {
		return
	}
	st.extR = (^inverted >> 7) & 0x01
	st.extX = (^inverted >> 6) & 0x01
	st.extB = (^inverted >> 5) & 0x01
}

func (st *state) vex2(p0 uint8) error {
	st.ins.Encoding = result.VEX

	if st.mode64 {
		st.extR = (^p0 >> 7) & 0x01
	}
	st.vvvv = (^p0 >> 3) & 0x0f
	st.vl = int(p0>>2) & 0x01
	pp := opcodes.Prefix(p0 & 0x03)

	op, err := st.next()
	if err != nil {
		return err
	}
	st.opcode = op

	return st.vexEntry(opcodes.VEX(opcodes.Map0F, pp, op))
}

func (st *state) vex3(p0 uint8, xop bool) error {
	st.extensions(p0)
	sel := p0 & 0x1f

	p1, err := st.next()
	if err != nil {
		return err
	}
	st.w = int(p1>>7) & 0x01
	st.vvvv = (^p1 >> 3) & 0x0f
	st.vl = int(p1>>2) & 0x01
	pp := opcodes.Prefix(p1 & 0x03)

	op, err := st.next()
	if err != nil {
		return err
	}
	st.opcode = op

	if xop {
		st.ins.Encoding = result.XOP
		if pp != opcodes.PrefixNone {
			return st.invalid("xop pp field")
		}
		return st.vexEntry(opcodes.XOP(sel, pp, op))
	}

	st.ins.Encoding = result.VEX
	if sel < 1 || sel > 3 {
		return st.invalid("vex map select")
	}
	return st.vexEntry(opcodes.VEX(opcodes.Map(sel), pp, op))
}

// common to VEX and XOP once the opcode has been read
func (st *state) vexEntry(idx uint16) error {
	if !st.mode64 {
		st.vvvv &= 0x07
	}

	if idx == opcodes.Invalid {
		return st.invalid("no entry for opcode")
	}

	e := opcodes.EntryAt(idx)
	if e.Flags.Has(opcodes.FlagModRM) {
		if err := st.readModRM(); err != nil {
			return err
		}
		e = opcodes.Resolve(idx, st.modrm)
	}
	e = opcodes.ByW(e, st.w)
	if e.Kind != opcodes.KindNormal {
		return st.invalid("no entry for opcode")
	}

	if e.Flags.Has(opcodes.FlagNoVvvv) && st.vvvv != 0 && st.strict() {
		return st.invalid("vvvv must be 1111b")
	}

	if e.Flags.Has(opcodes.FlagL0) && st.vl != 0 {
		return st.invalid("vector length must be zero")
	}

	st.vectorSizes()

	row := st.w
	st.col = st.vl

	if e.Flags.Has(opcodes.FlagVexGPR) {
		row = st.gprSizes()
	}

	if err := st.finish(e, row); err != nil {
		return err
	}

	// the destination, the index and the mask of a gather must all be
	// different registers
	if e.Flags.Has(opcodes.FlagVSIB) && st.strict() {
		dest := st.vectorReg()
		if dest == st.vsibIndex || dest == int(st.vvvv) || st.vsibIndex == int(st.vvvv) {
			return st.invalid("gather registers not distinct")
		}
	}

	return nil
}

// EVEX encodings
func (st *state) evex(p0 uint8) error {
	st.ins.Encoding = result.EVEX

	if p0&0x0c != 0 {
		return st.invalid("evex reserved bits")
	}
	sel := p0 & 0x03
	if sel == 0 {
		return st.invalid("evex map select")
	}

	st.extensions(p0)
	if st.mode64 {
		st.extR2 = (^p0 >> 4) & 0x01
	}

	p1, err := st.next()
	if err != nil {
		return err
	}
	if p1&0x04 != 0x04 {
		return st.invalid("evex fixed bit")
	}
	st.w = int(p1>>7) & 0x01
	st.vvvv = (^p1 >> 3) & 0x0f
	pp := opcodes.Prefix(p1 & 0x03)

	p2, err := st.next()
	if err != nil {
		return err
	}
	st.zeroing = p2&0x80 == 0x80
	ll := int(p2>>5) & 0x03
	st.broadcast = p2&0x10 == 0x10
	if st.mode64 {
		st.vvvv |= ((^p2 >> 3) & 0x01) << 4
	} else {
		st.vvvv &= 0x07
	}
	st.aaa = p2 & 0x07

	op, err := st.next()
	if err != nil {
		return err
	}
	st.opcode = op

	idx := opcodes.EVEX(opcodes.Map(sel), pp, op)
	if idx == opcodes.Invalid {
		return st.invalid("no entry for opcode")
	}

	if err := st.readModRM(); err != nil {
		return err
	}
	e := opcodes.ByW(opcodes.Resolve(idx, st.modrm), st.w)
	if e.Kind != opcodes.KindNormal {
		return st.invalid("no entry for opcode")
	}

	// EVEX.V' is part of the index register of a VSIB memory operand
	vvvv := st.vvvv
	if e.Flags.Has(opcodes.FlagVSIB) {
		vvvv &= 0x0f
	}
	if e.Flags.Has(opcodes.FlagNoVvvv) && vvvv != 0 && st.strict() {
		return st.invalid("vvvv must be 1111b")
	}

	// gathers and scatters must be masked
	if e.Flags.Has(opcodes.FlagVSIB) && st.aaa == 0 && st.strict() {
		return st.invalid("vsib without opmask")
	}

	// masking
	if st.zeroing {
		if st.aaa == 0 && st.strict() {
			return st.invalid("zeroing without opmask")
		}
		if !e.Flags.Has(opcodes.FlagZeroing) {
			return st.invalid("zeroing not allowed")
		}
		if st.mod != 0x03 && isMemoryDestination(e) {
			return st.invalid("zeroing with memory destination")
		}
	}
	if st.aaa != 0 && !e.Flags.Has(opcodes.FlagMask) {
		return st.invalid("opmask not allowed")
	}

	st.vectorSizes()
	st.col = ll

	if st.broadcast {
		if st.mod == 0x03 {
			switch {
			case e.Flags.Has(opcodes.FlagRounding):
				st.ins.RoundingControl = result.RoundingControl(ll + 1)
			case e.Flags.Has(opcodes.FlagSAE):
				st.ins.SuppressAllExceptions = true
			default:
				return st.invalid("rounding control not allowed")
			}
			st.col = 2
		} else if !e.Flags.Has(opcodes.FlagBroadcast) {
			return st.invalid("broadcast not allowed")
		}
	}

	// L'L is the rounding mode when embedded rounding or SAE is in effect
	if e.Flags.Has(opcodes.FlagL0) && ll != 0 && !(st.broadcast && st.mod == 0x03) {
		return st.invalid("vector length must be zero")
	}

	if st.col > 2 {
		return st.invalid("vector length")
	}

	row := st.w
	if e.Flags.Has(opcodes.FlagVexGPR) {
		row = st.gprSizes()
	}

	if st.aaa != 0 {
		st.ins.OpMask = registers.Opmask(int(st.aaa))
	}
	st.ins.ZeroingMasking = st.zeroing

	// displacement scale for compressed 8bit displacements
	var n int
	if st.broadcast && st.mod != 0x03 {
		n = e.Broadcast[row].Size()
	} else {
		n = e.MemorySize(row, st.col).Size()
	}
	if n == 0 {
		n = 1
	}
	st.disp8N = n

	if err := st.finish(e, row); err != nil {
		return err
	}

	// the destination of a gather must not be the index register
	if e.Flags.Has(opcodes.FlagVSIB) && st.strict() && isGather(e) {
		if st.vectorReg() == st.vsibIndex {
			return st.invalid("gather registers not distinct")
		}
	}

	return nil
}

// the first operand is written through the rm field of the ModRM byte
func isMemoryDestination(e *opcodes.Entry) bool {
	switch e.Operands[0] {
	case opcodes.OpW, opcodes.OpWX, opcodes.OpWh, opcodes.OpEv, opcodes.OpEy, opcodes.OpEd, opcodes.OpM, opcodes.OpMVx, opcodes.OpMVh:
		return true
	}
	return false
}

// gathers have a register destination. scatters have a memory destination
func isGather(e *opcodes.Entry) bool {
	return !isMemoryDestination(e)
}
