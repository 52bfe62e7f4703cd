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


// Package info describes what an instruction does to the state of the
// processor. It is a second pass over a result.Instruction produced by the
// decoder and never looks at the instruction bytes.
//
// The Analyze() function returns an AccessInfo, listing the registers and the
// memory read and written by the instruction, the effect of the instruction
// on each of the RFLAGS bits and the kind of control flow the instruction
// causes. The information comes from a static table of descriptors, one per
// instruction code. A descriptor refers to operands by position so the same
// descriptor serves every addressing form of an instruction.
//
// AccessInfo also carries the change made to the stack pointer by push, pop,
// call and return instructions, the condition tested by conditional
// instructions and whether the instruction is privileged.
//
// Registers are reported as decoded. The exceptions are writes to a 32bit
// general purpose register in 64bit mode, which are reported as writes to the
// full 64bit register, and VEX, EVEX and XOP writes to a vector register,
// which are reported as writes to the ZMM register. In both cases the
// processor clears the upper part of the register.
//
// Analyze() has no state and can be called concurrently.
package info
