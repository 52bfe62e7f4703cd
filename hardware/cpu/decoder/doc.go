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

// Package decoder turns bytes of x86 machine code into instances of
// result.Instruction.
//
// Decoding happens in a fixed order of phases: prefixes, opcode (including
// the VEX, EVEX and XOP escapes), ModRM and SIB, displacement and finally the
// immediates. The opcode tables in the opcodes package direct each phase.
// The decoder never backtracks and never reads more than one byte ahead of
// the field it is working on.
//
// Bytes are pulled one at a time from a bytesource.Source. Running out of
// bytes in the middle of an instruction is reported as NoMoreBytes, which is
// distinct from InvalidEncoding. The other errors are InstructionTooLong and
// LockNotAllowed. All errors are curated errors and can be tested with
// curated.Is() or classified with the Classify() function.
//
// A Decoder holds only its configuration. Every call to Decode() works on its
// own state and so a Decoder can be shared between goroutines. The decoder
// never attempts recovery after an error. For decoding a sequence of
// instructions with resynchronisation after a failure, see the Stream type.
package decoder
