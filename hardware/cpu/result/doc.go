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

// Package result defines the Instruction type, the record produced by the
// decoder for every instruction it decodes. An Instruction is a plain value.
// It has no references to the byte source that it was decoded from and it is
// never changed once the decoder has returned it, so it is safe to copy and to
// share between goroutines.
//
// The record describes the instruction code, the operands, the single memory
// operand (if any), the legacy prefixes and the EVEX decorations. It also
// carries the offsets of the displacement and immediates within the encoded
// bytes (ConstantOffsets) so that the original bytes can be re-emitted or
// patched.
//
// The Instruction.IsValid() function checks that a record is consistent with
// the limits of the instruction set (length, operand count, register ranges,
// etc.). It is intended for testing and for development of the decoder.
package result
