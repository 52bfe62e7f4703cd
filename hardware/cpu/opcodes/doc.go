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

// Package opcodes contains the precomputed opcode tables used by the decoder
// and the functions to look up entries in those tables.
//
// An Entry is the handler descriptor for an opcode. It names the instruction
// code for every combination of operand size (or vector length) and W bit,
// the encoding of each operand, and the flags that govern the remaining
// decoding phases (whether a ModRM byte follows, whether a LOCK prefix is
// permitted, etc.)
//
// Tables are indexed by mode (16/32bit or 64bit) for legacy encodings, by
// opcode map, by mandatory prefix and by opcode byte. Opcodes that are
// further decoded by the reg and rm fields of the ModRM byte refer to a Group.
// All lookups are constant time. The tables are never modified and so can be
// shared freely between goroutines.
package opcodes
