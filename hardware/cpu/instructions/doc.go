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

// Package instructions enumerates every instruction code known to the decoder.
// A Code identifies a mnemonic together with the kind and size of each of its
// operands. For example, AddRm32R32 is ADD with a 32bit register or memory
// destination and a 32bit register source.
//
// Codes for VEX, EVEX and XOP encoded instructions are prefixed with Vex, Evex
// and Xop respectively. EVEX codes mention the opmask (K1) and zeroing (z)
// operand decorations, the broadcast element size (B32 or B64) and whether
// embedded rounding (Er) or suppress-all-exceptions (Sae) is permitted.
package instructions
