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

// Package registers enumerates the x86 architectural registers. The
// enumeration is dense and its order is stable so that it can be used to
// index other tables. NumRegisters is the size of any such table.
//
// Registers are grouped by class and by width. The selection functions (GPR8,
// GPR32, Vector, etc.) map an encoding number onto a member of the
// enumeration.
package registers
