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

// Package memorysize enumerates the sizes and shapes of memory operands. A
// MemorySize is attached to every memory operand produced by the decoder and
// describes how many bytes are accessed and how they are interpreted.
package memorysize

// MemorySize identifies the size and element layout of a memory operand.
type MemorySize uint8

func (m MemorySize) String() string {
	if int(m) >= NumMemorySizes {
		return "unknown"
	}
	return sizes[m].name
}

// Size returns the number of bytes accessed. The size of Unknown and Xsave is
// zero because it cannot be known statically.
func (m MemorySize) Size() int {
	if int(m) >= NumMemorySizes {
		return 0
	}
	return sizes[m].size
}

// ElementSize returns the size in bytes of a single element. For scalar sizes
// this is the same as Size().
func (m MemorySize) ElementSize() int {
	if int(m) >= NumMemorySizes {
		return 0
	}
	return sizes[m].element
}

// IsBroadcast returns true if the memory size describes a single element that
// is broadcast to every element of a vector.
func (m MemorySize) IsBroadcast() bool {
	if int(m) >= NumMemorySizes {
		return false
	}
	return sizes[m].broadcast
}

// IsPacked returns true if the memory operand holds more than one element.
func (m MemorySize) IsPacked() bool {
	return m.ElementSize() > 0 && m.ElementSize() < m.Size()
}
