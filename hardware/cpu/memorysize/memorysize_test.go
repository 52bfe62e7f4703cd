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

package memorysize_test

import (
	"testing"

	"github.com/jetsetilly/gopherx86/hardware/cpu/memorysize"
	"github.com/jetsetilly/gopherx86/test"
)

func TestSizes(t *testing.T) {
	test.ExpectEquality(t, memorysize.UInt8.Size(), 1)
	test.ExpectEquality(t, memorysize.Float80.Size(), 10)
	test.ExpectEquality(t, memorysize.Packed512Float64.Size(), 64)
	test.ExpectEquality(t, memorysize.Packed512Float64.ElementSize(), 8)
	test.ExpectEquality(t, memorysize.Unknown.Size(), 0)
	test.ExpectEquality(t, memorysize.MemorySize(memorysize.NumMemorySizes).Size(), 0)
}

func TestShapes(t *testing.T) {
	test.ExpectSuccess(t, memorysize.Packed128Float32.IsPacked())
	test.ExpectFailure(t, memorysize.UInt128.IsPacked())
	test.ExpectFailure(t, memorysize.Float32.IsPacked())
	test.ExpectSuccess(t, memorysize.BroadcastFloat32.IsBroadcast())
	test.ExpectFailure(t, memorysize.BroadcastFloat32.IsPacked())
	test.ExpectFailure(t, memorysize.UInt64.IsBroadcast())
}

func TestNames(t *testing.T) {
	for m := memorysize.Unknown; int(m) < memorysize.NumMemorySizes; m++ {
		test.ExpectInequality(t, m.String(), "")
		test.ExpectInequality(t, m.String(), "unknown")
	}
}
