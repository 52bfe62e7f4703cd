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

package memorysize

// List of memory sizes.
const (
	Unknown MemorySize = iota
	UInt8
	UInt16
	UInt32
	UInt64
	UInt128
	UInt256
	UInt512
	Int16
	Int32
	Int64
	Float32
	Float64
	Float80
	Bcd
	SegPtr16
	SegPtr32
	SegPtr64
	Fword5
	Fword6
	Fword10
	Bound16
	Bound32
	FpuEnv14
	FpuEnv28
	FpuState94
	FpuState108
	Fxsave512
	Xsave
	Packed64Float32
	Packed128Float32
	Packed128Float64
	Packed256Float32
	Packed256Float64
	Packed512Float32
	Packed512Float64
	BroadcastFloat32
	BroadcastFloat64
	BroadcastUInt32
	BroadcastUInt64
)

// NumMemorySizes is the number of entries in the MemorySize enumeration.
const NumMemorySizes = 40

type details struct {
	name      string
	size      int
	element   int
	broadcast bool
}

var sizes = [NumMemorySizes]details{
	Unknown: {name: "Unknown", size: 0, element: 0},
	UInt8: {name: "UInt8", size: 1, element: 1},
	UInt16: {name: "UInt16", size: 2, element: 2},
	UInt32: {name: "UInt32", size: 4, element: 4},
	UInt64: {name: "UInt64", size: 8, element: 8},
	UInt128: {name: "UInt128", size: 16, element: 16},
	UInt256: {name: "UInt256", size: 32, element: 32},
	UInt512: {name: "UInt512", size: 64, element: 64},
	Int16: {name: "Int16", size: 2, element: 2},
	Int32: {name: "Int32", size: 4, element: 4},
	Int64: {name: "Int64", size: 8, element: 8},
	Float32: {name: "Float32", size: 4, element: 4},
	Float64: {name: "Float64", size: 8, element: 8},
	Float80: {name: "Float80", size: 10, element: 10},
	Bcd: {name: "Bcd", size: 10, element: 10},
	SegPtr16: {name: "SegPtr16", size: 4, element: 4},
	SegPtr32: {name: "SegPtr32", size: 6, element: 6},
	SegPtr64: {name: "SegPtr64", size: 10, element: 10},
	Fword5: {name: "Fword5", size: 5, element: 5},
	Fword6: {name: "Fword6", size: 6, element: 6},
	Fword10: {name: "Fword10", size: 10, element: 10},
	Bound16: {name: "Bound16", size: 4, element: 2},
	Bound32: {name: "Bound32", size: 8, element: 4},
	FpuEnv14: {name: "FpuEnv14", size: 14, element: 14},
	FpuEnv28: {name: "FpuEnv28", size: 28, element: 28},
	FpuState94: {name: "FpuState94", size: 94, element: 94},
	FpuState108: {name: "FpuState108", size: 108, element: 108},
	Fxsave512: {name: "Fxsave512", size: 512, element: 512},
	Xsave: {name: "Xsave", size: 0, element: 0},
	Packed64Float32: {name: "Packed64Float32", size: 8, element: 4},
	Packed128Float32: {name: "Packed128Float32", size: 16, element: 4},
	Packed128Float64: {name: "Packed128Float64", size: 16, element: 8},
	Packed256Float32: {name: "Packed256Float32", size: 32, element: 4},
	Packed256Float64: {name: "Packed256Float64", size: 32, element: 8},
	Packed512Float32: {name: "Packed512Float32", size: 64, element: 4},
	Packed512Float64: {name: "Packed512Float64", size: 64, element: 8},
	BroadcastFloat32: {name: "BroadcastFloat32", size: 4, element: 4, broadcast: true},
	BroadcastFloat64: {name: "BroadcastFloat64", size: 8, element: 8, broadcast: true},
	BroadcastUInt32: {name: "BroadcastUInt32", size: 4, element: 4, broadcast: true},
	BroadcastUInt64: {name: "BroadcastUInt64", size: 8, element: 8, broadcast: true},
}
