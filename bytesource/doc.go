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

// Package bytesource provides the sources of bytes for the decoder.
//
// A Source returns one byte at a time and signals the end of the stream with
// a false return value. It never returns an error. Implementations that can
// fail for reasons other than reaching the end of the data (the Reader type
// for example) report the end of the stream and make the error available
// through an Err() function.
//
// Slice is the simplest implementation and is what most callers will use.
// File maps a file into memory where the platform supports it and falls back
// to reading the whole file otherwise.
package bytesource
