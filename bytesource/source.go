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

package bytesource

// Source is the interface to a stream of bytes. The second return value of
// Next() is false if there are no more bytes.
type Source interface {
	Next() (uint8, bool)
}

// Sentinal errors.
const (
	ReadError = "bytesource: read error: %v"
	FileError = "bytesource: file: %v"
)

// Slice is a Source that reads from a byte slice.
type Slice struct {
	data []byte
	pos  int
}

// NewSlice is the preferred method of initialisation for the Slice type.
func NewSlice(data []byte) *Slice {
	return &Slice{data: data}
}

// Next implements the Source interface.
func (s *Slice) Next() (uint8, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	b := s.data[s.pos]
	s.pos++
	return b, true
}

// Position returns the number of bytes read so far.
func (s *Slice) Position() int {
	return s.pos
}

// SetPosition moves the read position. Positions outside the slice are
// clamped.
func (s *Slice) SetPosition(pos int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.data) {
		pos = len(s.data)
	}
	s.pos = pos
}

// Remaining returns the number of bytes that have not been read.
func (s *Slice) Remaining() int {
	return len(s.data) - s.pos
}

// Len returns the total number of bytes in the slice.
func (s *Slice) Len() int {
	return len(s.data)
}
