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

package decoder

import (
	"github.com/jetsetilly/gopherx86/bytesource"
	"github.com/jetsetilly/gopherx86/curated"
	"github.com/jetsetilly/gopherx86/hardware/cpu/result"
	"github.com/jetsetilly/gopherx86/logger"
)

// Stream decodes consecutive instructions from a byte slice. The
// instruction pointer advances with every instruction.
type Stream struct {
	dec  *Decoder
	perm logger.Permission

	data []byte
	pos  int
	ip   uint64

	// if Resync is true a failed decode skips the first byte of the failed
	// instruction, so that the next call to Next() tries again at the
	// following byte. if it is false a failed decode does not advance the
	// stream
	Resync bool
}

// NewStream is the preferred method of initialisation for the Stream type.
// The ip argument is the address of the first byte of data.
func NewStream(dec *Decoder, perm logger.Permission, data []byte, ip uint64) *Stream {
	return &Stream{
		dec:    dec,
		perm:   perm,
		data:   data,
		ip:     ip,
		Resync: true,
	}
}

// IP returns the address of the next instruction to be decoded.
func (s *Stream) IP() uint64 {
	return s.ip
}

// Done returns true if all the bytes have been consumed.
func (s *Stream) Done() bool {
	return s.pos >= len(s.data)
}

// Next decodes the next instruction in the stream. Returns a NoMoreBytes error
// if the stream is done.
func (s *Stream) Next() (result.Instruction, error) {
	if s.Done() {
		return result.Instruction{}, curated.Errorf(NoMoreBytes)
	}

	src := bytesource.NewSlice(s.data[s.pos:])
	ins, n, err := s.dec.Decode(src, s.ip)
	if err != nil {
		if s.Resync {
			logger.Logf(s.perm, "decoder", "resync at %#x: %v", s.ip, err)
			s.advance(1)
		}
		return result.Instruction{}, err
	}

	s.advance(n)
	return ins, nil
}

func (s *Stream) advance(n int) {
	s.pos += n
	s.ip = mask(s.ip+uint64(n), s.dec.bitness)
}

// All decodes the remainder of the stream. Bytes that cannot be decoded are
// skipped regardless of the Resync field. The number of skipped bytes is
// returned along with the decoded instructions.
func (s *Stream) All() ([]result.Instruction, int) {
	resync := s.Resync
	s.Resync = true
	defer func() {
		s.Resync = resync
	}()

	var all []result.Instruction
	var skipped int

	for !s.Done() {
		ins, err := s.Next()
		if err != nil {
			skipped++
			continue
		}
		all = append(all, ins)
	}

	return all, skipped
}
