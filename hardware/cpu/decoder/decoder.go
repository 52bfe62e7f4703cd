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
)

// Options changes how some encodings are treated.
type Options uint8

// List of valid Options. Options can be combined.
const (
	// accept encodings that are reserved but which hardware is known to
	// tolerate. for example, unused VEX.vvvv bits that are not 1111b and the
	// LOCK prefix on instructions that do not support it
	NoInvalidCheck Options = 1 << iota

	// in 64bit mode, near branches with an operand size prefix have a 16bit
	// operand size on AMD processors. Intel processors ignore the prefix
	AMD
)

// Decoder decodes instructions for a single bitness.
type Decoder struct {
	bitness  int
	codeSize result.CodeSize
	options  Options
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
// The bitness must be 16, 32 or 64.
func NewDecoder(bitness int, options Options) (*Decoder, error) {
	cs := result.CodeSizeFromBits(bitness)
	if cs == result.CodeSizeUnknown {
		return nil, curated.Errorf(UnsupportedBitness, bitness)
	}
	return &Decoder{
		bitness:  bitness,
		codeSize: cs,
		options:  options,
	}, nil
}

// Bitness returns the bitness of the decoder.
func (dec *Decoder) Bitness() int {
	return dec.bitness
}

// Options returns the options the decoder was created with.
func (dec *Decoder) Options() Options {
	return dec.options
}

// Decode the next instruction in the byte source. The ip argument is the
// address of the first byte of the instruction and is used to resolve
// relative branch targets.
//
// Also returns the number of bytes consumed from the source, which on error
// is the number of bytes read before the error was found.
func (dec *Decoder) Decode(src bytesource.Source, ip uint64) (result.Instruction, int, error) {
	st := state{
		dec:    dec,
		src:    src,
		mode64: dec.bitness == 64,
	}
	st.ins.IP = ip
	st.ins.CodeSize = dec.codeSize

	if err := st.decode(); err != nil {
		return result.Instruction{}, st.length, err
	}

	return st.ins, st.length, nil
}

// Decode a single instruction with a decoder created with no options.
func Decode(src bytesource.Source, bitness int, ip uint64) (result.Instruction, int, error) {
	dec, err := NewDecoder(bitness, 0)
	if err != nil {
		return result.Instruction{}, 0, err
	}
	return dec.Decode(src, ip)
}
