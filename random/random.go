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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a random number generator that returns the same numbers for the
// same position.
type Random struct {
	// use zero seed rather than the random base seed. this is only really
	// useful when random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

// Seed returns the seed that positions are added to.
func (rnd *Random) Seed() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	return baseSeed
}

// new RNG from the standard library
func (rnd *Random) rand(pos int) *rand.Rand {
	return rand.New(rand.NewSource(rnd.Seed() + int64(pos)))
}

// Intn returns a random number in the range [0, n) for the position.
func (rnd *Random) Intn(pos int, n int) int {
	return rnd.rand(pos).Intn(n)
}

// Bytes returns n random bytes for the position.
func (rnd *Random) Bytes(pos int, n int) []byte {
	r := rnd.rand(pos)
	b := make([]byte, n)
	for i := range b {
		b[i] = uint8(r.Intn(256))
	}
	return b
}

// bytes that are more interesting to the decoder than a uniformly random byte
var prefixes = []uint8{
	0x26, 0x2e, 0x36, 0x3e, 0x64, 0x65, 0x66, 0x67, 0xf0, 0xf2, 0xf3,
	0x40, 0x41, 0x44, 0x48, 0x4c, 0x4f,
}

var escapes = [][]uint8{
	{0x0f},
	{0x0f, 0x38},
	{0x0f, 0x3a},
	{0xc4},
	{0xc5},
	{0x62},
	{0x8f},
}

// maximum number of bytes returned by Instruction()
const MaxInstruction = 20

// Instruction returns a sequence of bytes for the position that has a good
// chance of starting with prefixes and escape bytes. The sequence is between
// one and MaxInstruction bytes long.
func (rnd *Random) Instruction(pos int) []byte {
	r := rnd.rand(pos)

	b := make([]byte, 0, MaxInstruction)

	for n := r.Intn(4); n > 0; n-- {
		b = append(b, prefixes[r.Intn(len(prefixes))])
	}

	if r.Intn(2) == 0 {
		b = append(b, escapes[r.Intn(len(escapes))]...)
	}

	for n := 1 + r.Intn(MaxInstruction-len(b)); n > 0; n-- {
		b = append(b, uint8(r.Intn(256)))
	}

	return b
}
