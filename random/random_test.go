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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopherx86/random"
	"github.com/jetsetilly/gopherx86/test"
)

func TestRandom(t *testing.T) {
	a := random.NewRandom()
	b := random.NewRandom()
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i, 1000), b.Intn(i, 1000))
		test.ExpectEquality(t, string(a.Instruction(i)), string(b.Instruction(i)))
	}
}

func TestInstructionLength(t *testing.T) {
	rnd := random.NewRandom()
	for i := 0; i < 1000; i++ {
		n := len(rnd.Instruction(i))
		test.ExpectSuccess(t, n >= 1 && n <= random.MaxInstruction, i)
	}
}

func TestBytes(t *testing.T) {
	rnd := random.NewRandom()
	rnd.ZeroSeed = true
	test.ExpectEquality(t, len(rnd.Bytes(10, 16)), 16)
	test.ExpectEquality(t, string(rnd.Bytes(10, 16)), string(rnd.Bytes(10, 16)))
}
