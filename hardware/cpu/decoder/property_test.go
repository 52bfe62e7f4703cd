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

package decoder_test

import (
	"fmt"
	"testing"

	"golang.org/x/arch/x86/x86asm"

	"github.com/jetsetilly/gopherx86/bytesource"
	"github.com/jetsetilly/gopherx86/environment"
	"github.com/jetsetilly/gopherx86/hardware/cpu/decoder"
	"github.com/jetsetilly/gopherx86/hardware/cpu/result"
	"github.com/jetsetilly/gopherx86/test"
)

// decoding random byte sequences must never panic and every successful decode
// must be self consistent
func TestRandomProperties(t *testing.T) {
	env, err := environment.NewEnvironment()
	test.DemandSuccess(t, err)

	for _, bitness := range []int{16, 32, 64} {
		for _, options := range []decoder.Options{0, decoder.NoInvalidCheck} {
			dec, err := decoder.NewDecoder(bitness, options)
			test.DemandSuccess(t, err)

			for i := 0; i < env.PropertyIterations; i++ {
				b := env.Random.Instruction(i)
				tag := fmt.Sprintf("%dbit: seed %d: % 02x", bitness, env.Random.Seed()+int64(i), b)

				ins, n, err := dec.Decode(bytesource.NewSlice(b), 0x1000)
				if err != nil {
					if decoder.Classify(err) == decoder.ErrorNone {
						t.Fatalf("%s: unclassified error: %v", tag, err)
					}
					if n > result.MaxLength {
						t.Fatalf("%s: %d bytes consumed on error", tag, n)
					}
					continue
				}

				if ins.Length < 1 || ins.Length > result.MaxLength {
					t.Fatalf("%s: length of %d", tag, ins.Length)
				}
				test.ExpectEquality(t, n, ins.Length, tag)
				test.ExpectSuccess(t, ins.IsValid(), tag)

				// any truncation of a valid instruction runs out of bytes
				_, _, err = dec.Decode(bytesource.NewSlice(b[:ins.Length-1]), 0x1000)
				test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorNoMoreBytes, tag)
			}
		}
	}
}

// the length of common legacy instructions compared with an independent
// decoder
func TestLengthAgainstX86asm(t *testing.T) {
	sequences := []struct {
		bitness int
		b       []byte
	}{
		{64, []byte{0x90}},
		{32, []byte{0xb8, 0x01, 0x00, 0x00, 0x00}},
		{64, []byte{0x48, 0xb8, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}},
		{32, []byte{0x8b, 0x44, 0x24, 0x08}},
		{32, []byte{0xc7, 0x04, 0x85, 0x10, 0x00, 0x00, 0x00, 0x78, 0x56, 0x34, 0x12}},
		{64, []byte{0x48, 0x8d, 0x05, 0x10, 0x00, 0x00, 0x00}},
		{64, []byte{0xe8, 0x00, 0x00, 0x00, 0x00}},
		{64, []byte{0xeb, 0xfe}},
		{32, []byte{0xf7, 0x58, 0x08}},
		{32, []byte{0x0f, 0xb6, 0xc1}},
		{32, []byte{0x69, 0xc1, 0x00, 0x01, 0x00, 0x00}},
		{64, []byte{0x0f, 0x1f, 0x44, 0x00, 0x00}},
		{32, []byte{0xdd, 0x45, 0xf8}},
		{64, []byte{0x6a, 0x01}},
		{32, []byte{0xc2, 0x08, 0x00}},
		{64, []byte{0x0f, 0x05}},
		{32, []byte{0x0f, 0xa2}},
		{64, []byte{0xcc}},
		{64, []byte{0xf0, 0x48, 0x0f, 0xb1, 0x0a}},
		{32, []byte{0xc8, 0x10, 0x00, 0x01}},
		{64, []byte{0x66, 0x0f, 0x6f, 0xc1}},
		{64, []byte{0xf3, 0x0f, 0x10, 0x44, 0x24, 0x08}},
		{16, []byte{0x8b, 0x42, 0x02}},
		{16, []byte{0xe9, 0xfc, 0xff}},
		{32, []byte{0x66, 0x81, 0xc1, 0x34, 0x12}},
		{64, []byte{0x67, 0x8b, 0x01}},
		{64, []byte{0x64, 0x48, 0x8b, 0x04, 0x25, 0x28, 0x00, 0x00, 0x00}},
	}

	for _, s := range sequences {
		tag := fmt.Sprintf("%dbit: % 02x", s.bitness, s.b)

		oracle, err := x86asm.Decode(s.b, s.bitness)
		test.DemandSuccess(t, err, tag)

		ins, _, err := decode(s.bitness, 0, s.b...)
		test.DemandSuccess(t, err, tag)

		test.ExpectEquality(t, ins.Length, oracle.Len, tag)
		test.ExpectEquality(t, ins.Length, len(s.b), tag)
	}
}
