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
	"testing"

	"github.com/jetsetilly/gopherx86/curated"
	"github.com/jetsetilly/gopherx86/hardware/cpu/decoder"
	"github.com/jetsetilly/gopherx86/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherx86/logger"
	"github.com/jetsetilly/gopherx86/test"
)

func TestStream(t *testing.T) {
	dec, err := decoder.NewDecoder(64, 0)
	test.DemandSuccess(t, err)

	// nop, an opcode that is invalid in 64bit mode, a truncated call and
	// another nop
	data := []byte{0x90, 0x06, 0xff, 0x90}

	s := decoder.NewStream(dec, logger.Allow, data, 0x100)
	test.ExpectSuccess(t, s.Resync)
	test.ExpectEquality(t, s.IP(), uint64(0x100))

	ins, err := s.Next()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ins.Code, instructions.Nop)
	test.ExpectEquality(t, ins.IP, uint64(0x100))
	test.ExpectEquality(t, s.IP(), uint64(0x101))

	_, err = s.Next()
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorInvalid)
	test.ExpectEquality(t, s.IP(), uint64(0x102))

	_, err = s.Next()
	test.ExpectEquality(t, decoder.Classify(err), decoder.ErrorNoMoreBytes)

	ins, err = s.Next()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ins.IP, uint64(0x103))
	test.ExpectSuccess(t, s.Done())

	_, err = s.Next()
	test.ExpectSuccess(t, curated.Is(err, decoder.NoMoreBytes))
}

func TestStreamWithoutResync(t *testing.T) {
	dec, err := decoder.NewDecoder(32, 0)
	test.DemandSuccess(t, err)

	s := decoder.NewStream(dec, logger.Allow, []byte{0x0f, 0x04}, 0)
	s.Resync = false

	_, err = s.Next()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, s.IP(), uint64(0))
	test.ExpectFailure(t, s.Done())

	// All() always resyncs and restores the field afterwards
	all, skipped := s.All()
	test.ExpectEquality(t, len(all), 0)
	test.ExpectEquality(t, skipped, 2)
	test.ExpectFailure(t, s.Resync)
}

func TestStreamAll(t *testing.T) {
	dec, err := decoder.NewDecoder(64, 0)
	test.DemandSuccess(t, err)

	data := []byte{
		0x55,             // push rbp
		0x48, 0x89, 0xe5, // mov rbp, rsp
		0x31, 0xc0, // xor eax, eax
		0x5d, // pop rbp
		0xc3, // ret
	}

	s := decoder.NewStream(dec, logger.Allow, data, 0x400000)
	all, skipped := s.All()
	test.ExpectEquality(t, skipped, 0)
	test.DemandEquality(t, len(all), 5)

	expected := []instructions.Code{
		instructions.PushR64,
		instructions.MovRm64R64,
		instructions.XorRm32R32,
		instructions.PopR64,
		instructions.Ret,
	}
	ip := uint64(0x400000)
	for i, ins := range all {
		test.ExpectEquality(t, ins.Code, expected[i], i)
		test.ExpectEquality(t, ins.IP, ip, i)
		ip = ins.NextIP()
	}
	test.ExpectEquality(t, s.IP(), uint64(0x400000+len(data)))
}

func TestStreamWrap(t *testing.T) {
	dec, err := decoder.NewDecoder(16, 0)
	test.DemandSuccess(t, err)

	s := decoder.NewStream(dec, logger.Allow, []byte{0x90, 0x90}, 0xffff)
	_, err = s.Next()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.IP(), uint64(0))
}
