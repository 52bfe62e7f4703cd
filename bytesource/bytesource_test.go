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

package bytesource_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherx86/bytesource"
	"github.com/jetsetilly/gopherx86/curated"
	"github.com/jetsetilly/gopherx86/logger"
	"github.com/jetsetilly/gopherx86/test"
)

// drain a source and return the bytes
func drain(src bytesource.Source) []byte {
	var d []byte
	for {
		b, ok := src.Next()
		if !ok {
			return d
		}
		d = append(d, b)
	}
}

func TestSlice(t *testing.T) {
	s := bytesource.NewSlice([]byte{0x90, 0xc3})
	test.ExpectEquality(t, s.Len(), 2)

	b, ok := s.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, 0x90)
	test.ExpectEquality(t, s.Position(), 1)
	test.ExpectEquality(t, s.Remaining(), 1)

	b, ok = s.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, 0xc3)

	// end of stream is sticky
	_, ok = s.Next()
	test.ExpectFailure(t, ok)
	_, ok = s.Next()
	test.ExpectFailure(t, ok)

	s.SetPosition(1)
	test.ExpectEquality(t, s.Remaining(), 1)
	s.SetPosition(100)
	test.ExpectEquality(t, s.Remaining(), 0)
	s.SetPosition(-1)
	test.ExpectEquality(t, s.Position(), 0)
}

func TestEmptySlice(t *testing.T) {
	s := bytesource.NewSlice(nil)
	_, ok := s.Next()
	test.ExpectFailure(t, ok)
}

type failingReader struct {
	n int
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.n == 0 {
		return 0, errors.New("device failure")
	}
	p[0] = 0xcc
	r.n--
	return 1, nil
}

func TestReader(t *testing.T) {
	rd := bytesource.NewReader(bytes.NewReader([]byte{0x0f, 0x05}))
	test.ExpectEquality(t, string(drain(rd)), string([]byte{0x0f, 0x05}))
	test.ExpectSuccess(t, rd.Err())

	fr := bytesource.NewReader(&failingReader{n: 2})
	test.ExpectEquality(t, len(drain(fr)), 2)
	test.ExpectFailure(t, fr.Err())
	test.ExpectSuccess(t, curated.Is(fr.Err(), bytesource.ReadError))

	// the stream stays ended after an error
	_, ok := fr.Next()
	test.ExpectFailure(t, ok)
}

func TestFile(t *testing.T) {
	dir := t.TempDir()

	fn := filepath.Join(dir, "code.bin")
	err := os.WriteFile(fn, []byte{0x48, 0x31, 0xc0, 0xc3}, 0o644)
	test.DemandSuccess(t, err)

	f, err := bytesource.OpenFile(logger.Allow, fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, f.Filename(), fn)
	test.ExpectEquality(t, len(f.Bytes()), 4)
	test.ExpectEquality(t, string(drain(f)), string([]byte{0x48, 0x31, 0xc0, 0xc3}))
	test.ExpectSuccess(t, f.Close())

	_, ok := f.Next()
	test.ExpectFailure(t, ok)
}

func TestEmptyFile(t *testing.T) {
	dir := t.TempDir()

	fn := filepath.Join(dir, "empty.bin")
	err := os.WriteFile(fn, nil, 0o644)
	test.DemandSuccess(t, err)

	f, err := bytesource.OpenFile(logger.Allow, fn)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, f.Mapped())

	_, ok := f.Next()
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, f.Close())
}

func TestMissingFile(t *testing.T) {
	_, err := bytesource.OpenFile(logger.Allow, filepath.Join(t.TempDir(), "missing"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bytesource.FileError))
}
