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


package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/gopherx86/curated"
	"github.com/jetsetilly/gopherx86/test"
)

const (
	testError  = "test error: %s"
	testError2 = "test error 2: %v"
)

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes one of them
	// to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")

	g := curated.Errorf("decoder: %v", curated.Errorf("decoder: no more bytes"))
	test.ExpectEquality(t, g.Error(), "decoder: no more bytes")

	// duplicates deeper in the chain are also removed
	h := curated.Errorf("a: %v", curated.Errorf("b: %v", curated.Errorf("b: c")))
	test.ExpectEquality(t, h.Error(), "a: b: c")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, testError2))

	f := curated.Errorf(testError2, e)
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Is(f, testError2))
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testError2))

	test.ExpectFailure(t, curated.Is(nil, testError))
	test.ExpectFailure(t, curated.Has(nil, testError))
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectSuccess(t, curated.IsAny(e))

	// plain errors are not curated
	p := errors.New("plain")
	test.ExpectFailure(t, curated.IsAny(p))
	test.ExpectFailure(t, curated.Has(p, testError))
	test.ExpectEquality(t, curated.Pattern(p), "")
	test.ExpectEquality(t, curated.Pattern(f), testError2)
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("read error: %v", io.ErrUnexpectedEOF)
	test.ExpectSuccess(t, errors.Is(e, io.ErrUnexpectedEOF))
	test.ExpectFailure(t, errors.Is(e, io.EOF))

	f := curated.Errorf(testError2, e)
	test.ExpectSuccess(t, errors.Is(f, io.ErrUnexpectedEOF))
}
