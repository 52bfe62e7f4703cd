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

package environment_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherx86/curated"
	"github.com/jetsetilly/gopherx86/environment"
	"github.com/jetsetilly/gopherx86/hardware/cpu/decoder"
	"github.com/jetsetilly/gopherx86/logger"
	"github.com/jetsetilly/gopherx86/test"
)

func TestDefaults(t *testing.T) {
	t.Setenv(environment.VarBitness, "")
	t.Setenv(environment.VarAMD, "")
	t.Setenv(environment.VarNoInvalidCheck, "")
	t.Setenv(environment.VarLabel, "")

	e, err := environment.NewEnvironment()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, e.Bitness, 64)
	test.ExpectEquality(t, e.Options, decoder.Options(0))
	test.ExpectSuccess(t, e.IsMainEnvironment())

	dec, err := e.NewDecoder()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dec.Bitness(), 64)
}

func TestConfiguration(t *testing.T) {
	t.Setenv(environment.VarBitness, "32")
	t.Setenv(environment.VarAMD, "true")
	t.Setenv(environment.VarNoInvalidCheck, "1")
	t.Setenv(environment.VarLabel, "regression")
	t.Setenv(environment.VarPropertyIterations, "50")

	e, err := environment.NewEnvironment()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, e.Bitness, 32)
	test.ExpectEquality(t, e.Options, decoder.AMD|decoder.NoInvalidCheck)
	test.ExpectEquality(t, e.PropertyIterations, 50)
	test.ExpectSuccess(t, e.IsEnvironment("regression"))
	test.ExpectFailure(t, e.IsMainEnvironment())
}

func TestBadBitness(t *testing.T) {
	t.Setenv(environment.VarBitness, "8")
	_, err := environment.NewEnvironment()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, environment.InvalidConfiguration))
	test.ExpectSuccess(t, curated.Has(err, decoder.UnsupportedBitness))
}

func TestLoggingPermission(t *testing.T) {
	t.Setenv(environment.VarBitness, "64")
	t.Setenv(environment.VarLogging, "false")
	t.Setenv(environment.VarLabel, "quiet")

	e, err := environment.NewEnvironment()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, e.AllowLogging())

	logger.Clear()
	s, err := e.NewStream([]byte{0x0f, 0xff, 0x90}, 0)
	test.DemandSuccess(t, err)
	all, skipped := s.All()
	test.ExpectEquality(t, len(all), 1)
	test.ExpectEquality(t, skipped, 2)

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectFailure(t, strings.Contains(w.String(), "resync"))
}

func TestReload(t *testing.T) {
	t.Setenv(environment.VarBitness, "64")
	e, err := environment.NewEnvironment()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, e.Bitness, 64)

	t.Setenv(environment.VarBitness, "16")
	e, err = environment.NewEnvironment()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, e.Bitness, 16)
}
