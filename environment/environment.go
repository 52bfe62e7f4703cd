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

package environment

import (
	"github.com/jetsetilly/gopherx86/curated"
	"github.com/jetsetilly/gopherx86/hardware/cpu/decoder"
	"github.com/jetsetilly/gopherx86/logger"
	"github.com/jetsetilly/gopherx86/random"
	"github.com/xyproto/env/v2"
)

// Names of environment variables.
const (
	VarBitness            = "GOPHERX86_BITNESS"
	VarNoInvalidCheck     = "GOPHERX86_NOINVALIDCHECK"
	VarAMD                = "GOPHERX86_AMD"
	VarLogging            = "GOPHERX86_LOGGING"
	VarLabel              = "GOPHERX86_LABEL"
	VarPropertyIterations = "GOPHERX86_PROPERTY_ITERATIONS"
)

// default number of iterations for property tests
const defaultPropertyIterations = 10000

// Sentinal error.
const (
	InvalidConfiguration = "environment: %v"
)

// Label is used to name the environment
type Label string

// Environment is used to provide context for a decoding session.
type Environment struct {
	Label Label

	Bitness int
	Options decoder.Options

	// whether log entries are to be made for this environment
	Logging bool

	// number of iterations for property tests
	PropertyIterations int

	// any randomisation required by the session should be retreived through
	// this structure
	Random *random.Random
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. Returns an error if an environment variable has an
// unusable value.
func NewEnvironment() (*Environment, error) {
	// the env package caches the process environment so it must be reloaded
	// to see changes made since the previous call
	env.Load()

	e := &Environment{
		Label:              Label(env.Str(VarLabel)),
		Bitness:            env.Int(VarBitness, 64),
		Logging:            env.Bool(VarLogging) || !env.Has(VarLogging),
		PropertyIterations: env.Int(VarPropertyIterations, defaultPropertyIterations),
		Random:             random.NewRandom(),
	}

	switch e.Bitness {
	case 16, 32, 64:
	default:
		return nil, curated.Errorf(InvalidConfiguration, curated.Errorf(decoder.UnsupportedBitness, e.Bitness))
	}

	if env.Bool(VarNoInvalidCheck) {
		e.Options |= decoder.NoInvalidCheck
	}
	if env.Bool(VarAMD) {
		e.Options |= decoder.AMD
	}

	if e.PropertyIterations < 1 {
		e.PropertyIterations = defaultPropertyIterations
	}

	logger.Logf(e, "environment", "bitness %d, options %#02x, label %q", e.Bitness, uint8(e.Options), e.Label)

	return e, nil
}

// AllowLogging implements the logger.Permission interface.
func (e *Environment) AllowLogging() bool {
	return e.Logging
}

// Normalise ensures the environment is in an known default state. Useful for
// regression testing where the same random numbers are required for every run
// of the test.
func (e *Environment) Normalise() {
	e.Random.ZeroSeed = true
}

// NewDecoder creates a decoder for the bitness and options of the
// environment.
func (e *Environment) NewDecoder() (*decoder.Decoder, error) {
	return decoder.NewDecoder(e.Bitness, e.Options)
}

// NewStream creates a decoding stream over data using a decoder for the
// environment. Resynchronisations are logged with the permission of the
// environment.
func (e *Environment) NewStream(data []byte, ip uint64) (*decoder.Stream, error) {
	dec, err := e.NewDecoder()
	if err != nil {
		return nil, err
	}
	return decoder.NewStream(dec, e, data, ip), nil
}

// IsMainEnvironment returns true if the environment has no label.
func (e *Environment) IsMainEnvironment() bool {
	return e.Label == ""
}

// IsEnvironment checks the environment label and returns true if it matches
func (e *Environment) IsEnvironment(label Label) bool {
	return e.Label == label
}
