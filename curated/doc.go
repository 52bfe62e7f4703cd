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


// Package curated is a helper package for the plain Go error type. Every error
// produced by the decoder, the byte sources and the environment is a curated
// error.
//
// Curated errors are created with the Errorf() function, which takes a pattern
// and placeholder values in the same way as fmt.Errorf(). The pattern
// identifies the error. Sentinal patterns are stored as exported const
// strings and tested for with the Is() function:
//
//	err := curated.Errorf(decoder.LockNotAllowed, code)
//
//	if curated.Is(err, decoder.LockNotAllowed) {
//		fmt.Println("true")
//	}
//
// The Has() function checks whether the pattern occurs anywhere in the error
// chain:
//
//	e := curated.Errorf(decoder.UnsupportedBitness, 8)
//	f := curated.Errorf(environment.InvalidConfiguration, e)
//
//	curated.Has(f, decoder.UnsupportedBitness) // true
//	curated.Is(f, decoder.UnsupportedBitness)  // false
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. An error that is not curated is an unexpected error.
//
// Error messages are chains of parts separated by ": ". The Error() function
// removes adjacent duplicate parts from the chain so that wrapping an error
// with a pattern that begins with the same part does not repeat it:
//
//	e := curated.Errorf("decoder: no more bytes")
//	f := curated.Errorf("decoder: %v", e)
//
//	fmt.Println(f) // decoder: no more bytes
//
// Errors passed as values to Errorf() are returned by Unwrap() and so can be
// found with errors.Is() and errors.As() from the standard library.
package curated
