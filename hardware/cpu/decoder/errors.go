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

import "github.com/jetsetilly/gopherx86/curated"

// Sentinal errors.
const (
	NoMoreBytes        = "decoder: no more bytes"
	InstructionTooLong = "decoder: instruction too long"
	InvalidEncoding    = "decoder: invalid encoding: %v"
	LockNotAllowed     = "decoder: lock prefix not allowed: %v"
	UnsupportedBitness = "decoder: unsupported bitness: %d"
)

// ErrorKind is the classification of a decoding error.
type ErrorKind int

// List of valid ErrorKind values.
const (
	ErrorNone ErrorKind = iota
	ErrorNoMoreBytes
	ErrorTooLong
	ErrorInvalid
	ErrorLockNotAllowed
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorNone:
		return "none"
	case ErrorNoMoreBytes:
		return "no more bytes"
	case ErrorTooLong:
		return "too long"
	case ErrorInvalid:
		return "invalid"
	case ErrorLockNotAllowed:
		return "lock not allowed"
	}
	return "unknown error kind"
}

// Classify returns the ErrorKind of an error returned by Decode(). A nil error
// is ErrorNone. An error that was not created by the decoder is classified
// as ErrorInvalid.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorNone
	case curated.Is(err, NoMoreBytes):
		return ErrorNoMoreBytes
	case curated.Is(err, InstructionTooLong):
		return ErrorTooLong
	case curated.Is(err, LockNotAllowed):
		return ErrorLockNotAllowed
	}
	return ErrorInvalid
}
