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

// Package test bundles helper functions to remove common boilerplate from
// tests written for the standard go test harness.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions report a failure and stop the test immediately. Use the
// Demand functions when the value being tested is used by later parts of the
// test.
//
// It is worth describing how the success and failure tests handle the nil type
// because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to succeed.
// This is because of how errors usually work (nil to indicate no error).
//
// Failure messages for struct and array values are rendered with go-spew so
// that a differing field in a large record, such as a decoded instruction, can
// be found.
package test
