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

// Package random generates the random input used by property tests of the
// decoder.
//
// Numbers are derived from a position, which for a property test will
// usually be the iteration number. The same position always results in the
// same numbers for a Random instance, meaning that a failing iteration can be
// repeated by asking for the same position again.
//
// The seed for all Random instances is taken from the time the program
// started. If the same random numbers are required every single time then set
// ZeroSeed to true. The Seed() function returns the seed in use so that it can
// be logged when a test fails.
package random
