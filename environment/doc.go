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

// Package environment provides the context for a decoding session. The
// context is populated from environment variables:
//
//	GOPHERX86_BITNESS                 16, 32 or 64 (default 64)
//	GOPHERX86_NOINVALIDCHECK          accept reserved encodings
//	GOPHERX86_AMD                     AMD branch operand size rules
//	GOPHERX86_LOGGING                 allow log entries (default true)
//	GOPHERX86_LABEL                   name of the environment
//	GOPHERX86_PROPERTY_ITERATIONS     iterations of property tests
//
// The Environment type implements the logger.Permission interface.
package environment
