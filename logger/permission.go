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


package logger

// Permission is implemented by anything that decides whether a log request
// should result in a new entry. The environment package implements it from
// the GOPHERX86_LOGGING variable.
type Permission interface {
	AllowLogging() bool
}

type fixed bool

func (f fixed) AllowLogging() bool {
	return bool(f)
}

// Allow and Deny are permissions that never change. Log requests with Allow
// are always accepted and log requests with Deny are always dropped.
var (
	Allow Permission = fixed(true)
	Deny  Permission = fixed(false)
)

// PermissionFunc adapts a function to the Permission interface.
type PermissionFunc func() bool

// AllowLogging implements the Permission interface.
func (f PermissionFunc) AllowLogging() bool {
	return f()
}
