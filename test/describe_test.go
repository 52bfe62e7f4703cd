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


package test

import (
	"strings"
	"testing"
)

func TestDescribe(t *testing.T) {
	type record struct {
		Code   int
		Length int
	}

	if describe(10) != "10" {
		t.Errorf("unexpected description of int: %s", describe(10))
	}

	s := describe(record{Code: 1, Length: 3})
	if !strings.Contains(s, "Length: (int) 3") {
		t.Errorf("unexpected description of struct: %s", s)
	}
}
