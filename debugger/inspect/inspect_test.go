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


package inspect_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherx86/bytesource"
	"github.com/jetsetilly/gopherx86/debugger/inspect"
	"github.com/jetsetilly/gopherx86/hardware/cpu/decoder"
	"github.com/jetsetilly/gopherx86/hardware/cpu/info"
	"github.com/jetsetilly/gopherx86/test"
	"github.com/jetsetilly/gopherx86/version"
)

func TestDump(t *testing.T) {
	// neg dword [eax+8]
	ins, _, err := decoder.Decode(bytesource.NewSlice([]byte{0xf7, 0x58, 0x08}), 32, 0)
	test.DemandSuccess(t, err)
	ai := info.Analyze(&ins)

	s := inspect.Sdump(&ins, &ai)
	test.ExpectSuccess(t, strings.HasPrefix(s, "# "+version.ApplicationName))
	test.ExpectSuccess(t, strings.Contains(s, "NegRm32"))
	test.ExpectSuccess(t, strings.Contains(s, "RflagsWritten"))

	// without access info
	s = inspect.Sdump(&ins, nil)
	test.ExpectSuccess(t, strings.Contains(s, "NegRm32"))
	test.ExpectFailure(t, strings.Contains(s, "RflagsWritten"))
}

func TestGraph(t *testing.T) {
	ins, _, err := decoder.Decode(bytesource.NewSlice([]byte{0x55}), 64, 0)
	test.DemandSuccess(t, err)
	ai := info.Analyze(&ins)

	s := strings.Builder{}
	inspect.Graph(&s, &ins, &ai)
	test.ExpectSuccess(t, strings.Contains(s.String(), "digraph"))
}

func TestSummary(t *testing.T) {
	// rep movsb
	ins, _, err := decoder.Decode(bytesource.NewSlice([]byte{0xf3, 0xa4}), 32, 0)
	test.DemandSuccess(t, err)
	ai := info.Analyze(&ins)

	s := inspect.Summary(&ai)
	test.ExpectSuccess(t, strings.Contains(s, "ecx    read cond write"))
	test.ExpectSuccess(t, strings.Contains(s, "mem    cond write es:[edi"))
	test.ExpectSuccess(t, strings.HasSuffix(s, "flow   next"))
	test.ExpectSuccess(t, strings.Contains(s, "read=DF"))
}
