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


package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/davecgh/go-spew/spew"
	"github.com/jetsetilly/gopherx86/hardware/cpu/info"
	"github.com/jetsetilly/gopherx86/hardware/cpu/registers"
	"github.com/jetsetilly/gopherx86/hardware/cpu/result"
	"github.com/jetsetilly/gopherx86/version"
)

// the spew configuration. the type names of the enumerations are left in
// place but their values are shown with String()
var config = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// record hides the String() method of the instruction so that spew shows the
// fields
type record result.Instruction

// the root of the graph. memviz labels nodes with the field names so the
// field names double as a legend
type view struct {
	Instruction *result.Instruction
	Access      *info.AccessInfo
}

// Dump writes the instruction and the access info to w. The access info can
// be nil, in which case only the instruction is written.
func Dump(w io.Writer, ins *result.Instruction, ai *info.AccessInfo) {
	fmt.Fprintf(w, "# %s\n", version.Describe())
	fmt.Fprintf(w, "# %s\n", ins.String())
	if ai == nil {
		config.Fdump(w, (*record)(ins))
		return
	}
	config.Fdump(w, (*record)(ins), ai)
}

// Sdump is like Dump() but returns the dump as a string.
func Sdump(ins *result.Instruction, ai *info.AccessInfo) string {
	s := strings.Builder{}
	Dump(&s, ins, ai)
	return s.String()
}

// Graph writes a graphviz description of the instruction and the access info
// to w. The access info can be nil.
func Graph(w io.Writer, ins *result.Instruction, ai *info.AccessInfo) {
	memviz.Map(w, &view{
		Instruction: ins,
		Access:      ai,
	})
}

// Summary returns a short multiline description of the access info, one line
// for each register and memory access followed by the flags.
func Summary(ai *info.AccessInfo) string {
	s := strings.Builder{}

	for _, r := range ai.Registers {
		fmt.Fprintf(&s, "%-6s %s\n", r.Register, r.Access)
	}

	for _, m := range ai.Memory {
		fmt.Fprintf(&s, "%-6s %s %s:[%s", "mem", m.Access, m.Segment, m.Base)
		if m.Index != registers.None {
			fmt.Fprintf(&s, "+%s*%d", m.Index, m.Scale)
		}
		fmt.Fprintf(&s, "+%#x] %s\n", m.Displacement, m.Size)
	}

	fmt.Fprintf(&s, "flags  read=%s modified=%s\n", ai.RflagsRead, ai.RflagsModified())
	fmt.Fprintf(&s, "flow   %s", ai.Flow)

	return s.String()
}
