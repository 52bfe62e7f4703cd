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


package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherx86/test"
)

func TestBuildInfo(t *testing.T) {
	v, r := fromBuildInfo(nil, false)
	test.ExpectEquality(t, v, "local")
	test.ExpectEquality(t, r, "no revision information")

	info := &debug.BuildInfo{
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abcdef"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	v, r = fromBuildInfo(info, true)
	test.ExpectEquality(t, v, "unreleased")
	test.ExpectEquality(t, r, "abcdef+dirty")

	info.Settings[2].Value = "false"
	_, r = fromBuildInfo(info, true)
	test.ExpectEquality(t, r, "abcdef")
}

func TestDescribe(t *testing.T) {
	test.ExpectSuccess(t, strings.HasPrefix(Describe(), ApplicationName))
}
