//go:build !(linux || darwin || freebsd || netbsd || openbsd)

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

package bytesource

import "os"

func mapFile(f *os.File, size int64) ([]byte, bool, error) {
	data, err := readFile(f, size)
	return data, false, err
}

func unmapFile(_ []byte) error {
	return nil
}
