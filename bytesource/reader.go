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

import (
	"bufio"
	"errors"
	"io"

	"github.com/jetsetilly/gopherx86/curated"
)

// Reader is a Source that reads from an io.Reader. The reader is buffered.
type Reader struct {
	r   *bufio.Reader
	err error
}

// NewReader is the preferred method of initialisation for the Reader type.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next implements the Source interface. An error from the underlying reader
// ends the stream. The error can be retrieved with Err().
func (rd *Reader) Next() (uint8, bool) {
	if rd.err != nil {
		return 0, false
	}

	b, err := rd.r.ReadByte()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			rd.err = curated.Errorf(ReadError, err)
		}
		return 0, false
	}

	return b, true
}

// Err returns the error that ended the stream. Returns nil if the stream
// ended normally or has not ended.
func (rd *Reader) Err() error {
	return rd.err
}
