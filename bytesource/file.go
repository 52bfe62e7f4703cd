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
	"os"

	"github.com/jetsetilly/gopherx86/curated"
	"github.com/jetsetilly/gopherx86/logger"
)

// File is the contents of a file as a Source.
type File struct {
	*Slice

	filename string
	data     []byte
	mapped   bool
}

// OpenFile opens the named file. The file is memory mapped if the platform
// supports it. An empty file is a valid File with no bytes.
func OpenFile(perm logger.Permission, filename string) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(FileError, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, curated.Errorf(FileError, err)
	}

	fl := &File{filename: filename}

	if st.Size() > 0 {
		fl.data, fl.mapped, err = mapFile(f, st.Size())
		if err != nil {
			return nil, curated.Errorf(FileError, err)
		}
	}

	if fl.mapped {
		logger.Logf(perm, "bytesource", "%s: mapped %d bytes", filename, len(fl.data))
	} else {
		logger.Logf(perm, "bytesource", "%s: read %d bytes", filename, len(fl.data))
	}

	fl.Slice = NewSlice(fl.data)

	return fl, nil
}

// Filename returns the name of the file.
func (fl *File) Filename() string {
	return fl.filename
}

// Bytes returns the contents of the file. The slice is not valid after
// Close() has been called.
func (fl *File) Bytes() []byte {
	return fl.data
}

// Mapped returns true if the file is memory mapped.
func (fl *File) Mapped() bool {
	return fl.mapped
}

// Close releases the file contents. The File must not be used after Close()
// has been called.
func (fl *File) Close() error {
	var err error
	if fl.mapped {
		err = unmapFile(fl.data)
	}
	fl.data = nil
	fl.mapped = false
	fl.Slice = NewSlice(nil)
	if err != nil {
		return curated.Errorf(FileError, err)
	}
	return nil
}

// read the whole file. used when mapping is not possible
func readFile(f *os.File, size int64) ([]byte, error) {
	data := make([]byte, size)
	n, err := f.ReadAt(data, 0)
	if err != nil && int64(n) != size {
		return nil, err
	}
	return data[:n], nil
}
