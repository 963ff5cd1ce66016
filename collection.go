// ttcsplit - split TrueType collections into standalone font files
// Copyright (C) 2026  Jonas Tamm <jonas@typekern.dev>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ttcsplit

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/typekern/ttcsplit/sfnt/header"
)

// Collection is an opened font container: either a TrueType
// collection, or a standalone font treated as a collection with a
// single member.  Member fonts are exposed in container order.
type Collection struct {
	fonts  []*Font
	closer io.Closer
}

// Open opens the font collection stored in the named file.
// The Close method must be called once the collection is no longer
// used.
func Open(fname string) (*Collection, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	coll, err := New(fd)
	if err != nil {
		fd.Close()
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	coll.closer = fd
	return coll, nil
}

// New reads a font collection from r.  The reader must stay valid for
// the lifetime of the collection; table data is read lazily.  Closing
// a collection obtained from New is a no-op.
func New(r io.ReaderAt) (*Collection, error) {
	var buf [4]byte
	if _, err := r.ReadAt(buf[:], 0); err != nil {
		return nil, err
	}

	var dirOffsets []uint32
	if binary.BigEndian.Uint32(buf[:]) == header.ScalerTypeCollection {
		var err error
		dirOffsets, err = header.CollectionOffsets(r)
		if err != nil {
			return nil, err
		}
	} else {
		// a standalone font is a collection with one member
		dirOffsets = []uint32{0}
	}

	fonts := make([]*Font, len(dirOffsets))
	for i, offs := range dirOffsets {
		h, err := header.Read(r, int64(offs))
		if err != nil {
			return nil, fmt.Errorf("font %d: %w", i, err)
		}
		fonts[i] = &Font{r: r, Header: h}
	}
	return &Collection{fonts: fonts}, nil
}

// NumFonts returns the number of member fonts in the collection.
func (c *Collection) NumFonts() int {
	return len(c.fonts)
}

// Font returns member i of the collection, 0-based, in container
// order.
func (c *Collection) Font(i int) *Font {
	return c.fonts[i]
}

// Close releases the underlying file.  The Collection and all Font
// objects obtained from it cannot be used any more after Close has
// been called.
func (c *Collection) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}
