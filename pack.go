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
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/typekern/ttcsplit/sfnt/header"
)

// Pack writes a version 1.0 TrueType collection containing the given
// standalone fonts, in order.  Identical tables are NOT shared
// between members, so the result can be larger than a collection
// produced by a full-featured font editor.  Each font must be a
// complete standalone sfnt file.
func Pack(w io.Writer, fonts ...[]byte) error {
	n := len(fonts)

	// lay out the members behind the collection header
	offset := 12 + 4*n
	memberOffsets := make([]uint32, n)
	members := make([][]byte, n)
	for i, data := range fonts {
		if _, err := header.Read(bytes.NewReader(data), 0); err != nil {
			return fmt.Errorf("font %d: %w", i, err)
		}

		offset = (offset + 3) &^ 3
		memberOffsets[i] = uint32(offset)

		// Table offsets are relative to the start of the file, so
		// moving the font inside the container shifts every directory
		// entry by the member's base offset.
		buf := make([]byte, len(data))
		copy(buf, data)
		numTables := int(binary.BigEndian.Uint16(buf[4:6]))
		for k := 0; k < numTables; k++ {
			pos := 12 + 16*k + 8
			binary.BigEndian.PutUint32(buf[pos:pos+4],
				binary.BigEndian.Uint32(buf[pos:pos+4])+memberOffsets[i])
		}
		members[i] = buf
		offset += len(buf)
	}

	hdr := make([]byte, 12+4*n)
	binary.BigEndian.PutUint32(hdr[0:4], header.ScalerTypeCollection)
	binary.BigEndian.PutUint32(hdr[4:8], 0x00010000)
	binary.BigEndian.PutUint32(hdr[8:12], uint32(n))
	for i, offs := range memberOffsets {
		binary.BigEndian.PutUint32(hdr[12+4*i:16+4*i], offs)
	}
	if _, err := w.Write(hdr); err != nil {
		return err
	}

	pos := len(hdr)
	var pad [3]byte
	for i, data := range members {
		if k := int(memberOffsets[i]) - pos; k > 0 {
			if _, err := w.Write(pad[:k]); err != nil {
				return err
			}
			pos += k
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
		pos += len(data)
	}
	return nil
}
