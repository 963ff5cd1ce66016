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
	"io"

	"github.com/typekern/ttcsplit/sfnt/header"
	"github.com/typekern/ttcsplit/sfnt/name"
)

// Font is one member typeface of a collection.  It stays valid only
// as long as the Collection it was obtained from is open.
type Font struct {
	r      io.ReaderAt
	Header *header.Header
}

// Names returns the decoded "name" table of the font.
func (f *Font) Names() (*name.Info, error) {
	data, err := f.Header.ReadTableBytes(f.r, "name")
	if err != nil {
		return nil, err
	}
	return name.Decode(data)
}

// FullName returns the font's human-readable complete display name
// (naming slot 4).  The result is "" if the font has no "name" table
// or does not fill the slot.
func (f *Font) FullName() (string, error) {
	info, err := f.Names()
	if err != nil {
		if header.IsMissing(err) {
			return "", nil
		}
		return "", err
	}
	return info.FullName(), nil
}

// Tables reads the raw bytes of every table of the font.  For a
// collection member this resolves the shared storage: the returned
// copies are independent of the other members.
func (f *Font) Tables() (map[string][]byte, error) {
	tables := make(map[string][]byte, len(f.Header.Toc))
	for tableName := range f.Header.Toc {
		data, err := f.Header.ReadTableBytes(f.r, tableName)
		if err != nil {
			return nil, err
		}
		tables[tableName] = data
	}
	return tables, nil
}

// Write serializes the font as a standalone sfnt file.  The member's
// scaler type and table data are preserved byte for byte; only the
// table directory and the checksum in the "head" table are
// recomputed.
func (f *Font) Write(w io.Writer) (int64, error) {
	tables, err := f.Tables()
	if err != nil {
		return 0, err
	}
	return header.Write(w, f.Header.ScalerType, tables)
}
