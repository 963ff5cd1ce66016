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

// Package header reads and writes the file headers of sfnt font files,
// both standalone fonts and TrueType collections.
// https://docs.microsoft.com/en-us/typography/opentype/spec/otff
package header

import (
	"fmt"
	"io"
	"sort"
)

// Scaler types understood by this package.
const (
	ScalerTypeTrueType   = 0x00010000
	ScalerTypeCFF        = 0x4F54544F // "OTTO"
	ScalerTypeApple      = 0x74727565 // "true"
	ScalerTypeCollection = 0x74746366 // "ttcf"
)

// Header describes the table directory of one sfnt font.
// All offsets are relative to the start of the containing file,
// not to the start of the directory.
type Header struct {
	ScalerType uint32
	Toc        map[string]Record
}

// Record gives the location of a single table within a font file.
type Record struct {
	Offset uint32
	Length uint32
}

// Read reads the table directory of a font at the given offset within
// the file.  For a standalone font base is 0; for a member of a
// TrueType collection, base is one of the offsets returned by
// [CollectionOffsets].
//
// Tables with tags which are not printable ASCII are ignored.  Unlike
// a whitelist-based reader, all well-formed tables are kept, so that a
// font written back out via [Write] does not lose data.
func Read(r io.ReaderAt, base int64) (*Header, error) {
	var buf [16]byte
	_, err := r.ReadAt(buf[:6], base)
	if err != nil {
		return nil, err
	}
	scalerType := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	numTables := int(buf[4])<<8 | int(buf[5])

	if scalerType != ScalerTypeTrueType &&
		scalerType != ScalerTypeCFF &&
		scalerType != ScalerTypeApple {
		return nil, &NotSupportedError{
			SubSystem: "sfnt/header",
			Feature:   fmt.Sprintf("scaler type 0x%08x", scalerType),
		}
	}
	if numTables > 512 {
		// the largest value observed in fonts in the wild is well below 100
		return nil, &InvalidFontError{
			SubSystem: "sfnt/header",
			Reason:    "too many tables",
		}
	}

	h := &Header{
		ScalerType: scalerType,
		Toc:        make(map[string]Record, numTables),
	}
	type alloc struct {
		Start uint32
		End   uint32
	}
	var coverage []alloc
	for i := 0; i < numTables; i++ {
		_, err := r.ReadAt(buf[:], base+int64(12+i*16))
		if err != nil {
			return nil, err
		}
		name := string(buf[:4])
		offset := uint32(buf[8])<<24 | uint32(buf[9])<<16 | uint32(buf[10])<<8 | uint32(buf[11])
		length := uint32(buf[12])<<24 | uint32(buf[13])<<16 | uint32(buf[14])<<8 | uint32(buf[15])
		if !isASCII(name) {
			continue
		}
		if offset+length < offset {
			return nil, &InvalidFontError{
				SubSystem: "sfnt/header",
				Reason:    "invalid table offset",
			}
		}
		h.Toc[name] = Record{
			Offset: offset,
			Length: length,
		}
		coverage = append(coverage, alloc{
			Start: offset,
			End:   offset + length,
		})
	}
	if len(h.Toc) == 0 {
		return nil, &InvalidFontError{
			SubSystem: "sfnt/header",
			Reason:    "no tables found",
		}
	}

	// perform some sanity checks
	sort.Slice(coverage, func(i, j int) bool {
		if coverage[i].Start != coverage[j].Start {
			return coverage[i].Start < coverage[j].Start
		}
		return coverage[i].End < coverage[j].End
	})
	if coverage[0].Start < 12 {
		return nil, &InvalidFontError{
			SubSystem: "sfnt/header",
			Reason:    "invalid table offset",
		}
	}
	for i := 1; i < len(coverage); i++ {
		if coverage[i-1].End > coverage[i].Start {
			return nil, &InvalidFontError{
				SubSystem: "sfnt/header",
				Reason:    "overlapping tables",
			}
		}
	}
	_, err = r.ReadAt(buf[:1], int64(coverage[len(coverage)-1].End)-1)
	if err == io.EOF {
		return nil, &InvalidFontError{
			SubSystem: "sfnt/header",
			Reason:    "table extends beyond end of file",
		}
	} else if err != nil {
		return nil, err
	}

	return h, nil
}

// CollectionOffsets reads the header of a TrueType collection and
// returns the file offsets of the table directories of all member
// fonts, in container order.  Versions 1.0 and 2.0 of the collection
// header are supported; the digital-signature fields of version 2.0
// are ignored.
func CollectionOffsets(r io.ReaderAt) ([]uint32, error) {
	var buf [12]byte
	_, err := r.ReadAt(buf[:], 0)
	if err != nil {
		return nil, err
	}
	tag := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	if tag != ScalerTypeCollection {
		return nil, &NotSupportedError{
			SubSystem: "sfnt/header",
			Feature:   fmt.Sprintf("collection tag 0x%08x", tag),
		}
	}
	version := uint32(buf[4])<<24 | uint32(buf[5])<<16 | uint32(buf[6])<<8 | uint32(buf[7])
	if version != 0x00010000 && version != 0x00020000 {
		return nil, &NotSupportedError{
			SubSystem: "sfnt/header",
			Feature:   fmt.Sprintf("collection version 0x%08x", version),
		}
	}
	numFonts := int(buf[8])<<24 | int(buf[9])<<16 | int(buf[10])<<8 | int(buf[11])
	if numFonts > 1024 {
		return nil, &InvalidFontError{
			SubSystem: "sfnt/header",
			Reason:    "too many member fonts",
		}
	}

	offsets := make([]uint32, numFonts)
	var obuf [4]byte
	for i := range offsets {
		_, err := r.ReadAt(obuf[:], int64(12+4*i))
		if err != nil {
			return nil, err
		}
		offsets[i] = uint32(obuf[0])<<24 | uint32(obuf[1])<<16 | uint32(obuf[2])<<8 | uint32(obuf[3])
	}
	return offsets, nil
}

// Has returns true if all the given tables are present in the font.
func (h *Header) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := h.Toc[name]; !ok {
			return false
		}
	}
	return true
}

// Find locates a table in the table directory.
func (h *Header) Find(tableName string) (Record, error) {
	rec, ok := h.Toc[tableName]
	if !ok {
		return rec, &ErrNoTable{Name: tableName}
	}
	return rec, nil
}

// ReadTableBytes returns the body of the named table.
func (h *Header) ReadTableBytes(r io.ReaderAt, tableName string) ([]byte, error) {
	rec, err := h.Find(tableName)
	if err != nil {
		return nil, err
	}
	res := make([]byte, rec.Length)
	n, err := r.ReadAt(res, int64(rec.Offset))
	if n < len(res) && err != nil {
		return nil, err
	}
	return res[:n], nil
}

func isASCII(name string) bool {
	if len(name) != 4 {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < 0x20 || name[i] > 0x7E {
			return false
		}
	}
	return true
}
