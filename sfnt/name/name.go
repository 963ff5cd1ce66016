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

// Package name reads and writes OpenType "name" tables.
// These tables contain localized strings associated with a font.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name
package name

import (
	"errors"
	"sort"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
)

// ID identifies one of the pre-defined naming slots of the "name"
// table.
type ID uint16

// Naming slots defined by the OpenType specification.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#name-ids
const (
	Copyright ID = iota
	Family
	Subfamily
	Identifier
	FullName
	Version
	PostScriptName
	Trademark
	Manufacturer
	Designer
	Description
)

// A Record is a single decoded entry of the "name" table.
type Record struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     ID
	Value      string
}

// Info contains the decoded records of a "name" table, in table
// order.  Records using platforms or encodings this package cannot
// decode are omitted.
type Info struct {
	Records []Record
}

// Decode extracts information from the binary "name" table.
func Decode(data []byte) (*Info, error) {
	if len(data) < 6 {
		return nil, errMalformedNames
	}
	version := uint16(data[0])<<8 | uint16(data[1])
	numRec := int(data[2])<<8 | int(data[3])
	storageOffset := int(data[4])<<8 | int(data[5])

	if version > 1 {
		// almost all fonts in the wild use version 0 of the table
		return nil, errMalformedNames
	}

	recBase := 6
	endOfHeader := recBase + 12*numRec
	if endOfHeader > len(data) {
		return nil, errMalformedNames
	}

	numLang := 0
	if version > 0 {
		if endOfHeader+2 > len(data) {
			return nil, errMalformedNames
		}
		numLang = int(data[endOfHeader])<<8 | int(data[endOfHeader+1])
		endOfHeader += 2 + numLang*4
	}
	if storageOffset < endOfHeader || storageOffset > len(data) {
		return nil, errMalformedNames
	}

	info := &Info{}
	for i := 0; i < numRec; i++ {
		pos := recBase + i*12
		rec := Record{
			PlatformID: uint16(data[pos])<<8 | uint16(data[pos+1]),
			EncodingID: uint16(data[pos+2])<<8 | uint16(data[pos+3]),
			LanguageID: uint16(data[pos+4])<<8 | uint16(data[pos+5]),
			NameID:     ID(data[pos+6])<<8 | ID(data[pos+7]),
		}
		nameLen := int(data[pos+8])<<8 | int(data[pos+9])
		nameOffset := int(data[pos+10])<<8 | int(data[pos+11])

		if storageOffset+nameOffset+nameLen > len(data) {
			return nil, errMalformedNames
		}
		nameBytes := data[storageOffset+nameOffset : storageOffset+nameOffset+nameLen]

		// We ignore encodings we don't understand.
		switch {
		case rec.PlatformID == 0: // Unicode
			rec.Value = utf16Decode(nameBytes)
		case rec.PlatformID == 1 && rec.EncodingID == 0: // Macintosh, Roman
			rec.Value = macDecode(nameBytes)
		case rec.PlatformID == 3 && (rec.EncodingID == 0 || rec.EncodingID == 1 || rec.EncodingID == 10): // Windows
			rec.Value = utf16Decode(nameBytes)
		default:
			continue
		}
		info.Records = append(info.Records, rec)
	}

	return info, nil
}

// Get returns the value of the given naming slot, or "" if the slot
// is absent.  Windows US-English records are preferred, followed by
// any Windows record, Unicode records, Macintosh English records, and
// finally any record carrying the slot.
func (info *Info) Get(id ID) string {
	prefs := []func(*Record) bool{
		func(r *Record) bool { return r.PlatformID == 3 && r.LanguageID == 0x0409 },
		func(r *Record) bool { return r.PlatformID == 3 },
		func(r *Record) bool { return r.PlatformID == 0 },
		func(r *Record) bool { return r.PlatformID == 1 && r.LanguageID == 0 },
		func(r *Record) bool { return true },
	}
	for _, match := range prefs {
		for i := range info.Records {
			rec := &info.Records[i]
			if rec.NameID == id && match(rec) {
				return rec.Value
			}
		}
	}
	return ""
}

// FullName returns the human-readable complete display name of the
// typeface (naming slot 4), or "" if the font does not declare one.
func (info *Info) FullName() string {
	return info.Get(FullName)
}

// Encode converts the records into the binary form of a version 0
// "name" table.  Values are encoded as UTF-16 for the Unicode and
// Windows platforms and as MacRoman for the Macintosh platform;
// records for other platforms are skipped.
func (info *Info) Encode() []byte {
	type recInfo struct {
		PlatformID uint16
		EncodingID uint16
		LanguageID uint16
		NameID     uint16
		offset     uint16
		length     uint16
	}
	var records []*recInfo

	b := newNameBuilder()
	for i := range info.Records {
		rec := &info.Records[i]
		var enc []byte
		switch rec.PlatformID {
		case 0, 3:
			enc = utf16Encode(rec.Value)
		case 1:
			enc = macEncode(rec.Value)
		default:
			continue
		}
		offset, length := b.Add(enc)
		records = append(records, &recInfo{
			PlatformID: rec.PlatformID,
			EncodingID: rec.EncodingID,
			LanguageID: rec.LanguageID,
			NameID:     uint16(rec.NameID),
			offset:     offset,
			length:     length,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].PlatformID != records[j].PlatformID {
			return records[i].PlatformID < records[j].PlatformID
		}
		if records[i].EncodingID != records[j].EncodingID {
			return records[i].EncodingID < records[j].EncodingID
		}
		if records[i].LanguageID != records[j].LanguageID {
			return records[i].LanguageID < records[j].LanguageID
		}
		return records[i].NameID < records[j].NameID
	})

	numRec := len(records)
	startOfRecords := 6
	startOfStrings := startOfRecords + numRec*12
	res := make([]byte, startOfStrings+len(b.data))

	res[2] = byte(numRec >> 8)
	res[3] = byte(numRec)
	res[4] = byte(startOfStrings >> 8)
	res[5] = byte(startOfStrings)
	for i := 0; i < numRec; i++ {
		rec := records[i]
		base := startOfRecords + i*12
		res[base] = byte(rec.PlatformID >> 8)
		res[base+1] = byte(rec.PlatformID)
		res[base+2] = byte(rec.EncodingID >> 8)
		res[base+3] = byte(rec.EncodingID)
		res[base+4] = byte(rec.LanguageID >> 8)
		res[base+5] = byte(rec.LanguageID)
		res[base+6] = byte(rec.NameID >> 8)
		res[base+7] = byte(rec.NameID)
		res[base+8] = byte(rec.length >> 8)
		res[base+9] = byte(rec.length)
		res[base+10] = byte(rec.offset >> 8)
		res[base+11] = byte(rec.offset)
	}
	copy(res[startOfStrings:], b.data)

	return res
}

type nameBuilder struct {
	data []byte
	idx  map[string]uint16
}

func newNameBuilder() *nameBuilder {
	return &nameBuilder{
		idx: make(map[string]uint16),
	}
}

func (nb *nameBuilder) Add(b []byte) (offs, length uint16) {
	key := string(b)
	if idx, ok := nb.idx[key]; ok {
		return idx, uint16(len(b))
	}
	idx := uint16(len(nb.data))
	nb.idx[key] = idx
	nb.data = append(nb.data, b...)
	return idx, uint16(len(b))
}

func utf16Encode(s string) []byte {
	rr := utf16.Encode([]rune(s))
	res := make([]byte, len(rr)*2)
	for i, r := range rr {
		res[i*2] = byte(r >> 8)
		res[i*2+1] = byte(r)
	}
	return res
}

func utf16Decode(buf []byte) string {
	var nameWords []uint16
	for i := 0; i+1 < len(buf); i += 2 {
		nameWords = append(nameWords, uint16(buf[i])<<8|uint16(buf[i+1]))
	}
	return string(utf16.Decode(nameWords))
}

func macDecode(buf []byte) string {
	rr := make([]rune, len(buf))
	for i, c := range buf {
		rr[i] = charmap.Macintosh.DecodeByte(c)
	}
	return string(rr)
}

func macEncode(s string) []byte {
	var res []byte
	for _, r := range s {
		c, ok := charmap.Macintosh.EncodeRune(r)
		if !ok {
			c = '?'
		}
		res = append(res, c)
	}
	return res
}

var errMalformedNames = errors.New("sfnt/name: malformed name table")
