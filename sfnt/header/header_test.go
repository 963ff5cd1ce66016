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

package header

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteRead(t *testing.T) {
	tables := map[string][]byte{
		"head": make([]byte, 54),
		"maxp": {0x00, 0x00, 0x50, 0x00, 0x01, 0x23},
		"name": {1, 2, 3, 4, 5, 6, 7}, // odd length, forces padding
		"glyf": {},
		"junk": nil, // must not be written
	}

	buf := &bytes.Buffer{}
	n, err := Write(buf, ScalerTypeTrueType, tables)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("reported size %d, wrote %d bytes", n, buf.Len())
	}
	if buf.Len()%4 != 0 {
		t.Errorf("file size %d is not a multiple of 4", buf.Len())
	}

	h, err := Read(bytes.NewReader(buf.Bytes()), 0)
	if err != nil {
		t.Fatal(err)
	}
	if h.ScalerType != ScalerTypeTrueType {
		t.Errorf("scaler type 0x%08x, expected 0x%08x",
			h.ScalerType, ScalerTypeTrueType)
	}

	lengths := make(map[string]uint32)
	for name, rec := range h.Toc {
		lengths[name] = rec.Length
	}
	expected := map[string]uint32{
		"head": 54,
		"maxp": 6,
		"name": 7,
		"glyf": 0,
	}
	if d := cmp.Diff(lengths, expected); d != "" {
		t.Errorf("wrong table lengths (-got +want):\n%s", d)
	}

	for name, body := range tables {
		if body == nil {
			continue
		}
		got, err := h.ReadTableBytes(bytes.NewReader(buf.Bytes()), name)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, body) {
			t.Errorf("table %q changed: got % x, expected % x",
				name, got, body)
		}
	}
}

// TestHeadChecksum verifies that after writing, the checksum of the
// complete file, using the checksumAdjustment patched into the "head"
// table, comes out as the magic constant from the OpenType spec.
func TestHeadChecksum(t *testing.T) {
	tables := map[string][]byte{
		"head": make([]byte, 54),
		"cvt ": {0, 1, 2, 3, 4, 5, 6, 7},
	}
	buf := &bytes.Buffer{}
	_, err := Write(buf, ScalerTypeTrueType, tables)
	if err != nil {
		t.Fatal(err)
	}

	body := buf.Bytes()
	h, err := Read(bytes.NewReader(body), 0)
	if err != nil {
		t.Fatal(err)
	}
	headRec, err := h.Find("head")
	if err != nil {
		t.Fatal(err)
	}
	adjustment := binary.BigEndian.Uint32(body[headRec.Offset+8 : headRec.Offset+12])

	binary.BigEndian.PutUint32(body[headRec.Offset+8:headRec.Offset+12], 0)
	if got := checksum(body) + adjustment; got != 0xB1B0AFBA {
		t.Errorf("file checksum 0x%08x, expected 0xB1B0AFBA", got)
	}
}

func TestChecksum(t *testing.T) {
	cases := []struct {
		in  []byte
		out uint32
	}{
		{nil, 0},
		{[]byte{0, 0, 0, 1}, 1},
		{[]byte{0, 0, 0, 1, 0, 0, 0, 2}, 3},
		{[]byte{0x80, 0, 0, 0, 0x80, 0, 0, 1}, 1}, // overflow wraps
		{[]byte{1}, 0x01000000},                   // zero-padded tail
		{[]byte{0, 0, 0, 1, 2}, 0x02000001},
	}
	for i, test := range cases {
		if got := checksum(test.in); got != test.out {
			t.Errorf("%d: checksum(% x) = 0x%08x, expected 0x%08x",
				i, test.in, got, test.out)
		}
	}
}

func TestReadInvalid(t *testing.T) {
	// wrong scaler type
	data := make([]byte, 12)
	binary.BigEndian.PutUint32(data[0:4], 0xDEADBEEF)
	_, err := Read(bytes.NewReader(data), 0)
	if !IsUnsupported(err) {
		t.Errorf("expected NotSupportedError, got %v", err)
	}

	// overlapping tables
	buf := &bytes.Buffer{}
	_, err = Write(buf, ScalerTypeTrueType, map[string][]byte{
		"aaaa": {1, 2, 3, 4},
		"bbbb": {5, 6, 7, 8},
	})
	if err != nil {
		t.Fatal(err)
	}
	body := buf.Bytes()
	// make the second table point into the first
	copy(body[12+16+8:], body[12+8:12+12])
	_, err = Read(bytes.NewReader(body), 0)
	var invalid *InvalidFontError
	if !errors.As(err, &invalid) {
		t.Errorf("expected InvalidFontError, got %v", err)
	}
}

func TestCollectionOffsets(t *testing.T) {
	data := make([]byte, 12+8)
	binary.BigEndian.PutUint32(data[0:4], ScalerTypeCollection)
	binary.BigEndian.PutUint32(data[4:8], 0x00020000)
	binary.BigEndian.PutUint32(data[8:12], 2)
	binary.BigEndian.PutUint32(data[12:16], 20)
	binary.BigEndian.PutUint32(data[16:20], 0x1234)

	offsets, err := CollectionOffsets(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(offsets, []uint32{20, 0x1234}); d != "" {
		t.Errorf("wrong offsets (-got +want):\n%s", d)
	}

	// a standalone font is not a collection
	binary.BigEndian.PutUint32(data[0:4], ScalerTypeTrueType)
	_, err = CollectionOffsets(bytes.NewReader(data))
	if !IsUnsupported(err) {
		t.Errorf("expected NotSupportedError, got %v", err)
	}
}

func TestMissingTable(t *testing.T) {
	h := &Header{Toc: map[string]Record{"head": {Offset: 12, Length: 4}}}
	_, err := h.Find("name")
	if !IsMissing(err) {
		t.Errorf("expected ErrNoTable, got %v", err)
	}
	if IsMissing(nil) {
		t.Error("IsMissing(nil) is true")
	}
}
