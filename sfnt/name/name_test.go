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

package name

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRoundTrip(t *testing.T) {
	// records are listed in the order Encode stores them, so that
	// Decode gives back the identical slice
	info := &Info{
		Records: []Record{
			{1, 0, 0, Family, "Café"},
			{1, 0, 0, FullName, "Café Regular"},
			{3, 1, 0x0409, Family, "Café"},
			{3, 1, 0x0409, FullName, "Café Regular"},
			{3, 1, 0x0411, FullName, "カフェ"},
		},
	}

	got, err := Decode(info.Encode())
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(got, info); d != "" {
		t.Errorf("round trip failed (-got +want):\n%s", d)
	}
}

func TestGet(t *testing.T) {
	info := &Info{
		Records: []Record{
			{1, 0, 0, FullName, "Mac English"},
			{3, 1, 0x0411, FullName, "Windows Japanese"},
		},
	}
	if got := info.Get(FullName); got != "Windows Japanese" {
		t.Errorf("Get(FullName) = %q, expected any Windows record", got)
	}

	info.Records = append(info.Records,
		Record{3, 1, 0x0409, FullName, "Windows US"})
	if got := info.Get(FullName); got != "Windows US" {
		t.Errorf("Get(FullName) = %q, expected the US-English record", got)
	}

	if got := info.Get(Designer); got != "" {
		t.Errorf("Get(Designer) = %q, expected \"\"", got)
	}
	if got := info.FullName(); got != "Windows US" {
		t.Errorf("FullName() = %q", got)
	}
}

func TestDecodeSkipsUnknown(t *testing.T) {
	info := &Info{
		Records: []Record{
			{1, 1, 11, FullName, "Mac Japanese"}, // encoding we cannot decode
			{3, 1, 0x0409, FullName, "Keep Me"},
		},
	}
	got, err := Decode(info.Encode())
	if err != nil {
		t.Fatal(err)
	}
	expected := []Record{{3, 1, 0x0409, FullName, "Keep Me"}}
	if d := cmp.Diff(got.Records, expected); d != "" {
		t.Errorf("wrong records (-got +want):\n%s", d)
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := [][]byte{
		nil,
		{0, 0},
		{0, 0, 0, 1, 0, 6},       // one record, but no record data
		{0, 0, 0, 0, 0, 2},       // storage starts inside the header
		{0, 2, 0, 0, 0, 6},       // version 2 does not exist
		{0, 0, 0, 0, 0xFF, 0xFF}, // storage beyond end of data
	}
	for i, in := range cases {
		if _, err := Decode(in); err == nil {
			t.Errorf("%d: expected error for % x", i, in)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	info, err := Decode((&Info{}).Encode())
	if err != nil {
		t.Fatal(err)
	}
	if len(info.Records) != 0 {
		t.Errorf("expected no records, got %v", info.Records)
	}
	if got := info.FullName(); got != "" {
		t.Errorf("FullName() = %q, expected \"\"", got)
	}
}
