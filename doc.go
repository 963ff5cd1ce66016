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

// Package ttcsplit extracts the member fonts of TrueType collections
// (.ttc files) into standalone font files.
//
// A TrueType collection bundles several font programs which share
// common glyph data.  ExtractAll writes every member out as an
// individually usable font file, named after the collection's base
// filename and the member's full name from its "name" table.  For
// example, splitting PingFang.ttc produces
//
//	PingFang.ttc#PingFang SC.ttf
//	PingFang.ttc#PingFang TC.ttf
//
// Table data is copied byte for byte; only the table directory and
// the checksum in the "head" table are rebuilt.  Pack provides the
// inverse operation, assembling standalone fonts into a collection
// without table sharing.
package ttcsplit
