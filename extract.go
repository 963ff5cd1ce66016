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
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Options control the behavior of ExtractAll.
type Options struct {
	// Dir is the directory the extracted fonts are written to.
	// The empty string means the current working directory.
	Dir string

	// Unique appends the member index to the output filename when two
	// members of the same collection derive the same name.  Without
	// this, the later member silently overwrites the earlier one.
	Unique bool

	// Check re-parses every written file and verifies that it is a
	// structurally valid standalone font carrying the expected full
	// name.
	Check bool

	// Log receives one confirmation line per extracted font.
	// A nil Log discards the lines.
	Log io.Writer
}

// A Result describes one extracted member font.
type Result struct {
	Index    int
	FullName string
	Path     string
}

// ExtractAll writes every member of the font collection stored in
// fname to a standalone font file named
//
//	<basename>#<full name>.ttf
//
// where basename is the final path component of fname, extension
// included, and the full name is read from the member's "name" table
// (naming slot 4, possibly empty).  The ".ttf" suffix is used
// regardless of the member's actual flavor.
//
// Extraction stops at the first error; files written before the
// failure are left in place.
func ExtractAll(fname string, opt *Options) ([]Result, error) {
	if opt == nil {
		opt = &Options{}
	}
	logw := opt.Log
	if logw == nil {
		logw = io.Discard
	}

	coll, err := Open(fname)
	if err != nil {
		return nil, err
	}
	defer coll.Close()

	basename := filepath.Base(fname)
	seen := make(map[string]bool)
	var results []Result
	for i := 0; i < coll.NumFonts(); i++ {
		fnt := coll.Font(i)

		fullName, err := fnt.FullName()
		if err != nil {
			return results, fmt.Errorf("%s: font %d: %w", fname, i, err)
		}

		outName := basename + "#" + fullName + ".ttf"
		if opt.Unique && seen[outName] {
			outName = fmt.Sprintf("%s#%s.%d.ttf", basename, fullName, i)
		}
		seen[outName] = true

		outPath := filepath.Join(opt.Dir, outName)
		if err := writeFontFile(fnt, outPath); err != nil {
			return results, fmt.Errorf("%s: font %d: %w", fname, i, err)
		}
		if opt.Check {
			if err := verifyFontFile(outPath, fullName); err != nil {
				return results, err
			}
		}

		fmt.Fprintf(logw, "%s saved as %s\n", fullName, outName)
		results = append(results, Result{
			Index:    i,
			FullName: fullName,
			Path:     outPath,
		})
	}
	return results, nil
}

func writeFontFile(fnt *Font, path string) error {
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := fnt.Write(fd); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
