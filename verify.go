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
	"os"

	"golang.org/x/image/font/sfnt"
)

// verifyFontFile checks that the named file parses as a standalone
// font and reports the expected full name.  The check uses an
// independent sfnt implementation so that a bug in this package's
// writer cannot mask itself.
func verifyFontFile(path, wantName string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	fnt, err := sfnt.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	gotName, err := fnt.Name(nil, sfnt.NameIDFull)
	if err == sfnt.ErrNotFound {
		gotName = ""
	} else if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if gotName != wantName {
		return fmt.Errorf("%s: full name is %q, expected %q",
			path, gotName, wantName)
	}
	return nil
}
