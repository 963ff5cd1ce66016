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

// Command ttcsplit extracts the member fonts of TrueType collections
// into standalone .ttf files:
//
//	ttcsplit PingFang.ttc
//
// writes one file per member, named
// "<collection basename>#<font full name>.ttf", into the current
// directory and prints one confirmation line per font.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/typekern/ttcsplit"
)

func main() {
	outDir := flag.String("dir", ".", "directory the extracted fonts are written to")
	list := flag.Bool("list", false, "list the member fonts without extracting them")
	unique := flag.Bool("unique", false, "append the member index when two fonts derive the same file name")
	check := flag.Bool("check", false, "re-parse every written font and verify its full name")
	packOut := flag.String("pack", "", "assemble the input fonts into a collection at this path")
	quiet := flag.Bool("quiet", false, "suppress the per-font confirmation lines")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Printf("Usage: %s [options] font.ttc ...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *packOut != "" {
		err := packFonts(*packOut, flag.Args())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing collection: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opt := &ttcsplit.Options{
		Dir:    *outDir,
		Unique: *unique,
		Check:  *check,
		Log:    os.Stdout,
	}
	if *quiet {
		opt.Log = io.Discard
	}

	for _, fname := range flag.Args() {
		var err error
		if *list {
			err = listFonts(fname)
		} else {
			_, err = ttcsplit.ExtractAll(fname, opt)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func listFonts(fname string) error {
	coll, err := ttcsplit.Open(fname)
	if err != nil {
		return err
	}
	defer coll.Close()

	for i := 0; i < coll.NumFonts(); i++ {
		fnt := coll.Font(i)
		fullName, err := fnt.FullName()
		if err != nil {
			return err
		}
		fmt.Printf("%3d  0x%08x  %2d tables  %s\n",
			i, fnt.Header.ScalerType, len(fnt.Header.Toc), fullName)
	}
	return nil
}

func packFonts(outName string, fontNames []string) error {
	fonts := make([][]byte, len(fontNames))
	for i, fname := range fontNames {
		data, err := os.ReadFile(fname)
		if err != nil {
			return err
		}
		fonts[i] = data
	}

	out, err := os.Create(outName)
	if err != nil {
		return err
	}
	err = ttcsplit.Pack(out, fonts...)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
