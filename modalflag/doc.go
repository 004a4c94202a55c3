// This file is part of Gopherz80.
//
// Gopherz80 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherz80 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherz80.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Instead of defining flags globally, flags are added to an
// instance of the Modes type. Arguments are supplied with NewArgs() and
// parsed with the Parse() function.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	log := md.AddBool("log", false, "echo log to stderr")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Printf("* %s\n", err)
//		os.Exit(10)
//	}
//
// Sub-modes are added with AddSubModes(). The first sub-mode is the default
// and is selected when the first non-flag argument does not name a mode. Once
// a mode has been selected NewMode() prepares the Modes instance for the flags
// of that mode.
//
//	md.AddSubModes("RUN", "MONITOR")
//	p, err := md.Parse()
//	...
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		variant := md.AddString("variant", "NMOS", "CPU variant")
//		p, err := md.Parse()
//		...
//	}
//
// Sub-mode names are case insensitive and Mode() always returns the upper
// case form. Path() returns all modes selected so far, separated by a slash.
//
// Help is requested with the -help flag. The help message lists the flags of
// the current mode and any sub-modes, followed by the text supplied to
// AdditionalHelp().
package modalflag
