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

// Package functional_test runs the ZEXDOC instruction exerciser by Frank
// Cringle, as updated by J.G. Harston. The exerciser is a CP/M program and is
// run with the hardware.Machine type, which provides the two BDOS functions
// it uses.
//
// The binary is not included in the repository. Copy zexdoc.com to the
// directory of this package to run the test. The test takes several minutes
// and is skipped when the -short flag is given to go test.
//
// ZEXDOC does not test the undocumented flags. ZEXALL, which does, can be run
// by copying zexall.com to the same directory.
package functional_test
