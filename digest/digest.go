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

// Package digest is used to create a fingerprint of the emulation. The
// fingerprint can be used to check that a change to the CPU has not altered
// the observable behaviour of a program.
//
// The Bus type sits between the CPU and the real bus and chains the SHA-1
// value of every partial cycle. Two runs of the same program will produce the
// same Hash() if, and only if, the sequence of bus transactions is the same.
package digest

// Digest implementations compute a hash of the emulation.
type Digest interface {
	Hash() string
	ResetDigest()
}
