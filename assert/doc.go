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

// Package assert contains debugging checks that are compiled in only when the
// "assertions" build tag is specified. Violations of a contract between the
// emulation and its host panic immediately in such builds.
//
//	go test -tags=assertions ./...
package assert
