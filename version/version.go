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

package version

import (
	"runtime/debug"
	"sync"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopherz80"

// number is set by the linker for release builds:
//
//	go build -ldflags "-X github.com/jetsetilly/gopherz80/version.number=v0.1.0"
var number string

var build struct {
	once     sync.Once
	version  string
	revision string
}

// read the vcs settings embedded by the go tool.
func readBuildInfo() {
	build.revision = "no revision information"

	var vcs bool
	var modified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				build.revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if vcs && modified {
		build.revision += "+dirty"
	}

	switch {
	case number != "":
		build.version = number
	case vcs:
		build.version = "unreleased"
	default:
		build.version = "local"
	}
}

// Version returns the version string, the revision string and whether this
// is a numbered release.
//
// The version string is "unreleased" if the program was built from a
// repository without a version number. It is "local" if there is no version
// control information at all, which is the case with "go run".
//
// The revision string is suffixed with "+dirty" if the source has been
// modified since the last commit.
func Version() (string, string, bool) {
	build.once.Do(readBuildInfo)
	return build.version, build.revision, number != "" && build.version == number
}
