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

package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identifier for a goroutine. It returns a result
// that is different between goroutines and consistent for a given goroutine.
// It should only ever be used for debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that first claims it and reports whether later
// claims come from the same goroutine. The zero value is ready to use.
type Owner struct {
	id uint64
}

// Claim returns false if the calling goroutine is not the goroutine that
// made the first claim. Claim does nothing unless assertions are enabled.
func (o *Owner) Claim() bool {
	if !Enabled {
		return true
	}
	id := GetGoRoutineID()
	if o.id == 0 {
		o.id = id
		return true
	}
	return o.id == id
}
