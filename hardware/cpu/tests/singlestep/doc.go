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

// Package singlestep contains Z80 single-step tests as created/maintained by
// Thom Harte and the SingleStepTests project.
//
// https://github.com/SingleStepTests/z80
//
// The tests are large and are not included as part of the repository. Add
// the instructions you want to test from the v1 directory on Github to the v1
// directory in this package. The test is skipped if there are no test files.
//
// Each test sets up the registers and memory, executes a single instruction
// and compares the result with the final state given by the test. The number
// of T-states taken by the instruction is compared with the number of cycles
// listed by the test. The Q register and the EI/P latches are not compared.
package singlestep
