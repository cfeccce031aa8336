// This file is part of Gopher16.
//
// Gopher16 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher16 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher16.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect* functions report a failure with t.Errorf() and allow the test
// to continue. The Demand* functions report with t.Fatalf() and should be
// used when the value being tested is required by the rest of the test. For
// example, testing the length of a slice before indexing into it.
//
// Success and failure depend on the type of the value being tested:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> success
//
// The Writer type implements io.Writer and can be used to capture output.
package test
