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

//go:build !statsview

package statsview

import (
	"errors"
	"io"
)

// ErrUnavailable is returned by Launch() when the statsview build constraint
// is not present.
var ErrUnavailable = errors.New("statsview: not available in this build")

// Launch returns ErrUnavailable.
func Launch(_ io.Writer) error {
	return ErrUnavailable
}

// Available returns false.
func Available() bool {
	return false
}
