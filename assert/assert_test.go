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

package assert_test

import (
	"testing"

	"github.com/jetsetilly/gopher16/assert"
	"github.com/jetsetilly/gopher16/test"
)

func TestCheck(t *testing.T) {
	assert.Check(true, "never fails")

	defer func() {
		r := recover()
		if assert.Enabled {
			test.ExpectInequality(t, r, nil)
		} else {
			test.ExpectEquality(t, r, nil)
		}
	}()
	assert.Check(false, "value %d", 10)
}

func TestGoRoutineID(t *testing.T) {
	id := assert.GoRoutineID()
	test.ExpectEquality(t, id, assert.GoRoutineID())

	ch := make(chan uint64)
	go func() {
		ch <- assert.GoRoutineID()
	}()
	test.ExpectInequality(t, <-ch, id)
}
