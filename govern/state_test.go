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

package govern_test

import (
	"testing"

	"github.com/jetsetilly/gopher16/govern"
	"github.com/jetsetilly/gopher16/test"
)

func TestGovernor(t *testing.T) {
	var g govern.Governor
	test.ExpectEquality(t, g.State(), govern.EmulatorStart)

	g.Set(govern.Running)
	s, err := g.ContinueCheck()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, govern.Running)

	done := make(chan bool)
	go func() {
		g.Set(govern.Ending)
		done <- true
	}()
	<-done
	test.ExpectEquality(t, g.State(), govern.Ending)
	test.ExpectEquality(t, g.State().String(), "Ending")
}
