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

package environment_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher16/environment"
	"github.com/jetsetilly/gopher16/logger"
	"github.com/jetsetilly/gopher16/test"
)

func TestLoggingPermission(t *testing.T) {
	main, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	other, err := environment.NewEnvironment("comparison", main.Prefs)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, main.IsMainEmulation())
	test.ExpectFailure(t, other.IsMainEmulation())

	log := logger.NewLogger(10)
	log.Log(main, "env", "main")
	log.Log(other, "env", "other")

	w := &strings.Builder{}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "env: main\n")
}

func TestNormalise(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, env.Prefs.RandomState.Set(true))

	env.Normalise()
	test.ExpectSuccess(t, env.Random.ZeroSeed)
	test.ExpectEquality(t, env.Prefs.RandomState.Get().(bool), false)
}
