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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher16/hardware/preferences"
	"github.com/jetsetilly/gopher16/prefs"
	"github.com/jetsetilly/gopher16/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Region.String(), preferences.RegionAuto)
	test.ExpectEquality(t, p.AudioBatch.Get().(int), 512)
	test.ExpectEquality(t, p.RandomState.Get().(bool), false)

	test.ExpectFailure(t, p.Region.Set("SECAM"))
	test.ExpectFailure(t, p.AudioBatch.Set(1))
	test.ExpectSuccess(t, p.Region.Set(preferences.RegionPAL))

	// no disk means save and load are no-ops
	test.ExpectSuccess(t, p.Save())
	test.ExpectSuccess(t, p.Load())
}

func TestPersistence(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Region.Set(preferences.RegionPAL))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Region.String(), preferences.RegionPAL)

	prefs.PushCommandLineStack("hardware.region::NTSC")
	r, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Region.String(), preferences.RegionNTSC)
	prefs.PopCommandLineStack()
}
