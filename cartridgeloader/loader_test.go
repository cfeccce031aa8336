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

package cartridgeloader_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher16/cartridgeloader"
	"github.com/jetsetilly/gopher16/test"
)

func TestNewLoader(t *testing.T) {
	cl, err := cartridgeloader.NewLoader("roms/test.sfc", "hirom")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cl.Mapping, cartridgeloader.MappingHiROM)
	test.ExpectEquality(t, cl.ShortName(), "test")
	test.ExpectFailure(t, cl.HasLoaded())

	cl, err = cartridgeloader.NewLoader("roms/test.sfc", "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cl.Mapping, cartridgeloader.MappingAuto)

	_, err = cartridgeloader.NewLoader("roms/test.sfc", "sa1")
	test.ExpectSuccess(t, errors.Is(err, cartridgeloader.ErrMapping))
}

func TestLoadFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "test.sfc")
	test.DemandSuccess(t, os.WriteFile(pth, []byte{1, 2, 3, 4}, 0o600))

	cl, err := cartridgeloader.NewLoader(pth, "")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, len(cl.Data), 4)
	test.ExpectEquality(t, cl.Hash, cartridgeloader.NewLoaderFromData("", []byte{1, 2, 3, 4}).Hash)

	cl, err = cartridgeloader.NewLoader(pth, "")
	test.DemandSuccess(t, err)
	cl.Hash = "0000"
	test.ExpectSuccess(t, errors.Is(cl.Load(), cartridgeloader.ErrUnexpectedHash))
	test.ExpectFailure(t, cl.HasLoaded())
}

func TestExtensions(t *testing.T) {
	test.ExpectSuccess(t, cartridgeloader.IsCartridgeFile("game.sfc"))
	test.ExpectSuccess(t, cartridgeloader.IsCartridgeFile("game.SMC"))
	test.ExpectFailure(t, cartridgeloader.IsCartridgeFile("game.txt"))
}
