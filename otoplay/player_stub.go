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

//go:build !oto

package otoplay

import "errors"

// ErrUnavailable is returned by NewPlayer() when the oto build constraint is
// not present.
var ErrUnavailable = errors.New("otoplay: not available in this build")

// Player is not available without the oto build constraint.
type Player struct{}

// Available returns false.
func Available() bool {
	return false
}

// NewPlayer returns ErrUnavailable.
func NewPlayer() (*Player, error) {
	return nil, ErrUnavailable
}

// SetAudio implements the television.AudioMixer interface.
func (p *Player) SetAudio(_ []int16) error {
	return ErrUnavailable
}

// EndMixing implements the television.AudioMixer interface.
func (p *Player) EndMixing() error {
	return nil
}
