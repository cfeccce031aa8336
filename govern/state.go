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

package govern

import "sync/atomic"

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// EmulatorStart is the default state and should never be entered once the
// emulator has begun.
//
// Initialising can be used when reinitialising the emulator. for example, when
// a new cartridge is being inserted.
const (
	EmulatorStart State = iota
	Initialising
	Paused
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "EmulatorStart"
	case Initialising:
		return "Initialising"
	case Paused:
		return "Paused"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}

	return ""
}

// Governor holds a State that can be changed from any goroutine.
type Governor struct {
	state atomic.Int64
}

// Set the state.
func (g *Governor) Set(s State) {
	g.state.Store(int64(s))
}

// State returns the current state. The zero value of Governor returns
// EmulatorStart.
func (g *Governor) State() State {
	return State(g.state.Load())
}

// ContinueCheck is a continue check function suitable for the hardware run
// loops. It returns the current state and never an error.
func (g *Governor) ContinueCheck() (State, error) {
	return g.State(), nil
}
