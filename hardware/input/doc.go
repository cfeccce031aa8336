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

// Package input connects the joypads to the console.
//
// Joypads are read either by the auto-joypad read at the start of vblank or
// by strobing $4016 and reading the buttons one at a time from $4016 (port
// one) and $4017 (port two).
//
// Button state is changed with HandleEvent(), or with PushEvent() for events
// that originate in a different goroutine. Pushed events are handled when
// Process() is called by the console, once per frame. The input can also be
// recorded or played back.
package input
