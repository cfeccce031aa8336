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

package input

import (
	"fmt"
	"strings"
)

// Buttons is the state of every button on the pad. A set bit means the
// button is pressed. The order of the bits is the order in which they are
// read from the pad, most significant bit first.
type Buttons uint16

// List of buttons.
const (
	ButtonB      Buttons = 0x8000
	ButtonY      Buttons = 0x4000
	ButtonSelect Buttons = 0x2000
	ButtonStart  Buttons = 0x1000
	ButtonUp     Buttons = 0x0800
	ButtonDown   Buttons = 0x0400
	ButtonLeft   Buttons = 0x0200
	ButtonRight  Buttons = 0x0100
	ButtonA      Buttons = 0x0080
	ButtonX      Buttons = 0x0040
	ButtonL      Buttons = 0x0020
	ButtonR      Buttons = 0x0010
)

var buttonNames = []struct {
	b    Buttons
	name string
}{
	{ButtonB, "B"}, {ButtonY, "Y"}, {ButtonSelect, "Select"}, {ButtonStart, "Start"},
	{ButtonUp, "Up"}, {ButtonDown, "Down"}, {ButtonLeft, "Left"}, {ButtonRight, "Right"},
	{ButtonA, "A"}, {ButtonX, "X"}, {ButtonL, "L"}, {ButtonR, "R"},
}

func (b Buttons) String() string {
	s := strings.Builder{}
	for _, n := range buttonNames {
		if b&n.b == n.b {
			s.WriteString(n.name)
			s.WriteString(" ")
		}
	}
	return strings.TrimSpace(s.String())
}

// ParseButtons converts a list of button names separated by spaces or plus
// signs into a Buttons value.
func ParseButtons(s string) (Buttons, error) {
	var b Buttons
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == '+' }) {
		found := false
		for _, n := range buttonNames {
			if strings.EqualFold(f, n.name) {
				b |= n.b
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("input: unknown button %q", f)
		}
	}
	return b, nil
}

// Pad is a standard joypad.
type Pad struct {
	buttons Buttons

	// the buttons being read serially
	shift uint16

	// number of bits that have been read since the last latch
	reads int
}

func (pad *Pad) String() string {
	return pad.buttons.String()
}

// SetButtons sets the state of the buttons.
func (pad *Pad) SetButtons(b uint16) {
	pad.buttons = Buttons(b)
}

// Buttons returns the state of the buttons.
func (pad *Pad) Buttons() Buttons {
	return pad.buttons
}

// latch the current state of the buttons into the shift register
func (pad *Pad) latch() {
	pad.shift = uint16(pad.buttons)
	pad.reads = 0
}

// next bit of the shift register. after sixteen reads the pad returns ones
func (pad *Pad) serial() uint8 {
	if pad.reads >= 16 {
		return 1
	}
	b := uint8(pad.shift>>15) & 0x01
	pad.shift <<= 1
	pad.reads++
	return b
}

// exhaust the shift register so that further serial reads return ones
func (pad *Pad) exhaust() {
	pad.shift = 0
	pad.reads = 16
}
