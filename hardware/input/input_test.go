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

package input_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher16/hardware/input"
	"github.com/jetsetilly/gopher16/test"
)

func TestButtons(t *testing.T) {
	b, err := input.ParseButtons("start+A b")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b, input.ButtonStart|input.ButtonA|input.ButtonB)
	test.ExpectEquality(t, b.String(), "B Start A")

	_, err = input.ParseButtons("turbo")
	test.ExpectFailure(t, err)
}

func TestSerial(t *testing.T) {
	p := input.NewPorts()
	p.Pads[input.PortOne].SetButtons(uint16(input.ButtonB | input.ButtonR))
	p.Pads[input.PortTwo].SetButtons(uint16(input.ButtonY))

	// strobe
	p.ChipWrite(0x4016, 0x01)
	p.ChipWrite(0x4016, 0x00)

	var one, two uint16
	for range 16 {
		d, mask := p.ChipRead(0x4016)
		test.ExpectEquality(t, mask, uint8(0x03))
		one = one<<1 | uint16(d&0x01)
		d, _ = p.ChipRead(0x4017)
		two = two<<1 | uint16(d&0x01)
	}
	test.ExpectEquality(t, one, uint16(input.ButtonB|input.ButtonR))
	test.ExpectEquality(t, two, uint16(input.ButtonY))

	// ones after sixteen reads
	d, _ := p.ChipRead(0x4016)
	test.ExpectEquality(t, d, uint8(0x01))

	// while the strobe is high the first button is returned every time
	p.ChipWrite(0x4016, 0x01)
	for range 3 {
		d, _ := p.ChipRead(0x4016)
		test.ExpectEquality(t, d, uint8(0x01))
	}
}

func TestAutoRead(t *testing.T) {
	p := input.NewPorts()
	p.Pads[input.PortOne].SetButtons(0x8080)

	joy := p.AutoRead()
	test.ExpectEquality(t, joy[0], uint16(0x8080))
	test.ExpectEquality(t, joy[1], uint16(0))
	test.ExpectEquality(t, joy[2], uint16(0))

	d, _ := p.ChipRead(0x4016)
	test.ExpectEquality(t, d, uint8(0x01))
}

type recorder struct {
	events []input.TimedEvent
}

func (r *recorder) RecordEvent(ev input.TimedEvent) error {
	r.events = append(r.events, ev)
	return nil
}

type playback struct {
	events []input.TimedEvent
}

func (pb *playback) GetPlayback(frame int) (input.TimedEvent, bool, error) {
	if len(pb.events) == 0 || pb.events[0].Frame > frame {
		return input.TimedEvent{}, false, nil
	}
	ev := pb.events[0]
	pb.events = pb.events[1:]
	return ev, true, nil
}

func TestRecordAndPlayback(t *testing.T) {
	p := input.NewPorts()
	inp := input.NewInput(p)
	r := &recorder{}
	test.DemandSuccess(t, inp.AttachRecorder(r))
	test.ExpectSuccess(t, errors.Is(inp.AttachPlayback(&playback{}), input.ErrRecorder))

	test.ExpectSuccess(t, inp.Process(0))
	test.ExpectSuccess(t, inp.HandleEvent(input.Event{Port: input.PortTwo, Buttons: input.ButtonL}))
	test.ExpectSuccess(t, inp.Process(5))
	test.ExpectSuccess(t, inp.PushEvent(input.Event{Port: input.PortOne, Buttons: input.ButtonX}))
	test.ExpectEquality(t, p.Pads[input.PortOne].Buttons(), input.Buttons(0))
	test.ExpectSuccess(t, inp.Process(6))
	test.ExpectEquality(t, p.Pads[input.PortOne].Buttons(), input.ButtonX)
	test.ExpectEquality(t, p.Pads[input.PortTwo].Buttons(), input.ButtonL)

	test.DemandEquality(t, len(r.events), 2)
	test.ExpectEquality(t, r.events[0].Frame, 0)
	test.ExpectEquality(t, r.events[1].Frame, 6)

	q := input.NewPorts()
	pb := &playback{events: r.events}
	inp = input.NewInput(q)
	test.DemandSuccess(t, inp.AttachPlayback(pb))

	// events are ignored during playback
	test.ExpectSuccess(t, inp.HandleEvent(input.Event{Port: input.PortOne, Buttons: input.ButtonA}))
	test.ExpectEquality(t, q.Pads[input.PortOne].Buttons(), input.Buttons(0))

	test.ExpectSuccess(t, inp.Process(0))
	test.ExpectEquality(t, q.Pads[input.PortTwo].Buttons(), input.ButtonL)
	test.ExpectEquality(t, q.Pads[input.PortOne].Buttons(), input.Buttons(0))
	test.ExpectSuccess(t, inp.Process(6))
	test.ExpectEquality(t, q.Pads[input.PortOne].Buttons(), input.ButtonX)

	err := input.NewInput(input.NewPorts()).HandleEvent(input.Event{Port: 5})
	test.ExpectSuccess(t, errors.Is(err, input.ErrPort))
}
