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
	"errors"
	"fmt"
)

// Event changes the buttons of the pad in a port.
type Event struct {
	Port    PortID
	Buttons Buttons
}

func (ev Event) String() string {
	return fmt.Sprintf("%s: %s", ev.Port, ev.Buttons)
}

// TimedEvent is an Event and the frame on which it occurred.
type TimedEvent struct {
	Frame int
	Event
}

// EventPlayback returns recorded events.
type EventPlayback interface {
	// the next event for the frame. false if there are no more events for
	// the frame
	GetPlayback(frame int) (TimedEvent, bool, error)
}

// EventRecorder records events.
type EventRecorder interface {
	RecordEvent(TimedEvent) error
}

// Sentinal errors returned by the input package.
var (
	ErrPushedQueueFull = errors.New("input: pushed event queue is full: input dropped")
	ErrPlayback        = errors.New("input: emulation already has a playback attached")
	ErrRecorder        = errors.New("input: emulation already has a recorder attached")
	ErrPort            = errors.New("input: invalid port")
)

// the maximum number of pushed events waiting to be processed
const pushedQueueLen = 64

// Input handles events for the controller ports.
type Input struct {
	ports *Ports

	playback EventPlayback
	recorder EventRecorder

	// events pushed onto the input queue
	pushed chan Event

	// the current frame
	frame int
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(ports *Ports) *Input {
	return &Input{
		ports:  ports,
		pushed: make(chan Event, pushedQueueLen),
	}
}

// Plumb new ports into the input.
func (inp *Input) Plumb(ports *Ports) {
	inp.ports = ports
}

// HandleEvent changes the buttons of a pad. Events are ignored when a
// playback is attached.
func (inp *Input) HandleEvent(ev Event) error {
	if inp.playback != nil {
		return nil
	}
	return inp.handle(ev)
}

func (inp *Input) handle(ev Event) error {
	if ev.Port < PortOne || ev.Port >= NumPorts {
		return fmt.Errorf("%w: %d", ErrPort, ev.Port)
	}

	if inp.recorder != nil {
		if err := inp.recorder.RecordEvent(TimedEvent{Frame: inp.frame, Event: ev}); err != nil {
			return fmt.Errorf("input: %w", err)
		}
	}

	inp.ports.Pads[ev.Port].SetButtons(uint16(ev.Buttons))
	return nil
}

// PushEvent queues an event to be handled at the next call to Process(). Safe
// to call from any goroutine.
func (inp *Input) PushEvent(ev Event) error {
	select {
	case inp.pushed <- ev:
	default:
		return ErrPushedQueueFull
	}
	return nil
}

// AttachRecorder attaches a recorder. Every event handled is passed to the
// recorder.
func (inp *Input) AttachRecorder(r EventRecorder) error {
	if inp.playback != nil {
		return ErrPlayback
	}
	inp.recorder = r
	return nil
}

// AttachPlayback attaches a playback. Events will be taken from the playback
// and other events are ignored.
func (inp *Input) AttachPlayback(pb EventPlayback) error {
	if inp.recorder != nil {
		return ErrRecorder
	}
	inp.playback = pb
	return nil
}

// Process should be called once per frame, before the frame starts.
func (inp *Input) Process(frame int) error {
	inp.frame = frame

	if err := inp.handlePushed(); err != nil {
		return err
	}

	return inp.handlePlayback()
}

func (inp *Input) handlePushed() error {
	for {
		select {
		case ev := <-inp.pushed:
			if err := inp.HandleEvent(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (inp *Input) handlePlayback() error {
	if inp.playback == nil {
		return nil
	}

	for {
		ev, ok, err := inp.playback.GetPlayback(inp.frame)
		if err != nil {
			return fmt.Errorf("input: %w", err)
		}
		if !ok {
			return nil
		}
		if err := inp.handle(ev.Event); err != nil {
			return err
		}
	}
}
