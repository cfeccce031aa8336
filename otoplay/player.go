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

//go:build oto

package otoplay

import (
	"fmt"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/gopher16/hardware/clocks"
	"github.com/jetsetilly/gopher16/logger"
)

// Player implements the television.AudioMixer interface.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	buffer *Buffer
}

// Available returns true if audio playback is available in this build.
func Available() bool {
	return true
}

// NewPlayer is the preferred method of initialisation for the Player type.
// Playback starts immediately.
func NewPlayer() (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   clocks.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("otoplay: %w", err)
	}
	<-ready

	p := &Player{
		ctx:    ctx,
		buffer: NewBuffer(clocks.SampleRate / 4),
	}
	p.player = ctx.NewPlayer(p.buffer)
	p.player.Play()

	return p, nil
}

// SetAudio implements the television.AudioMixer interface.
func (p *Player) SetAudio(samples []int16) error {
	p.buffer.Push(samples)
	return p.player.Err()
}

// EndMixing implements the television.AudioMixer interface.
func (p *Player) EndMixing() error {
	logger.Logf(logger.Allow, "otoplay", "discarded %d bytes, %d bytes of silence", p.buffer.Discarded, p.buffer.Underrun)
	if err := p.player.Close(); err != nil {
		return fmt.Errorf("otoplay: %w", err)
	}
	return nil
}
