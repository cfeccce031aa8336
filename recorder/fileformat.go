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

package recorder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher16/hardware/input"
)

// Sentinel errors returned by the recorder package.
var (
	ErrFormat      = errors.New("recorder: invalid recording")
	ErrMismatch    = errors.New("recorder: recording does not match emulation")
	ErrAsyncOutput = errors.New("recorder: television output must be synchronous")
	ErrHash        = errors.New("recorder: unexpected output")
)

// recording header format
// -----------------------
//
// # gopher16 input recording
// # <cartridge name>
// # <cartridge hash>
// # <television specification>

const magic = "gopher16 input recording"

const (
	lineMagic int = iota
	lineCartName
	lineCartHash
	lineSpec
	numHeaderLines
)

const headerPrefix = "# "

type header struct {
	cartName string
	cartHash string
	spec     string
}

func (h header) String() string {
	lines := make([]string, numHeaderLines)
	lines[lineMagic] = magic
	lines[lineCartName] = h.cartName
	lines[lineCartHash] = h.cartHash
	lines[lineSpec] = h.spec

	s := strings.Builder{}
	for _, l := range lines {
		s.WriteString(headerPrefix)
		s.WriteString(l)
		s.WriteString("\n")
	}
	return s.String()
}

func parseHeader(lines []string) (header, error) {
	if len(lines) < numHeaderLines {
		return header{}, fmt.Errorf("%w: header too short", ErrFormat)
	}

	var h header
	for i := range numHeaderLines {
		l, ok := strings.CutPrefix(lines[i], headerPrefix)
		if !ok {
			return header{}, fmt.Errorf("%w: line %d is not a header line", ErrFormat, i+1)
		}
		switch i {
		case lineMagic:
			if l != magic {
				return header{}, fmt.Errorf("%w: not an input recording", ErrFormat)
			}
		case lineCartName:
			h.cartName = l
		case lineCartHash:
			h.cartHash = l
		case lineSpec:
			h.spec = l
		}
	}

	return h, nil
}

// event line format
// -----------------
//
// <frame>, <port>, <buttons>, <video digest>

const (
	fieldFrame int = iota
	fieldPort
	fieldButtons
	fieldHash
	numFields
)

const fieldSep = ", "

type entry struct {
	input.TimedEvent
	hash string

	// the line in the recording the entry appears
	line int
}

func (e entry) String() string {
	return fmt.Sprintf("%d%s%d%s%04x%s%s\n", e.Frame, fieldSep, e.Port, fieldSep, uint16(e.Buttons), fieldSep, e.hash)
}

func parseEntry(s string, line int) (entry, error) {
	toks := strings.Split(s, fieldSep)
	if len(toks) != numFields {
		return entry{}, fmt.Errorf("%w: expected %d fields at line %d", ErrFormat, numFields, line)
	}

	e := entry{line: line, hash: toks[fieldHash]}

	var err error
	e.Frame, err = strconv.Atoi(toks[fieldFrame])
	if err != nil {
		return entry{}, fmt.Errorf("%w: frame at line %d: %w", ErrFormat, line, err)
	}

	p, err := strconv.Atoi(toks[fieldPort])
	if err != nil || p < int(input.PortOne) || p >= int(input.NumPorts) {
		return entry{}, fmt.Errorf("%w: port at line %d", ErrFormat, line)
	}
	e.Port = input.PortID(p)

	b, err := strconv.ParseUint(toks[fieldButtons], 16, 16)
	if err != nil {
		return entry{}, fmt.Errorf("%w: buttons at line %d: %w", ErrFormat, line, err)
	}
	e.Buttons = input.Buttons(b)

	return e, nil
}
