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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds the concept of modes to the command line, so that the
// program can be launched with a different set of flags depending on the
// first argument. For example:
//
//	gopher16 RUN -wav out.wav game.sfc
//	gopher16 INFO game.sfc
//	gopher16 VERSION
//
// The first sub-mode added is the default. If the first argument does not
// name a sub-mode then the default is selected and the argument is left for
// the flags of the default mode.
//
// Idiomatic usage:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "INFO", "VERSION")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		wav := md.AddString("wav", "", "write audio to WAV file")
//		p, err := md.Parse()
//		...
//	}
package modalflag
