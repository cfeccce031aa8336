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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"

	"github.com/jetsetilly/gopher16/cartridgeloader"
	"github.com/jetsetilly/gopher16/digest"
	"github.com/jetsetilly/gopher16/environment"
	"github.com/jetsetilly/gopher16/framedump"
	"github.com/jetsetilly/gopher16/govern"
	"github.com/jetsetilly/gopher16/hardware"
	"github.com/jetsetilly/gopher16/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher16/hardware/preferences"
	"github.com/jetsetilly/gopher16/hardware/television"
	"github.com/jetsetilly/gopher16/hardware/television/specification"
	"github.com/jetsetilly/gopher16/logger"
	"github.com/jetsetilly/gopher16/modalflag"
	"github.com/jetsetilly/gopher16/otoplay"
	"github.com/jetsetilly/gopher16/performance"
	"github.com/jetsetilly/gopher16/prefs"
	"github.com/jetsetilly/gopher16/recorder"
	"github.com/jetsetilly/gopher16/resources"
	"github.com/jetsetilly/gopher16/statsview"
	"github.com/jetsetilly/gopher16/version"
	"github.com/jetsetilly/gopher16/wavwriter"
)

// exit values.
const (
	exitOK    = 0
	exitParse = 10
	exitMode  = 20
)

func main() {
	// #ctrlc
	gov := &govern.Governor{}
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		fmt.Print("\r")
		gov.Set(govern.Ending)
	}()

	os.Exit(launch(os.Stdout, os.Args[1:], gov))
}

// launch parses the arguments and starts the selected mode. the return value
// is suitable for os.Exit().
func launch(output io.Writer, args []string, gov *govern.Governor) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "INFO", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, gov)
	case "INFO":
		err = info(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitMode
	}

	return exitOK
}

// the options of the RUN mode.
type runOptions struct {
	mapping   *string
	prefs     *string
	frames    *int
	fpsCap    *bool
	wav       *string
	bmp       *string
	bmpEvery  *int
	audio     *bool
	statsview *bool
	memviz    *string
	record    *string
	playback  *string
	digest    *bool
	log       *bool
}

func run(md *modalflag.Modes, gov *govern.Governor) error {
	md.NewMode()

	opts := runOptions{
		mapping:   md.AddString("mapping", "AUTO", "force use of cartridge mapping: LOROM, HIROM, EXHIROM"),
		prefs:     md.AddString("prefs", "", "preferences to apply for this run (eg. 'hardware.region::PAL')"),
		frames:    md.AddInt("frames", 0, "number of frames to run for. zero runs until interrupted"),
		fpsCap:    md.AddBool("fpscap", true, "cap fps to the television specification"),
		wav:       md.AddString("wav", "", "record audio to wav file"),
		bmp:       md.AddString("bmp", "", "directory to dump frames to as bitmaps"),
		bmpEvery:  md.AddInt("bmpevery", 60, "interval between dumped frames"),
		audio:     md.AddBool("audio", false, "play audio"),
		statsview: md.AddBool("statsview", false, "launch the statistics server"),
		memviz:    md.AddString("memviz", "", "write graph of console state to file at end of run"),
		record:    md.AddString("record", "", "record user input to file"),
		playback:  md.AddString("playback", "", "play back a recording"),
		digest:    md.AddBool("digest", false, "print video and audio digests at end of run"),
		log:       md.AddBool("log", term.IsTerminal(int(os.Stdout.Fd())), "echo log to stdout"),
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *opts.log {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *opts.record != "" && *opts.playback != "" {
		return errors.New("cannot record and play back at the same time")
	}

	if *opts.prefs != "" {
		prefs.PushCommandLineStack(*opts.prefs)
		defer prefs.PopCommandLineStack()
	}

	env, err := newEnvironment()
	if err != nil {
		return err
	}

	cart, err := loadCartridge(env, md.GetArg(0), *opts.mapping)
	if err != nil {
		return err
	}

	tv := television.NewTelevision(env, specification.SpecNTSC)
	tv.SetFPSCap(*opts.fpsCap)

	con, err := hardware.NewConsole(env, tv)
	if err != nil {
		return errors.Join(err, tv.End())
	}

	if err := con.AttachCartridge(cart); err != nil {
		return errors.Join(err, tv.End())
	}

	// renderers and mixers are added after the cartridge is attached so that
	// the television specification has been decided
	err = attachOutputs(md.Output, con, opts)
	if err != nil {
		return errors.Join(err, tv.End())
	}

	var rec *recorder.Recorder
	var plb *recorder.Playback

	switch {
	case *opts.record != "":
		rec, err = recorder.NewRecorder(*opts.record, con)
		if err != nil {
			return errors.Join(err, tv.End())
		}
	case *opts.playback != "":
		plb, err = recorder.NewPlayback(*opts.playback)
		if err != nil {
			return errors.Join(err, tv.End())
		}
		if err := plb.AttachToConsole(con); err != nil {
			return errors.Join(err, tv.End())
		}
	}

	var vdig *digest.Video
	var adig *digest.Audio
	if *opts.digest {
		vdig = digest.NewVideo()
		adig = digest.NewAudio()
		tv.AddFrameRenderer(vdig)
		tv.AddAudioMixer(adig)
	}

	if *opts.statsview {
		if err := statsview.Launch(md.Output); err != nil {
			return errors.Join(err, tv.End())
		}
	}

	// the governor may already have been told to end
	if gov.State() != govern.Ending {
		gov.Set(govern.Running)
	}

	// the run ends early if the playback has no more events
	continueCheck := func() (govern.State, error) {
		if plb != nil && plb.EndFrame(con.Timing.Frame) {
			return govern.Ending, nil
		}
		return gov.State(), nil
	}

	if *opts.frames > 0 {
		err = con.RunForFrameCount(*opts.frames, func(_ int) (govern.State, error) {
			return continueCheck()
		})
	} else {
		err = con.Run(continueCheck)
	}

	if rec != nil {
		err = errors.Join(err, rec.End())
	}
	err = errors.Join(err, tv.End())

	if err == nil && *opts.memviz != "" {
		err = writeMemviz(*opts.memviz, con)
	}

	if err != nil {
		return err
	}

	if *opts.record != "" {
		fmt.Fprintln(md.Output, "! recording completed")
	}
	if plb != nil {
		fmt.Fprintln(md.Output, "! playback completed")
	}

	if vdig != nil {
		fmt.Fprintf(md.Output, "frames: %d\n", vdig.Frames())
		fmt.Fprintf(md.Output, "video: %s\n", vdig.Hash())
		fmt.Fprintf(md.Output, "audio: %s\n", adig.Hash())
	}

	return nil
}

// add the optional renderers and mixers to the console's television.
func attachOutputs(output io.Writer, con *hardware.Console, opts runOptions) error {
	if *opts.wav != "" {
		aw, err := wavwriter.NewWavWriter(*opts.wav)
		if err != nil {
			return err
		}
		con.TV.AddAudioMixer(aw)
	}

	if *opts.bmp != "" {
		d, err := framedump.NewDump(*opts.bmp, *opts.bmpEvery)
		if err != nil {
			return err
		}
		con.TV.AddFrameRenderer(d)
	}

	if *opts.audio {
		if !otoplay.Available() {
			fmt.Fprintln(output, "* audio playback not available in this build")
		} else {
			p, err := otoplay.NewPlayer()
			if err != nil {
				return err
			}
			con.TV.AddAudioMixer(p)
		}
	}

	return nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	mapping := md.AddString("mapping", "AUTO", "force use of cartridge mapping: LOROM, HIROM, EXHIROM")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	logger.SetEcho(nil)

	env, err := newEnvironment()
	if err != nil {
		return err
	}

	cart, err := loadCartridge(env, md.GetArg(0), *mapping)
	if err != nil {
		return err
	}

	checksum := "ok"
	if !cart.ValidChecksum() {
		checksum = "mismatch"
	}

	region := "NTSC"
	if cart.PAL() {
		region = "PAL"
	}

	fmt.Fprintf(md.Output, "file:     %s\n", filepath.Base(cart.Filename))
	fmt.Fprintf(md.Output, "hash:     %s\n", cart.Hash)
	fmt.Fprintf(md.Output, "title:    %s\n", cart.Header.Title)
	fmt.Fprintf(md.Output, "mapping:  %s\n", cart.Mapping)
	fmt.Fprintf(md.Output, "header:   %s\n", cart.Header)
	fmt.Fprintf(md.Output, "fastrom:  %v\n", cart.FastROM())
	fmt.Fprintf(md.Output, "region:   %s\n", region)
	fmt.Fprintf(md.Output, "checksum: %04x (%s)\n", cart.Header.Checksum, checksum)

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	mapping := md.AddString("mapping", "AUTO", "force use of cartridge mapping: LOROM, HIROM, EXHIROM")
	fpsCap := md.AddBool("fpscap", false, "cap fps to the television specification")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "profiles to write: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	env, err := newEnvironment()
	if err != nil {
		return err
	}

	cart, err := loadCartridge(env, md.GetArg(0), *mapping)
	if err != nil {
		return err
	}

	tv := television.NewTelevision(env, specification.SpecNTSC)
	tv.SetFPSCap(*fpsCap)

	con, err := hardware.NewConsole(env, tv)
	if err != nil {
		return errors.Join(err, tv.End())
	}
	if err := con.AttachCartridge(cart); err != nil {
		return errors.Join(err, tv.End())
	}

	err = performance.Check(md.Output, prf, con, *duration)
	return errors.Join(err, tv.End())
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(md.Output, version.String())
	return nil
}

// the main emulation environment with preferences loaded from the resources
// directory.
func newEnvironment() (*environment.Environment, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p, err := preferences.NewPreferences(pth)
	if err != nil {
		return nil, err
	}

	return environment.NewEnvironment(environment.MainEmulation, p)
}

func loadCartridge(env *environment.Environment, filename string, mapping string) (*cartridge.Cartridge, error) {
	cl, err := cartridgeloader.NewLoader(filename, mapping)
	if err != nil {
		return nil, err
	}
	if err := cl.Load(); err != nil {
		return nil, err
	}
	return cartridge.NewCartridge(env, cl)
}

func writeMemviz(filename string, con *hardware.Console) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	memviz.Map(f, con.Snapshot())
	return nil
}
