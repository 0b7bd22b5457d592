// This file is part of Smashpad.
//
// Smashpad is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Smashpad is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Smashpad.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/smashpad/smashpad/logger"
	"github.com/smashpad/smashpad/modalflag"
	"github.com/smashpad/smashpad/performance"
	"github.com/smashpad/smashpad/playmode"
	"github.com/smashpad/smashpad/statsview"
	"github.com/smashpad/smashpad/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	uppercase := md.AddBool("uppercase", false, "show upper-case letters only")
	deterministic := md.AddBool("deterministic", false, "same key always plays the same sound")
	mute := md.AddBool("mute", false, "start with sounds muted")
	nosound := md.AddBool("nosound", false, "do not load or play any sounds")
	dark := md.AddBool("dark", false, "dark background")
	seed := md.AddString("seed", "", "seed for the random source. clock seeded when empty")
	ext := md.AddString("extension", "", "name of the extension to activate")
	soundBlacklist := md.AddStrings("soundblacklist", "sound files to never play (glob pattern, repeatable)")
	imageBlacklist := md.AddStrings("imageblacklist", "image files to never show (glob pattern, repeatable)")
	profile := md.AddBool("profile", false, "run with profiling")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%t)", statsview.Available()))
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	opts := playmode.Options{
		Uppercase:           *uppercase,
		DeterministicSounds: *deterministic,
		StartMuted:          *mute,
		SoundEnabled:        !*nosound,
		Dark:                *dark,
		Extension:           *ext,
		SoundBlacklist:      *soundBlacklist,
		ImageBlacklist:      *imageBlacklist,
	}

	if *seed != "" {
		v, err := strconv.ParseInt(*seed, 10, 64)
		if err != nil {
			return fmt.Errorf("seed must be a whole number: %s", *seed)
		}
		opts.Seed = v
		opts.Seeded = true
	}

	playRun := func() error {
		return playmode.Play(opts)
	}

	if *profile {
		if err := performance.ProfileCPU("smashpad.cpu.profile", playRun); err != nil {
			return err
		}
		return performance.ProfileMem("smashpad.mem.profile")
	}

	return playRun()
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Printf("%s (%s)\n", version.ApplicationName, ver)
	if *revision {
		fmt.Println(rev)
	}

	return nil
}
