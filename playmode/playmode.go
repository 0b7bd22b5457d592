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

package playmode

import (
	"github.com/veandco/go-sdl2/mix"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/smashpad/smashpad/curated"
	"github.com/smashpad/smashpad/engine"
	"github.com/smashpad/smashpad/extension"
	"github.com/smashpad/smashpad/logger"
	"github.com/smashpad/smashpad/mapper"
	"github.com/smashpad/smashpad/paths"
	"github.com/smashpad/smashpad/policy"
	"github.com/smashpad/smashpad/random"
	"github.com/smashpad/smashpad/version"
)

// Error patterns for the playmode package.
const (
	SDLError     = "sdl: %v"
	NoFont       = "no font file (*.ttf) found in data directories"
	NoSoundRules = "extension: %s: no sound rules but sound is enabled"
)

// run loop pacing. sixty iterations a second is plenty for a baby
const frameDelay = 16 // milliseconds

// Options is the collection of playmode parameters sourced from the command
// line.
type Options struct {
	Uppercase           bool
	DeterministicSounds bool
	StartMuted          bool
	SoundEnabled        bool
	Dark                bool

	// Seed is only honoured when Seeded is true. a zero seed is a valid seed
	Seed   int64
	Seeded bool

	// name of the extension to activate. empty means the built-in rules
	Extension string

	SoundBlacklist []string
	ImageBlacklist []string
}

// playmode is the SDL realisation of the program: the window, the renderer,
// the mixer and the run loop that feeds the engine.
type playmode struct {
	opts Options

	window   *sdl.Window
	renderer *sdl.Renderer
	width    int32
	height   int32

	// the background the canvas is cleared to, with the command caption
	// pre-rendered at the top left
	caption *image

	synth *synthesizer
	rnd   *random.Random

	eng *engine.Engine

	// whether the mixer opened successfully. sound is quietly disabled when
	// it did not
	mixerOpen bool
}

// Play initialises SDL and runs the program until the engine terminates or
// an error occurs.
func Play(opts Options) error {
	pl := &playmode{opts: opts}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_JOYSTICK); err != nil {
		return curated.Errorf(SDLError, err)
	}
	defer sdl.Quit()

	if err := ttf.Init(); err != nil {
		return curated.Errorf(SDLError, err)
	}
	defer ttf.Quit()

	if opts.SoundEnabled {
		if err := mix.OpenAudio(44100, mix.DEFAULT_FORMAT, mix.DEFAULT_CHANNELS, 1024); err != nil {
			logger.Logf(logger.Allow, "playmode", "warning, sound disabled: %v", err)
			pl.opts.SoundEnabled = false
		} else {
			pl.mixerOpen = true
			defer mix.CloseAudio()
		}
	}

	var err error

	// switch to full screen at current display resolution
	pl.window, err = sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		0, 0, sdl.WINDOW_FULLSCREEN_DESKTOP)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	defer pl.window.Destroy()

	pl.renderer, err = sdl.CreateRenderer(pl.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	defer pl.renderer.Destroy()

	pl.width, pl.height = pl.window.GetSize()

	// open all attached joysticks so their buttons generate events
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if j := sdl.JoystickOpen(i); j == nil {
			logger.Logf(logger.Allow, "playmode", "cannot open joystick %d", i)
		}
	}

	// seeding. a session without an explicit seed is seeded from the clock
	if opts.Seeded {
		pl.rnd = random.NewSeededRandom(opts.Seed)
	} else {
		pl.rnd = random.NewRandom()
	}

	if err := pl.setup(); err != nil {
		return err
	}

	pl.clearCanvas()
	pl.renderer.Present()

	return pl.run()
}

// setup resolves resources, policies and mappers, and builds the engine.
func (pl *playmode) setup() error {
	dataDirs := paths.DataDirs()

	// resolve the active extension before anything else. a bad extension
	// name or rule file must fail before any resource loading happens
	var ext *extension.Extension
	var extDir string

	if pl.opts.Extension != "" {
		var err error
		extDir, err = paths.ExtensionDir(dataDirs, pl.opts.Extension)
		if err != nil {
			return err
		}
		ext, err = extension.Load(paths.ExtensionFile(extDir))
		if err != nil {
			return err
		}
		logger.Logf(logger.Allow, "playmode", "extension active: %s", pl.opts.Extension)
	}

	synth, err := newSynthesizer(pl.renderer, dataDirs)
	if err != nil {
		return err
	}
	pl.synth = synth

	// the background caption listing the command words
	pl.caption, err = pl.synth.renderCaption("Commands: quit, mute, unmute")
	if err != nil {
		return err
	}

	images, err := pl.loadImages(dataDirs)
	if err != nil {
		return err
	}

	imageReg := policy.NewRegistry()
	p, err := policy.NewRandom("images", images, pl.rnd)
	if err != nil {
		return err
	}
	imageReg.Register("random", p)
	imageReg.Register("named", policy.NewNamed(images))
	imageReg.Register("font", policy.NewGlyph(pl.synth, pl.rnd, pl.opts.Uppercase))
	imageReg.Register("dot", policy.NewDot(pl.synth))

	soundReg := policy.NewRegistry()
	if pl.opts.SoundEnabled {
		soundDirs := dataDirs
		if extDir != "" {
			// an extension's bundled sounds extend the base set
			soundDirs = append(soundDirs, extDir)
		}

		sounds, err := pl.loadSounds(soundDirs)
		if err != nil {
			return err
		}

		q, err := policy.NewRandom("sounds", sounds, pl.rnd)
		if err != nil {
			return err
		}
		soundReg.Register("random", q)
		d, err := policy.NewDeterministic("sounds", sounds)
		if err != nil {
			return err
		}
		soundReg.Register("deterministic", d)
		soundReg.Register("named", policy.NewNamed(sounds))
	}

	var soundMapper mapper.Mapper
	var imageMapper mapper.Mapper

	if ext != nil {
		imageMapper = mapper.NewDeclarative(ext.File+" (image)", ext.Image)
		if pl.opts.SoundEnabled {
			if len(ext.Sound) == 0 {
				return curated.Errorf(NoSoundRules, ext.File)
			}
			soundMapper = mapper.NewDeclarative(ext.File+" (sound)", ext.Sound)
		} else {
			soundMapper = mapper.LegacySound{}
		}
	} else {
		soundMapper = mapper.LegacySound{Deterministic: pl.opts.DeterministicSounds}
		imageMapper = mapper.LegacyImage{}
	}

	pl.eng = engine.NewEngine(engine.Setup{
		SoundEnabled: pl.opts.SoundEnabled,
		StartMuted:   pl.opts.StartMuted,
	}, soundMapper, imageMapper, soundReg, imageReg, pl.rnd)

	return nil
}

// run is the cooperative event loop: one event at a time, fully processed
// before the next is accepted.
func (pl *playmode) run() error {
	for {
		for sdlEv := sdl.PollEvent(); sdlEv != nil; sdlEv = sdl.PollEvent() {
			ev, ok := translate(sdlEv)
			if !ok {
				continue
			}

			act, err := pl.eng.Handle(ev)
			if err != nil {
				return err
			}
			if act.Terminate {
				return nil
			}
			if err := pl.perform(act); err != nil {
				return err
			}
		}

		sdl.Delay(frameDelay)
	}
}

// perform a non-terminating engine action.
func (pl *playmode) perform(act engine.Action) error {
	if act.FadeOut && pl.mixerOpen {
		mix.FadeOutChannel(-1, 1000)
	}

	if act.ClearCanvas {
		pl.clearCanvas()
	}

	if act.Sound != nil {
		if _, err := act.Sound.(*mix.Chunk).Play(-1, 0); err != nil {
			// a full mixer is not worth ending the session over
			logger.Logf(logger.Allow, "playmode", "cannot play sound: %v", err)
		}
	}

	if act.Image != nil {
		img := act.Image.(*image)
		var dst sdl.Rect

		if act.AtPointer {
			dst = sdl.Rect{X: act.X - img.w/2, Y: act.Y - img.h/2, W: img.w, H: img.h}
		} else {
			dst = pl.placeImage(img)
		}

		if err := pl.renderer.Copy(img.texture, nil, &dst); err != nil {
			return curated.Errorf(SDLError, err)
		}

		// synthesised images are one-shot. loaded images live for the whole
		// session
		if img.transient {
			img.texture.Destroy()
		}
	}

	pl.renderer.Present()
	return nil
}

// placeImage chooses a random position for the image, fully within the
// canvas when the image is smaller than the canvas.
func (pl *playmode) placeImage(img *image) sdl.Rect {
	w := pl.width - img.w
	if w < 1 {
		w = 1
	}
	h := pl.height - img.h
	if h < 1 {
		h = 1
	}

	return sdl.Rect{
		X: int32(pl.rnd.Intn(int(w))),
		Y: int32(pl.rnd.Intn(int(h))),
		W: img.w,
		H: img.h,
	}
}

// clearCanvas redraws the background and the command caption.
func (pl *playmode) clearCanvas() {
	if pl.opts.Dark {
		pl.renderer.SetDrawColor(0, 0, 0, 255)
	} else {
		pl.renderer.SetDrawColor(250, 250, 250, 255)
	}
	pl.renderer.Clear()

	if pl.caption != nil {
		dst := sdl.Rect{X: 15, Y: 10, W: pl.caption.w, H: pl.caption.h}
		pl.renderer.Copy(pl.caption.texture, nil, &dst)
	}
}
