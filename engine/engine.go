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

package engine

import (
	"github.com/smashpad/smashpad/command"
	"github.com/smashpad/smashpad/input"
	"github.com/smashpad/smashpad/mapper"
	"github.com/smashpad/smashpad/policy"
	"github.com/smashpad/smashpad/random"
	"github.com/smashpad/smashpad/resource"
)

// State records whether sound dispatch is currently suppressed. Terminated
// is absorbing; a Terminated engine only ever answers with a Terminate
// action.
type State int

// List of valid State values.
const (
	Armed State = iota
	Muted
	Terminated
)

// one event in this many clears the canvas before the response is shown
const clearChance = 10

// Setup is the collection of construction parameters for the engine. The
// playmode package fills it in from the command line.
type Setup struct {
	// whether any sound is produced at all this session. when false, sounds
	// were never loaded and mute/unmute have no effect
	SoundEnabled bool

	// begin the session in the Muted state. typing unmute recovers
	StartMuted bool
}

// Engine routes one input event at a time to the command detector and the
// mapper/policy pipelines, handing the selected sound and image back to the
// caller as an Action. The engine decides which resources answer an event,
// never where they land on screen or how they are played.
//
// The engine is synchronous and single-threaded: Handle() must have returned
// before the next event is passed in.
type Engine struct {
	detector *command.Detector

	soundMapper mapper.Mapper
	imageMapper mapper.Mapper
	sounds      *policy.Registry
	images      *policy.Registry

	rnd *random.Random

	soundEnabled bool
	state        State

	// whether the pointer button is currently held. pointer motion only
	// leaves a mark while it is
	pointerDown bool
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine(setup Setup, soundMapper mapper.Mapper, imageMapper mapper.Mapper,
	sounds *policy.Registry, images *policy.Registry, rnd *random.Random) *Engine {

	eng := &Engine{
		detector:     command.NewDetector(),
		soundMapper:  soundMapper,
		imageMapper:  imageMapper,
		sounds:       sounds,
		images:       images,
		rnd:          rnd,
		soundEnabled: setup.SoundEnabled,
		state:        Armed,
	}

	if setup.StartMuted {
		eng.state = Muted
	}

	return eng
}

// State the engine is currently in.
func (eng *Engine) State() State {
	return eng.state
}

// Handle one input event, returning the Action the caller should take. An
// error from Handle means the engine's construction was inconsistent with
// the rules it is serving and the program should end.
//
// Note the order of draws from the shared random source for key-down class
// events: the clear-canvas decision first, then any sound selection, then
// any image selection. The order is fixed so that a seeded session is
// reproducible.
func (eng *Engine) Handle(ev input.Event) (Action, error) {
	if eng.state == Terminated {
		return Action{Terminate: true}, nil
	}

	switch ev.Kind {
	case input.Quit:
		eng.state = Terminated
		return Action{Terminate: true}, nil

	case input.KeyDown, input.DeviceButtonDown:
		return eng.keypress(ev)

	case input.PointerDown:
		eng.pointerDown = true
		return eng.pointerMark(ev)

	case input.PointerMove:
		if !eng.pointerDown {
			return Action{}, nil
		}
		return eng.pointerMark(ev)

	case input.PointerUp:
		eng.pointerDown = false
	}

	return Action{}, nil
}

// the response to a keyboard key or device button.
func (eng *Engine) keypress(ev input.Event) (Action, error) {
	act := Action{}

	// device buttons and non-alphabetic keys never reach the command
	// detector. punctuation cannot interrupt a command being typed
	if ev.Kind == input.KeyDown && ev.IsAlpha() {
		if word, ok := eng.detector.Observe(ev.Char); ok {
			switch word {
			case command.Quit:
				// quit fires regardless of whether audio is enabled
				eng.state = Terminated
				return Action{Terminate: true}, nil

			case command.Mute:
				if eng.soundEnabled && eng.state == Armed {
					eng.state = Muted
					act.FadeOut = true
				}

			case command.Unmute:
				if eng.soundEnabled {
					eng.state = Armed
				}
			}
		}
	}

	if eng.rnd.Intn(clearChance) == 0 {
		act.ClearCanvas = true
	}

	if eng.soundEnabled && eng.state == Armed {
		h, err := eng.dispatch(eng.soundMapper, eng.sounds, ev)
		if err != nil {
			return Action{}, err
		}
		act.Sound = h
	}

	h, err := eng.dispatch(eng.imageMapper, eng.images, ev)
	if err != nil {
		return Action{}, err
	}
	act.Image = h

	return act, nil
}

// the response to pointer interaction. no command detection and no sound,
// but the image decision flows through the same mapper/policy pipeline as
// everything else
func (eng *Engine) pointerMark(ev input.Event) (Action, error) {
	h, err := eng.dispatch(eng.imageMapper, eng.images, ev)
	if err != nil {
		return Action{}, err
	}

	return Action{
		Image:     h,
		AtPointer: true,
		X:         ev.X,
		Y:         ev.Y,
	}, nil
}

func (eng *Engine) dispatch(m mapper.Mapper, reg *policy.Registry, ev input.Event) (resource.Handle, error) {
	name, args, err := m.Map(ev)
	if err != nil {
		return nil, err
	}

	p, err := reg.Lookup(name)
	if err != nil {
		return nil, err
	}

	return p.Select(ev, args)
}
