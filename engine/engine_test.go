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

package engine_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/smashpad/smashpad/engine"
	"github.com/smashpad/smashpad/input"
	"github.com/smashpad/smashpad/mapper"
	"github.com/smashpad/smashpad/policy"
	"github.com/smashpad/smashpad/random"
	"github.com/smashpad/smashpad/resource"
	"github.com/smashpad/smashpad/test"
)

type stubSynth struct{}

func (s *stubSynth) RenderGlyph(char rune, _ policy.Color) (resource.Handle, error) {
	return fmt.Sprintf("glyph:%c", char), nil
}

func (s *stubSynth) RenderDot() (resource.Handle, error) {
	return "dot", nil
}

func testSet(t *testing.T, category string, names ...string) *resource.Set {
	t.Helper()
	set, err := resource.LoadItems(category, names, nil,
		func(path string) (resource.Handle, error) { return path, nil })
	test.ExpectSuccess(t, err)
	return set
}

// an engine wired the way playmode wires it for the built-in configuration.
// sounds are bang.wav, moo.wav, pop.wav (index order); images are cat.gif
// and dog.gif
func testEngine(t *testing.T, setup engine.Setup, seed int64, deterministic bool) *engine.Engine {
	t.Helper()

	rnd := random.NewSeededRandom(seed)
	syn := &stubSynth{}

	soundSet := testSet(t, "sounds", "pop.wav", "bang.wav", "moo.wav")
	imageSet := testSet(t, "images", "cat.gif", "dog.gif")

	sounds := policy.NewRegistry()
	p, err := policy.NewRandom("sounds", soundSet, rnd)
	test.ExpectSuccess(t, err)
	sounds.Register("random", p)
	d, err := policy.NewDeterministic("sounds", soundSet)
	test.ExpectSuccess(t, err)
	sounds.Register("deterministic", d)
	sounds.Register("named", policy.NewNamed(soundSet))

	images := policy.NewRegistry()
	q, err := policy.NewRandom("images", imageSet, rnd)
	test.ExpectSuccess(t, err)
	images.Register("random", q)
	images.Register("named", policy.NewNamed(imageSet))
	images.Register("font", policy.NewGlyph(syn, rnd, false))
	images.Register("dot", policy.NewDot(syn))

	return engine.NewEngine(setup,
		mapper.LegacySound{Deterministic: deterministic}, mapper.LegacyImage{},
		sounds, images, rnd)
}

func handle(t *testing.T, eng *engine.Engine, ev input.Event) engine.Action {
	t.Helper()
	act, err := eng.Handle(ev)
	test.ExpectSuccess(t, err)
	return act
}

func key(c rune) input.Event {
	return input.Event{Kind: input.KeyDown, Char: c, KeyCode: int32(c)}
}

func typeWord(t *testing.T, eng *engine.Engine, word string) engine.Action {
	t.Helper()
	var act engine.Action
	for _, c := range word {
		act = handle(t, eng, key(c))
	}
	return act
}

// a letter key shows a rendered glyph, not a random picture, and plays a
// sound. the clear-canvas decision is the seeded generator's first draw
func TestKeyDownLetter(t *testing.T) {
	eng := testEngine(t, engine.Setup{SoundEnabled: true}, 42, false)

	act := handle(t, eng, key('a'))
	test.ExpectEquality(t, act.Terminate, false)
	test.ExpectEquality(t, act.Image.(string), "glyph:a")
	test.ExpectInequality(t, act.Sound, nil)
	test.ExpectEquality(t, strings.HasSuffix(act.Sound.(string), ".wav"), true)

	test.ExpectEquality(t, act.ClearCanvas, random.NewSeededRandom(42).Intn(10) == 0)
}

// a key without an alphanumeric character shows a random picture
func TestKeyDownNonPrintable(t *testing.T) {
	eng := testEngine(t, engine.Setup{SoundEnabled: true}, 42, false)

	act := handle(t, eng, input.Event{Kind: input.KeyDown, KeyCode: 13})
	test.ExpectEquality(t, strings.HasSuffix(act.Image.(string), ".gif"), true)
	test.ExpectInequality(t, act.Sound, nil)
}

// device buttons play sounds and show random pictures. they never show a
// glyph
func TestDeviceButton(t *testing.T) {
	eng := testEngine(t, engine.Setup{SoundEnabled: true}, 42, false)

	act := handle(t, eng, input.Event{Kind: input.DeviceButtonDown, KeyCode: 3})
	test.ExpectEquality(t, strings.HasSuffix(act.Image.(string), ".gif"), true)
	test.ExpectInequality(t, act.Sound, nil)
}

// with deterministic sounds the same key always plays the same sound.
// index is keyCode mod collection size; sounds in index order are bang.wav,
// moo.wav, pop.wav
func TestDeterministicSounds(t *testing.T) {
	eng := testEngine(t, engine.Setup{SoundEnabled: true}, 42, true)

	for i := 0; i < 5; i++ {
		act := handle(t, eng, key('a')) // 97 mod 3 == 1
		test.ExpectEquality(t, act.Sound.(string), "moo.wav")
	}

	// device buttons keep their random sounds even in deterministic mode
	act := handle(t, eng, input.Event{Kind: input.DeviceButtonDown, KeyCode: 0})
	test.ExpectInequality(t, act.Sound, nil)
}

// identical event sequences with identical seeds produce identical actions
func TestReproducibleSession(t *testing.T) {
	events := []input.Event{
		key('a'), key('b'),
		{Kind: input.KeyDown, KeyCode: 13},
		{Kind: input.DeviceButtonDown, KeyCode: 7},
		key('z'),
	}

	run := func() []engine.Action {
		eng := testEngine(t, engine.Setup{SoundEnabled: true}, 99, false)
		acts := make([]engine.Action, 0, len(events))
		for _, ev := range events {
			acts = append(acts, handle(t, eng, ev))
		}
		return acts
	}

	a := run()
	b := run()
	for i := range a {
		test.ExpectEquality(t, a[i], b[i])
	}
}

func TestMuteUnmute(t *testing.T) {
	eng := testEngine(t, engine.Setup{SoundEnabled: true}, 42, false)
	test.ExpectEquality(t, eng.State(), engine.Armed)

	// sounds are produced up to and including the keypress before the mute
	// command completes
	for _, c := range "mut" {
		act := handle(t, eng, key(c))
		test.ExpectInequality(t, act.Sound, nil)
	}

	// the keypress completing the command is already silent and asks the
	// caller to fade out
	act := handle(t, eng, key('e'))
	test.ExpectEquality(t, eng.State(), engine.Muted)
	test.ExpectEquality(t, act.Sound, nil)
	test.ExpectEquality(t, act.FadeOut, true)

	// images are unaffected by the muted state
	test.ExpectEquality(t, act.Image.(string), "glyph:e")

	// more mashing: still silent
	act = typeWord(t, eng, "xyz")
	test.ExpectEquality(t, act.Sound, nil)

	// unmute: the final keypress already carries a sound
	act = typeWord(t, eng, "unmute")
	test.ExpectEquality(t, eng.State(), engine.Armed)
	test.ExpectInequality(t, act.Sound, nil)
}

// when sound is disabled for the session, mute and unmute have no effect
// and no sound handles are ever produced
func TestSoundDisabled(t *testing.T) {
	eng := testEngine(t, engine.Setup{SoundEnabled: false}, 42, false)

	act := typeWord(t, eng, "mute")
	test.ExpectEquality(t, act.Sound, nil)
	test.ExpectEquality(t, act.FadeOut, false)
	test.ExpectEquality(t, eng.State(), engine.Armed)

	act = typeWord(t, eng, "unmute")
	test.ExpectEquality(t, act.Sound, nil)
	test.ExpectEquality(t, eng.State(), engine.Armed)
}

func TestStartMuted(t *testing.T) {
	eng := testEngine(t, engine.Setup{SoundEnabled: true, StartMuted: true}, 42, false)
	test.ExpectEquality(t, eng.State(), engine.Muted)

	act := handle(t, eng, key('a'))
	test.ExpectEquality(t, act.Sound, nil)

	act = typeWord(t, eng, "unmute")
	test.ExpectEquality(t, eng.State(), engine.Armed)
	test.ExpectInequality(t, act.Sound, nil)
}

// quit fires regardless of whether audio is enabled, and bypasses the
// response pipeline for that event
func TestQuitCommand(t *testing.T) {
	eng := testEngine(t, engine.Setup{SoundEnabled: false}, 42, false)

	act := typeWord(t, eng, "quit")
	test.ExpectEquality(t, act.Terminate, true)
	test.ExpectEquality(t, act.Sound, nil)
	test.ExpectEquality(t, act.Image, nil)
	test.ExpectEquality(t, eng.State(), engine.Terminated)

	// terminated is absorbing
	act = handle(t, eng, key('a'))
	test.ExpectEquality(t, act.Terminate, true)
}

func TestQuitEvent(t *testing.T) {
	eng := testEngine(t, engine.Setup{SoundEnabled: true}, 42, false)

	act := handle(t, eng, input.Event{Kind: input.Quit})
	test.ExpectEquality(t, act.Terminate, true)
	test.ExpectEquality(t, eng.State(), engine.Terminated)
}

// pointer interaction: a mark at the press position, a mark for every drag
// position while the button is held, nothing once it is released. no sound
// at any point
func TestPointer(t *testing.T) {
	eng := testEngine(t, engine.Setup{SoundEnabled: true}, 42, false)

	act := handle(t, eng, input.Event{Kind: input.PointerDown, X: 100, Y: 100})
	test.ExpectEquality(t, act.Image.(string), "dot")
	test.ExpectEquality(t, act.AtPointer, true)
	test.ExpectEquality(t, act.X, int32(100))
	test.ExpectEquality(t, act.Y, int32(100))
	test.ExpectEquality(t, act.Sound, nil)

	act = handle(t, eng, input.Event{Kind: input.PointerMove, X: 110, Y: 100})
	test.ExpectEquality(t, act.Image.(string), "dot")
	test.ExpectEquality(t, act.X, int32(110))
	test.ExpectEquality(t, act.Sound, nil)

	act = handle(t, eng, input.Event{Kind: input.PointerUp, X: 110, Y: 100})
	test.ExpectEquality(t, act, engine.Action{})

	// motion with the button released leaves no mark
	act = handle(t, eng, input.Event{Kind: input.PointerMove, X: 120, Y: 100})
	test.ExpectEquality(t, act, engine.Action{})
}

// an engine serving a declarative rule list with no catch-all fails fatally
// on the first unmatched event
func TestDeclarativeNoMatchIsFatal(t *testing.T) {
	rnd := random.NewSeededRandom(1)
	syn := &stubSynth{}

	images := policy.NewRegistry()
	images.Register("font", policy.NewGlyph(syn, rnd, false))
	images.Register("dot", policy.NewDot(syn))

	keydown := input.KeyDown
	imageMapper := mapper.NewDeclarative("rules.yaml (image)", []mapper.Rule{
		{Checks: []mapper.Check{{Kind: &keydown}}, Policy: "font"},
	})

	eng := engine.NewEngine(engine.Setup{}, mapper.LegacySound{}, imageMapper,
		policy.NewRegistry(), images, rnd)

	_, err := eng.Handle(input.Event{Kind: input.PointerDown, X: 1, Y: 1})
	test.ExpectFailure(t, err)
}
