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
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/smashpad/smashpad/input"
	"github.com/smashpad/smashpad/test"
)

func TestTranslateKeyboard(t *testing.T) {
	ev, ok := translate(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		Keysym: sdl.Keysym{Sym: sdl.Keycode('a')},
	})
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, ev.Kind, input.KeyDown)
	test.ExpectEquality(t, ev.Char, 'a')
	test.ExpectEquality(t, ev.KeyCode, int32('a'))

	// key releases are of no interest
	_, ok = translate(&sdl.KeyboardEvent{
		Type:   sdl.KEYUP,
		Keysym: sdl.Keysym{Sym: sdl.Keycode('a')},
	})
	test.ExpectEquality(t, ok, false)

	// a cursor key has no character but is still an event
	ev, ok = translate(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		Keysym: sdl.Keysym{Sym: sdl.K_LEFT},
	})
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, ev.HasChar(), false)
}

func TestTranslatePointer(t *testing.T) {
	ev, ok := translate(&sdl.MouseButtonEvent{
		Type: sdl.MOUSEBUTTONDOWN,
		X:    100, Y: 200,
	})
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, ev.Kind, input.PointerDown)
	test.ExpectEquality(t, ev.X, int32(100))
	test.ExpectEquality(t, ev.Y, int32(200))

	ev, ok = translate(&sdl.MouseMotionEvent{X: 101, Y: 201})
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, ev.Kind, input.PointerMove)

	ev, ok = translate(&sdl.MouseButtonEvent{
		Type: sdl.MOUSEBUTTONUP,
		X:    101, Y: 201,
	})
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, ev.Kind, input.PointerUp)
}

func TestTranslateJoystickAndQuit(t *testing.T) {
	ev, ok := translate(&sdl.JoyButtonEvent{
		Type:   sdl.JOYBUTTONDOWN,
		Button: 3,
	})
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, ev.Kind, input.DeviceButtonDown)
	test.ExpectEquality(t, ev.KeyCode, int32(3))
	test.ExpectEquality(t, ev.HasChar(), false)

	ev, ok = translate(&sdl.QuitEvent{})
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, ev.Kind, input.Quit)
}

func TestFitImage(t *testing.T) {
	w, h := fitImage(350, 200)
	test.ExpectEquality(t, w, int32(350))
	test.ExpectEquality(t, h, int32(200))

	w, h = fitImage(1400, 700)
	test.ExpectEquality(t, w, int32(700))
	test.ExpectEquality(t, h, int32(350))

	w, h = fitImage(500, 1000)
	test.ExpectEquality(t, w, int32(350))
	test.ExpectEquality(t, h, int32(700))
}

func TestHueToRGB(t *testing.T) {
	r, g, b := hueToRGB(0)
	test.ExpectEquality(t, r, uint8(255))
	test.ExpectEquality(t, g, uint8(0))
	test.ExpectEquality(t, b, uint8(0))

	r, g, b = hueToRGB(120)
	test.ExpectEquality(t, r, uint8(0))
	test.ExpectEquality(t, g, uint8(255))
	test.ExpectEquality(t, b, uint8(0))

	r, g, b = hueToRGB(240)
	test.ExpectEquality(t, r, uint8(0))
	test.ExpectEquality(t, g, uint8(0))
	test.ExpectEquality(t, b, uint8(255))
}
