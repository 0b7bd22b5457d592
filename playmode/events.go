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
	"github.com/veandco/go-sdl2/sdl"

	"github.com/smashpad/smashpad/input"
)

// translate an SDL event into the neutral input representation. The boolean
// return value is false for SDL events the program has no interest in.
func translate(sdlEv sdl.Event) (input.Event, bool) {
	switch ev := sdlEv.(type) {
	case *sdl.QuitEvent:
		return input.Event{Kind: input.Quit}, true

	case *sdl.KeyboardEvent:
		if ev.Type != sdl.KEYDOWN {
			return input.Event{}, false
		}

		iev := input.Event{
			Kind:    input.KeyDown,
			KeyCode: int32(ev.Keysym.Sym),
		}

		// SDL keycodes for printable keys are their ASCII values. keys
		// outside that range (cursor keys, modifiers, etc.) carry no
		// character but are still valid events
		if ev.Keysym.Sym >= ' ' && ev.Keysym.Sym < 0x7f {
			iev.Char = rune(ev.Keysym.Sym)
		}

		return iev, true

	case *sdl.JoyButtonEvent:
		if ev.Type != sdl.JOYBUTTONDOWN {
			return input.Event{}, false
		}
		return input.Event{
			Kind:    input.DeviceButtonDown,
			KeyCode: int32(ev.Button),
		}, true

	case *sdl.MouseButtonEvent:
		switch ev.Type {
		case sdl.MOUSEBUTTONDOWN:
			return input.Event{Kind: input.PointerDown, X: ev.X, Y: ev.Y}, true
		case sdl.MOUSEBUTTONUP:
			return input.Event{Kind: input.PointerUp, X: ev.X, Y: ev.Y}, true
		}
		return input.Event{}, false

	case *sdl.MouseMotionEvent:
		return input.Event{Kind: input.PointerMove, X: ev.X, Y: ev.Y}, true
	}

	return input.Event{}, false
}
