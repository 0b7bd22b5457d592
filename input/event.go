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

package input

import (
	"unicode"
)

// Kind classifies an Event. The values cover every user action the engine
// reacts to.
type Kind int

// List of valid Kind values.
const (
	KeyDown Kind = iota
	PointerMove
	PointerDown
	PointerUp
	DeviceButtonDown
	Quit
)

func (k Kind) String() string {
	switch k {
	case KeyDown:
		return "KEYDOWN"
	case PointerMove:
		return "POINTERMOVE"
	case PointerDown:
		return "POINTERDOWN"
	case PointerUp:
		return "POINTERUP"
	case DeviceButtonDown:
		return "DEVICEBUTTONDOWN"
	case Quit:
		return "QUIT"
	}
	return "unknown"
}

// Event is the normalised description of one user action. Events are created
// by the event source (the playmode package in the case of SDL), passed
// through the engine once and then discarded.
type Event struct {
	Kind Kind

	// the printable character carried by the event. the zero value means the
	// event does not carry a character. only ever set for KeyDown events
	Char rune

	// the raw numeric code of the key or device button. always set for
	// KeyDown and DeviceButtonDown events
	KeyCode int32

	// pointer position. only meaningful for the pointer kinds
	X int32
	Y int32
}

// HasChar returns true if the event carries a printable character.
func (ev Event) HasChar() bool {
	return ev.Char != 0
}

// IsAlpha returns true if the event carries an alphabetic character.
func (ev Event) IsAlpha() bool {
	return ev.HasChar() && unicode.IsLetter(ev.Char)
}

// IsDigit returns true if the event carries a numeric character.
func (ev Event) IsDigit() bool {
	return ev.HasChar() && unicode.IsDigit(ev.Char)
}
