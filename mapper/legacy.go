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

package mapper

import (
	"github.com/smashpad/smashpad/input"
)

// LegacySound is the built-in sound mapping, used when no extension is
// active: a random sound for everything; or, in deterministic-sounds mode,
// the same sound for the same key.
type LegacySound struct {
	// deterministic mode only ever applies to keyboard keys. device buttons
	// keep their random sounds
	Deterministic bool
}

// Map implements the Mapper interface.
func (m LegacySound) Map(ev input.Event) (string, []string, error) {
	if m.Deterministic && ev.Kind == input.KeyDown {
		return "deterministic", nil, nil
	}
	return "random", nil, nil
}

// LegacyImage is the built-in image mapping, used when no extension is
// active: a rendered letter for alphanumeric keys, the pointer mark for
// pointer interaction and a random picture for everything else.
type LegacyImage struct{}

// Map implements the Mapper interface.
func (m LegacyImage) Map(ev input.Event) (string, []string, error) {
	switch ev.Kind {
	case input.PointerDown, input.PointerMove:
		return "dot", nil, nil
	case input.KeyDown:
		if ev.IsAlpha() || ev.IsDigit() {
			return "font", nil, nil
		}
	}
	return "random", nil, nil
}
