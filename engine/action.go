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
	"github.com/smashpad/smashpad/resource"
)

// Action is what the caller should do in response to the event it just
// handed to the engine. The zero value means do nothing.
//
// The engine decides which image to show, not where. Placement is the
// caller's job, except that when AtPointer is set the image is the pointer
// mark and its centre coordinates come from the raw event.
type Action struct {
	// the process should end. the caller owns the actual exit
	Terminate bool

	// redraw the background before showing the image. purely cosmetic
	ClearCanvas bool

	// the sound to play. nil when no sound should be played
	Sound resource.Handle

	// the image to show. nil when no image should be shown
	Image resource.Handle

	// the image is the pointer mark and should be centred at X/Y
	AtPointer bool
	X         int32
	Y         int32

	// fade out any sound currently playing. set when a mute command has
	// just been recognised
	FadeOut bool
}
