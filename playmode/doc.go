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

// Package playmode is the SDL presentation of the program. It owns the
// window, the renderer, the mixer and the event loop; the decisions about
// what to show and play are made by the engine package.
//
// Everything here is side effects. The translate() function turns SDL events
// into the neutral input representation and an engine Action is turned back
// into drawing and mixing calls by perform(). Nothing outside this package
// imports SDL.
package playmode
