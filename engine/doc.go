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

// Package engine is the heart of Smashpad. The Engine receives one
// normalised input event at a time, watches for the typed command words, and
// asks the sound and image mappers which policy answers the event. The
// selected handles travel back to the caller in an Action; the engine never
// plays, draws or exits by itself.
//
// The engine has two effective states, Armed and Muted, toggled by the mute
// and unmute commands. The quit command and the window-close event move it
// to the absorbing Terminated state.
package engine
