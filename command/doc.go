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

// Package command watches the stream of typed characters for the operator
// command words: quit, mute and unmute. There is no time limit on typing a
// word; detection is purely a substring search over accumulated input, so a
// word can be completed over any number of intervening keypresses as long as
// no other command word happens to form first.
//
// Note that the rolling buffer is capped. The original game this program is
// based on accumulated typed characters without limit for the length of the
// session.
package command
