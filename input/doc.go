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

// Package input defines the normalised event type that flows through the
// response engine. It can be thought of as a translation layer between the
// GUI implementation and the engine package. The engine never sees an SDL
// event, only an input.Event.
//
// The GUI implementation in use during development was SDL and so there will
// be a bias towards that system.
package input
