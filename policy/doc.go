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

// Package policy implements the response policies: the strategies that turn
// an input event into a sound or an image. Four of them select from a
// pre-loaded resource set (random, deterministic, named) or synthesise a new
// image on the fly (font, dot).
//
// The Registry type translates the external string names used in rule files
// into Policy instances. The names recognised for sound dispatch are
// "random", "deterministic" and "named". For image dispatch they are
// "random", "named", "font" and "dot".
package policy
