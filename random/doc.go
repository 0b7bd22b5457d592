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

// Package random wraps the standard library math/rand package so that every
// part of the program that needs randomness shares a single, explicitly
// seedable source. With a fixed seed the sequence of policy selections, the
// background-clear decisions and the positions chosen for images are all
// fully reproducible. Packages must not reach for a global source of
// randomness directly.
package random
