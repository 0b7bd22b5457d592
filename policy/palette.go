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

package policy

// Color is an RGB color used when synthesising glyph images.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Palette is the fixed set of colors letters are rendered in.
var Palette = []Color{
	{0, 0, 255},   // blue
	{255, 0, 0},   // red
	{255, 255, 0}, // yellow
	{255, 0, 128}, // pink
	{0, 0, 128},   // navy
	{0, 255, 0},   // green
	{255, 128, 0}, // orange
	{255, 0, 255}, // magenta
	{0, 255, 255}, // cyan
}
