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

package playmode

import (
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/mix"

	"github.com/smashpad/smashpad/curated"
	"github.com/smashpad/smashpad/logger"
	"github.com/smashpad/smashpad/paths"
	"github.com/smashpad/smashpad/resource"
)

// an image larger than this in either dimension is shrunk to fit, keeping
// its aspect ratio
const maxImageSide = 700

var soundPatterns = []string{"*.wav", "*.mp3"}
var imagePatterns = []string{"*.gif", "*.jpg", "*.png"}

// loadImages gathers every picture file in the data directories into an
// immutable resource set of ready-to-draw textures.
func (pl *playmode) loadImages(dataDirs []string) (*resource.Set, error) {
	if err := img.Init(img.INIT_JPG | img.INIT_PNG); err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	files := paths.GlobData(dataDirs, imagePatterns)

	return resource.LoadItems("images", files, pl.opts.ImageBlacklist,
		func(path string) (resource.Handle, error) {
			surface, err := img.Load(path)
			if err != nil {
				return nil, curated.Errorf(SDLError, err)
			}
			defer surface.Free()

			texture, err := pl.renderer.CreateTextureFromSurface(surface)
			if err != nil {
				return nil, curated.Errorf(SDLError, err)
			}

			w, h := fitImage(surface.W, surface.H)
			return &image{texture: texture, w: w, h: h}, nil
		})
}

// loadSounds gathers every sound file in the given directories into an
// immutable resource set of mixer chunks. Files are prescanned before being
// handed to the mixer so that a corrupt file is diagnosed by name rather
// than playing as noise.
func (pl *playmode) loadSounds(dirs []string) (*resource.Set, error) {
	files := paths.GlobData(dirs, soundPatterns)

	return resource.LoadItems("sounds", files, pl.opts.SoundBlacklist,
		func(path string) (resource.Handle, error) {
			d, err := prescan(path)
			if err != nil {
				return nil, err
			}
			logger.Logf(logger.Allow, "playmode", "sound %s (%s)", path, d)

			chunk, err := mix.LoadWAV(path)
			if err != nil {
				return nil, curated.Errorf(SDLError, err)
			}
			return chunk, nil
		})
}

// fitImage scales dimensions down to the on-screen limit, preserving aspect
// ratio. Dimensions within the limit are returned unchanged.
func fitImage(w int32, h int32) (int32, int32) {
	long := w
	if h > long {
		long = h
	}
	if long <= maxImageSide {
		return w, h
	}

	return w * maxImageSide / long, h * maxImageSide / long
}
