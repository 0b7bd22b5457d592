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
	"sort"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/smashpad/smashpad/curated"
	"github.com/smashpad/smashpad/paths"
	"github.com/smashpad/smashpad/policy"
	"github.com/smashpad/smashpad/resource"
)

// point sizes for the two fonts. glyphs are big because babies like big
const (
	glyphFontSize   = 256
	captionFontSize = 36
)

// radius of the circular pointer mark
const dotRadius = 12

// image is the resource.Handle realisation for everything that ends up on
// screen: loaded picture files, rendered letter glyphs and the pointer mark.
type image struct {
	texture *sdl.Texture

	// on-screen dimensions. for loaded pictures these may be smaller than
	// the pixel dimensions of the file
	w int32
	h int32

	// transient images are destroyed after their one appearance
	transient bool
}

// synthesizer renders letter glyphs and the pointer mark. It implements the
// policy.Synthesizer interface.
type synthesizer struct {
	renderer *sdl.Renderer

	glyphFont   *ttf.Font
	captionFont *ttf.Font
}

// newSynthesizer opens the first font file found in the data directories.
func newSynthesizer(renderer *sdl.Renderer, dataDirs []string) (*synthesizer, error) {
	fonts := paths.GlobData(dataDirs, []string{"*.ttf"})
	if len(fonts) == 0 {
		return nil, curated.Errorf(NoFont)
	}
	sort.Strings(fonts)

	glyphFont, err := ttf.OpenFont(fonts[0], glyphFontSize)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	captionFont, err := ttf.OpenFont(fonts[0], captionFontSize)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	return &synthesizer{
		renderer:    renderer,
		glyphFont:   glyphFont,
		captionFont: captionFont,
	}, nil
}

// RenderGlyph implements the policy.Synthesizer interface.
func (syn *synthesizer) RenderGlyph(char rune, col policy.Color) (resource.Handle, error) {
	return syn.renderText(syn.glyphFont, string(char), sdl.Color{R: col.R, G: col.G, B: col.B, A: 255})
}

// RenderDot implements the policy.Synthesizer interface. The mark's color
// cycles through the hues over time, so a slow drag paints a rainbow.
func (syn *synthesizer) RenderDot() (resource.Handle, error) {
	texture, err := syn.renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_TARGET, dotRadius*2, dotRadius*2)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	prev := syn.renderer.GetRenderTarget()
	if err := syn.renderer.SetRenderTarget(texture); err != nil {
		texture.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}
	defer syn.renderer.SetRenderTarget(prev)

	syn.renderer.SetDrawBlendMode(sdl.BLENDMODE_NONE)
	syn.renderer.SetDrawColor(0, 0, 0, 0)
	syn.renderer.Clear()

	r, g, b := hueToRGB(int(sdl.GetTicks()/50) % 360)
	syn.renderer.SetDrawColor(r, g, b, 255)

	// the circle as a stack of horizontal spans
	for dy := int32(-dotRadius); dy <= dotRadius; dy++ {
		dx := int32(0)
		for dx*dx+dy*dy <= dotRadius*dotRadius {
			dx++
		}
		dx--
		syn.renderer.FillRect(&sdl.Rect{
			X: dotRadius - dx,
			Y: dotRadius + dy,
			W: dx * 2,
			H: 1,
		})
	}

	return &image{
		texture:   texture,
		w:         dotRadius * 2,
		h:         dotRadius * 2,
		transient: true,
	}, nil
}

// renderCaption renders the short text drawn into the background.
func (syn *synthesizer) renderCaption(text string) (*image, error) {
	return syn.renderText(syn.captionFont, text, sdl.Color{R: 210, G: 210, B: 210, A: 255})
}

func (syn *synthesizer) renderText(font *ttf.Font, text string, col sdl.Color) (*image, error) {
	surface, err := font.RenderUTF8Blended(text, col)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}
	defer surface.Free()

	texture, err := syn.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	return &image{
		texture:   texture,
		w:         surface.W,
		h:         surface.H,
		transient: true,
	}, nil
}

// hueToRGB converts a fully saturated, fully bright hue (in degrees) to RGB.
func hueToRGB(hue int) (uint8, uint8, uint8) {
	sector := hue / 60
	frac := uint8(255 * (hue % 60) / 60)

	switch sector {
	case 0:
		return 255, frac, 0
	case 1:
		return 255 - frac, 255, 0
	case 2:
		return 0, 255, frac
	case 3:
		return 0, 255 - frac, 255
	case 4:
		return frac, 0, 255
	default:
		return 255, 0, 255 - frac
	}
}
