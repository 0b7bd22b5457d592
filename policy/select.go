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

import (
	"unicode"

	"github.com/smashpad/smashpad/curated"
	"github.com/smashpad/smashpad/input"
	"github.com/smashpad/smashpad/random"
	"github.com/smashpad/smashpad/resource"
)

// Random selects a uniformly random resource from its backing collection,
// ignoring the event.
type Random struct {
	set *resource.Set
	rnd *random.Random
}

// NewRandom is the preferred method of initialisation for the Random policy.
// The backing collection must not be empty.
func NewRandom(category string, set *resource.Set, rnd *random.Random) (*Random, error) {
	if set.Len() == 0 {
		return nil, curated.Errorf(EmptyCollection, category)
	}
	return &Random{set: set, rnd: rnd}, nil
}

// Select implements the Policy interface.
func (p *Random) Select(_ input.Event, _ []string) (resource.Handle, error) {
	return p.set.At(p.rnd.Intn(p.set.Len())), nil
}

// Deterministic selects the resource at index "keyCode mod collection size".
// The same key always selects the same resource.
type Deterministic struct {
	set *resource.Set
}

// NewDeterministic is the preferred method of initialisation for the
// Deterministic policy. The backing collection must not be empty.
func NewDeterministic(category string, set *resource.Set) (*Deterministic, error) {
	if set.Len() == 0 {
		return nil, curated.Errorf(EmptyCollection, category)
	}
	return &Deterministic{set: set}, nil
}

// Select implements the Policy interface. The event must be one of the
// key-down kinds, which are the only events that carry a raw key code.
func (p *Deterministic) Select(ev input.Event, _ []string) (resource.Handle, error) {
	if ev.Kind != input.KeyDown && ev.Kind != input.DeviceButtonDown {
		return nil, curated.Errorf(NoKeyCode)
	}

	i := int(ev.KeyCode) % p.set.Len()
	if i < 0 {
		i += p.set.Len()
	}
	return p.set.At(i), nil
}

// Named selects the resource whose origin file name matches the single
// policy argument, ignoring the event.
type Named struct {
	set *resource.Set
}

// NewNamed is the preferred method of initialisation for the Named policy.
func NewNamed(set *resource.Set) *Named {
	return &Named{set: set}
}

// Select implements the Policy interface.
func (p *Named) Select(_ input.Event, args []string) (resource.Handle, error) {
	if len(args) != 1 {
		return nil, curated.Errorf(BadArgs)
	}

	h, ok := p.set.Get(args[0])
	if !ok {
		return nil, curated.Errorf(UnknownName, args[0])
	}
	return h, nil
}

// Glyph synthesises a freshly rendered image of the event's character,
// tinted with a random palette color. It touches no resource set at all.
type Glyph struct {
	syn       Synthesizer
	rnd       *random.Random
	uppercase bool
}

// NewGlyph is the preferred method of initialisation for the Glyph policy.
func NewGlyph(syn Synthesizer, rnd *random.Random, uppercase bool) *Glyph {
	return &Glyph{syn: syn, rnd: rnd, uppercase: uppercase}
}

// Select implements the Policy interface. The event must carry a printable
// character.
func (p *Glyph) Select(ev input.Event, _ []string) (resource.Handle, error) {
	if !ev.HasChar() {
		return nil, curated.Errorf(NoCharacter)
	}

	char := ev.Char
	if p.uppercase {
		char = unicode.ToUpper(char)
	}

	return p.syn.RenderGlyph(char, Palette[p.rnd.Intn(len(Palette))])
}

// Dot synthesises the filled circular mark drawn at the pointer position
// during pointer interaction.
type Dot struct {
	syn Synthesizer
}

// NewDot is the preferred method of initialisation for the Dot policy.
func NewDot(syn Synthesizer) *Dot {
	return &Dot{syn: syn}
}

// Select implements the Policy interface.
func (p *Dot) Select(_ input.Event, _ []string) (resource.Handle, error) {
	return p.syn.RenderDot()
}
