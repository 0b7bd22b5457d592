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
	"github.com/smashpad/smashpad/curated"
	"github.com/smashpad/smashpad/input"
	"github.com/smashpad/smashpad/resource"
)

// Error patterns for the policy package. All of these indicate that engine
// construction was inconsistent with the rules it is being asked to serve.
// None of them is a recoverable runtime condition.
const (
	EmptyCollection = "%s policy: empty resource collection"
	NoKeyCode       = "deterministic policy: event carries no key code"
	UnknownName     = "named policy: no resource with name: %s"
	BadArgs         = "named policy: expects a single file name argument"
	NoCharacter     = "font policy: event carries no printable character"
	UnknownPolicy   = "no policy registered with name: %s"
)

// Policy selects or synthesises the resource that answers an input event.
// Implementations operate purely over the immutable resource Set and shared
// Random they were constructed with.
type Policy interface {
	Select(ev input.Event, args []string) (resource.Handle, error)
}

// Synthesizer renders images that are not loaded from disk: letter glyphs
// and the circular pointer mark. Implemented by the playmode package with
// SDL; implemented trivially by the tests.
type Synthesizer interface {
	// RenderGlyph renders the character in the given palette color
	RenderGlyph(char rune, col Color) (resource.Handle, error)

	// RenderDot renders the filled circular pointer mark. the mark's color
	// is the synthesizer's choice
	RenderDot() (resource.Handle, error)
}

// Registry translates external policy names to constructed Policy instances.
// It is built once at startup and read-only thereafter. Sound and image
// dispatch each have their own Registry so that, for example, a sound rule
// can never name the font policy.
type Registry struct {
	policies map[string]Policy
}

// NewRegistry is the preferred method of initialisation for the Registry
// type.
func NewRegistry() *Registry {
	return &Registry{
		policies: make(map[string]Policy),
	}
}

// Register a policy under an external name.
func (reg *Registry) Register(name string, p Policy) {
	reg.policies[name] = p
}

// Lookup the policy registered under an external name.
func (reg *Registry) Lookup(name string) (Policy, error) {
	p, ok := reg.policies[name]
	if !ok {
		return nil, curated.Errorf(UnknownPolicy, name)
	}
	return p, nil
}

// Recognised returns true if a policy is registered under the name.
func (reg *Registry) Recognised(name string) bool {
	_, ok := reg.policies[name]
	return ok
}
