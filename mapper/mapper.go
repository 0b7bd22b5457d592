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

package mapper

import (
	"github.com/smashpad/smashpad/input"
)

// Mapper decides which named policy, with which arguments, answers an input
// event. One Mapper serves sound dispatch and another serves image dispatch.
type Mapper interface {
	Map(ev input.Event) (string, []string, error)
}

// Check is a single predicate of a declarative rule. Exactly one of the
// fields is non-nil; the extension package guarantees this at load time.
type Check struct {
	// the event must be of this kind
	Kind *input.Kind

	// the event's character must equal this value
	Value *rune

	// the event's alphabetic-ness must equal this value
	IsAlpha *bool

	// the event's numeric-ness must equal this value
	IsDigit *bool
}

// Match returns true if the event satisfies the predicate.
func (ck Check) Match(ev input.Event) bool {
	switch {
	case ck.Kind != nil:
		return ev.Kind == *ck.Kind
	case ck.Value != nil:
		return ev.HasChar() && ev.Char == *ck.Value
	case ck.IsAlpha != nil:
		return ev.IsAlpha() == *ck.IsAlpha
	case ck.IsDigit != nil:
		return ev.IsDigit() == *ck.IsDigit
	}

	// a Check with no predicate at all matches nothing. the extension
	// package rejects such a Check at load time
	return false
}

// Rule is one ordered entry of a declarative rule list: a conjunction of
// Checks and the policy that answers any event satisfying all of them. A
// Rule with no Checks matches unconditionally.
type Rule struct {
	Checks []Check
	Policy string
	Args   []string
}

// Match returns true if the event satisfies every Check of the rule.
func (r Rule) Match(ev input.Event) bool {
	for _, ck := range r.Checks {
		if !ck.Match(ev) {
			return false
		}
	}
	return true
}
