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
	"github.com/smashpad/smashpad/curated"
	"github.com/smashpad/smashpad/input"
)

// NoMatchingRule is the error pattern returned when a declarative rule list
// decides nothing for an event. The declarative contract guarantees a
// decision for every event, so this is fatal: the rule author must supply a
// catch-all final rule with no checks.
const NoMatchingRule = "%s: no rule matches event: %v"

// Declarative is a Mapper driven by an ordered rule list loaded from an
// extension file. Rules are evaluated in file order and the first rule whose
// checks all match is selected.
type Declarative struct {
	// the name used in the NoMatchingRule error. by convention this is the
	// rule file name and the dispatch channel, eg. "rules.yaml (image)"
	label string

	rules []Rule
}

// NewDeclarative is the preferred method of initialisation for the
// Declarative type.
func NewDeclarative(label string, rules []Rule) *Declarative {
	return &Declarative{
		label: label,
		rules: rules,
	}
}

// Map implements the Mapper interface.
func (m *Declarative) Map(ev input.Event) (string, []string, error) {
	for _, r := range m.rules {
		if r.Match(ev) {
			return r.Policy, r.Args, nil
		}
	}
	return "", nil, curated.Errorf(NoMatchingRule, m.label, ev.Kind)
}
