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

package mapper_test

import (
	"testing"

	"github.com/smashpad/smashpad/curated"
	"github.com/smashpad/smashpad/input"
	"github.com/smashpad/smashpad/mapper"
	"github.com/smashpad/smashpad/test"
)

func TestLegacySound(t *testing.T) {
	m := mapper.LegacySound{}

	name, args, err := m.Map(input.Event{Kind: input.KeyDown, Char: 'a', KeyCode: 97})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "random")
	test.ExpectEquality(t, len(args), 0)

	name, _, err = m.Map(input.Event{Kind: input.DeviceButtonDown, KeyCode: 2})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "random")
}

func TestLegacySoundDeterministic(t *testing.T) {
	m := mapper.LegacySound{Deterministic: true}

	name, _, err := m.Map(input.Event{Kind: input.KeyDown, Char: 'a', KeyCode: 97})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "deterministic")

	// deterministic mode only applies to keyboard keys
	name, _, err = m.Map(input.Event{Kind: input.DeviceButtonDown, KeyCode: 2})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "random")
}

func TestLegacyImage(t *testing.T) {
	m := mapper.LegacyImage{}

	name, _, err := m.Map(input.Event{Kind: input.KeyDown, Char: 'a', KeyCode: 97})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "font")

	name, _, err = m.Map(input.Event{Kind: input.KeyDown, Char: '7', KeyCode: 55})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "font")

	// keys without an alphanumeric character get a random picture
	name, _, err = m.Map(input.Event{Kind: input.KeyDown, KeyCode: 13})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "random")

	name, _, err = m.Map(input.Event{Kind: input.DeviceButtonDown, KeyCode: 0})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "random")

	// pointer interaction maps to the pointer mark
	name, _, err = m.Map(input.Event{Kind: input.PointerDown, X: 100, Y: 100})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "dot")

	name, _, err = m.Map(input.Event{Kind: input.PointerMove, X: 110, Y: 100})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "dot")
}

// the round-trip of spec'd behaviour: a rule list of a KEYDOWN-checked font
// rule followed by an unconditional random rule
func TestDeclarative(t *testing.T) {
	keydown := input.KeyDown
	m := mapper.NewDeclarative("rules.yaml (image)", []mapper.Rule{
		{Checks: []mapper.Check{{Kind: &keydown}}, Policy: "font"},
		{Policy: "random"},
	})

	name, args, err := m.Map(input.Event{Kind: input.KeyDown, Char: 'a', KeyCode: 97})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "font")
	test.ExpectEquality(t, len(args), 0)

	name, _, err = m.Map(input.Event{Kind: input.PointerDown})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "random")
}

func TestDeclarativeOrdering(t *testing.T) {
	isalpha := true
	keydown := input.KeyDown

	// the first matching rule wins even when a later rule also matches
	m := mapper.NewDeclarative("rules.yaml (sound)", []mapper.Rule{
		{Checks: []mapper.Check{{Kind: &keydown}, {IsAlpha: &isalpha}}, Policy: "named", Args: []string{"letter.wav"}},
		{Checks: []mapper.Check{{Kind: &keydown}}, Policy: "deterministic"},
		{Policy: "random"},
	})

	name, args, err := m.Map(input.Event{Kind: input.KeyDown, Char: 'a', KeyCode: 97})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "named")
	test.ExpectEquality(t, args[0], "letter.wav")

	name, _, err = m.Map(input.Event{Kind: input.KeyDown, Char: '7', KeyCode: 55})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "deterministic")

	name, _, err = m.Map(input.Event{Kind: input.DeviceButtonDown, KeyCode: 1})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "random")
}

func TestDeclarativeValueCheck(t *testing.T) {
	x := 'x'
	m := mapper.NewDeclarative("rules.yaml (sound)", []mapper.Rule{
		{Checks: []mapper.Check{{Value: &x}}, Policy: "named", Args: []string{"x.wav"}},
		{Policy: "random"},
	})

	name, _, err := m.Map(input.Event{Kind: input.KeyDown, Char: 'x', KeyCode: 120})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "named")

	name, _, err = m.Map(input.Event{Kind: input.KeyDown, Char: 'y', KeyCode: 121})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, name, "random")
}

// no matching rule is a fatal configuration-consistency error
func TestDeclarativeNoMatch(t *testing.T) {
	keydown := input.KeyDown
	m := mapper.NewDeclarative("rules.yaml (image)", []mapper.Rule{
		{Checks: []mapper.Check{{Kind: &keydown}}, Policy: "font"},
	})

	_, _, err := m.Map(input.Event{Kind: input.PointerDown})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, mapper.NoMatchingRule), true)
}
