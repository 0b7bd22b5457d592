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

package extension

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/smashpad/smashpad/curated"
	"github.com/smashpad/smashpad/input"
	"github.com/smashpad/smashpad/mapper"
)

// RuleFile is the expected name of the rule file inside an extension
// directory.
const RuleFile = "extension.yaml"

// the only apiVersion this revision of the program understands
const apiVersion = 0

// Error patterns for the extension package. All of these are fatal at
// startup; the program must not proceed into the run loop with a rule file
// it does not fully understand.
const (
	LoadFailed       = "extension: %v"
	BadFile          = "extension: %s: %v"
	BadAPIVersion    = "extension: %s: apiVersion must be %d"
	NoImageRules     = "extension: %s: no image rules"
	MissingPolicy    = "extension: %s: rule without a policy name"
	AmbiguousCheck   = "extension: %s: check must contain exactly one of 'type' or 'unicode'"
	AmbiguousUnicode = "extension: %s: unicode check must contain exactly one of 'value', 'isalpha' or 'isdigit'"
	BadKindValue     = "extension: %s: unrecognised type value: %s"
	BadCharValue     = "extension: %s: unicode value must be a single character: %s"
)

// Extension is a validated, externally supplied override of the built-in
// mapping rules.
type Extension struct {
	// the file the extension was loaded from. used to label errors
	File string

	Image []mapper.Rule
	Sound []mapper.Rule
}

// the raw shape of the rule file. any field not listed here is rejected by
// the strict decoder
type fileSpec struct {
	APIVersion *int       `yaml:"apiVersion"`
	Image      []ruleSpec `yaml:"image"`
	Sound      []ruleSpec `yaml:"sound"`
}

type ruleSpec struct {
	Check  []checkSpec `yaml:"check"`
	Policy string      `yaml:"policy"`
	Args   []string    `yaml:"args"`
}

type checkSpec struct {
	Type    *string      `yaml:"type"`
	Unicode *unicodeSpec `yaml:"unicode"`
}

type unicodeSpec struct {
	Value   *string `yaml:"value"`
	IsAlpha *bool   `yaml:"isalpha"`
	IsDigit *bool   `yaml:"isdigit"`
}

// Load reads and validates the rule file at the given path.
func Load(filename string) (*Extension, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(LoadFailed, err)
	}
	return Parse(filename, data)
}

// Parse validates rule file content. The filename is only used to label
// errors.
func Parse(filename string, data []byte) (*Extension, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	// reject unknown fields anywhere in the document. untrusted
	// configuration is data, never code, and anything we do not recognise is
	// an error
	dec.KnownFields(true)

	var spec fileSpec
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return nil, curated.Errorf(BadFile, filename, err)
	}

	if spec.APIVersion == nil || *spec.APIVersion != apiVersion {
		return nil, curated.Errorf(BadAPIVersion, filename, apiVersion)
	}

	if len(spec.Image) == 0 {
		return nil, curated.Errorf(NoImageRules, filename)
	}

	ext := &Extension{File: filename}

	var err error
	ext.Image, err = convertRules(filename, spec.Image)
	if err != nil {
		return nil, err
	}
	ext.Sound, err = convertRules(filename, spec.Sound)
	if err != nil {
		return nil, err
	}

	return ext, nil
}

func convertRules(filename string, specs []ruleSpec) ([]mapper.Rule, error) {
	rules := make([]mapper.Rule, 0, len(specs))

	for _, rs := range specs {
		if rs.Policy == "" {
			return nil, curated.Errorf(MissingPolicy, filename)
		}

		r := mapper.Rule{
			Policy: rs.Policy,
			Args:   rs.Args,
		}

		for _, cs := range rs.Check {
			ck, err := convertCheck(filename, cs)
			if err != nil {
				return nil, err
			}
			r.Checks = append(r.Checks, ck)
		}

		rules = append(rules, r)
	}

	return rules, nil
}

func convertCheck(filename string, cs checkSpec) (mapper.Check, error) {
	if (cs.Type == nil) == (cs.Unicode == nil) {
		return mapper.Check{}, curated.Errorf(AmbiguousCheck, filename)
	}

	if cs.Type != nil {
		if !strings.EqualFold(*cs.Type, input.KeyDown.String()) {
			return mapper.Check{}, curated.Errorf(BadKindValue, filename, *cs.Type)
		}
		kind := input.KeyDown
		return mapper.Check{Kind: &kind}, nil
	}

	n := 0
	if cs.Unicode.Value != nil {
		n++
	}
	if cs.Unicode.IsAlpha != nil {
		n++
	}
	if cs.Unicode.IsDigit != nil {
		n++
	}
	if n != 1 {
		return mapper.Check{}, curated.Errorf(AmbiguousUnicode, filename)
	}

	switch {
	case cs.Unicode.Value != nil:
		runes := []rune(*cs.Unicode.Value)
		if len(runes) != 1 {
			return mapper.Check{}, curated.Errorf(BadCharValue, filename, *cs.Unicode.Value)
		}
		return mapper.Check{Value: &runes[0]}, nil
	case cs.Unicode.IsAlpha != nil:
		return mapper.Check{IsAlpha: cs.Unicode.IsAlpha}, nil
	default:
		return mapper.Check{IsDigit: cs.Unicode.IsDigit}, nil
	}
}
