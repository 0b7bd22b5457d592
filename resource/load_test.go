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

package resource_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/smashpad/smashpad/curated"
	"github.com/smashpad/smashpad/resource"
	"github.com/smashpad/smashpad/test"
)

// load function that fails for any path containing the string "bad"
func flakyLoad(path string) (resource.Handle, error) {
	if strings.Contains(path, "bad") {
		return nil, fmt.Errorf("no such file")
	}
	return path, nil
}

func TestLoadItems(t *testing.T) {
	set, err := resource.LoadItems("sounds",
		[]string{"data/pop.wav", "data/bang.wav", "data/moo.wav"},
		nil, flakyLoad)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, set.Len(), 3)

	h, ok := set.Get("moo.wav")
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, h.(string), "data/moo.wav")
}

// one failure out of three leaves a set of two and no batch failure
func TestLoadItemsPartialFailure(t *testing.T) {
	set, err := resource.LoadItems("sounds",
		[]string{"data/pop.wav", "data/bad.wav", "data/moo.wav"},
		nil, flakyLoad)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, set.Len(), 2)

	_, ok := set.Get("bad.wav")
	test.ExpectEquality(t, ok, false)
}

// every file failing is a batch failure naming the category
func TestLoadItemsBatchFailure(t *testing.T) {
	_, err := resource.LoadItems("images",
		[]string{"data/bad1.gif", "data/bad2.gif"},
		nil, flakyLoad)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, resource.AllFailed), true)
	test.ExpectEquality(t, err.Error(), "All images failed to load.")
}

// no files at all is not an error. it yields an empty set
func TestLoadItemsEmptyCategory(t *testing.T) {
	set, err := resource.LoadItems("sounds", nil, nil, flakyLoad)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, set.Len(), 0)
}

func TestLoadItemsBlacklist(t *testing.T) {
	set, err := resource.LoadItems("sounds",
		[]string{"data/pop.wav", "data/siren.wav", "data/moo.wav"},
		[]string{"siren*"}, flakyLoad)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, set.Len(), 2)

	_, ok := set.Get("siren.wav")
	test.ExpectEquality(t, ok, false)
}

// blacklisting everything with no failures is an empty set, not a batch
// failure
func TestLoadItemsBlacklistAll(t *testing.T) {
	set, err := resource.LoadItems("sounds",
		[]string{"data/pop.wav", "data/moo.wav"},
		[]string{"*.wav"}, flakyLoad)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, set.Len(), 0)
}

func TestLoadItemsBadPattern(t *testing.T) {
	_, err := resource.LoadItems("sounds",
		[]string{"data/pop.wav"},
		[]string{"[unclosed"}, flakyLoad)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, resource.BadPattern), true)
}

// index order is stable: alphabetical by path, regardless of input order
func TestSetOrder(t *testing.T) {
	set, err := resource.LoadItems("sounds",
		[]string{"data/zebra.wav", "data/ant.wav"},
		nil, flakyLoad)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, set.Len(), 2)
	test.ExpectEquality(t, set.At(0).(string), "data/ant.wav")
	test.ExpectEquality(t, set.At(1).(string), "data/zebra.wav")
}
