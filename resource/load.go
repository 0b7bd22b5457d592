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

package resource

import (
	"path/filepath"
	"sort"

	"github.com/smashpad/smashpad/curated"
	"github.com/smashpad/smashpad/logger"
)

// Error patterns for the resource package.
const (
	// the category placeholder is "sounds" or "images"
	AllFailed = "All %s failed to load."

	// a blacklist entry that is not a valid glob pattern
	BadPattern = "bad blacklist pattern: %s"
)

// LoadFunc loads one resource file, returning the opaque handle for it.
type LoadFunc func(path string) (Handle, error)

// LoadItems runs the load function on every path that does not match a
// blacklist pattern, collecting the results into a Set keyed by base file
// name.
//
// A file that fails to load is logged and skipped; it does not abort the
// batch. However, if at least one load was attempted and the Set ends up
// empty then the whole category has failed and an error is returned. A
// category with no files at all is not an error, it yields an empty Set.
// Policies that require a non-empty Set reject an empty one at construction.
//
// Blacklist patterns are glob patterns in the style of filepath.Match,
// compared against the base file name. A malformed pattern is an error.
func LoadItems(category string, paths []string, blacklist []string, load LoadFunc) (*Set, error) {
	// sort for a stable index order regardless of how the paths were
	// discovered
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	set := newSet()
	failures := 0

	for _, path := range sorted {
		name := filepath.Base(path)

		skip := false
		for _, pattern := range blacklist {
			m, err := filepath.Match(pattern, name)
			if err != nil {
				return nil, curated.Errorf(BadPattern, pattern)
			}
			if m {
				skip = true
				break // pattern loop
			}
		}
		if skip {
			logger.Logf(logger.Allow, "resources", "skipping blacklisted item: %s", name)
			continue
		}

		h, err := load(path)
		if err != nil {
			failures++
			logger.Logf(logger.Allow, "resources", "cannot load %s: %v", path, err)
			continue
		}

		set.add(name, h)
	}

	if set.Len() == 0 && failures > 0 {
		return nil, curated.Errorf(AllFailed, category)
	}

	return set, nil
}
